package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a stored candidate application, keyed by email. Resubmitting
// with the same email replaces the existing row.
type Submission struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string     `gorm:"type:text;not null" json:"name"`
	Email           string     `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Skills          string     `gorm:"type:text" json:"skills"`
	ExperienceYears float64    `gorm:"type:decimal(5,2);default:0" json:"experience_years"`
	Motivation      string     `gorm:"type:text" json:"motivation"`
	DocumentID      *uuid.UUID `gorm:"type:uuid" json:"document_id,omitempty"`
	CreatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document *Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}
