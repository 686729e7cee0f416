package models

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningStatus string

const (
	StatusQueued     ScreeningStatus = "queued"
	StatusProcessing ScreeningStatus = "processing"
	StatusCompleted  ScreeningStatus = "completed"
	StatusFailed     ScreeningStatus = "failed"
)

// Screening is one candidate evaluated against one requisition snapshot.
// The source is either an uploaded resume document or a stored submission row.
type Screening struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BatchID uuid.UUID `gorm:"type:uuid;index;not null" json:"batch_id"`

	DocumentID   *uuid.UUID `gorm:"type:uuid" json:"document_id,omitempty"`
	SubmissionID *uuid.UUID `gorm:"type:uuid" json:"submission_id,omitempty"`

	// Requisition snapshot, skills comma-joined.
	Policy             string  `gorm:"type:text;not null" json:"policy"`
	MandatorySkills    string  `gorm:"type:text" json:"mandatory_skills"`
	NiceToHaveSkills   string  `gorm:"type:text" json:"nice_to_have_skills"`
	MinExperienceYears float64 `gorm:"type:decimal(5,2);default:0" json:"min_experience_years"`

	Status ScreeningStatus `gorm:"not null;default:'queued'" json:"status"`

	CandidateName       *string  `gorm:"type:text" json:"candidate_name,omitempty"`
	CandidateEmail      *string  `gorm:"type:text" json:"candidate_email,omitempty"`
	CandidateSkills     *string  `gorm:"type:text" json:"candidate_skills,omitempty"`
	CandidateExperience *float64 `gorm:"type:decimal(5,2)" json:"candidate_experience,omitempty"`
	FitScore            *float64 `gorm:"type:decimal(5,2)" json:"fit_score,omitempty"`
	FitStatus           *string  `gorm:"type:text" json:"fit_status,omitempty"`
	Reason              *string  `gorm:"type:text" json:"reason,omitempty"`
	ErrorMessage        *string  `gorm:"type:text" json:"error_message,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document   *Document   `gorm:"foreignKey:DocumentID" json:"-"`
	Submission *Submission `gorm:"foreignKey:SubmissionID" json:"-"`
}

func (Screening) TableName() string {
	return "screenings"
}
