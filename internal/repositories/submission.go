package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
)

type SubmissionRepository interface {
	UpsertByEmail(submission *models.Submission) (*models.Submission, *uuid.UUID, error)
	FindByID(id uuid.UUID) (*models.Submission, error)
	FindByEmail(email string) (*models.Submission, error)
	List() ([]models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// UpsertByEmail creates the submission or, when a row with the same email
// (case-insensitive) already exists, replaces its fields. When a replacement
// drops a previously stored resume, the replaced document id is returned so
// the caller can clean up the old file.
func (r *submissionRepository) UpsertByEmail(submission *models.Submission) (*models.Submission, *uuid.UUID, error) {
	existing, err := r.FindByEmail(submission.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, nil, err
	}

	if existing == nil {
		if err := r.db.Create(submission).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create submission: %w", err)
		}
		return submission, nil, nil
	}

	updates := map[string]interface{}{
		"name":             submission.Name,
		"email":            submission.Email,
		"skills":           submission.Skills,
		"experience_years": submission.ExperienceYears,
		"motivation":       submission.Motivation,
		"document_id":      submission.DocumentID,
		"updated_at":       time.Now(),
	}

	if err := r.db.Model(&models.Submission{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update submission: %w", err)
	}

	persisted := *submission
	persisted.ID = existing.ID

	var replacedDoc *uuid.UUID
	if existing.DocumentID != nil && (submission.DocumentID == nil || *existing.DocumentID != *submission.DocumentID) {
		replacedDoc = existing.DocumentID
	}

	return &persisted, replacedDoc, nil
}

// FindByID implements SubmissionRepository.
func (r *submissionRepository) FindByID(id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	if err := r.db.Where("id = ?", id).First(&submission).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("submission not found")
		}
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}
	return &submission, nil
}

// FindByEmail matches case-insensitively; returns gorm.ErrRecordNotFound when
// no row exists so UpsertByEmail can distinguish "create" from real failures.
func (r *submissionRepository) FindByEmail(email string) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&submission).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find submission by email: %w", err)
	}
	return &submission, nil
}

// List implements SubmissionRepository.
func (r *submissionRepository) List() ([]models.Submission, error) {
	var submissions []models.Submission
	if err := r.db.Order("created_at ASC").Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}
