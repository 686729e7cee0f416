package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
)

type ScreeningRepository interface {
	Create(screening *models.Screening) error
	FindByID(id uuid.UUID) (*models.Screening, error)
	FindByBatchID(batchID uuid.UUID) ([]models.Screening, error)
	UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error
	UpdateResult(id uuid.UUID, result *ScreeningUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Screening, error)
	FindCompleted() ([]models.Screening, error)
}

type ScreeningUpdateData struct {
	CandidateName       *string
	CandidateEmail      *string
	CandidateSkills     *string
	CandidateExperience *float64
	FitScore            *float64
	FitStatus           *string
	Reason              *string
}

type screeningRepository struct {
	db *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) ScreeningRepository {
	return &screeningRepository{db: db}
}

func (r *screeningRepository) Create(screening *models.Screening) error {
	if err := r.db.Create(screening).Error; err != nil {
		return fmt.Errorf("failed to create screening: %w", err)
	}
	return nil
}

func (r *screeningRepository) FindByID(id uuid.UUID) (*models.Screening, error) {
	var screening models.Screening
	if err := r.db.Where("id = ?", id).First(&screening).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("screening not found")
		}
		return nil, fmt.Errorf("failed to find screening: %w", err)
	}
	return &screening, nil
}

func (r *screeningRepository) FindByBatchID(batchID uuid.UUID) ([]models.Screening, error) {
	var screenings []models.Screening
	err := r.db.
		Where("batch_id = ?", batchID).
		Order("created_at ASC").
		Find(&screenings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find batch screenings: %w", err)
	}
	return screenings, nil
}

func (r *screeningRepository) UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error {
	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

func (r *screeningRepository) UpdateResult(id uuid.UUID, data *ScreeningUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.CandidateName != nil {
		updates["candidate_name"] = *data.CandidateName
	}
	if data.CandidateEmail != nil {
		updates["candidate_email"] = *data.CandidateEmail
	}
	if data.CandidateSkills != nil {
		updates["candidate_skills"] = *data.CandidateSkills
	}
	if data.CandidateExperience != nil {
		updates["candidate_experience"] = *data.CandidateExperience
	}
	if data.FitScore != nil {
		updates["fit_score"] = *data.FitScore
	}
	if data.FitStatus != nil {
		updates["fit_status"] = *data.FitStatus
	}
	if data.Reason != nil {
		updates["reason"] = *data.Reason
	}

	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

func (r *screeningRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

// FindCompleted returns completed screenings newest first, used when
// rebuilding the candidate search index.
func (r *screeningRepository) FindCompleted() ([]models.Screening, error) {
	var screenings []models.Screening
	err := r.db.
		Where("status = ?", models.StatusCompleted).
		Order("updated_at DESC").
		Find(&screenings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find completed screenings: %w", err)
	}
	return screenings, nil
}

func (r *screeningRepository) FindPendingJobs(limit int) ([]models.Screening, error) {
	var screenings []models.Screening
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&screenings).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return screenings, nil
}
