package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/repositories"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/services"
)

type ScreeningHandler struct {
	screeningRepo  repositories.ScreeningRepository
	docRepo        repositories.DocumentRepository
	submissionRepo repositories.SubmissionRepository
	worker         services.Worker
	validate       *validator.Validate
}

func NewScreeningHandler(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	submissionRepo repositories.SubmissionRepository,
	worker services.Worker,
) *ScreeningHandler {
	return &ScreeningHandler{
		screeningRepo:  screeningRepo,
		docRepo:        docRepo,
		submissionRepo: submissionRepo,
		worker:         worker,
		validate:       validator.New(),
	}
}

// HandleScreen handles POST /screenings. The requisition is validated before
// any job is created, so a bad requisition never produces partial batches.
// Returns 202 with the batch and per-source job IDs; results are fetched later.
func (h *ScreeningHandler) HandleScreen(c *fiber.Ctx) error {
	var req models.ScreeningRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: %v", err),
		})
	}

	policy, err := services.ParseScoringPolicy(req.Policy)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	requisition := services.Requisition{
		MandatorySkills:    req.MandatorySkills,
		NiceToHaveSkills:   req.NiceToHaveSkills,
		MinExperienceYears: req.MinExperienceYears,
	}

	if err := requisition.Validate(policy); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if len(req.DocumentIDs) == 0 && !req.FromSubmissions {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provide document_ids or set from_submissions",
		})
	}

	if len(req.DocumentIDs) > 0 && req.FromSubmissions {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_ids and from_submissions are mutually exclusive",
		})
	}

	var screenings []*models.Screening
	batchID := uuid.New()

	if req.FromSubmissions {
		submissions, err := h.submissionRepo.List()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to list submissions",
			})
		}

		if len(submissions) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No submissions to screen",
			})
		}

		for i := range submissions {
			submissionID := submissions[i].ID
			screenings = append(screenings, h.newScreening(batchID, req, nil, &submissionID))
		}
	} else {
		// Verify all documents exist before creating any job.
		docIDs := make([]uuid.UUID, 0, len(req.DocumentIDs))
		for _, idStr := range req.DocumentIDs {
			docID, err := uuid.Parse(idStr)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Invalid document_id format: %s", idStr),
				})
			}
			docIDs = append(docIDs, docID)
		}

		for _, docID := range docIDs {
			if _, err := h.docRepo.FindByID(docID); err != nil {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": fmt.Sprintf("Resume document not found: %s", docID),
				})
			}
		}

		for i := range docIDs {
			docID := docIDs[i]
			screenings = append(screenings, h.newScreening(batchID, req, &docID, nil))
		}
	}

	jobIDs := make([]string, 0, len(screenings))
	for _, screening := range screenings {
		if err := h.screeningRepo.Create(screening); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create screening job",
			})
		}
		jobIDs = append(jobIDs, screening.ID.String())
	}

	// Enqueue after all rows exist; the poller covers any enqueue the worker
	// misses.
	for _, screening := range screenings {
		h.worker.EnqueueJob(screening.ID)
	}

	return c.Status(fiber.StatusAccepted).JSON(models.ScreeningResponse{
		BatchID: batchID.String(),
		JobIDs:  jobIDs,
		Status:  string(models.StatusQueued),
	})
}

func (h *ScreeningHandler) newScreening(batchID uuid.UUID, req models.ScreeningRequest, docID, submissionID *uuid.UUID) *models.Screening {
	return &models.Screening{
		ID:                 uuid.New(),
		BatchID:            batchID,
		DocumentID:         docID,
		SubmissionID:       submissionID,
		Policy:             req.Policy,
		MandatorySkills:    strings.Join(req.MandatorySkills, ", "),
		NiceToHaveSkills:   strings.Join(req.NiceToHaveSkills, ", "),
		MinExperienceYears: req.MinExperienceYears,
		Status:             models.StatusQueued,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
}
