package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/repositories"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/services"
)

type ResultHandler struct {
	screeningRepo repositories.ScreeningRepository
}

func NewResultHandler(screeningRepo repositories.ScreeningRepository) *ResultHandler {
	return &ResultHandler{
		screeningRepo: screeningRepo,
	}
}

// HandleGetResult handles GET /screenings/:id.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	screeningID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	screening, err := h.screeningRepo.FindByID(screeningID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	return c.JSON(buildResultResponse(screening))
}

// HandleGetBatch handles GET /screenings?batch_id=...
func (h *ResultHandler) HandleGetBatch(c *fiber.Ctx) error {
	batchParam := c.Query("batch_id")
	if batchParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "batch_id query parameter is required",
		})
	}

	batchID, err := uuid.Parse(batchParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid batch_id format",
		})
	}

	screenings, err := h.screeningRepo.FindByBatchID(batchID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch batch screenings",
		})
	}

	if len(screenings) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Batch not found",
		})
	}

	results := make([]models.ResultResponse, 0, len(screenings))
	for i := range screenings {
		results = append(results, buildResultResponse(&screenings[i]))
	}

	return c.JSON(fiber.Map{
		"batch_id": batchID.String(),
		"results":  results,
	})
}

// HandleExportBatch handles GET /screenings/export?batch_id=... and streams the
// batch as a CSV download.
func (h *ResultHandler) HandleExportBatch(c *fiber.Ctx) error {
	batchParam := c.Query("batch_id")
	if batchParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "batch_id query parameter is required",
		})
	}

	batchID, err := uuid.Parse(batchParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid batch_id format",
		})
	}

	screenings, err := h.screeningRepo.FindByBatchID(batchID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch batch screenings",
		})
	}

	if len(screenings) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Batch not found",
		})
	}

	csvData, err := services.BuildResultsCSV(screenings)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build CSV export",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="screening_results_%s.csv"`, batchID))
	return c.Send(csvData)
}

func buildResultResponse(screening *models.Screening) models.ResultResponse {
	response := models.ResultResponse{
		ID:      screening.ID.String(),
		BatchID: screening.BatchID.String(),
		Status:  string(screening.Status),
	}

	if screening.Status == models.StatusCompleted {
		candidate := &models.CandidateData{}
		if screening.CandidateName != nil {
			candidate.Name = *screening.CandidateName
		}
		if screening.CandidateEmail != nil {
			candidate.Email = *screening.CandidateEmail
		}
		if screening.CandidateSkills != nil {
			candidate.Skills = services.SplitSkills(*screening.CandidateSkills)
		}
		if screening.CandidateExperience != nil {
			candidate.ExperienceYears = *screening.CandidateExperience
		}
		response.Candidate = candidate

		verdict := &models.VerdictData{}
		if screening.FitScore != nil {
			verdict.FitScore = *screening.FitScore
		}
		if screening.FitStatus != nil {
			verdict.FitStatus = *screening.FitStatus
		}
		if screening.Reason != nil {
			verdict.Reason = *screening.Reason
		}
		response.Verdict = verdict
	}

	if screening.Status == models.StatusFailed {
		response.ErrorMessage = screening.ErrorMessage
	}

	return response
}
