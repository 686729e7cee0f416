package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/services"
)

type SearchHandler struct {
	geminiService  services.GeminiService
	candidateIndex services.CandidateIndexService
}

func NewSearchHandler(
	geminiService services.GeminiService,
	candidateIndex services.CandidateIndexService,
) *SearchHandler {
	return &SearchHandler{
		geminiService:  geminiService,
		candidateIndex: candidateIndex,
	}
}

// HandleSearch handles GET /candidates/search?q=...&limit=N. The query is
// embedded and matched against indexed resume chunks.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q query parameter is required",
		})
	}

	limit := 5
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 || parsed > 50 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be an integer between 1 and 50",
			})
		}
		limit = parsed
	}

	embedding, err := h.geminiService.GenerateEmbedding(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to embed search query",
		})
	}

	matches, err := h.candidateIndex.SearchCandidates(c.Context(), embedding, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search candidates",
		})
	}

	results := make([]models.CandidateMatchResponse, 0, len(matches))
	for _, m := range matches {
		results = append(results, models.CandidateMatchResponse{
			Email:           m.Email,
			Name:            m.Name,
			Skills:          m.Skills,
			ExperienceYears: m.ExperienceYears,
			Similarity:      m.Similarity,
		})
	}

	return c.JSON(fiber.Map{
		"query":   query,
		"results": results,
	})
}
