package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/repositories"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/services"
)

type SubmissionHandler struct {
	submissionRepo repositories.SubmissionRepository
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	validate       *validator.Validate
}

func NewSubmissionHandler(
	submissionRepo repositories.SubmissionRepository,
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
) *SubmissionHandler {
	return &SubmissionHandler{
		submissionRepo: submissionRepo,
		docRepo:        docRepo,
		storageService: storageService,
		validate:       validator.New(),
	}
}

// HandleSubmit handles POST /submissions. Email is the identity: resubmitting
// replaces the stored application, and the replaced resume file is cleaned up.
func (h *SubmissionHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.SubmissionRequest

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

	var documentID *uuid.UUID
	if req.DocumentID != "" {
		docID, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id format",
			})
		}

		if _, err := h.docRepo.FindByID(docID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume document not found",
			})
		}

		documentID = &docID
	}

	submission := &models.Submission{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Motivation:      req.Motivation,
		DocumentID:      documentID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	persisted, replacedDocID, err := h.submissionRepo.UpsertByEmail(submission)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save submission",
		})
	}

	if replacedDocID != nil {
		h.cleanupDocument(*replacedDocID)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Submission saved successfully",
		"submission": persisted,
	})
}

// HandleList handles GET /submissions.
func (h *SubmissionHandler) HandleList(c *fiber.Ctx) error {
	submissions, err := h.submissionRepo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list submissions",
		})
	}

	return c.JSON(fiber.Map{
		"submissions": submissions,
	})
}

func (h *SubmissionHandler) cleanupDocument(docID uuid.UUID) {
	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		log.Printf("⚠️  Replaced document %s not found for cleanup: %v\n", docID, err)
		return
	}

	if err := h.storageService.DeleteFile(doc.Filename); err != nil {
		log.Printf("⚠️  Failed to delete replaced resume file %s: %v\n", doc.Filename, err)
	}

	if err := h.docRepo.Delete(docID); err != nil {
		log.Printf("⚠️  Failed to delete replaced document record %s: %v\n", docID, err)
	}
}
