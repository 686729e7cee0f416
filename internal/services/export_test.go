package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestBuildResultsCSV(t *testing.T) {
	batchID := uuid.New()
	screenings := []models.Screening{
		{
			ID:                  uuid.New(),
			BatchID:             batchID,
			Status:              models.StatusCompleted,
			CandidateName:       ptr("John Doe"),
			CandidateEmail:      ptr("john@example.com"),
			CandidateSkills:     ptr("Go, SQL"),
			CandidateExperience: ptr(3.5),
			FitScore:            ptr(82.5),
			FitStatus:           ptr("Fit"),
			Reason:              ptr("Candidate is a good fit."),
		},
		{
			ID:      uuid.New(),
			BatchID: batchID,
			Status:  models.StatusQueued,
		},
		{
			ID:           uuid.New(),
			BatchID:      batchID,
			Status:       models.StatusFailed,
			ErrorMessage: ptr("failed to parse resume"),
		},
	}

	data, err := BuildResultsCSV(screenings)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{
		"Candidate Name", "Email", "Skills", "Experience (Years)",
		"Fit Score", "Fit Status", "Reason", "Status", "Error",
	}, records[0])

	completed := records[1]
	assert.Equal(t, "John Doe", completed[0])
	assert.Equal(t, "john@example.com", completed[1])
	assert.Equal(t, "Go, SQL", completed[2])
	assert.Equal(t, "3.50", completed[3])
	assert.Equal(t, "82.50", completed[4])
	assert.Equal(t, "Fit", completed[5])
	assert.Equal(t, "completed", completed[7])

	pending := records[2]
	assert.Equal(t, "", pending[0])
	assert.Equal(t, "", pending[4])
	assert.Equal(t, "queued", pending[7])

	failed := records[3]
	assert.Equal(t, "failed", failed[7])
	assert.Equal(t, "failed to parse resume", failed[8])
}

func TestBuildResultsCSVEmptyBatch(t *testing.T) {
	data, err := BuildResultsCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
