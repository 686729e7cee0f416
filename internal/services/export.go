package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
)

// BuildResultsCSV renders a batch of screenings as a CSV document for download.
// Pending rows export with empty result columns; failed rows carry the error.
func BuildResultsCSV(screenings []models.Screening) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Candidate Name",
		"Email",
		"Skills",
		"Experience (Years)",
		"Fit Score",
		"Fit Status",
		"Reason",
		"Status",
		"Error",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, s := range screenings {
		row := []string{
			stringOrEmpty(s.CandidateName),
			stringOrEmpty(s.CandidateEmail),
			stringOrEmpty(s.CandidateSkills),
			floatOrEmpty(s.CandidateExperience),
			floatOrEmpty(s.FitScore),
			stringOrEmpty(s.FitStatus),
			stringOrEmpty(s.Reason),
			string(s.Status),
			stringOrEmpty(s.ErrorMessage),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}
