package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator captures the prompt it was called with.
type stubGenerator struct {
	answer      string
	err         error
	lastPrompt  string
	lastTemp    float32
	invocations int
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.lastPrompt = prompt
	s.lastTemp = temperature
	s.invocations++
	return s.answer, s.err
}

func TestExtractBuildsTaskSpecificPrompts(t *testing.T) {
	tests := []struct {
		name           string
		task           ExtractionTask
		wantDirectives []string
	}{
		{
			name:           "name task",
			task:           TaskName,
			wantDirectives: []string{"full name", "no titles"},
		},
		{
			name:           "skill list task",
			task:           TaskSkillList,
			wantDirectives: []string{"JSON array", `["Python", "Java", "SQL"]`},
		},
		{
			name:           "experience task",
			task:           TaskExperienceDuration,
			wantDirectives: []string{"Total experience: X years Y months", "internships"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{answer: "ok"}
			extractor := NewFieldExtractor(gen)

			_, err := extractor.Extract(context.Background(), "resume body text", tt.task)
			require.NoError(t, err)

			assert.Contains(t, gen.lastPrompt, "resume body text")
			for _, directive := range tt.wantDirectives {
				assert.Contains(t, gen.lastPrompt, directive)
			}
		})
	}
}

func TestExtractUnknownTask(t *testing.T) {
	gen := &stubGenerator{answer: "ok"}
	extractor := NewFieldExtractor(gen)

	_, err := extractor.Extract(context.Background(), "text", ExtractionTask("salary"))
	assert.Error(t, err)
	assert.Zero(t, gen.invocations, "no model call for an unknown task")
}

func TestExtractPropagatesGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	extractor := NewFieldExtractor(gen)

	_, err := extractor.Extract(context.Background(), "text", TaskName)
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestExtractReturnsRawAnswer(t *testing.T) {
	gen := &stubGenerator{answer: "  The full name of the candidate is: John Doe  "}
	extractor := NewFieldExtractor(gen)

	got, err := extractor.Extract(context.Background(), "text", TaskName)
	require.NoError(t, err)

	// The extractor never normalizes; that is the normalizer's job.
	assert.Equal(t, "  The full name of the candidate is: John Doe  ", got)
}
