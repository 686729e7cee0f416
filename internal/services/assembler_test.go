package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFieldExtractor returns canned answers per task and records which tasks
// were requested.
type stubFieldExtractor struct {
	mu      sync.Mutex
	answers map[ExtractionTask]string
	err     error
	tasks   []ExtractionTask
}

func (s *stubFieldExtractor) Extract(ctx context.Context, text string, task ExtractionTask) (string, error) {
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	if s.err != nil {
		return "", s.err
	}
	return s.answers[task], nil
}

func (s *stubFieldExtractor) requested(task ExtractionTask) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t == task {
			return true
		}
	}
	return false
}

const experiencedResume = `John Doe
john.doe@example.com

Work Experience
Software Engineer at Acme Corp, 2019-2023

Education
B.S. Computer Science, graduated 2015`

func TestAssembleExperiencedCandidate(t *testing.T) {
	extractor := &stubFieldExtractor{
		answers: map[ExtractionTask]string{
			TaskName:               "The full name of the candidate is: John Doe",
			TaskSkillList:          `["Go", "SQL", "go"]`,
			TaskExperienceDuration: "Total experience: 3 years 6 months",
		},
	}

	assembler := NewCandidateAssembler(extractor, NewFresherRule(2030))

	record, err := assembler.Assemble(context.Background(), experiencedResume)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", record.Name)
	assert.Equal(t, "john.doe@example.com", record.Email)
	assert.Equal(t, []string{"Go", "SQL"}, record.Skills)
	assert.Equal(t, 3.5, record.ExperienceYears)

	assert.True(t, extractor.requested(TaskName))
	assert.True(t, extractor.requested(TaskSkillList))
	assert.True(t, extractor.requested(TaskExperienceDuration))
}

func TestAssembleFresherSkipsExperienceTask(t *testing.T) {
	resume := `Jane Smith
jane@example.com
B.Tech in Computer Science, graduating 2025
Skills: Python, SQL`

	extractor := &stubFieldExtractor{
		answers: map[ExtractionTask]string{
			TaskName:      "Jane Smith",
			TaskSkillList: `["Python", "SQL"]`,
		},
	}

	assembler := NewCandidateAssembler(extractor, NewFresherRule(2025))

	record, err := assembler.Assemble(context.Background(), resume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", record.Name)
	assert.Equal(t, 0.0, record.ExperienceYears)
	assert.False(t, extractor.requested(TaskExperienceDuration))
}

func TestAssembleGeneratorFailure(t *testing.T) {
	extractor := &stubFieldExtractor{err: errors.New("model unavailable")}
	assembler := NewCandidateAssembler(extractor, NewFresherRule(2030))

	record, err := assembler.Assemble(context.Background(), experiencedResume)
	assert.Error(t, err)
	assert.Nil(t, record)
}

func TestAssembleEmailExtractedWithoutModel(t *testing.T) {
	// Even a failing extractor never affects local email extraction.
	assert.Equal(t, "john.doe@example.com", ExtractEmail(experiencedResume))
	assert.Equal(t, EmailNotFound, ExtractEmail("no contact information here"))
}

func TestAssembleIsIdempotent(t *testing.T) {
	extractor := &stubFieldExtractor{
		answers: map[ExtractionTask]string{
			TaskName:               "John Doe",
			TaskSkillList:          `["Go"]`,
			TaskExperienceDuration: "Total experience: 2 years 0 months",
		},
	}

	assembler := NewCandidateAssembler(extractor, NewFresherRule(2030))

	first, err := assembler.Assemble(context.Background(), experiencedResume)
	require.NoError(t, err)

	second, err := assembler.Assemble(context.Background(), experiencedResume)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCandidateRecordSkillsDisplay(t *testing.T) {
	record := &CandidateRecord{Skills: []string{"Go", "SQL", "Docker"}}
	assert.Equal(t, "Go, SQL, Docker", record.SkillsDisplay())

	empty := &CandidateRecord{}
	assert.Equal(t, "", empty.SkillsDisplay())
}
