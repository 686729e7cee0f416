package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   []string
	}{
		{"comma joined", "Go, SQL, Docker", []string{"Go", "SQL", "Docker"}},
		{"ragged spacing", " Go ,SQL,  Docker ", []string{"Go", "SQL", "Docker"}},
		{"empty segments dropped", "Go,,SQL,", []string{"Go", "SQL"}},
		{"single skill", "Go", []string{"Go"}},
		{"empty string", "", nil},
		{"whitespace only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSkills(tt.joined))
		})
	}
}

func TestSplitSkillsRoundTripsSkillsDisplay(t *testing.T) {
	record := &CandidateRecord{Skills: []string{"Go", "SQL", "Docker"}}
	assert.Equal(t, record.Skills, SplitSkills(record.SkillsDisplay()))
}
