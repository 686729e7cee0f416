package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain email",
			text: "John Doe\njohn.doe@example.com\n+1 555 0100",
			want: "john.doe@example.com",
		},
		{
			name: "email embedded in prose",
			text: "Contact me at jane_smith+jobs@mail.co.uk for details.",
			want: "jane_smith+jobs@mail.co.uk",
		},
		{
			name: "first of several",
			text: "a@b.com and c@d.org",
			want: "a@b.com",
		},
		{
			name: "no email",
			text: "John Doe, Software Engineer",
			want: EmailNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"clean answer", "John Doe", "John Doe"},
		{"surrounding whitespace", "  John Doe \n", "John Doe"},
		{"boilerplate preamble", "The full name of the candidate is: John Doe", "John Doe"},
		{"preamble without article", "Full name of the candidate is John Doe", "John Doe"},
		{"trailing commentary on next line", "John Doe\nExtracted from the header.", "John Doe"},
		{"empty answer", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.raw))
		})
	}
}

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "literal JSON array",
			raw:  `["Python", "Java", "SQL"]`,
			want: []string{"Python", "Java", "SQL"},
		},
		{
			name: "JSON array in markdown fences",
			raw:  "```json\n[\"Go\", \"Docker\"]\n```",
			want: []string{"Go", "Docker"},
		},
		{
			name: "JSON array with surrounding prose",
			raw:  "Here are the skills: [\"Go\", \"Kubernetes\"] as requested.",
			want: []string{"Go", "Kubernetes"},
		},
		{
			name: "bulleted list fallback",
			raw:  "- Python\n- SQL\n* Docker",
			want: []string{"Python", "SQL", "Docker"},
		},
		{
			name: "numbered list fallback",
			raw:  "1. Python\n2) SQL\n3. Git",
			want: []string{"Python", "SQL", "Git"},
		},
		{
			name: "labeled line keeps right-hand side",
			raw:  "Languages: Python, Java\nTools: Git",
			want: []string{"Python", "Java", "Git"},
		},
		{
			name: "comma separated line",
			raw:  "Python, Java, SQL",
			want: []string{"Python", "Java", "SQL"},
		},
		{
			name: "editorial note skipped",
			raw:  "Python\nNote: these were inferred from the projects section\nSQL",
			want: []string{"Python", "SQL"},
		},
		{
			name: "case-insensitive dedupe keeps first casing",
			raw:  "Python\npython\nPYTHON\nSQL",
			want: []string{"Python", "SQL"},
		},
		{
			name: "blank input",
			raw:  "   \n  ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSkills(tt.raw)
			assert.ElementsMatch(t, tt.want, got)
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got, "order should be preserved")
			}
		})
	}
}

func TestNormalizeExperience(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"canonical sentence", "Total experience: 3 years 6 months", 3.5},
		{"years only", "Total experience: 5 years", 5.0},
		{"noise tokens stripped", "approximately 5+ years", 5.0},
		{"plus spelled out", "2 plus years of experience", 2.0},
		{"about prefix", "about 4 years", 4.0},
		{"fractional years", "2.5 years", 2.5},
		{"months only", "Total experience: 0 years 6 months", 0.5},
		{"months rounding", "8 months", 0.67},
		{"singular units", "1 year 1 month", 1.08},
		{"no parsable duration", "no experience mentioned", 0.0},
		{"empty answer", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeExperience(tt.raw), 0.001)
		})
	}
}

func TestNormalizeExperienceWholeYears(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"months ignored", "3 years 6 months", 3},
		{"years only", "7 years", 7},
		{"nothing parsable", "fresher", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExperienceWholeYears(tt.raw))
		})
	}
}
