package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFresherRuleIsFresher(t *testing.T) {
	rule := NewFresherRule(2024, 2025, 2026)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "credential with recent graduation year",
			text: "B.Tech in Computer Science, graduating 2025",
			want: true,
		},
		{
			name: "bachelor keyword with year",
			text: "Bachelor of Engineering, Class of 2024",
			want: true,
		},
		{
			name: "student marker with year",
			text: "Final year student, expected 2026",
			want: true,
		},
		{
			name: "professional resume without credential markers",
			text: "Software Engineer at Acme Corp, 2021-2024",
			want: false,
		},
		{
			name: "credential but graduation outside the window",
			text: "Bachelor of Science, graduated 2010",
			want: false,
		},
		{
			name: "recent year without credential",
			text: "Led the 2025 platform migration",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.IsFresher(tt.text))
		})
	}
}

func TestFresherRuleDefaultWindow(t *testing.T) {
	rule := NewFresherRule()

	// The default window always contains the current year.
	assert.NotNil(t, rule)
	assert.False(t, rule.IsFresher("Senior Engineer with 10 years at BigCo"))
}

func TestFilterProfessionalSection(t *testing.T) {
	resume := `John Doe
john@example.com

Work Experience
Software Engineer at Acme Corp, 2019-2023
Backend Developer at Beta Inc, 2017-2019
Summer Internship at Gamma Labs, 2016

Education
B.S. Computer Science`

	got := FilterProfessionalSection(resume)

	assert.Contains(t, got, "Software Engineer at Acme Corp")
	assert.Contains(t, got, "Backend Developer at Beta Inc")
	assert.NotContains(t, got, "Internship")
	assert.NotContains(t, got, "B.S. Computer Science")
	assert.NotContains(t, got, "john@example.com")
}

func TestFilterProfessionalSectionNoHeading(t *testing.T) {
	resume := `Built a capstone project in college
Software Engineer at Acme Corp
Volunteer work at the local shelter`

	got := FilterProfessionalSection(resume)

	assert.Equal(t, "Software Engineer at Acme Corp", got)
}

func TestFilterProfessionalSectionFiltersTrainingLines(t *testing.T) {
	resume := `Professional Experience
Developer at Acme
Completed a training bootcamp in 2020
Skills
Go, SQL`

	got := FilterProfessionalSection(resume)

	assert.Contains(t, got, "Developer at Acme")
	assert.NotContains(t, got, "training")
	assert.NotContains(t, got, "Go, SQL")
}
