package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	credentialRe = regexp.MustCompile(`(?i)(b\.tech|bachelor|degree|graduation|student)`)

	// experienceSectionRe captures the first experience-style section up to the
	// next section heading or end of document.
	experienceSectionRe = regexp.MustCompile(`(?is)(work experience|professional experience|employment history|experience summary|employment experience|career summary)(.*?)(education|projects|skills|certifications|$)`)

	// nonProfessionalLineRe marks lines whose time must not count as
	// professional experience.
	nonProfessionalLineRe = regexp.MustCompile(`(?i)(intern|internship|project|capstone|academic|training|volunteer)`)
)

// FresherRule decides whether a resume belongs to an entry-level candidate so
// the pipeline can skip the experience model call. The criteria are pluggable
// through the constructor: adjusting the graduation-year window does not touch
// the extraction pipeline.
type FresherRule struct {
	yearRe *regexp.Regexp
}

// NewFresherRule builds the gate for the given graduation-year window. With no
// years given it defaults to the previous, current and next calendar year.
func NewFresherRule(graduationYears ...int) *FresherRule {
	if len(graduationYears) == 0 {
		y := time.Now().Year()
		graduationYears = []int{y - 1, y, y + 1}
	}

	tokens := make([]string, 0, len(graduationYears))
	for _, y := range graduationYears {
		tokens = append(tokens, strconv.Itoa(y))
	}

	return &FresherRule{
		yearRe: regexp.MustCompile(`(` + strings.Join(tokens, "|") + `)`),
	}
}

// IsFresher returns true only when an academic-credential marker and a recent
// graduation-year token both appear in the document. A coarse heuristic: its
// only job is to avoid a pointless model call for entry-level resumes.
func (r *FresherRule) IsFresher(text string) bool {
	return credentialRe.MatchString(text) && r.yearRe.MatchString(text)
}

// FilterProfessionalSection extracts the professional-experience section of a
// resume and removes lines describing internships, academic work, training or
// volunteering. If no experience heading is found the whole document is used.
// The result is what the experience extraction task should see, so the model
// does not attribute non-qualifying time.
func FilterProfessionalSection(text string) string {
	section := text
	if m := experienceSectionRe.FindStringSubmatch(text); m != nil {
		section = m[2]
	}

	var kept []string
	for _, line := range strings.Split(section, "\n") {
		if nonProfessionalLineRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
