package services

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// EmailNotFound is the sentinel stored when no email appears in the document.
const EmailNotFound = "not found"

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// namePreambleRe strips self-referential boilerplate the model sometimes
	// prepends despite the "name only" instruction.
	namePreambleRe = regexp.MustCompile(`(?i)^(the\s+)?full\s+name\s+of\s+the\s+candidate\s+is[:\-]?\s*`)

	numberedItemRe = regexp.MustCompile(`^\d+[.)]\s*`)

	yearsRe      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*years?`)
	monthsRe     = regexp.MustCompile(`(\d+)\s*months?`)
	wholeYearsRe = regexp.MustCompile(`(\d+)\s*years?`)
)

// noiseTokens are stripped before parsing an experience sentence so that
// "approximately 5+ years" reads as "5 years".
var noiseTokens = []string{"+", "plus", "approximately", "about"}

// ExtractEmail returns the first email address in the document text, or the
// EmailNotFound sentinel. It reads the raw document only and never touches the
// model, so it works even when the text-generation capability is unavailable.
func ExtractEmail(text string) string {
	if match := emailRe.FindString(text); match != "" {
		return match
	}
	return EmailNotFound
}

// NormalizeName trims the raw answer, strips any leading boilerplate phrase
// and keeps only the first line, discarding trailing commentary.
func NormalizeName(raw string) string {
	cleaned := namePreambleRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	return strings.TrimSpace(cleaned)
}

// NormalizeSkills turns a raw skill answer into a deduplicated list. It tries
// a literal JSON array first; when the model drifted into bullets, numbering
// or labeled lines it falls back to line-by-line scanning. It never fails:
// unusable input yields an empty list.
func NormalizeSkills(raw string) []string {
	if parsed, ok := parseSkillArray(raw); ok {
		return dedupeSkills(parsed)
	}

	var skills []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•*– \t")
		line = numberedItemRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Editorial asides are not skills.
		if strings.HasPrefix(strings.ToLower(line), "note:") {
			continue
		}
		if idx := strings.Index(line, ":"); idx >= 0 {
			skills = append(skills, strings.Split(line[idx+1:], ",")...)
		} else if strings.Contains(line, ",") {
			skills = append(skills, strings.Split(line, ",")...)
		} else {
			skills = append(skills, line)
		}
	}

	return dedupeSkills(skills)
}

// parseSkillArray attempts the strict path: a JSON array of non-empty strings,
// possibly wrapped in markdown fences or surrounding prose.
func parseSkillArray(raw string) ([]string, bool) {
	text := stripCodeFences(raw)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	var parsed []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, false
	}

	for _, s := range parsed {
		if strings.TrimSpace(s) == "" {
			return nil, false
		}
	}

	return parsed, true
}

// dedupeSkills trims entries, drops empties and deduplicates
// case-insensitively, retaining the first-seen casing and order.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))

	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	return out
}

// stripCodeFences removes markdown code-block markers the model tends to wrap
// structured answers in.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// NormalizeExperience parses a free-text duration sentence into total years.
// Years may be fractional; months are converted at 1/12 and the total is
// rounded to 2 decimal places. Missing patterns default to zero, so the
// function is total: any input yields a non-negative number.
func NormalizeExperience(raw string) float64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, tok := range noiseTokens {
		s = strings.ReplaceAll(s, tok, "")
	}

	var years, months float64
	if m := yearsRe.FindStringSubmatch(s); m != nil {
		years, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := monthsRe.FindStringSubmatch(s); m != nil {
		months, _ = strconv.ParseFloat(m[1], 64)
	}

	return round2(years + months/12)
}

// NormalizeExperienceWholeYears is the preserved legacy variant: whole years
// only, months ignored. Kept as a named function because existing callers
// depend on its coarser rounding.
func NormalizeExperienceWholeYears(raw string) float64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	if m := wholeYearsRe.FindStringSubmatch(s); m != nil {
		years, _ := strconv.Atoi(m[1])
		return float64(years)
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
