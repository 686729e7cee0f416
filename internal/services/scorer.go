package services

import (
	"fmt"
	"math"
	"strings"
)

// ScoringPolicy selects one of the two evaluation modes. Both are legitimate
// and mutually exclusive: binary-gate is the resume-driven fresh evaluation,
// weighted-tier the bulk re-evaluation of stored submissions. They are kept as
// named strategies because downstream consumers depend on each independently.
type ScoringPolicy string

const (
	PolicyBinaryGate   ScoringPolicy = "binary_gate"
	PolicyWeightedTier ScoringPolicy = "weighted_tier"
)

func ParseScoringPolicy(s string) (ScoringPolicy, error) {
	switch ScoringPolicy(s) {
	case PolicyBinaryGate:
		return PolicyBinaryGate, nil
	case PolicyWeightedTier:
		return PolicyWeightedTier, nil
	default:
		return "", fmt.Errorf("unknown scoring policy: %q", s)
	}
}

type FitStatus string

const (
	FitStatusFit      FitStatus = "Fit"
	FitStatusModerate FitStatus = "Moderate Fit"
	FitStatusNotFit   FitStatus = "Not Fit"
)

// Requisition is the caller-supplied job requirement, immutable per
// evaluation. Skill matching is case-insensitive.
type Requisition struct {
	MandatorySkills    []string
	NiceToHaveSkills   []string
	MinExperienceYears float64
}

// Validate surfaces requisition errors before any document is processed, so
// they never mix with per-document failures.
func (r Requisition) Validate(policy ScoringPolicy) error {
	if r.MinExperienceYears < 0 {
		return fmt.Errorf("minimum experience must not be negative")
	}
	if policy == PolicyBinaryGate && len(nonEmptySkills(r.MandatorySkills)) == 0 {
		return fmt.Errorf("binary-gate policy requires at least one mandatory skill")
	}
	return nil
}

// FitVerdict is the scored outcome: a 0-100 score, a categorical status and a
// human-readable justification.
type FitVerdict struct {
	Score  float64
	Status FitStatus
	Reason string
}

// Score evaluates a candidate record against a requisition under the chosen
// policy. Pure and deterministic: no external calls, identical inputs yield
// identical verdicts.
func Score(record *CandidateRecord, req Requisition, policy ScoringPolicy) (FitVerdict, error) {
	switch policy {
	case PolicyBinaryGate:
		return scoreBinaryGate(record, req), nil
	case PolicyWeightedTier:
		return scoreWeightedTier(record, req), nil
	default:
		return FitVerdict{}, fmt.Errorf("unknown scoring policy: %q", policy)
	}
}

// scoreBinaryGate: 60% mandatory-skill coverage, 40% experience. Fit only when
// every mandatory skill matched and the experience requirement is met; the
// reason enumerates each missing skill and any shortfall.
func scoreBinaryGate(record *CandidateRecord, req Requisition) FitVerdict {
	have := lowerSet(record.Skills)

	mandatory := nonEmptySkills(req.MandatorySkills)
	matched := 0
	var missing []string
	for _, s := range mandatory {
		if have[strings.ToLower(s)] {
			matched++
		} else {
			missing = append(missing, s)
		}
	}

	mandatoryScore := 100.0
	if len(mandatory) > 0 {
		mandatoryScore = float64(matched) / float64(len(mandatory)) * 100
	}

	experienceMet := record.ExperienceYears >= req.MinExperienceYears
	experienceScore := 100.0
	if !experienceMet {
		experienceScore = record.ExperienceYears / req.MinExperienceYears * 100
	}

	score := round2(mandatoryScore*0.6 + experienceScore*0.4)

	if len(missing) == 0 && experienceMet {
		return FitVerdict{
			Score:  score,
			Status: FitStatusFit,
			Reason: "Candidate is a good fit.",
		}
	}

	reason := "Candidate is not a good fit due to:"
	if len(missing) > 0 {
		reason += fmt.Sprintf(" missing mandatory skills: %s.", strings.Join(missing, ", "))
	}
	if !experienceMet {
		reason += fmt.Sprintf(" insufficient experience (%g < %g years).", record.ExperienceYears, req.MinExperienceYears)
	}

	return FitVerdict{
		Score:  score,
		Status: FitStatusNotFit,
		Reason: reason,
	}
}

// scoreWeightedTier: 60% mandatory coverage, 20% nice-to-have coverage, 20%
// experience ratio capped at 1. A sub-score with nothing specified is
// trivially satisfied and contributes its maximum. Verdict by tier with a
// fixed sentence per tier.
func scoreWeightedTier(record *CandidateRecord, req Requisition) FitVerdict {
	have := lowerSet(record.Skills)

	mandScore := skillCoverage(have, nonEmptySkills(req.MandatorySkills))
	goodScore := skillCoverage(have, nonEmptySkills(req.NiceToHaveSkills))

	expScore := 1.0
	if req.MinExperienceYears > 0 {
		expScore = math.Min(record.ExperienceYears/req.MinExperienceYears, 1)
	}

	score := round2((mandScore*0.6 + goodScore*0.2 + expScore*0.2) * 100)

	switch {
	case score >= 70:
		return FitVerdict{Score: score, Status: FitStatusFit, Reason: "Candidate meets requirements."}
	case score >= 50:
		return FitVerdict{Score: score, Status: FitStatusModerate, Reason: "Candidate partially meets requirements."}
	default:
		return FitVerdict{Score: score, Status: FitStatusNotFit, Reason: "Candidate does not meet requirements."}
	}
}

// skillCoverage returns the matched fraction of wanted skills, or 1 when no
// skills are specified (an empty requirement is trivially satisfied).
func skillCoverage(have map[string]bool, wanted []string) float64 {
	if len(wanted) == 0 {
		return 1
	}
	matched := 0
	for _, s := range wanted {
		if have[strings.ToLower(s)] {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}

func lowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return set
}

func nonEmptySkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
