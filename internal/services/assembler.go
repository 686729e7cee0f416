package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CandidateRecord is the validated structured result of parsing one resume.
// Skills hold their original casing for display; comparisons are
// case-insensitive. ExperienceYears is always defined, defaulting to 0 for
// freshers and undeterminable answers.
type CandidateRecord struct {
	Name            string
	Email           string
	Skills          []string
	ExperienceYears float64
}

// SkillsDisplay renders the skill list in the comma-joined form stored and
// shown to admins.
func (r *CandidateRecord) SkillsDisplay() string {
	return strings.Join(r.Skills, ", ")
}

// CandidateAssembler composes the extractor, normalizer and fresher gate into
// one validated candidate record per document.
type CandidateAssembler interface {
	Assemble(ctx context.Context, resumeText string) (*CandidateRecord, error)
}

type candidateAssembler struct {
	extractor   FieldExtractor
	fresherRule *FresherRule
}

func NewCandidateAssembler(extractor FieldExtractor, fresherRule *FresherRule) CandidateAssembler {
	return &candidateAssembler{
		extractor:   extractor,
		fresherRule: fresherRule,
	}
}

// Assemble implements CandidateAssembler. Email is extracted locally from the
// document text before any model call. The fresher gate is evaluated
// synchronously; when it fires, the experience call is skipped entirely and
// experience stays at 0. The remaining field extractions are independent and
// run concurrently. Any generator failure is a hard error for this document —
// format drift, by contrast, never is: the normalizers degrade instead.
func (a *candidateAssembler) Assemble(ctx context.Context, resumeText string) (*CandidateRecord, error) {
	record := &CandidateRecord{
		Email: ExtractEmail(resumeText),
	}

	fresher := a.fresherRule.IsFresher(resumeText)

	var rawName, rawSkills, rawExperience string

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := a.extractor.Extract(gctx, resumeText, TaskName)
		if err != nil {
			return err
		}
		rawName = raw
		return nil
	})

	g.Go(func() error {
		raw, err := a.extractor.Extract(gctx, resumeText, TaskSkillList)
		if err != nil {
			return err
		}
		rawSkills = raw
		return nil
	})

	if !fresher {
		section := FilterProfessionalSection(resumeText)
		g.Go(func() error {
			raw, err := a.extractor.Extract(gctx, section, TaskExperienceDuration)
			if err != nil {
				return err
			}
			rawExperience = raw
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to extract candidate fields: %w", err)
	}

	record.Name = NormalizeName(rawName)
	record.Skills = NormalizeSkills(rawSkills)
	if !fresher {
		record.ExperienceYears = NormalizeExperience(rawExperience)
	}

	return record, nil
}
