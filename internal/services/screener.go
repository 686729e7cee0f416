package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/repositories"
)

// ScreenerService runs one screening job end to end: load the source (resume
// document or stored submission), assemble the candidate record, score it
// against the requisition snapshot, and persist the verdict.
type ScreenerService interface {
	ProcessScreening(ctx context.Context, screeningID uuid.UUID) error
	Evaluate(ctx context.Context, resumeText string, req Requisition, policy ScoringPolicy) (*CandidateRecord, FitVerdict, error)
}

type screenerService struct {
	screeningRepo  repositories.ScreeningRepository
	docRepo        repositories.DocumentRepository
	submissionRepo repositories.SubmissionRepository
	docParser      DocumentParserService
	assembler      CandidateAssembler
	geminiService  GeminiService
	candidateIndex CandidateIndexService
	chunker        TextChunker
}

func NewScreenerService(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	submissionRepo repositories.SubmissionRepository,
	docParser DocumentParserService,
	assembler CandidateAssembler,
	geminiService GeminiService,
	candidateIndex CandidateIndexService,
) ScreenerService {
	return &screenerService{
		screeningRepo:  screeningRepo,
		docRepo:        docRepo,
		submissionRepo: submissionRepo,
		docParser:      docParser,
		assembler:      assembler,
		geminiService:  geminiService,
		candidateIndex: candidateIndex,
		chunker:        NewTextChunker(),
	}
}

// Evaluate runs the stateless pipeline for a single resume text: assemble the
// candidate record, then score it. One document failing never affects another;
// callers decide how to record the error.
func (s *screenerService) Evaluate(ctx context.Context, resumeText string, req Requisition, policy ScoringPolicy) (*CandidateRecord, FitVerdict, error) {
	record, err := s.assembler.Assemble(ctx, resumeText)
	if err != nil {
		return nil, FitVerdict{}, err
	}

	verdict, err := Score(record, req, policy)
	if err != nil {
		return nil, FitVerdict{}, err
	}

	return record, verdict, nil
}

// ProcessScreening implements ScreenerService. Every failure path records the
// error on the screening row before returning, so the batch view always shows
// a terminal status per entry.
func (s *screenerService) ProcessScreening(ctx context.Context, screeningID uuid.UUID) error {
	screening, err := s.screeningRepo.FindByID(screeningID)
	if err != nil {
		return fmt.Errorf("failed to get screening: %w", err)
	}

	// Re-delivered jobs (poller + queue) are skipped once terminal.
	if screening.Status == models.StatusCompleted || screening.Status == models.StatusFailed {
		return nil
	}

	if err := s.screeningRepo.UpdateStatus(screeningID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting screening for job ID: %s\n", screeningID)

	policy, err := ParseScoringPolicy(screening.Policy)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, err.Error())
		return err
	}

	req := Requisition{
		MandatorySkills:    SplitSkills(screening.MandatorySkills),
		NiceToHaveSkills:   SplitSkills(screening.NiceToHaveSkills),
		MinExperienceYears: screening.MinExperienceYears,
	}

	var record *CandidateRecord
	var verdict FitVerdict
	var resumeText string

	switch {
	case screening.DocumentID != nil:
		record, verdict, resumeText, err = s.screenDocument(ctx, *screening.DocumentID, req, policy)
	case screening.SubmissionID != nil:
		record, verdict, err = s.screenSubmission(*screening.SubmissionID, req, policy)
	default:
		err = fmt.Errorf("screening has no source document or submission")
	}

	if err != nil {
		s.screeningRepo.UpdateError(screeningID, err.Error())
		return err
	}

	log.Println("💾 Saving screening results...")
	name := record.Name
	email := record.Email
	skills := record.SkillsDisplay()
	experience := record.ExperienceYears
	updateData := &repositories.ScreeningUpdateData{
		CandidateName:       &name,
		CandidateEmail:      &email,
		CandidateSkills:     &skills,
		CandidateExperience: &experience,
		FitScore:            &verdict.Score,
		FitStatus:           (*string)(&verdict.Status),
		Reason:              &verdict.Reason,
	}

	if err := s.screeningRepo.UpdateResult(screeningID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	// Indexing is best-effort: a search-index outage never fails a screening.
	if resumeText != "" {
		if err := s.indexCandidate(ctx, record, verdict, resumeText); err != nil {
			log.Printf("⚠️  Failed to index candidate %s: %v\n", record.Email, err)
		}
	}

	log.Printf("✅ Screening completed successfully for job ID: %s\n", screeningID)
	return nil
}

func (s *screenerService) screenDocument(ctx context.Context, documentID uuid.UUID, req Requisition, policy ScoringPolicy) (*CandidateRecord, FitVerdict, string, error) {
	doc, err := s.docRepo.FindByID(documentID)
	if err != nil {
		return nil, FitVerdict{}, "", fmt.Errorf("resume document not found: %w", err)
	}

	log.Println("📄 Parsing resume...")
	resumeText, err := s.docParser.ExtractText(doc.FilePath)
	if err != nil {
		return nil, FitVerdict{}, "", fmt.Errorf("failed to parse resume: %w", err)
	}

	log.Println("🤖 Extracting candidate fields with LLM...")
	record, verdict, err := s.Evaluate(ctx, resumeText, req, policy)
	if err != nil {
		return nil, FitVerdict{}, "", err
	}

	return record, verdict, resumeText, nil
}

// screenSubmission re-evaluates a stored submission row without any model
// call: the structured fields were captured at submission time.
func (s *screenerService) screenSubmission(submissionID uuid.UUID, req Requisition, policy ScoringPolicy) (*CandidateRecord, FitVerdict, error) {
	submission, err := s.submissionRepo.FindByID(submissionID)
	if err != nil {
		return nil, FitVerdict{}, fmt.Errorf("submission not found: %w", err)
	}

	record := &CandidateRecord{
		Name:            submission.Name,
		Email:           submission.Email,
		Skills:          SplitSkills(submission.Skills),
		ExperienceYears: submission.ExperienceYears,
	}

	verdict, err := Score(record, req, policy)
	if err != nil {
		return nil, FitVerdict{}, err
	}

	return record, verdict, nil
}

func (s *screenerService) indexCandidate(ctx context.Context, record *CandidateRecord, verdict FitVerdict, resumeText string) error {
	if record.Email == EmailNotFound {
		return fmt.Errorf("candidate has no email to index under")
	}

	// Drop stale chunks from a previous screening of the same candidate.
	if err := s.candidateIndex.DeleteCandidate(ctx, record.Email); err != nil {
		log.Printf("⚠️  Failed to clear old index entries for %s: %v\n", record.Email, err)
	}

	profile := CandidateProfile{
		Email:           record.Email,
		Name:            record.Name,
		Skills:          record.SkillsDisplay(),
		ExperienceYears: record.ExperienceYears,
		FitScore:        verdict.Score,
	}

	chunks := s.chunker.ChunkText(resumeText, 1000, 100)
	for _, chunk := range chunks {
		embedding, err := s.geminiService.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed resume chunk: %w", err)
		}

		if err := s.candidateIndex.IndexCandidateChunk(ctx, profile, chunk, embedding); err != nil {
			return err
		}
	}

	return nil
}

// SplitSkills parses the comma-joined storage form back into a skill list.
func SplitSkills(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}

	parts := strings.Split(joined, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
