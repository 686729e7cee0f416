package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/config"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/repositories"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/services"
)

// Rebuilds the Qdrant candidate index from completed screenings, re-parsing
// each stored resume. Run after wiping the collection or changing the
// embedding model.
func main() {
	log.Println("🚀 Starting candidate reindex...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	screeningRepo := repositories.NewScreeningRepository(db)
	docRepo := repositories.NewDocumentRepository(db)

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	candidateIndex, err := services.NewCandidateIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := candidateIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	docParser := services.NewDocumentParserService()
	chunker := services.NewTextChunker()

	ctx := context.Background()

	screenings, err := screeningRepo.FindCompleted()
	if err != nil {
		log.Fatalf("❌ Failed to load completed screenings: %v", err)
	}

	log.Printf("📋 Found %d completed screenings\n", len(screenings))

	successCount := 0
	failCount := 0
	seen := make(map[string]bool)

	for i := range screenings {
		screening := &screenings[i]

		// Only resume-backed screenings carry text worth indexing.
		if screening.DocumentID == nil || screening.CandidateEmail == nil {
			continue
		}

		email := strings.ToLower(*screening.CandidateEmail)
		if email == "" || email == services.EmailNotFound || seen[email] {
			// Screenings are ordered newest first; older rows for the same
			// candidate are stale.
			continue
		}
		seen[email] = true

		log.Printf("\n📄 Reindexing candidate: %s", email)

		doc, err := docRepo.FindByID(*screening.DocumentID)
		if err != nil {
			log.Printf("   ⚠️  Resume document not found, skipping...")
			failCount++
			continue
		}

		log.Printf("   📖 Extracting text from %s...", doc.OriginalFileName)
		resumeText, err := docParser.ExtractText(doc.FilePath)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		if err := candidateIndex.DeleteCandidate(ctx, email); err != nil {
			log.Printf("   ⚠️  Failed to clear old index entries: %v", err)
		}

		profile := services.CandidateProfile{
			Email: email,
		}
		if screening.CandidateName != nil {
			profile.Name = *screening.CandidateName
		}
		if screening.CandidateSkills != nil {
			profile.Skills = *screening.CandidateSkills
		}
		if screening.CandidateExperience != nil {
			profile.ExperienceYears = *screening.CandidateExperience
		}
		if screening.FitScore != nil {
			profile.FitScore = *screening.FitScore
		}

		// Chunk, embed and store
		chunks := chunker.ChunkText(resumeText, 1000, 100)
		log.Printf("   ✂️  Created %d chunks", len(chunks))

		indexed := 0
		for j, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to generate embedding for chunk %d: %v", j+1, err)
				continue
			}

			if err := candidateIndex.IndexCandidateChunk(ctx, profile, chunk, embedding); err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", j+1, err)
				continue
			}
			indexed++
		}

		if indexed == 0 {
			log.Printf("   ❌ No chunks indexed for %s", email)
			failCount++
			continue
		}

		log.Printf("   ✅ Indexed %d/%d chunks", indexed, len(chunks))
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Reindex Summary:")
	log.Printf("   ✅ Successful: %d candidates", successCount)
	log.Printf("   ❌ Failed: %d candidates", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some candidates failed to reindex. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ Candidate index rebuilt successfully!")
}
