package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// CandidateIndexService maintains a vector index of screened candidate
// profiles so admins can search for candidates similar to a free-text query.
// Indexing is best-effort infrastructure: callers log and continue on failure.
type CandidateIndexService interface {
	InitCollection() error
	IndexCandidateChunk(ctx context.Context, profile CandidateProfile, chunk string, embedding []float32) error
	DeleteCandidate(ctx context.Context, email string) error
	SearchCandidates(ctx context.Context, queryEmbedding []float32, limit int) ([]CandidateMatch, error)
}

// CandidateProfile is the payload stored with every indexed chunk.
type CandidateProfile struct {
	Email           string
	Name            string
	Skills          string
	ExperienceYears float64
	FitScore        float64
}

// CandidateMatch is one similarity hit, deduplicated per candidate.
type CandidateMatch struct {
	Email           string
	Name            string
	Skills          string
	ExperienceYears float64
	Similarity      float32
}

type candidateIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewCandidateIndexService(urlStr, apiKey, collectionName string) (CandidateIndexService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port by default
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &candidateIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements CandidateIndexService.
func (q *candidateIndexService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Candidate collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// IndexCandidateChunk implements CandidateIndexService. One point per resume
// chunk; the candidate email in the payload ties the chunks together.
func (q *candidateIndexService) IndexCandidateChunk(ctx context.Context, profile CandidateProfile, chunk string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"email":            strings.ToLower(profile.Email),
			"name":             profile.Name,
			"skills":           profile.Skills,
			"experience_years": profile.ExperienceYears,
			"fit_score":        profile.FitScore,
			"text":             chunk,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// DeleteCandidate implements CandidateIndexService. Removes every chunk stored
// for the email, so re-screening a resubmitted resume never leaves stale
// points behind.
func (q *candidateIndexService) DeleteCandidate(ctx context.Context, email string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("email", strings.ToLower(email)),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete candidate points: %w", err)
	}

	return nil
}

// SearchCandidates implements CandidateIndexService. Results are deduplicated
// per candidate email, keeping the best-scoring chunk.
func (q *candidateIndexService) SearchCandidates(ctx context.Context, queryEmbedding []float32, limit int) ([]CandidateMatch, error) {
	if limit <= 0 {
		limit = 5
	}

	// Over-fetch so per-candidate dedupe still fills the requested limit.
	fetch := uint64(limit * 4)

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(fetch),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search candidates: %w", err)
	}

	seen := make(map[string]bool)
	var matches []CandidateMatch

	for _, point := range points {
		payload := point.Payload

		match := CandidateMatch{Similarity: point.Score}
		match.Email = payloadString(payload, "email")
		match.Name = payloadString(payload, "name")
		match.Skills = payloadString(payload, "skills")
		match.ExperienceYears = payloadFloat(payload, "experience_years")

		if match.Email == "" || seen[match.Email] {
			continue
		}
		seen[match.Email] = true

		matches = append(matches, match)
		if len(matches) >= limit {
			break
		}
	}

	return matches, nil
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	if value, ok := payload[key]; ok {
		if v, ok := value.GetKind().(*qdrant.Value_StringValue); ok {
			return v.StringValue
		}
	}
	return ""
}

func payloadFloat(payload map[string]*qdrant.Value, key string) float64 {
	if value, ok := payload[key]; ok {
		if v, ok := value.GetKind().(*qdrant.Value_DoubleValue); ok {
			return v.DoubleValue
		}
	}
	return 0
}
