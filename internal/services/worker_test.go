package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/models"
	"github.com/VeerendraInfoshare/JobFit-AI-Resume-Matching-Tool/internal/repositories"
)

type fakeScreeningRepo struct{}

func (f *fakeScreeningRepo) Create(*models.Screening) error                  { return nil }
func (f *fakeScreeningRepo) FindByID(uuid.UUID) (*models.Screening, error)   { return nil, nil }
func (f *fakeScreeningRepo) FindByBatchID(uuid.UUID) ([]models.Screening, error) {
	return nil, nil
}
func (f *fakeScreeningRepo) UpdateStatus(uuid.UUID, models.ScreeningStatus) error { return nil }
func (f *fakeScreeningRepo) UpdateResult(uuid.UUID, *repositories.ScreeningUpdateData) error {
	return nil
}
func (f *fakeScreeningRepo) UpdateError(uuid.UUID, string) error            { return nil }
func (f *fakeScreeningRepo) FindPendingJobs(int) ([]models.Screening, error) { return nil, nil }
func (f *fakeScreeningRepo) FindCompleted() ([]models.Screening, error)      { return nil, nil }

type fakeScreener struct {
	processed chan uuid.UUID
}

func (f *fakeScreener) ProcessScreening(ctx context.Context, screeningID uuid.UUID) error {
	f.processed <- screeningID
	return nil
}

func (f *fakeScreener) Evaluate(ctx context.Context, resumeText string, req Requisition, policy ScoringPolicy) (*CandidateRecord, FitVerdict, error) {
	return &CandidateRecord{}, FitVerdict{}, nil
}

func TestWorkerProcessesEnqueuedJobs(t *testing.T) {
	screener := &fakeScreener{processed: make(chan uuid.UUID, 10)}
	w := NewWorker(&fakeScreeningRepo{}, screener, 2)

	w.Start(context.Background())
	defer w.Stop()

	jobID := uuid.New()
	w.EnqueueJob(jobID)

	select {
	case got := <-screener.processed:
		assert.Equal(t, jobID, got)
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed in time")
	}
}

func TestWorkerStopIsIdempotentPerJob(t *testing.T) {
	screener := &fakeScreener{processed: make(chan uuid.UUID, 10)}
	w := NewWorker(&fakeScreeningRepo{}, screener, 1)

	w.Start(context.Background())

	first := uuid.New()
	second := uuid.New()
	w.EnqueueJob(first)
	w.EnqueueJob(second)

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 2; i++ {
		select {
		case got := <-screener.processed:
			seen[got] = true
		case <-time.After(2 * time.Second):
			t.Fatal("jobs were not processed in time")
		}
	}

	assert.True(t, seen[first])
	assert.True(t, seen[second])

	w.Stop()
}
