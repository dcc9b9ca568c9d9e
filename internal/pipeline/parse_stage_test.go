package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splithouse/receipts-engine/internal/entity"
	"github.com/splithouse/receipts-engine/internal/parser"
)

type fakeJobsRepo struct {
	jobs     map[uuid.UUID]*entity.ParseJob
	running  []uuid.UUID
	finished map[uuid.UUID]finishRecord
	failed   map[uuid.UUID]string
}

type finishRecord struct {
	receiptID   uuid.UUID
	itemCount   int
	confidence  float64
	needsReview bool
}

func newFakeJobsRepo() *fakeJobsRepo {
	return &fakeJobsRepo{
		jobs:     map[uuid.UUID]*entity.ParseJob{},
		finished: map[uuid.UUID]finishRecord{},
		failed:   map[uuid.UUID]string{},
	}
}

func (f *fakeJobsRepo) Create(_ context.Context, householdID uuid.UUID, payload []byte) (*entity.ParseJob, error) {
	job := &entity.ParseJob{ID: uuid.New(), HouseholdID: householdID, OCRPayload: payload, StartedAt: time.Now()}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobsRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ParseJob, error) {
	return f.jobs[id], nil
}

func (f *fakeJobsRepo) MarkRunning(_ context.Context, id uuid.UUID) error {
	f.running = append(f.running, id)
	return nil
}

func (f *fakeJobsRepo) FinishSuccess(_ context.Context, id, receiptID uuid.UUID, itemCount int, confidence float64, needsReview bool) error {
	f.finished[id] = finishRecord{receiptID, itemCount, confidence, needsReview}
	return nil
}

func (f *fakeJobsRepo) FinishFailure(_ context.Context, id uuid.UUID, errMsg string) error {
	f.failed[id] = errMsg
	return nil
}

func (f *fakeJobsRepo) ListPending(_ context.Context, _ int) ([]*entity.ParseJob, error) {
	return nil, nil
}

type fakeReceiptsRepo struct {
	saved *parser.Receipt
	id    uuid.UUID
}

func (f *fakeReceiptsRepo) SaveParsed(_ context.Context, householdID uuid.UUID, parsed *parser.Receipt) (*entity.Receipt, error) {
	f.saved = parsed
	f.id = uuid.New()
	return &entity.Receipt{ID: f.id, HouseholdID: householdID}, nil
}

func (f *fakeReceiptsRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}

func (f *fakeReceiptsRepo) ListByHousehold(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}

func (f *fakeReceiptsRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func testStage(jobs *fakeJobsRepo, recs *fakeReceiptsRepo) *ParseStage {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewParseStage(logger, Config{}, jobs, recs, parser.New(parser.DefaultConfig(), logger))
}

func payload(t *testing.T, text string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{"success": true, "text": text})
	require.NoError(t, err)
	return b
}

func TestParseStageRunHappyPath(t *testing.T) {
	jobs := newFakeJobsRepo()
	recs := &fakeReceiptsRepo{}
	stage := testStage(jobs, recs)

	hh := uuid.New()
	job, err := jobs.Create(context.Background(), hh, payload(t, `CORNER DELI
123 Main St
2024-03-15
1 Burger $10.00
1 Fries $4.50
TOTAL $14.50
Thank you!`))
	require.NoError(t, err)

	require.NoError(t, stage.Run(context.Background(), job.ID))

	require.Contains(t, jobs.finished, job.ID)
	rec := jobs.finished[job.ID]
	assert.Equal(t, recs.id, rec.receiptID)
	assert.Equal(t, 2, rec.itemCount)
	assert.False(t, rec.needsReview)
	require.NotNil(t, recs.saved)
	assert.Equal(t, "CORNER DELI", recs.saved.MerchantName)
}

func TestParseStageRunRejectsBadPayload(t *testing.T) {
	jobs := newFakeJobsRepo()
	recs := &fakeReceiptsRepo{}
	stage := testStage(jobs, recs)

	job, err := jobs.Create(context.Background(), uuid.New(), []byte(`{"success": "yes"}`))
	require.NoError(t, err)

	require.Error(t, stage.Run(context.Background(), job.ID))
	assert.Contains(t, jobs.failed, job.ID)
	assert.Nil(t, recs.saved)
}

func TestParseStageRunEmptyPayloadFailsJob(t *testing.T) {
	jobs := newFakeJobsRepo()
	recs := &fakeReceiptsRepo{}
	stage := testStage(jobs, recs)

	job, err := jobs.Create(context.Background(), uuid.New(), nil)
	require.NoError(t, err)

	require.Error(t, stage.Run(context.Background(), job.ID))
	assert.Contains(t, jobs.failed, job.ID)
	assert.Empty(t, jobs.running)
}

func TestParseStageFlagsDiscrepancyForReview(t *testing.T) {
	jobs := newFakeJobsRepo()
	recs := &fakeReceiptsRepo{}
	stage := testStage(jobs, recs)

	job, err := jobs.Create(context.Background(), uuid.New(), payload(t, `CORNER DELI
123 Main St
2024-03-15
1 Burger $10.00
1 Fries $4.50
TOTAL $24.50
Thank you!`))
	require.NoError(t, err)

	require.NoError(t, stage.Run(context.Background(), job.ID))
	require.Contains(t, jobs.finished, job.ID)
	assert.True(t, jobs.finished[job.ID].needsReview)
}
