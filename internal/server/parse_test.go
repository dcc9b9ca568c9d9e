package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	receiptspb "github.com/splithouse/receipts-engine/gen/proto/receipts/v1"
	"github.com/splithouse/receipts-engine/internal/async"
	"github.com/splithouse/receipts-engine/internal/entity"
	"github.com/splithouse/receipts-engine/internal/parser"
)

type fakeJobs struct {
	jobs map[uuid.UUID]*entity.ParseJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: map[uuid.UUID]*entity.ParseJob{}}
}

func (f *fakeJobs) Create(_ context.Context, householdID uuid.UUID, payload []byte) (*entity.ParseJob, error) {
	st := "QUEUED"
	job := &entity.ParseJob{ID: uuid.New(), HouseholdID: householdID, Status: &st, OCRPayload: payload, StartedAt: time.Now()}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.ParseJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return job, nil
}

func (f *fakeJobs) MarkRunning(context.Context, uuid.UUID) error { return nil }
func (f *fakeJobs) FinishSuccess(context.Context, uuid.UUID, uuid.UUID, int, float64, bool) error {
	return nil
}
func (f *fakeJobs) FinishFailure(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeJobs) ListPending(context.Context, int) ([]*entity.ParseJob, error) {
	return nil, nil
}

type fakeQueue struct {
	enqueued []async.Job
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	f.enqueued = append(f.enqueued, job)
	return nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

func newParseServer(jobs *fakeJobs, q *fakeQueue) *ParseServer {
	logger := testLogger()
	return NewParseServer(jobs, q, parser.New(parser.DefaultConfig(), logger), logger)
}

func TestSubmitParseJob(t *testing.T) {
	jobs := newFakeJobs()
	q := &fakeQueue{}
	s := newParseServer(jobs, q)

	resp, err := s.SubmitParseJob(context.Background(), &receiptspb.SubmitParseJobRequest{
		HouseholdId: uuid.NewString(),
		OcrJson:     []byte(`{"success": true, "text": "CORNER DELI\n1 Burger $10.00\nTOTAL $10.00"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "QUEUED", resp.GetJob().GetStatus())
	require.Len(t, q.enqueued, 1)
	assert.Equal(t, resp.GetJob().GetId(), q.enqueued[0].JobID.String())
}

func TestSubmitParseJobRejectsInvalidPayload(t *testing.T) {
	jobs := newFakeJobs()
	q := &fakeQueue{}
	s := newParseServer(jobs, q)

	tests := []struct {
		name string
		req  *receiptspb.SubmitParseJobRequest
	}{
		{"bad household id", &receiptspb.SubmitParseJobRequest{HouseholdId: "nope", OcrJson: []byte(`{"success": true, "text": "x"}`)}},
		{"empty payload", &receiptspb.SubmitParseJobRequest{HouseholdId: uuid.NewString()}},
		{"schema violation", &receiptspb.SubmitParseJobRequest{HouseholdId: uuid.NewString(), OcrJson: []byte(`{"success": "yes"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubmitParseJob(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
	assert.Empty(t, q.enqueued)
}

func TestGetParseJobRejectsMalformedID(t *testing.T) {
	s := newParseServer(newFakeJobs(), &fakeQueue{})
	for _, id := range []string{"", "   ", "not-a-uuid"} {
		_, err := s.GetParseJob(context.Background(), &receiptspb.GetParseJobRequest{JobId: id})
		require.Error(t, err, "job_id %q", id)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	}
}

func TestGetParseJobNotFound(t *testing.T) {
	s := newParseServer(newFakeJobs(), &fakeQueue{})
	_, err := s.GetParseJob(context.Background(), &receiptspb.GetParseJobRequest{JobId: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestParseReceiptFromText(t *testing.T) {
	s := newParseServer(newFakeJobs(), &fakeQueue{})

	resp, err := s.ParseReceipt(context.Background(), &receiptspb.ParseReceiptRequest{
		Text: "CORNER DELI\n123 Main St\n2024-03-15\n1 Burger $10.00\n1 Fries $4.50\nTOTAL $14.50\nThank you!",
	})
	require.NoError(t, err)

	rec := resp.GetReceipt()
	assert.Equal(t, "CORNER DELI", rec.GetMerchantName())
	assert.Equal(t, "2024-03-15", rec.GetReceiptDate())
	assert.Equal(t, "14.50", rec.GetTotalAmount())
	assert.Equal(t, "14.50", rec.GetCalculatedTotal())
	assert.True(t, rec.GetTotalMatches())
	assert.Len(t, rec.GetItems(), 2)
}

func TestParseReceiptRequiresInput(t *testing.T) {
	s := newParseServer(newFakeJobs(), &fakeQueue{})
	_, err := s.ParseReceipt(context.Background(), &receiptspb.ParseReceiptRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
