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
	"github.com/splithouse/receipts-engine/internal/entity"
	"github.com/splithouse/receipts-engine/internal/parser"
)

type fakeReceipts struct {
	byID    map[uuid.UUID]*entity.Receipt
	listErr error
}

func newFakeReceipts() *fakeReceipts {
	return &fakeReceipts{byID: map[uuid.UUID]*entity.Receipt{}}
}

func (f *fakeReceipts) SaveParsed(_ context.Context, householdID uuid.UUID, _ *parser.Receipt) (*entity.Receipt, error) {
	rec := &entity.Receipt{ID: uuid.New(), HouseholdID: householdID}
	f.byID[rec.ID] = rec
	return rec, nil
}

func (f *fakeReceipts) GetByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, ok := f.byID[id]
	if !ok {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return rec, nil
}

func (f *fakeReceipts) ListByHousehold(_ context.Context, householdID uuid.UUID, _, _ *time.Time) ([]*entity.Receipt, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.Receipt
	for _, rec := range f.byID {
		if rec.HouseholdID == householdID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeReceipts) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func TestGetReceiptRejectsMalformedID(t *testing.T) {
	s := NewReceiptService(newFakeReceipts(), testLogger())
	for _, id := range []string{"", "   ", "not-a-uuid"} {
		_, err := s.GetReceipt(context.Background(), &receiptspb.GetReceiptRequest{ReceiptId: id})
		require.Error(t, err, "receipt_id %q", id)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	}
}

func TestGetReceipt(t *testing.T) {
	repo := newFakeReceipts()
	rec, err := repo.SaveParsed(context.Background(), uuid.New(), nil)
	require.NoError(t, err)

	s := NewReceiptService(repo, testLogger())
	resp, err := s.GetReceipt(context.Background(), &receiptspb.GetReceiptRequest{ReceiptId: rec.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, rec.ID.String(), resp.GetReceipt().GetId())
}

func TestListReceiptsValidation(t *testing.T) {
	s := NewReceiptService(newFakeReceipts(), testLogger())

	_, err := s.ListReceipts(context.Background(), &receiptspb.ListReceiptsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ListReceipts(context.Background(), &receiptspb.ListReceiptsRequest{
		HouseholdId: uuid.NewString(),
		FromDate:    "15/03/2024",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
