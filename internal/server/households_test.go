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
)

type fakeHouseholdRepo struct {
	created []entity.Household
}

func (f *fakeHouseholdRepo) Create(_ context.Context, name, currency string) (*entity.Household, error) {
	h := entity.Household{
		ID:        uuid.New(),
		Name:      name,
		Currency:  currency,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.created = append(f.created, h)
	return &h, nil
}

func (f *fakeHouseholdRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Household, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, status.Error(codes.NotFound, "not found")
}

func (f *fakeHouseholdRepo) List(_ context.Context) ([]*entity.Household, error) {
	out := make([]*entity.Household, 0, len(f.created))
	for i := range f.created {
		out = append(out, &f.created[i])
	}
	return out, nil
}

func TestCreateHousehold(t *testing.T) {
	repo := &fakeHouseholdRepo{}
	s := NewHouseholdServer(repo, testLogger())

	resp, err := s.CreateHousehold(context.Background(), &receiptspb.CreateHouseholdRequest{
		Name: "Maple Street", Currency: "EUR",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maple Street", resp.GetHousehold().GetName())
	assert.Equal(t, "EUR", resp.GetHousehold().GetCurrency())
	require.Len(t, repo.created, 1)
}

func TestCreateHouseholdDefaultsCurrency(t *testing.T) {
	repo := &fakeHouseholdRepo{}
	s := NewHouseholdServer(repo, testLogger())

	resp, err := s.CreateHousehold(context.Background(), &receiptspb.CreateHouseholdRequest{Name: "Maple Street"})
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.GetHousehold().GetCurrency())
}

func TestCreateHouseholdValidation(t *testing.T) {
	repo := &fakeHouseholdRepo{}
	s := NewHouseholdServer(repo, testLogger())

	tests := []struct {
		name string
		req  *receiptspb.CreateHouseholdRequest
	}{
		{"missing name", &receiptspb.CreateHouseholdRequest{Currency: "USD"}},
		{"bad currency", &receiptspb.CreateHouseholdRequest{Name: "x", Currency: "usd"}},
		{"long currency", &receiptspb.CreateHouseholdRequest{Name: "x", Currency: "DOLLARS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateHousehold(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
	assert.Empty(t, repo.created)
}

func TestListHouseholds(t *testing.T) {
	repo := &fakeHouseholdRepo{}
	s := NewHouseholdServer(repo, testLogger())

	_, err := s.CreateHousehold(context.Background(), &receiptspb.CreateHouseholdRequest{Name: "A"})
	require.NoError(t, err)
	_, err = s.CreateHousehold(context.Background(), &receiptspb.CreateHouseholdRequest{Name: "B"})
	require.NoError(t, err)

	resp, err := s.ListHouseholds(context.Background(), &receiptspb.ListHouseholdsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.GetHouseholds(), 2)
}
