package server

import (
	"context"
	"log/slog"
	"strings"

	receiptspb "github.com/splithouse/receipts-engine/gen/proto/receipts/v1"
	"github.com/splithouse/receipts-engine/internal/common"
	"github.com/splithouse/receipts-engine/internal/repository"
	"github.com/splithouse/receipts-engine/internal/utils"
)

type HouseholdServer struct {
	receiptspb.UnimplementedHouseholdsServiceServer
	repo   repository.HouseholdRepository
	logger *slog.Logger
}

func NewHouseholdServer(repo repository.HouseholdRepository, logger *slog.Logger) *HouseholdServer {
	return &HouseholdServer{
		repo:   repo,
		logger: logger,
	}
}

// CreateHousehold creates a new household.
func (s *HouseholdServer) CreateHousehold(ctx context.Context, req *receiptspb.CreateHouseholdRequest) (*receiptspb.CreateHouseholdResponse, error) {
	name := strings.TrimSpace(req.GetName())
	currency := strings.TrimSpace(req.GetCurrency())
	if currency == "" {
		currency = "USD"
	}

	v := common.NewValidator().
		Field("name", name, common.Required).
		Field("currency", currency, common.CurrencyCode)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	h, err := s.repo.Create(ctx, name, currency)
	if err != nil {
		s.logger.Error("create household failed", "name", name, "error", err)
		return nil, common.InternalError("create household failed")
	}

	return &receiptspb.CreateHouseholdResponse{
		Household: utils.ToPBHousehold(h),
	}, nil
}

// ListHouseholds lists all households.
func (s *HouseholdServer) ListHouseholds(ctx context.Context, _ *receiptspb.ListHouseholdsRequest) (*receiptspb.ListHouseholdsResponse, error) {
	hs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list households failed", "error", err)
		return nil, common.InternalError("list households failed")
	}
	out := make([]*receiptspb.Household, 0, len(hs))
	for _, h := range hs {
		out = append(out, utils.ToPBHousehold(h))
	}
	return &receiptspb.ListHouseholdsResponse{Households: out}, nil
}
