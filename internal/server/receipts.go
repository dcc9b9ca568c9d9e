package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	receiptspb "github.com/splithouse/receipts-engine/gen/proto/receipts/v1"
	"github.com/splithouse/receipts-engine/internal/common"
	"github.com/splithouse/receipts-engine/internal/repository"
	"github.com/splithouse/receipts-engine/internal/utils"
)

type ReceiptService struct {
	receiptspb.UnimplementedReceiptsServiceServer
	receiptRepo repository.ReceiptRepository
	logger      *slog.Logger
}

func NewReceiptService(receiptRepo repository.ReceiptRepository, logger *slog.Logger) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		logger:      logger,
	}
}

func (s *ReceiptService) GetReceipt(ctx context.Context, req *receiptspb.GetReceiptRequest) (*receiptspb.GetReceiptResponse, error) {
	id := strings.TrimSpace(req.GetReceiptId())
	v := common.NewValidator().Field("receipt_id", id, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	receiptID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "receipt_id must be a UUID")
	}
	rec, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "receipt not found")
	}
	return &receiptspb.GetReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func (s *ReceiptService) ListReceipts(ctx context.Context, req *receiptspb.ListReceiptsRequest) (*receiptspb.ListReceiptsResponse, error) {
	if strings.TrimSpace(req.GetHouseholdId()) == "" {
		s.logger.Error("list receipts request missing household_id")
		return nil, status.Error(codes.InvalidArgument, "household_id is required")
	}
	householdID, err := uuid.Parse(req.GetHouseholdId())
	if err != nil {
		s.logger.Error("invalid household_id format for list receipts", "household_id", req.GetHouseholdId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "household_id must be a UUID")
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	s.logger.Info("listing receipts", "household_id", householdID, "from_date", fromDate, "to_date", toDate)

	recs, err := s.receiptRepo.ListByHousehold(ctx, householdID, fromDate, toDate)
	if err != nil {
		s.logger.Error("list receipts failed", "household_id", householdID, "error", err)
		return nil, status.Error(codes.Internal, "list receipts failed")
	}

	out := make([]*receiptspb.Receipt, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &receiptspb.ListReceiptsResponse{Receipts: out}, nil
}
