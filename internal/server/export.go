package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/splithouse/receipts-engine/gen/proto/receipts/v1"
	"github.com/splithouse/receipts-engine/internal/common"
	"github.com/splithouse/receipts-engine/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportReceipts(ctx context.Context, req *v1.ExportReceiptsRequest) (*v1.ExportReceiptsResponse, error) {
	hid := strings.TrimSpace(req.GetHouseholdId())
	householdID, err := uuid.Parse(hid)
	if err != nil || hid == "" {
		return nil, common.InvalidArgumentError("household_id must be a UUID")
	}

	// Optional dates (YYYY-MM-DD):
	// - only from -> from..today (inclusive)
	// - only to   -> beginning..to (inclusive)
	// - none      -> all.
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportReceiptsXLSX(ctx, householdID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "household_id", hid, "err", err)
		return nil, common.InternalError("export failed")
	}

	return &v1.ExportReceiptsResponse{Xlsx: xlsx}, nil
}
