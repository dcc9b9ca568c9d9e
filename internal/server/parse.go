package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	receiptspb "github.com/splithouse/receipts-engine/gen/proto/receipts/v1"
	"github.com/splithouse/receipts-engine/internal/async"
	"github.com/splithouse/receipts-engine/internal/common"
	"github.com/splithouse/receipts-engine/internal/parser"
	"github.com/splithouse/receipts-engine/internal/repository"
	"github.com/splithouse/receipts-engine/internal/utils"
)

type ParseServer struct {
	receiptspb.UnimplementedParseServiceServer
	jobsRepo repository.ParseJobRepository
	queue    async.Queue
	parser   *parser.Parser
	schema   map[string]any
	logger   *slog.Logger
}

func NewParseServer(jobs repository.ParseJobRepository, queue async.Queue, p *parser.Parser, logger *slog.Logger) *ParseServer {
	return &ParseServer{
		jobsRepo: jobs,
		queue:    queue,
		parser:   p,
		schema:   parser.BuildOCRResultJSONSchema(),
		logger:   logger,
	}
}

// SubmitParseJob validates the OCR payload, records a job and queues it.
func (s *ParseServer) SubmitParseJob(ctx context.Context, req *receiptspb.SubmitParseJobRequest) (*receiptspb.SubmitParseJobResponse, error) {
	hid := strings.TrimSpace(req.GetHouseholdId())
	householdID, err := uuid.Parse(hid)
	if err != nil || hid == "" {
		return nil, status.Error(codes.InvalidArgument, "household_id must be a UUID")
	}
	payload := req.GetOcrJson()
	if len(payload) == 0 {
		return nil, status.Error(codes.InvalidArgument, "ocr_json is required")
	}
	if err := parser.ValidateJSONAgainstSchema(s.schema, payload); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ocr_json invalid: %v", err)
	}

	job, err := s.jobsRepo.Create(ctx, householdID, payload)
	if err != nil {
		s.logger.Error("create parse job failed", "household_id", householdID, "error", err)
		return nil, status.Error(codes.Internal, "create parse job failed")
	}

	if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		s.logger.Error("enqueue parse job failed", "job_id", job.ID, "error", err)
		return nil, status.Error(codes.Internal, "enqueue parse job failed")
	}

	s.logger.Info("parse job submitted", "job_id", job.ID, "household_id", householdID)
	return &receiptspb.SubmitParseJobResponse{Job: utils.ToPBParseJob(job)}, nil
}

// GetParseJob reports job progress.
func (s *ParseServer) GetParseJob(ctx context.Context, req *receiptspb.GetParseJobRequest) (*receiptspb.GetParseJobResponse, error) {
	id := strings.TrimSpace(req.GetJobId())
	v := common.NewValidator().Field("job_id", id, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "parse job not found")
	}
	return &receiptspb.GetParseJobResponse{Job: utils.ToPBParseJob(job)}, nil
}

// ParseReceipt parses synchronously and returns the result without touching
// the database.
func (s *ParseServer) ParseReceipt(_ context.Context, req *receiptspb.ParseReceiptRequest) (*receiptspb.ParseReceiptResponse, error) {
	var ocr parser.OCRResult
	switch {
	case len(req.GetOcrJson()) > 0:
		if err := parser.ValidateJSONAgainstSchema(s.schema, req.GetOcrJson()); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "ocr_json invalid: %v", err)
		}
		var err error
		ocr, err = parser.DecodeOCRResult(req.GetOcrJson())
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "ocr_json invalid: %v", err)
		}
	case strings.TrimSpace(req.GetText()) != "":
		ocr = parser.OCRResult{Success: true, Text: req.GetText()}
	default:
		return nil, status.Error(codes.InvalidArgument, "text or ocr_json is required")
	}

	parsed := s.parser.Parse(ocr)
	return &receiptspb.ParseReceiptResponse{
		Receipt:    toPBParsedReceipt(parsed),
		DigitFixes: toPBDigitFixes(parsed.Verification.DigitFixes),
	}, nil
}

func toPBParsedReceipt(parsed *parser.Receipt) *receiptspb.Receipt {
	date := ""
	if parsed.ReceiptDate != nil {
		date = parsed.ReceiptDate.Format("2006-01-02")
	}
	total := ""
	if parsed.TotalAmount != nil {
		total = fmt.Sprintf("%.2f", *parsed.TotalAmount)
	}
	items := make([]*receiptspb.ReceiptItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		unit := ""
		if it.UnitPrice != nil {
			unit = fmt.Sprintf("%.2f", *it.UnitPrice)
		}
		items = append(items, &receiptspb.ReceiptItem{
			Name:       it.Name,
			Quantity:   int32(it.Quantity),
			UnitPrice:  unit,
			TotalPrice: fmt.Sprintf("%.2f", it.TotalPrice),
			LineNumber: int32(it.LineNumber),
			Confidence: it.Confidence,
		})
	}
	return &receiptspb.Receipt{
		MerchantName:    parsed.MerchantName,
		ReceiptDate:     date,
		TotalAmount:     total,
		CalculatedTotal: fmt.Sprintf("%.2f", parsed.CalculatedTotal),
		TotalMatches:    parsed.Verification.Status == parser.VerifyMatch,
		Verification:    string(parsed.Verification.Status),
		Items:           items,
	}
}

func toPBDigitFixes(fixes []parser.DigitFix) []*receiptspb.DigitFix {
	out := make([]*receiptspb.DigitFix, 0, len(fixes))
	for _, fx := range fixes {
		out = append(out, &receiptspb.DigitFix{
			ItemName:       fx.ItemName,
			OriginalPrice:  fmt.Sprintf("%.2f", fx.OriginalPrice),
			SuggestedPrice: fmt.Sprintf("%.2f", fx.CorrectedPrice),
		})
	}
	return out
}
