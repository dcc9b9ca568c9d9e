package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/splithouse/receipts-engine/constants"
	"github.com/splithouse/receipts-engine/internal/parser"
	"github.com/splithouse/receipts-engine/internal/repository"
)

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	ReviewConfidence float64 // default 0.50
}

// ParseStage drives one queued job through validate, parse, persist. It
// implements the queue's Runner interface.
type ParseStage struct {
	Logger       *slog.Logger
	Cfg          Config
	JobsRepo     repository.ParseJobRepository
	ReceiptsRepo repository.ReceiptRepository
	Parser       *parser.Parser

	schema map[string]any
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ParseJobRepository,
	recs repository.ReceiptRepository,
	p *parser.Parser,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReviewConfidence <= 0 {
		cfg.ReviewConfidence = 0.50
	}
	return &ParseStage{
		Logger:       logger,
		Cfg:          cfg,
		JobsRepo:     jobs,
		ReceiptsRepo: recs,
		Parser:       p,
		schema:       parser.BuildOCRResultJSONSchema(),
	}
}

// Run executes the parse stage for a queued job.
// Preconditions: job exists with a non-empty ocr_payload.
// Effects: inserts a receipts row with its items and finishes the job with
// item_count, confidence and needs_review set.
func (s *ParseStage) Run(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if job.Status != nil && *job.Status == string(constants.JobStatusParseOK) {
		s.Logger.Info("job already parsed, skipping", "job_id", jobID)
		return nil
	}
	if len(job.OCRPayload) == 0 {
		return s.fail(ctx, jobID, fmt.Errorf("job has no ocr payload"))
	}

	if err := s.JobsRepo.MarkRunning(ctx, jobID); err != nil {
		return fmt.Errorf("mark running: %w", err)
	}

	if err := parser.ValidateJSONAgainstSchema(s.schema, job.OCRPayload); err != nil {
		return s.fail(ctx, jobID, fmt.Errorf("invalid ocr payload: %w", err))
	}
	ocr, err := parser.DecodeOCRResult(job.OCRPayload)
	if err != nil {
		return s.fail(ctx, jobID, fmt.Errorf("decode ocr payload: %w", err))
	}

	parsed := s.Parser.Parse(ocr)
	s.Logger.Info("parse.ok",
		"job_id", jobID,
		"merchant", parsed.MerchantName,
		"items", len(parsed.Items),
		"verification", parsed.Verification.Status,
	)

	rec, err := s.ReceiptsRepo.SaveParsed(ctx, job.HouseholdID, parsed)
	if err != nil {
		return s.fail(ctx, jobID, fmt.Errorf("persist receipt: %w", err))
	}

	avg := averageConfidence(parsed)
	needsReview := avg < s.Cfg.ReviewConfidence ||
		parsed.Verification.Status == parser.VerifyMissingItems ||
		parsed.Verification.Status == parser.VerifyExtraItems

	if err := s.JobsRepo.FinishSuccess(ctx, jobID, rec.ID, len(parsed.Items), avg, needsReview); err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	return nil
}

func (s *ParseStage) fail(ctx context.Context, jobID uuid.UUID, cause error) error {
	if ferr := s.JobsRepo.FinishFailure(ctx, jobID, cause.Error()); ferr != nil {
		s.Logger.Error("failed to record job failure", "job_id", jobID, "error", ferr)
	}
	return cause
}

func averageConfidence(r *parser.Receipt) float64 {
	if len(r.Items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range r.Items {
		sum += it.Confidence
	}
	return sum / float64(len(r.Items))
}
