package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/splithouse/receipts-engine/constants"
	"github.com/splithouse/receipts-engine/gen/ent"
	entparsejob "github.com/splithouse/receipts-engine/gen/ent/parsejob"
	"github.com/splithouse/receipts-engine/internal/entity"
)

type ParseJobRepository interface {
	Create(ctx context.Context, householdID uuid.UUID, ocrPayload []byte) (*entity.ParseJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseJob, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	// FinishSuccess links the job to its receipt and records parse stats.
	FinishSuccess(ctx context.Context, id, receiptID uuid.UUID, itemCount int, confidence float64, needsReview bool) error
	FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error
	ListPending(ctx context.Context, limit int) ([]*entity.ParseJob, error)
}

type parseJobRepository struct {
	entc   *ent.Client
	logger *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, logger *slog.Logger) ParseJobRepository {
	return &parseJobRepository{entc: entc, logger: logger}
}

func (r *parseJobRepository) Create(ctx context.Context, householdID uuid.UUID, ocrPayload []byte) (*entity.ParseJob, error) {
	row, err := r.entc.ParseJob.Create().
		SetHouseholdID(householdID).
		SetStatus(string(constants.JobStatusQueued)).
		SetOcrPayload(json.RawMessage(ocrPayload)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create parse job", "household_id", householdID, "error", err)
		return nil, err
	}
	return parseJobToEntity(row), nil
}

func (r *parseJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseJob, error) {
	row, err := r.entc.ParseJob.Query().
		Where(entparsejob.IDEQ(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return parseJobToEntity(row), nil
}

func (r *parseJobRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	return r.entc.ParseJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusRunning)).
		SetStartedAt(time.Now()).
		Exec(ctx)
}

func (r *parseJobRepository) FinishSuccess(ctx context.Context, id, receiptID uuid.UUID, itemCount int, confidence float64, needsReview bool) error {
	return r.entc.ParseJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusParseOK)).
		SetReceiptID(receiptID).
		SetItemCount(itemCount).
		SetConfidence(confidence).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		ClearErrorMessage().
		Exec(ctx)
}

func (r *parseJobRepository) FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error {
	return r.entc.ParseJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(errMsg).
		SetFinishedAt(time.Now()).
		Exec(ctx)
}

func (r *parseJobRepository) ListPending(ctx context.Context, limit int) ([]*entity.ParseJob, error) {
	q := r.entc.ParseJob.Query().
		Where(entparsejob.StatusEQ(string(constants.JobStatusQueued))).
		Order(ent.Asc(entparsejob.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ParseJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, parseJobToEntity(row))
	}
	return out, nil
}

func parseJobToEntity(row *ent.ParseJob) *entity.ParseJob {
	needsReview := row.NeedsReview
	return &entity.ParseJob{
		ID:           row.ID,
		HouseholdID:  row.HouseholdID,
		ReceiptID:    row.ReceiptID,
		Status:       row.Status,
		ErrorMessage: row.ErrorMessage,
		OCRPayload:   []byte(row.OcrPayload),
		ItemCount:    row.ItemCount,
		Confidence:   row.Confidence,
		NeedsReview:  &needsReview,
		StartedAt:    row.StartedAt,
		FinishedAt:   row.FinishedAt,
	}
}
