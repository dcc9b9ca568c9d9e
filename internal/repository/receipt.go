package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/splithouse/receipts-engine/gen/ent"
	entreceipt "github.com/splithouse/receipts-engine/gen/ent/receipt"
	entreceiptitem "github.com/splithouse/receipts-engine/gen/ent/receiptitem"
	"github.com/splithouse/receipts-engine/internal/entity"
	"github.com/splithouse/receipts-engine/internal/parser"
)

type ReceiptRepository interface {
	// SaveParsed persists a parser result and its items in one transaction.
	SaveParsed(ctx context.Context, householdID uuid.UUID, parsed *parser.Receipt) (*entity.Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID, from, to *time.Time) ([]*entity.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type receiptRepository struct {
	entc   *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(entc *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{entc: entc, logger: logger}
}

func (r *receiptRepository) SaveParsed(ctx context.Context, householdID uuid.UUID, parsed *parser.Receipt) (*entity.Receipt, error) {
	tx, err := r.entc.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	create := tx.Receipt.Create().
		SetHouseholdID(householdID).
		SetCalculatedTotal(parsed.CalculatedTotal).
		SetTotalMatches(parsed.Verification.Status == parser.VerifyMatch).
		SetVerification(string(parsed.Verification.Status))
	if parsed.MerchantName != "" {
		create.SetMerchantName(parsed.MerchantName)
	}
	if parsed.ReceiptDate != nil {
		create.SetReceiptDate(*parsed.ReceiptDate)
	}
	if parsed.TotalAmount != nil {
		create.SetTotalAmount(*parsed.TotalAmount)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create receipt", "household_id", householdID, "error", err)
		return nil, err
	}

	itemRows := make([]*ent.ReceiptItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		ic := tx.ReceiptItem.Create().
			SetReceiptID(row.ID).
			SetName(it.Name).
			SetQuantity(it.Quantity).
			SetTotalPrice(it.TotalPrice).
			SetLineNumber(it.LineNumber).
			SetConfidence(it.Confidence)
		if it.UnitPrice != nil {
			ic.SetUnitPrice(*it.UnitPrice)
		}
		var saved *ent.ReceiptItem
		saved, err = ic.Save(ctx)
		if err != nil {
			r.logger.Error("failed to create receipt item", "receipt_id", row.ID, "name", it.Name, "error", err)
			return nil, err
		}
		itemRows = append(itemRows, saved)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	out := receiptToEntity(row)
	out.Items = make([]entity.ReceiptItem, 0, len(itemRows))
	for _, ir := range itemRows {
		out.Items = append(out.Items, receiptItemToEntity(ir))
	}
	return out, nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	row, err := r.entc.Receipt.Query().
		Where(entreceipt.IDEQ(id)).
		WithItems(func(q *ent.ReceiptItemQuery) {
			q.Order(ent.Asc(entreceiptitem.FieldLineNumber))
		}).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	out := receiptToEntity(row)
	out.Items = make([]entity.ReceiptItem, 0, len(row.Edges.Items))
	for _, ir := range row.Edges.Items {
		out.Items = append(out.Items, receiptItemToEntity(ir))
	}
	return out, nil
}

func (r *receiptRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID, from, to *time.Time) ([]*entity.Receipt, error) {
	q := r.entc.Receipt.Query().
		Where(entreceipt.HouseholdIDEQ(householdID))
	if from != nil {
		q = q.Where(entreceipt.ReceiptDateGTE(*from))
	}
	if to != nil {
		q = q.Where(entreceipt.ReceiptDateLTE(*to))
	}
	rows, err := q.
		WithItems(func(iq *ent.ReceiptItemQuery) {
			iq.Order(ent.Asc(entreceiptitem.FieldLineNumber))
		}).
		Order(ent.Desc(entreceipt.FieldReceiptDate), ent.Desc(entreceipt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Receipt, 0, len(rows))
	for _, row := range rows {
		e := receiptToEntity(row)
		e.Items = make([]entity.ReceiptItem, 0, len(row.Edges.Items))
		for _, ir := range row.Edges.Items {
			e.Items = append(e.Items, receiptItemToEntity(ir))
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.entc.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ReceiptItem.Delete().
		Where(entreceiptitem.ReceiptIDEQ(id)).
		Exec(ctx); err != nil {
		return err
	}
	if err = tx.Receipt.DeleteOneID(id).Exec(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

func receiptToEntity(row *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:              row.ID,
		HouseholdID:     row.HouseholdID,
		MerchantName:    row.MerchantName,
		ReceiptDate:     row.ReceiptDate,
		TotalAmount:     row.TotalAmount,
		CalculatedTotal: row.CalculatedTotal,
		TotalMatches:    row.TotalMatches,
		Verification:    row.Verification,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func receiptItemToEntity(row *ent.ReceiptItem) entity.ReceiptItem {
	return entity.ReceiptItem{
		ID:         row.ID,
		ReceiptID:  row.ReceiptID,
		Name:       row.Name,
		Quantity:   row.Quantity,
		UnitPrice:  row.UnitPrice,
		TotalPrice: row.TotalPrice,
		LineNumber: row.LineNumber,
		Confidence: row.Confidence,
	}
}
