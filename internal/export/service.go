package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/splithouse/receipts-engine/internal/entity"
	"github.com/splithouse/receipts-engine/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	receiptsRepo repository.ReceiptRepository
	logger       *slog.Logger
}

func NewService(repo repository.ReceiptRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{receiptsRepo: repo, logger: logger}
}

// ExportReceiptsXLSX returns an XLSX workbook (as bytes) with one row per
// line item for the given household and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all receipts for household.
func (s *Service) ExportReceiptsXLSX(ctx context.Context, householdID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.receiptsRepo.ListByHousehold(ctx, householdID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}

	buf, rows, err := buildWorkbook(recs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"household_id", householdID.String(),
		"receipts", len(recs),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

func buildWorkbook(recs []*entity.Receipt) ([]byte, int, error) {
	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Merchant",
		"Item",
		"Qty",
		"Unit Price",
		"Line Total",
		"Confidence",
		"Verification",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		date := ""
		if r.ReceiptDate != nil {
			date = r.ReceiptDate.Format("2006-01-02")
		}
		merchant := r.MerchantName
		if merchant == "" {
			merchant = "—"
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if len(r.Items) == 0 {
			// Receipt with no recognized items still gets a summary row.
			write(1, date)
			write(2, merchant)
			write(3, "")
			write(6, r.CalculatedTotal)
			write(8, r.Verification)
			row++
			continue
		}

		for _, it := range r.Items {
			write(1, date)
			write(2, merchant)
			write(3, truncate(it.Name, 140))
			write(4, it.Quantity)
			if it.UnitPrice != nil {
				write(5, *it.UnitPrice)
			}
			write(6, it.TotalPrice)
			write(7, it.Confidence)
			write(8, r.Verification)
			row++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 26) // merchant
	_ = f.SetColWidth(sheet, "C", "C", 42) // item
	_ = f.SetColWidth(sheet, "D", "G", 12) // numbers
	_ = f.SetColWidth(sheet, "H", "H", 24) // verification

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), row - 2, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
