package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/splithouse/receipts-engine/internal/entity"
)

func f64ptr(v float64) *float64 { return &v }

func TestBuildWorkbookItemRows(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	recs := []*entity.Receipt{
		{
			MerchantName:    "CORNER DELI",
			ReceiptDate:     &date,
			CalculatedTotal: 14.50,
			Verification:    "MATCH",
			Items: []entity.ReceiptItem{
				{Name: "Burger", Quantity: 1, UnitPrice: f64ptr(10.00), TotalPrice: 10.00, Confidence: 0.9},
				{Name: "Fries", Quantity: 2, UnitPrice: f64ptr(2.25), TotalPrice: 4.50, Confidence: 0.8},
			},
		},
	}

	out, rows, err := buildWorkbook(recs)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Receipts", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Burger", got)

	got, err = f.GetCellValue("Receipts", "A3")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got)

	got, err = f.GetCellValue("Receipts", "D3")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestBuildWorkbookEmptyReceiptGetsSummaryRow(t *testing.T) {
	recs := []*entity.Receipt{
		{MerchantName: "", CalculatedTotal: 0, Verification: "UNVERIFIED"},
	}

	out, rows, err := buildWorkbook(recs)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Receipts", "B2")
	require.NoError(t, err)
	assert.Equal(t, "—", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "a", truncate("abc", 1))
}
