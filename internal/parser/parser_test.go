package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(text string) *Receipt {
	p := New(DefaultConfig(), nil)
	return p.Parse(OCRResult{Success: true, Text: text})
}

func TestParseFailedOCRShortCircuits(t *testing.T) {
	p := New(DefaultConfig(), nil)
	for _, res := range []OCRResult{
		{Success: false, Text: "1x Chicken Rice $5.00"},
		{Success: true, Text: ""},
		{Success: true, Text: "  \n\n  "},
	} {
		rec := p.Parse(res)
		require.NotNil(t, rec)
		assert.Empty(t, rec.MerchantName)
		assert.Nil(t, rec.ReceiptDate)
		assert.Nil(t, rec.TotalAmount)
		assert.Empty(t, rec.Items)
		assert.Equal(t, VerifyUnverified, rec.Verification.Status)
	}
}

func TestParseSingleItemReceipt(t *testing.T) {
	rec := parse("Store Name\n\n1x Chicken Rice $5.00\n\nTOTAL $5.00")

	assert.Equal(t, "Store Name", rec.MerchantName)
	require.NotNil(t, rec.TotalAmount)
	assert.InDelta(t, 5.00, *rec.TotalAmount, 1e-9)

	require.Len(t, rec.Items, 1)
	assert.Equal(t, "Chicken Rice", rec.Items[0].Name)
	assert.Equal(t, 1, rec.Items[0].Quantity)
	assert.InDelta(t, 5.00, rec.Items[0].TotalPrice, 1e-9)

	assert.InDelta(t, 5.00, rec.CalculatedTotal, 1e-9)
	assert.Equal(t, VerifyMatch, rec.Verification.Status)
	assert.True(t, rec.TotalMatches(DefaultConfig().MatchEpsilon))
}

func TestParseCommaDecimalSeparator(t *testing.T) {
	rec := parse("1x Coffee $3,50\n\nTOTAL $3,50")

	require.NotNil(t, rec.TotalAmount)
	assert.InDelta(t, 3.50, *rec.TotalAmount, 1e-9)
	require.Len(t, rec.Items, 1)
	assert.InDelta(t, 3.50, rec.Items[0].TotalPrice, 1e-9)
	assert.Equal(t, VerifyMatch, rec.Verification.Status)
}

func TestParseISODate(t *testing.T) {
	rec := parse("Store\nDATE: 2024-01-15\n1x Kopi $1.40\nTOTAL $1.40")
	require.NotNil(t, rec.ReceiptDate)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *rec.ReceiptDate)
}

func TestParseDeduplicatesRepeatedItems(t *testing.T) {
	rec := parse("Burger Joint\nOrder 7\n1 Burger $10.00\n1 Burger $10.00\nTOTAL $20.00\nCASH\nThank you\nCome again")

	require.Len(t, rec.Items, 1)
	assert.Equal(t, "Burger", rec.Items[0].Name)
	assert.Equal(t, 2, rec.Items[0].Quantity)
	assert.InDelta(t, 20.00, rec.Items[0].TotalPrice, 1e-9)
	assert.Equal(t, VerifyMatch, rec.Verification.Status)
}

func TestParseShortfallRaisesMissingItemsSignal(t *testing.T) {
	rec := parse("Kopi Corner\nReceipt\n1x Kaya Toast $4.00\n1x Kopi $5.00\nTOTAL $14.00\nThank you")

	require.NotNil(t, rec.TotalAmount)
	d := rec.TotalDiscrepancy()
	require.NotNil(t, d)
	assert.InDelta(t, -5.00, *d, 1e-9)
	assert.Equal(t, VerifyMissingItems, rec.Verification.Status)
	assert.NotEmpty(t, rec.Verification.DigitFixes, "digit advisor should propose an explanation")
}

func TestParseNoTotalStillExtractsItems(t *testing.T) {
	rec := parse("Cafe Uno\nOrder 12\n1 Burger $10.00\n1 Fries $4.00\nThank you\nCome again soon")

	assert.Nil(t, rec.TotalAmount)
	require.Len(t, rec.Items, 2)
	assert.Equal(t, VerifyUnverified, rec.Verification.Status)
	assert.Nil(t, rec.TotalDiscrepancy())
}

func TestParseDedupInvariant(t *testing.T) {
	rec := parse("Diner\nOrder 3\n1 Burger $10.00\n1 burger $10.00\n2 Fries $8.00\nTOTAL $28.00\nCASH\nBye")
	seen := map[string]bool{}
	for _, it := range rec.Items {
		key := strings.ToLower(strings.TrimSpace(it.Name))
		assert.False(t, seen[key], "duplicate normalized name %q", key)
		seen[key] = true
	}
}

func TestParsePriceBoundsInvariant(t *testing.T) {
	rec := parse("Shop\nOrder 4\n1x Gift Card $500.00\n1x Free Cookie $0.00\n1x Latte $5.50\nTOTAL $5.50\nCASH\nBye")
	for _, it := range rec.Items {
		assert.GreaterOrEqual(t, it.TotalPrice, 0.0)
		assert.LessOrEqual(t, it.TotalPrice, DefaultConfig().MaxItemPrice)
		if it.TotalPrice < DefaultConfig().MinItemPrice {
			assert.Zero(t, it.TotalPrice, "sub-minimum price only allowed for comped items")
		}
	}
}

func TestParseIdempotentOverExtractedNames(t *testing.T) {
	// Re-parsing the names of the already-extracted items (no prices
	// survive extraction into names) must not discover more items.
	rec := parse("Diner\nOrder 5\n1 Burger $10.00\n1 Fries $4.00\nTOTAL $14.00\nCASH\nBye")
	require.NotEmpty(t, rec.Items)

	var names []string
	for _, it := range rec.Items {
		names = append(names, it.Name)
	}
	again := parse(strings.Join(names, "\n"))
	assert.Empty(t, again.Items)
}

func TestParseConfidencePropagation(t *testing.T) {
	p := New(DefaultConfig(), nil)
	res := OCRResult{
		Success: true,
		Text:    "Cafe\n1x Kopi $1.40\nTOTAL $1.40",
		TextBlocks: []TextBlock{
			{Text: "Cafe", Confidence: 99, LineNumber: 0},
			{Text: "1x Kopi $1.40", Confidence: 80, LineNumber: 1},
			{Text: "TOTAL $1.40", Confidence: 95, LineNumber: 2},
		},
	}
	rec := p.Parse(res)
	require.Len(t, rec.Items, 1)
	assert.InDelta(t, 0.80, rec.Items[0].Confidence, 1e-9)
}

func TestParseMisalignedBlocksFallBack(t *testing.T) {
	p := New(DefaultConfig(), nil)
	res := OCRResult{
		Success:    true,
		Text:       "Cafe\n1x Kopi $1.40\nTOTAL $1.40",
		TextBlocks: []TextBlock{{Text: "Cafe", Confidence: 99, LineNumber: 0}},
	}
	rec := p.Parse(res)
	require.Len(t, rec.Items, 1)
	assert.InDelta(t, DefaultConfig().DefaultConfidence, rec.Items[0].Confidence, 1e-9)
}

func TestParseIsPureAcrossInvocations(t *testing.T) {
	p := New(DefaultConfig(), nil)
	text := "Diner\nOrder 6\n1 Burger $10.00\n1 Fries $4.00\nTOTAL $14.00\nCASH\nBye"
	a := p.Parse(OCRResult{Success: true, Text: text})
	b := p.Parse(OCRResult{Success: true, Text: text})
	assert.Equal(t, a, b)
}
