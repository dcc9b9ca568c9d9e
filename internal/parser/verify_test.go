package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifyReceipt(stated *float64, items ...Item) Verification {
	p := New(DefaultConfig(), nil)
	rec := &Receipt{TotalAmount: stated, Items: items}
	var sum float64
	for _, it := range items {
		sum += it.TotalPrice
	}
	rec.CalculatedTotal = round2(sum)
	return p.verify(rec)
}

func TestVerifyNoStatedTotal(t *testing.T) {
	v := verifyReceipt(nil, Item{Name: "Kopi", TotalPrice: 1.40})
	assert.Equal(t, VerifyUnverified, v.Status)
	assert.Nil(t, v.Discrepancy)
	assert.Empty(t, v.DigitFixes)
}

func TestVerifyMatch(t *testing.T) {
	v := verifyReceipt(f64(5.00), Item{Name: "Chicken Rice", TotalPrice: 5.00})
	assert.Equal(t, VerifyMatch, v.Status)
	require.NotNil(t, v.Discrepancy)
	assert.InDelta(t, 0, *v.Discrepancy, 1e-9)
}

func TestVerifyMinorDiscrepancy(t *testing.T) {
	v := verifyReceipt(f64(5.50), Item{Name: "Chicken Rice", TotalPrice: 5.00})
	assert.Equal(t, VerifyMinorDiscrepancy, v.Status)
	require.NotNil(t, v.Discrepancy)
	assert.InDelta(t, -0.50, *v.Discrepancy, 1e-9)
	assert.Empty(t, v.DigitFixes, "advisor only runs on major shortfalls")
}

func TestVerifyMissingItemsRunsAdvisor(t *testing.T) {
	// Items sum to 9.00 against a stated 14.00: a -5.00 shortfall. Reading
	// the Toast's leading 4 as a misread 9 explains it exactly.
	v := verifyReceipt(f64(14.00),
		Item{Name: "Kaya Toast", TotalPrice: 4.00, LineNumber: 2},
		Item{Name: "Kopi", TotalPrice: 5.00, LineNumber: 3},
	)
	assert.Equal(t, VerifyMissingItems, v.Status)
	require.NotNil(t, v.Discrepancy)
	assert.InDelta(t, -5.00, *v.Discrepancy, 1e-9)

	require.NotEmpty(t, v.DigitFixes)
	found := false
	for _, fix := range v.DigitFixes {
		if fix.ItemName == "Kaya Toast" && fix.SuggestedDigit == "9" {
			found = true
			assert.InDelta(t, 4.00, fix.OriginalPrice, 1e-9)
			assert.InDelta(t, 9.00, fix.CorrectedPrice, 1e-9)
			assert.Equal(t, 0, fix.Position)
			assert.Equal(t, "4", fix.OriginalDigit)
		}
	}
	assert.True(t, found, "expected 4->9 substitution on Kaya Toast")
}

func TestVerifyAdvisorPositionSkipsDecimalPoint(t *testing.T) {
	// A 1.40 price explained by the cents' 4 being a misread 1: the 4 is
	// the second digit, so position 1, even though the decimal point sits
	// between it and the units digit.
	p := New(DefaultConfig(), nil)
	fixes := p.suggestDigitFixes([]Item{{Name: "Kopi", TotalPrice: 1.40, LineNumber: 1}}, 0.30)
	require.Len(t, fixes, 1)
	assert.Equal(t, "4", fixes[0].OriginalDigit)
	assert.Equal(t, "1", fixes[0].SuggestedDigit)
	assert.Equal(t, 1, fixes[0].Position)
	assert.InDelta(t, 1.10, fixes[0].CorrectedPrice, 1e-9)
}

func TestVerifyExtraItems(t *testing.T) {
	v := verifyReceipt(f64(5.00),
		Item{Name: "Chicken Rice", TotalPrice: 5.00},
		Item{Name: "Phantom", TotalPrice: 3.00},
	)
	assert.Equal(t, VerifyExtraItems, v.Status)
	assert.Empty(t, v.DigitFixes)
}

func TestVerifyAdvisorNeverMutatesItems(t *testing.T) {
	items := []Item{{Name: "Kaya Toast", TotalPrice: 4.00}}
	_ = verifyReceipt(f64(14.00), items...)
	assert.InDelta(t, 4.00, items[0].TotalPrice, 1e-9)
}

func TestSuggestDigitFixesBounded(t *testing.T) {
	p := New(DefaultConfig(), nil)
	fixes := p.suggestDigitFixes([]Item{{Name: "Latte", TotalPrice: 5.50}}, 1000)
	assert.Empty(t, fixes, "no single-digit substitution can explain a huge discrepancy")
}
