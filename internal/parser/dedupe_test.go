package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeMergesNormalizedNames(t *testing.T) {
	items := []Item{
		{Name: "Burger", Quantity: 1, TotalPrice: 10.00, LineNumber: 4, Confidence: 0.9},
		{Name: "Fries", Quantity: 1, TotalPrice: 4.00, LineNumber: 5, Confidence: 0.8},
		{Name: "burger ", Quantity: 1, TotalPrice: 10.00, LineNumber: 6, Confidence: 0.7},
	}
	out := dedupeItems(items)
	require.Len(t, out, 2)

	assert.Equal(t, "Burger", out[0].Name, "first occurrence keeps its casing")
	assert.Equal(t, 2, out[0].Quantity)
	assert.InDelta(t, 20.00, out[0].TotalPrice, 1e-9)
	require.NotNil(t, out[0].UnitPrice)
	assert.InDelta(t, 10.00, *out[0].UnitPrice, 1e-9)
	assert.InDelta(t, 0.8, out[0].Confidence, 1e-9, "confidence is averaged")
	assert.Equal(t, 4, out[0].LineNumber)

	assert.Equal(t, "Fries", out[1].Name)
}

func TestDedupeOrdersByLineNumber(t *testing.T) {
	items := []Item{
		{Name: "Tea", Quantity: 1, TotalPrice: 2.00, LineNumber: 9},
		{Name: "Coffee", Quantity: 1, TotalPrice: 3.00, LineNumber: 3},
		{Name: "tea", Quantity: 1, TotalPrice: 2.00, LineNumber: 12},
	}
	out := dedupeItems(items)
	require.Len(t, out, 2)
	assert.Equal(t, "Coffee", out[0].Name)
	assert.Equal(t, "Tea", out[1].Name)
	assert.Equal(t, 9, out[1].LineNumber, "earliest line number survives")
}

func TestDedupeZeroQuantityGuard(t *testing.T) {
	out := dedupeItems([]Item{{Name: "Voided", Quantity: 0, TotalPrice: 0}})
	require.Len(t, out, 1)
	assert.Nil(t, out[0].UnitPrice)
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, dedupeItems(nil))
	assert.NotNil(t, dedupeItems(nil))
}
