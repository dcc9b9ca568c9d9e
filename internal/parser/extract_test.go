package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyWindow(t *testing.T) {
	tests := []struct {
		n, start, end int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 1},
		{3, 0, 2},
		{5, 1, 3},
		{7, 1, 5},
		{10, 2, 7},
		{12, 3, 9},
		{20, 3, 15},
		{40, 3, 33},
		{100, 3, 93},
	}
	for _, tt := range tests {
		start, end := bodyWindow(tt.n)
		assert.Equal(t, tt.start, start, "n=%d", tt.n)
		assert.Equal(t, tt.end, end, "n=%d", tt.n)
		assert.GreaterOrEqual(t, end, start, "n=%d window must never invert", tt.n)
	}
}

func extract(t *testing.T, lines []string) []Item {
	t.Helper()
	p := New(DefaultConfig(), nil)
	return p.extractItems(lines, nil)
}

func TestExtractSingleLineItems(t *testing.T) {
	lines := []string{
		"Kopi Corner",
		"Receipt #123",
		"1x Chicken Rice $5.00",
		"2 Teh Tarik $2.80",
		"I Kaya Toast $2.20",
		"TOTAL $10.00",
		"CASH $10.00",
		"Thank you",
		"www.kopicorner.sg",
		"See you again",
	}
	items := extract(t, lines)
	require.Len(t, items, 3)

	assert.Equal(t, "Chicken Rice", items[0].Name)
	assert.Equal(t, 1, items[0].Quantity)
	assert.InDelta(t, 5.00, items[0].TotalPrice, 1e-9)
	assert.Equal(t, 2, items[0].LineNumber)

	assert.Equal(t, "Teh Tarik", items[1].Name)
	assert.Equal(t, 2, items[1].Quantity)
	assert.InDelta(t, 2.80, items[1].TotalPrice, 1e-9)
	require.NotNil(t, items[1].UnitPrice)
	assert.InDelta(t, 1.40, *items[1].UnitPrice, 1e-9)

	assert.Equal(t, "Kaya Toast", items[2].Name, "misread I treated as quantity 1")
	assert.Equal(t, 1, items[2].Quantity)
}

func TestExtractMultiLineItemWithTrailingPrice(t *testing.T) {
	lines := []string{
		"Big Bites Diner",
		"Receipt",
		"Table 4",
		"Cheeseburger Deluxe",
		"no pickles",
		"$12.50",
		"Garden Salad",
		"w/ dressing",
		"$6.80",
		"TOTAL $19.30",
		"CASH",
		"Thank you",
	}
	items := extract(t, lines)
	require.Len(t, items, 2)

	assert.Equal(t, "Cheeseburger Deluxe", items[0].Name)
	assert.InDelta(t, 12.50, items[0].TotalPrice, 1e-9)
	assert.Equal(t, 3, items[0].LineNumber)

	assert.InDelta(t, 6.80, items[1].TotalPrice, 1e-9)
}

func TestExtractModifierBufferJoinsName(t *testing.T) {
	// A provisional price-only line does not stop modifier collection; the
	// "w/"-prefixed continuation after it still joins the item name.
	lines := []string{
		"Diner",
		"Order 55",
		"Fish And Chips",
		"$14.90",
		"w/ tartar sauce",
		"TOTAL $14.90",
		"VISA",
		"Thanks",
		"Come again",
		"Bye",
		"Closed Mondays",
	}
	items := extract(t, lines)
	require.Len(t, items, 1)
	assert.Equal(t, "Fish And Chips w/ tartar sauce", items[0].Name)
	assert.InDelta(t, 14.90, items[0].TotalPrice, 1e-9)
}

func TestExtractPriceLineConsumedOnce(t *testing.T) {
	// The price line claimed by the first item must not be reused by a
	// later candidate.
	lines := []string{
		"Cafe",
		"Order 1",
		"Mushroom Soup",
		"$4.50",
		"Herb Bread",
		"$3.20",
		"TOTAL $7.70",
		"CASH",
		"Thanks",
		"Bye",
		"See you",
	}
	items := extract(t, lines)
	require.Len(t, items, 2)
	assert.Equal(t, "Mushroom Soup", items[0].Name)
	assert.InDelta(t, 4.50, items[0].TotalPrice, 1e-9)
	assert.Equal(t, "Herb Bread", items[1].Name)
	assert.InDelta(t, 3.20, items[1].TotalPrice, 1e-9)
}

func TestExtractQuantityLineTerminatesLookahead(t *testing.T) {
	// "1 Burger" starts the next item; "Mystery Dish" must not steal its
	// price even though a price appears within the search window.
	lines := []string{
		"Cafe",
		"Order 2",
		"Mystery Dish",
		"1 Burger $10.00",
		"TOTAL $10.00",
		"CASH",
		"Thanks",
		"Bye",
		"Again",
		"Closed",
		"Soon",
	}
	items := extract(t, lines)
	require.Len(t, items, 1)
	assert.Equal(t, "Burger", items[0].Name)
}

func TestExtractNameLineDoesNotClaimEmbeddedPrice(t *testing.T) {
	// "2x Flat White $8.40" lacks the space after the digit that marks a
	// quantity-led terminator, but its price is embedded in a full item
	// line, not a price-only line, so "House Roast" must not claim it.
	lines := []string{
		"House Roast",
		"2x Flat White $8.40",
		"TOTAL $8.40",
	}
	items := extract(t, lines)
	require.Len(t, items, 1)
	assert.Equal(t, "Flat White", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 8.40, items[0].TotalPrice, 1e-9)
	assert.Equal(t, 1, items[0].LineNumber)
}

func TestExtractRejectsCumulativeSubtotalPrice(t *testing.T) {
	// After 4.50 + 3.20 the bare "7.70" line sits within $0.11 of the
	// running sum: a cumulative subtotal, not a third item's price.
	lines := []string{
		"Cafe",
		"Receipt",
		"Order 3",
		"1x Soup $4.50",
		"1x Bread $3.20",
		"House Special",
		"- promo",
		"7.70",
		"CASH",
		"Thanks",
		"Bye",
		"Again",
	}
	items := extract(t, lines)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.NotEqual(t, "House Special", it.Name)
	}
}

func TestExtractTranslationLineSkipped(t *testing.T) {
	lines := []string{
		"Golden Wok",
		"Order 88",
		"1x Mapo Tofu $8.80",
		"+++ less spicy",
		"mild version",
		"1x Fried Rice $6.50",
		"TOTAL $15.30",
		"CASH",
		"Thanks",
		"Bye",
		"Again",
	}
	items := extract(t, lines)
	require.Len(t, items, 2)
	assert.Equal(t, "Mapo Tofu", items[0].Name)
	assert.Equal(t, "Fried Rice", items[1].Name)
}

func TestExtractZeroPriceCompedItem(t *testing.T) {
	lines := []string{
		"Cafe",
		"Order 9",
		"1x Birthday Dessert $0.00",
		"1x Latte $5.50",
		"TOTAL $5.50",
		"CASH",
		"Thanks",
		"Bye",
		"Again",
		"Closed",
	}
	items := extract(t, lines)
	require.Len(t, items, 2)
	assert.InDelta(t, 0.0, items[0].TotalPrice, 1e-9)
}

func TestExtractPriceBandEnforced(t *testing.T) {
	lines := []string{
		"Cafe",
		"Order 10",
		"1x Gift Card $500.00",
		"1x Sticker $0.05",
		"1x Latte $5.50",
		"TOTAL $505.55",
		"CASH",
		"Thanks",
		"Bye",
		"Again",
	}
	items := extract(t, lines)
	require.Len(t, items, 1)
	assert.Equal(t, "Latte", items[0].Name)
}

func TestExtractShortReceiptDoesNotPanic(t *testing.T) {
	for _, lines := range [][]string{
		{},
		{"A"},
		{"Cafe", "1x Kopi $1.40"},
		{"Cafe", "1x Kopi $1.40", "TOTAL $1.40"},
	} {
		assert.NotPanics(t, func() { extract(t, lines) }, "lines=%v", lines)
	}
}
