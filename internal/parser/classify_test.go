package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSubItemLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"  indented detail", true},
		{"\ttabbed detail", true},
		{"- no onions", true},
		{"+ add cheese", true},
		{"• side salad", true},
		{"* crispy", true},
		{"> spicy", true},
		{"(2) refills", true},
		{"no pickles", true},
		{"extra cheese", true},
		{"without ice", true},
		{"con queso", true},
		{"sin cebolla", true},
		{"Chicken Rice", false},
		{"1x Coffee $3.50", false},
		{"TOTAL $5.00", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isSubItemLine(tt.line), "line=%q", tt.line)
	}
}

func TestIsHeaderFooterLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"QTY ITEM PRICE", true},
		{"Qty", true},
		{"DESCRIPTION AMOUNT", true},
		{"------------------", true},
		{"==================", true},
		{"Delivery Fee", true},
		{"Small Order Fee", true},
		{"VISA ****1234", true},
		{"CASH", true},
		{"CHANGE", true},
		{"Tel: 6222 1234", true},
		{"www.kopitiam.sg", true},
		{"GrabFood", true},
		{"Rate your order", true},
		{"*** WELCOME ***", true},
		{"Ya Kun Kaya Toast - Raffles City", true},
		{"Chicken Rice", false},
		{"2x Teh Tarik $2.80", false},
		{"Mee Goreng", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isHeaderFooterLine(tt.line), "line=%q", tt.line)
	}
}

func TestIsTotalLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"TOTAL $15.00", true},
		{"Subtotal 12.00", true},
		{"GST 9%", true},
		{"VAT", true},
		{"Service Charge 10%", true},
		{"Discount -2.00", true},
		{"Rounding 0.02", true},
		{"总计 45.00", true},
		{"小计", true},
		{"服务费", true},
		{"Chicken Rice", false},
		{"Iced Lemon Tea", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isTotalLine(tt.line), "line=%q", tt.line)
	}
}

func TestIsValidItemName(t *testing.T) {
	assert.True(t, isValidItemName("Chicken Rice"))
	assert.True(t, isValidItemName("咖啡"))
	assert.True(t, isValidItemName("Ox"))
	assert.False(t, isValidItemName("x"))
	assert.False(t, isValidItemName("×"))
	assert.False(t, isValidItemName("***"))
	assert.False(t, isValidItemName("12.50"))
	assert.False(t, isValidItemName(""))
}

func TestIsValidItemPrice(t *testing.T) {
	p := New(DefaultConfig(), nil)
	assert.True(t, p.isValidItemPrice(0), "comped items are allowed")
	assert.True(t, p.isValidItemPrice(0.11))
	assert.True(t, p.isValidItemPrice(5.50))
	assert.True(t, p.isValidItemPrice(200.00))
	assert.False(t, p.isValidItemPrice(0.05))
	assert.False(t, p.isValidItemPrice(0.10))
	assert.False(t, p.isValidItemPrice(200.01))
	assert.False(t, p.isValidItemPrice(1500))
}

func TestLooksLikeItemName(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Chicken Rice", true},
		{"Nasi Lemak Special", true},
		{"麻婆豆腐", true},
		{"12.50", false},
		{"42", false},
		{"(T12)", false},
		{"15/01/2024", false},
		{"12:45 PM", false},
		{"Monday, 15 Jan", false},
		{"Order #1234", false},
		{"Table 7", false},
		{"Rate your order", false},
		{"TOTAL", false},
		{"no pickles", false},
		{"ab", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, looksLikeItemName(tt.line), "line=%q", tt.line)
	}
}

func TestPriceLineShapes(t *testing.T) {
	assert.True(t, hasPriceAtEnd("Chicken Rice $5.00"))
	assert.True(t, hasPriceAtEnd("Kopi 1.40"))
	assert.False(t, hasPriceAtEnd("Chicken Rice"))

	assert.True(t, isPriceOnlyLine("$5.00"))
	assert.True(t, isPriceOnlyLine("12,50"))
	assert.True(t, isPriceOnlyLine("$ 8.90 F"))
	assert.False(t, isPriceOnlyLine("Chicken Rice $5.00"))
	assert.False(t, isPriceOnlyLine("no price here"))
}

func TestLeadingQuantity(t *testing.T) {
	tests := []struct {
		line     string
		qty      int
		rest     string
		explicit bool
	}{
		{"2x Teh Tarik", 2, "Teh Tarik", true},
		{"1 Burger", 1, "Burger", true},
		{"10 x Satay", 10, "Satay", true},
		{"I Kopi", 1, "Kopi", true},
		{"l Milo", 1, "Milo", true},
		{": Toast", 1, "Toast", true},
		{"Chicken Rice", 1, "Chicken Rice", false},
	}
	for _, tt := range tests {
		qty, rest, explicit := leadingQuantity(tt.line)
		assert.Equal(t, tt.qty, qty, "line=%q", tt.line)
		assert.Equal(t, tt.explicit, explicit, "line=%q", tt.line)
		if tt.explicit {
			assert.Equal(t, tt.rest, rest, "line=%q", tt.line)
		}
	}
}

func TestStartsWithQuantity(t *testing.T) {
	assert.True(t, startsWithQuantity("1 Burger"))
	assert.True(t, startsWithQuantity("I Kopi"))
	assert.True(t, startsWithQuantity(": Toast"))
	assert.False(t, startsWithQuantity("Burger"))
	assert.False(t, startsWithQuantity("12 Wings"), "two-digit run is not a bare quantity start")
}

func TestParseAmount(t *testing.T) {
	v, err := parseAmount("$3,50")
	assert.NoError(t, err)
	assert.InDelta(t, 3.50, v, 1e-9)

	v, err = parseAmount(" 12.80 ")
	assert.NoError(t, err)
	assert.InDelta(t, 12.80, v, 1e-9)

	_, err = parseAmount("abc")
	assert.Error(t, err)
}

func TestIsModifierLine(t *testing.T) {
	assert.True(t, isModifierLine("w/ dressing", false))
	assert.True(t, isModifierLine("no ice", false))
	assert.True(t, isModifierLine("large", true))
	assert.False(t, isModifierLine("$5.00", false))
	assert.False(t, isModifierLine("", false))
	assert.False(t, isModifierLine("Chicken Rice", false), "dish names do not continue another item")
}
