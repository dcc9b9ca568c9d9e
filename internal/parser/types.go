package parser

import (
	"math"
	"time"
)

// Point is a single vertex of a text block's bounding polygon.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextBlock is one recognized line of OCR output. Blocks are expected to be
// index-aligned with the non-empty line sequence of OCRResult.Text; when that
// alignment breaks, confidence lookups fall back to a default.
type TextBlock struct {
	Text            string  `json:"text"`
	Confidence      float64 `json:"confidence"` // 0..100
	LineNumber      int     `json:"line_number"`
	BoundingPolygon []Point `json:"bounding_polygon,omitempty"`
}

// OCRResult is the input contract from the OCR acquisition step.
type OCRResult struct {
	Success    bool        `json:"success"`
	Text       string      `json:"text"`
	TextBlocks []TextBlock `json:"text_blocks,omitempty"`
}

// Item is a single purchasable line item extracted from a receipt.
type Item struct {
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	UnitPrice  *float64 `json:"unit_price,omitempty"`
	TotalPrice float64  `json:"total_price"`
	LineNumber int      `json:"line_number"`
	Confidence float64  `json:"confidence"` // 0..1
}

// Receipt is the structured result of one parse invocation. All fields may be
// empty for a failed or empty OCR result; downstream consumers must tolerate
// that.
type Receipt struct {
	MerchantName    string       `json:"merchant_name,omitempty"`
	ReceiptDate     *time.Time   `json:"receipt_date,omitempty"`
	TotalAmount     *float64     `json:"total_amount,omitempty"`
	Items           []Item       `json:"items"`
	CalculatedTotal float64      `json:"calculated_total"`
	Verification    Verification `json:"verification"`
}

// TotalDiscrepancy is calculated minus stated total, nil when the receipt
// never declared a total.
func (r *Receipt) TotalDiscrepancy() *float64 {
	if r.TotalAmount == nil {
		return nil
	}
	d := round2(r.CalculatedTotal - *r.TotalAmount)
	return &d
}

// TotalMatches reports whether the item sum agrees with the stated total
// within the match epsilon.
func (r *Receipt) TotalMatches(epsilon float64) bool {
	d := r.TotalDiscrepancy()
	return d != nil && math.Abs(*d) < epsilon
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// confidenceAt maps a line index to its OCR confidence on a 0..1 scale.
// Out-of-range indices degrade to the configured default rather than failing;
// the caller cannot always guarantee block/line alignment.
func confidenceAt(blocks []TextBlock, i int, fallback float64) float64 {
	if i < 0 || i >= len(blocks) {
		return fallback
	}
	return blocks[i].Confidence / 100
}
