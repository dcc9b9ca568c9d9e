package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt represents a parsed receipt for data transfer between layers.
type Receipt struct {
	ID              uuid.UUID     `json:"id"`
	HouseholdID     uuid.UUID     `json:"household_id"`
	MerchantName    string        `json:"merchant_name,omitempty"`
	ReceiptDate     *time.Time    `json:"receipt_date,omitempty"`
	TotalAmount     *float64      `json:"total_amount,omitempty"`
	CalculatedTotal float64       `json:"calculated_total"`
	TotalMatches    bool          `json:"total_matches"`
	Verification    string        `json:"verification"`
	Items           []ReceiptItem `json:"items,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ReceiptItem is one deduplicated line item of a parsed receipt.
type ReceiptItem struct {
	ID         uuid.UUID `json:"id"`
	ReceiptID  uuid.UUID `json:"receipt_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  *float64  `json:"unit_price,omitempty"`
	TotalPrice float64   `json:"total_price"`
	LineNumber int       `json:"line_number"`
	Confidence float64   `json:"confidence"`
}
