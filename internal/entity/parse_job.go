package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParseJob tracks one OCR payload through the parse pipeline.
type ParseJob struct {
	ID           uuid.UUID  `json:"id"`
	HouseholdID  uuid.UUID  `json:"household_id"`
	ReceiptID    *uuid.UUID `json:"receipt_id,omitempty"`
	Status       *string    `json:"status,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	OCRPayload   []byte     `json:"ocr_payload,omitempty"`
	ItemCount    *int       `json:"item_count,omitempty"`
	Confidence   *float64   `json:"confidence,omitempty"`
	NeedsReview  *bool      `json:"needs_review,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}

// Household is the FK target parsed receipts hang off; member assignment
// itself happens elsewhere.
type Household struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
