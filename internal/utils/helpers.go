package utils

import (
	"fmt"
	"time"

	receiptspb "github.com/splithouse/receipts-engine/gen/proto/receipts/v1"
	"github.com/splithouse/receipts-engine/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func moneyOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToPBHousehold(h *entity.Household) *receiptspb.Household {
	return &receiptspb.Household{
		Id:        h.ID.String(),
		Name:      h.Name,
		Currency:  h.Currency,
		CreatedAt: h.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: h.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBReceipt(r *entity.Receipt) *receiptspb.Receipt {
	date := ""
	if r.ReceiptDate != nil {
		date = r.ReceiptDate.Format("2006-01-02")
	}
	items := make([]*receiptspb.ReceiptItem, 0, len(r.Items))
	for i := range r.Items {
		items = append(items, ToPBReceiptItem(&r.Items[i]))
	}
	return &receiptspb.Receipt{
		Id:              r.ID.String(),
		HouseholdId:     r.HouseholdID.String(),
		MerchantName:    r.MerchantName,
		ReceiptDate:     date,
		TotalAmount:     moneyOrEmpty(r.TotalAmount),
		CalculatedTotal: fmt.Sprintf("%.2f", r.CalculatedTotal),
		TotalMatches:    r.TotalMatches,
		Verification:    r.Verification,
		Items:           items,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBReceiptItem(it *entity.ReceiptItem) *receiptspb.ReceiptItem {
	return &receiptspb.ReceiptItem{
		Id:         it.ID.String(),
		Name:       it.Name,
		Quantity:   int32(it.Quantity),
		UnitPrice:  moneyOrEmpty(it.UnitPrice),
		TotalPrice: fmt.Sprintf("%.2f", it.TotalPrice),
		LineNumber: int32(it.LineNumber),
		Confidence: it.Confidence,
	}
}

func ToPBParseJob(j *entity.ParseJob) *receiptspb.ParseJob {
	receiptID := ""
	if j.ReceiptID != nil {
		receiptID = j.ReceiptID.String()
	}
	finished := ""
	if j.FinishedAt != nil {
		finished = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	var itemCount int32
	if j.ItemCount != nil {
		itemCount = int32(*j.ItemCount)
	}
	var confidence float64
	if j.Confidence != nil {
		confidence = *j.Confidence
	}
	needsReview := false
	if j.NeedsReview != nil {
		needsReview = *j.NeedsReview
	}
	return &receiptspb.ParseJob{
		Id:           j.ID.String(),
		HouseholdId:  j.HouseholdID.String(),
		ReceiptId:    receiptID,
		Status:       strOrEmpty(j.Status),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		ItemCount:    itemCount,
		Confidence:   confidence,
		NeedsReview:  needsReview,
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:   finished,
	}
}
