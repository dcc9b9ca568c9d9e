// Code generated by ent, DO NOT EDIT.

package parsejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldID, id))
}

// HouseholdID applies equality check predicate on the "household_id" field. It's identical to HouseholdIDEQ.
func HouseholdID(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldHouseholdID, v))
}

// ReceiptID applies equality check predicate on the "receipt_id" field. It's identical to ReceiptIDEQ.
func ReceiptID(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldReceiptID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldItemCount, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldNeedsReview, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldOcrText, v))
}

// HouseholdIDEQ applies the EQ predicate on the "household_id" field.
func HouseholdIDEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldHouseholdID, v))
}

// HouseholdIDNEQ applies the NEQ predicate on the "household_id" field.
func HouseholdIDNEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldHouseholdID, v))
}

// HouseholdIDIn applies the In predicate on the "household_id" field.
func HouseholdIDIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldHouseholdID, vs...))
}

// HouseholdIDNotIn applies the NotIn predicate on the "household_id" field.
func HouseholdIDNotIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldHouseholdID, vs...))
}

// ReceiptIDEQ applies the EQ predicate on the "receipt_id" field.
func ReceiptIDEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldReceiptID, v))
}

// ReceiptIDNEQ applies the NEQ predicate on the "receipt_id" field.
func ReceiptIDNEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldReceiptID, v))
}

// ReceiptIDIn applies the In predicate on the "receipt_id" field.
func ReceiptIDIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldReceiptID, vs...))
}

// ReceiptIDNotIn applies the NotIn predicate on the "receipt_id" field.
func ReceiptIDNotIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldReceiptID, vs...))
}

// ReceiptIDIsNil applies the IsNil predicate on the "receipt_id" field.
func ReceiptIDIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldReceiptID))
}

// ReceiptIDNotNil applies the NotNil predicate on the "receipt_id" field.
func ReceiptIDNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldReceiptID))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// OcrPayloadIsNil applies the IsNil predicate on the "ocr_payload" field.
func OcrPayloadIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldOcrPayload))
}

// OcrPayloadNotNil applies the NotNil predicate on the "ocr_payload" field.
func OcrPayloadNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldOcrPayload))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldItemCount, v))
}

// ItemCountIsNil applies the IsNil predicate on the "item_count" field.
func ItemCountIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldItemCount))
}

// ItemCountNotNil applies the NotNil predicate on the "item_count" field.
func ItemCountNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldItemCount))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldConfidence))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldNeedsReview, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldOcrText, v))
}

// HasHousehold applies the HasEdge predicate on the "household" edge.
func HasHousehold() predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HouseholdTable, HouseholdColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHouseholdWith applies the HasEdge predicate on the "household" edge with a given conditions (other predicates).
func HasHouseholdWith(preds ...predicate.Household) predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := newHouseholdStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReceipt applies the HasEdge predicate on the "receipt" edge.
func HasReceipt() predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReceiptTable, ReceiptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceiptWith applies the HasEdge predicate on the "receipt" edge with a given conditions (other predicates).
func HasReceiptWith(preds ...predicate.Receipt) predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := newReceiptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.NotPredicates(p))
}
