// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldID, id))
}

// HouseholdID applies equality check predicate on the "household_id" field. It's identical to HouseholdIDEQ.
func HouseholdID(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldHouseholdID, v))
}

// MerchantName applies equality check predicate on the "merchant_name" field. It's identical to MerchantNameEQ.
func MerchantName(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldMerchantName, v))
}

// ReceiptDate applies equality check predicate on the "receipt_date" field. It's identical to ReceiptDateEQ.
func ReceiptDate(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldReceiptDate, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotalAmount, v))
}

// CalculatedTotal applies equality check predicate on the "calculated_total" field. It's identical to CalculatedTotalEQ.
func CalculatedTotal(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCalculatedTotal, v))
}

// TotalMatches applies equality check predicate on the "total_matches" field. It's identical to TotalMatchesEQ.
func TotalMatches(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotalMatches, v))
}

// Verification applies equality check predicate on the "verification" field. It's identical to VerificationEQ.
func Verification(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldVerification, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldUpdatedAt, v))
}

// HouseholdIDEQ applies the EQ predicate on the "household_id" field.
func HouseholdIDEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldHouseholdID, v))
}

// HouseholdIDNEQ applies the NEQ predicate on the "household_id" field.
func HouseholdIDNEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldHouseholdID, v))
}

// HouseholdIDIn applies the In predicate on the "household_id" field.
func HouseholdIDIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldHouseholdID, vs...))
}

// HouseholdIDNotIn applies the NotIn predicate on the "household_id" field.
func HouseholdIDNotIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldHouseholdID, vs...))
}

// MerchantNameEQ applies the EQ predicate on the "merchant_name" field.
func MerchantNameEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldMerchantName, v))
}

// MerchantNameNEQ applies the NEQ predicate on the "merchant_name" field.
func MerchantNameNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldMerchantName, v))
}

// MerchantNameIn applies the In predicate on the "merchant_name" field.
func MerchantNameIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldMerchantName, vs...))
}

// MerchantNameNotIn applies the NotIn predicate on the "merchant_name" field.
func MerchantNameNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldMerchantName, vs...))
}

// MerchantNameGT applies the GT predicate on the "merchant_name" field.
func MerchantNameGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldMerchantName, v))
}

// MerchantNameGTE applies the GTE predicate on the "merchant_name" field.
func MerchantNameGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldMerchantName, v))
}

// MerchantNameLT applies the LT predicate on the "merchant_name" field.
func MerchantNameLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldMerchantName, v))
}

// MerchantNameLTE applies the LTE predicate on the "merchant_name" field.
func MerchantNameLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldMerchantName, v))
}

// MerchantNameContains applies the Contains predicate on the "merchant_name" field.
func MerchantNameContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldMerchantName, v))
}

// MerchantNameHasPrefix applies the HasPrefix predicate on the "merchant_name" field.
func MerchantNameHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldMerchantName, v))
}

// MerchantNameHasSuffix applies the HasSuffix predicate on the "merchant_name" field.
func MerchantNameHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldMerchantName, v))
}

// MerchantNameIsNil applies the IsNil predicate on the "merchant_name" field.
func MerchantNameIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldMerchantName))
}

// MerchantNameNotNil applies the NotNil predicate on the "merchant_name" field.
func MerchantNameNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldMerchantName))
}

// MerchantNameEqualFold applies the EqualFold predicate on the "merchant_name" field.
func MerchantNameEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldMerchantName, v))
}

// MerchantNameContainsFold applies the ContainsFold predicate on the "merchant_name" field.
func MerchantNameContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldMerchantName, v))
}

// ReceiptDateEQ applies the EQ predicate on the "receipt_date" field.
func ReceiptDateEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldReceiptDate, v))
}

// ReceiptDateNEQ applies the NEQ predicate on the "receipt_date" field.
func ReceiptDateNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldReceiptDate, v))
}

// ReceiptDateIn applies the In predicate on the "receipt_date" field.
func ReceiptDateIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldReceiptDate, vs...))
}

// ReceiptDateNotIn applies the NotIn predicate on the "receipt_date" field.
func ReceiptDateNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldReceiptDate, vs...))
}

// ReceiptDateGT applies the GT predicate on the "receipt_date" field.
func ReceiptDateGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldReceiptDate, v))
}

// ReceiptDateGTE applies the GTE predicate on the "receipt_date" field.
func ReceiptDateGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldReceiptDate, v))
}

// ReceiptDateLT applies the LT predicate on the "receipt_date" field.
func ReceiptDateLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldReceiptDate, v))
}

// ReceiptDateLTE applies the LTE predicate on the "receipt_date" field.
func ReceiptDateLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldReceiptDate, v))
}

// ReceiptDateIsNil applies the IsNil predicate on the "receipt_date" field.
func ReceiptDateIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldReceiptDate))
}

// ReceiptDateNotNil applies the NotNil predicate on the "receipt_date" field.
func ReceiptDateNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldReceiptDate))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldTotalAmount))
}

// CalculatedTotalEQ applies the EQ predicate on the "calculated_total" field.
func CalculatedTotalEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCalculatedTotal, v))
}

// CalculatedTotalNEQ applies the NEQ predicate on the "calculated_total" field.
func CalculatedTotalNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCalculatedTotal, v))
}

// CalculatedTotalIn applies the In predicate on the "calculated_total" field.
func CalculatedTotalIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCalculatedTotal, vs...))
}

// CalculatedTotalNotIn applies the NotIn predicate on the "calculated_total" field.
func CalculatedTotalNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCalculatedTotal, vs...))
}

// CalculatedTotalGT applies the GT predicate on the "calculated_total" field.
func CalculatedTotalGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCalculatedTotal, v))
}

// CalculatedTotalGTE applies the GTE predicate on the "calculated_total" field.
func CalculatedTotalGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCalculatedTotal, v))
}

// CalculatedTotalLT applies the LT predicate on the "calculated_total" field.
func CalculatedTotalLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCalculatedTotal, v))
}

// CalculatedTotalLTE applies the LTE predicate on the "calculated_total" field.
func CalculatedTotalLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCalculatedTotal, v))
}

// TotalMatchesEQ applies the EQ predicate on the "total_matches" field.
func TotalMatchesEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotalMatches, v))
}

// TotalMatchesNEQ applies the NEQ predicate on the "total_matches" field.
func TotalMatchesNEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTotalMatches, v))
}

// VerificationEQ applies the EQ predicate on the "verification" field.
func VerificationEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldVerification, v))
}

// VerificationNEQ applies the NEQ predicate on the "verification" field.
func VerificationNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldVerification, v))
}

// VerificationIn applies the In predicate on the "verification" field.
func VerificationIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldVerification, vs...))
}

// VerificationNotIn applies the NotIn predicate on the "verification" field.
func VerificationNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldVerification, vs...))
}

// VerificationGT applies the GT predicate on the "verification" field.
func VerificationGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldVerification, v))
}

// VerificationGTE applies the GTE predicate on the "verification" field.
func VerificationGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldVerification, v))
}

// VerificationLT applies the LT predicate on the "verification" field.
func VerificationLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldVerification, v))
}

// VerificationLTE applies the LTE predicate on the "verification" field.
func VerificationLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldVerification, v))
}

// VerificationContains applies the Contains predicate on the "verification" field.
func VerificationContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldVerification, v))
}

// VerificationHasPrefix applies the HasPrefix predicate on the "verification" field.
func VerificationHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldVerification, v))
}

// VerificationHasSuffix applies the HasSuffix predicate on the "verification" field.
func VerificationHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldVerification, v))
}

// VerificationIsNil applies the IsNil predicate on the "verification" field.
func VerificationIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldVerification))
}

// VerificationNotNil applies the NotNil predicate on the "verification" field.
func VerificationNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldVerification))
}

// VerificationEqualFold applies the EqualFold predicate on the "verification" field.
func VerificationEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldVerification, v))
}

// VerificationContainsFold applies the ContainsFold predicate on the "verification" field.
func VerificationContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldVerification, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasHousehold applies the HasEdge predicate on the "household" edge.
func HasHousehold() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HouseholdTable, HouseholdColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHouseholdWith applies the HasEdge predicate on the "household" edge with a given conditions (other predicates).
func HasHouseholdWith(preds ...predicate.Household) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newHouseholdStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.ReceiptItem) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ParseJob) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.NotPredicates(p))
}
