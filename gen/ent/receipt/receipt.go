// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receipt type in the database.
	Label = "receipt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHouseholdID holds the string denoting the household_id field in the database.
	FieldHouseholdID = "household_id"
	// FieldMerchantName holds the string denoting the merchant_name field in the database.
	FieldMerchantName = "merchant_name"
	// FieldReceiptDate holds the string denoting the receipt_date field in the database.
	FieldReceiptDate = "receipt_date"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldCalculatedTotal holds the string denoting the calculated_total field in the database.
	FieldCalculatedTotal = "calculated_total"
	// FieldTotalMatches holds the string denoting the total_matches field in the database.
	FieldTotalMatches = "total_matches"
	// FieldVerification holds the string denoting the verification field in the database.
	FieldVerification = "verification"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeHousehold holds the string denoting the household edge name in mutations.
	EdgeHousehold = "household"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the receipt in the database.
	Table = "receipts"
	// HouseholdTable is the table that holds the household relation/edge.
	HouseholdTable = "receipts"
	// HouseholdInverseTable is the table name for the Household entity.
	// It exists in this package in order to avoid circular dependency with the "household" package.
	HouseholdInverseTable = "households"
	// HouseholdColumn is the table column denoting the household relation/edge.
	HouseholdColumn = "household_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "receipt_items"
	// ItemsInverseTable is the table name for the ReceiptItem entity.
	// It exists in this package in order to avoid circular dependency with the "receiptitem" package.
	ItemsInverseTable = "receipt_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "receipt_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "parse_job"
	// JobsInverseTable is the table name for the ParseJob entity.
	// It exists in this package in order to avoid circular dependency with the "parsejob" package.
	JobsInverseTable = "parse_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "receipt_id"
)

// Columns holds all SQL columns for receipt fields.
var Columns = []string{
	FieldID,
	FieldHouseholdID,
	FieldMerchantName,
	FieldReceiptDate,
	FieldTotalAmount,
	FieldCalculatedTotal,
	FieldTotalMatches,
	FieldVerification,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalMatches holds the default value on creation for the "total_matches" field.
	DefaultTotalMatches bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Receipt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHouseholdID orders the results by the household_id field.
func ByHouseholdID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHouseholdID, opts...).ToFunc()
}

// ByMerchantName orders the results by the merchant_name field.
func ByMerchantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMerchantName, opts...).ToFunc()
}

// ByReceiptDate orders the results by the receipt_date field.
func ByReceiptDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiptDate, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByCalculatedTotal orders the results by the calculated_total field.
func ByCalculatedTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalculatedTotal, opts...).ToFunc()
}

// ByTotalMatches orders the results by the total_matches field.
func ByTotalMatches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMatches, opts...).ToFunc()
}

// ByVerification orders the results by the verification field.
func ByVerification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerification, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByHouseholdField orders the results by household field.
func ByHouseholdField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHouseholdStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newHouseholdStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HouseholdInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HouseholdTable, HouseholdColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
