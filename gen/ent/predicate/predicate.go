// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Household is the predicate function for household builders.
type Household func(*sql.Selector)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// ReceiptItem is the predicate function for receiptitem builders.
type ReceiptItem func(*sql.Selector)
