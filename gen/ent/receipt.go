// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
)

// Receipt is the model entity for the Receipt schema.
type Receipt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// HouseholdID holds the value of the "household_id" field.
	HouseholdID uuid.UUID `json:"household_id,omitempty"`
	// MerchantName holds the value of the "merchant_name" field.
	MerchantName string `json:"merchant_name,omitempty"`
	// ReceiptDate holds the value of the "receipt_date" field.
	ReceiptDate *time.Time `json:"receipt_date,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *float64 `json:"total_amount,omitempty"`
	// CalculatedTotal holds the value of the "calculated_total" field.
	CalculatedTotal float64 `json:"calculated_total,omitempty"`
	// TotalMatches holds the value of the "total_matches" field.
	TotalMatches bool `json:"total_matches,omitempty"`
	// Verification holds the value of the "verification" field.
	Verification string `json:"verification,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptQuery when eager-loading is set.
	Edges        ReceiptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptEdges holds the relations/edges for other nodes in the graph.
type ReceiptEdges struct {
	// Household holds the value of the household edge.
	Household *Household `json:"household,omitempty"`
	// Items holds the value of the items edge.
	Items []*ReceiptItem `json:"items,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ParseJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// HouseholdOrErr returns the Household value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptEdges) HouseholdOrErr() (*Household, error) {
	if e.Household != nil {
		return e.Household, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: household.Label}
	}
	return nil, &NotLoadedError{edge: "household"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiptEdges) ItemsOrErr() ([]*ReceiptItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiptEdges) JobsOrErr() ([]*ParseJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Receipt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receipt.FieldTotalMatches:
			values[i] = new(sql.NullBool)
		case receipt.FieldTotalAmount, receipt.FieldCalculatedTotal:
			values[i] = new(sql.NullFloat64)
		case receipt.FieldMerchantName, receipt.FieldVerification:
			values[i] = new(sql.NullString)
		case receipt.FieldReceiptDate, receipt.FieldCreatedAt, receipt.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case receipt.FieldID, receipt.FieldHouseholdID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Receipt fields.
func (_m *Receipt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receipt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receipt.FieldHouseholdID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field household_id", values[i])
			} else if value != nil {
				_m.HouseholdID = *value
			}
		case receipt.FieldMerchantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_name", values[i])
			} else if value.Valid {
				_m.MerchantName = value.String
			}
		case receipt.FieldReceiptDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_date", values[i])
			} else if value.Valid {
				_m.ReceiptDate = new(time.Time)
				*_m.ReceiptDate = value.Time
			}
		case receipt.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case receipt.FieldCalculatedTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field calculated_total", values[i])
			} else if value.Valid {
				_m.CalculatedTotal = value.Float64
			}
		case receipt.FieldTotalMatches:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field total_matches", values[i])
			} else if value.Valid {
				_m.TotalMatches = value.Bool
			}
		case receipt.FieldVerification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification", values[i])
			} else if value.Valid {
				_m.Verification = value.String
			}
		case receipt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case receipt.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Receipt.
// This includes values selected through modifiers, order, etc.
func (_m *Receipt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHousehold queries the "household" edge of the Receipt entity.
func (_m *Receipt) QueryHousehold() *HouseholdQuery {
	return NewReceiptClient(_m.config).QueryHousehold(_m)
}

// QueryItems queries the "items" edge of the Receipt entity.
func (_m *Receipt) QueryItems() *ReceiptItemQuery {
	return NewReceiptClient(_m.config).QueryItems(_m)
}

// QueryJobs queries the "jobs" edge of the Receipt entity.
func (_m *Receipt) QueryJobs() *ParseJobQuery {
	return NewReceiptClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Receipt.
// Note that you need to call Receipt.Unwrap() before calling this method if this Receipt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Receipt) Update() *ReceiptUpdateOne {
	return NewReceiptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Receipt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Receipt) Unwrap() *Receipt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Receipt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Receipt) String() string {
	var builder strings.Builder
	builder.WriteString("Receipt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("household_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HouseholdID))
	builder.WriteString(", ")
	builder.WriteString("merchant_name=")
	builder.WriteString(_m.MerchantName)
	builder.WriteString(", ")
	if v := _m.ReceiptDate; v != nil {
		builder.WriteString("receipt_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("calculated_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.CalculatedTotal))
	builder.WriteString(", ")
	builder.WriteString("total_matches=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMatches))
	builder.WriteString(", ")
	builder.WriteString("verification=")
	builder.WriteString(_m.Verification)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Receipts is a parsable slice of Receipt.
type Receipts []*Receipt
