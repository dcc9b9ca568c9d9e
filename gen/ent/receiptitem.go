// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
	"github.com/splithouse/receipts-engine/gen/ent/receiptitem"
)

// ReceiptItem is the model entity for the ReceiptItem schema.
type ReceiptItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReceiptID holds the value of the "receipt_id" field.
	ReceiptID uuid.UUID `json:"receipt_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice *float64 `json:"unit_price,omitempty"`
	// TotalPrice holds the value of the "total_price" field.
	TotalPrice float64 `json:"total_price,omitempty"`
	// LineNumber holds the value of the "line_number" field.
	LineNumber int `json:"line_number,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptItemQuery when eager-loading is set.
	Edges        ReceiptItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptItemEdges holds the relations/edges for other nodes in the graph.
type ReceiptItemEdges struct {
	// Receipt holds the value of the receipt edge.
	Receipt *Receipt `json:"receipt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptItemEdges) ReceiptOrErr() (*Receipt, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: receipt.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReceiptItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receiptitem.FieldUnitPrice, receiptitem.FieldTotalPrice, receiptitem.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case receiptitem.FieldQuantity, receiptitem.FieldLineNumber:
			values[i] = new(sql.NullInt64)
		case receiptitem.FieldName:
			values[i] = new(sql.NullString)
		case receiptitem.FieldID, receiptitem.FieldReceiptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReceiptItem fields.
func (_m *ReceiptItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receiptitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receiptitem.FieldReceiptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_id", values[i])
			} else if value != nil {
				_m.ReceiptID = *value
			}
		case receiptitem.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case receiptitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case receiptitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = new(float64)
				*_m.UnitPrice = value.Float64
			}
		case receiptitem.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = value.Float64
			}
		case receiptitem.FieldLineNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_number", values[i])
			} else if value.Valid {
				_m.LineNumber = int(value.Int64)
			}
		case receiptitem.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReceiptItem.
// This includes values selected through modifiers, order, etc.
func (_m *ReceiptItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReceipt queries the "receipt" edge of the ReceiptItem entity.
func (_m *ReceiptItem) QueryReceipt() *ReceiptQuery {
	return NewReceiptItemClient(_m.config).QueryReceipt(_m)
}

// Update returns a builder for updating this ReceiptItem.
// Note that you need to call ReceiptItem.Unwrap() before calling this method if this ReceiptItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReceiptItem) Update() *ReceiptItemUpdateOne {
	return NewReceiptItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReceiptItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReceiptItem) Unwrap() *ReceiptItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReceiptItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReceiptItem) String() string {
	var builder strings.Builder
	builder.WriteString("ReceiptItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("receipt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReceiptID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	if v := _m.UnitPrice; v != nil {
		builder.WriteString("unit_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPrice))
	builder.WriteString(", ")
	builder.WriteString("line_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineNumber))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// ReceiptItems is a parsable slice of ReceiptItem.
type ReceiptItems []*ReceiptItem
