// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/gen/ent/parsejob"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
)

// ParseJob is the model entity for the ParseJob schema.
type ParseJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// HouseholdID holds the value of the "household_id" field.
	HouseholdID uuid.UUID `json:"household_id,omitempty"`
	// ReceiptID holds the value of the "receipt_id" field.
	ReceiptID *uuid.UUID `json:"receipt_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// OcrPayload holds the value of the "ocr_payload" field.
	OcrPayload json.RawMessage `json:"ocr_payload,omitempty"`
	// ItemCount holds the value of the "item_count" field.
	ItemCount *int `json:"item_count,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// OcrText holds the value of the "ocr_text" field.
	OcrText *string `json:"ocr_text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParseJobQuery when eager-loading is set.
	Edges        ParseJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParseJobEdges holds the relations/edges for other nodes in the graph.
type ParseJobEdges struct {
	// Household holds the value of the household edge.
	Household *Household `json:"household,omitempty"`
	// Receipt holds the value of the receipt edge.
	Receipt *Receipt `json:"receipt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// HouseholdOrErr returns the Household value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParseJobEdges) HouseholdOrErr() (*Household, error) {
	if e.Household != nil {
		return e.Household, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: household.Label}
	}
	return nil, &NotLoadedError{edge: "household"}
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParseJobEdges) ReceiptOrErr() (*Receipt, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: receipt.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParseJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parsejob.FieldReceiptID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case parsejob.FieldOcrPayload:
			values[i] = new([]byte)
		case parsejob.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case parsejob.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case parsejob.FieldItemCount:
			values[i] = new(sql.NullInt64)
		case parsejob.FieldStatus, parsejob.FieldErrorMessage, parsejob.FieldOcrText:
			values[i] = new(sql.NullString)
		case parsejob.FieldStartedAt, parsejob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case parsejob.FieldID, parsejob.FieldHouseholdID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParseJob fields.
func (_m *ParseJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parsejob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case parsejob.FieldHouseholdID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field household_id", values[i])
			} else if value != nil {
				_m.HouseholdID = *value
			}
		case parsejob.FieldReceiptID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_id", values[i])
			} else if value.Valid {
				_m.ReceiptID = new(uuid.UUID)
				*_m.ReceiptID = *value.S.(*uuid.UUID)
			}
		case parsejob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case parsejob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case parsejob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case parsejob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case parsejob.FieldOcrPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OcrPayload); err != nil {
					return fmt.Errorf("unmarshal field ocr_payload: %w", err)
				}
			}
		case parsejob.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = new(int)
				*_m.ItemCount = int(value.Int64)
			}
		case parsejob.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case parsejob.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case parsejob.FieldOcrText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_text", values[i])
			} else if value.Valid {
				_m.OcrText = new(string)
				*_m.OcrText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParseJob.
// This includes values selected through modifiers, order, etc.
func (_m *ParseJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHousehold queries the "household" edge of the ParseJob entity.
func (_m *ParseJob) QueryHousehold() *HouseholdQuery {
	return NewParseJobClient(_m.config).QueryHousehold(_m)
}

// QueryReceipt queries the "receipt" edge of the ParseJob entity.
func (_m *ParseJob) QueryReceipt() *ReceiptQuery {
	return NewParseJobClient(_m.config).QueryReceipt(_m)
}

// Update returns a builder for updating this ParseJob.
// Note that you need to call ParseJob.Unwrap() before calling this method if this ParseJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParseJob) Update() *ParseJobUpdateOne {
	return NewParseJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParseJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParseJob) Unwrap() *ParseJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParseJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParseJob) String() string {
	var builder strings.Builder
	builder.WriteString("ParseJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("household_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HouseholdID))
	builder.WriteString(", ")
	if v := _m.ReceiptID; v != nil {
		builder.WriteString("receipt_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ocr_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrPayload))
	builder.WriteString(", ")
	if v := _m.ItemCount; v != nil {
		builder.WriteString("item_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	if v := _m.OcrText; v != nil {
		builder.WriteString("ocr_text=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ParseJobs is a parsable slice of ParseJob.
type ParseJobs []*ParseJob
