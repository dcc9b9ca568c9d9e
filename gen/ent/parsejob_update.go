// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/gen/ent/parsejob"
	"github.com/splithouse/receipts-engine/gen/ent/predicate"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
)

// ParseJobUpdate is the builder for updating ParseJob entities.
type ParseJobUpdate struct {
	config
	hooks    []Hook
	mutation *ParseJobMutation
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdate) Where(ps ...predicate.ParseJob) *ParseJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHouseholdID sets the "household_id" field.
func (_u *ParseJobUpdate) SetHouseholdID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableHouseholdID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *ParseJobUpdate) SetReceiptID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableReceiptID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// ClearReceiptID clears the value of the "receipt_id" field.
func (_u *ParseJobUpdate) ClearReceiptID() *ParseJobUpdate {
	_u.mutation.ClearReceiptID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdate) SetStartedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStartedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdate) SetFinishedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFinishedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdate) ClearFinishedAt() *ParseJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdate) SetStatus(v string) *ParseJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStatus(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ParseJobUpdate) ClearStatus() *ParseJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdate) SetErrorMessage(v string) *ParseJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableErrorMessage(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdate) ClearErrorMessage() *ParseJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrPayload sets the "ocr_payload" field.
func (_u *ParseJobUpdate) SetOcrPayload(v json.RawMessage) *ParseJobUpdate {
	_u.mutation.SetOcrPayload(v)
	return _u
}

// AppendOcrPayload appends value to the "ocr_payload" field.
func (_u *ParseJobUpdate) AppendOcrPayload(v json.RawMessage) *ParseJobUpdate {
	_u.mutation.AppendOcrPayload(v)
	return _u
}

// ClearOcrPayload clears the value of the "ocr_payload" field.
func (_u *ParseJobUpdate) ClearOcrPayload() *ParseJobUpdate {
	_u.mutation.ClearOcrPayload()
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *ParseJobUpdate) SetItemCount(v int) *ParseJobUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableItemCount(v *int) *ParseJobUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *ParseJobUpdate) AddItemCount(v int) *ParseJobUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// ClearItemCount clears the value of the "item_count" field.
func (_u *ParseJobUpdate) ClearItemCount() *ParseJobUpdate {
	_u.mutation.ClearItemCount()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ParseJobUpdate) SetConfidence(v float64) *ParseJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableConfidence(v *float64) *ParseJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ParseJobUpdate) AddConfidence(v float64) *ParseJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ParseJobUpdate) ClearConfidence() *ParseJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ParseJobUpdate) SetNeedsReview(v bool) *ParseJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableNeedsReview(v *bool) *ParseJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ParseJobUpdate) SetOcrText(v string) *ParseJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableOcrText(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ParseJobUpdate) ClearOcrText() *ParseJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *ParseJobUpdate) SetHousehold(v *Household) *ParseJobUpdate {
	return _u.SetHouseholdID(v.ID)
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ParseJobUpdate) SetReceipt(v *Receipt) *ParseJobUpdate {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdate) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *ParseJobUpdate) ClearHousehold() *ParseJobUpdate {
	_u.mutation.ClearHousehold()
	return _u
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ParseJobUpdate) ClearReceipt() *ParseJobUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdate) check() error {
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.household"`)
	}
	return nil
}

func (_u *ParseJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(parsejob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrPayload(); ok {
		_spec.SetField(parsejob.FieldOcrPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOcrPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsejob.FieldOcrPayload, value)
		})
	}
	if _u.mutation.OcrPayloadCleared() {
		_spec.ClearField(parsejob.FieldOcrPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(parsejob.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(parsejob.FieldItemCount, field.TypeInt, value)
	}
	if _u.mutation.ItemCountCleared() {
		_spec.ClearField(parsejob.FieldItemCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(parsejob.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(parsejob.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(parsejob.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(parsejob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(parsejob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(parsejob.FieldOcrText, field.TypeString)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.HouseholdTable,
			Columns: []string{parsejob.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HouseholdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.HouseholdTable,
			Columns: []string{parsejob.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ReceiptTable,
			Columns: []string{parsejob.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ReceiptTable,
			Columns: []string{parsejob.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseJobUpdateOne is the builder for updating a single ParseJob entity.
type ParseJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseJobMutation
}

// SetHouseholdID sets the "household_id" field.
func (_u *ParseJobUpdateOne) SetHouseholdID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableHouseholdID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *ParseJobUpdateOne) SetReceiptID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableReceiptID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// ClearReceiptID clears the value of the "receipt_id" field.
func (_u *ParseJobUpdateOne) ClearReceiptID() *ParseJobUpdateOne {
	_u.mutation.ClearReceiptID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdateOne) SetStartedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStartedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdateOne) SetFinishedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdateOne) ClearFinishedAt() *ParseJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdateOne) SetStatus(v string) *ParseJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStatus(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ParseJobUpdateOne) ClearStatus() *ParseJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdateOne) SetErrorMessage(v string) *ParseJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableErrorMessage(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdateOne) ClearErrorMessage() *ParseJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrPayload sets the "ocr_payload" field.
func (_u *ParseJobUpdateOne) SetOcrPayload(v json.RawMessage) *ParseJobUpdateOne {
	_u.mutation.SetOcrPayload(v)
	return _u
}

// AppendOcrPayload appends value to the "ocr_payload" field.
func (_u *ParseJobUpdateOne) AppendOcrPayload(v json.RawMessage) *ParseJobUpdateOne {
	_u.mutation.AppendOcrPayload(v)
	return _u
}

// ClearOcrPayload clears the value of the "ocr_payload" field.
func (_u *ParseJobUpdateOne) ClearOcrPayload() *ParseJobUpdateOne {
	_u.mutation.ClearOcrPayload()
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *ParseJobUpdateOne) SetItemCount(v int) *ParseJobUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableItemCount(v *int) *ParseJobUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *ParseJobUpdateOne) AddItemCount(v int) *ParseJobUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// ClearItemCount clears the value of the "item_count" field.
func (_u *ParseJobUpdateOne) ClearItemCount() *ParseJobUpdateOne {
	_u.mutation.ClearItemCount()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ParseJobUpdateOne) SetConfidence(v float64) *ParseJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableConfidence(v *float64) *ParseJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ParseJobUpdateOne) AddConfidence(v float64) *ParseJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ParseJobUpdateOne) ClearConfidence() *ParseJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ParseJobUpdateOne) SetNeedsReview(v bool) *ParseJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableNeedsReview(v *bool) *ParseJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ParseJobUpdateOne) SetOcrText(v string) *ParseJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableOcrText(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ParseJobUpdateOne) ClearOcrText() *ParseJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *ParseJobUpdateOne) SetHousehold(v *Household) *ParseJobUpdateOne {
	return _u.SetHouseholdID(v.ID)
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ParseJobUpdateOne) SetReceipt(v *Receipt) *ParseJobUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdateOne) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *ParseJobUpdateOne) ClearHousehold() *ParseJobUpdateOne {
	_u.mutation.ClearHousehold()
	return _u
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ParseJobUpdateOne) ClearReceipt() *ParseJobUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdateOne) Where(ps ...predicate.ParseJob) *ParseJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseJobUpdateOne) Select(field string, fields ...string) *ParseJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseJob entity.
func (_u *ParseJobUpdateOne) Save(ctx context.Context) (*ParseJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdateOne) SaveX(ctx context.Context) *ParseJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdateOne) check() error {
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.household"`)
	}
	return nil
}

func (_u *ParseJobUpdateOne) sqlSave(ctx context.Context) (_node *ParseJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parsejob.FieldID)
		for _, f := range fields {
			if !parsejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parsejob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(parsejob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrPayload(); ok {
		_spec.SetField(parsejob.FieldOcrPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOcrPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsejob.FieldOcrPayload, value)
		})
	}
	if _u.mutation.OcrPayloadCleared() {
		_spec.ClearField(parsejob.FieldOcrPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(parsejob.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(parsejob.FieldItemCount, field.TypeInt, value)
	}
	if _u.mutation.ItemCountCleared() {
		_spec.ClearField(parsejob.FieldItemCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(parsejob.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(parsejob.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(parsejob.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(parsejob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(parsejob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(parsejob.FieldOcrText, field.TypeString)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.HouseholdTable,
			Columns: []string{parsejob.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HouseholdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.HouseholdTable,
			Columns: []string{parsejob.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ReceiptTable,
			Columns: []string{parsejob.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ReceiptTable,
			Columns: []string{parsejob.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParseJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
