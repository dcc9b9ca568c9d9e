// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/gen/ent/parsejob"
	"github.com/splithouse/receipts-engine/gen/ent/predicate"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
	"github.com/splithouse/receipts-engine/gen/ent/receiptitem"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHouseholdID sets the "household_id" field.
func (_u *ReceiptUpdate) SetHouseholdID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableHouseholdID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetMerchantName sets the "merchant_name" field.
func (_u *ReceiptUpdate) SetMerchantName(v string) *ReceiptUpdate {
	_u.mutation.SetMerchantName(v)
	return _u
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableMerchantName(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetMerchantName(*v)
	}
	return _u
}

// ClearMerchantName clears the value of the "merchant_name" field.
func (_u *ReceiptUpdate) ClearMerchantName() *ReceiptUpdate {
	_u.mutation.ClearMerchantName()
	return _u
}

// SetReceiptDate sets the "receipt_date" field.
func (_u *ReceiptUpdate) SetReceiptDate(v time.Time) *ReceiptUpdate {
	_u.mutation.SetReceiptDate(v)
	return _u
}

// SetNillableReceiptDate sets the "receipt_date" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableReceiptDate(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetReceiptDate(*v)
	}
	return _u
}

// ClearReceiptDate clears the value of the "receipt_date" field.
func (_u *ReceiptUpdate) ClearReceiptDate() *ReceiptUpdate {
	_u.mutation.ClearReceiptDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ReceiptUpdate) SetTotalAmount(v float64) *ReceiptUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotalAmount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *ReceiptUpdate) AddTotalAmount(v float64) *ReceiptUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *ReceiptUpdate) ClearTotalAmount() *ReceiptUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCalculatedTotal sets the "calculated_total" field.
func (_u *ReceiptUpdate) SetCalculatedTotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetCalculatedTotal()
	_u.mutation.SetCalculatedTotal(v)
	return _u
}

// SetNillableCalculatedTotal sets the "calculated_total" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCalculatedTotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetCalculatedTotal(*v)
	}
	return _u
}

// AddCalculatedTotal adds value to the "calculated_total" field.
func (_u *ReceiptUpdate) AddCalculatedTotal(v float64) *ReceiptUpdate {
	_u.mutation.AddCalculatedTotal(v)
	return _u
}

// SetTotalMatches sets the "total_matches" field.
func (_u *ReceiptUpdate) SetTotalMatches(v bool) *ReceiptUpdate {
	_u.mutation.SetTotalMatches(v)
	return _u
}

// SetNillableTotalMatches sets the "total_matches" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotalMatches(v *bool) *ReceiptUpdate {
	if v != nil {
		_u.SetTotalMatches(*v)
	}
	return _u
}

// SetVerification sets the "verification" field.
func (_u *ReceiptUpdate) SetVerification(v string) *ReceiptUpdate {
	_u.mutation.SetVerification(v)
	return _u
}

// SetNillableVerification sets the "verification" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableVerification(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetVerification(*v)
	}
	return _u
}

// ClearVerification clears the value of the "verification" field.
func (_u *ReceiptUpdate) ClearVerification() *ReceiptUpdate {
	_u.mutation.ClearVerification()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdate) SetCreatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdate) SetUpdatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *ReceiptUpdate) SetHousehold(v *Household) *ReceiptUpdate {
	return _u.SetHouseholdID(v.ID)
}

// AddItemIDs adds the "items" edge to the ReceiptItem entity by IDs.
func (_u *ReceiptUpdate) AddItemIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ReceiptItem entity.
func (_u *ReceiptUpdate) AddItems(v ...*ReceiptItem) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *ReceiptUpdate) AddJobIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *ReceiptUpdate) AddJobs(v ...*ParseJob) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *ReceiptUpdate) ClearHousehold() *ReceiptUpdate {
	_u.mutation.ClearHousehold()
	return _u
}

// ClearItems clears all "items" edges to the ReceiptItem entity.
func (_u *ReceiptUpdate) ClearItems() *ReceiptUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ReceiptItem entities by IDs.
func (_u *ReceiptUpdate) RemoveItemIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ReceiptItem entities.
func (_u *ReceiptUpdate) RemoveItems(v ...*ReceiptItem) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *ReceiptUpdate) ClearJobs() *ReceiptUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *ReceiptUpdate) RemoveJobIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *ReceiptUpdate) RemoveJobs(v ...*ParseJob) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.household"`)
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MerchantName(); ok {
		_spec.SetField(receipt.FieldMerchantName, field.TypeString, value)
	}
	if _u.mutation.MerchantNameCleared() {
		_spec.ClearField(receipt.FieldMerchantName, field.TypeString)
	}
	if value, ok := _u.mutation.ReceiptDate(); ok {
		_spec.SetField(receipt.FieldReceiptDate, field.TypeTime, value)
	}
	if _u.mutation.ReceiptDateCleared() {
		_spec.ClearField(receipt.FieldReceiptDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(receipt.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(receipt.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(receipt.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CalculatedTotal(); ok {
		_spec.SetField(receipt.FieldCalculatedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalculatedTotal(); ok {
		_spec.AddField(receipt.FieldCalculatedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalMatches(); ok {
		_spec.SetField(receipt.FieldTotalMatches, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Verification(); ok {
		_spec.SetField(receipt.FieldVerification, field.TypeString, value)
	}
	if _u.mutation.VerificationCleared() {
		_spec.ClearField(receipt.FieldVerification, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.HouseholdTable,
			Columns: []string{receipt.HouseholdColumn},
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
			Table:   receipt.HouseholdTable,
			Columns: []string{receipt.HouseholdColumn},
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
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.JobsTable,
			Columns: []string{receipt.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.JobsTable,
			Columns: []string{receipt.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.JobsTable,
			Columns: []string{receipt.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetHouseholdID sets the "household_id" field.
func (_u *ReceiptUpdateOne) SetHouseholdID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableHouseholdID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetMerchantName sets the "merchant_name" field.
func (_u *ReceiptUpdateOne) SetMerchantName(v string) *ReceiptUpdateOne {
	_u.mutation.SetMerchantName(v)
	return _u
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableMerchantName(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetMerchantName(*v)
	}
	return _u
}

// ClearMerchantName clears the value of the "merchant_name" field.
func (_u *ReceiptUpdateOne) ClearMerchantName() *ReceiptUpdateOne {
	_u.mutation.ClearMerchantName()
	return _u
}

// SetReceiptDate sets the "receipt_date" field.
func (_u *ReceiptUpdateOne) SetReceiptDate(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetReceiptDate(v)
	return _u
}

// SetNillableReceiptDate sets the "receipt_date" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableReceiptDate(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetReceiptDate(*v)
	}
	return _u
}

// ClearReceiptDate clears the value of the "receipt_date" field.
func (_u *ReceiptUpdateOne) ClearReceiptDate() *ReceiptUpdateOne {
	_u.mutation.ClearReceiptDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *ReceiptUpdateOne) SetTotalAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotalAmount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *ReceiptUpdateOne) AddTotalAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *ReceiptUpdateOne) ClearTotalAmount() *ReceiptUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCalculatedTotal sets the "calculated_total" field.
func (_u *ReceiptUpdateOne) SetCalculatedTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetCalculatedTotal()
	_u.mutation.SetCalculatedTotal(v)
	return _u
}

// SetNillableCalculatedTotal sets the "calculated_total" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCalculatedTotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCalculatedTotal(*v)
	}
	return _u
}

// AddCalculatedTotal adds value to the "calculated_total" field.
func (_u *ReceiptUpdateOne) AddCalculatedTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddCalculatedTotal(v)
	return _u
}

// SetTotalMatches sets the "total_matches" field.
func (_u *ReceiptUpdateOne) SetTotalMatches(v bool) *ReceiptUpdateOne {
	_u.mutation.SetTotalMatches(v)
	return _u
}

// SetNillableTotalMatches sets the "total_matches" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotalMatches(v *bool) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotalMatches(*v)
	}
	return _u
}

// SetVerification sets the "verification" field.
func (_u *ReceiptUpdateOne) SetVerification(v string) *ReceiptUpdateOne {
	_u.mutation.SetVerification(v)
	return _u
}

// SetNillableVerification sets the "verification" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableVerification(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetVerification(*v)
	}
	return _u
}

// ClearVerification clears the value of the "verification" field.
func (_u *ReceiptUpdateOne) ClearVerification() *ReceiptUpdateOne {
	_u.mutation.ClearVerification()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdateOne) SetCreatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdateOne) SetUpdatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *ReceiptUpdateOne) SetHousehold(v *Household) *ReceiptUpdateOne {
	return _u.SetHouseholdID(v.ID)
}

// AddItemIDs adds the "items" edge to the ReceiptItem entity by IDs.
func (_u *ReceiptUpdateOne) AddItemIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ReceiptItem entity.
func (_u *ReceiptUpdateOne) AddItems(v ...*ReceiptItem) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *ReceiptUpdateOne) AddJobIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *ReceiptUpdateOne) AddJobs(v ...*ParseJob) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *ReceiptUpdateOne) ClearHousehold() *ReceiptUpdateOne {
	_u.mutation.ClearHousehold()
	return _u
}

// ClearItems clears all "items" edges to the ReceiptItem entity.
func (_u *ReceiptUpdateOne) ClearItems() *ReceiptUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ReceiptItem entities by IDs.
func (_u *ReceiptUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ReceiptItem entities.
func (_u *ReceiptUpdateOne) RemoveItems(v ...*ReceiptItem) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *ReceiptUpdateOne) ClearJobs() *ReceiptUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *ReceiptUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *ReceiptUpdateOne) RemoveJobs(v ...*ParseJob) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.household"`)
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
	if value, ok := _u.mutation.MerchantName(); ok {
		_spec.SetField(receipt.FieldMerchantName, field.TypeString, value)
	}
	if _u.mutation.MerchantNameCleared() {
		_spec.ClearField(receipt.FieldMerchantName, field.TypeString)
	}
	if value, ok := _u.mutation.ReceiptDate(); ok {
		_spec.SetField(receipt.FieldReceiptDate, field.TypeTime, value)
	}
	if _u.mutation.ReceiptDateCleared() {
		_spec.ClearField(receipt.FieldReceiptDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(receipt.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(receipt.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(receipt.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CalculatedTotal(); ok {
		_spec.SetField(receipt.FieldCalculatedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalculatedTotal(); ok {
		_spec.AddField(receipt.FieldCalculatedTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalMatches(); ok {
		_spec.SetField(receipt.FieldTotalMatches, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Verification(); ok {
		_spec.SetField(receipt.FieldVerification, field.TypeString, value)
	}
	if _u.mutation.VerificationCleared() {
		_spec.ClearField(receipt.FieldVerification, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.HouseholdTable,
			Columns: []string{receipt.HouseholdColumn},
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
			Table:   receipt.HouseholdTable,
			Columns: []string{receipt.HouseholdColumn},
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
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.JobsTable,
			Columns: []string{receipt.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.JobsTable,
			Columns: []string{receipt.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.JobsTable,
			Columns: []string{receipt.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
