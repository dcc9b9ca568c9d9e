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
)

// HouseholdUpdate is the builder for updating Household entities.
type HouseholdUpdate struct {
	config
	hooks    []Hook
	mutation *HouseholdMutation
}

// Where appends a list predicates to the HouseholdUpdate builder.
func (_u *HouseholdUpdate) Where(ps ...predicate.Household) *HouseholdUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *HouseholdUpdate) SetName(v string) *HouseholdUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableName(v *string) *HouseholdUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *HouseholdUpdate) SetCurrency(v string) *HouseholdUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableCurrency(v *string) *HouseholdUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HouseholdUpdate) SetCreatedAt(v time.Time) *HouseholdUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableCreatedAt(v *time.Time) *HouseholdUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HouseholdUpdate) SetUpdatedAt(v time.Time) *HouseholdUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *HouseholdUpdate) AddReceiptIDs(ids ...uuid.UUID) *HouseholdUpdate {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *HouseholdUpdate) AddReceipts(v ...*Receipt) *HouseholdUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *HouseholdUpdate) AddJobIDs(ids ...uuid.UUID) *HouseholdUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *HouseholdUpdate) AddJobs(v ...*ParseJob) *HouseholdUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the HouseholdMutation object of the builder.
func (_u *HouseholdUpdate) Mutation() *HouseholdMutation {
	return _u.mutation
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *HouseholdUpdate) ClearReceipts() *HouseholdUpdate {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *HouseholdUpdate) RemoveReceiptIDs(ids ...uuid.UUID) *HouseholdUpdate {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *HouseholdUpdate) RemoveReceipts(v ...*Receipt) *HouseholdUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *HouseholdUpdate) ClearJobs() *HouseholdUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *HouseholdUpdate) RemoveJobIDs(ids ...uuid.UUID) *HouseholdUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *HouseholdUpdate) RemoveJobs(v ...*ParseJob) *HouseholdUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HouseholdUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HouseholdUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HouseholdUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HouseholdUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HouseholdUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := household.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HouseholdUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := household.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Household.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := household.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Household.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *HouseholdUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(household.Table, household.Columns, sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(household.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(household.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(household.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(household.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.ReceiptsTable,
			Columns: []string{household.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.ReceiptsTable,
			Columns: []string{household.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.ReceiptsTable,
			Columns: []string{household.ReceiptsColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.JobsTable,
			Columns: []string{household.JobsColumn},
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
			Table:   household.JobsTable,
			Columns: []string{household.JobsColumn},
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
			Table:   household.JobsTable,
			Columns: []string{household.JobsColumn},
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
			err = &NotFoundError{household.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HouseholdUpdateOne is the builder for updating a single Household entity.
type HouseholdUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HouseholdMutation
}

// SetName sets the "name" field.
func (_u *HouseholdUpdateOne) SetName(v string) *HouseholdUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableName(v *string) *HouseholdUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *HouseholdUpdateOne) SetCurrency(v string) *HouseholdUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableCurrency(v *string) *HouseholdUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HouseholdUpdateOne) SetCreatedAt(v time.Time) *HouseholdUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableCreatedAt(v *time.Time) *HouseholdUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HouseholdUpdateOne) SetUpdatedAt(v time.Time) *HouseholdUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *HouseholdUpdateOne) AddReceiptIDs(ids ...uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *HouseholdUpdateOne) AddReceipts(v ...*Receipt) *HouseholdUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *HouseholdUpdateOne) AddJobIDs(ids ...uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *HouseholdUpdateOne) AddJobs(v ...*ParseJob) *HouseholdUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the HouseholdMutation object of the builder.
func (_u *HouseholdUpdateOne) Mutation() *HouseholdMutation {
	return _u.mutation
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *HouseholdUpdateOne) ClearReceipts() *HouseholdUpdateOne {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *HouseholdUpdateOne) RemoveReceiptIDs(ids ...uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *HouseholdUpdateOne) RemoveReceipts(v ...*Receipt) *HouseholdUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *HouseholdUpdateOne) ClearJobs() *HouseholdUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *HouseholdUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *HouseholdUpdateOne) RemoveJobs(v ...*ParseJob) *HouseholdUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the HouseholdUpdate builder.
func (_u *HouseholdUpdateOne) Where(ps ...predicate.Household) *HouseholdUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HouseholdUpdateOne) Select(field string, fields ...string) *HouseholdUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Household entity.
func (_u *HouseholdUpdateOne) Save(ctx context.Context) (*Household, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HouseholdUpdateOne) SaveX(ctx context.Context) *Household {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HouseholdUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HouseholdUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HouseholdUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := household.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HouseholdUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := household.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Household.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := household.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Household.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *HouseholdUpdateOne) sqlSave(ctx context.Context) (_node *Household, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(household.Table, household.Columns, sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Household.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, household.FieldID)
		for _, f := range fields {
			if !household.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != household.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(household.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(household.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(household.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(household.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.ReceiptsTable,
			Columns: []string{household.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.ReceiptsTable,
			Columns: []string{household.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.ReceiptsTable,
			Columns: []string{household.ReceiptsColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.JobsTable,
			Columns: []string{household.JobsColumn},
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
			Table:   household.JobsTable,
			Columns: []string{household.JobsColumn},
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
			Table:   household.JobsTable,
			Columns: []string{household.JobsColumn},
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
	_node = &Household{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{household.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
