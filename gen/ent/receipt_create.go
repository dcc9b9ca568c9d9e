// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/gen/ent/parsejob"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
	"github.com/splithouse/receipts-engine/gen/ent/receiptitem"
)

// ReceiptCreate is the builder for creating a Receipt entity.
type ReceiptCreate struct {
	config
	mutation *ReceiptMutation
	hooks    []Hook
}

// SetHouseholdID sets the "household_id" field.
func (_c *ReceiptCreate) SetHouseholdID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetHouseholdID(v)
	return _c
}

// SetMerchantName sets the "merchant_name" field.
func (_c *ReceiptCreate) SetMerchantName(v string) *ReceiptCreate {
	_c.mutation.SetMerchantName(v)
	return _c
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableMerchantName(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetMerchantName(*v)
	}
	return _c
}

// SetReceiptDate sets the "receipt_date" field.
func (_c *ReceiptCreate) SetReceiptDate(v time.Time) *ReceiptCreate {
	_c.mutation.SetReceiptDate(v)
	return _c
}

// SetNillableReceiptDate sets the "receipt_date" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableReceiptDate(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetReceiptDate(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *ReceiptCreate) SetTotalAmount(v float64) *ReceiptCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTotalAmount(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetCalculatedTotal sets the "calculated_total" field.
func (_c *ReceiptCreate) SetCalculatedTotal(v float64) *ReceiptCreate {
	_c.mutation.SetCalculatedTotal(v)
	return _c
}

// SetTotalMatches sets the "total_matches" field.
func (_c *ReceiptCreate) SetTotalMatches(v bool) *ReceiptCreate {
	_c.mutation.SetTotalMatches(v)
	return _c
}

// SetNillableTotalMatches sets the "total_matches" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTotalMatches(v *bool) *ReceiptCreate {
	if v != nil {
		_c.SetTotalMatches(*v)
	}
	return _c
}

// SetVerification sets the "verification" field.
func (_c *ReceiptCreate) SetVerification(v string) *ReceiptCreate {
	_c.mutation.SetVerification(v)
	return _c
}

// SetNillableVerification sets the "verification" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableVerification(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetVerification(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptCreate) SetCreatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCreatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReceiptCreate) SetUpdatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableUpdatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptCreate) SetID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetHousehold sets the "household" edge to the Household entity.
func (_c *ReceiptCreate) SetHousehold(v *Household) *ReceiptCreate {
	return _c.SetHouseholdID(v.ID)
}

// AddItemIDs adds the "items" edge to the ReceiptItem entity by IDs.
func (_c *ReceiptCreate) AddItemIDs(ids ...uuid.UUID) *ReceiptCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the ReceiptItem entity.
func (_c *ReceiptCreate) AddItems(v ...*ReceiptItem) *ReceiptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_c *ReceiptCreate) AddJobIDs(ids ...uuid.UUID) *ReceiptCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_c *ReceiptCreate) AddJobs(v ...*ParseJob) *ReceiptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_c *ReceiptCreate) Mutation() *ReceiptMutation {
	return _c.mutation
}

// Save creates the Receipt in the database.
func (_c *ReceiptCreate) Save(ctx context.Context) (*Receipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptCreate) SaveX(ctx context.Context) *Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptCreate) defaults() {
	if _, ok := _c.mutation.TotalMatches(); !ok {
		v := receipt.DefaultTotalMatches
		_c.mutation.SetTotalMatches(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := receipt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptCreate) check() error {
	if _, ok := _c.mutation.HouseholdID(); !ok {
		return &ValidationError{Name: "household_id", err: errors.New(`ent: missing required field "Receipt.household_id"`)}
	}
	if _, ok := _c.mutation.CalculatedTotal(); !ok {
		return &ValidationError{Name: "calculated_total", err: errors.New(`ent: missing required field "Receipt.calculated_total"`)}
	}
	if _, ok := _c.mutation.TotalMatches(); !ok {
		return &ValidationError{Name: "total_matches", err: errors.New(`ent: missing required field "Receipt.total_matches"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receipt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Receipt.updated_at"`)}
	}
	if len(_c.mutation.HouseholdIDs()) == 0 {
		return &ValidationError{Name: "household", err: errors.New(`ent: missing required edge "Receipt.household"`)}
	}
	return nil
}

func (_c *ReceiptCreate) sqlSave(ctx context.Context) (*Receipt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReceiptCreate) createSpec() (*Receipt, *sqlgraph.CreateSpec) {
	var (
		_node = &Receipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receipt.Table, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MerchantName(); ok {
		_spec.SetField(receipt.FieldMerchantName, field.TypeString, value)
		_node.MerchantName = value
	}
	if value, ok := _c.mutation.ReceiptDate(); ok {
		_spec.SetField(receipt.FieldReceiptDate, field.TypeTime, value)
		_node.ReceiptDate = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(receipt.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.CalculatedTotal(); ok {
		_spec.SetField(receipt.FieldCalculatedTotal, field.TypeFloat64, value)
		_node.CalculatedTotal = value
	}
	if value, ok := _c.mutation.TotalMatches(); ok {
		_spec.SetField(receipt.FieldTotalMatches, field.TypeBool, value)
		_node.TotalMatches = value
	}
	if value, ok := _c.mutation.Verification(); ok {
		_spec.SetField(receipt.FieldVerification, field.TypeString, value)
		_node.Verification = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.HouseholdIDs(); len(nodes) > 0 {
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
		_node.HouseholdID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptCreateBulk is the builder for creating many Receipt entities in bulk.
type ReceiptCreateBulk struct {
	config
	err      error
	builders []*ReceiptCreate
}

// Save creates the Receipt entities in the database.
func (_c *ReceiptCreateBulk) Save(ctx context.Context) ([]*Receipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReceiptCreateBulk) SaveX(ctx context.Context) []*Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
