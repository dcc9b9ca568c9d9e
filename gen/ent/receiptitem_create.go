// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
	"github.com/splithouse/receipts-engine/gen/ent/receiptitem"
)

// ReceiptItemCreate is the builder for creating a ReceiptItem entity.
type ReceiptItemCreate struct {
	config
	mutation *ReceiptItemMutation
	hooks    []Hook
}

// SetReceiptID sets the "receipt_id" field.
func (_c *ReceiptItemCreate) SetReceiptID(v uuid.UUID) *ReceiptItemCreate {
	_c.mutation.SetReceiptID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ReceiptItemCreate) SetName(v string) *ReceiptItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ReceiptItemCreate) SetQuantity(v int) *ReceiptItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *ReceiptItemCreate) SetNillableQuantity(v *int) *ReceiptItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *ReceiptItemCreate) SetUnitPrice(v float64) *ReceiptItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *ReceiptItemCreate) SetNillableUnitPrice(v *float64) *ReceiptItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *ReceiptItemCreate) SetTotalPrice(v float64) *ReceiptItemCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetLineNumber sets the "line_number" field.
func (_c *ReceiptItemCreate) SetLineNumber(v int) *ReceiptItemCreate {
	_c.mutation.SetLineNumber(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ReceiptItemCreate) SetConfidence(v float64) *ReceiptItemCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptItemCreate) SetID(v uuid.UUID) *ReceiptItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptItemCreate) SetNillableID(v *uuid.UUID) *ReceiptItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_c *ReceiptItemCreate) SetReceipt(v *Receipt) *ReceiptItemCreate {
	return _c.SetReceiptID(v.ID)
}

// Mutation returns the ReceiptItemMutation object of the builder.
func (_c *ReceiptItemCreate) Mutation() *ReceiptItemMutation {
	return _c.mutation
}

// Save creates the ReceiptItem in the database.
func (_c *ReceiptItemCreate) Save(ctx context.Context) (*ReceiptItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptItemCreate) SaveX(ctx context.Context) *ReceiptItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptItemCreate) defaults() {
	if _, ok := _c.mutation.Quantity(); !ok {
		v := receiptitem.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receiptitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptItemCreate) check() error {
	if _, ok := _c.mutation.ReceiptID(); !ok {
		return &ValidationError{Name: "receipt_id", err: errors.New(`ent: missing required field "ReceiptItem.receipt_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ReceiptItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := receiptitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "ReceiptItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := receiptitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		return &ValidationError{Name: "total_price", err: errors.New(`ent: missing required field "ReceiptItem.total_price"`)}
	}
	if v, ok := _c.mutation.TotalPrice(); ok {
		if err := receiptitem.TotalPriceValidator(v); err != nil {
			return &ValidationError{Name: "total_price", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.total_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LineNumber(); !ok {
		return &ValidationError{Name: "line_number", err: errors.New(`ent: missing required field "ReceiptItem.line_number"`)}
	}
	if v, ok := _c.mutation.LineNumber(); ok {
		if err := receiptitem.LineNumberValidator(v); err != nil {
			return &ValidationError{Name: "line_number", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.line_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ReceiptItem.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := receiptitem.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.confidence": %w`, err)}
		}
	}
	if len(_c.mutation.ReceiptIDs()) == 0 {
		return &ValidationError{Name: "receipt", err: errors.New(`ent: missing required edge "ReceiptItem.receipt"`)}
	}
	return nil
}

func (_c *ReceiptItemCreate) sqlSave(ctx context.Context) (*ReceiptItem, error) {
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

func (_c *ReceiptItemCreate) createSpec() (*ReceiptItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReceiptItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiptitem.Table, sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(receiptitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(receiptitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(receiptitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = &value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(receiptitem.FieldTotalPrice, field.TypeFloat64, value)
		_node.TotalPrice = value
	}
	if value, ok := _c.mutation.LineNumber(); ok {
		_spec.SetField(receiptitem.FieldLineNumber, field.TypeInt, value)
		_node.LineNumber = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(receiptitem.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if nodes := _c.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptitem.ReceiptTable,
			Columns: []string{receiptitem.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReceiptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptItemCreateBulk is the builder for creating many ReceiptItem entities in bulk.
type ReceiptItemCreateBulk struct {
	config
	err      error
	builders []*ReceiptItemCreate
}

// Save creates the ReceiptItem entities in the database.
func (_c *ReceiptItemCreateBulk) Save(ctx context.Context) ([]*ReceiptItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReceiptItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptItemMutation)
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
func (_c *ReceiptItemCreateBulk) SaveX(ctx context.Context) []*ReceiptItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
