// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/gen/ent/parsejob"
	"github.com/splithouse/receipts-engine/gen/ent/predicate"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
	"github.com/splithouse/receipts-engine/gen/ent/receiptitem"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeHousehold   = "Household"
	TypeParseJob    = "ParseJob"
	TypeReceipt     = "Receipt"
	TypeReceiptItem = "ReceiptItem"
)

// HouseholdMutation represents an operation that mutates the Household nodes in the graph.
type HouseholdMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	currency        *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	receipts        map[uuid.UUID]struct{}
	removedreceipts map[uuid.UUID]struct{}
	clearedreceipts bool
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Household, error)
	predicates      []predicate.Household
}

var _ ent.Mutation = (*HouseholdMutation)(nil)

// householdOption allows management of the mutation configuration using functional options.
type householdOption func(*HouseholdMutation)

// newHouseholdMutation creates new mutation for the Household entity.
func newHouseholdMutation(c config, op Op, opts ...householdOption) *HouseholdMutation {
	m := &HouseholdMutation{
		config:        c,
		op:            op,
		typ:           TypeHousehold,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHouseholdID sets the ID field of the mutation.
func withHouseholdID(id uuid.UUID) householdOption {
	return func(m *HouseholdMutation) {
		var (
			err   error
			once  sync.Once
			value *Household
		)
		m.oldValue = func(ctx context.Context) (*Household, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Household.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHousehold sets the old Household of the mutation.
func withHousehold(node *Household) householdOption {
	return func(m *HouseholdMutation) {
		m.oldValue = func(context.Context) (*Household, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HouseholdMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HouseholdMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Household entities.
func (m *HouseholdMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HouseholdMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HouseholdMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Household.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *HouseholdMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *HouseholdMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *HouseholdMutation) ResetName() {
	m.name = nil
}

// SetCurrency sets the "currency" field.
func (m *HouseholdMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *HouseholdMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *HouseholdMutation) ResetCurrency() {
	m.currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HouseholdMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HouseholdMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HouseholdMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HouseholdMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HouseholdMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Household entity.
// If the Household object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HouseholdMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HouseholdMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by ids.
func (m *HouseholdMutation) AddReceiptIDs(ids ...uuid.UUID) {
	if m.receipts == nil {
		m.receipts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.receipts[ids[i]] = struct{}{}
	}
}

// ClearReceipts clears the "receipts" edge to the Receipt entity.
func (m *HouseholdMutation) ClearReceipts() {
	m.clearedreceipts = true
}

// ReceiptsCleared reports if the "receipts" edge to the Receipt entity was cleared.
func (m *HouseholdMutation) ReceiptsCleared() bool {
	return m.clearedreceipts
}

// RemoveReceiptIDs removes the "receipts" edge to the Receipt entity by IDs.
func (m *HouseholdMutation) RemoveReceiptIDs(ids ...uuid.UUID) {
	if m.removedreceipts == nil {
		m.removedreceipts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.receipts, ids[i])
		m.removedreceipts[ids[i]] = struct{}{}
	}
}

// RemovedReceipts returns the removed IDs of the "receipts" edge to the Receipt entity.
func (m *HouseholdMutation) RemovedReceiptsIDs() (ids []uuid.UUID) {
	for id := range m.removedreceipts {
		ids = append(ids, id)
	}
	return
}

// ReceiptsIDs returns the "receipts" edge IDs in the mutation.
func (m *HouseholdMutation) ReceiptsIDs() (ids []uuid.UUID) {
	for id := range m.receipts {
		ids = append(ids, id)
	}
	return
}

// ResetReceipts resets all changes to the "receipts" edge.
func (m *HouseholdMutation) ResetReceipts() {
	m.receipts = nil
	m.clearedreceipts = false
	m.removedreceipts = nil
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *HouseholdMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *HouseholdMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *HouseholdMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *HouseholdMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *HouseholdMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *HouseholdMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *HouseholdMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the HouseholdMutation builder.
func (m *HouseholdMutation) Where(ps ...predicate.Household) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HouseholdMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HouseholdMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Household, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HouseholdMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HouseholdMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Household).
func (m *HouseholdMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HouseholdMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, household.FieldName)
	}
	if m.currency != nil {
		fields = append(fields, household.FieldCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, household.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, household.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HouseholdMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case household.FieldName:
		return m.Name()
	case household.FieldCurrency:
		return m.Currency()
	case household.FieldCreatedAt:
		return m.CreatedAt()
	case household.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HouseholdMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case household.FieldName:
		return m.OldName(ctx)
	case household.FieldCurrency:
		return m.OldCurrency(ctx)
	case household.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case household.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Household field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HouseholdMutation) SetField(name string, value ent.Value) error {
	switch name {
	case household.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case household.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case household.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case household.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Household field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HouseholdMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HouseholdMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HouseholdMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Household numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HouseholdMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HouseholdMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HouseholdMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Household nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HouseholdMutation) ResetField(name string) error {
	switch name {
	case household.FieldName:
		m.ResetName()
		return nil
	case household.FieldCurrency:
		m.ResetCurrency()
		return nil
	case household.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case household.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Household field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HouseholdMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.receipts != nil {
		edges = append(edges, household.EdgeReceipts)
	}
	if m.jobs != nil {
		edges = append(edges, household.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HouseholdMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case household.EdgeReceipts:
		ids := make([]ent.Value, 0, len(m.receipts))
		for id := range m.receipts {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HouseholdMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreceipts != nil {
		edges = append(edges, household.EdgeReceipts)
	}
	if m.removedjobs != nil {
		edges = append(edges, household.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HouseholdMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case household.EdgeReceipts:
		ids := make([]ent.Value, 0, len(m.removedreceipts))
		for id := range m.removedreceipts {
			ids = append(ids, id)
		}
		return ids
	case household.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HouseholdMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreceipts {
		edges = append(edges, household.EdgeReceipts)
	}
	if m.clearedjobs {
		edges = append(edges, household.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HouseholdMutation) EdgeCleared(name string) bool {
	switch name {
	case household.EdgeReceipts:
		return m.clearedreceipts
	case household.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HouseholdMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Household unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HouseholdMutation) ResetEdge(name string) error {
	switch name {
	case household.EdgeReceipts:
		m.ResetReceipts()
		return nil
	case household.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Household edge %s", name)
}

// ParseJobMutation represents an operation that mutates the ParseJob nodes in the graph.
type ParseJobMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	started_at        *time.Time
	finished_at       *time.Time
	status            *string
	error_message     *string
	ocr_payload       *json.RawMessage
	appendocr_payload json.RawMessage
	item_count        *int
	additem_count     *int
	confidence        *float64
	addconfidence     *float64
	needs_review      *bool
	ocr_text          *string
	clearedFields     map[string]struct{}
	household         *uuid.UUID
	clearedhousehold  bool
	receipt           *uuid.UUID
	clearedreceipt    bool
	done              bool
	oldValue          func(context.Context) (*ParseJob, error)
	predicates        []predicate.ParseJob
}

var _ ent.Mutation = (*ParseJobMutation)(nil)

// parsejobOption allows management of the mutation configuration using functional options.
type parsejobOption func(*ParseJobMutation)

// newParseJobMutation creates new mutation for the ParseJob entity.
func newParseJobMutation(c config, op Op, opts ...parsejobOption) *ParseJobMutation {
	m := &ParseJobMutation{
		config:        c,
		op:            op,
		typ:           TypeParseJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseJobID sets the ID field of the mutation.
func withParseJobID(id uuid.UUID) parsejobOption {
	return func(m *ParseJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseJob
		)
		m.oldValue = func(ctx context.Context) (*ParseJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseJob sets the old ParseJob of the mutation.
func withParseJob(node *ParseJob) parsejobOption {
	return func(m *ParseJobMutation) {
		m.oldValue = func(context.Context) (*ParseJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseJob entities.
func (m *ParseJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHouseholdID sets the "household_id" field.
func (m *ParseJobMutation) SetHouseholdID(u uuid.UUID) {
	m.household = &u
}

// HouseholdID returns the value of the "household_id" field in the mutation.
func (m *ParseJobMutation) HouseholdID() (r uuid.UUID, exists bool) {
	v := m.household
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdID returns the old "household_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldHouseholdID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdID: %w", err)
	}
	return oldValue.HouseholdID, nil
}

// ResetHouseholdID resets all changes to the "household_id" field.
func (m *ParseJobMutation) ResetHouseholdID() {
	m.household = nil
}

// SetReceiptID sets the "receipt_id" field.
func (m *ParseJobMutation) SetReceiptID(u uuid.UUID) {
	m.receipt = &u
}

// ReceiptID returns the value of the "receipt_id" field in the mutation.
func (m *ParseJobMutation) ReceiptID() (r uuid.UUID, exists bool) {
	v := m.receipt
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptID returns the old "receipt_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldReceiptID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptID: %w", err)
	}
	return oldValue.ReceiptID, nil
}

// ClearReceiptID clears the value of the "receipt_id" field.
func (m *ParseJobMutation) ClearReceiptID() {
	m.receipt = nil
	m.clearedFields[parsejob.FieldReceiptID] = struct{}{}
}

// ReceiptIDCleared returns if the "receipt_id" field was cleared in this mutation.
func (m *ParseJobMutation) ReceiptIDCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldReceiptID]
	return ok
}

// ResetReceiptID resets all changes to the "receipt_id" field.
func (m *ParseJobMutation) ResetReceiptID() {
	m.receipt = nil
	delete(m.clearedFields, parsejob.FieldReceiptID)
}

// SetStartedAt sets the "started_at" field.
func (m *ParseJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ParseJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ParseJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ParseJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ParseJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ParseJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[parsejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ParseJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ParseJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, parsejob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ParseJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParseJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ParseJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[parsejob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ParseJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ParseJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, parsejob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ParseJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ParseJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ParseJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[parsejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ParseJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ParseJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, parsejob.FieldErrorMessage)
}

// SetOcrPayload sets the "ocr_payload" field.
func (m *ParseJobMutation) SetOcrPayload(jm json.RawMessage) {
	m.ocr_payload = &jm
	m.appendocr_payload = nil
}

// OcrPayload returns the value of the "ocr_payload" field in the mutation.
func (m *ParseJobMutation) OcrPayload() (r json.RawMessage, exists bool) {
	v := m.ocr_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrPayload returns the old "ocr_payload" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldOcrPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrPayload: %w", err)
	}
	return oldValue.OcrPayload, nil
}

// AppendOcrPayload adds jm to the "ocr_payload" field.
func (m *ParseJobMutation) AppendOcrPayload(jm json.RawMessage) {
	m.appendocr_payload = append(m.appendocr_payload, jm...)
}

// AppendedOcrPayload returns the list of values that were appended to the "ocr_payload" field in this mutation.
func (m *ParseJobMutation) AppendedOcrPayload() (json.RawMessage, bool) {
	if len(m.appendocr_payload) == 0 {
		return nil, false
	}
	return m.appendocr_payload, true
}

// ClearOcrPayload clears the value of the "ocr_payload" field.
func (m *ParseJobMutation) ClearOcrPayload() {
	m.ocr_payload = nil
	m.appendocr_payload = nil
	m.clearedFields[parsejob.FieldOcrPayload] = struct{}{}
}

// OcrPayloadCleared returns if the "ocr_payload" field was cleared in this mutation.
func (m *ParseJobMutation) OcrPayloadCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldOcrPayload]
	return ok
}

// ResetOcrPayload resets all changes to the "ocr_payload" field.
func (m *ParseJobMutation) ResetOcrPayload() {
	m.ocr_payload = nil
	m.appendocr_payload = nil
	delete(m.clearedFields, parsejob.FieldOcrPayload)
}

// SetItemCount sets the "item_count" field.
func (m *ParseJobMutation) SetItemCount(i int) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *ParseJobMutation) ItemCount() (r int, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldItemCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *ParseJobMutation) AddItemCount(i int) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *ParseJobMutation) AddedItemCount() (r int, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearItemCount clears the value of the "item_count" field.
func (m *ParseJobMutation) ClearItemCount() {
	m.item_count = nil
	m.additem_count = nil
	m.clearedFields[parsejob.FieldItemCount] = struct{}{}
}

// ItemCountCleared returns if the "item_count" field was cleared in this mutation.
func (m *ParseJobMutation) ItemCountCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldItemCount]
	return ok
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *ParseJobMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
	delete(m.clearedFields, parsejob.FieldItemCount)
}

// SetConfidence sets the "confidence" field.
func (m *ParseJobMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ParseJobMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ParseJobMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ParseJobMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ParseJobMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[parsejob.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ParseJobMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ParseJobMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, parsejob.FieldConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ParseJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ParseJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ParseJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *ParseJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ParseJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ParseJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[parsejob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ParseJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ParseJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, parsejob.FieldOcrText)
}

// ClearHousehold clears the "household" edge to the Household entity.
func (m *ParseJobMutation) ClearHousehold() {
	m.clearedhousehold = true
	m.clearedFields[parsejob.FieldHouseholdID] = struct{}{}
}

// HouseholdCleared reports if the "household" edge to the Household entity was cleared.
func (m *ParseJobMutation) HouseholdCleared() bool {
	return m.clearedhousehold
}

// HouseholdIDs returns the "household" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HouseholdID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) HouseholdIDs() (ids []uuid.UUID) {
	if id := m.household; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHousehold resets all changes to the "household" edge.
func (m *ParseJobMutation) ResetHousehold() {
	m.household = nil
	m.clearedhousehold = false
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (m *ParseJobMutation) ClearReceipt() {
	m.clearedreceipt = true
	m.clearedFields[parsejob.FieldReceiptID] = struct{}{}
}

// ReceiptCleared reports if the "receipt" edge to the Receipt entity was cleared.
func (m *ParseJobMutation) ReceiptCleared() bool {
	return m.ReceiptIDCleared() || m.clearedreceipt
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *ParseJobMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// Where appends a list predicates to the ParseJobMutation builder.
func (m *ParseJobMutation) Where(ps ...predicate.ParseJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseJob).
func (m *ParseJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.household != nil {
		fields = append(fields, parsejob.FieldHouseholdID)
	}
	if m.receipt != nil {
		fields = append(fields, parsejob.FieldReceiptID)
	}
	if m.started_at != nil {
		fields = append(fields, parsejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.ocr_payload != nil {
		fields = append(fields, parsejob.FieldOcrPayload)
	}
	if m.item_count != nil {
		fields = append(fields, parsejob.FieldItemCount)
	}
	if m.confidence != nil {
		fields = append(fields, parsejob.FieldConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, parsejob.FieldNeedsReview)
	}
	if m.ocr_text != nil {
		fields = append(fields, parsejob.FieldOcrText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldHouseholdID:
		return m.HouseholdID()
	case parsejob.FieldReceiptID:
		return m.ReceiptID()
	case parsejob.FieldStartedAt:
		return m.StartedAt()
	case parsejob.FieldFinishedAt:
		return m.FinishedAt()
	case parsejob.FieldStatus:
		return m.Status()
	case parsejob.FieldErrorMessage:
		return m.ErrorMessage()
	case parsejob.FieldOcrPayload:
		return m.OcrPayload()
	case parsejob.FieldItemCount:
		return m.ItemCount()
	case parsejob.FieldConfidence:
		return m.Confidence()
	case parsejob.FieldNeedsReview:
		return m.NeedsReview()
	case parsejob.FieldOcrText:
		return m.OcrText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parsejob.FieldHouseholdID:
		return m.OldHouseholdID(ctx)
	case parsejob.FieldReceiptID:
		return m.OldReceiptID(ctx)
	case parsejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case parsejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case parsejob.FieldStatus:
		return m.OldStatus(ctx)
	case parsejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case parsejob.FieldOcrPayload:
		return m.OldOcrPayload(ctx)
	case parsejob.FieldItemCount:
		return m.OldItemCount(ctx)
	case parsejob.FieldConfidence:
		return m.OldConfidence(ctx)
	case parsejob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case parsejob.FieldOcrText:
		return m.OldOcrText(ctx)
	}
	return nil, fmt.Errorf("unknown ParseJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldHouseholdID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdID(v)
		return nil
	case parsejob.FieldReceiptID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptID(v)
		return nil
	case parsejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case parsejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case parsejob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case parsejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case parsejob.FieldOcrPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrPayload(v)
		return nil
	case parsejob.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case parsejob.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case parsejob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case parsejob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseJobMutation) AddedFields() []string {
	var fields []string
	if m.additem_count != nil {
		fields = append(fields, parsejob.FieldItemCount)
	}
	if m.addconfidence != nil {
		fields = append(fields, parsejob.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldItemCount:
		return m.AddedItemCount()
	case parsejob.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	case parsejob.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parsejob.FieldReceiptID) {
		fields = append(fields, parsejob.FieldReceiptID)
	}
	if m.FieldCleared(parsejob.FieldFinishedAt) {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.FieldCleared(parsejob.FieldStatus) {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.FieldCleared(parsejob.FieldErrorMessage) {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.FieldCleared(parsejob.FieldOcrPayload) {
		fields = append(fields, parsejob.FieldOcrPayload)
	}
	if m.FieldCleared(parsejob.FieldItemCount) {
		fields = append(fields, parsejob.FieldItemCount)
	}
	if m.FieldCleared(parsejob.FieldConfidence) {
		fields = append(fields, parsejob.FieldConfidence)
	}
	if m.FieldCleared(parsejob.FieldOcrText) {
		fields = append(fields, parsejob.FieldOcrText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseJobMutation) ClearField(name string) error {
	switch name {
	case parsejob.FieldReceiptID:
		m.ClearReceiptID()
		return nil
	case parsejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ClearStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case parsejob.FieldOcrPayload:
		m.ClearOcrPayload()
		return nil
	case parsejob.FieldItemCount:
		m.ClearItemCount()
		return nil
	case parsejob.FieldConfidence:
		m.ClearConfidence()
		return nil
	case parsejob.FieldOcrText:
		m.ClearOcrText()
		return nil
	}
	return fmt.Errorf("unknown ParseJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseJobMutation) ResetField(name string) error {
	switch name {
	case parsejob.FieldHouseholdID:
		m.ResetHouseholdID()
		return nil
	case parsejob.FieldReceiptID:
		m.ResetReceiptID()
		return nil
	case parsejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case parsejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ResetStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case parsejob.FieldOcrPayload:
		m.ResetOcrPayload()
		return nil
	case parsejob.FieldItemCount:
		m.ResetItemCount()
		return nil
	case parsejob.FieldConfidence:
		m.ResetConfidence()
		return nil
	case parsejob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case parsejob.FieldOcrText:
		m.ResetOcrText()
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.household != nil {
		edges = append(edges, parsejob.EdgeHousehold)
	}
	if m.receipt != nil {
		edges = append(edges, parsejob.EdgeReceipt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parsejob.EdgeHousehold:
		if id := m.household; id != nil {
			return []ent.Value{*id}
		}
	case parsejob.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedhousehold {
		edges = append(edges, parsejob.EdgeHousehold)
	}
	if m.clearedreceipt {
		edges = append(edges, parsejob.EdgeReceipt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseJobMutation) EdgeCleared(name string) bool {
	switch name {
	case parsejob.EdgeHousehold:
		return m.clearedhousehold
	case parsejob.EdgeReceipt:
		return m.clearedreceipt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseJobMutation) ClearEdge(name string) error {
	switch name {
	case parsejob.EdgeHousehold:
		m.ClearHousehold()
		return nil
	case parsejob.EdgeReceipt:
		m.ClearReceipt()
		return nil
	}
	return fmt.Errorf("unknown ParseJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseJobMutation) ResetEdge(name string) error {
	switch name {
	case parsejob.EdgeHousehold:
		m.ResetHousehold()
		return nil
	case parsejob.EdgeReceipt:
		m.ResetReceipt()
		return nil
	}
	return fmt.Errorf("unknown ParseJob edge %s", name)
}

// ReceiptMutation represents an operation that mutates the Receipt nodes in the graph.
type ReceiptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	merchant_name       *string
	receipt_date        *time.Time
	total_amount        *float64
	addtotal_amount     *float64
	calculated_total    *float64
	addcalculated_total *float64
	total_matches       *bool
	verification        *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	household           *uuid.UUID
	clearedhousehold    bool
	items               map[uuid.UUID]struct{}
	removeditems        map[uuid.UUID]struct{}
	cleareditems        bool
	jobs                map[uuid.UUID]struct{}
	removedjobs         map[uuid.UUID]struct{}
	clearedjobs         bool
	done                bool
	oldValue            func(context.Context) (*Receipt, error)
	predicates          []predicate.Receipt
}

var _ ent.Mutation = (*ReceiptMutation)(nil)

// receiptOption allows management of the mutation configuration using functional options.
type receiptOption func(*ReceiptMutation)

// newReceiptMutation creates new mutation for the Receipt entity.
func newReceiptMutation(c config, op Op, opts ...receiptOption) *ReceiptMutation {
	m := &ReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypeReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptID sets the ID field of the mutation.
func withReceiptID(id uuid.UUID) receiptOption {
	return func(m *ReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *Receipt
		)
		m.oldValue = func(ctx context.Context) (*Receipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Receipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceipt sets the old Receipt of the mutation.
func withReceipt(node *Receipt) receiptOption {
	return func(m *ReceiptMutation) {
		m.oldValue = func(context.Context) (*Receipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Receipt entities.
func (m *ReceiptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Receipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHouseholdID sets the "household_id" field.
func (m *ReceiptMutation) SetHouseholdID(u uuid.UUID) {
	m.household = &u
}

// HouseholdID returns the value of the "household_id" field in the mutation.
func (m *ReceiptMutation) HouseholdID() (r uuid.UUID, exists bool) {
	v := m.household
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdID returns the old "household_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldHouseholdID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdID: %w", err)
	}
	return oldValue.HouseholdID, nil
}

// ResetHouseholdID resets all changes to the "household_id" field.
func (m *ReceiptMutation) ResetHouseholdID() {
	m.household = nil
}

// SetMerchantName sets the "merchant_name" field.
func (m *ReceiptMutation) SetMerchantName(s string) {
	m.merchant_name = &s
}

// MerchantName returns the value of the "merchant_name" field in the mutation.
func (m *ReceiptMutation) MerchantName() (r string, exists bool) {
	v := m.merchant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantName returns the old "merchant_name" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldMerchantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantName: %w", err)
	}
	return oldValue.MerchantName, nil
}

// ClearMerchantName clears the value of the "merchant_name" field.
func (m *ReceiptMutation) ClearMerchantName() {
	m.merchant_name = nil
	m.clearedFields[receipt.FieldMerchantName] = struct{}{}
}

// MerchantNameCleared returns if the "merchant_name" field was cleared in this mutation.
func (m *ReceiptMutation) MerchantNameCleared() bool {
	_, ok := m.clearedFields[receipt.FieldMerchantName]
	return ok
}

// ResetMerchantName resets all changes to the "merchant_name" field.
func (m *ReceiptMutation) ResetMerchantName() {
	m.merchant_name = nil
	delete(m.clearedFields, receipt.FieldMerchantName)
}

// SetReceiptDate sets the "receipt_date" field.
func (m *ReceiptMutation) SetReceiptDate(t time.Time) {
	m.receipt_date = &t
}

// ReceiptDate returns the value of the "receipt_date" field in the mutation.
func (m *ReceiptMutation) ReceiptDate() (r time.Time, exists bool) {
	v := m.receipt_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptDate returns the old "receipt_date" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldReceiptDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptDate: %w", err)
	}
	return oldValue.ReceiptDate, nil
}

// ClearReceiptDate clears the value of the "receipt_date" field.
func (m *ReceiptMutation) ClearReceiptDate() {
	m.receipt_date = nil
	m.clearedFields[receipt.FieldReceiptDate] = struct{}{}
}

// ReceiptDateCleared returns if the "receipt_date" field was cleared in this mutation.
func (m *ReceiptMutation) ReceiptDateCleared() bool {
	_, ok := m.clearedFields[receipt.FieldReceiptDate]
	return ok
}

// ResetReceiptDate resets all changes to the "receipt_date" field.
func (m *ReceiptMutation) ResetReceiptDate() {
	m.receipt_date = nil
	delete(m.clearedFields, receipt.FieldReceiptDate)
}

// SetTotalAmount sets the "total_amount" field.
func (m *ReceiptMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *ReceiptMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *ReceiptMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *ReceiptMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *ReceiptMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[receipt.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *ReceiptMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *ReceiptMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, receipt.FieldTotalAmount)
}

// SetCalculatedTotal sets the "calculated_total" field.
func (m *ReceiptMutation) SetCalculatedTotal(f float64) {
	m.calculated_total = &f
	m.addcalculated_total = nil
}

// CalculatedTotal returns the value of the "calculated_total" field in the mutation.
func (m *ReceiptMutation) CalculatedTotal() (r float64, exists bool) {
	v := m.calculated_total
	if v == nil {
		return
	}
	return *v, true
}

// OldCalculatedTotal returns the old "calculated_total" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCalculatedTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalculatedTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalculatedTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalculatedTotal: %w", err)
	}
	return oldValue.CalculatedTotal, nil
}

// AddCalculatedTotal adds f to the "calculated_total" field.
func (m *ReceiptMutation) AddCalculatedTotal(f float64) {
	if m.addcalculated_total != nil {
		*m.addcalculated_total += f
	} else {
		m.addcalculated_total = &f
	}
}

// AddedCalculatedTotal returns the value that was added to the "calculated_total" field in this mutation.
func (m *ReceiptMutation) AddedCalculatedTotal() (r float64, exists bool) {
	v := m.addcalculated_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetCalculatedTotal resets all changes to the "calculated_total" field.
func (m *ReceiptMutation) ResetCalculatedTotal() {
	m.calculated_total = nil
	m.addcalculated_total = nil
}

// SetTotalMatches sets the "total_matches" field.
func (m *ReceiptMutation) SetTotalMatches(b bool) {
	m.total_matches = &b
}

// TotalMatches returns the value of the "total_matches" field in the mutation.
func (m *ReceiptMutation) TotalMatches() (r bool, exists bool) {
	v := m.total_matches
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMatches returns the old "total_matches" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTotalMatches(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMatches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMatches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMatches: %w", err)
	}
	return oldValue.TotalMatches, nil
}

// ResetTotalMatches resets all changes to the "total_matches" field.
func (m *ReceiptMutation) ResetTotalMatches() {
	m.total_matches = nil
}

// SetVerification sets the "verification" field.
func (m *ReceiptMutation) SetVerification(s string) {
	m.verification = &s
}

// Verification returns the value of the "verification" field in the mutation.
func (m *ReceiptMutation) Verification() (r string, exists bool) {
	v := m.verification
	if v == nil {
		return
	}
	return *v, true
}

// OldVerification returns the old "verification" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldVerification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerification: %w", err)
	}
	return oldValue.Verification, nil
}

// ClearVerification clears the value of the "verification" field.
func (m *ReceiptMutation) ClearVerification() {
	m.verification = nil
	m.clearedFields[receipt.FieldVerification] = struct{}{}
}

// VerificationCleared returns if the "verification" field was cleared in this mutation.
func (m *ReceiptMutation) VerificationCleared() bool {
	_, ok := m.clearedFields[receipt.FieldVerification]
	return ok
}

// ResetVerification resets all changes to the "verification" field.
func (m *ReceiptMutation) ResetVerification() {
	m.verification = nil
	delete(m.clearedFields, receipt.FieldVerification)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReceiptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReceiptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReceiptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReceiptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReceiptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReceiptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearHousehold clears the "household" edge to the Household entity.
func (m *ReceiptMutation) ClearHousehold() {
	m.clearedhousehold = true
	m.clearedFields[receipt.FieldHouseholdID] = struct{}{}
}

// HouseholdCleared reports if the "household" edge to the Household entity was cleared.
func (m *ReceiptMutation) HouseholdCleared() bool {
	return m.clearedhousehold
}

// HouseholdIDs returns the "household" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HouseholdID instead. It exists only for internal usage by the builders.
func (m *ReceiptMutation) HouseholdIDs() (ids []uuid.UUID) {
	if id := m.household; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHousehold resets all changes to the "household" edge.
func (m *ReceiptMutation) ResetHousehold() {
	m.household = nil
	m.clearedhousehold = false
}

// AddItemIDs adds the "items" edge to the ReceiptItem entity by ids.
func (m *ReceiptMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the ReceiptItem entity.
func (m *ReceiptMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the ReceiptItem entity was cleared.
func (m *ReceiptMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the ReceiptItem entity by IDs.
func (m *ReceiptMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the ReceiptItem entity.
func (m *ReceiptMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *ReceiptMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *ReceiptMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *ReceiptMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *ReceiptMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *ReceiptMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *ReceiptMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *ReceiptMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ReceiptMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ReceiptMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ReceiptMutation builder.
func (m *ReceiptMutation) Where(ps ...predicate.Receipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Receipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Receipt).
func (m *ReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.household != nil {
		fields = append(fields, receipt.FieldHouseholdID)
	}
	if m.merchant_name != nil {
		fields = append(fields, receipt.FieldMerchantName)
	}
	if m.receipt_date != nil {
		fields = append(fields, receipt.FieldReceiptDate)
	}
	if m.total_amount != nil {
		fields = append(fields, receipt.FieldTotalAmount)
	}
	if m.calculated_total != nil {
		fields = append(fields, receipt.FieldCalculatedTotal)
	}
	if m.total_matches != nil {
		fields = append(fields, receipt.FieldTotalMatches)
	}
	if m.verification != nil {
		fields = append(fields, receipt.FieldVerification)
	}
	if m.created_at != nil {
		fields = append(fields, receipt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, receipt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldHouseholdID:
		return m.HouseholdID()
	case receipt.FieldMerchantName:
		return m.MerchantName()
	case receipt.FieldReceiptDate:
		return m.ReceiptDate()
	case receipt.FieldTotalAmount:
		return m.TotalAmount()
	case receipt.FieldCalculatedTotal:
		return m.CalculatedTotal()
	case receipt.FieldTotalMatches:
		return m.TotalMatches()
	case receipt.FieldVerification:
		return m.Verification()
	case receipt.FieldCreatedAt:
		return m.CreatedAt()
	case receipt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receipt.FieldHouseholdID:
		return m.OldHouseholdID(ctx)
	case receipt.FieldMerchantName:
		return m.OldMerchantName(ctx)
	case receipt.FieldReceiptDate:
		return m.OldReceiptDate(ctx)
	case receipt.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case receipt.FieldCalculatedTotal:
		return m.OldCalculatedTotal(ctx)
	case receipt.FieldTotalMatches:
		return m.OldTotalMatches(ctx)
	case receipt.FieldVerification:
		return m.OldVerification(ctx)
	case receipt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case receipt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Receipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldHouseholdID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdID(v)
		return nil
	case receipt.FieldMerchantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantName(v)
		return nil
	case receipt.FieldReceiptDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptDate(v)
		return nil
	case receipt.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case receipt.FieldCalculatedTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalculatedTotal(v)
		return nil
	case receipt.FieldTotalMatches:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMatches(v)
		return nil
	case receipt.FieldVerification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerification(v)
		return nil
	case receipt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case receipt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, receipt.FieldTotalAmount)
	}
	if m.addcalculated_total != nil {
		fields = append(fields, receipt.FieldCalculatedTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldTotalAmount:
		return m.AddedTotalAmount()
	case receipt.FieldCalculatedTotal:
		return m.AddedCalculatedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case receipt.FieldCalculatedTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCalculatedTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receipt.FieldMerchantName) {
		fields = append(fields, receipt.FieldMerchantName)
	}
	if m.FieldCleared(receipt.FieldReceiptDate) {
		fields = append(fields, receipt.FieldReceiptDate)
	}
	if m.FieldCleared(receipt.FieldTotalAmount) {
		fields = append(fields, receipt.FieldTotalAmount)
	}
	if m.FieldCleared(receipt.FieldVerification) {
		fields = append(fields, receipt.FieldVerification)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptMutation) ClearField(name string) error {
	switch name {
	case receipt.FieldMerchantName:
		m.ClearMerchantName()
		return nil
	case receipt.FieldReceiptDate:
		m.ClearReceiptDate()
		return nil
	case receipt.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case receipt.FieldVerification:
		m.ClearVerification()
		return nil
	}
	return fmt.Errorf("unknown Receipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptMutation) ResetField(name string) error {
	switch name {
	case receipt.FieldHouseholdID:
		m.ResetHouseholdID()
		return nil
	case receipt.FieldMerchantName:
		m.ResetMerchantName()
		return nil
	case receipt.FieldReceiptDate:
		m.ResetReceiptDate()
		return nil
	case receipt.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case receipt.FieldCalculatedTotal:
		m.ResetCalculatedTotal()
		return nil
	case receipt.FieldTotalMatches:
		m.ResetTotalMatches()
		return nil
	case receipt.FieldVerification:
		m.ResetVerification()
		return nil
	case receipt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case receipt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.household != nil {
		edges = append(edges, receipt.EdgeHousehold)
	}
	if m.items != nil {
		edges = append(edges, receipt.EdgeItems)
	}
	if m.jobs != nil {
		edges = append(edges, receipt.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeHousehold:
		if id := m.household; id != nil {
			return []ent.Value{*id}
		}
	case receipt.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case receipt.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeditems != nil {
		edges = append(edges, receipt.EdgeItems)
	}
	if m.removedjobs != nil {
		edges = append(edges, receipt.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case receipt.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedhousehold {
		edges = append(edges, receipt.EdgeHousehold)
	}
	if m.cleareditems {
		edges = append(edges, receipt.EdgeItems)
	}
	if m.clearedjobs {
		edges = append(edges, receipt.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptMutation) EdgeCleared(name string) bool {
	switch name {
	case receipt.EdgeHousehold:
		return m.clearedhousehold
	case receipt.EdgeItems:
		return m.cleareditems
	case receipt.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptMutation) ClearEdge(name string) error {
	switch name {
	case receipt.EdgeHousehold:
		m.ClearHousehold()
		return nil
	}
	return fmt.Errorf("unknown Receipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptMutation) ResetEdge(name string) error {
	switch name {
	case receipt.EdgeHousehold:
		m.ResetHousehold()
		return nil
	case receipt.EdgeItems:
		m.ResetItems()
		return nil
	case receipt.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Receipt edge %s", name)
}

// ReceiptItemMutation represents an operation that mutates the ReceiptItem nodes in the graph.
type ReceiptItemMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	quantity       *int
	addquantity    *int
	unit_price     *float64
	addunit_price  *float64
	total_price    *float64
	addtotal_price *float64
	line_number    *int
	addline_number *int
	confidence     *float64
	addconfidence  *float64
	clearedFields  map[string]struct{}
	receipt        *uuid.UUID
	clearedreceipt bool
	done           bool
	oldValue       func(context.Context) (*ReceiptItem, error)
	predicates     []predicate.ReceiptItem
}

var _ ent.Mutation = (*ReceiptItemMutation)(nil)

// receiptitemOption allows management of the mutation configuration using functional options.
type receiptitemOption func(*ReceiptItemMutation)

// newReceiptItemMutation creates new mutation for the ReceiptItem entity.
func newReceiptItemMutation(c config, op Op, opts ...receiptitemOption) *ReceiptItemMutation {
	m := &ReceiptItemMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiptItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptItemID sets the ID field of the mutation.
func withReceiptItemID(id uuid.UUID) receiptitemOption {
	return func(m *ReceiptItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ReceiptItem
		)
		m.oldValue = func(ctx context.Context) (*ReceiptItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReceiptItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiptItem sets the old ReceiptItem of the mutation.
func withReceiptItem(node *ReceiptItem) receiptitemOption {
	return func(m *ReceiptItemMutation) {
		m.oldValue = func(context.Context) (*ReceiptItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReceiptItem entities.
func (m *ReceiptItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReceiptItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReceiptID sets the "receipt_id" field.
func (m *ReceiptItemMutation) SetReceiptID(u uuid.UUID) {
	m.receipt = &u
}

// ReceiptID returns the value of the "receipt_id" field in the mutation.
func (m *ReceiptItemMutation) ReceiptID() (r uuid.UUID, exists bool) {
	v := m.receipt
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptID returns the old "receipt_id" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldReceiptID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptID: %w", err)
	}
	return oldValue.ReceiptID, nil
}

// ResetReceiptID resets all changes to the "receipt_id" field.
func (m *ReceiptItemMutation) ResetReceiptID() {
	m.receipt = nil
}

// SetName sets the "name" field.
func (m *ReceiptItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ReceiptItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ReceiptItemMutation) ResetName() {
	m.name = nil
}

// SetQuantity sets the "quantity" field.
func (m *ReceiptItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ReceiptItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *ReceiptItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ReceiptItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ReceiptItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *ReceiptItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *ReceiptItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldUnitPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *ReceiptItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *ReceiptItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (m *ReceiptItemMutation) ClearUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	m.clearedFields[receiptitem.FieldUnitPrice] = struct{}{}
}

// UnitPriceCleared returns if the "unit_price" field was cleared in this mutation.
func (m *ReceiptItemMutation) UnitPriceCleared() bool {
	_, ok := m.clearedFields[receiptitem.FieldUnitPrice]
	return ok
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *ReceiptItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	delete(m.clearedFields, receiptitem.FieldUnitPrice)
}

// SetTotalPrice sets the "total_price" field.
func (m *ReceiptItemMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *ReceiptItemMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldTotalPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *ReceiptItemMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *ReceiptItemMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *ReceiptItemMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
}

// SetLineNumber sets the "line_number" field.
func (m *ReceiptItemMutation) SetLineNumber(i int) {
	m.line_number = &i
	m.addline_number = nil
}

// LineNumber returns the value of the "line_number" field in the mutation.
func (m *ReceiptItemMutation) LineNumber() (r int, exists bool) {
	v := m.line_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLineNumber returns the old "line_number" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldLineNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineNumber: %w", err)
	}
	return oldValue.LineNumber, nil
}

// AddLineNumber adds i to the "line_number" field.
func (m *ReceiptItemMutation) AddLineNumber(i int) {
	if m.addline_number != nil {
		*m.addline_number += i
	} else {
		m.addline_number = &i
	}
}

// AddedLineNumber returns the value that was added to the "line_number" field in this mutation.
func (m *ReceiptItemMutation) AddedLineNumber() (r int, exists bool) {
	v := m.addline_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineNumber resets all changes to the "line_number" field.
func (m *ReceiptItemMutation) ResetLineNumber() {
	m.line_number = nil
	m.addline_number = nil
}

// SetConfidence sets the "confidence" field.
func (m *ReceiptItemMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ReceiptItemMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ReceiptItemMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ReceiptItemMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ReceiptItemMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (m *ReceiptItemMutation) ClearReceipt() {
	m.clearedreceipt = true
	m.clearedFields[receiptitem.FieldReceiptID] = struct{}{}
}

// ReceiptCleared reports if the "receipt" edge to the Receipt entity was cleared.
func (m *ReceiptItemMutation) ReceiptCleared() bool {
	return m.clearedreceipt
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *ReceiptItemMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *ReceiptItemMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// Where appends a list predicates to the ReceiptItemMutation builder.
func (m *ReceiptItemMutation) Where(ps ...predicate.ReceiptItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReceiptItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReceiptItem).
func (m *ReceiptItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.receipt != nil {
		fields = append(fields, receiptitem.FieldReceiptID)
	}
	if m.name != nil {
		fields = append(fields, receiptitem.FieldName)
	}
	if m.quantity != nil {
		fields = append(fields, receiptitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, receiptitem.FieldUnitPrice)
	}
	if m.total_price != nil {
		fields = append(fields, receiptitem.FieldTotalPrice)
	}
	if m.line_number != nil {
		fields = append(fields, receiptitem.FieldLineNumber)
	}
	if m.confidence != nil {
		fields = append(fields, receiptitem.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiptitem.FieldReceiptID:
		return m.ReceiptID()
	case receiptitem.FieldName:
		return m.Name()
	case receiptitem.FieldQuantity:
		return m.Quantity()
	case receiptitem.FieldUnitPrice:
		return m.UnitPrice()
	case receiptitem.FieldTotalPrice:
		return m.TotalPrice()
	case receiptitem.FieldLineNumber:
		return m.LineNumber()
	case receiptitem.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiptitem.FieldReceiptID:
		return m.OldReceiptID(ctx)
	case receiptitem.FieldName:
		return m.OldName(ctx)
	case receiptitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case receiptitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case receiptitem.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case receiptitem.FieldLineNumber:
		return m.OldLineNumber(ctx)
	case receiptitem.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown ReceiptItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiptitem.FieldReceiptID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptID(v)
		return nil
	case receiptitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case receiptitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case receiptitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case receiptitem.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case receiptitem.FieldLineNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineNumber(v)
		return nil
	case receiptitem.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, receiptitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, receiptitem.FieldUnitPrice)
	}
	if m.addtotal_price != nil {
		fields = append(fields, receiptitem.FieldTotalPrice)
	}
	if m.addline_number != nil {
		fields = append(fields, receiptitem.FieldLineNumber)
	}
	if m.addconfidence != nil {
		fields = append(fields, receiptitem.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receiptitem.FieldQuantity:
		return m.AddedQuantity()
	case receiptitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case receiptitem.FieldTotalPrice:
		return m.AddedTotalPrice()
	case receiptitem.FieldLineNumber:
		return m.AddedLineNumber()
	case receiptitem.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receiptitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case receiptitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case receiptitem.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	case receiptitem.FieldLineNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineNumber(v)
		return nil
	case receiptitem.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receiptitem.FieldUnitPrice) {
		fields = append(fields, receiptitem.FieldUnitPrice)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptItemMutation) ClearField(name string) error {
	switch name {
	case receiptitem.FieldUnitPrice:
		m.ClearUnitPrice()
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptItemMutation) ResetField(name string) error {
	switch name {
	case receiptitem.FieldReceiptID:
		m.ResetReceiptID()
		return nil
	case receiptitem.FieldName:
		m.ResetName()
		return nil
	case receiptitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case receiptitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case receiptitem.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case receiptitem.FieldLineNumber:
		m.ResetLineNumber()
		return nil
	case receiptitem.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receipt != nil {
		edges = append(edges, receiptitem.EdgeReceipt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiptitem.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceipt {
		edges = append(edges, receiptitem.EdgeReceipt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptItemMutation) EdgeCleared(name string) bool {
	switch name {
	case receiptitem.EdgeReceipt:
		return m.clearedreceipt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptItemMutation) ClearEdge(name string) error {
	switch name {
	case receiptitem.EdgeReceipt:
		m.ClearReceipt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptItemMutation) ResetEdge(name string) error {
	switch name {
	case receiptitem.EdgeReceipt:
		m.ResetReceipt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem edge %s", name)
}
