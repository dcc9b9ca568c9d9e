// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/gen/ent/parsejob"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
	"github.com/splithouse/receipts-engine/gen/ent/receiptitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Household is the client for interacting with the Household builders.
	Household *HouseholdClient
	// ParseJob is the client for interacting with the ParseJob builders.
	ParseJob *ParseJobClient
	// Receipt is the client for interacting with the Receipt builders.
	Receipt *ReceiptClient
	// ReceiptItem is the client for interacting with the ReceiptItem builders.
	ReceiptItem *ReceiptItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Household = NewHouseholdClient(c.config)
	c.ParseJob = NewParseJobClient(c.config)
	c.Receipt = NewReceiptClient(c.config)
	c.ReceiptItem = NewReceiptItemClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Household:   NewHouseholdClient(cfg),
		ParseJob:    NewParseJobClient(cfg),
		Receipt:     NewReceiptClient(cfg),
		ReceiptItem: NewReceiptItemClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Household:   NewHouseholdClient(cfg),
		ParseJob:    NewParseJobClient(cfg),
		Receipt:     NewReceiptClient(cfg),
		ReceiptItem: NewReceiptItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Household.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Household.Use(hooks...)
	c.ParseJob.Use(hooks...)
	c.Receipt.Use(hooks...)
	c.ReceiptItem.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Household.Intercept(interceptors...)
	c.ParseJob.Intercept(interceptors...)
	c.Receipt.Intercept(interceptors...)
	c.ReceiptItem.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *HouseholdMutation:
		return c.Household.mutate(ctx, m)
	case *ParseJobMutation:
		return c.ParseJob.mutate(ctx, m)
	case *ReceiptMutation:
		return c.Receipt.mutate(ctx, m)
	case *ReceiptItemMutation:
		return c.ReceiptItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// HouseholdClient is a client for the Household schema.
type HouseholdClient struct {
	config
}

// NewHouseholdClient returns a client for the Household from the given config.
func NewHouseholdClient(c config) *HouseholdClient {
	return &HouseholdClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `household.Hooks(f(g(h())))`.
func (c *HouseholdClient) Use(hooks ...Hook) {
	c.hooks.Household = append(c.hooks.Household, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `household.Intercept(f(g(h())))`.
func (c *HouseholdClient) Intercept(interceptors ...Interceptor) {
	c.inters.Household = append(c.inters.Household, interceptors...)
}

// Create returns a builder for creating a Household entity.
func (c *HouseholdClient) Create() *HouseholdCreate {
	mutation := newHouseholdMutation(c.config, OpCreate)
	return &HouseholdCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Household entities.
func (c *HouseholdClient) CreateBulk(builders ...*HouseholdCreate) *HouseholdCreateBulk {
	return &HouseholdCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HouseholdClient) MapCreateBulk(slice any, setFunc func(*HouseholdCreate, int)) *HouseholdCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HouseholdCreateBulk{err: fmt.Errorf("calling to HouseholdClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HouseholdCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HouseholdCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Household.
func (c *HouseholdClient) Update() *HouseholdUpdate {
	mutation := newHouseholdMutation(c.config, OpUpdate)
	return &HouseholdUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HouseholdClient) UpdateOne(_m *Household) *HouseholdUpdateOne {
	mutation := newHouseholdMutation(c.config, OpUpdateOne, withHousehold(_m))
	return &HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HouseholdClient) UpdateOneID(id uuid.UUID) *HouseholdUpdateOne {
	mutation := newHouseholdMutation(c.config, OpUpdateOne, withHouseholdID(id))
	return &HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Household.
func (c *HouseholdClient) Delete() *HouseholdDelete {
	mutation := newHouseholdMutation(c.config, OpDelete)
	return &HouseholdDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HouseholdClient) DeleteOne(_m *Household) *HouseholdDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HouseholdClient) DeleteOneID(id uuid.UUID) *HouseholdDeleteOne {
	builder := c.Delete().Where(household.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HouseholdDeleteOne{builder}
}

// Query returns a query builder for Household.
func (c *HouseholdClient) Query() *HouseholdQuery {
	return &HouseholdQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHousehold},
		inters: c.Interceptors(),
	}
}

// Get returns a Household entity by its id.
func (c *HouseholdClient) Get(ctx context.Context, id uuid.UUID) (*Household, error) {
	return c.Query().Where(household.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HouseholdClient) GetX(ctx context.Context, id uuid.UUID) *Household {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReceipts queries the receipts edge of a Household.
func (c *HouseholdClient) QueryReceipts(_m *Household) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(household.Table, household.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, household.ReceiptsTable, household.ReceiptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Household.
func (c *HouseholdClient) QueryJobs(_m *Household) *ParseJobQuery {
	query := (&ParseJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(household.Table, household.FieldID, id),
			sqlgraph.To(parsejob.Table, parsejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, household.JobsTable, household.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HouseholdClient) Hooks() []Hook {
	return c.hooks.Household
}

// Interceptors returns the client interceptors.
func (c *HouseholdClient) Interceptors() []Interceptor {
	return c.inters.Household
}

func (c *HouseholdClient) mutate(ctx context.Context, m *HouseholdMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HouseholdCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HouseholdUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HouseholdDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Household mutation op: %q", m.Op())
	}
}

// ParseJobClient is a client for the ParseJob schema.
type ParseJobClient struct {
	config
}

// NewParseJobClient returns a client for the ParseJob from the given config.
func NewParseJobClient(c config) *ParseJobClient {
	return &ParseJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parsejob.Hooks(f(g(h())))`.
func (c *ParseJobClient) Use(hooks ...Hook) {
	c.hooks.ParseJob = append(c.hooks.ParseJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parsejob.Intercept(f(g(h())))`.
func (c *ParseJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParseJob = append(c.inters.ParseJob, interceptors...)
}

// Create returns a builder for creating a ParseJob entity.
func (c *ParseJobClient) Create() *ParseJobCreate {
	mutation := newParseJobMutation(c.config, OpCreate)
	return &ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParseJob entities.
func (c *ParseJobClient) CreateBulk(builders ...*ParseJobCreate) *ParseJobCreateBulk {
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParseJobClient) MapCreateBulk(slice any, setFunc func(*ParseJobCreate, int)) *ParseJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParseJobCreateBulk{err: fmt.Errorf("calling to ParseJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParseJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParseJob.
func (c *ParseJobClient) Update() *ParseJobUpdate {
	mutation := newParseJobMutation(c.config, OpUpdate)
	return &ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParseJobClient) UpdateOne(_m *ParseJob) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJob(_m))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParseJobClient) UpdateOneID(id uuid.UUID) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJobID(id))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParseJob.
func (c *ParseJobClient) Delete() *ParseJobDelete {
	mutation := newParseJobMutation(c.config, OpDelete)
	return &ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParseJobClient) DeleteOne(_m *ParseJob) *ParseJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParseJobClient) DeleteOneID(id uuid.UUID) *ParseJobDeleteOne {
	builder := c.Delete().Where(parsejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParseJobDeleteOne{builder}
}

// Query returns a query builder for ParseJob.
func (c *ParseJobClient) Query() *ParseJobQuery {
	return &ParseJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParseJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ParseJob entity by its id.
func (c *ParseJobClient) Get(ctx context.Context, id uuid.UUID) (*ParseJob, error) {
	return c.Query().Where(parsejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParseJobClient) GetX(ctx context.Context, id uuid.UUID) *ParseJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHousehold queries the household edge of a ParseJob.
func (c *ParseJobClient) QueryHousehold(_m *ParseJob) *HouseholdQuery {
	query := (&HouseholdClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parsejob.Table, parsejob.FieldID, id),
			sqlgraph.To(household.Table, household.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parsejob.HouseholdTable, parsejob.HouseholdColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReceipt queries the receipt edge of a ParseJob.
func (c *ParseJobClient) QueryReceipt(_m *ParseJob) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parsejob.Table, parsejob.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parsejob.ReceiptTable, parsejob.ReceiptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParseJobClient) Hooks() []Hook {
	return c.hooks.ParseJob
}

// Interceptors returns the client interceptors.
func (c *ParseJobClient) Interceptors() []Interceptor {
	return c.inters.ParseJob
}

func (c *ParseJobClient) mutate(ctx context.Context, m *ParseJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParseJob mutation op: %q", m.Op())
	}
}

// ReceiptClient is a client for the Receipt schema.
type ReceiptClient struct {
	config
}

// NewReceiptClient returns a client for the Receipt from the given config.
func NewReceiptClient(c config) *ReceiptClient {
	return &ReceiptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receipt.Hooks(f(g(h())))`.
func (c *ReceiptClient) Use(hooks ...Hook) {
	c.hooks.Receipt = append(c.hooks.Receipt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receipt.Intercept(f(g(h())))`.
func (c *ReceiptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Receipt = append(c.inters.Receipt, interceptors...)
}

// Create returns a builder for creating a Receipt entity.
func (c *ReceiptClient) Create() *ReceiptCreate {
	mutation := newReceiptMutation(c.config, OpCreate)
	return &ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Receipt entities.
func (c *ReceiptClient) CreateBulk(builders ...*ReceiptCreate) *ReceiptCreateBulk {
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptClient) MapCreateBulk(slice any, setFunc func(*ReceiptCreate, int)) *ReceiptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptCreateBulk{err: fmt.Errorf("calling to ReceiptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Receipt.
func (c *ReceiptClient) Update() *ReceiptUpdate {
	mutation := newReceiptMutation(c.config, OpUpdate)
	return &ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptClient) UpdateOne(_m *Receipt) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceipt(_m))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptClient) UpdateOneID(id uuid.UUID) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceiptID(id))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Receipt.
func (c *ReceiptClient) Delete() *ReceiptDelete {
	mutation := newReceiptMutation(c.config, OpDelete)
	return &ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptClient) DeleteOne(_m *Receipt) *ReceiptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptClient) DeleteOneID(id uuid.UUID) *ReceiptDeleteOne {
	builder := c.Delete().Where(receipt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptDeleteOne{builder}
}

// Query returns a query builder for Receipt.
func (c *ReceiptClient) Query() *ReceiptQuery {
	return &ReceiptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceipt},
		inters: c.Interceptors(),
	}
}

// Get returns a Receipt entity by its id.
func (c *ReceiptClient) Get(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	return c.Query().Where(receipt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptClient) GetX(ctx context.Context, id uuid.UUID) *Receipt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHousehold queries the household edge of a Receipt.
func (c *ReceiptClient) QueryHousehold(_m *Receipt) *HouseholdQuery {
	query := (&HouseholdClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(household.Table, household.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, receipt.HouseholdTable, receipt.HouseholdColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a Receipt.
func (c *ReceiptClient) QueryItems(_m *Receipt) *ReceiptItemQuery {
	query := (&ReceiptItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(receiptitem.Table, receiptitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, receipt.ItemsTable, receipt.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Receipt.
func (c *ReceiptClient) QueryJobs(_m *Receipt) *ParseJobQuery {
	query := (&ParseJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(parsejob.Table, parsejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, receipt.JobsTable, receipt.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptClient) Hooks() []Hook {
	return c.hooks.Receipt
}

// Interceptors returns the client interceptors.
func (c *ReceiptClient) Interceptors() []Interceptor {
	return c.inters.Receipt
}

func (c *ReceiptClient) mutate(ctx context.Context, m *ReceiptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Receipt mutation op: %q", m.Op())
	}
}

// ReceiptItemClient is a client for the ReceiptItem schema.
type ReceiptItemClient struct {
	config
}

// NewReceiptItemClient returns a client for the ReceiptItem from the given config.
func NewReceiptItemClient(c config) *ReceiptItemClient {
	return &ReceiptItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receiptitem.Hooks(f(g(h())))`.
func (c *ReceiptItemClient) Use(hooks ...Hook) {
	c.hooks.ReceiptItem = append(c.hooks.ReceiptItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receiptitem.Intercept(f(g(h())))`.
func (c *ReceiptItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReceiptItem = append(c.inters.ReceiptItem, interceptors...)
}

// Create returns a builder for creating a ReceiptItem entity.
func (c *ReceiptItemClient) Create() *ReceiptItemCreate {
	mutation := newReceiptItemMutation(c.config, OpCreate)
	return &ReceiptItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReceiptItem entities.
func (c *ReceiptItemClient) CreateBulk(builders ...*ReceiptItemCreate) *ReceiptItemCreateBulk {
	return &ReceiptItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptItemClient) MapCreateBulk(slice any, setFunc func(*ReceiptItemCreate, int)) *ReceiptItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptItemCreateBulk{err: fmt.Errorf("calling to ReceiptItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReceiptItem.
func (c *ReceiptItemClient) Update() *ReceiptItemUpdate {
	mutation := newReceiptItemMutation(c.config, OpUpdate)
	return &ReceiptItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptItemClient) UpdateOne(_m *ReceiptItem) *ReceiptItemUpdateOne {
	mutation := newReceiptItemMutation(c.config, OpUpdateOne, withReceiptItem(_m))
	return &ReceiptItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptItemClient) UpdateOneID(id uuid.UUID) *ReceiptItemUpdateOne {
	mutation := newReceiptItemMutation(c.config, OpUpdateOne, withReceiptItemID(id))
	return &ReceiptItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReceiptItem.
func (c *ReceiptItemClient) Delete() *ReceiptItemDelete {
	mutation := newReceiptItemMutation(c.config, OpDelete)
	return &ReceiptItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptItemClient) DeleteOne(_m *ReceiptItem) *ReceiptItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptItemClient) DeleteOneID(id uuid.UUID) *ReceiptItemDeleteOne {
	builder := c.Delete().Where(receiptitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptItemDeleteOne{builder}
}

// Query returns a query builder for ReceiptItem.
func (c *ReceiptItemClient) Query() *ReceiptItemQuery {
	return &ReceiptItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceiptItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ReceiptItem entity by its id.
func (c *ReceiptItemClient) Get(ctx context.Context, id uuid.UUID) (*ReceiptItem, error) {
	return c.Query().Where(receiptitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptItemClient) GetX(ctx context.Context, id uuid.UUID) *ReceiptItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReceipt queries the receipt edge of a ReceiptItem.
func (c *ReceiptItemClient) QueryReceipt(_m *ReceiptItem) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptitem.Table, receiptitem.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, receiptitem.ReceiptTable, receiptitem.ReceiptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptItemClient) Hooks() []Hook {
	return c.hooks.ReceiptItem
}

// Interceptors returns the client interceptors.
func (c *ReceiptItemClient) Interceptors() []Interceptor {
	return c.inters.ReceiptItem
}

func (c *ReceiptItemClient) mutate(ctx context.Context, m *ReceiptItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReceiptItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Household, ParseJob, Receipt, ReceiptItem []ent.Hook
	}
	inters struct {
		Household, ParseJob, Receipt, ReceiptItem []ent.Interceptor
	}
)
