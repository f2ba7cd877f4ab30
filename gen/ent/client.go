// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/gen/ent/evaluationjob"
	"github.com/seojun-park/planscore/gen/ent/evaluationreport"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BusinessPlan is the client for interacting with the BusinessPlan builders.
	BusinessPlan *BusinessPlanClient
	// EvaluationJob is the client for interacting with the EvaluationJob builders.
	EvaluationJob *EvaluationJobClient
	// EvaluationReport is the client for interacting with the EvaluationReport builders.
	EvaluationReport *EvaluationReportClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BusinessPlan = NewBusinessPlanClient(c.config)
	c.EvaluationJob = NewEvaluationJobClient(c.config)
	c.EvaluationReport = NewEvaluationReportClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		BusinessPlan:     NewBusinessPlanClient(cfg),
		EvaluationJob:    NewEvaluationJobClient(cfg),
		EvaluationReport: NewEvaluationReportClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		BusinessPlan:     NewBusinessPlanClient(cfg),
		EvaluationJob:    NewEvaluationJobClient(cfg),
		EvaluationReport: NewEvaluationReportClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BusinessPlan.
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
	c.BusinessPlan.Use(hooks...)
	c.EvaluationJob.Use(hooks...)
	c.EvaluationReport.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BusinessPlan.Intercept(interceptors...)
	c.EvaluationJob.Intercept(interceptors...)
	c.EvaluationReport.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BusinessPlanMutation:
		return c.BusinessPlan.mutate(ctx, m)
	case *EvaluationJobMutation:
		return c.EvaluationJob.mutate(ctx, m)
	case *EvaluationReportMutation:
		return c.EvaluationReport.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BusinessPlanClient is a client for the BusinessPlan schema.
type BusinessPlanClient struct {
	config
}

// NewBusinessPlanClient returns a client for the BusinessPlan from the given config.
func NewBusinessPlanClient(c config) *BusinessPlanClient {
	return &BusinessPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businessplan.Hooks(f(g(h())))`.
func (c *BusinessPlanClient) Use(hooks ...Hook) {
	c.hooks.BusinessPlan = append(c.hooks.BusinessPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businessplan.Intercept(f(g(h())))`.
func (c *BusinessPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessPlan = append(c.inters.BusinessPlan, interceptors...)
}

// Create returns a builder for creating a BusinessPlan entity.
func (c *BusinessPlanClient) Create() *BusinessPlanCreate {
	mutation := newBusinessPlanMutation(c.config, OpCreate)
	return &BusinessPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessPlan entities.
func (c *BusinessPlanClient) CreateBulk(builders ...*BusinessPlanCreate) *BusinessPlanCreateBulk {
	return &BusinessPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessPlanClient) MapCreateBulk(slice any, setFunc func(*BusinessPlanCreate, int)) *BusinessPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessPlanCreateBulk{err: fmt.Errorf("calling to BusinessPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessPlan.
func (c *BusinessPlanClient) Update() *BusinessPlanUpdate {
	mutation := newBusinessPlanMutation(c.config, OpUpdate)
	return &BusinessPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessPlanClient) UpdateOne(_m *BusinessPlan) *BusinessPlanUpdateOne {
	mutation := newBusinessPlanMutation(c.config, OpUpdateOne, withBusinessPlan(_m))
	return &BusinessPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessPlanClient) UpdateOneID(id uuid.UUID) *BusinessPlanUpdateOne {
	mutation := newBusinessPlanMutation(c.config, OpUpdateOne, withBusinessPlanID(id))
	return &BusinessPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessPlan.
func (c *BusinessPlanClient) Delete() *BusinessPlanDelete {
	mutation := newBusinessPlanMutation(c.config, OpDelete)
	return &BusinessPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessPlanClient) DeleteOne(_m *BusinessPlan) *BusinessPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessPlanClient) DeleteOneID(id uuid.UUID) *BusinessPlanDeleteOne {
	builder := c.Delete().Where(businessplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessPlanDeleteOne{builder}
}

// Query returns a query builder for BusinessPlan.
func (c *BusinessPlanClient) Query() *BusinessPlanQuery {
	return &BusinessPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessPlan entity by its id.
func (c *BusinessPlanClient) Get(ctx context.Context, id uuid.UUID) (*BusinessPlan, error) {
	return c.Query().Where(businessplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessPlanClient) GetX(ctx context.Context, id uuid.UUID) *BusinessPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a BusinessPlan.
func (c *BusinessPlanClient) QueryJobs(_m *BusinessPlan) *EvaluationJobQuery {
	query := (&EvaluationJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businessplan.Table, businessplan.FieldID, id),
			sqlgraph.To(evaluationjob.Table, evaluationjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, businessplan.JobsTable, businessplan.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a BusinessPlan.
func (c *BusinessPlanClient) QueryReports(_m *BusinessPlan) *EvaluationReportQuery {
	query := (&EvaluationReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businessplan.Table, businessplan.FieldID, id),
			sqlgraph.To(evaluationreport.Table, evaluationreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, businessplan.ReportsTable, businessplan.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessPlanClient) Hooks() []Hook {
	return c.hooks.BusinessPlan
}

// Interceptors returns the client interceptors.
func (c *BusinessPlanClient) Interceptors() []Interceptor {
	return c.inters.BusinessPlan
}

func (c *BusinessPlanClient) mutate(ctx context.Context, m *BusinessPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusinessPlan mutation op: %q", m.Op())
	}
}

// EvaluationJobClient is a client for the EvaluationJob schema.
type EvaluationJobClient struct {
	config
}

// NewEvaluationJobClient returns a client for the EvaluationJob from the given config.
func NewEvaluationJobClient(c config) *EvaluationJobClient {
	return &EvaluationJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationjob.Hooks(f(g(h())))`.
func (c *EvaluationJobClient) Use(hooks ...Hook) {
	c.hooks.EvaluationJob = append(c.hooks.EvaluationJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationjob.Intercept(f(g(h())))`.
func (c *EvaluationJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationJob = append(c.inters.EvaluationJob, interceptors...)
}

// Create returns a builder for creating a EvaluationJob entity.
func (c *EvaluationJobClient) Create() *EvaluationJobCreate {
	mutation := newEvaluationJobMutation(c.config, OpCreate)
	return &EvaluationJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationJob entities.
func (c *EvaluationJobClient) CreateBulk(builders ...*EvaluationJobCreate) *EvaluationJobCreateBulk {
	return &EvaluationJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationJobClient) MapCreateBulk(slice any, setFunc func(*EvaluationJobCreate, int)) *EvaluationJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationJobCreateBulk{err: fmt.Errorf("calling to EvaluationJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationJob.
func (c *EvaluationJobClient) Update() *EvaluationJobUpdate {
	mutation := newEvaluationJobMutation(c.config, OpUpdate)
	return &EvaluationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationJobClient) UpdateOne(_m *EvaluationJob) *EvaluationJobUpdateOne {
	mutation := newEvaluationJobMutation(c.config, OpUpdateOne, withEvaluationJob(_m))
	return &EvaluationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationJobClient) UpdateOneID(id uuid.UUID) *EvaluationJobUpdateOne {
	mutation := newEvaluationJobMutation(c.config, OpUpdateOne, withEvaluationJobID(id))
	return &EvaluationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationJob.
func (c *EvaluationJobClient) Delete() *EvaluationJobDelete {
	mutation := newEvaluationJobMutation(c.config, OpDelete)
	return &EvaluationJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationJobClient) DeleteOne(_m *EvaluationJob) *EvaluationJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationJobClient) DeleteOneID(id uuid.UUID) *EvaluationJobDeleteOne {
	builder := c.Delete().Where(evaluationjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationJobDeleteOne{builder}
}

// Query returns a query builder for EvaluationJob.
func (c *EvaluationJobClient) Query() *EvaluationJobQuery {
	return &EvaluationJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationJob},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationJob entity by its id.
func (c *EvaluationJobClient) Get(ctx context.Context, id uuid.UUID) (*EvaluationJob, error) {
	return c.Query().Where(evaluationjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationJobClient) GetX(ctx context.Context, id uuid.UUID) *EvaluationJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlan queries the plan edge of a EvaluationJob.
func (c *EvaluationJobClient) QueryPlan(_m *EvaluationJob) *BusinessPlanQuery {
	query := (&BusinessPlanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationjob.Table, evaluationjob.FieldID, id),
			sqlgraph.To(businessplan.Table, businessplan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluationjob.PlanTable, evaluationjob.PlanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReport queries the report edge of a EvaluationJob.
func (c *EvaluationJobClient) QueryReport(_m *EvaluationJob) *EvaluationReportQuery {
	query := (&EvaluationReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationjob.Table, evaluationjob.FieldID, id),
			sqlgraph.To(evaluationreport.Table, evaluationreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, evaluationjob.ReportTable, evaluationjob.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationJobClient) Hooks() []Hook {
	return c.hooks.EvaluationJob
}

// Interceptors returns the client interceptors.
func (c *EvaluationJobClient) Interceptors() []Interceptor {
	return c.inters.EvaluationJob
}

func (c *EvaluationJobClient) mutate(ctx context.Context, m *EvaluationJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationJob mutation op: %q", m.Op())
	}
}

// EvaluationReportClient is a client for the EvaluationReport schema.
type EvaluationReportClient struct {
	config
}

// NewEvaluationReportClient returns a client for the EvaluationReport from the given config.
func NewEvaluationReportClient(c config) *EvaluationReportClient {
	return &EvaluationReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationreport.Hooks(f(g(h())))`.
func (c *EvaluationReportClient) Use(hooks ...Hook) {
	c.hooks.EvaluationReport = append(c.hooks.EvaluationReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationreport.Intercept(f(g(h())))`.
func (c *EvaluationReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationReport = append(c.inters.EvaluationReport, interceptors...)
}

// Create returns a builder for creating a EvaluationReport entity.
func (c *EvaluationReportClient) Create() *EvaluationReportCreate {
	mutation := newEvaluationReportMutation(c.config, OpCreate)
	return &EvaluationReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationReport entities.
func (c *EvaluationReportClient) CreateBulk(builders ...*EvaluationReportCreate) *EvaluationReportCreateBulk {
	return &EvaluationReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationReportClient) MapCreateBulk(slice any, setFunc func(*EvaluationReportCreate, int)) *EvaluationReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationReportCreateBulk{err: fmt.Errorf("calling to EvaluationReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationReport.
func (c *EvaluationReportClient) Update() *EvaluationReportUpdate {
	mutation := newEvaluationReportMutation(c.config, OpUpdate)
	return &EvaluationReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationReportClient) UpdateOne(_m *EvaluationReport) *EvaluationReportUpdateOne {
	mutation := newEvaluationReportMutation(c.config, OpUpdateOne, withEvaluationReport(_m))
	return &EvaluationReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationReportClient) UpdateOneID(id uuid.UUID) *EvaluationReportUpdateOne {
	mutation := newEvaluationReportMutation(c.config, OpUpdateOne, withEvaluationReportID(id))
	return &EvaluationReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationReport.
func (c *EvaluationReportClient) Delete() *EvaluationReportDelete {
	mutation := newEvaluationReportMutation(c.config, OpDelete)
	return &EvaluationReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationReportClient) DeleteOne(_m *EvaluationReport) *EvaluationReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationReportClient) DeleteOneID(id uuid.UUID) *EvaluationReportDeleteOne {
	builder := c.Delete().Where(evaluationreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationReportDeleteOne{builder}
}

// Query returns a query builder for EvaluationReport.
func (c *EvaluationReportClient) Query() *EvaluationReportQuery {
	return &EvaluationReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationReport},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationReport entity by its id.
func (c *EvaluationReportClient) Get(ctx context.Context, id uuid.UUID) (*EvaluationReport, error) {
	return c.Query().Where(evaluationreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationReportClient) GetX(ctx context.Context, id uuid.UUID) *EvaluationReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlan queries the plan edge of a EvaluationReport.
func (c *EvaluationReportClient) QueryPlan(_m *EvaluationReport) *BusinessPlanQuery {
	query := (&BusinessPlanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationreport.Table, evaluationreport.FieldID, id),
			sqlgraph.To(businessplan.Table, businessplan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluationreport.PlanTable, evaluationreport.PlanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJob queries the job edge of a EvaluationReport.
func (c *EvaluationReportClient) QueryJob(_m *EvaluationReport) *EvaluationJobQuery {
	query := (&EvaluationJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationreport.Table, evaluationreport.FieldID, id),
			sqlgraph.To(evaluationjob.Table, evaluationjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, evaluationreport.JobTable, evaluationreport.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationReportClient) Hooks() []Hook {
	return c.hooks.EvaluationReport
}

// Interceptors returns the client interceptors.
func (c *EvaluationReportClient) Interceptors() []Interceptor {
	return c.inters.EvaluationReport
}

func (c *EvaluationReportClient) mutate(ctx context.Context, m *EvaluationReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationReport mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BusinessPlan, EvaluationJob, EvaluationReport []ent.Hook
	}
	inters struct {
		BusinessPlan, EvaluationJob, EvaluationReport []ent.Interceptor
	}
)
