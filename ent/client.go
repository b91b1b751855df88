// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/anupamd/studypulse/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/burnoutassessment"
	"github.com/anupamd/studypulse/ent/interventionevent"
	"github.com/anupamd/studypulse/ent/loadmetricevent"
	"github.com/anupamd/studypulse/ent/sessionevent"
	"github.com/anupamd/studypulse/ent/stresspattern"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BurnoutAssessment is the client for interacting with the BurnoutAssessment builders.
	BurnoutAssessment *BurnoutAssessmentClient
	// InterventionEvent is the client for interacting with the InterventionEvent builders.
	InterventionEvent *InterventionEventClient
	// LoadMetricEvent is the client for interacting with the LoadMetricEvent builders.
	LoadMetricEvent *LoadMetricEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// StressPattern is the client for interacting with the StressPattern builders.
	StressPattern *StressPatternClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BurnoutAssessment = NewBurnoutAssessmentClient(c.config)
	c.InterventionEvent = NewInterventionEventClient(c.config)
	c.LoadMetricEvent = NewLoadMetricEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.StressPattern = NewStressPatternClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		BurnoutAssessment: NewBurnoutAssessmentClient(cfg),
		InterventionEvent: NewInterventionEventClient(cfg),
		LoadMetricEvent:   NewLoadMetricEventClient(cfg),
		SessionEvent:      NewSessionEventClient(cfg),
		StressPattern:     NewStressPatternClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		BurnoutAssessment: NewBurnoutAssessmentClient(cfg),
		InterventionEvent: NewInterventionEventClient(cfg),
		LoadMetricEvent:   NewLoadMetricEventClient(cfg),
		SessionEvent:      NewSessionEventClient(cfg),
		StressPattern:     NewStressPatternClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BurnoutAssessment.
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
	c.BurnoutAssessment.Use(hooks...)
	c.InterventionEvent.Use(hooks...)
	c.LoadMetricEvent.Use(hooks...)
	c.SessionEvent.Use(hooks...)
	c.StressPattern.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BurnoutAssessment.Intercept(interceptors...)
	c.InterventionEvent.Intercept(interceptors...)
	c.LoadMetricEvent.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
	c.StressPattern.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BurnoutAssessmentMutation:
		return c.BurnoutAssessment.mutate(ctx, m)
	case *InterventionEventMutation:
		return c.InterventionEvent.mutate(ctx, m)
	case *LoadMetricEventMutation:
		return c.LoadMetricEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *StressPatternMutation:
		return c.StressPattern.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BurnoutAssessmentClient is a client for the BurnoutAssessment schema.
type BurnoutAssessmentClient struct {
	config
}

// NewBurnoutAssessmentClient returns a client for the BurnoutAssessment from the given config.
func NewBurnoutAssessmentClient(c config) *BurnoutAssessmentClient {
	return &BurnoutAssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `burnoutassessment.Hooks(f(g(h())))`.
func (c *BurnoutAssessmentClient) Use(hooks ...Hook) {
	c.hooks.BurnoutAssessment = append(c.hooks.BurnoutAssessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `burnoutassessment.Intercept(f(g(h())))`.
func (c *BurnoutAssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.BurnoutAssessment = append(c.inters.BurnoutAssessment, interceptors...)
}

// Create returns a builder for creating a BurnoutAssessment entity.
func (c *BurnoutAssessmentClient) Create() *BurnoutAssessmentCreate {
	mutation := newBurnoutAssessmentMutation(c.config, OpCreate)
	return &BurnoutAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BurnoutAssessment entities.
func (c *BurnoutAssessmentClient) CreateBulk(builders ...*BurnoutAssessmentCreate) *BurnoutAssessmentCreateBulk {
	return &BurnoutAssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BurnoutAssessmentClient) MapCreateBulk(slice any, setFunc func(*BurnoutAssessmentCreate, int)) *BurnoutAssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BurnoutAssessmentCreateBulk{err: fmt.Errorf("calling to BurnoutAssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BurnoutAssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BurnoutAssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BurnoutAssessment.
func (c *BurnoutAssessmentClient) Update() *BurnoutAssessmentUpdate {
	mutation := newBurnoutAssessmentMutation(c.config, OpUpdate)
	return &BurnoutAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BurnoutAssessmentClient) UpdateOne(_m *BurnoutAssessment) *BurnoutAssessmentUpdateOne {
	mutation := newBurnoutAssessmentMutation(c.config, OpUpdateOne, withBurnoutAssessment(_m))
	return &BurnoutAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BurnoutAssessmentClient) UpdateOneID(id int) *BurnoutAssessmentUpdateOne {
	mutation := newBurnoutAssessmentMutation(c.config, OpUpdateOne, withBurnoutAssessmentID(id))
	return &BurnoutAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BurnoutAssessment.
func (c *BurnoutAssessmentClient) Delete() *BurnoutAssessmentDelete {
	mutation := newBurnoutAssessmentMutation(c.config, OpDelete)
	return &BurnoutAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BurnoutAssessmentClient) DeleteOne(_m *BurnoutAssessment) *BurnoutAssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BurnoutAssessmentClient) DeleteOneID(id int) *BurnoutAssessmentDeleteOne {
	builder := c.Delete().Where(burnoutassessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BurnoutAssessmentDeleteOne{builder}
}

// Query returns a query builder for BurnoutAssessment.
func (c *BurnoutAssessmentClient) Query() *BurnoutAssessmentQuery {
	return &BurnoutAssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBurnoutAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a BurnoutAssessment entity by its id.
func (c *BurnoutAssessmentClient) Get(ctx context.Context, id int) (*BurnoutAssessment, error) {
	return c.Query().Where(burnoutassessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BurnoutAssessmentClient) GetX(ctx context.Context, id int) *BurnoutAssessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BurnoutAssessmentClient) Hooks() []Hook {
	return c.hooks.BurnoutAssessment
}

// Interceptors returns the client interceptors.
func (c *BurnoutAssessmentClient) Interceptors() []Interceptor {
	return c.inters.BurnoutAssessment
}

func (c *BurnoutAssessmentClient) mutate(ctx context.Context, m *BurnoutAssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BurnoutAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BurnoutAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BurnoutAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BurnoutAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BurnoutAssessment mutation op: %q", m.Op())
	}
}

// InterventionEventClient is a client for the InterventionEvent schema.
type InterventionEventClient struct {
	config
}

// NewInterventionEventClient returns a client for the InterventionEvent from the given config.
func NewInterventionEventClient(c config) *InterventionEventClient {
	return &InterventionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interventionevent.Hooks(f(g(h())))`.
func (c *InterventionEventClient) Use(hooks ...Hook) {
	c.hooks.InterventionEvent = append(c.hooks.InterventionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interventionevent.Intercept(f(g(h())))`.
func (c *InterventionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterventionEvent = append(c.inters.InterventionEvent, interceptors...)
}

// Create returns a builder for creating a InterventionEvent entity.
func (c *InterventionEventClient) Create() *InterventionEventCreate {
	mutation := newInterventionEventMutation(c.config, OpCreate)
	return &InterventionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterventionEvent entities.
func (c *InterventionEventClient) CreateBulk(builders ...*InterventionEventCreate) *InterventionEventCreateBulk {
	return &InterventionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterventionEventClient) MapCreateBulk(slice any, setFunc func(*InterventionEventCreate, int)) *InterventionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterventionEventCreateBulk{err: fmt.Errorf("calling to InterventionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterventionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterventionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterventionEvent.
func (c *InterventionEventClient) Update() *InterventionEventUpdate {
	mutation := newInterventionEventMutation(c.config, OpUpdate)
	return &InterventionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterventionEventClient) UpdateOne(_m *InterventionEvent) *InterventionEventUpdateOne {
	mutation := newInterventionEventMutation(c.config, OpUpdateOne, withInterventionEvent(_m))
	return &InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterventionEventClient) UpdateOneID(id int) *InterventionEventUpdateOne {
	mutation := newInterventionEventMutation(c.config, OpUpdateOne, withInterventionEventID(id))
	return &InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterventionEvent.
func (c *InterventionEventClient) Delete() *InterventionEventDelete {
	mutation := newInterventionEventMutation(c.config, OpDelete)
	return &InterventionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterventionEventClient) DeleteOne(_m *InterventionEvent) *InterventionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterventionEventClient) DeleteOneID(id int) *InterventionEventDeleteOne {
	builder := c.Delete().Where(interventionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterventionEventDeleteOne{builder}
}

// Query returns a query builder for InterventionEvent.
func (c *InterventionEventClient) Query() *InterventionEventQuery {
	return &InterventionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterventionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InterventionEvent entity by its id.
func (c *InterventionEventClient) Get(ctx context.Context, id int) (*InterventionEvent, error) {
	return c.Query().Where(interventionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterventionEventClient) GetX(ctx context.Context, id int) *InterventionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterventionEventClient) Hooks() []Hook {
	return c.hooks.InterventionEvent
}

// Interceptors returns the client interceptors.
func (c *InterventionEventClient) Interceptors() []Interceptor {
	return c.inters.InterventionEvent
}

func (c *InterventionEventClient) mutate(ctx context.Context, m *InterventionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterventionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterventionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterventionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterventionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterventionEvent mutation op: %q", m.Op())
	}
}

// LoadMetricEventClient is a client for the LoadMetricEvent schema.
type LoadMetricEventClient struct {
	config
}

// NewLoadMetricEventClient returns a client for the LoadMetricEvent from the given config.
func NewLoadMetricEventClient(c config) *LoadMetricEventClient {
	return &LoadMetricEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `loadmetricevent.Hooks(f(g(h())))`.
func (c *LoadMetricEventClient) Use(hooks ...Hook) {
	c.hooks.LoadMetricEvent = append(c.hooks.LoadMetricEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `loadmetricevent.Intercept(f(g(h())))`.
func (c *LoadMetricEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LoadMetricEvent = append(c.inters.LoadMetricEvent, interceptors...)
}

// Create returns a builder for creating a LoadMetricEvent entity.
func (c *LoadMetricEventClient) Create() *LoadMetricEventCreate {
	mutation := newLoadMetricEventMutation(c.config, OpCreate)
	return &LoadMetricEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LoadMetricEvent entities.
func (c *LoadMetricEventClient) CreateBulk(builders ...*LoadMetricEventCreate) *LoadMetricEventCreateBulk {
	return &LoadMetricEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LoadMetricEventClient) MapCreateBulk(slice any, setFunc func(*LoadMetricEventCreate, int)) *LoadMetricEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LoadMetricEventCreateBulk{err: fmt.Errorf("calling to LoadMetricEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LoadMetricEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LoadMetricEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LoadMetricEvent.
func (c *LoadMetricEventClient) Update() *LoadMetricEventUpdate {
	mutation := newLoadMetricEventMutation(c.config, OpUpdate)
	return &LoadMetricEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LoadMetricEventClient) UpdateOne(_m *LoadMetricEvent) *LoadMetricEventUpdateOne {
	mutation := newLoadMetricEventMutation(c.config, OpUpdateOne, withLoadMetricEvent(_m))
	return &LoadMetricEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LoadMetricEventClient) UpdateOneID(id int) *LoadMetricEventUpdateOne {
	mutation := newLoadMetricEventMutation(c.config, OpUpdateOne, withLoadMetricEventID(id))
	return &LoadMetricEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LoadMetricEvent.
func (c *LoadMetricEventClient) Delete() *LoadMetricEventDelete {
	mutation := newLoadMetricEventMutation(c.config, OpDelete)
	return &LoadMetricEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LoadMetricEventClient) DeleteOne(_m *LoadMetricEvent) *LoadMetricEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LoadMetricEventClient) DeleteOneID(id int) *LoadMetricEventDeleteOne {
	builder := c.Delete().Where(loadmetricevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LoadMetricEventDeleteOne{builder}
}

// Query returns a query builder for LoadMetricEvent.
func (c *LoadMetricEventClient) Query() *LoadMetricEventQuery {
	return &LoadMetricEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLoadMetricEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LoadMetricEvent entity by its id.
func (c *LoadMetricEventClient) Get(ctx context.Context, id int) (*LoadMetricEvent, error) {
	return c.Query().Where(loadmetricevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LoadMetricEventClient) GetX(ctx context.Context, id int) *LoadMetricEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LoadMetricEventClient) Hooks() []Hook {
	return c.hooks.LoadMetricEvent
}

// Interceptors returns the client interceptors.
func (c *LoadMetricEventClient) Interceptors() []Interceptor {
	return c.inters.LoadMetricEvent
}

func (c *LoadMetricEventClient) mutate(ctx context.Context, m *LoadMetricEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LoadMetricEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LoadMetricEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LoadMetricEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LoadMetricEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LoadMetricEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// StressPatternClient is a client for the StressPattern schema.
type StressPatternClient struct {
	config
}

// NewStressPatternClient returns a client for the StressPattern from the given config.
func NewStressPatternClient(c config) *StressPatternClient {
	return &StressPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stresspattern.Hooks(f(g(h())))`.
func (c *StressPatternClient) Use(hooks ...Hook) {
	c.hooks.StressPattern = append(c.hooks.StressPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stresspattern.Intercept(f(g(h())))`.
func (c *StressPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.StressPattern = append(c.inters.StressPattern, interceptors...)
}

// Create returns a builder for creating a StressPattern entity.
func (c *StressPatternClient) Create() *StressPatternCreate {
	mutation := newStressPatternMutation(c.config, OpCreate)
	return &StressPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StressPattern entities.
func (c *StressPatternClient) CreateBulk(builders ...*StressPatternCreate) *StressPatternCreateBulk {
	return &StressPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StressPatternClient) MapCreateBulk(slice any, setFunc func(*StressPatternCreate, int)) *StressPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StressPatternCreateBulk{err: fmt.Errorf("calling to StressPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StressPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StressPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StressPattern.
func (c *StressPatternClient) Update() *StressPatternUpdate {
	mutation := newStressPatternMutation(c.config, OpUpdate)
	return &StressPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StressPatternClient) UpdateOne(_m *StressPattern) *StressPatternUpdateOne {
	mutation := newStressPatternMutation(c.config, OpUpdateOne, withStressPattern(_m))
	return &StressPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StressPatternClient) UpdateOneID(id int) *StressPatternUpdateOne {
	mutation := newStressPatternMutation(c.config, OpUpdateOne, withStressPatternID(id))
	return &StressPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StressPattern.
func (c *StressPatternClient) Delete() *StressPatternDelete {
	mutation := newStressPatternMutation(c.config, OpDelete)
	return &StressPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StressPatternClient) DeleteOne(_m *StressPattern) *StressPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StressPatternClient) DeleteOneID(id int) *StressPatternDeleteOne {
	builder := c.Delete().Where(stresspattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StressPatternDeleteOne{builder}
}

// Query returns a query builder for StressPattern.
func (c *StressPatternClient) Query() *StressPatternQuery {
	return &StressPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStressPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a StressPattern entity by its id.
func (c *StressPatternClient) Get(ctx context.Context, id int) (*StressPattern, error) {
	return c.Query().Where(stresspattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StressPatternClient) GetX(ctx context.Context, id int) *StressPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StressPatternClient) Hooks() []Hook {
	return c.hooks.StressPattern
}

// Interceptors returns the client interceptors.
func (c *StressPatternClient) Interceptors() []Interceptor {
	return c.inters.StressPattern
}

func (c *StressPatternClient) mutate(ctx context.Context, m *StressPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StressPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StressPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StressPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StressPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StressPattern mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BurnoutAssessment, InterventionEvent, LoadMetricEvent, SessionEvent,
		StressPattern []ent.Hook
	}
	inters struct {
		BurnoutAssessment, InterventionEvent, LoadMetricEvent, SessionEvent,
		StressPattern []ent.Interceptor
	}
)
