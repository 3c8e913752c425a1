// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/aayasso/SlowMA-MVP/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/assessmentevent"
	"github.com/aayasso/SlowMA-MVP/ent/badgeevent"
	"github.com/aayasso/SlowMA-MVP/ent/galleryentry"
	"github.com/aayasso/SlowMA-MVP/ent/journeycache"
	"github.com/aayasso/SlowMA-MVP/ent/journeyevent"
	"github.com/aayasso/SlowMA-MVP/ent/llmrequestevent"
	"github.com/aayasso/SlowMA-MVP/ent/snapshot"
	"github.com/aayasso/SlowMA-MVP/ent/stageevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentEvent is the client for interacting with the AssessmentEvent builders.
	AssessmentEvent *AssessmentEventClient
	// BadgeEvent is the client for interacting with the BadgeEvent builders.
	BadgeEvent *BadgeEventClient
	// GalleryEntry is the client for interacting with the GalleryEntry builders.
	GalleryEntry *GalleryEntryClient
	// JourneyCache is the client for interacting with the JourneyCache builders.
	JourneyCache *JourneyCacheClient
	// JourneyEvent is the client for interacting with the JourneyEvent builders.
	JourneyEvent *JourneyEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// StageEvent is the client for interacting with the StageEvent builders.
	StageEvent *StageEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentEvent = NewAssessmentEventClient(c.config)
	c.BadgeEvent = NewBadgeEventClient(c.config)
	c.GalleryEntry = NewGalleryEntryClient(c.config)
	c.JourneyCache = NewJourneyCacheClient(c.config)
	c.JourneyEvent = NewJourneyEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.StageEvent = NewStageEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AssessmentEvent: NewAssessmentEventClient(cfg),
		BadgeEvent:      NewBadgeEventClient(cfg),
		GalleryEntry:    NewGalleryEntryClient(cfg),
		JourneyCache:    NewJourneyCacheClient(cfg),
		JourneyEvent:    NewJourneyEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		StageEvent:      NewStageEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AssessmentEvent: NewAssessmentEventClient(cfg),
		BadgeEvent:      NewBadgeEventClient(cfg),
		GalleryEntry:    NewGalleryEntryClient(cfg),
		JourneyCache:    NewJourneyCacheClient(cfg),
		JourneyEvent:    NewJourneyEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		StageEvent:      NewStageEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AssessmentEvent, c.BadgeEvent, c.GalleryEntry, c.JourneyCache, c.JourneyEvent,
		c.LLMRequestEvent, c.Snapshot, c.StageEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AssessmentEvent, c.BadgeEvent, c.GalleryEntry, c.JourneyCache, c.JourneyEvent,
		c.LLMRequestEvent, c.Snapshot, c.StageEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentEventMutation:
		return c.AssessmentEvent.mutate(ctx, m)
	case *BadgeEventMutation:
		return c.BadgeEvent.mutate(ctx, m)
	case *GalleryEntryMutation:
		return c.GalleryEntry.mutate(ctx, m)
	case *JourneyCacheMutation:
		return c.JourneyCache.mutate(ctx, m)
	case *JourneyEventMutation:
		return c.JourneyEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *StageEventMutation:
		return c.StageEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentEventClient is a client for the AssessmentEvent schema.
type AssessmentEventClient struct {
	config
}

// NewAssessmentEventClient returns a client for the AssessmentEvent from the given config.
func NewAssessmentEventClient(c config) *AssessmentEventClient {
	return &AssessmentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentevent.Hooks(f(g(h())))`.
func (c *AssessmentEventClient) Use(hooks ...Hook) {
	c.hooks.AssessmentEvent = append(c.hooks.AssessmentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentevent.Intercept(f(g(h())))`.
func (c *AssessmentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentEvent = append(c.inters.AssessmentEvent, interceptors...)
}

// Create returns a builder for creating a AssessmentEvent entity.
func (c *AssessmentEventClient) Create() *AssessmentEventCreate {
	mutation := newAssessmentEventMutation(c.config, OpCreate)
	return &AssessmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentEvent entities.
func (c *AssessmentEventClient) CreateBulk(builders ...*AssessmentEventCreate) *AssessmentEventCreateBulk {
	return &AssessmentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentEventClient) MapCreateBulk(slice any, setFunc func(*AssessmentEventCreate, int)) *AssessmentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentEventCreateBulk{err: fmt.Errorf("calling to AssessmentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentEvent.
func (c *AssessmentEventClient) Update() *AssessmentEventUpdate {
	mutation := newAssessmentEventMutation(c.config, OpUpdate)
	return &AssessmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentEventClient) UpdateOne(_m *AssessmentEvent) *AssessmentEventUpdateOne {
	mutation := newAssessmentEventMutation(c.config, OpUpdateOne, withAssessmentEvent(_m))
	return &AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentEventClient) UpdateOneID(id int) *AssessmentEventUpdateOne {
	mutation := newAssessmentEventMutation(c.config, OpUpdateOne, withAssessmentEventID(id))
	return &AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentEvent.
func (c *AssessmentEventClient) Delete() *AssessmentEventDelete {
	mutation := newAssessmentEventMutation(c.config, OpDelete)
	return &AssessmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentEventClient) DeleteOne(_m *AssessmentEvent) *AssessmentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentEventClient) DeleteOneID(id int) *AssessmentEventDeleteOne {
	builder := c.Delete().Where(assessmentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentEventDeleteOne{builder}
}

// Query returns a query builder for AssessmentEvent.
func (c *AssessmentEventClient) Query() *AssessmentEventQuery {
	return &AssessmentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentEvent entity by its id.
func (c *AssessmentEventClient) Get(ctx context.Context, id int) (*AssessmentEvent, error) {
	return c.Query().Where(assessmentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentEventClient) GetX(ctx context.Context, id int) *AssessmentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentEventClient) Hooks() []Hook {
	return c.hooks.AssessmentEvent
}

// Interceptors returns the client interceptors.
func (c *AssessmentEventClient) Interceptors() []Interceptor {
	return c.inters.AssessmentEvent
}

func (c *AssessmentEventClient) mutate(ctx context.Context, m *AssessmentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentEvent mutation op: %q", m.Op())
	}
}

// BadgeEventClient is a client for the BadgeEvent schema.
type BadgeEventClient struct {
	config
}

// NewBadgeEventClient returns a client for the BadgeEvent from the given config.
func NewBadgeEventClient(c config) *BadgeEventClient {
	return &BadgeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badgeevent.Hooks(f(g(h())))`.
func (c *BadgeEventClient) Use(hooks ...Hook) {
	c.hooks.BadgeEvent = append(c.hooks.BadgeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badgeevent.Intercept(f(g(h())))`.
func (c *BadgeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.BadgeEvent = append(c.inters.BadgeEvent, interceptors...)
}

// Create returns a builder for creating a BadgeEvent entity.
func (c *BadgeEventClient) Create() *BadgeEventCreate {
	mutation := newBadgeEventMutation(c.config, OpCreate)
	return &BadgeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BadgeEvent entities.
func (c *BadgeEventClient) CreateBulk(builders ...*BadgeEventCreate) *BadgeEventCreateBulk {
	return &BadgeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeEventClient) MapCreateBulk(slice any, setFunc func(*BadgeEventCreate, int)) *BadgeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeEventCreateBulk{err: fmt.Errorf("calling to BadgeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BadgeEvent.
func (c *BadgeEventClient) Update() *BadgeEventUpdate {
	mutation := newBadgeEventMutation(c.config, OpUpdate)
	return &BadgeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeEventClient) UpdateOne(_m *BadgeEvent) *BadgeEventUpdateOne {
	mutation := newBadgeEventMutation(c.config, OpUpdateOne, withBadgeEvent(_m))
	return &BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeEventClient) UpdateOneID(id int) *BadgeEventUpdateOne {
	mutation := newBadgeEventMutation(c.config, OpUpdateOne, withBadgeEventID(id))
	return &BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BadgeEvent.
func (c *BadgeEventClient) Delete() *BadgeEventDelete {
	mutation := newBadgeEventMutation(c.config, OpDelete)
	return &BadgeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeEventClient) DeleteOne(_m *BadgeEvent) *BadgeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeEventClient) DeleteOneID(id int) *BadgeEventDeleteOne {
	builder := c.Delete().Where(badgeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeEventDeleteOne{builder}
}

// Query returns a query builder for BadgeEvent.
func (c *BadgeEventClient) Query() *BadgeEventQuery {
	return &BadgeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadgeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a BadgeEvent entity by its id.
func (c *BadgeEventClient) Get(ctx context.Context, id int) (*BadgeEvent, error) {
	return c.Query().Where(badgeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeEventClient) GetX(ctx context.Context, id int) *BadgeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BadgeEventClient) Hooks() []Hook {
	return c.hooks.BadgeEvent
}

// Interceptors returns the client interceptors.
func (c *BadgeEventClient) Interceptors() []Interceptor {
	return c.inters.BadgeEvent
}

func (c *BadgeEventClient) mutate(ctx context.Context, m *BadgeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BadgeEvent mutation op: %q", m.Op())
	}
}

// GalleryEntryClient is a client for the GalleryEntry schema.
type GalleryEntryClient struct {
	config
}

// NewGalleryEntryClient returns a client for the GalleryEntry from the given config.
func NewGalleryEntryClient(c config) *GalleryEntryClient {
	return &GalleryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `galleryentry.Hooks(f(g(h())))`.
func (c *GalleryEntryClient) Use(hooks ...Hook) {
	c.hooks.GalleryEntry = append(c.hooks.GalleryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `galleryentry.Intercept(f(g(h())))`.
func (c *GalleryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.GalleryEntry = append(c.inters.GalleryEntry, interceptors...)
}

// Create returns a builder for creating a GalleryEntry entity.
func (c *GalleryEntryClient) Create() *GalleryEntryCreate {
	mutation := newGalleryEntryMutation(c.config, OpCreate)
	return &GalleryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GalleryEntry entities.
func (c *GalleryEntryClient) CreateBulk(builders ...*GalleryEntryCreate) *GalleryEntryCreateBulk {
	return &GalleryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GalleryEntryClient) MapCreateBulk(slice any, setFunc func(*GalleryEntryCreate, int)) *GalleryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GalleryEntryCreateBulk{err: fmt.Errorf("calling to GalleryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GalleryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GalleryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GalleryEntry.
func (c *GalleryEntryClient) Update() *GalleryEntryUpdate {
	mutation := newGalleryEntryMutation(c.config, OpUpdate)
	return &GalleryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GalleryEntryClient) UpdateOne(_m *GalleryEntry) *GalleryEntryUpdateOne {
	mutation := newGalleryEntryMutation(c.config, OpUpdateOne, withGalleryEntry(_m))
	return &GalleryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GalleryEntryClient) UpdateOneID(id int) *GalleryEntryUpdateOne {
	mutation := newGalleryEntryMutation(c.config, OpUpdateOne, withGalleryEntryID(id))
	return &GalleryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GalleryEntry.
func (c *GalleryEntryClient) Delete() *GalleryEntryDelete {
	mutation := newGalleryEntryMutation(c.config, OpDelete)
	return &GalleryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GalleryEntryClient) DeleteOne(_m *GalleryEntry) *GalleryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GalleryEntryClient) DeleteOneID(id int) *GalleryEntryDeleteOne {
	builder := c.Delete().Where(galleryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GalleryEntryDeleteOne{builder}
}

// Query returns a query builder for GalleryEntry.
func (c *GalleryEntryClient) Query() *GalleryEntryQuery {
	return &GalleryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGalleryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a GalleryEntry entity by its id.
func (c *GalleryEntryClient) Get(ctx context.Context, id int) (*GalleryEntry, error) {
	return c.Query().Where(galleryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GalleryEntryClient) GetX(ctx context.Context, id int) *GalleryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GalleryEntryClient) Hooks() []Hook {
	return c.hooks.GalleryEntry
}

// Interceptors returns the client interceptors.
func (c *GalleryEntryClient) Interceptors() []Interceptor {
	return c.inters.GalleryEntry
}

func (c *GalleryEntryClient) mutate(ctx context.Context, m *GalleryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GalleryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GalleryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GalleryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GalleryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GalleryEntry mutation op: %q", m.Op())
	}
}

// JourneyCacheClient is a client for the JourneyCache schema.
type JourneyCacheClient struct {
	config
}

// NewJourneyCacheClient returns a client for the JourneyCache from the given config.
func NewJourneyCacheClient(c config) *JourneyCacheClient {
	return &JourneyCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `journeycache.Hooks(f(g(h())))`.
func (c *JourneyCacheClient) Use(hooks ...Hook) {
	c.hooks.JourneyCache = append(c.hooks.JourneyCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `journeycache.Intercept(f(g(h())))`.
func (c *JourneyCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.JourneyCache = append(c.inters.JourneyCache, interceptors...)
}

// Create returns a builder for creating a JourneyCache entity.
func (c *JourneyCacheClient) Create() *JourneyCacheCreate {
	mutation := newJourneyCacheMutation(c.config, OpCreate)
	return &JourneyCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JourneyCache entities.
func (c *JourneyCacheClient) CreateBulk(builders ...*JourneyCacheCreate) *JourneyCacheCreateBulk {
	return &JourneyCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JourneyCacheClient) MapCreateBulk(slice any, setFunc func(*JourneyCacheCreate, int)) *JourneyCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JourneyCacheCreateBulk{err: fmt.Errorf("calling to JourneyCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JourneyCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JourneyCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JourneyCache.
func (c *JourneyCacheClient) Update() *JourneyCacheUpdate {
	mutation := newJourneyCacheMutation(c.config, OpUpdate)
	return &JourneyCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JourneyCacheClient) UpdateOne(_m *JourneyCache) *JourneyCacheUpdateOne {
	mutation := newJourneyCacheMutation(c.config, OpUpdateOne, withJourneyCache(_m))
	return &JourneyCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JourneyCacheClient) UpdateOneID(id int) *JourneyCacheUpdateOne {
	mutation := newJourneyCacheMutation(c.config, OpUpdateOne, withJourneyCacheID(id))
	return &JourneyCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JourneyCache.
func (c *JourneyCacheClient) Delete() *JourneyCacheDelete {
	mutation := newJourneyCacheMutation(c.config, OpDelete)
	return &JourneyCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JourneyCacheClient) DeleteOne(_m *JourneyCache) *JourneyCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JourneyCacheClient) DeleteOneID(id int) *JourneyCacheDeleteOne {
	builder := c.Delete().Where(journeycache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JourneyCacheDeleteOne{builder}
}

// Query returns a query builder for JourneyCache.
func (c *JourneyCacheClient) Query() *JourneyCacheQuery {
	return &JourneyCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJourneyCache},
		inters: c.Interceptors(),
	}
}

// Get returns a JourneyCache entity by its id.
func (c *JourneyCacheClient) Get(ctx context.Context, id int) (*JourneyCache, error) {
	return c.Query().Where(journeycache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JourneyCacheClient) GetX(ctx context.Context, id int) *JourneyCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JourneyCacheClient) Hooks() []Hook {
	return c.hooks.JourneyCache
}

// Interceptors returns the client interceptors.
func (c *JourneyCacheClient) Interceptors() []Interceptor {
	return c.inters.JourneyCache
}

func (c *JourneyCacheClient) mutate(ctx context.Context, m *JourneyCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JourneyCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JourneyCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JourneyCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JourneyCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JourneyCache mutation op: %q", m.Op())
	}
}

// JourneyEventClient is a client for the JourneyEvent schema.
type JourneyEventClient struct {
	config
}

// NewJourneyEventClient returns a client for the JourneyEvent from the given config.
func NewJourneyEventClient(c config) *JourneyEventClient {
	return &JourneyEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `journeyevent.Hooks(f(g(h())))`.
func (c *JourneyEventClient) Use(hooks ...Hook) {
	c.hooks.JourneyEvent = append(c.hooks.JourneyEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `journeyevent.Intercept(f(g(h())))`.
func (c *JourneyEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.JourneyEvent = append(c.inters.JourneyEvent, interceptors...)
}

// Create returns a builder for creating a JourneyEvent entity.
func (c *JourneyEventClient) Create() *JourneyEventCreate {
	mutation := newJourneyEventMutation(c.config, OpCreate)
	return &JourneyEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JourneyEvent entities.
func (c *JourneyEventClient) CreateBulk(builders ...*JourneyEventCreate) *JourneyEventCreateBulk {
	return &JourneyEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JourneyEventClient) MapCreateBulk(slice any, setFunc func(*JourneyEventCreate, int)) *JourneyEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JourneyEventCreateBulk{err: fmt.Errorf("calling to JourneyEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JourneyEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JourneyEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JourneyEvent.
func (c *JourneyEventClient) Update() *JourneyEventUpdate {
	mutation := newJourneyEventMutation(c.config, OpUpdate)
	return &JourneyEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JourneyEventClient) UpdateOne(_m *JourneyEvent) *JourneyEventUpdateOne {
	mutation := newJourneyEventMutation(c.config, OpUpdateOne, withJourneyEvent(_m))
	return &JourneyEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JourneyEventClient) UpdateOneID(id int) *JourneyEventUpdateOne {
	mutation := newJourneyEventMutation(c.config, OpUpdateOne, withJourneyEventID(id))
	return &JourneyEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JourneyEvent.
func (c *JourneyEventClient) Delete() *JourneyEventDelete {
	mutation := newJourneyEventMutation(c.config, OpDelete)
	return &JourneyEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JourneyEventClient) DeleteOne(_m *JourneyEvent) *JourneyEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JourneyEventClient) DeleteOneID(id int) *JourneyEventDeleteOne {
	builder := c.Delete().Where(journeyevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JourneyEventDeleteOne{builder}
}

// Query returns a query builder for JourneyEvent.
func (c *JourneyEventClient) Query() *JourneyEventQuery {
	return &JourneyEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJourneyEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a JourneyEvent entity by its id.
func (c *JourneyEventClient) Get(ctx context.Context, id int) (*JourneyEvent, error) {
	return c.Query().Where(journeyevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JourneyEventClient) GetX(ctx context.Context, id int) *JourneyEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JourneyEventClient) Hooks() []Hook {
	return c.hooks.JourneyEvent
}

// Interceptors returns the client interceptors.
func (c *JourneyEventClient) Interceptors() []Interceptor {
	return c.inters.JourneyEvent
}

func (c *JourneyEventClient) mutate(ctx context.Context, m *JourneyEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JourneyEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JourneyEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JourneyEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JourneyEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JourneyEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// StageEventClient is a client for the StageEvent schema.
type StageEventClient struct {
	config
}

// NewStageEventClient returns a client for the StageEvent from the given config.
func NewStageEventClient(c config) *StageEventClient {
	return &StageEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stageevent.Hooks(f(g(h())))`.
func (c *StageEventClient) Use(hooks ...Hook) {
	c.hooks.StageEvent = append(c.hooks.StageEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stageevent.Intercept(f(g(h())))`.
func (c *StageEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageEvent = append(c.inters.StageEvent, interceptors...)
}

// Create returns a builder for creating a StageEvent entity.
func (c *StageEventClient) Create() *StageEventCreate {
	mutation := newStageEventMutation(c.config, OpCreate)
	return &StageEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageEvent entities.
func (c *StageEventClient) CreateBulk(builders ...*StageEventCreate) *StageEventCreateBulk {
	return &StageEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageEventClient) MapCreateBulk(slice any, setFunc func(*StageEventCreate, int)) *StageEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageEventCreateBulk{err: fmt.Errorf("calling to StageEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageEvent.
func (c *StageEventClient) Update() *StageEventUpdate {
	mutation := newStageEventMutation(c.config, OpUpdate)
	return &StageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageEventClient) UpdateOne(_m *StageEvent) *StageEventUpdateOne {
	mutation := newStageEventMutation(c.config, OpUpdateOne, withStageEvent(_m))
	return &StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageEventClient) UpdateOneID(id int) *StageEventUpdateOne {
	mutation := newStageEventMutation(c.config, OpUpdateOne, withStageEventID(id))
	return &StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageEvent.
func (c *StageEventClient) Delete() *StageEventDelete {
	mutation := newStageEventMutation(c.config, OpDelete)
	return &StageEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageEventClient) DeleteOne(_m *StageEvent) *StageEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageEventClient) DeleteOneID(id int) *StageEventDeleteOne {
	builder := c.Delete().Where(stageevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageEventDeleteOne{builder}
}

// Query returns a query builder for StageEvent.
func (c *StageEventClient) Query() *StageEventQuery {
	return &StageEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StageEvent entity by its id.
func (c *StageEventClient) Get(ctx context.Context, id int) (*StageEvent, error) {
	return c.Query().Where(stageevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageEventClient) GetX(ctx context.Context, id int) *StageEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StageEventClient) Hooks() []Hook {
	return c.hooks.StageEvent
}

// Interceptors returns the client interceptors.
func (c *StageEventClient) Interceptors() []Interceptor {
	return c.inters.StageEvent
}

func (c *StageEventClient) mutate(ctx context.Context, m *StageEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentEvent, BadgeEvent, GalleryEntry, JourneyCache, JourneyEvent,
		LLMRequestEvent, Snapshot, StageEvent []ent.Hook
	}
	inters struct {
		AssessmentEvent, BadgeEvent, GalleryEntry, JourneyCache, JourneyEvent,
		LLMRequestEvent, Snapshot, StageEvent []ent.Interceptor
	}
)
