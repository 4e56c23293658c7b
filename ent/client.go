// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/aether-home/aether/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aether-home/aether/ent/analysisreport"
	"github.com/aether-home/aether/ent/appsettings"
	"github.com/aether-home/aether/ent/conversation"
	"github.com/aether-home/aether/ent/haentity"
	"github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/ent/llmusage"
	"github.com/aether-home/aether/ent/message"
	"github.com/aether-home/aether/ent/proposal"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisReport is the client for interacting with the AnalysisReport builders.
	AnalysisReport *AnalysisReportClient
	// AppSettings is the client for interacting with the AppSettings builders.
	AppSettings *AppSettingsClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// HAEntity is the client for interacting with the HAEntity builders.
	HAEntity *HAEntityClient
	// Insight is the client for interacting with the Insight builders.
	Insight *InsightClient
	// InsightSchedule is the client for interacting with the InsightSchedule builders.
	InsightSchedule *InsightScheduleClient
	// LLMUsage is the client for interacting with the LLMUsage builders.
	LLMUsage *LLMUsageClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Proposal is the client for interacting with the Proposal builders.
	Proposal *ProposalClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisReport = NewAnalysisReportClient(c.config)
	c.AppSettings = NewAppSettingsClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.HAEntity = NewHAEntityClient(c.config)
	c.Insight = NewInsightClient(c.config)
	c.InsightSchedule = NewInsightScheduleClient(c.config)
	c.LLMUsage = NewLLMUsageClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Proposal = NewProposalClient(c.config)
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
		AnalysisReport:  NewAnalysisReportClient(cfg),
		AppSettings:     NewAppSettingsClient(cfg),
		Conversation:    NewConversationClient(cfg),
		HAEntity:        NewHAEntityClient(cfg),
		Insight:         NewInsightClient(cfg),
		InsightSchedule: NewInsightScheduleClient(cfg),
		LLMUsage:        NewLLMUsageClient(cfg),
		Message:         NewMessageClient(cfg),
		Proposal:        NewProposalClient(cfg),
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
		AnalysisReport:  NewAnalysisReportClient(cfg),
		AppSettings:     NewAppSettingsClient(cfg),
		Conversation:    NewConversationClient(cfg),
		HAEntity:        NewHAEntityClient(cfg),
		Insight:         NewInsightClient(cfg),
		InsightSchedule: NewInsightScheduleClient(cfg),
		LLMUsage:        NewLLMUsageClient(cfg),
		Message:         NewMessageClient(cfg),
		Proposal:        NewProposalClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisReport.
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
		c.AnalysisReport, c.AppSettings, c.Conversation, c.HAEntity, c.Insight,
		c.InsightSchedule, c.LLMUsage, c.Message, c.Proposal,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnalysisReport, c.AppSettings, c.Conversation, c.HAEntity, c.Insight,
		c.InsightSchedule, c.LLMUsage, c.Message, c.Proposal,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisReportMutation:
		return c.AnalysisReport.mutate(ctx, m)
	case *AppSettingsMutation:
		return c.AppSettings.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *HAEntityMutation:
		return c.HAEntity.mutate(ctx, m)
	case *InsightMutation:
		return c.Insight.mutate(ctx, m)
	case *InsightScheduleMutation:
		return c.InsightSchedule.mutate(ctx, m)
	case *LLMUsageMutation:
		return c.LLMUsage.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *ProposalMutation:
		return c.Proposal.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisReportClient is a client for the AnalysisReport schema.
type AnalysisReportClient struct {
	config
}

// NewAnalysisReportClient returns a client for the AnalysisReport from the given config.
func NewAnalysisReportClient(c config) *AnalysisReportClient {
	return &AnalysisReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisreport.Hooks(f(g(h())))`.
func (c *AnalysisReportClient) Use(hooks ...Hook) {
	c.hooks.AnalysisReport = append(c.hooks.AnalysisReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisreport.Intercept(f(g(h())))`.
func (c *AnalysisReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisReport = append(c.inters.AnalysisReport, interceptors...)
}

// Create returns a builder for creating a AnalysisReport entity.
func (c *AnalysisReportClient) Create() *AnalysisReportCreate {
	mutation := newAnalysisReportMutation(c.config, OpCreate)
	return &AnalysisReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisReport entities.
func (c *AnalysisReportClient) CreateBulk(builders ...*AnalysisReportCreate) *AnalysisReportCreateBulk {
	return &AnalysisReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisReportClient) MapCreateBulk(slice any, setFunc func(*AnalysisReportCreate, int)) *AnalysisReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisReportCreateBulk{err: fmt.Errorf("calling to AnalysisReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisReport.
func (c *AnalysisReportClient) Update() *AnalysisReportUpdate {
	mutation := newAnalysisReportMutation(c.config, OpUpdate)
	return &AnalysisReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisReportClient) UpdateOne(_m *AnalysisReport) *AnalysisReportUpdateOne {
	mutation := newAnalysisReportMutation(c.config, OpUpdateOne, withAnalysisReport(_m))
	return &AnalysisReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisReportClient) UpdateOneID(id string) *AnalysisReportUpdateOne {
	mutation := newAnalysisReportMutation(c.config, OpUpdateOne, withAnalysisReportID(id))
	return &AnalysisReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisReport.
func (c *AnalysisReportClient) Delete() *AnalysisReportDelete {
	mutation := newAnalysisReportMutation(c.config, OpDelete)
	return &AnalysisReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisReportClient) DeleteOne(_m *AnalysisReport) *AnalysisReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisReportClient) DeleteOneID(id string) *AnalysisReportDeleteOne {
	builder := c.Delete().Where(analysisreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisReportDeleteOne{builder}
}

// Query returns a query builder for AnalysisReport.
func (c *AnalysisReportClient) Query() *AnalysisReportQuery {
	return &AnalysisReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisReport},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisReport entity by its id.
func (c *AnalysisReportClient) Get(ctx context.Context, id string) (*AnalysisReport, error) {
	return c.Query().Where(analysisreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisReportClient) GetX(ctx context.Context, id string) *AnalysisReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisReportClient) Hooks() []Hook {
	return c.hooks.AnalysisReport
}

// Interceptors returns the client interceptors.
func (c *AnalysisReportClient) Interceptors() []Interceptor {
	return c.inters.AnalysisReport
}

func (c *AnalysisReportClient) mutate(ctx context.Context, m *AnalysisReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisReport mutation op: %q", m.Op())
	}
}

// AppSettingsClient is a client for the AppSettings schema.
type AppSettingsClient struct {
	config
}

// NewAppSettingsClient returns a client for the AppSettings from the given config.
func NewAppSettingsClient(c config) *AppSettingsClient {
	return &AppSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appsettings.Hooks(f(g(h())))`.
func (c *AppSettingsClient) Use(hooks ...Hook) {
	c.hooks.AppSettings = append(c.hooks.AppSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appsettings.Intercept(f(g(h())))`.
func (c *AppSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppSettings = append(c.inters.AppSettings, interceptors...)
}

// Create returns a builder for creating a AppSettings entity.
func (c *AppSettingsClient) Create() *AppSettingsCreate {
	mutation := newAppSettingsMutation(c.config, OpCreate)
	return &AppSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppSettings entities.
func (c *AppSettingsClient) CreateBulk(builders ...*AppSettingsCreate) *AppSettingsCreateBulk {
	return &AppSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppSettingsClient) MapCreateBulk(slice any, setFunc func(*AppSettingsCreate, int)) *AppSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppSettingsCreateBulk{err: fmt.Errorf("calling to AppSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppSettings.
func (c *AppSettingsClient) Update() *AppSettingsUpdate {
	mutation := newAppSettingsMutation(c.config, OpUpdate)
	return &AppSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppSettingsClient) UpdateOne(_m *AppSettings) *AppSettingsUpdateOne {
	mutation := newAppSettingsMutation(c.config, OpUpdateOne, withAppSettings(_m))
	return &AppSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppSettingsClient) UpdateOneID(id string) *AppSettingsUpdateOne {
	mutation := newAppSettingsMutation(c.config, OpUpdateOne, withAppSettingsID(id))
	return &AppSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppSettings.
func (c *AppSettingsClient) Delete() *AppSettingsDelete {
	mutation := newAppSettingsMutation(c.config, OpDelete)
	return &AppSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppSettingsClient) DeleteOne(_m *AppSettings) *AppSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppSettingsClient) DeleteOneID(id string) *AppSettingsDeleteOne {
	builder := c.Delete().Where(appsettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppSettingsDeleteOne{builder}
}

// Query returns a query builder for AppSettings.
func (c *AppSettingsClient) Query() *AppSettingsQuery {
	return &AppSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a AppSettings entity by its id.
func (c *AppSettingsClient) Get(ctx context.Context, id string) (*AppSettings, error) {
	return c.Query().Where(appsettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppSettingsClient) GetX(ctx context.Context, id string) *AppSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppSettingsClient) Hooks() []Hook {
	return c.hooks.AppSettings
}

// Interceptors returns the client interceptors.
func (c *AppSettingsClient) Interceptors() []Interceptor {
	return c.inters.AppSettings
}

func (c *AppSettingsClient) mutate(ctx context.Context, m *AppSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AppSettings mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// HAEntityClient is a client for the HAEntity schema.
type HAEntityClient struct {
	config
}

// NewHAEntityClient returns a client for the HAEntity from the given config.
func NewHAEntityClient(c config) *HAEntityClient {
	return &HAEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `haentity.Hooks(f(g(h())))`.
func (c *HAEntityClient) Use(hooks ...Hook) {
	c.hooks.HAEntity = append(c.hooks.HAEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `haentity.Intercept(f(g(h())))`.
func (c *HAEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.HAEntity = append(c.inters.HAEntity, interceptors...)
}

// Create returns a builder for creating a HAEntity entity.
func (c *HAEntityClient) Create() *HAEntityCreate {
	mutation := newHAEntityMutation(c.config, OpCreate)
	return &HAEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HAEntity entities.
func (c *HAEntityClient) CreateBulk(builders ...*HAEntityCreate) *HAEntityCreateBulk {
	return &HAEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HAEntityClient) MapCreateBulk(slice any, setFunc func(*HAEntityCreate, int)) *HAEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HAEntityCreateBulk{err: fmt.Errorf("calling to HAEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HAEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HAEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HAEntity.
func (c *HAEntityClient) Update() *HAEntityUpdate {
	mutation := newHAEntityMutation(c.config, OpUpdate)
	return &HAEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HAEntityClient) UpdateOne(_m *HAEntity) *HAEntityUpdateOne {
	mutation := newHAEntityMutation(c.config, OpUpdateOne, withHAEntity(_m))
	return &HAEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HAEntityClient) UpdateOneID(id string) *HAEntityUpdateOne {
	mutation := newHAEntityMutation(c.config, OpUpdateOne, withHAEntityID(id))
	return &HAEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HAEntity.
func (c *HAEntityClient) Delete() *HAEntityDelete {
	mutation := newHAEntityMutation(c.config, OpDelete)
	return &HAEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HAEntityClient) DeleteOne(_m *HAEntity) *HAEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HAEntityClient) DeleteOneID(id string) *HAEntityDeleteOne {
	builder := c.Delete().Where(haentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HAEntityDeleteOne{builder}
}

// Query returns a query builder for HAEntity.
func (c *HAEntityClient) Query() *HAEntityQuery {
	return &HAEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHAEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a HAEntity entity by its id.
func (c *HAEntityClient) Get(ctx context.Context, id string) (*HAEntity, error) {
	return c.Query().Where(haentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HAEntityClient) GetX(ctx context.Context, id string) *HAEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HAEntityClient) Hooks() []Hook {
	return c.hooks.HAEntity
}

// Interceptors returns the client interceptors.
func (c *HAEntityClient) Interceptors() []Interceptor {
	return c.inters.HAEntity
}

func (c *HAEntityClient) mutate(ctx context.Context, m *HAEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HAEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HAEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HAEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HAEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HAEntity mutation op: %q", m.Op())
	}
}

// InsightClient is a client for the Insight schema.
type InsightClient struct {
	config
}

// NewInsightClient returns a client for the Insight from the given config.
func NewInsightClient(c config) *InsightClient {
	return &InsightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insight.Hooks(f(g(h())))`.
func (c *InsightClient) Use(hooks ...Hook) {
	c.hooks.Insight = append(c.hooks.Insight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insight.Intercept(f(g(h())))`.
func (c *InsightClient) Intercept(interceptors ...Interceptor) {
	c.inters.Insight = append(c.inters.Insight, interceptors...)
}

// Create returns a builder for creating a Insight entity.
func (c *InsightClient) Create() *InsightCreate {
	mutation := newInsightMutation(c.config, OpCreate)
	return &InsightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Insight entities.
func (c *InsightClient) CreateBulk(builders ...*InsightCreate) *InsightCreateBulk {
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsightClient) MapCreateBulk(slice any, setFunc func(*InsightCreate, int)) *InsightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsightCreateBulk{err: fmt.Errorf("calling to InsightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Insight.
func (c *InsightClient) Update() *InsightUpdate {
	mutation := newInsightMutation(c.config, OpUpdate)
	return &InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsightClient) UpdateOne(_m *Insight) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsight(_m))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsightClient) UpdateOneID(id string) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsightID(id))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Insight.
func (c *InsightClient) Delete() *InsightDelete {
	mutation := newInsightMutation(c.config, OpDelete)
	return &InsightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsightClient) DeleteOne(_m *Insight) *InsightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsightClient) DeleteOneID(id string) *InsightDeleteOne {
	builder := c.Delete().Where(insight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsightDeleteOne{builder}
}

// Query returns a query builder for Insight.
func (c *InsightClient) Query() *InsightQuery {
	return &InsightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsight},
		inters: c.Interceptors(),
	}
}

// Get returns a Insight entity by its id.
func (c *InsightClient) Get(ctx context.Context, id string) (*Insight, error) {
	return c.Query().Where(insight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsightClient) GetX(ctx context.Context, id string) *Insight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InsightClient) Hooks() []Hook {
	return c.hooks.Insight
}

// Interceptors returns the client interceptors.
func (c *InsightClient) Interceptors() []Interceptor {
	return c.inters.Insight
}

func (c *InsightClient) mutate(ctx context.Context, m *InsightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Insight mutation op: %q", m.Op())
	}
}

// InsightScheduleClient is a client for the InsightSchedule schema.
type InsightScheduleClient struct {
	config
}

// NewInsightScheduleClient returns a client for the InsightSchedule from the given config.
func NewInsightScheduleClient(c config) *InsightScheduleClient {
	return &InsightScheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insightschedule.Hooks(f(g(h())))`.
func (c *InsightScheduleClient) Use(hooks ...Hook) {
	c.hooks.InsightSchedule = append(c.hooks.InsightSchedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insightschedule.Intercept(f(g(h())))`.
func (c *InsightScheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.InsightSchedule = append(c.inters.InsightSchedule, interceptors...)
}

// Create returns a builder for creating a InsightSchedule entity.
func (c *InsightScheduleClient) Create() *InsightScheduleCreate {
	mutation := newInsightScheduleMutation(c.config, OpCreate)
	return &InsightScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InsightSchedule entities.
func (c *InsightScheduleClient) CreateBulk(builders ...*InsightScheduleCreate) *InsightScheduleCreateBulk {
	return &InsightScheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsightScheduleClient) MapCreateBulk(slice any, setFunc func(*InsightScheduleCreate, int)) *InsightScheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsightScheduleCreateBulk{err: fmt.Errorf("calling to InsightScheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsightScheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsightScheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InsightSchedule.
func (c *InsightScheduleClient) Update() *InsightScheduleUpdate {
	mutation := newInsightScheduleMutation(c.config, OpUpdate)
	return &InsightScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsightScheduleClient) UpdateOne(_m *InsightSchedule) *InsightScheduleUpdateOne {
	mutation := newInsightScheduleMutation(c.config, OpUpdateOne, withInsightSchedule(_m))
	return &InsightScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsightScheduleClient) UpdateOneID(id string) *InsightScheduleUpdateOne {
	mutation := newInsightScheduleMutation(c.config, OpUpdateOne, withInsightScheduleID(id))
	return &InsightScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InsightSchedule.
func (c *InsightScheduleClient) Delete() *InsightScheduleDelete {
	mutation := newInsightScheduleMutation(c.config, OpDelete)
	return &InsightScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsightScheduleClient) DeleteOne(_m *InsightSchedule) *InsightScheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsightScheduleClient) DeleteOneID(id string) *InsightScheduleDeleteOne {
	builder := c.Delete().Where(insightschedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsightScheduleDeleteOne{builder}
}

// Query returns a query builder for InsightSchedule.
func (c *InsightScheduleClient) Query() *InsightScheduleQuery {
	return &InsightScheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsightSchedule},
		inters: c.Interceptors(),
	}
}

// Get returns a InsightSchedule entity by its id.
func (c *InsightScheduleClient) Get(ctx context.Context, id string) (*InsightSchedule, error) {
	return c.Query().Where(insightschedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsightScheduleClient) GetX(ctx context.Context, id string) *InsightSchedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InsightScheduleClient) Hooks() []Hook {
	return c.hooks.InsightSchedule
}

// Interceptors returns the client interceptors.
func (c *InsightScheduleClient) Interceptors() []Interceptor {
	return c.inters.InsightSchedule
}

func (c *InsightScheduleClient) mutate(ctx context.Context, m *InsightScheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsightScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsightScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsightScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsightScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InsightSchedule mutation op: %q", m.Op())
	}
}

// LLMUsageClient is a client for the LLMUsage schema.
type LLMUsageClient struct {
	config
}

// NewLLMUsageClient returns a client for the LLMUsage from the given config.
func NewLLMUsageClient(c config) *LLMUsageClient {
	return &LLMUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmusage.Hooks(f(g(h())))`.
func (c *LLMUsageClient) Use(hooks ...Hook) {
	c.hooks.LLMUsage = append(c.hooks.LLMUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmusage.Intercept(f(g(h())))`.
func (c *LLMUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMUsage = append(c.inters.LLMUsage, interceptors...)
}

// Create returns a builder for creating a LLMUsage entity.
func (c *LLMUsageClient) Create() *LLMUsageCreate {
	mutation := newLLMUsageMutation(c.config, OpCreate)
	return &LLMUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMUsage entities.
func (c *LLMUsageClient) CreateBulk(builders ...*LLMUsageCreate) *LLMUsageCreateBulk {
	return &LLMUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMUsageClient) MapCreateBulk(slice any, setFunc func(*LLMUsageCreate, int)) *LLMUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMUsageCreateBulk{err: fmt.Errorf("calling to LLMUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMUsage.
func (c *LLMUsageClient) Update() *LLMUsageUpdate {
	mutation := newLLMUsageMutation(c.config, OpUpdate)
	return &LLMUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMUsageClient) UpdateOne(_m *LLMUsage) *LLMUsageUpdateOne {
	mutation := newLLMUsageMutation(c.config, OpUpdateOne, withLLMUsage(_m))
	return &LLMUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMUsageClient) UpdateOneID(id string) *LLMUsageUpdateOne {
	mutation := newLLMUsageMutation(c.config, OpUpdateOne, withLLMUsageID(id))
	return &LLMUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMUsage.
func (c *LLMUsageClient) Delete() *LLMUsageDelete {
	mutation := newLLMUsageMutation(c.config, OpDelete)
	return &LLMUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMUsageClient) DeleteOne(_m *LLMUsage) *LLMUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMUsageClient) DeleteOneID(id string) *LLMUsageDeleteOne {
	builder := c.Delete().Where(llmusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMUsageDeleteOne{builder}
}

// Query returns a query builder for LLMUsage.
func (c *LLMUsageClient) Query() *LLMUsageQuery {
	return &LLMUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMUsage entity by its id.
func (c *LLMUsageClient) Get(ctx context.Context, id string) (*LLMUsage, error) {
	return c.Query().Where(llmusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMUsageClient) GetX(ctx context.Context, id string) *LLMUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMUsageClient) Hooks() []Hook {
	return c.hooks.LLMUsage
}

// Interceptors returns the client interceptors.
func (c *LLMUsageClient) Interceptors() []Interceptor {
	return c.inters.LLMUsage
}

func (c *LLMUsageClient) mutate(ctx context.Context, m *LLMUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMUsage mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Message.
func (c *MessageClient) QueryConversation(_m *Message) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ConversationTable, message.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// ProposalClient is a client for the Proposal schema.
type ProposalClient struct {
	config
}

// NewProposalClient returns a client for the Proposal from the given config.
func NewProposalClient(c config) *ProposalClient {
	return &ProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposal.Hooks(f(g(h())))`.
func (c *ProposalClient) Use(hooks ...Hook) {
	c.hooks.Proposal = append(c.hooks.Proposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposal.Intercept(f(g(h())))`.
func (c *ProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Proposal = append(c.inters.Proposal, interceptors...)
}

// Create returns a builder for creating a Proposal entity.
func (c *ProposalClient) Create() *ProposalCreate {
	mutation := newProposalMutation(c.config, OpCreate)
	return &ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Proposal entities.
func (c *ProposalClient) CreateBulk(builders ...*ProposalCreate) *ProposalCreateBulk {
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposalClient) MapCreateBulk(slice any, setFunc func(*ProposalCreate, int)) *ProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposalCreateBulk{err: fmt.Errorf("calling to ProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Proposal.
func (c *ProposalClient) Update() *ProposalUpdate {
	mutation := newProposalMutation(c.config, OpUpdate)
	return &ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposalClient) UpdateOne(_m *Proposal) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposal(_m))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposalClient) UpdateOneID(id string) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposalID(id))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Proposal.
func (c *ProposalClient) Delete() *ProposalDelete {
	mutation := newProposalMutation(c.config, OpDelete)
	return &ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposalClient) DeleteOne(_m *Proposal) *ProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposalClient) DeleteOneID(id string) *ProposalDeleteOne {
	builder := c.Delete().Where(proposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposalDeleteOne{builder}
}

// Query returns a query builder for Proposal.
func (c *ProposalClient) Query() *ProposalQuery {
	return &ProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a Proposal entity by its id.
func (c *ProposalClient) Get(ctx context.Context, id string) (*Proposal, error) {
	return c.Query().Where(proposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposalClient) GetX(ctx context.Context, id string) *Proposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProposalClient) Hooks() []Hook {
	return c.hooks.Proposal
}

// Interceptors returns the client interceptors.
func (c *ProposalClient) Interceptors() []Interceptor {
	return c.inters.Proposal
}

func (c *ProposalClient) mutate(ctx context.Context, m *ProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Proposal mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisReport, AppSettings, Conversation, HAEntity, Insight, InsightSchedule,
		LLMUsage, Message, Proposal []ent.Hook
	}
	inters struct {
		AnalysisReport, AppSettings, Conversation, HAEntity, Insight, InsightSchedule,
		LLMUsage, Message, Proposal []ent.Interceptor
	}
)
