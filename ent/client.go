// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Engagic/engagic-sub004/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/ent/processingcache"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
	"github.com/Engagic/engagic-sub004/ent/vote"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgendaItem is the client for interacting with the AgendaItem builders.
	AgendaItem *AgendaItemClient
	// City is the client for interacting with the City builders.
	City *CityClient
	// Committee is the client for interacting with the Committee builders.
	Committee *CommitteeClient
	// CommitteeMembership is the client for interacting with the CommitteeMembership builders.
	CommitteeMembership *CommitteeMembershipClient
	// CouncilMember is the client for interacting with the CouncilMember builders.
	CouncilMember *CouncilMemberClient
	// Matter is the client for interacting with the Matter builders.
	Matter *MatterClient
	// MatterAppearance is the client for interacting with the MatterAppearance builders.
	MatterAppearance *MatterAppearanceClient
	// Meeting is the client for interacting with the Meeting builders.
	Meeting *MeetingClient
	// ProcessingCache is the client for interacting with the ProcessingCache builders.
	ProcessingCache *ProcessingCacheClient
	// QueueJob is the client for interacting with the QueueJob builders.
	QueueJob *QueueJobClient
	// Vote is the client for interacting with the Vote builders.
	Vote *VoteClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgendaItem = NewAgendaItemClient(c.config)
	c.City = NewCityClient(c.config)
	c.Committee = NewCommitteeClient(c.config)
	c.CommitteeMembership = NewCommitteeMembershipClient(c.config)
	c.CouncilMember = NewCouncilMemberClient(c.config)
	c.Matter = NewMatterClient(c.config)
	c.MatterAppearance = NewMatterAppearanceClient(c.config)
	c.Meeting = NewMeetingClient(c.config)
	c.ProcessingCache = NewProcessingCacheClient(c.config)
	c.QueueJob = NewQueueJobClient(c.config)
	c.Vote = NewVoteClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		AgendaItem:          NewAgendaItemClient(cfg),
		City:                NewCityClient(cfg),
		Committee:           NewCommitteeClient(cfg),
		CommitteeMembership: NewCommitteeMembershipClient(cfg),
		CouncilMember:       NewCouncilMemberClient(cfg),
		Matter:              NewMatterClient(cfg),
		MatterAppearance:    NewMatterAppearanceClient(cfg),
		Meeting:             NewMeetingClient(cfg),
		ProcessingCache:     NewProcessingCacheClient(cfg),
		QueueJob:            NewQueueJobClient(cfg),
		Vote:                NewVoteClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		AgendaItem:          NewAgendaItemClient(cfg),
		City:                NewCityClient(cfg),
		Committee:           NewCommitteeClient(cfg),
		CommitteeMembership: NewCommitteeMembershipClient(cfg),
		CouncilMember:       NewCouncilMemberClient(cfg),
		Matter:              NewMatterClient(cfg),
		MatterAppearance:    NewMatterAppearanceClient(cfg),
		Meeting:             NewMeetingClient(cfg),
		ProcessingCache:     NewProcessingCacheClient(cfg),
		QueueJob:            NewQueueJobClient(cfg),
		Vote:                NewVoteClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgendaItem.
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
		c.AgendaItem, c.City, c.Committee, c.CommitteeMembership, c.CouncilMember,
		c.Matter, c.MatterAppearance, c.Meeting, c.ProcessingCache, c.QueueJob, c.Vote,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgendaItem, c.City, c.Committee, c.CommitteeMembership, c.CouncilMember,
		c.Matter, c.MatterAppearance, c.Meeting, c.ProcessingCache, c.QueueJob, c.Vote,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgendaItemMutation:
		return c.AgendaItem.mutate(ctx, m)
	case *CityMutation:
		return c.City.mutate(ctx, m)
	case *CommitteeMutation:
		return c.Committee.mutate(ctx, m)
	case *CommitteeMembershipMutation:
		return c.CommitteeMembership.mutate(ctx, m)
	case *CouncilMemberMutation:
		return c.CouncilMember.mutate(ctx, m)
	case *MatterMutation:
		return c.Matter.mutate(ctx, m)
	case *MatterAppearanceMutation:
		return c.MatterAppearance.mutate(ctx, m)
	case *MeetingMutation:
		return c.Meeting.mutate(ctx, m)
	case *ProcessingCacheMutation:
		return c.ProcessingCache.mutate(ctx, m)
	case *QueueJobMutation:
		return c.QueueJob.mutate(ctx, m)
	case *VoteMutation:
		return c.Vote.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgendaItemClient is a client for the AgendaItem schema.
type AgendaItemClient struct {
	config
}

// NewAgendaItemClient returns a client for the AgendaItem from the given config.
func NewAgendaItemClient(c config) *AgendaItemClient {
	return &AgendaItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agendaitem.Hooks(f(g(h())))`.
func (c *AgendaItemClient) Use(hooks ...Hook) {
	c.hooks.AgendaItem = append(c.hooks.AgendaItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agendaitem.Intercept(f(g(h())))`.
func (c *AgendaItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgendaItem = append(c.inters.AgendaItem, interceptors...)
}

// Create returns a builder for creating a AgendaItem entity.
func (c *AgendaItemClient) Create() *AgendaItemCreate {
	mutation := newAgendaItemMutation(c.config, OpCreate)
	return &AgendaItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgendaItem entities.
func (c *AgendaItemClient) CreateBulk(builders ...*AgendaItemCreate) *AgendaItemCreateBulk {
	return &AgendaItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgendaItemClient) MapCreateBulk(slice any, setFunc func(*AgendaItemCreate, int)) *AgendaItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgendaItemCreateBulk{err: fmt.Errorf("calling to AgendaItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgendaItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgendaItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgendaItem.
func (c *AgendaItemClient) Update() *AgendaItemUpdate {
	mutation := newAgendaItemMutation(c.config, OpUpdate)
	return &AgendaItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgendaItemClient) UpdateOne(_m *AgendaItem) *AgendaItemUpdateOne {
	mutation := newAgendaItemMutation(c.config, OpUpdateOne, withAgendaItem(_m))
	return &AgendaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgendaItemClient) UpdateOneID(id string) *AgendaItemUpdateOne {
	mutation := newAgendaItemMutation(c.config, OpUpdateOne, withAgendaItemID(id))
	return &AgendaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgendaItem.
func (c *AgendaItemClient) Delete() *AgendaItemDelete {
	mutation := newAgendaItemMutation(c.config, OpDelete)
	return &AgendaItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgendaItemClient) DeleteOne(_m *AgendaItem) *AgendaItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgendaItemClient) DeleteOneID(id string) *AgendaItemDeleteOne {
	builder := c.Delete().Where(agendaitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgendaItemDeleteOne{builder}
}

// Query returns a query builder for AgendaItem.
func (c *AgendaItemClient) Query() *AgendaItemQuery {
	return &AgendaItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgendaItem},
		inters: c.Interceptors(),
	}
}

// Get returns a AgendaItem entity by its id.
func (c *AgendaItemClient) Get(ctx context.Context, id string) (*AgendaItem, error) {
	return c.Query().Where(agendaitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgendaItemClient) GetX(ctx context.Context, id string) *AgendaItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMeeting queries the meeting edge of a AgendaItem.
func (c *AgendaItemClient) QueryMeeting(_m *AgendaItem) *MeetingQuery {
	query := (&MeetingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agendaitem.Table, agendaitem.FieldID, id),
			sqlgraph.To(meeting.Table, meeting.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agendaitem.MeetingTable, agendaitem.MeetingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppearances queries the appearances edge of a AgendaItem.
func (c *AgendaItemClient) QueryAppearances(_m *AgendaItem) *MatterAppearanceQuery {
	query := (&MatterAppearanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agendaitem.Table, agendaitem.FieldID, id),
			sqlgraph.To(matterappearance.Table, matterappearance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agendaitem.AppearancesTable, agendaitem.AppearancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgendaItemClient) Hooks() []Hook {
	return c.hooks.AgendaItem
}

// Interceptors returns the client interceptors.
func (c *AgendaItemClient) Interceptors() []Interceptor {
	return c.inters.AgendaItem
}

func (c *AgendaItemClient) mutate(ctx context.Context, m *AgendaItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgendaItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgendaItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgendaItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgendaItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgendaItem mutation op: %q", m.Op())
	}
}

// CityClient is a client for the City schema.
type CityClient struct {
	config
}

// NewCityClient returns a client for the City from the given config.
func NewCityClient(c config) *CityClient {
	return &CityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `city.Hooks(f(g(h())))`.
func (c *CityClient) Use(hooks ...Hook) {
	c.hooks.City = append(c.hooks.City, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `city.Intercept(f(g(h())))`.
func (c *CityClient) Intercept(interceptors ...Interceptor) {
	c.inters.City = append(c.inters.City, interceptors...)
}

// Create returns a builder for creating a City entity.
func (c *CityClient) Create() *CityCreate {
	mutation := newCityMutation(c.config, OpCreate)
	return &CityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of City entities.
func (c *CityClient) CreateBulk(builders ...*CityCreate) *CityCreateBulk {
	return &CityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CityClient) MapCreateBulk(slice any, setFunc func(*CityCreate, int)) *CityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CityCreateBulk{err: fmt.Errorf("calling to CityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for City.
func (c *CityClient) Update() *CityUpdate {
	mutation := newCityMutation(c.config, OpUpdate)
	return &CityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CityClient) UpdateOne(_m *City) *CityUpdateOne {
	mutation := newCityMutation(c.config, OpUpdateOne, withCity(_m))
	return &CityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CityClient) UpdateOneID(id string) *CityUpdateOne {
	mutation := newCityMutation(c.config, OpUpdateOne, withCityID(id))
	return &CityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for City.
func (c *CityClient) Delete() *CityDelete {
	mutation := newCityMutation(c.config, OpDelete)
	return &CityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CityClient) DeleteOne(_m *City) *CityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CityClient) DeleteOneID(id string) *CityDeleteOne {
	builder := c.Delete().Where(city.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CityDeleteOne{builder}
}

// Query returns a query builder for City.
func (c *CityClient) Query() *CityQuery {
	return &CityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCity},
		inters: c.Interceptors(),
	}
}

// Get returns a City entity by its id.
func (c *CityClient) Get(ctx context.Context, id string) (*City, error) {
	return c.Query().Where(city.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CityClient) GetX(ctx context.Context, id string) *City {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMeetings queries the meetings edge of a City.
func (c *CityClient) QueryMeetings(_m *City) *MeetingQuery {
	query := (&MeetingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(city.Table, city.FieldID, id),
			sqlgraph.To(meeting.Table, meeting.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, city.MeetingsTable, city.MeetingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatters queries the matters edge of a City.
func (c *CityClient) QueryMatters(_m *City) *MatterQuery {
	query := (&MatterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(city.Table, city.FieldID, id),
			sqlgraph.To(matter.Table, matter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, city.MattersTable, city.MattersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCouncilMembers queries the council_members edge of a City.
func (c *CityClient) QueryCouncilMembers(_m *City) *CouncilMemberQuery {
	query := (&CouncilMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(city.Table, city.FieldID, id),
			sqlgraph.To(councilmember.Table, councilmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, city.CouncilMembersTable, city.CouncilMembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommittees queries the committees edge of a City.
func (c *CityClient) QueryCommittees(_m *City) *CommitteeQuery {
	query := (&CommitteeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(city.Table, city.FieldID, id),
			sqlgraph.To(committee.Table, committee.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, city.CommitteesTable, city.CommitteesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CityClient) Hooks() []Hook {
	return c.hooks.City
}

// Interceptors returns the client interceptors.
func (c *CityClient) Interceptors() []Interceptor {
	return c.inters.City
}

func (c *CityClient) mutate(ctx context.Context, m *CityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown City mutation op: %q", m.Op())
	}
}

// CommitteeClient is a client for the Committee schema.
type CommitteeClient struct {
	config
}

// NewCommitteeClient returns a client for the Committee from the given config.
func NewCommitteeClient(c config) *CommitteeClient {
	return &CommitteeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `committee.Hooks(f(g(h())))`.
func (c *CommitteeClient) Use(hooks ...Hook) {
	c.hooks.Committee = append(c.hooks.Committee, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `committee.Intercept(f(g(h())))`.
func (c *CommitteeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Committee = append(c.inters.Committee, interceptors...)
}

// Create returns a builder for creating a Committee entity.
func (c *CommitteeClient) Create() *CommitteeCreate {
	mutation := newCommitteeMutation(c.config, OpCreate)
	return &CommitteeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Committee entities.
func (c *CommitteeClient) CreateBulk(builders ...*CommitteeCreate) *CommitteeCreateBulk {
	return &CommitteeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommitteeClient) MapCreateBulk(slice any, setFunc func(*CommitteeCreate, int)) *CommitteeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommitteeCreateBulk{err: fmt.Errorf("calling to CommitteeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommitteeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommitteeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Committee.
func (c *CommitteeClient) Update() *CommitteeUpdate {
	mutation := newCommitteeMutation(c.config, OpUpdate)
	return &CommitteeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommitteeClient) UpdateOne(_m *Committee) *CommitteeUpdateOne {
	mutation := newCommitteeMutation(c.config, OpUpdateOne, withCommittee(_m))
	return &CommitteeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommitteeClient) UpdateOneID(id string) *CommitteeUpdateOne {
	mutation := newCommitteeMutation(c.config, OpUpdateOne, withCommitteeID(id))
	return &CommitteeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Committee.
func (c *CommitteeClient) Delete() *CommitteeDelete {
	mutation := newCommitteeMutation(c.config, OpDelete)
	return &CommitteeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommitteeClient) DeleteOne(_m *Committee) *CommitteeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommitteeClient) DeleteOneID(id string) *CommitteeDeleteOne {
	builder := c.Delete().Where(committee.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommitteeDeleteOne{builder}
}

// Query returns a query builder for Committee.
func (c *CommitteeClient) Query() *CommitteeQuery {
	return &CommitteeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommittee},
		inters: c.Interceptors(),
	}
}

// Get returns a Committee entity by its id.
func (c *CommitteeClient) Get(ctx context.Context, id string) (*Committee, error) {
	return c.Query().Where(committee.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommitteeClient) GetX(ctx context.Context, id string) *Committee {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCity queries the city edge of a Committee.
func (c *CommitteeClient) QueryCity(_m *Committee) *CityQuery {
	query := (&CityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(committee.Table, committee.FieldID, id),
			sqlgraph.To(city.Table, city.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, committee.CityTable, committee.CityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMeetings queries the meetings edge of a Committee.
func (c *CommitteeClient) QueryMeetings(_m *Committee) *MeetingQuery {
	query := (&MeetingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(committee.Table, committee.FieldID, id),
			sqlgraph.To(meeting.Table, meeting.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, committee.MeetingsTable, committee.MeetingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemberships queries the memberships edge of a Committee.
func (c *CommitteeClient) QueryMemberships(_m *Committee) *CommitteeMembershipQuery {
	query := (&CommitteeMembershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(committee.Table, committee.FieldID, id),
			sqlgraph.To(committeemembership.Table, committeemembership.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, committee.MembershipsTable, committee.MembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommitteeClient) Hooks() []Hook {
	return c.hooks.Committee
}

// Interceptors returns the client interceptors.
func (c *CommitteeClient) Interceptors() []Interceptor {
	return c.inters.Committee
}

func (c *CommitteeClient) mutate(ctx context.Context, m *CommitteeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommitteeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommitteeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommitteeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommitteeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Committee mutation op: %q", m.Op())
	}
}

// CommitteeMembershipClient is a client for the CommitteeMembership schema.
type CommitteeMembershipClient struct {
	config
}

// NewCommitteeMembershipClient returns a client for the CommitteeMembership from the given config.
func NewCommitteeMembershipClient(c config) *CommitteeMembershipClient {
	return &CommitteeMembershipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `committeemembership.Hooks(f(g(h())))`.
func (c *CommitteeMembershipClient) Use(hooks ...Hook) {
	c.hooks.CommitteeMembership = append(c.hooks.CommitteeMembership, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `committeemembership.Intercept(f(g(h())))`.
func (c *CommitteeMembershipClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommitteeMembership = append(c.inters.CommitteeMembership, interceptors...)
}

// Create returns a builder for creating a CommitteeMembership entity.
func (c *CommitteeMembershipClient) Create() *CommitteeMembershipCreate {
	mutation := newCommitteeMembershipMutation(c.config, OpCreate)
	return &CommitteeMembershipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommitteeMembership entities.
func (c *CommitteeMembershipClient) CreateBulk(builders ...*CommitteeMembershipCreate) *CommitteeMembershipCreateBulk {
	return &CommitteeMembershipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommitteeMembershipClient) MapCreateBulk(slice any, setFunc func(*CommitteeMembershipCreate, int)) *CommitteeMembershipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommitteeMembershipCreateBulk{err: fmt.Errorf("calling to CommitteeMembershipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommitteeMembershipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommitteeMembershipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommitteeMembership.
func (c *CommitteeMembershipClient) Update() *CommitteeMembershipUpdate {
	mutation := newCommitteeMembershipMutation(c.config, OpUpdate)
	return &CommitteeMembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommitteeMembershipClient) UpdateOne(_m *CommitteeMembership) *CommitteeMembershipUpdateOne {
	mutation := newCommitteeMembershipMutation(c.config, OpUpdateOne, withCommitteeMembership(_m))
	return &CommitteeMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommitteeMembershipClient) UpdateOneID(id string) *CommitteeMembershipUpdateOne {
	mutation := newCommitteeMembershipMutation(c.config, OpUpdateOne, withCommitteeMembershipID(id))
	return &CommitteeMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommitteeMembership.
func (c *CommitteeMembershipClient) Delete() *CommitteeMembershipDelete {
	mutation := newCommitteeMembershipMutation(c.config, OpDelete)
	return &CommitteeMembershipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommitteeMembershipClient) DeleteOne(_m *CommitteeMembership) *CommitteeMembershipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommitteeMembershipClient) DeleteOneID(id string) *CommitteeMembershipDeleteOne {
	builder := c.Delete().Where(committeemembership.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommitteeMembershipDeleteOne{builder}
}

// Query returns a query builder for CommitteeMembership.
func (c *CommitteeMembershipClient) Query() *CommitteeMembershipQuery {
	return &CommitteeMembershipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommitteeMembership},
		inters: c.Interceptors(),
	}
}

// Get returns a CommitteeMembership entity by its id.
func (c *CommitteeMembershipClient) Get(ctx context.Context, id string) (*CommitteeMembership, error) {
	return c.Query().Where(committeemembership.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommitteeMembershipClient) GetX(ctx context.Context, id string) *CommitteeMembership {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCommittee queries the committee edge of a CommitteeMembership.
func (c *CommitteeMembershipClient) QueryCommittee(_m *CommitteeMembership) *CommitteeQuery {
	query := (&CommitteeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(committeemembership.Table, committeemembership.FieldID, id),
			sqlgraph.To(committee.Table, committee.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, committeemembership.CommitteeTable, committeemembership.CommitteeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMember queries the member edge of a CommitteeMembership.
func (c *CommitteeMembershipClient) QueryMember(_m *CommitteeMembership) *CouncilMemberQuery {
	query := (&CouncilMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(committeemembership.Table, committeemembership.FieldID, id),
			sqlgraph.To(councilmember.Table, councilmember.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, committeemembership.MemberTable, committeemembership.MemberColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommitteeMembershipClient) Hooks() []Hook {
	return c.hooks.CommitteeMembership
}

// Interceptors returns the client interceptors.
func (c *CommitteeMembershipClient) Interceptors() []Interceptor {
	return c.inters.CommitteeMembership
}

func (c *CommitteeMembershipClient) mutate(ctx context.Context, m *CommitteeMembershipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommitteeMembershipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommitteeMembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommitteeMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommitteeMembershipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommitteeMembership mutation op: %q", m.Op())
	}
}

// CouncilMemberClient is a client for the CouncilMember schema.
type CouncilMemberClient struct {
	config
}

// NewCouncilMemberClient returns a client for the CouncilMember from the given config.
func NewCouncilMemberClient(c config) *CouncilMemberClient {
	return &CouncilMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `councilmember.Hooks(f(g(h())))`.
func (c *CouncilMemberClient) Use(hooks ...Hook) {
	c.hooks.CouncilMember = append(c.hooks.CouncilMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `councilmember.Intercept(f(g(h())))`.
func (c *CouncilMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.CouncilMember = append(c.inters.CouncilMember, interceptors...)
}

// Create returns a builder for creating a CouncilMember entity.
func (c *CouncilMemberClient) Create() *CouncilMemberCreate {
	mutation := newCouncilMemberMutation(c.config, OpCreate)
	return &CouncilMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CouncilMember entities.
func (c *CouncilMemberClient) CreateBulk(builders ...*CouncilMemberCreate) *CouncilMemberCreateBulk {
	return &CouncilMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CouncilMemberClient) MapCreateBulk(slice any, setFunc func(*CouncilMemberCreate, int)) *CouncilMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CouncilMemberCreateBulk{err: fmt.Errorf("calling to CouncilMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CouncilMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CouncilMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CouncilMember.
func (c *CouncilMemberClient) Update() *CouncilMemberUpdate {
	mutation := newCouncilMemberMutation(c.config, OpUpdate)
	return &CouncilMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CouncilMemberClient) UpdateOne(_m *CouncilMember) *CouncilMemberUpdateOne {
	mutation := newCouncilMemberMutation(c.config, OpUpdateOne, withCouncilMember(_m))
	return &CouncilMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CouncilMemberClient) UpdateOneID(id string) *CouncilMemberUpdateOne {
	mutation := newCouncilMemberMutation(c.config, OpUpdateOne, withCouncilMemberID(id))
	return &CouncilMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CouncilMember.
func (c *CouncilMemberClient) Delete() *CouncilMemberDelete {
	mutation := newCouncilMemberMutation(c.config, OpDelete)
	return &CouncilMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CouncilMemberClient) DeleteOne(_m *CouncilMember) *CouncilMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CouncilMemberClient) DeleteOneID(id string) *CouncilMemberDeleteOne {
	builder := c.Delete().Where(councilmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CouncilMemberDeleteOne{builder}
}

// Query returns a query builder for CouncilMember.
func (c *CouncilMemberClient) Query() *CouncilMemberQuery {
	return &CouncilMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCouncilMember},
		inters: c.Interceptors(),
	}
}

// Get returns a CouncilMember entity by its id.
func (c *CouncilMemberClient) Get(ctx context.Context, id string) (*CouncilMember, error) {
	return c.Query().Where(councilmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CouncilMemberClient) GetX(ctx context.Context, id string) *CouncilMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCity queries the city edge of a CouncilMember.
func (c *CouncilMemberClient) QueryCity(_m *CouncilMember) *CityQuery {
	query := (&CityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(councilmember.Table, councilmember.FieldID, id),
			sqlgraph.To(city.Table, city.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, councilmember.CityTable, councilmember.CityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVotes queries the votes edge of a CouncilMember.
func (c *CouncilMemberClient) QueryVotes(_m *CouncilMember) *VoteQuery {
	query := (&VoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(councilmember.Table, councilmember.FieldID, id),
			sqlgraph.To(vote.Table, vote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, councilmember.VotesTable, councilmember.VotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemberships queries the memberships edge of a CouncilMember.
func (c *CouncilMemberClient) QueryMemberships(_m *CouncilMember) *CommitteeMembershipQuery {
	query := (&CommitteeMembershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(councilmember.Table, councilmember.FieldID, id),
			sqlgraph.To(committeemembership.Table, committeemembership.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, councilmember.MembershipsTable, councilmember.MembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CouncilMemberClient) Hooks() []Hook {
	return c.hooks.CouncilMember
}

// Interceptors returns the client interceptors.
func (c *CouncilMemberClient) Interceptors() []Interceptor {
	return c.inters.CouncilMember
}

func (c *CouncilMemberClient) mutate(ctx context.Context, m *CouncilMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CouncilMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CouncilMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CouncilMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CouncilMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CouncilMember mutation op: %q", m.Op())
	}
}

// MatterClient is a client for the Matter schema.
type MatterClient struct {
	config
}

// NewMatterClient returns a client for the Matter from the given config.
func NewMatterClient(c config) *MatterClient {
	return &MatterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matter.Hooks(f(g(h())))`.
func (c *MatterClient) Use(hooks ...Hook) {
	c.hooks.Matter = append(c.hooks.Matter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matter.Intercept(f(g(h())))`.
func (c *MatterClient) Intercept(interceptors ...Interceptor) {
	c.inters.Matter = append(c.inters.Matter, interceptors...)
}

// Create returns a builder for creating a Matter entity.
func (c *MatterClient) Create() *MatterCreate {
	mutation := newMatterMutation(c.config, OpCreate)
	return &MatterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Matter entities.
func (c *MatterClient) CreateBulk(builders ...*MatterCreate) *MatterCreateBulk {
	return &MatterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatterClient) MapCreateBulk(slice any, setFunc func(*MatterCreate, int)) *MatterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatterCreateBulk{err: fmt.Errorf("calling to MatterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Matter.
func (c *MatterClient) Update() *MatterUpdate {
	mutation := newMatterMutation(c.config, OpUpdate)
	return &MatterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatterClient) UpdateOne(_m *Matter) *MatterUpdateOne {
	mutation := newMatterMutation(c.config, OpUpdateOne, withMatter(_m))
	return &MatterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatterClient) UpdateOneID(id string) *MatterUpdateOne {
	mutation := newMatterMutation(c.config, OpUpdateOne, withMatterID(id))
	return &MatterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Matter.
func (c *MatterClient) Delete() *MatterDelete {
	mutation := newMatterMutation(c.config, OpDelete)
	return &MatterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatterClient) DeleteOne(_m *Matter) *MatterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatterClient) DeleteOneID(id string) *MatterDeleteOne {
	builder := c.Delete().Where(matter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatterDeleteOne{builder}
}

// Query returns a query builder for Matter.
func (c *MatterClient) Query() *MatterQuery {
	return &MatterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatter},
		inters: c.Interceptors(),
	}
}

// Get returns a Matter entity by its id.
func (c *MatterClient) Get(ctx context.Context, id string) (*Matter, error) {
	return c.Query().Where(matter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatterClient) GetX(ctx context.Context, id string) *Matter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCity queries the city edge of a Matter.
func (c *MatterClient) QueryCity(_m *Matter) *CityQuery {
	query := (&CityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matter.Table, matter.FieldID, id),
			sqlgraph.To(city.Table, city.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matter.CityTable, matter.CityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppearances queries the appearances edge of a Matter.
func (c *MatterClient) QueryAppearances(_m *Matter) *MatterAppearanceQuery {
	query := (&MatterAppearanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matter.Table, matter.FieldID, id),
			sqlgraph.To(matterappearance.Table, matterappearance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matter.AppearancesTable, matter.AppearancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVotes queries the votes edge of a Matter.
func (c *MatterClient) QueryVotes(_m *Matter) *VoteQuery {
	query := (&VoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matter.Table, matter.FieldID, id),
			sqlgraph.To(vote.Table, vote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, matter.VotesTable, matter.VotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatterClient) Hooks() []Hook {
	return c.hooks.Matter
}

// Interceptors returns the client interceptors.
func (c *MatterClient) Interceptors() []Interceptor {
	return c.inters.Matter
}

func (c *MatterClient) mutate(ctx context.Context, m *MatterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Matter mutation op: %q", m.Op())
	}
}

// MatterAppearanceClient is a client for the MatterAppearance schema.
type MatterAppearanceClient struct {
	config
}

// NewMatterAppearanceClient returns a client for the MatterAppearance from the given config.
func NewMatterAppearanceClient(c config) *MatterAppearanceClient {
	return &MatterAppearanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matterappearance.Hooks(f(g(h())))`.
func (c *MatterAppearanceClient) Use(hooks ...Hook) {
	c.hooks.MatterAppearance = append(c.hooks.MatterAppearance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matterappearance.Intercept(f(g(h())))`.
func (c *MatterAppearanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.MatterAppearance = append(c.inters.MatterAppearance, interceptors...)
}

// Create returns a builder for creating a MatterAppearance entity.
func (c *MatterAppearanceClient) Create() *MatterAppearanceCreate {
	mutation := newMatterAppearanceMutation(c.config, OpCreate)
	return &MatterAppearanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MatterAppearance entities.
func (c *MatterAppearanceClient) CreateBulk(builders ...*MatterAppearanceCreate) *MatterAppearanceCreateBulk {
	return &MatterAppearanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatterAppearanceClient) MapCreateBulk(slice any, setFunc func(*MatterAppearanceCreate, int)) *MatterAppearanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatterAppearanceCreateBulk{err: fmt.Errorf("calling to MatterAppearanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatterAppearanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatterAppearanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MatterAppearance.
func (c *MatterAppearanceClient) Update() *MatterAppearanceUpdate {
	mutation := newMatterAppearanceMutation(c.config, OpUpdate)
	return &MatterAppearanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatterAppearanceClient) UpdateOne(_m *MatterAppearance) *MatterAppearanceUpdateOne {
	mutation := newMatterAppearanceMutation(c.config, OpUpdateOne, withMatterAppearance(_m))
	return &MatterAppearanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatterAppearanceClient) UpdateOneID(id string) *MatterAppearanceUpdateOne {
	mutation := newMatterAppearanceMutation(c.config, OpUpdateOne, withMatterAppearanceID(id))
	return &MatterAppearanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MatterAppearance.
func (c *MatterAppearanceClient) Delete() *MatterAppearanceDelete {
	mutation := newMatterAppearanceMutation(c.config, OpDelete)
	return &MatterAppearanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatterAppearanceClient) DeleteOne(_m *MatterAppearance) *MatterAppearanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatterAppearanceClient) DeleteOneID(id string) *MatterAppearanceDeleteOne {
	builder := c.Delete().Where(matterappearance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatterAppearanceDeleteOne{builder}
}

// Query returns a query builder for MatterAppearance.
func (c *MatterAppearanceClient) Query() *MatterAppearanceQuery {
	return &MatterAppearanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatterAppearance},
		inters: c.Interceptors(),
	}
}

// Get returns a MatterAppearance entity by its id.
func (c *MatterAppearanceClient) Get(ctx context.Context, id string) (*MatterAppearance, error) {
	return c.Query().Where(matterappearance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatterAppearanceClient) GetX(ctx context.Context, id string) *MatterAppearance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMatter queries the matter edge of a MatterAppearance.
func (c *MatterAppearanceClient) QueryMatter(_m *MatterAppearance) *MatterQuery {
	query := (&MatterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matterappearance.Table, matterappearance.FieldID, id),
			sqlgraph.To(matter.Table, matter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matterappearance.MatterTable, matterappearance.MatterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMeeting queries the meeting edge of a MatterAppearance.
func (c *MatterAppearanceClient) QueryMeeting(_m *MatterAppearance) *MeetingQuery {
	query := (&MeetingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matterappearance.Table, matterappearance.FieldID, id),
			sqlgraph.To(meeting.Table, meeting.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matterappearance.MeetingTable, matterappearance.MeetingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItem queries the item edge of a MatterAppearance.
func (c *MatterAppearanceClient) QueryItem(_m *MatterAppearance) *AgendaItemQuery {
	query := (&AgendaItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(matterappearance.Table, matterappearance.FieldID, id),
			sqlgraph.To(agendaitem.Table, agendaitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matterappearance.ItemTable, matterappearance.ItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatterAppearanceClient) Hooks() []Hook {
	return c.hooks.MatterAppearance
}

// Interceptors returns the client interceptors.
func (c *MatterAppearanceClient) Interceptors() []Interceptor {
	return c.inters.MatterAppearance
}

func (c *MatterAppearanceClient) mutate(ctx context.Context, m *MatterAppearanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatterAppearanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatterAppearanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatterAppearanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatterAppearanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MatterAppearance mutation op: %q", m.Op())
	}
}

// MeetingClient is a client for the Meeting schema.
type MeetingClient struct {
	config
}

// NewMeetingClient returns a client for the Meeting from the given config.
func NewMeetingClient(c config) *MeetingClient {
	return &MeetingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meeting.Hooks(f(g(h())))`.
func (c *MeetingClient) Use(hooks ...Hook) {
	c.hooks.Meeting = append(c.hooks.Meeting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meeting.Intercept(f(g(h())))`.
func (c *MeetingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Meeting = append(c.inters.Meeting, interceptors...)
}

// Create returns a builder for creating a Meeting entity.
func (c *MeetingClient) Create() *MeetingCreate {
	mutation := newMeetingMutation(c.config, OpCreate)
	return &MeetingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Meeting entities.
func (c *MeetingClient) CreateBulk(builders ...*MeetingCreate) *MeetingCreateBulk {
	return &MeetingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeetingClient) MapCreateBulk(slice any, setFunc func(*MeetingCreate, int)) *MeetingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeetingCreateBulk{err: fmt.Errorf("calling to MeetingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeetingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeetingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Meeting.
func (c *MeetingClient) Update() *MeetingUpdate {
	mutation := newMeetingMutation(c.config, OpUpdate)
	return &MeetingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeetingClient) UpdateOne(_m *Meeting) *MeetingUpdateOne {
	mutation := newMeetingMutation(c.config, OpUpdateOne, withMeeting(_m))
	return &MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeetingClient) UpdateOneID(id string) *MeetingUpdateOne {
	mutation := newMeetingMutation(c.config, OpUpdateOne, withMeetingID(id))
	return &MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Meeting.
func (c *MeetingClient) Delete() *MeetingDelete {
	mutation := newMeetingMutation(c.config, OpDelete)
	return &MeetingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeetingClient) DeleteOne(_m *Meeting) *MeetingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeetingClient) DeleteOneID(id string) *MeetingDeleteOne {
	builder := c.Delete().Where(meeting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeetingDeleteOne{builder}
}

// Query returns a query builder for Meeting.
func (c *MeetingClient) Query() *MeetingQuery {
	return &MeetingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeeting},
		inters: c.Interceptors(),
	}
}

// Get returns a Meeting entity by its id.
func (c *MeetingClient) Get(ctx context.Context, id string) (*Meeting, error) {
	return c.Query().Where(meeting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeetingClient) GetX(ctx context.Context, id string) *Meeting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCity queries the city edge of a Meeting.
func (c *MeetingClient) QueryCity(_m *Meeting) *CityQuery {
	query := (&CityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(meeting.Table, meeting.FieldID, id),
			sqlgraph.To(city.Table, city.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, meeting.CityTable, meeting.CityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommittee queries the committee edge of a Meeting.
func (c *MeetingClient) QueryCommittee(_m *Meeting) *CommitteeQuery {
	query := (&CommitteeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(meeting.Table, meeting.FieldID, id),
			sqlgraph.To(committee.Table, committee.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, meeting.CommitteeTable, meeting.CommitteeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a Meeting.
func (c *MeetingClient) QueryItems(_m *Meeting) *AgendaItemQuery {
	query := (&AgendaItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(meeting.Table, meeting.FieldID, id),
			sqlgraph.To(agendaitem.Table, agendaitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, meeting.ItemsTable, meeting.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAppearances queries the appearances edge of a Meeting.
func (c *MeetingClient) QueryAppearances(_m *Meeting) *MatterAppearanceQuery {
	query := (&MatterAppearanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(meeting.Table, meeting.FieldID, id),
			sqlgraph.To(matterappearance.Table, matterappearance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, meeting.AppearancesTable, meeting.AppearancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MeetingClient) Hooks() []Hook {
	return c.hooks.Meeting
}

// Interceptors returns the client interceptors.
func (c *MeetingClient) Interceptors() []Interceptor {
	return c.inters.Meeting
}

func (c *MeetingClient) mutate(ctx context.Context, m *MeetingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeetingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeetingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeetingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Meeting mutation op: %q", m.Op())
	}
}

// ProcessingCacheClient is a client for the ProcessingCache schema.
type ProcessingCacheClient struct {
	config
}

// NewProcessingCacheClient returns a client for the ProcessingCache from the given config.
func NewProcessingCacheClient(c config) *ProcessingCacheClient {
	return &ProcessingCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingcache.Hooks(f(g(h())))`.
func (c *ProcessingCacheClient) Use(hooks ...Hook) {
	c.hooks.ProcessingCache = append(c.hooks.ProcessingCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingcache.Intercept(f(g(h())))`.
func (c *ProcessingCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingCache = append(c.inters.ProcessingCache, interceptors...)
}

// Create returns a builder for creating a ProcessingCache entity.
func (c *ProcessingCacheClient) Create() *ProcessingCacheCreate {
	mutation := newProcessingCacheMutation(c.config, OpCreate)
	return &ProcessingCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingCache entities.
func (c *ProcessingCacheClient) CreateBulk(builders ...*ProcessingCacheCreate) *ProcessingCacheCreateBulk {
	return &ProcessingCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingCacheClient) MapCreateBulk(slice any, setFunc func(*ProcessingCacheCreate, int)) *ProcessingCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingCacheCreateBulk{err: fmt.Errorf("calling to ProcessingCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingCache.
func (c *ProcessingCacheClient) Update() *ProcessingCacheUpdate {
	mutation := newProcessingCacheMutation(c.config, OpUpdate)
	return &ProcessingCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingCacheClient) UpdateOne(_m *ProcessingCache) *ProcessingCacheUpdateOne {
	mutation := newProcessingCacheMutation(c.config, OpUpdateOne, withProcessingCache(_m))
	return &ProcessingCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingCacheClient) UpdateOneID(id int64) *ProcessingCacheUpdateOne {
	mutation := newProcessingCacheMutation(c.config, OpUpdateOne, withProcessingCacheID(id))
	return &ProcessingCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingCache.
func (c *ProcessingCacheClient) Delete() *ProcessingCacheDelete {
	mutation := newProcessingCacheMutation(c.config, OpDelete)
	return &ProcessingCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingCacheClient) DeleteOne(_m *ProcessingCache) *ProcessingCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingCacheClient) DeleteOneID(id int64) *ProcessingCacheDeleteOne {
	builder := c.Delete().Where(processingcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingCacheDeleteOne{builder}
}

// Query returns a query builder for ProcessingCache.
func (c *ProcessingCacheClient) Query() *ProcessingCacheQuery {
	return &ProcessingCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingCache},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingCache entity by its id.
func (c *ProcessingCacheClient) Get(ctx context.Context, id int64) (*ProcessingCache, error) {
	return c.Query().Where(processingcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingCacheClient) GetX(ctx context.Context, id int64) *ProcessingCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessingCacheClient) Hooks() []Hook {
	return c.hooks.ProcessingCache
}

// Interceptors returns the client interceptors.
func (c *ProcessingCacheClient) Interceptors() []Interceptor {
	return c.inters.ProcessingCache
}

func (c *ProcessingCacheClient) mutate(ctx context.Context, m *ProcessingCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingCache mutation op: %q", m.Op())
	}
}

// QueueJobClient is a client for the QueueJob schema.
type QueueJobClient struct {
	config
}

// NewQueueJobClient returns a client for the QueueJob from the given config.
func NewQueueJobClient(c config) *QueueJobClient {
	return &QueueJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuejob.Hooks(f(g(h())))`.
func (c *QueueJobClient) Use(hooks ...Hook) {
	c.hooks.QueueJob = append(c.hooks.QueueJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuejob.Intercept(f(g(h())))`.
func (c *QueueJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueJob = append(c.inters.QueueJob, interceptors...)
}

// Create returns a builder for creating a QueueJob entity.
func (c *QueueJobClient) Create() *QueueJobCreate {
	mutation := newQueueJobMutation(c.config, OpCreate)
	return &QueueJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueJob entities.
func (c *QueueJobClient) CreateBulk(builders ...*QueueJobCreate) *QueueJobCreateBulk {
	return &QueueJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueJobClient) MapCreateBulk(slice any, setFunc func(*QueueJobCreate, int)) *QueueJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueJobCreateBulk{err: fmt.Errorf("calling to QueueJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueJob.
func (c *QueueJobClient) Update() *QueueJobUpdate {
	mutation := newQueueJobMutation(c.config, OpUpdate)
	return &QueueJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueJobClient) UpdateOne(_m *QueueJob) *QueueJobUpdateOne {
	mutation := newQueueJobMutation(c.config, OpUpdateOne, withQueueJob(_m))
	return &QueueJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueJobClient) UpdateOneID(id int64) *QueueJobUpdateOne {
	mutation := newQueueJobMutation(c.config, OpUpdateOne, withQueueJobID(id))
	return &QueueJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueJob.
func (c *QueueJobClient) Delete() *QueueJobDelete {
	mutation := newQueueJobMutation(c.config, OpDelete)
	return &QueueJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueJobClient) DeleteOne(_m *QueueJob) *QueueJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueJobClient) DeleteOneID(id int64) *QueueJobDeleteOne {
	builder := c.Delete().Where(queuejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueJobDeleteOne{builder}
}

// Query returns a query builder for QueueJob.
func (c *QueueJobClient) Query() *QueueJobQuery {
	return &QueueJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueJob},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueJob entity by its id.
func (c *QueueJobClient) Get(ctx context.Context, id int64) (*QueueJob, error) {
	return c.Query().Where(queuejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueJobClient) GetX(ctx context.Context, id int64) *QueueJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueJobClient) Hooks() []Hook {
	return c.hooks.QueueJob
}

// Interceptors returns the client interceptors.
func (c *QueueJobClient) Interceptors() []Interceptor {
	return c.inters.QueueJob
}

func (c *QueueJobClient) mutate(ctx context.Context, m *QueueJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueJob mutation op: %q", m.Op())
	}
}

// VoteClient is a client for the Vote schema.
type VoteClient struct {
	config
}

// NewVoteClient returns a client for the Vote from the given config.
func NewVoteClient(c config) *VoteClient {
	return &VoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vote.Hooks(f(g(h())))`.
func (c *VoteClient) Use(hooks ...Hook) {
	c.hooks.Vote = append(c.hooks.Vote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vote.Intercept(f(g(h())))`.
func (c *VoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vote = append(c.inters.Vote, interceptors...)
}

// Create returns a builder for creating a Vote entity.
func (c *VoteClient) Create() *VoteCreate {
	mutation := newVoteMutation(c.config, OpCreate)
	return &VoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vote entities.
func (c *VoteClient) CreateBulk(builders ...*VoteCreate) *VoteCreateBulk {
	return &VoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoteClient) MapCreateBulk(slice any, setFunc func(*VoteCreate, int)) *VoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoteCreateBulk{err: fmt.Errorf("calling to VoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vote.
func (c *VoteClient) Update() *VoteUpdate {
	mutation := newVoteMutation(c.config, OpUpdate)
	return &VoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoteClient) UpdateOne(_m *Vote) *VoteUpdateOne {
	mutation := newVoteMutation(c.config, OpUpdateOne, withVote(_m))
	return &VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoteClient) UpdateOneID(id string) *VoteUpdateOne {
	mutation := newVoteMutation(c.config, OpUpdateOne, withVoteID(id))
	return &VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vote.
func (c *VoteClient) Delete() *VoteDelete {
	mutation := newVoteMutation(c.config, OpDelete)
	return &VoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoteClient) DeleteOne(_m *Vote) *VoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoteClient) DeleteOneID(id string) *VoteDeleteOne {
	builder := c.Delete().Where(vote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoteDeleteOne{builder}
}

// Query returns a query builder for Vote.
func (c *VoteClient) Query() *VoteQuery {
	return &VoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVote},
		inters: c.Interceptors(),
	}
}

// Get returns a Vote entity by its id.
func (c *VoteClient) Get(ctx context.Context, id string) (*Vote, error) {
	return c.Query().Where(vote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoteClient) GetX(ctx context.Context, id string) *Vote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMember queries the member edge of a Vote.
func (c *VoteClient) QueryMember(_m *Vote) *CouncilMemberQuery {
	query := (&CouncilMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vote.Table, vote.FieldID, id),
			sqlgraph.To(councilmember.Table, councilmember.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, vote.MemberTable, vote.MemberColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatter queries the matter edge of a Vote.
func (c *VoteClient) QueryMatter(_m *Vote) *MatterQuery {
	query := (&MatterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vote.Table, vote.FieldID, id),
			sqlgraph.To(matter.Table, matter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, vote.MatterTable, vote.MatterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VoteClient) Hooks() []Hook {
	return c.hooks.Vote
}

// Interceptors returns the client interceptors.
func (c *VoteClient) Interceptors() []Interceptor {
	return c.inters.Vote
}

func (c *VoteClient) mutate(ctx context.Context, m *VoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vote mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgendaItem, City, Committee, CommitteeMembership, CouncilMember, Matter,
		MatterAppearance, Meeting, ProcessingCache, QueueJob, Vote []ent.Hook
	}
	inters struct {
		AgendaItem, City, Committee, CommitteeMembership, CouncilMember, Matter,
		MatterAppearance, Meeting, ProcessingCache, QueueJob, Vote []ent.Interceptor
	}
)
