// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// MatterAppearanceQuery is the builder for querying MatterAppearance entities.
type MatterAppearanceQuery struct {
	config
	ctx         *QueryContext
	order       []matterappearance.OrderOption
	inters      []Interceptor
	predicates  []predicate.MatterAppearance
	withMatter  *MatterQuery
	withMeeting *MeetingQuery
	withItem    *AgendaItemQuery
	modifiers   []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MatterAppearanceQuery builder.
func (_q *MatterAppearanceQuery) Where(ps ...predicate.MatterAppearance) *MatterAppearanceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MatterAppearanceQuery) Limit(limit int) *MatterAppearanceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MatterAppearanceQuery) Offset(offset int) *MatterAppearanceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MatterAppearanceQuery) Unique(unique bool) *MatterAppearanceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MatterAppearanceQuery) Order(o ...matterappearance.OrderOption) *MatterAppearanceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMatter chains the current query on the "matter" edge.
func (_q *MatterAppearanceQuery) QueryMatter() *MatterQuery {
	query := (&MatterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matterappearance.Table, matterappearance.FieldID, selector),
			sqlgraph.To(matter.Table, matter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matterappearance.MatterTable, matterappearance.MatterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMeeting chains the current query on the "meeting" edge.
func (_q *MatterAppearanceQuery) QueryMeeting() *MeetingQuery {
	query := (&MeetingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matterappearance.Table, matterappearance.FieldID, selector),
			sqlgraph.To(meeting.Table, meeting.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matterappearance.MeetingTable, matterappearance.MeetingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryItem chains the current query on the "item" edge.
func (_q *MatterAppearanceQuery) QueryItem() *AgendaItemQuery {
	query := (&AgendaItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(matterappearance.Table, matterappearance.FieldID, selector),
			sqlgraph.To(agendaitem.Table, agendaitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, matterappearance.ItemTable, matterappearance.ItemColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MatterAppearance entity from the query.
// Returns a *NotFoundError when no MatterAppearance was found.
func (_q *MatterAppearanceQuery) First(ctx context.Context) (*MatterAppearance, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{matterappearance.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MatterAppearanceQuery) FirstX(ctx context.Context) *MatterAppearance {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MatterAppearance ID from the query.
// Returns a *NotFoundError when no MatterAppearance ID was found.
func (_q *MatterAppearanceQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{matterappearance.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MatterAppearanceQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MatterAppearance entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MatterAppearance entity is found.
// Returns a *NotFoundError when no MatterAppearance entities are found.
func (_q *MatterAppearanceQuery) Only(ctx context.Context) (*MatterAppearance, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{matterappearance.Label}
	default:
		return nil, &NotSingularError{matterappearance.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MatterAppearanceQuery) OnlyX(ctx context.Context) *MatterAppearance {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MatterAppearance ID in the query.
// Returns a *NotSingularError when more than one MatterAppearance ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MatterAppearanceQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{matterappearance.Label}
	default:
		err = &NotSingularError{matterappearance.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MatterAppearanceQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MatterAppearances.
func (_q *MatterAppearanceQuery) All(ctx context.Context) ([]*MatterAppearance, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MatterAppearance, *MatterAppearanceQuery]()
	return withInterceptors[[]*MatterAppearance](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MatterAppearanceQuery) AllX(ctx context.Context) []*MatterAppearance {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MatterAppearance IDs.
func (_q *MatterAppearanceQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(matterappearance.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MatterAppearanceQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MatterAppearanceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MatterAppearanceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MatterAppearanceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MatterAppearanceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MatterAppearanceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MatterAppearanceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MatterAppearanceQuery) Clone() *MatterAppearanceQuery {
	if _q == nil {
		return nil
	}
	return &MatterAppearanceQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]matterappearance.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.MatterAppearance{}, _q.predicates...),
		withMatter:  _q.withMatter.Clone(),
		withMeeting: _q.withMeeting.Clone(),
		withItem:    _q.withItem.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMatter tells the query-builder to eager-load the nodes that are connected to
// the "matter" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatterAppearanceQuery) WithMatter(opts ...func(*MatterQuery)) *MatterAppearanceQuery {
	query := (&MatterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMatter = query
	return _q
}

// WithMeeting tells the query-builder to eager-load the nodes that are connected to
// the "meeting" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatterAppearanceQuery) WithMeeting(opts ...func(*MeetingQuery)) *MatterAppearanceQuery {
	query := (&MeetingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMeeting = query
	return _q
}

// WithItem tells the query-builder to eager-load the nodes that are connected to
// the "item" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MatterAppearanceQuery) WithItem(opts ...func(*AgendaItemQuery)) *MatterAppearanceQuery {
	query := (&AgendaItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withItem = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		MatterID string `json:"matter_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MatterAppearance.Query().
//		GroupBy(matterappearance.FieldMatterID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MatterAppearanceQuery) GroupBy(field string, fields ...string) *MatterAppearanceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MatterAppearanceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = matterappearance.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		MatterID string `json:"matter_id,omitempty"`
//	}
//
//	client.MatterAppearance.Query().
//		Select(matterappearance.FieldMatterID).
//		Scan(ctx, &v)
func (_q *MatterAppearanceQuery) Select(fields ...string) *MatterAppearanceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MatterAppearanceSelect{MatterAppearanceQuery: _q}
	sbuild.label = matterappearance.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MatterAppearanceSelect configured with the given aggregations.
func (_q *MatterAppearanceQuery) Aggregate(fns ...AggregateFunc) *MatterAppearanceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MatterAppearanceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !matterappearance.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MatterAppearanceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MatterAppearance, error) {
	var (
		nodes       = []*MatterAppearance{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withMatter != nil,
			_q.withMeeting != nil,
			_q.withItem != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MatterAppearance).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MatterAppearance{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withMatter; query != nil {
		if err := _q.loadMatter(ctx, query, nodes, nil,
			func(n *MatterAppearance, e *Matter) { n.Edges.Matter = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMeeting; query != nil {
		if err := _q.loadMeeting(ctx, query, nodes, nil,
			func(n *MatterAppearance, e *Meeting) { n.Edges.Meeting = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withItem; query != nil {
		if err := _q.loadItem(ctx, query, nodes, nil,
			func(n *MatterAppearance, e *AgendaItem) { n.Edges.Item = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MatterAppearanceQuery) loadMatter(ctx context.Context, query *MatterQuery, nodes []*MatterAppearance, init func(*MatterAppearance), assign func(*MatterAppearance, *Matter)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*MatterAppearance)
	for i := range nodes {
		fk := nodes[i].MatterID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(matter.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "matter_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MatterAppearanceQuery) loadMeeting(ctx context.Context, query *MeetingQuery, nodes []*MatterAppearance, init func(*MatterAppearance), assign func(*MatterAppearance, *Meeting)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*MatterAppearance)
	for i := range nodes {
		fk := nodes[i].MeetingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(meeting.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "meeting_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MatterAppearanceQuery) loadItem(ctx context.Context, query *AgendaItemQuery, nodes []*MatterAppearance, init func(*MatterAppearance), assign func(*MatterAppearance, *AgendaItem)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*MatterAppearance)
	for i := range nodes {
		fk := nodes[i].ItemID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agendaitem.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "item_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *MatterAppearanceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MatterAppearanceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(matterappearance.Table, matterappearance.Columns, sqlgraph.NewFieldSpec(matterappearance.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matterappearance.FieldID)
		for i := range fields {
			if fields[i] != matterappearance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMatter != nil {
			_spec.Node.AddColumnOnce(matterappearance.FieldMatterID)
		}
		if _q.withMeeting != nil {
			_spec.Node.AddColumnOnce(matterappearance.FieldMeetingID)
		}
		if _q.withItem != nil {
			_spec.Node.AddColumnOnce(matterappearance.FieldItemID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MatterAppearanceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(matterappearance.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = matterappearance.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *MatterAppearanceQuery) ForUpdate(opts ...sql.LockOption) *MatterAppearanceQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *MatterAppearanceQuery) ForShare(opts ...sql.LockOption) *MatterAppearanceQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// MatterAppearanceGroupBy is the group-by builder for MatterAppearance entities.
type MatterAppearanceGroupBy struct {
	selector
	build *MatterAppearanceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MatterAppearanceGroupBy) Aggregate(fns ...AggregateFunc) *MatterAppearanceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MatterAppearanceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MatterAppearanceQuery, *MatterAppearanceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MatterAppearanceGroupBy) sqlScan(ctx context.Context, root *MatterAppearanceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MatterAppearanceSelect is the builder for selecting fields of MatterAppearance entities.
type MatterAppearanceSelect struct {
	*MatterAppearanceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MatterAppearanceSelect) Aggregate(fns ...AggregateFunc) *MatterAppearanceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MatterAppearanceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MatterAppearanceQuery, *MatterAppearanceSelect](ctx, _s.MatterAppearanceQuery, _s, _s.inters, v)
}

func (_s *MatterAppearanceSelect) sqlScan(ctx context.Context, root *MatterAppearanceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
