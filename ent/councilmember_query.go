// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/predicate"
	"github.com/Engagic/engagic-sub004/ent/vote"
)

// CouncilMemberQuery is the builder for querying CouncilMember entities.
type CouncilMemberQuery struct {
	config
	ctx             *QueryContext
	order           []councilmember.OrderOption
	inters          []Interceptor
	predicates      []predicate.CouncilMember
	withCity        *CityQuery
	withVotes       *VoteQuery
	withMemberships *CommitteeMembershipQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CouncilMemberQuery builder.
func (_q *CouncilMemberQuery) Where(ps ...predicate.CouncilMember) *CouncilMemberQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CouncilMemberQuery) Limit(limit int) *CouncilMemberQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CouncilMemberQuery) Offset(offset int) *CouncilMemberQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CouncilMemberQuery) Unique(unique bool) *CouncilMemberQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CouncilMemberQuery) Order(o ...councilmember.OrderOption) *CouncilMemberQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCity chains the current query on the "city" edge.
func (_q *CouncilMemberQuery) QueryCity() *CityQuery {
	query := (&CityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(councilmember.Table, councilmember.FieldID, selector),
			sqlgraph.To(city.Table, city.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, councilmember.CityTable, councilmember.CityColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVotes chains the current query on the "votes" edge.
func (_q *CouncilMemberQuery) QueryVotes() *VoteQuery {
	query := (&VoteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(councilmember.Table, councilmember.FieldID, selector),
			sqlgraph.To(vote.Table, vote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, councilmember.VotesTable, councilmember.VotesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMemberships chains the current query on the "memberships" edge.
func (_q *CouncilMemberQuery) QueryMemberships() *CommitteeMembershipQuery {
	query := (&CommitteeMembershipClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(councilmember.Table, councilmember.FieldID, selector),
			sqlgraph.To(committeemembership.Table, committeemembership.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, councilmember.MembershipsTable, councilmember.MembershipsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CouncilMember entity from the query.
// Returns a *NotFoundError when no CouncilMember was found.
func (_q *CouncilMemberQuery) First(ctx context.Context) (*CouncilMember, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{councilmember.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CouncilMemberQuery) FirstX(ctx context.Context) *CouncilMember {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CouncilMember ID from the query.
// Returns a *NotFoundError when no CouncilMember ID was found.
func (_q *CouncilMemberQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{councilmember.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CouncilMemberQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CouncilMember entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CouncilMember entity is found.
// Returns a *NotFoundError when no CouncilMember entities are found.
func (_q *CouncilMemberQuery) Only(ctx context.Context) (*CouncilMember, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{councilmember.Label}
	default:
		return nil, &NotSingularError{councilmember.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CouncilMemberQuery) OnlyX(ctx context.Context) *CouncilMember {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CouncilMember ID in the query.
// Returns a *NotSingularError when more than one CouncilMember ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CouncilMemberQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{councilmember.Label}
	default:
		err = &NotSingularError{councilmember.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CouncilMemberQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CouncilMembers.
func (_q *CouncilMemberQuery) All(ctx context.Context) ([]*CouncilMember, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CouncilMember, *CouncilMemberQuery]()
	return withInterceptors[[]*CouncilMember](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CouncilMemberQuery) AllX(ctx context.Context) []*CouncilMember {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CouncilMember IDs.
func (_q *CouncilMemberQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(councilmember.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CouncilMemberQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CouncilMemberQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CouncilMemberQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CouncilMemberQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CouncilMemberQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CouncilMemberQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CouncilMemberQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CouncilMemberQuery) Clone() *CouncilMemberQuery {
	if _q == nil {
		return nil
	}
	return &CouncilMemberQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]councilmember.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.CouncilMember{}, _q.predicates...),
		withCity:        _q.withCity.Clone(),
		withVotes:       _q.withVotes.Clone(),
		withMemberships: _q.withMemberships.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCity tells the query-builder to eager-load the nodes that are connected to
// the "city" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CouncilMemberQuery) WithCity(opts ...func(*CityQuery)) *CouncilMemberQuery {
	query := (&CityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCity = query
	return _q
}

// WithVotes tells the query-builder to eager-load the nodes that are connected to
// the "votes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CouncilMemberQuery) WithVotes(opts ...func(*VoteQuery)) *CouncilMemberQuery {
	query := (&VoteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVotes = query
	return _q
}

// WithMemberships tells the query-builder to eager-load the nodes that are connected to
// the "memberships" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CouncilMemberQuery) WithMemberships(opts ...func(*CommitteeMembershipQuery)) *CouncilMemberQuery {
	query := (&CommitteeMembershipClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMemberships = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Banana string `json:"banana,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CouncilMember.Query().
//		GroupBy(councilmember.FieldBanana).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CouncilMemberQuery) GroupBy(field string, fields ...string) *CouncilMemberGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CouncilMemberGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = councilmember.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Banana string `json:"banana,omitempty"`
//	}
//
//	client.CouncilMember.Query().
//		Select(councilmember.FieldBanana).
//		Scan(ctx, &v)
func (_q *CouncilMemberQuery) Select(fields ...string) *CouncilMemberSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CouncilMemberSelect{CouncilMemberQuery: _q}
	sbuild.label = councilmember.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CouncilMemberSelect configured with the given aggregations.
func (_q *CouncilMemberQuery) Aggregate(fns ...AggregateFunc) *CouncilMemberSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CouncilMemberQuery) prepareQuery(ctx context.Context) error {
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
		if !councilmember.ValidColumn(f) {
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

func (_q *CouncilMemberQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CouncilMember, error) {
	var (
		nodes       = []*CouncilMember{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withCity != nil,
			_q.withVotes != nil,
			_q.withMemberships != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CouncilMember).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CouncilMember{config: _q.config}
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
	if query := _q.withCity; query != nil {
		if err := _q.loadCity(ctx, query, nodes, nil,
			func(n *CouncilMember, e *City) { n.Edges.City = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVotes; query != nil {
		if err := _q.loadVotes(ctx, query, nodes,
			func(n *CouncilMember) { n.Edges.Votes = []*Vote{} },
			func(n *CouncilMember, e *Vote) { n.Edges.Votes = append(n.Edges.Votes, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMemberships; query != nil {
		if err := _q.loadMemberships(ctx, query, nodes,
			func(n *CouncilMember) { n.Edges.Memberships = []*CommitteeMembership{} },
			func(n *CouncilMember, e *CommitteeMembership) { n.Edges.Memberships = append(n.Edges.Memberships, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CouncilMemberQuery) loadCity(ctx context.Context, query *CityQuery, nodes []*CouncilMember, init func(*CouncilMember), assign func(*CouncilMember, *City)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CouncilMember)
	for i := range nodes {
		fk := nodes[i].Banana
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(city.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "banana" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CouncilMemberQuery) loadVotes(ctx context.Context, query *VoteQuery, nodes []*CouncilMember, init func(*CouncilMember), assign func(*CouncilMember, *Vote)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CouncilMember)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(vote.FieldMemberID)
	}
	query.Where(predicate.Vote(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(councilmember.VotesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MemberID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "member_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CouncilMemberQuery) loadMemberships(ctx context.Context, query *CommitteeMembershipQuery, nodes []*CouncilMember, init func(*CouncilMember), assign func(*CouncilMember, *CommitteeMembership)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CouncilMember)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(committeemembership.FieldMemberID)
	}
	query.Where(predicate.CommitteeMembership(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(councilmember.MembershipsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MemberID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "member_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CouncilMemberQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *CouncilMemberQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(councilmember.Table, councilmember.Columns, sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, councilmember.FieldID)
		for i := range fields {
			if fields[i] != councilmember.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCity != nil {
			_spec.Node.AddColumnOnce(councilmember.FieldBanana)
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

func (_q *CouncilMemberQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(councilmember.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = councilmember.Columns
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
func (_q *CouncilMemberQuery) ForUpdate(opts ...sql.LockOption) *CouncilMemberQuery {
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
func (_q *CouncilMemberQuery) ForShare(opts ...sql.LockOption) *CouncilMemberQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CouncilMemberGroupBy is the group-by builder for CouncilMember entities.
type CouncilMemberGroupBy struct {
	selector
	build *CouncilMemberQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CouncilMemberGroupBy) Aggregate(fns ...AggregateFunc) *CouncilMemberGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CouncilMemberGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CouncilMemberQuery, *CouncilMemberGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CouncilMemberGroupBy) sqlScan(ctx context.Context, root *CouncilMemberQuery, v any) error {
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

// CouncilMemberSelect is the builder for selecting fields of CouncilMember entities.
type CouncilMemberSelect struct {
	*CouncilMemberQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CouncilMemberSelect) Aggregate(fns ...AggregateFunc) *CouncilMemberSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CouncilMemberSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CouncilMemberQuery, *CouncilMemberSelect](ctx, _s.CouncilMemberQuery, _s, _s.inters, v)
}

func (_s *CouncilMemberSelect) sqlScan(ctx context.Context, root *CouncilMemberQuery, v any) error {
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
