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
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// CommitteeMembershipQuery is the builder for querying CommitteeMembership entities.
type CommitteeMembershipQuery struct {
	config
	ctx           *QueryContext
	order         []committeemembership.OrderOption
	inters        []Interceptor
	predicates    []predicate.CommitteeMembership
	withCommittee *CommitteeQuery
	withMember    *CouncilMemberQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CommitteeMembershipQuery builder.
func (_q *CommitteeMembershipQuery) Where(ps ...predicate.CommitteeMembership) *CommitteeMembershipQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CommitteeMembershipQuery) Limit(limit int) *CommitteeMembershipQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CommitteeMembershipQuery) Offset(offset int) *CommitteeMembershipQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CommitteeMembershipQuery) Unique(unique bool) *CommitteeMembershipQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CommitteeMembershipQuery) Order(o ...committeemembership.OrderOption) *CommitteeMembershipQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCommittee chains the current query on the "committee" edge.
func (_q *CommitteeMembershipQuery) QueryCommittee() *CommitteeQuery {
	query := (&CommitteeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(committeemembership.Table, committeemembership.FieldID, selector),
			sqlgraph.To(committee.Table, committee.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, committeemembership.CommitteeTable, committeemembership.CommitteeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMember chains the current query on the "member" edge.
func (_q *CommitteeMembershipQuery) QueryMember() *CouncilMemberQuery {
	query := (&CouncilMemberClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(committeemembership.Table, committeemembership.FieldID, selector),
			sqlgraph.To(councilmember.Table, councilmember.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, committeemembership.MemberTable, committeemembership.MemberColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CommitteeMembership entity from the query.
// Returns a *NotFoundError when no CommitteeMembership was found.
func (_q *CommitteeMembershipQuery) First(ctx context.Context) (*CommitteeMembership, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{committeemembership.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CommitteeMembershipQuery) FirstX(ctx context.Context) *CommitteeMembership {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CommitteeMembership ID from the query.
// Returns a *NotFoundError when no CommitteeMembership ID was found.
func (_q *CommitteeMembershipQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{committeemembership.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CommitteeMembershipQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CommitteeMembership entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CommitteeMembership entity is found.
// Returns a *NotFoundError when no CommitteeMembership entities are found.
func (_q *CommitteeMembershipQuery) Only(ctx context.Context) (*CommitteeMembership, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{committeemembership.Label}
	default:
		return nil, &NotSingularError{committeemembership.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CommitteeMembershipQuery) OnlyX(ctx context.Context) *CommitteeMembership {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CommitteeMembership ID in the query.
// Returns a *NotSingularError when more than one CommitteeMembership ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CommitteeMembershipQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{committeemembership.Label}
	default:
		err = &NotSingularError{committeemembership.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CommitteeMembershipQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CommitteeMemberships.
func (_q *CommitteeMembershipQuery) All(ctx context.Context) ([]*CommitteeMembership, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CommitteeMembership, *CommitteeMembershipQuery]()
	return withInterceptors[[]*CommitteeMembership](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CommitteeMembershipQuery) AllX(ctx context.Context) []*CommitteeMembership {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CommitteeMembership IDs.
func (_q *CommitteeMembershipQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(committeemembership.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CommitteeMembershipQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CommitteeMembershipQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CommitteeMembershipQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CommitteeMembershipQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CommitteeMembershipQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CommitteeMembershipQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CommitteeMembershipQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CommitteeMembershipQuery) Clone() *CommitteeMembershipQuery {
	if _q == nil {
		return nil
	}
	return &CommitteeMembershipQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]committeemembership.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.CommitteeMembership{}, _q.predicates...),
		withCommittee: _q.withCommittee.Clone(),
		withMember:    _q.withMember.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCommittee tells the query-builder to eager-load the nodes that are connected to
// the "committee" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommitteeMembershipQuery) WithCommittee(opts ...func(*CommitteeQuery)) *CommitteeMembershipQuery {
	query := (&CommitteeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCommittee = query
	return _q
}

// WithMember tells the query-builder to eager-load the nodes that are connected to
// the "member" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommitteeMembershipQuery) WithMember(opts ...func(*CouncilMemberQuery)) *CommitteeMembershipQuery {
	query := (&CouncilMemberClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMember = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CommitteeID string `json:"committee_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CommitteeMembership.Query().
//		GroupBy(committeemembership.FieldCommitteeID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CommitteeMembershipQuery) GroupBy(field string, fields ...string) *CommitteeMembershipGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CommitteeMembershipGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = committeemembership.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CommitteeID string `json:"committee_id,omitempty"`
//	}
//
//	client.CommitteeMembership.Query().
//		Select(committeemembership.FieldCommitteeID).
//		Scan(ctx, &v)
func (_q *CommitteeMembershipQuery) Select(fields ...string) *CommitteeMembershipSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CommitteeMembershipSelect{CommitteeMembershipQuery: _q}
	sbuild.label = committeemembership.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CommitteeMembershipSelect configured with the given aggregations.
func (_q *CommitteeMembershipQuery) Aggregate(fns ...AggregateFunc) *CommitteeMembershipSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CommitteeMembershipQuery) prepareQuery(ctx context.Context) error {
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
		if !committeemembership.ValidColumn(f) {
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

func (_q *CommitteeMembershipQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CommitteeMembership, error) {
	var (
		nodes       = []*CommitteeMembership{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCommittee != nil,
			_q.withMember != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CommitteeMembership).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CommitteeMembership{config: _q.config}
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
	if query := _q.withCommittee; query != nil {
		if err := _q.loadCommittee(ctx, query, nodes, nil,
			func(n *CommitteeMembership, e *Committee) { n.Edges.Committee = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMember; query != nil {
		if err := _q.loadMember(ctx, query, nodes, nil,
			func(n *CommitteeMembership, e *CouncilMember) { n.Edges.Member = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CommitteeMembershipQuery) loadCommittee(ctx context.Context, query *CommitteeQuery, nodes []*CommitteeMembership, init func(*CommitteeMembership), assign func(*CommitteeMembership, *Committee)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CommitteeMembership)
	for i := range nodes {
		fk := nodes[i].CommitteeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(committee.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "committee_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CommitteeMembershipQuery) loadMember(ctx context.Context, query *CouncilMemberQuery, nodes []*CommitteeMembership, init func(*CommitteeMembership), assign func(*CommitteeMembership, *CouncilMember)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CommitteeMembership)
	for i := range nodes {
		fk := nodes[i].MemberID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(councilmember.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "member_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CommitteeMembershipQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *CommitteeMembershipQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(committeemembership.Table, committeemembership.Columns, sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, committeemembership.FieldID)
		for i := range fields {
			if fields[i] != committeemembership.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCommittee != nil {
			_spec.Node.AddColumnOnce(committeemembership.FieldCommitteeID)
		}
		if _q.withMember != nil {
			_spec.Node.AddColumnOnce(committeemembership.FieldMemberID)
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

func (_q *CommitteeMembershipQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(committeemembership.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = committeemembership.Columns
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
func (_q *CommitteeMembershipQuery) ForUpdate(opts ...sql.LockOption) *CommitteeMembershipQuery {
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
func (_q *CommitteeMembershipQuery) ForShare(opts ...sql.LockOption) *CommitteeMembershipQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CommitteeMembershipGroupBy is the group-by builder for CommitteeMembership entities.
type CommitteeMembershipGroupBy struct {
	selector
	build *CommitteeMembershipQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CommitteeMembershipGroupBy) Aggregate(fns ...AggregateFunc) *CommitteeMembershipGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CommitteeMembershipGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CommitteeMembershipQuery, *CommitteeMembershipGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CommitteeMembershipGroupBy) sqlScan(ctx context.Context, root *CommitteeMembershipQuery, v any) error {
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

// CommitteeMembershipSelect is the builder for selecting fields of CommitteeMembership entities.
type CommitteeMembershipSelect struct {
	*CommitteeMembershipQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CommitteeMembershipSelect) Aggregate(fns ...AggregateFunc) *CommitteeMembershipSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CommitteeMembershipSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CommitteeMembershipQuery, *CommitteeMembershipSelect](ctx, _s.CommitteeMembershipQuery, _s, _s.inters, v)
}

func (_s *CommitteeMembershipSelect) sqlScan(ctx context.Context, root *CommitteeMembershipQuery, v any) error {
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
