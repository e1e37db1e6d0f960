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
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// CityQuery is the builder for querying City entities.
type CityQuery struct {
	config
	ctx                *QueryContext
	order              []city.OrderOption
	inters             []Interceptor
	predicates         []predicate.City
	withMeetings       *MeetingQuery
	withMatters        *MatterQuery
	withCouncilMembers *CouncilMemberQuery
	withCommittees     *CommitteeQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CityQuery builder.
func (_q *CityQuery) Where(ps ...predicate.City) *CityQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CityQuery) Limit(limit int) *CityQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CityQuery) Offset(offset int) *CityQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CityQuery) Unique(unique bool) *CityQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CityQuery) Order(o ...city.OrderOption) *CityQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMeetings chains the current query on the "meetings" edge.
func (_q *CityQuery) QueryMeetings() *MeetingQuery {
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
			sqlgraph.From(city.Table, city.FieldID, selector),
			sqlgraph.To(meeting.Table, meeting.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, city.MeetingsTable, city.MeetingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMatters chains the current query on the "matters" edge.
func (_q *CityQuery) QueryMatters() *MatterQuery {
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
			sqlgraph.From(city.Table, city.FieldID, selector),
			sqlgraph.To(matter.Table, matter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, city.MattersTable, city.MattersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCouncilMembers chains the current query on the "council_members" edge.
func (_q *CityQuery) QueryCouncilMembers() *CouncilMemberQuery {
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
			sqlgraph.From(city.Table, city.FieldID, selector),
			sqlgraph.To(councilmember.Table, councilmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, city.CouncilMembersTable, city.CouncilMembersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCommittees chains the current query on the "committees" edge.
func (_q *CityQuery) QueryCommittees() *CommitteeQuery {
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
			sqlgraph.From(city.Table, city.FieldID, selector),
			sqlgraph.To(committee.Table, committee.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, city.CommitteesTable, city.CommitteesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first City entity from the query.
// Returns a *NotFoundError when no City was found.
func (_q *CityQuery) First(ctx context.Context) (*City, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{city.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CityQuery) FirstX(ctx context.Context) *City {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first City ID from the query.
// Returns a *NotFoundError when no City ID was found.
func (_q *CityQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{city.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CityQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single City entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one City entity is found.
// Returns a *NotFoundError when no City entities are found.
func (_q *CityQuery) Only(ctx context.Context) (*City, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{city.Label}
	default:
		return nil, &NotSingularError{city.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CityQuery) OnlyX(ctx context.Context) *City {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only City ID in the query.
// Returns a *NotSingularError when more than one City ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CityQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{city.Label}
	default:
		err = &NotSingularError{city.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CityQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Cities.
func (_q *CityQuery) All(ctx context.Context) ([]*City, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*City, *CityQuery]()
	return withInterceptors[[]*City](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CityQuery) AllX(ctx context.Context) []*City {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of City IDs.
func (_q *CityQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(city.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CityQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CityQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CityQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CityQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CityQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CityQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CityQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CityQuery) Clone() *CityQuery {
	if _q == nil {
		return nil
	}
	return &CityQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]city.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.City{}, _q.predicates...),
		withMeetings:       _q.withMeetings.Clone(),
		withMatters:        _q.withMatters.Clone(),
		withCouncilMembers: _q.withCouncilMembers.Clone(),
		withCommittees:     _q.withCommittees.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMeetings tells the query-builder to eager-load the nodes that are connected to
// the "meetings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CityQuery) WithMeetings(opts ...func(*MeetingQuery)) *CityQuery {
	query := (&MeetingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMeetings = query
	return _q
}

// WithMatters tells the query-builder to eager-load the nodes that are connected to
// the "matters" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CityQuery) WithMatters(opts ...func(*MatterQuery)) *CityQuery {
	query := (&MatterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMatters = query
	return _q
}

// WithCouncilMembers tells the query-builder to eager-load the nodes that are connected to
// the "council_members" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CityQuery) WithCouncilMembers(opts ...func(*CouncilMemberQuery)) *CityQuery {
	query := (&CouncilMemberClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCouncilMembers = query
	return _q
}

// WithCommittees tells the query-builder to eager-load the nodes that are connected to
// the "committees" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CityQuery) WithCommittees(opts ...func(*CommitteeQuery)) *CityQuery {
	query := (&CommitteeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCommittees = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.City.Query().
//		GroupBy(city.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CityQuery) GroupBy(field string, fields ...string) *CityGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CityGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = city.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.City.Query().
//		Select(city.FieldName).
//		Scan(ctx, &v)
func (_q *CityQuery) Select(fields ...string) *CitySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CitySelect{CityQuery: _q}
	sbuild.label = city.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CitySelect configured with the given aggregations.
func (_q *CityQuery) Aggregate(fns ...AggregateFunc) *CitySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CityQuery) prepareQuery(ctx context.Context) error {
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
		if !city.ValidColumn(f) {
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

func (_q *CityQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*City, error) {
	var (
		nodes       = []*City{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withMeetings != nil,
			_q.withMatters != nil,
			_q.withCouncilMembers != nil,
			_q.withCommittees != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*City).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &City{config: _q.config}
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
	if query := _q.withMeetings; query != nil {
		if err := _q.loadMeetings(ctx, query, nodes,
			func(n *City) { n.Edges.Meetings = []*Meeting{} },
			func(n *City, e *Meeting) { n.Edges.Meetings = append(n.Edges.Meetings, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMatters; query != nil {
		if err := _q.loadMatters(ctx, query, nodes,
			func(n *City) { n.Edges.Matters = []*Matter{} },
			func(n *City, e *Matter) { n.Edges.Matters = append(n.Edges.Matters, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCouncilMembers; query != nil {
		if err := _q.loadCouncilMembers(ctx, query, nodes,
			func(n *City) { n.Edges.CouncilMembers = []*CouncilMember{} },
			func(n *City, e *CouncilMember) { n.Edges.CouncilMembers = append(n.Edges.CouncilMembers, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCommittees; query != nil {
		if err := _q.loadCommittees(ctx, query, nodes,
			func(n *City) { n.Edges.Committees = []*Committee{} },
			func(n *City, e *Committee) { n.Edges.Committees = append(n.Edges.Committees, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CityQuery) loadMeetings(ctx context.Context, query *MeetingQuery, nodes []*City, init func(*City), assign func(*City, *Meeting)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*City)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(meeting.FieldBanana)
	}
	query.Where(predicate.Meeting(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(city.MeetingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.Banana
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "banana" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CityQuery) loadMatters(ctx context.Context, query *MatterQuery, nodes []*City, init func(*City), assign func(*City, *Matter)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*City)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(matter.FieldBanana)
	}
	query.Where(predicate.Matter(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(city.MattersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.Banana
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "banana" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CityQuery) loadCouncilMembers(ctx context.Context, query *CouncilMemberQuery, nodes []*City, init func(*City), assign func(*City, *CouncilMember)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*City)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(councilmember.FieldBanana)
	}
	query.Where(predicate.CouncilMember(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(city.CouncilMembersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.Banana
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "banana" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CityQuery) loadCommittees(ctx context.Context, query *CommitteeQuery, nodes []*City, init func(*City), assign func(*City, *Committee)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*City)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(committee.FieldBanana)
	}
	query.Where(predicate.Committee(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(city.CommitteesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.Banana
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "banana" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CityQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *CityQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(city.Table, city.Columns, sqlgraph.NewFieldSpec(city.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, city.FieldID)
		for i := range fields {
			if fields[i] != city.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *CityQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(city.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = city.Columns
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
func (_q *CityQuery) ForUpdate(opts ...sql.LockOption) *CityQuery {
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
func (_q *CityQuery) ForShare(opts ...sql.LockOption) *CityQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CityGroupBy is the group-by builder for City entities.
type CityGroupBy struct {
	selector
	build *CityQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CityGroupBy) Aggregate(fns ...AggregateFunc) *CityGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CityGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CityQuery, *CityGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CityGroupBy) sqlScan(ctx context.Context, root *CityQuery, v any) error {
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

// CitySelect is the builder for selecting fields of City entities.
type CitySelect struct {
	*CityQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CitySelect) Aggregate(fns ...AggregateFunc) *CitySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CitySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CityQuery, *CitySelect](ctx, _s.CityQuery, _s, _s.inters, v)
}

func (_s *CitySelect) sqlScan(ctx context.Context, root *CityQuery, v any) error {
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
