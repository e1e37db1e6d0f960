// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// CommitteeUpdate is the builder for updating Committee entities.
type CommitteeUpdate struct {
	config
	hooks    []Hook
	mutation *CommitteeMutation
}

// Where appends a list predicates to the CommitteeUpdate builder.
func (_u *CommitteeUpdate) Where(ps ...predicate.Committee) *CommitteeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CommitteeUpdate) SetName(v string) *CommitteeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CommitteeUpdate) SetNillableName(v *string) *CommitteeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *CommitteeUpdate) SetNormalizedName(v string) *CommitteeUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *CommitteeUpdate) SetNillableNormalizedName(v *string) *CommitteeUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetVendorBodyID sets the "vendor_body_id" field.
func (_u *CommitteeUpdate) SetVendorBodyID(v string) *CommitteeUpdate {
	_u.mutation.SetVendorBodyID(v)
	return _u
}

// SetNillableVendorBodyID sets the "vendor_body_id" field if the given value is not nil.
func (_u *CommitteeUpdate) SetNillableVendorBodyID(v *string) *CommitteeUpdate {
	if v != nil {
		_u.SetVendorBodyID(*v)
	}
	return _u
}

// ClearVendorBodyID clears the value of the "vendor_body_id" field.
func (_u *CommitteeUpdate) ClearVendorBodyID() *CommitteeUpdate {
	_u.mutation.ClearVendorBodyID()
	return _u
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_u *CommitteeUpdate) AddMeetingIDs(ids ...string) *CommitteeUpdate {
	_u.mutation.AddMeetingIDs(ids...)
	return _u
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_u *CommitteeUpdate) AddMeetings(v ...*Meeting) *CommitteeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMeetingIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the CommitteeMembership entity by IDs.
func (_u *CommitteeUpdate) AddMembershipIDs(ids ...string) *CommitteeUpdate {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the CommitteeMembership entity.
func (_u *CommitteeUpdate) AddMemberships(v ...*CommitteeMembership) *CommitteeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// Mutation returns the CommitteeMutation object of the builder.
func (_u *CommitteeUpdate) Mutation() *CommitteeMutation {
	return _u.mutation
}

// ClearMeetings clears all "meetings" edges to the Meeting entity.
func (_u *CommitteeUpdate) ClearMeetings() *CommitteeUpdate {
	_u.mutation.ClearMeetings()
	return _u
}

// RemoveMeetingIDs removes the "meetings" edge to Meeting entities by IDs.
func (_u *CommitteeUpdate) RemoveMeetingIDs(ids ...string) *CommitteeUpdate {
	_u.mutation.RemoveMeetingIDs(ids...)
	return _u
}

// RemoveMeetings removes "meetings" edges to Meeting entities.
func (_u *CommitteeUpdate) RemoveMeetings(v ...*Meeting) *CommitteeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMeetingIDs(ids...)
}

// ClearMemberships clears all "memberships" edges to the CommitteeMembership entity.
func (_u *CommitteeUpdate) ClearMemberships() *CommitteeUpdate {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to CommitteeMembership entities by IDs.
func (_u *CommitteeUpdate) RemoveMembershipIDs(ids ...string) *CommitteeUpdate {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to CommitteeMembership entities.
func (_u *CommitteeUpdate) RemoveMemberships(v ...*CommitteeMembership) *CommitteeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommitteeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitteeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommitteeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitteeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitteeUpdate) check() error {
	if _u.mutation.CityCleared() && len(_u.mutation.CityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Committee.city"`)
	}
	return nil
}

func (_u *CommitteeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(committee.Table, committee.Columns, sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(committee.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(committee.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorBodyID(); ok {
		_spec.SetField(committee.FieldVendorBodyID, field.TypeString, value)
	}
	if _u.mutation.VendorBodyIDCleared() {
		_spec.ClearField(committee.FieldVendorBodyID, field.TypeString)
	}
	if _u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MeetingsTable,
			Columns: []string{committee.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMeetingsIDs(); len(nodes) > 0 && !_u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MeetingsTable,
			Columns: []string{committee.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeetingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MeetingsTable,
			Columns: []string{committee.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MembershipsTable,
			Columns: []string{committee.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MembershipsTable,
			Columns: []string{committee.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MembershipsTable,
			Columns: []string{committee.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{committee.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommitteeUpdateOne is the builder for updating a single Committee entity.
type CommitteeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommitteeMutation
}

// SetName sets the "name" field.
func (_u *CommitteeUpdateOne) SetName(v string) *CommitteeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CommitteeUpdateOne) SetNillableName(v *string) *CommitteeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *CommitteeUpdateOne) SetNormalizedName(v string) *CommitteeUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *CommitteeUpdateOne) SetNillableNormalizedName(v *string) *CommitteeUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetVendorBodyID sets the "vendor_body_id" field.
func (_u *CommitteeUpdateOne) SetVendorBodyID(v string) *CommitteeUpdateOne {
	_u.mutation.SetVendorBodyID(v)
	return _u
}

// SetNillableVendorBodyID sets the "vendor_body_id" field if the given value is not nil.
func (_u *CommitteeUpdateOne) SetNillableVendorBodyID(v *string) *CommitteeUpdateOne {
	if v != nil {
		_u.SetVendorBodyID(*v)
	}
	return _u
}

// ClearVendorBodyID clears the value of the "vendor_body_id" field.
func (_u *CommitteeUpdateOne) ClearVendorBodyID() *CommitteeUpdateOne {
	_u.mutation.ClearVendorBodyID()
	return _u
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_u *CommitteeUpdateOne) AddMeetingIDs(ids ...string) *CommitteeUpdateOne {
	_u.mutation.AddMeetingIDs(ids...)
	return _u
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_u *CommitteeUpdateOne) AddMeetings(v ...*Meeting) *CommitteeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMeetingIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the CommitteeMembership entity by IDs.
func (_u *CommitteeUpdateOne) AddMembershipIDs(ids ...string) *CommitteeUpdateOne {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the CommitteeMembership entity.
func (_u *CommitteeUpdateOne) AddMemberships(v ...*CommitteeMembership) *CommitteeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// Mutation returns the CommitteeMutation object of the builder.
func (_u *CommitteeUpdateOne) Mutation() *CommitteeMutation {
	return _u.mutation
}

// ClearMeetings clears all "meetings" edges to the Meeting entity.
func (_u *CommitteeUpdateOne) ClearMeetings() *CommitteeUpdateOne {
	_u.mutation.ClearMeetings()
	return _u
}

// RemoveMeetingIDs removes the "meetings" edge to Meeting entities by IDs.
func (_u *CommitteeUpdateOne) RemoveMeetingIDs(ids ...string) *CommitteeUpdateOne {
	_u.mutation.RemoveMeetingIDs(ids...)
	return _u
}

// RemoveMeetings removes "meetings" edges to Meeting entities.
func (_u *CommitteeUpdateOne) RemoveMeetings(v ...*Meeting) *CommitteeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMeetingIDs(ids...)
}

// ClearMemberships clears all "memberships" edges to the CommitteeMembership entity.
func (_u *CommitteeUpdateOne) ClearMemberships() *CommitteeUpdateOne {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to CommitteeMembership entities by IDs.
func (_u *CommitteeUpdateOne) RemoveMembershipIDs(ids ...string) *CommitteeUpdateOne {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to CommitteeMembership entities.
func (_u *CommitteeUpdateOne) RemoveMemberships(v ...*CommitteeMembership) *CommitteeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// Where appends a list predicates to the CommitteeUpdate builder.
func (_u *CommitteeUpdateOne) Where(ps ...predicate.Committee) *CommitteeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommitteeUpdateOne) Select(field string, fields ...string) *CommitteeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Committee entity.
func (_u *CommitteeUpdateOne) Save(ctx context.Context) (*Committee, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitteeUpdateOne) SaveX(ctx context.Context) *Committee {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommitteeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitteeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitteeUpdateOne) check() error {
	if _u.mutation.CityCleared() && len(_u.mutation.CityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Committee.city"`)
	}
	return nil
}

func (_u *CommitteeUpdateOne) sqlSave(ctx context.Context) (_node *Committee, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(committee.Table, committee.Columns, sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Committee.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, committee.FieldID)
		for _, f := range fields {
			if !committee.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != committee.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(committee.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(committee.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorBodyID(); ok {
		_spec.SetField(committee.FieldVendorBodyID, field.TypeString, value)
	}
	if _u.mutation.VendorBodyIDCleared() {
		_spec.ClearField(committee.FieldVendorBodyID, field.TypeString)
	}
	if _u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MeetingsTable,
			Columns: []string{committee.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMeetingsIDs(); len(nodes) > 0 && !_u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MeetingsTable,
			Columns: []string{committee.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeetingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MeetingsTable,
			Columns: []string{committee.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MembershipsTable,
			Columns: []string{committee.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MembershipsTable,
			Columns: []string{committee.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   committee.MembershipsTable,
			Columns: []string{committee.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Committee{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{committee.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
