// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// CityUpdate is the builder for updating City entities.
type CityUpdate struct {
	config
	hooks    []Hook
	mutation *CityMutation
}

// Where appends a list predicates to the CityUpdate builder.
func (_u *CityUpdate) Where(ps ...predicate.City) *CityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CityUpdate) SetName(v string) *CityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CityUpdate) SetNillableName(v *string) *CityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CityUpdate) SetState(v string) *CityUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CityUpdate) SetNillableState(v *string) *CityUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *CityUpdate) SetVendor(v string) *CityUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *CityUpdate) SetNillableVendor(v *string) *CityUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetVendorSlug sets the "vendor_slug" field.
func (_u *CityUpdate) SetVendorSlug(v string) *CityUpdate {
	_u.mutation.SetVendorSlug(v)
	return _u
}

// SetNillableVendorSlug sets the "vendor_slug" field if the given value is not nil.
func (_u *CityUpdate) SetNillableVendorSlug(v *string) *CityUpdate {
	if v != nil {
		_u.SetVendorSlug(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *CityUpdate) SetTimezone(v string) *CityUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *CityUpdate) SetNillableTimezone(v *string) *CityUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetCounty sets the "county" field.
func (_u *CityUpdate) SetCounty(v string) *CityUpdate {
	_u.mutation.SetCounty(v)
	return _u
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_u *CityUpdate) SetNillableCounty(v *string) *CityUpdate {
	if v != nil {
		_u.SetCounty(*v)
	}
	return _u
}

// ClearCounty clears the value of the "county" field.
func (_u *CityUpdate) ClearCounty() *CityUpdate {
	_u.mutation.ClearCounty()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CityUpdate) SetStatus(v city.Status) *CityUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CityUpdate) SetNillableStatus(v *city.Status) *CityUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPopulation sets the "population" field.
func (_u *CityUpdate) SetPopulation(v int) *CityUpdate {
	_u.mutation.ResetPopulation()
	_u.mutation.SetPopulation(v)
	return _u
}

// SetNillablePopulation sets the "population" field if the given value is not nil.
func (_u *CityUpdate) SetNillablePopulation(v *int) *CityUpdate {
	if v != nil {
		_u.SetPopulation(*v)
	}
	return _u
}

// AddPopulation adds value to the "population" field.
func (_u *CityUpdate) AddPopulation(v int) *CityUpdate {
	_u.mutation.AddPopulation(v)
	return _u
}

// ClearPopulation clears the value of the "population" field.
func (_u *CityUpdate) ClearPopulation() *CityUpdate {
	_u.mutation.ClearPopulation()
	return _u
}

// SetGeometry sets the "geometry" field.
func (_u *CityUpdate) SetGeometry(v map[string]interface{}) *CityUpdate {
	_u.mutation.SetGeometry(v)
	return _u
}

// ClearGeometry clears the value of the "geometry" field.
func (_u *CityUpdate) ClearGeometry() *CityUpdate {
	_u.mutation.ClearGeometry()
	return _u
}

// SetSyncErrorCount sets the "sync_error_count" field.
func (_u *CityUpdate) SetSyncErrorCount(v int) *CityUpdate {
	_u.mutation.ResetSyncErrorCount()
	_u.mutation.SetSyncErrorCount(v)
	return _u
}

// SetNillableSyncErrorCount sets the "sync_error_count" field if the given value is not nil.
func (_u *CityUpdate) SetNillableSyncErrorCount(v *int) *CityUpdate {
	if v != nil {
		_u.SetSyncErrorCount(*v)
	}
	return _u
}

// AddSyncErrorCount adds value to the "sync_error_count" field.
func (_u *CityUpdate) AddSyncErrorCount(v int) *CityUpdate {
	_u.mutation.AddSyncErrorCount(v)
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *CityUpdate) SetLastSyncedAt(v time.Time) *CityUpdate {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *CityUpdate) SetNillableLastSyncedAt(v *time.Time) *CityUpdate {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *CityUpdate) ClearLastSyncedAt() *CityUpdate {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CityUpdate) SetUpdatedAt(v time.Time) *CityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_u *CityUpdate) AddMeetingIDs(ids ...string) *CityUpdate {
	_u.mutation.AddMeetingIDs(ids...)
	return _u
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_u *CityUpdate) AddMeetings(v ...*Meeting) *CityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMeetingIDs(ids...)
}

// AddMatterIDs adds the "matters" edge to the Matter entity by IDs.
func (_u *CityUpdate) AddMatterIDs(ids ...string) *CityUpdate {
	_u.mutation.AddMatterIDs(ids...)
	return _u
}

// AddMatters adds the "matters" edges to the Matter entity.
func (_u *CityUpdate) AddMatters(v ...*Matter) *CityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatterIDs(ids...)
}

// AddCouncilMemberIDs adds the "council_members" edge to the CouncilMember entity by IDs.
func (_u *CityUpdate) AddCouncilMemberIDs(ids ...string) *CityUpdate {
	_u.mutation.AddCouncilMemberIDs(ids...)
	return _u
}

// AddCouncilMembers adds the "council_members" edges to the CouncilMember entity.
func (_u *CityUpdate) AddCouncilMembers(v ...*CouncilMember) *CityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCouncilMemberIDs(ids...)
}

// AddCommitteeIDs adds the "committees" edge to the Committee entity by IDs.
func (_u *CityUpdate) AddCommitteeIDs(ids ...string) *CityUpdate {
	_u.mutation.AddCommitteeIDs(ids...)
	return _u
}

// AddCommittees adds the "committees" edges to the Committee entity.
func (_u *CityUpdate) AddCommittees(v ...*Committee) *CityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommitteeIDs(ids...)
}

// Mutation returns the CityMutation object of the builder.
func (_u *CityUpdate) Mutation() *CityMutation {
	return _u.mutation
}

// ClearMeetings clears all "meetings" edges to the Meeting entity.
func (_u *CityUpdate) ClearMeetings() *CityUpdate {
	_u.mutation.ClearMeetings()
	return _u
}

// RemoveMeetingIDs removes the "meetings" edge to Meeting entities by IDs.
func (_u *CityUpdate) RemoveMeetingIDs(ids ...string) *CityUpdate {
	_u.mutation.RemoveMeetingIDs(ids...)
	return _u
}

// RemoveMeetings removes "meetings" edges to Meeting entities.
func (_u *CityUpdate) RemoveMeetings(v ...*Meeting) *CityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMeetingIDs(ids...)
}

// ClearMatters clears all "matters" edges to the Matter entity.
func (_u *CityUpdate) ClearMatters() *CityUpdate {
	_u.mutation.ClearMatters()
	return _u
}

// RemoveMatterIDs removes the "matters" edge to Matter entities by IDs.
func (_u *CityUpdate) RemoveMatterIDs(ids ...string) *CityUpdate {
	_u.mutation.RemoveMatterIDs(ids...)
	return _u
}

// RemoveMatters removes "matters" edges to Matter entities.
func (_u *CityUpdate) RemoveMatters(v ...*Matter) *CityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatterIDs(ids...)
}

// ClearCouncilMembers clears all "council_members" edges to the CouncilMember entity.
func (_u *CityUpdate) ClearCouncilMembers() *CityUpdate {
	_u.mutation.ClearCouncilMembers()
	return _u
}

// RemoveCouncilMemberIDs removes the "council_members" edge to CouncilMember entities by IDs.
func (_u *CityUpdate) RemoveCouncilMemberIDs(ids ...string) *CityUpdate {
	_u.mutation.RemoveCouncilMemberIDs(ids...)
	return _u
}

// RemoveCouncilMembers removes "council_members" edges to CouncilMember entities.
func (_u *CityUpdate) RemoveCouncilMembers(v ...*CouncilMember) *CityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCouncilMemberIDs(ids...)
}

// ClearCommittees clears all "committees" edges to the Committee entity.
func (_u *CityUpdate) ClearCommittees() *CityUpdate {
	_u.mutation.ClearCommittees()
	return _u
}

// RemoveCommitteeIDs removes the "committees" edge to Committee entities by IDs.
func (_u *CityUpdate) RemoveCommitteeIDs(ids ...string) *CityUpdate {
	_u.mutation.RemoveCommitteeIDs(ids...)
	return _u
}

// RemoveCommittees removes "committees" edges to Committee entities.
func (_u *CityUpdate) RemoveCommittees(v ...*Committee) *CityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommitteeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := city.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CityUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := city.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "City.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := city.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "City.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(city.Table, city.Columns, sqlgraph.NewFieldSpec(city.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(city.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(city.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(city.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorSlug(); ok {
		_spec.SetField(city.FieldVendorSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(city.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.County(); ok {
		_spec.SetField(city.FieldCounty, field.TypeString, value)
	}
	if _u.mutation.CountyCleared() {
		_spec.ClearField(city.FieldCounty, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(city.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Population(); ok {
		_spec.SetField(city.FieldPopulation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPopulation(); ok {
		_spec.AddField(city.FieldPopulation, field.TypeInt, value)
	}
	if _u.mutation.PopulationCleared() {
		_spec.ClearField(city.FieldPopulation, field.TypeInt)
	}
	if value, ok := _u.mutation.Geometry(); ok {
		_spec.SetField(city.FieldGeometry, field.TypeJSON, value)
	}
	if _u.mutation.GeometryCleared() {
		_spec.ClearField(city.FieldGeometry, field.TypeJSON)
	}
	if value, ok := _u.mutation.SyncErrorCount(); ok {
		_spec.SetField(city.FieldSyncErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSyncErrorCount(); ok {
		_spec.AddField(city.FieldSyncErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(city.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(city.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(city.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.MeetingsTable,
			Columns: []string{city.MeetingsColumn},
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
			Table:   city.MeetingsTable,
			Columns: []string{city.MeetingsColumn},
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
			Table:   city.MeetingsTable,
			Columns: []string{city.MeetingsColumn},
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
	if _u.mutation.MattersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.MattersTable,
			Columns: []string{city.MattersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMattersIDs(); len(nodes) > 0 && !_u.mutation.MattersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.MattersTable,
			Columns: []string{city.MattersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MattersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.MattersTable,
			Columns: []string{city.MattersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CouncilMembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CouncilMembersTable,
			Columns: []string{city.CouncilMembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCouncilMembersIDs(); len(nodes) > 0 && !_u.mutation.CouncilMembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CouncilMembersTable,
			Columns: []string{city.CouncilMembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CouncilMembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CouncilMembersTable,
			Columns: []string{city.CouncilMembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommitteesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CommitteesTable,
			Columns: []string{city.CommitteesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommitteesIDs(); len(nodes) > 0 && !_u.mutation.CommitteesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CommitteesTable,
			Columns: []string{city.CommitteesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommitteesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CommitteesTable,
			Columns: []string{city.CommitteesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{city.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CityUpdateOne is the builder for updating a single City entity.
type CityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CityMutation
}

// SetName sets the "name" field.
func (_u *CityUpdateOne) SetName(v string) *CityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableName(v *string) *CityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CityUpdateOne) SetState(v string) *CityUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableState(v *string) *CityUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *CityUpdateOne) SetVendor(v string) *CityUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableVendor(v *string) *CityUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetVendorSlug sets the "vendor_slug" field.
func (_u *CityUpdateOne) SetVendorSlug(v string) *CityUpdateOne {
	_u.mutation.SetVendorSlug(v)
	return _u
}

// SetNillableVendorSlug sets the "vendor_slug" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableVendorSlug(v *string) *CityUpdateOne {
	if v != nil {
		_u.SetVendorSlug(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *CityUpdateOne) SetTimezone(v string) *CityUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableTimezone(v *string) *CityUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetCounty sets the "county" field.
func (_u *CityUpdateOne) SetCounty(v string) *CityUpdateOne {
	_u.mutation.SetCounty(v)
	return _u
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableCounty(v *string) *CityUpdateOne {
	if v != nil {
		_u.SetCounty(*v)
	}
	return _u
}

// ClearCounty clears the value of the "county" field.
func (_u *CityUpdateOne) ClearCounty() *CityUpdateOne {
	_u.mutation.ClearCounty()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CityUpdateOne) SetStatus(v city.Status) *CityUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableStatus(v *city.Status) *CityUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPopulation sets the "population" field.
func (_u *CityUpdateOne) SetPopulation(v int) *CityUpdateOne {
	_u.mutation.ResetPopulation()
	_u.mutation.SetPopulation(v)
	return _u
}

// SetNillablePopulation sets the "population" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillablePopulation(v *int) *CityUpdateOne {
	if v != nil {
		_u.SetPopulation(*v)
	}
	return _u
}

// AddPopulation adds value to the "population" field.
func (_u *CityUpdateOne) AddPopulation(v int) *CityUpdateOne {
	_u.mutation.AddPopulation(v)
	return _u
}

// ClearPopulation clears the value of the "population" field.
func (_u *CityUpdateOne) ClearPopulation() *CityUpdateOne {
	_u.mutation.ClearPopulation()
	return _u
}

// SetGeometry sets the "geometry" field.
func (_u *CityUpdateOne) SetGeometry(v map[string]interface{}) *CityUpdateOne {
	_u.mutation.SetGeometry(v)
	return _u
}

// ClearGeometry clears the value of the "geometry" field.
func (_u *CityUpdateOne) ClearGeometry() *CityUpdateOne {
	_u.mutation.ClearGeometry()
	return _u
}

// SetSyncErrorCount sets the "sync_error_count" field.
func (_u *CityUpdateOne) SetSyncErrorCount(v int) *CityUpdateOne {
	_u.mutation.ResetSyncErrorCount()
	_u.mutation.SetSyncErrorCount(v)
	return _u
}

// SetNillableSyncErrorCount sets the "sync_error_count" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableSyncErrorCount(v *int) *CityUpdateOne {
	if v != nil {
		_u.SetSyncErrorCount(*v)
	}
	return _u
}

// AddSyncErrorCount adds value to the "sync_error_count" field.
func (_u *CityUpdateOne) AddSyncErrorCount(v int) *CityUpdateOne {
	_u.mutation.AddSyncErrorCount(v)
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *CityUpdateOne) SetLastSyncedAt(v time.Time) *CityUpdateOne {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *CityUpdateOne) SetNillableLastSyncedAt(v *time.Time) *CityUpdateOne {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *CityUpdateOne) ClearLastSyncedAt() *CityUpdateOne {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CityUpdateOne) SetUpdatedAt(v time.Time) *CityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_u *CityUpdateOne) AddMeetingIDs(ids ...string) *CityUpdateOne {
	_u.mutation.AddMeetingIDs(ids...)
	return _u
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_u *CityUpdateOne) AddMeetings(v ...*Meeting) *CityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMeetingIDs(ids...)
}

// AddMatterIDs adds the "matters" edge to the Matter entity by IDs.
func (_u *CityUpdateOne) AddMatterIDs(ids ...string) *CityUpdateOne {
	_u.mutation.AddMatterIDs(ids...)
	return _u
}

// AddMatters adds the "matters" edges to the Matter entity.
func (_u *CityUpdateOne) AddMatters(v ...*Matter) *CityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatterIDs(ids...)
}

// AddCouncilMemberIDs adds the "council_members" edge to the CouncilMember entity by IDs.
func (_u *CityUpdateOne) AddCouncilMemberIDs(ids ...string) *CityUpdateOne {
	_u.mutation.AddCouncilMemberIDs(ids...)
	return _u
}

// AddCouncilMembers adds the "council_members" edges to the CouncilMember entity.
func (_u *CityUpdateOne) AddCouncilMembers(v ...*CouncilMember) *CityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCouncilMemberIDs(ids...)
}

// AddCommitteeIDs adds the "committees" edge to the Committee entity by IDs.
func (_u *CityUpdateOne) AddCommitteeIDs(ids ...string) *CityUpdateOne {
	_u.mutation.AddCommitteeIDs(ids...)
	return _u
}

// AddCommittees adds the "committees" edges to the Committee entity.
func (_u *CityUpdateOne) AddCommittees(v ...*Committee) *CityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommitteeIDs(ids...)
}

// Mutation returns the CityMutation object of the builder.
func (_u *CityUpdateOne) Mutation() *CityMutation {
	return _u.mutation
}

// ClearMeetings clears all "meetings" edges to the Meeting entity.
func (_u *CityUpdateOne) ClearMeetings() *CityUpdateOne {
	_u.mutation.ClearMeetings()
	return _u
}

// RemoveMeetingIDs removes the "meetings" edge to Meeting entities by IDs.
func (_u *CityUpdateOne) RemoveMeetingIDs(ids ...string) *CityUpdateOne {
	_u.mutation.RemoveMeetingIDs(ids...)
	return _u
}

// RemoveMeetings removes "meetings" edges to Meeting entities.
func (_u *CityUpdateOne) RemoveMeetings(v ...*Meeting) *CityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMeetingIDs(ids...)
}

// ClearMatters clears all "matters" edges to the Matter entity.
func (_u *CityUpdateOne) ClearMatters() *CityUpdateOne {
	_u.mutation.ClearMatters()
	return _u
}

// RemoveMatterIDs removes the "matters" edge to Matter entities by IDs.
func (_u *CityUpdateOne) RemoveMatterIDs(ids ...string) *CityUpdateOne {
	_u.mutation.RemoveMatterIDs(ids...)
	return _u
}

// RemoveMatters removes "matters" edges to Matter entities.
func (_u *CityUpdateOne) RemoveMatters(v ...*Matter) *CityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatterIDs(ids...)
}

// ClearCouncilMembers clears all "council_members" edges to the CouncilMember entity.
func (_u *CityUpdateOne) ClearCouncilMembers() *CityUpdateOne {
	_u.mutation.ClearCouncilMembers()
	return _u
}

// RemoveCouncilMemberIDs removes the "council_members" edge to CouncilMember entities by IDs.
func (_u *CityUpdateOne) RemoveCouncilMemberIDs(ids ...string) *CityUpdateOne {
	_u.mutation.RemoveCouncilMemberIDs(ids...)
	return _u
}

// RemoveCouncilMembers removes "council_members" edges to CouncilMember entities.
func (_u *CityUpdateOne) RemoveCouncilMembers(v ...*CouncilMember) *CityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCouncilMemberIDs(ids...)
}

// ClearCommittees clears all "committees" edges to the Committee entity.
func (_u *CityUpdateOne) ClearCommittees() *CityUpdateOne {
	_u.mutation.ClearCommittees()
	return _u
}

// RemoveCommitteeIDs removes the "committees" edge to Committee entities by IDs.
func (_u *CityUpdateOne) RemoveCommitteeIDs(ids ...string) *CityUpdateOne {
	_u.mutation.RemoveCommitteeIDs(ids...)
	return _u
}

// RemoveCommittees removes "committees" edges to Committee entities.
func (_u *CityUpdateOne) RemoveCommittees(v ...*Committee) *CityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommitteeIDs(ids...)
}

// Where appends a list predicates to the CityUpdate builder.
func (_u *CityUpdateOne) Where(ps ...predicate.City) *CityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CityUpdateOne) Select(field string, fields ...string) *CityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated City entity.
func (_u *CityUpdateOne) Save(ctx context.Context) (*City, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CityUpdateOne) SaveX(ctx context.Context) *City {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := city.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CityUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := city.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "City.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := city.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "City.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CityUpdateOne) sqlSave(ctx context.Context) (_node *City, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(city.Table, city.Columns, sqlgraph.NewFieldSpec(city.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "City.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, city.FieldID)
		for _, f := range fields {
			if !city.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != city.FieldID {
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
		_spec.SetField(city.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(city.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(city.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorSlug(); ok {
		_spec.SetField(city.FieldVendorSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(city.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.County(); ok {
		_spec.SetField(city.FieldCounty, field.TypeString, value)
	}
	if _u.mutation.CountyCleared() {
		_spec.ClearField(city.FieldCounty, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(city.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Population(); ok {
		_spec.SetField(city.FieldPopulation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPopulation(); ok {
		_spec.AddField(city.FieldPopulation, field.TypeInt, value)
	}
	if _u.mutation.PopulationCleared() {
		_spec.ClearField(city.FieldPopulation, field.TypeInt)
	}
	if value, ok := _u.mutation.Geometry(); ok {
		_spec.SetField(city.FieldGeometry, field.TypeJSON, value)
	}
	if _u.mutation.GeometryCleared() {
		_spec.ClearField(city.FieldGeometry, field.TypeJSON)
	}
	if value, ok := _u.mutation.SyncErrorCount(); ok {
		_spec.SetField(city.FieldSyncErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSyncErrorCount(); ok {
		_spec.AddField(city.FieldSyncErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(city.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(city.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(city.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.MeetingsTable,
			Columns: []string{city.MeetingsColumn},
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
			Table:   city.MeetingsTable,
			Columns: []string{city.MeetingsColumn},
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
			Table:   city.MeetingsTable,
			Columns: []string{city.MeetingsColumn},
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
	if _u.mutation.MattersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.MattersTable,
			Columns: []string{city.MattersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMattersIDs(); len(nodes) > 0 && !_u.mutation.MattersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.MattersTable,
			Columns: []string{city.MattersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MattersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.MattersTable,
			Columns: []string{city.MattersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CouncilMembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CouncilMembersTable,
			Columns: []string{city.CouncilMembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCouncilMembersIDs(); len(nodes) > 0 && !_u.mutation.CouncilMembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CouncilMembersTable,
			Columns: []string{city.CouncilMembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CouncilMembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CouncilMembersTable,
			Columns: []string{city.CouncilMembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommitteesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CommitteesTable,
			Columns: []string{city.CommitteesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommitteesIDs(); len(nodes) > 0 && !_u.mutation.CommitteesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CommitteesTable,
			Columns: []string{city.CommitteesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommitteesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   city.CommitteesTable,
			Columns: []string{city.CommitteesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &City{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{city.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
