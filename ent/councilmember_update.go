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
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/predicate"
	"github.com/Engagic/engagic-sub004/ent/vote"
)

// CouncilMemberUpdate is the builder for updating CouncilMember entities.
type CouncilMemberUpdate struct {
	config
	hooks    []Hook
	mutation *CouncilMemberMutation
}

// Where appends a list predicates to the CouncilMemberUpdate builder.
func (_u *CouncilMemberUpdate) Where(ps ...predicate.CouncilMember) *CouncilMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CouncilMemberUpdate) SetName(v string) *CouncilMemberUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CouncilMemberUpdate) SetNillableName(v *string) *CouncilMemberUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *CouncilMemberUpdate) SetNormalizedName(v string) *CouncilMemberUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *CouncilMemberUpdate) SetNillableNormalizedName(v *string) *CouncilMemberUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CouncilMemberUpdate) SetTitle(v string) *CouncilMemberUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CouncilMemberUpdate) SetNillableTitle(v *string) *CouncilMemberUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CouncilMemberUpdate) ClearTitle() *CouncilMemberUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDistrict sets the "district" field.
func (_u *CouncilMemberUpdate) SetDistrict(v string) *CouncilMemberUpdate {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *CouncilMemberUpdate) SetNillableDistrict(v *string) *CouncilMemberUpdate {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// ClearDistrict clears the value of the "district" field.
func (_u *CouncilMemberUpdate) ClearDistrict() *CouncilMemberUpdate {
	_u.mutation.ClearDistrict()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CouncilMemberUpdate) SetStatus(v councilmember.Status) *CouncilMemberUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CouncilMemberUpdate) SetNillableStatus(v *councilmember.Status) *CouncilMemberUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *CouncilMemberUpdate) SetLastSeen(v time.Time) *CouncilMemberUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *CouncilMemberUpdate) SetNillableLastSeen(v *time.Time) *CouncilMemberUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetSponsorshipCount sets the "sponsorship_count" field.
func (_u *CouncilMemberUpdate) SetSponsorshipCount(v int) *CouncilMemberUpdate {
	_u.mutation.ResetSponsorshipCount()
	_u.mutation.SetSponsorshipCount(v)
	return _u
}

// SetNillableSponsorshipCount sets the "sponsorship_count" field if the given value is not nil.
func (_u *CouncilMemberUpdate) SetNillableSponsorshipCount(v *int) *CouncilMemberUpdate {
	if v != nil {
		_u.SetSponsorshipCount(*v)
	}
	return _u
}

// AddSponsorshipCount adds value to the "sponsorship_count" field.
func (_u *CouncilMemberUpdate) AddSponsorshipCount(v int) *CouncilMemberUpdate {
	_u.mutation.AddSponsorshipCount(v)
	return _u
}

// SetVoteCount sets the "vote_count" field.
func (_u *CouncilMemberUpdate) SetVoteCount(v int) *CouncilMemberUpdate {
	_u.mutation.ResetVoteCount()
	_u.mutation.SetVoteCount(v)
	return _u
}

// SetNillableVoteCount sets the "vote_count" field if the given value is not nil.
func (_u *CouncilMemberUpdate) SetNillableVoteCount(v *int) *CouncilMemberUpdate {
	if v != nil {
		_u.SetVoteCount(*v)
	}
	return _u
}

// AddVoteCount adds value to the "vote_count" field.
func (_u *CouncilMemberUpdate) AddVoteCount(v int) *CouncilMemberUpdate {
	_u.mutation.AddVoteCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CouncilMemberUpdate) SetMetadata(v map[string]interface{}) *CouncilMemberUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CouncilMemberUpdate) ClearMetadata() *CouncilMemberUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_u *CouncilMemberUpdate) AddVoteIDs(ids ...string) *CouncilMemberUpdate {
	_u.mutation.AddVoteIDs(ids...)
	return _u
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_u *CouncilMemberUpdate) AddVotes(v ...*Vote) *CouncilMemberUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoteIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the CommitteeMembership entity by IDs.
func (_u *CouncilMemberUpdate) AddMembershipIDs(ids ...string) *CouncilMemberUpdate {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the CommitteeMembership entity.
func (_u *CouncilMemberUpdate) AddMemberships(v ...*CommitteeMembership) *CouncilMemberUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// Mutation returns the CouncilMemberMutation object of the builder.
func (_u *CouncilMemberUpdate) Mutation() *CouncilMemberMutation {
	return _u.mutation
}

// ClearVotes clears all "votes" edges to the Vote entity.
func (_u *CouncilMemberUpdate) ClearVotes() *CouncilMemberUpdate {
	_u.mutation.ClearVotes()
	return _u
}

// RemoveVoteIDs removes the "votes" edge to Vote entities by IDs.
func (_u *CouncilMemberUpdate) RemoveVoteIDs(ids ...string) *CouncilMemberUpdate {
	_u.mutation.RemoveVoteIDs(ids...)
	return _u
}

// RemoveVotes removes "votes" edges to Vote entities.
func (_u *CouncilMemberUpdate) RemoveVotes(v ...*Vote) *CouncilMemberUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoteIDs(ids...)
}

// ClearMemberships clears all "memberships" edges to the CommitteeMembership entity.
func (_u *CouncilMemberUpdate) ClearMemberships() *CouncilMemberUpdate {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to CommitteeMembership entities by IDs.
func (_u *CouncilMemberUpdate) RemoveMembershipIDs(ids ...string) *CouncilMemberUpdate {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to CommitteeMembership entities.
func (_u *CouncilMemberUpdate) RemoveMemberships(v ...*CommitteeMembership) *CouncilMemberUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CouncilMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CouncilMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CouncilMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CouncilMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CouncilMemberUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := councilmember.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CouncilMember.status": %w`, err)}
		}
	}
	if _u.mutation.CityCleared() && len(_u.mutation.CityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CouncilMember.city"`)
	}
	return nil
}

func (_u *CouncilMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(councilmember.Table, councilmember.Columns, sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(councilmember.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(councilmember.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(councilmember.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(councilmember.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(councilmember.FieldDistrict, field.TypeString, value)
	}
	if _u.mutation.DistrictCleared() {
		_spec.ClearField(councilmember.FieldDistrict, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(councilmember.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(councilmember.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SponsorshipCount(); ok {
		_spec.SetField(councilmember.FieldSponsorshipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSponsorshipCount(); ok {
		_spec.AddField(councilmember.FieldSponsorshipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VoteCount(); ok {
		_spec.SetField(councilmember.FieldVoteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVoteCount(); ok {
		_spec.AddField(councilmember.FieldVoteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(councilmember.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(councilmember.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.VotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   councilmember.VotesTable,
			Columns: []string{councilmember.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotesIDs(); len(nodes) > 0 && !_u.mutation.VotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   councilmember.VotesTable,
			Columns: []string{councilmember.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   councilmember.VotesTable,
			Columns: []string{councilmember.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
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
			Table:   councilmember.MembershipsTable,
			Columns: []string{councilmember.MembershipsColumn},
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
			Table:   councilmember.MembershipsTable,
			Columns: []string{councilmember.MembershipsColumn},
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
			Table:   councilmember.MembershipsTable,
			Columns: []string{councilmember.MembershipsColumn},
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
			err = &NotFoundError{councilmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CouncilMemberUpdateOne is the builder for updating a single CouncilMember entity.
type CouncilMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CouncilMemberMutation
}

// SetName sets the "name" field.
func (_u *CouncilMemberUpdateOne) SetName(v string) *CouncilMemberUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CouncilMemberUpdateOne) SetNillableName(v *string) *CouncilMemberUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *CouncilMemberUpdateOne) SetNormalizedName(v string) *CouncilMemberUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *CouncilMemberUpdateOne) SetNillableNormalizedName(v *string) *CouncilMemberUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CouncilMemberUpdateOne) SetTitle(v string) *CouncilMemberUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CouncilMemberUpdateOne) SetNillableTitle(v *string) *CouncilMemberUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CouncilMemberUpdateOne) ClearTitle() *CouncilMemberUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDistrict sets the "district" field.
func (_u *CouncilMemberUpdateOne) SetDistrict(v string) *CouncilMemberUpdateOne {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *CouncilMemberUpdateOne) SetNillableDistrict(v *string) *CouncilMemberUpdateOne {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// ClearDistrict clears the value of the "district" field.
func (_u *CouncilMemberUpdateOne) ClearDistrict() *CouncilMemberUpdateOne {
	_u.mutation.ClearDistrict()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CouncilMemberUpdateOne) SetStatus(v councilmember.Status) *CouncilMemberUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CouncilMemberUpdateOne) SetNillableStatus(v *councilmember.Status) *CouncilMemberUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *CouncilMemberUpdateOne) SetLastSeen(v time.Time) *CouncilMemberUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *CouncilMemberUpdateOne) SetNillableLastSeen(v *time.Time) *CouncilMemberUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetSponsorshipCount sets the "sponsorship_count" field.
func (_u *CouncilMemberUpdateOne) SetSponsorshipCount(v int) *CouncilMemberUpdateOne {
	_u.mutation.ResetSponsorshipCount()
	_u.mutation.SetSponsorshipCount(v)
	return _u
}

// SetNillableSponsorshipCount sets the "sponsorship_count" field if the given value is not nil.
func (_u *CouncilMemberUpdateOne) SetNillableSponsorshipCount(v *int) *CouncilMemberUpdateOne {
	if v != nil {
		_u.SetSponsorshipCount(*v)
	}
	return _u
}

// AddSponsorshipCount adds value to the "sponsorship_count" field.
func (_u *CouncilMemberUpdateOne) AddSponsorshipCount(v int) *CouncilMemberUpdateOne {
	_u.mutation.AddSponsorshipCount(v)
	return _u
}

// SetVoteCount sets the "vote_count" field.
func (_u *CouncilMemberUpdateOne) SetVoteCount(v int) *CouncilMemberUpdateOne {
	_u.mutation.ResetVoteCount()
	_u.mutation.SetVoteCount(v)
	return _u
}

// SetNillableVoteCount sets the "vote_count" field if the given value is not nil.
func (_u *CouncilMemberUpdateOne) SetNillableVoteCount(v *int) *CouncilMemberUpdateOne {
	if v != nil {
		_u.SetVoteCount(*v)
	}
	return _u
}

// AddVoteCount adds value to the "vote_count" field.
func (_u *CouncilMemberUpdateOne) AddVoteCount(v int) *CouncilMemberUpdateOne {
	_u.mutation.AddVoteCount(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CouncilMemberUpdateOne) SetMetadata(v map[string]interface{}) *CouncilMemberUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CouncilMemberUpdateOne) ClearMetadata() *CouncilMemberUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_u *CouncilMemberUpdateOne) AddVoteIDs(ids ...string) *CouncilMemberUpdateOne {
	_u.mutation.AddVoteIDs(ids...)
	return _u
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_u *CouncilMemberUpdateOne) AddVotes(v ...*Vote) *CouncilMemberUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoteIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the CommitteeMembership entity by IDs.
func (_u *CouncilMemberUpdateOne) AddMembershipIDs(ids ...string) *CouncilMemberUpdateOne {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the CommitteeMembership entity.
func (_u *CouncilMemberUpdateOne) AddMemberships(v ...*CommitteeMembership) *CouncilMemberUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// Mutation returns the CouncilMemberMutation object of the builder.
func (_u *CouncilMemberUpdateOne) Mutation() *CouncilMemberMutation {
	return _u.mutation
}

// ClearVotes clears all "votes" edges to the Vote entity.
func (_u *CouncilMemberUpdateOne) ClearVotes() *CouncilMemberUpdateOne {
	_u.mutation.ClearVotes()
	return _u
}

// RemoveVoteIDs removes the "votes" edge to Vote entities by IDs.
func (_u *CouncilMemberUpdateOne) RemoveVoteIDs(ids ...string) *CouncilMemberUpdateOne {
	_u.mutation.RemoveVoteIDs(ids...)
	return _u
}

// RemoveVotes removes "votes" edges to Vote entities.
func (_u *CouncilMemberUpdateOne) RemoveVotes(v ...*Vote) *CouncilMemberUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoteIDs(ids...)
}

// ClearMemberships clears all "memberships" edges to the CommitteeMembership entity.
func (_u *CouncilMemberUpdateOne) ClearMemberships() *CouncilMemberUpdateOne {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to CommitteeMembership entities by IDs.
func (_u *CouncilMemberUpdateOne) RemoveMembershipIDs(ids ...string) *CouncilMemberUpdateOne {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to CommitteeMembership entities.
func (_u *CouncilMemberUpdateOne) RemoveMemberships(v ...*CommitteeMembership) *CouncilMemberUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// Where appends a list predicates to the CouncilMemberUpdate builder.
func (_u *CouncilMemberUpdateOne) Where(ps ...predicate.CouncilMember) *CouncilMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CouncilMemberUpdateOne) Select(field string, fields ...string) *CouncilMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CouncilMember entity.
func (_u *CouncilMemberUpdateOne) Save(ctx context.Context) (*CouncilMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CouncilMemberUpdateOne) SaveX(ctx context.Context) *CouncilMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CouncilMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CouncilMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CouncilMemberUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := councilmember.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CouncilMember.status": %w`, err)}
		}
	}
	if _u.mutation.CityCleared() && len(_u.mutation.CityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CouncilMember.city"`)
	}
	return nil
}

func (_u *CouncilMemberUpdateOne) sqlSave(ctx context.Context) (_node *CouncilMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(councilmember.Table, councilmember.Columns, sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CouncilMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, councilmember.FieldID)
		for _, f := range fields {
			if !councilmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != councilmember.FieldID {
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
		_spec.SetField(councilmember.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(councilmember.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(councilmember.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(councilmember.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(councilmember.FieldDistrict, field.TypeString, value)
	}
	if _u.mutation.DistrictCleared() {
		_spec.ClearField(councilmember.FieldDistrict, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(councilmember.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(councilmember.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SponsorshipCount(); ok {
		_spec.SetField(councilmember.FieldSponsorshipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSponsorshipCount(); ok {
		_spec.AddField(councilmember.FieldSponsorshipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VoteCount(); ok {
		_spec.SetField(councilmember.FieldVoteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVoteCount(); ok {
		_spec.AddField(councilmember.FieldVoteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(councilmember.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(councilmember.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.VotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   councilmember.VotesTable,
			Columns: []string{councilmember.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotesIDs(); len(nodes) > 0 && !_u.mutation.VotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   councilmember.VotesTable,
			Columns: []string{councilmember.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   councilmember.VotesTable,
			Columns: []string{councilmember.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
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
			Table:   councilmember.MembershipsTable,
			Columns: []string{councilmember.MembershipsColumn},
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
			Table:   councilmember.MembershipsTable,
			Columns: []string{councilmember.MembershipsColumn},
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
			Table:   councilmember.MembershipsTable,
			Columns: []string{councilmember.MembershipsColumn},
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
	_node = &CouncilMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{councilmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
