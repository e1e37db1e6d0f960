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
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// CommitteeMembershipUpdate is the builder for updating CommitteeMembership entities.
type CommitteeMembershipUpdate struct {
	config
	hooks    []Hook
	mutation *CommitteeMembershipMutation
}

// Where appends a list predicates to the CommitteeMembershipUpdate builder.
func (_u *CommitteeMembershipUpdate) Where(ps ...predicate.CommitteeMembership) *CommitteeMembershipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *CommitteeMembershipUpdate) SetRole(v string) *CommitteeMembershipUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *CommitteeMembershipUpdate) SetNillableRole(v *string) *CommitteeMembershipUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *CommitteeMembershipUpdate) ClearRole() *CommitteeMembershipUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetJoinedAt sets the "joined_at" field.
func (_u *CommitteeMembershipUpdate) SetJoinedAt(v time.Time) *CommitteeMembershipUpdate {
	_u.mutation.SetJoinedAt(v)
	return _u
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_u *CommitteeMembershipUpdate) SetNillableJoinedAt(v *time.Time) *CommitteeMembershipUpdate {
	if v != nil {
		_u.SetJoinedAt(*v)
	}
	return _u
}

// SetLeftAt sets the "left_at" field.
func (_u *CommitteeMembershipUpdate) SetLeftAt(v time.Time) *CommitteeMembershipUpdate {
	_u.mutation.SetLeftAt(v)
	return _u
}

// SetNillableLeftAt sets the "left_at" field if the given value is not nil.
func (_u *CommitteeMembershipUpdate) SetNillableLeftAt(v *time.Time) *CommitteeMembershipUpdate {
	if v != nil {
		_u.SetLeftAt(*v)
	}
	return _u
}

// ClearLeftAt clears the value of the "left_at" field.
func (_u *CommitteeMembershipUpdate) ClearLeftAt() *CommitteeMembershipUpdate {
	_u.mutation.ClearLeftAt()
	return _u
}

// Mutation returns the CommitteeMembershipMutation object of the builder.
func (_u *CommitteeMembershipUpdate) Mutation() *CommitteeMembershipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommitteeMembershipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitteeMembershipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommitteeMembershipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitteeMembershipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitteeMembershipUpdate) check() error {
	if _u.mutation.CommitteeCleared() && len(_u.mutation.CommitteeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommitteeMembership.committee"`)
	}
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommitteeMembership.member"`)
	}
	return nil
}

func (_u *CommitteeMembershipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(committeemembership.Table, committeemembership.Columns, sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(committeemembership.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(committeemembership.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.JoinedAt(); ok {
		_spec.SetField(committeemembership.FieldJoinedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LeftAt(); ok {
		_spec.SetField(committeemembership.FieldLeftAt, field.TypeTime, value)
	}
	if _u.mutation.LeftAtCleared() {
		_spec.ClearField(committeemembership.FieldLeftAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{committeemembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommitteeMembershipUpdateOne is the builder for updating a single CommitteeMembership entity.
type CommitteeMembershipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommitteeMembershipMutation
}

// SetRole sets the "role" field.
func (_u *CommitteeMembershipUpdateOne) SetRole(v string) *CommitteeMembershipUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *CommitteeMembershipUpdateOne) SetNillableRole(v *string) *CommitteeMembershipUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *CommitteeMembershipUpdateOne) ClearRole() *CommitteeMembershipUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetJoinedAt sets the "joined_at" field.
func (_u *CommitteeMembershipUpdateOne) SetJoinedAt(v time.Time) *CommitteeMembershipUpdateOne {
	_u.mutation.SetJoinedAt(v)
	return _u
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_u *CommitteeMembershipUpdateOne) SetNillableJoinedAt(v *time.Time) *CommitteeMembershipUpdateOne {
	if v != nil {
		_u.SetJoinedAt(*v)
	}
	return _u
}

// SetLeftAt sets the "left_at" field.
func (_u *CommitteeMembershipUpdateOne) SetLeftAt(v time.Time) *CommitteeMembershipUpdateOne {
	_u.mutation.SetLeftAt(v)
	return _u
}

// SetNillableLeftAt sets the "left_at" field if the given value is not nil.
func (_u *CommitteeMembershipUpdateOne) SetNillableLeftAt(v *time.Time) *CommitteeMembershipUpdateOne {
	if v != nil {
		_u.SetLeftAt(*v)
	}
	return _u
}

// ClearLeftAt clears the value of the "left_at" field.
func (_u *CommitteeMembershipUpdateOne) ClearLeftAt() *CommitteeMembershipUpdateOne {
	_u.mutation.ClearLeftAt()
	return _u
}

// Mutation returns the CommitteeMembershipMutation object of the builder.
func (_u *CommitteeMembershipUpdateOne) Mutation() *CommitteeMembershipMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommitteeMembershipUpdate builder.
func (_u *CommitteeMembershipUpdateOne) Where(ps ...predicate.CommitteeMembership) *CommitteeMembershipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommitteeMembershipUpdateOne) Select(field string, fields ...string) *CommitteeMembershipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommitteeMembership entity.
func (_u *CommitteeMembershipUpdateOne) Save(ctx context.Context) (*CommitteeMembership, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitteeMembershipUpdateOne) SaveX(ctx context.Context) *CommitteeMembership {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommitteeMembershipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitteeMembershipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitteeMembershipUpdateOne) check() error {
	if _u.mutation.CommitteeCleared() && len(_u.mutation.CommitteeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommitteeMembership.committee"`)
	}
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CommitteeMembership.member"`)
	}
	return nil
}

func (_u *CommitteeMembershipUpdateOne) sqlSave(ctx context.Context) (_node *CommitteeMembership, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(committeemembership.Table, committeemembership.Columns, sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommitteeMembership.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, committeemembership.FieldID)
		for _, f := range fields {
			if !committeemembership.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != committeemembership.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(committeemembership.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(committeemembership.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.JoinedAt(); ok {
		_spec.SetField(committeemembership.FieldJoinedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LeftAt(); ok {
		_spec.SetField(committeemembership.FieldLeftAt, field.TypeTime, value)
	}
	if _u.mutation.LeftAtCleared() {
		_spec.ClearField(committeemembership.FieldLeftAt, field.TypeTime)
	}
	_node = &CommitteeMembership{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{committeemembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
