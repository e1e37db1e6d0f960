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
	"github.com/Engagic/engagic-sub004/ent/predicate"
	"github.com/Engagic/engagic-sub004/ent/vote"
)

// VoteUpdate is the builder for updating Vote entities.
type VoteUpdate struct {
	config
	hooks    []Hook
	mutation *VoteMutation
}

// Where appends a list predicates to the VoteUpdate builder.
func (_u *VoteUpdate) Where(ps ...predicate.Vote) *VoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetValue sets the "value" field.
func (_u *VoteUpdate) SetValue(v vote.Value) *VoteUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableValue(v *vote.Value) *VoteUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetVoteDate sets the "vote_date" field.
func (_u *VoteUpdate) SetVoteDate(v time.Time) *VoteUpdate {
	_u.mutation.SetVoteDate(v)
	return _u
}

// SetNillableVoteDate sets the "vote_date" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableVoteDate(v *time.Time) *VoteUpdate {
	if v != nil {
		_u.SetVoteDate(*v)
	}
	return _u
}

// ClearVoteDate clears the value of the "vote_date" field.
func (_u *VoteUpdate) ClearVoteDate() *VoteUpdate {
	_u.mutation.ClearVoteDate()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *VoteUpdate) SetSequence(v int) *VoteUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableSequence(v *int) *VoteUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *VoteUpdate) AddSequence(v int) *VoteUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// ClearSequence clears the value of the "sequence" field.
func (_u *VoteUpdate) ClearSequence() *VoteUpdate {
	_u.mutation.ClearSequence()
	return _u
}

// Mutation returns the VoteMutation object of the builder.
func (_u *VoteUpdate) Mutation() *VoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoteUpdate) check() error {
	if v, ok := _u.mutation.Value(); ok {
		if err := vote.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Vote.value": %w`, err)}
		}
	}
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vote.member"`)
	}
	if _u.mutation.MatterCleared() && len(_u.mutation.MatterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vote.matter"`)
	}
	return nil
}

func (_u *VoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vote.Table, vote.Columns, sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(vote.FieldValue, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VoteDate(); ok {
		_spec.SetField(vote.FieldVoteDate, field.TypeTime, value)
	}
	if _u.mutation.VoteDateCleared() {
		_spec.ClearField(vote.FieldVoteDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(vote.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(vote.FieldSequence, field.TypeInt, value)
	}
	if _u.mutation.SequenceCleared() {
		_spec.ClearField(vote.FieldSequence, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoteUpdateOne is the builder for updating a single Vote entity.
type VoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoteMutation
}

// SetValue sets the "value" field.
func (_u *VoteUpdateOne) SetValue(v vote.Value) *VoteUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableValue(v *vote.Value) *VoteUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetVoteDate sets the "vote_date" field.
func (_u *VoteUpdateOne) SetVoteDate(v time.Time) *VoteUpdateOne {
	_u.mutation.SetVoteDate(v)
	return _u
}

// SetNillableVoteDate sets the "vote_date" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableVoteDate(v *time.Time) *VoteUpdateOne {
	if v != nil {
		_u.SetVoteDate(*v)
	}
	return _u
}

// ClearVoteDate clears the value of the "vote_date" field.
func (_u *VoteUpdateOne) ClearVoteDate() *VoteUpdateOne {
	_u.mutation.ClearVoteDate()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *VoteUpdateOne) SetSequence(v int) *VoteUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableSequence(v *int) *VoteUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *VoteUpdateOne) AddSequence(v int) *VoteUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// ClearSequence clears the value of the "sequence" field.
func (_u *VoteUpdateOne) ClearSequence() *VoteUpdateOne {
	_u.mutation.ClearSequence()
	return _u
}

// Mutation returns the VoteMutation object of the builder.
func (_u *VoteUpdateOne) Mutation() *VoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the VoteUpdate builder.
func (_u *VoteUpdateOne) Where(ps ...predicate.Vote) *VoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoteUpdateOne) Select(field string, fields ...string) *VoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vote entity.
func (_u *VoteUpdateOne) Save(ctx context.Context) (*Vote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoteUpdateOne) SaveX(ctx context.Context) *Vote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoteUpdateOne) check() error {
	if v, ok := _u.mutation.Value(); ok {
		if err := vote.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Vote.value": %w`, err)}
		}
	}
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vote.member"`)
	}
	if _u.mutation.MatterCleared() && len(_u.mutation.MatterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vote.matter"`)
	}
	return nil
}

func (_u *VoteUpdateOne) sqlSave(ctx context.Context) (_node *Vote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vote.Table, vote.Columns, sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vote.FieldID)
		for _, f := range fields {
			if !vote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vote.FieldID {
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
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(vote.FieldValue, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VoteDate(); ok {
		_spec.SetField(vote.FieldVoteDate, field.TypeTime, value)
	}
	if _u.mutation.VoteDateCleared() {
		_spec.ClearField(vote.FieldVoteDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(vote.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(vote.FieldSequence, field.TypeInt, value)
	}
	if _u.mutation.SequenceCleared() {
		_spec.ClearField(vote.FieldSequence, field.TypeInt)
	}
	_node = &Vote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
