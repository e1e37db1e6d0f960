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
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// MatterAppearanceUpdate is the builder for updating MatterAppearance entities.
type MatterAppearanceUpdate struct {
	config
	hooks    []Hook
	mutation *MatterAppearanceMutation
}

// Where appends a list predicates to the MatterAppearanceUpdate builder.
func (_u *MatterAppearanceUpdate) Where(ps ...predicate.MatterAppearance) *MatterAppearanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppearedAt sets the "appeared_at" field.
func (_u *MatterAppearanceUpdate) SetAppearedAt(v time.Time) *MatterAppearanceUpdate {
	_u.mutation.SetAppearedAt(v)
	return _u
}

// SetNillableAppearedAt sets the "appeared_at" field if the given value is not nil.
func (_u *MatterAppearanceUpdate) SetNillableAppearedAt(v *time.Time) *MatterAppearanceUpdate {
	if v != nil {
		_u.SetAppearedAt(*v)
	}
	return _u
}

// SetCommitteeID sets the "committee_id" field.
func (_u *MatterAppearanceUpdate) SetCommitteeID(v string) *MatterAppearanceUpdate {
	_u.mutation.SetCommitteeID(v)
	return _u
}

// SetNillableCommitteeID sets the "committee_id" field if the given value is not nil.
func (_u *MatterAppearanceUpdate) SetNillableCommitteeID(v *string) *MatterAppearanceUpdate {
	if v != nil {
		_u.SetCommitteeID(*v)
	}
	return _u
}

// ClearCommitteeID clears the value of the "committee_id" field.
func (_u *MatterAppearanceUpdate) ClearCommitteeID() *MatterAppearanceUpdate {
	_u.mutation.ClearCommitteeID()
	return _u
}

// SetAction sets the "action" field.
func (_u *MatterAppearanceUpdate) SetAction(v string) *MatterAppearanceUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *MatterAppearanceUpdate) SetNillableAction(v *string) *MatterAppearanceUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *MatterAppearanceUpdate) ClearAction() *MatterAppearanceUpdate {
	_u.mutation.ClearAction()
	return _u
}

// SetVoteOutcome sets the "vote_outcome" field.
func (_u *MatterAppearanceUpdate) SetVoteOutcome(v matterappearance.VoteOutcome) *MatterAppearanceUpdate {
	_u.mutation.SetVoteOutcome(v)
	return _u
}

// SetNillableVoteOutcome sets the "vote_outcome" field if the given value is not nil.
func (_u *MatterAppearanceUpdate) SetNillableVoteOutcome(v *matterappearance.VoteOutcome) *MatterAppearanceUpdate {
	if v != nil {
		_u.SetVoteOutcome(*v)
	}
	return _u
}

// ClearVoteOutcome clears the value of the "vote_outcome" field.
func (_u *MatterAppearanceUpdate) ClearVoteOutcome() *MatterAppearanceUpdate {
	_u.mutation.ClearVoteOutcome()
	return _u
}

// SetVoteTally sets the "vote_tally" field.
func (_u *MatterAppearanceUpdate) SetVoteTally(v map[string]int) *MatterAppearanceUpdate {
	_u.mutation.SetVoteTally(v)
	return _u
}

// ClearVoteTally clears the value of the "vote_tally" field.
func (_u *MatterAppearanceUpdate) ClearVoteTally() *MatterAppearanceUpdate {
	_u.mutation.ClearVoteTally()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *MatterAppearanceUpdate) SetSequence(v int) *MatterAppearanceUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *MatterAppearanceUpdate) SetNillableSequence(v *int) *MatterAppearanceUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *MatterAppearanceUpdate) AddSequence(v int) *MatterAppearanceUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// ClearSequence clears the value of the "sequence" field.
func (_u *MatterAppearanceUpdate) ClearSequence() *MatterAppearanceUpdate {
	_u.mutation.ClearSequence()
	return _u
}

// Mutation returns the MatterAppearanceMutation object of the builder.
func (_u *MatterAppearanceUpdate) Mutation() *MatterAppearanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatterAppearanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatterAppearanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatterAppearanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatterAppearanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatterAppearanceUpdate) check() error {
	if v, ok := _u.mutation.VoteOutcome(); ok {
		if err := matterappearance.VoteOutcomeValidator(v); err != nil {
			return &ValidationError{Name: "vote_outcome", err: fmt.Errorf(`ent: validator failed for field "MatterAppearance.vote_outcome": %w`, err)}
		}
	}
	if _u.mutation.MatterCleared() && len(_u.mutation.MatterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatterAppearance.matter"`)
	}
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatterAppearance.meeting"`)
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatterAppearance.item"`)
	}
	return nil
}

func (_u *MatterAppearanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matterappearance.Table, matterappearance.Columns, sqlgraph.NewFieldSpec(matterappearance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AppearedAt(); ok {
		_spec.SetField(matterappearance.FieldAppearedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CommitteeID(); ok {
		_spec.SetField(matterappearance.FieldCommitteeID, field.TypeString, value)
	}
	if _u.mutation.CommitteeIDCleared() {
		_spec.ClearField(matterappearance.FieldCommitteeID, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(matterappearance.FieldAction, field.TypeString, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(matterappearance.FieldAction, field.TypeString)
	}
	if value, ok := _u.mutation.VoteOutcome(); ok {
		_spec.SetField(matterappearance.FieldVoteOutcome, field.TypeEnum, value)
	}
	if _u.mutation.VoteOutcomeCleared() {
		_spec.ClearField(matterappearance.FieldVoteOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.VoteTally(); ok {
		_spec.SetField(matterappearance.FieldVoteTally, field.TypeJSON, value)
	}
	if _u.mutation.VoteTallyCleared() {
		_spec.ClearField(matterappearance.FieldVoteTally, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(matterappearance.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(matterappearance.FieldSequence, field.TypeInt, value)
	}
	if _u.mutation.SequenceCleared() {
		_spec.ClearField(matterappearance.FieldSequence, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matterappearance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatterAppearanceUpdateOne is the builder for updating a single MatterAppearance entity.
type MatterAppearanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatterAppearanceMutation
}

// SetAppearedAt sets the "appeared_at" field.
func (_u *MatterAppearanceUpdateOne) SetAppearedAt(v time.Time) *MatterAppearanceUpdateOne {
	_u.mutation.SetAppearedAt(v)
	return _u
}

// SetNillableAppearedAt sets the "appeared_at" field if the given value is not nil.
func (_u *MatterAppearanceUpdateOne) SetNillableAppearedAt(v *time.Time) *MatterAppearanceUpdateOne {
	if v != nil {
		_u.SetAppearedAt(*v)
	}
	return _u
}

// SetCommitteeID sets the "committee_id" field.
func (_u *MatterAppearanceUpdateOne) SetCommitteeID(v string) *MatterAppearanceUpdateOne {
	_u.mutation.SetCommitteeID(v)
	return _u
}

// SetNillableCommitteeID sets the "committee_id" field if the given value is not nil.
func (_u *MatterAppearanceUpdateOne) SetNillableCommitteeID(v *string) *MatterAppearanceUpdateOne {
	if v != nil {
		_u.SetCommitteeID(*v)
	}
	return _u
}

// ClearCommitteeID clears the value of the "committee_id" field.
func (_u *MatterAppearanceUpdateOne) ClearCommitteeID() *MatterAppearanceUpdateOne {
	_u.mutation.ClearCommitteeID()
	return _u
}

// SetAction sets the "action" field.
func (_u *MatterAppearanceUpdateOne) SetAction(v string) *MatterAppearanceUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *MatterAppearanceUpdateOne) SetNillableAction(v *string) *MatterAppearanceUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *MatterAppearanceUpdateOne) ClearAction() *MatterAppearanceUpdateOne {
	_u.mutation.ClearAction()
	return _u
}

// SetVoteOutcome sets the "vote_outcome" field.
func (_u *MatterAppearanceUpdateOne) SetVoteOutcome(v matterappearance.VoteOutcome) *MatterAppearanceUpdateOne {
	_u.mutation.SetVoteOutcome(v)
	return _u
}

// SetNillableVoteOutcome sets the "vote_outcome" field if the given value is not nil.
func (_u *MatterAppearanceUpdateOne) SetNillableVoteOutcome(v *matterappearance.VoteOutcome) *MatterAppearanceUpdateOne {
	if v != nil {
		_u.SetVoteOutcome(*v)
	}
	return _u
}

// ClearVoteOutcome clears the value of the "vote_outcome" field.
func (_u *MatterAppearanceUpdateOne) ClearVoteOutcome() *MatterAppearanceUpdateOne {
	_u.mutation.ClearVoteOutcome()
	return _u
}

// SetVoteTally sets the "vote_tally" field.
func (_u *MatterAppearanceUpdateOne) SetVoteTally(v map[string]int) *MatterAppearanceUpdateOne {
	_u.mutation.SetVoteTally(v)
	return _u
}

// ClearVoteTally clears the value of the "vote_tally" field.
func (_u *MatterAppearanceUpdateOne) ClearVoteTally() *MatterAppearanceUpdateOne {
	_u.mutation.ClearVoteTally()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *MatterAppearanceUpdateOne) SetSequence(v int) *MatterAppearanceUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *MatterAppearanceUpdateOne) SetNillableSequence(v *int) *MatterAppearanceUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *MatterAppearanceUpdateOne) AddSequence(v int) *MatterAppearanceUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// ClearSequence clears the value of the "sequence" field.
func (_u *MatterAppearanceUpdateOne) ClearSequence() *MatterAppearanceUpdateOne {
	_u.mutation.ClearSequence()
	return _u
}

// Mutation returns the MatterAppearanceMutation object of the builder.
func (_u *MatterAppearanceUpdateOne) Mutation() *MatterAppearanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the MatterAppearanceUpdate builder.
func (_u *MatterAppearanceUpdateOne) Where(ps ...predicate.MatterAppearance) *MatterAppearanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatterAppearanceUpdateOne) Select(field string, fields ...string) *MatterAppearanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatterAppearance entity.
func (_u *MatterAppearanceUpdateOne) Save(ctx context.Context) (*MatterAppearance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatterAppearanceUpdateOne) SaveX(ctx context.Context) *MatterAppearance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatterAppearanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatterAppearanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatterAppearanceUpdateOne) check() error {
	if v, ok := _u.mutation.VoteOutcome(); ok {
		if err := matterappearance.VoteOutcomeValidator(v); err != nil {
			return &ValidationError{Name: "vote_outcome", err: fmt.Errorf(`ent: validator failed for field "MatterAppearance.vote_outcome": %w`, err)}
		}
	}
	if _u.mutation.MatterCleared() && len(_u.mutation.MatterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatterAppearance.matter"`)
	}
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatterAppearance.meeting"`)
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatterAppearance.item"`)
	}
	return nil
}

func (_u *MatterAppearanceUpdateOne) sqlSave(ctx context.Context) (_node *MatterAppearance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matterappearance.Table, matterappearance.Columns, sqlgraph.NewFieldSpec(matterappearance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatterAppearance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matterappearance.FieldID)
		for _, f := range fields {
			if !matterappearance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matterappearance.FieldID {
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
	if value, ok := _u.mutation.AppearedAt(); ok {
		_spec.SetField(matterappearance.FieldAppearedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CommitteeID(); ok {
		_spec.SetField(matterappearance.FieldCommitteeID, field.TypeString, value)
	}
	if _u.mutation.CommitteeIDCleared() {
		_spec.ClearField(matterappearance.FieldCommitteeID, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(matterappearance.FieldAction, field.TypeString, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(matterappearance.FieldAction, field.TypeString)
	}
	if value, ok := _u.mutation.VoteOutcome(); ok {
		_spec.SetField(matterappearance.FieldVoteOutcome, field.TypeEnum, value)
	}
	if _u.mutation.VoteOutcomeCleared() {
		_spec.ClearField(matterappearance.FieldVoteOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.VoteTally(); ok {
		_spec.SetField(matterappearance.FieldVoteTally, field.TypeJSON, value)
	}
	if _u.mutation.VoteTallyCleared() {
		_spec.ClearField(matterappearance.FieldVoteTally, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(matterappearance.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(matterappearance.FieldSequence, field.TypeInt, value)
	}
	if _u.mutation.SequenceCleared() {
		_spec.ClearField(matterappearance.FieldSequence, field.TypeInt)
	}
	_node = &MatterAppearance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matterappearance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
