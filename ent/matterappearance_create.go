// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
)

// MatterAppearanceCreate is the builder for creating a MatterAppearance entity.
type MatterAppearanceCreate struct {
	config
	mutation *MatterAppearanceMutation
	hooks    []Hook
}

// SetMatterID sets the "matter_id" field.
func (_c *MatterAppearanceCreate) SetMatterID(v string) *MatterAppearanceCreate {
	_c.mutation.SetMatterID(v)
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *MatterAppearanceCreate) SetMeetingID(v string) *MatterAppearanceCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *MatterAppearanceCreate) SetItemID(v string) *MatterAppearanceCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetAppearedAt sets the "appeared_at" field.
func (_c *MatterAppearanceCreate) SetAppearedAt(v time.Time) *MatterAppearanceCreate {
	_c.mutation.SetAppearedAt(v)
	return _c
}

// SetNillableAppearedAt sets the "appeared_at" field if the given value is not nil.
func (_c *MatterAppearanceCreate) SetNillableAppearedAt(v *time.Time) *MatterAppearanceCreate {
	if v != nil {
		_c.SetAppearedAt(*v)
	}
	return _c
}

// SetCommitteeID sets the "committee_id" field.
func (_c *MatterAppearanceCreate) SetCommitteeID(v string) *MatterAppearanceCreate {
	_c.mutation.SetCommitteeID(v)
	return _c
}

// SetNillableCommitteeID sets the "committee_id" field if the given value is not nil.
func (_c *MatterAppearanceCreate) SetNillableCommitteeID(v *string) *MatterAppearanceCreate {
	if v != nil {
		_c.SetCommitteeID(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *MatterAppearanceCreate) SetAction(v string) *MatterAppearanceCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_c *MatterAppearanceCreate) SetNillableAction(v *string) *MatterAppearanceCreate {
	if v != nil {
		_c.SetAction(*v)
	}
	return _c
}

// SetVoteOutcome sets the "vote_outcome" field.
func (_c *MatterAppearanceCreate) SetVoteOutcome(v matterappearance.VoteOutcome) *MatterAppearanceCreate {
	_c.mutation.SetVoteOutcome(v)
	return _c
}

// SetNillableVoteOutcome sets the "vote_outcome" field if the given value is not nil.
func (_c *MatterAppearanceCreate) SetNillableVoteOutcome(v *matterappearance.VoteOutcome) *MatterAppearanceCreate {
	if v != nil {
		_c.SetVoteOutcome(*v)
	}
	return _c
}

// SetVoteTally sets the "vote_tally" field.
func (_c *MatterAppearanceCreate) SetVoteTally(v map[string]int) *MatterAppearanceCreate {
	_c.mutation.SetVoteTally(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *MatterAppearanceCreate) SetSequence(v int) *MatterAppearanceCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_c *MatterAppearanceCreate) SetNillableSequence(v *int) *MatterAppearanceCreate {
	if v != nil {
		_c.SetSequence(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MatterAppearanceCreate) SetID(v string) *MatterAppearanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMatter sets the "matter" edge to the Matter entity.
func (_c *MatterAppearanceCreate) SetMatter(v *Matter) *MatterAppearanceCreate {
	return _c.SetMatterID(v.ID)
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_c *MatterAppearanceCreate) SetMeeting(v *Meeting) *MatterAppearanceCreate {
	return _c.SetMeetingID(v.ID)
}

// SetItem sets the "item" edge to the AgendaItem entity.
func (_c *MatterAppearanceCreate) SetItem(v *AgendaItem) *MatterAppearanceCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the MatterAppearanceMutation object of the builder.
func (_c *MatterAppearanceCreate) Mutation() *MatterAppearanceMutation {
	return _c.mutation
}

// Save creates the MatterAppearance in the database.
func (_c *MatterAppearanceCreate) Save(ctx context.Context) (*MatterAppearance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatterAppearanceCreate) SaveX(ctx context.Context) *MatterAppearance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatterAppearanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatterAppearanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatterAppearanceCreate) defaults() {
	if _, ok := _c.mutation.AppearedAt(); !ok {
		v := matterappearance.DefaultAppearedAt()
		_c.mutation.SetAppearedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatterAppearanceCreate) check() error {
	if _, ok := _c.mutation.MatterID(); !ok {
		return &ValidationError{Name: "matter_id", err: errors.New(`ent: missing required field "MatterAppearance.matter_id"`)}
	}
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "MatterAppearance.meeting_id"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "MatterAppearance.item_id"`)}
	}
	if _, ok := _c.mutation.AppearedAt(); !ok {
		return &ValidationError{Name: "appeared_at", err: errors.New(`ent: missing required field "MatterAppearance.appeared_at"`)}
	}
	if v, ok := _c.mutation.VoteOutcome(); ok {
		if err := matterappearance.VoteOutcomeValidator(v); err != nil {
			return &ValidationError{Name: "vote_outcome", err: fmt.Errorf(`ent: validator failed for field "MatterAppearance.vote_outcome": %w`, err)}
		}
	}
	if len(_c.mutation.MatterIDs()) == 0 {
		return &ValidationError{Name: "matter", err: errors.New(`ent: missing required edge "MatterAppearance.matter"`)}
	}
	if len(_c.mutation.MeetingIDs()) == 0 {
		return &ValidationError{Name: "meeting", err: errors.New(`ent: missing required edge "MatterAppearance.meeting"`)}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "MatterAppearance.item"`)}
	}
	return nil
}

func (_c *MatterAppearanceCreate) sqlSave(ctx context.Context) (*MatterAppearance, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MatterAppearance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatterAppearanceCreate) createSpec() (*MatterAppearance, *sqlgraph.CreateSpec) {
	var (
		_node = &MatterAppearance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matterappearance.Table, sqlgraph.NewFieldSpec(matterappearance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AppearedAt(); ok {
		_spec.SetField(matterappearance.FieldAppearedAt, field.TypeTime, value)
		_node.AppearedAt = value
	}
	if value, ok := _c.mutation.CommitteeID(); ok {
		_spec.SetField(matterappearance.FieldCommitteeID, field.TypeString, value)
		_node.CommitteeID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(matterappearance.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.VoteOutcome(); ok {
		_spec.SetField(matterappearance.FieldVoteOutcome, field.TypeEnum, value)
		_node.VoteOutcome = &value
	}
	if value, ok := _c.mutation.VoteTally(); ok {
		_spec.SetField(matterappearance.FieldVoteTally, field.TypeJSON, value)
		_node.VoteTally = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(matterappearance.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if nodes := _c.mutation.MatterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matterappearance.MatterTable,
			Columns: []string{matterappearance.MatterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MatterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matterappearance.MeetingTable,
			Columns: []string{matterappearance.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MeetingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matterappearance.ItemTable,
			Columns: []string{matterappearance.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MatterAppearanceCreateBulk is the builder for creating many MatterAppearance entities in bulk.
type MatterAppearanceCreateBulk struct {
	config
	err      error
	builders []*MatterAppearanceCreate
}

// Save creates the MatterAppearance entities in the database.
func (_c *MatterAppearanceCreateBulk) Save(ctx context.Context) ([]*MatterAppearance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatterAppearance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatterAppearanceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MatterAppearanceCreateBulk) SaveX(ctx context.Context) []*MatterAppearance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatterAppearanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatterAppearanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
