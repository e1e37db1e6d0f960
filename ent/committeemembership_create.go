// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
)

// CommitteeMembershipCreate is the builder for creating a CommitteeMembership entity.
type CommitteeMembershipCreate struct {
	config
	mutation *CommitteeMembershipMutation
	hooks    []Hook
}

// SetCommitteeID sets the "committee_id" field.
func (_c *CommitteeMembershipCreate) SetCommitteeID(v string) *CommitteeMembershipCreate {
	_c.mutation.SetCommitteeID(v)
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *CommitteeMembershipCreate) SetMemberID(v string) *CommitteeMembershipCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *CommitteeMembershipCreate) SetRole(v string) *CommitteeMembershipCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *CommitteeMembershipCreate) SetNillableRole(v *string) *CommitteeMembershipCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetJoinedAt sets the "joined_at" field.
func (_c *CommitteeMembershipCreate) SetJoinedAt(v time.Time) *CommitteeMembershipCreate {
	_c.mutation.SetJoinedAt(v)
	return _c
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_c *CommitteeMembershipCreate) SetNillableJoinedAt(v *time.Time) *CommitteeMembershipCreate {
	if v != nil {
		_c.SetJoinedAt(*v)
	}
	return _c
}

// SetLeftAt sets the "left_at" field.
func (_c *CommitteeMembershipCreate) SetLeftAt(v time.Time) *CommitteeMembershipCreate {
	_c.mutation.SetLeftAt(v)
	return _c
}

// SetNillableLeftAt sets the "left_at" field if the given value is not nil.
func (_c *CommitteeMembershipCreate) SetNillableLeftAt(v *time.Time) *CommitteeMembershipCreate {
	if v != nil {
		_c.SetLeftAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommitteeMembershipCreate) SetID(v string) *CommitteeMembershipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCommittee sets the "committee" edge to the Committee entity.
func (_c *CommitteeMembershipCreate) SetCommittee(v *Committee) *CommitteeMembershipCreate {
	return _c.SetCommitteeID(v.ID)
}

// SetMember sets the "member" edge to the CouncilMember entity.
func (_c *CommitteeMembershipCreate) SetMember(v *CouncilMember) *CommitteeMembershipCreate {
	return _c.SetMemberID(v.ID)
}

// Mutation returns the CommitteeMembershipMutation object of the builder.
func (_c *CommitteeMembershipCreate) Mutation() *CommitteeMembershipMutation {
	return _c.mutation
}

// Save creates the CommitteeMembership in the database.
func (_c *CommitteeMembershipCreate) Save(ctx context.Context) (*CommitteeMembership, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommitteeMembershipCreate) SaveX(ctx context.Context) *CommitteeMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitteeMembershipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitteeMembershipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommitteeMembershipCreate) defaults() {
	if _, ok := _c.mutation.JoinedAt(); !ok {
		v := committeemembership.DefaultJoinedAt()
		_c.mutation.SetJoinedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommitteeMembershipCreate) check() error {
	if _, ok := _c.mutation.CommitteeID(); !ok {
		return &ValidationError{Name: "committee_id", err: errors.New(`ent: missing required field "CommitteeMembership.committee_id"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`ent: missing required field "CommitteeMembership.member_id"`)}
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		return &ValidationError{Name: "joined_at", err: errors.New(`ent: missing required field "CommitteeMembership.joined_at"`)}
	}
	if len(_c.mutation.CommitteeIDs()) == 0 {
		return &ValidationError{Name: "committee", err: errors.New(`ent: missing required edge "CommitteeMembership.committee"`)}
	}
	if len(_c.mutation.MemberIDs()) == 0 {
		return &ValidationError{Name: "member", err: errors.New(`ent: missing required edge "CommitteeMembership.member"`)}
	}
	return nil
}

func (_c *CommitteeMembershipCreate) sqlSave(ctx context.Context) (*CommitteeMembership, error) {
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
			return nil, fmt.Errorf("unexpected CommitteeMembership.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommitteeMembershipCreate) createSpec() (*CommitteeMembership, *sqlgraph.CreateSpec) {
	var (
		_node = &CommitteeMembership{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(committeemembership.Table, sqlgraph.NewFieldSpec(committeemembership.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(committeemembership.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.JoinedAt(); ok {
		_spec.SetField(committeemembership.FieldJoinedAt, field.TypeTime, value)
		_node.JoinedAt = value
	}
	if value, ok := _c.mutation.LeftAt(); ok {
		_spec.SetField(committeemembership.FieldLeftAt, field.TypeTime, value)
		_node.LeftAt = &value
	}
	if nodes := _c.mutation.CommitteeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   committeemembership.CommitteeTable,
			Columns: []string{committeemembership.CommitteeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CommitteeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MemberIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   committeemembership.MemberTable,
			Columns: []string{committeemembership.MemberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MemberID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CommitteeMembershipCreateBulk is the builder for creating many CommitteeMembership entities in bulk.
type CommitteeMembershipCreateBulk struct {
	config
	err      error
	builders []*CommitteeMembershipCreate
}

// Save creates the CommitteeMembership entities in the database.
func (_c *CommitteeMembershipCreateBulk) Save(ctx context.Context) ([]*CommitteeMembership, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommitteeMembership, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommitteeMembershipMutation)
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
func (_c *CommitteeMembershipCreateBulk) SaveX(ctx context.Context) []*CommitteeMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitteeMembershipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitteeMembershipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
