// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/meeting"
)

// CommitteeCreate is the builder for creating a Committee entity.
type CommitteeCreate struct {
	config
	mutation *CommitteeMutation
	hooks    []Hook
}

// SetBanana sets the "banana" field.
func (_c *CommitteeCreate) SetBanana(v string) *CommitteeCreate {
	_c.mutation.SetBanana(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CommitteeCreate) SetName(v string) *CommitteeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *CommitteeCreate) SetNormalizedName(v string) *CommitteeCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetVendorBodyID sets the "vendor_body_id" field.
func (_c *CommitteeCreate) SetVendorBodyID(v string) *CommitteeCreate {
	_c.mutation.SetVendorBodyID(v)
	return _c
}

// SetNillableVendorBodyID sets the "vendor_body_id" field if the given value is not nil.
func (_c *CommitteeCreate) SetNillableVendorBodyID(v *string) *CommitteeCreate {
	if v != nil {
		_c.SetVendorBodyID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommitteeCreate) SetCreatedAt(v time.Time) *CommitteeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommitteeCreate) SetNillableCreatedAt(v *time.Time) *CommitteeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommitteeCreate) SetID(v string) *CommitteeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCityID sets the "city" edge to the City entity by ID.
func (_c *CommitteeCreate) SetCityID(id string) *CommitteeCreate {
	_c.mutation.SetCityID(id)
	return _c
}

// SetCity sets the "city" edge to the City entity.
func (_c *CommitteeCreate) SetCity(v *City) *CommitteeCreate {
	return _c.SetCityID(v.ID)
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_c *CommitteeCreate) AddMeetingIDs(ids ...string) *CommitteeCreate {
	_c.mutation.AddMeetingIDs(ids...)
	return _c
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_c *CommitteeCreate) AddMeetings(v ...*Meeting) *CommitteeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMeetingIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the CommitteeMembership entity by IDs.
func (_c *CommitteeCreate) AddMembershipIDs(ids ...string) *CommitteeCreate {
	_c.mutation.AddMembershipIDs(ids...)
	return _c
}

// AddMemberships adds the "memberships" edges to the CommitteeMembership entity.
func (_c *CommitteeCreate) AddMemberships(v ...*CommitteeMembership) *CommitteeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMembershipIDs(ids...)
}

// Mutation returns the CommitteeMutation object of the builder.
func (_c *CommitteeCreate) Mutation() *CommitteeMutation {
	return _c.mutation
}

// Save creates the Committee in the database.
func (_c *CommitteeCreate) Save(ctx context.Context) (*Committee, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommitteeCreate) SaveX(ctx context.Context) *Committee {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitteeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitteeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommitteeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := committee.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommitteeCreate) check() error {
	if _, ok := _c.mutation.Banana(); !ok {
		return &ValidationError{Name: "banana", err: errors.New(`ent: missing required field "Committee.banana"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Committee.name"`)}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "Committee.normalized_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Committee.created_at"`)}
	}
	if len(_c.mutation.CityIDs()) == 0 {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required edge "Committee.city"`)}
	}
	return nil
}

func (_c *CommitteeCreate) sqlSave(ctx context.Context) (*Committee, error) {
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
			return nil, fmt.Errorf("unexpected Committee.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommitteeCreate) createSpec() (*Committee, *sqlgraph.CreateSpec) {
	var (
		_node = &Committee{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(committee.Table, sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(committee.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(committee.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.VendorBodyID(); ok {
		_spec.SetField(committee.FieldVendorBodyID, field.TypeString, value)
		_node.VendorBodyID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(committee.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   committee.CityTable,
			Columns: []string{committee.CityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(city.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.Banana = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MeetingsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MembershipsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CommitteeCreateBulk is the builder for creating many Committee entities in bulk.
type CommitteeCreateBulk struct {
	config
	err      error
	builders []*CommitteeCreate
}

// Save creates the Committee entities in the database.
func (_c *CommitteeCreateBulk) Save(ctx context.Context) ([]*Committee, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Committee, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommitteeMutation)
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
func (_c *CommitteeCreateBulk) SaveX(ctx context.Context) []*Committee {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitteeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitteeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
