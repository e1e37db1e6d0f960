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
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/vote"
)

// CouncilMemberCreate is the builder for creating a CouncilMember entity.
type CouncilMemberCreate struct {
	config
	mutation *CouncilMemberMutation
	hooks    []Hook
}

// SetBanana sets the "banana" field.
func (_c *CouncilMemberCreate) SetBanana(v string) *CouncilMemberCreate {
	_c.mutation.SetBanana(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CouncilMemberCreate) SetName(v string) *CouncilMemberCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *CouncilMemberCreate) SetNormalizedName(v string) *CouncilMemberCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CouncilMemberCreate) SetTitle(v string) *CouncilMemberCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CouncilMemberCreate) SetNillableTitle(v *string) *CouncilMemberCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDistrict sets the "district" field.
func (_c *CouncilMemberCreate) SetDistrict(v string) *CouncilMemberCreate {
	_c.mutation.SetDistrict(v)
	return _c
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_c *CouncilMemberCreate) SetNillableDistrict(v *string) *CouncilMemberCreate {
	if v != nil {
		_c.SetDistrict(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CouncilMemberCreate) SetStatus(v councilmember.Status) *CouncilMemberCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CouncilMemberCreate) SetNillableStatus(v *councilmember.Status) *CouncilMemberCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *CouncilMemberCreate) SetFirstSeen(v time.Time) *CouncilMemberCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *CouncilMemberCreate) SetNillableFirstSeen(v *time.Time) *CouncilMemberCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *CouncilMemberCreate) SetLastSeen(v time.Time) *CouncilMemberCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *CouncilMemberCreate) SetNillableLastSeen(v *time.Time) *CouncilMemberCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetSponsorshipCount sets the "sponsorship_count" field.
func (_c *CouncilMemberCreate) SetSponsorshipCount(v int) *CouncilMemberCreate {
	_c.mutation.SetSponsorshipCount(v)
	return _c
}

// SetNillableSponsorshipCount sets the "sponsorship_count" field if the given value is not nil.
func (_c *CouncilMemberCreate) SetNillableSponsorshipCount(v *int) *CouncilMemberCreate {
	if v != nil {
		_c.SetSponsorshipCount(*v)
	}
	return _c
}

// SetVoteCount sets the "vote_count" field.
func (_c *CouncilMemberCreate) SetVoteCount(v int) *CouncilMemberCreate {
	_c.mutation.SetVoteCount(v)
	return _c
}

// SetNillableVoteCount sets the "vote_count" field if the given value is not nil.
func (_c *CouncilMemberCreate) SetNillableVoteCount(v *int) *CouncilMemberCreate {
	if v != nil {
		_c.SetVoteCount(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CouncilMemberCreate) SetMetadata(v map[string]interface{}) *CouncilMemberCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CouncilMemberCreate) SetID(v string) *CouncilMemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCityID sets the "city" edge to the City entity by ID.
func (_c *CouncilMemberCreate) SetCityID(id string) *CouncilMemberCreate {
	_c.mutation.SetCityID(id)
	return _c
}

// SetCity sets the "city" edge to the City entity.
func (_c *CouncilMemberCreate) SetCity(v *City) *CouncilMemberCreate {
	return _c.SetCityID(v.ID)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_c *CouncilMemberCreate) AddVoteIDs(ids ...string) *CouncilMemberCreate {
	_c.mutation.AddVoteIDs(ids...)
	return _c
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_c *CouncilMemberCreate) AddVotes(v ...*Vote) *CouncilMemberCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVoteIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the CommitteeMembership entity by IDs.
func (_c *CouncilMemberCreate) AddMembershipIDs(ids ...string) *CouncilMemberCreate {
	_c.mutation.AddMembershipIDs(ids...)
	return _c
}

// AddMemberships adds the "memberships" edges to the CommitteeMembership entity.
func (_c *CouncilMemberCreate) AddMemberships(v ...*CommitteeMembership) *CouncilMemberCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMembershipIDs(ids...)
}

// Mutation returns the CouncilMemberMutation object of the builder.
func (_c *CouncilMemberCreate) Mutation() *CouncilMemberMutation {
	return _c.mutation
}

// Save creates the CouncilMember in the database.
func (_c *CouncilMemberCreate) Save(ctx context.Context) (*CouncilMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CouncilMemberCreate) SaveX(ctx context.Context) *CouncilMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CouncilMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CouncilMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CouncilMemberCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := councilmember.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := councilmember.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := councilmember.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.SponsorshipCount(); !ok {
		v := councilmember.DefaultSponsorshipCount
		_c.mutation.SetSponsorshipCount(v)
	}
	if _, ok := _c.mutation.VoteCount(); !ok {
		v := councilmember.DefaultVoteCount
		_c.mutation.SetVoteCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CouncilMemberCreate) check() error {
	if _, ok := _c.mutation.Banana(); !ok {
		return &ValidationError{Name: "banana", err: errors.New(`ent: missing required field "CouncilMember.banana"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CouncilMember.name"`)}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "CouncilMember.normalized_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CouncilMember.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := councilmember.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CouncilMember.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "CouncilMember.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "CouncilMember.last_seen"`)}
	}
	if _, ok := _c.mutation.SponsorshipCount(); !ok {
		return &ValidationError{Name: "sponsorship_count", err: errors.New(`ent: missing required field "CouncilMember.sponsorship_count"`)}
	}
	if _, ok := _c.mutation.VoteCount(); !ok {
		return &ValidationError{Name: "vote_count", err: errors.New(`ent: missing required field "CouncilMember.vote_count"`)}
	}
	if len(_c.mutation.CityIDs()) == 0 {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required edge "CouncilMember.city"`)}
	}
	return nil
}

func (_c *CouncilMemberCreate) sqlSave(ctx context.Context) (*CouncilMember, error) {
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
			return nil, fmt.Errorf("unexpected CouncilMember.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CouncilMemberCreate) createSpec() (*CouncilMember, *sqlgraph.CreateSpec) {
	var (
		_node = &CouncilMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(councilmember.Table, sqlgraph.NewFieldSpec(councilmember.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(councilmember.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(councilmember.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(councilmember.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.District(); ok {
		_spec.SetField(councilmember.FieldDistrict, field.TypeString, value)
		_node.District = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(councilmember.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(councilmember.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(councilmember.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.SponsorshipCount(); ok {
		_spec.SetField(councilmember.FieldSponsorshipCount, field.TypeInt, value)
		_node.SponsorshipCount = value
	}
	if value, ok := _c.mutation.VoteCount(); ok {
		_spec.SetField(councilmember.FieldVoteCount, field.TypeInt, value)
		_node.VoteCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(councilmember.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.CityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   councilmember.CityTable,
			Columns: []string{councilmember.CityColumn},
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
	if nodes := _c.mutation.VotesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MembershipsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CouncilMemberCreateBulk is the builder for creating many CouncilMember entities in bulk.
type CouncilMemberCreateBulk struct {
	config
	err      error
	builders []*CouncilMemberCreate
}

// Save creates the CouncilMember entities in the database.
func (_c *CouncilMemberCreateBulk) Save(ctx context.Context) ([]*CouncilMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CouncilMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CouncilMemberMutation)
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
func (_c *CouncilMemberCreateBulk) SaveX(ctx context.Context) []*CouncilMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CouncilMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CouncilMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
