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
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/meeting"
)

// CityCreate is the builder for creating a City entity.
type CityCreate struct {
	config
	mutation *CityMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CityCreate) SetName(v string) *CityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CityCreate) SetState(v string) *CityCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *CityCreate) SetVendor(v string) *CityCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetVendorSlug sets the "vendor_slug" field.
func (_c *CityCreate) SetVendorSlug(v string) *CityCreate {
	_c.mutation.SetVendorSlug(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *CityCreate) SetTimezone(v string) *CityCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *CityCreate) SetNillableTimezone(v *string) *CityCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetCounty sets the "county" field.
func (_c *CityCreate) SetCounty(v string) *CityCreate {
	_c.mutation.SetCounty(v)
	return _c
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_c *CityCreate) SetNillableCounty(v *string) *CityCreate {
	if v != nil {
		_c.SetCounty(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CityCreate) SetStatus(v city.Status) *CityCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CityCreate) SetNillableStatus(v *city.Status) *CityCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPopulation sets the "population" field.
func (_c *CityCreate) SetPopulation(v int) *CityCreate {
	_c.mutation.SetPopulation(v)
	return _c
}

// SetNillablePopulation sets the "population" field if the given value is not nil.
func (_c *CityCreate) SetNillablePopulation(v *int) *CityCreate {
	if v != nil {
		_c.SetPopulation(*v)
	}
	return _c
}

// SetGeometry sets the "geometry" field.
func (_c *CityCreate) SetGeometry(v map[string]interface{}) *CityCreate {
	_c.mutation.SetGeometry(v)
	return _c
}

// SetSyncErrorCount sets the "sync_error_count" field.
func (_c *CityCreate) SetSyncErrorCount(v int) *CityCreate {
	_c.mutation.SetSyncErrorCount(v)
	return _c
}

// SetNillableSyncErrorCount sets the "sync_error_count" field if the given value is not nil.
func (_c *CityCreate) SetNillableSyncErrorCount(v *int) *CityCreate {
	if v != nil {
		_c.SetSyncErrorCount(*v)
	}
	return _c
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_c *CityCreate) SetLastSyncedAt(v time.Time) *CityCreate {
	_c.mutation.SetLastSyncedAt(v)
	return _c
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_c *CityCreate) SetNillableLastSyncedAt(v *time.Time) *CityCreate {
	if v != nil {
		_c.SetLastSyncedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CityCreate) SetCreatedAt(v time.Time) *CityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CityCreate) SetNillableCreatedAt(v *time.Time) *CityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CityCreate) SetUpdatedAt(v time.Time) *CityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CityCreate) SetNillableUpdatedAt(v *time.Time) *CityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CityCreate) SetID(v string) *CityCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_c *CityCreate) AddMeetingIDs(ids ...string) *CityCreate {
	_c.mutation.AddMeetingIDs(ids...)
	return _c
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_c *CityCreate) AddMeetings(v ...*Meeting) *CityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMeetingIDs(ids...)
}

// AddMatterIDs adds the "matters" edge to the Matter entity by IDs.
func (_c *CityCreate) AddMatterIDs(ids ...string) *CityCreate {
	_c.mutation.AddMatterIDs(ids...)
	return _c
}

// AddMatters adds the "matters" edges to the Matter entity.
func (_c *CityCreate) AddMatters(v ...*Matter) *CityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatterIDs(ids...)
}

// AddCouncilMemberIDs adds the "council_members" edge to the CouncilMember entity by IDs.
func (_c *CityCreate) AddCouncilMemberIDs(ids ...string) *CityCreate {
	_c.mutation.AddCouncilMemberIDs(ids...)
	return _c
}

// AddCouncilMembers adds the "council_members" edges to the CouncilMember entity.
func (_c *CityCreate) AddCouncilMembers(v ...*CouncilMember) *CityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCouncilMemberIDs(ids...)
}

// AddCommitteeIDs adds the "committees" edge to the Committee entity by IDs.
func (_c *CityCreate) AddCommitteeIDs(ids ...string) *CityCreate {
	_c.mutation.AddCommitteeIDs(ids...)
	return _c
}

// AddCommittees adds the "committees" edges to the Committee entity.
func (_c *CityCreate) AddCommittees(v ...*Committee) *CityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommitteeIDs(ids...)
}

// Mutation returns the CityMutation object of the builder.
func (_c *CityCreate) Mutation() *CityMutation {
	return _c.mutation
}

// Save creates the City in the database.
func (_c *CityCreate) Save(ctx context.Context) (*City, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CityCreate) SaveX(ctx context.Context) *City {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CityCreate) defaults() {
	if _, ok := _c.mutation.Timezone(); !ok {
		v := city.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := city.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SyncErrorCount(); !ok {
		v := city.DefaultSyncErrorCount
		_c.mutation.SetSyncErrorCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := city.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := city.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CityCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "City.name"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "City.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := city.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "City.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "City.vendor"`)}
	}
	if _, ok := _c.mutation.VendorSlug(); !ok {
		return &ValidationError{Name: "vendor_slug", err: errors.New(`ent: missing required field "City.vendor_slug"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "City.timezone"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "City.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := city.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "City.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SyncErrorCount(); !ok {
		return &ValidationError{Name: "sync_error_count", err: errors.New(`ent: missing required field "City.sync_error_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "City.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "City.updated_at"`)}
	}
	return nil
}

func (_c *CityCreate) sqlSave(ctx context.Context) (*City, error) {
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
			return nil, fmt.Errorf("unexpected City.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CityCreate) createSpec() (*City, *sqlgraph.CreateSpec) {
	var (
		_node = &City{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(city.Table, sqlgraph.NewFieldSpec(city.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(city.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(city.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(city.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.VendorSlug(); ok {
		_spec.SetField(city.FieldVendorSlug, field.TypeString, value)
		_node.VendorSlug = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(city.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.County(); ok {
		_spec.SetField(city.FieldCounty, field.TypeString, value)
		_node.County = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(city.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Population(); ok {
		_spec.SetField(city.FieldPopulation, field.TypeInt, value)
		_node.Population = &value
	}
	if value, ok := _c.mutation.Geometry(); ok {
		_spec.SetField(city.FieldGeometry, field.TypeJSON, value)
		_node.Geometry = value
	}
	if value, ok := _c.mutation.SyncErrorCount(); ok {
		_spec.SetField(city.FieldSyncErrorCount, field.TypeInt, value)
		_node.SyncErrorCount = value
	}
	if value, ok := _c.mutation.LastSyncedAt(); ok {
		_spec.SetField(city.FieldLastSyncedAt, field.TypeTime, value)
		_node.LastSyncedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(city.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(city.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MeetingsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MattersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CouncilMembersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CommitteesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CityCreateBulk is the builder for creating many City entities in bulk.
type CityCreateBulk struct {
	config
	err      error
	builders []*CityCreate
}

// Save creates the City entities in the database.
func (_c *CityCreateBulk) Save(ctx context.Context) ([]*City, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*City, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CityMutation)
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
func (_c *CityCreateBulk) SaveX(ctx context.Context) []*City {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
