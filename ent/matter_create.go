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
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/vote"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// MatterCreate is the builder for creating a Matter entity.
type MatterCreate struct {
	config
	mutation *MatterMutation
	hooks    []Hook
}

// SetBanana sets the "banana" field.
func (_c *MatterCreate) SetBanana(v string) *MatterCreate {
	_c.mutation.SetBanana(v)
	return _c
}

// SetMatterFile sets the "matter_file" field.
func (_c *MatterCreate) SetMatterFile(v string) *MatterCreate {
	_c.mutation.SetMatterFile(v)
	return _c
}

// SetNillableMatterFile sets the "matter_file" field if the given value is not nil.
func (_c *MatterCreate) SetNillableMatterFile(v *string) *MatterCreate {
	if v != nil {
		_c.SetMatterFile(*v)
	}
	return _c
}

// SetMatterType sets the "matter_type" field.
func (_c *MatterCreate) SetMatterType(v string) *MatterCreate {
	_c.mutation.SetMatterType(v)
	return _c
}

// SetNillableMatterType sets the "matter_type" field if the given value is not nil.
func (_c *MatterCreate) SetNillableMatterType(v *string) *MatterCreate {
	if v != nil {
		_c.SetMatterType(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *MatterCreate) SetTitle(v string) *MatterCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSponsors sets the "sponsors" field.
func (_c *MatterCreate) SetSponsors(v []string) *MatterCreate {
	_c.mutation.SetSponsors(v)
	return _c
}

// SetCanonicalSummary sets the "canonical_summary" field.
func (_c *MatterCreate) SetCanonicalSummary(v string) *MatterCreate {
	_c.mutation.SetCanonicalSummary(v)
	return _c
}

// SetNillableCanonicalSummary sets the "canonical_summary" field if the given value is not nil.
func (_c *MatterCreate) SetNillableCanonicalSummary(v *string) *MatterCreate {
	if v != nil {
		_c.SetCanonicalSummary(*v)
	}
	return _c
}

// SetCanonicalTopics sets the "canonical_topics" field.
func (_c *MatterCreate) SetCanonicalTopics(v []string) *MatterCreate {
	_c.mutation.SetCanonicalTopics(v)
	return _c
}

// SetAttachments sets the "attachments" field.
func (_c *MatterCreate) SetAttachments(v []models.Attachment) *MatterCreate {
	_c.mutation.SetAttachments(v)
	return _c
}

// SetAttachmentHash sets the "attachment_hash" field.
func (_c *MatterCreate) SetAttachmentHash(v string) *MatterCreate {
	_c.mutation.SetAttachmentHash(v)
	return _c
}

// SetNillableAttachmentHash sets the "attachment_hash" field if the given value is not nil.
func (_c *MatterCreate) SetNillableAttachmentHash(v *string) *MatterCreate {
	if v != nil {
		_c.SetAttachmentHash(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MatterCreate) SetMetadata(v map[string]interface{}) *MatterCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *MatterCreate) SetFirstSeen(v time.Time) *MatterCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *MatterCreate) SetNillableFirstSeen(v *time.Time) *MatterCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *MatterCreate) SetLastSeen(v time.Time) *MatterCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *MatterCreate) SetNillableLastSeen(v *time.Time) *MatterCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetAppearanceCount sets the "appearance_count" field.
func (_c *MatterCreate) SetAppearanceCount(v int) *MatterCreate {
	_c.mutation.SetAppearanceCount(v)
	return _c
}

// SetNillableAppearanceCount sets the "appearance_count" field if the given value is not nil.
func (_c *MatterCreate) SetNillableAppearanceCount(v *int) *MatterCreate {
	if v != nil {
		_c.SetAppearanceCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MatterCreate) SetStatus(v matter.Status) *MatterCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MatterCreate) SetNillableStatus(v *matter.Status) *MatterCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFinalVoteDate sets the "final_vote_date" field.
func (_c *MatterCreate) SetFinalVoteDate(v time.Time) *MatterCreate {
	_c.mutation.SetFinalVoteDate(v)
	return _c
}

// SetNillableFinalVoteDate sets the "final_vote_date" field if the given value is not nil.
func (_c *MatterCreate) SetNillableFinalVoteDate(v *time.Time) *MatterCreate {
	if v != nil {
		_c.SetFinalVoteDate(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *MatterCreate) SetQualityScore(v float64) *MatterCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *MatterCreate) SetNillableQualityScore(v *float64) *MatterCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MatterCreate) SetID(v string) *MatterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCityID sets the "city" edge to the City entity by ID.
func (_c *MatterCreate) SetCityID(id string) *MatterCreate {
	_c.mutation.SetCityID(id)
	return _c
}

// SetCity sets the "city" edge to the City entity.
func (_c *MatterCreate) SetCity(v *City) *MatterCreate {
	return _c.SetCityID(v.ID)
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_c *MatterCreate) AddAppearanceIDs(ids ...string) *MatterCreate {
	_c.mutation.AddAppearanceIDs(ids...)
	return _c
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_c *MatterCreate) AddAppearances(v ...*MatterAppearance) *MatterCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppearanceIDs(ids...)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_c *MatterCreate) AddVoteIDs(ids ...string) *MatterCreate {
	_c.mutation.AddVoteIDs(ids...)
	return _c
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_c *MatterCreate) AddVotes(v ...*Vote) *MatterCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVoteIDs(ids...)
}

// Mutation returns the MatterMutation object of the builder.
func (_c *MatterCreate) Mutation() *MatterMutation {
	return _c.mutation
}

// Save creates the Matter in the database.
func (_c *MatterCreate) Save(ctx context.Context) (*Matter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatterCreate) SaveX(ctx context.Context) *Matter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatterCreate) defaults() {
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := matter.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := matter.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.AppearanceCount(); !ok {
		v := matter.DefaultAppearanceCount
		_c.mutation.SetAppearanceCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := matter.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatterCreate) check() error {
	if _, ok := _c.mutation.Banana(); !ok {
		return &ValidationError{Name: "banana", err: errors.New(`ent: missing required field "Matter.banana"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Matter.title"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "Matter.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Matter.last_seen"`)}
	}
	if _, ok := _c.mutation.AppearanceCount(); !ok {
		return &ValidationError{Name: "appearance_count", err: errors.New(`ent: missing required field "Matter.appearance_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Matter.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := matter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Matter.status": %w`, err)}
		}
	}
	if len(_c.mutation.CityIDs()) == 0 {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required edge "Matter.city"`)}
	}
	return nil
}

func (_c *MatterCreate) sqlSave(ctx context.Context) (*Matter, error) {
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
			return nil, fmt.Errorf("unexpected Matter.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatterCreate) createSpec() (*Matter, *sqlgraph.CreateSpec) {
	var (
		_node = &Matter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matter.Table, sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MatterFile(); ok {
		_spec.SetField(matter.FieldMatterFile, field.TypeString, value)
		_node.MatterFile = value
	}
	if value, ok := _c.mutation.MatterType(); ok {
		_spec.SetField(matter.FieldMatterType, field.TypeString, value)
		_node.MatterType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(matter.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Sponsors(); ok {
		_spec.SetField(matter.FieldSponsors, field.TypeJSON, value)
		_node.Sponsors = value
	}
	if value, ok := _c.mutation.CanonicalSummary(); ok {
		_spec.SetField(matter.FieldCanonicalSummary, field.TypeString, value)
		_node.CanonicalSummary = &value
	}
	if value, ok := _c.mutation.CanonicalTopics(); ok {
		_spec.SetField(matter.FieldCanonicalTopics, field.TypeJSON, value)
		_node.CanonicalTopics = value
	}
	if value, ok := _c.mutation.Attachments(); ok {
		_spec.SetField(matter.FieldAttachments, field.TypeJSON, value)
		_node.Attachments = value
	}
	if value, ok := _c.mutation.AttachmentHash(); ok {
		_spec.SetField(matter.FieldAttachmentHash, field.TypeString, value)
		_node.AttachmentHash = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(matter.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(matter.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(matter.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.AppearanceCount(); ok {
		_spec.SetField(matter.FieldAppearanceCount, field.TypeInt, value)
		_node.AppearanceCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(matter.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FinalVoteDate(); ok {
		_spec.SetField(matter.FieldFinalVoteDate, field.TypeTime, value)
		_node.FinalVoteDate = &value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(matter.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = &value
	}
	if nodes := _c.mutation.CityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matter.CityTable,
			Columns: []string{matter.CityColumn},
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
	if nodes := _c.mutation.AppearancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matter.AppearancesTable,
			Columns: []string{matter.AppearancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matterappearance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   matter.VotesTable,
			Columns: []string{matter.VotesColumn},
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
	return _node, _spec
}

// MatterCreateBulk is the builder for creating many Matter entities in bulk.
type MatterCreateBulk struct {
	config
	err      error
	builders []*MatterCreate
}

// Save creates the Matter entities in the database.
func (_c *MatterCreateBulk) Save(ctx context.Context) ([]*Matter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Matter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatterMutation)
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
func (_c *MatterCreateBulk) SaveX(ctx context.Context) []*Matter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
