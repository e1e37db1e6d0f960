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
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// AgendaItemCreate is the builder for creating a AgendaItem entity.
type AgendaItemCreate struct {
	config
	mutation *AgendaItemMutation
	hooks    []Hook
}

// SetMeetingID sets the "meeting_id" field.
func (_c *AgendaItemCreate) SetMeetingID(v string) *AgendaItemCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AgendaItemCreate) SetTitle(v string) *AgendaItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *AgendaItemCreate) SetSequence(v int) *AgendaItemCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetAttachments sets the "attachments" field.
func (_c *AgendaItemCreate) SetAttachments(v []models.Attachment) *AgendaItemCreate {
	_c.mutation.SetAttachments(v)
	return _c
}

// SetAttachmentHash sets the "attachment_hash" field.
func (_c *AgendaItemCreate) SetAttachmentHash(v string) *AgendaItemCreate {
	_c.mutation.SetAttachmentHash(v)
	return _c
}

// SetNillableAttachmentHash sets the "attachment_hash" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableAttachmentHash(v *string) *AgendaItemCreate {
	if v != nil {
		_c.SetAttachmentHash(*v)
	}
	return _c
}

// SetMatterID sets the "matter_id" field.
func (_c *AgendaItemCreate) SetMatterID(v string) *AgendaItemCreate {
	_c.mutation.SetMatterID(v)
	return _c
}

// SetNillableMatterID sets the "matter_id" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableMatterID(v *string) *AgendaItemCreate {
	if v != nil {
		_c.SetMatterID(*v)
	}
	return _c
}

// SetMatterFile sets the "matter_file" field.
func (_c *AgendaItemCreate) SetMatterFile(v string) *AgendaItemCreate {
	_c.mutation.SetMatterFile(v)
	return _c
}

// SetNillableMatterFile sets the "matter_file" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableMatterFile(v *string) *AgendaItemCreate {
	if v != nil {
		_c.SetMatterFile(*v)
	}
	return _c
}

// SetMatterType sets the "matter_type" field.
func (_c *AgendaItemCreate) SetMatterType(v string) *AgendaItemCreate {
	_c.mutation.SetMatterType(v)
	return _c
}

// SetNillableMatterType sets the "matter_type" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableMatterType(v *string) *AgendaItemCreate {
	if v != nil {
		_c.SetMatterType(*v)
	}
	return _c
}

// SetAgendaNumber sets the "agenda_number" field.
func (_c *AgendaItemCreate) SetAgendaNumber(v string) *AgendaItemCreate {
	_c.mutation.SetAgendaNumber(v)
	return _c
}

// SetNillableAgendaNumber sets the "agenda_number" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableAgendaNumber(v *string) *AgendaItemCreate {
	if v != nil {
		_c.SetAgendaNumber(*v)
	}
	return _c
}

// SetSponsors sets the "sponsors" field.
func (_c *AgendaItemCreate) SetSponsors(v []string) *AgendaItemCreate {
	_c.mutation.SetSponsors(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AgendaItemCreate) SetSummary(v string) *AgendaItemCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableSummary(v *string) *AgendaItemCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetTopics sets the "topics" field.
func (_c *AgendaItemCreate) SetTopics(v []string) *AgendaItemCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetProcessingMethod sets the "processing_method" field.
func (_c *AgendaItemCreate) SetProcessingMethod(v string) *AgendaItemCreate {
	_c.mutation.SetProcessingMethod(v)
	return _c
}

// SetNillableProcessingMethod sets the "processing_method" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableProcessingMethod(v *string) *AgendaItemCreate {
	if v != nil {
		_c.SetProcessingMethod(*v)
	}
	return _c
}

// SetSummarizedAt sets the "summarized_at" field.
func (_c *AgendaItemCreate) SetSummarizedAt(v time.Time) *AgendaItemCreate {
	_c.mutation.SetSummarizedAt(v)
	return _c
}

// SetNillableSummarizedAt sets the "summarized_at" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableSummarizedAt(v *time.Time) *AgendaItemCreate {
	if v != nil {
		_c.SetSummarizedAt(*v)
	}
	return _c
}

// SetExtractionError sets the "extraction_error" field.
func (_c *AgendaItemCreate) SetExtractionError(v string) *AgendaItemCreate {
	_c.mutation.SetExtractionError(v)
	return _c
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableExtractionError(v *string) *AgendaItemCreate {
	if v != nil {
		_c.SetExtractionError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgendaItemCreate) SetCreatedAt(v time.Time) *AgendaItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableCreatedAt(v *time.Time) *AgendaItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgendaItemCreate) SetUpdatedAt(v time.Time) *AgendaItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgendaItemCreate) SetNillableUpdatedAt(v *time.Time) *AgendaItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgendaItemCreate) SetID(v string) *AgendaItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_c *AgendaItemCreate) SetMeeting(v *Meeting) *AgendaItemCreate {
	return _c.SetMeetingID(v.ID)
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_c *AgendaItemCreate) AddAppearanceIDs(ids ...string) *AgendaItemCreate {
	_c.mutation.AddAppearanceIDs(ids...)
	return _c
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_c *AgendaItemCreate) AddAppearances(v ...*MatterAppearance) *AgendaItemCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppearanceIDs(ids...)
}

// Mutation returns the AgendaItemMutation object of the builder.
func (_c *AgendaItemCreate) Mutation() *AgendaItemMutation {
	return _c.mutation
}

// Save creates the AgendaItem in the database.
func (_c *AgendaItemCreate) Save(ctx context.Context) (*AgendaItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgendaItemCreate) SaveX(ctx context.Context) *AgendaItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgendaItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgendaItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgendaItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agendaitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agendaitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgendaItemCreate) check() error {
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "AgendaItem.meeting_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "AgendaItem.title"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AgendaItem.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgendaItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgendaItem.updated_at"`)}
	}
	if len(_c.mutation.MeetingIDs()) == 0 {
		return &ValidationError{Name: "meeting", err: errors.New(`ent: missing required edge "AgendaItem.meeting"`)}
	}
	return nil
}

func (_c *AgendaItemCreate) sqlSave(ctx context.Context) (*AgendaItem, error) {
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
			return nil, fmt.Errorf("unexpected AgendaItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgendaItemCreate) createSpec() (*AgendaItem, *sqlgraph.CreateSpec) {
	var (
		_node = &AgendaItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agendaitem.Table, sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(agendaitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(agendaitem.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Attachments(); ok {
		_spec.SetField(agendaitem.FieldAttachments, field.TypeJSON, value)
		_node.Attachments = value
	}
	if value, ok := _c.mutation.AttachmentHash(); ok {
		_spec.SetField(agendaitem.FieldAttachmentHash, field.TypeString, value)
		_node.AttachmentHash = value
	}
	if value, ok := _c.mutation.MatterID(); ok {
		_spec.SetField(agendaitem.FieldMatterID, field.TypeString, value)
		_node.MatterID = &value
	}
	if value, ok := _c.mutation.MatterFile(); ok {
		_spec.SetField(agendaitem.FieldMatterFile, field.TypeString, value)
		_node.MatterFile = value
	}
	if value, ok := _c.mutation.MatterType(); ok {
		_spec.SetField(agendaitem.FieldMatterType, field.TypeString, value)
		_node.MatterType = value
	}
	if value, ok := _c.mutation.AgendaNumber(); ok {
		_spec.SetField(agendaitem.FieldAgendaNumber, field.TypeString, value)
		_node.AgendaNumber = value
	}
	if value, ok := _c.mutation.Sponsors(); ok {
		_spec.SetField(agendaitem.FieldSponsors, field.TypeJSON, value)
		_node.Sponsors = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(agendaitem.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(agendaitem.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.ProcessingMethod(); ok {
		_spec.SetField(agendaitem.FieldProcessingMethod, field.TypeString, value)
		_node.ProcessingMethod = value
	}
	if value, ok := _c.mutation.SummarizedAt(); ok {
		_spec.SetField(agendaitem.FieldSummarizedAt, field.TypeTime, value)
		_node.SummarizedAt = &value
	}
	if value, ok := _c.mutation.ExtractionError(); ok {
		_spec.SetField(agendaitem.FieldExtractionError, field.TypeString, value)
		_node.ExtractionError = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agendaitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agendaitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agendaitem.MeetingTable,
			Columns: []string{agendaitem.MeetingColumn},
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
	if nodes := _c.mutation.AppearancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agendaitem.AppearancesTable,
			Columns: []string{agendaitem.AppearancesColumn},
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
	return _node, _spec
}

// AgendaItemCreateBulk is the builder for creating many AgendaItem entities in bulk.
type AgendaItemCreateBulk struct {
	config
	err      error
	builders []*AgendaItemCreate
}

// Save creates the AgendaItem entities in the database.
func (_c *AgendaItemCreateBulk) Save(ctx context.Context) ([]*AgendaItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgendaItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgendaItemMutation)
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
func (_c *AgendaItemCreateBulk) SaveX(ctx context.Context) []*AgendaItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgendaItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgendaItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
