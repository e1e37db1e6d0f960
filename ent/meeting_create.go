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
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// MeetingCreate is the builder for creating a Meeting entity.
type MeetingCreate struct {
	config
	mutation *MeetingMutation
	hooks    []Hook
}

// SetBanana sets the "banana" field.
func (_c *MeetingCreate) SetBanana(v string) *MeetingCreate {
	_c.mutation.SetBanana(v)
	return _c
}

// SetVendorID sets the "vendor_id" field.
func (_c *MeetingCreate) SetVendorID(v string) *MeetingCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MeetingCreate) SetTitle(v string) *MeetingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *MeetingCreate) SetDate(v time.Time) *MeetingCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableDate(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetAgendaURL sets the "agenda_url" field.
func (_c *MeetingCreate) SetAgendaURL(v string) *MeetingCreate {
	_c.mutation.SetAgendaURL(v)
	return _c
}

// SetNillableAgendaURL sets the "agenda_url" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableAgendaURL(v *string) *MeetingCreate {
	if v != nil {
		_c.SetAgendaURL(*v)
	}
	return _c
}

// SetPacketURL sets the "packet_url" field.
func (_c *MeetingCreate) SetPacketURL(v string) *MeetingCreate {
	_c.mutation.SetPacketURL(v)
	return _c
}

// SetNillablePacketURL sets the "packet_url" field if the given value is not nil.
func (_c *MeetingCreate) SetNillablePacketURL(v *string) *MeetingCreate {
	if v != nil {
		_c.SetPacketURL(*v)
	}
	return _c
}

// SetCommitteeID sets the "committee_id" field.
func (_c *MeetingCreate) SetCommitteeID(v string) *MeetingCreate {
	_c.mutation.SetCommitteeID(v)
	return _c
}

// SetNillableCommitteeID sets the "committee_id" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCommitteeID(v *string) *MeetingCreate {
	if v != nil {
		_c.SetCommitteeID(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *MeetingCreate) SetSummary(v string) *MeetingCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableSummary(v *string) *MeetingCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetParticipation sets the "participation" field.
func (_c *MeetingCreate) SetParticipation(v *models.Participation) *MeetingCreate {
	_c.mutation.SetParticipation(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MeetingCreate) SetStatus(v meeting.Status) *MeetingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableStatus(v *meeting.Status) *MeetingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *MeetingCreate) SetProcessingStatus(v meeting.ProcessingStatus) *MeetingCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableProcessingStatus(v *meeting.ProcessingStatus) *MeetingCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetProcessingMethod sets the "processing_method" field.
func (_c *MeetingCreate) SetProcessingMethod(v string) *MeetingCreate {
	_c.mutation.SetProcessingMethod(v)
	return _c
}

// SetNillableProcessingMethod sets the "processing_method" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableProcessingMethod(v *string) *MeetingCreate {
	if v != nil {
		_c.SetProcessingMethod(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *MeetingCreate) SetProcessingTimeMs(v int) *MeetingCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableProcessingTimeMs(v *int) *MeetingCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetTopics sets the "topics" field.
func (_c *MeetingCreate) SetTopics(v []string) *MeetingCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetAttachmentFingerprint sets the "attachment_fingerprint" field.
func (_c *MeetingCreate) SetAttachmentFingerprint(v string) *MeetingCreate {
	_c.mutation.SetAttachmentFingerprint(v)
	return _c
}

// SetNillableAttachmentFingerprint sets the "attachment_fingerprint" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableAttachmentFingerprint(v *string) *MeetingCreate {
	if v != nil {
		_c.SetAttachmentFingerprint(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MeetingCreate) SetMetadata(v map[string]interface{}) *MeetingCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeetingCreate) SetCreatedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCreatedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MeetingCreate) SetUpdatedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableUpdatedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeetingCreate) SetID(v string) *MeetingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCityID sets the "city" edge to the City entity by ID.
func (_c *MeetingCreate) SetCityID(id string) *MeetingCreate {
	_c.mutation.SetCityID(id)
	return _c
}

// SetCity sets the "city" edge to the City entity.
func (_c *MeetingCreate) SetCity(v *City) *MeetingCreate {
	return _c.SetCityID(v.ID)
}

// SetCommittee sets the "committee" edge to the Committee entity.
func (_c *MeetingCreate) SetCommittee(v *Committee) *MeetingCreate {
	return _c.SetCommitteeID(v.ID)
}

// AddItemIDs adds the "items" edge to the AgendaItem entity by IDs.
func (_c *MeetingCreate) AddItemIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the AgendaItem entity.
func (_c *MeetingCreate) AddItems(v ...*AgendaItem) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_c *MeetingCreate) AddAppearanceIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddAppearanceIDs(ids...)
	return _c
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_c *MeetingCreate) AddAppearances(v ...*MatterAppearance) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppearanceIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_c *MeetingCreate) Mutation() *MeetingMutation {
	return _c.mutation
}

// Save creates the Meeting in the database.
func (_c *MeetingCreate) Save(ctx context.Context) (*Meeting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingCreate) SaveX(ctx context.Context) *Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := meeting.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meeting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := meeting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingCreate) check() error {
	if _, ok := _c.mutation.Banana(); !ok {
		return &ValidationError{Name: "banana", err: errors.New(`ent: missing required field "Meeting.banana"`)}
	}
	if _, ok := _c.mutation.VendorID(); !ok {
		return &ValidationError{Name: "vendor_id", err: errors.New(`ent: missing required field "Meeting.vendor_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Meeting.title"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "Meeting.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := meeting.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Meeting.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Meeting.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Meeting.updated_at"`)}
	}
	if len(_c.mutation.CityIDs()) == 0 {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required edge "Meeting.city"`)}
	}
	return nil
}

func (_c *MeetingCreate) sqlSave(ctx context.Context) (*Meeting, error) {
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
			return nil, fmt.Errorf("unexpected Meeting.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingCreate) createSpec() (*Meeting, *sqlgraph.CreateSpec) {
	var (
		_node = &Meeting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meeting.Table, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VendorID(); ok {
		_spec.SetField(meeting.FieldVendorID, field.TypeString, value)
		_node.VendorID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(meeting.FieldDate, field.TypeTime, value)
		_node.Date = &value
	}
	if value, ok := _c.mutation.AgendaURL(); ok {
		_spec.SetField(meeting.FieldAgendaURL, field.TypeString, value)
		_node.AgendaURL = value
	}
	if value, ok := _c.mutation.PacketURL(); ok {
		_spec.SetField(meeting.FieldPacketURL, field.TypeString, value)
		_node.PacketURL = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(meeting.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Participation(); ok {
		_spec.SetField(meeting.FieldParticipation, field.TypeJSON, value)
		_node.Participation = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(meeting.FieldProcessingStatus, field.TypeEnum, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.ProcessingMethod(); ok {
		_spec.SetField(meeting.FieldProcessingMethod, field.TypeString, value)
		_node.ProcessingMethod = value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(meeting.FieldProcessingTimeMs, field.TypeInt, value)
		_node.ProcessingTimeMs = &value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(meeting.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.AttachmentFingerprint(); ok {
		_spec.SetField(meeting.FieldAttachmentFingerprint, field.TypeString, value)
		_node.AttachmentFingerprint = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(meeting.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(meeting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   meeting.CityTable,
			Columns: []string{meeting.CityColumn},
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
	if nodes := _c.mutation.CommitteeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   meeting.CommitteeTable,
			Columns: []string{meeting.CommitteeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(committee.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CommitteeID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.ItemsTable,
			Columns: []string{meeting.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppearancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.AppearancesTable,
			Columns: []string{meeting.AppearancesColumn},
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

// MeetingCreateBulk is the builder for creating many Meeting entities in bulk.
type MeetingCreateBulk struct {
	config
	err      error
	builders []*MeetingCreate
}

// Save creates the Meeting entities in the database.
func (_c *MeetingCreateBulk) Save(ctx context.Context) ([]*Meeting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Meeting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingMutation)
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
func (_c *MeetingCreateBulk) SaveX(ctx context.Context) []*Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
