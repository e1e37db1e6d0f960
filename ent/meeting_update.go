// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/ent/predicate"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// MeetingUpdate is the builder for updating Meeting entities.
type MeetingUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingMutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdate) Where(ps ...predicate.Meeting) *MeetingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *MeetingUpdate) SetVendorID(v string) *MeetingUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableVendorID(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MeetingUpdate) SetTitle(v string) *MeetingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableTitle(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *MeetingUpdate) SetDate(v time.Time) *MeetingUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableDate(v *time.Time) *MeetingUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *MeetingUpdate) ClearDate() *MeetingUpdate {
	_u.mutation.ClearDate()
	return _u
}

// SetAgendaURL sets the "agenda_url" field.
func (_u *MeetingUpdate) SetAgendaURL(v string) *MeetingUpdate {
	_u.mutation.SetAgendaURL(v)
	return _u
}

// SetNillableAgendaURL sets the "agenda_url" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableAgendaURL(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetAgendaURL(*v)
	}
	return _u
}

// ClearAgendaURL clears the value of the "agenda_url" field.
func (_u *MeetingUpdate) ClearAgendaURL() *MeetingUpdate {
	_u.mutation.ClearAgendaURL()
	return _u
}

// SetPacketURL sets the "packet_url" field.
func (_u *MeetingUpdate) SetPacketURL(v string) *MeetingUpdate {
	_u.mutation.SetPacketURL(v)
	return _u
}

// SetNillablePacketURL sets the "packet_url" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillablePacketURL(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetPacketURL(*v)
	}
	return _u
}

// ClearPacketURL clears the value of the "packet_url" field.
func (_u *MeetingUpdate) ClearPacketURL() *MeetingUpdate {
	_u.mutation.ClearPacketURL()
	return _u
}

// SetCommitteeID sets the "committee_id" field.
func (_u *MeetingUpdate) SetCommitteeID(v string) *MeetingUpdate {
	_u.mutation.SetCommitteeID(v)
	return _u
}

// SetNillableCommitteeID sets the "committee_id" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableCommitteeID(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetCommitteeID(*v)
	}
	return _u
}

// ClearCommitteeID clears the value of the "committee_id" field.
func (_u *MeetingUpdate) ClearCommitteeID() *MeetingUpdate {
	_u.mutation.ClearCommitteeID()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MeetingUpdate) SetSummary(v string) *MeetingUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableSummary(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *MeetingUpdate) ClearSummary() *MeetingUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetParticipation sets the "participation" field.
func (_u *MeetingUpdate) SetParticipation(v *models.Participation) *MeetingUpdate {
	_u.mutation.SetParticipation(v)
	return _u
}

// ClearParticipation clears the value of the "participation" field.
func (_u *MeetingUpdate) ClearParticipation() *MeetingUpdate {
	_u.mutation.ClearParticipation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MeetingUpdate) SetStatus(v meeting.Status) *MeetingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableStatus(v *meeting.Status) *MeetingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *MeetingUpdate) ClearStatus() *MeetingUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *MeetingUpdate) SetProcessingStatus(v meeting.ProcessingStatus) *MeetingUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableProcessingStatus(v *meeting.ProcessingStatus) *MeetingUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetProcessingMethod sets the "processing_method" field.
func (_u *MeetingUpdate) SetProcessingMethod(v string) *MeetingUpdate {
	_u.mutation.SetProcessingMethod(v)
	return _u
}

// SetNillableProcessingMethod sets the "processing_method" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableProcessingMethod(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetProcessingMethod(*v)
	}
	return _u
}

// ClearProcessingMethod clears the value of the "processing_method" field.
func (_u *MeetingUpdate) ClearProcessingMethod() *MeetingUpdate {
	_u.mutation.ClearProcessingMethod()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *MeetingUpdate) SetProcessingTimeMs(v int) *MeetingUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableProcessingTimeMs(v *int) *MeetingUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *MeetingUpdate) AddProcessingTimeMs(v int) *MeetingUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *MeetingUpdate) ClearProcessingTimeMs() *MeetingUpdate {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *MeetingUpdate) SetTopics(v []string) *MeetingUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *MeetingUpdate) AppendTopics(v []string) *MeetingUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *MeetingUpdate) ClearTopics() *MeetingUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetAttachmentFingerprint sets the "attachment_fingerprint" field.
func (_u *MeetingUpdate) SetAttachmentFingerprint(v string) *MeetingUpdate {
	_u.mutation.SetAttachmentFingerprint(v)
	return _u
}

// SetNillableAttachmentFingerprint sets the "attachment_fingerprint" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableAttachmentFingerprint(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetAttachmentFingerprint(*v)
	}
	return _u
}

// ClearAttachmentFingerprint clears the value of the "attachment_fingerprint" field.
func (_u *MeetingUpdate) ClearAttachmentFingerprint() *MeetingUpdate {
	_u.mutation.ClearAttachmentFingerprint()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MeetingUpdate) SetMetadata(v map[string]interface{}) *MeetingUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MeetingUpdate) ClearMetadata() *MeetingUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MeetingUpdate) SetUpdatedAt(v time.Time) *MeetingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCommittee sets the "committee" edge to the Committee entity.
func (_u *MeetingUpdate) SetCommittee(v *Committee) *MeetingUpdate {
	return _u.SetCommitteeID(v.ID)
}

// AddItemIDs adds the "items" edge to the AgendaItem entity by IDs.
func (_u *MeetingUpdate) AddItemIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the AgendaItem entity.
func (_u *MeetingUpdate) AddItems(v ...*AgendaItem) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_u *MeetingUpdate) AddAppearanceIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddAppearanceIDs(ids...)
	return _u
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_u *MeetingUpdate) AddAppearances(v ...*MatterAppearance) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppearanceIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdate) Mutation() *MeetingMutation {
	return _u.mutation
}

// ClearCommittee clears the "committee" edge to the Committee entity.
func (_u *MeetingUpdate) ClearCommittee() *MeetingUpdate {
	_u.mutation.ClearCommittee()
	return _u
}

// ClearItems clears all "items" edges to the AgendaItem entity.
func (_u *MeetingUpdate) ClearItems() *MeetingUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to AgendaItem entities by IDs.
func (_u *MeetingUpdate) RemoveItemIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to AgendaItem entities.
func (_u *MeetingUpdate) RemoveItems(v ...*AgendaItem) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearAppearances clears all "appearances" edges to the MatterAppearance entity.
func (_u *MeetingUpdate) ClearAppearances() *MeetingUpdate {
	_u.mutation.ClearAppearances()
	return _u
}

// RemoveAppearanceIDs removes the "appearances" edge to MatterAppearance entities by IDs.
func (_u *MeetingUpdate) RemoveAppearanceIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveAppearanceIDs(ids...)
	return _u
}

// RemoveAppearances removes "appearances" edges to MatterAppearance entities.
func (_u *MeetingUpdate) RemoveAppearances(v ...*MatterAppearance) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppearanceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MeetingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := meeting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := meeting.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Meeting.processing_status": %w`, err)}
		}
	}
	if _u.mutation.CityCleared() && len(_u.mutation.CityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Meeting.city"`)
	}
	return nil
}

func (_u *MeetingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(meeting.FieldVendorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(meeting.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(meeting.FieldDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AgendaURL(); ok {
		_spec.SetField(meeting.FieldAgendaURL, field.TypeString, value)
	}
	if _u.mutation.AgendaURLCleared() {
		_spec.ClearField(meeting.FieldAgendaURL, field.TypeString)
	}
	if value, ok := _u.mutation.PacketURL(); ok {
		_spec.SetField(meeting.FieldPacketURL, field.TypeString, value)
	}
	if _u.mutation.PacketURLCleared() {
		_spec.ClearField(meeting.FieldPacketURL, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(meeting.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(meeting.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Participation(); ok {
		_spec.SetField(meeting.FieldParticipation, field.TypeJSON, value)
	}
	if _u.mutation.ParticipationCleared() {
		_spec.ClearField(meeting.FieldParticipation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(meeting.FieldStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(meeting.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingMethod(); ok {
		_spec.SetField(meeting.FieldProcessingMethod, field.TypeString, value)
	}
	if _u.mutation.ProcessingMethodCleared() {
		_spec.ClearField(meeting.FieldProcessingMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(meeting.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(meeting.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(meeting.FieldProcessingTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(meeting.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(meeting.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttachmentFingerprint(); ok {
		_spec.SetField(meeting.FieldAttachmentFingerprint, field.TypeString, value)
	}
	if _u.mutation.AttachmentFingerprintCleared() {
		_spec.ClearField(meeting.FieldAttachmentFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(meeting.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(meeting.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(meeting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CommitteeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommitteeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppearancesIDs(); len(nodes) > 0 && !_u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppearancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingUpdateOne is the builder for updating a single Meeting entity.
type MeetingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *MeetingUpdateOne) SetVendorID(v string) *MeetingUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableVendorID(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MeetingUpdateOne) SetTitle(v string) *MeetingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableTitle(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *MeetingUpdateOne) SetDate(v time.Time) *MeetingUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableDate(v *time.Time) *MeetingUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *MeetingUpdateOne) ClearDate() *MeetingUpdateOne {
	_u.mutation.ClearDate()
	return _u
}

// SetAgendaURL sets the "agenda_url" field.
func (_u *MeetingUpdateOne) SetAgendaURL(v string) *MeetingUpdateOne {
	_u.mutation.SetAgendaURL(v)
	return _u
}

// SetNillableAgendaURL sets the "agenda_url" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableAgendaURL(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetAgendaURL(*v)
	}
	return _u
}

// ClearAgendaURL clears the value of the "agenda_url" field.
func (_u *MeetingUpdateOne) ClearAgendaURL() *MeetingUpdateOne {
	_u.mutation.ClearAgendaURL()
	return _u
}

// SetPacketURL sets the "packet_url" field.
func (_u *MeetingUpdateOne) SetPacketURL(v string) *MeetingUpdateOne {
	_u.mutation.SetPacketURL(v)
	return _u
}

// SetNillablePacketURL sets the "packet_url" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillablePacketURL(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetPacketURL(*v)
	}
	return _u
}

// ClearPacketURL clears the value of the "packet_url" field.
func (_u *MeetingUpdateOne) ClearPacketURL() *MeetingUpdateOne {
	_u.mutation.ClearPacketURL()
	return _u
}

// SetCommitteeID sets the "committee_id" field.
func (_u *MeetingUpdateOne) SetCommitteeID(v string) *MeetingUpdateOne {
	_u.mutation.SetCommitteeID(v)
	return _u
}

// SetNillableCommitteeID sets the "committee_id" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableCommitteeID(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetCommitteeID(*v)
	}
	return _u
}

// ClearCommitteeID clears the value of the "committee_id" field.
func (_u *MeetingUpdateOne) ClearCommitteeID() *MeetingUpdateOne {
	_u.mutation.ClearCommitteeID()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MeetingUpdateOne) SetSummary(v string) *MeetingUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableSummary(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *MeetingUpdateOne) ClearSummary() *MeetingUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetParticipation sets the "participation" field.
func (_u *MeetingUpdateOne) SetParticipation(v *models.Participation) *MeetingUpdateOne {
	_u.mutation.SetParticipation(v)
	return _u
}

// ClearParticipation clears the value of the "participation" field.
func (_u *MeetingUpdateOne) ClearParticipation() *MeetingUpdateOne {
	_u.mutation.ClearParticipation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MeetingUpdateOne) SetStatus(v meeting.Status) *MeetingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableStatus(v *meeting.Status) *MeetingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *MeetingUpdateOne) ClearStatus() *MeetingUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *MeetingUpdateOne) SetProcessingStatus(v meeting.ProcessingStatus) *MeetingUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableProcessingStatus(v *meeting.ProcessingStatus) *MeetingUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetProcessingMethod sets the "processing_method" field.
func (_u *MeetingUpdateOne) SetProcessingMethod(v string) *MeetingUpdateOne {
	_u.mutation.SetProcessingMethod(v)
	return _u
}

// SetNillableProcessingMethod sets the "processing_method" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableProcessingMethod(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetProcessingMethod(*v)
	}
	return _u
}

// ClearProcessingMethod clears the value of the "processing_method" field.
func (_u *MeetingUpdateOne) ClearProcessingMethod() *MeetingUpdateOne {
	_u.mutation.ClearProcessingMethod()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *MeetingUpdateOne) SetProcessingTimeMs(v int) *MeetingUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableProcessingTimeMs(v *int) *MeetingUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *MeetingUpdateOne) AddProcessingTimeMs(v int) *MeetingUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *MeetingUpdateOne) ClearProcessingTimeMs() *MeetingUpdateOne {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *MeetingUpdateOne) SetTopics(v []string) *MeetingUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *MeetingUpdateOne) AppendTopics(v []string) *MeetingUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *MeetingUpdateOne) ClearTopics() *MeetingUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetAttachmentFingerprint sets the "attachment_fingerprint" field.
func (_u *MeetingUpdateOne) SetAttachmentFingerprint(v string) *MeetingUpdateOne {
	_u.mutation.SetAttachmentFingerprint(v)
	return _u
}

// SetNillableAttachmentFingerprint sets the "attachment_fingerprint" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableAttachmentFingerprint(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetAttachmentFingerprint(*v)
	}
	return _u
}

// ClearAttachmentFingerprint clears the value of the "attachment_fingerprint" field.
func (_u *MeetingUpdateOne) ClearAttachmentFingerprint() *MeetingUpdateOne {
	_u.mutation.ClearAttachmentFingerprint()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MeetingUpdateOne) SetMetadata(v map[string]interface{}) *MeetingUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MeetingUpdateOne) ClearMetadata() *MeetingUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MeetingUpdateOne) SetUpdatedAt(v time.Time) *MeetingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCommittee sets the "committee" edge to the Committee entity.
func (_u *MeetingUpdateOne) SetCommittee(v *Committee) *MeetingUpdateOne {
	return _u.SetCommitteeID(v.ID)
}

// AddItemIDs adds the "items" edge to the AgendaItem entity by IDs.
func (_u *MeetingUpdateOne) AddItemIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the AgendaItem entity.
func (_u *MeetingUpdateOne) AddItems(v ...*AgendaItem) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_u *MeetingUpdateOne) AddAppearanceIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddAppearanceIDs(ids...)
	return _u
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_u *MeetingUpdateOne) AddAppearances(v ...*MatterAppearance) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppearanceIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdateOne) Mutation() *MeetingMutation {
	return _u.mutation
}

// ClearCommittee clears the "committee" edge to the Committee entity.
func (_u *MeetingUpdateOne) ClearCommittee() *MeetingUpdateOne {
	_u.mutation.ClearCommittee()
	return _u
}

// ClearItems clears all "items" edges to the AgendaItem entity.
func (_u *MeetingUpdateOne) ClearItems() *MeetingUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to AgendaItem entities by IDs.
func (_u *MeetingUpdateOne) RemoveItemIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to AgendaItem entities.
func (_u *MeetingUpdateOne) RemoveItems(v ...*AgendaItem) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearAppearances clears all "appearances" edges to the MatterAppearance entity.
func (_u *MeetingUpdateOne) ClearAppearances() *MeetingUpdateOne {
	_u.mutation.ClearAppearances()
	return _u
}

// RemoveAppearanceIDs removes the "appearances" edge to MatterAppearance entities by IDs.
func (_u *MeetingUpdateOne) RemoveAppearanceIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveAppearanceIDs(ids...)
	return _u
}

// RemoveAppearances removes "appearances" edges to MatterAppearance entities.
func (_u *MeetingUpdateOne) RemoveAppearances(v ...*MatterAppearance) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppearanceIDs(ids...)
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdateOne) Where(ps ...predicate.Meeting) *MeetingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingUpdateOne) Select(field string, fields ...string) *MeetingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Meeting entity.
func (_u *MeetingUpdateOne) Save(ctx context.Context) (*Meeting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdateOne) SaveX(ctx context.Context) *Meeting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MeetingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := meeting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := meeting.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Meeting.processing_status": %w`, err)}
		}
	}
	if _u.mutation.CityCleared() && len(_u.mutation.CityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Meeting.city"`)
	}
	return nil
}

func (_u *MeetingUpdateOne) sqlSave(ctx context.Context) (_node *Meeting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Meeting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meeting.FieldID)
		for _, f := range fields {
			if !meeting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meeting.FieldID {
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
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(meeting.FieldVendorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(meeting.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(meeting.FieldDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AgendaURL(); ok {
		_spec.SetField(meeting.FieldAgendaURL, field.TypeString, value)
	}
	if _u.mutation.AgendaURLCleared() {
		_spec.ClearField(meeting.FieldAgendaURL, field.TypeString)
	}
	if value, ok := _u.mutation.PacketURL(); ok {
		_spec.SetField(meeting.FieldPacketURL, field.TypeString, value)
	}
	if _u.mutation.PacketURLCleared() {
		_spec.ClearField(meeting.FieldPacketURL, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(meeting.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(meeting.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Participation(); ok {
		_spec.SetField(meeting.FieldParticipation, field.TypeJSON, value)
	}
	if _u.mutation.ParticipationCleared() {
		_spec.ClearField(meeting.FieldParticipation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(meeting.FieldStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(meeting.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingMethod(); ok {
		_spec.SetField(meeting.FieldProcessingMethod, field.TypeString, value)
	}
	if _u.mutation.ProcessingMethodCleared() {
		_spec.ClearField(meeting.FieldProcessingMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(meeting.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(meeting.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(meeting.FieldProcessingTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(meeting.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(meeting.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttachmentFingerprint(); ok {
		_spec.SetField(meeting.FieldAttachmentFingerprint, field.TypeString, value)
	}
	if _u.mutation.AttachmentFingerprintCleared() {
		_spec.ClearField(meeting.FieldAttachmentFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(meeting.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(meeting.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(meeting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CommitteeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommitteeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppearancesIDs(); len(nodes) > 0 && !_u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppearancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Meeting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
