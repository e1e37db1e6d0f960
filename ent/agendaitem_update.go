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
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/predicate"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// AgendaItemUpdate is the builder for updating AgendaItem entities.
type AgendaItemUpdate struct {
	config
	hooks    []Hook
	mutation *AgendaItemMutation
}

// Where appends a list predicates to the AgendaItemUpdate builder.
func (_u *AgendaItemUpdate) Where(ps ...predicate.AgendaItem) *AgendaItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AgendaItemUpdate) SetTitle(v string) *AgendaItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableTitle(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *AgendaItemUpdate) SetSequence(v int) *AgendaItemUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableSequence(v *int) *AgendaItemUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *AgendaItemUpdate) AddSequence(v int) *AgendaItemUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *AgendaItemUpdate) SetAttachments(v []models.Attachment) *AgendaItemUpdate {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *AgendaItemUpdate) AppendAttachments(v []models.Attachment) *AgendaItemUpdate {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *AgendaItemUpdate) ClearAttachments() *AgendaItemUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// SetAttachmentHash sets the "attachment_hash" field.
func (_u *AgendaItemUpdate) SetAttachmentHash(v string) *AgendaItemUpdate {
	_u.mutation.SetAttachmentHash(v)
	return _u
}

// SetNillableAttachmentHash sets the "attachment_hash" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableAttachmentHash(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetAttachmentHash(*v)
	}
	return _u
}

// ClearAttachmentHash clears the value of the "attachment_hash" field.
func (_u *AgendaItemUpdate) ClearAttachmentHash() *AgendaItemUpdate {
	_u.mutation.ClearAttachmentHash()
	return _u
}

// SetMatterID sets the "matter_id" field.
func (_u *AgendaItemUpdate) SetMatterID(v string) *AgendaItemUpdate {
	_u.mutation.SetMatterID(v)
	return _u
}

// SetNillableMatterID sets the "matter_id" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableMatterID(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetMatterID(*v)
	}
	return _u
}

// ClearMatterID clears the value of the "matter_id" field.
func (_u *AgendaItemUpdate) ClearMatterID() *AgendaItemUpdate {
	_u.mutation.ClearMatterID()
	return _u
}

// SetMatterFile sets the "matter_file" field.
func (_u *AgendaItemUpdate) SetMatterFile(v string) *AgendaItemUpdate {
	_u.mutation.SetMatterFile(v)
	return _u
}

// SetNillableMatterFile sets the "matter_file" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableMatterFile(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetMatterFile(*v)
	}
	return _u
}

// ClearMatterFile clears the value of the "matter_file" field.
func (_u *AgendaItemUpdate) ClearMatterFile() *AgendaItemUpdate {
	_u.mutation.ClearMatterFile()
	return _u
}

// SetMatterType sets the "matter_type" field.
func (_u *AgendaItemUpdate) SetMatterType(v string) *AgendaItemUpdate {
	_u.mutation.SetMatterType(v)
	return _u
}

// SetNillableMatterType sets the "matter_type" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableMatterType(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetMatterType(*v)
	}
	return _u
}

// ClearMatterType clears the value of the "matter_type" field.
func (_u *AgendaItemUpdate) ClearMatterType() *AgendaItemUpdate {
	_u.mutation.ClearMatterType()
	return _u
}

// SetAgendaNumber sets the "agenda_number" field.
func (_u *AgendaItemUpdate) SetAgendaNumber(v string) *AgendaItemUpdate {
	_u.mutation.SetAgendaNumber(v)
	return _u
}

// SetNillableAgendaNumber sets the "agenda_number" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableAgendaNumber(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetAgendaNumber(*v)
	}
	return _u
}

// ClearAgendaNumber clears the value of the "agenda_number" field.
func (_u *AgendaItemUpdate) ClearAgendaNumber() *AgendaItemUpdate {
	_u.mutation.ClearAgendaNumber()
	return _u
}

// SetSponsors sets the "sponsors" field.
func (_u *AgendaItemUpdate) SetSponsors(v []string) *AgendaItemUpdate {
	_u.mutation.SetSponsors(v)
	return _u
}

// AppendSponsors appends value to the "sponsors" field.
func (_u *AgendaItemUpdate) AppendSponsors(v []string) *AgendaItemUpdate {
	_u.mutation.AppendSponsors(v)
	return _u
}

// ClearSponsors clears the value of the "sponsors" field.
func (_u *AgendaItemUpdate) ClearSponsors() *AgendaItemUpdate {
	_u.mutation.ClearSponsors()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AgendaItemUpdate) SetSummary(v string) *AgendaItemUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableSummary(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AgendaItemUpdate) ClearSummary() *AgendaItemUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *AgendaItemUpdate) SetTopics(v []string) *AgendaItemUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *AgendaItemUpdate) AppendTopics(v []string) *AgendaItemUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *AgendaItemUpdate) ClearTopics() *AgendaItemUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetProcessingMethod sets the "processing_method" field.
func (_u *AgendaItemUpdate) SetProcessingMethod(v string) *AgendaItemUpdate {
	_u.mutation.SetProcessingMethod(v)
	return _u
}

// SetNillableProcessingMethod sets the "processing_method" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableProcessingMethod(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetProcessingMethod(*v)
	}
	return _u
}

// ClearProcessingMethod clears the value of the "processing_method" field.
func (_u *AgendaItemUpdate) ClearProcessingMethod() *AgendaItemUpdate {
	_u.mutation.ClearProcessingMethod()
	return _u
}

// SetSummarizedAt sets the "summarized_at" field.
func (_u *AgendaItemUpdate) SetSummarizedAt(v time.Time) *AgendaItemUpdate {
	_u.mutation.SetSummarizedAt(v)
	return _u
}

// SetNillableSummarizedAt sets the "summarized_at" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableSummarizedAt(v *time.Time) *AgendaItemUpdate {
	if v != nil {
		_u.SetSummarizedAt(*v)
	}
	return _u
}

// ClearSummarizedAt clears the value of the "summarized_at" field.
func (_u *AgendaItemUpdate) ClearSummarizedAt() *AgendaItemUpdate {
	_u.mutation.ClearSummarizedAt()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *AgendaItemUpdate) SetExtractionError(v string) *AgendaItemUpdate {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *AgendaItemUpdate) SetNillableExtractionError(v *string) *AgendaItemUpdate {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *AgendaItemUpdate) ClearExtractionError() *AgendaItemUpdate {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgendaItemUpdate) SetUpdatedAt(v time.Time) *AgendaItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_u *AgendaItemUpdate) AddAppearanceIDs(ids ...string) *AgendaItemUpdate {
	_u.mutation.AddAppearanceIDs(ids...)
	return _u
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_u *AgendaItemUpdate) AddAppearances(v ...*MatterAppearance) *AgendaItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppearanceIDs(ids...)
}

// Mutation returns the AgendaItemMutation object of the builder.
func (_u *AgendaItemUpdate) Mutation() *AgendaItemMutation {
	return _u.mutation
}

// ClearAppearances clears all "appearances" edges to the MatterAppearance entity.
func (_u *AgendaItemUpdate) ClearAppearances() *AgendaItemUpdate {
	_u.mutation.ClearAppearances()
	return _u
}

// RemoveAppearanceIDs removes the "appearances" edge to MatterAppearance entities by IDs.
func (_u *AgendaItemUpdate) RemoveAppearanceIDs(ids ...string) *AgendaItemUpdate {
	_u.mutation.RemoveAppearanceIDs(ids...)
	return _u
}

// RemoveAppearances removes "appearances" edges to MatterAppearance entities.
func (_u *AgendaItemUpdate) RemoveAppearances(v ...*MatterAppearance) *AgendaItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppearanceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgendaItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgendaItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgendaItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgendaItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgendaItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agendaitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgendaItemUpdate) check() error {
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgendaItem.meeting"`)
	}
	return nil
}

func (_u *AgendaItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agendaitem.Table, agendaitem.Columns, sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(agendaitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(agendaitem.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(agendaitem.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(agendaitem.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agendaitem.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(agendaitem.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttachmentHash(); ok {
		_spec.SetField(agendaitem.FieldAttachmentHash, field.TypeString, value)
	}
	if _u.mutation.AttachmentHashCleared() {
		_spec.ClearField(agendaitem.FieldAttachmentHash, field.TypeString)
	}
	if value, ok := _u.mutation.MatterID(); ok {
		_spec.SetField(agendaitem.FieldMatterID, field.TypeString, value)
	}
	if _u.mutation.MatterIDCleared() {
		_spec.ClearField(agendaitem.FieldMatterID, field.TypeString)
	}
	if value, ok := _u.mutation.MatterFile(); ok {
		_spec.SetField(agendaitem.FieldMatterFile, field.TypeString, value)
	}
	if _u.mutation.MatterFileCleared() {
		_spec.ClearField(agendaitem.FieldMatterFile, field.TypeString)
	}
	if value, ok := _u.mutation.MatterType(); ok {
		_spec.SetField(agendaitem.FieldMatterType, field.TypeString, value)
	}
	if _u.mutation.MatterTypeCleared() {
		_spec.ClearField(agendaitem.FieldMatterType, field.TypeString)
	}
	if value, ok := _u.mutation.AgendaNumber(); ok {
		_spec.SetField(agendaitem.FieldAgendaNumber, field.TypeString, value)
	}
	if _u.mutation.AgendaNumberCleared() {
		_spec.ClearField(agendaitem.FieldAgendaNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Sponsors(); ok {
		_spec.SetField(agendaitem.FieldSponsors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSponsors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agendaitem.FieldSponsors, value)
		})
	}
	if _u.mutation.SponsorsCleared() {
		_spec.ClearField(agendaitem.FieldSponsors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(agendaitem.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(agendaitem.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(agendaitem.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agendaitem.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(agendaitem.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingMethod(); ok {
		_spec.SetField(agendaitem.FieldProcessingMethod, field.TypeString, value)
	}
	if _u.mutation.ProcessingMethodCleared() {
		_spec.ClearField(agendaitem.FieldProcessingMethod, field.TypeString)
	}
	if value, ok := _u.mutation.SummarizedAt(); ok {
		_spec.SetField(agendaitem.FieldSummarizedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizedAtCleared() {
		_spec.ClearField(agendaitem.FieldSummarizedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(agendaitem.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(agendaitem.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agendaitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppearancesIDs(); len(nodes) > 0 && !_u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppearancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agendaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgendaItemUpdateOne is the builder for updating a single AgendaItem entity.
type AgendaItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgendaItemMutation
}

// SetTitle sets the "title" field.
func (_u *AgendaItemUpdateOne) SetTitle(v string) *AgendaItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableTitle(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *AgendaItemUpdateOne) SetSequence(v int) *AgendaItemUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableSequence(v *int) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *AgendaItemUpdateOne) AddSequence(v int) *AgendaItemUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *AgendaItemUpdateOne) SetAttachments(v []models.Attachment) *AgendaItemUpdateOne {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *AgendaItemUpdateOne) AppendAttachments(v []models.Attachment) *AgendaItemUpdateOne {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *AgendaItemUpdateOne) ClearAttachments() *AgendaItemUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// SetAttachmentHash sets the "attachment_hash" field.
func (_u *AgendaItemUpdateOne) SetAttachmentHash(v string) *AgendaItemUpdateOne {
	_u.mutation.SetAttachmentHash(v)
	return _u
}

// SetNillableAttachmentHash sets the "attachment_hash" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableAttachmentHash(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetAttachmentHash(*v)
	}
	return _u
}

// ClearAttachmentHash clears the value of the "attachment_hash" field.
func (_u *AgendaItemUpdateOne) ClearAttachmentHash() *AgendaItemUpdateOne {
	_u.mutation.ClearAttachmentHash()
	return _u
}

// SetMatterID sets the "matter_id" field.
func (_u *AgendaItemUpdateOne) SetMatterID(v string) *AgendaItemUpdateOne {
	_u.mutation.SetMatterID(v)
	return _u
}

// SetNillableMatterID sets the "matter_id" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableMatterID(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetMatterID(*v)
	}
	return _u
}

// ClearMatterID clears the value of the "matter_id" field.
func (_u *AgendaItemUpdateOne) ClearMatterID() *AgendaItemUpdateOne {
	_u.mutation.ClearMatterID()
	return _u
}

// SetMatterFile sets the "matter_file" field.
func (_u *AgendaItemUpdateOne) SetMatterFile(v string) *AgendaItemUpdateOne {
	_u.mutation.SetMatterFile(v)
	return _u
}

// SetNillableMatterFile sets the "matter_file" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableMatterFile(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetMatterFile(*v)
	}
	return _u
}

// ClearMatterFile clears the value of the "matter_file" field.
func (_u *AgendaItemUpdateOne) ClearMatterFile() *AgendaItemUpdateOne {
	_u.mutation.ClearMatterFile()
	return _u
}

// SetMatterType sets the "matter_type" field.
func (_u *AgendaItemUpdateOne) SetMatterType(v string) *AgendaItemUpdateOne {
	_u.mutation.SetMatterType(v)
	return _u
}

// SetNillableMatterType sets the "matter_type" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableMatterType(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetMatterType(*v)
	}
	return _u
}

// ClearMatterType clears the value of the "matter_type" field.
func (_u *AgendaItemUpdateOne) ClearMatterType() *AgendaItemUpdateOne {
	_u.mutation.ClearMatterType()
	return _u
}

// SetAgendaNumber sets the "agenda_number" field.
func (_u *AgendaItemUpdateOne) SetAgendaNumber(v string) *AgendaItemUpdateOne {
	_u.mutation.SetAgendaNumber(v)
	return _u
}

// SetNillableAgendaNumber sets the "agenda_number" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableAgendaNumber(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetAgendaNumber(*v)
	}
	return _u
}

// ClearAgendaNumber clears the value of the "agenda_number" field.
func (_u *AgendaItemUpdateOne) ClearAgendaNumber() *AgendaItemUpdateOne {
	_u.mutation.ClearAgendaNumber()
	return _u
}

// SetSponsors sets the "sponsors" field.
func (_u *AgendaItemUpdateOne) SetSponsors(v []string) *AgendaItemUpdateOne {
	_u.mutation.SetSponsors(v)
	return _u
}

// AppendSponsors appends value to the "sponsors" field.
func (_u *AgendaItemUpdateOne) AppendSponsors(v []string) *AgendaItemUpdateOne {
	_u.mutation.AppendSponsors(v)
	return _u
}

// ClearSponsors clears the value of the "sponsors" field.
func (_u *AgendaItemUpdateOne) ClearSponsors() *AgendaItemUpdateOne {
	_u.mutation.ClearSponsors()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AgendaItemUpdateOne) SetSummary(v string) *AgendaItemUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableSummary(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AgendaItemUpdateOne) ClearSummary() *AgendaItemUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *AgendaItemUpdateOne) SetTopics(v []string) *AgendaItemUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *AgendaItemUpdateOne) AppendTopics(v []string) *AgendaItemUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *AgendaItemUpdateOne) ClearTopics() *AgendaItemUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetProcessingMethod sets the "processing_method" field.
func (_u *AgendaItemUpdateOne) SetProcessingMethod(v string) *AgendaItemUpdateOne {
	_u.mutation.SetProcessingMethod(v)
	return _u
}

// SetNillableProcessingMethod sets the "processing_method" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableProcessingMethod(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetProcessingMethod(*v)
	}
	return _u
}

// ClearProcessingMethod clears the value of the "processing_method" field.
func (_u *AgendaItemUpdateOne) ClearProcessingMethod() *AgendaItemUpdateOne {
	_u.mutation.ClearProcessingMethod()
	return _u
}

// SetSummarizedAt sets the "summarized_at" field.
func (_u *AgendaItemUpdateOne) SetSummarizedAt(v time.Time) *AgendaItemUpdateOne {
	_u.mutation.SetSummarizedAt(v)
	return _u
}

// SetNillableSummarizedAt sets the "summarized_at" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableSummarizedAt(v *time.Time) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetSummarizedAt(*v)
	}
	return _u
}

// ClearSummarizedAt clears the value of the "summarized_at" field.
func (_u *AgendaItemUpdateOne) ClearSummarizedAt() *AgendaItemUpdateOne {
	_u.mutation.ClearSummarizedAt()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *AgendaItemUpdateOne) SetExtractionError(v string) *AgendaItemUpdateOne {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *AgendaItemUpdateOne) SetNillableExtractionError(v *string) *AgendaItemUpdateOne {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *AgendaItemUpdateOne) ClearExtractionError() *AgendaItemUpdateOne {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgendaItemUpdateOne) SetUpdatedAt(v time.Time) *AgendaItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_u *AgendaItemUpdateOne) AddAppearanceIDs(ids ...string) *AgendaItemUpdateOne {
	_u.mutation.AddAppearanceIDs(ids...)
	return _u
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_u *AgendaItemUpdateOne) AddAppearances(v ...*MatterAppearance) *AgendaItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppearanceIDs(ids...)
}

// Mutation returns the AgendaItemMutation object of the builder.
func (_u *AgendaItemUpdateOne) Mutation() *AgendaItemMutation {
	return _u.mutation
}

// ClearAppearances clears all "appearances" edges to the MatterAppearance entity.
func (_u *AgendaItemUpdateOne) ClearAppearances() *AgendaItemUpdateOne {
	_u.mutation.ClearAppearances()
	return _u
}

// RemoveAppearanceIDs removes the "appearances" edge to MatterAppearance entities by IDs.
func (_u *AgendaItemUpdateOne) RemoveAppearanceIDs(ids ...string) *AgendaItemUpdateOne {
	_u.mutation.RemoveAppearanceIDs(ids...)
	return _u
}

// RemoveAppearances removes "appearances" edges to MatterAppearance entities.
func (_u *AgendaItemUpdateOne) RemoveAppearances(v ...*MatterAppearance) *AgendaItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppearanceIDs(ids...)
}

// Where appends a list predicates to the AgendaItemUpdate builder.
func (_u *AgendaItemUpdateOne) Where(ps ...predicate.AgendaItem) *AgendaItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgendaItemUpdateOne) Select(field string, fields ...string) *AgendaItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgendaItem entity.
func (_u *AgendaItemUpdateOne) Save(ctx context.Context) (*AgendaItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgendaItemUpdateOne) SaveX(ctx context.Context) *AgendaItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgendaItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgendaItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgendaItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agendaitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgendaItemUpdateOne) check() error {
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgendaItem.meeting"`)
	}
	return nil
}

func (_u *AgendaItemUpdateOne) sqlSave(ctx context.Context) (_node *AgendaItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agendaitem.Table, agendaitem.Columns, sqlgraph.NewFieldSpec(agendaitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgendaItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agendaitem.FieldID)
		for _, f := range fields {
			if !agendaitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agendaitem.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(agendaitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(agendaitem.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(agendaitem.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(agendaitem.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agendaitem.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(agendaitem.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttachmentHash(); ok {
		_spec.SetField(agendaitem.FieldAttachmentHash, field.TypeString, value)
	}
	if _u.mutation.AttachmentHashCleared() {
		_spec.ClearField(agendaitem.FieldAttachmentHash, field.TypeString)
	}
	if value, ok := _u.mutation.MatterID(); ok {
		_spec.SetField(agendaitem.FieldMatterID, field.TypeString, value)
	}
	if _u.mutation.MatterIDCleared() {
		_spec.ClearField(agendaitem.FieldMatterID, field.TypeString)
	}
	if value, ok := _u.mutation.MatterFile(); ok {
		_spec.SetField(agendaitem.FieldMatterFile, field.TypeString, value)
	}
	if _u.mutation.MatterFileCleared() {
		_spec.ClearField(agendaitem.FieldMatterFile, field.TypeString)
	}
	if value, ok := _u.mutation.MatterType(); ok {
		_spec.SetField(agendaitem.FieldMatterType, field.TypeString, value)
	}
	if _u.mutation.MatterTypeCleared() {
		_spec.ClearField(agendaitem.FieldMatterType, field.TypeString)
	}
	if value, ok := _u.mutation.AgendaNumber(); ok {
		_spec.SetField(agendaitem.FieldAgendaNumber, field.TypeString, value)
	}
	if _u.mutation.AgendaNumberCleared() {
		_spec.ClearField(agendaitem.FieldAgendaNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Sponsors(); ok {
		_spec.SetField(agendaitem.FieldSponsors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSponsors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agendaitem.FieldSponsors, value)
		})
	}
	if _u.mutation.SponsorsCleared() {
		_spec.ClearField(agendaitem.FieldSponsors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(agendaitem.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(agendaitem.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(agendaitem.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agendaitem.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(agendaitem.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingMethod(); ok {
		_spec.SetField(agendaitem.FieldProcessingMethod, field.TypeString, value)
	}
	if _u.mutation.ProcessingMethodCleared() {
		_spec.ClearField(agendaitem.FieldProcessingMethod, field.TypeString)
	}
	if value, ok := _u.mutation.SummarizedAt(); ok {
		_spec.SetField(agendaitem.FieldSummarizedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizedAtCleared() {
		_spec.ClearField(agendaitem.FieldSummarizedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(agendaitem.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(agendaitem.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agendaitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppearancesIDs(); len(nodes) > 0 && !_u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppearancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgendaItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agendaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
