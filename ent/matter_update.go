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
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/predicate"
	"github.com/Engagic/engagic-sub004/ent/vote"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// MatterUpdate is the builder for updating Matter entities.
type MatterUpdate struct {
	config
	hooks    []Hook
	mutation *MatterMutation
}

// Where appends a list predicates to the MatterUpdate builder.
func (_u *MatterUpdate) Where(ps ...predicate.Matter) *MatterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMatterFile sets the "matter_file" field.
func (_u *MatterUpdate) SetMatterFile(v string) *MatterUpdate {
	_u.mutation.SetMatterFile(v)
	return _u
}

// SetNillableMatterFile sets the "matter_file" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableMatterFile(v *string) *MatterUpdate {
	if v != nil {
		_u.SetMatterFile(*v)
	}
	return _u
}

// ClearMatterFile clears the value of the "matter_file" field.
func (_u *MatterUpdate) ClearMatterFile() *MatterUpdate {
	_u.mutation.ClearMatterFile()
	return _u
}

// SetMatterType sets the "matter_type" field.
func (_u *MatterUpdate) SetMatterType(v string) *MatterUpdate {
	_u.mutation.SetMatterType(v)
	return _u
}

// SetNillableMatterType sets the "matter_type" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableMatterType(v *string) *MatterUpdate {
	if v != nil {
		_u.SetMatterType(*v)
	}
	return _u
}

// ClearMatterType clears the value of the "matter_type" field.
func (_u *MatterUpdate) ClearMatterType() *MatterUpdate {
	_u.mutation.ClearMatterType()
	return _u
}

// SetTitle sets the "title" field.
func (_u *MatterUpdate) SetTitle(v string) *MatterUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableTitle(v *string) *MatterUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSponsors sets the "sponsors" field.
func (_u *MatterUpdate) SetSponsors(v []string) *MatterUpdate {
	_u.mutation.SetSponsors(v)
	return _u
}

// AppendSponsors appends value to the "sponsors" field.
func (_u *MatterUpdate) AppendSponsors(v []string) *MatterUpdate {
	_u.mutation.AppendSponsors(v)
	return _u
}

// ClearSponsors clears the value of the "sponsors" field.
func (_u *MatterUpdate) ClearSponsors() *MatterUpdate {
	_u.mutation.ClearSponsors()
	return _u
}

// SetCanonicalSummary sets the "canonical_summary" field.
func (_u *MatterUpdate) SetCanonicalSummary(v string) *MatterUpdate {
	_u.mutation.SetCanonicalSummary(v)
	return _u
}

// SetNillableCanonicalSummary sets the "canonical_summary" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableCanonicalSummary(v *string) *MatterUpdate {
	if v != nil {
		_u.SetCanonicalSummary(*v)
	}
	return _u
}

// ClearCanonicalSummary clears the value of the "canonical_summary" field.
func (_u *MatterUpdate) ClearCanonicalSummary() *MatterUpdate {
	_u.mutation.ClearCanonicalSummary()
	return _u
}

// SetCanonicalTopics sets the "canonical_topics" field.
func (_u *MatterUpdate) SetCanonicalTopics(v []string) *MatterUpdate {
	_u.mutation.SetCanonicalTopics(v)
	return _u
}

// AppendCanonicalTopics appends value to the "canonical_topics" field.
func (_u *MatterUpdate) AppendCanonicalTopics(v []string) *MatterUpdate {
	_u.mutation.AppendCanonicalTopics(v)
	return _u
}

// ClearCanonicalTopics clears the value of the "canonical_topics" field.
func (_u *MatterUpdate) ClearCanonicalTopics() *MatterUpdate {
	_u.mutation.ClearCanonicalTopics()
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *MatterUpdate) SetAttachments(v []models.Attachment) *MatterUpdate {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *MatterUpdate) AppendAttachments(v []models.Attachment) *MatterUpdate {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *MatterUpdate) ClearAttachments() *MatterUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// SetAttachmentHash sets the "attachment_hash" field.
func (_u *MatterUpdate) SetAttachmentHash(v string) *MatterUpdate {
	_u.mutation.SetAttachmentHash(v)
	return _u
}

// SetNillableAttachmentHash sets the "attachment_hash" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableAttachmentHash(v *string) *MatterUpdate {
	if v != nil {
		_u.SetAttachmentHash(*v)
	}
	return _u
}

// ClearAttachmentHash clears the value of the "attachment_hash" field.
func (_u *MatterUpdate) ClearAttachmentHash() *MatterUpdate {
	_u.mutation.ClearAttachmentHash()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MatterUpdate) SetMetadata(v map[string]interface{}) *MatterUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MatterUpdate) ClearMetadata() *MatterUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MatterUpdate) SetLastSeen(v time.Time) *MatterUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableLastSeen(v *time.Time) *MatterUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetAppearanceCount sets the "appearance_count" field.
func (_u *MatterUpdate) SetAppearanceCount(v int) *MatterUpdate {
	_u.mutation.ResetAppearanceCount()
	_u.mutation.SetAppearanceCount(v)
	return _u
}

// SetNillableAppearanceCount sets the "appearance_count" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableAppearanceCount(v *int) *MatterUpdate {
	if v != nil {
		_u.SetAppearanceCount(*v)
	}
	return _u
}

// AddAppearanceCount adds value to the "appearance_count" field.
func (_u *MatterUpdate) AddAppearanceCount(v int) *MatterUpdate {
	_u.mutation.AddAppearanceCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatterUpdate) SetStatus(v matter.Status) *MatterUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableStatus(v *matter.Status) *MatterUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalVoteDate sets the "final_vote_date" field.
func (_u *MatterUpdate) SetFinalVoteDate(v time.Time) *MatterUpdate {
	_u.mutation.SetFinalVoteDate(v)
	return _u
}

// SetNillableFinalVoteDate sets the "final_vote_date" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableFinalVoteDate(v *time.Time) *MatterUpdate {
	if v != nil {
		_u.SetFinalVoteDate(*v)
	}
	return _u
}

// ClearFinalVoteDate clears the value of the "final_vote_date" field.
func (_u *MatterUpdate) ClearFinalVoteDate() *MatterUpdate {
	_u.mutation.ClearFinalVoteDate()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *MatterUpdate) SetQualityScore(v float64) *MatterUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *MatterUpdate) SetNillableQualityScore(v *float64) *MatterUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *MatterUpdate) AddQualityScore(v float64) *MatterUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *MatterUpdate) ClearQualityScore() *MatterUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_u *MatterUpdate) AddAppearanceIDs(ids ...string) *MatterUpdate {
	_u.mutation.AddAppearanceIDs(ids...)
	return _u
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_u *MatterUpdate) AddAppearances(v ...*MatterAppearance) *MatterUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppearanceIDs(ids...)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_u *MatterUpdate) AddVoteIDs(ids ...string) *MatterUpdate {
	_u.mutation.AddVoteIDs(ids...)
	return _u
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_u *MatterUpdate) AddVotes(v ...*Vote) *MatterUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoteIDs(ids...)
}

// Mutation returns the MatterMutation object of the builder.
func (_u *MatterUpdate) Mutation() *MatterMutation {
	return _u.mutation
}

// ClearAppearances clears all "appearances" edges to the MatterAppearance entity.
func (_u *MatterUpdate) ClearAppearances() *MatterUpdate {
	_u.mutation.ClearAppearances()
	return _u
}

// RemoveAppearanceIDs removes the "appearances" edge to MatterAppearance entities by IDs.
func (_u *MatterUpdate) RemoveAppearanceIDs(ids ...string) *MatterUpdate {
	_u.mutation.RemoveAppearanceIDs(ids...)
	return _u
}

// RemoveAppearances removes "appearances" edges to MatterAppearance entities.
func (_u *MatterUpdate) RemoveAppearances(v ...*MatterAppearance) *MatterUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppearanceIDs(ids...)
}

// ClearVotes clears all "votes" edges to the Vote entity.
func (_u *MatterUpdate) ClearVotes() *MatterUpdate {
	_u.mutation.ClearVotes()
	return _u
}

// RemoveVoteIDs removes the "votes" edge to Vote entities by IDs.
func (_u *MatterUpdate) RemoveVoteIDs(ids ...string) *MatterUpdate {
	_u.mutation.RemoveVoteIDs(ids...)
	return _u
}

// RemoveVotes removes "votes" edges to Vote entities.
func (_u *MatterUpdate) RemoveVotes(v ...*Vote) *MatterUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatterUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := matter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Matter.status": %w`, err)}
		}
	}
	if _u.mutation.CityCleared() && len(_u.mutation.CityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Matter.city"`)
	}
	return nil
}

func (_u *MatterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matter.Table, matter.Columns, sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MatterFile(); ok {
		_spec.SetField(matter.FieldMatterFile, field.TypeString, value)
	}
	if _u.mutation.MatterFileCleared() {
		_spec.ClearField(matter.FieldMatterFile, field.TypeString)
	}
	if value, ok := _u.mutation.MatterType(); ok {
		_spec.SetField(matter.FieldMatterType, field.TypeString, value)
	}
	if _u.mutation.MatterTypeCleared() {
		_spec.ClearField(matter.FieldMatterType, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(matter.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sponsors(); ok {
		_spec.SetField(matter.FieldSponsors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSponsors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matter.FieldSponsors, value)
		})
	}
	if _u.mutation.SponsorsCleared() {
		_spec.ClearField(matter.FieldSponsors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CanonicalSummary(); ok {
		_spec.SetField(matter.FieldCanonicalSummary, field.TypeString, value)
	}
	if _u.mutation.CanonicalSummaryCleared() {
		_spec.ClearField(matter.FieldCanonicalSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CanonicalTopics(); ok {
		_spec.SetField(matter.FieldCanonicalTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCanonicalTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matter.FieldCanonicalTopics, value)
		})
	}
	if _u.mutation.CanonicalTopicsCleared() {
		_spec.ClearField(matter.FieldCanonicalTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(matter.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matter.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(matter.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttachmentHash(); ok {
		_spec.SetField(matter.FieldAttachmentHash, field.TypeString, value)
	}
	if _u.mutation.AttachmentHashCleared() {
		_spec.ClearField(matter.FieldAttachmentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(matter.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(matter.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(matter.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppearanceCount(); ok {
		_spec.SetField(matter.FieldAppearanceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppearanceCount(); ok {
		_spec.AddField(matter.FieldAppearanceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(matter.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalVoteDate(); ok {
		_spec.SetField(matter.FieldFinalVoteDate, field.TypeTime, value)
	}
	if _u.mutation.FinalVoteDateCleared() {
		_spec.ClearField(matter.FieldFinalVoteDate, field.TypeTime)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(matter.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(matter.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(matter.FieldQualityScore, field.TypeFloat64)
	}
	if _u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppearancesIDs(); len(nodes) > 0 && !_u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppearancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotesIDs(); len(nodes) > 0 && !_u.mutation.VotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatterUpdateOne is the builder for updating a single Matter entity.
type MatterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatterMutation
}

// SetMatterFile sets the "matter_file" field.
func (_u *MatterUpdateOne) SetMatterFile(v string) *MatterUpdateOne {
	_u.mutation.SetMatterFile(v)
	return _u
}

// SetNillableMatterFile sets the "matter_file" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableMatterFile(v *string) *MatterUpdateOne {
	if v != nil {
		_u.SetMatterFile(*v)
	}
	return _u
}

// ClearMatterFile clears the value of the "matter_file" field.
func (_u *MatterUpdateOne) ClearMatterFile() *MatterUpdateOne {
	_u.mutation.ClearMatterFile()
	return _u
}

// SetMatterType sets the "matter_type" field.
func (_u *MatterUpdateOne) SetMatterType(v string) *MatterUpdateOne {
	_u.mutation.SetMatterType(v)
	return _u
}

// SetNillableMatterType sets the "matter_type" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableMatterType(v *string) *MatterUpdateOne {
	if v != nil {
		_u.SetMatterType(*v)
	}
	return _u
}

// ClearMatterType clears the value of the "matter_type" field.
func (_u *MatterUpdateOne) ClearMatterType() *MatterUpdateOne {
	_u.mutation.ClearMatterType()
	return _u
}

// SetTitle sets the "title" field.
func (_u *MatterUpdateOne) SetTitle(v string) *MatterUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableTitle(v *string) *MatterUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSponsors sets the "sponsors" field.
func (_u *MatterUpdateOne) SetSponsors(v []string) *MatterUpdateOne {
	_u.mutation.SetSponsors(v)
	return _u
}

// AppendSponsors appends value to the "sponsors" field.
func (_u *MatterUpdateOne) AppendSponsors(v []string) *MatterUpdateOne {
	_u.mutation.AppendSponsors(v)
	return _u
}

// ClearSponsors clears the value of the "sponsors" field.
func (_u *MatterUpdateOne) ClearSponsors() *MatterUpdateOne {
	_u.mutation.ClearSponsors()
	return _u
}

// SetCanonicalSummary sets the "canonical_summary" field.
func (_u *MatterUpdateOne) SetCanonicalSummary(v string) *MatterUpdateOne {
	_u.mutation.SetCanonicalSummary(v)
	return _u
}

// SetNillableCanonicalSummary sets the "canonical_summary" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableCanonicalSummary(v *string) *MatterUpdateOne {
	if v != nil {
		_u.SetCanonicalSummary(*v)
	}
	return _u
}

// ClearCanonicalSummary clears the value of the "canonical_summary" field.
func (_u *MatterUpdateOne) ClearCanonicalSummary() *MatterUpdateOne {
	_u.mutation.ClearCanonicalSummary()
	return _u
}

// SetCanonicalTopics sets the "canonical_topics" field.
func (_u *MatterUpdateOne) SetCanonicalTopics(v []string) *MatterUpdateOne {
	_u.mutation.SetCanonicalTopics(v)
	return _u
}

// AppendCanonicalTopics appends value to the "canonical_topics" field.
func (_u *MatterUpdateOne) AppendCanonicalTopics(v []string) *MatterUpdateOne {
	_u.mutation.AppendCanonicalTopics(v)
	return _u
}

// ClearCanonicalTopics clears the value of the "canonical_topics" field.
func (_u *MatterUpdateOne) ClearCanonicalTopics() *MatterUpdateOne {
	_u.mutation.ClearCanonicalTopics()
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *MatterUpdateOne) SetAttachments(v []models.Attachment) *MatterUpdateOne {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *MatterUpdateOne) AppendAttachments(v []models.Attachment) *MatterUpdateOne {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *MatterUpdateOne) ClearAttachments() *MatterUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// SetAttachmentHash sets the "attachment_hash" field.
func (_u *MatterUpdateOne) SetAttachmentHash(v string) *MatterUpdateOne {
	_u.mutation.SetAttachmentHash(v)
	return _u
}

// SetNillableAttachmentHash sets the "attachment_hash" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableAttachmentHash(v *string) *MatterUpdateOne {
	if v != nil {
		_u.SetAttachmentHash(*v)
	}
	return _u
}

// ClearAttachmentHash clears the value of the "attachment_hash" field.
func (_u *MatterUpdateOne) ClearAttachmentHash() *MatterUpdateOne {
	_u.mutation.ClearAttachmentHash()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MatterUpdateOne) SetMetadata(v map[string]interface{}) *MatterUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MatterUpdateOne) ClearMetadata() *MatterUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MatterUpdateOne) SetLastSeen(v time.Time) *MatterUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableLastSeen(v *time.Time) *MatterUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetAppearanceCount sets the "appearance_count" field.
func (_u *MatterUpdateOne) SetAppearanceCount(v int) *MatterUpdateOne {
	_u.mutation.ResetAppearanceCount()
	_u.mutation.SetAppearanceCount(v)
	return _u
}

// SetNillableAppearanceCount sets the "appearance_count" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableAppearanceCount(v *int) *MatterUpdateOne {
	if v != nil {
		_u.SetAppearanceCount(*v)
	}
	return _u
}

// AddAppearanceCount adds value to the "appearance_count" field.
func (_u *MatterUpdateOne) AddAppearanceCount(v int) *MatterUpdateOne {
	_u.mutation.AddAppearanceCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatterUpdateOne) SetStatus(v matter.Status) *MatterUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableStatus(v *matter.Status) *MatterUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalVoteDate sets the "final_vote_date" field.
func (_u *MatterUpdateOne) SetFinalVoteDate(v time.Time) *MatterUpdateOne {
	_u.mutation.SetFinalVoteDate(v)
	return _u
}

// SetNillableFinalVoteDate sets the "final_vote_date" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableFinalVoteDate(v *time.Time) *MatterUpdateOne {
	if v != nil {
		_u.SetFinalVoteDate(*v)
	}
	return _u
}

// ClearFinalVoteDate clears the value of the "final_vote_date" field.
func (_u *MatterUpdateOne) ClearFinalVoteDate() *MatterUpdateOne {
	_u.mutation.ClearFinalVoteDate()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *MatterUpdateOne) SetQualityScore(v float64) *MatterUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *MatterUpdateOne) SetNillableQualityScore(v *float64) *MatterUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *MatterUpdateOne) AddQualityScore(v float64) *MatterUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *MatterUpdateOne) ClearQualityScore() *MatterUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by IDs.
func (_u *MatterUpdateOne) AddAppearanceIDs(ids ...string) *MatterUpdateOne {
	_u.mutation.AddAppearanceIDs(ids...)
	return _u
}

// AddAppearances adds the "appearances" edges to the MatterAppearance entity.
func (_u *MatterUpdateOne) AddAppearances(v ...*MatterAppearance) *MatterUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppearanceIDs(ids...)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (_u *MatterUpdateOne) AddVoteIDs(ids ...string) *MatterUpdateOne {
	_u.mutation.AddVoteIDs(ids...)
	return _u
}

// AddVotes adds the "votes" edges to the Vote entity.
func (_u *MatterUpdateOne) AddVotes(v ...*Vote) *MatterUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVoteIDs(ids...)
}

// Mutation returns the MatterMutation object of the builder.
func (_u *MatterUpdateOne) Mutation() *MatterMutation {
	return _u.mutation
}

// ClearAppearances clears all "appearances" edges to the MatterAppearance entity.
func (_u *MatterUpdateOne) ClearAppearances() *MatterUpdateOne {
	_u.mutation.ClearAppearances()
	return _u
}

// RemoveAppearanceIDs removes the "appearances" edge to MatterAppearance entities by IDs.
func (_u *MatterUpdateOne) RemoveAppearanceIDs(ids ...string) *MatterUpdateOne {
	_u.mutation.RemoveAppearanceIDs(ids...)
	return _u
}

// RemoveAppearances removes "appearances" edges to MatterAppearance entities.
func (_u *MatterUpdateOne) RemoveAppearances(v ...*MatterAppearance) *MatterUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppearanceIDs(ids...)
}

// ClearVotes clears all "votes" edges to the Vote entity.
func (_u *MatterUpdateOne) ClearVotes() *MatterUpdateOne {
	_u.mutation.ClearVotes()
	return _u
}

// RemoveVoteIDs removes the "votes" edge to Vote entities by IDs.
func (_u *MatterUpdateOne) RemoveVoteIDs(ids ...string) *MatterUpdateOne {
	_u.mutation.RemoveVoteIDs(ids...)
	return _u
}

// RemoveVotes removes "votes" edges to Vote entities.
func (_u *MatterUpdateOne) RemoveVotes(v ...*Vote) *MatterUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVoteIDs(ids...)
}

// Where appends a list predicates to the MatterUpdate builder.
func (_u *MatterUpdateOne) Where(ps ...predicate.Matter) *MatterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatterUpdateOne) Select(field string, fields ...string) *MatterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Matter entity.
func (_u *MatterUpdateOne) Save(ctx context.Context) (*Matter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatterUpdateOne) SaveX(ctx context.Context) *Matter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatterUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := matter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Matter.status": %w`, err)}
		}
	}
	if _u.mutation.CityCleared() && len(_u.mutation.CityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Matter.city"`)
	}
	return nil
}

func (_u *MatterUpdateOne) sqlSave(ctx context.Context) (_node *Matter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matter.Table, matter.Columns, sqlgraph.NewFieldSpec(matter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Matter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matter.FieldID)
		for _, f := range fields {
			if !matter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matter.FieldID {
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
	if value, ok := _u.mutation.MatterFile(); ok {
		_spec.SetField(matter.FieldMatterFile, field.TypeString, value)
	}
	if _u.mutation.MatterFileCleared() {
		_spec.ClearField(matter.FieldMatterFile, field.TypeString)
	}
	if value, ok := _u.mutation.MatterType(); ok {
		_spec.SetField(matter.FieldMatterType, field.TypeString, value)
	}
	if _u.mutation.MatterTypeCleared() {
		_spec.ClearField(matter.FieldMatterType, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(matter.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sponsors(); ok {
		_spec.SetField(matter.FieldSponsors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSponsors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matter.FieldSponsors, value)
		})
	}
	if _u.mutation.SponsorsCleared() {
		_spec.ClearField(matter.FieldSponsors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CanonicalSummary(); ok {
		_spec.SetField(matter.FieldCanonicalSummary, field.TypeString, value)
	}
	if _u.mutation.CanonicalSummaryCleared() {
		_spec.ClearField(matter.FieldCanonicalSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CanonicalTopics(); ok {
		_spec.SetField(matter.FieldCanonicalTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCanonicalTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matter.FieldCanonicalTopics, value)
		})
	}
	if _u.mutation.CanonicalTopicsCleared() {
		_spec.ClearField(matter.FieldCanonicalTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(matter.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, matter.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(matter.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttachmentHash(); ok {
		_spec.SetField(matter.FieldAttachmentHash, field.TypeString, value)
	}
	if _u.mutation.AttachmentHashCleared() {
		_spec.ClearField(matter.FieldAttachmentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(matter.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(matter.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(matter.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppearanceCount(); ok {
		_spec.SetField(matter.FieldAppearanceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAppearanceCount(); ok {
		_spec.AddField(matter.FieldAppearanceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(matter.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalVoteDate(); ok {
		_spec.SetField(matter.FieldFinalVoteDate, field.TypeTime, value)
	}
	if _u.mutation.FinalVoteDateCleared() {
		_spec.ClearField(matter.FieldFinalVoteDate, field.TypeTime)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(matter.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(matter.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(matter.FieldQualityScore, field.TypeFloat64)
	}
	if _u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppearancesIDs(); len(nodes) > 0 && !_u.mutation.AppearancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppearancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVotesIDs(); len(nodes) > 0 && !_u.mutation.VotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Matter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
