// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/ent/predicate"
	"github.com/Engagic/engagic-sub004/ent/processingcache"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
	"github.com/Engagic/engagic-sub004/ent/vote"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgendaItem          = "AgendaItem"
	TypeCity                = "City"
	TypeCommittee           = "Committee"
	TypeCommitteeMembership = "CommitteeMembership"
	TypeCouncilMember       = "CouncilMember"
	TypeMatter              = "Matter"
	TypeMatterAppearance    = "MatterAppearance"
	TypeMeeting             = "Meeting"
	TypeProcessingCache     = "ProcessingCache"
	TypeQueueJob            = "QueueJob"
	TypeVote                = "Vote"
)

// AgendaItemMutation represents an operation that mutates the AgendaItem nodes in the graph.
type AgendaItemMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	title              *string
	sequence           *int
	addsequence        *int
	attachments        *[]models.Attachment
	appendattachments  []models.Attachment
	attachment_hash    *string
	matter_id          *string
	matter_file        *string
	matter_type        *string
	agenda_number      *string
	sponsors           *[]string
	appendsponsors     []string
	summary            *string
	topics             *[]string
	appendtopics       []string
	processing_method  *string
	summarized_at      *time.Time
	extraction_error   *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	meeting            *string
	clearedmeeting     bool
	appearances        map[string]struct{}
	removedappearances map[string]struct{}
	clearedappearances bool
	done               bool
	oldValue           func(context.Context) (*AgendaItem, error)
	predicates         []predicate.AgendaItem
}

var _ ent.Mutation = (*AgendaItemMutation)(nil)

// agendaitemOption allows management of the mutation configuration using functional options.
type agendaitemOption func(*AgendaItemMutation)

// newAgendaItemMutation creates new mutation for the AgendaItem entity.
func newAgendaItemMutation(c config, op Op, opts ...agendaitemOption) *AgendaItemMutation {
	m := &AgendaItemMutation{
		config:        c,
		op:            op,
		typ:           TypeAgendaItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgendaItemID sets the ID field of the mutation.
func withAgendaItemID(id string) agendaitemOption {
	return func(m *AgendaItemMutation) {
		var (
			err   error
			once  sync.Once
			value *AgendaItem
		)
		m.oldValue = func(ctx context.Context) (*AgendaItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgendaItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgendaItem sets the old AgendaItem of the mutation.
func withAgendaItem(node *AgendaItem) agendaitemOption {
	return func(m *AgendaItemMutation) {
		m.oldValue = func(context.Context) (*AgendaItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgendaItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgendaItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgendaItem entities.
func (m *AgendaItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgendaItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgendaItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgendaItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *AgendaItemMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *AgendaItemMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *AgendaItemMutation) ResetMeetingID() {
	m.meeting = nil
}

// SetTitle sets the "title" field.
func (m *AgendaItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AgendaItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AgendaItemMutation) ResetTitle() {
	m.title = nil
}

// SetSequence sets the "sequence" field.
func (m *AgendaItemMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AgendaItemMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AgendaItemMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AgendaItemMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AgendaItemMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetAttachments sets the "attachments" field.
func (m *AgendaItemMutation) SetAttachments(value []models.Attachment) {
	m.attachments = &value
	m.appendattachments = nil
}

// Attachments returns the value of the "attachments" field in the mutation.
func (m *AgendaItemMutation) Attachments() (r []models.Attachment, exists bool) {
	v := m.attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachments returns the old "attachments" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldAttachments(ctx context.Context) (v []models.Attachment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachments: %w", err)
	}
	return oldValue.Attachments, nil
}

// AppendAttachments adds value to the "attachments" field.
func (m *AgendaItemMutation) AppendAttachments(value []models.Attachment) {
	m.appendattachments = append(m.appendattachments, value...)
}

// AppendedAttachments returns the list of values that were appended to the "attachments" field in this mutation.
func (m *AgendaItemMutation) AppendedAttachments() ([]models.Attachment, bool) {
	if len(m.appendattachments) == 0 {
		return nil, false
	}
	return m.appendattachments, true
}

// ClearAttachments clears the value of the "attachments" field.
func (m *AgendaItemMutation) ClearAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	m.clearedFields[agendaitem.FieldAttachments] = struct{}{}
}

// AttachmentsCleared returns if the "attachments" field was cleared in this mutation.
func (m *AgendaItemMutation) AttachmentsCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldAttachments]
	return ok
}

// ResetAttachments resets all changes to the "attachments" field.
func (m *AgendaItemMutation) ResetAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	delete(m.clearedFields, agendaitem.FieldAttachments)
}

// SetAttachmentHash sets the "attachment_hash" field.
func (m *AgendaItemMutation) SetAttachmentHash(s string) {
	m.attachment_hash = &s
}

// AttachmentHash returns the value of the "attachment_hash" field in the mutation.
func (m *AgendaItemMutation) AttachmentHash() (r string, exists bool) {
	v := m.attachment_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachmentHash returns the old "attachment_hash" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldAttachmentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachmentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachmentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachmentHash: %w", err)
	}
	return oldValue.AttachmentHash, nil
}

// ClearAttachmentHash clears the value of the "attachment_hash" field.
func (m *AgendaItemMutation) ClearAttachmentHash() {
	m.attachment_hash = nil
	m.clearedFields[agendaitem.FieldAttachmentHash] = struct{}{}
}

// AttachmentHashCleared returns if the "attachment_hash" field was cleared in this mutation.
func (m *AgendaItemMutation) AttachmentHashCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldAttachmentHash]
	return ok
}

// ResetAttachmentHash resets all changes to the "attachment_hash" field.
func (m *AgendaItemMutation) ResetAttachmentHash() {
	m.attachment_hash = nil
	delete(m.clearedFields, agendaitem.FieldAttachmentHash)
}

// SetMatterID sets the "matter_id" field.
func (m *AgendaItemMutation) SetMatterID(s string) {
	m.matter_id = &s
}

// MatterID returns the value of the "matter_id" field in the mutation.
func (m *AgendaItemMutation) MatterID() (r string, exists bool) {
	v := m.matter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterID returns the old "matter_id" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldMatterID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterID: %w", err)
	}
	return oldValue.MatterID, nil
}

// ClearMatterID clears the value of the "matter_id" field.
func (m *AgendaItemMutation) ClearMatterID() {
	m.matter_id = nil
	m.clearedFields[agendaitem.FieldMatterID] = struct{}{}
}

// MatterIDCleared returns if the "matter_id" field was cleared in this mutation.
func (m *AgendaItemMutation) MatterIDCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldMatterID]
	return ok
}

// ResetMatterID resets all changes to the "matter_id" field.
func (m *AgendaItemMutation) ResetMatterID() {
	m.matter_id = nil
	delete(m.clearedFields, agendaitem.FieldMatterID)
}

// SetMatterFile sets the "matter_file" field.
func (m *AgendaItemMutation) SetMatterFile(s string) {
	m.matter_file = &s
}

// MatterFile returns the value of the "matter_file" field in the mutation.
func (m *AgendaItemMutation) MatterFile() (r string, exists bool) {
	v := m.matter_file
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterFile returns the old "matter_file" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldMatterFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterFile: %w", err)
	}
	return oldValue.MatterFile, nil
}

// ClearMatterFile clears the value of the "matter_file" field.
func (m *AgendaItemMutation) ClearMatterFile() {
	m.matter_file = nil
	m.clearedFields[agendaitem.FieldMatterFile] = struct{}{}
}

// MatterFileCleared returns if the "matter_file" field was cleared in this mutation.
func (m *AgendaItemMutation) MatterFileCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldMatterFile]
	return ok
}

// ResetMatterFile resets all changes to the "matter_file" field.
func (m *AgendaItemMutation) ResetMatterFile() {
	m.matter_file = nil
	delete(m.clearedFields, agendaitem.FieldMatterFile)
}

// SetMatterType sets the "matter_type" field.
func (m *AgendaItemMutation) SetMatterType(s string) {
	m.matter_type = &s
}

// MatterType returns the value of the "matter_type" field in the mutation.
func (m *AgendaItemMutation) MatterType() (r string, exists bool) {
	v := m.matter_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterType returns the old "matter_type" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldMatterType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterType: %w", err)
	}
	return oldValue.MatterType, nil
}

// ClearMatterType clears the value of the "matter_type" field.
func (m *AgendaItemMutation) ClearMatterType() {
	m.matter_type = nil
	m.clearedFields[agendaitem.FieldMatterType] = struct{}{}
}

// MatterTypeCleared returns if the "matter_type" field was cleared in this mutation.
func (m *AgendaItemMutation) MatterTypeCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldMatterType]
	return ok
}

// ResetMatterType resets all changes to the "matter_type" field.
func (m *AgendaItemMutation) ResetMatterType() {
	m.matter_type = nil
	delete(m.clearedFields, agendaitem.FieldMatterType)
}

// SetAgendaNumber sets the "agenda_number" field.
func (m *AgendaItemMutation) SetAgendaNumber(s string) {
	m.agenda_number = &s
}

// AgendaNumber returns the value of the "agenda_number" field in the mutation.
func (m *AgendaItemMutation) AgendaNumber() (r string, exists bool) {
	v := m.agenda_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAgendaNumber returns the old "agenda_number" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldAgendaNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgendaNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgendaNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgendaNumber: %w", err)
	}
	return oldValue.AgendaNumber, nil
}

// ClearAgendaNumber clears the value of the "agenda_number" field.
func (m *AgendaItemMutation) ClearAgendaNumber() {
	m.agenda_number = nil
	m.clearedFields[agendaitem.FieldAgendaNumber] = struct{}{}
}

// AgendaNumberCleared returns if the "agenda_number" field was cleared in this mutation.
func (m *AgendaItemMutation) AgendaNumberCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldAgendaNumber]
	return ok
}

// ResetAgendaNumber resets all changes to the "agenda_number" field.
func (m *AgendaItemMutation) ResetAgendaNumber() {
	m.agenda_number = nil
	delete(m.clearedFields, agendaitem.FieldAgendaNumber)
}

// SetSponsors sets the "sponsors" field.
func (m *AgendaItemMutation) SetSponsors(s []string) {
	m.sponsors = &s
	m.appendsponsors = nil
}

// Sponsors returns the value of the "sponsors" field in the mutation.
func (m *AgendaItemMutation) Sponsors() (r []string, exists bool) {
	v := m.sponsors
	if v == nil {
		return
	}
	return *v, true
}

// OldSponsors returns the old "sponsors" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldSponsors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSponsors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSponsors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSponsors: %w", err)
	}
	return oldValue.Sponsors, nil
}

// AppendSponsors adds s to the "sponsors" field.
func (m *AgendaItemMutation) AppendSponsors(s []string) {
	m.appendsponsors = append(m.appendsponsors, s...)
}

// AppendedSponsors returns the list of values that were appended to the "sponsors" field in this mutation.
func (m *AgendaItemMutation) AppendedSponsors() ([]string, bool) {
	if len(m.appendsponsors) == 0 {
		return nil, false
	}
	return m.appendsponsors, true
}

// ClearSponsors clears the value of the "sponsors" field.
func (m *AgendaItemMutation) ClearSponsors() {
	m.sponsors = nil
	m.appendsponsors = nil
	m.clearedFields[agendaitem.FieldSponsors] = struct{}{}
}

// SponsorsCleared returns if the "sponsors" field was cleared in this mutation.
func (m *AgendaItemMutation) SponsorsCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldSponsors]
	return ok
}

// ResetSponsors resets all changes to the "sponsors" field.
func (m *AgendaItemMutation) ResetSponsors() {
	m.sponsors = nil
	m.appendsponsors = nil
	delete(m.clearedFields, agendaitem.FieldSponsors)
}

// SetSummary sets the "summary" field.
func (m *AgendaItemMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AgendaItemMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *AgendaItemMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[agendaitem.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *AgendaItemMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *AgendaItemMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, agendaitem.FieldSummary)
}

// SetTopics sets the "topics" field.
func (m *AgendaItemMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *AgendaItemMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *AgendaItemMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *AgendaItemMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *AgendaItemMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[agendaitem.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *AgendaItemMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *AgendaItemMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, agendaitem.FieldTopics)
}

// SetProcessingMethod sets the "processing_method" field.
func (m *AgendaItemMutation) SetProcessingMethod(s string) {
	m.processing_method = &s
}

// ProcessingMethod returns the value of the "processing_method" field in the mutation.
func (m *AgendaItemMutation) ProcessingMethod() (r string, exists bool) {
	v := m.processing_method
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMethod returns the old "processing_method" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldProcessingMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMethod: %w", err)
	}
	return oldValue.ProcessingMethod, nil
}

// ClearProcessingMethod clears the value of the "processing_method" field.
func (m *AgendaItemMutation) ClearProcessingMethod() {
	m.processing_method = nil
	m.clearedFields[agendaitem.FieldProcessingMethod] = struct{}{}
}

// ProcessingMethodCleared returns if the "processing_method" field was cleared in this mutation.
func (m *AgendaItemMutation) ProcessingMethodCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldProcessingMethod]
	return ok
}

// ResetProcessingMethod resets all changes to the "processing_method" field.
func (m *AgendaItemMutation) ResetProcessingMethod() {
	m.processing_method = nil
	delete(m.clearedFields, agendaitem.FieldProcessingMethod)
}

// SetSummarizedAt sets the "summarized_at" field.
func (m *AgendaItemMutation) SetSummarizedAt(t time.Time) {
	m.summarized_at = &t
}

// SummarizedAt returns the value of the "summarized_at" field in the mutation.
func (m *AgendaItemMutation) SummarizedAt() (r time.Time, exists bool) {
	v := m.summarized_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSummarizedAt returns the old "summarized_at" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldSummarizedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummarizedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummarizedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummarizedAt: %w", err)
	}
	return oldValue.SummarizedAt, nil
}

// ClearSummarizedAt clears the value of the "summarized_at" field.
func (m *AgendaItemMutation) ClearSummarizedAt() {
	m.summarized_at = nil
	m.clearedFields[agendaitem.FieldSummarizedAt] = struct{}{}
}

// SummarizedAtCleared returns if the "summarized_at" field was cleared in this mutation.
func (m *AgendaItemMutation) SummarizedAtCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldSummarizedAt]
	return ok
}

// ResetSummarizedAt resets all changes to the "summarized_at" field.
func (m *AgendaItemMutation) ResetSummarizedAt() {
	m.summarized_at = nil
	delete(m.clearedFields, agendaitem.FieldSummarizedAt)
}

// SetExtractionError sets the "extraction_error" field.
func (m *AgendaItemMutation) SetExtractionError(s string) {
	m.extraction_error = &s
}

// ExtractionError returns the value of the "extraction_error" field in the mutation.
func (m *AgendaItemMutation) ExtractionError() (r string, exists bool) {
	v := m.extraction_error
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionError returns the old "extraction_error" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldExtractionError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionError: %w", err)
	}
	return oldValue.ExtractionError, nil
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (m *AgendaItemMutation) ClearExtractionError() {
	m.extraction_error = nil
	m.clearedFields[agendaitem.FieldExtractionError] = struct{}{}
}

// ExtractionErrorCleared returns if the "extraction_error" field was cleared in this mutation.
func (m *AgendaItemMutation) ExtractionErrorCleared() bool {
	_, ok := m.clearedFields[agendaitem.FieldExtractionError]
	return ok
}

// ResetExtractionError resets all changes to the "extraction_error" field.
func (m *AgendaItemMutation) ResetExtractionError() {
	m.extraction_error = nil
	delete(m.clearedFields, agendaitem.FieldExtractionError)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgendaItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgendaItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgendaItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgendaItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgendaItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgendaItem entity.
// If the AgendaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgendaItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgendaItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *AgendaItemMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[agendaitem.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *AgendaItemMutation) MeetingCleared() bool {
	return m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *AgendaItemMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *AgendaItemMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by ids.
func (m *AgendaItemMutation) AddAppearanceIDs(ids ...string) {
	if m.appearances == nil {
		m.appearances = make(map[string]struct{})
	}
	for i := range ids {
		m.appearances[ids[i]] = struct{}{}
	}
}

// ClearAppearances clears the "appearances" edge to the MatterAppearance entity.
func (m *AgendaItemMutation) ClearAppearances() {
	m.clearedappearances = true
}

// AppearancesCleared reports if the "appearances" edge to the MatterAppearance entity was cleared.
func (m *AgendaItemMutation) AppearancesCleared() bool {
	return m.clearedappearances
}

// RemoveAppearanceIDs removes the "appearances" edge to the MatterAppearance entity by IDs.
func (m *AgendaItemMutation) RemoveAppearanceIDs(ids ...string) {
	if m.removedappearances == nil {
		m.removedappearances = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.appearances, ids[i])
		m.removedappearances[ids[i]] = struct{}{}
	}
}

// RemovedAppearances returns the removed IDs of the "appearances" edge to the MatterAppearance entity.
func (m *AgendaItemMutation) RemovedAppearancesIDs() (ids []string) {
	for id := range m.removedappearances {
		ids = append(ids, id)
	}
	return
}

// AppearancesIDs returns the "appearances" edge IDs in the mutation.
func (m *AgendaItemMutation) AppearancesIDs() (ids []string) {
	for id := range m.appearances {
		ids = append(ids, id)
	}
	return
}

// ResetAppearances resets all changes to the "appearances" edge.
func (m *AgendaItemMutation) ResetAppearances() {
	m.appearances = nil
	m.clearedappearances = false
	m.removedappearances = nil
}

// Where appends a list predicates to the AgendaItemMutation builder.
func (m *AgendaItemMutation) Where(ps ...predicate.AgendaItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgendaItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgendaItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgendaItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgendaItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgendaItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgendaItem).
func (m *AgendaItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgendaItemMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.meeting != nil {
		fields = append(fields, agendaitem.FieldMeetingID)
	}
	if m.title != nil {
		fields = append(fields, agendaitem.FieldTitle)
	}
	if m.sequence != nil {
		fields = append(fields, agendaitem.FieldSequence)
	}
	if m.attachments != nil {
		fields = append(fields, agendaitem.FieldAttachments)
	}
	if m.attachment_hash != nil {
		fields = append(fields, agendaitem.FieldAttachmentHash)
	}
	if m.matter_id != nil {
		fields = append(fields, agendaitem.FieldMatterID)
	}
	if m.matter_file != nil {
		fields = append(fields, agendaitem.FieldMatterFile)
	}
	if m.matter_type != nil {
		fields = append(fields, agendaitem.FieldMatterType)
	}
	if m.agenda_number != nil {
		fields = append(fields, agendaitem.FieldAgendaNumber)
	}
	if m.sponsors != nil {
		fields = append(fields, agendaitem.FieldSponsors)
	}
	if m.summary != nil {
		fields = append(fields, agendaitem.FieldSummary)
	}
	if m.topics != nil {
		fields = append(fields, agendaitem.FieldTopics)
	}
	if m.processing_method != nil {
		fields = append(fields, agendaitem.FieldProcessingMethod)
	}
	if m.summarized_at != nil {
		fields = append(fields, agendaitem.FieldSummarizedAt)
	}
	if m.extraction_error != nil {
		fields = append(fields, agendaitem.FieldExtractionError)
	}
	if m.created_at != nil {
		fields = append(fields, agendaitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agendaitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgendaItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agendaitem.FieldMeetingID:
		return m.MeetingID()
	case agendaitem.FieldTitle:
		return m.Title()
	case agendaitem.FieldSequence:
		return m.Sequence()
	case agendaitem.FieldAttachments:
		return m.Attachments()
	case agendaitem.FieldAttachmentHash:
		return m.AttachmentHash()
	case agendaitem.FieldMatterID:
		return m.MatterID()
	case agendaitem.FieldMatterFile:
		return m.MatterFile()
	case agendaitem.FieldMatterType:
		return m.MatterType()
	case agendaitem.FieldAgendaNumber:
		return m.AgendaNumber()
	case agendaitem.FieldSponsors:
		return m.Sponsors()
	case agendaitem.FieldSummary:
		return m.Summary()
	case agendaitem.FieldTopics:
		return m.Topics()
	case agendaitem.FieldProcessingMethod:
		return m.ProcessingMethod()
	case agendaitem.FieldSummarizedAt:
		return m.SummarizedAt()
	case agendaitem.FieldExtractionError:
		return m.ExtractionError()
	case agendaitem.FieldCreatedAt:
		return m.CreatedAt()
	case agendaitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgendaItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agendaitem.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case agendaitem.FieldTitle:
		return m.OldTitle(ctx)
	case agendaitem.FieldSequence:
		return m.OldSequence(ctx)
	case agendaitem.FieldAttachments:
		return m.OldAttachments(ctx)
	case agendaitem.FieldAttachmentHash:
		return m.OldAttachmentHash(ctx)
	case agendaitem.FieldMatterID:
		return m.OldMatterID(ctx)
	case agendaitem.FieldMatterFile:
		return m.OldMatterFile(ctx)
	case agendaitem.FieldMatterType:
		return m.OldMatterType(ctx)
	case agendaitem.FieldAgendaNumber:
		return m.OldAgendaNumber(ctx)
	case agendaitem.FieldSponsors:
		return m.OldSponsors(ctx)
	case agendaitem.FieldSummary:
		return m.OldSummary(ctx)
	case agendaitem.FieldTopics:
		return m.OldTopics(ctx)
	case agendaitem.FieldProcessingMethod:
		return m.OldProcessingMethod(ctx)
	case agendaitem.FieldSummarizedAt:
		return m.OldSummarizedAt(ctx)
	case agendaitem.FieldExtractionError:
		return m.OldExtractionError(ctx)
	case agendaitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agendaitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgendaItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgendaItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agendaitem.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case agendaitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case agendaitem.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case agendaitem.FieldAttachments:
		v, ok := value.([]models.Attachment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachments(v)
		return nil
	case agendaitem.FieldAttachmentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachmentHash(v)
		return nil
	case agendaitem.FieldMatterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterID(v)
		return nil
	case agendaitem.FieldMatterFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterFile(v)
		return nil
	case agendaitem.FieldMatterType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterType(v)
		return nil
	case agendaitem.FieldAgendaNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgendaNumber(v)
		return nil
	case agendaitem.FieldSponsors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSponsors(v)
		return nil
	case agendaitem.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case agendaitem.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case agendaitem.FieldProcessingMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMethod(v)
		return nil
	case agendaitem.FieldSummarizedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummarizedAt(v)
		return nil
	case agendaitem.FieldExtractionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionError(v)
		return nil
	case agendaitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agendaitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgendaItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgendaItemMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, agendaitem.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgendaItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agendaitem.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgendaItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agendaitem.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AgendaItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgendaItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agendaitem.FieldAttachments) {
		fields = append(fields, agendaitem.FieldAttachments)
	}
	if m.FieldCleared(agendaitem.FieldAttachmentHash) {
		fields = append(fields, agendaitem.FieldAttachmentHash)
	}
	if m.FieldCleared(agendaitem.FieldMatterID) {
		fields = append(fields, agendaitem.FieldMatterID)
	}
	if m.FieldCleared(agendaitem.FieldMatterFile) {
		fields = append(fields, agendaitem.FieldMatterFile)
	}
	if m.FieldCleared(agendaitem.FieldMatterType) {
		fields = append(fields, agendaitem.FieldMatterType)
	}
	if m.FieldCleared(agendaitem.FieldAgendaNumber) {
		fields = append(fields, agendaitem.FieldAgendaNumber)
	}
	if m.FieldCleared(agendaitem.FieldSponsors) {
		fields = append(fields, agendaitem.FieldSponsors)
	}
	if m.FieldCleared(agendaitem.FieldSummary) {
		fields = append(fields, agendaitem.FieldSummary)
	}
	if m.FieldCleared(agendaitem.FieldTopics) {
		fields = append(fields, agendaitem.FieldTopics)
	}
	if m.FieldCleared(agendaitem.FieldProcessingMethod) {
		fields = append(fields, agendaitem.FieldProcessingMethod)
	}
	if m.FieldCleared(agendaitem.FieldSummarizedAt) {
		fields = append(fields, agendaitem.FieldSummarizedAt)
	}
	if m.FieldCleared(agendaitem.FieldExtractionError) {
		fields = append(fields, agendaitem.FieldExtractionError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgendaItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgendaItemMutation) ClearField(name string) error {
	switch name {
	case agendaitem.FieldAttachments:
		m.ClearAttachments()
		return nil
	case agendaitem.FieldAttachmentHash:
		m.ClearAttachmentHash()
		return nil
	case agendaitem.FieldMatterID:
		m.ClearMatterID()
		return nil
	case agendaitem.FieldMatterFile:
		m.ClearMatterFile()
		return nil
	case agendaitem.FieldMatterType:
		m.ClearMatterType()
		return nil
	case agendaitem.FieldAgendaNumber:
		m.ClearAgendaNumber()
		return nil
	case agendaitem.FieldSponsors:
		m.ClearSponsors()
		return nil
	case agendaitem.FieldSummary:
		m.ClearSummary()
		return nil
	case agendaitem.FieldTopics:
		m.ClearTopics()
		return nil
	case agendaitem.FieldProcessingMethod:
		m.ClearProcessingMethod()
		return nil
	case agendaitem.FieldSummarizedAt:
		m.ClearSummarizedAt()
		return nil
	case agendaitem.FieldExtractionError:
		m.ClearExtractionError()
		return nil
	}
	return fmt.Errorf("unknown AgendaItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgendaItemMutation) ResetField(name string) error {
	switch name {
	case agendaitem.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case agendaitem.FieldTitle:
		m.ResetTitle()
		return nil
	case agendaitem.FieldSequence:
		m.ResetSequence()
		return nil
	case agendaitem.FieldAttachments:
		m.ResetAttachments()
		return nil
	case agendaitem.FieldAttachmentHash:
		m.ResetAttachmentHash()
		return nil
	case agendaitem.FieldMatterID:
		m.ResetMatterID()
		return nil
	case agendaitem.FieldMatterFile:
		m.ResetMatterFile()
		return nil
	case agendaitem.FieldMatterType:
		m.ResetMatterType()
		return nil
	case agendaitem.FieldAgendaNumber:
		m.ResetAgendaNumber()
		return nil
	case agendaitem.FieldSponsors:
		m.ResetSponsors()
		return nil
	case agendaitem.FieldSummary:
		m.ResetSummary()
		return nil
	case agendaitem.FieldTopics:
		m.ResetTopics()
		return nil
	case agendaitem.FieldProcessingMethod:
		m.ResetProcessingMethod()
		return nil
	case agendaitem.FieldSummarizedAt:
		m.ResetSummarizedAt()
		return nil
	case agendaitem.FieldExtractionError:
		m.ResetExtractionError()
		return nil
	case agendaitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agendaitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgendaItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgendaItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.meeting != nil {
		edges = append(edges, agendaitem.EdgeMeeting)
	}
	if m.appearances != nil {
		edges = append(edges, agendaitem.EdgeAppearances)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgendaItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agendaitem.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	case agendaitem.EdgeAppearances:
		ids := make([]ent.Value, 0, len(m.appearances))
		for id := range m.appearances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgendaItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedappearances != nil {
		edges = append(edges, agendaitem.EdgeAppearances)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgendaItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agendaitem.EdgeAppearances:
		ids := make([]ent.Value, 0, len(m.removedappearances))
		for id := range m.removedappearances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgendaItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmeeting {
		edges = append(edges, agendaitem.EdgeMeeting)
	}
	if m.clearedappearances {
		edges = append(edges, agendaitem.EdgeAppearances)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgendaItemMutation) EdgeCleared(name string) bool {
	switch name {
	case agendaitem.EdgeMeeting:
		return m.clearedmeeting
	case agendaitem.EdgeAppearances:
		return m.clearedappearances
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgendaItemMutation) ClearEdge(name string) error {
	switch name {
	case agendaitem.EdgeMeeting:
		m.ClearMeeting()
		return nil
	}
	return fmt.Errorf("unknown AgendaItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgendaItemMutation) ResetEdge(name string) error {
	switch name {
	case agendaitem.EdgeMeeting:
		m.ResetMeeting()
		return nil
	case agendaitem.EdgeAppearances:
		m.ResetAppearances()
		return nil
	}
	return fmt.Errorf("unknown AgendaItem edge %s", name)
}

// CityMutation represents an operation that mutates the City nodes in the graph.
type CityMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	state                  *string
	vendor                 *string
	vendor_slug            *string
	timezone               *string
	county                 *string
	status                 *city.Status
	population             *int
	addpopulation          *int
	geometry               *map[string]interface{}
	sync_error_count       *int
	addsync_error_count    *int
	last_synced_at         *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	meetings               map[string]struct{}
	removedmeetings        map[string]struct{}
	clearedmeetings        bool
	matters                map[string]struct{}
	removedmatters         map[string]struct{}
	clearedmatters         bool
	council_members        map[string]struct{}
	removedcouncil_members map[string]struct{}
	clearedcouncil_members bool
	committees             map[string]struct{}
	removedcommittees      map[string]struct{}
	clearedcommittees      bool
	done                   bool
	oldValue               func(context.Context) (*City, error)
	predicates             []predicate.City
}

var _ ent.Mutation = (*CityMutation)(nil)

// cityOption allows management of the mutation configuration using functional options.
type cityOption func(*CityMutation)

// newCityMutation creates new mutation for the City entity.
func newCityMutation(c config, op Op, opts ...cityOption) *CityMutation {
	m := &CityMutation{
		config:        c,
		op:            op,
		typ:           TypeCity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCityID sets the ID field of the mutation.
func withCityID(id string) cityOption {
	return func(m *CityMutation) {
		var (
			err   error
			once  sync.Once
			value *City
		)
		m.oldValue = func(ctx context.Context) (*City, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().City.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCity sets the old City of the mutation.
func withCity(node *City) cityOption {
	return func(m *CityMutation) {
		m.oldValue = func(context.Context) (*City, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of City entities.
func (m *CityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().City.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CityMutation) ResetName() {
	m.name = nil
}

// SetState sets the "state" field.
func (m *CityMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *CityMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CityMutation) ResetState() {
	m.state = nil
}

// SetVendor sets the "vendor" field.
func (m *CityMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *CityMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *CityMutation) ResetVendor() {
	m.vendor = nil
}

// SetVendorSlug sets the "vendor_slug" field.
func (m *CityMutation) SetVendorSlug(s string) {
	m.vendor_slug = &s
}

// VendorSlug returns the value of the "vendor_slug" field in the mutation.
func (m *CityMutation) VendorSlug() (r string, exists bool) {
	v := m.vendor_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorSlug returns the old "vendor_slug" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldVendorSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorSlug: %w", err)
	}
	return oldValue.VendorSlug, nil
}

// ResetVendorSlug resets all changes to the "vendor_slug" field.
func (m *CityMutation) ResetVendorSlug() {
	m.vendor_slug = nil
}

// SetTimezone sets the "timezone" field.
func (m *CityMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *CityMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *CityMutation) ResetTimezone() {
	m.timezone = nil
}

// SetCounty sets the "county" field.
func (m *CityMutation) SetCounty(s string) {
	m.county = &s
}

// County returns the value of the "county" field in the mutation.
func (m *CityMutation) County() (r string, exists bool) {
	v := m.county
	if v == nil {
		return
	}
	return *v, true
}

// OldCounty returns the old "county" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldCounty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounty: %w", err)
	}
	return oldValue.County, nil
}

// ClearCounty clears the value of the "county" field.
func (m *CityMutation) ClearCounty() {
	m.county = nil
	m.clearedFields[city.FieldCounty] = struct{}{}
}

// CountyCleared returns if the "county" field was cleared in this mutation.
func (m *CityMutation) CountyCleared() bool {
	_, ok := m.clearedFields[city.FieldCounty]
	return ok
}

// ResetCounty resets all changes to the "county" field.
func (m *CityMutation) ResetCounty() {
	m.county = nil
	delete(m.clearedFields, city.FieldCounty)
}

// SetStatus sets the "status" field.
func (m *CityMutation) SetStatus(c city.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CityMutation) Status() (r city.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldStatus(ctx context.Context) (v city.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CityMutation) ResetStatus() {
	m.status = nil
}

// SetPopulation sets the "population" field.
func (m *CityMutation) SetPopulation(i int) {
	m.population = &i
	m.addpopulation = nil
}

// Population returns the value of the "population" field in the mutation.
func (m *CityMutation) Population() (r int, exists bool) {
	v := m.population
	if v == nil {
		return
	}
	return *v, true
}

// OldPopulation returns the old "population" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldPopulation(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPopulation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPopulation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPopulation: %w", err)
	}
	return oldValue.Population, nil
}

// AddPopulation adds i to the "population" field.
func (m *CityMutation) AddPopulation(i int) {
	if m.addpopulation != nil {
		*m.addpopulation += i
	} else {
		m.addpopulation = &i
	}
}

// AddedPopulation returns the value that was added to the "population" field in this mutation.
func (m *CityMutation) AddedPopulation() (r int, exists bool) {
	v := m.addpopulation
	if v == nil {
		return
	}
	return *v, true
}

// ClearPopulation clears the value of the "population" field.
func (m *CityMutation) ClearPopulation() {
	m.population = nil
	m.addpopulation = nil
	m.clearedFields[city.FieldPopulation] = struct{}{}
}

// PopulationCleared returns if the "population" field was cleared in this mutation.
func (m *CityMutation) PopulationCleared() bool {
	_, ok := m.clearedFields[city.FieldPopulation]
	return ok
}

// ResetPopulation resets all changes to the "population" field.
func (m *CityMutation) ResetPopulation() {
	m.population = nil
	m.addpopulation = nil
	delete(m.clearedFields, city.FieldPopulation)
}

// SetGeometry sets the "geometry" field.
func (m *CityMutation) SetGeometry(value map[string]interface{}) {
	m.geometry = &value
}

// Geometry returns the value of the "geometry" field in the mutation.
func (m *CityMutation) Geometry() (r map[string]interface{}, exists bool) {
	v := m.geometry
	if v == nil {
		return
	}
	return *v, true
}

// OldGeometry returns the old "geometry" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldGeometry(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeometry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeometry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeometry: %w", err)
	}
	return oldValue.Geometry, nil
}

// ClearGeometry clears the value of the "geometry" field.
func (m *CityMutation) ClearGeometry() {
	m.geometry = nil
	m.clearedFields[city.FieldGeometry] = struct{}{}
}

// GeometryCleared returns if the "geometry" field was cleared in this mutation.
func (m *CityMutation) GeometryCleared() bool {
	_, ok := m.clearedFields[city.FieldGeometry]
	return ok
}

// ResetGeometry resets all changes to the "geometry" field.
func (m *CityMutation) ResetGeometry() {
	m.geometry = nil
	delete(m.clearedFields, city.FieldGeometry)
}

// SetSyncErrorCount sets the "sync_error_count" field.
func (m *CityMutation) SetSyncErrorCount(i int) {
	m.sync_error_count = &i
	m.addsync_error_count = nil
}

// SyncErrorCount returns the value of the "sync_error_count" field in the mutation.
func (m *CityMutation) SyncErrorCount() (r int, exists bool) {
	v := m.sync_error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncErrorCount returns the old "sync_error_count" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldSyncErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncErrorCount: %w", err)
	}
	return oldValue.SyncErrorCount, nil
}

// AddSyncErrorCount adds i to the "sync_error_count" field.
func (m *CityMutation) AddSyncErrorCount(i int) {
	if m.addsync_error_count != nil {
		*m.addsync_error_count += i
	} else {
		m.addsync_error_count = &i
	}
}

// AddedSyncErrorCount returns the value that was added to the "sync_error_count" field in this mutation.
func (m *CityMutation) AddedSyncErrorCount() (r int, exists bool) {
	v := m.addsync_error_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSyncErrorCount resets all changes to the "sync_error_count" field.
func (m *CityMutation) ResetSyncErrorCount() {
	m.sync_error_count = nil
	m.addsync_error_count = nil
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (m *CityMutation) SetLastSyncedAt(t time.Time) {
	m.last_synced_at = &t
}

// LastSyncedAt returns the value of the "last_synced_at" field in the mutation.
func (m *CityMutation) LastSyncedAt() (r time.Time, exists bool) {
	v := m.last_synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncedAt returns the old "last_synced_at" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldLastSyncedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncedAt: %w", err)
	}
	return oldValue.LastSyncedAt, nil
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (m *CityMutation) ClearLastSyncedAt() {
	m.last_synced_at = nil
	m.clearedFields[city.FieldLastSyncedAt] = struct{}{}
}

// LastSyncedAtCleared returns if the "last_synced_at" field was cleared in this mutation.
func (m *CityMutation) LastSyncedAtCleared() bool {
	_, ok := m.clearedFields[city.FieldLastSyncedAt]
	return ok
}

// ResetLastSyncedAt resets all changes to the "last_synced_at" field.
func (m *CityMutation) ResetLastSyncedAt() {
	m.last_synced_at = nil
	delete(m.clearedFields, city.FieldLastSyncedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the City entity.
// If the City object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by ids.
func (m *CityMutation) AddMeetingIDs(ids ...string) {
	if m.meetings == nil {
		m.meetings = make(map[string]struct{})
	}
	for i := range ids {
		m.meetings[ids[i]] = struct{}{}
	}
}

// ClearMeetings clears the "meetings" edge to the Meeting entity.
func (m *CityMutation) ClearMeetings() {
	m.clearedmeetings = true
}

// MeetingsCleared reports if the "meetings" edge to the Meeting entity was cleared.
func (m *CityMutation) MeetingsCleared() bool {
	return m.clearedmeetings
}

// RemoveMeetingIDs removes the "meetings" edge to the Meeting entity by IDs.
func (m *CityMutation) RemoveMeetingIDs(ids ...string) {
	if m.removedmeetings == nil {
		m.removedmeetings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.meetings, ids[i])
		m.removedmeetings[ids[i]] = struct{}{}
	}
}

// RemovedMeetings returns the removed IDs of the "meetings" edge to the Meeting entity.
func (m *CityMutation) RemovedMeetingsIDs() (ids []string) {
	for id := range m.removedmeetings {
		ids = append(ids, id)
	}
	return
}

// MeetingsIDs returns the "meetings" edge IDs in the mutation.
func (m *CityMutation) MeetingsIDs() (ids []string) {
	for id := range m.meetings {
		ids = append(ids, id)
	}
	return
}

// ResetMeetings resets all changes to the "meetings" edge.
func (m *CityMutation) ResetMeetings() {
	m.meetings = nil
	m.clearedmeetings = false
	m.removedmeetings = nil
}

// AddMatterIDs adds the "matters" edge to the Matter entity by ids.
func (m *CityMutation) AddMatterIDs(ids ...string) {
	if m.matters == nil {
		m.matters = make(map[string]struct{})
	}
	for i := range ids {
		m.matters[ids[i]] = struct{}{}
	}
}

// ClearMatters clears the "matters" edge to the Matter entity.
func (m *CityMutation) ClearMatters() {
	m.clearedmatters = true
}

// MattersCleared reports if the "matters" edge to the Matter entity was cleared.
func (m *CityMutation) MattersCleared() bool {
	return m.clearedmatters
}

// RemoveMatterIDs removes the "matters" edge to the Matter entity by IDs.
func (m *CityMutation) RemoveMatterIDs(ids ...string) {
	if m.removedmatters == nil {
		m.removedmatters = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.matters, ids[i])
		m.removedmatters[ids[i]] = struct{}{}
	}
}

// RemovedMatters returns the removed IDs of the "matters" edge to the Matter entity.
func (m *CityMutation) RemovedMattersIDs() (ids []string) {
	for id := range m.removedmatters {
		ids = append(ids, id)
	}
	return
}

// MattersIDs returns the "matters" edge IDs in the mutation.
func (m *CityMutation) MattersIDs() (ids []string) {
	for id := range m.matters {
		ids = append(ids, id)
	}
	return
}

// ResetMatters resets all changes to the "matters" edge.
func (m *CityMutation) ResetMatters() {
	m.matters = nil
	m.clearedmatters = false
	m.removedmatters = nil
}

// AddCouncilMemberIDs adds the "council_members" edge to the CouncilMember entity by ids.
func (m *CityMutation) AddCouncilMemberIDs(ids ...string) {
	if m.council_members == nil {
		m.council_members = make(map[string]struct{})
	}
	for i := range ids {
		m.council_members[ids[i]] = struct{}{}
	}
}

// ClearCouncilMembers clears the "council_members" edge to the CouncilMember entity.
func (m *CityMutation) ClearCouncilMembers() {
	m.clearedcouncil_members = true
}

// CouncilMembersCleared reports if the "council_members" edge to the CouncilMember entity was cleared.
func (m *CityMutation) CouncilMembersCleared() bool {
	return m.clearedcouncil_members
}

// RemoveCouncilMemberIDs removes the "council_members" edge to the CouncilMember entity by IDs.
func (m *CityMutation) RemoveCouncilMemberIDs(ids ...string) {
	if m.removedcouncil_members == nil {
		m.removedcouncil_members = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.council_members, ids[i])
		m.removedcouncil_members[ids[i]] = struct{}{}
	}
}

// RemovedCouncilMembers returns the removed IDs of the "council_members" edge to the CouncilMember entity.
func (m *CityMutation) RemovedCouncilMembersIDs() (ids []string) {
	for id := range m.removedcouncil_members {
		ids = append(ids, id)
	}
	return
}

// CouncilMembersIDs returns the "council_members" edge IDs in the mutation.
func (m *CityMutation) CouncilMembersIDs() (ids []string) {
	for id := range m.council_members {
		ids = append(ids, id)
	}
	return
}

// ResetCouncilMembers resets all changes to the "council_members" edge.
func (m *CityMutation) ResetCouncilMembers() {
	m.council_members = nil
	m.clearedcouncil_members = false
	m.removedcouncil_members = nil
}

// AddCommitteeIDs adds the "committees" edge to the Committee entity by ids.
func (m *CityMutation) AddCommitteeIDs(ids ...string) {
	if m.committees == nil {
		m.committees = make(map[string]struct{})
	}
	for i := range ids {
		m.committees[ids[i]] = struct{}{}
	}
}

// ClearCommittees clears the "committees" edge to the Committee entity.
func (m *CityMutation) ClearCommittees() {
	m.clearedcommittees = true
}

// CommitteesCleared reports if the "committees" edge to the Committee entity was cleared.
func (m *CityMutation) CommitteesCleared() bool {
	return m.clearedcommittees
}

// RemoveCommitteeIDs removes the "committees" edge to the Committee entity by IDs.
func (m *CityMutation) RemoveCommitteeIDs(ids ...string) {
	if m.removedcommittees == nil {
		m.removedcommittees = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.committees, ids[i])
		m.removedcommittees[ids[i]] = struct{}{}
	}
}

// RemovedCommittees returns the removed IDs of the "committees" edge to the Committee entity.
func (m *CityMutation) RemovedCommitteesIDs() (ids []string) {
	for id := range m.removedcommittees {
		ids = append(ids, id)
	}
	return
}

// CommitteesIDs returns the "committees" edge IDs in the mutation.
func (m *CityMutation) CommitteesIDs() (ids []string) {
	for id := range m.committees {
		ids = append(ids, id)
	}
	return
}

// ResetCommittees resets all changes to the "committees" edge.
func (m *CityMutation) ResetCommittees() {
	m.committees = nil
	m.clearedcommittees = false
	m.removedcommittees = nil
}

// Where appends a list predicates to the CityMutation builder.
func (m *CityMutation) Where(ps ...predicate.City) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.City, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (City).
func (m *CityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CityMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, city.FieldName)
	}
	if m.state != nil {
		fields = append(fields, city.FieldState)
	}
	if m.vendor != nil {
		fields = append(fields, city.FieldVendor)
	}
	if m.vendor_slug != nil {
		fields = append(fields, city.FieldVendorSlug)
	}
	if m.timezone != nil {
		fields = append(fields, city.FieldTimezone)
	}
	if m.county != nil {
		fields = append(fields, city.FieldCounty)
	}
	if m.status != nil {
		fields = append(fields, city.FieldStatus)
	}
	if m.population != nil {
		fields = append(fields, city.FieldPopulation)
	}
	if m.geometry != nil {
		fields = append(fields, city.FieldGeometry)
	}
	if m.sync_error_count != nil {
		fields = append(fields, city.FieldSyncErrorCount)
	}
	if m.last_synced_at != nil {
		fields = append(fields, city.FieldLastSyncedAt)
	}
	if m.created_at != nil {
		fields = append(fields, city.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, city.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case city.FieldName:
		return m.Name()
	case city.FieldState:
		return m.State()
	case city.FieldVendor:
		return m.Vendor()
	case city.FieldVendorSlug:
		return m.VendorSlug()
	case city.FieldTimezone:
		return m.Timezone()
	case city.FieldCounty:
		return m.County()
	case city.FieldStatus:
		return m.Status()
	case city.FieldPopulation:
		return m.Population()
	case city.FieldGeometry:
		return m.Geometry()
	case city.FieldSyncErrorCount:
		return m.SyncErrorCount()
	case city.FieldLastSyncedAt:
		return m.LastSyncedAt()
	case city.FieldCreatedAt:
		return m.CreatedAt()
	case city.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case city.FieldName:
		return m.OldName(ctx)
	case city.FieldState:
		return m.OldState(ctx)
	case city.FieldVendor:
		return m.OldVendor(ctx)
	case city.FieldVendorSlug:
		return m.OldVendorSlug(ctx)
	case city.FieldTimezone:
		return m.OldTimezone(ctx)
	case city.FieldCounty:
		return m.OldCounty(ctx)
	case city.FieldStatus:
		return m.OldStatus(ctx)
	case city.FieldPopulation:
		return m.OldPopulation(ctx)
	case city.FieldGeometry:
		return m.OldGeometry(ctx)
	case city.FieldSyncErrorCount:
		return m.OldSyncErrorCount(ctx)
	case city.FieldLastSyncedAt:
		return m.OldLastSyncedAt(ctx)
	case city.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case city.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown City field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case city.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case city.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case city.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case city.FieldVendorSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorSlug(v)
		return nil
	case city.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case city.FieldCounty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounty(v)
		return nil
	case city.FieldStatus:
		v, ok := value.(city.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case city.FieldPopulation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPopulation(v)
		return nil
	case city.FieldGeometry:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeometry(v)
		return nil
	case city.FieldSyncErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncErrorCount(v)
		return nil
	case city.FieldLastSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncedAt(v)
		return nil
	case city.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case city.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown City field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CityMutation) AddedFields() []string {
	var fields []string
	if m.addpopulation != nil {
		fields = append(fields, city.FieldPopulation)
	}
	if m.addsync_error_count != nil {
		fields = append(fields, city.FieldSyncErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case city.FieldPopulation:
		return m.AddedPopulation()
	case city.FieldSyncErrorCount:
		return m.AddedSyncErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case city.FieldPopulation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPopulation(v)
		return nil
	case city.FieldSyncErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSyncErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown City numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(city.FieldCounty) {
		fields = append(fields, city.FieldCounty)
	}
	if m.FieldCleared(city.FieldPopulation) {
		fields = append(fields, city.FieldPopulation)
	}
	if m.FieldCleared(city.FieldGeometry) {
		fields = append(fields, city.FieldGeometry)
	}
	if m.FieldCleared(city.FieldLastSyncedAt) {
		fields = append(fields, city.FieldLastSyncedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CityMutation) ClearField(name string) error {
	switch name {
	case city.FieldCounty:
		m.ClearCounty()
		return nil
	case city.FieldPopulation:
		m.ClearPopulation()
		return nil
	case city.FieldGeometry:
		m.ClearGeometry()
		return nil
	case city.FieldLastSyncedAt:
		m.ClearLastSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown City nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CityMutation) ResetField(name string) error {
	switch name {
	case city.FieldName:
		m.ResetName()
		return nil
	case city.FieldState:
		m.ResetState()
		return nil
	case city.FieldVendor:
		m.ResetVendor()
		return nil
	case city.FieldVendorSlug:
		m.ResetVendorSlug()
		return nil
	case city.FieldTimezone:
		m.ResetTimezone()
		return nil
	case city.FieldCounty:
		m.ResetCounty()
		return nil
	case city.FieldStatus:
		m.ResetStatus()
		return nil
	case city.FieldPopulation:
		m.ResetPopulation()
		return nil
	case city.FieldGeometry:
		m.ResetGeometry()
		return nil
	case city.FieldSyncErrorCount:
		m.ResetSyncErrorCount()
		return nil
	case city.FieldLastSyncedAt:
		m.ResetLastSyncedAt()
		return nil
	case city.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case city.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown City field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CityMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.meetings != nil {
		edges = append(edges, city.EdgeMeetings)
	}
	if m.matters != nil {
		edges = append(edges, city.EdgeMatters)
	}
	if m.council_members != nil {
		edges = append(edges, city.EdgeCouncilMembers)
	}
	if m.committees != nil {
		edges = append(edges, city.EdgeCommittees)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case city.EdgeMeetings:
		ids := make([]ent.Value, 0, len(m.meetings))
		for id := range m.meetings {
			ids = append(ids, id)
		}
		return ids
	case city.EdgeMatters:
		ids := make([]ent.Value, 0, len(m.matters))
		for id := range m.matters {
			ids = append(ids, id)
		}
		return ids
	case city.EdgeCouncilMembers:
		ids := make([]ent.Value, 0, len(m.council_members))
		for id := range m.council_members {
			ids = append(ids, id)
		}
		return ids
	case city.EdgeCommittees:
		ids := make([]ent.Value, 0, len(m.committees))
		for id := range m.committees {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmeetings != nil {
		edges = append(edges, city.EdgeMeetings)
	}
	if m.removedmatters != nil {
		edges = append(edges, city.EdgeMatters)
	}
	if m.removedcouncil_members != nil {
		edges = append(edges, city.EdgeCouncilMembers)
	}
	if m.removedcommittees != nil {
		edges = append(edges, city.EdgeCommittees)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case city.EdgeMeetings:
		ids := make([]ent.Value, 0, len(m.removedmeetings))
		for id := range m.removedmeetings {
			ids = append(ids, id)
		}
		return ids
	case city.EdgeMatters:
		ids := make([]ent.Value, 0, len(m.removedmatters))
		for id := range m.removedmatters {
			ids = append(ids, id)
		}
		return ids
	case city.EdgeCouncilMembers:
		ids := make([]ent.Value, 0, len(m.removedcouncil_members))
		for id := range m.removedcouncil_members {
			ids = append(ids, id)
		}
		return ids
	case city.EdgeCommittees:
		ids := make([]ent.Value, 0, len(m.removedcommittees))
		for id := range m.removedcommittees {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmeetings {
		edges = append(edges, city.EdgeMeetings)
	}
	if m.clearedmatters {
		edges = append(edges, city.EdgeMatters)
	}
	if m.clearedcouncil_members {
		edges = append(edges, city.EdgeCouncilMembers)
	}
	if m.clearedcommittees {
		edges = append(edges, city.EdgeCommittees)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CityMutation) EdgeCleared(name string) bool {
	switch name {
	case city.EdgeMeetings:
		return m.clearedmeetings
	case city.EdgeMatters:
		return m.clearedmatters
	case city.EdgeCouncilMembers:
		return m.clearedcouncil_members
	case city.EdgeCommittees:
		return m.clearedcommittees
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CityMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown City unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CityMutation) ResetEdge(name string) error {
	switch name {
	case city.EdgeMeetings:
		m.ResetMeetings()
		return nil
	case city.EdgeMatters:
		m.ResetMatters()
		return nil
	case city.EdgeCouncilMembers:
		m.ResetCouncilMembers()
		return nil
	case city.EdgeCommittees:
		m.ResetCommittees()
		return nil
	}
	return fmt.Errorf("unknown City edge %s", name)
}

// CommitteeMutation represents an operation that mutates the Committee nodes in the graph.
type CommitteeMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	normalized_name    *string
	vendor_body_id     *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	city               *string
	clearedcity        bool
	meetings           map[string]struct{}
	removedmeetings    map[string]struct{}
	clearedmeetings    bool
	memberships        map[string]struct{}
	removedmemberships map[string]struct{}
	clearedmemberships bool
	done               bool
	oldValue           func(context.Context) (*Committee, error)
	predicates         []predicate.Committee
}

var _ ent.Mutation = (*CommitteeMutation)(nil)

// committeeOption allows management of the mutation configuration using functional options.
type committeeOption func(*CommitteeMutation)

// newCommitteeMutation creates new mutation for the Committee entity.
func newCommitteeMutation(c config, op Op, opts ...committeeOption) *CommitteeMutation {
	m := &CommitteeMutation{
		config:        c,
		op:            op,
		typ:           TypeCommittee,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommitteeID sets the ID field of the mutation.
func withCommitteeID(id string) committeeOption {
	return func(m *CommitteeMutation) {
		var (
			err   error
			once  sync.Once
			value *Committee
		)
		m.oldValue = func(ctx context.Context) (*Committee, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Committee.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommittee sets the old Committee of the mutation.
func withCommittee(node *Committee) committeeOption {
	return func(m *CommitteeMutation) {
		m.oldValue = func(context.Context) (*Committee, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommitteeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommitteeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Committee entities.
func (m *CommitteeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommitteeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommitteeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Committee.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBanana sets the "banana" field.
func (m *CommitteeMutation) SetBanana(s string) {
	m.city = &s
}

// Banana returns the value of the "banana" field in the mutation.
func (m *CommitteeMutation) Banana() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldBanana returns the old "banana" field's value of the Committee entity.
// If the Committee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMutation) OldBanana(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBanana is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBanana requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBanana: %w", err)
	}
	return oldValue.Banana, nil
}

// ResetBanana resets all changes to the "banana" field.
func (m *CommitteeMutation) ResetBanana() {
	m.city = nil
}

// SetName sets the "name" field.
func (m *CommitteeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CommitteeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Committee entity.
// If the Committee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CommitteeMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *CommitteeMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *CommitteeMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Committee entity.
// If the Committee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *CommitteeMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetVendorBodyID sets the "vendor_body_id" field.
func (m *CommitteeMutation) SetVendorBodyID(s string) {
	m.vendor_body_id = &s
}

// VendorBodyID returns the value of the "vendor_body_id" field in the mutation.
func (m *CommitteeMutation) VendorBodyID() (r string, exists bool) {
	v := m.vendor_body_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorBodyID returns the old "vendor_body_id" field's value of the Committee entity.
// If the Committee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMutation) OldVendorBodyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorBodyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorBodyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorBodyID: %w", err)
	}
	return oldValue.VendorBodyID, nil
}

// ClearVendorBodyID clears the value of the "vendor_body_id" field.
func (m *CommitteeMutation) ClearVendorBodyID() {
	m.vendor_body_id = nil
	m.clearedFields[committee.FieldVendorBodyID] = struct{}{}
}

// VendorBodyIDCleared returns if the "vendor_body_id" field was cleared in this mutation.
func (m *CommitteeMutation) VendorBodyIDCleared() bool {
	_, ok := m.clearedFields[committee.FieldVendorBodyID]
	return ok
}

// ResetVendorBodyID resets all changes to the "vendor_body_id" field.
func (m *CommitteeMutation) ResetVendorBodyID() {
	m.vendor_body_id = nil
	delete(m.clearedFields, committee.FieldVendorBodyID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommitteeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommitteeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Committee entity.
// If the Committee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommitteeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCityID sets the "city" edge to the City entity by id.
func (m *CommitteeMutation) SetCityID(id string) {
	m.city = &id
}

// ClearCity clears the "city" edge to the City entity.
func (m *CommitteeMutation) ClearCity() {
	m.clearedcity = true
	m.clearedFields[committee.FieldBanana] = struct{}{}
}

// CityCleared reports if the "city" edge to the City entity was cleared.
func (m *CommitteeMutation) CityCleared() bool {
	return m.clearedcity
}

// CityID returns the "city" edge ID in the mutation.
func (m *CommitteeMutation) CityID() (id string, exists bool) {
	if m.city != nil {
		return *m.city, true
	}
	return
}

// CityIDs returns the "city" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CityID instead. It exists only for internal usage by the builders.
func (m *CommitteeMutation) CityIDs() (ids []string) {
	if id := m.city; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCity resets all changes to the "city" edge.
func (m *CommitteeMutation) ResetCity() {
	m.city = nil
	m.clearedcity = false
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by ids.
func (m *CommitteeMutation) AddMeetingIDs(ids ...string) {
	if m.meetings == nil {
		m.meetings = make(map[string]struct{})
	}
	for i := range ids {
		m.meetings[ids[i]] = struct{}{}
	}
}

// ClearMeetings clears the "meetings" edge to the Meeting entity.
func (m *CommitteeMutation) ClearMeetings() {
	m.clearedmeetings = true
}

// MeetingsCleared reports if the "meetings" edge to the Meeting entity was cleared.
func (m *CommitteeMutation) MeetingsCleared() bool {
	return m.clearedmeetings
}

// RemoveMeetingIDs removes the "meetings" edge to the Meeting entity by IDs.
func (m *CommitteeMutation) RemoveMeetingIDs(ids ...string) {
	if m.removedmeetings == nil {
		m.removedmeetings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.meetings, ids[i])
		m.removedmeetings[ids[i]] = struct{}{}
	}
}

// RemovedMeetings returns the removed IDs of the "meetings" edge to the Meeting entity.
func (m *CommitteeMutation) RemovedMeetingsIDs() (ids []string) {
	for id := range m.removedmeetings {
		ids = append(ids, id)
	}
	return
}

// MeetingsIDs returns the "meetings" edge IDs in the mutation.
func (m *CommitteeMutation) MeetingsIDs() (ids []string) {
	for id := range m.meetings {
		ids = append(ids, id)
	}
	return
}

// ResetMeetings resets all changes to the "meetings" edge.
func (m *CommitteeMutation) ResetMeetings() {
	m.meetings = nil
	m.clearedmeetings = false
	m.removedmeetings = nil
}

// AddMembershipIDs adds the "memberships" edge to the CommitteeMembership entity by ids.
func (m *CommitteeMutation) AddMembershipIDs(ids ...string) {
	if m.memberships == nil {
		m.memberships = make(map[string]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the CommitteeMembership entity.
func (m *CommitteeMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the CommitteeMembership entity was cleared.
func (m *CommitteeMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the CommitteeMembership entity by IDs.
func (m *CommitteeMutation) RemoveMembershipIDs(ids ...string) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the CommitteeMembership entity.
func (m *CommitteeMutation) RemovedMembershipsIDs() (ids []string) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *CommitteeMutation) MembershipsIDs() (ids []string) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *CommitteeMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// Where appends a list predicates to the CommitteeMutation builder.
func (m *CommitteeMutation) Where(ps ...predicate.Committee) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommitteeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommitteeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Committee, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommitteeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommitteeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Committee).
func (m *CommitteeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommitteeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.city != nil {
		fields = append(fields, committee.FieldBanana)
	}
	if m.name != nil {
		fields = append(fields, committee.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, committee.FieldNormalizedName)
	}
	if m.vendor_body_id != nil {
		fields = append(fields, committee.FieldVendorBodyID)
	}
	if m.created_at != nil {
		fields = append(fields, committee.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommitteeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case committee.FieldBanana:
		return m.Banana()
	case committee.FieldName:
		return m.Name()
	case committee.FieldNormalizedName:
		return m.NormalizedName()
	case committee.FieldVendorBodyID:
		return m.VendorBodyID()
	case committee.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommitteeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case committee.FieldBanana:
		return m.OldBanana(ctx)
	case committee.FieldName:
		return m.OldName(ctx)
	case committee.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case committee.FieldVendorBodyID:
		return m.OldVendorBodyID(ctx)
	case committee.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Committee field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitteeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case committee.FieldBanana:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBanana(v)
		return nil
	case committee.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case committee.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case committee.FieldVendorBodyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorBodyID(v)
		return nil
	case committee.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Committee field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommitteeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommitteeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitteeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Committee numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommitteeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(committee.FieldVendorBodyID) {
		fields = append(fields, committee.FieldVendorBodyID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommitteeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommitteeMutation) ClearField(name string) error {
	switch name {
	case committee.FieldVendorBodyID:
		m.ClearVendorBodyID()
		return nil
	}
	return fmt.Errorf("unknown Committee nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommitteeMutation) ResetField(name string) error {
	switch name {
	case committee.FieldBanana:
		m.ResetBanana()
		return nil
	case committee.FieldName:
		m.ResetName()
		return nil
	case committee.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case committee.FieldVendorBodyID:
		m.ResetVendorBodyID()
		return nil
	case committee.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Committee field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommitteeMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.city != nil {
		edges = append(edges, committee.EdgeCity)
	}
	if m.meetings != nil {
		edges = append(edges, committee.EdgeMeetings)
	}
	if m.memberships != nil {
		edges = append(edges, committee.EdgeMemberships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommitteeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case committee.EdgeCity:
		if id := m.city; id != nil {
			return []ent.Value{*id}
		}
	case committee.EdgeMeetings:
		ids := make([]ent.Value, 0, len(m.meetings))
		for id := range m.meetings {
			ids = append(ids, id)
		}
		return ids
	case committee.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommitteeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmeetings != nil {
		edges = append(edges, committee.EdgeMeetings)
	}
	if m.removedmemberships != nil {
		edges = append(edges, committee.EdgeMemberships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommitteeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case committee.EdgeMeetings:
		ids := make([]ent.Value, 0, len(m.removedmeetings))
		for id := range m.removedmeetings {
			ids = append(ids, id)
		}
		return ids
	case committee.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommitteeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcity {
		edges = append(edges, committee.EdgeCity)
	}
	if m.clearedmeetings {
		edges = append(edges, committee.EdgeMeetings)
	}
	if m.clearedmemberships {
		edges = append(edges, committee.EdgeMemberships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommitteeMutation) EdgeCleared(name string) bool {
	switch name {
	case committee.EdgeCity:
		return m.clearedcity
	case committee.EdgeMeetings:
		return m.clearedmeetings
	case committee.EdgeMemberships:
		return m.clearedmemberships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommitteeMutation) ClearEdge(name string) error {
	switch name {
	case committee.EdgeCity:
		m.ClearCity()
		return nil
	}
	return fmt.Errorf("unknown Committee unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommitteeMutation) ResetEdge(name string) error {
	switch name {
	case committee.EdgeCity:
		m.ResetCity()
		return nil
	case committee.EdgeMeetings:
		m.ResetMeetings()
		return nil
	case committee.EdgeMemberships:
		m.ResetMemberships()
		return nil
	}
	return fmt.Errorf("unknown Committee edge %s", name)
}

// CommitteeMembershipMutation represents an operation that mutates the CommitteeMembership nodes in the graph.
type CommitteeMembershipMutation struct {
	config
	op               Op
	typ              string
	id               *string
	role             *string
	joined_at        *time.Time
	left_at          *time.Time
	clearedFields    map[string]struct{}
	committee        *string
	clearedcommittee bool
	member           *string
	clearedmember    bool
	done             bool
	oldValue         func(context.Context) (*CommitteeMembership, error)
	predicates       []predicate.CommitteeMembership
}

var _ ent.Mutation = (*CommitteeMembershipMutation)(nil)

// committeemembershipOption allows management of the mutation configuration using functional options.
type committeemembershipOption func(*CommitteeMembershipMutation)

// newCommitteeMembershipMutation creates new mutation for the CommitteeMembership entity.
func newCommitteeMembershipMutation(c config, op Op, opts ...committeemembershipOption) *CommitteeMembershipMutation {
	m := &CommitteeMembershipMutation{
		config:        c,
		op:            op,
		typ:           TypeCommitteeMembership,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommitteeMembershipID sets the ID field of the mutation.
func withCommitteeMembershipID(id string) committeemembershipOption {
	return func(m *CommitteeMembershipMutation) {
		var (
			err   error
			once  sync.Once
			value *CommitteeMembership
		)
		m.oldValue = func(ctx context.Context) (*CommitteeMembership, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommitteeMembership.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommitteeMembership sets the old CommitteeMembership of the mutation.
func withCommitteeMembership(node *CommitteeMembership) committeemembershipOption {
	return func(m *CommitteeMembershipMutation) {
		m.oldValue = func(context.Context) (*CommitteeMembership, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommitteeMembershipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommitteeMembershipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommitteeMembership entities.
func (m *CommitteeMembershipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommitteeMembershipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommitteeMembershipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommitteeMembership.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommitteeID sets the "committee_id" field.
func (m *CommitteeMembershipMutation) SetCommitteeID(s string) {
	m.committee = &s
}

// CommitteeID returns the value of the "committee_id" field in the mutation.
func (m *CommitteeMembershipMutation) CommitteeID() (r string, exists bool) {
	v := m.committee
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitteeID returns the old "committee_id" field's value of the CommitteeMembership entity.
// If the CommitteeMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMembershipMutation) OldCommitteeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitteeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitteeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitteeID: %w", err)
	}
	return oldValue.CommitteeID, nil
}

// ResetCommitteeID resets all changes to the "committee_id" field.
func (m *CommitteeMembershipMutation) ResetCommitteeID() {
	m.committee = nil
}

// SetMemberID sets the "member_id" field.
func (m *CommitteeMembershipMutation) SetMemberID(s string) {
	m.member = &s
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *CommitteeMembershipMutation) MemberID() (r string, exists bool) {
	v := m.member
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the CommitteeMembership entity.
// If the CommitteeMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMembershipMutation) OldMemberID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *CommitteeMembershipMutation) ResetMemberID() {
	m.member = nil
}

// SetRole sets the "role" field.
func (m *CommitteeMembershipMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *CommitteeMembershipMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the CommitteeMembership entity.
// If the CommitteeMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMembershipMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *CommitteeMembershipMutation) ClearRole() {
	m.role = nil
	m.clearedFields[committeemembership.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *CommitteeMembershipMutation) RoleCleared() bool {
	_, ok := m.clearedFields[committeemembership.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *CommitteeMembershipMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, committeemembership.FieldRole)
}

// SetJoinedAt sets the "joined_at" field.
func (m *CommitteeMembershipMutation) SetJoinedAt(t time.Time) {
	m.joined_at = &t
}

// JoinedAt returns the value of the "joined_at" field in the mutation.
func (m *CommitteeMembershipMutation) JoinedAt() (r time.Time, exists bool) {
	v := m.joined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinedAt returns the old "joined_at" field's value of the CommitteeMembership entity.
// If the CommitteeMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMembershipMutation) OldJoinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinedAt: %w", err)
	}
	return oldValue.JoinedAt, nil
}

// ResetJoinedAt resets all changes to the "joined_at" field.
func (m *CommitteeMembershipMutation) ResetJoinedAt() {
	m.joined_at = nil
}

// SetLeftAt sets the "left_at" field.
func (m *CommitteeMembershipMutation) SetLeftAt(t time.Time) {
	m.left_at = &t
}

// LeftAt returns the value of the "left_at" field in the mutation.
func (m *CommitteeMembershipMutation) LeftAt() (r time.Time, exists bool) {
	v := m.left_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftAt returns the old "left_at" field's value of the CommitteeMembership entity.
// If the CommitteeMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommitteeMembershipMutation) OldLeftAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftAt: %w", err)
	}
	return oldValue.LeftAt, nil
}

// ClearLeftAt clears the value of the "left_at" field.
func (m *CommitteeMembershipMutation) ClearLeftAt() {
	m.left_at = nil
	m.clearedFields[committeemembership.FieldLeftAt] = struct{}{}
}

// LeftAtCleared returns if the "left_at" field was cleared in this mutation.
func (m *CommitteeMembershipMutation) LeftAtCleared() bool {
	_, ok := m.clearedFields[committeemembership.FieldLeftAt]
	return ok
}

// ResetLeftAt resets all changes to the "left_at" field.
func (m *CommitteeMembershipMutation) ResetLeftAt() {
	m.left_at = nil
	delete(m.clearedFields, committeemembership.FieldLeftAt)
}

// ClearCommittee clears the "committee" edge to the Committee entity.
func (m *CommitteeMembershipMutation) ClearCommittee() {
	m.clearedcommittee = true
	m.clearedFields[committeemembership.FieldCommitteeID] = struct{}{}
}

// CommitteeCleared reports if the "committee" edge to the Committee entity was cleared.
func (m *CommitteeMembershipMutation) CommitteeCleared() bool {
	return m.clearedcommittee
}

// CommitteeIDs returns the "committee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommitteeID instead. It exists only for internal usage by the builders.
func (m *CommitteeMembershipMutation) CommitteeIDs() (ids []string) {
	if id := m.committee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommittee resets all changes to the "committee" edge.
func (m *CommitteeMembershipMutation) ResetCommittee() {
	m.committee = nil
	m.clearedcommittee = false
}

// ClearMember clears the "member" edge to the CouncilMember entity.
func (m *CommitteeMembershipMutation) ClearMember() {
	m.clearedmember = true
	m.clearedFields[committeemembership.FieldMemberID] = struct{}{}
}

// MemberCleared reports if the "member" edge to the CouncilMember entity was cleared.
func (m *CommitteeMembershipMutation) MemberCleared() bool {
	return m.clearedmember
}

// MemberIDs returns the "member" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemberID instead. It exists only for internal usage by the builders.
func (m *CommitteeMembershipMutation) MemberIDs() (ids []string) {
	if id := m.member; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMember resets all changes to the "member" edge.
func (m *CommitteeMembershipMutation) ResetMember() {
	m.member = nil
	m.clearedmember = false
}

// Where appends a list predicates to the CommitteeMembershipMutation builder.
func (m *CommitteeMembershipMutation) Where(ps ...predicate.CommitteeMembership) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommitteeMembershipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommitteeMembershipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommitteeMembership, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommitteeMembershipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommitteeMembershipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommitteeMembership).
func (m *CommitteeMembershipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommitteeMembershipMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.committee != nil {
		fields = append(fields, committeemembership.FieldCommitteeID)
	}
	if m.member != nil {
		fields = append(fields, committeemembership.FieldMemberID)
	}
	if m.role != nil {
		fields = append(fields, committeemembership.FieldRole)
	}
	if m.joined_at != nil {
		fields = append(fields, committeemembership.FieldJoinedAt)
	}
	if m.left_at != nil {
		fields = append(fields, committeemembership.FieldLeftAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommitteeMembershipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case committeemembership.FieldCommitteeID:
		return m.CommitteeID()
	case committeemembership.FieldMemberID:
		return m.MemberID()
	case committeemembership.FieldRole:
		return m.Role()
	case committeemembership.FieldJoinedAt:
		return m.JoinedAt()
	case committeemembership.FieldLeftAt:
		return m.LeftAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommitteeMembershipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case committeemembership.FieldCommitteeID:
		return m.OldCommitteeID(ctx)
	case committeemembership.FieldMemberID:
		return m.OldMemberID(ctx)
	case committeemembership.FieldRole:
		return m.OldRole(ctx)
	case committeemembership.FieldJoinedAt:
		return m.OldJoinedAt(ctx)
	case committeemembership.FieldLeftAt:
		return m.OldLeftAt(ctx)
	}
	return nil, fmt.Errorf("unknown CommitteeMembership field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitteeMembershipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case committeemembership.FieldCommitteeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitteeID(v)
		return nil
	case committeemembership.FieldMemberID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case committeemembership.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case committeemembership.FieldJoinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinedAt(v)
		return nil
	case committeemembership.FieldLeftAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftAt(v)
		return nil
	}
	return fmt.Errorf("unknown CommitteeMembership field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommitteeMembershipMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommitteeMembershipMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommitteeMembershipMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommitteeMembership numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommitteeMembershipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(committeemembership.FieldRole) {
		fields = append(fields, committeemembership.FieldRole)
	}
	if m.FieldCleared(committeemembership.FieldLeftAt) {
		fields = append(fields, committeemembership.FieldLeftAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommitteeMembershipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommitteeMembershipMutation) ClearField(name string) error {
	switch name {
	case committeemembership.FieldRole:
		m.ClearRole()
		return nil
	case committeemembership.FieldLeftAt:
		m.ClearLeftAt()
		return nil
	}
	return fmt.Errorf("unknown CommitteeMembership nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommitteeMembershipMutation) ResetField(name string) error {
	switch name {
	case committeemembership.FieldCommitteeID:
		m.ResetCommitteeID()
		return nil
	case committeemembership.FieldMemberID:
		m.ResetMemberID()
		return nil
	case committeemembership.FieldRole:
		m.ResetRole()
		return nil
	case committeemembership.FieldJoinedAt:
		m.ResetJoinedAt()
		return nil
	case committeemembership.FieldLeftAt:
		m.ResetLeftAt()
		return nil
	}
	return fmt.Errorf("unknown CommitteeMembership field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommitteeMembershipMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.committee != nil {
		edges = append(edges, committeemembership.EdgeCommittee)
	}
	if m.member != nil {
		edges = append(edges, committeemembership.EdgeMember)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommitteeMembershipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case committeemembership.EdgeCommittee:
		if id := m.committee; id != nil {
			return []ent.Value{*id}
		}
	case committeemembership.EdgeMember:
		if id := m.member; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommitteeMembershipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommitteeMembershipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommitteeMembershipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcommittee {
		edges = append(edges, committeemembership.EdgeCommittee)
	}
	if m.clearedmember {
		edges = append(edges, committeemembership.EdgeMember)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommitteeMembershipMutation) EdgeCleared(name string) bool {
	switch name {
	case committeemembership.EdgeCommittee:
		return m.clearedcommittee
	case committeemembership.EdgeMember:
		return m.clearedmember
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommitteeMembershipMutation) ClearEdge(name string) error {
	switch name {
	case committeemembership.EdgeCommittee:
		m.ClearCommittee()
		return nil
	case committeemembership.EdgeMember:
		m.ClearMember()
		return nil
	}
	return fmt.Errorf("unknown CommitteeMembership unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommitteeMembershipMutation) ResetEdge(name string) error {
	switch name {
	case committeemembership.EdgeCommittee:
		m.ResetCommittee()
		return nil
	case committeemembership.EdgeMember:
		m.ResetMember()
		return nil
	}
	return fmt.Errorf("unknown CommitteeMembership edge %s", name)
}

// CouncilMemberMutation represents an operation that mutates the CouncilMember nodes in the graph.
type CouncilMemberMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	normalized_name      *string
	title                *string
	district             *string
	status               *councilmember.Status
	first_seen           *time.Time
	last_seen            *time.Time
	sponsorship_count    *int
	addsponsorship_count *int
	vote_count           *int
	addvote_count        *int
	metadata             *map[string]interface{}
	clearedFields        map[string]struct{}
	city                 *string
	clearedcity          bool
	votes                map[string]struct{}
	removedvotes         map[string]struct{}
	clearedvotes         bool
	memberships          map[string]struct{}
	removedmemberships   map[string]struct{}
	clearedmemberships   bool
	done                 bool
	oldValue             func(context.Context) (*CouncilMember, error)
	predicates           []predicate.CouncilMember
}

var _ ent.Mutation = (*CouncilMemberMutation)(nil)

// councilmemberOption allows management of the mutation configuration using functional options.
type councilmemberOption func(*CouncilMemberMutation)

// newCouncilMemberMutation creates new mutation for the CouncilMember entity.
func newCouncilMemberMutation(c config, op Op, opts ...councilmemberOption) *CouncilMemberMutation {
	m := &CouncilMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeCouncilMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCouncilMemberID sets the ID field of the mutation.
func withCouncilMemberID(id string) councilmemberOption {
	return func(m *CouncilMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *CouncilMember
		)
		m.oldValue = func(ctx context.Context) (*CouncilMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CouncilMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCouncilMember sets the old CouncilMember of the mutation.
func withCouncilMember(node *CouncilMember) councilmemberOption {
	return func(m *CouncilMemberMutation) {
		m.oldValue = func(context.Context) (*CouncilMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CouncilMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CouncilMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CouncilMember entities.
func (m *CouncilMemberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CouncilMemberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CouncilMemberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CouncilMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBanana sets the "banana" field.
func (m *CouncilMemberMutation) SetBanana(s string) {
	m.city = &s
}

// Banana returns the value of the "banana" field in the mutation.
func (m *CouncilMemberMutation) Banana() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldBanana returns the old "banana" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldBanana(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBanana is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBanana requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBanana: %w", err)
	}
	return oldValue.Banana, nil
}

// ResetBanana resets all changes to the "banana" field.
func (m *CouncilMemberMutation) ResetBanana() {
	m.city = nil
}

// SetName sets the "name" field.
func (m *CouncilMemberMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CouncilMemberMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CouncilMemberMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *CouncilMemberMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *CouncilMemberMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *CouncilMemberMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetTitle sets the "title" field.
func (m *CouncilMemberMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CouncilMemberMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CouncilMemberMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[councilmember.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CouncilMemberMutation) TitleCleared() bool {
	_, ok := m.clearedFields[councilmember.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CouncilMemberMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, councilmember.FieldTitle)
}

// SetDistrict sets the "district" field.
func (m *CouncilMemberMutation) SetDistrict(s string) {
	m.district = &s
}

// District returns the value of the "district" field in the mutation.
func (m *CouncilMemberMutation) District() (r string, exists bool) {
	v := m.district
	if v == nil {
		return
	}
	return *v, true
}

// OldDistrict returns the old "district" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldDistrict(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistrict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistrict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistrict: %w", err)
	}
	return oldValue.District, nil
}

// ClearDistrict clears the value of the "district" field.
func (m *CouncilMemberMutation) ClearDistrict() {
	m.district = nil
	m.clearedFields[councilmember.FieldDistrict] = struct{}{}
}

// DistrictCleared returns if the "district" field was cleared in this mutation.
func (m *CouncilMemberMutation) DistrictCleared() bool {
	_, ok := m.clearedFields[councilmember.FieldDistrict]
	return ok
}

// ResetDistrict resets all changes to the "district" field.
func (m *CouncilMemberMutation) ResetDistrict() {
	m.district = nil
	delete(m.clearedFields, councilmember.FieldDistrict)
}

// SetStatus sets the "status" field.
func (m *CouncilMemberMutation) SetStatus(c councilmember.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CouncilMemberMutation) Status() (r councilmember.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldStatus(ctx context.Context) (v councilmember.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CouncilMemberMutation) ResetStatus() {
	m.status = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *CouncilMemberMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *CouncilMemberMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *CouncilMemberMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *CouncilMemberMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *CouncilMemberMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *CouncilMemberMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetSponsorshipCount sets the "sponsorship_count" field.
func (m *CouncilMemberMutation) SetSponsorshipCount(i int) {
	m.sponsorship_count = &i
	m.addsponsorship_count = nil
}

// SponsorshipCount returns the value of the "sponsorship_count" field in the mutation.
func (m *CouncilMemberMutation) SponsorshipCount() (r int, exists bool) {
	v := m.sponsorship_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSponsorshipCount returns the old "sponsorship_count" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldSponsorshipCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSponsorshipCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSponsorshipCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSponsorshipCount: %w", err)
	}
	return oldValue.SponsorshipCount, nil
}

// AddSponsorshipCount adds i to the "sponsorship_count" field.
func (m *CouncilMemberMutation) AddSponsorshipCount(i int) {
	if m.addsponsorship_count != nil {
		*m.addsponsorship_count += i
	} else {
		m.addsponsorship_count = &i
	}
}

// AddedSponsorshipCount returns the value that was added to the "sponsorship_count" field in this mutation.
func (m *CouncilMemberMutation) AddedSponsorshipCount() (r int, exists bool) {
	v := m.addsponsorship_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSponsorshipCount resets all changes to the "sponsorship_count" field.
func (m *CouncilMemberMutation) ResetSponsorshipCount() {
	m.sponsorship_count = nil
	m.addsponsorship_count = nil
}

// SetVoteCount sets the "vote_count" field.
func (m *CouncilMemberMutation) SetVoteCount(i int) {
	m.vote_count = &i
	m.addvote_count = nil
}

// VoteCount returns the value of the "vote_count" field in the mutation.
func (m *CouncilMemberMutation) VoteCount() (r int, exists bool) {
	v := m.vote_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVoteCount returns the old "vote_count" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldVoteCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoteCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoteCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoteCount: %w", err)
	}
	return oldValue.VoteCount, nil
}

// AddVoteCount adds i to the "vote_count" field.
func (m *CouncilMemberMutation) AddVoteCount(i int) {
	if m.addvote_count != nil {
		*m.addvote_count += i
	} else {
		m.addvote_count = &i
	}
}

// AddedVoteCount returns the value that was added to the "vote_count" field in this mutation.
func (m *CouncilMemberMutation) AddedVoteCount() (r int, exists bool) {
	v := m.addvote_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVoteCount resets all changes to the "vote_count" field.
func (m *CouncilMemberMutation) ResetVoteCount() {
	m.vote_count = nil
	m.addvote_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *CouncilMemberMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CouncilMemberMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the CouncilMember entity.
// If the CouncilMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilMemberMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CouncilMemberMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[councilmember.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CouncilMemberMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[councilmember.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CouncilMemberMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, councilmember.FieldMetadata)
}

// SetCityID sets the "city" edge to the City entity by id.
func (m *CouncilMemberMutation) SetCityID(id string) {
	m.city = &id
}

// ClearCity clears the "city" edge to the City entity.
func (m *CouncilMemberMutation) ClearCity() {
	m.clearedcity = true
	m.clearedFields[councilmember.FieldBanana] = struct{}{}
}

// CityCleared reports if the "city" edge to the City entity was cleared.
func (m *CouncilMemberMutation) CityCleared() bool {
	return m.clearedcity
}

// CityID returns the "city" edge ID in the mutation.
func (m *CouncilMemberMutation) CityID() (id string, exists bool) {
	if m.city != nil {
		return *m.city, true
	}
	return
}

// CityIDs returns the "city" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CityID instead. It exists only for internal usage by the builders.
func (m *CouncilMemberMutation) CityIDs() (ids []string) {
	if id := m.city; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCity resets all changes to the "city" edge.
func (m *CouncilMemberMutation) ResetCity() {
	m.city = nil
	m.clearedcity = false
}

// AddVoteIDs adds the "votes" edge to the Vote entity by ids.
func (m *CouncilMemberMutation) AddVoteIDs(ids ...string) {
	if m.votes == nil {
		m.votes = make(map[string]struct{})
	}
	for i := range ids {
		m.votes[ids[i]] = struct{}{}
	}
}

// ClearVotes clears the "votes" edge to the Vote entity.
func (m *CouncilMemberMutation) ClearVotes() {
	m.clearedvotes = true
}

// VotesCleared reports if the "votes" edge to the Vote entity was cleared.
func (m *CouncilMemberMutation) VotesCleared() bool {
	return m.clearedvotes
}

// RemoveVoteIDs removes the "votes" edge to the Vote entity by IDs.
func (m *CouncilMemberMutation) RemoveVoteIDs(ids ...string) {
	if m.removedvotes == nil {
		m.removedvotes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.votes, ids[i])
		m.removedvotes[ids[i]] = struct{}{}
	}
}

// RemovedVotes returns the removed IDs of the "votes" edge to the Vote entity.
func (m *CouncilMemberMutation) RemovedVotesIDs() (ids []string) {
	for id := range m.removedvotes {
		ids = append(ids, id)
	}
	return
}

// VotesIDs returns the "votes" edge IDs in the mutation.
func (m *CouncilMemberMutation) VotesIDs() (ids []string) {
	for id := range m.votes {
		ids = append(ids, id)
	}
	return
}

// ResetVotes resets all changes to the "votes" edge.
func (m *CouncilMemberMutation) ResetVotes() {
	m.votes = nil
	m.clearedvotes = false
	m.removedvotes = nil
}

// AddMembershipIDs adds the "memberships" edge to the CommitteeMembership entity by ids.
func (m *CouncilMemberMutation) AddMembershipIDs(ids ...string) {
	if m.memberships == nil {
		m.memberships = make(map[string]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the CommitteeMembership entity.
func (m *CouncilMemberMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the CommitteeMembership entity was cleared.
func (m *CouncilMemberMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the CommitteeMembership entity by IDs.
func (m *CouncilMemberMutation) RemoveMembershipIDs(ids ...string) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the CommitteeMembership entity.
func (m *CouncilMemberMutation) RemovedMembershipsIDs() (ids []string) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *CouncilMemberMutation) MembershipsIDs() (ids []string) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *CouncilMemberMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// Where appends a list predicates to the CouncilMemberMutation builder.
func (m *CouncilMemberMutation) Where(ps ...predicate.CouncilMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CouncilMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CouncilMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CouncilMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CouncilMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CouncilMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CouncilMember).
func (m *CouncilMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CouncilMemberMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.city != nil {
		fields = append(fields, councilmember.FieldBanana)
	}
	if m.name != nil {
		fields = append(fields, councilmember.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, councilmember.FieldNormalizedName)
	}
	if m.title != nil {
		fields = append(fields, councilmember.FieldTitle)
	}
	if m.district != nil {
		fields = append(fields, councilmember.FieldDistrict)
	}
	if m.status != nil {
		fields = append(fields, councilmember.FieldStatus)
	}
	if m.first_seen != nil {
		fields = append(fields, councilmember.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, councilmember.FieldLastSeen)
	}
	if m.sponsorship_count != nil {
		fields = append(fields, councilmember.FieldSponsorshipCount)
	}
	if m.vote_count != nil {
		fields = append(fields, councilmember.FieldVoteCount)
	}
	if m.metadata != nil {
		fields = append(fields, councilmember.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CouncilMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case councilmember.FieldBanana:
		return m.Banana()
	case councilmember.FieldName:
		return m.Name()
	case councilmember.FieldNormalizedName:
		return m.NormalizedName()
	case councilmember.FieldTitle:
		return m.Title()
	case councilmember.FieldDistrict:
		return m.District()
	case councilmember.FieldStatus:
		return m.Status()
	case councilmember.FieldFirstSeen:
		return m.FirstSeen()
	case councilmember.FieldLastSeen:
		return m.LastSeen()
	case councilmember.FieldSponsorshipCount:
		return m.SponsorshipCount()
	case councilmember.FieldVoteCount:
		return m.VoteCount()
	case councilmember.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CouncilMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case councilmember.FieldBanana:
		return m.OldBanana(ctx)
	case councilmember.FieldName:
		return m.OldName(ctx)
	case councilmember.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case councilmember.FieldTitle:
		return m.OldTitle(ctx)
	case councilmember.FieldDistrict:
		return m.OldDistrict(ctx)
	case councilmember.FieldStatus:
		return m.OldStatus(ctx)
	case councilmember.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case councilmember.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case councilmember.FieldSponsorshipCount:
		return m.OldSponsorshipCount(ctx)
	case councilmember.FieldVoteCount:
		return m.OldVoteCount(ctx)
	case councilmember.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown CouncilMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CouncilMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case councilmember.FieldBanana:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBanana(v)
		return nil
	case councilmember.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case councilmember.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case councilmember.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case councilmember.FieldDistrict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistrict(v)
		return nil
	case councilmember.FieldStatus:
		v, ok := value.(councilmember.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case councilmember.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case councilmember.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case councilmember.FieldSponsorshipCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSponsorshipCount(v)
		return nil
	case councilmember.FieldVoteCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoteCount(v)
		return nil
	case councilmember.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown CouncilMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CouncilMemberMutation) AddedFields() []string {
	var fields []string
	if m.addsponsorship_count != nil {
		fields = append(fields, councilmember.FieldSponsorshipCount)
	}
	if m.addvote_count != nil {
		fields = append(fields, councilmember.FieldVoteCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CouncilMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case councilmember.FieldSponsorshipCount:
		return m.AddedSponsorshipCount()
	case councilmember.FieldVoteCount:
		return m.AddedVoteCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CouncilMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	case councilmember.FieldSponsorshipCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSponsorshipCount(v)
		return nil
	case councilmember.FieldVoteCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVoteCount(v)
		return nil
	}
	return fmt.Errorf("unknown CouncilMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CouncilMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(councilmember.FieldTitle) {
		fields = append(fields, councilmember.FieldTitle)
	}
	if m.FieldCleared(councilmember.FieldDistrict) {
		fields = append(fields, councilmember.FieldDistrict)
	}
	if m.FieldCleared(councilmember.FieldMetadata) {
		fields = append(fields, councilmember.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CouncilMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CouncilMemberMutation) ClearField(name string) error {
	switch name {
	case councilmember.FieldTitle:
		m.ClearTitle()
		return nil
	case councilmember.FieldDistrict:
		m.ClearDistrict()
		return nil
	case councilmember.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown CouncilMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CouncilMemberMutation) ResetField(name string) error {
	switch name {
	case councilmember.FieldBanana:
		m.ResetBanana()
		return nil
	case councilmember.FieldName:
		m.ResetName()
		return nil
	case councilmember.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case councilmember.FieldTitle:
		m.ResetTitle()
		return nil
	case councilmember.FieldDistrict:
		m.ResetDistrict()
		return nil
	case councilmember.FieldStatus:
		m.ResetStatus()
		return nil
	case councilmember.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case councilmember.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case councilmember.FieldSponsorshipCount:
		m.ResetSponsorshipCount()
		return nil
	case councilmember.FieldVoteCount:
		m.ResetVoteCount()
		return nil
	case councilmember.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown CouncilMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CouncilMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.city != nil {
		edges = append(edges, councilmember.EdgeCity)
	}
	if m.votes != nil {
		edges = append(edges, councilmember.EdgeVotes)
	}
	if m.memberships != nil {
		edges = append(edges, councilmember.EdgeMemberships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CouncilMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case councilmember.EdgeCity:
		if id := m.city; id != nil {
			return []ent.Value{*id}
		}
	case councilmember.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.votes))
		for id := range m.votes {
			ids = append(ids, id)
		}
		return ids
	case councilmember.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CouncilMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedvotes != nil {
		edges = append(edges, councilmember.EdgeVotes)
	}
	if m.removedmemberships != nil {
		edges = append(edges, councilmember.EdgeMemberships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CouncilMemberMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case councilmember.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.removedvotes))
		for id := range m.removedvotes {
			ids = append(ids, id)
		}
		return ids
	case councilmember.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CouncilMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcity {
		edges = append(edges, councilmember.EdgeCity)
	}
	if m.clearedvotes {
		edges = append(edges, councilmember.EdgeVotes)
	}
	if m.clearedmemberships {
		edges = append(edges, councilmember.EdgeMemberships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CouncilMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case councilmember.EdgeCity:
		return m.clearedcity
	case councilmember.EdgeVotes:
		return m.clearedvotes
	case councilmember.EdgeMemberships:
		return m.clearedmemberships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CouncilMemberMutation) ClearEdge(name string) error {
	switch name {
	case councilmember.EdgeCity:
		m.ClearCity()
		return nil
	}
	return fmt.Errorf("unknown CouncilMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CouncilMemberMutation) ResetEdge(name string) error {
	switch name {
	case councilmember.EdgeCity:
		m.ResetCity()
		return nil
	case councilmember.EdgeVotes:
		m.ResetVotes()
		return nil
	case councilmember.EdgeMemberships:
		m.ResetMemberships()
		return nil
	}
	return fmt.Errorf("unknown CouncilMember edge %s", name)
}

// MatterMutation represents an operation that mutates the Matter nodes in the graph.
type MatterMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	matter_file            *string
	matter_type            *string
	title                  *string
	sponsors               *[]string
	appendsponsors         []string
	canonical_summary      *string
	canonical_topics       *[]string
	appendcanonical_topics []string
	attachments            *[]models.Attachment
	appendattachments      []models.Attachment
	attachment_hash        *string
	metadata               *map[string]interface{}
	first_seen             *time.Time
	last_seen              *time.Time
	appearance_count       *int
	addappearance_count    *int
	status                 *matter.Status
	final_vote_date        *time.Time
	quality_score          *float64
	addquality_score       *float64
	clearedFields          map[string]struct{}
	city                   *string
	clearedcity            bool
	appearances            map[string]struct{}
	removedappearances     map[string]struct{}
	clearedappearances     bool
	votes                  map[string]struct{}
	removedvotes           map[string]struct{}
	clearedvotes           bool
	done                   bool
	oldValue               func(context.Context) (*Matter, error)
	predicates             []predicate.Matter
}

var _ ent.Mutation = (*MatterMutation)(nil)

// matterOption allows management of the mutation configuration using functional options.
type matterOption func(*MatterMutation)

// newMatterMutation creates new mutation for the Matter entity.
func newMatterMutation(c config, op Op, opts ...matterOption) *MatterMutation {
	m := &MatterMutation{
		config:        c,
		op:            op,
		typ:           TypeMatter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatterID sets the ID field of the mutation.
func withMatterID(id string) matterOption {
	return func(m *MatterMutation) {
		var (
			err   error
			once  sync.Once
			value *Matter
		)
		m.oldValue = func(ctx context.Context) (*Matter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Matter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatter sets the old Matter of the mutation.
func withMatter(node *Matter) matterOption {
	return func(m *MatterMutation) {
		m.oldValue = func(context.Context) (*Matter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Matter entities.
func (m *MatterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Matter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBanana sets the "banana" field.
func (m *MatterMutation) SetBanana(s string) {
	m.city = &s
}

// Banana returns the value of the "banana" field in the mutation.
func (m *MatterMutation) Banana() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldBanana returns the old "banana" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldBanana(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBanana is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBanana requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBanana: %w", err)
	}
	return oldValue.Banana, nil
}

// ResetBanana resets all changes to the "banana" field.
func (m *MatterMutation) ResetBanana() {
	m.city = nil
}

// SetMatterFile sets the "matter_file" field.
func (m *MatterMutation) SetMatterFile(s string) {
	m.matter_file = &s
}

// MatterFile returns the value of the "matter_file" field in the mutation.
func (m *MatterMutation) MatterFile() (r string, exists bool) {
	v := m.matter_file
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterFile returns the old "matter_file" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldMatterFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterFile: %w", err)
	}
	return oldValue.MatterFile, nil
}

// ClearMatterFile clears the value of the "matter_file" field.
func (m *MatterMutation) ClearMatterFile() {
	m.matter_file = nil
	m.clearedFields[matter.FieldMatterFile] = struct{}{}
}

// MatterFileCleared returns if the "matter_file" field was cleared in this mutation.
func (m *MatterMutation) MatterFileCleared() bool {
	_, ok := m.clearedFields[matter.FieldMatterFile]
	return ok
}

// ResetMatterFile resets all changes to the "matter_file" field.
func (m *MatterMutation) ResetMatterFile() {
	m.matter_file = nil
	delete(m.clearedFields, matter.FieldMatterFile)
}

// SetMatterType sets the "matter_type" field.
func (m *MatterMutation) SetMatterType(s string) {
	m.matter_type = &s
}

// MatterType returns the value of the "matter_type" field in the mutation.
func (m *MatterMutation) MatterType() (r string, exists bool) {
	v := m.matter_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterType returns the old "matter_type" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldMatterType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterType: %w", err)
	}
	return oldValue.MatterType, nil
}

// ClearMatterType clears the value of the "matter_type" field.
func (m *MatterMutation) ClearMatterType() {
	m.matter_type = nil
	m.clearedFields[matter.FieldMatterType] = struct{}{}
}

// MatterTypeCleared returns if the "matter_type" field was cleared in this mutation.
func (m *MatterMutation) MatterTypeCleared() bool {
	_, ok := m.clearedFields[matter.FieldMatterType]
	return ok
}

// ResetMatterType resets all changes to the "matter_type" field.
func (m *MatterMutation) ResetMatterType() {
	m.matter_type = nil
	delete(m.clearedFields, matter.FieldMatterType)
}

// SetTitle sets the "title" field.
func (m *MatterMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MatterMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MatterMutation) ResetTitle() {
	m.title = nil
}

// SetSponsors sets the "sponsors" field.
func (m *MatterMutation) SetSponsors(s []string) {
	m.sponsors = &s
	m.appendsponsors = nil
}

// Sponsors returns the value of the "sponsors" field in the mutation.
func (m *MatterMutation) Sponsors() (r []string, exists bool) {
	v := m.sponsors
	if v == nil {
		return
	}
	return *v, true
}

// OldSponsors returns the old "sponsors" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldSponsors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSponsors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSponsors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSponsors: %w", err)
	}
	return oldValue.Sponsors, nil
}

// AppendSponsors adds s to the "sponsors" field.
func (m *MatterMutation) AppendSponsors(s []string) {
	m.appendsponsors = append(m.appendsponsors, s...)
}

// AppendedSponsors returns the list of values that were appended to the "sponsors" field in this mutation.
func (m *MatterMutation) AppendedSponsors() ([]string, bool) {
	if len(m.appendsponsors) == 0 {
		return nil, false
	}
	return m.appendsponsors, true
}

// ClearSponsors clears the value of the "sponsors" field.
func (m *MatterMutation) ClearSponsors() {
	m.sponsors = nil
	m.appendsponsors = nil
	m.clearedFields[matter.FieldSponsors] = struct{}{}
}

// SponsorsCleared returns if the "sponsors" field was cleared in this mutation.
func (m *MatterMutation) SponsorsCleared() bool {
	_, ok := m.clearedFields[matter.FieldSponsors]
	return ok
}

// ResetSponsors resets all changes to the "sponsors" field.
func (m *MatterMutation) ResetSponsors() {
	m.sponsors = nil
	m.appendsponsors = nil
	delete(m.clearedFields, matter.FieldSponsors)
}

// SetCanonicalSummary sets the "canonical_summary" field.
func (m *MatterMutation) SetCanonicalSummary(s string) {
	m.canonical_summary = &s
}

// CanonicalSummary returns the value of the "canonical_summary" field in the mutation.
func (m *MatterMutation) CanonicalSummary() (r string, exists bool) {
	v := m.canonical_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalSummary returns the old "canonical_summary" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldCanonicalSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalSummary: %w", err)
	}
	return oldValue.CanonicalSummary, nil
}

// ClearCanonicalSummary clears the value of the "canonical_summary" field.
func (m *MatterMutation) ClearCanonicalSummary() {
	m.canonical_summary = nil
	m.clearedFields[matter.FieldCanonicalSummary] = struct{}{}
}

// CanonicalSummaryCleared returns if the "canonical_summary" field was cleared in this mutation.
func (m *MatterMutation) CanonicalSummaryCleared() bool {
	_, ok := m.clearedFields[matter.FieldCanonicalSummary]
	return ok
}

// ResetCanonicalSummary resets all changes to the "canonical_summary" field.
func (m *MatterMutation) ResetCanonicalSummary() {
	m.canonical_summary = nil
	delete(m.clearedFields, matter.FieldCanonicalSummary)
}

// SetCanonicalTopics sets the "canonical_topics" field.
func (m *MatterMutation) SetCanonicalTopics(s []string) {
	m.canonical_topics = &s
	m.appendcanonical_topics = nil
}

// CanonicalTopics returns the value of the "canonical_topics" field in the mutation.
func (m *MatterMutation) CanonicalTopics() (r []string, exists bool) {
	v := m.canonical_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalTopics returns the old "canonical_topics" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldCanonicalTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalTopics: %w", err)
	}
	return oldValue.CanonicalTopics, nil
}

// AppendCanonicalTopics adds s to the "canonical_topics" field.
func (m *MatterMutation) AppendCanonicalTopics(s []string) {
	m.appendcanonical_topics = append(m.appendcanonical_topics, s...)
}

// AppendedCanonicalTopics returns the list of values that were appended to the "canonical_topics" field in this mutation.
func (m *MatterMutation) AppendedCanonicalTopics() ([]string, bool) {
	if len(m.appendcanonical_topics) == 0 {
		return nil, false
	}
	return m.appendcanonical_topics, true
}

// ClearCanonicalTopics clears the value of the "canonical_topics" field.
func (m *MatterMutation) ClearCanonicalTopics() {
	m.canonical_topics = nil
	m.appendcanonical_topics = nil
	m.clearedFields[matter.FieldCanonicalTopics] = struct{}{}
}

// CanonicalTopicsCleared returns if the "canonical_topics" field was cleared in this mutation.
func (m *MatterMutation) CanonicalTopicsCleared() bool {
	_, ok := m.clearedFields[matter.FieldCanonicalTopics]
	return ok
}

// ResetCanonicalTopics resets all changes to the "canonical_topics" field.
func (m *MatterMutation) ResetCanonicalTopics() {
	m.canonical_topics = nil
	m.appendcanonical_topics = nil
	delete(m.clearedFields, matter.FieldCanonicalTopics)
}

// SetAttachments sets the "attachments" field.
func (m *MatterMutation) SetAttachments(value []models.Attachment) {
	m.attachments = &value
	m.appendattachments = nil
}

// Attachments returns the value of the "attachments" field in the mutation.
func (m *MatterMutation) Attachments() (r []models.Attachment, exists bool) {
	v := m.attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachments returns the old "attachments" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldAttachments(ctx context.Context) (v []models.Attachment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachments: %w", err)
	}
	return oldValue.Attachments, nil
}

// AppendAttachments adds value to the "attachments" field.
func (m *MatterMutation) AppendAttachments(value []models.Attachment) {
	m.appendattachments = append(m.appendattachments, value...)
}

// AppendedAttachments returns the list of values that were appended to the "attachments" field in this mutation.
func (m *MatterMutation) AppendedAttachments() ([]models.Attachment, bool) {
	if len(m.appendattachments) == 0 {
		return nil, false
	}
	return m.appendattachments, true
}

// ClearAttachments clears the value of the "attachments" field.
func (m *MatterMutation) ClearAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	m.clearedFields[matter.FieldAttachments] = struct{}{}
}

// AttachmentsCleared returns if the "attachments" field was cleared in this mutation.
func (m *MatterMutation) AttachmentsCleared() bool {
	_, ok := m.clearedFields[matter.FieldAttachments]
	return ok
}

// ResetAttachments resets all changes to the "attachments" field.
func (m *MatterMutation) ResetAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	delete(m.clearedFields, matter.FieldAttachments)
}

// SetAttachmentHash sets the "attachment_hash" field.
func (m *MatterMutation) SetAttachmentHash(s string) {
	m.attachment_hash = &s
}

// AttachmentHash returns the value of the "attachment_hash" field in the mutation.
func (m *MatterMutation) AttachmentHash() (r string, exists bool) {
	v := m.attachment_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachmentHash returns the old "attachment_hash" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldAttachmentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachmentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachmentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachmentHash: %w", err)
	}
	return oldValue.AttachmentHash, nil
}

// ClearAttachmentHash clears the value of the "attachment_hash" field.
func (m *MatterMutation) ClearAttachmentHash() {
	m.attachment_hash = nil
	m.clearedFields[matter.FieldAttachmentHash] = struct{}{}
}

// AttachmentHashCleared returns if the "attachment_hash" field was cleared in this mutation.
func (m *MatterMutation) AttachmentHashCleared() bool {
	_, ok := m.clearedFields[matter.FieldAttachmentHash]
	return ok
}

// ResetAttachmentHash resets all changes to the "attachment_hash" field.
func (m *MatterMutation) ResetAttachmentHash() {
	m.attachment_hash = nil
	delete(m.clearedFields, matter.FieldAttachmentHash)
}

// SetMetadata sets the "metadata" field.
func (m *MatterMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MatterMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MatterMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[matter.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MatterMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[matter.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MatterMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, matter.FieldMetadata)
}

// SetFirstSeen sets the "first_seen" field.
func (m *MatterMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *MatterMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *MatterMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *MatterMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *MatterMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *MatterMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetAppearanceCount sets the "appearance_count" field.
func (m *MatterMutation) SetAppearanceCount(i int) {
	m.appearance_count = &i
	m.addappearance_count = nil
}

// AppearanceCount returns the value of the "appearance_count" field in the mutation.
func (m *MatterMutation) AppearanceCount() (r int, exists bool) {
	v := m.appearance_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAppearanceCount returns the old "appearance_count" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldAppearanceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppearanceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppearanceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppearanceCount: %w", err)
	}
	return oldValue.AppearanceCount, nil
}

// AddAppearanceCount adds i to the "appearance_count" field.
func (m *MatterMutation) AddAppearanceCount(i int) {
	if m.addappearance_count != nil {
		*m.addappearance_count += i
	} else {
		m.addappearance_count = &i
	}
}

// AddedAppearanceCount returns the value that was added to the "appearance_count" field in this mutation.
func (m *MatterMutation) AddedAppearanceCount() (r int, exists bool) {
	v := m.addappearance_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAppearanceCount resets all changes to the "appearance_count" field.
func (m *MatterMutation) ResetAppearanceCount() {
	m.appearance_count = nil
	m.addappearance_count = nil
}

// SetStatus sets the "status" field.
func (m *MatterMutation) SetStatus(value matter.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MatterMutation) Status() (r matter.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldStatus(ctx context.Context) (v matter.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MatterMutation) ResetStatus() {
	m.status = nil
}

// SetFinalVoteDate sets the "final_vote_date" field.
func (m *MatterMutation) SetFinalVoteDate(t time.Time) {
	m.final_vote_date = &t
}

// FinalVoteDate returns the value of the "final_vote_date" field in the mutation.
func (m *MatterMutation) FinalVoteDate() (r time.Time, exists bool) {
	v := m.final_vote_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalVoteDate returns the old "final_vote_date" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldFinalVoteDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalVoteDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalVoteDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalVoteDate: %w", err)
	}
	return oldValue.FinalVoteDate, nil
}

// ClearFinalVoteDate clears the value of the "final_vote_date" field.
func (m *MatterMutation) ClearFinalVoteDate() {
	m.final_vote_date = nil
	m.clearedFields[matter.FieldFinalVoteDate] = struct{}{}
}

// FinalVoteDateCleared returns if the "final_vote_date" field was cleared in this mutation.
func (m *MatterMutation) FinalVoteDateCleared() bool {
	_, ok := m.clearedFields[matter.FieldFinalVoteDate]
	return ok
}

// ResetFinalVoteDate resets all changes to the "final_vote_date" field.
func (m *MatterMutation) ResetFinalVoteDate() {
	m.final_vote_date = nil
	delete(m.clearedFields, matter.FieldFinalVoteDate)
}

// SetQualityScore sets the "quality_score" field.
func (m *MatterMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *MatterMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Matter entity.
// If the Matter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterMutation) OldQualityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *MatterMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *MatterMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *MatterMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[matter.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *MatterMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[matter.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *MatterMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, matter.FieldQualityScore)
}

// SetCityID sets the "city" edge to the City entity by id.
func (m *MatterMutation) SetCityID(id string) {
	m.city = &id
}

// ClearCity clears the "city" edge to the City entity.
func (m *MatterMutation) ClearCity() {
	m.clearedcity = true
	m.clearedFields[matter.FieldBanana] = struct{}{}
}

// CityCleared reports if the "city" edge to the City entity was cleared.
func (m *MatterMutation) CityCleared() bool {
	return m.clearedcity
}

// CityID returns the "city" edge ID in the mutation.
func (m *MatterMutation) CityID() (id string, exists bool) {
	if m.city != nil {
		return *m.city, true
	}
	return
}

// CityIDs returns the "city" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CityID instead. It exists only for internal usage by the builders.
func (m *MatterMutation) CityIDs() (ids []string) {
	if id := m.city; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCity resets all changes to the "city" edge.
func (m *MatterMutation) ResetCity() {
	m.city = nil
	m.clearedcity = false
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by ids.
func (m *MatterMutation) AddAppearanceIDs(ids ...string) {
	if m.appearances == nil {
		m.appearances = make(map[string]struct{})
	}
	for i := range ids {
		m.appearances[ids[i]] = struct{}{}
	}
}

// ClearAppearances clears the "appearances" edge to the MatterAppearance entity.
func (m *MatterMutation) ClearAppearances() {
	m.clearedappearances = true
}

// AppearancesCleared reports if the "appearances" edge to the MatterAppearance entity was cleared.
func (m *MatterMutation) AppearancesCleared() bool {
	return m.clearedappearances
}

// RemoveAppearanceIDs removes the "appearances" edge to the MatterAppearance entity by IDs.
func (m *MatterMutation) RemoveAppearanceIDs(ids ...string) {
	if m.removedappearances == nil {
		m.removedappearances = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.appearances, ids[i])
		m.removedappearances[ids[i]] = struct{}{}
	}
}

// RemovedAppearances returns the removed IDs of the "appearances" edge to the MatterAppearance entity.
func (m *MatterMutation) RemovedAppearancesIDs() (ids []string) {
	for id := range m.removedappearances {
		ids = append(ids, id)
	}
	return
}

// AppearancesIDs returns the "appearances" edge IDs in the mutation.
func (m *MatterMutation) AppearancesIDs() (ids []string) {
	for id := range m.appearances {
		ids = append(ids, id)
	}
	return
}

// ResetAppearances resets all changes to the "appearances" edge.
func (m *MatterMutation) ResetAppearances() {
	m.appearances = nil
	m.clearedappearances = false
	m.removedappearances = nil
}

// AddVoteIDs adds the "votes" edge to the Vote entity by ids.
func (m *MatterMutation) AddVoteIDs(ids ...string) {
	if m.votes == nil {
		m.votes = make(map[string]struct{})
	}
	for i := range ids {
		m.votes[ids[i]] = struct{}{}
	}
}

// ClearVotes clears the "votes" edge to the Vote entity.
func (m *MatterMutation) ClearVotes() {
	m.clearedvotes = true
}

// VotesCleared reports if the "votes" edge to the Vote entity was cleared.
func (m *MatterMutation) VotesCleared() bool {
	return m.clearedvotes
}

// RemoveVoteIDs removes the "votes" edge to the Vote entity by IDs.
func (m *MatterMutation) RemoveVoteIDs(ids ...string) {
	if m.removedvotes == nil {
		m.removedvotes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.votes, ids[i])
		m.removedvotes[ids[i]] = struct{}{}
	}
}

// RemovedVotes returns the removed IDs of the "votes" edge to the Vote entity.
func (m *MatterMutation) RemovedVotesIDs() (ids []string) {
	for id := range m.removedvotes {
		ids = append(ids, id)
	}
	return
}

// VotesIDs returns the "votes" edge IDs in the mutation.
func (m *MatterMutation) VotesIDs() (ids []string) {
	for id := range m.votes {
		ids = append(ids, id)
	}
	return
}

// ResetVotes resets all changes to the "votes" edge.
func (m *MatterMutation) ResetVotes() {
	m.votes = nil
	m.clearedvotes = false
	m.removedvotes = nil
}

// Where appends a list predicates to the MatterMutation builder.
func (m *MatterMutation) Where(ps ...predicate.Matter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Matter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Matter).
func (m *MatterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatterMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.city != nil {
		fields = append(fields, matter.FieldBanana)
	}
	if m.matter_file != nil {
		fields = append(fields, matter.FieldMatterFile)
	}
	if m.matter_type != nil {
		fields = append(fields, matter.FieldMatterType)
	}
	if m.title != nil {
		fields = append(fields, matter.FieldTitle)
	}
	if m.sponsors != nil {
		fields = append(fields, matter.FieldSponsors)
	}
	if m.canonical_summary != nil {
		fields = append(fields, matter.FieldCanonicalSummary)
	}
	if m.canonical_topics != nil {
		fields = append(fields, matter.FieldCanonicalTopics)
	}
	if m.attachments != nil {
		fields = append(fields, matter.FieldAttachments)
	}
	if m.attachment_hash != nil {
		fields = append(fields, matter.FieldAttachmentHash)
	}
	if m.metadata != nil {
		fields = append(fields, matter.FieldMetadata)
	}
	if m.first_seen != nil {
		fields = append(fields, matter.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, matter.FieldLastSeen)
	}
	if m.appearance_count != nil {
		fields = append(fields, matter.FieldAppearanceCount)
	}
	if m.status != nil {
		fields = append(fields, matter.FieldStatus)
	}
	if m.final_vote_date != nil {
		fields = append(fields, matter.FieldFinalVoteDate)
	}
	if m.quality_score != nil {
		fields = append(fields, matter.FieldQualityScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matter.FieldBanana:
		return m.Banana()
	case matter.FieldMatterFile:
		return m.MatterFile()
	case matter.FieldMatterType:
		return m.MatterType()
	case matter.FieldTitle:
		return m.Title()
	case matter.FieldSponsors:
		return m.Sponsors()
	case matter.FieldCanonicalSummary:
		return m.CanonicalSummary()
	case matter.FieldCanonicalTopics:
		return m.CanonicalTopics()
	case matter.FieldAttachments:
		return m.Attachments()
	case matter.FieldAttachmentHash:
		return m.AttachmentHash()
	case matter.FieldMetadata:
		return m.Metadata()
	case matter.FieldFirstSeen:
		return m.FirstSeen()
	case matter.FieldLastSeen:
		return m.LastSeen()
	case matter.FieldAppearanceCount:
		return m.AppearanceCount()
	case matter.FieldStatus:
		return m.Status()
	case matter.FieldFinalVoteDate:
		return m.FinalVoteDate()
	case matter.FieldQualityScore:
		return m.QualityScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matter.FieldBanana:
		return m.OldBanana(ctx)
	case matter.FieldMatterFile:
		return m.OldMatterFile(ctx)
	case matter.FieldMatterType:
		return m.OldMatterType(ctx)
	case matter.FieldTitle:
		return m.OldTitle(ctx)
	case matter.FieldSponsors:
		return m.OldSponsors(ctx)
	case matter.FieldCanonicalSummary:
		return m.OldCanonicalSummary(ctx)
	case matter.FieldCanonicalTopics:
		return m.OldCanonicalTopics(ctx)
	case matter.FieldAttachments:
		return m.OldAttachments(ctx)
	case matter.FieldAttachmentHash:
		return m.OldAttachmentHash(ctx)
	case matter.FieldMetadata:
		return m.OldMetadata(ctx)
	case matter.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case matter.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case matter.FieldAppearanceCount:
		return m.OldAppearanceCount(ctx)
	case matter.FieldStatus:
		return m.OldStatus(ctx)
	case matter.FieldFinalVoteDate:
		return m.OldFinalVoteDate(ctx)
	case matter.FieldQualityScore:
		return m.OldQualityScore(ctx)
	}
	return nil, fmt.Errorf("unknown Matter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matter.FieldBanana:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBanana(v)
		return nil
	case matter.FieldMatterFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterFile(v)
		return nil
	case matter.FieldMatterType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterType(v)
		return nil
	case matter.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case matter.FieldSponsors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSponsors(v)
		return nil
	case matter.FieldCanonicalSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalSummary(v)
		return nil
	case matter.FieldCanonicalTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalTopics(v)
		return nil
	case matter.FieldAttachments:
		v, ok := value.([]models.Attachment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachments(v)
		return nil
	case matter.FieldAttachmentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachmentHash(v)
		return nil
	case matter.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case matter.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case matter.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case matter.FieldAppearanceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppearanceCount(v)
		return nil
	case matter.FieldStatus:
		v, ok := value.(matter.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case matter.FieldFinalVoteDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalVoteDate(v)
		return nil
	case matter.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Matter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatterMutation) AddedFields() []string {
	var fields []string
	if m.addappearance_count != nil {
		fields = append(fields, matter.FieldAppearanceCount)
	}
	if m.addquality_score != nil {
		fields = append(fields, matter.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case matter.FieldAppearanceCount:
		return m.AddedAppearanceCount()
	case matter.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case matter.FieldAppearanceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAppearanceCount(v)
		return nil
	case matter.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Matter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(matter.FieldMatterFile) {
		fields = append(fields, matter.FieldMatterFile)
	}
	if m.FieldCleared(matter.FieldMatterType) {
		fields = append(fields, matter.FieldMatterType)
	}
	if m.FieldCleared(matter.FieldSponsors) {
		fields = append(fields, matter.FieldSponsors)
	}
	if m.FieldCleared(matter.FieldCanonicalSummary) {
		fields = append(fields, matter.FieldCanonicalSummary)
	}
	if m.FieldCleared(matter.FieldCanonicalTopics) {
		fields = append(fields, matter.FieldCanonicalTopics)
	}
	if m.FieldCleared(matter.FieldAttachments) {
		fields = append(fields, matter.FieldAttachments)
	}
	if m.FieldCleared(matter.FieldAttachmentHash) {
		fields = append(fields, matter.FieldAttachmentHash)
	}
	if m.FieldCleared(matter.FieldMetadata) {
		fields = append(fields, matter.FieldMetadata)
	}
	if m.FieldCleared(matter.FieldFinalVoteDate) {
		fields = append(fields, matter.FieldFinalVoteDate)
	}
	if m.FieldCleared(matter.FieldQualityScore) {
		fields = append(fields, matter.FieldQualityScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatterMutation) ClearField(name string) error {
	switch name {
	case matter.FieldMatterFile:
		m.ClearMatterFile()
		return nil
	case matter.FieldMatterType:
		m.ClearMatterType()
		return nil
	case matter.FieldSponsors:
		m.ClearSponsors()
		return nil
	case matter.FieldCanonicalSummary:
		m.ClearCanonicalSummary()
		return nil
	case matter.FieldCanonicalTopics:
		m.ClearCanonicalTopics()
		return nil
	case matter.FieldAttachments:
		m.ClearAttachments()
		return nil
	case matter.FieldAttachmentHash:
		m.ClearAttachmentHash()
		return nil
	case matter.FieldMetadata:
		m.ClearMetadata()
		return nil
	case matter.FieldFinalVoteDate:
		m.ClearFinalVoteDate()
		return nil
	case matter.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	}
	return fmt.Errorf("unknown Matter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatterMutation) ResetField(name string) error {
	switch name {
	case matter.FieldBanana:
		m.ResetBanana()
		return nil
	case matter.FieldMatterFile:
		m.ResetMatterFile()
		return nil
	case matter.FieldMatterType:
		m.ResetMatterType()
		return nil
	case matter.FieldTitle:
		m.ResetTitle()
		return nil
	case matter.FieldSponsors:
		m.ResetSponsors()
		return nil
	case matter.FieldCanonicalSummary:
		m.ResetCanonicalSummary()
		return nil
	case matter.FieldCanonicalTopics:
		m.ResetCanonicalTopics()
		return nil
	case matter.FieldAttachments:
		m.ResetAttachments()
		return nil
	case matter.FieldAttachmentHash:
		m.ResetAttachmentHash()
		return nil
	case matter.FieldMetadata:
		m.ResetMetadata()
		return nil
	case matter.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case matter.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case matter.FieldAppearanceCount:
		m.ResetAppearanceCount()
		return nil
	case matter.FieldStatus:
		m.ResetStatus()
		return nil
	case matter.FieldFinalVoteDate:
		m.ResetFinalVoteDate()
		return nil
	case matter.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	}
	return fmt.Errorf("unknown Matter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatterMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.city != nil {
		edges = append(edges, matter.EdgeCity)
	}
	if m.appearances != nil {
		edges = append(edges, matter.EdgeAppearances)
	}
	if m.votes != nil {
		edges = append(edges, matter.EdgeVotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case matter.EdgeCity:
		if id := m.city; id != nil {
			return []ent.Value{*id}
		}
	case matter.EdgeAppearances:
		ids := make([]ent.Value, 0, len(m.appearances))
		for id := range m.appearances {
			ids = append(ids, id)
		}
		return ids
	case matter.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.votes))
		for id := range m.votes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedappearances != nil {
		edges = append(edges, matter.EdgeAppearances)
	}
	if m.removedvotes != nil {
		edges = append(edges, matter.EdgeVotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case matter.EdgeAppearances:
		ids := make([]ent.Value, 0, len(m.removedappearances))
		for id := range m.removedappearances {
			ids = append(ids, id)
		}
		return ids
	case matter.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.removedvotes))
		for id := range m.removedvotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcity {
		edges = append(edges, matter.EdgeCity)
	}
	if m.clearedappearances {
		edges = append(edges, matter.EdgeAppearances)
	}
	if m.clearedvotes {
		edges = append(edges, matter.EdgeVotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatterMutation) EdgeCleared(name string) bool {
	switch name {
	case matter.EdgeCity:
		return m.clearedcity
	case matter.EdgeAppearances:
		return m.clearedappearances
	case matter.EdgeVotes:
		return m.clearedvotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatterMutation) ClearEdge(name string) error {
	switch name {
	case matter.EdgeCity:
		m.ClearCity()
		return nil
	}
	return fmt.Errorf("unknown Matter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatterMutation) ResetEdge(name string) error {
	switch name {
	case matter.EdgeCity:
		m.ResetCity()
		return nil
	case matter.EdgeAppearances:
		m.ResetAppearances()
		return nil
	case matter.EdgeVotes:
		m.ResetVotes()
		return nil
	}
	return fmt.Errorf("unknown Matter edge %s", name)
}

// MatterAppearanceMutation represents an operation that mutates the MatterAppearance nodes in the graph.
type MatterAppearanceMutation struct {
	config
	op             Op
	typ            string
	id             *string
	appeared_at    *time.Time
	committee_id   *string
	action         *string
	vote_outcome   *matterappearance.VoteOutcome
	vote_tally     *map[string]int
	sequence       *int
	addsequence    *int
	clearedFields  map[string]struct{}
	matter         *string
	clearedmatter  bool
	meeting        *string
	clearedmeeting bool
	item           *string
	cleareditem    bool
	done           bool
	oldValue       func(context.Context) (*MatterAppearance, error)
	predicates     []predicate.MatterAppearance
}

var _ ent.Mutation = (*MatterAppearanceMutation)(nil)

// matterappearanceOption allows management of the mutation configuration using functional options.
type matterappearanceOption func(*MatterAppearanceMutation)

// newMatterAppearanceMutation creates new mutation for the MatterAppearance entity.
func newMatterAppearanceMutation(c config, op Op, opts ...matterappearanceOption) *MatterAppearanceMutation {
	m := &MatterAppearanceMutation{
		config:        c,
		op:            op,
		typ:           TypeMatterAppearance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatterAppearanceID sets the ID field of the mutation.
func withMatterAppearanceID(id string) matterappearanceOption {
	return func(m *MatterAppearanceMutation) {
		var (
			err   error
			once  sync.Once
			value *MatterAppearance
		)
		m.oldValue = func(ctx context.Context) (*MatterAppearance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MatterAppearance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatterAppearance sets the old MatterAppearance of the mutation.
func withMatterAppearance(node *MatterAppearance) matterappearanceOption {
	return func(m *MatterAppearanceMutation) {
		m.oldValue = func(context.Context) (*MatterAppearance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatterAppearanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatterAppearanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MatterAppearance entities.
func (m *MatterAppearanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatterAppearanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatterAppearanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MatterAppearance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMatterID sets the "matter_id" field.
func (m *MatterAppearanceMutation) SetMatterID(s string) {
	m.matter = &s
}

// MatterID returns the value of the "matter_id" field in the mutation.
func (m *MatterAppearanceMutation) MatterID() (r string, exists bool) {
	v := m.matter
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterID returns the old "matter_id" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldMatterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterID: %w", err)
	}
	return oldValue.MatterID, nil
}

// ResetMatterID resets all changes to the "matter_id" field.
func (m *MatterAppearanceMutation) ResetMatterID() {
	m.matter = nil
}

// SetMeetingID sets the "meeting_id" field.
func (m *MatterAppearanceMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *MatterAppearanceMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *MatterAppearanceMutation) ResetMeetingID() {
	m.meeting = nil
}

// SetItemID sets the "item_id" field.
func (m *MatterAppearanceMutation) SetItemID(s string) {
	m.item = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *MatterAppearanceMutation) ItemID() (r string, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *MatterAppearanceMutation) ResetItemID() {
	m.item = nil
}

// SetAppearedAt sets the "appeared_at" field.
func (m *MatterAppearanceMutation) SetAppearedAt(t time.Time) {
	m.appeared_at = &t
}

// AppearedAt returns the value of the "appeared_at" field in the mutation.
func (m *MatterAppearanceMutation) AppearedAt() (r time.Time, exists bool) {
	v := m.appeared_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppearedAt returns the old "appeared_at" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldAppearedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppearedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppearedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppearedAt: %w", err)
	}
	return oldValue.AppearedAt, nil
}

// ResetAppearedAt resets all changes to the "appeared_at" field.
func (m *MatterAppearanceMutation) ResetAppearedAt() {
	m.appeared_at = nil
}

// SetCommitteeID sets the "committee_id" field.
func (m *MatterAppearanceMutation) SetCommitteeID(s string) {
	m.committee_id = &s
}

// CommitteeID returns the value of the "committee_id" field in the mutation.
func (m *MatterAppearanceMutation) CommitteeID() (r string, exists bool) {
	v := m.committee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitteeID returns the old "committee_id" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldCommitteeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitteeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitteeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitteeID: %w", err)
	}
	return oldValue.CommitteeID, nil
}

// ClearCommitteeID clears the value of the "committee_id" field.
func (m *MatterAppearanceMutation) ClearCommitteeID() {
	m.committee_id = nil
	m.clearedFields[matterappearance.FieldCommitteeID] = struct{}{}
}

// CommitteeIDCleared returns if the "committee_id" field was cleared in this mutation.
func (m *MatterAppearanceMutation) CommitteeIDCleared() bool {
	_, ok := m.clearedFields[matterappearance.FieldCommitteeID]
	return ok
}

// ResetCommitteeID resets all changes to the "committee_id" field.
func (m *MatterAppearanceMutation) ResetCommitteeID() {
	m.committee_id = nil
	delete(m.clearedFields, matterappearance.FieldCommitteeID)
}

// SetAction sets the "action" field.
func (m *MatterAppearanceMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *MatterAppearanceMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ClearAction clears the value of the "action" field.
func (m *MatterAppearanceMutation) ClearAction() {
	m.action = nil
	m.clearedFields[matterappearance.FieldAction] = struct{}{}
}

// ActionCleared returns if the "action" field was cleared in this mutation.
func (m *MatterAppearanceMutation) ActionCleared() bool {
	_, ok := m.clearedFields[matterappearance.FieldAction]
	return ok
}

// ResetAction resets all changes to the "action" field.
func (m *MatterAppearanceMutation) ResetAction() {
	m.action = nil
	delete(m.clearedFields, matterappearance.FieldAction)
}

// SetVoteOutcome sets the "vote_outcome" field.
func (m *MatterAppearanceMutation) SetVoteOutcome(mo matterappearance.VoteOutcome) {
	m.vote_outcome = &mo
}

// VoteOutcome returns the value of the "vote_outcome" field in the mutation.
func (m *MatterAppearanceMutation) VoteOutcome() (r matterappearance.VoteOutcome, exists bool) {
	v := m.vote_outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldVoteOutcome returns the old "vote_outcome" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldVoteOutcome(ctx context.Context) (v *matterappearance.VoteOutcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoteOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoteOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoteOutcome: %w", err)
	}
	return oldValue.VoteOutcome, nil
}

// ClearVoteOutcome clears the value of the "vote_outcome" field.
func (m *MatterAppearanceMutation) ClearVoteOutcome() {
	m.vote_outcome = nil
	m.clearedFields[matterappearance.FieldVoteOutcome] = struct{}{}
}

// VoteOutcomeCleared returns if the "vote_outcome" field was cleared in this mutation.
func (m *MatterAppearanceMutation) VoteOutcomeCleared() bool {
	_, ok := m.clearedFields[matterappearance.FieldVoteOutcome]
	return ok
}

// ResetVoteOutcome resets all changes to the "vote_outcome" field.
func (m *MatterAppearanceMutation) ResetVoteOutcome() {
	m.vote_outcome = nil
	delete(m.clearedFields, matterappearance.FieldVoteOutcome)
}

// SetVoteTally sets the "vote_tally" field.
func (m *MatterAppearanceMutation) SetVoteTally(value map[string]int) {
	m.vote_tally = &value
}

// VoteTally returns the value of the "vote_tally" field in the mutation.
func (m *MatterAppearanceMutation) VoteTally() (r map[string]int, exists bool) {
	v := m.vote_tally
	if v == nil {
		return
	}
	return *v, true
}

// OldVoteTally returns the old "vote_tally" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldVoteTally(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoteTally is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoteTally requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoteTally: %w", err)
	}
	return oldValue.VoteTally, nil
}

// ClearVoteTally clears the value of the "vote_tally" field.
func (m *MatterAppearanceMutation) ClearVoteTally() {
	m.vote_tally = nil
	m.clearedFields[matterappearance.FieldVoteTally] = struct{}{}
}

// VoteTallyCleared returns if the "vote_tally" field was cleared in this mutation.
func (m *MatterAppearanceMutation) VoteTallyCleared() bool {
	_, ok := m.clearedFields[matterappearance.FieldVoteTally]
	return ok
}

// ResetVoteTally resets all changes to the "vote_tally" field.
func (m *MatterAppearanceMutation) ResetVoteTally() {
	m.vote_tally = nil
	delete(m.clearedFields, matterappearance.FieldVoteTally)
}

// SetSequence sets the "sequence" field.
func (m *MatterAppearanceMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MatterAppearanceMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the MatterAppearance entity.
// If the MatterAppearance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatterAppearanceMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MatterAppearanceMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MatterAppearanceMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ClearSequence clears the value of the "sequence" field.
func (m *MatterAppearanceMutation) ClearSequence() {
	m.sequence = nil
	m.addsequence = nil
	m.clearedFields[matterappearance.FieldSequence] = struct{}{}
}

// SequenceCleared returns if the "sequence" field was cleared in this mutation.
func (m *MatterAppearanceMutation) SequenceCleared() bool {
	_, ok := m.clearedFields[matterappearance.FieldSequence]
	return ok
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MatterAppearanceMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
	delete(m.clearedFields, matterappearance.FieldSequence)
}

// ClearMatter clears the "matter" edge to the Matter entity.
func (m *MatterAppearanceMutation) ClearMatter() {
	m.clearedmatter = true
	m.clearedFields[matterappearance.FieldMatterID] = struct{}{}
}

// MatterCleared reports if the "matter" edge to the Matter entity was cleared.
func (m *MatterAppearanceMutation) MatterCleared() bool {
	return m.clearedmatter
}

// MatterIDs returns the "matter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MatterID instead. It exists only for internal usage by the builders.
func (m *MatterAppearanceMutation) MatterIDs() (ids []string) {
	if id := m.matter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMatter resets all changes to the "matter" edge.
func (m *MatterAppearanceMutation) ResetMatter() {
	m.matter = nil
	m.clearedmatter = false
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *MatterAppearanceMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[matterappearance.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *MatterAppearanceMutation) MeetingCleared() bool {
	return m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *MatterAppearanceMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *MatterAppearanceMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// ClearItem clears the "item" edge to the AgendaItem entity.
func (m *MatterAppearanceMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[matterappearance.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the AgendaItem entity was cleared.
func (m *MatterAppearanceMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *MatterAppearanceMutation) ItemIDs() (ids []string) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *MatterAppearanceMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// Where appends a list predicates to the MatterAppearanceMutation builder.
func (m *MatterAppearanceMutation) Where(ps ...predicate.MatterAppearance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatterAppearanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatterAppearanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MatterAppearance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatterAppearanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatterAppearanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MatterAppearance).
func (m *MatterAppearanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatterAppearanceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.matter != nil {
		fields = append(fields, matterappearance.FieldMatterID)
	}
	if m.meeting != nil {
		fields = append(fields, matterappearance.FieldMeetingID)
	}
	if m.item != nil {
		fields = append(fields, matterappearance.FieldItemID)
	}
	if m.appeared_at != nil {
		fields = append(fields, matterappearance.FieldAppearedAt)
	}
	if m.committee_id != nil {
		fields = append(fields, matterappearance.FieldCommitteeID)
	}
	if m.action != nil {
		fields = append(fields, matterappearance.FieldAction)
	}
	if m.vote_outcome != nil {
		fields = append(fields, matterappearance.FieldVoteOutcome)
	}
	if m.vote_tally != nil {
		fields = append(fields, matterappearance.FieldVoteTally)
	}
	if m.sequence != nil {
		fields = append(fields, matterappearance.FieldSequence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatterAppearanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matterappearance.FieldMatterID:
		return m.MatterID()
	case matterappearance.FieldMeetingID:
		return m.MeetingID()
	case matterappearance.FieldItemID:
		return m.ItemID()
	case matterappearance.FieldAppearedAt:
		return m.AppearedAt()
	case matterappearance.FieldCommitteeID:
		return m.CommitteeID()
	case matterappearance.FieldAction:
		return m.Action()
	case matterappearance.FieldVoteOutcome:
		return m.VoteOutcome()
	case matterappearance.FieldVoteTally:
		return m.VoteTally()
	case matterappearance.FieldSequence:
		return m.Sequence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatterAppearanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matterappearance.FieldMatterID:
		return m.OldMatterID(ctx)
	case matterappearance.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case matterappearance.FieldItemID:
		return m.OldItemID(ctx)
	case matterappearance.FieldAppearedAt:
		return m.OldAppearedAt(ctx)
	case matterappearance.FieldCommitteeID:
		return m.OldCommitteeID(ctx)
	case matterappearance.FieldAction:
		return m.OldAction(ctx)
	case matterappearance.FieldVoteOutcome:
		return m.OldVoteOutcome(ctx)
	case matterappearance.FieldVoteTally:
		return m.OldVoteTally(ctx)
	case matterappearance.FieldSequence:
		return m.OldSequence(ctx)
	}
	return nil, fmt.Errorf("unknown MatterAppearance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatterAppearanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matterappearance.FieldMatterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterID(v)
		return nil
	case matterappearance.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case matterappearance.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case matterappearance.FieldAppearedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppearedAt(v)
		return nil
	case matterappearance.FieldCommitteeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitteeID(v)
		return nil
	case matterappearance.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case matterappearance.FieldVoteOutcome:
		v, ok := value.(matterappearance.VoteOutcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoteOutcome(v)
		return nil
	case matterappearance.FieldVoteTally:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoteTally(v)
		return nil
	case matterappearance.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	}
	return fmt.Errorf("unknown MatterAppearance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatterAppearanceMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, matterappearance.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatterAppearanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case matterappearance.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatterAppearanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case matterappearance.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown MatterAppearance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatterAppearanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(matterappearance.FieldCommitteeID) {
		fields = append(fields, matterappearance.FieldCommitteeID)
	}
	if m.FieldCleared(matterappearance.FieldAction) {
		fields = append(fields, matterappearance.FieldAction)
	}
	if m.FieldCleared(matterappearance.FieldVoteOutcome) {
		fields = append(fields, matterappearance.FieldVoteOutcome)
	}
	if m.FieldCleared(matterappearance.FieldVoteTally) {
		fields = append(fields, matterappearance.FieldVoteTally)
	}
	if m.FieldCleared(matterappearance.FieldSequence) {
		fields = append(fields, matterappearance.FieldSequence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatterAppearanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatterAppearanceMutation) ClearField(name string) error {
	switch name {
	case matterappearance.FieldCommitteeID:
		m.ClearCommitteeID()
		return nil
	case matterappearance.FieldAction:
		m.ClearAction()
		return nil
	case matterappearance.FieldVoteOutcome:
		m.ClearVoteOutcome()
		return nil
	case matterappearance.FieldVoteTally:
		m.ClearVoteTally()
		return nil
	case matterappearance.FieldSequence:
		m.ClearSequence()
		return nil
	}
	return fmt.Errorf("unknown MatterAppearance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatterAppearanceMutation) ResetField(name string) error {
	switch name {
	case matterappearance.FieldMatterID:
		m.ResetMatterID()
		return nil
	case matterappearance.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case matterappearance.FieldItemID:
		m.ResetItemID()
		return nil
	case matterappearance.FieldAppearedAt:
		m.ResetAppearedAt()
		return nil
	case matterappearance.FieldCommitteeID:
		m.ResetCommitteeID()
		return nil
	case matterappearance.FieldAction:
		m.ResetAction()
		return nil
	case matterappearance.FieldVoteOutcome:
		m.ResetVoteOutcome()
		return nil
	case matterappearance.FieldVoteTally:
		m.ResetVoteTally()
		return nil
	case matterappearance.FieldSequence:
		m.ResetSequence()
		return nil
	}
	return fmt.Errorf("unknown MatterAppearance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatterAppearanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.matter != nil {
		edges = append(edges, matterappearance.EdgeMatter)
	}
	if m.meeting != nil {
		edges = append(edges, matterappearance.EdgeMeeting)
	}
	if m.item != nil {
		edges = append(edges, matterappearance.EdgeItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatterAppearanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case matterappearance.EdgeMatter:
		if id := m.matter; id != nil {
			return []ent.Value{*id}
		}
	case matterappearance.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	case matterappearance.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatterAppearanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatterAppearanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatterAppearanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmatter {
		edges = append(edges, matterappearance.EdgeMatter)
	}
	if m.clearedmeeting {
		edges = append(edges, matterappearance.EdgeMeeting)
	}
	if m.cleareditem {
		edges = append(edges, matterappearance.EdgeItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatterAppearanceMutation) EdgeCleared(name string) bool {
	switch name {
	case matterappearance.EdgeMatter:
		return m.clearedmatter
	case matterappearance.EdgeMeeting:
		return m.clearedmeeting
	case matterappearance.EdgeItem:
		return m.cleareditem
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatterAppearanceMutation) ClearEdge(name string) error {
	switch name {
	case matterappearance.EdgeMatter:
		m.ClearMatter()
		return nil
	case matterappearance.EdgeMeeting:
		m.ClearMeeting()
		return nil
	case matterappearance.EdgeItem:
		m.ClearItem()
		return nil
	}
	return fmt.Errorf("unknown MatterAppearance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatterAppearanceMutation) ResetEdge(name string) error {
	switch name {
	case matterappearance.EdgeMatter:
		m.ResetMatter()
		return nil
	case matterappearance.EdgeMeeting:
		m.ResetMeeting()
		return nil
	case matterappearance.EdgeItem:
		m.ResetItem()
		return nil
	}
	return fmt.Errorf("unknown MatterAppearance edge %s", name)
}

// MeetingMutation represents an operation that mutates the Meeting nodes in the graph.
type MeetingMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	vendor_id              *string
	title                  *string
	date                   *time.Time
	agenda_url             *string
	packet_url             *string
	summary                *string
	participation          **models.Participation
	status                 *meeting.Status
	processing_status      *meeting.ProcessingStatus
	processing_method      *string
	processing_time_ms     *int
	addprocessing_time_ms  *int
	topics                 *[]string
	appendtopics           []string
	attachment_fingerprint *string
	metadata               *map[string]interface{}
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	city                   *string
	clearedcity            bool
	committee              *string
	clearedcommittee       bool
	items                  map[string]struct{}
	removeditems           map[string]struct{}
	cleareditems           bool
	appearances            map[string]struct{}
	removedappearances     map[string]struct{}
	clearedappearances     bool
	done                   bool
	oldValue               func(context.Context) (*Meeting, error)
	predicates             []predicate.Meeting
}

var _ ent.Mutation = (*MeetingMutation)(nil)

// meetingOption allows management of the mutation configuration using functional options.
type meetingOption func(*MeetingMutation)

// newMeetingMutation creates new mutation for the Meeting entity.
func newMeetingMutation(c config, op Op, opts ...meetingOption) *MeetingMutation {
	m := &MeetingMutation{
		config:        c,
		op:            op,
		typ:           TypeMeeting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingID sets the ID field of the mutation.
func withMeetingID(id string) meetingOption {
	return func(m *MeetingMutation) {
		var (
			err   error
			once  sync.Once
			value *Meeting
		)
		m.oldValue = func(ctx context.Context) (*Meeting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Meeting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeeting sets the old Meeting of the mutation.
func withMeeting(node *Meeting) meetingOption {
	return func(m *MeetingMutation) {
		m.oldValue = func(context.Context) (*Meeting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Meeting entities.
func (m *MeetingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Meeting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBanana sets the "banana" field.
func (m *MeetingMutation) SetBanana(s string) {
	m.city = &s
}

// Banana returns the value of the "banana" field in the mutation.
func (m *MeetingMutation) Banana() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldBanana returns the old "banana" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldBanana(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBanana is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBanana requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBanana: %w", err)
	}
	return oldValue.Banana, nil
}

// ResetBanana resets all changes to the "banana" field.
func (m *MeetingMutation) ResetBanana() {
	m.city = nil
}

// SetVendorID sets the "vendor_id" field.
func (m *MeetingMutation) SetVendorID(s string) {
	m.vendor_id = &s
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *MeetingMutation) VendorID() (r string, exists bool) {
	v := m.vendor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldVendorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *MeetingMutation) ResetVendorID() {
	m.vendor_id = nil
}

// SetTitle sets the "title" field.
func (m *MeetingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MeetingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MeetingMutation) ResetTitle() {
	m.title = nil
}

// SetDate sets the "date" field.
func (m *MeetingMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *MeetingMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ClearDate clears the value of the "date" field.
func (m *MeetingMutation) ClearDate() {
	m.date = nil
	m.clearedFields[meeting.FieldDate] = struct{}{}
}

// DateCleared returns if the "date" field was cleared in this mutation.
func (m *MeetingMutation) DateCleared() bool {
	_, ok := m.clearedFields[meeting.FieldDate]
	return ok
}

// ResetDate resets all changes to the "date" field.
func (m *MeetingMutation) ResetDate() {
	m.date = nil
	delete(m.clearedFields, meeting.FieldDate)
}

// SetAgendaURL sets the "agenda_url" field.
func (m *MeetingMutation) SetAgendaURL(s string) {
	m.agenda_url = &s
}

// AgendaURL returns the value of the "agenda_url" field in the mutation.
func (m *MeetingMutation) AgendaURL() (r string, exists bool) {
	v := m.agenda_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAgendaURL returns the old "agenda_url" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldAgendaURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgendaURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgendaURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgendaURL: %w", err)
	}
	return oldValue.AgendaURL, nil
}

// ClearAgendaURL clears the value of the "agenda_url" field.
func (m *MeetingMutation) ClearAgendaURL() {
	m.agenda_url = nil
	m.clearedFields[meeting.FieldAgendaURL] = struct{}{}
}

// AgendaURLCleared returns if the "agenda_url" field was cleared in this mutation.
func (m *MeetingMutation) AgendaURLCleared() bool {
	_, ok := m.clearedFields[meeting.FieldAgendaURL]
	return ok
}

// ResetAgendaURL resets all changes to the "agenda_url" field.
func (m *MeetingMutation) ResetAgendaURL() {
	m.agenda_url = nil
	delete(m.clearedFields, meeting.FieldAgendaURL)
}

// SetPacketURL sets the "packet_url" field.
func (m *MeetingMutation) SetPacketURL(s string) {
	m.packet_url = &s
}

// PacketURL returns the value of the "packet_url" field in the mutation.
func (m *MeetingMutation) PacketURL() (r string, exists bool) {
	v := m.packet_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPacketURL returns the old "packet_url" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldPacketURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPacketURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPacketURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPacketURL: %w", err)
	}
	return oldValue.PacketURL, nil
}

// ClearPacketURL clears the value of the "packet_url" field.
func (m *MeetingMutation) ClearPacketURL() {
	m.packet_url = nil
	m.clearedFields[meeting.FieldPacketURL] = struct{}{}
}

// PacketURLCleared returns if the "packet_url" field was cleared in this mutation.
func (m *MeetingMutation) PacketURLCleared() bool {
	_, ok := m.clearedFields[meeting.FieldPacketURL]
	return ok
}

// ResetPacketURL resets all changes to the "packet_url" field.
func (m *MeetingMutation) ResetPacketURL() {
	m.packet_url = nil
	delete(m.clearedFields, meeting.FieldPacketURL)
}

// SetCommitteeID sets the "committee_id" field.
func (m *MeetingMutation) SetCommitteeID(s string) {
	m.committee = &s
}

// CommitteeID returns the value of the "committee_id" field in the mutation.
func (m *MeetingMutation) CommitteeID() (r string, exists bool) {
	v := m.committee
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitteeID returns the old "committee_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCommitteeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitteeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitteeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitteeID: %w", err)
	}
	return oldValue.CommitteeID, nil
}

// ClearCommitteeID clears the value of the "committee_id" field.
func (m *MeetingMutation) ClearCommitteeID() {
	m.committee = nil
	m.clearedFields[meeting.FieldCommitteeID] = struct{}{}
}

// CommitteeIDCleared returns if the "committee_id" field was cleared in this mutation.
func (m *MeetingMutation) CommitteeIDCleared() bool {
	_, ok := m.clearedFields[meeting.FieldCommitteeID]
	return ok
}

// ResetCommitteeID resets all changes to the "committee_id" field.
func (m *MeetingMutation) ResetCommitteeID() {
	m.committee = nil
	delete(m.clearedFields, meeting.FieldCommitteeID)
}

// SetSummary sets the "summary" field.
func (m *MeetingMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *MeetingMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *MeetingMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[meeting.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *MeetingMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[meeting.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *MeetingMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, meeting.FieldSummary)
}

// SetParticipation sets the "participation" field.
func (m *MeetingMutation) SetParticipation(value *models.Participation) {
	m.participation = &value
}

// Participation returns the value of the "participation" field in the mutation.
func (m *MeetingMutation) Participation() (r *models.Participation, exists bool) {
	v := m.participation
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipation returns the old "participation" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldParticipation(ctx context.Context) (v *models.Participation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipation: %w", err)
	}
	return oldValue.Participation, nil
}

// ClearParticipation clears the value of the "participation" field.
func (m *MeetingMutation) ClearParticipation() {
	m.participation = nil
	m.clearedFields[meeting.FieldParticipation] = struct{}{}
}

// ParticipationCleared returns if the "participation" field was cleared in this mutation.
func (m *MeetingMutation) ParticipationCleared() bool {
	_, ok := m.clearedFields[meeting.FieldParticipation]
	return ok
}

// ResetParticipation resets all changes to the "participation" field.
func (m *MeetingMutation) ResetParticipation() {
	m.participation = nil
	delete(m.clearedFields, meeting.FieldParticipation)
}

// SetStatus sets the "status" field.
func (m *MeetingMutation) SetStatus(value meeting.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MeetingMutation) Status() (r meeting.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldStatus(ctx context.Context) (v *meeting.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *MeetingMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[meeting.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *MeetingMutation) StatusCleared() bool {
	_, ok := m.clearedFields[meeting.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *MeetingMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, meeting.FieldStatus)
}

// SetProcessingStatus sets the "processing_status" field.
func (m *MeetingMutation) SetProcessingStatus(ms meeting.ProcessingStatus) {
	m.processing_status = &ms
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *MeetingMutation) ProcessingStatus() (r meeting.ProcessingStatus, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldProcessingStatus(ctx context.Context) (v meeting.ProcessingStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *MeetingMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetProcessingMethod sets the "processing_method" field.
func (m *MeetingMutation) SetProcessingMethod(s string) {
	m.processing_method = &s
}

// ProcessingMethod returns the value of the "processing_method" field in the mutation.
func (m *MeetingMutation) ProcessingMethod() (r string, exists bool) {
	v := m.processing_method
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMethod returns the old "processing_method" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldProcessingMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMethod: %w", err)
	}
	return oldValue.ProcessingMethod, nil
}

// ClearProcessingMethod clears the value of the "processing_method" field.
func (m *MeetingMutation) ClearProcessingMethod() {
	m.processing_method = nil
	m.clearedFields[meeting.FieldProcessingMethod] = struct{}{}
}

// ProcessingMethodCleared returns if the "processing_method" field was cleared in this mutation.
func (m *MeetingMutation) ProcessingMethodCleared() bool {
	_, ok := m.clearedFields[meeting.FieldProcessingMethod]
	return ok
}

// ResetProcessingMethod resets all changes to the "processing_method" field.
func (m *MeetingMutation) ResetProcessingMethod() {
	m.processing_method = nil
	delete(m.clearedFields, meeting.FieldProcessingMethod)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *MeetingMutation) SetProcessingTimeMs(i int) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *MeetingMutation) ProcessingTimeMs() (r int, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldProcessingTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *MeetingMutation) AddProcessingTimeMs(i int) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *MeetingMutation) AddedProcessingTimeMs() (r int, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (m *MeetingMutation) ClearProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	m.clearedFields[meeting.FieldProcessingTimeMs] = struct{}{}
}

// ProcessingTimeMsCleared returns if the "processing_time_ms" field was cleared in this mutation.
func (m *MeetingMutation) ProcessingTimeMsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldProcessingTimeMs]
	return ok
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *MeetingMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	delete(m.clearedFields, meeting.FieldProcessingTimeMs)
}

// SetTopics sets the "topics" field.
func (m *MeetingMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *MeetingMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *MeetingMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *MeetingMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *MeetingMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[meeting.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *MeetingMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *MeetingMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, meeting.FieldTopics)
}

// SetAttachmentFingerprint sets the "attachment_fingerprint" field.
func (m *MeetingMutation) SetAttachmentFingerprint(s string) {
	m.attachment_fingerprint = &s
}

// AttachmentFingerprint returns the value of the "attachment_fingerprint" field in the mutation.
func (m *MeetingMutation) AttachmentFingerprint() (r string, exists bool) {
	v := m.attachment_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachmentFingerprint returns the old "attachment_fingerprint" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldAttachmentFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachmentFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachmentFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachmentFingerprint: %w", err)
	}
	return oldValue.AttachmentFingerprint, nil
}

// ClearAttachmentFingerprint clears the value of the "attachment_fingerprint" field.
func (m *MeetingMutation) ClearAttachmentFingerprint() {
	m.attachment_fingerprint = nil
	m.clearedFields[meeting.FieldAttachmentFingerprint] = struct{}{}
}

// AttachmentFingerprintCleared returns if the "attachment_fingerprint" field was cleared in this mutation.
func (m *MeetingMutation) AttachmentFingerprintCleared() bool {
	_, ok := m.clearedFields[meeting.FieldAttachmentFingerprint]
	return ok
}

// ResetAttachmentFingerprint resets all changes to the "attachment_fingerprint" field.
func (m *MeetingMutation) ResetAttachmentFingerprint() {
	m.attachment_fingerprint = nil
	delete(m.clearedFields, meeting.FieldAttachmentFingerprint)
}

// SetMetadata sets the "metadata" field.
func (m *MeetingMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MeetingMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MeetingMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[meeting.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MeetingMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[meeting.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MeetingMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, meeting.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MeetingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeetingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeetingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MeetingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MeetingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MeetingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCityID sets the "city" edge to the City entity by id.
func (m *MeetingMutation) SetCityID(id string) {
	m.city = &id
}

// ClearCity clears the "city" edge to the City entity.
func (m *MeetingMutation) ClearCity() {
	m.clearedcity = true
	m.clearedFields[meeting.FieldBanana] = struct{}{}
}

// CityCleared reports if the "city" edge to the City entity was cleared.
func (m *MeetingMutation) CityCleared() bool {
	return m.clearedcity
}

// CityID returns the "city" edge ID in the mutation.
func (m *MeetingMutation) CityID() (id string, exists bool) {
	if m.city != nil {
		return *m.city, true
	}
	return
}

// CityIDs returns the "city" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CityID instead. It exists only for internal usage by the builders.
func (m *MeetingMutation) CityIDs() (ids []string) {
	if id := m.city; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCity resets all changes to the "city" edge.
func (m *MeetingMutation) ResetCity() {
	m.city = nil
	m.clearedcity = false
}

// ClearCommittee clears the "committee" edge to the Committee entity.
func (m *MeetingMutation) ClearCommittee() {
	m.clearedcommittee = true
	m.clearedFields[meeting.FieldCommitteeID] = struct{}{}
}

// CommitteeCleared reports if the "committee" edge to the Committee entity was cleared.
func (m *MeetingMutation) CommitteeCleared() bool {
	return m.CommitteeIDCleared() || m.clearedcommittee
}

// CommitteeIDs returns the "committee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommitteeID instead. It exists only for internal usage by the builders.
func (m *MeetingMutation) CommitteeIDs() (ids []string) {
	if id := m.committee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommittee resets all changes to the "committee" edge.
func (m *MeetingMutation) ResetCommittee() {
	m.committee = nil
	m.clearedcommittee = false
}

// AddItemIDs adds the "items" edge to the AgendaItem entity by ids.
func (m *MeetingMutation) AddItemIDs(ids ...string) {
	if m.items == nil {
		m.items = make(map[string]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the AgendaItem entity.
func (m *MeetingMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the AgendaItem entity was cleared.
func (m *MeetingMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the AgendaItem entity by IDs.
func (m *MeetingMutation) RemoveItemIDs(ids ...string) {
	if m.removeditems == nil {
		m.removeditems = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the AgendaItem entity.
func (m *MeetingMutation) RemovedItemsIDs() (ids []string) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *MeetingMutation) ItemsIDs() (ids []string) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *MeetingMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddAppearanceIDs adds the "appearances" edge to the MatterAppearance entity by ids.
func (m *MeetingMutation) AddAppearanceIDs(ids ...string) {
	if m.appearances == nil {
		m.appearances = make(map[string]struct{})
	}
	for i := range ids {
		m.appearances[ids[i]] = struct{}{}
	}
}

// ClearAppearances clears the "appearances" edge to the MatterAppearance entity.
func (m *MeetingMutation) ClearAppearances() {
	m.clearedappearances = true
}

// AppearancesCleared reports if the "appearances" edge to the MatterAppearance entity was cleared.
func (m *MeetingMutation) AppearancesCleared() bool {
	return m.clearedappearances
}

// RemoveAppearanceIDs removes the "appearances" edge to the MatterAppearance entity by IDs.
func (m *MeetingMutation) RemoveAppearanceIDs(ids ...string) {
	if m.removedappearances == nil {
		m.removedappearances = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.appearances, ids[i])
		m.removedappearances[ids[i]] = struct{}{}
	}
}

// RemovedAppearances returns the removed IDs of the "appearances" edge to the MatterAppearance entity.
func (m *MeetingMutation) RemovedAppearancesIDs() (ids []string) {
	for id := range m.removedappearances {
		ids = append(ids, id)
	}
	return
}

// AppearancesIDs returns the "appearances" edge IDs in the mutation.
func (m *MeetingMutation) AppearancesIDs() (ids []string) {
	for id := range m.appearances {
		ids = append(ids, id)
	}
	return
}

// ResetAppearances resets all changes to the "appearances" edge.
func (m *MeetingMutation) ResetAppearances() {
	m.appearances = nil
	m.clearedappearances = false
	m.removedappearances = nil
}

// Where appends a list predicates to the MeetingMutation builder.
func (m *MeetingMutation) Where(ps ...predicate.Meeting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Meeting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Meeting).
func (m *MeetingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.city != nil {
		fields = append(fields, meeting.FieldBanana)
	}
	if m.vendor_id != nil {
		fields = append(fields, meeting.FieldVendorID)
	}
	if m.title != nil {
		fields = append(fields, meeting.FieldTitle)
	}
	if m.date != nil {
		fields = append(fields, meeting.FieldDate)
	}
	if m.agenda_url != nil {
		fields = append(fields, meeting.FieldAgendaURL)
	}
	if m.packet_url != nil {
		fields = append(fields, meeting.FieldPacketURL)
	}
	if m.committee != nil {
		fields = append(fields, meeting.FieldCommitteeID)
	}
	if m.summary != nil {
		fields = append(fields, meeting.FieldSummary)
	}
	if m.participation != nil {
		fields = append(fields, meeting.FieldParticipation)
	}
	if m.status != nil {
		fields = append(fields, meeting.FieldStatus)
	}
	if m.processing_status != nil {
		fields = append(fields, meeting.FieldProcessingStatus)
	}
	if m.processing_method != nil {
		fields = append(fields, meeting.FieldProcessingMethod)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, meeting.FieldProcessingTimeMs)
	}
	if m.topics != nil {
		fields = append(fields, meeting.FieldTopics)
	}
	if m.attachment_fingerprint != nil {
		fields = append(fields, meeting.FieldAttachmentFingerprint)
	}
	if m.metadata != nil {
		fields = append(fields, meeting.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, meeting.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, meeting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldBanana:
		return m.Banana()
	case meeting.FieldVendorID:
		return m.VendorID()
	case meeting.FieldTitle:
		return m.Title()
	case meeting.FieldDate:
		return m.Date()
	case meeting.FieldAgendaURL:
		return m.AgendaURL()
	case meeting.FieldPacketURL:
		return m.PacketURL()
	case meeting.FieldCommitteeID:
		return m.CommitteeID()
	case meeting.FieldSummary:
		return m.Summary()
	case meeting.FieldParticipation:
		return m.Participation()
	case meeting.FieldStatus:
		return m.Status()
	case meeting.FieldProcessingStatus:
		return m.ProcessingStatus()
	case meeting.FieldProcessingMethod:
		return m.ProcessingMethod()
	case meeting.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case meeting.FieldTopics:
		return m.Topics()
	case meeting.FieldAttachmentFingerprint:
		return m.AttachmentFingerprint()
	case meeting.FieldMetadata:
		return m.Metadata()
	case meeting.FieldCreatedAt:
		return m.CreatedAt()
	case meeting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meeting.FieldBanana:
		return m.OldBanana(ctx)
	case meeting.FieldVendorID:
		return m.OldVendorID(ctx)
	case meeting.FieldTitle:
		return m.OldTitle(ctx)
	case meeting.FieldDate:
		return m.OldDate(ctx)
	case meeting.FieldAgendaURL:
		return m.OldAgendaURL(ctx)
	case meeting.FieldPacketURL:
		return m.OldPacketURL(ctx)
	case meeting.FieldCommitteeID:
		return m.OldCommitteeID(ctx)
	case meeting.FieldSummary:
		return m.OldSummary(ctx)
	case meeting.FieldParticipation:
		return m.OldParticipation(ctx)
	case meeting.FieldStatus:
		return m.OldStatus(ctx)
	case meeting.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case meeting.FieldProcessingMethod:
		return m.OldProcessingMethod(ctx)
	case meeting.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case meeting.FieldTopics:
		return m.OldTopics(ctx)
	case meeting.FieldAttachmentFingerprint:
		return m.OldAttachmentFingerprint(ctx)
	case meeting.FieldMetadata:
		return m.OldMetadata(ctx)
	case meeting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case meeting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Meeting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldBanana:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBanana(v)
		return nil
	case meeting.FieldVendorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case meeting.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case meeting.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case meeting.FieldAgendaURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgendaURL(v)
		return nil
	case meeting.FieldPacketURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPacketURL(v)
		return nil
	case meeting.FieldCommitteeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitteeID(v)
		return nil
	case meeting.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case meeting.FieldParticipation:
		v, ok := value.(*models.Participation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipation(v)
		return nil
	case meeting.FieldStatus:
		v, ok := value.(meeting.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case meeting.FieldProcessingStatus:
		v, ok := value.(meeting.ProcessingStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case meeting.FieldProcessingMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMethod(v)
		return nil
	case meeting.FieldProcessingTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case meeting.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case meeting.FieldAttachmentFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachmentFingerprint(v)
		return nil
	case meeting.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case meeting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case meeting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingMutation) AddedFields() []string {
	var fields []string
	if m.addprocessing_time_ms != nil {
		fields = append(fields, meeting.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldProcessingTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meeting.FieldDate) {
		fields = append(fields, meeting.FieldDate)
	}
	if m.FieldCleared(meeting.FieldAgendaURL) {
		fields = append(fields, meeting.FieldAgendaURL)
	}
	if m.FieldCleared(meeting.FieldPacketURL) {
		fields = append(fields, meeting.FieldPacketURL)
	}
	if m.FieldCleared(meeting.FieldCommitteeID) {
		fields = append(fields, meeting.FieldCommitteeID)
	}
	if m.FieldCleared(meeting.FieldSummary) {
		fields = append(fields, meeting.FieldSummary)
	}
	if m.FieldCleared(meeting.FieldParticipation) {
		fields = append(fields, meeting.FieldParticipation)
	}
	if m.FieldCleared(meeting.FieldStatus) {
		fields = append(fields, meeting.FieldStatus)
	}
	if m.FieldCleared(meeting.FieldProcessingMethod) {
		fields = append(fields, meeting.FieldProcessingMethod)
	}
	if m.FieldCleared(meeting.FieldProcessingTimeMs) {
		fields = append(fields, meeting.FieldProcessingTimeMs)
	}
	if m.FieldCleared(meeting.FieldTopics) {
		fields = append(fields, meeting.FieldTopics)
	}
	if m.FieldCleared(meeting.FieldAttachmentFingerprint) {
		fields = append(fields, meeting.FieldAttachmentFingerprint)
	}
	if m.FieldCleared(meeting.FieldMetadata) {
		fields = append(fields, meeting.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingMutation) ClearField(name string) error {
	switch name {
	case meeting.FieldDate:
		m.ClearDate()
		return nil
	case meeting.FieldAgendaURL:
		m.ClearAgendaURL()
		return nil
	case meeting.FieldPacketURL:
		m.ClearPacketURL()
		return nil
	case meeting.FieldCommitteeID:
		m.ClearCommitteeID()
		return nil
	case meeting.FieldSummary:
		m.ClearSummary()
		return nil
	case meeting.FieldParticipation:
		m.ClearParticipation()
		return nil
	case meeting.FieldStatus:
		m.ClearStatus()
		return nil
	case meeting.FieldProcessingMethod:
		m.ClearProcessingMethod()
		return nil
	case meeting.FieldProcessingTimeMs:
		m.ClearProcessingTimeMs()
		return nil
	case meeting.FieldTopics:
		m.ClearTopics()
		return nil
	case meeting.FieldAttachmentFingerprint:
		m.ClearAttachmentFingerprint()
		return nil
	case meeting.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Meeting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingMutation) ResetField(name string) error {
	switch name {
	case meeting.FieldBanana:
		m.ResetBanana()
		return nil
	case meeting.FieldVendorID:
		m.ResetVendorID()
		return nil
	case meeting.FieldTitle:
		m.ResetTitle()
		return nil
	case meeting.FieldDate:
		m.ResetDate()
		return nil
	case meeting.FieldAgendaURL:
		m.ResetAgendaURL()
		return nil
	case meeting.FieldPacketURL:
		m.ResetPacketURL()
		return nil
	case meeting.FieldCommitteeID:
		m.ResetCommitteeID()
		return nil
	case meeting.FieldSummary:
		m.ResetSummary()
		return nil
	case meeting.FieldParticipation:
		m.ResetParticipation()
		return nil
	case meeting.FieldStatus:
		m.ResetStatus()
		return nil
	case meeting.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case meeting.FieldProcessingMethod:
		m.ResetProcessingMethod()
		return nil
	case meeting.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case meeting.FieldTopics:
		m.ResetTopics()
		return nil
	case meeting.FieldAttachmentFingerprint:
		m.ResetAttachmentFingerprint()
		return nil
	case meeting.FieldMetadata:
		m.ResetMetadata()
		return nil
	case meeting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case meeting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.city != nil {
		edges = append(edges, meeting.EdgeCity)
	}
	if m.committee != nil {
		edges = append(edges, meeting.EdgeCommittee)
	}
	if m.items != nil {
		edges = append(edges, meeting.EdgeItems)
	}
	if m.appearances != nil {
		edges = append(edges, meeting.EdgeAppearances)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case meeting.EdgeCity:
		if id := m.city; id != nil {
			return []ent.Value{*id}
		}
	case meeting.EdgeCommittee:
		if id := m.committee; id != nil {
			return []ent.Value{*id}
		}
	case meeting.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeAppearances:
		ids := make([]ent.Value, 0, len(m.appearances))
		for id := range m.appearances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeditems != nil {
		edges = append(edges, meeting.EdgeItems)
	}
	if m.removedappearances != nil {
		edges = append(edges, meeting.EdgeAppearances)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case meeting.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeAppearances:
		ids := make([]ent.Value, 0, len(m.removedappearances))
		for id := range m.removedappearances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcity {
		edges = append(edges, meeting.EdgeCity)
	}
	if m.clearedcommittee {
		edges = append(edges, meeting.EdgeCommittee)
	}
	if m.cleareditems {
		edges = append(edges, meeting.EdgeItems)
	}
	if m.clearedappearances {
		edges = append(edges, meeting.EdgeAppearances)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingMutation) EdgeCleared(name string) bool {
	switch name {
	case meeting.EdgeCity:
		return m.clearedcity
	case meeting.EdgeCommittee:
		return m.clearedcommittee
	case meeting.EdgeItems:
		return m.cleareditems
	case meeting.EdgeAppearances:
		return m.clearedappearances
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingMutation) ClearEdge(name string) error {
	switch name {
	case meeting.EdgeCity:
		m.ClearCity()
		return nil
	case meeting.EdgeCommittee:
		m.ClearCommittee()
		return nil
	}
	return fmt.Errorf("unknown Meeting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingMutation) ResetEdge(name string) error {
	switch name {
	case meeting.EdgeCity:
		m.ResetCity()
		return nil
	case meeting.EdgeCommittee:
		m.ResetCommittee()
		return nil
	case meeting.EdgeItems:
		m.ResetItems()
		return nil
	case meeting.EdgeAppearances:
		m.ResetAppearances()
		return nil
	}
	return fmt.Errorf("unknown Meeting edge %s", name)
}

// ProcessingCacheMutation represents an operation that mutates the ProcessingCache nodes in the graph.
type ProcessingCacheMutation struct {
	config
	op               Op
	typ              string
	id               *int64
	packet_url       *string
	content_hash     *string
	method           *string
	elapsed_ms       *int
	addelapsed_ms    *int
	hit_count        *int
	addhit_count     *int
	created_at       *time.Time
	last_accessed_at *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ProcessingCache, error)
	predicates       []predicate.ProcessingCache
}

var _ ent.Mutation = (*ProcessingCacheMutation)(nil)

// processingcacheOption allows management of the mutation configuration using functional options.
type processingcacheOption func(*ProcessingCacheMutation)

// newProcessingCacheMutation creates new mutation for the ProcessingCache entity.
func newProcessingCacheMutation(c config, op Op, opts ...processingcacheOption) *ProcessingCacheMutation {
	m := &ProcessingCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingCacheID sets the ID field of the mutation.
func withProcessingCacheID(id int64) processingcacheOption {
	return func(m *ProcessingCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingCache
		)
		m.oldValue = func(ctx context.Context) (*ProcessingCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingCache sets the old ProcessingCache of the mutation.
func withProcessingCache(node *ProcessingCache) processingcacheOption {
	return func(m *ProcessingCacheMutation) {
		m.oldValue = func(context.Context) (*ProcessingCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingCache entities.
func (m *ProcessingCacheMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingCacheMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingCacheMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPacketURL sets the "packet_url" field.
func (m *ProcessingCacheMutation) SetPacketURL(s string) {
	m.packet_url = &s
}

// PacketURL returns the value of the "packet_url" field in the mutation.
func (m *ProcessingCacheMutation) PacketURL() (r string, exists bool) {
	v := m.packet_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPacketURL returns the old "packet_url" field's value of the ProcessingCache entity.
// If the ProcessingCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingCacheMutation) OldPacketURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPacketURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPacketURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPacketURL: %w", err)
	}
	return oldValue.PacketURL, nil
}

// ResetPacketURL resets all changes to the "packet_url" field.
func (m *ProcessingCacheMutation) ResetPacketURL() {
	m.packet_url = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ProcessingCacheMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ProcessingCacheMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ProcessingCache entity.
// If the ProcessingCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingCacheMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *ProcessingCacheMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[processingcache.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *ProcessingCacheMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[processingcache.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ProcessingCacheMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, processingcache.FieldContentHash)
}

// SetMethod sets the "method" field.
func (m *ProcessingCacheMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ProcessingCacheMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ProcessingCache entity.
// If the ProcessingCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingCacheMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *ProcessingCacheMutation) ResetMethod() {
	m.method = nil
}

// SetElapsedMs sets the "elapsed_ms" field.
func (m *ProcessingCacheMutation) SetElapsedMs(i int) {
	m.elapsed_ms = &i
	m.addelapsed_ms = nil
}

// ElapsedMs returns the value of the "elapsed_ms" field in the mutation.
func (m *ProcessingCacheMutation) ElapsedMs() (r int, exists bool) {
	v := m.elapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedMs returns the old "elapsed_ms" field's value of the ProcessingCache entity.
// If the ProcessingCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingCacheMutation) OldElapsedMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedMs: %w", err)
	}
	return oldValue.ElapsedMs, nil
}

// AddElapsedMs adds i to the "elapsed_ms" field.
func (m *ProcessingCacheMutation) AddElapsedMs(i int) {
	if m.addelapsed_ms != nil {
		*m.addelapsed_ms += i
	} else {
		m.addelapsed_ms = &i
	}
}

// AddedElapsedMs returns the value that was added to the "elapsed_ms" field in this mutation.
func (m *ProcessingCacheMutation) AddedElapsedMs() (r int, exists bool) {
	v := m.addelapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedMs resets all changes to the "elapsed_ms" field.
func (m *ProcessingCacheMutation) ResetElapsedMs() {
	m.elapsed_ms = nil
	m.addelapsed_ms = nil
}

// SetHitCount sets the "hit_count" field.
func (m *ProcessingCacheMutation) SetHitCount(i int) {
	m.hit_count = &i
	m.addhit_count = nil
}

// HitCount returns the value of the "hit_count" field in the mutation.
func (m *ProcessingCacheMutation) HitCount() (r int, exists bool) {
	v := m.hit_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHitCount returns the old "hit_count" field's value of the ProcessingCache entity.
// If the ProcessingCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingCacheMutation) OldHitCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHitCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHitCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHitCount: %w", err)
	}
	return oldValue.HitCount, nil
}

// AddHitCount adds i to the "hit_count" field.
func (m *ProcessingCacheMutation) AddHitCount(i int) {
	if m.addhit_count != nil {
		*m.addhit_count += i
	} else {
		m.addhit_count = &i
	}
}

// AddedHitCount returns the value that was added to the "hit_count" field in this mutation.
func (m *ProcessingCacheMutation) AddedHitCount() (r int, exists bool) {
	v := m.addhit_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHitCount resets all changes to the "hit_count" field.
func (m *ProcessingCacheMutation) ResetHitCount() {
	m.hit_count = nil
	m.addhit_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingCache entity.
// If the ProcessingCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessingCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (m *ProcessingCacheMutation) SetLastAccessedAt(t time.Time) {
	m.last_accessed_at = &t
}

// LastAccessedAt returns the value of the "last_accessed_at" field in the mutation.
func (m *ProcessingCacheMutation) LastAccessedAt() (r time.Time, exists bool) {
	v := m.last_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessedAt returns the old "last_accessed_at" field's value of the ProcessingCache entity.
// If the ProcessingCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingCacheMutation) OldLastAccessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessedAt: %w", err)
	}
	return oldValue.LastAccessedAt, nil
}

// ResetLastAccessedAt resets all changes to the "last_accessed_at" field.
func (m *ProcessingCacheMutation) ResetLastAccessedAt() {
	m.last_accessed_at = nil
}

// Where appends a list predicates to the ProcessingCacheMutation builder.
func (m *ProcessingCacheMutation) Where(ps ...predicate.ProcessingCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingCache).
func (m *ProcessingCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingCacheMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.packet_url != nil {
		fields = append(fields, processingcache.FieldPacketURL)
	}
	if m.content_hash != nil {
		fields = append(fields, processingcache.FieldContentHash)
	}
	if m.method != nil {
		fields = append(fields, processingcache.FieldMethod)
	}
	if m.elapsed_ms != nil {
		fields = append(fields, processingcache.FieldElapsedMs)
	}
	if m.hit_count != nil {
		fields = append(fields, processingcache.FieldHitCount)
	}
	if m.created_at != nil {
		fields = append(fields, processingcache.FieldCreatedAt)
	}
	if m.last_accessed_at != nil {
		fields = append(fields, processingcache.FieldLastAccessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingcache.FieldPacketURL:
		return m.PacketURL()
	case processingcache.FieldContentHash:
		return m.ContentHash()
	case processingcache.FieldMethod:
		return m.Method()
	case processingcache.FieldElapsedMs:
		return m.ElapsedMs()
	case processingcache.FieldHitCount:
		return m.HitCount()
	case processingcache.FieldCreatedAt:
		return m.CreatedAt()
	case processingcache.FieldLastAccessedAt:
		return m.LastAccessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingcache.FieldPacketURL:
		return m.OldPacketURL(ctx)
	case processingcache.FieldContentHash:
		return m.OldContentHash(ctx)
	case processingcache.FieldMethod:
		return m.OldMethod(ctx)
	case processingcache.FieldElapsedMs:
		return m.OldElapsedMs(ctx)
	case processingcache.FieldHitCount:
		return m.OldHitCount(ctx)
	case processingcache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processingcache.FieldLastAccessedAt:
		return m.OldLastAccessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingcache.FieldPacketURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPacketURL(v)
		return nil
	case processingcache.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case processingcache.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case processingcache.FieldElapsedMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedMs(v)
		return nil
	case processingcache.FieldHitCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHitCount(v)
		return nil
	case processingcache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processingcache.FieldLastAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingCacheMutation) AddedFields() []string {
	var fields []string
	if m.addelapsed_ms != nil {
		fields = append(fields, processingcache.FieldElapsedMs)
	}
	if m.addhit_count != nil {
		fields = append(fields, processingcache.FieldHitCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingcache.FieldElapsedMs:
		return m.AddedElapsedMs()
	case processingcache.FieldHitCount:
		return m.AddedHitCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingcache.FieldElapsedMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedMs(v)
		return nil
	case processingcache.FieldHitCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHitCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingCacheMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingcache.FieldContentHash) {
		fields = append(fields, processingcache.FieldContentHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingCacheMutation) ClearField(name string) error {
	switch name {
	case processingcache.FieldContentHash:
		m.ClearContentHash()
		return nil
	}
	return fmt.Errorf("unknown ProcessingCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingCacheMutation) ResetField(name string) error {
	switch name {
	case processingcache.FieldPacketURL:
		m.ResetPacketURL()
		return nil
	case processingcache.FieldContentHash:
		m.ResetContentHash()
		return nil
	case processingcache.FieldMethod:
		m.ResetMethod()
		return nil
	case processingcache.FieldElapsedMs:
		m.ResetElapsedMs()
		return nil
	case processingcache.FieldHitCount:
		m.ResetHitCount()
		return nil
	case processingcache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processingcache.FieldLastAccessedAt:
		m.ResetLastAccessedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessingCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessingCache edge %s", name)
}

// QueueJobMutation represents an operation that mutates the QueueJob nodes in the graph.
type QueueJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int64
	source_url          *string
	meeting_id          *string
	banana              *string
	job_type            *string
	payload             *map[string]interface{}
	status              *queuejob.Status
	priority            *int
	addpriority         *int
	retry_count         *int
	addretry_count      *int
	not_before          *time.Time
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	failed_at           *time.Time
	worker_id           *string
	error_message       *string
	processing_metadata *map[string]interface{}
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*QueueJob, error)
	predicates          []predicate.QueueJob
}

var _ ent.Mutation = (*QueueJobMutation)(nil)

// queuejobOption allows management of the mutation configuration using functional options.
type queuejobOption func(*QueueJobMutation)

// newQueueJobMutation creates new mutation for the QueueJob entity.
func newQueueJobMutation(c config, op Op, opts ...queuejobOption) *QueueJobMutation {
	m := &QueueJobMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueJobID sets the ID field of the mutation.
func withQueueJobID(id int64) queuejobOption {
	return func(m *QueueJobMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueJob
		)
		m.oldValue = func(ctx context.Context) (*QueueJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueJob sets the old QueueJob of the mutation.
func withQueueJob(node *QueueJob) queuejobOption {
	return func(m *QueueJobMutation) {
		m.oldValue = func(context.Context) (*QueueJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueJob entities.
func (m *QueueJobMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueJobMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueJobMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceURL sets the "source_url" field.
func (m *QueueJobMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *QueueJobMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *QueueJobMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetMeetingID sets the "meeting_id" field.
func (m *QueueJobMutation) SetMeetingID(s string) {
	m.meeting_id = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *QueueJobMutation) MeetingID() (r string, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (m *QueueJobMutation) ClearMeetingID() {
	m.meeting_id = nil
	m.clearedFields[queuejob.FieldMeetingID] = struct{}{}
}

// MeetingIDCleared returns if the "meeting_id" field was cleared in this mutation.
func (m *QueueJobMutation) MeetingIDCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldMeetingID]
	return ok
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *QueueJobMutation) ResetMeetingID() {
	m.meeting_id = nil
	delete(m.clearedFields, queuejob.FieldMeetingID)
}

// SetBanana sets the "banana" field.
func (m *QueueJobMutation) SetBanana(s string) {
	m.banana = &s
}

// Banana returns the value of the "banana" field in the mutation.
func (m *QueueJobMutation) Banana() (r string, exists bool) {
	v := m.banana
	if v == nil {
		return
	}
	return *v, true
}

// OldBanana returns the old "banana" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldBanana(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBanana is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBanana requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBanana: %w", err)
	}
	return oldValue.Banana, nil
}

// ClearBanana clears the value of the "banana" field.
func (m *QueueJobMutation) ClearBanana() {
	m.banana = nil
	m.clearedFields[queuejob.FieldBanana] = struct{}{}
}

// BananaCleared returns if the "banana" field was cleared in this mutation.
func (m *QueueJobMutation) BananaCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldBanana]
	return ok
}

// ResetBanana resets all changes to the "banana" field.
func (m *QueueJobMutation) ResetBanana() {
	m.banana = nil
	delete(m.clearedFields, queuejob.FieldBanana)
}

// SetJobType sets the "job_type" field.
func (m *QueueJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *QueueJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *QueueJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetPayload sets the "payload" field.
func (m *QueueJobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueueJobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *QueueJobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[queuejob.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *QueueJobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueueJobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, queuejob.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *QueueJobMutation) SetStatus(q queuejob.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueJobMutation) Status() (r queuejob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldStatus(ctx context.Context) (v queuejob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueueJobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *QueueJobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *QueueJobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *QueueJobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *QueueJobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *QueueJobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *QueueJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *QueueJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *QueueJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *QueueJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *QueueJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetNotBefore sets the "not_before" field.
func (m *QueueJobMutation) SetNotBefore(t time.Time) {
	m.not_before = &t
}

// NotBefore returns the value of the "not_before" field in the mutation.
func (m *QueueJobMutation) NotBefore() (r time.Time, exists bool) {
	v := m.not_before
	if v == nil {
		return
	}
	return *v, true
}

// OldNotBefore returns the old "not_before" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldNotBefore(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotBefore: %w", err)
	}
	return oldValue.NotBefore, nil
}

// ClearNotBefore clears the value of the "not_before" field.
func (m *QueueJobMutation) ClearNotBefore() {
	m.not_before = nil
	m.clearedFields[queuejob.FieldNotBefore] = struct{}{}
}

// NotBeforeCleared returns if the "not_before" field was cleared in this mutation.
func (m *QueueJobMutation) NotBeforeCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldNotBefore]
	return ok
}

// ResetNotBefore resets all changes to the "not_before" field.
func (m *QueueJobMutation) ResetNotBefore() {
	m.not_before = nil
	delete(m.clearedFields, queuejob.FieldNotBefore)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueueJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *QueueJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *QueueJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *QueueJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[queuejob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *QueueJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *QueueJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, queuejob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *QueueJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QueueJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QueueJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[queuejob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QueueJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QueueJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, queuejob.FieldCompletedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *QueueJobMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *QueueJobMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *QueueJobMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[queuejob.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *QueueJobMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *QueueJobMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, queuejob.FieldFailedAt)
}

// SetWorkerID sets the "worker_id" field.
func (m *QueueJobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *QueueJobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldWorkerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *QueueJobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[queuejob.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *QueueJobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *QueueJobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, queuejob.FieldWorkerID)
}

// SetErrorMessage sets the "error_message" field.
func (m *QueueJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *QueueJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *QueueJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[queuejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *QueueJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *QueueJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, queuejob.FieldErrorMessage)
}

// SetProcessingMetadata sets the "processing_metadata" field.
func (m *QueueJobMutation) SetProcessingMetadata(value map[string]interface{}) {
	m.processing_metadata = &value
}

// ProcessingMetadata returns the value of the "processing_metadata" field in the mutation.
func (m *QueueJobMutation) ProcessingMetadata() (r map[string]interface{}, exists bool) {
	v := m.processing_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMetadata returns the old "processing_metadata" field's value of the QueueJob entity.
// If the QueueJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueJobMutation) OldProcessingMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMetadata: %w", err)
	}
	return oldValue.ProcessingMetadata, nil
}

// ClearProcessingMetadata clears the value of the "processing_metadata" field.
func (m *QueueJobMutation) ClearProcessingMetadata() {
	m.processing_metadata = nil
	m.clearedFields[queuejob.FieldProcessingMetadata] = struct{}{}
}

// ProcessingMetadataCleared returns if the "processing_metadata" field was cleared in this mutation.
func (m *QueueJobMutation) ProcessingMetadataCleared() bool {
	_, ok := m.clearedFields[queuejob.FieldProcessingMetadata]
	return ok
}

// ResetProcessingMetadata resets all changes to the "processing_metadata" field.
func (m *QueueJobMutation) ResetProcessingMetadata() {
	m.processing_metadata = nil
	delete(m.clearedFields, queuejob.FieldProcessingMetadata)
}

// Where appends a list predicates to the QueueJobMutation builder.
func (m *QueueJobMutation) Where(ps ...predicate.QueueJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueJob).
func (m *QueueJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueJobMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.source_url != nil {
		fields = append(fields, queuejob.FieldSourceURL)
	}
	if m.meeting_id != nil {
		fields = append(fields, queuejob.FieldMeetingID)
	}
	if m.banana != nil {
		fields = append(fields, queuejob.FieldBanana)
	}
	if m.job_type != nil {
		fields = append(fields, queuejob.FieldJobType)
	}
	if m.payload != nil {
		fields = append(fields, queuejob.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, queuejob.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, queuejob.FieldPriority)
	}
	if m.retry_count != nil {
		fields = append(fields, queuejob.FieldRetryCount)
	}
	if m.not_before != nil {
		fields = append(fields, queuejob.FieldNotBefore)
	}
	if m.created_at != nil {
		fields = append(fields, queuejob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, queuejob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, queuejob.FieldCompletedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, queuejob.FieldFailedAt)
	}
	if m.worker_id != nil {
		fields = append(fields, queuejob.FieldWorkerID)
	}
	if m.error_message != nil {
		fields = append(fields, queuejob.FieldErrorMessage)
	}
	if m.processing_metadata != nil {
		fields = append(fields, queuejob.FieldProcessingMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuejob.FieldSourceURL:
		return m.SourceURL()
	case queuejob.FieldMeetingID:
		return m.MeetingID()
	case queuejob.FieldBanana:
		return m.Banana()
	case queuejob.FieldJobType:
		return m.JobType()
	case queuejob.FieldPayload:
		return m.Payload()
	case queuejob.FieldStatus:
		return m.Status()
	case queuejob.FieldPriority:
		return m.Priority()
	case queuejob.FieldRetryCount:
		return m.RetryCount()
	case queuejob.FieldNotBefore:
		return m.NotBefore()
	case queuejob.FieldCreatedAt:
		return m.CreatedAt()
	case queuejob.FieldStartedAt:
		return m.StartedAt()
	case queuejob.FieldCompletedAt:
		return m.CompletedAt()
	case queuejob.FieldFailedAt:
		return m.FailedAt()
	case queuejob.FieldWorkerID:
		return m.WorkerID()
	case queuejob.FieldErrorMessage:
		return m.ErrorMessage()
	case queuejob.FieldProcessingMetadata:
		return m.ProcessingMetadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuejob.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case queuejob.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case queuejob.FieldBanana:
		return m.OldBanana(ctx)
	case queuejob.FieldJobType:
		return m.OldJobType(ctx)
	case queuejob.FieldPayload:
		return m.OldPayload(ctx)
	case queuejob.FieldStatus:
		return m.OldStatus(ctx)
	case queuejob.FieldPriority:
		return m.OldPriority(ctx)
	case queuejob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case queuejob.FieldNotBefore:
		return m.OldNotBefore(ctx)
	case queuejob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case queuejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case queuejob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case queuejob.FieldFailedAt:
		return m.OldFailedAt(ctx)
	case queuejob.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case queuejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case queuejob.FieldProcessingMetadata:
		return m.OldProcessingMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown QueueJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuejob.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case queuejob.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case queuejob.FieldBanana:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBanana(v)
		return nil
	case queuejob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case queuejob.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case queuejob.FieldStatus:
		v, ok := value.(queuejob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queuejob.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case queuejob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case queuejob.FieldNotBefore:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotBefore(v)
		return nil
	case queuejob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case queuejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case queuejob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case queuejob.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	case queuejob.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case queuejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case queuejob.FieldProcessingMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown QueueJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueJobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, queuejob.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, queuejob.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuejob.FieldPriority:
		return m.AddedPriority()
	case queuejob.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuejob.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case queuejob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown QueueJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuejob.FieldMeetingID) {
		fields = append(fields, queuejob.FieldMeetingID)
	}
	if m.FieldCleared(queuejob.FieldBanana) {
		fields = append(fields, queuejob.FieldBanana)
	}
	if m.FieldCleared(queuejob.FieldPayload) {
		fields = append(fields, queuejob.FieldPayload)
	}
	if m.FieldCleared(queuejob.FieldNotBefore) {
		fields = append(fields, queuejob.FieldNotBefore)
	}
	if m.FieldCleared(queuejob.FieldStartedAt) {
		fields = append(fields, queuejob.FieldStartedAt)
	}
	if m.FieldCleared(queuejob.FieldCompletedAt) {
		fields = append(fields, queuejob.FieldCompletedAt)
	}
	if m.FieldCleared(queuejob.FieldFailedAt) {
		fields = append(fields, queuejob.FieldFailedAt)
	}
	if m.FieldCleared(queuejob.FieldWorkerID) {
		fields = append(fields, queuejob.FieldWorkerID)
	}
	if m.FieldCleared(queuejob.FieldErrorMessage) {
		fields = append(fields, queuejob.FieldErrorMessage)
	}
	if m.FieldCleared(queuejob.FieldProcessingMetadata) {
		fields = append(fields, queuejob.FieldProcessingMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueJobMutation) ClearField(name string) error {
	switch name {
	case queuejob.FieldMeetingID:
		m.ClearMeetingID()
		return nil
	case queuejob.FieldBanana:
		m.ClearBanana()
		return nil
	case queuejob.FieldPayload:
		m.ClearPayload()
		return nil
	case queuejob.FieldNotBefore:
		m.ClearNotBefore()
		return nil
	case queuejob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case queuejob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case queuejob.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	case queuejob.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case queuejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case queuejob.FieldProcessingMetadata:
		m.ClearProcessingMetadata()
		return nil
	}
	return fmt.Errorf("unknown QueueJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueJobMutation) ResetField(name string) error {
	switch name {
	case queuejob.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case queuejob.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case queuejob.FieldBanana:
		m.ResetBanana()
		return nil
	case queuejob.FieldJobType:
		m.ResetJobType()
		return nil
	case queuejob.FieldPayload:
		m.ResetPayload()
		return nil
	case queuejob.FieldStatus:
		m.ResetStatus()
		return nil
	case queuejob.FieldPriority:
		m.ResetPriority()
		return nil
	case queuejob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case queuejob.FieldNotBefore:
		m.ResetNotBefore()
		return nil
	case queuejob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case queuejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case queuejob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case queuejob.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	case queuejob.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case queuejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case queuejob.FieldProcessingMetadata:
		m.ResetProcessingMetadata()
		return nil
	}
	return fmt.Errorf("unknown QueueJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueJob edge %s", name)
}

// VoteMutation represents an operation that mutates the Vote nodes in the graph.
type VoteMutation struct {
	config
	op            Op
	typ           string
	id            *string
	meeting_id    *string
	value         *vote.Value
	vote_date     *time.Time
	sequence      *int
	addsequence   *int
	clearedFields map[string]struct{}
	member        *string
	clearedmember bool
	matter        *string
	clearedmatter bool
	done          bool
	oldValue      func(context.Context) (*Vote, error)
	predicates    []predicate.Vote
}

var _ ent.Mutation = (*VoteMutation)(nil)

// voteOption allows management of the mutation configuration using functional options.
type voteOption func(*VoteMutation)

// newVoteMutation creates new mutation for the Vote entity.
func newVoteMutation(c config, op Op, opts ...voteOption) *VoteMutation {
	m := &VoteMutation{
		config:        c,
		op:            op,
		typ:           TypeVote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoteID sets the ID field of the mutation.
func withVoteID(id string) voteOption {
	return func(m *VoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Vote
		)
		m.oldValue = func(ctx context.Context) (*Vote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVote sets the old Vote of the mutation.
func withVote(node *Vote) voteOption {
	return func(m *VoteMutation) {
		m.oldValue = func(context.Context) (*Vote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vote entities.
func (m *VoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMemberID sets the "member_id" field.
func (m *VoteMutation) SetMemberID(s string) {
	m.member = &s
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *VoteMutation) MemberID() (r string, exists bool) {
	v := m.member
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldMemberID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *VoteMutation) ResetMemberID() {
	m.member = nil
}

// SetMatterID sets the "matter_id" field.
func (m *VoteMutation) SetMatterID(s string) {
	m.matter = &s
}

// MatterID returns the value of the "matter_id" field in the mutation.
func (m *VoteMutation) MatterID() (r string, exists bool) {
	v := m.matter
	if v == nil {
		return
	}
	return *v, true
}

// OldMatterID returns the old "matter_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldMatterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatterID: %w", err)
	}
	return oldValue.MatterID, nil
}

// ResetMatterID resets all changes to the "matter_id" field.
func (m *VoteMutation) ResetMatterID() {
	m.matter = nil
}

// SetMeetingID sets the "meeting_id" field.
func (m *VoteMutation) SetMeetingID(s string) {
	m.meeting_id = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *VoteMutation) MeetingID() (r string, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *VoteMutation) ResetMeetingID() {
	m.meeting_id = nil
}

// SetValue sets the "value" field.
func (m *VoteMutation) SetValue(v vote.Value) {
	m.value = &v
}

// Value returns the value of the "value" field in the mutation.
func (m *VoteMutation) Value() (r vote.Value, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldValue(ctx context.Context) (v vote.Value, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *VoteMutation) ResetValue() {
	m.value = nil
}

// SetVoteDate sets the "vote_date" field.
func (m *VoteMutation) SetVoteDate(t time.Time) {
	m.vote_date = &t
}

// VoteDate returns the value of the "vote_date" field in the mutation.
func (m *VoteMutation) VoteDate() (r time.Time, exists bool) {
	v := m.vote_date
	if v == nil {
		return
	}
	return *v, true
}

// OldVoteDate returns the old "vote_date" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldVoteDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoteDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoteDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoteDate: %w", err)
	}
	return oldValue.VoteDate, nil
}

// ClearVoteDate clears the value of the "vote_date" field.
func (m *VoteMutation) ClearVoteDate() {
	m.vote_date = nil
	m.clearedFields[vote.FieldVoteDate] = struct{}{}
}

// VoteDateCleared returns if the "vote_date" field was cleared in this mutation.
func (m *VoteMutation) VoteDateCleared() bool {
	_, ok := m.clearedFields[vote.FieldVoteDate]
	return ok
}

// ResetVoteDate resets all changes to the "vote_date" field.
func (m *VoteMutation) ResetVoteDate() {
	m.vote_date = nil
	delete(m.clearedFields, vote.FieldVoteDate)
}

// SetSequence sets the "sequence" field.
func (m *VoteMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *VoteMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *VoteMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *VoteMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ClearSequence clears the value of the "sequence" field.
func (m *VoteMutation) ClearSequence() {
	m.sequence = nil
	m.addsequence = nil
	m.clearedFields[vote.FieldSequence] = struct{}{}
}

// SequenceCleared returns if the "sequence" field was cleared in this mutation.
func (m *VoteMutation) SequenceCleared() bool {
	_, ok := m.clearedFields[vote.FieldSequence]
	return ok
}

// ResetSequence resets all changes to the "sequence" field.
func (m *VoteMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
	delete(m.clearedFields, vote.FieldSequence)
}

// ClearMember clears the "member" edge to the CouncilMember entity.
func (m *VoteMutation) ClearMember() {
	m.clearedmember = true
	m.clearedFields[vote.FieldMemberID] = struct{}{}
}

// MemberCleared reports if the "member" edge to the CouncilMember entity was cleared.
func (m *VoteMutation) MemberCleared() bool {
	return m.clearedmember
}

// MemberIDs returns the "member" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemberID instead. It exists only for internal usage by the builders.
func (m *VoteMutation) MemberIDs() (ids []string) {
	if id := m.member; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMember resets all changes to the "member" edge.
func (m *VoteMutation) ResetMember() {
	m.member = nil
	m.clearedmember = false
}

// ClearMatter clears the "matter" edge to the Matter entity.
func (m *VoteMutation) ClearMatter() {
	m.clearedmatter = true
	m.clearedFields[vote.FieldMatterID] = struct{}{}
}

// MatterCleared reports if the "matter" edge to the Matter entity was cleared.
func (m *VoteMutation) MatterCleared() bool {
	return m.clearedmatter
}

// MatterIDs returns the "matter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MatterID instead. It exists only for internal usage by the builders.
func (m *VoteMutation) MatterIDs() (ids []string) {
	if id := m.matter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMatter resets all changes to the "matter" edge.
func (m *VoteMutation) ResetMatter() {
	m.matter = nil
	m.clearedmatter = false
}

// Where appends a list predicates to the VoteMutation builder.
func (m *VoteMutation) Where(ps ...predicate.Vote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vote).
func (m *VoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoteMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.member != nil {
		fields = append(fields, vote.FieldMemberID)
	}
	if m.matter != nil {
		fields = append(fields, vote.FieldMatterID)
	}
	if m.meeting_id != nil {
		fields = append(fields, vote.FieldMeetingID)
	}
	if m.value != nil {
		fields = append(fields, vote.FieldValue)
	}
	if m.vote_date != nil {
		fields = append(fields, vote.FieldVoteDate)
	}
	if m.sequence != nil {
		fields = append(fields, vote.FieldSequence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vote.FieldMemberID:
		return m.MemberID()
	case vote.FieldMatterID:
		return m.MatterID()
	case vote.FieldMeetingID:
		return m.MeetingID()
	case vote.FieldValue:
		return m.Value()
	case vote.FieldVoteDate:
		return m.VoteDate()
	case vote.FieldSequence:
		return m.Sequence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vote.FieldMemberID:
		return m.OldMemberID(ctx)
	case vote.FieldMatterID:
		return m.OldMatterID(ctx)
	case vote.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case vote.FieldValue:
		return m.OldValue(ctx)
	case vote.FieldVoteDate:
		return m.OldVoteDate(ctx)
	case vote.FieldSequence:
		return m.OldSequence(ctx)
	}
	return nil, fmt.Errorf("unknown Vote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vote.FieldMemberID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case vote.FieldMatterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatterID(v)
		return nil
	case vote.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case vote.FieldValue:
		v, ok := value.(vote.Value)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case vote.FieldVoteDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoteDate(v)
		return nil
	case vote.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoteMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, vote.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vote.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vote.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Vote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vote.FieldVoteDate) {
		fields = append(fields, vote.FieldVoteDate)
	}
	if m.FieldCleared(vote.FieldSequence) {
		fields = append(fields, vote.FieldSequence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoteMutation) ClearField(name string) error {
	switch name {
	case vote.FieldVoteDate:
		m.ClearVoteDate()
		return nil
	case vote.FieldSequence:
		m.ClearSequence()
		return nil
	}
	return fmt.Errorf("unknown Vote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoteMutation) ResetField(name string) error {
	switch name {
	case vote.FieldMemberID:
		m.ResetMemberID()
		return nil
	case vote.FieldMatterID:
		m.ResetMatterID()
		return nil
	case vote.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case vote.FieldValue:
		m.ResetValue()
		return nil
	case vote.FieldVoteDate:
		m.ResetVoteDate()
		return nil
	case vote.FieldSequence:
		m.ResetSequence()
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.member != nil {
		edges = append(edges, vote.EdgeMember)
	}
	if m.matter != nil {
		edges = append(edges, vote.EdgeMatter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vote.EdgeMember:
		if id := m.member; id != nil {
			return []ent.Value{*id}
		}
	case vote.EdgeMatter:
		if id := m.matter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmember {
		edges = append(edges, vote.EdgeMember)
	}
	if m.clearedmatter {
		edges = append(edges, vote.EdgeMatter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoteMutation) EdgeCleared(name string) bool {
	switch name {
	case vote.EdgeMember:
		return m.clearedmember
	case vote.EdgeMatter:
		return m.clearedmatter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoteMutation) ClearEdge(name string) error {
	switch name {
	case vote.EdgeMember:
		m.ClearMember()
		return nil
	case vote.EdgeMatter:
		m.ClearMatter()
		return nil
	}
	return fmt.Errorf("unknown Vote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoteMutation) ResetEdge(name string) error {
	switch name {
	case vote.EdgeMember:
		m.ResetMember()
		return nil
	case vote.EdgeMatter:
		m.ResetMatter()
		return nil
	}
	return fmt.Errorf("unknown Vote edge %s", name)
}
