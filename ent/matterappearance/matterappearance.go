// Code generated by ent, DO NOT EDIT.

package matterappearance

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the matterappearance type in the database.
	Label = "matter_appearance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "appearance_id"
	// FieldMatterID holds the string denoting the matter_id field in the database.
	FieldMatterID = "matter_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldAppearedAt holds the string denoting the appeared_at field in the database.
	FieldAppearedAt = "appeared_at"
	// FieldCommitteeID holds the string denoting the committee_id field in the database.
	FieldCommitteeID = "committee_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldVoteOutcome holds the string denoting the vote_outcome field in the database.
	FieldVoteOutcome = "vote_outcome"
	// FieldVoteTally holds the string denoting the vote_tally field in the database.
	FieldVoteTally = "vote_tally"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// EdgeMatter holds the string denoting the matter edge name in mutations.
	EdgeMatter = "matter"
	// EdgeMeeting holds the string denoting the meeting edge name in mutations.
	EdgeMeeting = "meeting"
	// EdgeItem holds the string denoting the item edge name in mutations.
	EdgeItem = "item"
	// MatterFieldID holds the string denoting the ID field of the Matter.
	MatterFieldID = "matter_id"
	// MeetingFieldID holds the string denoting the ID field of the Meeting.
	MeetingFieldID = "meeting_id"
	// AgendaItemFieldID holds the string denoting the ID field of the AgendaItem.
	AgendaItemFieldID = "item_id"
	// Table holds the table name of the matterappearance in the database.
	Table = "matter_appearances"
	// MatterTable is the table that holds the matter relation/edge.
	MatterTable = "matter_appearances"
	// MatterInverseTable is the table name for the Matter entity.
	// It exists in this package in order to avoid circular dependency with the "matter" package.
	MatterInverseTable = "matters"
	// MatterColumn is the table column denoting the matter relation/edge.
	MatterColumn = "matter_id"
	// MeetingTable is the table that holds the meeting relation/edge.
	MeetingTable = "matter_appearances"
	// MeetingInverseTable is the table name for the Meeting entity.
	// It exists in this package in order to avoid circular dependency with the "meeting" package.
	MeetingInverseTable = "meetings"
	// MeetingColumn is the table column denoting the meeting relation/edge.
	MeetingColumn = "meeting_id"
	// ItemTable is the table that holds the item relation/edge.
	ItemTable = "matter_appearances"
	// ItemInverseTable is the table name for the AgendaItem entity.
	// It exists in this package in order to avoid circular dependency with the "agendaitem" package.
	ItemInverseTable = "agenda_items"
	// ItemColumn is the table column denoting the item relation/edge.
	ItemColumn = "item_id"
)

// Columns holds all SQL columns for matterappearance fields.
var Columns = []string{
	FieldID,
	FieldMatterID,
	FieldMeetingID,
	FieldItemID,
	FieldAppearedAt,
	FieldCommitteeID,
	FieldAction,
	FieldVoteOutcome,
	FieldVoteTally,
	FieldSequence,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAppearedAt holds the default value on creation for the "appeared_at" field.
	DefaultAppearedAt func() time.Time
)

// VoteOutcome defines the type for the "vote_outcome" enum field.
type VoteOutcome string

// VoteOutcome values.
const (
	VoteOutcomePassed    VoteOutcome = "passed"
	VoteOutcomeFailed    VoteOutcome = "failed"
	VoteOutcomeTabled    VoteOutcome = "tabled"
	VoteOutcomeWithdrawn VoteOutcome = "withdrawn"
	VoteOutcomeReferred  VoteOutcome = "referred"
	VoteOutcomeAmended   VoteOutcome = "amended"
	VoteOutcomeNoVote    VoteOutcome = "no_vote"
	VoteOutcomeUnknown   VoteOutcome = "unknown"
)

func (vo VoteOutcome) String() string {
	return string(vo)
}

// VoteOutcomeValidator is a validator for the "vote_outcome" field enum values. It is called by the builders before save.
func VoteOutcomeValidator(vo VoteOutcome) error {
	switch vo {
	case VoteOutcomePassed, VoteOutcomeFailed, VoteOutcomeTabled, VoteOutcomeWithdrawn, VoteOutcomeReferred, VoteOutcomeAmended, VoteOutcomeNoVote, VoteOutcomeUnknown:
		return nil
	default:
		return fmt.Errorf("matterappearance: invalid enum value for vote_outcome field: %q", vo)
	}
}

// OrderOption defines the ordering options for the MatterAppearance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMatterID orders the results by the matter_id field.
func ByMatterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByAppearedAt orders the results by the appeared_at field.
func ByAppearedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppearedAt, opts...).ToFunc()
}

// ByCommitteeID orders the results by the committee_id field.
func ByCommitteeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitteeID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByVoteOutcome orders the results by the vote_outcome field.
func ByVoteOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoteOutcome, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByMatterField orders the results by matter field.
func ByMatterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatterStep(), sql.OrderByField(field, opts...))
	}
}

// ByMeetingField orders the results by meeting field.
func ByMeetingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMeetingStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemField orders the results by item field.
func ByItemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemStep(), sql.OrderByField(field, opts...))
	}
}
func newMatterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatterInverseTable, MatterFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MatterTable, MatterColumn),
	)
}
func newMeetingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MeetingInverseTable, MeetingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
	)
}
func newItemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemInverseTable, AgendaItemFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ItemTable, ItemColumn),
	)
}
