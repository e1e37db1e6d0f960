// Code generated by ent, DO NOT EDIT.

package vote

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the vote type in the database.
	Label = "vote"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "vote_id"
	// FieldMemberID holds the string denoting the member_id field in the database.
	FieldMemberID = "member_id"
	// FieldMatterID holds the string denoting the matter_id field in the database.
	FieldMatterID = "matter_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldVoteDate holds the string denoting the vote_date field in the database.
	FieldVoteDate = "vote_date"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// EdgeMember holds the string denoting the member edge name in mutations.
	EdgeMember = "member"
	// EdgeMatter holds the string denoting the matter edge name in mutations.
	EdgeMatter = "matter"
	// CouncilMemberFieldID holds the string denoting the ID field of the CouncilMember.
	CouncilMemberFieldID = "member_id"
	// MatterFieldID holds the string denoting the ID field of the Matter.
	MatterFieldID = "matter_id"
	// Table holds the table name of the vote in the database.
	Table = "votes"
	// MemberTable is the table that holds the member relation/edge.
	MemberTable = "votes"
	// MemberInverseTable is the table name for the CouncilMember entity.
	// It exists in this package in order to avoid circular dependency with the "councilmember" package.
	MemberInverseTable = "council_members"
	// MemberColumn is the table column denoting the member relation/edge.
	MemberColumn = "member_id"
	// MatterTable is the table that holds the matter relation/edge.
	MatterTable = "votes"
	// MatterInverseTable is the table name for the Matter entity.
	// It exists in this package in order to avoid circular dependency with the "matter" package.
	MatterInverseTable = "matters"
	// MatterColumn is the table column denoting the matter relation/edge.
	MatterColumn = "matter_id"
)

// Columns holds all SQL columns for vote fields.
var Columns = []string{
	FieldID,
	FieldMemberID,
	FieldMatterID,
	FieldMeetingID,
	FieldValue,
	FieldVoteDate,
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

// Value defines the type for the "value" enum field.
type Value string

// Value values.
const (
	ValueYes       Value = "yes"
	ValueNo        Value = "no"
	ValueAbstain   Value = "abstain"
	ValueAbsent    Value = "absent"
	ValuePresent   Value = "present"
	ValueRecused   Value = "recused"
	ValueNotVoting Value = "not_voting"
)

func (v Value) String() string {
	return string(v)
}

// ValueValidator is a validator for the "value" field enum values. It is called by the builders before save.
func ValueValidator(v Value) error {
	switch v {
	case ValueYes, ValueNo, ValueAbstain, ValueAbsent, ValuePresent, ValueRecused, ValueNotVoting:
		return nil
	default:
		return fmt.Errorf("vote: invalid enum value for value field: %q", v)
	}
}

// OrderOption defines the ordering options for the Vote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMemberID orders the results by the member_id field.
func ByMemberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberID, opts...).ToFunc()
}

// ByMatterID orders the results by the matter_id field.
func ByMatterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByVoteDate orders the results by the vote_date field.
func ByVoteDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoteDate, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByMemberField orders the results by member field.
func ByMemberField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemberStep(), sql.OrderByField(field, opts...))
	}
}

// ByMatterField orders the results by matter field.
func ByMatterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatterStep(), sql.OrderByField(field, opts...))
	}
}
func newMemberStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemberInverseTable, CouncilMemberFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MemberTable, MemberColumn),
	)
}
func newMatterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatterInverseTable, MatterFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MatterTable, MatterColumn),
	)
}
