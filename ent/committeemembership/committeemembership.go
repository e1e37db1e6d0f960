// Code generated by ent, DO NOT EDIT.

package committeemembership

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the committeemembership type in the database.
	Label = "committee_membership"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "membership_id"
	// FieldCommitteeID holds the string denoting the committee_id field in the database.
	FieldCommitteeID = "committee_id"
	// FieldMemberID holds the string denoting the member_id field in the database.
	FieldMemberID = "member_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldJoinedAt holds the string denoting the joined_at field in the database.
	FieldJoinedAt = "joined_at"
	// FieldLeftAt holds the string denoting the left_at field in the database.
	FieldLeftAt = "left_at"
	// EdgeCommittee holds the string denoting the committee edge name in mutations.
	EdgeCommittee = "committee"
	// EdgeMember holds the string denoting the member edge name in mutations.
	EdgeMember = "member"
	// CommitteeFieldID holds the string denoting the ID field of the Committee.
	CommitteeFieldID = "committee_id"
	// CouncilMemberFieldID holds the string denoting the ID field of the CouncilMember.
	CouncilMemberFieldID = "member_id"
	// Table holds the table name of the committeemembership in the database.
	Table = "committee_memberships"
	// CommitteeTable is the table that holds the committee relation/edge.
	CommitteeTable = "committee_memberships"
	// CommitteeInverseTable is the table name for the Committee entity.
	// It exists in this package in order to avoid circular dependency with the "committee" package.
	CommitteeInverseTable = "committees"
	// CommitteeColumn is the table column denoting the committee relation/edge.
	CommitteeColumn = "committee_id"
	// MemberTable is the table that holds the member relation/edge.
	MemberTable = "committee_memberships"
	// MemberInverseTable is the table name for the CouncilMember entity.
	// It exists in this package in order to avoid circular dependency with the "councilmember" package.
	MemberInverseTable = "council_members"
	// MemberColumn is the table column denoting the member relation/edge.
	MemberColumn = "member_id"
)

// Columns holds all SQL columns for committeemembership fields.
var Columns = []string{
	FieldID,
	FieldCommitteeID,
	FieldMemberID,
	FieldRole,
	FieldJoinedAt,
	FieldLeftAt,
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
	// DefaultJoinedAt holds the default value on creation for the "joined_at" field.
	DefaultJoinedAt func() time.Time
)

// OrderOption defines the ordering options for the CommitteeMembership queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCommitteeID orders the results by the committee_id field.
func ByCommitteeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitteeID, opts...).ToFunc()
}

// ByMemberID orders the results by the member_id field.
func ByMemberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByJoinedAt orders the results by the joined_at field.
func ByJoinedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinedAt, opts...).ToFunc()
}

// ByLeftAt orders the results by the left_at field.
func ByLeftAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftAt, opts...).ToFunc()
}

// ByCommitteeField orders the results by committee field.
func ByCommitteeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommitteeStep(), sql.OrderByField(field, opts...))
	}
}

// ByMemberField orders the results by member field.
func ByMemberField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemberStep(), sql.OrderByField(field, opts...))
	}
}
func newCommitteeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommitteeInverseTable, CommitteeFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CommitteeTable, CommitteeColumn),
	)
}
func newMemberStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemberInverseTable, CouncilMemberFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MemberTable, MemberColumn),
	)
}
