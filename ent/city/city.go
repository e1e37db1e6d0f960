// Code generated by ent, DO NOT EDIT.

package city

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the city type in the database.
	Label = "city"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "banana"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldVendor holds the string denoting the vendor field in the database.
	FieldVendor = "vendor"
	// FieldVendorSlug holds the string denoting the vendor_slug field in the database.
	FieldVendorSlug = "vendor_slug"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldCounty holds the string denoting the county field in the database.
	FieldCounty = "county"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPopulation holds the string denoting the population field in the database.
	FieldPopulation = "population"
	// FieldGeometry holds the string denoting the geometry field in the database.
	FieldGeometry = "geometry"
	// FieldSyncErrorCount holds the string denoting the sync_error_count field in the database.
	FieldSyncErrorCount = "sync_error_count"
	// FieldLastSyncedAt holds the string denoting the last_synced_at field in the database.
	FieldLastSyncedAt = "last_synced_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMeetings holds the string denoting the meetings edge name in mutations.
	EdgeMeetings = "meetings"
	// EdgeMatters holds the string denoting the matters edge name in mutations.
	EdgeMatters = "matters"
	// EdgeCouncilMembers holds the string denoting the council_members edge name in mutations.
	EdgeCouncilMembers = "council_members"
	// EdgeCommittees holds the string denoting the committees edge name in mutations.
	EdgeCommittees = "committees"
	// MeetingFieldID holds the string denoting the ID field of the Meeting.
	MeetingFieldID = "meeting_id"
	// MatterFieldID holds the string denoting the ID field of the Matter.
	MatterFieldID = "matter_id"
	// CouncilMemberFieldID holds the string denoting the ID field of the CouncilMember.
	CouncilMemberFieldID = "member_id"
	// CommitteeFieldID holds the string denoting the ID field of the Committee.
	CommitteeFieldID = "committee_id"
	// Table holds the table name of the city in the database.
	Table = "cities"
	// MeetingsTable is the table that holds the meetings relation/edge.
	MeetingsTable = "meetings"
	// MeetingsInverseTable is the table name for the Meeting entity.
	// It exists in this package in order to avoid circular dependency with the "meeting" package.
	MeetingsInverseTable = "meetings"
	// MeetingsColumn is the table column denoting the meetings relation/edge.
	MeetingsColumn = "banana"
	// MattersTable is the table that holds the matters relation/edge.
	MattersTable = "matters"
	// MattersInverseTable is the table name for the Matter entity.
	// It exists in this package in order to avoid circular dependency with the "matter" package.
	MattersInverseTable = "matters"
	// MattersColumn is the table column denoting the matters relation/edge.
	MattersColumn = "banana"
	// CouncilMembersTable is the table that holds the council_members relation/edge.
	CouncilMembersTable = "council_members"
	// CouncilMembersInverseTable is the table name for the CouncilMember entity.
	// It exists in this package in order to avoid circular dependency with the "councilmember" package.
	CouncilMembersInverseTable = "council_members"
	// CouncilMembersColumn is the table column denoting the council_members relation/edge.
	CouncilMembersColumn = "banana"
	// CommitteesTable is the table that holds the committees relation/edge.
	CommitteesTable = "committees"
	// CommitteesInverseTable is the table name for the Committee entity.
	// It exists in this package in order to avoid circular dependency with the "committee" package.
	CommitteesInverseTable = "committees"
	// CommitteesColumn is the table column denoting the committees relation/edge.
	CommitteesColumn = "banana"
)

// Columns holds all SQL columns for city fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldState,
	FieldVendor,
	FieldVendorSlug,
	FieldTimezone,
	FieldCounty,
	FieldStatus,
	FieldPopulation,
	FieldGeometry,
	FieldSyncErrorCount,
	FieldLastSyncedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultSyncErrorCount holds the default value on creation for the "sync_error_count" field.
	DefaultSyncErrorCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusRetired Status = "retired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusRetired:
		return nil
	default:
		return fmt.Errorf("city: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the City queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByVendor orders the results by the vendor field.
func ByVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendor, opts...).ToFunc()
}

// ByVendorSlug orders the results by the vendor_slug field.
func ByVendorSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorSlug, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByCounty orders the results by the county field.
func ByCounty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounty, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPopulation orders the results by the population field.
func ByPopulation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPopulation, opts...).ToFunc()
}

// BySyncErrorCount orders the results by the sync_error_count field.
func BySyncErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncErrorCount, opts...).ToFunc()
}

// ByLastSyncedAt orders the results by the last_synced_at field.
func ByLastSyncedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMeetingsCount orders the results by meetings count.
func ByMeetingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMeetingsStep(), opts...)
	}
}

// ByMeetings orders the results by meetings terms.
func ByMeetings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMeetingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMattersCount orders the results by matters count.
func ByMattersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMattersStep(), opts...)
	}
}

// ByMatters orders the results by matters terms.
func ByMatters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMattersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCouncilMembersCount orders the results by council_members count.
func ByCouncilMembersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCouncilMembersStep(), opts...)
	}
}

// ByCouncilMembers orders the results by council_members terms.
func ByCouncilMembers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCouncilMembersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCommitteesCount orders the results by committees count.
func ByCommitteesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommitteesStep(), opts...)
	}
}

// ByCommittees orders the results by committees terms.
func ByCommittees(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommitteesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMeetingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MeetingsInverseTable, MeetingFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MeetingsTable, MeetingsColumn),
	)
}
func newMattersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MattersInverseTable, MatterFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MattersTable, MattersColumn),
	)
}
func newCouncilMembersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CouncilMembersInverseTable, CouncilMemberFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CouncilMembersTable, CouncilMembersColumn),
	)
}
func newCommitteesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommitteesInverseTable, CommitteeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommitteesTable, CommitteesColumn),
	)
}
