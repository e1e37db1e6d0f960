// Code generated by ent, DO NOT EDIT.

package matter

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the matter type in the database.
	Label = "matter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "matter_id"
	// FieldBanana holds the string denoting the banana field in the database.
	FieldBanana = "banana"
	// FieldMatterFile holds the string denoting the matter_file field in the database.
	FieldMatterFile = "matter_file"
	// FieldMatterType holds the string denoting the matter_type field in the database.
	FieldMatterType = "matter_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSponsors holds the string denoting the sponsors field in the database.
	FieldSponsors = "sponsors"
	// FieldCanonicalSummary holds the string denoting the canonical_summary field in the database.
	FieldCanonicalSummary = "canonical_summary"
	// FieldCanonicalTopics holds the string denoting the canonical_topics field in the database.
	FieldCanonicalTopics = "canonical_topics"
	// FieldAttachments holds the string denoting the attachments field in the database.
	FieldAttachments = "attachments"
	// FieldAttachmentHash holds the string denoting the attachment_hash field in the database.
	FieldAttachmentHash = "attachment_hash"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldAppearanceCount holds the string denoting the appearance_count field in the database.
	FieldAppearanceCount = "appearance_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFinalVoteDate holds the string denoting the final_vote_date field in the database.
	FieldFinalVoteDate = "final_vote_date"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// EdgeCity holds the string denoting the city edge name in mutations.
	EdgeCity = "city"
	// EdgeAppearances holds the string denoting the appearances edge name in mutations.
	EdgeAppearances = "appearances"
	// EdgeVotes holds the string denoting the votes edge name in mutations.
	EdgeVotes = "votes"
	// CityFieldID holds the string denoting the ID field of the City.
	CityFieldID = "banana"
	// MatterAppearanceFieldID holds the string denoting the ID field of the MatterAppearance.
	MatterAppearanceFieldID = "appearance_id"
	// VoteFieldID holds the string denoting the ID field of the Vote.
	VoteFieldID = "vote_id"
	// Table holds the table name of the matter in the database.
	Table = "matters"
	// CityTable is the table that holds the city relation/edge.
	CityTable = "matters"
	// CityInverseTable is the table name for the City entity.
	// It exists in this package in order to avoid circular dependency with the "city" package.
	CityInverseTable = "cities"
	// CityColumn is the table column denoting the city relation/edge.
	CityColumn = "banana"
	// AppearancesTable is the table that holds the appearances relation/edge.
	AppearancesTable = "matter_appearances"
	// AppearancesInverseTable is the table name for the MatterAppearance entity.
	// It exists in this package in order to avoid circular dependency with the "matterappearance" package.
	AppearancesInverseTable = "matter_appearances"
	// AppearancesColumn is the table column denoting the appearances relation/edge.
	AppearancesColumn = "matter_id"
	// VotesTable is the table that holds the votes relation/edge.
	VotesTable = "votes"
	// VotesInverseTable is the table name for the Vote entity.
	// It exists in this package in order to avoid circular dependency with the "vote" package.
	VotesInverseTable = "votes"
	// VotesColumn is the table column denoting the votes relation/edge.
	VotesColumn = "matter_id"
)

// Columns holds all SQL columns for matter fields.
var Columns = []string{
	FieldID,
	FieldBanana,
	FieldMatterFile,
	FieldMatterType,
	FieldTitle,
	FieldSponsors,
	FieldCanonicalSummary,
	FieldCanonicalTopics,
	FieldAttachments,
	FieldAttachmentHash,
	FieldMetadata,
	FieldFirstSeen,
	FieldLastSeen,
	FieldAppearanceCount,
	FieldStatus,
	FieldFinalVoteDate,
	FieldQualityScore,
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
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// DefaultAppearanceCount holds the default value on creation for the "appearance_count" field.
	DefaultAppearanceCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusPassed    Status = "passed"
	StatusFailed    Status = "failed"
	StatusTabled    Status = "tabled"
	StatusWithdrawn Status = "withdrawn"
	StatusReferred  Status = "referred"
	StatusAmended   Status = "amended"
	StatusVetoed    Status = "vetoed"
	StatusEnacted   Status = "enacted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPassed, StatusFailed, StatusTabled, StatusWithdrawn, StatusReferred, StatusAmended, StatusVetoed, StatusEnacted:
		return nil
	default:
		return fmt.Errorf("matter: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Matter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBanana orders the results by the banana field.
func ByBanana(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBanana, opts...).ToFunc()
}

// ByMatterFile orders the results by the matter_file field.
func ByMatterFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterFile, opts...).ToFunc()
}

// ByMatterType orders the results by the matter_type field.
func ByMatterType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCanonicalSummary orders the results by the canonical_summary field.
func ByCanonicalSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalSummary, opts...).ToFunc()
}

// ByAttachmentHash orders the results by the attachment_hash field.
func ByAttachmentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttachmentHash, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByAppearanceCount orders the results by the appearance_count field.
func ByAppearanceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppearanceCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFinalVoteDate orders the results by the final_vote_date field.
func ByFinalVoteDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalVoteDate, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByCityField orders the results by city field.
func ByCityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCityStep(), sql.OrderByField(field, opts...))
	}
}

// ByAppearancesCount orders the results by appearances count.
func ByAppearancesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppearancesStep(), opts...)
	}
}

// ByAppearances orders the results by appearances terms.
func ByAppearances(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppearancesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVotesCount orders the results by votes count.
func ByVotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVotesStep(), opts...)
	}
}

// ByVotes orders the results by votes terms.
func ByVotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CityInverseTable, CityFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CityTable, CityColumn),
	)
}
func newAppearancesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppearancesInverseTable, MatterAppearanceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppearancesTable, AppearancesColumn),
	)
}
func newVotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VotesInverseTable, VoteFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VotesTable, VotesColumn),
	)
}
