// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the meeting type in the database.
	Label = "meeting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "meeting_id"
	// FieldBanana holds the string denoting the banana field in the database.
	FieldBanana = "banana"
	// FieldVendorID holds the string denoting the vendor_id field in the database.
	FieldVendorID = "vendor_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldAgendaURL holds the string denoting the agenda_url field in the database.
	FieldAgendaURL = "agenda_url"
	// FieldPacketURL holds the string denoting the packet_url field in the database.
	FieldPacketURL = "packet_url"
	// FieldCommitteeID holds the string denoting the committee_id field in the database.
	FieldCommitteeID = "committee_id"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldParticipation holds the string denoting the participation field in the database.
	FieldParticipation = "participation"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldProcessingMethod holds the string denoting the processing_method field in the database.
	FieldProcessingMethod = "processing_method"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldAttachmentFingerprint holds the string denoting the attachment_fingerprint field in the database.
	FieldAttachmentFingerprint = "attachment_fingerprint"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCity holds the string denoting the city edge name in mutations.
	EdgeCity = "city"
	// EdgeCommittee holds the string denoting the committee edge name in mutations.
	EdgeCommittee = "committee"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgeAppearances holds the string denoting the appearances edge name in mutations.
	EdgeAppearances = "appearances"
	// CityFieldID holds the string denoting the ID field of the City.
	CityFieldID = "banana"
	// CommitteeFieldID holds the string denoting the ID field of the Committee.
	CommitteeFieldID = "committee_id"
	// AgendaItemFieldID holds the string denoting the ID field of the AgendaItem.
	AgendaItemFieldID = "item_id"
	// MatterAppearanceFieldID holds the string denoting the ID field of the MatterAppearance.
	MatterAppearanceFieldID = "appearance_id"
	// Table holds the table name of the meeting in the database.
	Table = "meetings"
	// CityTable is the table that holds the city relation/edge.
	CityTable = "meetings"
	// CityInverseTable is the table name for the City entity.
	// It exists in this package in order to avoid circular dependency with the "city" package.
	CityInverseTable = "cities"
	// CityColumn is the table column denoting the city relation/edge.
	CityColumn = "banana"
	// CommitteeTable is the table that holds the committee relation/edge.
	CommitteeTable = "meetings"
	// CommitteeInverseTable is the table name for the Committee entity.
	// It exists in this package in order to avoid circular dependency with the "committee" package.
	CommitteeInverseTable = "committees"
	// CommitteeColumn is the table column denoting the committee relation/edge.
	CommitteeColumn = "committee_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "agenda_items"
	// ItemsInverseTable is the table name for the AgendaItem entity.
	// It exists in this package in order to avoid circular dependency with the "agendaitem" package.
	ItemsInverseTable = "agenda_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "meeting_id"
	// AppearancesTable is the table that holds the appearances relation/edge.
	AppearancesTable = "matter_appearances"
	// AppearancesInverseTable is the table name for the MatterAppearance entity.
	// It exists in this package in order to avoid circular dependency with the "matterappearance" package.
	AppearancesInverseTable = "matter_appearances"
	// AppearancesColumn is the table column denoting the appearances relation/edge.
	AppearancesColumn = "meeting_id"
)

// Columns holds all SQL columns for meeting fields.
var Columns = []string{
	FieldID,
	FieldBanana,
	FieldVendorID,
	FieldTitle,
	FieldDate,
	FieldAgendaURL,
	FieldPacketURL,
	FieldCommitteeID,
	FieldSummary,
	FieldParticipation,
	FieldStatus,
	FieldProcessingStatus,
	FieldProcessingMethod,
	FieldProcessingTimeMs,
	FieldTopics,
	FieldAttachmentFingerprint,
	FieldMetadata,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusCancelled   Status = "cancelled"
	StatusPostponed   Status = "postponed"
	StatusDeferred    Status = "deferred"
	StatusRevised     Status = "revised"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCancelled, StatusPostponed, StatusDeferred, StatusRevised, StatusRescheduled:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for status field: %q", s)
	}
}

// ProcessingStatus defines the type for the "processing_status" enum field.
type ProcessingStatus string

// ProcessingStatusPending is the default value of the ProcessingStatus enum.
const DefaultProcessingStatus = ProcessingStatusPending

// ProcessingStatus values.
const (
	ProcessingStatusPending    ProcessingStatus = "pending"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

func (ps ProcessingStatus) String() string {
	return string(ps)
}

// ProcessingStatusValidator is a validator for the "processing_status" field enum values. It is called by the builders before save.
func ProcessingStatusValidator(ps ProcessingStatus) error {
	switch ps {
	case ProcessingStatusPending, ProcessingStatusProcessing, ProcessingStatusCompleted, ProcessingStatusFailed:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for processing_status field: %q", ps)
	}
}

// OrderOption defines the ordering options for the Meeting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBanana orders the results by the banana field.
func ByBanana(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBanana, opts...).ToFunc()
}

// ByVendorID orders the results by the vendor_id field.
func ByVendorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByAgendaURL orders the results by the agenda_url field.
func ByAgendaURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgendaURL, opts...).ToFunc()
}

// ByPacketURL orders the results by the packet_url field.
func ByPacketURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPacketURL, opts...).ToFunc()
}

// ByCommitteeID orders the results by the committee_id field.
func ByCommitteeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitteeID, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByProcessingMethod orders the results by the processing_method field.
func ByProcessingMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingMethod, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByAttachmentFingerprint orders the results by the attachment_fingerprint field.
func ByAttachmentFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttachmentFingerprint, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCityField orders the results by city field.
func ByCityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCityStep(), sql.OrderByField(field, opts...))
	}
}

// ByCommitteeField orders the results by committee field.
func ByCommitteeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommitteeStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newCityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CityInverseTable, CityFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CityTable, CityColumn),
	)
}
func newCommitteeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommitteeInverseTable, CommitteeFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CommitteeTable, CommitteeColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, AgendaItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newAppearancesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppearancesInverseTable, MatterAppearanceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppearancesTable, AppearancesColumn),
	)
}
