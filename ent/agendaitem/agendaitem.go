// Code generated by ent, DO NOT EDIT.

package agendaitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agendaitem type in the database.
	Label = "agenda_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldAttachments holds the string denoting the attachments field in the database.
	FieldAttachments = "attachments"
	// FieldAttachmentHash holds the string denoting the attachment_hash field in the database.
	FieldAttachmentHash = "attachment_hash"
	// FieldMatterID holds the string denoting the matter_id field in the database.
	FieldMatterID = "matter_id"
	// FieldMatterFile holds the string denoting the matter_file field in the database.
	FieldMatterFile = "matter_file"
	// FieldMatterType holds the string denoting the matter_type field in the database.
	FieldMatterType = "matter_type"
	// FieldAgendaNumber holds the string denoting the agenda_number field in the database.
	FieldAgendaNumber = "agenda_number"
	// FieldSponsors holds the string denoting the sponsors field in the database.
	FieldSponsors = "sponsors"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldProcessingMethod holds the string denoting the processing_method field in the database.
	FieldProcessingMethod = "processing_method"
	// FieldSummarizedAt holds the string denoting the summarized_at field in the database.
	FieldSummarizedAt = "summarized_at"
	// FieldExtractionError holds the string denoting the extraction_error field in the database.
	FieldExtractionError = "extraction_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMeeting holds the string denoting the meeting edge name in mutations.
	EdgeMeeting = "meeting"
	// EdgeAppearances holds the string denoting the appearances edge name in mutations.
	EdgeAppearances = "appearances"
	// MeetingFieldID holds the string denoting the ID field of the Meeting.
	MeetingFieldID = "meeting_id"
	// MatterAppearanceFieldID holds the string denoting the ID field of the MatterAppearance.
	MatterAppearanceFieldID = "appearance_id"
	// Table holds the table name of the agendaitem in the database.
	Table = "agenda_items"
	// MeetingTable is the table that holds the meeting relation/edge.
	MeetingTable = "agenda_items"
	// MeetingInverseTable is the table name for the Meeting entity.
	// It exists in this package in order to avoid circular dependency with the "meeting" package.
	MeetingInverseTable = "meetings"
	// MeetingColumn is the table column denoting the meeting relation/edge.
	MeetingColumn = "meeting_id"
	// AppearancesTable is the table that holds the appearances relation/edge.
	AppearancesTable = "matter_appearances"
	// AppearancesInverseTable is the table name for the MatterAppearance entity.
	// It exists in this package in order to avoid circular dependency with the "matterappearance" package.
	AppearancesInverseTable = "matter_appearances"
	// AppearancesColumn is the table column denoting the appearances relation/edge.
	AppearancesColumn = "item_id"
)

// Columns holds all SQL columns for agendaitem fields.
var Columns = []string{
	FieldID,
	FieldMeetingID,
	FieldTitle,
	FieldSequence,
	FieldAttachments,
	FieldAttachmentHash,
	FieldMatterID,
	FieldMatterFile,
	FieldMatterType,
	FieldAgendaNumber,
	FieldSponsors,
	FieldSummary,
	FieldTopics,
	FieldProcessingMethod,
	FieldSummarizedAt,
	FieldExtractionError,
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

// OrderOption defines the ordering options for the AgendaItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByAttachmentHash orders the results by the attachment_hash field.
func ByAttachmentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttachmentHash, opts...).ToFunc()
}

// ByMatterID orders the results by the matter_id field.
func ByMatterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterID, opts...).ToFunc()
}

// ByMatterFile orders the results by the matter_file field.
func ByMatterFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterFile, opts...).ToFunc()
}

// ByMatterType orders the results by the matter_type field.
func ByMatterType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatterType, opts...).ToFunc()
}

// ByAgendaNumber orders the results by the agenda_number field.
func ByAgendaNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgendaNumber, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByProcessingMethod orders the results by the processing_method field.
func ByProcessingMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingMethod, opts...).ToFunc()
}

// BySummarizedAt orders the results by the summarized_at field.
func BySummarizedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummarizedAt, opts...).ToFunc()
}

// ByExtractionError orders the results by the extraction_error field.
func ByExtractionError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMeetingField orders the results by meeting field.
func ByMeetingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMeetingStep(), sql.OrderByField(field, opts...))
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
func newMeetingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MeetingInverseTable, MeetingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
	)
}
func newAppearancesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppearancesInverseTable, MatterAppearanceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppearancesTable, AppearancesColumn),
	)
}
