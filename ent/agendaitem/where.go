// Code generated by ent, DO NOT EDIT.

package agendaitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldMeetingID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldTitle, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldSequence, v))
}

// AttachmentHash applies equality check predicate on the "attachment_hash" field. It's identical to AttachmentHashEQ.
func AttachmentHash(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldAttachmentHash, v))
}

// MatterID applies equality check predicate on the "matter_id" field. It's identical to MatterIDEQ.
func MatterID(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldMatterID, v))
}

// MatterFile applies equality check predicate on the "matter_file" field. It's identical to MatterFileEQ.
func MatterFile(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldMatterFile, v))
}

// MatterType applies equality check predicate on the "matter_type" field. It's identical to MatterTypeEQ.
func MatterType(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldMatterType, v))
}

// AgendaNumber applies equality check predicate on the "agenda_number" field. It's identical to AgendaNumberEQ.
func AgendaNumber(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldAgendaNumber, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldSummary, v))
}

// ProcessingMethod applies equality check predicate on the "processing_method" field. It's identical to ProcessingMethodEQ.
func ProcessingMethod(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldProcessingMethod, v))
}

// SummarizedAt applies equality check predicate on the "summarized_at" field. It's identical to SummarizedAtEQ.
func SummarizedAt(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldSummarizedAt, v))
}

// ExtractionError applies equality check predicate on the "extraction_error" field. It's identical to ExtractionErrorEQ.
func ExtractionError(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldExtractionError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldMeetingID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldTitle, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldSequence, v))
}

// AttachmentsIsNil applies the IsNil predicate on the "attachments" field.
func AttachmentsIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldAttachments))
}

// AttachmentsNotNil applies the NotNil predicate on the "attachments" field.
func AttachmentsNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldAttachments))
}

// AttachmentHashEQ applies the EQ predicate on the "attachment_hash" field.
func AttachmentHashEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldAttachmentHash, v))
}

// AttachmentHashNEQ applies the NEQ predicate on the "attachment_hash" field.
func AttachmentHashNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldAttachmentHash, v))
}

// AttachmentHashIn applies the In predicate on the "attachment_hash" field.
func AttachmentHashIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldAttachmentHash, vs...))
}

// AttachmentHashNotIn applies the NotIn predicate on the "attachment_hash" field.
func AttachmentHashNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldAttachmentHash, vs...))
}

// AttachmentHashGT applies the GT predicate on the "attachment_hash" field.
func AttachmentHashGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldAttachmentHash, v))
}

// AttachmentHashGTE applies the GTE predicate on the "attachment_hash" field.
func AttachmentHashGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldAttachmentHash, v))
}

// AttachmentHashLT applies the LT predicate on the "attachment_hash" field.
func AttachmentHashLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldAttachmentHash, v))
}

// AttachmentHashLTE applies the LTE predicate on the "attachment_hash" field.
func AttachmentHashLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldAttachmentHash, v))
}

// AttachmentHashContains applies the Contains predicate on the "attachment_hash" field.
func AttachmentHashContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldAttachmentHash, v))
}

// AttachmentHashHasPrefix applies the HasPrefix predicate on the "attachment_hash" field.
func AttachmentHashHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldAttachmentHash, v))
}

// AttachmentHashHasSuffix applies the HasSuffix predicate on the "attachment_hash" field.
func AttachmentHashHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldAttachmentHash, v))
}

// AttachmentHashIsNil applies the IsNil predicate on the "attachment_hash" field.
func AttachmentHashIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldAttachmentHash))
}

// AttachmentHashNotNil applies the NotNil predicate on the "attachment_hash" field.
func AttachmentHashNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldAttachmentHash))
}

// AttachmentHashEqualFold applies the EqualFold predicate on the "attachment_hash" field.
func AttachmentHashEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldAttachmentHash, v))
}

// AttachmentHashContainsFold applies the ContainsFold predicate on the "attachment_hash" field.
func AttachmentHashContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldAttachmentHash, v))
}

// MatterIDEQ applies the EQ predicate on the "matter_id" field.
func MatterIDEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldMatterID, v))
}

// MatterIDNEQ applies the NEQ predicate on the "matter_id" field.
func MatterIDNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldMatterID, v))
}

// MatterIDIn applies the In predicate on the "matter_id" field.
func MatterIDIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldMatterID, vs...))
}

// MatterIDNotIn applies the NotIn predicate on the "matter_id" field.
func MatterIDNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldMatterID, vs...))
}

// MatterIDGT applies the GT predicate on the "matter_id" field.
func MatterIDGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldMatterID, v))
}

// MatterIDGTE applies the GTE predicate on the "matter_id" field.
func MatterIDGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldMatterID, v))
}

// MatterIDLT applies the LT predicate on the "matter_id" field.
func MatterIDLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldMatterID, v))
}

// MatterIDLTE applies the LTE predicate on the "matter_id" field.
func MatterIDLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldMatterID, v))
}

// MatterIDContains applies the Contains predicate on the "matter_id" field.
func MatterIDContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldMatterID, v))
}

// MatterIDHasPrefix applies the HasPrefix predicate on the "matter_id" field.
func MatterIDHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldMatterID, v))
}

// MatterIDHasSuffix applies the HasSuffix predicate on the "matter_id" field.
func MatterIDHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldMatterID, v))
}

// MatterIDIsNil applies the IsNil predicate on the "matter_id" field.
func MatterIDIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldMatterID))
}

// MatterIDNotNil applies the NotNil predicate on the "matter_id" field.
func MatterIDNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldMatterID))
}

// MatterIDEqualFold applies the EqualFold predicate on the "matter_id" field.
func MatterIDEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldMatterID, v))
}

// MatterIDContainsFold applies the ContainsFold predicate on the "matter_id" field.
func MatterIDContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldMatterID, v))
}

// MatterFileEQ applies the EQ predicate on the "matter_file" field.
func MatterFileEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldMatterFile, v))
}

// MatterFileNEQ applies the NEQ predicate on the "matter_file" field.
func MatterFileNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldMatterFile, v))
}

// MatterFileIn applies the In predicate on the "matter_file" field.
func MatterFileIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldMatterFile, vs...))
}

// MatterFileNotIn applies the NotIn predicate on the "matter_file" field.
func MatterFileNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldMatterFile, vs...))
}

// MatterFileGT applies the GT predicate on the "matter_file" field.
func MatterFileGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldMatterFile, v))
}

// MatterFileGTE applies the GTE predicate on the "matter_file" field.
func MatterFileGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldMatterFile, v))
}

// MatterFileLT applies the LT predicate on the "matter_file" field.
func MatterFileLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldMatterFile, v))
}

// MatterFileLTE applies the LTE predicate on the "matter_file" field.
func MatterFileLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldMatterFile, v))
}

// MatterFileContains applies the Contains predicate on the "matter_file" field.
func MatterFileContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldMatterFile, v))
}

// MatterFileHasPrefix applies the HasPrefix predicate on the "matter_file" field.
func MatterFileHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldMatterFile, v))
}

// MatterFileHasSuffix applies the HasSuffix predicate on the "matter_file" field.
func MatterFileHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldMatterFile, v))
}

// MatterFileIsNil applies the IsNil predicate on the "matter_file" field.
func MatterFileIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldMatterFile))
}

// MatterFileNotNil applies the NotNil predicate on the "matter_file" field.
func MatterFileNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldMatterFile))
}

// MatterFileEqualFold applies the EqualFold predicate on the "matter_file" field.
func MatterFileEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldMatterFile, v))
}

// MatterFileContainsFold applies the ContainsFold predicate on the "matter_file" field.
func MatterFileContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldMatterFile, v))
}

// MatterTypeEQ applies the EQ predicate on the "matter_type" field.
func MatterTypeEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldMatterType, v))
}

// MatterTypeNEQ applies the NEQ predicate on the "matter_type" field.
func MatterTypeNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldMatterType, v))
}

// MatterTypeIn applies the In predicate on the "matter_type" field.
func MatterTypeIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldMatterType, vs...))
}

// MatterTypeNotIn applies the NotIn predicate on the "matter_type" field.
func MatterTypeNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldMatterType, vs...))
}

// MatterTypeGT applies the GT predicate on the "matter_type" field.
func MatterTypeGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldMatterType, v))
}

// MatterTypeGTE applies the GTE predicate on the "matter_type" field.
func MatterTypeGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldMatterType, v))
}

// MatterTypeLT applies the LT predicate on the "matter_type" field.
func MatterTypeLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldMatterType, v))
}

// MatterTypeLTE applies the LTE predicate on the "matter_type" field.
func MatterTypeLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldMatterType, v))
}

// MatterTypeContains applies the Contains predicate on the "matter_type" field.
func MatterTypeContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldMatterType, v))
}

// MatterTypeHasPrefix applies the HasPrefix predicate on the "matter_type" field.
func MatterTypeHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldMatterType, v))
}

// MatterTypeHasSuffix applies the HasSuffix predicate on the "matter_type" field.
func MatterTypeHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldMatterType, v))
}

// MatterTypeIsNil applies the IsNil predicate on the "matter_type" field.
func MatterTypeIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldMatterType))
}

// MatterTypeNotNil applies the NotNil predicate on the "matter_type" field.
func MatterTypeNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldMatterType))
}

// MatterTypeEqualFold applies the EqualFold predicate on the "matter_type" field.
func MatterTypeEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldMatterType, v))
}

// MatterTypeContainsFold applies the ContainsFold predicate on the "matter_type" field.
func MatterTypeContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldMatterType, v))
}

// AgendaNumberEQ applies the EQ predicate on the "agenda_number" field.
func AgendaNumberEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldAgendaNumber, v))
}

// AgendaNumberNEQ applies the NEQ predicate on the "agenda_number" field.
func AgendaNumberNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldAgendaNumber, v))
}

// AgendaNumberIn applies the In predicate on the "agenda_number" field.
func AgendaNumberIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldAgendaNumber, vs...))
}

// AgendaNumberNotIn applies the NotIn predicate on the "agenda_number" field.
func AgendaNumberNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldAgendaNumber, vs...))
}

// AgendaNumberGT applies the GT predicate on the "agenda_number" field.
func AgendaNumberGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldAgendaNumber, v))
}

// AgendaNumberGTE applies the GTE predicate on the "agenda_number" field.
func AgendaNumberGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldAgendaNumber, v))
}

// AgendaNumberLT applies the LT predicate on the "agenda_number" field.
func AgendaNumberLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldAgendaNumber, v))
}

// AgendaNumberLTE applies the LTE predicate on the "agenda_number" field.
func AgendaNumberLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldAgendaNumber, v))
}

// AgendaNumberContains applies the Contains predicate on the "agenda_number" field.
func AgendaNumberContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldAgendaNumber, v))
}

// AgendaNumberHasPrefix applies the HasPrefix predicate on the "agenda_number" field.
func AgendaNumberHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldAgendaNumber, v))
}

// AgendaNumberHasSuffix applies the HasSuffix predicate on the "agenda_number" field.
func AgendaNumberHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldAgendaNumber, v))
}

// AgendaNumberIsNil applies the IsNil predicate on the "agenda_number" field.
func AgendaNumberIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldAgendaNumber))
}

// AgendaNumberNotNil applies the NotNil predicate on the "agenda_number" field.
func AgendaNumberNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldAgendaNumber))
}

// AgendaNumberEqualFold applies the EqualFold predicate on the "agenda_number" field.
func AgendaNumberEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldAgendaNumber, v))
}

// AgendaNumberContainsFold applies the ContainsFold predicate on the "agenda_number" field.
func AgendaNumberContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldAgendaNumber, v))
}

// SponsorsIsNil applies the IsNil predicate on the "sponsors" field.
func SponsorsIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldSponsors))
}

// SponsorsNotNil applies the NotNil predicate on the "sponsors" field.
func SponsorsNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldSponsors))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldSummary, v))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldTopics))
}

// ProcessingMethodEQ applies the EQ predicate on the "processing_method" field.
func ProcessingMethodEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldProcessingMethod, v))
}

// ProcessingMethodNEQ applies the NEQ predicate on the "processing_method" field.
func ProcessingMethodNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldProcessingMethod, v))
}

// ProcessingMethodIn applies the In predicate on the "processing_method" field.
func ProcessingMethodIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldProcessingMethod, vs...))
}

// ProcessingMethodNotIn applies the NotIn predicate on the "processing_method" field.
func ProcessingMethodNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldProcessingMethod, vs...))
}

// ProcessingMethodGT applies the GT predicate on the "processing_method" field.
func ProcessingMethodGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldProcessingMethod, v))
}

// ProcessingMethodGTE applies the GTE predicate on the "processing_method" field.
func ProcessingMethodGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldProcessingMethod, v))
}

// ProcessingMethodLT applies the LT predicate on the "processing_method" field.
func ProcessingMethodLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldProcessingMethod, v))
}

// ProcessingMethodLTE applies the LTE predicate on the "processing_method" field.
func ProcessingMethodLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldProcessingMethod, v))
}

// ProcessingMethodContains applies the Contains predicate on the "processing_method" field.
func ProcessingMethodContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldProcessingMethod, v))
}

// ProcessingMethodHasPrefix applies the HasPrefix predicate on the "processing_method" field.
func ProcessingMethodHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldProcessingMethod, v))
}

// ProcessingMethodHasSuffix applies the HasSuffix predicate on the "processing_method" field.
func ProcessingMethodHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldProcessingMethod, v))
}

// ProcessingMethodIsNil applies the IsNil predicate on the "processing_method" field.
func ProcessingMethodIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldProcessingMethod))
}

// ProcessingMethodNotNil applies the NotNil predicate on the "processing_method" field.
func ProcessingMethodNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldProcessingMethod))
}

// ProcessingMethodEqualFold applies the EqualFold predicate on the "processing_method" field.
func ProcessingMethodEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldProcessingMethod, v))
}

// ProcessingMethodContainsFold applies the ContainsFold predicate on the "processing_method" field.
func ProcessingMethodContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldProcessingMethod, v))
}

// SummarizedAtEQ applies the EQ predicate on the "summarized_at" field.
func SummarizedAtEQ(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldSummarizedAt, v))
}

// SummarizedAtNEQ applies the NEQ predicate on the "summarized_at" field.
func SummarizedAtNEQ(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldSummarizedAt, v))
}

// SummarizedAtIn applies the In predicate on the "summarized_at" field.
func SummarizedAtIn(vs ...time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldSummarizedAt, vs...))
}

// SummarizedAtNotIn applies the NotIn predicate on the "summarized_at" field.
func SummarizedAtNotIn(vs ...time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldSummarizedAt, vs...))
}

// SummarizedAtGT applies the GT predicate on the "summarized_at" field.
func SummarizedAtGT(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldSummarizedAt, v))
}

// SummarizedAtGTE applies the GTE predicate on the "summarized_at" field.
func SummarizedAtGTE(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldSummarizedAt, v))
}

// SummarizedAtLT applies the LT predicate on the "summarized_at" field.
func SummarizedAtLT(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldSummarizedAt, v))
}

// SummarizedAtLTE applies the LTE predicate on the "summarized_at" field.
func SummarizedAtLTE(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldSummarizedAt, v))
}

// SummarizedAtIsNil applies the IsNil predicate on the "summarized_at" field.
func SummarizedAtIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldSummarizedAt))
}

// SummarizedAtNotNil applies the NotNil predicate on the "summarized_at" field.
func SummarizedAtNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldSummarizedAt))
}

// ExtractionErrorEQ applies the EQ predicate on the "extraction_error" field.
func ExtractionErrorEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldExtractionError, v))
}

// ExtractionErrorNEQ applies the NEQ predicate on the "extraction_error" field.
func ExtractionErrorNEQ(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldExtractionError, v))
}

// ExtractionErrorIn applies the In predicate on the "extraction_error" field.
func ExtractionErrorIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldExtractionError, vs...))
}

// ExtractionErrorNotIn applies the NotIn predicate on the "extraction_error" field.
func ExtractionErrorNotIn(vs ...string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldExtractionError, vs...))
}

// ExtractionErrorGT applies the GT predicate on the "extraction_error" field.
func ExtractionErrorGT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldExtractionError, v))
}

// ExtractionErrorGTE applies the GTE predicate on the "extraction_error" field.
func ExtractionErrorGTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldExtractionError, v))
}

// ExtractionErrorLT applies the LT predicate on the "extraction_error" field.
func ExtractionErrorLT(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldExtractionError, v))
}

// ExtractionErrorLTE applies the LTE predicate on the "extraction_error" field.
func ExtractionErrorLTE(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldExtractionError, v))
}

// ExtractionErrorContains applies the Contains predicate on the "extraction_error" field.
func ExtractionErrorContains(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContains(FieldExtractionError, v))
}

// ExtractionErrorHasPrefix applies the HasPrefix predicate on the "extraction_error" field.
func ExtractionErrorHasPrefix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasPrefix(FieldExtractionError, v))
}

// ExtractionErrorHasSuffix applies the HasSuffix predicate on the "extraction_error" field.
func ExtractionErrorHasSuffix(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldHasSuffix(FieldExtractionError, v))
}

// ExtractionErrorIsNil applies the IsNil predicate on the "extraction_error" field.
func ExtractionErrorIsNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIsNull(FieldExtractionError))
}

// ExtractionErrorNotNil applies the NotNil predicate on the "extraction_error" field.
func ExtractionErrorNotNil() predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotNull(FieldExtractionError))
}

// ExtractionErrorEqualFold applies the EqualFold predicate on the "extraction_error" field.
func ExtractionErrorEqualFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEqualFold(FieldExtractionError, v))
}

// ExtractionErrorContainsFold applies the ContainsFold predicate on the "extraction_error" field.
func ExtractionErrorContainsFold(v string) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldContainsFold(FieldExtractionError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgendaItem {
	return predicate.AgendaItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMeeting applies the HasEdge predicate on the "meeting" edge.
func HasMeeting() predicate.AgendaItem {
	return predicate.AgendaItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingWith applies the HasEdge predicate on the "meeting" edge with a given conditions (other predicates).
func HasMeetingWith(preds ...predicate.Meeting) predicate.AgendaItem {
	return predicate.AgendaItem(func(s *sql.Selector) {
		step := newMeetingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAppearances applies the HasEdge predicate on the "appearances" edge.
func HasAppearances() predicate.AgendaItem {
	return predicate.AgendaItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AppearancesTable, AppearancesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppearancesWith applies the HasEdge predicate on the "appearances" edge with a given conditions (other predicates).
func HasAppearancesWith(preds ...predicate.MatterAppearance) predicate.AgendaItem {
	return predicate.AgendaItem(func(s *sql.Selector) {
		step := newAppearancesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgendaItem) predicate.AgendaItem {
	return predicate.AgendaItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgendaItem) predicate.AgendaItem {
	return predicate.AgendaItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgendaItem) predicate.AgendaItem {
	return predicate.AgendaItem(sql.NotPredicates(p))
}
