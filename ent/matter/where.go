// Code generated by ent, DO NOT EDIT.

package matter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Matter {
	return predicate.Matter(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Matter {
	return predicate.Matter(sql.FieldContainsFold(FieldID, id))
}

// Banana applies equality check predicate on the "banana" field. It's identical to BananaEQ.
func Banana(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldBanana, v))
}

// MatterFile applies equality check predicate on the "matter_file" field. It's identical to MatterFileEQ.
func MatterFile(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldMatterFile, v))
}

// MatterType applies equality check predicate on the "matter_type" field. It's identical to MatterTypeEQ.
func MatterType(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldMatterType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldTitle, v))
}

// CanonicalSummary applies equality check predicate on the "canonical_summary" field. It's identical to CanonicalSummaryEQ.
func CanonicalSummary(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldCanonicalSummary, v))
}

// AttachmentHash applies equality check predicate on the "attachment_hash" field. It's identical to AttachmentHashEQ.
func AttachmentHash(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldAttachmentHash, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldLastSeen, v))
}

// AppearanceCount applies equality check predicate on the "appearance_count" field. It's identical to AppearanceCountEQ.
func AppearanceCount(v int) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldAppearanceCount, v))
}

// FinalVoteDate applies equality check predicate on the "final_vote_date" field. It's identical to FinalVoteDateEQ.
func FinalVoteDate(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldFinalVoteDate, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldQualityScore, v))
}

// BananaEQ applies the EQ predicate on the "banana" field.
func BananaEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldBanana, v))
}

// BananaNEQ applies the NEQ predicate on the "banana" field.
func BananaNEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldBanana, v))
}

// BananaIn applies the In predicate on the "banana" field.
func BananaIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldBanana, vs...))
}

// BananaNotIn applies the NotIn predicate on the "banana" field.
func BananaNotIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldBanana, vs...))
}

// BananaGT applies the GT predicate on the "banana" field.
func BananaGT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldBanana, v))
}

// BananaGTE applies the GTE predicate on the "banana" field.
func BananaGTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldBanana, v))
}

// BananaLT applies the LT predicate on the "banana" field.
func BananaLT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldBanana, v))
}

// BananaLTE applies the LTE predicate on the "banana" field.
func BananaLTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldBanana, v))
}

// BananaContains applies the Contains predicate on the "banana" field.
func BananaContains(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContains(FieldBanana, v))
}

// BananaHasPrefix applies the HasPrefix predicate on the "banana" field.
func BananaHasPrefix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasPrefix(FieldBanana, v))
}

// BananaHasSuffix applies the HasSuffix predicate on the "banana" field.
func BananaHasSuffix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasSuffix(FieldBanana, v))
}

// BananaEqualFold applies the EqualFold predicate on the "banana" field.
func BananaEqualFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEqualFold(FieldBanana, v))
}

// BananaContainsFold applies the ContainsFold predicate on the "banana" field.
func BananaContainsFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContainsFold(FieldBanana, v))
}

// MatterFileEQ applies the EQ predicate on the "matter_file" field.
func MatterFileEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldMatterFile, v))
}

// MatterFileNEQ applies the NEQ predicate on the "matter_file" field.
func MatterFileNEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldMatterFile, v))
}

// MatterFileIn applies the In predicate on the "matter_file" field.
func MatterFileIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldMatterFile, vs...))
}

// MatterFileNotIn applies the NotIn predicate on the "matter_file" field.
func MatterFileNotIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldMatterFile, vs...))
}

// MatterFileGT applies the GT predicate on the "matter_file" field.
func MatterFileGT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldMatterFile, v))
}

// MatterFileGTE applies the GTE predicate on the "matter_file" field.
func MatterFileGTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldMatterFile, v))
}

// MatterFileLT applies the LT predicate on the "matter_file" field.
func MatterFileLT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldMatterFile, v))
}

// MatterFileLTE applies the LTE predicate on the "matter_file" field.
func MatterFileLTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldMatterFile, v))
}

// MatterFileContains applies the Contains predicate on the "matter_file" field.
func MatterFileContains(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContains(FieldMatterFile, v))
}

// MatterFileHasPrefix applies the HasPrefix predicate on the "matter_file" field.
func MatterFileHasPrefix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasPrefix(FieldMatterFile, v))
}

// MatterFileHasSuffix applies the HasSuffix predicate on the "matter_file" field.
func MatterFileHasSuffix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasSuffix(FieldMatterFile, v))
}

// MatterFileIsNil applies the IsNil predicate on the "matter_file" field.
func MatterFileIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldMatterFile))
}

// MatterFileNotNil applies the NotNil predicate on the "matter_file" field.
func MatterFileNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldMatterFile))
}

// MatterFileEqualFold applies the EqualFold predicate on the "matter_file" field.
func MatterFileEqualFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEqualFold(FieldMatterFile, v))
}

// MatterFileContainsFold applies the ContainsFold predicate on the "matter_file" field.
func MatterFileContainsFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContainsFold(FieldMatterFile, v))
}

// MatterTypeEQ applies the EQ predicate on the "matter_type" field.
func MatterTypeEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldMatterType, v))
}

// MatterTypeNEQ applies the NEQ predicate on the "matter_type" field.
func MatterTypeNEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldMatterType, v))
}

// MatterTypeIn applies the In predicate on the "matter_type" field.
func MatterTypeIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldMatterType, vs...))
}

// MatterTypeNotIn applies the NotIn predicate on the "matter_type" field.
func MatterTypeNotIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldMatterType, vs...))
}

// MatterTypeGT applies the GT predicate on the "matter_type" field.
func MatterTypeGT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldMatterType, v))
}

// MatterTypeGTE applies the GTE predicate on the "matter_type" field.
func MatterTypeGTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldMatterType, v))
}

// MatterTypeLT applies the LT predicate on the "matter_type" field.
func MatterTypeLT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldMatterType, v))
}

// MatterTypeLTE applies the LTE predicate on the "matter_type" field.
func MatterTypeLTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldMatterType, v))
}

// MatterTypeContains applies the Contains predicate on the "matter_type" field.
func MatterTypeContains(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContains(FieldMatterType, v))
}

// MatterTypeHasPrefix applies the HasPrefix predicate on the "matter_type" field.
func MatterTypeHasPrefix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasPrefix(FieldMatterType, v))
}

// MatterTypeHasSuffix applies the HasSuffix predicate on the "matter_type" field.
func MatterTypeHasSuffix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasSuffix(FieldMatterType, v))
}

// MatterTypeIsNil applies the IsNil predicate on the "matter_type" field.
func MatterTypeIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldMatterType))
}

// MatterTypeNotNil applies the NotNil predicate on the "matter_type" field.
func MatterTypeNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldMatterType))
}

// MatterTypeEqualFold applies the EqualFold predicate on the "matter_type" field.
func MatterTypeEqualFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEqualFold(FieldMatterType, v))
}

// MatterTypeContainsFold applies the ContainsFold predicate on the "matter_type" field.
func MatterTypeContainsFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContainsFold(FieldMatterType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContainsFold(FieldTitle, v))
}

// SponsorsIsNil applies the IsNil predicate on the "sponsors" field.
func SponsorsIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldSponsors))
}

// SponsorsNotNil applies the NotNil predicate on the "sponsors" field.
func SponsorsNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldSponsors))
}

// CanonicalSummaryEQ applies the EQ predicate on the "canonical_summary" field.
func CanonicalSummaryEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldCanonicalSummary, v))
}

// CanonicalSummaryNEQ applies the NEQ predicate on the "canonical_summary" field.
func CanonicalSummaryNEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldCanonicalSummary, v))
}

// CanonicalSummaryIn applies the In predicate on the "canonical_summary" field.
func CanonicalSummaryIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldCanonicalSummary, vs...))
}

// CanonicalSummaryNotIn applies the NotIn predicate on the "canonical_summary" field.
func CanonicalSummaryNotIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldCanonicalSummary, vs...))
}

// CanonicalSummaryGT applies the GT predicate on the "canonical_summary" field.
func CanonicalSummaryGT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldCanonicalSummary, v))
}

// CanonicalSummaryGTE applies the GTE predicate on the "canonical_summary" field.
func CanonicalSummaryGTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldCanonicalSummary, v))
}

// CanonicalSummaryLT applies the LT predicate on the "canonical_summary" field.
func CanonicalSummaryLT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldCanonicalSummary, v))
}

// CanonicalSummaryLTE applies the LTE predicate on the "canonical_summary" field.
func CanonicalSummaryLTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldCanonicalSummary, v))
}

// CanonicalSummaryContains applies the Contains predicate on the "canonical_summary" field.
func CanonicalSummaryContains(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContains(FieldCanonicalSummary, v))
}

// CanonicalSummaryHasPrefix applies the HasPrefix predicate on the "canonical_summary" field.
func CanonicalSummaryHasPrefix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasPrefix(FieldCanonicalSummary, v))
}

// CanonicalSummaryHasSuffix applies the HasSuffix predicate on the "canonical_summary" field.
func CanonicalSummaryHasSuffix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasSuffix(FieldCanonicalSummary, v))
}

// CanonicalSummaryIsNil applies the IsNil predicate on the "canonical_summary" field.
func CanonicalSummaryIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldCanonicalSummary))
}

// CanonicalSummaryNotNil applies the NotNil predicate on the "canonical_summary" field.
func CanonicalSummaryNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldCanonicalSummary))
}

// CanonicalSummaryEqualFold applies the EqualFold predicate on the "canonical_summary" field.
func CanonicalSummaryEqualFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEqualFold(FieldCanonicalSummary, v))
}

// CanonicalSummaryContainsFold applies the ContainsFold predicate on the "canonical_summary" field.
func CanonicalSummaryContainsFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContainsFold(FieldCanonicalSummary, v))
}

// CanonicalTopicsIsNil applies the IsNil predicate on the "canonical_topics" field.
func CanonicalTopicsIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldCanonicalTopics))
}

// CanonicalTopicsNotNil applies the NotNil predicate on the "canonical_topics" field.
func CanonicalTopicsNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldCanonicalTopics))
}

// AttachmentsIsNil applies the IsNil predicate on the "attachments" field.
func AttachmentsIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldAttachments))
}

// AttachmentsNotNil applies the NotNil predicate on the "attachments" field.
func AttachmentsNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldAttachments))
}

// AttachmentHashEQ applies the EQ predicate on the "attachment_hash" field.
func AttachmentHashEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldAttachmentHash, v))
}

// AttachmentHashNEQ applies the NEQ predicate on the "attachment_hash" field.
func AttachmentHashNEQ(v string) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldAttachmentHash, v))
}

// AttachmentHashIn applies the In predicate on the "attachment_hash" field.
func AttachmentHashIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldAttachmentHash, vs...))
}

// AttachmentHashNotIn applies the NotIn predicate on the "attachment_hash" field.
func AttachmentHashNotIn(vs ...string) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldAttachmentHash, vs...))
}

// AttachmentHashGT applies the GT predicate on the "attachment_hash" field.
func AttachmentHashGT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldAttachmentHash, v))
}

// AttachmentHashGTE applies the GTE predicate on the "attachment_hash" field.
func AttachmentHashGTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldAttachmentHash, v))
}

// AttachmentHashLT applies the LT predicate on the "attachment_hash" field.
func AttachmentHashLT(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldAttachmentHash, v))
}

// AttachmentHashLTE applies the LTE predicate on the "attachment_hash" field.
func AttachmentHashLTE(v string) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldAttachmentHash, v))
}

// AttachmentHashContains applies the Contains predicate on the "attachment_hash" field.
func AttachmentHashContains(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContains(FieldAttachmentHash, v))
}

// AttachmentHashHasPrefix applies the HasPrefix predicate on the "attachment_hash" field.
func AttachmentHashHasPrefix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasPrefix(FieldAttachmentHash, v))
}

// AttachmentHashHasSuffix applies the HasSuffix predicate on the "attachment_hash" field.
func AttachmentHashHasSuffix(v string) predicate.Matter {
	return predicate.Matter(sql.FieldHasSuffix(FieldAttachmentHash, v))
}

// AttachmentHashIsNil applies the IsNil predicate on the "attachment_hash" field.
func AttachmentHashIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldAttachmentHash))
}

// AttachmentHashNotNil applies the NotNil predicate on the "attachment_hash" field.
func AttachmentHashNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldAttachmentHash))
}

// AttachmentHashEqualFold applies the EqualFold predicate on the "attachment_hash" field.
func AttachmentHashEqualFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldEqualFold(FieldAttachmentHash, v))
}

// AttachmentHashContainsFold applies the ContainsFold predicate on the "attachment_hash" field.
func AttachmentHashContainsFold(v string) predicate.Matter {
	return predicate.Matter(sql.FieldContainsFold(FieldAttachmentHash, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldMetadata))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldLastSeen, v))
}

// AppearanceCountEQ applies the EQ predicate on the "appearance_count" field.
func AppearanceCountEQ(v int) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldAppearanceCount, v))
}

// AppearanceCountNEQ applies the NEQ predicate on the "appearance_count" field.
func AppearanceCountNEQ(v int) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldAppearanceCount, v))
}

// AppearanceCountIn applies the In predicate on the "appearance_count" field.
func AppearanceCountIn(vs ...int) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldAppearanceCount, vs...))
}

// AppearanceCountNotIn applies the NotIn predicate on the "appearance_count" field.
func AppearanceCountNotIn(vs ...int) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldAppearanceCount, vs...))
}

// AppearanceCountGT applies the GT predicate on the "appearance_count" field.
func AppearanceCountGT(v int) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldAppearanceCount, v))
}

// AppearanceCountGTE applies the GTE predicate on the "appearance_count" field.
func AppearanceCountGTE(v int) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldAppearanceCount, v))
}

// AppearanceCountLT applies the LT predicate on the "appearance_count" field.
func AppearanceCountLT(v int) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldAppearanceCount, v))
}

// AppearanceCountLTE applies the LTE predicate on the "appearance_count" field.
func AppearanceCountLTE(v int) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldAppearanceCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldStatus, vs...))
}

// FinalVoteDateEQ applies the EQ predicate on the "final_vote_date" field.
func FinalVoteDateEQ(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldFinalVoteDate, v))
}

// FinalVoteDateNEQ applies the NEQ predicate on the "final_vote_date" field.
func FinalVoteDateNEQ(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldFinalVoteDate, v))
}

// FinalVoteDateIn applies the In predicate on the "final_vote_date" field.
func FinalVoteDateIn(vs ...time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldFinalVoteDate, vs...))
}

// FinalVoteDateNotIn applies the NotIn predicate on the "final_vote_date" field.
func FinalVoteDateNotIn(vs ...time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldFinalVoteDate, vs...))
}

// FinalVoteDateGT applies the GT predicate on the "final_vote_date" field.
func FinalVoteDateGT(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldFinalVoteDate, v))
}

// FinalVoteDateGTE applies the GTE predicate on the "final_vote_date" field.
func FinalVoteDateGTE(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldFinalVoteDate, v))
}

// FinalVoteDateLT applies the LT predicate on the "final_vote_date" field.
func FinalVoteDateLT(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldFinalVoteDate, v))
}

// FinalVoteDateLTE applies the LTE predicate on the "final_vote_date" field.
func FinalVoteDateLTE(v time.Time) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldFinalVoteDate, v))
}

// FinalVoteDateIsNil applies the IsNil predicate on the "final_vote_date" field.
func FinalVoteDateIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldFinalVoteDate))
}

// FinalVoteDateNotNil applies the NotNil predicate on the "final_vote_date" field.
func FinalVoteDateNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldFinalVoteDate))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.Matter {
	return predicate.Matter(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.Matter {
	return predicate.Matter(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.Matter {
	return predicate.Matter(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.Matter {
	return predicate.Matter(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.Matter {
	return predicate.Matter(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.Matter {
	return predicate.Matter(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.Matter {
	return predicate.Matter(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.Matter {
	return predicate.Matter(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.Matter {
	return predicate.Matter(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.Matter {
	return predicate.Matter(sql.FieldNotNull(FieldQualityScore))
}

// HasCity applies the HasEdge predicate on the "city" edge.
func HasCity() predicate.Matter {
	return predicate.Matter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CityTable, CityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCityWith applies the HasEdge predicate on the "city" edge with a given conditions (other predicates).
func HasCityWith(preds ...predicate.City) predicate.Matter {
	return predicate.Matter(func(s *sql.Selector) {
		step := newCityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAppearances applies the HasEdge predicate on the "appearances" edge.
func HasAppearances() predicate.Matter {
	return predicate.Matter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AppearancesTable, AppearancesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppearancesWith applies the HasEdge predicate on the "appearances" edge with a given conditions (other predicates).
func HasAppearancesWith(preds ...predicate.MatterAppearance) predicate.Matter {
	return predicate.Matter(func(s *sql.Selector) {
		step := newAppearancesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVotes applies the HasEdge predicate on the "votes" edge.
func HasVotes() predicate.Matter {
	return predicate.Matter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VotesTable, VotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVotesWith applies the HasEdge predicate on the "votes" edge with a given conditions (other predicates).
func HasVotesWith(preds ...predicate.Vote) predicate.Matter {
	return predicate.Matter(func(s *sql.Selector) {
		step := newVotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Matter) predicate.Matter {
	return predicate.Matter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Matter) predicate.Matter {
	return predicate.Matter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Matter) predicate.Matter {
	return predicate.Matter(sql.NotPredicates(p))
}
