// Code generated by ent, DO NOT EDIT.

package matterappearance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContainsFold(FieldID, id))
}

// MatterID applies equality check predicate on the "matter_id" field. It's identical to MatterIDEQ.
func MatterID(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldMatterID, v))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldMeetingID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldItemID, v))
}

// AppearedAt applies equality check predicate on the "appeared_at" field. It's identical to AppearedAtEQ.
func AppearedAt(v time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldAppearedAt, v))
}

// CommitteeID applies equality check predicate on the "committee_id" field. It's identical to CommitteeIDEQ.
func CommitteeID(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldCommitteeID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldAction, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldSequence, v))
}

// MatterIDEQ applies the EQ predicate on the "matter_id" field.
func MatterIDEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldMatterID, v))
}

// MatterIDNEQ applies the NEQ predicate on the "matter_id" field.
func MatterIDNEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldMatterID, v))
}

// MatterIDIn applies the In predicate on the "matter_id" field.
func MatterIDIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldMatterID, vs...))
}

// MatterIDNotIn applies the NotIn predicate on the "matter_id" field.
func MatterIDNotIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldMatterID, vs...))
}

// MatterIDGT applies the GT predicate on the "matter_id" field.
func MatterIDGT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGT(FieldMatterID, v))
}

// MatterIDGTE applies the GTE predicate on the "matter_id" field.
func MatterIDGTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGTE(FieldMatterID, v))
}

// MatterIDLT applies the LT predicate on the "matter_id" field.
func MatterIDLT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLT(FieldMatterID, v))
}

// MatterIDLTE applies the LTE predicate on the "matter_id" field.
func MatterIDLTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLTE(FieldMatterID, v))
}

// MatterIDContains applies the Contains predicate on the "matter_id" field.
func MatterIDContains(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContains(FieldMatterID, v))
}

// MatterIDHasPrefix applies the HasPrefix predicate on the "matter_id" field.
func MatterIDHasPrefix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasPrefix(FieldMatterID, v))
}

// MatterIDHasSuffix applies the HasSuffix predicate on the "matter_id" field.
func MatterIDHasSuffix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasSuffix(FieldMatterID, v))
}

// MatterIDEqualFold applies the EqualFold predicate on the "matter_id" field.
func MatterIDEqualFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEqualFold(FieldMatterID, v))
}

// MatterIDContainsFold applies the ContainsFold predicate on the "matter_id" field.
func MatterIDContainsFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContainsFold(FieldMatterID, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContainsFold(FieldMeetingID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContainsFold(FieldItemID, v))
}

// AppearedAtEQ applies the EQ predicate on the "appeared_at" field.
func AppearedAtEQ(v time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldAppearedAt, v))
}

// AppearedAtNEQ applies the NEQ predicate on the "appeared_at" field.
func AppearedAtNEQ(v time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldAppearedAt, v))
}

// AppearedAtIn applies the In predicate on the "appeared_at" field.
func AppearedAtIn(vs ...time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldAppearedAt, vs...))
}

// AppearedAtNotIn applies the NotIn predicate on the "appeared_at" field.
func AppearedAtNotIn(vs ...time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldAppearedAt, vs...))
}

// AppearedAtGT applies the GT predicate on the "appeared_at" field.
func AppearedAtGT(v time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGT(FieldAppearedAt, v))
}

// AppearedAtGTE applies the GTE predicate on the "appeared_at" field.
func AppearedAtGTE(v time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGTE(FieldAppearedAt, v))
}

// AppearedAtLT applies the LT predicate on the "appeared_at" field.
func AppearedAtLT(v time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLT(FieldAppearedAt, v))
}

// AppearedAtLTE applies the LTE predicate on the "appeared_at" field.
func AppearedAtLTE(v time.Time) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLTE(FieldAppearedAt, v))
}

// CommitteeIDEQ applies the EQ predicate on the "committee_id" field.
func CommitteeIDEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldCommitteeID, v))
}

// CommitteeIDNEQ applies the NEQ predicate on the "committee_id" field.
func CommitteeIDNEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldCommitteeID, v))
}

// CommitteeIDIn applies the In predicate on the "committee_id" field.
func CommitteeIDIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldCommitteeID, vs...))
}

// CommitteeIDNotIn applies the NotIn predicate on the "committee_id" field.
func CommitteeIDNotIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldCommitteeID, vs...))
}

// CommitteeIDGT applies the GT predicate on the "committee_id" field.
func CommitteeIDGT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGT(FieldCommitteeID, v))
}

// CommitteeIDGTE applies the GTE predicate on the "committee_id" field.
func CommitteeIDGTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGTE(FieldCommitteeID, v))
}

// CommitteeIDLT applies the LT predicate on the "committee_id" field.
func CommitteeIDLT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLT(FieldCommitteeID, v))
}

// CommitteeIDLTE applies the LTE predicate on the "committee_id" field.
func CommitteeIDLTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLTE(FieldCommitteeID, v))
}

// CommitteeIDContains applies the Contains predicate on the "committee_id" field.
func CommitteeIDContains(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContains(FieldCommitteeID, v))
}

// CommitteeIDHasPrefix applies the HasPrefix predicate on the "committee_id" field.
func CommitteeIDHasPrefix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasPrefix(FieldCommitteeID, v))
}

// CommitteeIDHasSuffix applies the HasSuffix predicate on the "committee_id" field.
func CommitteeIDHasSuffix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasSuffix(FieldCommitteeID, v))
}

// CommitteeIDIsNil applies the IsNil predicate on the "committee_id" field.
func CommitteeIDIsNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIsNull(FieldCommitteeID))
}

// CommitteeIDNotNil applies the NotNil predicate on the "committee_id" field.
func CommitteeIDNotNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotNull(FieldCommitteeID))
}

// CommitteeIDEqualFold applies the EqualFold predicate on the "committee_id" field.
func CommitteeIDEqualFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEqualFold(FieldCommitteeID, v))
}

// CommitteeIDContainsFold applies the ContainsFold predicate on the "committee_id" field.
func CommitteeIDContainsFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContainsFold(FieldCommitteeID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldHasSuffix(FieldAction, v))
}

// ActionIsNil applies the IsNil predicate on the "action" field.
func ActionIsNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIsNull(FieldAction))
}

// ActionNotNil applies the NotNil predicate on the "action" field.
func ActionNotNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotNull(FieldAction))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldContainsFold(FieldAction, v))
}

// VoteOutcomeEQ applies the EQ predicate on the "vote_outcome" field.
func VoteOutcomeEQ(v VoteOutcome) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldVoteOutcome, v))
}

// VoteOutcomeNEQ applies the NEQ predicate on the "vote_outcome" field.
func VoteOutcomeNEQ(v VoteOutcome) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldVoteOutcome, v))
}

// VoteOutcomeIn applies the In predicate on the "vote_outcome" field.
func VoteOutcomeIn(vs ...VoteOutcome) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldVoteOutcome, vs...))
}

// VoteOutcomeNotIn applies the NotIn predicate on the "vote_outcome" field.
func VoteOutcomeNotIn(vs ...VoteOutcome) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldVoteOutcome, vs...))
}

// VoteOutcomeIsNil applies the IsNil predicate on the "vote_outcome" field.
func VoteOutcomeIsNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIsNull(FieldVoteOutcome))
}

// VoteOutcomeNotNil applies the NotNil predicate on the "vote_outcome" field.
func VoteOutcomeNotNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotNull(FieldVoteOutcome))
}

// VoteTallyIsNil applies the IsNil predicate on the "vote_tally" field.
func VoteTallyIsNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIsNull(FieldVoteTally))
}

// VoteTallyNotNil applies the NotNil predicate on the "vote_tally" field.
func VoteTallyNotNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotNull(FieldVoteTally))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldLTE(FieldSequence, v))
}

// SequenceIsNil applies the IsNil predicate on the "sequence" field.
func SequenceIsNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldIsNull(FieldSequence))
}

// SequenceNotNil applies the NotNil predicate on the "sequence" field.
func SequenceNotNil() predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.FieldNotNull(FieldSequence))
}

// HasMatter applies the HasEdge predicate on the "matter" edge.
func HasMatter() predicate.MatterAppearance {
	return predicate.MatterAppearance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MatterTable, MatterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatterWith applies the HasEdge predicate on the "matter" edge with a given conditions (other predicates).
func HasMatterWith(preds ...predicate.Matter) predicate.MatterAppearance {
	return predicate.MatterAppearance(func(s *sql.Selector) {
		step := newMatterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMeeting applies the HasEdge predicate on the "meeting" edge.
func HasMeeting() predicate.MatterAppearance {
	return predicate.MatterAppearance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingWith applies the HasEdge predicate on the "meeting" edge with a given conditions (other predicates).
func HasMeetingWith(preds ...predicate.Meeting) predicate.MatterAppearance {
	return predicate.MatterAppearance(func(s *sql.Selector) {
		step := newMeetingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItem applies the HasEdge predicate on the "item" edge.
func HasItem() predicate.MatterAppearance {
	return predicate.MatterAppearance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ItemTable, ItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemWith applies the HasEdge predicate on the "item" edge with a given conditions (other predicates).
func HasItemWith(preds ...predicate.AgendaItem) predicate.MatterAppearance {
	return predicate.MatterAppearance(func(s *sql.Selector) {
		step := newItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatterAppearance) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatterAppearance) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatterAppearance) predicate.MatterAppearance {
	return predicate.MatterAppearance(sql.NotPredicates(p))
}
