// Code generated by ent, DO NOT EDIT.

package vote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldID, id))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldMemberID, v))
}

// MatterID applies equality check predicate on the "matter_id" field. It's identical to MatterIDEQ.
func MatterID(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldMatterID, v))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldMeetingID, v))
}

// VoteDate applies equality check predicate on the "vote_date" field. It's identical to VoteDateEQ.
func VoteDate(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldVoteDate, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldSequence, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldMemberID, v))
}

// MemberIDContains applies the Contains predicate on the "member_id" field.
func MemberIDContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldMemberID, v))
}

// MemberIDHasPrefix applies the HasPrefix predicate on the "member_id" field.
func MemberIDHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldMemberID, v))
}

// MemberIDHasSuffix applies the HasSuffix predicate on the "member_id" field.
func MemberIDHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldMemberID, v))
}

// MemberIDEqualFold applies the EqualFold predicate on the "member_id" field.
func MemberIDEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldMemberID, v))
}

// MemberIDContainsFold applies the ContainsFold predicate on the "member_id" field.
func MemberIDContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldMemberID, v))
}

// MatterIDEQ applies the EQ predicate on the "matter_id" field.
func MatterIDEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldMatterID, v))
}

// MatterIDNEQ applies the NEQ predicate on the "matter_id" field.
func MatterIDNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldMatterID, v))
}

// MatterIDIn applies the In predicate on the "matter_id" field.
func MatterIDIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldMatterID, vs...))
}

// MatterIDNotIn applies the NotIn predicate on the "matter_id" field.
func MatterIDNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldMatterID, vs...))
}

// MatterIDGT applies the GT predicate on the "matter_id" field.
func MatterIDGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldMatterID, v))
}

// MatterIDGTE applies the GTE predicate on the "matter_id" field.
func MatterIDGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldMatterID, v))
}

// MatterIDLT applies the LT predicate on the "matter_id" field.
func MatterIDLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldMatterID, v))
}

// MatterIDLTE applies the LTE predicate on the "matter_id" field.
func MatterIDLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldMatterID, v))
}

// MatterIDContains applies the Contains predicate on the "matter_id" field.
func MatterIDContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldMatterID, v))
}

// MatterIDHasPrefix applies the HasPrefix predicate on the "matter_id" field.
func MatterIDHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldMatterID, v))
}

// MatterIDHasSuffix applies the HasSuffix predicate on the "matter_id" field.
func MatterIDHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldMatterID, v))
}

// MatterIDEqualFold applies the EqualFold predicate on the "matter_id" field.
func MatterIDEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldMatterID, v))
}

// MatterIDContainsFold applies the ContainsFold predicate on the "matter_id" field.
func MatterIDContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldMatterID, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldMeetingID, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v Value) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v Value) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...Value) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...Value) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldValue, vs...))
}

// VoteDateEQ applies the EQ predicate on the "vote_date" field.
func VoteDateEQ(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldVoteDate, v))
}

// VoteDateNEQ applies the NEQ predicate on the "vote_date" field.
func VoteDateNEQ(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldVoteDate, v))
}

// VoteDateIn applies the In predicate on the "vote_date" field.
func VoteDateIn(vs ...time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldVoteDate, vs...))
}

// VoteDateNotIn applies the NotIn predicate on the "vote_date" field.
func VoteDateNotIn(vs ...time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldVoteDate, vs...))
}

// VoteDateGT applies the GT predicate on the "vote_date" field.
func VoteDateGT(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldVoteDate, v))
}

// VoteDateGTE applies the GTE predicate on the "vote_date" field.
func VoteDateGTE(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldVoteDate, v))
}

// VoteDateLT applies the LT predicate on the "vote_date" field.
func VoteDateLT(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldVoteDate, v))
}

// VoteDateLTE applies the LTE predicate on the "vote_date" field.
func VoteDateLTE(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldVoteDate, v))
}

// VoteDateIsNil applies the IsNil predicate on the "vote_date" field.
func VoteDateIsNil() predicate.Vote {
	return predicate.Vote(sql.FieldIsNull(FieldVoteDate))
}

// VoteDateNotNil applies the NotNil predicate on the "vote_date" field.
func VoteDateNotNil() predicate.Vote {
	return predicate.Vote(sql.FieldNotNull(FieldVoteDate))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldSequence, v))
}

// SequenceIsNil applies the IsNil predicate on the "sequence" field.
func SequenceIsNil() predicate.Vote {
	return predicate.Vote(sql.FieldIsNull(FieldSequence))
}

// SequenceNotNil applies the NotNil predicate on the "sequence" field.
func SequenceNotNil() predicate.Vote {
	return predicate.Vote(sql.FieldNotNull(FieldSequence))
}

// HasMember applies the HasEdge predicate on the "member" edge.
func HasMember() predicate.Vote {
	return predicate.Vote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MemberTable, MemberColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemberWith applies the HasEdge predicate on the "member" edge with a given conditions (other predicates).
func HasMemberWith(preds ...predicate.CouncilMember) predicate.Vote {
	return predicate.Vote(func(s *sql.Selector) {
		step := newMemberStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatter applies the HasEdge predicate on the "matter" edge.
func HasMatter() predicate.Vote {
	return predicate.Vote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MatterTable, MatterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatterWith applies the HasEdge predicate on the "matter" edge with a given conditions (other predicates).
func HasMatterWith(preds ...predicate.Matter) predicate.Vote {
	return predicate.Vote(func(s *sql.Selector) {
		step := newMatterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.NotPredicates(p))
}
