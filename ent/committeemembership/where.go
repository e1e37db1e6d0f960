// Code generated by ent, DO NOT EDIT.

package committeemembership

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldContainsFold(FieldID, id))
}

// CommitteeID applies equality check predicate on the "committee_id" field. It's identical to CommitteeIDEQ.
func CommitteeID(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldCommitteeID, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldMemberID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldRole, v))
}

// JoinedAt applies equality check predicate on the "joined_at" field. It's identical to JoinedAtEQ.
func JoinedAt(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldJoinedAt, v))
}

// LeftAt applies equality check predicate on the "left_at" field. It's identical to LeftAtEQ.
func LeftAt(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldLeftAt, v))
}

// CommitteeIDEQ applies the EQ predicate on the "committee_id" field.
func CommitteeIDEQ(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldCommitteeID, v))
}

// CommitteeIDNEQ applies the NEQ predicate on the "committee_id" field.
func CommitteeIDNEQ(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNEQ(FieldCommitteeID, v))
}

// CommitteeIDIn applies the In predicate on the "committee_id" field.
func CommitteeIDIn(vs ...string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldIn(FieldCommitteeID, vs...))
}

// CommitteeIDNotIn applies the NotIn predicate on the "committee_id" field.
func CommitteeIDNotIn(vs ...string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNotIn(FieldCommitteeID, vs...))
}

// CommitteeIDGT applies the GT predicate on the "committee_id" field.
func CommitteeIDGT(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGT(FieldCommitteeID, v))
}

// CommitteeIDGTE applies the GTE predicate on the "committee_id" field.
func CommitteeIDGTE(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGTE(FieldCommitteeID, v))
}

// CommitteeIDLT applies the LT predicate on the "committee_id" field.
func CommitteeIDLT(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLT(FieldCommitteeID, v))
}

// CommitteeIDLTE applies the LTE predicate on the "committee_id" field.
func CommitteeIDLTE(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLTE(FieldCommitteeID, v))
}

// CommitteeIDContains applies the Contains predicate on the "committee_id" field.
func CommitteeIDContains(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldContains(FieldCommitteeID, v))
}

// CommitteeIDHasPrefix applies the HasPrefix predicate on the "committee_id" field.
func CommitteeIDHasPrefix(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldHasPrefix(FieldCommitteeID, v))
}

// CommitteeIDHasSuffix applies the HasSuffix predicate on the "committee_id" field.
func CommitteeIDHasSuffix(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldHasSuffix(FieldCommitteeID, v))
}

// CommitteeIDEqualFold applies the EqualFold predicate on the "committee_id" field.
func CommitteeIDEqualFold(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEqualFold(FieldCommitteeID, v))
}

// CommitteeIDContainsFold applies the ContainsFold predicate on the "committee_id" field.
func CommitteeIDContainsFold(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldContainsFold(FieldCommitteeID, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLTE(FieldMemberID, v))
}

// MemberIDContains applies the Contains predicate on the "member_id" field.
func MemberIDContains(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldContains(FieldMemberID, v))
}

// MemberIDHasPrefix applies the HasPrefix predicate on the "member_id" field.
func MemberIDHasPrefix(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldHasPrefix(FieldMemberID, v))
}

// MemberIDHasSuffix applies the HasSuffix predicate on the "member_id" field.
func MemberIDHasSuffix(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldHasSuffix(FieldMemberID, v))
}

// MemberIDEqualFold applies the EqualFold predicate on the "member_id" field.
func MemberIDEqualFold(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEqualFold(FieldMemberID, v))
}

// MemberIDContainsFold applies the ContainsFold predicate on the "member_id" field.
func MemberIDContainsFold(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldContainsFold(FieldMemberID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldContainsFold(FieldRole, v))
}

// JoinedAtEQ applies the EQ predicate on the "joined_at" field.
func JoinedAtEQ(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldJoinedAt, v))
}

// JoinedAtNEQ applies the NEQ predicate on the "joined_at" field.
func JoinedAtNEQ(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNEQ(FieldJoinedAt, v))
}

// JoinedAtIn applies the In predicate on the "joined_at" field.
func JoinedAtIn(vs ...time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldIn(FieldJoinedAt, vs...))
}

// JoinedAtNotIn applies the NotIn predicate on the "joined_at" field.
func JoinedAtNotIn(vs ...time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNotIn(FieldJoinedAt, vs...))
}

// JoinedAtGT applies the GT predicate on the "joined_at" field.
func JoinedAtGT(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGT(FieldJoinedAt, v))
}

// JoinedAtGTE applies the GTE predicate on the "joined_at" field.
func JoinedAtGTE(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGTE(FieldJoinedAt, v))
}

// JoinedAtLT applies the LT predicate on the "joined_at" field.
func JoinedAtLT(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLT(FieldJoinedAt, v))
}

// JoinedAtLTE applies the LTE predicate on the "joined_at" field.
func JoinedAtLTE(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLTE(FieldJoinedAt, v))
}

// LeftAtEQ applies the EQ predicate on the "left_at" field.
func LeftAtEQ(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldEQ(FieldLeftAt, v))
}

// LeftAtNEQ applies the NEQ predicate on the "left_at" field.
func LeftAtNEQ(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNEQ(FieldLeftAt, v))
}

// LeftAtIn applies the In predicate on the "left_at" field.
func LeftAtIn(vs ...time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldIn(FieldLeftAt, vs...))
}

// LeftAtNotIn applies the NotIn predicate on the "left_at" field.
func LeftAtNotIn(vs ...time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNotIn(FieldLeftAt, vs...))
}

// LeftAtGT applies the GT predicate on the "left_at" field.
func LeftAtGT(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGT(FieldLeftAt, v))
}

// LeftAtGTE applies the GTE predicate on the "left_at" field.
func LeftAtGTE(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldGTE(FieldLeftAt, v))
}

// LeftAtLT applies the LT predicate on the "left_at" field.
func LeftAtLT(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLT(FieldLeftAt, v))
}

// LeftAtLTE applies the LTE predicate on the "left_at" field.
func LeftAtLTE(v time.Time) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldLTE(FieldLeftAt, v))
}

// LeftAtIsNil applies the IsNil predicate on the "left_at" field.
func LeftAtIsNil() predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldIsNull(FieldLeftAt))
}

// LeftAtNotNil applies the NotNil predicate on the "left_at" field.
func LeftAtNotNil() predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.FieldNotNull(FieldLeftAt))
}

// HasCommittee applies the HasEdge predicate on the "committee" edge.
func HasCommittee() predicate.CommitteeMembership {
	return predicate.CommitteeMembership(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CommitteeTable, CommitteeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommitteeWith applies the HasEdge predicate on the "committee" edge with a given conditions (other predicates).
func HasCommitteeWith(preds ...predicate.Committee) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(func(s *sql.Selector) {
		step := newCommitteeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMember applies the HasEdge predicate on the "member" edge.
func HasMember() predicate.CommitteeMembership {
	return predicate.CommitteeMembership(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MemberTable, MemberColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemberWith applies the HasEdge predicate on the "member" edge with a given conditions (other predicates).
func HasMemberWith(preds ...predicate.CouncilMember) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(func(s *sql.Selector) {
		step := newMemberStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommitteeMembership) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommitteeMembership) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommitteeMembership) predicate.CommitteeMembership {
	return predicate.CommitteeMembership(sql.NotPredicates(p))
}
