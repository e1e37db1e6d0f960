// Code generated by ent, DO NOT EDIT.

package committee

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Committee {
	return predicate.Committee(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Committee {
	return predicate.Committee(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Committee {
	return predicate.Committee(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Committee {
	return predicate.Committee(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Committee {
	return predicate.Committee(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Committee {
	return predicate.Committee(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Committee {
	return predicate.Committee(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Committee {
	return predicate.Committee(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Committee {
	return predicate.Committee(sql.FieldContainsFold(FieldID, id))
}

// Banana applies equality check predicate on the "banana" field. It's identical to BananaEQ.
func Banana(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldBanana, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldNormalizedName, v))
}

// VendorBodyID applies equality check predicate on the "vendor_body_id" field. It's identical to VendorBodyIDEQ.
func VendorBodyID(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldVendorBodyID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldCreatedAt, v))
}

// BananaEQ applies the EQ predicate on the "banana" field.
func BananaEQ(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldBanana, v))
}

// BananaNEQ applies the NEQ predicate on the "banana" field.
func BananaNEQ(v string) predicate.Committee {
	return predicate.Committee(sql.FieldNEQ(FieldBanana, v))
}

// BananaIn applies the In predicate on the "banana" field.
func BananaIn(vs ...string) predicate.Committee {
	return predicate.Committee(sql.FieldIn(FieldBanana, vs...))
}

// BananaNotIn applies the NotIn predicate on the "banana" field.
func BananaNotIn(vs ...string) predicate.Committee {
	return predicate.Committee(sql.FieldNotIn(FieldBanana, vs...))
}

// BananaGT applies the GT predicate on the "banana" field.
func BananaGT(v string) predicate.Committee {
	return predicate.Committee(sql.FieldGT(FieldBanana, v))
}

// BananaGTE applies the GTE predicate on the "banana" field.
func BananaGTE(v string) predicate.Committee {
	return predicate.Committee(sql.FieldGTE(FieldBanana, v))
}

// BananaLT applies the LT predicate on the "banana" field.
func BananaLT(v string) predicate.Committee {
	return predicate.Committee(sql.FieldLT(FieldBanana, v))
}

// BananaLTE applies the LTE predicate on the "banana" field.
func BananaLTE(v string) predicate.Committee {
	return predicate.Committee(sql.FieldLTE(FieldBanana, v))
}

// BananaContains applies the Contains predicate on the "banana" field.
func BananaContains(v string) predicate.Committee {
	return predicate.Committee(sql.FieldContains(FieldBanana, v))
}

// BananaHasPrefix applies the HasPrefix predicate on the "banana" field.
func BananaHasPrefix(v string) predicate.Committee {
	return predicate.Committee(sql.FieldHasPrefix(FieldBanana, v))
}

// BananaHasSuffix applies the HasSuffix predicate on the "banana" field.
func BananaHasSuffix(v string) predicate.Committee {
	return predicate.Committee(sql.FieldHasSuffix(FieldBanana, v))
}

// BananaEqualFold applies the EqualFold predicate on the "banana" field.
func BananaEqualFold(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEqualFold(FieldBanana, v))
}

// BananaContainsFold applies the ContainsFold predicate on the "banana" field.
func BananaContainsFold(v string) predicate.Committee {
	return predicate.Committee(sql.FieldContainsFold(FieldBanana, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Committee {
	return predicate.Committee(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Committee {
	return predicate.Committee(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Committee {
	return predicate.Committee(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Committee {
	return predicate.Committee(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Committee {
	return predicate.Committee(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Committee {
	return predicate.Committee(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Committee {
	return predicate.Committee(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Committee {
	return predicate.Committee(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Committee {
	return predicate.Committee(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Committee {
	return predicate.Committee(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Committee {
	return predicate.Committee(sql.FieldContainsFold(FieldName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.Committee {
	return predicate.Committee(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.Committee {
	return predicate.Committee(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.Committee {
	return predicate.Committee(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.Committee {
	return predicate.Committee(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.Committee {
	return predicate.Committee(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.Committee {
	return predicate.Committee(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.Committee {
	return predicate.Committee(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.Committee {
	return predicate.Committee(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.Committee {
	return predicate.Committee(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.Committee {
	return predicate.Committee(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.Committee {
	return predicate.Committee(sql.FieldContainsFold(FieldNormalizedName, v))
}

// VendorBodyIDEQ applies the EQ predicate on the "vendor_body_id" field.
func VendorBodyIDEQ(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldVendorBodyID, v))
}

// VendorBodyIDNEQ applies the NEQ predicate on the "vendor_body_id" field.
func VendorBodyIDNEQ(v string) predicate.Committee {
	return predicate.Committee(sql.FieldNEQ(FieldVendorBodyID, v))
}

// VendorBodyIDIn applies the In predicate on the "vendor_body_id" field.
func VendorBodyIDIn(vs ...string) predicate.Committee {
	return predicate.Committee(sql.FieldIn(FieldVendorBodyID, vs...))
}

// VendorBodyIDNotIn applies the NotIn predicate on the "vendor_body_id" field.
func VendorBodyIDNotIn(vs ...string) predicate.Committee {
	return predicate.Committee(sql.FieldNotIn(FieldVendorBodyID, vs...))
}

// VendorBodyIDGT applies the GT predicate on the "vendor_body_id" field.
func VendorBodyIDGT(v string) predicate.Committee {
	return predicate.Committee(sql.FieldGT(FieldVendorBodyID, v))
}

// VendorBodyIDGTE applies the GTE predicate on the "vendor_body_id" field.
func VendorBodyIDGTE(v string) predicate.Committee {
	return predicate.Committee(sql.FieldGTE(FieldVendorBodyID, v))
}

// VendorBodyIDLT applies the LT predicate on the "vendor_body_id" field.
func VendorBodyIDLT(v string) predicate.Committee {
	return predicate.Committee(sql.FieldLT(FieldVendorBodyID, v))
}

// VendorBodyIDLTE applies the LTE predicate on the "vendor_body_id" field.
func VendorBodyIDLTE(v string) predicate.Committee {
	return predicate.Committee(sql.FieldLTE(FieldVendorBodyID, v))
}

// VendorBodyIDContains applies the Contains predicate on the "vendor_body_id" field.
func VendorBodyIDContains(v string) predicate.Committee {
	return predicate.Committee(sql.FieldContains(FieldVendorBodyID, v))
}

// VendorBodyIDHasPrefix applies the HasPrefix predicate on the "vendor_body_id" field.
func VendorBodyIDHasPrefix(v string) predicate.Committee {
	return predicate.Committee(sql.FieldHasPrefix(FieldVendorBodyID, v))
}

// VendorBodyIDHasSuffix applies the HasSuffix predicate on the "vendor_body_id" field.
func VendorBodyIDHasSuffix(v string) predicate.Committee {
	return predicate.Committee(sql.FieldHasSuffix(FieldVendorBodyID, v))
}

// VendorBodyIDIsNil applies the IsNil predicate on the "vendor_body_id" field.
func VendorBodyIDIsNil() predicate.Committee {
	return predicate.Committee(sql.FieldIsNull(FieldVendorBodyID))
}

// VendorBodyIDNotNil applies the NotNil predicate on the "vendor_body_id" field.
func VendorBodyIDNotNil() predicate.Committee {
	return predicate.Committee(sql.FieldNotNull(FieldVendorBodyID))
}

// VendorBodyIDEqualFold applies the EqualFold predicate on the "vendor_body_id" field.
func VendorBodyIDEqualFold(v string) predicate.Committee {
	return predicate.Committee(sql.FieldEqualFold(FieldVendorBodyID, v))
}

// VendorBodyIDContainsFold applies the ContainsFold predicate on the "vendor_body_id" field.
func VendorBodyIDContainsFold(v string) predicate.Committee {
	return predicate.Committee(sql.FieldContainsFold(FieldVendorBodyID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Committee {
	return predicate.Committee(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCity applies the HasEdge predicate on the "city" edge.
func HasCity() predicate.Committee {
	return predicate.Committee(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CityTable, CityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCityWith applies the HasEdge predicate on the "city" edge with a given conditions (other predicates).
func HasCityWith(preds ...predicate.City) predicate.Committee {
	return predicate.Committee(func(s *sql.Selector) {
		step := newCityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMeetings applies the HasEdge predicate on the "meetings" edge.
func HasMeetings() predicate.Committee {
	return predicate.Committee(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MeetingsTable, MeetingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingsWith applies the HasEdge predicate on the "meetings" edge with a given conditions (other predicates).
func HasMeetingsWith(preds ...predicate.Meeting) predicate.Committee {
	return predicate.Committee(func(s *sql.Selector) {
		step := newMeetingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMemberships applies the HasEdge predicate on the "memberships" edge.
func HasMemberships() predicate.Committee {
	return predicate.Committee(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembershipsTable, MembershipsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembershipsWith applies the HasEdge predicate on the "memberships" edge with a given conditions (other predicates).
func HasMembershipsWith(preds ...predicate.CommitteeMembership) predicate.Committee {
	return predicate.Committee(func(s *sql.Selector) {
		step := newMembershipsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Committee) predicate.Committee {
	return predicate.Committee(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Committee) predicate.Committee {
	return predicate.Committee(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Committee) predicate.Committee {
	return predicate.Committee(sql.NotPredicates(p))
}
