// Code generated by ent, DO NOT EDIT.

package councilmember

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContainsFold(FieldID, id))
}

// Banana applies equality check predicate on the "banana" field. It's identical to BananaEQ.
func Banana(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldBanana, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldNormalizedName, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldTitle, v))
}

// District applies equality check predicate on the "district" field. It's identical to DistrictEQ.
func District(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldDistrict, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldLastSeen, v))
}

// SponsorshipCount applies equality check predicate on the "sponsorship_count" field. It's identical to SponsorshipCountEQ.
func SponsorshipCount(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldSponsorshipCount, v))
}

// VoteCount applies equality check predicate on the "vote_count" field. It's identical to VoteCountEQ.
func VoteCount(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldVoteCount, v))
}

// BananaEQ applies the EQ predicate on the "banana" field.
func BananaEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldBanana, v))
}

// BananaNEQ applies the NEQ predicate on the "banana" field.
func BananaNEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldBanana, v))
}

// BananaIn applies the In predicate on the "banana" field.
func BananaIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldBanana, vs...))
}

// BananaNotIn applies the NotIn predicate on the "banana" field.
func BananaNotIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldBanana, vs...))
}

// BananaGT applies the GT predicate on the "banana" field.
func BananaGT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldBanana, v))
}

// BananaGTE applies the GTE predicate on the "banana" field.
func BananaGTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldBanana, v))
}

// BananaLT applies the LT predicate on the "banana" field.
func BananaLT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldBanana, v))
}

// BananaLTE applies the LTE predicate on the "banana" field.
func BananaLTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldBanana, v))
}

// BananaContains applies the Contains predicate on the "banana" field.
func BananaContains(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContains(FieldBanana, v))
}

// BananaHasPrefix applies the HasPrefix predicate on the "banana" field.
func BananaHasPrefix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasPrefix(FieldBanana, v))
}

// BananaHasSuffix applies the HasSuffix predicate on the "banana" field.
func BananaHasSuffix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasSuffix(FieldBanana, v))
}

// BananaEqualFold applies the EqualFold predicate on the "banana" field.
func BananaEqualFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEqualFold(FieldBanana, v))
}

// BananaContainsFold applies the ContainsFold predicate on the "banana" field.
func BananaContainsFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContainsFold(FieldBanana, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContainsFold(FieldName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContainsFold(FieldNormalizedName, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContainsFold(FieldTitle, v))
}

// DistrictEQ applies the EQ predicate on the "district" field.
func DistrictEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldDistrict, v))
}

// DistrictNEQ applies the NEQ predicate on the "district" field.
func DistrictNEQ(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldDistrict, v))
}

// DistrictIn applies the In predicate on the "district" field.
func DistrictIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldDistrict, vs...))
}

// DistrictNotIn applies the NotIn predicate on the "district" field.
func DistrictNotIn(vs ...string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldDistrict, vs...))
}

// DistrictGT applies the GT predicate on the "district" field.
func DistrictGT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldDistrict, v))
}

// DistrictGTE applies the GTE predicate on the "district" field.
func DistrictGTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldDistrict, v))
}

// DistrictLT applies the LT predicate on the "district" field.
func DistrictLT(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldDistrict, v))
}

// DistrictLTE applies the LTE predicate on the "district" field.
func DistrictLTE(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldDistrict, v))
}

// DistrictContains applies the Contains predicate on the "district" field.
func DistrictContains(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContains(FieldDistrict, v))
}

// DistrictHasPrefix applies the HasPrefix predicate on the "district" field.
func DistrictHasPrefix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasPrefix(FieldDistrict, v))
}

// DistrictHasSuffix applies the HasSuffix predicate on the "district" field.
func DistrictHasSuffix(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldHasSuffix(FieldDistrict, v))
}

// DistrictIsNil applies the IsNil predicate on the "district" field.
func DistrictIsNil() predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIsNull(FieldDistrict))
}

// DistrictNotNil applies the NotNil predicate on the "district" field.
func DistrictNotNil() predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotNull(FieldDistrict))
}

// DistrictEqualFold applies the EqualFold predicate on the "district" field.
func DistrictEqualFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEqualFold(FieldDistrict, v))
}

// DistrictContainsFold applies the ContainsFold predicate on the "district" field.
func DistrictContainsFold(v string) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldContainsFold(FieldDistrict, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldStatus, vs...))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldLastSeen, v))
}

// SponsorshipCountEQ applies the EQ predicate on the "sponsorship_count" field.
func SponsorshipCountEQ(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldSponsorshipCount, v))
}

// SponsorshipCountNEQ applies the NEQ predicate on the "sponsorship_count" field.
func SponsorshipCountNEQ(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldSponsorshipCount, v))
}

// SponsorshipCountIn applies the In predicate on the "sponsorship_count" field.
func SponsorshipCountIn(vs ...int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldSponsorshipCount, vs...))
}

// SponsorshipCountNotIn applies the NotIn predicate on the "sponsorship_count" field.
func SponsorshipCountNotIn(vs ...int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldSponsorshipCount, vs...))
}

// SponsorshipCountGT applies the GT predicate on the "sponsorship_count" field.
func SponsorshipCountGT(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldSponsorshipCount, v))
}

// SponsorshipCountGTE applies the GTE predicate on the "sponsorship_count" field.
func SponsorshipCountGTE(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldSponsorshipCount, v))
}

// SponsorshipCountLT applies the LT predicate on the "sponsorship_count" field.
func SponsorshipCountLT(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldSponsorshipCount, v))
}

// SponsorshipCountLTE applies the LTE predicate on the "sponsorship_count" field.
func SponsorshipCountLTE(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldSponsorshipCount, v))
}

// VoteCountEQ applies the EQ predicate on the "vote_count" field.
func VoteCountEQ(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldEQ(FieldVoteCount, v))
}

// VoteCountNEQ applies the NEQ predicate on the "vote_count" field.
func VoteCountNEQ(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNEQ(FieldVoteCount, v))
}

// VoteCountIn applies the In predicate on the "vote_count" field.
func VoteCountIn(vs ...int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIn(FieldVoteCount, vs...))
}

// VoteCountNotIn applies the NotIn predicate on the "vote_count" field.
func VoteCountNotIn(vs ...int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotIn(FieldVoteCount, vs...))
}

// VoteCountGT applies the GT predicate on the "vote_count" field.
func VoteCountGT(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGT(FieldVoteCount, v))
}

// VoteCountGTE applies the GTE predicate on the "vote_count" field.
func VoteCountGTE(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldGTE(FieldVoteCount, v))
}

// VoteCountLT applies the LT predicate on the "vote_count" field.
func VoteCountLT(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLT(FieldVoteCount, v))
}

// VoteCountLTE applies the LTE predicate on the "vote_count" field.
func VoteCountLTE(v int) predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldLTE(FieldVoteCount, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.CouncilMember {
	return predicate.CouncilMember(sql.FieldNotNull(FieldMetadata))
}

// HasCity applies the HasEdge predicate on the "city" edge.
func HasCity() predicate.CouncilMember {
	return predicate.CouncilMember(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CityTable, CityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCityWith applies the HasEdge predicate on the "city" edge with a given conditions (other predicates).
func HasCityWith(preds ...predicate.City) predicate.CouncilMember {
	return predicate.CouncilMember(func(s *sql.Selector) {
		step := newCityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVotes applies the HasEdge predicate on the "votes" edge.
func HasVotes() predicate.CouncilMember {
	return predicate.CouncilMember(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VotesTable, VotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVotesWith applies the HasEdge predicate on the "votes" edge with a given conditions (other predicates).
func HasVotesWith(preds ...predicate.Vote) predicate.CouncilMember {
	return predicate.CouncilMember(func(s *sql.Selector) {
		step := newVotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMemberships applies the HasEdge predicate on the "memberships" edge.
func HasMemberships() predicate.CouncilMember {
	return predicate.CouncilMember(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembershipsTable, MembershipsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembershipsWith applies the HasEdge predicate on the "memberships" edge with a given conditions (other predicates).
func HasMembershipsWith(preds ...predicate.CommitteeMembership) predicate.CouncilMember {
	return predicate.CouncilMember(func(s *sql.Selector) {
		step := newMembershipsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CouncilMember) predicate.CouncilMember {
	return predicate.CouncilMember(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CouncilMember) predicate.CouncilMember {
	return predicate.CouncilMember(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CouncilMember) predicate.CouncilMember {
	return predicate.CouncilMember(sql.NotPredicates(p))
}
