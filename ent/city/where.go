// Code generated by ent, DO NOT EDIT.

package city

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.City {
	return predicate.City(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.City {
	return predicate.City(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.City {
	return predicate.City(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.City {
	return predicate.City(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.City {
	return predicate.City(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.City {
	return predicate.City(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.City {
	return predicate.City(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldName, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldState, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldVendor, v))
}

// VendorSlug applies equality check predicate on the "vendor_slug" field. It's identical to VendorSlugEQ.
func VendorSlug(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldVendorSlug, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldTimezone, v))
}

// County applies equality check predicate on the "county" field. It's identical to CountyEQ.
func County(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldCounty, v))
}

// Population applies equality check predicate on the "population" field. It's identical to PopulationEQ.
func Population(v int) predicate.City {
	return predicate.City(sql.FieldEQ(FieldPopulation, v))
}

// SyncErrorCount applies equality check predicate on the "sync_error_count" field. It's identical to SyncErrorCountEQ.
func SyncErrorCount(v int) predicate.City {
	return predicate.City(sql.FieldEQ(FieldSyncErrorCount, v))
}

// LastSyncedAt applies equality check predicate on the "last_synced_at" field. It's identical to LastSyncedAtEQ.
func LastSyncedAt(v time.Time) predicate.City {
	return predicate.City(sql.FieldEQ(FieldLastSyncedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.City {
	return predicate.City(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.City {
	return predicate.City(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.City {
	return predicate.City(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.City {
	return predicate.City(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.City {
	return predicate.City(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.City {
	return predicate.City(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.City {
	return predicate.City(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.City {
	return predicate.City(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.City {
	return predicate.City(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.City {
	return predicate.City(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.City {
	return predicate.City(sql.FieldContainsFold(FieldName, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.City {
	return predicate.City(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.City {
	return predicate.City(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.City {
	return predicate.City(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.City {
	return predicate.City(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.City {
	return predicate.City(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.City {
	return predicate.City(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.City {
	return predicate.City(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.City {
	return predicate.City(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.City {
	return predicate.City(sql.FieldContainsFold(FieldState, v))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.City {
	return predicate.City(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.City {
	return predicate.City(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.City {
	return predicate.City(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.City {
	return predicate.City(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.City {
	return predicate.City(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.City {
	return predicate.City(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.City {
	return predicate.City(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.City {
	return predicate.City(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.City {
	return predicate.City(sql.FieldContainsFold(FieldVendor, v))
}

// VendorSlugEQ applies the EQ predicate on the "vendor_slug" field.
func VendorSlugEQ(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldVendorSlug, v))
}

// VendorSlugNEQ applies the NEQ predicate on the "vendor_slug" field.
func VendorSlugNEQ(v string) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldVendorSlug, v))
}

// VendorSlugIn applies the In predicate on the "vendor_slug" field.
func VendorSlugIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldIn(FieldVendorSlug, vs...))
}

// VendorSlugNotIn applies the NotIn predicate on the "vendor_slug" field.
func VendorSlugNotIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldVendorSlug, vs...))
}

// VendorSlugGT applies the GT predicate on the "vendor_slug" field.
func VendorSlugGT(v string) predicate.City {
	return predicate.City(sql.FieldGT(FieldVendorSlug, v))
}

// VendorSlugGTE applies the GTE predicate on the "vendor_slug" field.
func VendorSlugGTE(v string) predicate.City {
	return predicate.City(sql.FieldGTE(FieldVendorSlug, v))
}

// VendorSlugLT applies the LT predicate on the "vendor_slug" field.
func VendorSlugLT(v string) predicate.City {
	return predicate.City(sql.FieldLT(FieldVendorSlug, v))
}

// VendorSlugLTE applies the LTE predicate on the "vendor_slug" field.
func VendorSlugLTE(v string) predicate.City {
	return predicate.City(sql.FieldLTE(FieldVendorSlug, v))
}

// VendorSlugContains applies the Contains predicate on the "vendor_slug" field.
func VendorSlugContains(v string) predicate.City {
	return predicate.City(sql.FieldContains(FieldVendorSlug, v))
}

// VendorSlugHasPrefix applies the HasPrefix predicate on the "vendor_slug" field.
func VendorSlugHasPrefix(v string) predicate.City {
	return predicate.City(sql.FieldHasPrefix(FieldVendorSlug, v))
}

// VendorSlugHasSuffix applies the HasSuffix predicate on the "vendor_slug" field.
func VendorSlugHasSuffix(v string) predicate.City {
	return predicate.City(sql.FieldHasSuffix(FieldVendorSlug, v))
}

// VendorSlugEqualFold applies the EqualFold predicate on the "vendor_slug" field.
func VendorSlugEqualFold(v string) predicate.City {
	return predicate.City(sql.FieldEqualFold(FieldVendorSlug, v))
}

// VendorSlugContainsFold applies the ContainsFold predicate on the "vendor_slug" field.
func VendorSlugContainsFold(v string) predicate.City {
	return predicate.City(sql.FieldContainsFold(FieldVendorSlug, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.City {
	return predicate.City(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.City {
	return predicate.City(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.City {
	return predicate.City(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.City {
	return predicate.City(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.City {
	return predicate.City(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.City {
	return predicate.City(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.City {
	return predicate.City(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.City {
	return predicate.City(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.City {
	return predicate.City(sql.FieldContainsFold(FieldTimezone, v))
}

// CountyEQ applies the EQ predicate on the "county" field.
func CountyEQ(v string) predicate.City {
	return predicate.City(sql.FieldEQ(FieldCounty, v))
}

// CountyNEQ applies the NEQ predicate on the "county" field.
func CountyNEQ(v string) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldCounty, v))
}

// CountyIn applies the In predicate on the "county" field.
func CountyIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldIn(FieldCounty, vs...))
}

// CountyNotIn applies the NotIn predicate on the "county" field.
func CountyNotIn(vs ...string) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldCounty, vs...))
}

// CountyGT applies the GT predicate on the "county" field.
func CountyGT(v string) predicate.City {
	return predicate.City(sql.FieldGT(FieldCounty, v))
}

// CountyGTE applies the GTE predicate on the "county" field.
func CountyGTE(v string) predicate.City {
	return predicate.City(sql.FieldGTE(FieldCounty, v))
}

// CountyLT applies the LT predicate on the "county" field.
func CountyLT(v string) predicate.City {
	return predicate.City(sql.FieldLT(FieldCounty, v))
}

// CountyLTE applies the LTE predicate on the "county" field.
func CountyLTE(v string) predicate.City {
	return predicate.City(sql.FieldLTE(FieldCounty, v))
}

// CountyContains applies the Contains predicate on the "county" field.
func CountyContains(v string) predicate.City {
	return predicate.City(sql.FieldContains(FieldCounty, v))
}

// CountyHasPrefix applies the HasPrefix predicate on the "county" field.
func CountyHasPrefix(v string) predicate.City {
	return predicate.City(sql.FieldHasPrefix(FieldCounty, v))
}

// CountyHasSuffix applies the HasSuffix predicate on the "county" field.
func CountyHasSuffix(v string) predicate.City {
	return predicate.City(sql.FieldHasSuffix(FieldCounty, v))
}

// CountyIsNil applies the IsNil predicate on the "county" field.
func CountyIsNil() predicate.City {
	return predicate.City(sql.FieldIsNull(FieldCounty))
}

// CountyNotNil applies the NotNil predicate on the "county" field.
func CountyNotNil() predicate.City {
	return predicate.City(sql.FieldNotNull(FieldCounty))
}

// CountyEqualFold applies the EqualFold predicate on the "county" field.
func CountyEqualFold(v string) predicate.City {
	return predicate.City(sql.FieldEqualFold(FieldCounty, v))
}

// CountyContainsFold applies the ContainsFold predicate on the "county" field.
func CountyContainsFold(v string) predicate.City {
	return predicate.City(sql.FieldContainsFold(FieldCounty, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.City {
	return predicate.City(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.City {
	return predicate.City(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldStatus, vs...))
}

// PopulationEQ applies the EQ predicate on the "population" field.
func PopulationEQ(v int) predicate.City {
	return predicate.City(sql.FieldEQ(FieldPopulation, v))
}

// PopulationNEQ applies the NEQ predicate on the "population" field.
func PopulationNEQ(v int) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldPopulation, v))
}

// PopulationIn applies the In predicate on the "population" field.
func PopulationIn(vs ...int) predicate.City {
	return predicate.City(sql.FieldIn(FieldPopulation, vs...))
}

// PopulationNotIn applies the NotIn predicate on the "population" field.
func PopulationNotIn(vs ...int) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldPopulation, vs...))
}

// PopulationGT applies the GT predicate on the "population" field.
func PopulationGT(v int) predicate.City {
	return predicate.City(sql.FieldGT(FieldPopulation, v))
}

// PopulationGTE applies the GTE predicate on the "population" field.
func PopulationGTE(v int) predicate.City {
	return predicate.City(sql.FieldGTE(FieldPopulation, v))
}

// PopulationLT applies the LT predicate on the "population" field.
func PopulationLT(v int) predicate.City {
	return predicate.City(sql.FieldLT(FieldPopulation, v))
}

// PopulationLTE applies the LTE predicate on the "population" field.
func PopulationLTE(v int) predicate.City {
	return predicate.City(sql.FieldLTE(FieldPopulation, v))
}

// PopulationIsNil applies the IsNil predicate on the "population" field.
func PopulationIsNil() predicate.City {
	return predicate.City(sql.FieldIsNull(FieldPopulation))
}

// PopulationNotNil applies the NotNil predicate on the "population" field.
func PopulationNotNil() predicate.City {
	return predicate.City(sql.FieldNotNull(FieldPopulation))
}

// GeometryIsNil applies the IsNil predicate on the "geometry" field.
func GeometryIsNil() predicate.City {
	return predicate.City(sql.FieldIsNull(FieldGeometry))
}

// GeometryNotNil applies the NotNil predicate on the "geometry" field.
func GeometryNotNil() predicate.City {
	return predicate.City(sql.FieldNotNull(FieldGeometry))
}

// SyncErrorCountEQ applies the EQ predicate on the "sync_error_count" field.
func SyncErrorCountEQ(v int) predicate.City {
	return predicate.City(sql.FieldEQ(FieldSyncErrorCount, v))
}

// SyncErrorCountNEQ applies the NEQ predicate on the "sync_error_count" field.
func SyncErrorCountNEQ(v int) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldSyncErrorCount, v))
}

// SyncErrorCountIn applies the In predicate on the "sync_error_count" field.
func SyncErrorCountIn(vs ...int) predicate.City {
	return predicate.City(sql.FieldIn(FieldSyncErrorCount, vs...))
}

// SyncErrorCountNotIn applies the NotIn predicate on the "sync_error_count" field.
func SyncErrorCountNotIn(vs ...int) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldSyncErrorCount, vs...))
}

// SyncErrorCountGT applies the GT predicate on the "sync_error_count" field.
func SyncErrorCountGT(v int) predicate.City {
	return predicate.City(sql.FieldGT(FieldSyncErrorCount, v))
}

// SyncErrorCountGTE applies the GTE predicate on the "sync_error_count" field.
func SyncErrorCountGTE(v int) predicate.City {
	return predicate.City(sql.FieldGTE(FieldSyncErrorCount, v))
}

// SyncErrorCountLT applies the LT predicate on the "sync_error_count" field.
func SyncErrorCountLT(v int) predicate.City {
	return predicate.City(sql.FieldLT(FieldSyncErrorCount, v))
}

// SyncErrorCountLTE applies the LTE predicate on the "sync_error_count" field.
func SyncErrorCountLTE(v int) predicate.City {
	return predicate.City(sql.FieldLTE(FieldSyncErrorCount, v))
}

// LastSyncedAtEQ applies the EQ predicate on the "last_synced_at" field.
func LastSyncedAtEQ(v time.Time) predicate.City {
	return predicate.City(sql.FieldEQ(FieldLastSyncedAt, v))
}

// LastSyncedAtNEQ applies the NEQ predicate on the "last_synced_at" field.
func LastSyncedAtNEQ(v time.Time) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldLastSyncedAt, v))
}

// LastSyncedAtIn applies the In predicate on the "last_synced_at" field.
func LastSyncedAtIn(vs ...time.Time) predicate.City {
	return predicate.City(sql.FieldIn(FieldLastSyncedAt, vs...))
}

// LastSyncedAtNotIn applies the NotIn predicate on the "last_synced_at" field.
func LastSyncedAtNotIn(vs ...time.Time) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldLastSyncedAt, vs...))
}

// LastSyncedAtGT applies the GT predicate on the "last_synced_at" field.
func LastSyncedAtGT(v time.Time) predicate.City {
	return predicate.City(sql.FieldGT(FieldLastSyncedAt, v))
}

// LastSyncedAtGTE applies the GTE predicate on the "last_synced_at" field.
func LastSyncedAtGTE(v time.Time) predicate.City {
	return predicate.City(sql.FieldGTE(FieldLastSyncedAt, v))
}

// LastSyncedAtLT applies the LT predicate on the "last_synced_at" field.
func LastSyncedAtLT(v time.Time) predicate.City {
	return predicate.City(sql.FieldLT(FieldLastSyncedAt, v))
}

// LastSyncedAtLTE applies the LTE predicate on the "last_synced_at" field.
func LastSyncedAtLTE(v time.Time) predicate.City {
	return predicate.City(sql.FieldLTE(FieldLastSyncedAt, v))
}

// LastSyncedAtIsNil applies the IsNil predicate on the "last_synced_at" field.
func LastSyncedAtIsNil() predicate.City {
	return predicate.City(sql.FieldIsNull(FieldLastSyncedAt))
}

// LastSyncedAtNotNil applies the NotNil predicate on the "last_synced_at" field.
func LastSyncedAtNotNil() predicate.City {
	return predicate.City(sql.FieldNotNull(FieldLastSyncedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.City {
	return predicate.City(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.City {
	return predicate.City(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.City {
	return predicate.City(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.City {
	return predicate.City(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.City {
	return predicate.City(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.City {
	return predicate.City(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.City {
	return predicate.City(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.City {
	return predicate.City(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.City {
	return predicate.City(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.City {
	return predicate.City(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.City {
	return predicate.City(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.City {
	return predicate.City(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.City {
	return predicate.City(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.City {
	return predicate.City(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMeetings applies the HasEdge predicate on the "meetings" edge.
func HasMeetings() predicate.City {
	return predicate.City(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MeetingsTable, MeetingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingsWith applies the HasEdge predicate on the "meetings" edge with a given conditions (other predicates).
func HasMeetingsWith(preds ...predicate.Meeting) predicate.City {
	return predicate.City(func(s *sql.Selector) {
		step := newMeetingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatters applies the HasEdge predicate on the "matters" edge.
func HasMatters() predicate.City {
	return predicate.City(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MattersTable, MattersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMattersWith applies the HasEdge predicate on the "matters" edge with a given conditions (other predicates).
func HasMattersWith(preds ...predicate.Matter) predicate.City {
	return predicate.City(func(s *sql.Selector) {
		step := newMattersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCouncilMembers applies the HasEdge predicate on the "council_members" edge.
func HasCouncilMembers() predicate.City {
	return predicate.City(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CouncilMembersTable, CouncilMembersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCouncilMembersWith applies the HasEdge predicate on the "council_members" edge with a given conditions (other predicates).
func HasCouncilMembersWith(preds ...predicate.CouncilMember) predicate.City {
	return predicate.City(func(s *sql.Selector) {
		step := newCouncilMembersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCommittees applies the HasEdge predicate on the "committees" edge.
func HasCommittees() predicate.City {
	return predicate.City(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommitteesTable, CommitteesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommitteesWith applies the HasEdge predicate on the "committees" edge with a given conditions (other predicates).
func HasCommitteesWith(preds ...predicate.Committee) predicate.City {
	return predicate.City(func(s *sql.Selector) {
		step := newCommitteesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.City) predicate.City {
	return predicate.City(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.City) predicate.City {
	return predicate.City(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.City) predicate.City {
	return predicate.City(sql.NotPredicates(p))
}
