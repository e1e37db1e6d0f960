// Code generated by ent, DO NOT EDIT.

package processingcache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Engagic/engagic-sub004/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLTE(FieldID, id))
}

// PacketURL applies equality check predicate on the "packet_url" field. It's identical to PacketURLEQ.
func PacketURL(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldPacketURL, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldContentHash, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldMethod, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldElapsedMs, v))
}

// HitCount applies equality check predicate on the "hit_count" field. It's identical to HitCountEQ.
func HitCount(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldHitCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldCreatedAt, v))
}

// LastAccessedAt applies equality check predicate on the "last_accessed_at" field. It's identical to LastAccessedAtEQ.
func LastAccessedAt(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldLastAccessedAt, v))
}

// PacketURLEQ applies the EQ predicate on the "packet_url" field.
func PacketURLEQ(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldPacketURL, v))
}

// PacketURLNEQ applies the NEQ predicate on the "packet_url" field.
func PacketURLNEQ(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNEQ(FieldPacketURL, v))
}

// PacketURLIn applies the In predicate on the "packet_url" field.
func PacketURLIn(vs ...string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIn(FieldPacketURL, vs...))
}

// PacketURLNotIn applies the NotIn predicate on the "packet_url" field.
func PacketURLNotIn(vs ...string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotIn(FieldPacketURL, vs...))
}

// PacketURLGT applies the GT predicate on the "packet_url" field.
func PacketURLGT(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGT(FieldPacketURL, v))
}

// PacketURLGTE applies the GTE predicate on the "packet_url" field.
func PacketURLGTE(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGTE(FieldPacketURL, v))
}

// PacketURLLT applies the LT predicate on the "packet_url" field.
func PacketURLLT(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLT(FieldPacketURL, v))
}

// PacketURLLTE applies the LTE predicate on the "packet_url" field.
func PacketURLLTE(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLTE(FieldPacketURL, v))
}

// PacketURLContains applies the Contains predicate on the "packet_url" field.
func PacketURLContains(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldContains(FieldPacketURL, v))
}

// PacketURLHasPrefix applies the HasPrefix predicate on the "packet_url" field.
func PacketURLHasPrefix(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldHasPrefix(FieldPacketURL, v))
}

// PacketURLHasSuffix applies the HasSuffix predicate on the "packet_url" field.
func PacketURLHasSuffix(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldHasSuffix(FieldPacketURL, v))
}

// PacketURLEqualFold applies the EqualFold predicate on the "packet_url" field.
func PacketURLEqualFold(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEqualFold(FieldPacketURL, v))
}

// PacketURLContainsFold applies the ContainsFold predicate on the "packet_url" field.
func PacketURLContainsFold(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldContainsFold(FieldPacketURL, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldContainsFold(FieldContentHash, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldContainsFold(FieldMethod, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLTE(FieldElapsedMs, v))
}

// HitCountEQ applies the EQ predicate on the "hit_count" field.
func HitCountEQ(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldHitCount, v))
}

// HitCountNEQ applies the NEQ predicate on the "hit_count" field.
func HitCountNEQ(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNEQ(FieldHitCount, v))
}

// HitCountIn applies the In predicate on the "hit_count" field.
func HitCountIn(vs ...int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIn(FieldHitCount, vs...))
}

// HitCountNotIn applies the NotIn predicate on the "hit_count" field.
func HitCountNotIn(vs ...int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotIn(FieldHitCount, vs...))
}

// HitCountGT applies the GT predicate on the "hit_count" field.
func HitCountGT(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGT(FieldHitCount, v))
}

// HitCountGTE applies the GTE predicate on the "hit_count" field.
func HitCountGTE(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGTE(FieldHitCount, v))
}

// HitCountLT applies the LT predicate on the "hit_count" field.
func HitCountLT(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLT(FieldHitCount, v))
}

// HitCountLTE applies the LTE predicate on the "hit_count" field.
func HitCountLTE(v int) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLTE(FieldHitCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLTE(FieldCreatedAt, v))
}

// LastAccessedAtEQ applies the EQ predicate on the "last_accessed_at" field.
func LastAccessedAtEQ(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtNEQ applies the NEQ predicate on the "last_accessed_at" field.
func LastAccessedAtNEQ(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtIn applies the In predicate on the "last_accessed_at" field.
func LastAccessedAtIn(vs ...time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtNotIn applies the NotIn predicate on the "last_accessed_at" field.
func LastAccessedAtNotIn(vs ...time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldNotIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtGT applies the GT predicate on the "last_accessed_at" field.
func LastAccessedAtGT(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGT(FieldLastAccessedAt, v))
}

// LastAccessedAtGTE applies the GTE predicate on the "last_accessed_at" field.
func LastAccessedAtGTE(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldGTE(FieldLastAccessedAt, v))
}

// LastAccessedAtLT applies the LT predicate on the "last_accessed_at" field.
func LastAccessedAtLT(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLT(FieldLastAccessedAt, v))
}

// LastAccessedAtLTE applies the LTE predicate on the "last_accessed_at" field.
func LastAccessedAtLTE(v time.Time) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.FieldLTE(FieldLastAccessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingCache) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingCache) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingCache) predicate.ProcessingCache {
	return predicate.ProcessingCache(sql.NotPredicates(p))
}
