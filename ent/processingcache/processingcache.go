// Code generated by ent, DO NOT EDIT.

package processingcache

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the processingcache type in the database.
	Label = "processing_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cache_id"
	// FieldPacketURL holds the string denoting the packet_url field in the database.
	FieldPacketURL = "packet_url"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldElapsedMs holds the string denoting the elapsed_ms field in the database.
	FieldElapsedMs = "elapsed_ms"
	// FieldHitCount holds the string denoting the hit_count field in the database.
	FieldHitCount = "hit_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastAccessedAt holds the string denoting the last_accessed_at field in the database.
	FieldLastAccessedAt = "last_accessed_at"
	// Table holds the table name of the processingcache in the database.
	Table = "processing_caches"
)

// Columns holds all SQL columns for processingcache fields.
var Columns = []string{
	FieldID,
	FieldPacketURL,
	FieldContentHash,
	FieldMethod,
	FieldElapsedMs,
	FieldHitCount,
	FieldCreatedAt,
	FieldLastAccessedAt,
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
	// DefaultElapsedMs holds the default value on creation for the "elapsed_ms" field.
	DefaultElapsedMs int
	// DefaultHitCount holds the default value on creation for the "hit_count" field.
	DefaultHitCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastAccessedAt holds the default value on creation for the "last_accessed_at" field.
	DefaultLastAccessedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(int64) error
)

// OrderOption defines the ordering options for the ProcessingCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPacketURL orders the results by the packet_url field.
func ByPacketURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPacketURL, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByElapsedMs orders the results by the elapsed_ms field.
func ByElapsedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedMs, opts...).ToFunc()
}

// ByHitCount orders the results by the hit_count field.
func ByHitCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHitCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastAccessedAt orders the results by the last_accessed_at field.
func ByLastAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessedAt, opts...).ToFunc()
}
