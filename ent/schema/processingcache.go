package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProcessingCache memoizes packet processing results across syncs.
type ProcessingCache struct {
	ent.Schema
}

// Fields of the ProcessingCache.
func (ProcessingCache) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("cache_id").
			Unique().
			Immutable().
			Positive(),
		field.String("packet_url").
			Unique(),
		field.String("content_hash").
			Optional(),
		field.String("method").
			Comment("Processing method that produced the cached result"),
		field.Int("elapsed_ms").
			Default(0),
		field.Int("hit_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_accessed_at").
			Default(time.Now),
	}
}
