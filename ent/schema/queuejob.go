package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueJob holds the schema definition for the persistent processing queue.
// source_url is the idempotency key: at most one non-terminal job per URL.
type QueueJob struct {
	ent.Schema
}

// Fields of the QueueJob.
func (QueueJob) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("job_id").
			Unique().
			Immutable().
			Positive(),
		field.String("source_url").
			Unique(),
		field.String("meeting_id").
			Optional(),
		field.String("banana").
			Optional(),
		field.String("job_type").
			Comment("e.g. 'process_meeting'"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "dead_letter").
			Default("pending"),
		field.Int("priority").
			Default(0).
			Comment("Higher first; FIFO within equal priority"),
		field.Int("retry_count").
			Default(0),
		field.Time("not_before").
			Optional().
			Nillable().
			Comment("Retry backoff schedule; claimable only once passed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("failed_at").
			Optional().
			Nillable(),
		field.String("worker_id").
			Optional().
			Comment("Worker that holds the current lease"),
		field.String("error_message").
			Optional(),
		field.JSON("processing_metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the QueueJob.
func (QueueJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "priority", "created_at"),
		index.Fields("meeting_id"),
	}
}
