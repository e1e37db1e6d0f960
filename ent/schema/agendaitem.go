package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/Engagic/engagic-sub004/pkg/models"
)

// AgendaItem holds the schema definition for the AgendaItem entity.
type AgendaItem struct {
	ent.Schema
}

// Fields of the AgendaItem.
func (AgendaItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable().
			Comment("meeting_id + '_' + short_hash(sequence + title)"),
		field.String("meeting_id").
			Immutable(),
		field.String("title"),
		field.Int("sequence"),
		field.JSON("attachments", []models.Attachment{}).
			Optional(),
		field.String("attachment_hash").
			Optional().
			Comment("sha256 over the sorted attachment URL set"),
		field.String("matter_id").
			Optional().
			Nillable().
			Comment("Weak reference to Matter; lookup, not ownership"),
		field.String("matter_file").
			Optional(),
		field.String("matter_type").
			Optional(),
		field.String("agenda_number").
			Optional(),
		field.JSON("sponsors", []string{}).
			Optional(),
		field.Text("summary").
			Optional().
			Nillable(),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Canonical topics, 0-3"),
		field.String("processing_method").
			Optional().
			Comment("e.g. 'llm', 'matter_cache_hit', 'no_attachments'"),
		field.Time("summarized_at").
			Optional().
			Nillable(),
		field.String("extraction_error").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgendaItem.
func (AgendaItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("meeting", Meeting.Type).
			Ref("items").
			Field("meeting_id").
			Unique().
			Required().
			Immutable(),
		edge.To("appearances", MatterAppearance.Type),
	}
}

// Indexes of the AgendaItem.
func (AgendaItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id", "sequence"),
		index.Fields("matter_id"),
	}
}
