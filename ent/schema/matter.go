package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/Engagic/engagic-sub004/pkg/models"
)

// Matter holds the schema definition for the Matter entity, a canonical
// legislative item that can appear across many meetings and carries one
// canonical summary.
type Matter struct {
	ent.Schema
}

// Fields of the Matter.
func (Matter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("matter_id").
			Unique().
			Immutable().
			Comment("Derived from (banana, matter_file | vendor matter_id | normalized title)"),
		field.String("banana").
			Immutable(),
		field.String("matter_file").
			Optional().
			Comment("e.g. 'BL2025-1098'"),
		field.String("matter_type").
			Optional().
			Comment("e.g. 'Ordinance', 'Resolution'"),
		field.String("title"),
		field.JSON("sponsors", []string{}).
			Optional(),
		field.Text("canonical_summary").
			Optional().
			Nillable(),
		field.JSON("canonical_topics", []string{}).
			Optional(),
		field.JSON("attachments", []models.Attachment{}).
			Optional().
			Comment("Canonical attachment snapshot from the latest appearance"),
		field.String("attachment_hash").
			Optional().
			Comment("Hash the canonical summary was produced from"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen").
			Default(time.Now),
		field.Int("appearance_count").
			Default(0),
		field.Enum("status").
			Values("active", "passed", "failed", "tabled", "withdrawn", "referred", "amended", "vetoed", "enacted").
			Default("active"),
		field.Time("final_vote_date").
			Optional().
			Nillable(),
		field.Float("quality_score").
			Optional().
			Nillable(),
	}
}

// Edges of the Matter.
func (Matter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("city", City.Type).
			Ref("matters").
			Field("banana").
			Unique().
			Required().
			Immutable(),
		edge.To("appearances", MatterAppearance.Type),
		edge.To("votes", Vote.Type),
	}
}

// Indexes of the Matter.
func (Matter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("banana", "matter_file"),
		index.Fields("banana", "last_seen"),
	}
}
