package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Committee holds the schema definition for a per-city legislative body.
type Committee struct {
	ent.Schema
}

// Fields of the Committee.
func (Committee) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("committee_id").
			Unique().
			Immutable().
			Comment("banana + '_comm_' + short_hash(normalized_name)"),
		field.String("banana").
			Immutable(),
		field.String("name"),
		field.String("normalized_name"),
		field.String("vendor_body_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Committee.
func (Committee) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("city", City.Type).
			Ref("committees").
			Field("banana").
			Unique().
			Required().
			Immutable(),
		edge.To("meetings", Meeting.Type),
		edge.To("memberships", CommitteeMembership.Type),
	}
}

// Indexes of the Committee.
func (Committee) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("banana", "normalized_name").
			Unique(),
	}
}
