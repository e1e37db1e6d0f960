package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CouncilMember holds the schema definition for a per-city elected official.
type CouncilMember struct {
	ent.Schema
}

// Fields of the CouncilMember.
func (CouncilMember) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("member_id").
			Unique().
			Immutable().
			Comment("hash(banana + normalized_name)"),
		field.String("banana").
			Immutable(),
		field.String("name"),
		field.String("normalized_name"),
		field.String("title").
			Optional().
			Comment("Role, e.g. 'Mayor', 'Council Member'"),
		field.String("district").
			Optional(),
		field.Enum("status").
			Values("active", "inactive").
			Default("active"),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen").
			Default(time.Now),
		field.Int("sponsorship_count").
			Default(0),
		field.Int("vote_count").
			Default(0),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the CouncilMember.
func (CouncilMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("city", City.Type).
			Ref("council_members").
			Field("banana").
			Unique().
			Required().
			Immutable(),
		edge.To("votes", Vote.Type),
		edge.To("memberships", CommitteeMembership.Type),
	}
}

// Indexes of the CouncilMember.
func (CouncilMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("banana", "normalized_name").
			Unique(),
	}
}
