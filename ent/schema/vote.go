package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vote records a single council member's vote on a matter at a meeting.
type Vote struct {
	ent.Schema
}

// Fields of the Vote.
func (Vote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("vote_id").
			Unique().
			Immutable(),
		field.String("member_id").
			Immutable(),
		field.String("matter_id").
			Immutable(),
		field.String("meeting_id").
			Immutable(),
		field.Enum("value").
			Values("yes", "no", "abstain", "absent", "present", "recused", "not_voting"),
		field.Time("vote_date").
			Optional().
			Nillable(),
		field.Int("sequence").
			Optional(),
	}
}

// Edges of the Vote.
func (Vote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("member", CouncilMember.Type).
			Ref("votes").
			Field("member_id").
			Unique().
			Required().
			Immutable(),
		edge.From("matter", Matter.Type).
			Ref("votes").
			Field("matter_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Vote.
func (Vote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "matter_id", "meeting_id").
			Unique(),
		index.Fields("matter_id"),
	}
}
