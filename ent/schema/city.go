package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// City holds the schema definition for the City entity.
// Cities are created administratively; the sync pipeline only reads them.
type City struct {
	ent.Schema
}

// Fields of the City.
func (City) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("banana").
			Unique().
			Immutable().
			Comment("Canonical city handle: slug + state, e.g. 'paloaltoCA'"),
		field.String("name").
			Comment("Display name, e.g. 'Palo Alto'"),
		field.String("state").
			MaxLen(2),
		field.String("vendor").
			Comment("Civic-tech platform tag, e.g. 'primegov'"),
		field.String("vendor_slug").
			Comment("Vendor-local identifier for this city"),
		field.String("timezone").
			Default("America/Los_Angeles"),
		field.String("county").
			Optional(),
		field.Enum("status").
			Values("active", "paused", "retired").
			Default("active"),
		field.Int("population").
			Optional().
			Nillable(),
		field.JSON("geometry", map[string]interface{}{}).
			Optional(),
		field.Int("sync_error_count").
			Default(0).
			Comment("Consecutive failed sync cycles"),
		field.Time("last_synced_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the City.
func (City) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("meetings", Meeting.Type),
		edge.To("matters", Matter.Type),
		edge.To("council_members", CouncilMember.Type),
		edge.To("committees", Committee.Type),
	}
}

// Indexes of the City.
func (City) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor", "status"),
	}
}
