package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/Engagic/engagic-sub004/pkg/models"
)

// Meeting holds the schema definition for the Meeting entity.
type Meeting struct {
	ent.Schema
}

// Fields of the Meeting.
func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("meeting_id").
			Unique().
			Immutable().
			Comment("Canonical id: banana + '_' + md5(vendor_id)[0:8]"),
		field.String("banana").
			Immutable(),
		field.String("vendor_id").
			Comment("Vendor-native meeting identifier; not globally unique"),
		field.String("title"),
		field.Time("date").
			Optional().
			Nillable().
			Comment("null = date TBD"),
		field.String("agenda_url").
			Optional(),
		field.String("packet_url").
			Optional(),
		field.String("committee_id").
			Optional().
			Nillable(),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("Populated only for the monolithic processing path"),
		field.JSON("participation", &models.Participation{}).
			Optional(),
		field.Enum("status").
			Values("cancelled", "postponed", "deferred", "revised", "rescheduled").
			Optional().
			Nillable(),
		field.Enum("processing_status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("processing_method").
			Optional().
			Comment("e.g. 'item_level_12_items', 'monolithic'"),
		field.Int("processing_time_ms").
			Optional().
			Nillable(),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Sorted union of child item topics"),
		field.String("attachment_fingerprint").
			Optional().
			Comment("Fingerprint over all item attachment hashes, for re-enqueue detection"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Meeting.
func (Meeting) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("city", City.Type).
			Ref("meetings").
			Field("banana").
			Unique().
			Required().
			Immutable(),
		edge.From("committee", Committee.Type).
			Ref("meetings").
			Field("committee_id").
			Unique(),
		edge.To("items", AgendaItem.Type),
		edge.To("appearances", MatterAppearance.Type),
	}
}

// Indexes of the Meeting.
func (Meeting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("banana", "date"),
		index.Fields("processing_status"),
	}
}
