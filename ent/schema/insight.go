package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Insight holds the schema definition for the Insight entity.
// A structured analytical finding produced by the data-science team.
type Insight struct {
	ent.Schema
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("insight_id").
			Unique().
			Immutable(),
		field.String("category").
			Comment("Classification tag (energy, comfort, anomaly, ...)"),
		field.String("title"),
		field.Text("description"),
		field.JSON("evidence", map[string]interface{}{}).
			Optional(),
		field.Float("confidence").
			Default(0).
			Min(0).
			Max(1),
		field.Enum("impact").
			Values("low", "medium", "high", "critical").
			Default("low"),
		field.JSON("entity_ids", []string{}).
			Optional(),
		field.String("script_path").
			Optional().
			Nillable(),
		field.Text("script_output").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "reviewed", "actioned", "dismissed").
			Default("pending"),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.String("schedule_id").
			Optional().
			Nillable().
			Comment("Originating schedule, for post-run notification gathering"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("impact"),
		index.Fields("schedule_id", "created_at"),
		index.Fields("status", "created_at"),
	}
}
