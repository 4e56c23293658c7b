package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InsightSchedule holds the schema definition for the InsightSchedule entity.
// A persisted declaration that an analysis should run on a cron cadence or
// in response to a controller event.
//
// Invariant (enforced in the service layer): cron_expression is non-null
// iff trigger = cron; event_label is non-null iff trigger = webhook.
type InsightSchedule struct {
	ent.Schema
}

// Fields of the InsightSchedule.
func (InsightSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("schedule_id").
			Unique().
			Immutable(),
		field.String("label"),
		field.Bool("enabled").
			Default(true),
		field.String("analysis_type"),
		field.JSON("entity_ids", []string{}).
			Optional().
			Comment("Optional entity scope; empty = whole home"),
		field.Int("lookback_hours").
			Default(24).
			Min(1).
			Max(8760),
		field.JSON("options", map[string]interface{}{}).
			Optional(),
		field.Enum("trigger").
			Values("cron", "webhook", "event").
			Default("cron"),
		field.String("cron_expression").
			Optional().
			Nillable(),
		field.String("event_label").
			Optional().
			Nillable().
			Comment("Webhook trigger only; null = catch-all"),
		field.JSON("match_filter", map[string]interface{}{}).
			Optional(),
		field.Enum("depth").
			Values("quick", "standard", "deep").
			Default("standard"),
		field.Enum("strategy").
			Values("parallel", "teamwork").
			Default("parallel"),
		field.Int("timeout_seconds").
			Optional().
			Nillable(),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Enum("last_result").
			Values("success", "failed", "timeout").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Int("run_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the InsightSchedule.
func (InsightSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "trigger"),
		index.Fields("event_label"),
	}
}
