package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisReport holds the schema definition for the AnalysisReport entity.
// The record of one analysis run. Status is running when created and moves
// exactly once to completed or failed; never mutated afterwards.
type AnalysisReport struct {
	ent.Schema
}

// Fields of the AnalysisReport.
func (AnalysisReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.String("analysis_type"),
		field.Enum("depth").
			Values("quick", "standard", "deep").
			Default("standard"),
		field.Enum("strategy").
			Values("parallel", "teamwork").
			Default("parallel"),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.JSON("insight_ids", []string{}).
			Optional().
			Comment("Weak references; an insight can be deleted independently"),
		field.JSON("artifacts", []string{}).
			Optional(),
		field.JSON("communication_log", []map[string]interface{}{}).
			Optional().
			Comment("Ordered {from_agent, to_agent, kind, body} entries"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the AnalysisReport.
func (AnalysisReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("analysis_type", "created_at"),
		index.Fields("created_at"),
	}
}
