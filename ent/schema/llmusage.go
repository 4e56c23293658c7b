package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMUsage holds the schema definition for the LLMUsage entity.
// One row per LLM call: token counts and latency, linked to the
// request trace. High-volume; subject to the retention job.
type LLMUsage struct {
	ent.Schema
}

// Fields of the LLMUsage.
func (LLMUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Optional(),
		field.String("trace_id").
			Optional(),
		field.String("span_kind").
			Default("llm").
			Comment("llm, tool or rpc"),
		field.String("agent_name").
			Optional(),
		field.String("model").
			Optional(),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Int("latency_ms").
			Default(0),
		field.Bool("is_error").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LLMUsage.
func (LLMUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trace_id"),
		index.Fields("created_at"),
		index.Fields("conversation_id", "created_at"),
	}
}
