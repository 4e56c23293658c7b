package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Proposal holds the schema definition for the Proposal entity.
// A declarative intent to mutate the home-automation controller,
// gated by the human approval lifecycle.
type Proposal struct {
	ent.Schema
}

// Fields of the Proposal.
func (Proposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("proposal_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable().
			Comment("Originating conversation; proposal outlives it"),
		field.Enum("kind").
			Values("automation", "entity_command", "script", "scene"),
		field.JSON("body", map[string]interface{}{}).
			Comment("Trigger+conditions+actions for automations, service-call tuple for entity commands"),
		field.Enum("status").
			Values("draft", "proposed", "approved", "rejected", "deployed", "rolled_back", "archived").
			Default("draft"),
		field.String("title").
			Optional(),
		field.String("ha_automation_id").
			Optional().
			Nillable().
			Comment("Controller-assigned identifier, set on deploy"),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.String("rejection_reason").
			Optional().
			Nillable(),
		field.Text("original_yaml").
			Optional().
			Nillable().
			Comment("Canonical rendered form, kept for revise-and-resubmit"),
		field.JSON("review_notes", []string{}).
			Optional(),
		field.Bool("ha_disabled").
			Optional().
			Nillable().
			Comment("Whether the controller artefact was disabled during rollback"),
		field.String("ha_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("proposed_at").Optional().Nillable(),
		field.Time("approved_at").Optional().Nillable(),
		field.Time("rejected_at").Optional().Nillable(),
		field.Time("deployed_at").Optional().Nillable(),
		field.Time("rolled_back_at").Optional().Nillable(),
		field.Time("archived_at").Optional().Nillable(),
	}
}

// Indexes of the Proposal.
func (Proposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("conversation_id"),
		index.Fields("status", "created_at"),
	}
}
