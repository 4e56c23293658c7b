package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AppSettings holds the schema definition for the AppSettings entity.
// A process-wide singleton row (id = "app") grouping the four mutable
// settings sections. Missing keys fall back to compiled-in defaults;
// reads always return defaults merged with overrides.
type AppSettings struct {
	ent.Schema
}

// Fields of the AppSettings.
func (AppSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("settings_id").
			Unique().
			Immutable(),
		field.JSON("chat", map[string]interface{}{}).
			Optional(),
		field.JSON("dashboard", map[string]interface{}{}).
			Optional(),
		field.JSON("data_science", map[string]interface{}{}).
			Optional(),
		field.JSON("notifications", map[string]interface{}{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
