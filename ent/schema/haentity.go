package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HAEntity holds the schema definition for the HAEntity entity.
// Latest observed snapshot of a controller entity, written by the
// event debouncer and the periodic discovery sync. Intermediate states
// are intentionally dropped; this is snapshot sync, not a change log.
type HAEntity struct {
	ent.Schema
}

// Fields of the HAEntity.
func (HAEntity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable().
			Comment("Controller entity id, e.g. light.kitchen"),
		field.String("domain").
			Comment("Prefix of the entity id (light, sensor, climate, ...)"),
		field.String("state").
			Default(""),
		field.JSON("attributes", map[string]interface{}{}).
			Optional(),
		field.String("friendly_name").
			Optional(),
		field.Time("last_changed").
			Optional().
			Nillable().
			Comment("Controller-reported change time"),
		field.Time("last_synced").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the HAEntity.
func (HAEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain"),
		index.Fields("last_synced"),
	}
}
