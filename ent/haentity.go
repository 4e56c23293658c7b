// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/haentity"
)

// HAEntity is the model entity for the HAEntity schema.
type HAEntity struct {
	config `json:"-"`
	// ID of the ent.
	// Controller entity id, e.g. light.kitchen
	ID string `json:"id,omitempty"`
	// Prefix of the entity id (light, sensor, climate, ...)
	Domain string `json:"domain,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Attributes holds the value of the "attributes" field.
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	// FriendlyName holds the value of the "friendly_name" field.
	FriendlyName string `json:"friendly_name,omitempty"`
	// Controller-reported change time
	LastChanged *time.Time `json:"last_changed,omitempty"`
	// LastSynced holds the value of the "last_synced" field.
	LastSynced   time.Time `json:"last_synced,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HAEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case haentity.FieldAttributes:
			values[i] = new([]byte)
		case haentity.FieldID, haentity.FieldDomain, haentity.FieldState, haentity.FieldFriendlyName:
			values[i] = new(sql.NullString)
		case haentity.FieldLastChanged, haentity.FieldLastSynced:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HAEntity fields.
func (_m *HAEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case haentity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case haentity.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case haentity.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case haentity.FieldAttributes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attributes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attributes); err != nil {
					return fmt.Errorf("unmarshal field attributes: %w", err)
				}
			}
		case haentity.FieldFriendlyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field friendly_name", values[i])
			} else if value.Valid {
				_m.FriendlyName = value.String
			}
		case haentity.FieldLastChanged:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_changed", values[i])
			} else if value.Valid {
				_m.LastChanged = new(time.Time)
				*_m.LastChanged = value.Time
			}
		case haentity.FieldLastSynced:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_synced", values[i])
			} else if value.Valid {
				_m.LastSynced = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HAEntity.
// This includes values selected through modifiers, order, etc.
func (_m *HAEntity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HAEntity.
// Note that you need to call HAEntity.Unwrap() before calling this method if this HAEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HAEntity) Update() *HAEntityUpdateOne {
	return NewHAEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HAEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HAEntity) Unwrap() *HAEntity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HAEntity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HAEntity) String() string {
	var builder strings.Builder
	builder.WriteString("HAEntity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("attributes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attributes))
	builder.WriteString(", ")
	builder.WriteString("friendly_name=")
	builder.WriteString(_m.FriendlyName)
	builder.WriteString(", ")
	if v := _m.LastChanged; v != nil {
		builder.WriteString("last_changed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_synced=")
	builder.WriteString(_m.LastSynced.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HAEntities is a parsable slice of HAEntity.
type HAEntities []*HAEntity
