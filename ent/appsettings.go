// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/appsettings"
)

// AppSettings is the model entity for the AppSettings schema.
type AppSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Chat holds the value of the "chat" field.
	Chat map[string]interface{} `json:"chat,omitempty"`
	// Dashboard holds the value of the "dashboard" field.
	Dashboard map[string]interface{} `json:"dashboard,omitempty"`
	// DataScience holds the value of the "data_science" field.
	DataScience map[string]interface{} `json:"data_science,omitempty"`
	// Notifications holds the value of the "notifications" field.
	Notifications map[string]interface{} `json:"notifications,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appsettings.FieldChat, appsettings.FieldDashboard, appsettings.FieldDataScience, appsettings.FieldNotifications:
			values[i] = new([]byte)
		case appsettings.FieldID:
			values[i] = new(sql.NullString)
		case appsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppSettings fields.
func (_m *AppSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appsettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case appsettings.FieldChat:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chat", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Chat); err != nil {
					return fmt.Errorf("unmarshal field chat: %w", err)
				}
			}
		case appsettings.FieldDashboard:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dashboard", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dashboard); err != nil {
					return fmt.Errorf("unmarshal field dashboard: %w", err)
				}
			}
		case appsettings.FieldDataScience:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data_science", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DataScience); err != nil {
					return fmt.Errorf("unmarshal field data_science: %w", err)
				}
			}
		case appsettings.FieldNotifications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notifications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Notifications); err != nil {
					return fmt.Errorf("unmarshal field notifications: %w", err)
				}
			}
		case appsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppSettings.
// This includes values selected through modifiers, order, etc.
func (_m *AppSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AppSettings.
// Note that you need to call AppSettings.Unwrap() before calling this method if this AppSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppSettings) Update() *AppSettingsUpdateOne {
	return NewAppSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppSettings) Unwrap() *AppSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AppSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppSettings) String() string {
	var builder strings.Builder
	builder.WriteString("AppSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat=")
	builder.WriteString(fmt.Sprintf("%v", _m.Chat))
	builder.WriteString(", ")
	builder.WriteString("dashboard=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dashboard))
	builder.WriteString(", ")
	builder.WriteString("data_science=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataScience))
	builder.WriteString(", ")
	builder.WriteString("notifications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Notifications))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AppSettingsSlice is a parsable slice of AppSettings.
type AppSettingsSlice []*AppSettings
