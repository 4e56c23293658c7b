// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/insightschedule"
)

// InsightSchedule is the model entity for the InsightSchedule schema.
type InsightSchedule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// AnalysisType holds the value of the "analysis_type" field.
	AnalysisType string `json:"analysis_type,omitempty"`
	// Optional entity scope; empty = whole home
	EntityIds []string `json:"entity_ids,omitempty"`
	// LookbackHours holds the value of the "lookback_hours" field.
	LookbackHours int `json:"lookback_hours,omitempty"`
	// Options holds the value of the "options" field.
	Options map[string]interface{} `json:"options,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger insightschedule.Trigger `json:"trigger,omitempty"`
	// CronExpression holds the value of the "cron_expression" field.
	CronExpression *string `json:"cron_expression,omitempty"`
	// Webhook trigger only; null = catch-all
	EventLabel *string `json:"event_label,omitempty"`
	// MatchFilter holds the value of the "match_filter" field.
	MatchFilter map[string]interface{} `json:"match_filter,omitempty"`
	// Depth holds the value of the "depth" field.
	Depth insightschedule.Depth `json:"depth,omitempty"`
	// Strategy holds the value of the "strategy" field.
	Strategy insightschedule.Strategy `json:"strategy,omitempty"`
	// TimeoutSeconds holds the value of the "timeout_seconds" field.
	TimeoutSeconds *int `json:"timeout_seconds,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	// LastResult holds the value of the "last_result" field.
	LastResult *insightschedule.LastResult `json:"last_result,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// RunCount holds the value of the "run_count" field.
	RunCount int `json:"run_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InsightSchedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insightschedule.FieldEntityIds, insightschedule.FieldOptions, insightschedule.FieldMatchFilter:
			values[i] = new([]byte)
		case insightschedule.FieldEnabled:
			values[i] = new(sql.NullBool)
		case insightschedule.FieldLookbackHours, insightschedule.FieldTimeoutSeconds, insightschedule.FieldRunCount:
			values[i] = new(sql.NullInt64)
		case insightschedule.FieldID, insightschedule.FieldLabel, insightschedule.FieldAnalysisType, insightschedule.FieldTrigger, insightschedule.FieldCronExpression, insightschedule.FieldEventLabel, insightschedule.FieldDepth, insightschedule.FieldStrategy, insightschedule.FieldLastResult, insightschedule.FieldLastError:
			values[i] = new(sql.NullString)
		case insightschedule.FieldLastRunAt, insightschedule.FieldCreatedAt, insightschedule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InsightSchedule fields.
func (_m *InsightSchedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insightschedule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case insightschedule.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case insightschedule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case insightschedule.FieldAnalysisType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_type", values[i])
			} else if value.Valid {
				_m.AnalysisType = value.String
			}
		case insightschedule.FieldEntityIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entity_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EntityIds); err != nil {
					return fmt.Errorf("unmarshal field entity_ids: %w", err)
				}
			}
		case insightschedule.FieldLookbackHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lookback_hours", values[i])
			} else if value.Valid {
				_m.LookbackHours = int(value.Int64)
			}
		case insightschedule.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case insightschedule.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = insightschedule.Trigger(value.String)
			}
		case insightschedule.FieldCronExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron_expression", values[i])
			} else if value.Valid {
				_m.CronExpression = new(string)
				*_m.CronExpression = value.String
			}
		case insightschedule.FieldEventLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_label", values[i])
			} else if value.Valid {
				_m.EventLabel = new(string)
				*_m.EventLabel = value.String
			}
		case insightschedule.FieldMatchFilter:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field match_filter", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MatchFilter); err != nil {
					return fmt.Errorf("unmarshal field match_filter: %w", err)
				}
			}
		case insightschedule.FieldDepth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = insightschedule.Depth(value.String)
			}
		case insightschedule.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = insightschedule.Strategy(value.String)
			}
		case insightschedule.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = new(int)
				*_m.TimeoutSeconds = int(value.Int64)
			}
		case insightschedule.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(time.Time)
				*_m.LastRunAt = value.Time
			}
		case insightschedule.FieldLastResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_result", values[i])
			} else if value.Valid {
				_m.LastResult = new(insightschedule.LastResult)
				*_m.LastResult = insightschedule.LastResult(value.String)
			}
		case insightschedule.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case insightschedule.FieldRunCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field run_count", values[i])
			} else if value.Valid {
				_m.RunCount = int(value.Int64)
			}
		case insightschedule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case insightschedule.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InsightSchedule.
// This includes values selected through modifiers, order, etc.
func (_m *InsightSchedule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InsightSchedule.
// Note that you need to call InsightSchedule.Unwrap() before calling this method if this InsightSchedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InsightSchedule) Update() *InsightScheduleUpdateOne {
	return NewInsightScheduleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InsightSchedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InsightSchedule) Unwrap() *InsightSchedule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InsightSchedule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InsightSchedule) String() string {
	var builder strings.Builder
	builder.WriteString("InsightSchedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("analysis_type=")
	builder.WriteString(_m.AnalysisType)
	builder.WriteString(", ")
	builder.WriteString("entity_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityIds))
	builder.WriteString(", ")
	builder.WriteString("lookback_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.LookbackHours))
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trigger))
	builder.WriteString(", ")
	if v := _m.CronExpression; v != nil {
		builder.WriteString("cron_expression=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EventLabel; v != nil {
		builder.WriteString("event_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("match_filter=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchFilter))
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strategy))
	builder.WriteString(", ")
	if v := _m.TimeoutSeconds; v != nil {
		builder.WriteString("timeout_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastResult; v != nil {
		builder.WriteString("last_result=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("run_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InsightSchedules is a parsable slice of InsightSchedule.
type InsightSchedules []*InsightSchedule
