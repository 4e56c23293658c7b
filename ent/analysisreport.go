// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/analysisreport"
)

// AnalysisReport is the model entity for the AnalysisReport schema.
type AnalysisReport struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// AnalysisType holds the value of the "analysis_type" field.
	AnalysisType string `json:"analysis_type,omitempty"`
	// Depth holds the value of the "depth" field.
	Depth analysisreport.Depth `json:"depth,omitempty"`
	// Strategy holds the value of the "strategy" field.
	Strategy analysisreport.Strategy `json:"strategy,omitempty"`
	// Status holds the value of the "status" field.
	Status analysisreport.Status `json:"status,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// Weak references; an insight can be deleted independently
	InsightIds []string `json:"insight_ids,omitempty"`
	// Artifacts holds the value of the "artifacts" field.
	Artifacts []string `json:"artifacts,omitempty"`
	// Ordered {from_agent, to_agent, kind, body} entries
	CommunicationLog []map[string]interface{} `json:"communication_log,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisreport.FieldInsightIds, analysisreport.FieldArtifacts, analysisreport.FieldCommunicationLog:
			values[i] = new([]byte)
		case analysisreport.FieldID, analysisreport.FieldTitle, analysisreport.FieldAnalysisType, analysisreport.FieldDepth, analysisreport.FieldStrategy, analysisreport.FieldStatus, analysisreport.FieldSummary:
			values[i] = new(sql.NullString)
		case analysisreport.FieldCreatedAt, analysisreport.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisReport fields.
func (_m *AnalysisReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisreport.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysisreport.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case analysisreport.FieldAnalysisType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_type", values[i])
			} else if value.Valid {
				_m.AnalysisType = value.String
			}
		case analysisreport.FieldDepth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = analysisreport.Depth(value.String)
			}
		case analysisreport.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = analysisreport.Strategy(value.String)
			}
		case analysisreport.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = analysisreport.Status(value.String)
			}
		case analysisreport.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case analysisreport.FieldInsightIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field insight_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InsightIds); err != nil {
					return fmt.Errorf("unmarshal field insight_ids: %w", err)
				}
			}
		case analysisreport.FieldArtifacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field artifacts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Artifacts); err != nil {
					return fmt.Errorf("unmarshal field artifacts: %w", err)
				}
			}
		case analysisreport.FieldCommunicationLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field communication_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CommunicationLog); err != nil {
					return fmt.Errorf("unmarshal field communication_log: %w", err)
				}
			}
		case analysisreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysisreport.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisReport.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisReport.
// Note that you need to call AnalysisReport.Unwrap() before calling this method if this AnalysisReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisReport) Update() *AnalysisReportUpdateOne {
	return NewAnalysisReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisReport) Unwrap() *AnalysisReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisReport) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("analysis_type=")
	builder.WriteString(_m.AnalysisType)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strategy))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("insight_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsightIds))
	builder.WriteString(", ")
	builder.WriteString("artifacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Artifacts))
	builder.WriteString(", ")
	builder.WriteString("communication_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommunicationLog))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisReports is a parsable slice of AnalysisReport.
type AnalysisReports []*AnalysisReport
