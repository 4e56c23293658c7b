// Code generated by ent, DO NOT EDIT.

package analysisreport

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisreport type in the database.
	Label = "analysis_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "report_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAnalysisType holds the string denoting the analysis_type field in the database.
	FieldAnalysisType = "analysis_type"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldInsightIds holds the string denoting the insight_ids field in the database.
	FieldInsightIds = "insight_ids"
	// FieldArtifacts holds the string denoting the artifacts field in the database.
	FieldArtifacts = "artifacts"
	// FieldCommunicationLog holds the string denoting the communication_log field in the database.
	FieldCommunicationLog = "communication_log"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the analysisreport in the database.
	Table = "analysis_reports"
)

// Columns holds all SQL columns for analysisreport fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldAnalysisType,
	FieldDepth,
	FieldStrategy,
	FieldStatus,
	FieldSummary,
	FieldInsightIds,
	FieldArtifacts,
	FieldCommunicationLog,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Depth defines the type for the "depth" enum field.
type Depth string

// DepthStandard is the default value of the Depth enum.
const DefaultDepth = DepthStandard

// Depth values.
const (
	DepthQuick    Depth = "quick"
	DepthStandard Depth = "standard"
	DepthDeep     Depth = "deep"
)

func (d Depth) String() string {
	return string(d)
}

// DepthValidator is a validator for the "depth" field enum values. It is called by the builders before save.
func DepthValidator(d Depth) error {
	switch d {
	case DepthQuick, DepthStandard, DepthDeep:
		return nil
	default:
		return fmt.Errorf("analysisreport: invalid enum value for depth field: %q", d)
	}
}

// Strategy defines the type for the "strategy" enum field.
type Strategy string

// StrategyParallel is the default value of the Strategy enum.
const DefaultStrategy = StrategyParallel

// Strategy values.
const (
	StrategyParallel Strategy = "parallel"
	StrategyTeamwork Strategy = "teamwork"
)

func (s Strategy) String() string {
	return string(s)
}

// StrategyValidator is a validator for the "strategy" field enum values. It is called by the builders before save.
func StrategyValidator(s Strategy) error {
	switch s {
	case StrategyParallel, StrategyTeamwork:
		return nil
	default:
		return fmt.Errorf("analysisreport: invalid enum value for strategy field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("analysisreport: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AnalysisReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAnalysisType orders the results by the analysis_type field.
func ByAnalysisType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisType, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
