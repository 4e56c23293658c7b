// Code generated by ent, DO NOT EDIT.

package insightschedule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the insightschedule type in the database.
	Label = "insight_schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "schedule_id"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldAnalysisType holds the string denoting the analysis_type field in the database.
	FieldAnalysisType = "analysis_type"
	// FieldEntityIds holds the string denoting the entity_ids field in the database.
	FieldEntityIds = "entity_ids"
	// FieldLookbackHours holds the string denoting the lookback_hours field in the database.
	FieldLookbackHours = "lookback_hours"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldCronExpression holds the string denoting the cron_expression field in the database.
	FieldCronExpression = "cron_expression"
	// FieldEventLabel holds the string denoting the event_label field in the database.
	FieldEventLabel = "event_label"
	// FieldMatchFilter holds the string denoting the match_filter field in the database.
	FieldMatchFilter = "match_filter"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldLastResult holds the string denoting the last_result field in the database.
	FieldLastResult = "last_result"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldRunCount holds the string denoting the run_count field in the database.
	FieldRunCount = "run_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the insightschedule in the database.
	Table = "insight_schedules"
)

// Columns holds all SQL columns for insightschedule fields.
var Columns = []string{
	FieldID,
	FieldLabel,
	FieldEnabled,
	FieldAnalysisType,
	FieldEntityIds,
	FieldLookbackHours,
	FieldOptions,
	FieldTrigger,
	FieldCronExpression,
	FieldEventLabel,
	FieldMatchFilter,
	FieldDepth,
	FieldStrategy,
	FieldTimeoutSeconds,
	FieldLastRunAt,
	FieldLastResult,
	FieldLastError,
	FieldRunCount,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultLookbackHours holds the default value on creation for the "lookback_hours" field.
	DefaultLookbackHours int
	// LookbackHoursValidator is a validator for the "lookback_hours" field. It is called by the builders before save.
	LookbackHoursValidator func(int) error
	// DefaultRunCount holds the default value on creation for the "run_count" field.
	DefaultRunCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Trigger defines the type for the "trigger" enum field.
type Trigger string

// TriggerCron is the default value of the Trigger enum.
const DefaultTrigger = TriggerCron

// Trigger values.
const (
	TriggerCron    Trigger = "cron"
	TriggerWebhook Trigger = "webhook"
	TriggerEvent   Trigger = "event"
)

func (t Trigger) String() string {
	return string(t)
}

// TriggerValidator is a validator for the "trigger" field enum values. It is called by the builders before save.
func TriggerValidator(t Trigger) error {
	switch t {
	case TriggerCron, TriggerWebhook, TriggerEvent:
		return nil
	default:
		return fmt.Errorf("insightschedule: invalid enum value for trigger field: %q", t)
	}
}

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
		return fmt.Errorf("insightschedule: invalid enum value for depth field: %q", d)
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
		return fmt.Errorf("insightschedule: invalid enum value for strategy field: %q", s)
	}
}

// LastResult defines the type for the "last_result" enum field.
type LastResult string

// LastResult values.
const (
	LastResultSuccess LastResult = "success"
	LastResultFailed  LastResult = "failed"
	LastResultTimeout LastResult = "timeout"
)

func (lr LastResult) String() string {
	return string(lr)
}

// LastResultValidator is a validator for the "last_result" field enum values. It is called by the builders before save.
func LastResultValidator(lr LastResult) error {
	switch lr {
	case LastResultSuccess, LastResultFailed, LastResultTimeout:
		return nil
	default:
		return fmt.Errorf("insightschedule: invalid enum value for last_result field: %q", lr)
	}
}

// OrderOption defines the ordering options for the InsightSchedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByAnalysisType orders the results by the analysis_type field.
func ByAnalysisType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisType, opts...).ToFunc()
}

// ByLookbackHours orders the results by the lookback_hours field.
func ByLookbackHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLookbackHours, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByCronExpression orders the results by the cron_expression field.
func ByCronExpression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronExpression, opts...).ToFunc()
}

// ByEventLabel orders the results by the event_label field.
func ByEventLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventLabel, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByLastResult orders the results by the last_result field.
func ByLastResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResult, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByRunCount orders the results by the run_count field.
func ByRunCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
