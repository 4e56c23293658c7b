// Code generated by ent, DO NOT EDIT.

package insightschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContainsFold(FieldID, id))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldEnabled, v))
}

// AnalysisType applies equality check predicate on the "analysis_type" field. It's identical to AnalysisTypeEQ.
func AnalysisType(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldAnalysisType, v))
}

// LookbackHours applies equality check predicate on the "lookback_hours" field. It's identical to LookbackHoursEQ.
func LookbackHours(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldLookbackHours, v))
}

// CronExpression applies equality check predicate on the "cron_expression" field. It's identical to CronExpressionEQ.
func CronExpression(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldCronExpression, v))
}

// EventLabel applies equality check predicate on the "event_label" field. It's identical to EventLabelEQ.
func EventLabel(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldEventLabel, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldLastRunAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldLastError, v))
}

// RunCount applies equality check predicate on the "run_count" field. It's identical to RunCountEQ.
func RunCount(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldRunCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContainsFold(FieldLabel, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldEnabled, v))
}

// AnalysisTypeEQ applies the EQ predicate on the "analysis_type" field.
func AnalysisTypeEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldAnalysisType, v))
}

// AnalysisTypeNEQ applies the NEQ predicate on the "analysis_type" field.
func AnalysisTypeNEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldAnalysisType, v))
}

// AnalysisTypeIn applies the In predicate on the "analysis_type" field.
func AnalysisTypeIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldAnalysisType, vs...))
}

// AnalysisTypeNotIn applies the NotIn predicate on the "analysis_type" field.
func AnalysisTypeNotIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldAnalysisType, vs...))
}

// AnalysisTypeGT applies the GT predicate on the "analysis_type" field.
func AnalysisTypeGT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldAnalysisType, v))
}

// AnalysisTypeGTE applies the GTE predicate on the "analysis_type" field.
func AnalysisTypeGTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldAnalysisType, v))
}

// AnalysisTypeLT applies the LT predicate on the "analysis_type" field.
func AnalysisTypeLT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldAnalysisType, v))
}

// AnalysisTypeLTE applies the LTE predicate on the "analysis_type" field.
func AnalysisTypeLTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldAnalysisType, v))
}

// AnalysisTypeContains applies the Contains predicate on the "analysis_type" field.
func AnalysisTypeContains(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContains(FieldAnalysisType, v))
}

// AnalysisTypeHasPrefix applies the HasPrefix predicate on the "analysis_type" field.
func AnalysisTypeHasPrefix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasPrefix(FieldAnalysisType, v))
}

// AnalysisTypeHasSuffix applies the HasSuffix predicate on the "analysis_type" field.
func AnalysisTypeHasSuffix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasSuffix(FieldAnalysisType, v))
}

// AnalysisTypeEqualFold applies the EqualFold predicate on the "analysis_type" field.
func AnalysisTypeEqualFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEqualFold(FieldAnalysisType, v))
}

// AnalysisTypeContainsFold applies the ContainsFold predicate on the "analysis_type" field.
func AnalysisTypeContainsFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContainsFold(FieldAnalysisType, v))
}

// EntityIdsIsNil applies the IsNil predicate on the "entity_ids" field.
func EntityIdsIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldEntityIds))
}

// EntityIdsNotNil applies the NotNil predicate on the "entity_ids" field.
func EntityIdsNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldEntityIds))
}

// LookbackHoursEQ applies the EQ predicate on the "lookback_hours" field.
func LookbackHoursEQ(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldLookbackHours, v))
}

// LookbackHoursNEQ applies the NEQ predicate on the "lookback_hours" field.
func LookbackHoursNEQ(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldLookbackHours, v))
}

// LookbackHoursIn applies the In predicate on the "lookback_hours" field.
func LookbackHoursIn(vs ...int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldLookbackHours, vs...))
}

// LookbackHoursNotIn applies the NotIn predicate on the "lookback_hours" field.
func LookbackHoursNotIn(vs ...int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldLookbackHours, vs...))
}

// LookbackHoursGT applies the GT predicate on the "lookback_hours" field.
func LookbackHoursGT(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldLookbackHours, v))
}

// LookbackHoursGTE applies the GTE predicate on the "lookback_hours" field.
func LookbackHoursGTE(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldLookbackHours, v))
}

// LookbackHoursLT applies the LT predicate on the "lookback_hours" field.
func LookbackHoursLT(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldLookbackHours, v))
}

// LookbackHoursLTE applies the LTE predicate on the "lookback_hours" field.
func LookbackHoursLTE(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldLookbackHours, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldOptions))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v Trigger) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v Trigger) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...Trigger) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...Trigger) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldTrigger, vs...))
}

// CronExpressionEQ applies the EQ predicate on the "cron_expression" field.
func CronExpressionEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldCronExpression, v))
}

// CronExpressionNEQ applies the NEQ predicate on the "cron_expression" field.
func CronExpressionNEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldCronExpression, v))
}

// CronExpressionIn applies the In predicate on the "cron_expression" field.
func CronExpressionIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldCronExpression, vs...))
}

// CronExpressionNotIn applies the NotIn predicate on the "cron_expression" field.
func CronExpressionNotIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldCronExpression, vs...))
}

// CronExpressionGT applies the GT predicate on the "cron_expression" field.
func CronExpressionGT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldCronExpression, v))
}

// CronExpressionGTE applies the GTE predicate on the "cron_expression" field.
func CronExpressionGTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldCronExpression, v))
}

// CronExpressionLT applies the LT predicate on the "cron_expression" field.
func CronExpressionLT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldCronExpression, v))
}

// CronExpressionLTE applies the LTE predicate on the "cron_expression" field.
func CronExpressionLTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldCronExpression, v))
}

// CronExpressionContains applies the Contains predicate on the "cron_expression" field.
func CronExpressionContains(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContains(FieldCronExpression, v))
}

// CronExpressionHasPrefix applies the HasPrefix predicate on the "cron_expression" field.
func CronExpressionHasPrefix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasPrefix(FieldCronExpression, v))
}

// CronExpressionHasSuffix applies the HasSuffix predicate on the "cron_expression" field.
func CronExpressionHasSuffix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasSuffix(FieldCronExpression, v))
}

// CronExpressionIsNil applies the IsNil predicate on the "cron_expression" field.
func CronExpressionIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldCronExpression))
}

// CronExpressionNotNil applies the NotNil predicate on the "cron_expression" field.
func CronExpressionNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldCronExpression))
}

// CronExpressionEqualFold applies the EqualFold predicate on the "cron_expression" field.
func CronExpressionEqualFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEqualFold(FieldCronExpression, v))
}

// CronExpressionContainsFold applies the ContainsFold predicate on the "cron_expression" field.
func CronExpressionContainsFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContainsFold(FieldCronExpression, v))
}

// EventLabelEQ applies the EQ predicate on the "event_label" field.
func EventLabelEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldEventLabel, v))
}

// EventLabelNEQ applies the NEQ predicate on the "event_label" field.
func EventLabelNEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldEventLabel, v))
}

// EventLabelIn applies the In predicate on the "event_label" field.
func EventLabelIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldEventLabel, vs...))
}

// EventLabelNotIn applies the NotIn predicate on the "event_label" field.
func EventLabelNotIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldEventLabel, vs...))
}

// EventLabelGT applies the GT predicate on the "event_label" field.
func EventLabelGT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldEventLabel, v))
}

// EventLabelGTE applies the GTE predicate on the "event_label" field.
func EventLabelGTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldEventLabel, v))
}

// EventLabelLT applies the LT predicate on the "event_label" field.
func EventLabelLT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldEventLabel, v))
}

// EventLabelLTE applies the LTE predicate on the "event_label" field.
func EventLabelLTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldEventLabel, v))
}

// EventLabelContains applies the Contains predicate on the "event_label" field.
func EventLabelContains(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContains(FieldEventLabel, v))
}

// EventLabelHasPrefix applies the HasPrefix predicate on the "event_label" field.
func EventLabelHasPrefix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasPrefix(FieldEventLabel, v))
}

// EventLabelHasSuffix applies the HasSuffix predicate on the "event_label" field.
func EventLabelHasSuffix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasSuffix(FieldEventLabel, v))
}

// EventLabelIsNil applies the IsNil predicate on the "event_label" field.
func EventLabelIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldEventLabel))
}

// EventLabelNotNil applies the NotNil predicate on the "event_label" field.
func EventLabelNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldEventLabel))
}

// EventLabelEqualFold applies the EqualFold predicate on the "event_label" field.
func EventLabelEqualFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEqualFold(FieldEventLabel, v))
}

// EventLabelContainsFold applies the ContainsFold predicate on the "event_label" field.
func EventLabelContainsFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContainsFold(FieldEventLabel, v))
}

// MatchFilterIsNil applies the IsNil predicate on the "match_filter" field.
func MatchFilterIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldMatchFilter))
}

// MatchFilterNotNil applies the NotNil predicate on the "match_filter" field.
func MatchFilterNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldMatchFilter))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v Depth) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v Depth) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...Depth) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...Depth) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldDepth, vs...))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v Strategy) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v Strategy) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...Strategy) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...Strategy) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldStrategy, vs...))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIsNil applies the IsNil predicate on the "timeout_seconds" field.
func TimeoutSecondsIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldTimeoutSeconds))
}

// TimeoutSecondsNotNil applies the NotNil predicate on the "timeout_seconds" field.
func TimeoutSecondsNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldTimeoutSeconds))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldLastRunAt))
}

// LastResultEQ applies the EQ predicate on the "last_result" field.
func LastResultEQ(v LastResult) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldLastResult, v))
}

// LastResultNEQ applies the NEQ predicate on the "last_result" field.
func LastResultNEQ(v LastResult) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldLastResult, v))
}

// LastResultIn applies the In predicate on the "last_result" field.
func LastResultIn(vs ...LastResult) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldLastResult, vs...))
}

// LastResultNotIn applies the NotIn predicate on the "last_result" field.
func LastResultNotIn(vs ...LastResult) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldLastResult, vs...))
}

// LastResultIsNil applies the IsNil predicate on the "last_result" field.
func LastResultIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldLastResult))
}

// LastResultNotNil applies the NotNil predicate on the "last_result" field.
func LastResultNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldLastResult))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldContainsFold(FieldLastError, v))
}

// RunCountEQ applies the EQ predicate on the "run_count" field.
func RunCountEQ(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldRunCount, v))
}

// RunCountNEQ applies the NEQ predicate on the "run_count" field.
func RunCountNEQ(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldRunCount, v))
}

// RunCountIn applies the In predicate on the "run_count" field.
func RunCountIn(vs ...int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldRunCount, vs...))
}

// RunCountNotIn applies the NotIn predicate on the "run_count" field.
func RunCountNotIn(vs ...int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldRunCount, vs...))
}

// RunCountGT applies the GT predicate on the "run_count" field.
func RunCountGT(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldRunCount, v))
}

// RunCountGTE applies the GTE predicate on the "run_count" field.
func RunCountGTE(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldRunCount, v))
}

// RunCountLT applies the LT predicate on the "run_count" field.
func RunCountLT(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldRunCount, v))
}

// RunCountLTE applies the LTE predicate on the "run_count" field.
func RunCountLTE(v int) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldRunCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InsightSchedule) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InsightSchedule) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InsightSchedule) predicate.InsightSchedule {
	return predicate.InsightSchedule(sql.NotPredicates(p))
}
