// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/ent/predicate"
)

// InsightScheduleUpdate is the builder for updating InsightSchedule entities.
type InsightScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *InsightScheduleMutation
}

// Where appends a list predicates to the InsightScheduleUpdate builder.
func (_u *InsightScheduleUpdate) Where(ps ...predicate.InsightSchedule) *InsightScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *InsightScheduleUpdate) SetLabel(v string) *InsightScheduleUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableLabel(v *string) *InsightScheduleUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *InsightScheduleUpdate) SetEnabled(v bool) *InsightScheduleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableEnabled(v *bool) *InsightScheduleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetAnalysisType sets the "analysis_type" field.
func (_u *InsightScheduleUpdate) SetAnalysisType(v string) *InsightScheduleUpdate {
	_u.mutation.SetAnalysisType(v)
	return _u
}

// SetNillableAnalysisType sets the "analysis_type" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableAnalysisType(v *string) *InsightScheduleUpdate {
	if v != nil {
		_u.SetAnalysisType(*v)
	}
	return _u
}

// SetEntityIds sets the "entity_ids" field.
func (_u *InsightScheduleUpdate) SetEntityIds(v []string) *InsightScheduleUpdate {
	_u.mutation.SetEntityIds(v)
	return _u
}

// AppendEntityIds appends value to the "entity_ids" field.
func (_u *InsightScheduleUpdate) AppendEntityIds(v []string) *InsightScheduleUpdate {
	_u.mutation.AppendEntityIds(v)
	return _u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (_u *InsightScheduleUpdate) ClearEntityIds() *InsightScheduleUpdate {
	_u.mutation.ClearEntityIds()
	return _u
}

// SetLookbackHours sets the "lookback_hours" field.
func (_u *InsightScheduleUpdate) SetLookbackHours(v int) *InsightScheduleUpdate {
	_u.mutation.ResetLookbackHours()
	_u.mutation.SetLookbackHours(v)
	return _u
}

// SetNillableLookbackHours sets the "lookback_hours" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableLookbackHours(v *int) *InsightScheduleUpdate {
	if v != nil {
		_u.SetLookbackHours(*v)
	}
	return _u
}

// AddLookbackHours adds value to the "lookback_hours" field.
func (_u *InsightScheduleUpdate) AddLookbackHours(v int) *InsightScheduleUpdate {
	_u.mutation.AddLookbackHours(v)
	return _u
}

// SetOptions sets the "options" field.
func (_u *InsightScheduleUpdate) SetOptions(v map[string]interface{}) *InsightScheduleUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *InsightScheduleUpdate) ClearOptions() *InsightScheduleUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *InsightScheduleUpdate) SetTrigger(v insightschedule.Trigger) *InsightScheduleUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableTrigger(v *insightschedule.Trigger) *InsightScheduleUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *InsightScheduleUpdate) SetCronExpression(v string) *InsightScheduleUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableCronExpression(v *string) *InsightScheduleUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *InsightScheduleUpdate) ClearCronExpression() *InsightScheduleUpdate {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetEventLabel sets the "event_label" field.
func (_u *InsightScheduleUpdate) SetEventLabel(v string) *InsightScheduleUpdate {
	_u.mutation.SetEventLabel(v)
	return _u
}

// SetNillableEventLabel sets the "event_label" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableEventLabel(v *string) *InsightScheduleUpdate {
	if v != nil {
		_u.SetEventLabel(*v)
	}
	return _u
}

// ClearEventLabel clears the value of the "event_label" field.
func (_u *InsightScheduleUpdate) ClearEventLabel() *InsightScheduleUpdate {
	_u.mutation.ClearEventLabel()
	return _u
}

// SetMatchFilter sets the "match_filter" field.
func (_u *InsightScheduleUpdate) SetMatchFilter(v map[string]interface{}) *InsightScheduleUpdate {
	_u.mutation.SetMatchFilter(v)
	return _u
}

// ClearMatchFilter clears the value of the "match_filter" field.
func (_u *InsightScheduleUpdate) ClearMatchFilter() *InsightScheduleUpdate {
	_u.mutation.ClearMatchFilter()
	return _u
}

// SetDepth sets the "depth" field.
func (_u *InsightScheduleUpdate) SetDepth(v insightschedule.Depth) *InsightScheduleUpdate {
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableDepth(v *insightschedule.Depth) *InsightScheduleUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *InsightScheduleUpdate) SetStrategy(v insightschedule.Strategy) *InsightScheduleUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableStrategy(v *insightschedule.Strategy) *InsightScheduleUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *InsightScheduleUpdate) SetTimeoutSeconds(v int) *InsightScheduleUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableTimeoutSeconds(v *int) *InsightScheduleUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *InsightScheduleUpdate) AddTimeoutSeconds(v int) *InsightScheduleUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *InsightScheduleUpdate) ClearTimeoutSeconds() *InsightScheduleUpdate {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *InsightScheduleUpdate) SetLastRunAt(v time.Time) *InsightScheduleUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableLastRunAt(v *time.Time) *InsightScheduleUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *InsightScheduleUpdate) ClearLastRunAt() *InsightScheduleUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *InsightScheduleUpdate) SetLastResult(v insightschedule.LastResult) *InsightScheduleUpdate {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableLastResult(v *insightschedule.LastResult) *InsightScheduleUpdate {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *InsightScheduleUpdate) ClearLastResult() *InsightScheduleUpdate {
	_u.mutation.ClearLastResult()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *InsightScheduleUpdate) SetLastError(v string) *InsightScheduleUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableLastError(v *string) *InsightScheduleUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *InsightScheduleUpdate) ClearLastError() *InsightScheduleUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *InsightScheduleUpdate) SetRunCount(v int) *InsightScheduleUpdate {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *InsightScheduleUpdate) SetNillableRunCount(v *int) *InsightScheduleUpdate {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *InsightScheduleUpdate) AddRunCount(v int) *InsightScheduleUpdate {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsightScheduleUpdate) SetUpdatedAt(v time.Time) *InsightScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InsightScheduleMutation object of the builder.
func (_u *InsightScheduleUpdate) Mutation() *InsightScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsightScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insightschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightScheduleUpdate) check() error {
	if v, ok := _u.mutation.LookbackHours(); ok {
		if err := insightschedule.LookbackHoursValidator(v); err != nil {
			return &ValidationError{Name: "lookback_hours", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.lookback_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := insightschedule.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := insightschedule.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := insightschedule.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastResult(); ok {
		if err := insightschedule.LastResultValidator(v); err != nil {
			return &ValidationError{Name: "last_result", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.last_result": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightschedule.Table, insightschedule.Columns, sqlgraph.NewFieldSpec(insightschedule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(insightschedule.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(insightschedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnalysisType(); ok {
		_spec.SetField(insightschedule.FieldAnalysisType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityIds(); ok {
		_spec.SetField(insightschedule.FieldEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insightschedule.FieldEntityIds, value)
		})
	}
	if _u.mutation.EntityIdsCleared() {
		_spec.ClearField(insightschedule.FieldEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LookbackHours(); ok {
		_spec.SetField(insightschedule.FieldLookbackHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLookbackHours(); ok {
		_spec.AddField(insightschedule.FieldLookbackHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(insightschedule.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(insightschedule.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(insightschedule.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(insightschedule.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(insightschedule.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.EventLabel(); ok {
		_spec.SetField(insightschedule.FieldEventLabel, field.TypeString, value)
	}
	if _u.mutation.EventLabelCleared() {
		_spec.ClearField(insightschedule.FieldEventLabel, field.TypeString)
	}
	if value, ok := _u.mutation.MatchFilter(); ok {
		_spec.SetField(insightschedule.FieldMatchFilter, field.TypeJSON, value)
	}
	if _u.mutation.MatchFilterCleared() {
		_spec.ClearField(insightschedule.FieldMatchFilter, field.TypeJSON)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(insightschedule.FieldDepth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(insightschedule.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(insightschedule.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(insightschedule.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(insightschedule.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(insightschedule.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(insightschedule.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(insightschedule.FieldLastResult, field.TypeEnum, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(insightschedule.FieldLastResult, field.TypeEnum)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(insightschedule.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(insightschedule.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(insightschedule.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(insightschedule.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insightschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightScheduleUpdateOne is the builder for updating a single InsightSchedule entity.
type InsightScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightScheduleMutation
}

// SetLabel sets the "label" field.
func (_u *InsightScheduleUpdateOne) SetLabel(v string) *InsightScheduleUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableLabel(v *string) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *InsightScheduleUpdateOne) SetEnabled(v bool) *InsightScheduleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableEnabled(v *bool) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetAnalysisType sets the "analysis_type" field.
func (_u *InsightScheduleUpdateOne) SetAnalysisType(v string) *InsightScheduleUpdateOne {
	_u.mutation.SetAnalysisType(v)
	return _u
}

// SetNillableAnalysisType sets the "analysis_type" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableAnalysisType(v *string) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetAnalysisType(*v)
	}
	return _u
}

// SetEntityIds sets the "entity_ids" field.
func (_u *InsightScheduleUpdateOne) SetEntityIds(v []string) *InsightScheduleUpdateOne {
	_u.mutation.SetEntityIds(v)
	return _u
}

// AppendEntityIds appends value to the "entity_ids" field.
func (_u *InsightScheduleUpdateOne) AppendEntityIds(v []string) *InsightScheduleUpdateOne {
	_u.mutation.AppendEntityIds(v)
	return _u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (_u *InsightScheduleUpdateOne) ClearEntityIds() *InsightScheduleUpdateOne {
	_u.mutation.ClearEntityIds()
	return _u
}

// SetLookbackHours sets the "lookback_hours" field.
func (_u *InsightScheduleUpdateOne) SetLookbackHours(v int) *InsightScheduleUpdateOne {
	_u.mutation.ResetLookbackHours()
	_u.mutation.SetLookbackHours(v)
	return _u
}

// SetNillableLookbackHours sets the "lookback_hours" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableLookbackHours(v *int) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetLookbackHours(*v)
	}
	return _u
}

// AddLookbackHours adds value to the "lookback_hours" field.
func (_u *InsightScheduleUpdateOne) AddLookbackHours(v int) *InsightScheduleUpdateOne {
	_u.mutation.AddLookbackHours(v)
	return _u
}

// SetOptions sets the "options" field.
func (_u *InsightScheduleUpdateOne) SetOptions(v map[string]interface{}) *InsightScheduleUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *InsightScheduleUpdateOne) ClearOptions() *InsightScheduleUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *InsightScheduleUpdateOne) SetTrigger(v insightschedule.Trigger) *InsightScheduleUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableTrigger(v *insightschedule.Trigger) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *InsightScheduleUpdateOne) SetCronExpression(v string) *InsightScheduleUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableCronExpression(v *string) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *InsightScheduleUpdateOne) ClearCronExpression() *InsightScheduleUpdateOne {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetEventLabel sets the "event_label" field.
func (_u *InsightScheduleUpdateOne) SetEventLabel(v string) *InsightScheduleUpdateOne {
	_u.mutation.SetEventLabel(v)
	return _u
}

// SetNillableEventLabel sets the "event_label" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableEventLabel(v *string) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetEventLabel(*v)
	}
	return _u
}

// ClearEventLabel clears the value of the "event_label" field.
func (_u *InsightScheduleUpdateOne) ClearEventLabel() *InsightScheduleUpdateOne {
	_u.mutation.ClearEventLabel()
	return _u
}

// SetMatchFilter sets the "match_filter" field.
func (_u *InsightScheduleUpdateOne) SetMatchFilter(v map[string]interface{}) *InsightScheduleUpdateOne {
	_u.mutation.SetMatchFilter(v)
	return _u
}

// ClearMatchFilter clears the value of the "match_filter" field.
func (_u *InsightScheduleUpdateOne) ClearMatchFilter() *InsightScheduleUpdateOne {
	_u.mutation.ClearMatchFilter()
	return _u
}

// SetDepth sets the "depth" field.
func (_u *InsightScheduleUpdateOne) SetDepth(v insightschedule.Depth) *InsightScheduleUpdateOne {
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableDepth(v *insightschedule.Depth) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *InsightScheduleUpdateOne) SetStrategy(v insightschedule.Strategy) *InsightScheduleUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableStrategy(v *insightschedule.Strategy) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *InsightScheduleUpdateOne) SetTimeoutSeconds(v int) *InsightScheduleUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableTimeoutSeconds(v *int) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *InsightScheduleUpdateOne) AddTimeoutSeconds(v int) *InsightScheduleUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *InsightScheduleUpdateOne) ClearTimeoutSeconds() *InsightScheduleUpdateOne {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *InsightScheduleUpdateOne) SetLastRunAt(v time.Time) *InsightScheduleUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableLastRunAt(v *time.Time) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *InsightScheduleUpdateOne) ClearLastRunAt() *InsightScheduleUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *InsightScheduleUpdateOne) SetLastResult(v insightschedule.LastResult) *InsightScheduleUpdateOne {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableLastResult(v *insightschedule.LastResult) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *InsightScheduleUpdateOne) ClearLastResult() *InsightScheduleUpdateOne {
	_u.mutation.ClearLastResult()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *InsightScheduleUpdateOne) SetLastError(v string) *InsightScheduleUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableLastError(v *string) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *InsightScheduleUpdateOne) ClearLastError() *InsightScheduleUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *InsightScheduleUpdateOne) SetRunCount(v int) *InsightScheduleUpdateOne {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *InsightScheduleUpdateOne) SetNillableRunCount(v *int) *InsightScheduleUpdateOne {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *InsightScheduleUpdateOne) AddRunCount(v int) *InsightScheduleUpdateOne {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsightScheduleUpdateOne) SetUpdatedAt(v time.Time) *InsightScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InsightScheduleMutation object of the builder.
func (_u *InsightScheduleUpdateOne) Mutation() *InsightScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightScheduleUpdate builder.
func (_u *InsightScheduleUpdateOne) Where(ps ...predicate.InsightSchedule) *InsightScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightScheduleUpdateOne) Select(field string, fields ...string) *InsightScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InsightSchedule entity.
func (_u *InsightScheduleUpdateOne) Save(ctx context.Context) (*InsightSchedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightScheduleUpdateOne) SaveX(ctx context.Context) *InsightSchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsightScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insightschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.LookbackHours(); ok {
		if err := insightschedule.LookbackHoursValidator(v); err != nil {
			return &ValidationError{Name: "lookback_hours", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.lookback_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := insightschedule.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := insightschedule.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := insightschedule.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastResult(); ok {
		if err := insightschedule.LastResultValidator(v); err != nil {
			return &ValidationError{Name: "last_result", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.last_result": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightScheduleUpdateOne) sqlSave(ctx context.Context) (_node *InsightSchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightschedule.Table, insightschedule.Columns, sqlgraph.NewFieldSpec(insightschedule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InsightSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insightschedule.FieldID)
		for _, f := range fields {
			if !insightschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insightschedule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(insightschedule.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(insightschedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnalysisType(); ok {
		_spec.SetField(insightschedule.FieldAnalysisType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityIds(); ok {
		_spec.SetField(insightschedule.FieldEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insightschedule.FieldEntityIds, value)
		})
	}
	if _u.mutation.EntityIdsCleared() {
		_spec.ClearField(insightschedule.FieldEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LookbackHours(); ok {
		_spec.SetField(insightschedule.FieldLookbackHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLookbackHours(); ok {
		_spec.AddField(insightschedule.FieldLookbackHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(insightschedule.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(insightschedule.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(insightschedule.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(insightschedule.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(insightschedule.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.EventLabel(); ok {
		_spec.SetField(insightschedule.FieldEventLabel, field.TypeString, value)
	}
	if _u.mutation.EventLabelCleared() {
		_spec.ClearField(insightschedule.FieldEventLabel, field.TypeString)
	}
	if value, ok := _u.mutation.MatchFilter(); ok {
		_spec.SetField(insightschedule.FieldMatchFilter, field.TypeJSON, value)
	}
	if _u.mutation.MatchFilterCleared() {
		_spec.ClearField(insightschedule.FieldMatchFilter, field.TypeJSON)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(insightschedule.FieldDepth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(insightschedule.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(insightschedule.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(insightschedule.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(insightschedule.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(insightschedule.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(insightschedule.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(insightschedule.FieldLastResult, field.TypeEnum, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(insightschedule.FieldLastResult, field.TypeEnum)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(insightschedule.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(insightschedule.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(insightschedule.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(insightschedule.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insightschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &InsightSchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
