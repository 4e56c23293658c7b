// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aether-home/aether/ent/insightschedule"
)

// InsightScheduleCreate is the builder for creating a InsightSchedule entity.
type InsightScheduleCreate struct {
	config
	mutation *InsightScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLabel sets the "label" field.
func (_c *InsightScheduleCreate) SetLabel(v string) *InsightScheduleCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *InsightScheduleCreate) SetEnabled(v bool) *InsightScheduleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableEnabled(v *bool) *InsightScheduleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetAnalysisType sets the "analysis_type" field.
func (_c *InsightScheduleCreate) SetAnalysisType(v string) *InsightScheduleCreate {
	_c.mutation.SetAnalysisType(v)
	return _c
}

// SetEntityIds sets the "entity_ids" field.
func (_c *InsightScheduleCreate) SetEntityIds(v []string) *InsightScheduleCreate {
	_c.mutation.SetEntityIds(v)
	return _c
}

// SetLookbackHours sets the "lookback_hours" field.
func (_c *InsightScheduleCreate) SetLookbackHours(v int) *InsightScheduleCreate {
	_c.mutation.SetLookbackHours(v)
	return _c
}

// SetNillableLookbackHours sets the "lookback_hours" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableLookbackHours(v *int) *InsightScheduleCreate {
	if v != nil {
		_c.SetLookbackHours(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *InsightScheduleCreate) SetOptions(v map[string]interface{}) *InsightScheduleCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *InsightScheduleCreate) SetTrigger(v insightschedule.Trigger) *InsightScheduleCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableTrigger(v *insightschedule.Trigger) *InsightScheduleCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetCronExpression sets the "cron_expression" field.
func (_c *InsightScheduleCreate) SetCronExpression(v string) *InsightScheduleCreate {
	_c.mutation.SetCronExpression(v)
	return _c
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableCronExpression(v *string) *InsightScheduleCreate {
	if v != nil {
		_c.SetCronExpression(*v)
	}
	return _c
}

// SetEventLabel sets the "event_label" field.
func (_c *InsightScheduleCreate) SetEventLabel(v string) *InsightScheduleCreate {
	_c.mutation.SetEventLabel(v)
	return _c
}

// SetNillableEventLabel sets the "event_label" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableEventLabel(v *string) *InsightScheduleCreate {
	if v != nil {
		_c.SetEventLabel(*v)
	}
	return _c
}

// SetMatchFilter sets the "match_filter" field.
func (_c *InsightScheduleCreate) SetMatchFilter(v map[string]interface{}) *InsightScheduleCreate {
	_c.mutation.SetMatchFilter(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *InsightScheduleCreate) SetDepth(v insightschedule.Depth) *InsightScheduleCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableDepth(v *insightschedule.Depth) *InsightScheduleCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *InsightScheduleCreate) SetStrategy(v insightschedule.Strategy) *InsightScheduleCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableStrategy(v *insightschedule.Strategy) *InsightScheduleCreate {
	if v != nil {
		_c.SetStrategy(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *InsightScheduleCreate) SetTimeoutSeconds(v int) *InsightScheduleCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableTimeoutSeconds(v *int) *InsightScheduleCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *InsightScheduleCreate) SetLastRunAt(v time.Time) *InsightScheduleCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableLastRunAt(v *time.Time) *InsightScheduleCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetLastResult sets the "last_result" field.
func (_c *InsightScheduleCreate) SetLastResult(v insightschedule.LastResult) *InsightScheduleCreate {
	_c.mutation.SetLastResult(v)
	return _c
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableLastResult(v *insightschedule.LastResult) *InsightScheduleCreate {
	if v != nil {
		_c.SetLastResult(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *InsightScheduleCreate) SetLastError(v string) *InsightScheduleCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableLastError(v *string) *InsightScheduleCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetRunCount sets the "run_count" field.
func (_c *InsightScheduleCreate) SetRunCount(v int) *InsightScheduleCreate {
	_c.mutation.SetRunCount(v)
	return _c
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableRunCount(v *int) *InsightScheduleCreate {
	if v != nil {
		_c.SetRunCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightScheduleCreate) SetCreatedAt(v time.Time) *InsightScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableCreatedAt(v *time.Time) *InsightScheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InsightScheduleCreate) SetUpdatedAt(v time.Time) *InsightScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InsightScheduleCreate) SetNillableUpdatedAt(v *time.Time) *InsightScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightScheduleCreate) SetID(v string) *InsightScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InsightScheduleMutation object of the builder.
func (_c *InsightScheduleCreate) Mutation() *InsightScheduleMutation {
	return _c.mutation
}

// Save creates the InsightSchedule in the database.
func (_c *InsightScheduleCreate) Save(ctx context.Context) (*InsightSchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightScheduleCreate) SaveX(ctx context.Context) *InsightSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightScheduleCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := insightschedule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.LookbackHours(); !ok {
		v := insightschedule.DefaultLookbackHours
		_c.mutation.SetLookbackHours(v)
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		v := insightschedule.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := insightschedule.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		v := insightschedule.DefaultStrategy
		_c.mutation.SetStrategy(v)
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		v := insightschedule.DefaultRunCount
		_c.mutation.SetRunCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insightschedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := insightschedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightScheduleCreate) check() error {
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "InsightSchedule.label"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "InsightSchedule.enabled"`)}
	}
	if _, ok := _c.mutation.AnalysisType(); !ok {
		return &ValidationError{Name: "analysis_type", err: errors.New(`ent: missing required field "InsightSchedule.analysis_type"`)}
	}
	if _, ok := _c.mutation.LookbackHours(); !ok {
		return &ValidationError{Name: "lookback_hours", err: errors.New(`ent: missing required field "InsightSchedule.lookback_hours"`)}
	}
	if v, ok := _c.mutation.LookbackHours(); ok {
		if err := insightschedule.LookbackHoursValidator(v); err != nil {
			return &ValidationError{Name: "lookback_hours", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.lookback_hours": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "InsightSchedule.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := insightschedule.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "InsightSchedule.depth"`)}
	}
	if v, ok := _c.mutation.Depth(); ok {
		if err := insightschedule.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "InsightSchedule.strategy"`)}
	}
	if v, ok := _c.mutation.Strategy(); ok {
		if err := insightschedule.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.strategy": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastResult(); ok {
		if err := insightschedule.LastResultValidator(v); err != nil {
			return &ValidationError{Name: "last_result", err: fmt.Errorf(`ent: validator failed for field "InsightSchedule.last_result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		return &ValidationError{Name: "run_count", err: errors.New(`ent: missing required field "InsightSchedule.run_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InsightSchedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InsightSchedule.updated_at"`)}
	}
	return nil
}

func (_c *InsightScheduleCreate) sqlSave(ctx context.Context) (*InsightSchedule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected InsightSchedule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightScheduleCreate) createSpec() (*InsightSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &InsightSchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insightschedule.Table, sqlgraph.NewFieldSpec(insightschedule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(insightschedule.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(insightschedule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.AnalysisType(); ok {
		_spec.SetField(insightschedule.FieldAnalysisType, field.TypeString, value)
		_node.AnalysisType = value
	}
	if value, ok := _c.mutation.EntityIds(); ok {
		_spec.SetField(insightschedule.FieldEntityIds, field.TypeJSON, value)
		_node.EntityIds = value
	}
	if value, ok := _c.mutation.LookbackHours(); ok {
		_spec.SetField(insightschedule.FieldLookbackHours, field.TypeInt, value)
		_node.LookbackHours = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(insightschedule.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(insightschedule.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.CronExpression(); ok {
		_spec.SetField(insightschedule.FieldCronExpression, field.TypeString, value)
		_node.CronExpression = &value
	}
	if value, ok := _c.mutation.EventLabel(); ok {
		_spec.SetField(insightschedule.FieldEventLabel, field.TypeString, value)
		_node.EventLabel = &value
	}
	if value, ok := _c.mutation.MatchFilter(); ok {
		_spec.SetField(insightschedule.FieldMatchFilter, field.TypeJSON, value)
		_node.MatchFilter = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(insightschedule.FieldDepth, field.TypeEnum, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(insightschedule.FieldStrategy, field.TypeEnum, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(insightschedule.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(insightschedule.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.LastResult(); ok {
		_spec.SetField(insightschedule.FieldLastResult, field.TypeEnum, value)
		_node.LastResult = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(insightschedule.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.RunCount(); ok {
		_spec.SetField(insightschedule.FieldRunCount, field.TypeInt, value)
		_node.RunCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insightschedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(insightschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InsightSchedule.Create().
//		SetLabel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightScheduleUpsert) {
//			SetLabel(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightScheduleCreate) OnConflict(opts ...sql.ConflictOption) *InsightScheduleUpsertOne {
	_c.conflict = opts
	return &InsightScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InsightSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightScheduleCreate) OnConflictColumns(columns ...string) *InsightScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightScheduleUpsertOne{
		create: _c,
	}
}

type (
	// InsightScheduleUpsertOne is the builder for "upsert"-ing
	//  one InsightSchedule node.
	InsightScheduleUpsertOne struct {
		create *InsightScheduleCreate
	}

	// InsightScheduleUpsert is the "OnConflict" setter.
	InsightScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetLabel sets the "label" field.
func (u *InsightScheduleUpsert) SetLabel(v string) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateLabel() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldLabel)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *InsightScheduleUpsert) SetEnabled(v bool) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateEnabled() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldEnabled)
	return u
}

// SetAnalysisType sets the "analysis_type" field.
func (u *InsightScheduleUpsert) SetAnalysisType(v string) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldAnalysisType, v)
	return u
}

// UpdateAnalysisType sets the "analysis_type" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateAnalysisType() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldAnalysisType)
	return u
}

// SetEntityIds sets the "entity_ids" field.
func (u *InsightScheduleUpsert) SetEntityIds(v []string) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldEntityIds, v)
	return u
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateEntityIds() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldEntityIds)
	return u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *InsightScheduleUpsert) ClearEntityIds() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldEntityIds)
	return u
}

// SetLookbackHours sets the "lookback_hours" field.
func (u *InsightScheduleUpsert) SetLookbackHours(v int) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldLookbackHours, v)
	return u
}

// UpdateLookbackHours sets the "lookback_hours" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateLookbackHours() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldLookbackHours)
	return u
}

// AddLookbackHours adds v to the "lookback_hours" field.
func (u *InsightScheduleUpsert) AddLookbackHours(v int) *InsightScheduleUpsert {
	u.Add(insightschedule.FieldLookbackHours, v)
	return u
}

// SetOptions sets the "options" field.
func (u *InsightScheduleUpsert) SetOptions(v map[string]interface{}) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldOptions, v)
	return u
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateOptions() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldOptions)
	return u
}

// ClearOptions clears the value of the "options" field.
func (u *InsightScheduleUpsert) ClearOptions() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldOptions)
	return u
}

// SetTrigger sets the "trigger" field.
func (u *InsightScheduleUpsert) SetTrigger(v insightschedule.Trigger) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldTrigger, v)
	return u
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateTrigger() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldTrigger)
	return u
}

// SetCronExpression sets the "cron_expression" field.
func (u *InsightScheduleUpsert) SetCronExpression(v string) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldCronExpression, v)
	return u
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateCronExpression() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldCronExpression)
	return u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *InsightScheduleUpsert) ClearCronExpression() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldCronExpression)
	return u
}

// SetEventLabel sets the "event_label" field.
func (u *InsightScheduleUpsert) SetEventLabel(v string) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldEventLabel, v)
	return u
}

// UpdateEventLabel sets the "event_label" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateEventLabel() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldEventLabel)
	return u
}

// ClearEventLabel clears the value of the "event_label" field.
func (u *InsightScheduleUpsert) ClearEventLabel() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldEventLabel)
	return u
}

// SetMatchFilter sets the "match_filter" field.
func (u *InsightScheduleUpsert) SetMatchFilter(v map[string]interface{}) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldMatchFilter, v)
	return u
}

// UpdateMatchFilter sets the "match_filter" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateMatchFilter() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldMatchFilter)
	return u
}

// ClearMatchFilter clears the value of the "match_filter" field.
func (u *InsightScheduleUpsert) ClearMatchFilter() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldMatchFilter)
	return u
}

// SetDepth sets the "depth" field.
func (u *InsightScheduleUpsert) SetDepth(v insightschedule.Depth) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateDepth() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldDepth)
	return u
}

// SetStrategy sets the "strategy" field.
func (u *InsightScheduleUpsert) SetStrategy(v insightschedule.Strategy) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldStrategy, v)
	return u
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateStrategy() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldStrategy)
	return u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *InsightScheduleUpsert) SetTimeoutSeconds(v int) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldTimeoutSeconds, v)
	return u
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateTimeoutSeconds() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldTimeoutSeconds)
	return u
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *InsightScheduleUpsert) AddTimeoutSeconds(v int) *InsightScheduleUpsert {
	u.Add(insightschedule.FieldTimeoutSeconds, v)
	return u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (u *InsightScheduleUpsert) ClearTimeoutSeconds() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldTimeoutSeconds)
	return u
}

// SetLastRunAt sets the "last_run_at" field.
func (u *InsightScheduleUpsert) SetLastRunAt(v time.Time) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldLastRunAt, v)
	return u
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateLastRunAt() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldLastRunAt)
	return u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *InsightScheduleUpsert) ClearLastRunAt() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldLastRunAt)
	return u
}

// SetLastResult sets the "last_result" field.
func (u *InsightScheduleUpsert) SetLastResult(v insightschedule.LastResult) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldLastResult, v)
	return u
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateLastResult() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldLastResult)
	return u
}

// ClearLastResult clears the value of the "last_result" field.
func (u *InsightScheduleUpsert) ClearLastResult() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldLastResult)
	return u
}

// SetLastError sets the "last_error" field.
func (u *InsightScheduleUpsert) SetLastError(v string) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateLastError() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *InsightScheduleUpsert) ClearLastError() *InsightScheduleUpsert {
	u.SetNull(insightschedule.FieldLastError)
	return u
}

// SetRunCount sets the "run_count" field.
func (u *InsightScheduleUpsert) SetRunCount(v int) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldRunCount, v)
	return u
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateRunCount() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldRunCount)
	return u
}

// AddRunCount adds v to the "run_count" field.
func (u *InsightScheduleUpsert) AddRunCount(v int) *InsightScheduleUpsert {
	u.Add(insightschedule.FieldRunCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsightScheduleUpsert) SetUpdatedAt(v time.Time) *InsightScheduleUpsert {
	u.Set(insightschedule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsightScheduleUpsert) UpdateUpdatedAt() *InsightScheduleUpsert {
	u.SetExcluded(insightschedule.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InsightSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insightschedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightScheduleUpsertOne) UpdateNewValues() *InsightScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(insightschedule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(insightschedule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InsightSchedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InsightScheduleUpsertOne) Ignore() *InsightScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightScheduleUpsertOne) DoNothing() *InsightScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightScheduleCreate.OnConflict
// documentation for more info.
func (u *InsightScheduleUpsertOne) Update(set func(*InsightScheduleUpsert)) *InsightScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabel sets the "label" field.
func (u *InsightScheduleUpsertOne) SetLabel(v string) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateLabel() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLabel()
	})
}

// SetEnabled sets the "enabled" field.
func (u *InsightScheduleUpsertOne) SetEnabled(v bool) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateEnabled() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateEnabled()
	})
}

// SetAnalysisType sets the "analysis_type" field.
func (u *InsightScheduleUpsertOne) SetAnalysisType(v string) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetAnalysisType(v)
	})
}

// UpdateAnalysisType sets the "analysis_type" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateAnalysisType() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateAnalysisType()
	})
}

// SetEntityIds sets the "entity_ids" field.
func (u *InsightScheduleUpsertOne) SetEntityIds(v []string) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetEntityIds(v)
	})
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateEntityIds() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateEntityIds()
	})
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *InsightScheduleUpsertOne) ClearEntityIds() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearEntityIds()
	})
}

// SetLookbackHours sets the "lookback_hours" field.
func (u *InsightScheduleUpsertOne) SetLookbackHours(v int) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLookbackHours(v)
	})
}

// AddLookbackHours adds v to the "lookback_hours" field.
func (u *InsightScheduleUpsertOne) AddLookbackHours(v int) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.AddLookbackHours(v)
	})
}

// UpdateLookbackHours sets the "lookback_hours" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateLookbackHours() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLookbackHours()
	})
}

// SetOptions sets the "options" field.
func (u *InsightScheduleUpsertOne) SetOptions(v map[string]interface{}) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateOptions() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateOptions()
	})
}

// ClearOptions clears the value of the "options" field.
func (u *InsightScheduleUpsertOne) ClearOptions() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearOptions()
	})
}

// SetTrigger sets the "trigger" field.
func (u *InsightScheduleUpsertOne) SetTrigger(v insightschedule.Trigger) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetTrigger(v)
	})
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateTrigger() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateTrigger()
	})
}

// SetCronExpression sets the "cron_expression" field.
func (u *InsightScheduleUpsertOne) SetCronExpression(v string) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetCronExpression(v)
	})
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateCronExpression() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateCronExpression()
	})
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *InsightScheduleUpsertOne) ClearCronExpression() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearCronExpression()
	})
}

// SetEventLabel sets the "event_label" field.
func (u *InsightScheduleUpsertOne) SetEventLabel(v string) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetEventLabel(v)
	})
}

// UpdateEventLabel sets the "event_label" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateEventLabel() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateEventLabel()
	})
}

// ClearEventLabel clears the value of the "event_label" field.
func (u *InsightScheduleUpsertOne) ClearEventLabel() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearEventLabel()
	})
}

// SetMatchFilter sets the "match_filter" field.
func (u *InsightScheduleUpsertOne) SetMatchFilter(v map[string]interface{}) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetMatchFilter(v)
	})
}

// UpdateMatchFilter sets the "match_filter" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateMatchFilter() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateMatchFilter()
	})
}

// ClearMatchFilter clears the value of the "match_filter" field.
func (u *InsightScheduleUpsertOne) ClearMatchFilter() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearMatchFilter()
	})
}

// SetDepth sets the "depth" field.
func (u *InsightScheduleUpsertOne) SetDepth(v insightschedule.Depth) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateDepth() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateDepth()
	})
}

// SetStrategy sets the "strategy" field.
func (u *InsightScheduleUpsertOne) SetStrategy(v insightschedule.Strategy) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateStrategy() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateStrategy()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *InsightScheduleUpsertOne) SetTimeoutSeconds(v int) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *InsightScheduleUpsertOne) AddTimeoutSeconds(v int) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateTimeoutSeconds() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (u *InsightScheduleUpsertOne) ClearTimeoutSeconds() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearTimeoutSeconds()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *InsightScheduleUpsertOne) SetLastRunAt(v time.Time) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateLastRunAt() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *InsightScheduleUpsertOne) ClearLastRunAt() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearLastRunAt()
	})
}

// SetLastResult sets the "last_result" field.
func (u *InsightScheduleUpsertOne) SetLastResult(v insightschedule.LastResult) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLastResult(v)
	})
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateLastResult() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLastResult()
	})
}

// ClearLastResult clears the value of the "last_result" field.
func (u *InsightScheduleUpsertOne) ClearLastResult() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearLastResult()
	})
}

// SetLastError sets the "last_error" field.
func (u *InsightScheduleUpsertOne) SetLastError(v string) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateLastError() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *InsightScheduleUpsertOne) ClearLastError() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearLastError()
	})
}

// SetRunCount sets the "run_count" field.
func (u *InsightScheduleUpsertOne) SetRunCount(v int) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetRunCount(v)
	})
}

// AddRunCount adds v to the "run_count" field.
func (u *InsightScheduleUpsertOne) AddRunCount(v int) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.AddRunCount(v)
	})
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateRunCount() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateRunCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsightScheduleUpsertOne) SetUpdatedAt(v time.Time) *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsightScheduleUpsertOne) UpdateUpdatedAt() *InsightScheduleUpsertOne {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InsightScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InsightScheduleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InsightScheduleUpsertOne.ID is not supported by MySQL driver. Use InsightScheduleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InsightScheduleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InsightScheduleCreateBulk is the builder for creating many InsightSchedule entities in bulk.
type InsightScheduleCreateBulk struct {
	config
	err      error
	builders []*InsightScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the InsightSchedule entities in the database.
func (_c *InsightScheduleCreateBulk) Save(ctx context.Context) ([]*InsightSchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InsightSchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightScheduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InsightScheduleCreateBulk) SaveX(ctx context.Context) []*InsightSchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InsightSchedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightScheduleUpsert) {
//			SetLabel(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *InsightScheduleUpsertBulk {
	_c.conflict = opts
	return &InsightScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InsightSchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightScheduleCreateBulk) OnConflictColumns(columns ...string) *InsightScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightScheduleUpsertBulk{
		create: _c,
	}
}

// InsightScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of InsightSchedule nodes.
type InsightScheduleUpsertBulk struct {
	create *InsightScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InsightSchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insightschedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightScheduleUpsertBulk) UpdateNewValues() *InsightScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(insightschedule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(insightschedule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InsightSchedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InsightScheduleUpsertBulk) Ignore() *InsightScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightScheduleUpsertBulk) DoNothing() *InsightScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *InsightScheduleUpsertBulk) Update(set func(*InsightScheduleUpsert)) *InsightScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabel sets the "label" field.
func (u *InsightScheduleUpsertBulk) SetLabel(v string) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateLabel() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLabel()
	})
}

// SetEnabled sets the "enabled" field.
func (u *InsightScheduleUpsertBulk) SetEnabled(v bool) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateEnabled() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateEnabled()
	})
}

// SetAnalysisType sets the "analysis_type" field.
func (u *InsightScheduleUpsertBulk) SetAnalysisType(v string) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetAnalysisType(v)
	})
}

// UpdateAnalysisType sets the "analysis_type" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateAnalysisType() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateAnalysisType()
	})
}

// SetEntityIds sets the "entity_ids" field.
func (u *InsightScheduleUpsertBulk) SetEntityIds(v []string) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetEntityIds(v)
	})
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateEntityIds() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateEntityIds()
	})
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *InsightScheduleUpsertBulk) ClearEntityIds() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearEntityIds()
	})
}

// SetLookbackHours sets the "lookback_hours" field.
func (u *InsightScheduleUpsertBulk) SetLookbackHours(v int) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLookbackHours(v)
	})
}

// AddLookbackHours adds v to the "lookback_hours" field.
func (u *InsightScheduleUpsertBulk) AddLookbackHours(v int) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.AddLookbackHours(v)
	})
}

// UpdateLookbackHours sets the "lookback_hours" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateLookbackHours() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLookbackHours()
	})
}

// SetOptions sets the "options" field.
func (u *InsightScheduleUpsertBulk) SetOptions(v map[string]interface{}) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetOptions(v)
	})
}

// UpdateOptions sets the "options" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateOptions() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateOptions()
	})
}

// ClearOptions clears the value of the "options" field.
func (u *InsightScheduleUpsertBulk) ClearOptions() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearOptions()
	})
}

// SetTrigger sets the "trigger" field.
func (u *InsightScheduleUpsertBulk) SetTrigger(v insightschedule.Trigger) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetTrigger(v)
	})
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateTrigger() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateTrigger()
	})
}

// SetCronExpression sets the "cron_expression" field.
func (u *InsightScheduleUpsertBulk) SetCronExpression(v string) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetCronExpression(v)
	})
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateCronExpression() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateCronExpression()
	})
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *InsightScheduleUpsertBulk) ClearCronExpression() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearCronExpression()
	})
}

// SetEventLabel sets the "event_label" field.
func (u *InsightScheduleUpsertBulk) SetEventLabel(v string) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetEventLabel(v)
	})
}

// UpdateEventLabel sets the "event_label" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateEventLabel() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateEventLabel()
	})
}

// ClearEventLabel clears the value of the "event_label" field.
func (u *InsightScheduleUpsertBulk) ClearEventLabel() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearEventLabel()
	})
}

// SetMatchFilter sets the "match_filter" field.
func (u *InsightScheduleUpsertBulk) SetMatchFilter(v map[string]interface{}) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetMatchFilter(v)
	})
}

// UpdateMatchFilter sets the "match_filter" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateMatchFilter() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateMatchFilter()
	})
}

// ClearMatchFilter clears the value of the "match_filter" field.
func (u *InsightScheduleUpsertBulk) ClearMatchFilter() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearMatchFilter()
	})
}

// SetDepth sets the "depth" field.
func (u *InsightScheduleUpsertBulk) SetDepth(v insightschedule.Depth) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateDepth() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateDepth()
	})
}

// SetStrategy sets the "strategy" field.
func (u *InsightScheduleUpsertBulk) SetStrategy(v insightschedule.Strategy) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateStrategy() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateStrategy()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *InsightScheduleUpsertBulk) SetTimeoutSeconds(v int) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *InsightScheduleUpsertBulk) AddTimeoutSeconds(v int) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateTimeoutSeconds() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (u *InsightScheduleUpsertBulk) ClearTimeoutSeconds() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearTimeoutSeconds()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *InsightScheduleUpsertBulk) SetLastRunAt(v time.Time) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateLastRunAt() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *InsightScheduleUpsertBulk) ClearLastRunAt() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearLastRunAt()
	})
}

// SetLastResult sets the "last_result" field.
func (u *InsightScheduleUpsertBulk) SetLastResult(v insightschedule.LastResult) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLastResult(v)
	})
}

// UpdateLastResult sets the "last_result" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateLastResult() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLastResult()
	})
}

// ClearLastResult clears the value of the "last_result" field.
func (u *InsightScheduleUpsertBulk) ClearLastResult() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearLastResult()
	})
}

// SetLastError sets the "last_error" field.
func (u *InsightScheduleUpsertBulk) SetLastError(v string) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateLastError() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *InsightScheduleUpsertBulk) ClearLastError() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.ClearLastError()
	})
}

// SetRunCount sets the "run_count" field.
func (u *InsightScheduleUpsertBulk) SetRunCount(v int) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetRunCount(v)
	})
}

// AddRunCount adds v to the "run_count" field.
func (u *InsightScheduleUpsertBulk) AddRunCount(v int) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.AddRunCount(v)
	})
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateRunCount() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateRunCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsightScheduleUpsertBulk) SetUpdatedAt(v time.Time) *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsightScheduleUpsertBulk) UpdateUpdatedAt() *InsightScheduleUpsertBulk {
	return u.Update(func(s *InsightScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InsightScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InsightScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
