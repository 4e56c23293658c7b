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
	"github.com/aether-home/aether/ent/analysisreport"
)

// AnalysisReportCreate is the builder for creating a AnalysisReport entity.
type AnalysisReportCreate struct {
	config
	mutation *AnalysisReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *AnalysisReportCreate) SetTitle(v string) *AnalysisReportCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAnalysisType sets the "analysis_type" field.
func (_c *AnalysisReportCreate) SetAnalysisType(v string) *AnalysisReportCreate {
	_c.mutation.SetAnalysisType(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *AnalysisReportCreate) SetDepth(v analysisreport.Depth) *AnalysisReportCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *AnalysisReportCreate) SetNillableDepth(v *analysisreport.Depth) *AnalysisReportCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *AnalysisReportCreate) SetStrategy(v analysisreport.Strategy) *AnalysisReportCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_c *AnalysisReportCreate) SetNillableStrategy(v *analysisreport.Strategy) *AnalysisReportCreate {
	if v != nil {
		_c.SetStrategy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisReportCreate) SetStatus(v analysisreport.Status) *AnalysisReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisReportCreate) SetNillableStatus(v *analysisreport.Status) *AnalysisReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AnalysisReportCreate) SetSummary(v string) *AnalysisReportCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AnalysisReportCreate) SetNillableSummary(v *string) *AnalysisReportCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetInsightIds sets the "insight_ids" field.
func (_c *AnalysisReportCreate) SetInsightIds(v []string) *AnalysisReportCreate {
	_c.mutation.SetInsightIds(v)
	return _c
}

// SetArtifacts sets the "artifacts" field.
func (_c *AnalysisReportCreate) SetArtifacts(v []string) *AnalysisReportCreate {
	_c.mutation.SetArtifacts(v)
	return _c
}

// SetCommunicationLog sets the "communication_log" field.
func (_c *AnalysisReportCreate) SetCommunicationLog(v []map[string]interface{}) *AnalysisReportCreate {
	_c.mutation.SetCommunicationLog(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisReportCreate) SetCreatedAt(v time.Time) *AnalysisReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisReportCreate) SetNillableCreatedAt(v *time.Time) *AnalysisReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisReportCreate) SetCompletedAt(v time.Time) *AnalysisReportCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisReportCreate) SetNillableCompletedAt(v *time.Time) *AnalysisReportCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisReportCreate) SetID(v string) *AnalysisReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AnalysisReportMutation object of the builder.
func (_c *AnalysisReportCreate) Mutation() *AnalysisReportMutation {
	return _c.mutation
}

// Save creates the AnalysisReport in the database.
func (_c *AnalysisReportCreate) Save(ctx context.Context) (*AnalysisReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisReportCreate) SaveX(ctx context.Context) *AnalysisReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisReportCreate) defaults() {
	if _, ok := _c.mutation.Depth(); !ok {
		v := analysisreport.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		v := analysisreport.DefaultStrategy
		_c.mutation.SetStrategy(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := analysisreport.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisReportCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "AnalysisReport.title"`)}
	}
	if _, ok := _c.mutation.AnalysisType(); !ok {
		return &ValidationError{Name: "analysis_type", err: errors.New(`ent: missing required field "AnalysisReport.analysis_type"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "AnalysisReport.depth"`)}
	}
	if v, ok := _c.mutation.Depth(); ok {
		if err := analysisreport.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "AnalysisReport.strategy"`)}
	}
	if v, ok := _c.mutation.Strategy(); ok {
		if err := analysisreport.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisReport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisReport.created_at"`)}
	}
	return nil
}

func (_c *AnalysisReportCreate) sqlSave(ctx context.Context) (*AnalysisReport, error) {
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
			return nil, fmt.Errorf("unexpected AnalysisReport.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisReportCreate) createSpec() (*AnalysisReport, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisreport.Table, sqlgraph.NewFieldSpec(analysisreport.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(analysisreport.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.AnalysisType(); ok {
		_spec.SetField(analysisreport.FieldAnalysisType, field.TypeString, value)
		_node.AnalysisType = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(analysisreport.FieldDepth, field.TypeEnum, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(analysisreport.FieldStrategy, field.TypeEnum, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisreport.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(analysisreport.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.InsightIds(); ok {
		_spec.SetField(analysisreport.FieldInsightIds, field.TypeJSON, value)
		_node.InsightIds = value
	}
	if value, ok := _c.mutation.Artifacts(); ok {
		_spec.SetField(analysisreport.FieldArtifacts, field.TypeJSON, value)
		_node.Artifacts = value
	}
	if value, ok := _c.mutation.CommunicationLog(); ok {
		_spec.SetField(analysisreport.FieldCommunicationLog, field.TypeJSON, value)
		_node.CommunicationLog = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysisreport.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnalysisReport.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisReportUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisReportCreate) OnConflict(opts ...sql.ConflictOption) *AnalysisReportUpsertOne {
	_c.conflict = opts
	return &AnalysisReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnalysisReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisReportCreate) OnConflictColumns(columns ...string) *AnalysisReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisReportUpsertOne{
		create: _c,
	}
}

type (
	// AnalysisReportUpsertOne is the builder for "upsert"-ing
	//  one AnalysisReport node.
	AnalysisReportUpsertOne struct {
		create *AnalysisReportCreate
	}

	// AnalysisReportUpsert is the "OnConflict" setter.
	AnalysisReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *AnalysisReportUpsert) SetTitle(v string) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateTitle() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldTitle)
	return u
}

// SetAnalysisType sets the "analysis_type" field.
func (u *AnalysisReportUpsert) SetAnalysisType(v string) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldAnalysisType, v)
	return u
}

// UpdateAnalysisType sets the "analysis_type" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateAnalysisType() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldAnalysisType)
	return u
}

// SetDepth sets the "depth" field.
func (u *AnalysisReportUpsert) SetDepth(v analysisreport.Depth) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateDepth() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldDepth)
	return u
}

// SetStrategy sets the "strategy" field.
func (u *AnalysisReportUpsert) SetStrategy(v analysisreport.Strategy) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldStrategy, v)
	return u
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateStrategy() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldStrategy)
	return u
}

// SetStatus sets the "status" field.
func (u *AnalysisReportUpsert) SetStatus(v analysisreport.Status) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateStatus() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldStatus)
	return u
}

// SetSummary sets the "summary" field.
func (u *AnalysisReportUpsert) SetSummary(v string) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateSummary() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *AnalysisReportUpsert) ClearSummary() *AnalysisReportUpsert {
	u.SetNull(analysisreport.FieldSummary)
	return u
}

// SetInsightIds sets the "insight_ids" field.
func (u *AnalysisReportUpsert) SetInsightIds(v []string) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldInsightIds, v)
	return u
}

// UpdateInsightIds sets the "insight_ids" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateInsightIds() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldInsightIds)
	return u
}

// ClearInsightIds clears the value of the "insight_ids" field.
func (u *AnalysisReportUpsert) ClearInsightIds() *AnalysisReportUpsert {
	u.SetNull(analysisreport.FieldInsightIds)
	return u
}

// SetArtifacts sets the "artifacts" field.
func (u *AnalysisReportUpsert) SetArtifacts(v []string) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldArtifacts, v)
	return u
}

// UpdateArtifacts sets the "artifacts" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateArtifacts() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldArtifacts)
	return u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (u *AnalysisReportUpsert) ClearArtifacts() *AnalysisReportUpsert {
	u.SetNull(analysisreport.FieldArtifacts)
	return u
}

// SetCommunicationLog sets the "communication_log" field.
func (u *AnalysisReportUpsert) SetCommunicationLog(v []map[string]interface{}) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldCommunicationLog, v)
	return u
}

// UpdateCommunicationLog sets the "communication_log" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateCommunicationLog() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldCommunicationLog)
	return u
}

// ClearCommunicationLog clears the value of the "communication_log" field.
func (u *AnalysisReportUpsert) ClearCommunicationLog() *AnalysisReportUpsert {
	u.SetNull(analysisreport.FieldCommunicationLog)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AnalysisReportUpsert) SetCompletedAt(v time.Time) *AnalysisReportUpsert {
	u.Set(analysisreport.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AnalysisReportUpsert) UpdateCompletedAt() *AnalysisReportUpsert {
	u.SetExcluded(analysisreport.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AnalysisReportUpsert) ClearCompletedAt() *AnalysisReportUpsert {
	u.SetNull(analysisreport.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AnalysisReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysisreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisReportUpsertOne) UpdateNewValues() *AnalysisReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(analysisreport.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(analysisreport.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnalysisReport.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnalysisReportUpsertOne) Ignore() *AnalysisReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisReportUpsertOne) DoNothing() *AnalysisReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisReportCreate.OnConflict
// documentation for more info.
func (u *AnalysisReportUpsertOne) Update(set func(*AnalysisReportUpsert)) *AnalysisReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *AnalysisReportUpsertOne) SetTitle(v string) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateTitle() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateTitle()
	})
}

// SetAnalysisType sets the "analysis_type" field.
func (u *AnalysisReportUpsertOne) SetAnalysisType(v string) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetAnalysisType(v)
	})
}

// UpdateAnalysisType sets the "analysis_type" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateAnalysisType() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateAnalysisType()
	})
}

// SetDepth sets the "depth" field.
func (u *AnalysisReportUpsertOne) SetDepth(v analysisreport.Depth) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateDepth() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateDepth()
	})
}

// SetStrategy sets the "strategy" field.
func (u *AnalysisReportUpsertOne) SetStrategy(v analysisreport.Strategy) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateStrategy() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateStrategy()
	})
}

// SetStatus sets the "status" field.
func (u *AnalysisReportUpsertOne) SetStatus(v analysisreport.Status) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateStatus() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateStatus()
	})
}

// SetSummary sets the "summary" field.
func (u *AnalysisReportUpsertOne) SetSummary(v string) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateSummary() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *AnalysisReportUpsertOne) ClearSummary() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearSummary()
	})
}

// SetInsightIds sets the "insight_ids" field.
func (u *AnalysisReportUpsertOne) SetInsightIds(v []string) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetInsightIds(v)
	})
}

// UpdateInsightIds sets the "insight_ids" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateInsightIds() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateInsightIds()
	})
}

// ClearInsightIds clears the value of the "insight_ids" field.
func (u *AnalysisReportUpsertOne) ClearInsightIds() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearInsightIds()
	})
}

// SetArtifacts sets the "artifacts" field.
func (u *AnalysisReportUpsertOne) SetArtifacts(v []string) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetArtifacts(v)
	})
}

// UpdateArtifacts sets the "artifacts" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateArtifacts() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateArtifacts()
	})
}

// ClearArtifacts clears the value of the "artifacts" field.
func (u *AnalysisReportUpsertOne) ClearArtifacts() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearArtifacts()
	})
}

// SetCommunicationLog sets the "communication_log" field.
func (u *AnalysisReportUpsertOne) SetCommunicationLog(v []map[string]interface{}) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetCommunicationLog(v)
	})
}

// UpdateCommunicationLog sets the "communication_log" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateCommunicationLog() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateCommunicationLog()
	})
}

// ClearCommunicationLog clears the value of the "communication_log" field.
func (u *AnalysisReportUpsertOne) ClearCommunicationLog() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearCommunicationLog()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AnalysisReportUpsertOne) SetCompletedAt(v time.Time) *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AnalysisReportUpsertOne) UpdateCompletedAt() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AnalysisReportUpsertOne) ClearCompletedAt() *AnalysisReportUpsertOne {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AnalysisReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnalysisReportUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AnalysisReportUpsertOne.ID is not supported by MySQL driver. Use AnalysisReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnalysisReportUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnalysisReportCreateBulk is the builder for creating many AnalysisReport entities in bulk.
type AnalysisReportCreateBulk struct {
	config
	err      error
	builders []*AnalysisReportCreate
	conflict []sql.ConflictOption
}

// Save creates the AnalysisReport entities in the database.
func (_c *AnalysisReportCreateBulk) Save(ctx context.Context) ([]*AnalysisReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisReportMutation)
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
func (_c *AnalysisReportCreateBulk) SaveX(ctx context.Context) []*AnalysisReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnalysisReport.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisReportUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnalysisReportUpsertBulk {
	_c.conflict = opts
	return &AnalysisReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnalysisReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisReportCreateBulk) OnConflictColumns(columns ...string) *AnalysisReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisReportUpsertBulk{
		create: _c,
	}
}

// AnalysisReportUpsertBulk is the builder for "upsert"-ing
// a bulk of AnalysisReport nodes.
type AnalysisReportUpsertBulk struct {
	create *AnalysisReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnalysisReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysisreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisReportUpsertBulk) UpdateNewValues() *AnalysisReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(analysisreport.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(analysisreport.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnalysisReport.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnalysisReportUpsertBulk) Ignore() *AnalysisReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisReportUpsertBulk) DoNothing() *AnalysisReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisReportCreateBulk.OnConflict
// documentation for more info.
func (u *AnalysisReportUpsertBulk) Update(set func(*AnalysisReportUpsert)) *AnalysisReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *AnalysisReportUpsertBulk) SetTitle(v string) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateTitle() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateTitle()
	})
}

// SetAnalysisType sets the "analysis_type" field.
func (u *AnalysisReportUpsertBulk) SetAnalysisType(v string) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetAnalysisType(v)
	})
}

// UpdateAnalysisType sets the "analysis_type" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateAnalysisType() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateAnalysisType()
	})
}

// SetDepth sets the "depth" field.
func (u *AnalysisReportUpsertBulk) SetDepth(v analysisreport.Depth) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateDepth() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateDepth()
	})
}

// SetStrategy sets the "strategy" field.
func (u *AnalysisReportUpsertBulk) SetStrategy(v analysisreport.Strategy) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateStrategy() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateStrategy()
	})
}

// SetStatus sets the "status" field.
func (u *AnalysisReportUpsertBulk) SetStatus(v analysisreport.Status) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateStatus() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateStatus()
	})
}

// SetSummary sets the "summary" field.
func (u *AnalysisReportUpsertBulk) SetSummary(v string) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateSummary() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *AnalysisReportUpsertBulk) ClearSummary() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearSummary()
	})
}

// SetInsightIds sets the "insight_ids" field.
func (u *AnalysisReportUpsertBulk) SetInsightIds(v []string) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetInsightIds(v)
	})
}

// UpdateInsightIds sets the "insight_ids" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateInsightIds() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateInsightIds()
	})
}

// ClearInsightIds clears the value of the "insight_ids" field.
func (u *AnalysisReportUpsertBulk) ClearInsightIds() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearInsightIds()
	})
}

// SetArtifacts sets the "artifacts" field.
func (u *AnalysisReportUpsertBulk) SetArtifacts(v []string) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetArtifacts(v)
	})
}

// UpdateArtifacts sets the "artifacts" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateArtifacts() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateArtifacts()
	})
}

// ClearArtifacts clears the value of the "artifacts" field.
func (u *AnalysisReportUpsertBulk) ClearArtifacts() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearArtifacts()
	})
}

// SetCommunicationLog sets the "communication_log" field.
func (u *AnalysisReportUpsertBulk) SetCommunicationLog(v []map[string]interface{}) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetCommunicationLog(v)
	})
}

// UpdateCommunicationLog sets the "communication_log" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateCommunicationLog() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateCommunicationLog()
	})
}

// ClearCommunicationLog clears the value of the "communication_log" field.
func (u *AnalysisReportUpsertBulk) ClearCommunicationLog() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearCommunicationLog()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AnalysisReportUpsertBulk) SetCompletedAt(v time.Time) *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AnalysisReportUpsertBulk) UpdateCompletedAt() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AnalysisReportUpsertBulk) ClearCompletedAt() *AnalysisReportUpsertBulk {
	return u.Update(func(s *AnalysisReportUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AnalysisReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnalysisReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
