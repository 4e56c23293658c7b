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
	"github.com/aether-home/aether/ent/analysisreport"
	"github.com/aether-home/aether/ent/predicate"
)

// AnalysisReportUpdate is the builder for updating AnalysisReport entities.
type AnalysisReportUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisReportMutation
}

// Where appends a list predicates to the AnalysisReportUpdate builder.
func (_u *AnalysisReportUpdate) Where(ps ...predicate.AnalysisReport) *AnalysisReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AnalysisReportUpdate) SetTitle(v string) *AnalysisReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AnalysisReportUpdate) SetNillableTitle(v *string) *AnalysisReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAnalysisType sets the "analysis_type" field.
func (_u *AnalysisReportUpdate) SetAnalysisType(v string) *AnalysisReportUpdate {
	_u.mutation.SetAnalysisType(v)
	return _u
}

// SetNillableAnalysisType sets the "analysis_type" field if the given value is not nil.
func (_u *AnalysisReportUpdate) SetNillableAnalysisType(v *string) *AnalysisReportUpdate {
	if v != nil {
		_u.SetAnalysisType(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *AnalysisReportUpdate) SetDepth(v analysisreport.Depth) *AnalysisReportUpdate {
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *AnalysisReportUpdate) SetNillableDepth(v *analysisreport.Depth) *AnalysisReportUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *AnalysisReportUpdate) SetStrategy(v analysisreport.Strategy) *AnalysisReportUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *AnalysisReportUpdate) SetNillableStrategy(v *analysisreport.Strategy) *AnalysisReportUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisReportUpdate) SetStatus(v analysisreport.Status) *AnalysisReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisReportUpdate) SetNillableStatus(v *analysisreport.Status) *AnalysisReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisReportUpdate) SetSummary(v string) *AnalysisReportUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisReportUpdate) SetNillableSummary(v *string) *AnalysisReportUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AnalysisReportUpdate) ClearSummary() *AnalysisReportUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetInsightIds sets the "insight_ids" field.
func (_u *AnalysisReportUpdate) SetInsightIds(v []string) *AnalysisReportUpdate {
	_u.mutation.SetInsightIds(v)
	return _u
}

// AppendInsightIds appends value to the "insight_ids" field.
func (_u *AnalysisReportUpdate) AppendInsightIds(v []string) *AnalysisReportUpdate {
	_u.mutation.AppendInsightIds(v)
	return _u
}

// ClearInsightIds clears the value of the "insight_ids" field.
func (_u *AnalysisReportUpdate) ClearInsightIds() *AnalysisReportUpdate {
	_u.mutation.ClearInsightIds()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *AnalysisReportUpdate) SetArtifacts(v []string) *AnalysisReportUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *AnalysisReportUpdate) AppendArtifacts(v []string) *AnalysisReportUpdate {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *AnalysisReportUpdate) ClearArtifacts() *AnalysisReportUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetCommunicationLog sets the "communication_log" field.
func (_u *AnalysisReportUpdate) SetCommunicationLog(v []map[string]interface{}) *AnalysisReportUpdate {
	_u.mutation.SetCommunicationLog(v)
	return _u
}

// AppendCommunicationLog appends value to the "communication_log" field.
func (_u *AnalysisReportUpdate) AppendCommunicationLog(v []map[string]interface{}) *AnalysisReportUpdate {
	_u.mutation.AppendCommunicationLog(v)
	return _u
}

// ClearCommunicationLog clears the value of the "communication_log" field.
func (_u *AnalysisReportUpdate) ClearCommunicationLog() *AnalysisReportUpdate {
	_u.mutation.ClearCommunicationLog()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisReportUpdate) SetCompletedAt(v time.Time) *AnalysisReportUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisReportUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisReportUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisReportUpdate) ClearCompletedAt() *AnalysisReportUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AnalysisReportMutation object of the builder.
func (_u *AnalysisReportUpdate) Mutation() *AnalysisReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisReportUpdate) check() error {
	if v, ok := _u.mutation.Depth(); ok {
		if err := analysisreport.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := analysisreport.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisreport.Table, analysisreport.Columns, sqlgraph.NewFieldSpec(analysisreport.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(analysisreport.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnalysisType(); ok {
		_spec.SetField(analysisreport.FieldAnalysisType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(analysisreport.FieldDepth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(analysisreport.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisreport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysisreport.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(analysisreport.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.InsightIds(); ok {
		_spec.SetField(analysisreport.FieldInsightIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsightIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisreport.FieldInsightIds, value)
		})
	}
	if _u.mutation.InsightIdsCleared() {
		_spec.ClearField(analysisreport.FieldInsightIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(analysisreport.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisreport.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(analysisreport.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommunicationLog(); ok {
		_spec.SetField(analysisreport.FieldCommunicationLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommunicationLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisreport.FieldCommunicationLog, value)
		})
	}
	if _u.mutation.CommunicationLogCleared() {
		_spec.ClearField(analysisreport.FieldCommunicationLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisreport.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisreport.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisReportUpdateOne is the builder for updating a single AnalysisReport entity.
type AnalysisReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisReportMutation
}

// SetTitle sets the "title" field.
func (_u *AnalysisReportUpdateOne) SetTitle(v string) *AnalysisReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AnalysisReportUpdateOne) SetNillableTitle(v *string) *AnalysisReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAnalysisType sets the "analysis_type" field.
func (_u *AnalysisReportUpdateOne) SetAnalysisType(v string) *AnalysisReportUpdateOne {
	_u.mutation.SetAnalysisType(v)
	return _u
}

// SetNillableAnalysisType sets the "analysis_type" field if the given value is not nil.
func (_u *AnalysisReportUpdateOne) SetNillableAnalysisType(v *string) *AnalysisReportUpdateOne {
	if v != nil {
		_u.SetAnalysisType(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *AnalysisReportUpdateOne) SetDepth(v analysisreport.Depth) *AnalysisReportUpdateOne {
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *AnalysisReportUpdateOne) SetNillableDepth(v *analysisreport.Depth) *AnalysisReportUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *AnalysisReportUpdateOne) SetStrategy(v analysisreport.Strategy) *AnalysisReportUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *AnalysisReportUpdateOne) SetNillableStrategy(v *analysisreport.Strategy) *AnalysisReportUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisReportUpdateOne) SetStatus(v analysisreport.Status) *AnalysisReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisReportUpdateOne) SetNillableStatus(v *analysisreport.Status) *AnalysisReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisReportUpdateOne) SetSummary(v string) *AnalysisReportUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisReportUpdateOne) SetNillableSummary(v *string) *AnalysisReportUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AnalysisReportUpdateOne) ClearSummary() *AnalysisReportUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetInsightIds sets the "insight_ids" field.
func (_u *AnalysisReportUpdateOne) SetInsightIds(v []string) *AnalysisReportUpdateOne {
	_u.mutation.SetInsightIds(v)
	return _u
}

// AppendInsightIds appends value to the "insight_ids" field.
func (_u *AnalysisReportUpdateOne) AppendInsightIds(v []string) *AnalysisReportUpdateOne {
	_u.mutation.AppendInsightIds(v)
	return _u
}

// ClearInsightIds clears the value of the "insight_ids" field.
func (_u *AnalysisReportUpdateOne) ClearInsightIds() *AnalysisReportUpdateOne {
	_u.mutation.ClearInsightIds()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *AnalysisReportUpdateOne) SetArtifacts(v []string) *AnalysisReportUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *AnalysisReportUpdateOne) AppendArtifacts(v []string) *AnalysisReportUpdateOne {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *AnalysisReportUpdateOne) ClearArtifacts() *AnalysisReportUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetCommunicationLog sets the "communication_log" field.
func (_u *AnalysisReportUpdateOne) SetCommunicationLog(v []map[string]interface{}) *AnalysisReportUpdateOne {
	_u.mutation.SetCommunicationLog(v)
	return _u
}

// AppendCommunicationLog appends value to the "communication_log" field.
func (_u *AnalysisReportUpdateOne) AppendCommunicationLog(v []map[string]interface{}) *AnalysisReportUpdateOne {
	_u.mutation.AppendCommunicationLog(v)
	return _u
}

// ClearCommunicationLog clears the value of the "communication_log" field.
func (_u *AnalysisReportUpdateOne) ClearCommunicationLog() *AnalysisReportUpdateOne {
	_u.mutation.ClearCommunicationLog()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisReportUpdateOne) SetCompletedAt(v time.Time) *AnalysisReportUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisReportUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisReportUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisReportUpdateOne) ClearCompletedAt() *AnalysisReportUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AnalysisReportMutation object of the builder.
func (_u *AnalysisReportUpdateOne) Mutation() *AnalysisReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisReportUpdate builder.
func (_u *AnalysisReportUpdateOne) Where(ps ...predicate.AnalysisReport) *AnalysisReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisReportUpdateOne) Select(field string, fields ...string) *AnalysisReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisReport entity.
func (_u *AnalysisReportUpdateOne) Save(ctx context.Context) (*AnalysisReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisReportUpdateOne) SaveX(ctx context.Context) *AnalysisReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisReportUpdateOne) check() error {
	if v, ok := _u.mutation.Depth(); ok {
		if err := analysisreport.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := analysisreport.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisReport.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisReportUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisreport.Table, analysisreport.Columns, sqlgraph.NewFieldSpec(analysisreport.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisreport.FieldID)
		for _, f := range fields {
			if !analysisreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisreport.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(analysisreport.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnalysisType(); ok {
		_spec.SetField(analysisreport.FieldAnalysisType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(analysisreport.FieldDepth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(analysisreport.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisreport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysisreport.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(analysisreport.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.InsightIds(); ok {
		_spec.SetField(analysisreport.FieldInsightIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsightIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisreport.FieldInsightIds, value)
		})
	}
	if _u.mutation.InsightIdsCleared() {
		_spec.ClearField(analysisreport.FieldInsightIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(analysisreport.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisreport.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(analysisreport.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommunicationLog(); ok {
		_spec.SetField(analysisreport.FieldCommunicationLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCommunicationLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisreport.FieldCommunicationLog, value)
		})
	}
	if _u.mutation.CommunicationLogCleared() {
		_spec.ClearField(analysisreport.FieldCommunicationLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisreport.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisreport.FieldCompletedAt, field.TypeTime)
	}
	_node = &AnalysisReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
