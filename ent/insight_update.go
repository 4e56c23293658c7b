// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/ent/predicate"
)

// InsightUpdate is the builder for updating Insight entities.
type InsightUpdate struct {
	config
	hooks    []Hook
	mutation *InsightMutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdate) Where(ps ...predicate.Insight) *InsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *InsightUpdate) SetCategory(v string) *InsightUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableCategory(v *string) *InsightUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InsightUpdate) SetTitle(v string) *InsightUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableTitle(v *string) *InsightUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InsightUpdate) SetDescription(v string) *InsightUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableDescription(v *string) *InsightUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *InsightUpdate) SetEvidence(v map[string]interface{}) *InsightUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *InsightUpdate) ClearEvidence() *InsightUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InsightUpdate) SetConfidence(v float64) *InsightUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableConfidence(v *float64) *InsightUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InsightUpdate) AddConfidence(v float64) *InsightUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetImpact sets the "impact" field.
func (_u *InsightUpdate) SetImpact(v insight.Impact) *InsightUpdate {
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableImpact(v *insight.Impact) *InsightUpdate {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// SetEntityIds sets the "entity_ids" field.
func (_u *InsightUpdate) SetEntityIds(v []string) *InsightUpdate {
	_u.mutation.SetEntityIds(v)
	return _u
}

// AppendEntityIds appends value to the "entity_ids" field.
func (_u *InsightUpdate) AppendEntityIds(v []string) *InsightUpdate {
	_u.mutation.AppendEntityIds(v)
	return _u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (_u *InsightUpdate) ClearEntityIds() *InsightUpdate {
	_u.mutation.ClearEntityIds()
	return _u
}

// SetScriptPath sets the "script_path" field.
func (_u *InsightUpdate) SetScriptPath(v string) *InsightUpdate {
	_u.mutation.SetScriptPath(v)
	return _u
}

// SetNillableScriptPath sets the "script_path" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableScriptPath(v *string) *InsightUpdate {
	if v != nil {
		_u.SetScriptPath(*v)
	}
	return _u
}

// ClearScriptPath clears the value of the "script_path" field.
func (_u *InsightUpdate) ClearScriptPath() *InsightUpdate {
	_u.mutation.ClearScriptPath()
	return _u
}

// SetScriptOutput sets the "script_output" field.
func (_u *InsightUpdate) SetScriptOutput(v string) *InsightUpdate {
	_u.mutation.SetScriptOutput(v)
	return _u
}

// SetNillableScriptOutput sets the "script_output" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableScriptOutput(v *string) *InsightUpdate {
	if v != nil {
		_u.SetScriptOutput(*v)
	}
	return _u
}

// ClearScriptOutput clears the value of the "script_output" field.
func (_u *InsightUpdate) ClearScriptOutput() *InsightUpdate {
	_u.mutation.ClearScriptOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InsightUpdate) SetStatus(v insight.Status) *InsightUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableStatus(v *insight.Status) *InsightUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *InsightUpdate) SetConversationID(v string) *InsightUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableConversationID(v *string) *InsightUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *InsightUpdate) ClearConversationID() *InsightUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetScheduleID sets the "schedule_id" field.
func (_u *InsightUpdate) SetScheduleID(v string) *InsightUpdate {
	_u.mutation.SetScheduleID(v)
	return _u
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableScheduleID(v *string) *InsightUpdate {
	if v != nil {
		_u.SetScheduleID(*v)
	}
	return _u
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (_u *InsightUpdate) ClearScheduleID() *InsightUpdate {
	_u.mutation.ClearScheduleID()
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdate) Mutation() *InsightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdate) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := insight.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Insight.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Impact(); ok {
		if err := insight.ImpactValidator(v); err != nil {
			return &ValidationError{Name: "impact", err: fmt.Errorf(`ent: validator failed for field "Insight.impact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := insight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Insight.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(insight.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(insight.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(insight.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(insight.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(insight.FieldImpact, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityIds(); ok {
		_spec.SetField(insight.FieldEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldEntityIds, value)
		})
	}
	if _u.mutation.EntityIdsCleared() {
		_spec.ClearField(insight.FieldEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScriptPath(); ok {
		_spec.SetField(insight.FieldScriptPath, field.TypeString, value)
	}
	if _u.mutation.ScriptPathCleared() {
		_spec.ClearField(insight.FieldScriptPath, field.TypeString)
	}
	if value, ok := _u.mutation.ScriptOutput(); ok {
		_spec.SetField(insight.FieldScriptOutput, field.TypeString, value)
	}
	if _u.mutation.ScriptOutputCleared() {
		_spec.ClearField(insight.FieldScriptOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(insight.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(insight.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(insight.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduleID(); ok {
		_spec.SetField(insight.FieldScheduleID, field.TypeString, value)
	}
	if _u.mutation.ScheduleIDCleared() {
		_spec.ClearField(insight.FieldScheduleID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightUpdateOne is the builder for updating a single Insight entity.
type InsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightMutation
}

// SetCategory sets the "category" field.
func (_u *InsightUpdateOne) SetCategory(v string) *InsightUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableCategory(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InsightUpdateOne) SetTitle(v string) *InsightUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableTitle(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InsightUpdateOne) SetDescription(v string) *InsightUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableDescription(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *InsightUpdateOne) SetEvidence(v map[string]interface{}) *InsightUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *InsightUpdateOne) ClearEvidence() *InsightUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InsightUpdateOne) SetConfidence(v float64) *InsightUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableConfidence(v *float64) *InsightUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InsightUpdateOne) AddConfidence(v float64) *InsightUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetImpact sets the "impact" field.
func (_u *InsightUpdateOne) SetImpact(v insight.Impact) *InsightUpdateOne {
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableImpact(v *insight.Impact) *InsightUpdateOne {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// SetEntityIds sets the "entity_ids" field.
func (_u *InsightUpdateOne) SetEntityIds(v []string) *InsightUpdateOne {
	_u.mutation.SetEntityIds(v)
	return _u
}

// AppendEntityIds appends value to the "entity_ids" field.
func (_u *InsightUpdateOne) AppendEntityIds(v []string) *InsightUpdateOne {
	_u.mutation.AppendEntityIds(v)
	return _u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (_u *InsightUpdateOne) ClearEntityIds() *InsightUpdateOne {
	_u.mutation.ClearEntityIds()
	return _u
}

// SetScriptPath sets the "script_path" field.
func (_u *InsightUpdateOne) SetScriptPath(v string) *InsightUpdateOne {
	_u.mutation.SetScriptPath(v)
	return _u
}

// SetNillableScriptPath sets the "script_path" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableScriptPath(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetScriptPath(*v)
	}
	return _u
}

// ClearScriptPath clears the value of the "script_path" field.
func (_u *InsightUpdateOne) ClearScriptPath() *InsightUpdateOne {
	_u.mutation.ClearScriptPath()
	return _u
}

// SetScriptOutput sets the "script_output" field.
func (_u *InsightUpdateOne) SetScriptOutput(v string) *InsightUpdateOne {
	_u.mutation.SetScriptOutput(v)
	return _u
}

// SetNillableScriptOutput sets the "script_output" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableScriptOutput(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetScriptOutput(*v)
	}
	return _u
}

// ClearScriptOutput clears the value of the "script_output" field.
func (_u *InsightUpdateOne) ClearScriptOutput() *InsightUpdateOne {
	_u.mutation.ClearScriptOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InsightUpdateOne) SetStatus(v insight.Status) *InsightUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableStatus(v *insight.Status) *InsightUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *InsightUpdateOne) SetConversationID(v string) *InsightUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableConversationID(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *InsightUpdateOne) ClearConversationID() *InsightUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetScheduleID sets the "schedule_id" field.
func (_u *InsightUpdateOne) SetScheduleID(v string) *InsightUpdateOne {
	_u.mutation.SetScheduleID(v)
	return _u
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableScheduleID(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetScheduleID(*v)
	}
	return _u
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (_u *InsightUpdateOne) ClearScheduleID() *InsightUpdateOne {
	_u.mutation.ClearScheduleID()
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdateOne) Mutation() *InsightMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdateOne) Where(ps ...predicate.Insight) *InsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightUpdateOne) Select(field string, fields ...string) *InsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Insight entity.
func (_u *InsightUpdateOne) Save(ctx context.Context) (*Insight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdateOne) SaveX(ctx context.Context) *Insight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdateOne) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := insight.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Insight.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Impact(); ok {
		if err := insight.ImpactValidator(v); err != nil {
			return &ValidationError{Name: "impact", err: fmt.Errorf(`ent: validator failed for field "Insight.impact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := insight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Insight.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightUpdateOne) sqlSave(ctx context.Context) (_node *Insight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for _, f := range fields {
			if !insight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insight.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(insight.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(insight.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(insight.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(insight.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(insight.FieldImpact, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityIds(); ok {
		_spec.SetField(insight.FieldEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldEntityIds, value)
		})
	}
	if _u.mutation.EntityIdsCleared() {
		_spec.ClearField(insight.FieldEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScriptPath(); ok {
		_spec.SetField(insight.FieldScriptPath, field.TypeString, value)
	}
	if _u.mutation.ScriptPathCleared() {
		_spec.ClearField(insight.FieldScriptPath, field.TypeString)
	}
	if value, ok := _u.mutation.ScriptOutput(); ok {
		_spec.SetField(insight.FieldScriptOutput, field.TypeString, value)
	}
	if _u.mutation.ScriptOutputCleared() {
		_spec.ClearField(insight.FieldScriptOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(insight.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(insight.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(insight.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduleID(); ok {
		_spec.SetField(insight.FieldScheduleID, field.TypeString, value)
	}
	if _u.mutation.ScheduleIDCleared() {
		_spec.ClearField(insight.FieldScheduleID, field.TypeString)
	}
	_node = &Insight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
