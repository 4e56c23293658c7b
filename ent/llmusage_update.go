// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aether-home/aether/ent/llmusage"
	"github.com/aether-home/aether/ent/predicate"
)

// LLMUsageUpdate is the builder for updating LLMUsage entities.
type LLMUsageUpdate struct {
	config
	hooks    []Hook
	mutation *LLMUsageMutation
}

// Where appends a list predicates to the LLMUsageUpdate builder.
func (_u *LLMUsageUpdate) Where(ps ...predicate.LLMUsage) *LLMUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *LLMUsageUpdate) SetConversationID(v string) *LLMUsageUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillableConversationID(v *string) *LLMUsageUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *LLMUsageUpdate) ClearConversationID() *LLMUsageUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *LLMUsageUpdate) SetTraceID(v string) *LLMUsageUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillableTraceID(v *string) *LLMUsageUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *LLMUsageUpdate) ClearTraceID() *LLMUsageUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetSpanKind sets the "span_kind" field.
func (_u *LLMUsageUpdate) SetSpanKind(v string) *LLMUsageUpdate {
	_u.mutation.SetSpanKind(v)
	return _u
}

// SetNillableSpanKind sets the "span_kind" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillableSpanKind(v *string) *LLMUsageUpdate {
	if v != nil {
		_u.SetSpanKind(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *LLMUsageUpdate) SetAgentName(v string) *LLMUsageUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillableAgentName(v *string) *LLMUsageUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *LLMUsageUpdate) ClearAgentName() *LLMUsageUpdate {
	_u.mutation.ClearAgentName()
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMUsageUpdate) SetModel(v string) *LLMUsageUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillableModel(v *string) *LLMUsageUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *LLMUsageUpdate) ClearModel() *LLMUsageUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMUsageUpdate) SetPromptTokens(v int) *LLMUsageUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillablePromptTokens(v *int) *LLMUsageUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMUsageUpdate) AddPromptTokens(v int) *LLMUsageUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMUsageUpdate) SetCompletionTokens(v int) *LLMUsageUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillableCompletionTokens(v *int) *LLMUsageUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMUsageUpdate) AddCompletionTokens(v int) *LLMUsageUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *LLMUsageUpdate) SetLatencyMs(v int) *LLMUsageUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillableLatencyMs(v *int) *LLMUsageUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *LLMUsageUpdate) AddLatencyMs(v int) *LLMUsageUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *LLMUsageUpdate) SetIsError(v bool) *LLMUsageUpdate {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *LLMUsageUpdate) SetNillableIsError(v *bool) *LLMUsageUpdate {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// Mutation returns the LLMUsageMutation object of the builder.
func (_u *LLMUsageUpdate) Mutation() *LLMUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmusage.Table, llmusage.Columns, sqlgraph.NewFieldSpec(llmusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(llmusage.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(llmusage.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(llmusage.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(llmusage.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.SpanKind(); ok {
		_spec.SetField(llmusage.FieldSpanKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(llmusage.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(llmusage.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmusage.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(llmusage.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llmusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llmusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llmusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llmusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(llmusage.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(llmusage.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(llmusage.FieldIsError, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMUsageUpdateOne is the builder for updating a single LLMUsage entity.
type LLMUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMUsageMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *LLMUsageUpdateOne) SetConversationID(v string) *LLMUsageUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillableConversationID(v *string) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *LLMUsageUpdateOne) ClearConversationID() *LLMUsageUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *LLMUsageUpdateOne) SetTraceID(v string) *LLMUsageUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillableTraceID(v *string) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *LLMUsageUpdateOne) ClearTraceID() *LLMUsageUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetSpanKind sets the "span_kind" field.
func (_u *LLMUsageUpdateOne) SetSpanKind(v string) *LLMUsageUpdateOne {
	_u.mutation.SetSpanKind(v)
	return _u
}

// SetNillableSpanKind sets the "span_kind" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillableSpanKind(v *string) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetSpanKind(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *LLMUsageUpdateOne) SetAgentName(v string) *LLMUsageUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillableAgentName(v *string) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *LLMUsageUpdateOne) ClearAgentName() *LLMUsageUpdateOne {
	_u.mutation.ClearAgentName()
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMUsageUpdateOne) SetModel(v string) *LLMUsageUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillableModel(v *string) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *LLMUsageUpdateOne) ClearModel() *LLMUsageUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMUsageUpdateOne) SetPromptTokens(v int) *LLMUsageUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillablePromptTokens(v *int) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMUsageUpdateOne) AddPromptTokens(v int) *LLMUsageUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMUsageUpdateOne) SetCompletionTokens(v int) *LLMUsageUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillableCompletionTokens(v *int) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMUsageUpdateOne) AddCompletionTokens(v int) *LLMUsageUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *LLMUsageUpdateOne) SetLatencyMs(v int) *LLMUsageUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillableLatencyMs(v *int) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *LLMUsageUpdateOne) AddLatencyMs(v int) *LLMUsageUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *LLMUsageUpdateOne) SetIsError(v bool) *LLMUsageUpdateOne {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *LLMUsageUpdateOne) SetNillableIsError(v *bool) *LLMUsageUpdateOne {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// Mutation returns the LLMUsageMutation object of the builder.
func (_u *LLMUsageUpdateOne) Mutation() *LLMUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMUsageUpdate builder.
func (_u *LLMUsageUpdateOne) Where(ps ...predicate.LLMUsage) *LLMUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMUsageUpdateOne) Select(field string, fields ...string) *LLMUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMUsage entity.
func (_u *LLMUsageUpdateOne) Save(ctx context.Context) (*LLMUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMUsageUpdateOne) SaveX(ctx context.Context) *LLMUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMUsageUpdateOne) sqlSave(ctx context.Context) (_node *LLMUsage, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmusage.Table, llmusage.Columns, sqlgraph.NewFieldSpec(llmusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmusage.FieldID)
		for _, f := range fields {
			if !llmusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmusage.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(llmusage.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(llmusage.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(llmusage.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(llmusage.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.SpanKind(); ok {
		_spec.SetField(llmusage.FieldSpanKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(llmusage.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(llmusage.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmusage.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(llmusage.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llmusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llmusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llmusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llmusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(llmusage.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(llmusage.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(llmusage.FieldIsError, field.TypeBool, value)
	}
	_node = &LLMUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
