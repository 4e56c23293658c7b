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
	"github.com/aether-home/aether/ent/llmusage"
)

// LLMUsageCreate is the builder for creating a LLMUsage entity.
type LLMUsageCreate struct {
	config
	mutation *LLMUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *LLMUsageCreate) SetConversationID(v string) *LLMUsageCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableConversationID(v *string) *LLMUsageCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *LLMUsageCreate) SetTraceID(v string) *LLMUsageCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableTraceID(v *string) *LLMUsageCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetSpanKind sets the "span_kind" field.
func (_c *LLMUsageCreate) SetSpanKind(v string) *LLMUsageCreate {
	_c.mutation.SetSpanKind(v)
	return _c
}

// SetNillableSpanKind sets the "span_kind" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableSpanKind(v *string) *LLMUsageCreate {
	if v != nil {
		_c.SetSpanKind(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *LLMUsageCreate) SetAgentName(v string) *LLMUsageCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableAgentName(v *string) *LLMUsageCreate {
	if v != nil {
		_c.SetAgentName(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMUsageCreate) SetModel(v string) *LLMUsageCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableModel(v *string) *LLMUsageCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *LLMUsageCreate) SetPromptTokens(v int) *LLMUsageCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillablePromptTokens(v *int) *LLMUsageCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *LLMUsageCreate) SetCompletionTokens(v int) *LLMUsageCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableCompletionTokens(v *int) *LLMUsageCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *LLMUsageCreate) SetLatencyMs(v int) *LLMUsageCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableLatencyMs(v *int) *LLMUsageCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetIsError sets the "is_error" field.
func (_c *LLMUsageCreate) SetIsError(v bool) *LLMUsageCreate {
	_c.mutation.SetIsError(v)
	return _c
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableIsError(v *bool) *LLMUsageCreate {
	if v != nil {
		_c.SetIsError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMUsageCreate) SetCreatedAt(v time.Time) *LLMUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMUsageCreate) SetNillableCreatedAt(v *time.Time) *LLMUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMUsageCreate) SetID(v string) *LLMUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LLMUsageMutation object of the builder.
func (_c *LLMUsageCreate) Mutation() *LLMUsageMutation {
	return _c.mutation
}

// Save creates the LLMUsage in the database.
func (_c *LLMUsageCreate) Save(ctx context.Context) (*LLMUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMUsageCreate) SaveX(ctx context.Context) *LLMUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMUsageCreate) defaults() {
	if _, ok := _c.mutation.SpanKind(); !ok {
		v := llmusage.DefaultSpanKind
		_c.mutation.SetSpanKind(v)
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := llmusage.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := llmusage.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := llmusage.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.IsError(); !ok {
		v := llmusage.DefaultIsError
		_c.mutation.SetIsError(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMUsageCreate) check() error {
	if _, ok := _c.mutation.SpanKind(); !ok {
		return &ValidationError{Name: "span_kind", err: errors.New(`ent: missing required field "LLMUsage.span_kind"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "LLMUsage.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "LLMUsage.completion_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "LLMUsage.latency_ms"`)}
	}
	if _, ok := _c.mutation.IsError(); !ok {
		return &ValidationError{Name: "is_error", err: errors.New(`ent: missing required field "LLMUsage.is_error"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMUsage.created_at"`)}
	}
	return nil
}

func (_c *LLMUsageCreate) sqlSave(ctx context.Context) (*LLMUsage, error) {
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
			return nil, fmt.Errorf("unexpected LLMUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMUsageCreate) createSpec() (*LLMUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmusage.Table, sqlgraph.NewFieldSpec(llmusage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(llmusage.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(llmusage.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.SpanKind(); ok {
		_spec.SetField(llmusage.FieldSpanKind, field.TypeString, value)
		_node.SpanKind = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(llmusage.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmusage.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(llmusage.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(llmusage.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(llmusage.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.IsError(); ok {
		_spec.SetField(llmusage.FieldIsError, field.TypeBool, value)
		_node.IsError = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMUsage.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMUsageUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMUsageCreate) OnConflict(opts ...sql.ConflictOption) *LLMUsageUpsertOne {
	_c.conflict = opts
	return &LLMUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMUsageCreate) OnConflictColumns(columns ...string) *LLMUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMUsageUpsertOne{
		create: _c,
	}
}

type (
	// LLMUsageUpsertOne is the builder for "upsert"-ing
	//  one LLMUsage node.
	LLMUsageUpsertOne struct {
		create *LLMUsageCreate
	}

	// LLMUsageUpsert is the "OnConflict" setter.
	LLMUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetConversationID sets the "conversation_id" field.
func (u *LLMUsageUpsert) SetConversationID(v string) *LLMUsageUpsert {
	u.Set(llmusage.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdateConversationID() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldConversationID)
	return u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *LLMUsageUpsert) ClearConversationID() *LLMUsageUpsert {
	u.SetNull(llmusage.FieldConversationID)
	return u
}

// SetTraceID sets the "trace_id" field.
func (u *LLMUsageUpsert) SetTraceID(v string) *LLMUsageUpsert {
	u.Set(llmusage.FieldTraceID, v)
	return u
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdateTraceID() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldTraceID)
	return u
}

// ClearTraceID clears the value of the "trace_id" field.
func (u *LLMUsageUpsert) ClearTraceID() *LLMUsageUpsert {
	u.SetNull(llmusage.FieldTraceID)
	return u
}

// SetSpanKind sets the "span_kind" field.
func (u *LLMUsageUpsert) SetSpanKind(v string) *LLMUsageUpsert {
	u.Set(llmusage.FieldSpanKind, v)
	return u
}

// UpdateSpanKind sets the "span_kind" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdateSpanKind() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldSpanKind)
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *LLMUsageUpsert) SetAgentName(v string) *LLMUsageUpsert {
	u.Set(llmusage.FieldAgentName, v)
	return u
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdateAgentName() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldAgentName)
	return u
}

// ClearAgentName clears the value of the "agent_name" field.
func (u *LLMUsageUpsert) ClearAgentName() *LLMUsageUpsert {
	u.SetNull(llmusage.FieldAgentName)
	return u
}

// SetModel sets the "model" field.
func (u *LLMUsageUpsert) SetModel(v string) *LLMUsageUpsert {
	u.Set(llmusage.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdateModel() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *LLMUsageUpsert) ClearModel() *LLMUsageUpsert {
	u.SetNull(llmusage.FieldModel)
	return u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMUsageUpsert) SetPromptTokens(v int) *LLMUsageUpsert {
	u.Set(llmusage.FieldPromptTokens, v)
	return u
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdatePromptTokens() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldPromptTokens)
	return u
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMUsageUpsert) AddPromptTokens(v int) *LLMUsageUpsert {
	u.Add(llmusage.FieldPromptTokens, v)
	return u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMUsageUpsert) SetCompletionTokens(v int) *LLMUsageUpsert {
	u.Set(llmusage.FieldCompletionTokens, v)
	return u
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdateCompletionTokens() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldCompletionTokens)
	return u
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMUsageUpsert) AddCompletionTokens(v int) *LLMUsageUpsert {
	u.Add(llmusage.FieldCompletionTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMUsageUpsert) SetLatencyMs(v int) *LLMUsageUpsert {
	u.Set(llmusage.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdateLatencyMs() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMUsageUpsert) AddLatencyMs(v int) *LLMUsageUpsert {
	u.Add(llmusage.FieldLatencyMs, v)
	return u
}

// SetIsError sets the "is_error" field.
func (u *LLMUsageUpsert) SetIsError(v bool) *LLMUsageUpsert {
	u.Set(llmusage.FieldIsError, v)
	return u
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *LLMUsageUpsert) UpdateIsError() *LLMUsageUpsert {
	u.SetExcluded(llmusage.FieldIsError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LLMUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMUsageUpsertOne) UpdateNewValues() *LLMUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(llmusage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llmusage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMUsageUpsertOne) Ignore() *LLMUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMUsageUpsertOne) DoNothing() *LLMUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMUsageCreate.OnConflict
// documentation for more info.
func (u *LLMUsageUpsertOne) Update(set func(*LLMUsageUpsert)) *LLMUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *LLMUsageUpsertOne) SetConversationID(v string) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdateConversationID() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *LLMUsageUpsertOne) ClearConversationID() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.ClearConversationID()
	})
}

// SetTraceID sets the "trace_id" field.
func (u *LLMUsageUpsertOne) SetTraceID(v string) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetTraceID(v)
	})
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdateTraceID() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateTraceID()
	})
}

// ClearTraceID clears the value of the "trace_id" field.
func (u *LLMUsageUpsertOne) ClearTraceID() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.ClearTraceID()
	})
}

// SetSpanKind sets the "span_kind" field.
func (u *LLMUsageUpsertOne) SetSpanKind(v string) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetSpanKind(v)
	})
}

// UpdateSpanKind sets the "span_kind" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdateSpanKind() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateSpanKind()
	})
}

// SetAgentName sets the "agent_name" field.
func (u *LLMUsageUpsertOne) SetAgentName(v string) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdateAgentName() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateAgentName()
	})
}

// ClearAgentName clears the value of the "agent_name" field.
func (u *LLMUsageUpsertOne) ClearAgentName() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.ClearAgentName()
	})
}

// SetModel sets the "model" field.
func (u *LLMUsageUpsertOne) SetModel(v string) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdateModel() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *LLMUsageUpsertOne) ClearModel() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.ClearModel()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMUsageUpsertOne) SetPromptTokens(v int) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMUsageUpsertOne) AddPromptTokens(v int) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdatePromptTokens() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdatePromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMUsageUpsertOne) SetCompletionTokens(v int) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMUsageUpsertOne) AddCompletionTokens(v int) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdateCompletionTokens() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateCompletionTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMUsageUpsertOne) SetLatencyMs(v int) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMUsageUpsertOne) AddLatencyMs(v int) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdateLatencyMs() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetIsError sets the "is_error" field.
func (u *LLMUsageUpsertOne) SetIsError(v bool) *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetIsError(v)
	})
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *LLMUsageUpsertOne) UpdateIsError() *LLMUsageUpsertOne {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateIsError()
	})
}

// Exec executes the query.
func (u *LLMUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMUsageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LLMUsageUpsertOne.ID is not supported by MySQL driver. Use LLMUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMUsageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMUsageCreateBulk is the builder for creating many LLMUsage entities in bulk.
type LLMUsageCreateBulk struct {
	config
	err      error
	builders []*LLMUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMUsage entities in the database.
func (_c *LLMUsageCreateBulk) Save(ctx context.Context) ([]*LLMUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMUsageMutation)
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
func (_c *LLMUsageCreateBulk) SaveX(ctx context.Context) []*LLMUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMUsageUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMUsageUpsertBulk {
	_c.conflict = opts
	return &LLMUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMUsageCreateBulk) OnConflictColumns(columns ...string) *LLMUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMUsageUpsertBulk{
		create: _c,
	}
}

// LLMUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMUsage nodes.
type LLMUsageUpsertBulk struct {
	create *LLMUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMUsageUpsertBulk) UpdateNewValues() *LLMUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(llmusage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llmusage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMUsageUpsertBulk) Ignore() *LLMUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMUsageUpsertBulk) DoNothing() *LLMUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMUsageCreateBulk.OnConflict
// documentation for more info.
func (u *LLMUsageUpsertBulk) Update(set func(*LLMUsageUpsert)) *LLMUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *LLMUsageUpsertBulk) SetConversationID(v string) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdateConversationID() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *LLMUsageUpsertBulk) ClearConversationID() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.ClearConversationID()
	})
}

// SetTraceID sets the "trace_id" field.
func (u *LLMUsageUpsertBulk) SetTraceID(v string) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetTraceID(v)
	})
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdateTraceID() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateTraceID()
	})
}

// ClearTraceID clears the value of the "trace_id" field.
func (u *LLMUsageUpsertBulk) ClearTraceID() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.ClearTraceID()
	})
}

// SetSpanKind sets the "span_kind" field.
func (u *LLMUsageUpsertBulk) SetSpanKind(v string) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetSpanKind(v)
	})
}

// UpdateSpanKind sets the "span_kind" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdateSpanKind() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateSpanKind()
	})
}

// SetAgentName sets the "agent_name" field.
func (u *LLMUsageUpsertBulk) SetAgentName(v string) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdateAgentName() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateAgentName()
	})
}

// ClearAgentName clears the value of the "agent_name" field.
func (u *LLMUsageUpsertBulk) ClearAgentName() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.ClearAgentName()
	})
}

// SetModel sets the "model" field.
func (u *LLMUsageUpsertBulk) SetModel(v string) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdateModel() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *LLMUsageUpsertBulk) ClearModel() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.ClearModel()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMUsageUpsertBulk) SetPromptTokens(v int) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMUsageUpsertBulk) AddPromptTokens(v int) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdatePromptTokens() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdatePromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMUsageUpsertBulk) SetCompletionTokens(v int) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMUsageUpsertBulk) AddCompletionTokens(v int) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdateCompletionTokens() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateCompletionTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *LLMUsageUpsertBulk) SetLatencyMs(v int) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *LLMUsageUpsertBulk) AddLatencyMs(v int) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdateLatencyMs() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetIsError sets the "is_error" field.
func (u *LLMUsageUpsertBulk) SetIsError(v bool) *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.SetIsError(v)
	})
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *LLMUsageUpsertBulk) UpdateIsError() *LLMUsageUpsertBulk {
	return u.Update(func(s *LLMUsageUpsert) {
		s.UpdateIsError()
	})
}

// Exec executes the query.
func (u *LLMUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
