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
	"github.com/aether-home/aether/ent/insight"
)

// InsightCreate is the builder for creating a Insight entity.
type InsightCreate struct {
	config
	mutation *InsightMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCategory sets the "category" field.
func (_c *InsightCreate) SetCategory(v string) *InsightCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *InsightCreate) SetTitle(v string) *InsightCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InsightCreate) SetDescription(v string) *InsightCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *InsightCreate) SetEvidence(v map[string]interface{}) *InsightCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InsightCreate) SetConfidence(v float64) *InsightCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *InsightCreate) SetNillableConfidence(v *float64) *InsightCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetImpact sets the "impact" field.
func (_c *InsightCreate) SetImpact(v insight.Impact) *InsightCreate {
	_c.mutation.SetImpact(v)
	return _c
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_c *InsightCreate) SetNillableImpact(v *insight.Impact) *InsightCreate {
	if v != nil {
		_c.SetImpact(*v)
	}
	return _c
}

// SetEntityIds sets the "entity_ids" field.
func (_c *InsightCreate) SetEntityIds(v []string) *InsightCreate {
	_c.mutation.SetEntityIds(v)
	return _c
}

// SetScriptPath sets the "script_path" field.
func (_c *InsightCreate) SetScriptPath(v string) *InsightCreate {
	_c.mutation.SetScriptPath(v)
	return _c
}

// SetNillableScriptPath sets the "script_path" field if the given value is not nil.
func (_c *InsightCreate) SetNillableScriptPath(v *string) *InsightCreate {
	if v != nil {
		_c.SetScriptPath(*v)
	}
	return _c
}

// SetScriptOutput sets the "script_output" field.
func (_c *InsightCreate) SetScriptOutput(v string) *InsightCreate {
	_c.mutation.SetScriptOutput(v)
	return _c
}

// SetNillableScriptOutput sets the "script_output" field if the given value is not nil.
func (_c *InsightCreate) SetNillableScriptOutput(v *string) *InsightCreate {
	if v != nil {
		_c.SetScriptOutput(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InsightCreate) SetStatus(v insight.Status) *InsightCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InsightCreate) SetNillableStatus(v *insight.Status) *InsightCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *InsightCreate) SetConversationID(v string) *InsightCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *InsightCreate) SetNillableConversationID(v *string) *InsightCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetScheduleID sets the "schedule_id" field.
func (_c *InsightCreate) SetScheduleID(v string) *InsightCreate {
	_c.mutation.SetScheduleID(v)
	return _c
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_c *InsightCreate) SetNillableScheduleID(v *string) *InsightCreate {
	if v != nil {
		_c.SetScheduleID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightCreate) SetCreatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableCreatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightCreate) SetID(v string) *InsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InsightMutation object of the builder.
func (_c *InsightCreate) Mutation() *InsightMutation {
	return _c.mutation
}

// Save creates the Insight in the database.
func (_c *InsightCreate) Save(ctx context.Context) (*Insight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightCreate) SaveX(ctx context.Context) *Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := insight.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Impact(); !ok {
		v := insight.DefaultImpact
		_c.mutation.SetImpact(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := insight.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Insight.category"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Insight.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Insight.description"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Insight.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := insight.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Insight.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Impact(); !ok {
		return &ValidationError{Name: "impact", err: errors.New(`ent: missing required field "Insight.impact"`)}
	}
	if v, ok := _c.mutation.Impact(); ok {
		if err := insight.ImpactValidator(v); err != nil {
			return &ValidationError{Name: "impact", err: fmt.Errorf(`ent: validator failed for field "Insight.impact": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Insight.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := insight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Insight.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Insight.created_at"`)}
	}
	return nil
}

func (_c *InsightCreate) sqlSave(ctx context.Context) (*Insight, error) {
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
			return nil, fmt.Errorf("unexpected Insight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightCreate) createSpec() (*Insight, *sqlgraph.CreateSpec) {
	var (
		_node = &Insight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insight.Table, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(insight.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(insight.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Impact(); ok {
		_spec.SetField(insight.FieldImpact, field.TypeEnum, value)
		_node.Impact = value
	}
	if value, ok := _c.mutation.EntityIds(); ok {
		_spec.SetField(insight.FieldEntityIds, field.TypeJSON, value)
		_node.EntityIds = value
	}
	if value, ok := _c.mutation.ScriptPath(); ok {
		_spec.SetField(insight.FieldScriptPath, field.TypeString, value)
		_node.ScriptPath = &value
	}
	if value, ok := _c.mutation.ScriptOutput(); ok {
		_spec.SetField(insight.FieldScriptOutput, field.TypeString, value)
		_node.ScriptOutput = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(insight.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(insight.FieldConversationID, field.TypeString, value)
		_node.ConversationID = &value
	}
	if value, ok := _c.mutation.ScheduleID(); ok {
		_spec.SetField(insight.FieldScheduleID, field.TypeString, value)
		_node.ScheduleID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Insight.Create().
//		SetCategory(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightUpsert) {
//			SetCategory(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightCreate) OnConflict(opts ...sql.ConflictOption) *InsightUpsertOne {
	_c.conflict = opts
	return &InsightUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightCreate) OnConflictColumns(columns ...string) *InsightUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightUpsertOne{
		create: _c,
	}
}

type (
	// InsightUpsertOne is the builder for "upsert"-ing
	//  one Insight node.
	InsightUpsertOne struct {
		create *InsightCreate
	}

	// InsightUpsert is the "OnConflict" setter.
	InsightUpsert struct {
		*sql.UpdateSet
	}
)

// SetCategory sets the "category" field.
func (u *InsightUpsert) SetCategory(v string) *InsightUpsert {
	u.Set(insight.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InsightUpsert) UpdateCategory() *InsightUpsert {
	u.SetExcluded(insight.FieldCategory)
	return u
}

// SetTitle sets the "title" field.
func (u *InsightUpsert) SetTitle(v string) *InsightUpsert {
	u.Set(insight.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InsightUpsert) UpdateTitle() *InsightUpsert {
	u.SetExcluded(insight.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *InsightUpsert) SetDescription(v string) *InsightUpsert {
	u.Set(insight.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InsightUpsert) UpdateDescription() *InsightUpsert {
	u.SetExcluded(insight.FieldDescription)
	return u
}

// SetEvidence sets the "evidence" field.
func (u *InsightUpsert) SetEvidence(v map[string]interface{}) *InsightUpsert {
	u.Set(insight.FieldEvidence, v)
	return u
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *InsightUpsert) UpdateEvidence() *InsightUpsert {
	u.SetExcluded(insight.FieldEvidence)
	return u
}

// ClearEvidence clears the value of the "evidence" field.
func (u *InsightUpsert) ClearEvidence() *InsightUpsert {
	u.SetNull(insight.FieldEvidence)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *InsightUpsert) SetConfidence(v float64) *InsightUpsert {
	u.Set(insight.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *InsightUpsert) UpdateConfidence() *InsightUpsert {
	u.SetExcluded(insight.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *InsightUpsert) AddConfidence(v float64) *InsightUpsert {
	u.Add(insight.FieldConfidence, v)
	return u
}

// SetImpact sets the "impact" field.
func (u *InsightUpsert) SetImpact(v insight.Impact) *InsightUpsert {
	u.Set(insight.FieldImpact, v)
	return u
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *InsightUpsert) UpdateImpact() *InsightUpsert {
	u.SetExcluded(insight.FieldImpact)
	return u
}

// SetEntityIds sets the "entity_ids" field.
func (u *InsightUpsert) SetEntityIds(v []string) *InsightUpsert {
	u.Set(insight.FieldEntityIds, v)
	return u
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *InsightUpsert) UpdateEntityIds() *InsightUpsert {
	u.SetExcluded(insight.FieldEntityIds)
	return u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *InsightUpsert) ClearEntityIds() *InsightUpsert {
	u.SetNull(insight.FieldEntityIds)
	return u
}

// SetScriptPath sets the "script_path" field.
func (u *InsightUpsert) SetScriptPath(v string) *InsightUpsert {
	u.Set(insight.FieldScriptPath, v)
	return u
}

// UpdateScriptPath sets the "script_path" field to the value that was provided on create.
func (u *InsightUpsert) UpdateScriptPath() *InsightUpsert {
	u.SetExcluded(insight.FieldScriptPath)
	return u
}

// ClearScriptPath clears the value of the "script_path" field.
func (u *InsightUpsert) ClearScriptPath() *InsightUpsert {
	u.SetNull(insight.FieldScriptPath)
	return u
}

// SetScriptOutput sets the "script_output" field.
func (u *InsightUpsert) SetScriptOutput(v string) *InsightUpsert {
	u.Set(insight.FieldScriptOutput, v)
	return u
}

// UpdateScriptOutput sets the "script_output" field to the value that was provided on create.
func (u *InsightUpsert) UpdateScriptOutput() *InsightUpsert {
	u.SetExcluded(insight.FieldScriptOutput)
	return u
}

// ClearScriptOutput clears the value of the "script_output" field.
func (u *InsightUpsert) ClearScriptOutput() *InsightUpsert {
	u.SetNull(insight.FieldScriptOutput)
	return u
}

// SetStatus sets the "status" field.
func (u *InsightUpsert) SetStatus(v insight.Status) *InsightUpsert {
	u.Set(insight.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InsightUpsert) UpdateStatus() *InsightUpsert {
	u.SetExcluded(insight.FieldStatus)
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *InsightUpsert) SetConversationID(v string) *InsightUpsert {
	u.Set(insight.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *InsightUpsert) UpdateConversationID() *InsightUpsert {
	u.SetExcluded(insight.FieldConversationID)
	return u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *InsightUpsert) ClearConversationID() *InsightUpsert {
	u.SetNull(insight.FieldConversationID)
	return u
}

// SetScheduleID sets the "schedule_id" field.
func (u *InsightUpsert) SetScheduleID(v string) *InsightUpsert {
	u.Set(insight.FieldScheduleID, v)
	return u
}

// UpdateScheduleID sets the "schedule_id" field to the value that was provided on create.
func (u *InsightUpsert) UpdateScheduleID() *InsightUpsert {
	u.SetExcluded(insight.FieldScheduleID)
	return u
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (u *InsightUpsert) ClearScheduleID() *InsightUpsert {
	u.SetNull(insight.FieldScheduleID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insight.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightUpsertOne) UpdateNewValues() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(insight.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(insight.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InsightUpsertOne) Ignore() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightUpsertOne) DoNothing() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightCreate.OnConflict
// documentation for more info.
func (u *InsightUpsertOne) Update(set func(*InsightUpsert)) *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategory sets the "category" field.
func (u *InsightUpsertOne) SetCategory(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateCategory() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateCategory()
	})
}

// SetTitle sets the "title" field.
func (u *InsightUpsertOne) SetTitle(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateTitle() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *InsightUpsertOne) SetDescription(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateDescription() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateDescription()
	})
}

// SetEvidence sets the "evidence" field.
func (u *InsightUpsertOne) SetEvidence(v map[string]interface{}) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateEvidence() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *InsightUpsertOne) ClearEvidence() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearEvidence()
	})
}

// SetConfidence sets the "confidence" field.
func (u *InsightUpsertOne) SetConfidence(v float64) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *InsightUpsertOne) AddConfidence(v float64) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateConfidence() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateConfidence()
	})
}

// SetImpact sets the "impact" field.
func (u *InsightUpsertOne) SetImpact(v insight.Impact) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetImpact(v)
	})
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateImpact() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateImpact()
	})
}

// SetEntityIds sets the "entity_ids" field.
func (u *InsightUpsertOne) SetEntityIds(v []string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetEntityIds(v)
	})
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateEntityIds() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEntityIds()
	})
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *InsightUpsertOne) ClearEntityIds() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearEntityIds()
	})
}

// SetScriptPath sets the "script_path" field.
func (u *InsightUpsertOne) SetScriptPath(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetScriptPath(v)
	})
}

// UpdateScriptPath sets the "script_path" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateScriptPath() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateScriptPath()
	})
}

// ClearScriptPath clears the value of the "script_path" field.
func (u *InsightUpsertOne) ClearScriptPath() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearScriptPath()
	})
}

// SetScriptOutput sets the "script_output" field.
func (u *InsightUpsertOne) SetScriptOutput(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetScriptOutput(v)
	})
}

// UpdateScriptOutput sets the "script_output" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateScriptOutput() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateScriptOutput()
	})
}

// ClearScriptOutput clears the value of the "script_output" field.
func (u *InsightUpsertOne) ClearScriptOutput() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearScriptOutput()
	})
}

// SetStatus sets the "status" field.
func (u *InsightUpsertOne) SetStatus(v insight.Status) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateStatus() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateStatus()
	})
}

// SetConversationID sets the "conversation_id" field.
func (u *InsightUpsertOne) SetConversationID(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateConversationID() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *InsightUpsertOne) ClearConversationID() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearConversationID()
	})
}

// SetScheduleID sets the "schedule_id" field.
func (u *InsightUpsertOne) SetScheduleID(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetScheduleID(v)
	})
}

// UpdateScheduleID sets the "schedule_id" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateScheduleID() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateScheduleID()
	})
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (u *InsightUpsertOne) ClearScheduleID() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearScheduleID()
	})
}

// Exec executes the query.
func (u *InsightUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InsightUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InsightUpsertOne.ID is not supported by MySQL driver. Use InsightUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InsightUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InsightCreateBulk is the builder for creating many Insight entities in bulk.
type InsightCreateBulk struct {
	config
	err      error
	builders []*InsightCreate
	conflict []sql.ConflictOption
}

// Save creates the Insight entities in the database.
func (_c *InsightCreateBulk) Save(ctx context.Context) ([]*Insight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Insight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightMutation)
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
func (_c *InsightCreateBulk) SaveX(ctx context.Context) []*Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Insight.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightUpsert) {
//			SetCategory(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightCreateBulk) OnConflict(opts ...sql.ConflictOption) *InsightUpsertBulk {
	_c.conflict = opts
	return &InsightUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightCreateBulk) OnConflictColumns(columns ...string) *InsightUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightUpsertBulk{
		create: _c,
	}
}

// InsightUpsertBulk is the builder for "upsert"-ing
// a bulk of Insight nodes.
type InsightUpsertBulk struct {
	create *InsightCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insight.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightUpsertBulk) UpdateNewValues() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(insight.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(insight.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InsightUpsertBulk) Ignore() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightUpsertBulk) DoNothing() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightCreateBulk.OnConflict
// documentation for more info.
func (u *InsightUpsertBulk) Update(set func(*InsightUpsert)) *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategory sets the "category" field.
func (u *InsightUpsertBulk) SetCategory(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateCategory() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateCategory()
	})
}

// SetTitle sets the "title" field.
func (u *InsightUpsertBulk) SetTitle(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateTitle() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *InsightUpsertBulk) SetDescription(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateDescription() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateDescription()
	})
}

// SetEvidence sets the "evidence" field.
func (u *InsightUpsertBulk) SetEvidence(v map[string]interface{}) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateEvidence() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *InsightUpsertBulk) ClearEvidence() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearEvidence()
	})
}

// SetConfidence sets the "confidence" field.
func (u *InsightUpsertBulk) SetConfidence(v float64) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *InsightUpsertBulk) AddConfidence(v float64) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateConfidence() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateConfidence()
	})
}

// SetImpact sets the "impact" field.
func (u *InsightUpsertBulk) SetImpact(v insight.Impact) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetImpact(v)
	})
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateImpact() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateImpact()
	})
}

// SetEntityIds sets the "entity_ids" field.
func (u *InsightUpsertBulk) SetEntityIds(v []string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetEntityIds(v)
	})
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateEntityIds() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEntityIds()
	})
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *InsightUpsertBulk) ClearEntityIds() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearEntityIds()
	})
}

// SetScriptPath sets the "script_path" field.
func (u *InsightUpsertBulk) SetScriptPath(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetScriptPath(v)
	})
}

// UpdateScriptPath sets the "script_path" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateScriptPath() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateScriptPath()
	})
}

// ClearScriptPath clears the value of the "script_path" field.
func (u *InsightUpsertBulk) ClearScriptPath() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearScriptPath()
	})
}

// SetScriptOutput sets the "script_output" field.
func (u *InsightUpsertBulk) SetScriptOutput(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetScriptOutput(v)
	})
}

// UpdateScriptOutput sets the "script_output" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateScriptOutput() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateScriptOutput()
	})
}

// ClearScriptOutput clears the value of the "script_output" field.
func (u *InsightUpsertBulk) ClearScriptOutput() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearScriptOutput()
	})
}

// SetStatus sets the "status" field.
func (u *InsightUpsertBulk) SetStatus(v insight.Status) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateStatus() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateStatus()
	})
}

// SetConversationID sets the "conversation_id" field.
func (u *InsightUpsertBulk) SetConversationID(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateConversationID() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *InsightUpsertBulk) ClearConversationID() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearConversationID()
	})
}

// SetScheduleID sets the "schedule_id" field.
func (u *InsightUpsertBulk) SetScheduleID(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetScheduleID(v)
	})
}

// UpdateScheduleID sets the "schedule_id" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateScheduleID() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateScheduleID()
	})
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (u *InsightUpsertBulk) ClearScheduleID() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearScheduleID()
	})
}

// Exec executes the query.
func (u *InsightUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InsightCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
