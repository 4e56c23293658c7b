// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aether-home/aether/ent/haentity"
	"github.com/aether-home/aether/ent/predicate"
)

// HAEntityUpdate is the builder for updating HAEntity entities.
type HAEntityUpdate struct {
	config
	hooks    []Hook
	mutation *HAEntityMutation
}

// Where appends a list predicates to the HAEntityUpdate builder.
func (_u *HAEntityUpdate) Where(ps ...predicate.HAEntity) *HAEntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomain sets the "domain" field.
func (_u *HAEntityUpdate) SetDomain(v string) *HAEntityUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *HAEntityUpdate) SetNillableDomain(v *string) *HAEntityUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *HAEntityUpdate) SetState(v string) *HAEntityUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *HAEntityUpdate) SetNillableState(v *string) *HAEntityUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *HAEntityUpdate) SetAttributes(v map[string]interface{}) *HAEntityUpdate {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *HAEntityUpdate) ClearAttributes() *HAEntityUpdate {
	_u.mutation.ClearAttributes()
	return _u
}

// SetFriendlyName sets the "friendly_name" field.
func (_u *HAEntityUpdate) SetFriendlyName(v string) *HAEntityUpdate {
	_u.mutation.SetFriendlyName(v)
	return _u
}

// SetNillableFriendlyName sets the "friendly_name" field if the given value is not nil.
func (_u *HAEntityUpdate) SetNillableFriendlyName(v *string) *HAEntityUpdate {
	if v != nil {
		_u.SetFriendlyName(*v)
	}
	return _u
}

// ClearFriendlyName clears the value of the "friendly_name" field.
func (_u *HAEntityUpdate) ClearFriendlyName() *HAEntityUpdate {
	_u.mutation.ClearFriendlyName()
	return _u
}

// SetLastChanged sets the "last_changed" field.
func (_u *HAEntityUpdate) SetLastChanged(v time.Time) *HAEntityUpdate {
	_u.mutation.SetLastChanged(v)
	return _u
}

// SetNillableLastChanged sets the "last_changed" field if the given value is not nil.
func (_u *HAEntityUpdate) SetNillableLastChanged(v *time.Time) *HAEntityUpdate {
	if v != nil {
		_u.SetLastChanged(*v)
	}
	return _u
}

// ClearLastChanged clears the value of the "last_changed" field.
func (_u *HAEntityUpdate) ClearLastChanged() *HAEntityUpdate {
	_u.mutation.ClearLastChanged()
	return _u
}

// SetLastSynced sets the "last_synced" field.
func (_u *HAEntityUpdate) SetLastSynced(v time.Time) *HAEntityUpdate {
	_u.mutation.SetLastSynced(v)
	return _u
}

// Mutation returns the HAEntityMutation object of the builder.
func (_u *HAEntityUpdate) Mutation() *HAEntityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HAEntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HAEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HAEntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HAEntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HAEntityUpdate) defaults() {
	if _, ok := _u.mutation.LastSynced(); !ok {
		v := haentity.UpdateDefaultLastSynced()
		_u.mutation.SetLastSynced(v)
	}
}

func (_u *HAEntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(haentity.Table, haentity.Columns, sqlgraph.NewFieldSpec(haentity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(haentity.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(haentity.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(haentity.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(haentity.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.FriendlyName(); ok {
		_spec.SetField(haentity.FieldFriendlyName, field.TypeString, value)
	}
	if _u.mutation.FriendlyNameCleared() {
		_spec.ClearField(haentity.FieldFriendlyName, field.TypeString)
	}
	if value, ok := _u.mutation.LastChanged(); ok {
		_spec.SetField(haentity.FieldLastChanged, field.TypeTime, value)
	}
	if _u.mutation.LastChangedCleared() {
		_spec.ClearField(haentity.FieldLastChanged, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSynced(); ok {
		_spec.SetField(haentity.FieldLastSynced, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{haentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HAEntityUpdateOne is the builder for updating a single HAEntity entity.
type HAEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HAEntityMutation
}

// SetDomain sets the "domain" field.
func (_u *HAEntityUpdateOne) SetDomain(v string) *HAEntityUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *HAEntityUpdateOne) SetNillableDomain(v *string) *HAEntityUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *HAEntityUpdateOne) SetState(v string) *HAEntityUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *HAEntityUpdateOne) SetNillableState(v *string) *HAEntityUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *HAEntityUpdateOne) SetAttributes(v map[string]interface{}) *HAEntityUpdateOne {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *HAEntityUpdateOne) ClearAttributes() *HAEntityUpdateOne {
	_u.mutation.ClearAttributes()
	return _u
}

// SetFriendlyName sets the "friendly_name" field.
func (_u *HAEntityUpdateOne) SetFriendlyName(v string) *HAEntityUpdateOne {
	_u.mutation.SetFriendlyName(v)
	return _u
}

// SetNillableFriendlyName sets the "friendly_name" field if the given value is not nil.
func (_u *HAEntityUpdateOne) SetNillableFriendlyName(v *string) *HAEntityUpdateOne {
	if v != nil {
		_u.SetFriendlyName(*v)
	}
	return _u
}

// ClearFriendlyName clears the value of the "friendly_name" field.
func (_u *HAEntityUpdateOne) ClearFriendlyName() *HAEntityUpdateOne {
	_u.mutation.ClearFriendlyName()
	return _u
}

// SetLastChanged sets the "last_changed" field.
func (_u *HAEntityUpdateOne) SetLastChanged(v time.Time) *HAEntityUpdateOne {
	_u.mutation.SetLastChanged(v)
	return _u
}

// SetNillableLastChanged sets the "last_changed" field if the given value is not nil.
func (_u *HAEntityUpdateOne) SetNillableLastChanged(v *time.Time) *HAEntityUpdateOne {
	if v != nil {
		_u.SetLastChanged(*v)
	}
	return _u
}

// ClearLastChanged clears the value of the "last_changed" field.
func (_u *HAEntityUpdateOne) ClearLastChanged() *HAEntityUpdateOne {
	_u.mutation.ClearLastChanged()
	return _u
}

// SetLastSynced sets the "last_synced" field.
func (_u *HAEntityUpdateOne) SetLastSynced(v time.Time) *HAEntityUpdateOne {
	_u.mutation.SetLastSynced(v)
	return _u
}

// Mutation returns the HAEntityMutation object of the builder.
func (_u *HAEntityUpdateOne) Mutation() *HAEntityMutation {
	return _u.mutation
}

// Where appends a list predicates to the HAEntityUpdate builder.
func (_u *HAEntityUpdateOne) Where(ps ...predicate.HAEntity) *HAEntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HAEntityUpdateOne) Select(field string, fields ...string) *HAEntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HAEntity entity.
func (_u *HAEntityUpdateOne) Save(ctx context.Context) (*HAEntity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HAEntityUpdateOne) SaveX(ctx context.Context) *HAEntity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HAEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HAEntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HAEntityUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSynced(); !ok {
		v := haentity.UpdateDefaultLastSynced()
		_u.mutation.SetLastSynced(v)
	}
}

func (_u *HAEntityUpdateOne) sqlSave(ctx context.Context) (_node *HAEntity, err error) {
	_spec := sqlgraph.NewUpdateSpec(haentity.Table, haentity.Columns, sqlgraph.NewFieldSpec(haentity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HAEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, haentity.FieldID)
		for _, f := range fields {
			if !haentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != haentity.FieldID {
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
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(haentity.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(haentity.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(haentity.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(haentity.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.FriendlyName(); ok {
		_spec.SetField(haentity.FieldFriendlyName, field.TypeString, value)
	}
	if _u.mutation.FriendlyNameCleared() {
		_spec.ClearField(haentity.FieldFriendlyName, field.TypeString)
	}
	if value, ok := _u.mutation.LastChanged(); ok {
		_spec.SetField(haentity.FieldLastChanged, field.TypeTime, value)
	}
	if _u.mutation.LastChangedCleared() {
		_spec.ClearField(haentity.FieldLastChanged, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSynced(); ok {
		_spec.SetField(haentity.FieldLastSynced, field.TypeTime, value)
	}
	_node = &HAEntity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{haentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
