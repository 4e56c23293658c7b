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
	"github.com/aether-home/aether/ent/appsettings"
	"github.com/aether-home/aether/ent/predicate"
)

// AppSettingsUpdate is the builder for updating AppSettings entities.
type AppSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *AppSettingsMutation
}

// Where appends a list predicates to the AppSettingsUpdate builder.
func (_u *AppSettingsUpdate) Where(ps ...predicate.AppSettings) *AppSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChat sets the "chat" field.
func (_u *AppSettingsUpdate) SetChat(v map[string]interface{}) *AppSettingsUpdate {
	_u.mutation.SetChat(v)
	return _u
}

// ClearChat clears the value of the "chat" field.
func (_u *AppSettingsUpdate) ClearChat() *AppSettingsUpdate {
	_u.mutation.ClearChat()
	return _u
}

// SetDashboard sets the "dashboard" field.
func (_u *AppSettingsUpdate) SetDashboard(v map[string]interface{}) *AppSettingsUpdate {
	_u.mutation.SetDashboard(v)
	return _u
}

// ClearDashboard clears the value of the "dashboard" field.
func (_u *AppSettingsUpdate) ClearDashboard() *AppSettingsUpdate {
	_u.mutation.ClearDashboard()
	return _u
}

// SetDataScience sets the "data_science" field.
func (_u *AppSettingsUpdate) SetDataScience(v map[string]interface{}) *AppSettingsUpdate {
	_u.mutation.SetDataScience(v)
	return _u
}

// ClearDataScience clears the value of the "data_science" field.
func (_u *AppSettingsUpdate) ClearDataScience() *AppSettingsUpdate {
	_u.mutation.ClearDataScience()
	return _u
}

// SetNotifications sets the "notifications" field.
func (_u *AppSettingsUpdate) SetNotifications(v map[string]interface{}) *AppSettingsUpdate {
	_u.mutation.SetNotifications(v)
	return _u
}

// ClearNotifications clears the value of the "notifications" field.
func (_u *AppSettingsUpdate) ClearNotifications() *AppSettingsUpdate {
	_u.mutation.ClearNotifications()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppSettingsUpdate) SetUpdatedAt(v time.Time) *AppSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AppSettingsMutation object of the builder.
func (_u *AppSettingsUpdate) Mutation() *AppSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AppSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(appsettings.Table, appsettings.Columns, sqlgraph.NewFieldSpec(appsettings.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Chat(); ok {
		_spec.SetField(appsettings.FieldChat, field.TypeJSON, value)
	}
	if _u.mutation.ChatCleared() {
		_spec.ClearField(appsettings.FieldChat, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dashboard(); ok {
		_spec.SetField(appsettings.FieldDashboard, field.TypeJSON, value)
	}
	if _u.mutation.DashboardCleared() {
		_spec.ClearField(appsettings.FieldDashboard, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataScience(); ok {
		_spec.SetField(appsettings.FieldDataScience, field.TypeJSON, value)
	}
	if _u.mutation.DataScienceCleared() {
		_spec.ClearField(appsettings.FieldDataScience, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notifications(); ok {
		_spec.SetField(appsettings.FieldNotifications, field.TypeJSON, value)
	}
	if _u.mutation.NotificationsCleared() {
		_spec.ClearField(appsettings.FieldNotifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppSettingsUpdateOne is the builder for updating a single AppSettings entity.
type AppSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppSettingsMutation
}

// SetChat sets the "chat" field.
func (_u *AppSettingsUpdateOne) SetChat(v map[string]interface{}) *AppSettingsUpdateOne {
	_u.mutation.SetChat(v)
	return _u
}

// ClearChat clears the value of the "chat" field.
func (_u *AppSettingsUpdateOne) ClearChat() *AppSettingsUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// SetDashboard sets the "dashboard" field.
func (_u *AppSettingsUpdateOne) SetDashboard(v map[string]interface{}) *AppSettingsUpdateOne {
	_u.mutation.SetDashboard(v)
	return _u
}

// ClearDashboard clears the value of the "dashboard" field.
func (_u *AppSettingsUpdateOne) ClearDashboard() *AppSettingsUpdateOne {
	_u.mutation.ClearDashboard()
	return _u
}

// SetDataScience sets the "data_science" field.
func (_u *AppSettingsUpdateOne) SetDataScience(v map[string]interface{}) *AppSettingsUpdateOne {
	_u.mutation.SetDataScience(v)
	return _u
}

// ClearDataScience clears the value of the "data_science" field.
func (_u *AppSettingsUpdateOne) ClearDataScience() *AppSettingsUpdateOne {
	_u.mutation.ClearDataScience()
	return _u
}

// SetNotifications sets the "notifications" field.
func (_u *AppSettingsUpdateOne) SetNotifications(v map[string]interface{}) *AppSettingsUpdateOne {
	_u.mutation.SetNotifications(v)
	return _u
}

// ClearNotifications clears the value of the "notifications" field.
func (_u *AppSettingsUpdateOne) ClearNotifications() *AppSettingsUpdateOne {
	_u.mutation.ClearNotifications()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppSettingsUpdateOne) SetUpdatedAt(v time.Time) *AppSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AppSettingsMutation object of the builder.
func (_u *AppSettingsUpdateOne) Mutation() *AppSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppSettingsUpdate builder.
func (_u *AppSettingsUpdateOne) Where(ps ...predicate.AppSettings) *AppSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppSettingsUpdateOne) Select(field string, fields ...string) *AppSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppSettings entity.
func (_u *AppSettingsUpdateOne) Save(ctx context.Context) (*AppSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppSettingsUpdateOne) SaveX(ctx context.Context) *AppSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AppSettingsUpdateOne) sqlSave(ctx context.Context) (_node *AppSettings, err error) {
	_spec := sqlgraph.NewUpdateSpec(appsettings.Table, appsettings.Columns, sqlgraph.NewFieldSpec(appsettings.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AppSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appsettings.FieldID)
		for _, f := range fields {
			if !appsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appsettings.FieldID {
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
	if value, ok := _u.mutation.Chat(); ok {
		_spec.SetField(appsettings.FieldChat, field.TypeJSON, value)
	}
	if _u.mutation.ChatCleared() {
		_spec.ClearField(appsettings.FieldChat, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dashboard(); ok {
		_spec.SetField(appsettings.FieldDashboard, field.TypeJSON, value)
	}
	if _u.mutation.DashboardCleared() {
		_spec.ClearField(appsettings.FieldDashboard, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataScience(); ok {
		_spec.SetField(appsettings.FieldDataScience, field.TypeJSON, value)
	}
	if _u.mutation.DataScienceCleared() {
		_spec.ClearField(appsettings.FieldDataScience, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notifications(); ok {
		_spec.SetField(appsettings.FieldNotifications, field.TypeJSON, value)
	}
	if _u.mutation.NotificationsCleared() {
		_spec.ClearField(appsettings.FieldNotifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AppSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
