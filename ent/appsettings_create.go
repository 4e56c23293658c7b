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
	"github.com/aether-home/aether/ent/appsettings"
)

// AppSettingsCreate is the builder for creating a AppSettings entity.
type AppSettingsCreate struct {
	config
	mutation *AppSettingsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChat sets the "chat" field.
func (_c *AppSettingsCreate) SetChat(v map[string]interface{}) *AppSettingsCreate {
	_c.mutation.SetChat(v)
	return _c
}

// SetDashboard sets the "dashboard" field.
func (_c *AppSettingsCreate) SetDashboard(v map[string]interface{}) *AppSettingsCreate {
	_c.mutation.SetDashboard(v)
	return _c
}

// SetDataScience sets the "data_science" field.
func (_c *AppSettingsCreate) SetDataScience(v map[string]interface{}) *AppSettingsCreate {
	_c.mutation.SetDataScience(v)
	return _c
}

// SetNotifications sets the "notifications" field.
func (_c *AppSettingsCreate) SetNotifications(v map[string]interface{}) *AppSettingsCreate {
	_c.mutation.SetNotifications(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppSettingsCreate) SetUpdatedAt(v time.Time) *AppSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppSettingsCreate) SetNillableUpdatedAt(v *time.Time) *AppSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppSettingsCreate) SetID(v string) *AppSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AppSettingsMutation object of the builder.
func (_c *AppSettingsCreate) Mutation() *AppSettingsMutation {
	return _c.mutation
}

// Save creates the AppSettings in the database.
func (_c *AppSettingsCreate) Save(ctx context.Context) (*AppSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppSettingsCreate) SaveX(ctx context.Context) *AppSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppSettingsCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppSettingsCreate) check() error {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AppSettings.updated_at"`)}
	}
	return nil
}

func (_c *AppSettingsCreate) sqlSave(ctx context.Context) (*AppSettings, error) {
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
			return nil, fmt.Errorf("unexpected AppSettings.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppSettingsCreate) createSpec() (*AppSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &AppSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appsettings.Table, sqlgraph.NewFieldSpec(appsettings.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Chat(); ok {
		_spec.SetField(appsettings.FieldChat, field.TypeJSON, value)
		_node.Chat = value
	}
	if value, ok := _c.mutation.Dashboard(); ok {
		_spec.SetField(appsettings.FieldDashboard, field.TypeJSON, value)
		_node.Dashboard = value
	}
	if value, ok := _c.mutation.DataScience(); ok {
		_spec.SetField(appsettings.FieldDataScience, field.TypeJSON, value)
		_node.DataScience = value
	}
	if value, ok := _c.mutation.Notifications(); ok {
		_spec.SetField(appsettings.FieldNotifications, field.TypeJSON, value)
		_node.Notifications = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AppSettings.Create().
//		SetChat(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppSettingsUpsert) {
//			SetChat(v+v).
//		}).
//		Exec(ctx)
func (_c *AppSettingsCreate) OnConflict(opts ...sql.ConflictOption) *AppSettingsUpsertOne {
	_c.conflict = opts
	return &AppSettingsUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AppSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppSettingsCreate) OnConflictColumns(columns ...string) *AppSettingsUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppSettingsUpsertOne{
		create: _c,
	}
}

type (
	// AppSettingsUpsertOne is the builder for "upsert"-ing
	//  one AppSettings node.
	AppSettingsUpsertOne struct {
		create *AppSettingsCreate
	}

	// AppSettingsUpsert is the "OnConflict" setter.
	AppSettingsUpsert struct {
		*sql.UpdateSet
	}
)

// SetChat sets the "chat" field.
func (u *AppSettingsUpsert) SetChat(v map[string]interface{}) *AppSettingsUpsert {
	u.Set(appsettings.FieldChat, v)
	return u
}

// UpdateChat sets the "chat" field to the value that was provided on create.
func (u *AppSettingsUpsert) UpdateChat() *AppSettingsUpsert {
	u.SetExcluded(appsettings.FieldChat)
	return u
}

// ClearChat clears the value of the "chat" field.
func (u *AppSettingsUpsert) ClearChat() *AppSettingsUpsert {
	u.SetNull(appsettings.FieldChat)
	return u
}

// SetDashboard sets the "dashboard" field.
func (u *AppSettingsUpsert) SetDashboard(v map[string]interface{}) *AppSettingsUpsert {
	u.Set(appsettings.FieldDashboard, v)
	return u
}

// UpdateDashboard sets the "dashboard" field to the value that was provided on create.
func (u *AppSettingsUpsert) UpdateDashboard() *AppSettingsUpsert {
	u.SetExcluded(appsettings.FieldDashboard)
	return u
}

// ClearDashboard clears the value of the "dashboard" field.
func (u *AppSettingsUpsert) ClearDashboard() *AppSettingsUpsert {
	u.SetNull(appsettings.FieldDashboard)
	return u
}

// SetDataScience sets the "data_science" field.
func (u *AppSettingsUpsert) SetDataScience(v map[string]interface{}) *AppSettingsUpsert {
	u.Set(appsettings.FieldDataScience, v)
	return u
}

// UpdateDataScience sets the "data_science" field to the value that was provided on create.
func (u *AppSettingsUpsert) UpdateDataScience() *AppSettingsUpsert {
	u.SetExcluded(appsettings.FieldDataScience)
	return u
}

// ClearDataScience clears the value of the "data_science" field.
func (u *AppSettingsUpsert) ClearDataScience() *AppSettingsUpsert {
	u.SetNull(appsettings.FieldDataScience)
	return u
}

// SetNotifications sets the "notifications" field.
func (u *AppSettingsUpsert) SetNotifications(v map[string]interface{}) *AppSettingsUpsert {
	u.Set(appsettings.FieldNotifications, v)
	return u
}

// UpdateNotifications sets the "notifications" field to the value that was provided on create.
func (u *AppSettingsUpsert) UpdateNotifications() *AppSettingsUpsert {
	u.SetExcluded(appsettings.FieldNotifications)
	return u
}

// ClearNotifications clears the value of the "notifications" field.
func (u *AppSettingsUpsert) ClearNotifications() *AppSettingsUpsert {
	u.SetNull(appsettings.FieldNotifications)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppSettingsUpsert) SetUpdatedAt(v time.Time) *AppSettingsUpsert {
	u.Set(appsettings.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppSettingsUpsert) UpdateUpdatedAt() *AppSettingsUpsert {
	u.SetExcluded(appsettings.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AppSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppSettingsUpsertOne) UpdateNewValues() *AppSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(appsettings.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AppSettings.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AppSettingsUpsertOne) Ignore() *AppSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppSettingsUpsertOne) DoNothing() *AppSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppSettingsCreate.OnConflict
// documentation for more info.
func (u *AppSettingsUpsertOne) Update(set func(*AppSettingsUpsert)) *AppSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetChat sets the "chat" field.
func (u *AppSettingsUpsertOne) SetChat(v map[string]interface{}) *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetChat(v)
	})
}

// UpdateChat sets the "chat" field to the value that was provided on create.
func (u *AppSettingsUpsertOne) UpdateChat() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateChat()
	})
}

// ClearChat clears the value of the "chat" field.
func (u *AppSettingsUpsertOne) ClearChat() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.ClearChat()
	})
}

// SetDashboard sets the "dashboard" field.
func (u *AppSettingsUpsertOne) SetDashboard(v map[string]interface{}) *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetDashboard(v)
	})
}

// UpdateDashboard sets the "dashboard" field to the value that was provided on create.
func (u *AppSettingsUpsertOne) UpdateDashboard() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateDashboard()
	})
}

// ClearDashboard clears the value of the "dashboard" field.
func (u *AppSettingsUpsertOne) ClearDashboard() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.ClearDashboard()
	})
}

// SetDataScience sets the "data_science" field.
func (u *AppSettingsUpsertOne) SetDataScience(v map[string]interface{}) *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetDataScience(v)
	})
}

// UpdateDataScience sets the "data_science" field to the value that was provided on create.
func (u *AppSettingsUpsertOne) UpdateDataScience() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateDataScience()
	})
}

// ClearDataScience clears the value of the "data_science" field.
func (u *AppSettingsUpsertOne) ClearDataScience() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.ClearDataScience()
	})
}

// SetNotifications sets the "notifications" field.
func (u *AppSettingsUpsertOne) SetNotifications(v map[string]interface{}) *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetNotifications(v)
	})
}

// UpdateNotifications sets the "notifications" field to the value that was provided on create.
func (u *AppSettingsUpsertOne) UpdateNotifications() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateNotifications()
	})
}

// ClearNotifications clears the value of the "notifications" field.
func (u *AppSettingsUpsertOne) ClearNotifications() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.ClearNotifications()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppSettingsUpsertOne) SetUpdatedAt(v time.Time) *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppSettingsUpsertOne) UpdateUpdatedAt() *AppSettingsUpsertOne {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AppSettingsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AppSettingsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppSettingsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AppSettingsUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AppSettingsUpsertOne.ID is not supported by MySQL driver. Use AppSettingsUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AppSettingsUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AppSettingsCreateBulk is the builder for creating many AppSettings entities in bulk.
type AppSettingsCreateBulk struct {
	config
	err      error
	builders []*AppSettingsCreate
	conflict []sql.ConflictOption
}

// Save creates the AppSettings entities in the database.
func (_c *AppSettingsCreateBulk) Save(ctx context.Context) ([]*AppSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppSettingsMutation)
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
func (_c *AppSettingsCreateBulk) SaveX(ctx context.Context) []*AppSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AppSettings.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppSettingsUpsert) {
//			SetChat(v+v).
//		}).
//		Exec(ctx)
func (_c *AppSettingsCreateBulk) OnConflict(opts ...sql.ConflictOption) *AppSettingsUpsertBulk {
	_c.conflict = opts
	return &AppSettingsUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AppSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppSettingsCreateBulk) OnConflictColumns(columns ...string) *AppSettingsUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppSettingsUpsertBulk{
		create: _c,
	}
}

// AppSettingsUpsertBulk is the builder for "upsert"-ing
// a bulk of AppSettings nodes.
type AppSettingsUpsertBulk struct {
	create *AppSettingsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AppSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppSettingsUpsertBulk) UpdateNewValues() *AppSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(appsettings.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AppSettings.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AppSettingsUpsertBulk) Ignore() *AppSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppSettingsUpsertBulk) DoNothing() *AppSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppSettingsCreateBulk.OnConflict
// documentation for more info.
func (u *AppSettingsUpsertBulk) Update(set func(*AppSettingsUpsert)) *AppSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetChat sets the "chat" field.
func (u *AppSettingsUpsertBulk) SetChat(v map[string]interface{}) *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetChat(v)
	})
}

// UpdateChat sets the "chat" field to the value that was provided on create.
func (u *AppSettingsUpsertBulk) UpdateChat() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateChat()
	})
}

// ClearChat clears the value of the "chat" field.
func (u *AppSettingsUpsertBulk) ClearChat() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.ClearChat()
	})
}

// SetDashboard sets the "dashboard" field.
func (u *AppSettingsUpsertBulk) SetDashboard(v map[string]interface{}) *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetDashboard(v)
	})
}

// UpdateDashboard sets the "dashboard" field to the value that was provided on create.
func (u *AppSettingsUpsertBulk) UpdateDashboard() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateDashboard()
	})
}

// ClearDashboard clears the value of the "dashboard" field.
func (u *AppSettingsUpsertBulk) ClearDashboard() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.ClearDashboard()
	})
}

// SetDataScience sets the "data_science" field.
func (u *AppSettingsUpsertBulk) SetDataScience(v map[string]interface{}) *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetDataScience(v)
	})
}

// UpdateDataScience sets the "data_science" field to the value that was provided on create.
func (u *AppSettingsUpsertBulk) UpdateDataScience() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateDataScience()
	})
}

// ClearDataScience clears the value of the "data_science" field.
func (u *AppSettingsUpsertBulk) ClearDataScience() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.ClearDataScience()
	})
}

// SetNotifications sets the "notifications" field.
func (u *AppSettingsUpsertBulk) SetNotifications(v map[string]interface{}) *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetNotifications(v)
	})
}

// UpdateNotifications sets the "notifications" field to the value that was provided on create.
func (u *AppSettingsUpsertBulk) UpdateNotifications() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateNotifications()
	})
}

// ClearNotifications clears the value of the "notifications" field.
func (u *AppSettingsUpsertBulk) ClearNotifications() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.ClearNotifications()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppSettingsUpsertBulk) SetUpdatedAt(v time.Time) *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppSettingsUpsertBulk) UpdateUpdatedAt() *AppSettingsUpsertBulk {
	return u.Update(func(s *AppSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AppSettingsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AppSettingsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AppSettingsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppSettingsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
