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
	"github.com/aether-home/aether/ent/haentity"
)

// HAEntityCreate is the builder for creating a HAEntity entity.
type HAEntityCreate struct {
	config
	mutation *HAEntityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDomain sets the "domain" field.
func (_c *HAEntityCreate) SetDomain(v string) *HAEntityCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetState sets the "state" field.
func (_c *HAEntityCreate) SetState(v string) *HAEntityCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *HAEntityCreate) SetNillableState(v *string) *HAEntityCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAttributes sets the "attributes" field.
func (_c *HAEntityCreate) SetAttributes(v map[string]interface{}) *HAEntityCreate {
	_c.mutation.SetAttributes(v)
	return _c
}

// SetFriendlyName sets the "friendly_name" field.
func (_c *HAEntityCreate) SetFriendlyName(v string) *HAEntityCreate {
	_c.mutation.SetFriendlyName(v)
	return _c
}

// SetNillableFriendlyName sets the "friendly_name" field if the given value is not nil.
func (_c *HAEntityCreate) SetNillableFriendlyName(v *string) *HAEntityCreate {
	if v != nil {
		_c.SetFriendlyName(*v)
	}
	return _c
}

// SetLastChanged sets the "last_changed" field.
func (_c *HAEntityCreate) SetLastChanged(v time.Time) *HAEntityCreate {
	_c.mutation.SetLastChanged(v)
	return _c
}

// SetNillableLastChanged sets the "last_changed" field if the given value is not nil.
func (_c *HAEntityCreate) SetNillableLastChanged(v *time.Time) *HAEntityCreate {
	if v != nil {
		_c.SetLastChanged(*v)
	}
	return _c
}

// SetLastSynced sets the "last_synced" field.
func (_c *HAEntityCreate) SetLastSynced(v time.Time) *HAEntityCreate {
	_c.mutation.SetLastSynced(v)
	return _c
}

// SetNillableLastSynced sets the "last_synced" field if the given value is not nil.
func (_c *HAEntityCreate) SetNillableLastSynced(v *time.Time) *HAEntityCreate {
	if v != nil {
		_c.SetLastSynced(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HAEntityCreate) SetID(v string) *HAEntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HAEntityMutation object of the builder.
func (_c *HAEntityCreate) Mutation() *HAEntityMutation {
	return _c.mutation
}

// Save creates the HAEntity in the database.
func (_c *HAEntityCreate) Save(ctx context.Context) (*HAEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HAEntityCreate) SaveX(ctx context.Context) *HAEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HAEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HAEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HAEntityCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := haentity.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.LastSynced(); !ok {
		v := haentity.DefaultLastSynced()
		_c.mutation.SetLastSynced(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HAEntityCreate) check() error {
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "HAEntity.domain"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "HAEntity.state"`)}
	}
	if _, ok := _c.mutation.LastSynced(); !ok {
		return &ValidationError{Name: "last_synced", err: errors.New(`ent: missing required field "HAEntity.last_synced"`)}
	}
	return nil
}

func (_c *HAEntityCreate) sqlSave(ctx context.Context) (*HAEntity, error) {
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
			return nil, fmt.Errorf("unexpected HAEntity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HAEntityCreate) createSpec() (*HAEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &HAEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(haentity.Table, sqlgraph.NewFieldSpec(haentity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(haentity.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(haentity.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Attributes(); ok {
		_spec.SetField(haentity.FieldAttributes, field.TypeJSON, value)
		_node.Attributes = value
	}
	if value, ok := _c.mutation.FriendlyName(); ok {
		_spec.SetField(haentity.FieldFriendlyName, field.TypeString, value)
		_node.FriendlyName = value
	}
	if value, ok := _c.mutation.LastChanged(); ok {
		_spec.SetField(haentity.FieldLastChanged, field.TypeTime, value)
		_node.LastChanged = &value
	}
	if value, ok := _c.mutation.LastSynced(); ok {
		_spec.SetField(haentity.FieldLastSynced, field.TypeTime, value)
		_node.LastSynced = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HAEntity.Create().
//		SetDomain(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HAEntityUpsert) {
//			SetDomain(v+v).
//		}).
//		Exec(ctx)
func (_c *HAEntityCreate) OnConflict(opts ...sql.ConflictOption) *HAEntityUpsertOne {
	_c.conflict = opts
	return &HAEntityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HAEntity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HAEntityCreate) OnConflictColumns(columns ...string) *HAEntityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HAEntityUpsertOne{
		create: _c,
	}
}

type (
	// HAEntityUpsertOne is the builder for "upsert"-ing
	//  one HAEntity node.
	HAEntityUpsertOne struct {
		create *HAEntityCreate
	}

	// HAEntityUpsert is the "OnConflict" setter.
	HAEntityUpsert struct {
		*sql.UpdateSet
	}
)

// SetDomain sets the "domain" field.
func (u *HAEntityUpsert) SetDomain(v string) *HAEntityUpsert {
	u.Set(haentity.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *HAEntityUpsert) UpdateDomain() *HAEntityUpsert {
	u.SetExcluded(haentity.FieldDomain)
	return u
}

// SetState sets the "state" field.
func (u *HAEntityUpsert) SetState(v string) *HAEntityUpsert {
	u.Set(haentity.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *HAEntityUpsert) UpdateState() *HAEntityUpsert {
	u.SetExcluded(haentity.FieldState)
	return u
}

// SetAttributes sets the "attributes" field.
func (u *HAEntityUpsert) SetAttributes(v map[string]interface{}) *HAEntityUpsert {
	u.Set(haentity.FieldAttributes, v)
	return u
}

// UpdateAttributes sets the "attributes" field to the value that was provided on create.
func (u *HAEntityUpsert) UpdateAttributes() *HAEntityUpsert {
	u.SetExcluded(haentity.FieldAttributes)
	return u
}

// ClearAttributes clears the value of the "attributes" field.
func (u *HAEntityUpsert) ClearAttributes() *HAEntityUpsert {
	u.SetNull(haentity.FieldAttributes)
	return u
}

// SetFriendlyName sets the "friendly_name" field.
func (u *HAEntityUpsert) SetFriendlyName(v string) *HAEntityUpsert {
	u.Set(haentity.FieldFriendlyName, v)
	return u
}

// UpdateFriendlyName sets the "friendly_name" field to the value that was provided on create.
func (u *HAEntityUpsert) UpdateFriendlyName() *HAEntityUpsert {
	u.SetExcluded(haentity.FieldFriendlyName)
	return u
}

// ClearFriendlyName clears the value of the "friendly_name" field.
func (u *HAEntityUpsert) ClearFriendlyName() *HAEntityUpsert {
	u.SetNull(haentity.FieldFriendlyName)
	return u
}

// SetLastChanged sets the "last_changed" field.
func (u *HAEntityUpsert) SetLastChanged(v time.Time) *HAEntityUpsert {
	u.Set(haentity.FieldLastChanged, v)
	return u
}

// UpdateLastChanged sets the "last_changed" field to the value that was provided on create.
func (u *HAEntityUpsert) UpdateLastChanged() *HAEntityUpsert {
	u.SetExcluded(haentity.FieldLastChanged)
	return u
}

// ClearLastChanged clears the value of the "last_changed" field.
func (u *HAEntityUpsert) ClearLastChanged() *HAEntityUpsert {
	u.SetNull(haentity.FieldLastChanged)
	return u
}

// SetLastSynced sets the "last_synced" field.
func (u *HAEntityUpsert) SetLastSynced(v time.Time) *HAEntityUpsert {
	u.Set(haentity.FieldLastSynced, v)
	return u
}

// UpdateLastSynced sets the "last_synced" field to the value that was provided on create.
func (u *HAEntityUpsert) UpdateLastSynced() *HAEntityUpsert {
	u.SetExcluded(haentity.FieldLastSynced)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HAEntity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(haentity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HAEntityUpsertOne) UpdateNewValues() *HAEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(haentity.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HAEntity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HAEntityUpsertOne) Ignore() *HAEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HAEntityUpsertOne) DoNothing() *HAEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HAEntityCreate.OnConflict
// documentation for more info.
func (u *HAEntityUpsertOne) Update(set func(*HAEntityUpsert)) *HAEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HAEntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetDomain sets the "domain" field.
func (u *HAEntityUpsertOne) SetDomain(v string) *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *HAEntityUpsertOne) UpdateDomain() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateDomain()
	})
}

// SetState sets the "state" field.
func (u *HAEntityUpsertOne) SetState(v string) *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *HAEntityUpsertOne) UpdateState() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateState()
	})
}

// SetAttributes sets the "attributes" field.
func (u *HAEntityUpsertOne) SetAttributes(v map[string]interface{}) *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetAttributes(v)
	})
}

// UpdateAttributes sets the "attributes" field to the value that was provided on create.
func (u *HAEntityUpsertOne) UpdateAttributes() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateAttributes()
	})
}

// ClearAttributes clears the value of the "attributes" field.
func (u *HAEntityUpsertOne) ClearAttributes() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.ClearAttributes()
	})
}

// SetFriendlyName sets the "friendly_name" field.
func (u *HAEntityUpsertOne) SetFriendlyName(v string) *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetFriendlyName(v)
	})
}

// UpdateFriendlyName sets the "friendly_name" field to the value that was provided on create.
func (u *HAEntityUpsertOne) UpdateFriendlyName() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateFriendlyName()
	})
}

// ClearFriendlyName clears the value of the "friendly_name" field.
func (u *HAEntityUpsertOne) ClearFriendlyName() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.ClearFriendlyName()
	})
}

// SetLastChanged sets the "last_changed" field.
func (u *HAEntityUpsertOne) SetLastChanged(v time.Time) *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetLastChanged(v)
	})
}

// UpdateLastChanged sets the "last_changed" field to the value that was provided on create.
func (u *HAEntityUpsertOne) UpdateLastChanged() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateLastChanged()
	})
}

// ClearLastChanged clears the value of the "last_changed" field.
func (u *HAEntityUpsertOne) ClearLastChanged() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.ClearLastChanged()
	})
}

// SetLastSynced sets the "last_synced" field.
func (u *HAEntityUpsertOne) SetLastSynced(v time.Time) *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetLastSynced(v)
	})
}

// UpdateLastSynced sets the "last_synced" field to the value that was provided on create.
func (u *HAEntityUpsertOne) UpdateLastSynced() *HAEntityUpsertOne {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateLastSynced()
	})
}

// Exec executes the query.
func (u *HAEntityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HAEntityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HAEntityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HAEntityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: HAEntityUpsertOne.ID is not supported by MySQL driver. Use HAEntityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HAEntityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HAEntityCreateBulk is the builder for creating many HAEntity entities in bulk.
type HAEntityCreateBulk struct {
	config
	err      error
	builders []*HAEntityCreate
	conflict []sql.ConflictOption
}

// Save creates the HAEntity entities in the database.
func (_c *HAEntityCreateBulk) Save(ctx context.Context) ([]*HAEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HAEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HAEntityMutation)
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
func (_c *HAEntityCreateBulk) SaveX(ctx context.Context) []*HAEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HAEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HAEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HAEntity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HAEntityUpsert) {
//			SetDomain(v+v).
//		}).
//		Exec(ctx)
func (_c *HAEntityCreateBulk) OnConflict(opts ...sql.ConflictOption) *HAEntityUpsertBulk {
	_c.conflict = opts
	return &HAEntityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HAEntity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HAEntityCreateBulk) OnConflictColumns(columns ...string) *HAEntityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HAEntityUpsertBulk{
		create: _c,
	}
}

// HAEntityUpsertBulk is the builder for "upsert"-ing
// a bulk of HAEntity nodes.
type HAEntityUpsertBulk struct {
	create *HAEntityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HAEntity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(haentity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HAEntityUpsertBulk) UpdateNewValues() *HAEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(haentity.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HAEntity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HAEntityUpsertBulk) Ignore() *HAEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HAEntityUpsertBulk) DoNothing() *HAEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HAEntityCreateBulk.OnConflict
// documentation for more info.
func (u *HAEntityUpsertBulk) Update(set func(*HAEntityUpsert)) *HAEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HAEntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetDomain sets the "domain" field.
func (u *HAEntityUpsertBulk) SetDomain(v string) *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *HAEntityUpsertBulk) UpdateDomain() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateDomain()
	})
}

// SetState sets the "state" field.
func (u *HAEntityUpsertBulk) SetState(v string) *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *HAEntityUpsertBulk) UpdateState() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateState()
	})
}

// SetAttributes sets the "attributes" field.
func (u *HAEntityUpsertBulk) SetAttributes(v map[string]interface{}) *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetAttributes(v)
	})
}

// UpdateAttributes sets the "attributes" field to the value that was provided on create.
func (u *HAEntityUpsertBulk) UpdateAttributes() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateAttributes()
	})
}

// ClearAttributes clears the value of the "attributes" field.
func (u *HAEntityUpsertBulk) ClearAttributes() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.ClearAttributes()
	})
}

// SetFriendlyName sets the "friendly_name" field.
func (u *HAEntityUpsertBulk) SetFriendlyName(v string) *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetFriendlyName(v)
	})
}

// UpdateFriendlyName sets the "friendly_name" field to the value that was provided on create.
func (u *HAEntityUpsertBulk) UpdateFriendlyName() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateFriendlyName()
	})
}

// ClearFriendlyName clears the value of the "friendly_name" field.
func (u *HAEntityUpsertBulk) ClearFriendlyName() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.ClearFriendlyName()
	})
}

// SetLastChanged sets the "last_changed" field.
func (u *HAEntityUpsertBulk) SetLastChanged(v time.Time) *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetLastChanged(v)
	})
}

// UpdateLastChanged sets the "last_changed" field to the value that was provided on create.
func (u *HAEntityUpsertBulk) UpdateLastChanged() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateLastChanged()
	})
}

// ClearLastChanged clears the value of the "last_changed" field.
func (u *HAEntityUpsertBulk) ClearLastChanged() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.ClearLastChanged()
	})
}

// SetLastSynced sets the "last_synced" field.
func (u *HAEntityUpsertBulk) SetLastSynced(v time.Time) *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.SetLastSynced(v)
	})
}

// UpdateLastSynced sets the "last_synced" field to the value that was provided on create.
func (u *HAEntityUpsertBulk) UpdateLastSynced() *HAEntityUpsertBulk {
	return u.Update(func(s *HAEntityUpsert) {
		s.UpdateLastSynced()
	})
}

// Exec executes the query.
func (u *HAEntityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HAEntityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HAEntityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HAEntityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
