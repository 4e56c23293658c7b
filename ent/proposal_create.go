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
	"github.com/aether-home/aether/ent/proposal"
)

// ProposalCreate is the builder for creating a Proposal entity.
type ProposalCreate struct {
	config
	mutation *ProposalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *ProposalCreate) SetConversationID(v string) *ProposalCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableConversationID(v *string) *ProposalCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ProposalCreate) SetKind(v proposal.Kind) *ProposalCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *ProposalCreate) SetBody(v map[string]interface{}) *ProposalCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProposalCreate) SetStatus(v proposal.Status) *ProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableStatus(v *proposal.Status) *ProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProposalCreate) SetTitle(v string) *ProposalCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableTitle(v *string) *ProposalCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetHaAutomationID sets the "ha_automation_id" field.
func (_c *ProposalCreate) SetHaAutomationID(v string) *ProposalCreate {
	_c.mutation.SetHaAutomationID(v)
	return _c
}

// SetNillableHaAutomationID sets the "ha_automation_id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableHaAutomationID(v *string) *ProposalCreate {
	if v != nil {
		_c.SetHaAutomationID(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *ProposalCreate) SetApprovedBy(v string) *ProposalCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableApprovedBy(v *string) *ProposalCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *ProposalCreate) SetRejectionReason(v string) *ProposalCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableRejectionReason(v *string) *ProposalCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetOriginalYaml sets the "original_yaml" field.
func (_c *ProposalCreate) SetOriginalYaml(v string) *ProposalCreate {
	_c.mutation.SetOriginalYaml(v)
	return _c
}

// SetNillableOriginalYaml sets the "original_yaml" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableOriginalYaml(v *string) *ProposalCreate {
	if v != nil {
		_c.SetOriginalYaml(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *ProposalCreate) SetReviewNotes(v []string) *ProposalCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetHaDisabled sets the "ha_disabled" field.
func (_c *ProposalCreate) SetHaDisabled(v bool) *ProposalCreate {
	_c.mutation.SetHaDisabled(v)
	return _c
}

// SetNillableHaDisabled sets the "ha_disabled" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableHaDisabled(v *bool) *ProposalCreate {
	if v != nil {
		_c.SetHaDisabled(*v)
	}
	return _c
}

// SetHaError sets the "ha_error" field.
func (_c *ProposalCreate) SetHaError(v string) *ProposalCreate {
	_c.mutation.SetHaError(v)
	return _c
}

// SetNillableHaError sets the "ha_error" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableHaError(v *string) *ProposalCreate {
	if v != nil {
		_c.SetHaError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProposalCreate) SetCreatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableCreatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProposedAt sets the "proposed_at" field.
func (_c *ProposalCreate) SetProposedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetProposedAt(v)
	return _c
}

// SetNillableProposedAt sets the "proposed_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableProposedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetProposedAt(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *ProposalCreate) SetApprovedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableApprovedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetRejectedAt sets the "rejected_at" field.
func (_c *ProposalCreate) SetRejectedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetRejectedAt(v)
	return _c
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableRejectedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetRejectedAt(*v)
	}
	return _c
}

// SetDeployedAt sets the "deployed_at" field.
func (_c *ProposalCreate) SetDeployedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetDeployedAt(v)
	return _c
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableDeployedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetDeployedAt(*v)
	}
	return _c
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (_c *ProposalCreate) SetRolledBackAt(v time.Time) *ProposalCreate {
	_c.mutation.SetRolledBackAt(v)
	return _c
}

// SetNillableRolledBackAt sets the "rolled_back_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableRolledBackAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetRolledBackAt(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *ProposalCreate) SetArchivedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableArchivedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProposalCreate) SetID(v string) *ProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProposalMutation object of the builder.
func (_c *ProposalCreate) Mutation() *ProposalMutation {
	return _c.mutation
}

// Save creates the Proposal in the database.
func (_c *ProposalCreate) Save(ctx context.Context) (*Proposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposalCreate) SaveX(ctx context.Context) *Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := proposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := proposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposalCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Proposal.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := proposal.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Proposal.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Proposal.body"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Proposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Proposal.created_at"`)}
	}
	return nil
}

func (_c *ProposalCreate) sqlSave(ctx context.Context) (*Proposal, error) {
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
			return nil, fmt.Errorf("unexpected Proposal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProposalCreate) createSpec() (*Proposal, *sqlgraph.CreateSpec) {
	var (
		_node = &Proposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposal.Table, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(proposal.FieldConversationID, field.TypeString, value)
		_node.ConversationID = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(proposal.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(proposal.FieldBody, field.TypeJSON, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.HaAutomationID(); ok {
		_spec.SetField(proposal.FieldHaAutomationID, field.TypeString, value)
		_node.HaAutomationID = &value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(proposal.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(proposal.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if value, ok := _c.mutation.OriginalYaml(); ok {
		_spec.SetField(proposal.FieldOriginalYaml, field.TypeString, value)
		_node.OriginalYaml = &value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(proposal.FieldReviewNotes, field.TypeJSON, value)
		_node.ReviewNotes = value
	}
	if value, ok := _c.mutation.HaDisabled(); ok {
		_spec.SetField(proposal.FieldHaDisabled, field.TypeBool, value)
		_node.HaDisabled = &value
	}
	if value, ok := _c.mutation.HaError(); ok {
		_spec.SetField(proposal.FieldHaError, field.TypeString, value)
		_node.HaError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProposedAt(); ok {
		_spec.SetField(proposal.FieldProposedAt, field.TypeTime, value)
		_node.ProposedAt = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(proposal.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.RejectedAt(); ok {
		_spec.SetField(proposal.FieldRejectedAt, field.TypeTime, value)
		_node.RejectedAt = &value
	}
	if value, ok := _c.mutation.DeployedAt(); ok {
		_spec.SetField(proposal.FieldDeployedAt, field.TypeTime, value)
		_node.DeployedAt = &value
	}
	if value, ok := _c.mutation.RolledBackAt(); ok {
		_spec.SetField(proposal.FieldRolledBackAt, field.TypeTime, value)
		_node.RolledBackAt = &value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(proposal.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Proposal.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalCreate) OnConflict(opts ...sql.ConflictOption) *ProposalUpsertOne {
	_c.conflict = opts
	return &ProposalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalCreate) OnConflictColumns(columns ...string) *ProposalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalUpsertOne{
		create: _c,
	}
}

type (
	// ProposalUpsertOne is the builder for "upsert"-ing
	//  one Proposal node.
	ProposalUpsertOne struct {
		create *ProposalCreate
	}

	// ProposalUpsert is the "OnConflict" setter.
	ProposalUpsert struct {
		*sql.UpdateSet
	}
)

// SetConversationID sets the "conversation_id" field.
func (u *ProposalUpsert) SetConversationID(v string) *ProposalUpsert {
	u.Set(proposal.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateConversationID() *ProposalUpsert {
	u.SetExcluded(proposal.FieldConversationID)
	return u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *ProposalUpsert) ClearConversationID() *ProposalUpsert {
	u.SetNull(proposal.FieldConversationID)
	return u
}

// SetKind sets the "kind" field.
func (u *ProposalUpsert) SetKind(v proposal.Kind) *ProposalUpsert {
	u.Set(proposal.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateKind() *ProposalUpsert {
	u.SetExcluded(proposal.FieldKind)
	return u
}

// SetBody sets the "body" field.
func (u *ProposalUpsert) SetBody(v map[string]interface{}) *ProposalUpsert {
	u.Set(proposal.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateBody() *ProposalUpsert {
	u.SetExcluded(proposal.FieldBody)
	return u
}

// SetStatus sets the "status" field.
func (u *ProposalUpsert) SetStatus(v proposal.Status) *ProposalUpsert {
	u.Set(proposal.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateStatus() *ProposalUpsert {
	u.SetExcluded(proposal.FieldStatus)
	return u
}

// SetTitle sets the "title" field.
func (u *ProposalUpsert) SetTitle(v string) *ProposalUpsert {
	u.Set(proposal.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateTitle() *ProposalUpsert {
	u.SetExcluded(proposal.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *ProposalUpsert) ClearTitle() *ProposalUpsert {
	u.SetNull(proposal.FieldTitle)
	return u
}

// SetHaAutomationID sets the "ha_automation_id" field.
func (u *ProposalUpsert) SetHaAutomationID(v string) *ProposalUpsert {
	u.Set(proposal.FieldHaAutomationID, v)
	return u
}

// UpdateHaAutomationID sets the "ha_automation_id" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateHaAutomationID() *ProposalUpsert {
	u.SetExcluded(proposal.FieldHaAutomationID)
	return u
}

// ClearHaAutomationID clears the value of the "ha_automation_id" field.
func (u *ProposalUpsert) ClearHaAutomationID() *ProposalUpsert {
	u.SetNull(proposal.FieldHaAutomationID)
	return u
}

// SetApprovedBy sets the "approved_by" field.
func (u *ProposalUpsert) SetApprovedBy(v string) *ProposalUpsert {
	u.Set(proposal.FieldApprovedBy, v)
	return u
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateApprovedBy() *ProposalUpsert {
	u.SetExcluded(proposal.FieldApprovedBy)
	return u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *ProposalUpsert) ClearApprovedBy() *ProposalUpsert {
	u.SetNull(proposal.FieldApprovedBy)
	return u
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *ProposalUpsert) SetRejectionReason(v string) *ProposalUpsert {
	u.Set(proposal.FieldRejectionReason, v)
	return u
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateRejectionReason() *ProposalUpsert {
	u.SetExcluded(proposal.FieldRejectionReason)
	return u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *ProposalUpsert) ClearRejectionReason() *ProposalUpsert {
	u.SetNull(proposal.FieldRejectionReason)
	return u
}

// SetOriginalYaml sets the "original_yaml" field.
func (u *ProposalUpsert) SetOriginalYaml(v string) *ProposalUpsert {
	u.Set(proposal.FieldOriginalYaml, v)
	return u
}

// UpdateOriginalYaml sets the "original_yaml" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateOriginalYaml() *ProposalUpsert {
	u.SetExcluded(proposal.FieldOriginalYaml)
	return u
}

// ClearOriginalYaml clears the value of the "original_yaml" field.
func (u *ProposalUpsert) ClearOriginalYaml() *ProposalUpsert {
	u.SetNull(proposal.FieldOriginalYaml)
	return u
}

// SetReviewNotes sets the "review_notes" field.
func (u *ProposalUpsert) SetReviewNotes(v []string) *ProposalUpsert {
	u.Set(proposal.FieldReviewNotes, v)
	return u
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateReviewNotes() *ProposalUpsert {
	u.SetExcluded(proposal.FieldReviewNotes)
	return u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *ProposalUpsert) ClearReviewNotes() *ProposalUpsert {
	u.SetNull(proposal.FieldReviewNotes)
	return u
}

// SetHaDisabled sets the "ha_disabled" field.
func (u *ProposalUpsert) SetHaDisabled(v bool) *ProposalUpsert {
	u.Set(proposal.FieldHaDisabled, v)
	return u
}

// UpdateHaDisabled sets the "ha_disabled" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateHaDisabled() *ProposalUpsert {
	u.SetExcluded(proposal.FieldHaDisabled)
	return u
}

// ClearHaDisabled clears the value of the "ha_disabled" field.
func (u *ProposalUpsert) ClearHaDisabled() *ProposalUpsert {
	u.SetNull(proposal.FieldHaDisabled)
	return u
}

// SetHaError sets the "ha_error" field.
func (u *ProposalUpsert) SetHaError(v string) *ProposalUpsert {
	u.Set(proposal.FieldHaError, v)
	return u
}

// UpdateHaError sets the "ha_error" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateHaError() *ProposalUpsert {
	u.SetExcluded(proposal.FieldHaError)
	return u
}

// ClearHaError clears the value of the "ha_error" field.
func (u *ProposalUpsert) ClearHaError() *ProposalUpsert {
	u.SetNull(proposal.FieldHaError)
	return u
}

// SetProposedAt sets the "proposed_at" field.
func (u *ProposalUpsert) SetProposedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldProposedAt, v)
	return u
}

// UpdateProposedAt sets the "proposed_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateProposedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldProposedAt)
	return u
}

// ClearProposedAt clears the value of the "proposed_at" field.
func (u *ProposalUpsert) ClearProposedAt() *ProposalUpsert {
	u.SetNull(proposal.FieldProposedAt)
	return u
}

// SetApprovedAt sets the "approved_at" field.
func (u *ProposalUpsert) SetApprovedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldApprovedAt, v)
	return u
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateApprovedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldApprovedAt)
	return u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *ProposalUpsert) ClearApprovedAt() *ProposalUpsert {
	u.SetNull(proposal.FieldApprovedAt)
	return u
}

// SetRejectedAt sets the "rejected_at" field.
func (u *ProposalUpsert) SetRejectedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldRejectedAt, v)
	return u
}

// UpdateRejectedAt sets the "rejected_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateRejectedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldRejectedAt)
	return u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (u *ProposalUpsert) ClearRejectedAt() *ProposalUpsert {
	u.SetNull(proposal.FieldRejectedAt)
	return u
}

// SetDeployedAt sets the "deployed_at" field.
func (u *ProposalUpsert) SetDeployedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldDeployedAt, v)
	return u
}

// UpdateDeployedAt sets the "deployed_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateDeployedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldDeployedAt)
	return u
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (u *ProposalUpsert) ClearDeployedAt() *ProposalUpsert {
	u.SetNull(proposal.FieldDeployedAt)
	return u
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (u *ProposalUpsert) SetRolledBackAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldRolledBackAt, v)
	return u
}

// UpdateRolledBackAt sets the "rolled_back_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateRolledBackAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldRolledBackAt)
	return u
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (u *ProposalUpsert) ClearRolledBackAt() *ProposalUpsert {
	u.SetNull(proposal.FieldRolledBackAt)
	return u
}

// SetArchivedAt sets the "archived_at" field.
func (u *ProposalUpsert) SetArchivedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldArchivedAt, v)
	return u
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateArchivedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldArchivedAt)
	return u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *ProposalUpsert) ClearArchivedAt() *ProposalUpsert {
	u.SetNull(proposal.FieldArchivedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalUpsertOne) UpdateNewValues() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(proposal.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(proposal.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProposalUpsertOne) Ignore() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalUpsertOne) DoNothing() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalCreate.OnConflict
// documentation for more info.
func (u *ProposalUpsertOne) Update(set func(*ProposalUpsert)) *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *ProposalUpsertOne) SetConversationID(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateConversationID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *ProposalUpsertOne) ClearConversationID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearConversationID()
	})
}

// SetKind sets the "kind" field.
func (u *ProposalUpsertOne) SetKind(v proposal.Kind) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateKind() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateKind()
	})
}

// SetBody sets the "body" field.
func (u *ProposalUpsertOne) SetBody(v map[string]interface{}) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateBody() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateBody()
	})
}

// SetStatus sets the "status" field.
func (u *ProposalUpsertOne) SetStatus(v proposal.Status) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateStatus() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetTitle sets the "title" field.
func (u *ProposalUpsertOne) SetTitle(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateTitle() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ProposalUpsertOne) ClearTitle() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearTitle()
	})
}

// SetHaAutomationID sets the "ha_automation_id" field.
func (u *ProposalUpsertOne) SetHaAutomationID(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetHaAutomationID(v)
	})
}

// UpdateHaAutomationID sets the "ha_automation_id" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateHaAutomationID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateHaAutomationID()
	})
}

// ClearHaAutomationID clears the value of the "ha_automation_id" field.
func (u *ProposalUpsertOne) ClearHaAutomationID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearHaAutomationID()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *ProposalUpsertOne) SetApprovedBy(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateApprovedBy() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *ProposalUpsertOne) ClearApprovedBy() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearApprovedBy()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *ProposalUpsertOne) SetRejectionReason(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateRejectionReason() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *ProposalUpsertOne) ClearRejectionReason() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearRejectionReason()
	})
}

// SetOriginalYaml sets the "original_yaml" field.
func (u *ProposalUpsertOne) SetOriginalYaml(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetOriginalYaml(v)
	})
}

// UpdateOriginalYaml sets the "original_yaml" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateOriginalYaml() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateOriginalYaml()
	})
}

// ClearOriginalYaml clears the value of the "original_yaml" field.
func (u *ProposalUpsertOne) ClearOriginalYaml() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearOriginalYaml()
	})
}

// SetReviewNotes sets the "review_notes" field.
func (u *ProposalUpsertOne) SetReviewNotes(v []string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetReviewNotes(v)
	})
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateReviewNotes() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateReviewNotes()
	})
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *ProposalUpsertOne) ClearReviewNotes() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearReviewNotes()
	})
}

// SetHaDisabled sets the "ha_disabled" field.
func (u *ProposalUpsertOne) SetHaDisabled(v bool) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetHaDisabled(v)
	})
}

// UpdateHaDisabled sets the "ha_disabled" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateHaDisabled() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateHaDisabled()
	})
}

// ClearHaDisabled clears the value of the "ha_disabled" field.
func (u *ProposalUpsertOne) ClearHaDisabled() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearHaDisabled()
	})
}

// SetHaError sets the "ha_error" field.
func (u *ProposalUpsertOne) SetHaError(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetHaError(v)
	})
}

// UpdateHaError sets the "ha_error" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateHaError() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateHaError()
	})
}

// ClearHaError clears the value of the "ha_error" field.
func (u *ProposalUpsertOne) ClearHaError() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearHaError()
	})
}

// SetProposedAt sets the "proposed_at" field.
func (u *ProposalUpsertOne) SetProposedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposedAt(v)
	})
}

// UpdateProposedAt sets the "proposed_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateProposedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposedAt()
	})
}

// ClearProposedAt clears the value of the "proposed_at" field.
func (u *ProposalUpsertOne) ClearProposedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearProposedAt()
	})
}

// SetApprovedAt sets the "approved_at" field.
func (u *ProposalUpsertOne) SetApprovedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetApprovedAt(v)
	})
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateApprovedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateApprovedAt()
	})
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *ProposalUpsertOne) ClearApprovedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearApprovedAt()
	})
}

// SetRejectedAt sets the "rejected_at" field.
func (u *ProposalUpsertOne) SetRejectedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetRejectedAt(v)
	})
}

// UpdateRejectedAt sets the "rejected_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateRejectedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateRejectedAt()
	})
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (u *ProposalUpsertOne) ClearRejectedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearRejectedAt()
	})
}

// SetDeployedAt sets the "deployed_at" field.
func (u *ProposalUpsertOne) SetDeployedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetDeployedAt(v)
	})
}

// UpdateDeployedAt sets the "deployed_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateDeployedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateDeployedAt()
	})
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (u *ProposalUpsertOne) ClearDeployedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearDeployedAt()
	})
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (u *ProposalUpsertOne) SetRolledBackAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetRolledBackAt(v)
	})
}

// UpdateRolledBackAt sets the "rolled_back_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateRolledBackAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateRolledBackAt()
	})
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (u *ProposalUpsertOne) ClearRolledBackAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearRolledBackAt()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *ProposalUpsertOne) SetArchivedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateArchivedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *ProposalUpsertOne) ClearArchivedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearArchivedAt()
	})
}

// Exec executes the query.
func (u *ProposalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProposalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProposalUpsertOne.ID is not supported by MySQL driver. Use ProposalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProposalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProposalCreateBulk is the builder for creating many Proposal entities in bulk.
type ProposalCreateBulk struct {
	config
	err      error
	builders []*ProposalCreate
	conflict []sql.ConflictOption
}

// Save creates the Proposal entities in the database.
func (_c *ProposalCreateBulk) Save(ctx context.Context) ([]*Proposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Proposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposalMutation)
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
func (_c *ProposalCreateBulk) SaveX(ctx context.Context) []*Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Proposal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProposalUpsertBulk {
	_c.conflict = opts
	return &ProposalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalCreateBulk) OnConflictColumns(columns ...string) *ProposalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalUpsertBulk{
		create: _c,
	}
}

// ProposalUpsertBulk is the builder for "upsert"-ing
// a bulk of Proposal nodes.
type ProposalUpsertBulk struct {
	create *ProposalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalUpsertBulk) UpdateNewValues() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(proposal.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(proposal.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProposalUpsertBulk) Ignore() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalUpsertBulk) DoNothing() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalCreateBulk.OnConflict
// documentation for more info.
func (u *ProposalUpsertBulk) Update(set func(*ProposalUpsert)) *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *ProposalUpsertBulk) SetConversationID(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateConversationID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateConversationID()
	})
}

// ClearConversationID clears the value of the "conversation_id" field.
func (u *ProposalUpsertBulk) ClearConversationID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearConversationID()
	})
}

// SetKind sets the "kind" field.
func (u *ProposalUpsertBulk) SetKind(v proposal.Kind) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateKind() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateKind()
	})
}

// SetBody sets the "body" field.
func (u *ProposalUpsertBulk) SetBody(v map[string]interface{}) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateBody() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateBody()
	})
}

// SetStatus sets the "status" field.
func (u *ProposalUpsertBulk) SetStatus(v proposal.Status) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateStatus() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetTitle sets the "title" field.
func (u *ProposalUpsertBulk) SetTitle(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateTitle() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ProposalUpsertBulk) ClearTitle() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearTitle()
	})
}

// SetHaAutomationID sets the "ha_automation_id" field.
func (u *ProposalUpsertBulk) SetHaAutomationID(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetHaAutomationID(v)
	})
}

// UpdateHaAutomationID sets the "ha_automation_id" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateHaAutomationID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateHaAutomationID()
	})
}

// ClearHaAutomationID clears the value of the "ha_automation_id" field.
func (u *ProposalUpsertBulk) ClearHaAutomationID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearHaAutomationID()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *ProposalUpsertBulk) SetApprovedBy(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateApprovedBy() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *ProposalUpsertBulk) ClearApprovedBy() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearApprovedBy()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *ProposalUpsertBulk) SetRejectionReason(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateRejectionReason() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *ProposalUpsertBulk) ClearRejectionReason() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearRejectionReason()
	})
}

// SetOriginalYaml sets the "original_yaml" field.
func (u *ProposalUpsertBulk) SetOriginalYaml(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetOriginalYaml(v)
	})
}

// UpdateOriginalYaml sets the "original_yaml" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateOriginalYaml() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateOriginalYaml()
	})
}

// ClearOriginalYaml clears the value of the "original_yaml" field.
func (u *ProposalUpsertBulk) ClearOriginalYaml() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearOriginalYaml()
	})
}

// SetReviewNotes sets the "review_notes" field.
func (u *ProposalUpsertBulk) SetReviewNotes(v []string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetReviewNotes(v)
	})
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateReviewNotes() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateReviewNotes()
	})
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *ProposalUpsertBulk) ClearReviewNotes() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearReviewNotes()
	})
}

// SetHaDisabled sets the "ha_disabled" field.
func (u *ProposalUpsertBulk) SetHaDisabled(v bool) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetHaDisabled(v)
	})
}

// UpdateHaDisabled sets the "ha_disabled" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateHaDisabled() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateHaDisabled()
	})
}

// ClearHaDisabled clears the value of the "ha_disabled" field.
func (u *ProposalUpsertBulk) ClearHaDisabled() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearHaDisabled()
	})
}

// SetHaError sets the "ha_error" field.
func (u *ProposalUpsertBulk) SetHaError(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetHaError(v)
	})
}

// UpdateHaError sets the "ha_error" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateHaError() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateHaError()
	})
}

// ClearHaError clears the value of the "ha_error" field.
func (u *ProposalUpsertBulk) ClearHaError() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearHaError()
	})
}

// SetProposedAt sets the "proposed_at" field.
func (u *ProposalUpsertBulk) SetProposedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposedAt(v)
	})
}

// UpdateProposedAt sets the "proposed_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateProposedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposedAt()
	})
}

// ClearProposedAt clears the value of the "proposed_at" field.
func (u *ProposalUpsertBulk) ClearProposedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearProposedAt()
	})
}

// SetApprovedAt sets the "approved_at" field.
func (u *ProposalUpsertBulk) SetApprovedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetApprovedAt(v)
	})
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateApprovedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateApprovedAt()
	})
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *ProposalUpsertBulk) ClearApprovedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearApprovedAt()
	})
}

// SetRejectedAt sets the "rejected_at" field.
func (u *ProposalUpsertBulk) SetRejectedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetRejectedAt(v)
	})
}

// UpdateRejectedAt sets the "rejected_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateRejectedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateRejectedAt()
	})
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (u *ProposalUpsertBulk) ClearRejectedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearRejectedAt()
	})
}

// SetDeployedAt sets the "deployed_at" field.
func (u *ProposalUpsertBulk) SetDeployedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetDeployedAt(v)
	})
}

// UpdateDeployedAt sets the "deployed_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateDeployedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateDeployedAt()
	})
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (u *ProposalUpsertBulk) ClearDeployedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearDeployedAt()
	})
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (u *ProposalUpsertBulk) SetRolledBackAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetRolledBackAt(v)
	})
}

// UpdateRolledBackAt sets the "rolled_back_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateRolledBackAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateRolledBackAt()
	})
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (u *ProposalUpsertBulk) ClearRolledBackAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearRolledBackAt()
	})
}

// SetArchivedAt sets the "archived_at" field.
func (u *ProposalUpsertBulk) SetArchivedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetArchivedAt(v)
	})
}

// UpdateArchivedAt sets the "archived_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateArchivedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateArchivedAt()
	})
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (u *ProposalUpsertBulk) ClearArchivedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearArchivedAt()
	})
}

// Exec executes the query.
func (u *ProposalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProposalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
