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
	"github.com/aether-home/aether/ent/predicate"
	"github.com/aether-home/aether/ent/proposal"
)

// ProposalUpdate is the builder for updating Proposal entities.
type ProposalUpdate struct {
	config
	hooks    []Hook
	mutation *ProposalMutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdate) Where(ps ...predicate.Proposal) *ProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *ProposalUpdate) SetConversationID(v string) *ProposalUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableConversationID(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *ProposalUpdate) ClearConversationID() *ProposalUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ProposalUpdate) SetKind(v proposal.Kind) *ProposalUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableKind(v *proposal.Kind) *ProposalUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ProposalUpdate) SetBody(v map[string]interface{}) *ProposalUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdate) SetStatus(v proposal.Status) *ProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableStatus(v *proposal.Status) *ProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProposalUpdate) SetTitle(v string) *ProposalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableTitle(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ProposalUpdate) ClearTitle() *ProposalUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetHaAutomationID sets the "ha_automation_id" field.
func (_u *ProposalUpdate) SetHaAutomationID(v string) *ProposalUpdate {
	_u.mutation.SetHaAutomationID(v)
	return _u
}

// SetNillableHaAutomationID sets the "ha_automation_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableHaAutomationID(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetHaAutomationID(*v)
	}
	return _u
}

// ClearHaAutomationID clears the value of the "ha_automation_id" field.
func (_u *ProposalUpdate) ClearHaAutomationID() *ProposalUpdate {
	_u.mutation.ClearHaAutomationID()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ProposalUpdate) SetApprovedBy(v string) *ProposalUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableApprovedBy(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ProposalUpdate) ClearApprovedBy() *ProposalUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *ProposalUpdate) SetRejectionReason(v string) *ProposalUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableRejectionReason(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *ProposalUpdate) ClearRejectionReason() *ProposalUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetOriginalYaml sets the "original_yaml" field.
func (_u *ProposalUpdate) SetOriginalYaml(v string) *ProposalUpdate {
	_u.mutation.SetOriginalYaml(v)
	return _u
}

// SetNillableOriginalYaml sets the "original_yaml" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableOriginalYaml(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetOriginalYaml(*v)
	}
	return _u
}

// ClearOriginalYaml clears the value of the "original_yaml" field.
func (_u *ProposalUpdate) ClearOriginalYaml() *ProposalUpdate {
	_u.mutation.ClearOriginalYaml()
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *ProposalUpdate) SetReviewNotes(v []string) *ProposalUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// AppendReviewNotes appends value to the "review_notes" field.
func (_u *ProposalUpdate) AppendReviewNotes(v []string) *ProposalUpdate {
	_u.mutation.AppendReviewNotes(v)
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *ProposalUpdate) ClearReviewNotes() *ProposalUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetHaDisabled sets the "ha_disabled" field.
func (_u *ProposalUpdate) SetHaDisabled(v bool) *ProposalUpdate {
	_u.mutation.SetHaDisabled(v)
	return _u
}

// SetNillableHaDisabled sets the "ha_disabled" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableHaDisabled(v *bool) *ProposalUpdate {
	if v != nil {
		_u.SetHaDisabled(*v)
	}
	return _u
}

// ClearHaDisabled clears the value of the "ha_disabled" field.
func (_u *ProposalUpdate) ClearHaDisabled() *ProposalUpdate {
	_u.mutation.ClearHaDisabled()
	return _u
}

// SetHaError sets the "ha_error" field.
func (_u *ProposalUpdate) SetHaError(v string) *ProposalUpdate {
	_u.mutation.SetHaError(v)
	return _u
}

// SetNillableHaError sets the "ha_error" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableHaError(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetHaError(*v)
	}
	return _u
}

// ClearHaError clears the value of the "ha_error" field.
func (_u *ProposalUpdate) ClearHaError() *ProposalUpdate {
	_u.mutation.ClearHaError()
	return _u
}

// SetProposedAt sets the "proposed_at" field.
func (_u *ProposalUpdate) SetProposedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetProposedAt(v)
	return _u
}

// SetNillableProposedAt sets the "proposed_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableProposedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetProposedAt(*v)
	}
	return _u
}

// ClearProposedAt clears the value of the "proposed_at" field.
func (_u *ProposalUpdate) ClearProposedAt() *ProposalUpdate {
	_u.mutation.ClearProposedAt()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ProposalUpdate) SetApprovedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableApprovedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ProposalUpdate) ClearApprovedAt() *ProposalUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *ProposalUpdate) SetRejectedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableRejectedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *ProposalUpdate) ClearRejectedAt() *ProposalUpdate {
	_u.mutation.ClearRejectedAt()
	return _u
}

// SetDeployedAt sets the "deployed_at" field.
func (_u *ProposalUpdate) SetDeployedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetDeployedAt(v)
	return _u
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableDeployedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetDeployedAt(*v)
	}
	return _u
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (_u *ProposalUpdate) ClearDeployedAt() *ProposalUpdate {
	_u.mutation.ClearDeployedAt()
	return _u
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (_u *ProposalUpdate) SetRolledBackAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetRolledBackAt(v)
	return _u
}

// SetNillableRolledBackAt sets the "rolled_back_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableRolledBackAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetRolledBackAt(*v)
	}
	return _u
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (_u *ProposalUpdate) ClearRolledBackAt() *ProposalUpdate {
	_u.mutation.ClearRolledBackAt()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *ProposalUpdate) SetArchivedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableArchivedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *ProposalUpdate) ClearArchivedAt() *ProposalUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdate) Mutation() *ProposalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := proposal.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Proposal.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(proposal.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(proposal.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(proposal.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(proposal.FieldBody, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(proposal.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.HaAutomationID(); ok {
		_spec.SetField(proposal.FieldHaAutomationID, field.TypeString, value)
	}
	if _u.mutation.HaAutomationIDCleared() {
		_spec.ClearField(proposal.FieldHaAutomationID, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(proposal.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(proposal.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(proposal.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(proposal.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalYaml(); ok {
		_spec.SetField(proposal.FieldOriginalYaml, field.TypeString, value)
	}
	if _u.mutation.OriginalYamlCleared() {
		_spec.ClearField(proposal.FieldOriginalYaml, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(proposal.FieldReviewNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, proposal.FieldReviewNotes, value)
		})
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(proposal.FieldReviewNotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.HaDisabled(); ok {
		_spec.SetField(proposal.FieldHaDisabled, field.TypeBool, value)
	}
	if _u.mutation.HaDisabledCleared() {
		_spec.ClearField(proposal.FieldHaDisabled, field.TypeBool)
	}
	if value, ok := _u.mutation.HaError(); ok {
		_spec.SetField(proposal.FieldHaError, field.TypeString, value)
	}
	if _u.mutation.HaErrorCleared() {
		_spec.ClearField(proposal.FieldHaError, field.TypeString)
	}
	if value, ok := _u.mutation.ProposedAt(); ok {
		_spec.SetField(proposal.FieldProposedAt, field.TypeTime, value)
	}
	if _u.mutation.ProposedAtCleared() {
		_spec.ClearField(proposal.FieldProposedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(proposal.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(proposal.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(proposal.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(proposal.FieldRejectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeployedAt(); ok {
		_spec.SetField(proposal.FieldDeployedAt, field.TypeTime, value)
	}
	if _u.mutation.DeployedAtCleared() {
		_spec.ClearField(proposal.FieldDeployedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RolledBackAt(); ok {
		_spec.SetField(proposal.FieldRolledBackAt, field.TypeTime, value)
	}
	if _u.mutation.RolledBackAtCleared() {
		_spec.ClearField(proposal.FieldRolledBackAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(proposal.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(proposal.FieldArchivedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposalUpdateOne is the builder for updating a single Proposal entity.
type ProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposalMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *ProposalUpdateOne) SetConversationID(v string) *ProposalUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableConversationID(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *ProposalUpdateOne) ClearConversationID() *ProposalUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ProposalUpdateOne) SetKind(v proposal.Kind) *ProposalUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableKind(v *proposal.Kind) *ProposalUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ProposalUpdateOne) SetBody(v map[string]interface{}) *ProposalUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdateOne) SetStatus(v proposal.Status) *ProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableStatus(v *proposal.Status) *ProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProposalUpdateOne) SetTitle(v string) *ProposalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableTitle(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ProposalUpdateOne) ClearTitle() *ProposalUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetHaAutomationID sets the "ha_automation_id" field.
func (_u *ProposalUpdateOne) SetHaAutomationID(v string) *ProposalUpdateOne {
	_u.mutation.SetHaAutomationID(v)
	return _u
}

// SetNillableHaAutomationID sets the "ha_automation_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableHaAutomationID(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetHaAutomationID(*v)
	}
	return _u
}

// ClearHaAutomationID clears the value of the "ha_automation_id" field.
func (_u *ProposalUpdateOne) ClearHaAutomationID() *ProposalUpdateOne {
	_u.mutation.ClearHaAutomationID()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ProposalUpdateOne) SetApprovedBy(v string) *ProposalUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableApprovedBy(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ProposalUpdateOne) ClearApprovedBy() *ProposalUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *ProposalUpdateOne) SetRejectionReason(v string) *ProposalUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableRejectionReason(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *ProposalUpdateOne) ClearRejectionReason() *ProposalUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetOriginalYaml sets the "original_yaml" field.
func (_u *ProposalUpdateOne) SetOriginalYaml(v string) *ProposalUpdateOne {
	_u.mutation.SetOriginalYaml(v)
	return _u
}

// SetNillableOriginalYaml sets the "original_yaml" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableOriginalYaml(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetOriginalYaml(*v)
	}
	return _u
}

// ClearOriginalYaml clears the value of the "original_yaml" field.
func (_u *ProposalUpdateOne) ClearOriginalYaml() *ProposalUpdateOne {
	_u.mutation.ClearOriginalYaml()
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *ProposalUpdateOne) SetReviewNotes(v []string) *ProposalUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// AppendReviewNotes appends value to the "review_notes" field.
func (_u *ProposalUpdateOne) AppendReviewNotes(v []string) *ProposalUpdateOne {
	_u.mutation.AppendReviewNotes(v)
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *ProposalUpdateOne) ClearReviewNotes() *ProposalUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetHaDisabled sets the "ha_disabled" field.
func (_u *ProposalUpdateOne) SetHaDisabled(v bool) *ProposalUpdateOne {
	_u.mutation.SetHaDisabled(v)
	return _u
}

// SetNillableHaDisabled sets the "ha_disabled" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableHaDisabled(v *bool) *ProposalUpdateOne {
	if v != nil {
		_u.SetHaDisabled(*v)
	}
	return _u
}

// ClearHaDisabled clears the value of the "ha_disabled" field.
func (_u *ProposalUpdateOne) ClearHaDisabled() *ProposalUpdateOne {
	_u.mutation.ClearHaDisabled()
	return _u
}

// SetHaError sets the "ha_error" field.
func (_u *ProposalUpdateOne) SetHaError(v string) *ProposalUpdateOne {
	_u.mutation.SetHaError(v)
	return _u
}

// SetNillableHaError sets the "ha_error" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableHaError(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetHaError(*v)
	}
	return _u
}

// ClearHaError clears the value of the "ha_error" field.
func (_u *ProposalUpdateOne) ClearHaError() *ProposalUpdateOne {
	_u.mutation.ClearHaError()
	return _u
}

// SetProposedAt sets the "proposed_at" field.
func (_u *ProposalUpdateOne) SetProposedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetProposedAt(v)
	return _u
}

// SetNillableProposedAt sets the "proposed_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableProposedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetProposedAt(*v)
	}
	return _u
}

// ClearProposedAt clears the value of the "proposed_at" field.
func (_u *ProposalUpdateOne) ClearProposedAt() *ProposalUpdateOne {
	_u.mutation.ClearProposedAt()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ProposalUpdateOne) SetApprovedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableApprovedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ProposalUpdateOne) ClearApprovedAt() *ProposalUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *ProposalUpdateOne) SetRejectedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableRejectedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *ProposalUpdateOne) ClearRejectedAt() *ProposalUpdateOne {
	_u.mutation.ClearRejectedAt()
	return _u
}

// SetDeployedAt sets the "deployed_at" field.
func (_u *ProposalUpdateOne) SetDeployedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetDeployedAt(v)
	return _u
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableDeployedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetDeployedAt(*v)
	}
	return _u
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (_u *ProposalUpdateOne) ClearDeployedAt() *ProposalUpdateOne {
	_u.mutation.ClearDeployedAt()
	return _u
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (_u *ProposalUpdateOne) SetRolledBackAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetRolledBackAt(v)
	return _u
}

// SetNillableRolledBackAt sets the "rolled_back_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableRolledBackAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetRolledBackAt(*v)
	}
	return _u
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (_u *ProposalUpdateOne) ClearRolledBackAt() *ProposalUpdateOne {
	_u.mutation.ClearRolledBackAt()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *ProposalUpdateOne) SetArchivedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableArchivedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *ProposalUpdateOne) ClearArchivedAt() *ProposalUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdateOne) Mutation() *ProposalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdateOne) Where(ps ...predicate.Proposal) *ProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposalUpdateOne) Select(field string, fields ...string) *ProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Proposal entity.
func (_u *ProposalUpdateOne) Save(ctx context.Context) (*Proposal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdateOne) SaveX(ctx context.Context) *Proposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := proposal.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Proposal.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdateOne) sqlSave(ctx context.Context) (_node *Proposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Proposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposal.FieldID)
		for _, f := range fields {
			if !proposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposal.FieldID {
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
		_spec.SetField(proposal.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(proposal.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(proposal.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(proposal.FieldBody, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(proposal.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.HaAutomationID(); ok {
		_spec.SetField(proposal.FieldHaAutomationID, field.TypeString, value)
	}
	if _u.mutation.HaAutomationIDCleared() {
		_spec.ClearField(proposal.FieldHaAutomationID, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(proposal.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(proposal.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(proposal.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(proposal.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalYaml(); ok {
		_spec.SetField(proposal.FieldOriginalYaml, field.TypeString, value)
	}
	if _u.mutation.OriginalYamlCleared() {
		_spec.ClearField(proposal.FieldOriginalYaml, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(proposal.FieldReviewNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, proposal.FieldReviewNotes, value)
		})
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(proposal.FieldReviewNotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.HaDisabled(); ok {
		_spec.SetField(proposal.FieldHaDisabled, field.TypeBool, value)
	}
	if _u.mutation.HaDisabledCleared() {
		_spec.ClearField(proposal.FieldHaDisabled, field.TypeBool)
	}
	if value, ok := _u.mutation.HaError(); ok {
		_spec.SetField(proposal.FieldHaError, field.TypeString, value)
	}
	if _u.mutation.HaErrorCleared() {
		_spec.ClearField(proposal.FieldHaError, field.TypeString)
	}
	if value, ok := _u.mutation.ProposedAt(); ok {
		_spec.SetField(proposal.FieldProposedAt, field.TypeTime, value)
	}
	if _u.mutation.ProposedAtCleared() {
		_spec.ClearField(proposal.FieldProposedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(proposal.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(proposal.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(proposal.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(proposal.FieldRejectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeployedAt(); ok {
		_spec.SetField(proposal.FieldDeployedAt, field.TypeTime, value)
	}
	if _u.mutation.DeployedAtCleared() {
		_spec.ClearField(proposal.FieldDeployedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RolledBackAt(); ok {
		_spec.SetField(proposal.FieldRolledBackAt, field.TypeTime, value)
	}
	if _u.mutation.RolledBackAtCleared() {
		_spec.ClearField(proposal.FieldRolledBackAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(proposal.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(proposal.FieldArchivedAt, field.TypeTime)
	}
	_node = &Proposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
