// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldConversationID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTitle, v))
}

// HaAutomationID applies equality check predicate on the "ha_automation_id" field. It's identical to HaAutomationIDEQ.
func HaAutomationID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldHaAutomationID, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldApprovedBy, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRejectionReason, v))
}

// OriginalYaml applies equality check predicate on the "original_yaml" field. It's identical to OriginalYamlEQ.
func OriginalYaml(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldOriginalYaml, v))
}

// HaDisabled applies equality check predicate on the "ha_disabled" field. It's identical to HaDisabledEQ.
func HaDisabled(v bool) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldHaDisabled, v))
}

// HaError applies equality check predicate on the "ha_error" field. It's identical to HaErrorEQ.
func HaError(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldHaError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// ProposedAt applies equality check predicate on the "proposed_at" field. It's identical to ProposedAtEQ.
func ProposedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposedAt, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldApprovedAt, v))
}

// RejectedAt applies equality check predicate on the "rejected_at" field. It's identical to RejectedAtEQ.
func RejectedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRejectedAt, v))
}

// DeployedAt applies equality check predicate on the "deployed_at" field. It's identical to DeployedAtEQ.
func DeployedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDeployedAt, v))
}

// RolledBackAt applies equality check predicate on the "rolled_back_at" field. It's identical to RolledBackAtEQ.
func RolledBackAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRolledBackAt, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldArchivedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldConversationID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldStatus, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldTitle, v))
}

// HaAutomationIDEQ applies the EQ predicate on the "ha_automation_id" field.
func HaAutomationIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldHaAutomationID, v))
}

// HaAutomationIDNEQ applies the NEQ predicate on the "ha_automation_id" field.
func HaAutomationIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldHaAutomationID, v))
}

// HaAutomationIDIn applies the In predicate on the "ha_automation_id" field.
func HaAutomationIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldHaAutomationID, vs...))
}

// HaAutomationIDNotIn applies the NotIn predicate on the "ha_automation_id" field.
func HaAutomationIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldHaAutomationID, vs...))
}

// HaAutomationIDGT applies the GT predicate on the "ha_automation_id" field.
func HaAutomationIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldHaAutomationID, v))
}

// HaAutomationIDGTE applies the GTE predicate on the "ha_automation_id" field.
func HaAutomationIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldHaAutomationID, v))
}

// HaAutomationIDLT applies the LT predicate on the "ha_automation_id" field.
func HaAutomationIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldHaAutomationID, v))
}

// HaAutomationIDLTE applies the LTE predicate on the "ha_automation_id" field.
func HaAutomationIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldHaAutomationID, v))
}

// HaAutomationIDContains applies the Contains predicate on the "ha_automation_id" field.
func HaAutomationIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldHaAutomationID, v))
}

// HaAutomationIDHasPrefix applies the HasPrefix predicate on the "ha_automation_id" field.
func HaAutomationIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldHaAutomationID, v))
}

// HaAutomationIDHasSuffix applies the HasSuffix predicate on the "ha_automation_id" field.
func HaAutomationIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldHaAutomationID, v))
}

// HaAutomationIDIsNil applies the IsNil predicate on the "ha_automation_id" field.
func HaAutomationIDIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldHaAutomationID))
}

// HaAutomationIDNotNil applies the NotNil predicate on the "ha_automation_id" field.
func HaAutomationIDNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldHaAutomationID))
}

// HaAutomationIDEqualFold applies the EqualFold predicate on the "ha_automation_id" field.
func HaAutomationIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldHaAutomationID, v))
}

// HaAutomationIDContainsFold applies the ContainsFold predicate on the "ha_automation_id" field.
func HaAutomationIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldHaAutomationID, v))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldApprovedBy, v))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldRejectionReason, v))
}

// OriginalYamlEQ applies the EQ predicate on the "original_yaml" field.
func OriginalYamlEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldOriginalYaml, v))
}

// OriginalYamlNEQ applies the NEQ predicate on the "original_yaml" field.
func OriginalYamlNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldOriginalYaml, v))
}

// OriginalYamlIn applies the In predicate on the "original_yaml" field.
func OriginalYamlIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldOriginalYaml, vs...))
}

// OriginalYamlNotIn applies the NotIn predicate on the "original_yaml" field.
func OriginalYamlNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldOriginalYaml, vs...))
}

// OriginalYamlGT applies the GT predicate on the "original_yaml" field.
func OriginalYamlGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldOriginalYaml, v))
}

// OriginalYamlGTE applies the GTE predicate on the "original_yaml" field.
func OriginalYamlGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldOriginalYaml, v))
}

// OriginalYamlLT applies the LT predicate on the "original_yaml" field.
func OriginalYamlLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldOriginalYaml, v))
}

// OriginalYamlLTE applies the LTE predicate on the "original_yaml" field.
func OriginalYamlLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldOriginalYaml, v))
}

// OriginalYamlContains applies the Contains predicate on the "original_yaml" field.
func OriginalYamlContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldOriginalYaml, v))
}

// OriginalYamlHasPrefix applies the HasPrefix predicate on the "original_yaml" field.
func OriginalYamlHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldOriginalYaml, v))
}

// OriginalYamlHasSuffix applies the HasSuffix predicate on the "original_yaml" field.
func OriginalYamlHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldOriginalYaml, v))
}

// OriginalYamlIsNil applies the IsNil predicate on the "original_yaml" field.
func OriginalYamlIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldOriginalYaml))
}

// OriginalYamlNotNil applies the NotNil predicate on the "original_yaml" field.
func OriginalYamlNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldOriginalYaml))
}

// OriginalYamlEqualFold applies the EqualFold predicate on the "original_yaml" field.
func OriginalYamlEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldOriginalYaml, v))
}

// OriginalYamlContainsFold applies the ContainsFold predicate on the "original_yaml" field.
func OriginalYamlContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldOriginalYaml, v))
}

// ReviewNotesIsNil applies the IsNil predicate on the "review_notes" field.
func ReviewNotesIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldReviewNotes))
}

// ReviewNotesNotNil applies the NotNil predicate on the "review_notes" field.
func ReviewNotesNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldReviewNotes))
}

// HaDisabledEQ applies the EQ predicate on the "ha_disabled" field.
func HaDisabledEQ(v bool) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldHaDisabled, v))
}

// HaDisabledNEQ applies the NEQ predicate on the "ha_disabled" field.
func HaDisabledNEQ(v bool) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldHaDisabled, v))
}

// HaDisabledIsNil applies the IsNil predicate on the "ha_disabled" field.
func HaDisabledIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldHaDisabled))
}

// HaDisabledNotNil applies the NotNil predicate on the "ha_disabled" field.
func HaDisabledNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldHaDisabled))
}

// HaErrorEQ applies the EQ predicate on the "ha_error" field.
func HaErrorEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldHaError, v))
}

// HaErrorNEQ applies the NEQ predicate on the "ha_error" field.
func HaErrorNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldHaError, v))
}

// HaErrorIn applies the In predicate on the "ha_error" field.
func HaErrorIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldHaError, vs...))
}

// HaErrorNotIn applies the NotIn predicate on the "ha_error" field.
func HaErrorNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldHaError, vs...))
}

// HaErrorGT applies the GT predicate on the "ha_error" field.
func HaErrorGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldHaError, v))
}

// HaErrorGTE applies the GTE predicate on the "ha_error" field.
func HaErrorGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldHaError, v))
}

// HaErrorLT applies the LT predicate on the "ha_error" field.
func HaErrorLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldHaError, v))
}

// HaErrorLTE applies the LTE predicate on the "ha_error" field.
func HaErrorLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldHaError, v))
}

// HaErrorContains applies the Contains predicate on the "ha_error" field.
func HaErrorContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldHaError, v))
}

// HaErrorHasPrefix applies the HasPrefix predicate on the "ha_error" field.
func HaErrorHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldHaError, v))
}

// HaErrorHasSuffix applies the HasSuffix predicate on the "ha_error" field.
func HaErrorHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldHaError, v))
}

// HaErrorIsNil applies the IsNil predicate on the "ha_error" field.
func HaErrorIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldHaError))
}

// HaErrorNotNil applies the NotNil predicate on the "ha_error" field.
func HaErrorNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldHaError))
}

// HaErrorEqualFold applies the EqualFold predicate on the "ha_error" field.
func HaErrorEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldHaError, v))
}

// HaErrorContainsFold applies the ContainsFold predicate on the "ha_error" field.
func HaErrorContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldHaError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldCreatedAt, v))
}

// ProposedAtEQ applies the EQ predicate on the "proposed_at" field.
func ProposedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposedAt, v))
}

// ProposedAtNEQ applies the NEQ predicate on the "proposed_at" field.
func ProposedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldProposedAt, v))
}

// ProposedAtIn applies the In predicate on the "proposed_at" field.
func ProposedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldProposedAt, vs...))
}

// ProposedAtNotIn applies the NotIn predicate on the "proposed_at" field.
func ProposedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldProposedAt, vs...))
}

// ProposedAtGT applies the GT predicate on the "proposed_at" field.
func ProposedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldProposedAt, v))
}

// ProposedAtGTE applies the GTE predicate on the "proposed_at" field.
func ProposedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldProposedAt, v))
}

// ProposedAtLT applies the LT predicate on the "proposed_at" field.
func ProposedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldProposedAt, v))
}

// ProposedAtLTE applies the LTE predicate on the "proposed_at" field.
func ProposedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldProposedAt, v))
}

// ProposedAtIsNil applies the IsNil predicate on the "proposed_at" field.
func ProposedAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldProposedAt))
}

// ProposedAtNotNil applies the NotNil predicate on the "proposed_at" field.
func ProposedAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldProposedAt))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldApprovedAt))
}

// RejectedAtEQ applies the EQ predicate on the "rejected_at" field.
func RejectedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRejectedAt, v))
}

// RejectedAtNEQ applies the NEQ predicate on the "rejected_at" field.
func RejectedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldRejectedAt, v))
}

// RejectedAtIn applies the In predicate on the "rejected_at" field.
func RejectedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldRejectedAt, vs...))
}

// RejectedAtNotIn applies the NotIn predicate on the "rejected_at" field.
func RejectedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldRejectedAt, vs...))
}

// RejectedAtGT applies the GT predicate on the "rejected_at" field.
func RejectedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldRejectedAt, v))
}

// RejectedAtGTE applies the GTE predicate on the "rejected_at" field.
func RejectedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldRejectedAt, v))
}

// RejectedAtLT applies the LT predicate on the "rejected_at" field.
func RejectedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldRejectedAt, v))
}

// RejectedAtLTE applies the LTE predicate on the "rejected_at" field.
func RejectedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldRejectedAt, v))
}

// RejectedAtIsNil applies the IsNil predicate on the "rejected_at" field.
func RejectedAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldRejectedAt))
}

// RejectedAtNotNil applies the NotNil predicate on the "rejected_at" field.
func RejectedAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldRejectedAt))
}

// DeployedAtEQ applies the EQ predicate on the "deployed_at" field.
func DeployedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDeployedAt, v))
}

// DeployedAtNEQ applies the NEQ predicate on the "deployed_at" field.
func DeployedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldDeployedAt, v))
}

// DeployedAtIn applies the In predicate on the "deployed_at" field.
func DeployedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldDeployedAt, vs...))
}

// DeployedAtNotIn applies the NotIn predicate on the "deployed_at" field.
func DeployedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldDeployedAt, vs...))
}

// DeployedAtGT applies the GT predicate on the "deployed_at" field.
func DeployedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldDeployedAt, v))
}

// DeployedAtGTE applies the GTE predicate on the "deployed_at" field.
func DeployedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldDeployedAt, v))
}

// DeployedAtLT applies the LT predicate on the "deployed_at" field.
func DeployedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldDeployedAt, v))
}

// DeployedAtLTE applies the LTE predicate on the "deployed_at" field.
func DeployedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldDeployedAt, v))
}

// DeployedAtIsNil applies the IsNil predicate on the "deployed_at" field.
func DeployedAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldDeployedAt))
}

// DeployedAtNotNil applies the NotNil predicate on the "deployed_at" field.
func DeployedAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldDeployedAt))
}

// RolledBackAtEQ applies the EQ predicate on the "rolled_back_at" field.
func RolledBackAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRolledBackAt, v))
}

// RolledBackAtNEQ applies the NEQ predicate on the "rolled_back_at" field.
func RolledBackAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldRolledBackAt, v))
}

// RolledBackAtIn applies the In predicate on the "rolled_back_at" field.
func RolledBackAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldRolledBackAt, vs...))
}

// RolledBackAtNotIn applies the NotIn predicate on the "rolled_back_at" field.
func RolledBackAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldRolledBackAt, vs...))
}

// RolledBackAtGT applies the GT predicate on the "rolled_back_at" field.
func RolledBackAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldRolledBackAt, v))
}

// RolledBackAtGTE applies the GTE predicate on the "rolled_back_at" field.
func RolledBackAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldRolledBackAt, v))
}

// RolledBackAtLT applies the LT predicate on the "rolled_back_at" field.
func RolledBackAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldRolledBackAt, v))
}

// RolledBackAtLTE applies the LTE predicate on the "rolled_back_at" field.
func RolledBackAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldRolledBackAt, v))
}

// RolledBackAtIsNil applies the IsNil predicate on the "rolled_back_at" field.
func RolledBackAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldRolledBackAt))
}

// RolledBackAtNotNil applies the NotNil predicate on the "rolled_back_at" field.
func RolledBackAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldRolledBackAt))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldArchivedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.NotPredicates(p))
}
