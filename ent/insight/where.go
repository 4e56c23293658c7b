// Code generated by ent, DO NOT EDIT.

package insight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldID, id))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCategory, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldDescription, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldConfidence, v))
}

// ScriptPath applies equality check predicate on the "script_path" field. It's identical to ScriptPathEQ.
func ScriptPath(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldScriptPath, v))
}

// ScriptOutput applies equality check predicate on the "script_output" field. It's identical to ScriptOutputEQ.
func ScriptOutput(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldScriptOutput, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldConversationID, v))
}

// ScheduleID applies equality check predicate on the "schedule_id" field. It's identical to ScheduleIDEQ.
func ScheduleID(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldScheduleID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCreatedAt, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldCategory, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldDescription, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldEvidence))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldConfidence, v))
}

// ImpactEQ applies the EQ predicate on the "impact" field.
func ImpactEQ(v Impact) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldImpact, v))
}

// ImpactNEQ applies the NEQ predicate on the "impact" field.
func ImpactNEQ(v Impact) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldImpact, v))
}

// ImpactIn applies the In predicate on the "impact" field.
func ImpactIn(vs ...Impact) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldImpact, vs...))
}

// ImpactNotIn applies the NotIn predicate on the "impact" field.
func ImpactNotIn(vs ...Impact) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldImpact, vs...))
}

// EntityIdsIsNil applies the IsNil predicate on the "entity_ids" field.
func EntityIdsIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldEntityIds))
}

// EntityIdsNotNil applies the NotNil predicate on the "entity_ids" field.
func EntityIdsNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldEntityIds))
}

// ScriptPathEQ applies the EQ predicate on the "script_path" field.
func ScriptPathEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldScriptPath, v))
}

// ScriptPathNEQ applies the NEQ predicate on the "script_path" field.
func ScriptPathNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldScriptPath, v))
}

// ScriptPathIn applies the In predicate on the "script_path" field.
func ScriptPathIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldScriptPath, vs...))
}

// ScriptPathNotIn applies the NotIn predicate on the "script_path" field.
func ScriptPathNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldScriptPath, vs...))
}

// ScriptPathGT applies the GT predicate on the "script_path" field.
func ScriptPathGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldScriptPath, v))
}

// ScriptPathGTE applies the GTE predicate on the "script_path" field.
func ScriptPathGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldScriptPath, v))
}

// ScriptPathLT applies the LT predicate on the "script_path" field.
func ScriptPathLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldScriptPath, v))
}

// ScriptPathLTE applies the LTE predicate on the "script_path" field.
func ScriptPathLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldScriptPath, v))
}

// ScriptPathContains applies the Contains predicate on the "script_path" field.
func ScriptPathContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldScriptPath, v))
}

// ScriptPathHasPrefix applies the HasPrefix predicate on the "script_path" field.
func ScriptPathHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldScriptPath, v))
}

// ScriptPathHasSuffix applies the HasSuffix predicate on the "script_path" field.
func ScriptPathHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldScriptPath, v))
}

// ScriptPathIsNil applies the IsNil predicate on the "script_path" field.
func ScriptPathIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldScriptPath))
}

// ScriptPathNotNil applies the NotNil predicate on the "script_path" field.
func ScriptPathNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldScriptPath))
}

// ScriptPathEqualFold applies the EqualFold predicate on the "script_path" field.
func ScriptPathEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldScriptPath, v))
}

// ScriptPathContainsFold applies the ContainsFold predicate on the "script_path" field.
func ScriptPathContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldScriptPath, v))
}

// ScriptOutputEQ applies the EQ predicate on the "script_output" field.
func ScriptOutputEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldScriptOutput, v))
}

// ScriptOutputNEQ applies the NEQ predicate on the "script_output" field.
func ScriptOutputNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldScriptOutput, v))
}

// ScriptOutputIn applies the In predicate on the "script_output" field.
func ScriptOutputIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldScriptOutput, vs...))
}

// ScriptOutputNotIn applies the NotIn predicate on the "script_output" field.
func ScriptOutputNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldScriptOutput, vs...))
}

// ScriptOutputGT applies the GT predicate on the "script_output" field.
func ScriptOutputGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldScriptOutput, v))
}

// ScriptOutputGTE applies the GTE predicate on the "script_output" field.
func ScriptOutputGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldScriptOutput, v))
}

// ScriptOutputLT applies the LT predicate on the "script_output" field.
func ScriptOutputLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldScriptOutput, v))
}

// ScriptOutputLTE applies the LTE predicate on the "script_output" field.
func ScriptOutputLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldScriptOutput, v))
}

// ScriptOutputContains applies the Contains predicate on the "script_output" field.
func ScriptOutputContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldScriptOutput, v))
}

// ScriptOutputHasPrefix applies the HasPrefix predicate on the "script_output" field.
func ScriptOutputHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldScriptOutput, v))
}

// ScriptOutputHasSuffix applies the HasSuffix predicate on the "script_output" field.
func ScriptOutputHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldScriptOutput, v))
}

// ScriptOutputIsNil applies the IsNil predicate on the "script_output" field.
func ScriptOutputIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldScriptOutput))
}

// ScriptOutputNotNil applies the NotNil predicate on the "script_output" field.
func ScriptOutputNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldScriptOutput))
}

// ScriptOutputEqualFold applies the EqualFold predicate on the "script_output" field.
func ScriptOutputEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldScriptOutput, v))
}

// ScriptOutputContainsFold applies the ContainsFold predicate on the "script_output" field.
func ScriptOutputContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldScriptOutput, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldStatus, vs...))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldConversationID, v))
}

// ScheduleIDEQ applies the EQ predicate on the "schedule_id" field.
func ScheduleIDEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldScheduleID, v))
}

// ScheduleIDNEQ applies the NEQ predicate on the "schedule_id" field.
func ScheduleIDNEQ(v string) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldScheduleID, v))
}

// ScheduleIDIn applies the In predicate on the "schedule_id" field.
func ScheduleIDIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldScheduleID, vs...))
}

// ScheduleIDNotIn applies the NotIn predicate on the "schedule_id" field.
func ScheduleIDNotIn(vs ...string) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldScheduleID, vs...))
}

// ScheduleIDGT applies the GT predicate on the "schedule_id" field.
func ScheduleIDGT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldScheduleID, v))
}

// ScheduleIDGTE applies the GTE predicate on the "schedule_id" field.
func ScheduleIDGTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldScheduleID, v))
}

// ScheduleIDLT applies the LT predicate on the "schedule_id" field.
func ScheduleIDLT(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldScheduleID, v))
}

// ScheduleIDLTE applies the LTE predicate on the "schedule_id" field.
func ScheduleIDLTE(v string) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldScheduleID, v))
}

// ScheduleIDContains applies the Contains predicate on the "schedule_id" field.
func ScheduleIDContains(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContains(FieldScheduleID, v))
}

// ScheduleIDHasPrefix applies the HasPrefix predicate on the "schedule_id" field.
func ScheduleIDHasPrefix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasPrefix(FieldScheduleID, v))
}

// ScheduleIDHasSuffix applies the HasSuffix predicate on the "schedule_id" field.
func ScheduleIDHasSuffix(v string) predicate.Insight {
	return predicate.Insight(sql.FieldHasSuffix(FieldScheduleID, v))
}

// ScheduleIDIsNil applies the IsNil predicate on the "schedule_id" field.
func ScheduleIDIsNil() predicate.Insight {
	return predicate.Insight(sql.FieldIsNull(FieldScheduleID))
}

// ScheduleIDNotNil applies the NotNil predicate on the "schedule_id" field.
func ScheduleIDNotNil() predicate.Insight {
	return predicate.Insight(sql.FieldNotNull(FieldScheduleID))
}

// ScheduleIDEqualFold applies the EqualFold predicate on the "schedule_id" field.
func ScheduleIDEqualFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldEqualFold(FieldScheduleID, v))
}

// ScheduleIDContainsFold applies the ContainsFold predicate on the "schedule_id" field.
func ScheduleIDContainsFold(v string) predicate.Insight {
	return predicate.Insight(sql.FieldContainsFold(FieldScheduleID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Insight {
	return predicate.Insight(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Insight) predicate.Insight {
	return predicate.Insight(sql.NotPredicates(p))
}
