// Code generated by ent, DO NOT EDIT.

package llmusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldConversationID, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldTraceID, v))
}

// SpanKind applies equality check predicate on the "span_kind" field. It's identical to SpanKindEQ.
func SpanKind(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldSpanKind, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldAgentName, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldModel, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldCompletionTokens, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldLatencyMs, v))
}

// IsError applies equality check predicate on the "is_error" field. It's identical to IsErrorEQ.
func IsError(v bool) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldIsError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContainsFold(FieldConversationID, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDIsNil applies the IsNil predicate on the "trace_id" field.
func TraceIDIsNil() predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIsNull(FieldTraceID))
}

// TraceIDNotNil applies the NotNil predicate on the "trace_id" field.
func TraceIDNotNil() predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotNull(FieldTraceID))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContainsFold(FieldTraceID, v))
}

// SpanKindEQ applies the EQ predicate on the "span_kind" field.
func SpanKindEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldSpanKind, v))
}

// SpanKindNEQ applies the NEQ predicate on the "span_kind" field.
func SpanKindNEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldSpanKind, v))
}

// SpanKindIn applies the In predicate on the "span_kind" field.
func SpanKindIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldSpanKind, vs...))
}

// SpanKindNotIn applies the NotIn predicate on the "span_kind" field.
func SpanKindNotIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldSpanKind, vs...))
}

// SpanKindGT applies the GT predicate on the "span_kind" field.
func SpanKindGT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldSpanKind, v))
}

// SpanKindGTE applies the GTE predicate on the "span_kind" field.
func SpanKindGTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldSpanKind, v))
}

// SpanKindLT applies the LT predicate on the "span_kind" field.
func SpanKindLT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldSpanKind, v))
}

// SpanKindLTE applies the LTE predicate on the "span_kind" field.
func SpanKindLTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldSpanKind, v))
}

// SpanKindContains applies the Contains predicate on the "span_kind" field.
func SpanKindContains(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContains(FieldSpanKind, v))
}

// SpanKindHasPrefix applies the HasPrefix predicate on the "span_kind" field.
func SpanKindHasPrefix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasPrefix(FieldSpanKind, v))
}

// SpanKindHasSuffix applies the HasSuffix predicate on the "span_kind" field.
func SpanKindHasSuffix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasSuffix(FieldSpanKind, v))
}

// SpanKindEqualFold applies the EqualFold predicate on the "span_kind" field.
func SpanKindEqualFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEqualFold(FieldSpanKind, v))
}

// SpanKindContainsFold applies the ContainsFold predicate on the "span_kind" field.
func SpanKindContainsFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContainsFold(FieldSpanKind, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameIsNil applies the IsNil predicate on the "agent_name" field.
func AgentNameIsNil() predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIsNull(FieldAgentName))
}

// AgentNameNotNil applies the NotNil predicate on the "agent_name" field.
func AgentNameNotNil() predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotNull(FieldAgentName))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContainsFold(FieldAgentName, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldContainsFold(FieldModel, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldCompletionTokens, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldLatencyMs, v))
}

// IsErrorEQ applies the EQ predicate on the "is_error" field.
func IsErrorEQ(v bool) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldIsError, v))
}

// IsErrorNEQ applies the NEQ predicate on the "is_error" field.
func IsErrorNEQ(v bool) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldIsError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMUsage {
	return predicate.LLMUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMUsage) predicate.LLMUsage {
	return predicate.LLMUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMUsage) predicate.LLMUsage {
	return predicate.LLMUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMUsage) predicate.LLMUsage {
	return predicate.LLMUsage(sql.NotPredicates(p))
}
