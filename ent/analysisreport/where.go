// Code generated by ent, DO NOT EDIT.

package analysisreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldTitle, v))
}

// AnalysisType applies equality check predicate on the "analysis_type" field. It's identical to AnalysisTypeEQ.
func AnalysisType(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldAnalysisType, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldCompletedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldContainsFold(FieldTitle, v))
}

// AnalysisTypeEQ applies the EQ predicate on the "analysis_type" field.
func AnalysisTypeEQ(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldAnalysisType, v))
}

// AnalysisTypeNEQ applies the NEQ predicate on the "analysis_type" field.
func AnalysisTypeNEQ(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldAnalysisType, v))
}

// AnalysisTypeIn applies the In predicate on the "analysis_type" field.
func AnalysisTypeIn(vs ...string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldAnalysisType, vs...))
}

// AnalysisTypeNotIn applies the NotIn predicate on the "analysis_type" field.
func AnalysisTypeNotIn(vs ...string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldAnalysisType, vs...))
}

// AnalysisTypeGT applies the GT predicate on the "analysis_type" field.
func AnalysisTypeGT(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGT(FieldAnalysisType, v))
}

// AnalysisTypeGTE applies the GTE predicate on the "analysis_type" field.
func AnalysisTypeGTE(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGTE(FieldAnalysisType, v))
}

// AnalysisTypeLT applies the LT predicate on the "analysis_type" field.
func AnalysisTypeLT(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLT(FieldAnalysisType, v))
}

// AnalysisTypeLTE applies the LTE predicate on the "analysis_type" field.
func AnalysisTypeLTE(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLTE(FieldAnalysisType, v))
}

// AnalysisTypeContains applies the Contains predicate on the "analysis_type" field.
func AnalysisTypeContains(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldContains(FieldAnalysisType, v))
}

// AnalysisTypeHasPrefix applies the HasPrefix predicate on the "analysis_type" field.
func AnalysisTypeHasPrefix(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldHasPrefix(FieldAnalysisType, v))
}

// AnalysisTypeHasSuffix applies the HasSuffix predicate on the "analysis_type" field.
func AnalysisTypeHasSuffix(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldHasSuffix(FieldAnalysisType, v))
}

// AnalysisTypeEqualFold applies the EqualFold predicate on the "analysis_type" field.
func AnalysisTypeEqualFold(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEqualFold(FieldAnalysisType, v))
}

// AnalysisTypeContainsFold applies the ContainsFold predicate on the "analysis_type" field.
func AnalysisTypeContainsFold(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldContainsFold(FieldAnalysisType, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v Depth) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v Depth) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...Depth) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...Depth) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldDepth, vs...))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v Strategy) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v Strategy) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...Strategy) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...Strategy) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldStrategy, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldStatus, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldContainsFold(FieldSummary, v))
}

// InsightIdsIsNil applies the IsNil predicate on the "insight_ids" field.
func InsightIdsIsNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIsNull(FieldInsightIds))
}

// InsightIdsNotNil applies the NotNil predicate on the "insight_ids" field.
func InsightIdsNotNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotNull(FieldInsightIds))
}

// ArtifactsIsNil applies the IsNil predicate on the "artifacts" field.
func ArtifactsIsNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIsNull(FieldArtifacts))
}

// ArtifactsNotNil applies the NotNil predicate on the "artifacts" field.
func ArtifactsNotNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotNull(FieldArtifacts))
}

// CommunicationLogIsNil applies the IsNil predicate on the "communication_log" field.
func CommunicationLogIsNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIsNull(FieldCommunicationLog))
}

// CommunicationLogNotNil applies the NotNil predicate on the "communication_log" field.
func CommunicationLogNotNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotNull(FieldCommunicationLog))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisReport) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisReport) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisReport) predicate.AnalysisReport {
	return predicate.AnalysisReport(sql.NotPredicates(p))
}
