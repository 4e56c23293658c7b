// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aether-home/aether/ent/analysisreport"
	"github.com/aether-home/aether/ent/appsettings"
	"github.com/aether-home/aether/ent/conversation"
	"github.com/aether-home/aether/ent/haentity"
	"github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/ent/llmusage"
	"github.com/aether-home/aether/ent/message"
	"github.com/aether-home/aether/ent/predicate"
	"github.com/aether-home/aether/ent/proposal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisReport  = "AnalysisReport"
	TypeAppSettings     = "AppSettings"
	TypeConversation    = "Conversation"
	TypeHAEntity        = "HAEntity"
	TypeInsight         = "Insight"
	TypeInsightSchedule = "InsightSchedule"
	TypeLLMUsage        = "LLMUsage"
	TypeMessage         = "Message"
	TypeProposal        = "Proposal"
)

// AnalysisReportMutation represents an operation that mutates the AnalysisReport nodes in the graph.
type AnalysisReportMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	title                   *string
	analysis_type           *string
	depth                   *analysisreport.Depth
	strategy                *analysisreport.Strategy
	status                  *analysisreport.Status
	summary                 *string
	insight_ids             *[]string
	appendinsight_ids       []string
	artifacts               *[]string
	appendartifacts         []string
	communication_log       *[]map[string]interface{}
	appendcommunication_log []map[string]interface{}
	created_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*AnalysisReport, error)
	predicates              []predicate.AnalysisReport
}

var _ ent.Mutation = (*AnalysisReportMutation)(nil)

// analysisreportOption allows management of the mutation configuration using functional options.
type analysisreportOption func(*AnalysisReportMutation)

// newAnalysisReportMutation creates new mutation for the AnalysisReport entity.
func newAnalysisReportMutation(c config, op Op, opts ...analysisreportOption) *AnalysisReportMutation {
	m := &AnalysisReportMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisReportID sets the ID field of the mutation.
func withAnalysisReportID(id string) analysisreportOption {
	return func(m *AnalysisReportMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisReport
		)
		m.oldValue = func(ctx context.Context) (*AnalysisReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisReport sets the old AnalysisReport of the mutation.
func withAnalysisReport(node *AnalysisReport) analysisreportOption {
	return func(m *AnalysisReportMutation) {
		m.oldValue = func(context.Context) (*AnalysisReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisReport entities.
func (m *AnalysisReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *AnalysisReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AnalysisReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AnalysisReportMutation) ResetTitle() {
	m.title = nil
}

// SetAnalysisType sets the "analysis_type" field.
func (m *AnalysisReportMutation) SetAnalysisType(s string) {
	m.analysis_type = &s
}

// AnalysisType returns the value of the "analysis_type" field in the mutation.
func (m *AnalysisReportMutation) AnalysisType() (r string, exists bool) {
	v := m.analysis_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisType returns the old "analysis_type" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldAnalysisType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisType: %w", err)
	}
	return oldValue.AnalysisType, nil
}

// ResetAnalysisType resets all changes to the "analysis_type" field.
func (m *AnalysisReportMutation) ResetAnalysisType() {
	m.analysis_type = nil
}

// SetDepth sets the "depth" field.
func (m *AnalysisReportMutation) SetDepth(a analysisreport.Depth) {
	m.depth = &a
}

// Depth returns the value of the "depth" field in the mutation.
func (m *AnalysisReportMutation) Depth() (r analysisreport.Depth, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldDepth(ctx context.Context) (v analysisreport.Depth, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// ResetDepth resets all changes to the "depth" field.
func (m *AnalysisReportMutation) ResetDepth() {
	m.depth = nil
}

// SetStrategy sets the "strategy" field.
func (m *AnalysisReportMutation) SetStrategy(a analysisreport.Strategy) {
	m.strategy = &a
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *AnalysisReportMutation) Strategy() (r analysisreport.Strategy, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldStrategy(ctx context.Context) (v analysisreport.Strategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *AnalysisReportMutation) ResetStrategy() {
	m.strategy = nil
}

// SetStatus sets the "status" field.
func (m *AnalysisReportMutation) SetStatus(a analysisreport.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisReportMutation) Status() (r analysisreport.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldStatus(ctx context.Context) (v analysisreport.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisReportMutation) ResetStatus() {
	m.status = nil
}

// SetSummary sets the "summary" field.
func (m *AnalysisReportMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AnalysisReportMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *AnalysisReportMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[analysisreport.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *AnalysisReportMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[analysisreport.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *AnalysisReportMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, analysisreport.FieldSummary)
}

// SetInsightIds sets the "insight_ids" field.
func (m *AnalysisReportMutation) SetInsightIds(s []string) {
	m.insight_ids = &s
	m.appendinsight_ids = nil
}

// InsightIds returns the value of the "insight_ids" field in the mutation.
func (m *AnalysisReportMutation) InsightIds() (r []string, exists bool) {
	v := m.insight_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldInsightIds returns the old "insight_ids" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldInsightIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsightIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsightIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsightIds: %w", err)
	}
	return oldValue.InsightIds, nil
}

// AppendInsightIds adds s to the "insight_ids" field.
func (m *AnalysisReportMutation) AppendInsightIds(s []string) {
	m.appendinsight_ids = append(m.appendinsight_ids, s...)
}

// AppendedInsightIds returns the list of values that were appended to the "insight_ids" field in this mutation.
func (m *AnalysisReportMutation) AppendedInsightIds() ([]string, bool) {
	if len(m.appendinsight_ids) == 0 {
		return nil, false
	}
	return m.appendinsight_ids, true
}

// ClearInsightIds clears the value of the "insight_ids" field.
func (m *AnalysisReportMutation) ClearInsightIds() {
	m.insight_ids = nil
	m.appendinsight_ids = nil
	m.clearedFields[analysisreport.FieldInsightIds] = struct{}{}
}

// InsightIdsCleared returns if the "insight_ids" field was cleared in this mutation.
func (m *AnalysisReportMutation) InsightIdsCleared() bool {
	_, ok := m.clearedFields[analysisreport.FieldInsightIds]
	return ok
}

// ResetInsightIds resets all changes to the "insight_ids" field.
func (m *AnalysisReportMutation) ResetInsightIds() {
	m.insight_ids = nil
	m.appendinsight_ids = nil
	delete(m.clearedFields, analysisreport.FieldInsightIds)
}

// SetArtifacts sets the "artifacts" field.
func (m *AnalysisReportMutation) SetArtifacts(s []string) {
	m.artifacts = &s
	m.appendartifacts = nil
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *AnalysisReportMutation) Artifacts() (r []string, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldArtifacts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifacts: %w", err)
	}
	return oldValue.Artifacts, nil
}

// AppendArtifacts adds s to the "artifacts" field.
func (m *AnalysisReportMutation) AppendArtifacts(s []string) {
	m.appendartifacts = append(m.appendartifacts, s...)
}

// AppendedArtifacts returns the list of values that were appended to the "artifacts" field in this mutation.
func (m *AnalysisReportMutation) AppendedArtifacts() ([]string, bool) {
	if len(m.appendartifacts) == 0 {
		return nil, false
	}
	return m.appendartifacts, true
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *AnalysisReportMutation) ClearArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	m.clearedFields[analysisreport.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *AnalysisReportMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[analysisreport.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *AnalysisReportMutation) ResetArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	delete(m.clearedFields, analysisreport.FieldArtifacts)
}

// SetCommunicationLog sets the "communication_log" field.
func (m *AnalysisReportMutation) SetCommunicationLog(value []map[string]interface{}) {
	m.communication_log = &value
	m.appendcommunication_log = nil
}

// CommunicationLog returns the value of the "communication_log" field in the mutation.
func (m *AnalysisReportMutation) CommunicationLog() (r []map[string]interface{}, exists bool) {
	v := m.communication_log
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunicationLog returns the old "communication_log" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldCommunicationLog(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunicationLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunicationLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunicationLog: %w", err)
	}
	return oldValue.CommunicationLog, nil
}

// AppendCommunicationLog adds value to the "communication_log" field.
func (m *AnalysisReportMutation) AppendCommunicationLog(value []map[string]interface{}) {
	m.appendcommunication_log = append(m.appendcommunication_log, value...)
}

// AppendedCommunicationLog returns the list of values that were appended to the "communication_log" field in this mutation.
func (m *AnalysisReportMutation) AppendedCommunicationLog() ([]map[string]interface{}, bool) {
	if len(m.appendcommunication_log) == 0 {
		return nil, false
	}
	return m.appendcommunication_log, true
}

// ClearCommunicationLog clears the value of the "communication_log" field.
func (m *AnalysisReportMutation) ClearCommunicationLog() {
	m.communication_log = nil
	m.appendcommunication_log = nil
	m.clearedFields[analysisreport.FieldCommunicationLog] = struct{}{}
}

// CommunicationLogCleared returns if the "communication_log" field was cleared in this mutation.
func (m *AnalysisReportMutation) CommunicationLogCleared() bool {
	_, ok := m.clearedFields[analysisreport.FieldCommunicationLog]
	return ok
}

// ResetCommunicationLog resets all changes to the "communication_log" field.
func (m *AnalysisReportMutation) ResetCommunicationLog() {
	m.communication_log = nil
	m.appendcommunication_log = nil
	delete(m.clearedFields, analysisreport.FieldCommunicationLog)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AnalysisReportMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AnalysisReportMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AnalysisReport entity.
// If the AnalysisReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisReportMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AnalysisReportMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[analysisreport.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AnalysisReportMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[analysisreport.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AnalysisReportMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, analysisreport.FieldCompletedAt)
}

// Where appends a list predicates to the AnalysisReportMutation builder.
func (m *AnalysisReportMutation) Where(ps ...predicate.AnalysisReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisReport).
func (m *AnalysisReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisReportMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.title != nil {
		fields = append(fields, analysisreport.FieldTitle)
	}
	if m.analysis_type != nil {
		fields = append(fields, analysisreport.FieldAnalysisType)
	}
	if m.depth != nil {
		fields = append(fields, analysisreport.FieldDepth)
	}
	if m.strategy != nil {
		fields = append(fields, analysisreport.FieldStrategy)
	}
	if m.status != nil {
		fields = append(fields, analysisreport.FieldStatus)
	}
	if m.summary != nil {
		fields = append(fields, analysisreport.FieldSummary)
	}
	if m.insight_ids != nil {
		fields = append(fields, analysisreport.FieldInsightIds)
	}
	if m.artifacts != nil {
		fields = append(fields, analysisreport.FieldArtifacts)
	}
	if m.communication_log != nil {
		fields = append(fields, analysisreport.FieldCommunicationLog)
	}
	if m.created_at != nil {
		fields = append(fields, analysisreport.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, analysisreport.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisreport.FieldTitle:
		return m.Title()
	case analysisreport.FieldAnalysisType:
		return m.AnalysisType()
	case analysisreport.FieldDepth:
		return m.Depth()
	case analysisreport.FieldStrategy:
		return m.Strategy()
	case analysisreport.FieldStatus:
		return m.Status()
	case analysisreport.FieldSummary:
		return m.Summary()
	case analysisreport.FieldInsightIds:
		return m.InsightIds()
	case analysisreport.FieldArtifacts:
		return m.Artifacts()
	case analysisreport.FieldCommunicationLog:
		return m.CommunicationLog()
	case analysisreport.FieldCreatedAt:
		return m.CreatedAt()
	case analysisreport.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisreport.FieldTitle:
		return m.OldTitle(ctx)
	case analysisreport.FieldAnalysisType:
		return m.OldAnalysisType(ctx)
	case analysisreport.FieldDepth:
		return m.OldDepth(ctx)
	case analysisreport.FieldStrategy:
		return m.OldStrategy(ctx)
	case analysisreport.FieldStatus:
		return m.OldStatus(ctx)
	case analysisreport.FieldSummary:
		return m.OldSummary(ctx)
	case analysisreport.FieldInsightIds:
		return m.OldInsightIds(ctx)
	case analysisreport.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case analysisreport.FieldCommunicationLog:
		return m.OldCommunicationLog(ctx)
	case analysisreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisreport.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisreport.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case analysisreport.FieldAnalysisType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisType(v)
		return nil
	case analysisreport.FieldDepth:
		v, ok := value.(analysisreport.Depth)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case analysisreport.FieldStrategy:
		v, ok := value.(analysisreport.Strategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case analysisreport.FieldStatus:
		v, ok := value.(analysisreport.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisreport.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case analysisreport.FieldInsightIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsightIds(v)
		return nil
	case analysisreport.FieldArtifacts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case analysisreport.FieldCommunicationLog:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunicationLog(v)
		return nil
	case analysisreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisreport.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisreport.FieldSummary) {
		fields = append(fields, analysisreport.FieldSummary)
	}
	if m.FieldCleared(analysisreport.FieldInsightIds) {
		fields = append(fields, analysisreport.FieldInsightIds)
	}
	if m.FieldCleared(analysisreport.FieldArtifacts) {
		fields = append(fields, analysisreport.FieldArtifacts)
	}
	if m.FieldCleared(analysisreport.FieldCommunicationLog) {
		fields = append(fields, analysisreport.FieldCommunicationLog)
	}
	if m.FieldCleared(analysisreport.FieldCompletedAt) {
		fields = append(fields, analysisreport.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisReportMutation) ClearField(name string) error {
	switch name {
	case analysisreport.FieldSummary:
		m.ClearSummary()
		return nil
	case analysisreport.FieldInsightIds:
		m.ClearInsightIds()
		return nil
	case analysisreport.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	case analysisreport.FieldCommunicationLog:
		m.ClearCommunicationLog()
		return nil
	case analysisreport.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisReportMutation) ResetField(name string) error {
	switch name {
	case analysisreport.FieldTitle:
		m.ResetTitle()
		return nil
	case analysisreport.FieldAnalysisType:
		m.ResetAnalysisType()
		return nil
	case analysisreport.FieldDepth:
		m.ResetDepth()
		return nil
	case analysisreport.FieldStrategy:
		m.ResetStrategy()
		return nil
	case analysisreport.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisreport.FieldSummary:
		m.ResetSummary()
		return nil
	case analysisreport.FieldInsightIds:
		m.ResetInsightIds()
		return nil
	case analysisreport.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case analysisreport.FieldCommunicationLog:
		m.ResetCommunicationLog()
		return nil
	case analysisreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisreport.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisReportMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisReportMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisReportMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisReportMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisReport edge %s", name)
}

// AppSettingsMutation represents an operation that mutates the AppSettings nodes in the graph.
type AppSettingsMutation struct {
	config
	op            Op
	typ           string
	id            *string
	chat          *map[string]interface{}
	dashboard     *map[string]interface{}
	data_science  *map[string]interface{}
	notifications *map[string]interface{}
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AppSettings, error)
	predicates    []predicate.AppSettings
}

var _ ent.Mutation = (*AppSettingsMutation)(nil)

// appsettingsOption allows management of the mutation configuration using functional options.
type appsettingsOption func(*AppSettingsMutation)

// newAppSettingsMutation creates new mutation for the AppSettings entity.
func newAppSettingsMutation(c config, op Op, opts ...appsettingsOption) *AppSettingsMutation {
	m := &AppSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeAppSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppSettingsID sets the ID field of the mutation.
func withAppSettingsID(id string) appsettingsOption {
	return func(m *AppSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *AppSettings
		)
		m.oldValue = func(ctx context.Context) (*AppSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AppSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppSettings sets the old AppSettings of the mutation.
func withAppSettings(node *AppSettings) appsettingsOption {
	return func(m *AppSettingsMutation) {
		m.oldValue = func(context.Context) (*AppSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AppSettings entities.
func (m *AppSettingsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppSettingsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppSettingsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AppSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChat sets the "chat" field.
func (m *AppSettingsMutation) SetChat(value map[string]interface{}) {
	m.chat = &value
}

// Chat returns the value of the "chat" field in the mutation.
func (m *AppSettingsMutation) Chat() (r map[string]interface{}, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChat returns the old "chat" field's value of the AppSettings entity.
// If the AppSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingsMutation) OldChat(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChat: %w", err)
	}
	return oldValue.Chat, nil
}

// ClearChat clears the value of the "chat" field.
func (m *AppSettingsMutation) ClearChat() {
	m.chat = nil
	m.clearedFields[appsettings.FieldChat] = struct{}{}
}

// ChatCleared returns if the "chat" field was cleared in this mutation.
func (m *AppSettingsMutation) ChatCleared() bool {
	_, ok := m.clearedFields[appsettings.FieldChat]
	return ok
}

// ResetChat resets all changes to the "chat" field.
func (m *AppSettingsMutation) ResetChat() {
	m.chat = nil
	delete(m.clearedFields, appsettings.FieldChat)
}

// SetDashboard sets the "dashboard" field.
func (m *AppSettingsMutation) SetDashboard(value map[string]interface{}) {
	m.dashboard = &value
}

// Dashboard returns the value of the "dashboard" field in the mutation.
func (m *AppSettingsMutation) Dashboard() (r map[string]interface{}, exists bool) {
	v := m.dashboard
	if v == nil {
		return
	}
	return *v, true
}

// OldDashboard returns the old "dashboard" field's value of the AppSettings entity.
// If the AppSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingsMutation) OldDashboard(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDashboard is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDashboard requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDashboard: %w", err)
	}
	return oldValue.Dashboard, nil
}

// ClearDashboard clears the value of the "dashboard" field.
func (m *AppSettingsMutation) ClearDashboard() {
	m.dashboard = nil
	m.clearedFields[appsettings.FieldDashboard] = struct{}{}
}

// DashboardCleared returns if the "dashboard" field was cleared in this mutation.
func (m *AppSettingsMutation) DashboardCleared() bool {
	_, ok := m.clearedFields[appsettings.FieldDashboard]
	return ok
}

// ResetDashboard resets all changes to the "dashboard" field.
func (m *AppSettingsMutation) ResetDashboard() {
	m.dashboard = nil
	delete(m.clearedFields, appsettings.FieldDashboard)
}

// SetDataScience sets the "data_science" field.
func (m *AppSettingsMutation) SetDataScience(value map[string]interface{}) {
	m.data_science = &value
}

// DataScience returns the value of the "data_science" field in the mutation.
func (m *AppSettingsMutation) DataScience() (r map[string]interface{}, exists bool) {
	v := m.data_science
	if v == nil {
		return
	}
	return *v, true
}

// OldDataScience returns the old "data_science" field's value of the AppSettings entity.
// If the AppSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingsMutation) OldDataScience(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataScience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataScience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataScience: %w", err)
	}
	return oldValue.DataScience, nil
}

// ClearDataScience clears the value of the "data_science" field.
func (m *AppSettingsMutation) ClearDataScience() {
	m.data_science = nil
	m.clearedFields[appsettings.FieldDataScience] = struct{}{}
}

// DataScienceCleared returns if the "data_science" field was cleared in this mutation.
func (m *AppSettingsMutation) DataScienceCleared() bool {
	_, ok := m.clearedFields[appsettings.FieldDataScience]
	return ok
}

// ResetDataScience resets all changes to the "data_science" field.
func (m *AppSettingsMutation) ResetDataScience() {
	m.data_science = nil
	delete(m.clearedFields, appsettings.FieldDataScience)
}

// SetNotifications sets the "notifications" field.
func (m *AppSettingsMutation) SetNotifications(value map[string]interface{}) {
	m.notifications = &value
}

// Notifications returns the value of the "notifications" field in the mutation.
func (m *AppSettingsMutation) Notifications() (r map[string]interface{}, exists bool) {
	v := m.notifications
	if v == nil {
		return
	}
	return *v, true
}

// OldNotifications returns the old "notifications" field's value of the AppSettings entity.
// If the AppSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingsMutation) OldNotifications(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotifications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotifications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotifications: %w", err)
	}
	return oldValue.Notifications, nil
}

// ClearNotifications clears the value of the "notifications" field.
func (m *AppSettingsMutation) ClearNotifications() {
	m.notifications = nil
	m.clearedFields[appsettings.FieldNotifications] = struct{}{}
}

// NotificationsCleared returns if the "notifications" field was cleared in this mutation.
func (m *AppSettingsMutation) NotificationsCleared() bool {
	_, ok := m.clearedFields[appsettings.FieldNotifications]
	return ok
}

// ResetNotifications resets all changes to the "notifications" field.
func (m *AppSettingsMutation) ResetNotifications() {
	m.notifications = nil
	delete(m.clearedFields, appsettings.FieldNotifications)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppSettingsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppSettingsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AppSettings entity.
// If the AppSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppSettingsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AppSettingsMutation builder.
func (m *AppSettingsMutation) Where(ps ...predicate.AppSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AppSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AppSettings).
func (m *AppSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppSettingsMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.chat != nil {
		fields = append(fields, appsettings.FieldChat)
	}
	if m.dashboard != nil {
		fields = append(fields, appsettings.FieldDashboard)
	}
	if m.data_science != nil {
		fields = append(fields, appsettings.FieldDataScience)
	}
	if m.notifications != nil {
		fields = append(fields, appsettings.FieldNotifications)
	}
	if m.updated_at != nil {
		fields = append(fields, appsettings.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appsettings.FieldChat:
		return m.Chat()
	case appsettings.FieldDashboard:
		return m.Dashboard()
	case appsettings.FieldDataScience:
		return m.DataScience()
	case appsettings.FieldNotifications:
		return m.Notifications()
	case appsettings.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appsettings.FieldChat:
		return m.OldChat(ctx)
	case appsettings.FieldDashboard:
		return m.OldDashboard(ctx)
	case appsettings.FieldDataScience:
		return m.OldDataScience(ctx)
	case appsettings.FieldNotifications:
		return m.OldNotifications(ctx)
	case appsettings.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AppSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appsettings.FieldChat:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChat(v)
		return nil
	case appsettings.FieldDashboard:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDashboard(v)
		return nil
	case appsettings.FieldDataScience:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataScience(v)
		return nil
	case appsettings.FieldNotifications:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotifications(v)
		return nil
	case appsettings.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AppSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppSettingsMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppSettingsMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AppSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppSettingsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appsettings.FieldChat) {
		fields = append(fields, appsettings.FieldChat)
	}
	if m.FieldCleared(appsettings.FieldDashboard) {
		fields = append(fields, appsettings.FieldDashboard)
	}
	if m.FieldCleared(appsettings.FieldDataScience) {
		fields = append(fields, appsettings.FieldDataScience)
	}
	if m.FieldCleared(appsettings.FieldNotifications) {
		fields = append(fields, appsettings.FieldNotifications)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppSettingsMutation) ClearField(name string) error {
	switch name {
	case appsettings.FieldChat:
		m.ClearChat()
		return nil
	case appsettings.FieldDashboard:
		m.ClearDashboard()
		return nil
	case appsettings.FieldDataScience:
		m.ClearDataScience()
		return nil
	case appsettings.FieldNotifications:
		m.ClearNotifications()
		return nil
	}
	return fmt.Errorf("unknown AppSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppSettingsMutation) ResetField(name string) error {
	switch name {
	case appsettings.FieldChat:
		m.ResetChat()
		return nil
	case appsettings.FieldDashboard:
		m.ResetDashboard()
		return nil
	case appsettings.FieldDataScience:
		m.ResetDataScience()
		return nil
	case appsettings.FieldNotifications:
		m.ResetNotifications()
		return nil
	case appsettings.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AppSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppSettingsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppSettingsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppSettingsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AppSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppSettingsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AppSettings edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	status          *conversation.Status
	title           *string
	context         *map[string]interface{}
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	messages        map[string]struct{}
	removedmessages map[string]struct{}
	clearedmessages bool
	done            bool
	oldValue        func(context.Context) (*Conversation, error)
	predicates      []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ConversationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConversationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ConversationMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[conversation.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ConversationMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConversationMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, conversation.FieldUserID)
}

// SetStatus sets the "status" field.
func (m *ConversationMutation) SetStatus(c conversation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationMutation) Status() (r conversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStatus(ctx context.Context) (v conversation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *ConversationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ConversationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ConversationMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[conversation.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ConversationMutation) TitleCleared() bool {
	_, ok := m.clearedFields[conversation.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ConversationMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, conversation.FieldTitle)
}

// SetContext sets the "context" field.
func (m *ConversationMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *ConversationMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ConversationMutation) ClearContext() {
	m.context = nil
	m.clearedFields[conversation.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ConversationMutation) ContextCleared() bool {
	_, ok := m.clearedFields[conversation.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ConversationMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, conversation.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, conversation.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, conversation.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.context != nil {
		fields = append(fields, conversation.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldUserID:
		return m.UserID()
	case conversation.FieldStatus:
		return m.Status()
	case conversation.FieldTitle:
		return m.Title()
	case conversation.FieldContext:
		return m.Context()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldUserID:
		return m.OldUserID(ctx)
	case conversation.FieldStatus:
		return m.OldStatus(ctx)
	case conversation.FieldTitle:
		return m.OldTitle(ctx)
	case conversation.FieldContext:
		return m.OldContext(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conversation.FieldStatus:
		v, ok := value.(conversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case conversation.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldUserID) {
		fields = append(fields, conversation.FieldUserID)
	}
	if m.FieldCleared(conversation.FieldTitle) {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.FieldCleared(conversation.FieldContext) {
		fields = append(fields, conversation.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldUserID:
		m.ClearUserID()
		return nil
	case conversation.FieldTitle:
		m.ClearTitle()
		return nil
	case conversation.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldUserID:
		m.ResetUserID()
		return nil
	case conversation.FieldStatus:
		m.ResetStatus()
		return nil
	case conversation.FieldTitle:
		m.ResetTitle()
		return nil
	case conversation.FieldContext:
		m.ResetContext()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// HAEntityMutation represents an operation that mutates the HAEntity nodes in the graph.
type HAEntityMutation struct {
	config
	op            Op
	typ           string
	id            *string
	domain        *string
	state         *string
	attributes    *map[string]interface{}
	friendly_name *string
	last_changed  *time.Time
	last_synced   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*HAEntity, error)
	predicates    []predicate.HAEntity
}

var _ ent.Mutation = (*HAEntityMutation)(nil)

// haentityOption allows management of the mutation configuration using functional options.
type haentityOption func(*HAEntityMutation)

// newHAEntityMutation creates new mutation for the HAEntity entity.
func newHAEntityMutation(c config, op Op, opts ...haentityOption) *HAEntityMutation {
	m := &HAEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeHAEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHAEntityID sets the ID field of the mutation.
func withHAEntityID(id string) haentityOption {
	return func(m *HAEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *HAEntity
		)
		m.oldValue = func(ctx context.Context) (*HAEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HAEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHAEntity sets the old HAEntity of the mutation.
func withHAEntity(node *HAEntity) haentityOption {
	return func(m *HAEntityMutation) {
		m.oldValue = func(context.Context) (*HAEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HAEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HAEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HAEntity entities.
func (m *HAEntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HAEntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HAEntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HAEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomain sets the "domain" field.
func (m *HAEntityMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *HAEntityMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the HAEntity entity.
// If the HAEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HAEntityMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *HAEntityMutation) ResetDomain() {
	m.domain = nil
}

// SetState sets the "state" field.
func (m *HAEntityMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *HAEntityMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the HAEntity entity.
// If the HAEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HAEntityMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *HAEntityMutation) ResetState() {
	m.state = nil
}

// SetAttributes sets the "attributes" field.
func (m *HAEntityMutation) SetAttributes(value map[string]interface{}) {
	m.attributes = &value
}

// Attributes returns the value of the "attributes" field in the mutation.
func (m *HAEntityMutation) Attributes() (r map[string]interface{}, exists bool) {
	v := m.attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributes returns the old "attributes" field's value of the HAEntity entity.
// If the HAEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HAEntityMutation) OldAttributes(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributes: %w", err)
	}
	return oldValue.Attributes, nil
}

// ClearAttributes clears the value of the "attributes" field.
func (m *HAEntityMutation) ClearAttributes() {
	m.attributes = nil
	m.clearedFields[haentity.FieldAttributes] = struct{}{}
}

// AttributesCleared returns if the "attributes" field was cleared in this mutation.
func (m *HAEntityMutation) AttributesCleared() bool {
	_, ok := m.clearedFields[haentity.FieldAttributes]
	return ok
}

// ResetAttributes resets all changes to the "attributes" field.
func (m *HAEntityMutation) ResetAttributes() {
	m.attributes = nil
	delete(m.clearedFields, haentity.FieldAttributes)
}

// SetFriendlyName sets the "friendly_name" field.
func (m *HAEntityMutation) SetFriendlyName(s string) {
	m.friendly_name = &s
}

// FriendlyName returns the value of the "friendly_name" field in the mutation.
func (m *HAEntityMutation) FriendlyName() (r string, exists bool) {
	v := m.friendly_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFriendlyName returns the old "friendly_name" field's value of the HAEntity entity.
// If the HAEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HAEntityMutation) OldFriendlyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFriendlyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFriendlyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFriendlyName: %w", err)
	}
	return oldValue.FriendlyName, nil
}

// ClearFriendlyName clears the value of the "friendly_name" field.
func (m *HAEntityMutation) ClearFriendlyName() {
	m.friendly_name = nil
	m.clearedFields[haentity.FieldFriendlyName] = struct{}{}
}

// FriendlyNameCleared returns if the "friendly_name" field was cleared in this mutation.
func (m *HAEntityMutation) FriendlyNameCleared() bool {
	_, ok := m.clearedFields[haentity.FieldFriendlyName]
	return ok
}

// ResetFriendlyName resets all changes to the "friendly_name" field.
func (m *HAEntityMutation) ResetFriendlyName() {
	m.friendly_name = nil
	delete(m.clearedFields, haentity.FieldFriendlyName)
}

// SetLastChanged sets the "last_changed" field.
func (m *HAEntityMutation) SetLastChanged(t time.Time) {
	m.last_changed = &t
}

// LastChanged returns the value of the "last_changed" field in the mutation.
func (m *HAEntityMutation) LastChanged() (r time.Time, exists bool) {
	v := m.last_changed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastChanged returns the old "last_changed" field's value of the HAEntity entity.
// If the HAEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HAEntityMutation) OldLastChanged(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastChanged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastChanged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastChanged: %w", err)
	}
	return oldValue.LastChanged, nil
}

// ClearLastChanged clears the value of the "last_changed" field.
func (m *HAEntityMutation) ClearLastChanged() {
	m.last_changed = nil
	m.clearedFields[haentity.FieldLastChanged] = struct{}{}
}

// LastChangedCleared returns if the "last_changed" field was cleared in this mutation.
func (m *HAEntityMutation) LastChangedCleared() bool {
	_, ok := m.clearedFields[haentity.FieldLastChanged]
	return ok
}

// ResetLastChanged resets all changes to the "last_changed" field.
func (m *HAEntityMutation) ResetLastChanged() {
	m.last_changed = nil
	delete(m.clearedFields, haentity.FieldLastChanged)
}

// SetLastSynced sets the "last_synced" field.
func (m *HAEntityMutation) SetLastSynced(t time.Time) {
	m.last_synced = &t
}

// LastSynced returns the value of the "last_synced" field in the mutation.
func (m *HAEntityMutation) LastSynced() (r time.Time, exists bool) {
	v := m.last_synced
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSynced returns the old "last_synced" field's value of the HAEntity entity.
// If the HAEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HAEntityMutation) OldLastSynced(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSynced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSynced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSynced: %w", err)
	}
	return oldValue.LastSynced, nil
}

// ResetLastSynced resets all changes to the "last_synced" field.
func (m *HAEntityMutation) ResetLastSynced() {
	m.last_synced = nil
}

// Where appends a list predicates to the HAEntityMutation builder.
func (m *HAEntityMutation) Where(ps ...predicate.HAEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HAEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HAEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HAEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HAEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HAEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HAEntity).
func (m *HAEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HAEntityMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.domain != nil {
		fields = append(fields, haentity.FieldDomain)
	}
	if m.state != nil {
		fields = append(fields, haentity.FieldState)
	}
	if m.attributes != nil {
		fields = append(fields, haentity.FieldAttributes)
	}
	if m.friendly_name != nil {
		fields = append(fields, haentity.FieldFriendlyName)
	}
	if m.last_changed != nil {
		fields = append(fields, haentity.FieldLastChanged)
	}
	if m.last_synced != nil {
		fields = append(fields, haentity.FieldLastSynced)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HAEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case haentity.FieldDomain:
		return m.Domain()
	case haentity.FieldState:
		return m.State()
	case haentity.FieldAttributes:
		return m.Attributes()
	case haentity.FieldFriendlyName:
		return m.FriendlyName()
	case haentity.FieldLastChanged:
		return m.LastChanged()
	case haentity.FieldLastSynced:
		return m.LastSynced()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HAEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case haentity.FieldDomain:
		return m.OldDomain(ctx)
	case haentity.FieldState:
		return m.OldState(ctx)
	case haentity.FieldAttributes:
		return m.OldAttributes(ctx)
	case haentity.FieldFriendlyName:
		return m.OldFriendlyName(ctx)
	case haentity.FieldLastChanged:
		return m.OldLastChanged(ctx)
	case haentity.FieldLastSynced:
		return m.OldLastSynced(ctx)
	}
	return nil, fmt.Errorf("unknown HAEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HAEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case haentity.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case haentity.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case haentity.FieldAttributes:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributes(v)
		return nil
	case haentity.FieldFriendlyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFriendlyName(v)
		return nil
	case haentity.FieldLastChanged:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastChanged(v)
		return nil
	case haentity.FieldLastSynced:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSynced(v)
		return nil
	}
	return fmt.Errorf("unknown HAEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HAEntityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HAEntityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HAEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HAEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HAEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(haentity.FieldAttributes) {
		fields = append(fields, haentity.FieldAttributes)
	}
	if m.FieldCleared(haentity.FieldFriendlyName) {
		fields = append(fields, haentity.FieldFriendlyName)
	}
	if m.FieldCleared(haentity.FieldLastChanged) {
		fields = append(fields, haentity.FieldLastChanged)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HAEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HAEntityMutation) ClearField(name string) error {
	switch name {
	case haentity.FieldAttributes:
		m.ClearAttributes()
		return nil
	case haentity.FieldFriendlyName:
		m.ClearFriendlyName()
		return nil
	case haentity.FieldLastChanged:
		m.ClearLastChanged()
		return nil
	}
	return fmt.Errorf("unknown HAEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HAEntityMutation) ResetField(name string) error {
	switch name {
	case haentity.FieldDomain:
		m.ResetDomain()
		return nil
	case haentity.FieldState:
		m.ResetState()
		return nil
	case haentity.FieldAttributes:
		m.ResetAttributes()
		return nil
	case haentity.FieldFriendlyName:
		m.ResetFriendlyName()
		return nil
	case haentity.FieldLastChanged:
		m.ResetLastChanged()
		return nil
	case haentity.FieldLastSynced:
		m.ResetLastSynced()
		return nil
	}
	return fmt.Errorf("unknown HAEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HAEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HAEntityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HAEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HAEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HAEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HAEntityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HAEntityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HAEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HAEntityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HAEntity edge %s", name)
}

// InsightMutation represents an operation that mutates the Insight nodes in the graph.
type InsightMutation struct {
	config
	op               Op
	typ              string
	id               *string
	category         *string
	title            *string
	description      *string
	evidence         *map[string]interface{}
	confidence       *float64
	addconfidence    *float64
	impact           *insight.Impact
	entity_ids       *[]string
	appendentity_ids []string
	script_path      *string
	script_output    *string
	status           *insight.Status
	conversation_id  *string
	schedule_id      *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Insight, error)
	predicates       []predicate.Insight
}

var _ ent.Mutation = (*InsightMutation)(nil)

// insightOption allows management of the mutation configuration using functional options.
type insightOption func(*InsightMutation)

// newInsightMutation creates new mutation for the Insight entity.
func newInsightMutation(c config, op Op, opts ...insightOption) *InsightMutation {
	m := &InsightMutation{
		config:        c,
		op:            op,
		typ:           TypeInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightID sets the ID field of the mutation.
func withInsightID(id string) insightOption {
	return func(m *InsightMutation) {
		var (
			err   error
			once  sync.Once
			value *Insight
		)
		m.oldValue = func(ctx context.Context) (*Insight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Insight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsight sets the old Insight of the mutation.
func withInsight(node *Insight) insightOption {
	return func(m *InsightMutation) {
		m.oldValue = func(context.Context) (*Insight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Insight entities.
func (m *InsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Insight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategory sets the "category" field.
func (m *InsightMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InsightMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *InsightMutation) ResetCategory() {
	m.category = nil
}

// SetTitle sets the "title" field.
func (m *InsightMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *InsightMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *InsightMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *InsightMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InsightMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *InsightMutation) ResetDescription() {
	m.description = nil
}

// SetEvidence sets the "evidence" field.
func (m *InsightMutation) SetEvidence(value map[string]interface{}) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *InsightMutation) Evidence() (r map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *InsightMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[insight.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *InsightMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[insight.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *InsightMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, insight.FieldEvidence)
}

// SetConfidence sets the "confidence" field.
func (m *InsightMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *InsightMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *InsightMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *InsightMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *InsightMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetImpact sets the "impact" field.
func (m *InsightMutation) SetImpact(i insight.Impact) {
	m.impact = &i
}

// Impact returns the value of the "impact" field in the mutation.
func (m *InsightMutation) Impact() (r insight.Impact, exists bool) {
	v := m.impact
	if v == nil {
		return
	}
	return *v, true
}

// OldImpact returns the old "impact" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldImpact(ctx context.Context) (v insight.Impact, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpact: %w", err)
	}
	return oldValue.Impact, nil
}

// ResetImpact resets all changes to the "impact" field.
func (m *InsightMutation) ResetImpact() {
	m.impact = nil
}

// SetEntityIds sets the "entity_ids" field.
func (m *InsightMutation) SetEntityIds(s []string) {
	m.entity_ids = &s
	m.appendentity_ids = nil
}

// EntityIds returns the value of the "entity_ids" field in the mutation.
func (m *InsightMutation) EntityIds() (r []string, exists bool) {
	v := m.entity_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityIds returns the old "entity_ids" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldEntityIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityIds: %w", err)
	}
	return oldValue.EntityIds, nil
}

// AppendEntityIds adds s to the "entity_ids" field.
func (m *InsightMutation) AppendEntityIds(s []string) {
	m.appendentity_ids = append(m.appendentity_ids, s...)
}

// AppendedEntityIds returns the list of values that were appended to the "entity_ids" field in this mutation.
func (m *InsightMutation) AppendedEntityIds() ([]string, bool) {
	if len(m.appendentity_ids) == 0 {
		return nil, false
	}
	return m.appendentity_ids, true
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (m *InsightMutation) ClearEntityIds() {
	m.entity_ids = nil
	m.appendentity_ids = nil
	m.clearedFields[insight.FieldEntityIds] = struct{}{}
}

// EntityIdsCleared returns if the "entity_ids" field was cleared in this mutation.
func (m *InsightMutation) EntityIdsCleared() bool {
	_, ok := m.clearedFields[insight.FieldEntityIds]
	return ok
}

// ResetEntityIds resets all changes to the "entity_ids" field.
func (m *InsightMutation) ResetEntityIds() {
	m.entity_ids = nil
	m.appendentity_ids = nil
	delete(m.clearedFields, insight.FieldEntityIds)
}

// SetScriptPath sets the "script_path" field.
func (m *InsightMutation) SetScriptPath(s string) {
	m.script_path = &s
}

// ScriptPath returns the value of the "script_path" field in the mutation.
func (m *InsightMutation) ScriptPath() (r string, exists bool) {
	v := m.script_path
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptPath returns the old "script_path" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldScriptPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptPath: %w", err)
	}
	return oldValue.ScriptPath, nil
}

// ClearScriptPath clears the value of the "script_path" field.
func (m *InsightMutation) ClearScriptPath() {
	m.script_path = nil
	m.clearedFields[insight.FieldScriptPath] = struct{}{}
}

// ScriptPathCleared returns if the "script_path" field was cleared in this mutation.
func (m *InsightMutation) ScriptPathCleared() bool {
	_, ok := m.clearedFields[insight.FieldScriptPath]
	return ok
}

// ResetScriptPath resets all changes to the "script_path" field.
func (m *InsightMutation) ResetScriptPath() {
	m.script_path = nil
	delete(m.clearedFields, insight.FieldScriptPath)
}

// SetScriptOutput sets the "script_output" field.
func (m *InsightMutation) SetScriptOutput(s string) {
	m.script_output = &s
}

// ScriptOutput returns the value of the "script_output" field in the mutation.
func (m *InsightMutation) ScriptOutput() (r string, exists bool) {
	v := m.script_output
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptOutput returns the old "script_output" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldScriptOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptOutput: %w", err)
	}
	return oldValue.ScriptOutput, nil
}

// ClearScriptOutput clears the value of the "script_output" field.
func (m *InsightMutation) ClearScriptOutput() {
	m.script_output = nil
	m.clearedFields[insight.FieldScriptOutput] = struct{}{}
}

// ScriptOutputCleared returns if the "script_output" field was cleared in this mutation.
func (m *InsightMutation) ScriptOutputCleared() bool {
	_, ok := m.clearedFields[insight.FieldScriptOutput]
	return ok
}

// ResetScriptOutput resets all changes to the "script_output" field.
func (m *InsightMutation) ResetScriptOutput() {
	m.script_output = nil
	delete(m.clearedFields, insight.FieldScriptOutput)
}

// SetStatus sets the "status" field.
func (m *InsightMutation) SetStatus(i insight.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InsightMutation) Status() (r insight.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldStatus(ctx context.Context) (v insight.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InsightMutation) ResetStatus() {
	m.status = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *InsightMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *InsightMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *InsightMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[insight.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *InsightMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[insight.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *InsightMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, insight.FieldConversationID)
}

// SetScheduleID sets the "schedule_id" field.
func (m *InsightMutation) SetScheduleID(s string) {
	m.schedule_id = &s
}

// ScheduleID returns the value of the "schedule_id" field in the mutation.
func (m *InsightMutation) ScheduleID() (r string, exists bool) {
	v := m.schedule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleID returns the old "schedule_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldScheduleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleID: %w", err)
	}
	return oldValue.ScheduleID, nil
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (m *InsightMutation) ClearScheduleID() {
	m.schedule_id = nil
	m.clearedFields[insight.FieldScheduleID] = struct{}{}
}

// ScheduleIDCleared returns if the "schedule_id" field was cleared in this mutation.
func (m *InsightMutation) ScheduleIDCleared() bool {
	_, ok := m.clearedFields[insight.FieldScheduleID]
	return ok
}

// ResetScheduleID resets all changes to the "schedule_id" field.
func (m *InsightMutation) ResetScheduleID() {
	m.schedule_id = nil
	delete(m.clearedFields, insight.FieldScheduleID)
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InsightMutation builder.
func (m *InsightMutation) Where(ps ...predicate.Insight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Insight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Insight).
func (m *InsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.category != nil {
		fields = append(fields, insight.FieldCategory)
	}
	if m.title != nil {
		fields = append(fields, insight.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, insight.FieldDescription)
	}
	if m.evidence != nil {
		fields = append(fields, insight.FieldEvidence)
	}
	if m.confidence != nil {
		fields = append(fields, insight.FieldConfidence)
	}
	if m.impact != nil {
		fields = append(fields, insight.FieldImpact)
	}
	if m.entity_ids != nil {
		fields = append(fields, insight.FieldEntityIds)
	}
	if m.script_path != nil {
		fields = append(fields, insight.FieldScriptPath)
	}
	if m.script_output != nil {
		fields = append(fields, insight.FieldScriptOutput)
	}
	if m.status != nil {
		fields = append(fields, insight.FieldStatus)
	}
	if m.conversation_id != nil {
		fields = append(fields, insight.FieldConversationID)
	}
	if m.schedule_id != nil {
		fields = append(fields, insight.FieldScheduleID)
	}
	if m.created_at != nil {
		fields = append(fields, insight.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldCategory:
		return m.Category()
	case insight.FieldTitle:
		return m.Title()
	case insight.FieldDescription:
		return m.Description()
	case insight.FieldEvidence:
		return m.Evidence()
	case insight.FieldConfidence:
		return m.Confidence()
	case insight.FieldImpact:
		return m.Impact()
	case insight.FieldEntityIds:
		return m.EntityIds()
	case insight.FieldScriptPath:
		return m.ScriptPath()
	case insight.FieldScriptOutput:
		return m.ScriptOutput()
	case insight.FieldStatus:
		return m.Status()
	case insight.FieldConversationID:
		return m.ConversationID()
	case insight.FieldScheduleID:
		return m.ScheduleID()
	case insight.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insight.FieldCategory:
		return m.OldCategory(ctx)
	case insight.FieldTitle:
		return m.OldTitle(ctx)
	case insight.FieldDescription:
		return m.OldDescription(ctx)
	case insight.FieldEvidence:
		return m.OldEvidence(ctx)
	case insight.FieldConfidence:
		return m.OldConfidence(ctx)
	case insight.FieldImpact:
		return m.OldImpact(ctx)
	case insight.FieldEntityIds:
		return m.OldEntityIds(ctx)
	case insight.FieldScriptPath:
		return m.OldScriptPath(ctx)
	case insight.FieldScriptOutput:
		return m.OldScriptOutput(ctx)
	case insight.FieldStatus:
		return m.OldStatus(ctx)
	case insight.FieldConversationID:
		return m.OldConversationID(ctx)
	case insight.FieldScheduleID:
		return m.OldScheduleID(ctx)
	case insight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Insight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insight.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case insight.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case insight.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case insight.FieldEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case insight.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case insight.FieldImpact:
		v, ok := value.(insight.Impact)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpact(v)
		return nil
	case insight.FieldEntityIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityIds(v)
		return nil
	case insight.FieldScriptPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptPath(v)
		return nil
	case insight.FieldScriptOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptOutput(v)
		return nil
	case insight.FieldStatus:
		v, ok := value.(insight.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case insight.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case insight.FieldScheduleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleID(v)
		return nil
	case insight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, insight.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case insight.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Insight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insight.FieldEvidence) {
		fields = append(fields, insight.FieldEvidence)
	}
	if m.FieldCleared(insight.FieldEntityIds) {
		fields = append(fields, insight.FieldEntityIds)
	}
	if m.FieldCleared(insight.FieldScriptPath) {
		fields = append(fields, insight.FieldScriptPath)
	}
	if m.FieldCleared(insight.FieldScriptOutput) {
		fields = append(fields, insight.FieldScriptOutput)
	}
	if m.FieldCleared(insight.FieldConversationID) {
		fields = append(fields, insight.FieldConversationID)
	}
	if m.FieldCleared(insight.FieldScheduleID) {
		fields = append(fields, insight.FieldScheduleID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightMutation) ClearField(name string) error {
	switch name {
	case insight.FieldEvidence:
		m.ClearEvidence()
		return nil
	case insight.FieldEntityIds:
		m.ClearEntityIds()
		return nil
	case insight.FieldScriptPath:
		m.ClearScriptPath()
		return nil
	case insight.FieldScriptOutput:
		m.ClearScriptOutput()
		return nil
	case insight.FieldConversationID:
		m.ClearConversationID()
		return nil
	case insight.FieldScheduleID:
		m.ClearScheduleID()
		return nil
	}
	return fmt.Errorf("unknown Insight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightMutation) ResetField(name string) error {
	switch name {
	case insight.FieldCategory:
		m.ResetCategory()
		return nil
	case insight.FieldTitle:
		m.ResetTitle()
		return nil
	case insight.FieldDescription:
		m.ResetDescription()
		return nil
	case insight.FieldEvidence:
		m.ResetEvidence()
		return nil
	case insight.FieldConfidence:
		m.ResetConfidence()
		return nil
	case insight.FieldImpact:
		m.ResetImpact()
		return nil
	case insight.FieldEntityIds:
		m.ResetEntityIds()
		return nil
	case insight.FieldScriptPath:
		m.ResetScriptPath()
		return nil
	case insight.FieldScriptOutput:
		m.ResetScriptOutput()
		return nil
	case insight.FieldStatus:
		m.ResetStatus()
		return nil
	case insight.FieldConversationID:
		m.ResetConversationID()
		return nil
	case insight.FieldScheduleID:
		m.ResetScheduleID()
		return nil
	case insight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Insight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Insight edge %s", name)
}

// InsightScheduleMutation represents an operation that mutates the InsightSchedule nodes in the graph.
type InsightScheduleMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	label              *string
	enabled            *bool
	analysis_type      *string
	entity_ids         *[]string
	appendentity_ids   []string
	lookback_hours     *int
	addlookback_hours  *int
	options            *map[string]interface{}
	trigger            *insightschedule.Trigger
	cron_expression    *string
	event_label        *string
	match_filter       *map[string]interface{}
	depth              *insightschedule.Depth
	strategy           *insightschedule.Strategy
	timeout_seconds    *int
	addtimeout_seconds *int
	last_run_at        *time.Time
	last_result        *insightschedule.LastResult
	last_error         *string
	run_count          *int
	addrun_count       *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*InsightSchedule, error)
	predicates         []predicate.InsightSchedule
}

var _ ent.Mutation = (*InsightScheduleMutation)(nil)

// insightscheduleOption allows management of the mutation configuration using functional options.
type insightscheduleOption func(*InsightScheduleMutation)

// newInsightScheduleMutation creates new mutation for the InsightSchedule entity.
func newInsightScheduleMutation(c config, op Op, opts ...insightscheduleOption) *InsightScheduleMutation {
	m := &InsightScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeInsightSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightScheduleID sets the ID field of the mutation.
func withInsightScheduleID(id string) insightscheduleOption {
	return func(m *InsightScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *InsightSchedule
		)
		m.oldValue = func(ctx context.Context) (*InsightSchedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InsightSchedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsightSchedule sets the old InsightSchedule of the mutation.
func withInsightSchedule(node *InsightSchedule) insightscheduleOption {
	return func(m *InsightScheduleMutation) {
		m.oldValue = func(context.Context) (*InsightSchedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InsightSchedule entities.
func (m *InsightScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InsightSchedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLabel sets the "label" field.
func (m *InsightScheduleMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *InsightScheduleMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *InsightScheduleMutation) ResetLabel() {
	m.label = nil
}

// SetEnabled sets the "enabled" field.
func (m *InsightScheduleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *InsightScheduleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *InsightScheduleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetAnalysisType sets the "analysis_type" field.
func (m *InsightScheduleMutation) SetAnalysisType(s string) {
	m.analysis_type = &s
}

// AnalysisType returns the value of the "analysis_type" field in the mutation.
func (m *InsightScheduleMutation) AnalysisType() (r string, exists bool) {
	v := m.analysis_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisType returns the old "analysis_type" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldAnalysisType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisType: %w", err)
	}
	return oldValue.AnalysisType, nil
}

// ResetAnalysisType resets all changes to the "analysis_type" field.
func (m *InsightScheduleMutation) ResetAnalysisType() {
	m.analysis_type = nil
}

// SetEntityIds sets the "entity_ids" field.
func (m *InsightScheduleMutation) SetEntityIds(s []string) {
	m.entity_ids = &s
	m.appendentity_ids = nil
}

// EntityIds returns the value of the "entity_ids" field in the mutation.
func (m *InsightScheduleMutation) EntityIds() (r []string, exists bool) {
	v := m.entity_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityIds returns the old "entity_ids" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldEntityIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityIds: %w", err)
	}
	return oldValue.EntityIds, nil
}

// AppendEntityIds adds s to the "entity_ids" field.
func (m *InsightScheduleMutation) AppendEntityIds(s []string) {
	m.appendentity_ids = append(m.appendentity_ids, s...)
}

// AppendedEntityIds returns the list of values that were appended to the "entity_ids" field in this mutation.
func (m *InsightScheduleMutation) AppendedEntityIds() ([]string, bool) {
	if len(m.appendentity_ids) == 0 {
		return nil, false
	}
	return m.appendentity_ids, true
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (m *InsightScheduleMutation) ClearEntityIds() {
	m.entity_ids = nil
	m.appendentity_ids = nil
	m.clearedFields[insightschedule.FieldEntityIds] = struct{}{}
}

// EntityIdsCleared returns if the "entity_ids" field was cleared in this mutation.
func (m *InsightScheduleMutation) EntityIdsCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldEntityIds]
	return ok
}

// ResetEntityIds resets all changes to the "entity_ids" field.
func (m *InsightScheduleMutation) ResetEntityIds() {
	m.entity_ids = nil
	m.appendentity_ids = nil
	delete(m.clearedFields, insightschedule.FieldEntityIds)
}

// SetLookbackHours sets the "lookback_hours" field.
func (m *InsightScheduleMutation) SetLookbackHours(i int) {
	m.lookback_hours = &i
	m.addlookback_hours = nil
}

// LookbackHours returns the value of the "lookback_hours" field in the mutation.
func (m *InsightScheduleMutation) LookbackHours() (r int, exists bool) {
	v := m.lookback_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldLookbackHours returns the old "lookback_hours" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldLookbackHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLookbackHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLookbackHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLookbackHours: %w", err)
	}
	return oldValue.LookbackHours, nil
}

// AddLookbackHours adds i to the "lookback_hours" field.
func (m *InsightScheduleMutation) AddLookbackHours(i int) {
	if m.addlookback_hours != nil {
		*m.addlookback_hours += i
	} else {
		m.addlookback_hours = &i
	}
}

// AddedLookbackHours returns the value that was added to the "lookback_hours" field in this mutation.
func (m *InsightScheduleMutation) AddedLookbackHours() (r int, exists bool) {
	v := m.addlookback_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetLookbackHours resets all changes to the "lookback_hours" field.
func (m *InsightScheduleMutation) ResetLookbackHours() {
	m.lookback_hours = nil
	m.addlookback_hours = nil
}

// SetOptions sets the "options" field.
func (m *InsightScheduleMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *InsightScheduleMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *InsightScheduleMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[insightschedule.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *InsightScheduleMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *InsightScheduleMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, insightschedule.FieldOptions)
}

// SetTrigger sets the "trigger" field.
func (m *InsightScheduleMutation) SetTrigger(i insightschedule.Trigger) {
	m.trigger = &i
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *InsightScheduleMutation) Trigger() (r insightschedule.Trigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldTrigger(ctx context.Context) (v insightschedule.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *InsightScheduleMutation) ResetTrigger() {
	m.trigger = nil
}

// SetCronExpression sets the "cron_expression" field.
func (m *InsightScheduleMutation) SetCronExpression(s string) {
	m.cron_expression = &s
}

// CronExpression returns the value of the "cron_expression" field in the mutation.
func (m *InsightScheduleMutation) CronExpression() (r string, exists bool) {
	v := m.cron_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpression returns the old "cron_expression" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldCronExpression(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpression: %w", err)
	}
	return oldValue.CronExpression, nil
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (m *InsightScheduleMutation) ClearCronExpression() {
	m.cron_expression = nil
	m.clearedFields[insightschedule.FieldCronExpression] = struct{}{}
}

// CronExpressionCleared returns if the "cron_expression" field was cleared in this mutation.
func (m *InsightScheduleMutation) CronExpressionCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldCronExpression]
	return ok
}

// ResetCronExpression resets all changes to the "cron_expression" field.
func (m *InsightScheduleMutation) ResetCronExpression() {
	m.cron_expression = nil
	delete(m.clearedFields, insightschedule.FieldCronExpression)
}

// SetEventLabel sets the "event_label" field.
func (m *InsightScheduleMutation) SetEventLabel(s string) {
	m.event_label = &s
}

// EventLabel returns the value of the "event_label" field in the mutation.
func (m *InsightScheduleMutation) EventLabel() (r string, exists bool) {
	v := m.event_label
	if v == nil {
		return
	}
	return *v, true
}

// OldEventLabel returns the old "event_label" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldEventLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventLabel: %w", err)
	}
	return oldValue.EventLabel, nil
}

// ClearEventLabel clears the value of the "event_label" field.
func (m *InsightScheduleMutation) ClearEventLabel() {
	m.event_label = nil
	m.clearedFields[insightschedule.FieldEventLabel] = struct{}{}
}

// EventLabelCleared returns if the "event_label" field was cleared in this mutation.
func (m *InsightScheduleMutation) EventLabelCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldEventLabel]
	return ok
}

// ResetEventLabel resets all changes to the "event_label" field.
func (m *InsightScheduleMutation) ResetEventLabel() {
	m.event_label = nil
	delete(m.clearedFields, insightschedule.FieldEventLabel)
}

// SetMatchFilter sets the "match_filter" field.
func (m *InsightScheduleMutation) SetMatchFilter(value map[string]interface{}) {
	m.match_filter = &value
}

// MatchFilter returns the value of the "match_filter" field in the mutation.
func (m *InsightScheduleMutation) MatchFilter() (r map[string]interface{}, exists bool) {
	v := m.match_filter
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchFilter returns the old "match_filter" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldMatchFilter(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchFilter: %w", err)
	}
	return oldValue.MatchFilter, nil
}

// ClearMatchFilter clears the value of the "match_filter" field.
func (m *InsightScheduleMutation) ClearMatchFilter() {
	m.match_filter = nil
	m.clearedFields[insightschedule.FieldMatchFilter] = struct{}{}
}

// MatchFilterCleared returns if the "match_filter" field was cleared in this mutation.
func (m *InsightScheduleMutation) MatchFilterCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldMatchFilter]
	return ok
}

// ResetMatchFilter resets all changes to the "match_filter" field.
func (m *InsightScheduleMutation) ResetMatchFilter() {
	m.match_filter = nil
	delete(m.clearedFields, insightschedule.FieldMatchFilter)
}

// SetDepth sets the "depth" field.
func (m *InsightScheduleMutation) SetDepth(i insightschedule.Depth) {
	m.depth = &i
}

// Depth returns the value of the "depth" field in the mutation.
func (m *InsightScheduleMutation) Depth() (r insightschedule.Depth, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldDepth(ctx context.Context) (v insightschedule.Depth, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// ResetDepth resets all changes to the "depth" field.
func (m *InsightScheduleMutation) ResetDepth() {
	m.depth = nil
}

// SetStrategy sets the "strategy" field.
func (m *InsightScheduleMutation) SetStrategy(i insightschedule.Strategy) {
	m.strategy = &i
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *InsightScheduleMutation) Strategy() (r insightschedule.Strategy, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldStrategy(ctx context.Context) (v insightschedule.Strategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *InsightScheduleMutation) ResetStrategy() {
	m.strategy = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *InsightScheduleMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *InsightScheduleMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldTimeoutSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *InsightScheduleMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *InsightScheduleMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (m *InsightScheduleMutation) ClearTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	m.clearedFields[insightschedule.FieldTimeoutSeconds] = struct{}{}
}

// TimeoutSecondsCleared returns if the "timeout_seconds" field was cleared in this mutation.
func (m *InsightScheduleMutation) TimeoutSecondsCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldTimeoutSeconds]
	return ok
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *InsightScheduleMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	delete(m.clearedFields, insightschedule.FieldTimeoutSeconds)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *InsightScheduleMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *InsightScheduleMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *InsightScheduleMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[insightschedule.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *InsightScheduleMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *InsightScheduleMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, insightschedule.FieldLastRunAt)
}

// SetLastResult sets the "last_result" field.
func (m *InsightScheduleMutation) SetLastResult(ir insightschedule.LastResult) {
	m.last_result = &ir
}

// LastResult returns the value of the "last_result" field in the mutation.
func (m *InsightScheduleMutation) LastResult() (r insightschedule.LastResult, exists bool) {
	v := m.last_result
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResult returns the old "last_result" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldLastResult(ctx context.Context) (v *insightschedule.LastResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResult: %w", err)
	}
	return oldValue.LastResult, nil
}

// ClearLastResult clears the value of the "last_result" field.
func (m *InsightScheduleMutation) ClearLastResult() {
	m.last_result = nil
	m.clearedFields[insightschedule.FieldLastResult] = struct{}{}
}

// LastResultCleared returns if the "last_result" field was cleared in this mutation.
func (m *InsightScheduleMutation) LastResultCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldLastResult]
	return ok
}

// ResetLastResult resets all changes to the "last_result" field.
func (m *InsightScheduleMutation) ResetLastResult() {
	m.last_result = nil
	delete(m.clearedFields, insightschedule.FieldLastResult)
}

// SetLastError sets the "last_error" field.
func (m *InsightScheduleMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *InsightScheduleMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *InsightScheduleMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[insightschedule.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *InsightScheduleMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[insightschedule.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *InsightScheduleMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, insightschedule.FieldLastError)
}

// SetRunCount sets the "run_count" field.
func (m *InsightScheduleMutation) SetRunCount(i int) {
	m.run_count = &i
	m.addrun_count = nil
}

// RunCount returns the value of the "run_count" field in the mutation.
func (m *InsightScheduleMutation) RunCount() (r int, exists bool) {
	v := m.run_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRunCount returns the old "run_count" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldRunCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunCount: %w", err)
	}
	return oldValue.RunCount, nil
}

// AddRunCount adds i to the "run_count" field.
func (m *InsightScheduleMutation) AddRunCount(i int) {
	if m.addrun_count != nil {
		*m.addrun_count += i
	} else {
		m.addrun_count = &i
	}
}

// AddedRunCount returns the value that was added to the "run_count" field in this mutation.
func (m *InsightScheduleMutation) AddedRunCount() (r int, exists bool) {
	v := m.addrun_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRunCount resets all changes to the "run_count" field.
func (m *InsightScheduleMutation) ResetRunCount() {
	m.run_count = nil
	m.addrun_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightScheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightScheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightScheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InsightScheduleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InsightScheduleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InsightSchedule entity.
// If the InsightSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightScheduleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InsightScheduleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InsightScheduleMutation builder.
func (m *InsightScheduleMutation) Where(ps ...predicate.InsightSchedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InsightSchedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InsightSchedule).
func (m *InsightScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightScheduleMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.label != nil {
		fields = append(fields, insightschedule.FieldLabel)
	}
	if m.enabled != nil {
		fields = append(fields, insightschedule.FieldEnabled)
	}
	if m.analysis_type != nil {
		fields = append(fields, insightschedule.FieldAnalysisType)
	}
	if m.entity_ids != nil {
		fields = append(fields, insightschedule.FieldEntityIds)
	}
	if m.lookback_hours != nil {
		fields = append(fields, insightschedule.FieldLookbackHours)
	}
	if m.options != nil {
		fields = append(fields, insightschedule.FieldOptions)
	}
	if m.trigger != nil {
		fields = append(fields, insightschedule.FieldTrigger)
	}
	if m.cron_expression != nil {
		fields = append(fields, insightschedule.FieldCronExpression)
	}
	if m.event_label != nil {
		fields = append(fields, insightschedule.FieldEventLabel)
	}
	if m.match_filter != nil {
		fields = append(fields, insightschedule.FieldMatchFilter)
	}
	if m.depth != nil {
		fields = append(fields, insightschedule.FieldDepth)
	}
	if m.strategy != nil {
		fields = append(fields, insightschedule.FieldStrategy)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, insightschedule.FieldTimeoutSeconds)
	}
	if m.last_run_at != nil {
		fields = append(fields, insightschedule.FieldLastRunAt)
	}
	if m.last_result != nil {
		fields = append(fields, insightschedule.FieldLastResult)
	}
	if m.last_error != nil {
		fields = append(fields, insightschedule.FieldLastError)
	}
	if m.run_count != nil {
		fields = append(fields, insightschedule.FieldRunCount)
	}
	if m.created_at != nil {
		fields = append(fields, insightschedule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, insightschedule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insightschedule.FieldLabel:
		return m.Label()
	case insightschedule.FieldEnabled:
		return m.Enabled()
	case insightschedule.FieldAnalysisType:
		return m.AnalysisType()
	case insightschedule.FieldEntityIds:
		return m.EntityIds()
	case insightschedule.FieldLookbackHours:
		return m.LookbackHours()
	case insightschedule.FieldOptions:
		return m.Options()
	case insightschedule.FieldTrigger:
		return m.Trigger()
	case insightschedule.FieldCronExpression:
		return m.CronExpression()
	case insightschedule.FieldEventLabel:
		return m.EventLabel()
	case insightschedule.FieldMatchFilter:
		return m.MatchFilter()
	case insightschedule.FieldDepth:
		return m.Depth()
	case insightschedule.FieldStrategy:
		return m.Strategy()
	case insightschedule.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case insightschedule.FieldLastRunAt:
		return m.LastRunAt()
	case insightschedule.FieldLastResult:
		return m.LastResult()
	case insightschedule.FieldLastError:
		return m.LastError()
	case insightschedule.FieldRunCount:
		return m.RunCount()
	case insightschedule.FieldCreatedAt:
		return m.CreatedAt()
	case insightschedule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insightschedule.FieldLabel:
		return m.OldLabel(ctx)
	case insightschedule.FieldEnabled:
		return m.OldEnabled(ctx)
	case insightschedule.FieldAnalysisType:
		return m.OldAnalysisType(ctx)
	case insightschedule.FieldEntityIds:
		return m.OldEntityIds(ctx)
	case insightschedule.FieldLookbackHours:
		return m.OldLookbackHours(ctx)
	case insightschedule.FieldOptions:
		return m.OldOptions(ctx)
	case insightschedule.FieldTrigger:
		return m.OldTrigger(ctx)
	case insightschedule.FieldCronExpression:
		return m.OldCronExpression(ctx)
	case insightschedule.FieldEventLabel:
		return m.OldEventLabel(ctx)
	case insightschedule.FieldMatchFilter:
		return m.OldMatchFilter(ctx)
	case insightschedule.FieldDepth:
		return m.OldDepth(ctx)
	case insightschedule.FieldStrategy:
		return m.OldStrategy(ctx)
	case insightschedule.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case insightschedule.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case insightschedule.FieldLastResult:
		return m.OldLastResult(ctx)
	case insightschedule.FieldLastError:
		return m.OldLastError(ctx)
	case insightschedule.FieldRunCount:
		return m.OldRunCount(ctx)
	case insightschedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case insightschedule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InsightSchedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insightschedule.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case insightschedule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case insightschedule.FieldAnalysisType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisType(v)
		return nil
	case insightschedule.FieldEntityIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityIds(v)
		return nil
	case insightschedule.FieldLookbackHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLookbackHours(v)
		return nil
	case insightschedule.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case insightschedule.FieldTrigger:
		v, ok := value.(insightschedule.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case insightschedule.FieldCronExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpression(v)
		return nil
	case insightschedule.FieldEventLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventLabel(v)
		return nil
	case insightschedule.FieldMatchFilter:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchFilter(v)
		return nil
	case insightschedule.FieldDepth:
		v, ok := value.(insightschedule.Depth)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case insightschedule.FieldStrategy:
		v, ok := value.(insightschedule.Strategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case insightschedule.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case insightschedule.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case insightschedule.FieldLastResult:
		v, ok := value.(insightschedule.LastResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResult(v)
		return nil
	case insightschedule.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case insightschedule.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunCount(v)
		return nil
	case insightschedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case insightschedule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InsightSchedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightScheduleMutation) AddedFields() []string {
	var fields []string
	if m.addlookback_hours != nil {
		fields = append(fields, insightschedule.FieldLookbackHours)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, insightschedule.FieldTimeoutSeconds)
	}
	if m.addrun_count != nil {
		fields = append(fields, insightschedule.FieldRunCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case insightschedule.FieldLookbackHours:
		return m.AddedLookbackHours()
	case insightschedule.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	case insightschedule.FieldRunCount:
		return m.AddedRunCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case insightschedule.FieldLookbackHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLookbackHours(v)
		return nil
	case insightschedule.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	case insightschedule.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunCount(v)
		return nil
	}
	return fmt.Errorf("unknown InsightSchedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insightschedule.FieldEntityIds) {
		fields = append(fields, insightschedule.FieldEntityIds)
	}
	if m.FieldCleared(insightschedule.FieldOptions) {
		fields = append(fields, insightschedule.FieldOptions)
	}
	if m.FieldCleared(insightschedule.FieldCronExpression) {
		fields = append(fields, insightschedule.FieldCronExpression)
	}
	if m.FieldCleared(insightschedule.FieldEventLabel) {
		fields = append(fields, insightschedule.FieldEventLabel)
	}
	if m.FieldCleared(insightschedule.FieldMatchFilter) {
		fields = append(fields, insightschedule.FieldMatchFilter)
	}
	if m.FieldCleared(insightschedule.FieldTimeoutSeconds) {
		fields = append(fields, insightschedule.FieldTimeoutSeconds)
	}
	if m.FieldCleared(insightschedule.FieldLastRunAt) {
		fields = append(fields, insightschedule.FieldLastRunAt)
	}
	if m.FieldCleared(insightschedule.FieldLastResult) {
		fields = append(fields, insightschedule.FieldLastResult)
	}
	if m.FieldCleared(insightschedule.FieldLastError) {
		fields = append(fields, insightschedule.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightScheduleMutation) ClearField(name string) error {
	switch name {
	case insightschedule.FieldEntityIds:
		m.ClearEntityIds()
		return nil
	case insightschedule.FieldOptions:
		m.ClearOptions()
		return nil
	case insightschedule.FieldCronExpression:
		m.ClearCronExpression()
		return nil
	case insightschedule.FieldEventLabel:
		m.ClearEventLabel()
		return nil
	case insightschedule.FieldMatchFilter:
		m.ClearMatchFilter()
		return nil
	case insightschedule.FieldTimeoutSeconds:
		m.ClearTimeoutSeconds()
		return nil
	case insightschedule.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case insightschedule.FieldLastResult:
		m.ClearLastResult()
		return nil
	case insightschedule.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown InsightSchedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightScheduleMutation) ResetField(name string) error {
	switch name {
	case insightschedule.FieldLabel:
		m.ResetLabel()
		return nil
	case insightschedule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case insightschedule.FieldAnalysisType:
		m.ResetAnalysisType()
		return nil
	case insightschedule.FieldEntityIds:
		m.ResetEntityIds()
		return nil
	case insightschedule.FieldLookbackHours:
		m.ResetLookbackHours()
		return nil
	case insightschedule.FieldOptions:
		m.ResetOptions()
		return nil
	case insightschedule.FieldTrigger:
		m.ResetTrigger()
		return nil
	case insightschedule.FieldCronExpression:
		m.ResetCronExpression()
		return nil
	case insightschedule.FieldEventLabel:
		m.ResetEventLabel()
		return nil
	case insightschedule.FieldMatchFilter:
		m.ResetMatchFilter()
		return nil
	case insightschedule.FieldDepth:
		m.ResetDepth()
		return nil
	case insightschedule.FieldStrategy:
		m.ResetStrategy()
		return nil
	case insightschedule.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case insightschedule.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case insightschedule.FieldLastResult:
		m.ResetLastResult()
		return nil
	case insightschedule.FieldLastError:
		m.ResetLastError()
		return nil
	case insightschedule.FieldRunCount:
		m.ResetRunCount()
		return nil
	case insightschedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case insightschedule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InsightSchedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightScheduleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightScheduleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightScheduleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InsightSchedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightScheduleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InsightSchedule edge %s", name)
}

// LLMUsageMutation represents an operation that mutates the LLMUsage nodes in the graph.
type LLMUsageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	conversation_id      *string
	trace_id             *string
	span_kind            *string
	agent_name           *string
	model                *string
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	latency_ms           *int
	addlatency_ms        *int
	is_error             *bool
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*LLMUsage, error)
	predicates           []predicate.LLMUsage
}

var _ ent.Mutation = (*LLMUsageMutation)(nil)

// llmusageOption allows management of the mutation configuration using functional options.
type llmusageOption func(*LLMUsageMutation)

// newLLMUsageMutation creates new mutation for the LLMUsage entity.
func newLLMUsageMutation(c config, op Op, opts ...llmusageOption) *LLMUsageMutation {
	m := &LLMUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMUsageID sets the ID field of the mutation.
func withLLMUsageID(id string) llmusageOption {
	return func(m *LLMUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMUsage
		)
		m.oldValue = func(ctx context.Context) (*LLMUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMUsage sets the old LLMUsage of the mutation.
func withLLMUsage(node *LLMUsage) llmusageOption {
	return func(m *LLMUsageMutation) {
		m.oldValue = func(context.Context) (*LLMUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMUsage entities.
func (m *LLMUsageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMUsageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMUsageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *LLMUsageMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *LLMUsageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *LLMUsageMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[llmusage.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *LLMUsageMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[llmusage.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *LLMUsageMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, llmusage.FieldConversationID)
}

// SetTraceID sets the "trace_id" field.
func (m *LLMUsageMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *LLMUsageMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *LLMUsageMutation) ClearTraceID() {
	m.trace_id = nil
	m.clearedFields[llmusage.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *LLMUsageMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[llmusage.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *LLMUsageMutation) ResetTraceID() {
	m.trace_id = nil
	delete(m.clearedFields, llmusage.FieldTraceID)
}

// SetSpanKind sets the "span_kind" field.
func (m *LLMUsageMutation) SetSpanKind(s string) {
	m.span_kind = &s
}

// SpanKind returns the value of the "span_kind" field in the mutation.
func (m *LLMUsageMutation) SpanKind() (r string, exists bool) {
	v := m.span_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSpanKind returns the old "span_kind" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldSpanKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpanKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpanKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpanKind: %w", err)
	}
	return oldValue.SpanKind, nil
}

// ResetSpanKind resets all changes to the "span_kind" field.
func (m *LLMUsageMutation) ResetSpanKind() {
	m.span_kind = nil
}

// SetAgentName sets the "agent_name" field.
func (m *LLMUsageMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *LLMUsageMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *LLMUsageMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[llmusage.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *LLMUsageMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[llmusage.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *LLMUsageMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, llmusage.FieldAgentName)
}

// SetModel sets the "model" field.
func (m *LLMUsageMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMUsageMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *LLMUsageMutation) ClearModel() {
	m.model = nil
	m.clearedFields[llmusage.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *LLMUsageMutation) ModelCleared() bool {
	_, ok := m.clearedFields[llmusage.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *LLMUsageMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, llmusage.FieldModel)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *LLMUsageMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *LLMUsageMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *LLMUsageMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *LLMUsageMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *LLMUsageMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *LLMUsageMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *LLMUsageMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *LLMUsageMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *LLMUsageMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *LLMUsageMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMUsageMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMUsageMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMUsageMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMUsageMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMUsageMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetIsError sets the "is_error" field.
func (m *LLMUsageMutation) SetIsError(b bool) {
	m.is_error = &b
}

// IsError returns the value of the "is_error" field in the mutation.
func (m *LLMUsageMutation) IsError() (r bool, exists bool) {
	v := m.is_error
	if v == nil {
		return
	}
	return *v, true
}

// OldIsError returns the old "is_error" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldIsError(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsError: %w", err)
	}
	return oldValue.IsError, nil
}

// ResetIsError resets all changes to the "is_error" field.
func (m *LLMUsageMutation) ResetIsError() {
	m.is_error = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMUsageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMUsageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMUsage entity.
// If the LLMUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMUsageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMUsageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMUsageMutation builder.
func (m *LLMUsageMutation) Where(ps ...predicate.LLMUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMUsage).
func (m *LLMUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMUsageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.conversation_id != nil {
		fields = append(fields, llmusage.FieldConversationID)
	}
	if m.trace_id != nil {
		fields = append(fields, llmusage.FieldTraceID)
	}
	if m.span_kind != nil {
		fields = append(fields, llmusage.FieldSpanKind)
	}
	if m.agent_name != nil {
		fields = append(fields, llmusage.FieldAgentName)
	}
	if m.model != nil {
		fields = append(fields, llmusage.FieldModel)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, llmusage.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, llmusage.FieldCompletionTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmusage.FieldLatencyMs)
	}
	if m.is_error != nil {
		fields = append(fields, llmusage.FieldIsError)
	}
	if m.created_at != nil {
		fields = append(fields, llmusage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmusage.FieldConversationID:
		return m.ConversationID()
	case llmusage.FieldTraceID:
		return m.TraceID()
	case llmusage.FieldSpanKind:
		return m.SpanKind()
	case llmusage.FieldAgentName:
		return m.AgentName()
	case llmusage.FieldModel:
		return m.Model()
	case llmusage.FieldPromptTokens:
		return m.PromptTokens()
	case llmusage.FieldCompletionTokens:
		return m.CompletionTokens()
	case llmusage.FieldLatencyMs:
		return m.LatencyMs()
	case llmusage.FieldIsError:
		return m.IsError()
	case llmusage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmusage.FieldConversationID:
		return m.OldConversationID(ctx)
	case llmusage.FieldTraceID:
		return m.OldTraceID(ctx)
	case llmusage.FieldSpanKind:
		return m.OldSpanKind(ctx)
	case llmusage.FieldAgentName:
		return m.OldAgentName(ctx)
	case llmusage.FieldModel:
		return m.OldModel(ctx)
	case llmusage.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case llmusage.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case llmusage.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmusage.FieldIsError:
		return m.OldIsError(ctx)
	case llmusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmusage.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case llmusage.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case llmusage.FieldSpanKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpanKind(v)
		return nil
	case llmusage.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case llmusage.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmusage.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case llmusage.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case llmusage.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmusage.FieldIsError:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsError(v)
		return nil
	case llmusage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMUsageMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, llmusage.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, llmusage.FieldCompletionTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmusage.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmusage.FieldPromptTokens:
		return m.AddedPromptTokens()
	case llmusage.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case llmusage.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmusage.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case llmusage.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case llmusage.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmusage.FieldConversationID) {
		fields = append(fields, llmusage.FieldConversationID)
	}
	if m.FieldCleared(llmusage.FieldTraceID) {
		fields = append(fields, llmusage.FieldTraceID)
	}
	if m.FieldCleared(llmusage.FieldAgentName) {
		fields = append(fields, llmusage.FieldAgentName)
	}
	if m.FieldCleared(llmusage.FieldModel) {
		fields = append(fields, llmusage.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMUsageMutation) ClearField(name string) error {
	switch name {
	case llmusage.FieldConversationID:
		m.ClearConversationID()
		return nil
	case llmusage.FieldTraceID:
		m.ClearTraceID()
		return nil
	case llmusage.FieldAgentName:
		m.ClearAgentName()
		return nil
	case llmusage.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown LLMUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMUsageMutation) ResetField(name string) error {
	switch name {
	case llmusage.FieldConversationID:
		m.ResetConversationID()
		return nil
	case llmusage.FieldTraceID:
		m.ResetTraceID()
		return nil
	case llmusage.FieldSpanKind:
		m.ResetSpanKind()
		return nil
	case llmusage.FieldAgentName:
		m.ResetAgentName()
		return nil
	case llmusage.FieldModel:
		m.ResetModel()
		return nil
	case llmusage.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case llmusage.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case llmusage.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmusage.FieldIsError:
		m.ResetIsError()
		return nil
	case llmusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMUsageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMUsageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMUsageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMUsageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMUsage edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	role                *message.Role
	content             *string
	tool_calls          *[]map[string]interface{}
	appendtool_calls    []map[string]interface{}
	tool_call_id        *string
	tool_name           *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetToolCalls sets the "tool_calls" field.
func (m *MessageMutation) SetToolCalls(value []map[string]interface{}) {
	m.tool_calls = &value
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *MessageMutation) ToolCalls() (r []map[string]interface{}, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToolCalls(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds value to the "tool_calls" field.
func (m *MessageMutation) AppendToolCalls(value []map[string]interface{}) {
	m.appendtool_calls = append(m.appendtool_calls, value...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *MessageMutation) AppendedToolCalls() ([]map[string]interface{}, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *MessageMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[message.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *MessageMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[message.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *MessageMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, message.FieldToolCalls)
}

// SetToolCallID sets the "tool_call_id" field.
func (m *MessageMutation) SetToolCallID(s string) {
	m.tool_call_id = &s
}

// ToolCallID returns the value of the "tool_call_id" field in the mutation.
func (m *MessageMutation) ToolCallID() (r string, exists bool) {
	v := m.tool_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallID returns the old "tool_call_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToolCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallID: %w", err)
	}
	return oldValue.ToolCallID, nil
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (m *MessageMutation) ClearToolCallID() {
	m.tool_call_id = nil
	m.clearedFields[message.FieldToolCallID] = struct{}{}
}

// ToolCallIDCleared returns if the "tool_call_id" field was cleared in this mutation.
func (m *MessageMutation) ToolCallIDCleared() bool {
	_, ok := m.clearedFields[message.FieldToolCallID]
	return ok
}

// ResetToolCallID resets all changes to the "tool_call_id" field.
func (m *MessageMutation) ResetToolCallID() {
	m.tool_call_id = nil
	delete(m.clearedFields, message.FieldToolCallID)
}

// SetToolName sets the "tool_name" field.
func (m *MessageMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *MessageMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *MessageMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[message.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *MessageMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[message.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *MessageMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, message.FieldToolName)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.tool_calls != nil {
		fields = append(fields, message.FieldToolCalls)
	}
	if m.tool_call_id != nil {
		fields = append(fields, message.FieldToolCallID)
	}
	if m.tool_name != nil {
		fields = append(fields, message.FieldToolName)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldToolCalls:
		return m.ToolCalls()
	case message.FieldToolCallID:
		return m.ToolCallID()
	case message.FieldToolName:
		return m.ToolName()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case message.FieldToolCallID:
		return m.OldToolCallID(ctx)
	case message.FieldToolName:
		return m.OldToolName(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldToolCalls:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case message.FieldToolCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallID(v)
		return nil
	case message.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldToolCalls) {
		fields = append(fields, message.FieldToolCalls)
	}
	if m.FieldCleared(message.FieldToolCallID) {
		fields = append(fields, message.FieldToolCallID)
	}
	if m.FieldCleared(message.FieldToolName) {
		fields = append(fields, message.FieldToolName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case message.FieldToolCallID:
		m.ClearToolCallID()
		return nil
	case message.FieldToolName:
		m.ClearToolName()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case message.FieldToolCallID:
		m.ResetToolCallID()
		return nil
	case message.FieldToolName:
		m.ResetToolName()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ProposalMutation represents an operation that mutates the Proposal nodes in the graph.
type ProposalMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	conversation_id    *string
	kind               *proposal.Kind
	body               *map[string]interface{}
	status             *proposal.Status
	title              *string
	ha_automation_id   *string
	approved_by        *string
	rejection_reason   *string
	original_yaml      *string
	review_notes       *[]string
	appendreview_notes []string
	ha_disabled        *bool
	ha_error           *string
	created_at         *time.Time
	proposed_at        *time.Time
	approved_at        *time.Time
	rejected_at        *time.Time
	deployed_at        *time.Time
	rolled_back_at     *time.Time
	archived_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Proposal, error)
	predicates         []predicate.Proposal
}

var _ ent.Mutation = (*ProposalMutation)(nil)

// proposalOption allows management of the mutation configuration using functional options.
type proposalOption func(*ProposalMutation)

// newProposalMutation creates new mutation for the Proposal entity.
func newProposalMutation(c config, op Op, opts ...proposalOption) *ProposalMutation {
	m := &ProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalID sets the ID field of the mutation.
func withProposalID(id string) proposalOption {
	return func(m *ProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *Proposal
		)
		m.oldValue = func(ctx context.Context) (*Proposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Proposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposal sets the old Proposal of the mutation.
func withProposal(node *Proposal) proposalOption {
	return func(m *ProposalMutation) {
		m.oldValue = func(context.Context) (*Proposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Proposal entities.
func (m *ProposalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Proposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *ProposalMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ProposalMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *ProposalMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[proposal.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *ProposalMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[proposal.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ProposalMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, proposal.FieldConversationID)
}

// SetKind sets the "kind" field.
func (m *ProposalMutation) SetKind(pr proposal.Kind) {
	m.kind = &pr
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ProposalMutation) Kind() (r proposal.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldKind(ctx context.Context) (v proposal.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ProposalMutation) ResetKind() {
	m.kind = nil
}

// SetBody sets the "body" field.
func (m *ProposalMutation) SetBody(value map[string]interface{}) {
	m.body = &value
}

// Body returns the value of the "body" field in the mutation.
func (m *ProposalMutation) Body() (r map[string]interface{}, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldBody(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ProposalMutation) ResetBody() {
	m.body = nil
}

// SetStatus sets the "status" field.
func (m *ProposalMutation) SetStatus(pr proposal.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProposalMutation) Status() (r proposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStatus(ctx context.Context) (v proposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProposalMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *ProposalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProposalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ProposalMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[proposal.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ProposalMutation) TitleCleared() bool {
	_, ok := m.clearedFields[proposal.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ProposalMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, proposal.FieldTitle)
}

// SetHaAutomationID sets the "ha_automation_id" field.
func (m *ProposalMutation) SetHaAutomationID(s string) {
	m.ha_automation_id = &s
}

// HaAutomationID returns the value of the "ha_automation_id" field in the mutation.
func (m *ProposalMutation) HaAutomationID() (r string, exists bool) {
	v := m.ha_automation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHaAutomationID returns the old "ha_automation_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldHaAutomationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHaAutomationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHaAutomationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHaAutomationID: %w", err)
	}
	return oldValue.HaAutomationID, nil
}

// ClearHaAutomationID clears the value of the "ha_automation_id" field.
func (m *ProposalMutation) ClearHaAutomationID() {
	m.ha_automation_id = nil
	m.clearedFields[proposal.FieldHaAutomationID] = struct{}{}
}

// HaAutomationIDCleared returns if the "ha_automation_id" field was cleared in this mutation.
func (m *ProposalMutation) HaAutomationIDCleared() bool {
	_, ok := m.clearedFields[proposal.FieldHaAutomationID]
	return ok
}

// ResetHaAutomationID resets all changes to the "ha_automation_id" field.
func (m *ProposalMutation) ResetHaAutomationID() {
	m.ha_automation_id = nil
	delete(m.clearedFields, proposal.FieldHaAutomationID)
}

// SetApprovedBy sets the "approved_by" field.
func (m *ProposalMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *ProposalMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *ProposalMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[proposal.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *ProposalMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[proposal.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *ProposalMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, proposal.FieldApprovedBy)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *ProposalMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *ProposalMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *ProposalMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[proposal.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *ProposalMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[proposal.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *ProposalMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, proposal.FieldRejectionReason)
}

// SetOriginalYaml sets the "original_yaml" field.
func (m *ProposalMutation) SetOriginalYaml(s string) {
	m.original_yaml = &s
}

// OriginalYaml returns the value of the "original_yaml" field in the mutation.
func (m *ProposalMutation) OriginalYaml() (r string, exists bool) {
	v := m.original_yaml
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalYaml returns the old "original_yaml" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldOriginalYaml(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalYaml is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalYaml requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalYaml: %w", err)
	}
	return oldValue.OriginalYaml, nil
}

// ClearOriginalYaml clears the value of the "original_yaml" field.
func (m *ProposalMutation) ClearOriginalYaml() {
	m.original_yaml = nil
	m.clearedFields[proposal.FieldOriginalYaml] = struct{}{}
}

// OriginalYamlCleared returns if the "original_yaml" field was cleared in this mutation.
func (m *ProposalMutation) OriginalYamlCleared() bool {
	_, ok := m.clearedFields[proposal.FieldOriginalYaml]
	return ok
}

// ResetOriginalYaml resets all changes to the "original_yaml" field.
func (m *ProposalMutation) ResetOriginalYaml() {
	m.original_yaml = nil
	delete(m.clearedFields, proposal.FieldOriginalYaml)
}

// SetReviewNotes sets the "review_notes" field.
func (m *ProposalMutation) SetReviewNotes(s []string) {
	m.review_notes = &s
	m.appendreview_notes = nil
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *ProposalMutation) ReviewNotes() (r []string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldReviewNotes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// AppendReviewNotes adds s to the "review_notes" field.
func (m *ProposalMutation) AppendReviewNotes(s []string) {
	m.appendreview_notes = append(m.appendreview_notes, s...)
}

// AppendedReviewNotes returns the list of values that were appended to the "review_notes" field in this mutation.
func (m *ProposalMutation) AppendedReviewNotes() ([]string, bool) {
	if len(m.appendreview_notes) == 0 {
		return nil, false
	}
	return m.appendreview_notes, true
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *ProposalMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.appendreview_notes = nil
	m.clearedFields[proposal.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *ProposalMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[proposal.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *ProposalMutation) ResetReviewNotes() {
	m.review_notes = nil
	m.appendreview_notes = nil
	delete(m.clearedFields, proposal.FieldReviewNotes)
}

// SetHaDisabled sets the "ha_disabled" field.
func (m *ProposalMutation) SetHaDisabled(b bool) {
	m.ha_disabled = &b
}

// HaDisabled returns the value of the "ha_disabled" field in the mutation.
func (m *ProposalMutation) HaDisabled() (r bool, exists bool) {
	v := m.ha_disabled
	if v == nil {
		return
	}
	return *v, true
}

// OldHaDisabled returns the old "ha_disabled" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldHaDisabled(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHaDisabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHaDisabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHaDisabled: %w", err)
	}
	return oldValue.HaDisabled, nil
}

// ClearHaDisabled clears the value of the "ha_disabled" field.
func (m *ProposalMutation) ClearHaDisabled() {
	m.ha_disabled = nil
	m.clearedFields[proposal.FieldHaDisabled] = struct{}{}
}

// HaDisabledCleared returns if the "ha_disabled" field was cleared in this mutation.
func (m *ProposalMutation) HaDisabledCleared() bool {
	_, ok := m.clearedFields[proposal.FieldHaDisabled]
	return ok
}

// ResetHaDisabled resets all changes to the "ha_disabled" field.
func (m *ProposalMutation) ResetHaDisabled() {
	m.ha_disabled = nil
	delete(m.clearedFields, proposal.FieldHaDisabled)
}

// SetHaError sets the "ha_error" field.
func (m *ProposalMutation) SetHaError(s string) {
	m.ha_error = &s
}

// HaError returns the value of the "ha_error" field in the mutation.
func (m *ProposalMutation) HaError() (r string, exists bool) {
	v := m.ha_error
	if v == nil {
		return
	}
	return *v, true
}

// OldHaError returns the old "ha_error" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldHaError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHaError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHaError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHaError: %w", err)
	}
	return oldValue.HaError, nil
}

// ClearHaError clears the value of the "ha_error" field.
func (m *ProposalMutation) ClearHaError() {
	m.ha_error = nil
	m.clearedFields[proposal.FieldHaError] = struct{}{}
}

// HaErrorCleared returns if the "ha_error" field was cleared in this mutation.
func (m *ProposalMutation) HaErrorCleared() bool {
	_, ok := m.clearedFields[proposal.FieldHaError]
	return ok
}

// ResetHaError resets all changes to the "ha_error" field.
func (m *ProposalMutation) ResetHaError() {
	m.ha_error = nil
	delete(m.clearedFields, proposal.FieldHaError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProposedAt sets the "proposed_at" field.
func (m *ProposalMutation) SetProposedAt(t time.Time) {
	m.proposed_at = &t
}

// ProposedAt returns the value of the "proposed_at" field in the mutation.
func (m *ProposalMutation) ProposedAt() (r time.Time, exists bool) {
	v := m.proposed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedAt returns the old "proposed_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldProposedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedAt: %w", err)
	}
	return oldValue.ProposedAt, nil
}

// ClearProposedAt clears the value of the "proposed_at" field.
func (m *ProposalMutation) ClearProposedAt() {
	m.proposed_at = nil
	m.clearedFields[proposal.FieldProposedAt] = struct{}{}
}

// ProposedAtCleared returns if the "proposed_at" field was cleared in this mutation.
func (m *ProposalMutation) ProposedAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldProposedAt]
	return ok
}

// ResetProposedAt resets all changes to the "proposed_at" field.
func (m *ProposalMutation) ResetProposedAt() {
	m.proposed_at = nil
	delete(m.clearedFields, proposal.FieldProposedAt)
}

// SetApprovedAt sets the "approved_at" field.
func (m *ProposalMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *ProposalMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *ProposalMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[proposal.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *ProposalMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *ProposalMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, proposal.FieldApprovedAt)
}

// SetRejectedAt sets the "rejected_at" field.
func (m *ProposalMutation) SetRejectedAt(t time.Time) {
	m.rejected_at = &t
}

// RejectedAt returns the value of the "rejected_at" field in the mutation.
func (m *ProposalMutation) RejectedAt() (r time.Time, exists bool) {
	v := m.rejected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedAt returns the old "rejected_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldRejectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedAt: %w", err)
	}
	return oldValue.RejectedAt, nil
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (m *ProposalMutation) ClearRejectedAt() {
	m.rejected_at = nil
	m.clearedFields[proposal.FieldRejectedAt] = struct{}{}
}

// RejectedAtCleared returns if the "rejected_at" field was cleared in this mutation.
func (m *ProposalMutation) RejectedAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldRejectedAt]
	return ok
}

// ResetRejectedAt resets all changes to the "rejected_at" field.
func (m *ProposalMutation) ResetRejectedAt() {
	m.rejected_at = nil
	delete(m.clearedFields, proposal.FieldRejectedAt)
}

// SetDeployedAt sets the "deployed_at" field.
func (m *ProposalMutation) SetDeployedAt(t time.Time) {
	m.deployed_at = &t
}

// DeployedAt returns the value of the "deployed_at" field in the mutation.
func (m *ProposalMutation) DeployedAt() (r time.Time, exists bool) {
	v := m.deployed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployedAt returns the old "deployed_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldDeployedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployedAt: %w", err)
	}
	return oldValue.DeployedAt, nil
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (m *ProposalMutation) ClearDeployedAt() {
	m.deployed_at = nil
	m.clearedFields[proposal.FieldDeployedAt] = struct{}{}
}

// DeployedAtCleared returns if the "deployed_at" field was cleared in this mutation.
func (m *ProposalMutation) DeployedAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldDeployedAt]
	return ok
}

// ResetDeployedAt resets all changes to the "deployed_at" field.
func (m *ProposalMutation) ResetDeployedAt() {
	m.deployed_at = nil
	delete(m.clearedFields, proposal.FieldDeployedAt)
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (m *ProposalMutation) SetRolledBackAt(t time.Time) {
	m.rolled_back_at = &t
}

// RolledBackAt returns the value of the "rolled_back_at" field in the mutation.
func (m *ProposalMutation) RolledBackAt() (r time.Time, exists bool) {
	v := m.rolled_back_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRolledBackAt returns the old "rolled_back_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldRolledBackAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRolledBackAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRolledBackAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRolledBackAt: %w", err)
	}
	return oldValue.RolledBackAt, nil
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (m *ProposalMutation) ClearRolledBackAt() {
	m.rolled_back_at = nil
	m.clearedFields[proposal.FieldRolledBackAt] = struct{}{}
}

// RolledBackAtCleared returns if the "rolled_back_at" field was cleared in this mutation.
func (m *ProposalMutation) RolledBackAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldRolledBackAt]
	return ok
}

// ResetRolledBackAt resets all changes to the "rolled_back_at" field.
func (m *ProposalMutation) ResetRolledBackAt() {
	m.rolled_back_at = nil
	delete(m.clearedFields, proposal.FieldRolledBackAt)
}

// SetArchivedAt sets the "archived_at" field.
func (m *ProposalMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *ProposalMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *ProposalMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[proposal.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *ProposalMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *ProposalMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, proposal.FieldArchivedAt)
}

// Where appends a list predicates to the ProposalMutation builder.
func (m *ProposalMutation) Where(ps ...predicate.Proposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Proposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Proposal).
func (m *ProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.conversation_id != nil {
		fields = append(fields, proposal.FieldConversationID)
	}
	if m.kind != nil {
		fields = append(fields, proposal.FieldKind)
	}
	if m.body != nil {
		fields = append(fields, proposal.FieldBody)
	}
	if m.status != nil {
		fields = append(fields, proposal.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, proposal.FieldTitle)
	}
	if m.ha_automation_id != nil {
		fields = append(fields, proposal.FieldHaAutomationID)
	}
	if m.approved_by != nil {
		fields = append(fields, proposal.FieldApprovedBy)
	}
	if m.rejection_reason != nil {
		fields = append(fields, proposal.FieldRejectionReason)
	}
	if m.original_yaml != nil {
		fields = append(fields, proposal.FieldOriginalYaml)
	}
	if m.review_notes != nil {
		fields = append(fields, proposal.FieldReviewNotes)
	}
	if m.ha_disabled != nil {
		fields = append(fields, proposal.FieldHaDisabled)
	}
	if m.ha_error != nil {
		fields = append(fields, proposal.FieldHaError)
	}
	if m.created_at != nil {
		fields = append(fields, proposal.FieldCreatedAt)
	}
	if m.proposed_at != nil {
		fields = append(fields, proposal.FieldProposedAt)
	}
	if m.approved_at != nil {
		fields = append(fields, proposal.FieldApprovedAt)
	}
	if m.rejected_at != nil {
		fields = append(fields, proposal.FieldRejectedAt)
	}
	if m.deployed_at != nil {
		fields = append(fields, proposal.FieldDeployedAt)
	}
	if m.rolled_back_at != nil {
		fields = append(fields, proposal.FieldRolledBackAt)
	}
	if m.archived_at != nil {
		fields = append(fields, proposal.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldConversationID:
		return m.ConversationID()
	case proposal.FieldKind:
		return m.Kind()
	case proposal.FieldBody:
		return m.Body()
	case proposal.FieldStatus:
		return m.Status()
	case proposal.FieldTitle:
		return m.Title()
	case proposal.FieldHaAutomationID:
		return m.HaAutomationID()
	case proposal.FieldApprovedBy:
		return m.ApprovedBy()
	case proposal.FieldRejectionReason:
		return m.RejectionReason()
	case proposal.FieldOriginalYaml:
		return m.OriginalYaml()
	case proposal.FieldReviewNotes:
		return m.ReviewNotes()
	case proposal.FieldHaDisabled:
		return m.HaDisabled()
	case proposal.FieldHaError:
		return m.HaError()
	case proposal.FieldCreatedAt:
		return m.CreatedAt()
	case proposal.FieldProposedAt:
		return m.ProposedAt()
	case proposal.FieldApprovedAt:
		return m.ApprovedAt()
	case proposal.FieldRejectedAt:
		return m.RejectedAt()
	case proposal.FieldDeployedAt:
		return m.DeployedAt()
	case proposal.FieldRolledBackAt:
		return m.RolledBackAt()
	case proposal.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposal.FieldConversationID:
		return m.OldConversationID(ctx)
	case proposal.FieldKind:
		return m.OldKind(ctx)
	case proposal.FieldBody:
		return m.OldBody(ctx)
	case proposal.FieldStatus:
		return m.OldStatus(ctx)
	case proposal.FieldTitle:
		return m.OldTitle(ctx)
	case proposal.FieldHaAutomationID:
		return m.OldHaAutomationID(ctx)
	case proposal.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case proposal.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case proposal.FieldOriginalYaml:
		return m.OldOriginalYaml(ctx)
	case proposal.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case proposal.FieldHaDisabled:
		return m.OldHaDisabled(ctx)
	case proposal.FieldHaError:
		return m.OldHaError(ctx)
	case proposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case proposal.FieldProposedAt:
		return m.OldProposedAt(ctx)
	case proposal.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case proposal.FieldRejectedAt:
		return m.OldRejectedAt(ctx)
	case proposal.FieldDeployedAt:
		return m.OldDeployedAt(ctx)
	case proposal.FieldRolledBackAt:
		return m.OldRolledBackAt(ctx)
	case proposal.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Proposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case proposal.FieldKind:
		v, ok := value.(proposal.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case proposal.FieldBody:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case proposal.FieldStatus:
		v, ok := value.(proposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case proposal.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case proposal.FieldHaAutomationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHaAutomationID(v)
		return nil
	case proposal.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case proposal.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case proposal.FieldOriginalYaml:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalYaml(v)
		return nil
	case proposal.FieldReviewNotes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case proposal.FieldHaDisabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHaDisabled(v)
		return nil
	case proposal.FieldHaError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHaError(v)
		return nil
	case proposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case proposal.FieldProposedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedAt(v)
		return nil
	case proposal.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case proposal.FieldRejectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedAt(v)
		return nil
	case proposal.FieldDeployedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployedAt(v)
		return nil
	case proposal.FieldRolledBackAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRolledBackAt(v)
		return nil
	case proposal.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Proposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proposal.FieldConversationID) {
		fields = append(fields, proposal.FieldConversationID)
	}
	if m.FieldCleared(proposal.FieldTitle) {
		fields = append(fields, proposal.FieldTitle)
	}
	if m.FieldCleared(proposal.FieldHaAutomationID) {
		fields = append(fields, proposal.FieldHaAutomationID)
	}
	if m.FieldCleared(proposal.FieldApprovedBy) {
		fields = append(fields, proposal.FieldApprovedBy)
	}
	if m.FieldCleared(proposal.FieldRejectionReason) {
		fields = append(fields, proposal.FieldRejectionReason)
	}
	if m.FieldCleared(proposal.FieldOriginalYaml) {
		fields = append(fields, proposal.FieldOriginalYaml)
	}
	if m.FieldCleared(proposal.FieldReviewNotes) {
		fields = append(fields, proposal.FieldReviewNotes)
	}
	if m.FieldCleared(proposal.FieldHaDisabled) {
		fields = append(fields, proposal.FieldHaDisabled)
	}
	if m.FieldCleared(proposal.FieldHaError) {
		fields = append(fields, proposal.FieldHaError)
	}
	if m.FieldCleared(proposal.FieldProposedAt) {
		fields = append(fields, proposal.FieldProposedAt)
	}
	if m.FieldCleared(proposal.FieldApprovedAt) {
		fields = append(fields, proposal.FieldApprovedAt)
	}
	if m.FieldCleared(proposal.FieldRejectedAt) {
		fields = append(fields, proposal.FieldRejectedAt)
	}
	if m.FieldCleared(proposal.FieldDeployedAt) {
		fields = append(fields, proposal.FieldDeployedAt)
	}
	if m.FieldCleared(proposal.FieldRolledBackAt) {
		fields = append(fields, proposal.FieldRolledBackAt)
	}
	if m.FieldCleared(proposal.FieldArchivedAt) {
		fields = append(fields, proposal.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalMutation) ClearField(name string) error {
	switch name {
	case proposal.FieldConversationID:
		m.ClearConversationID()
		return nil
	case proposal.FieldTitle:
		m.ClearTitle()
		return nil
	case proposal.FieldHaAutomationID:
		m.ClearHaAutomationID()
		return nil
	case proposal.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case proposal.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	case proposal.FieldOriginalYaml:
		m.ClearOriginalYaml()
		return nil
	case proposal.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	case proposal.FieldHaDisabled:
		m.ClearHaDisabled()
		return nil
	case proposal.FieldHaError:
		m.ClearHaError()
		return nil
	case proposal.FieldProposedAt:
		m.ClearProposedAt()
		return nil
	case proposal.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case proposal.FieldRejectedAt:
		m.ClearRejectedAt()
		return nil
	case proposal.FieldDeployedAt:
		m.ClearDeployedAt()
		return nil
	case proposal.FieldRolledBackAt:
		m.ClearRolledBackAt()
		return nil
	case proposal.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalMutation) ResetField(name string) error {
	switch name {
	case proposal.FieldConversationID:
		m.ResetConversationID()
		return nil
	case proposal.FieldKind:
		m.ResetKind()
		return nil
	case proposal.FieldBody:
		m.ResetBody()
		return nil
	case proposal.FieldStatus:
		m.ResetStatus()
		return nil
	case proposal.FieldTitle:
		m.ResetTitle()
		return nil
	case proposal.FieldHaAutomationID:
		m.ResetHaAutomationID()
		return nil
	case proposal.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case proposal.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case proposal.FieldOriginalYaml:
		m.ResetOriginalYaml()
		return nil
	case proposal.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case proposal.FieldHaDisabled:
		m.ResetHaDisabled()
		return nil
	case proposal.FieldHaError:
		m.ResetHaError()
		return nil
	case proposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case proposal.FieldProposedAt:
		m.ResetProposedAt()
		return nil
	case proposal.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case proposal.FieldRejectedAt:
		m.ResetRejectedAt()
		return nil
	case proposal.FieldDeployedAt:
		m.ResetDeployedAt()
		return nil
	case proposal.FieldRolledBackAt:
		m.ResetRolledBackAt()
		return nil
	case proposal.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Proposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Proposal edge %s", name)
}
