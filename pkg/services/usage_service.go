package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aether-home/aether/ent"
	entusage "github.com/aether-home/aether/ent/llmusage"
	"github.com/google/uuid"
)

// UsageRecord is one LLM, tool or RPC span to persist.
type UsageRecord struct {
	ConversationID   string
	TraceID          string
	SpanKind         string
	AgentName        string
	Model            string
	PromptTokens     int
	CompletionTokens int
	Latency          time.Duration
	IsError          bool
}

// TraceStats summarises the spans recorded under one trace.
type TraceStats struct {
	TraceID          string `json:"trace_id"`
	Spans            int    `json:"spans"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalLatencyMs   int    `json:"total_latency_ms"`
	Errors           int    `json:"errors"`
}

// UsageService records per-call LLM usage for cost accounting and the
// nightly trace evaluation.
type UsageService struct {
	client *ent.Client
}

// NewUsageService creates a new UsageService.
func NewUsageService(client *ent.Client) *UsageService {
	return &UsageService{client: client}
}

// Record persists one usage span. Recording is best effort from the
// caller's perspective; orchestration never fails on a usage write.
func (s *UsageService) Record(ctx context.Context, rec UsageRecord) error {
	kind := rec.SpanKind
	if kind == "" {
		kind = "llm"
	}
	create := s.client.LLMUsage.Create().
		SetID(uuid.New().String()).
		SetSpanKind(kind).
		SetPromptTokens(rec.PromptTokens).
		SetCompletionTokens(rec.CompletionTokens).
		SetLatencyMs(int(rec.Latency.Milliseconds())).
		SetIsError(rec.IsError)
	if rec.ConversationID != "" {
		create = create.SetConversationID(rec.ConversationID)
	}
	if rec.TraceID != "" {
		create = create.SetTraceID(rec.TraceID)
	}
	if rec.AgentName != "" {
		create = create.SetAgentName(rec.AgentName)
	}
	if rec.Model != "" {
		create = create.SetModel(rec.Model)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// StatsForTrace aggregates the spans recorded under one trace id.
func (s *UsageService) StatsForTrace(httpCtx context.Context, traceID string) (TraceStats, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	spans, err := s.client.LLMUsage.Query().
		Where(entusage.TraceIDEQ(traceID)).
		All(ctx)
	if err != nil {
		return TraceStats{}, fmt.Errorf("failed to query trace usage: %w", err)
	}

	stats := TraceStats{TraceID: traceID, Spans: len(spans)}
	for _, span := range spans {
		stats.PromptTokens += span.PromptTokens
		stats.CompletionTokens += span.CompletionTokens
		stats.TotalLatencyMs += span.LatencyMs
		if span.IsError {
			stats.Errors++
		}
	}
	return stats, nil
}

// ListTraceIDsSince returns the distinct trace ids recorded since the
// given time. The nightly evaluation walks these.
func (s *UsageService) ListTraceIDsSince(ctx context.Context, since time.Time) ([]string, error) {
	var ids []string
	err := s.client.LLMUsage.Query().
		Where(
			entusage.CreatedAtGTE(since),
			entusage.TraceIDNEQ(""),
		).
		Unique(true).
		Select(entusage.FieldTraceID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list trace ids: %w", err)
	}
	return ids, nil
}

// PurgeOlderThan deletes usage rows past the retention cutoff.
func (s *UsageService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.LLMUsage.Delete().
		Where(entusage.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge usage rows: %w", err)
	}
	return n, nil
}
