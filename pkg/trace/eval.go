package trace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	entinsight "github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
)

// tokenBlowupThreshold flags traces whose total token spend is far
// outside the daily norm.
const tokenBlowupThreshold = 100_000

// Evaluator is the nightly trace quality pass. It walks the last
// day's traces, aggregates their spans, and surfaces systemic
// problems as a pending insight.
type Evaluator struct {
	usage    *services.UsageService
	insights *services.InsightService
	logger   *slog.Logger
}

// NewEvaluator creates an evaluator.
func NewEvaluator(usage *services.UsageService, insights *services.InsightService, logger *slog.Logger) *Evaluator {
	return &Evaluator{usage: usage, insights: insights, logger: logger}
}

// Run evaluates the traces of the last 24 hours.
func (e *Evaluator) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	since := time.Now().Add(-24 * time.Hour)
	traceIDs, err := e.usage.ListTraceIDsSince(ctx, since)
	if err != nil {
		e.logger.Warn("trace evaluation could not list traces", "error", err)
		return
	}
	if len(traceIDs) == 0 {
		e.logger.Info("trace evaluation: nothing to evaluate")
		return
	}

	var errored, blowups int
	var totalTokens int
	for _, traceID := range traceIDs {
		stats, err := e.usage.StatsForTrace(ctx, traceID)
		if err != nil {
			e.logger.Warn("trace evaluation failed for trace", "trace_id", traceID, "error", err)
			continue
		}
		tokens := stats.PromptTokens + stats.CompletionTokens
		totalTokens += tokens
		if stats.Errors > 0 {
			errored++
		}
		if tokens > tokenBlowupThreshold {
			blowups++
			e.logger.Warn("trace token blowup", "trace_id", traceID, "tokens", tokens)
		}
	}

	errorRate := float64(errored) / float64(len(traceIDs))
	e.logger.Info("trace evaluation complete",
		"traces", len(traceIDs),
		"errored", errored,
		"token_blowups", blowups,
		"total_tokens", totalTokens)

	// A sustained error rate is worth a human look; one bad trace is not.
	if len(traceIDs) >= 10 && errorRate > 0.2 {
		_, err := e.insights.Create(ctx, models.CreateInsightRequest{
			Category:    "system_health",
			Title:       "Elevated LLM error rate",
			Description: fmt.Sprintf("%.0f%% of the last %d traces hit LLM errors", errorRate*100, len(traceIDs)),
			Confidence:  1,
			Impact:      entinsight.ImpactHigh,
		})
		if err != nil {
			e.logger.Warn("could not record trace health insight", "error", err)
		}
	}
}
