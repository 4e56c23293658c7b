package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/aether-home/aether/test/database"
)

func TestUsageService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client)
	ctx := context.Background()

	seed := func(traceID string, prompt, completion int, isErr bool) {
		t.Helper()
		err := service.Record(ctx, UsageRecord{
			ConversationID:   "conv-1",
			TraceID:          traceID,
			AgentName:        "architect",
			Model:            "test-model",
			PromptTokens:     prompt,
			CompletionTokens: completion,
			Latency:          250 * time.Millisecond,
			IsError:          isErr,
		})
		require.NoError(t, err)
	}

	seed("tr-a", 100, 40, false)
	seed("tr-a", 200, 60, true)
	seed("tr-b", 50, 10, false)

	t.Run("aggregates per trace", func(t *testing.T) {
		stats, err := service.StatsForTrace(ctx, "tr-a")
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Spans)
		assert.Equal(t, 300, stats.PromptTokens)
		assert.Equal(t, 100, stats.CompletionTokens)
		assert.Equal(t, 500, stats.TotalLatencyMs)
		assert.Equal(t, 1, stats.Errors)
	})

	t.Run("empty trace yields zero stats", func(t *testing.T) {
		stats, err := service.StatsForTrace(ctx, "tr-missing")
		require.NoError(t, err)
		assert.Zero(t, stats.Spans)
	})

	t.Run("lists distinct trace ids", func(t *testing.T) {
		ids, err := service.ListTraceIDsSince(ctx, time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"tr-a", "tr-b"}, ids)
	})

	t.Run("defaults the span kind", func(t *testing.T) {
		err := service.Record(ctx, UsageRecord{TraceID: "tr-c"})
		require.NoError(t, err)
		stats, err := service.StatsForTrace(ctx, "tr-c")
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Spans)
	})
}
