package trace

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entinsight "github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/pkg/services"
	testdb "github.com/aether-home/aether/test/database"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Regexp(t, `^tr-[0-9a-f-]{36}$`, a)
	assert.NotEqual(t, a, b)
}

func TestEvaluator_Run(t *testing.T) {
	client := testdb.NewTestClient(t)
	usage := services.NewUsageService(client.Client)
	insights := services.NewInsightService(client.Client)
	evaluator := NewEvaluator(usage, insights, slog.Default())
	ctx := context.Background()

	span := func(traceID string, isErr bool) {
		t.Helper()
		err := usage.Record(ctx, services.UsageRecord{
			TraceID:          traceID,
			AgentName:        "architect",
			Model:            "test-model",
			PromptTokens:     200,
			CompletionTokens: 50,
			Latency:          100 * time.Millisecond,
			IsError:          isErr,
		})
		require.NoError(t, err)
	}

	healthInsights := func(t *testing.T) int {
		t.Helper()
		items, err := insights.List(ctx, services.ListFilter{Category: "system_health"})
		require.NoError(t, err)
		return len(items)
	}

	t.Run("no traces is a no-op", func(t *testing.T) {
		evaluator.Run(ctx)
		assert.Zero(t, healthInsights(t))
	})

	t.Run("healthy traffic raises nothing", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			span(fmt.Sprintf("tr-ok-%d", i), i == 0)
		}
		evaluator.Run(ctx)
		assert.Zero(t, healthInsights(t), "one errored trace in ten is below the alert threshold")
	})

	t.Run("sustained error rate surfaces an insight", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			span(fmt.Sprintf("tr-bad-%d", i), true)
		}
		evaluator.Run(ctx)
		require.Equal(t, 1, healthInsights(t))

		items, err := insights.List(ctx, services.ListFilter{Category: "system_health"})
		require.NoError(t, err)
		assert.Equal(t, "Elevated LLM error rate", items[0].Title)
		assert.Equal(t, entinsight.ImpactHigh, items[0].Impact)
		assert.Equal(t, entinsight.StatusPending, items[0].Status)
	})
}
