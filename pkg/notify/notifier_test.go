package notify

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-home/aether/ent"
	entinsight "github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/pkg/services"
	testdb "github.com/aether-home/aether/test/database"
)

// recordingSender captures delivered notifications.
type recordingSender struct {
	calls []map[string]interface{}
	err   error
}

func (r *recordingSender) CallService(_ context.Context, domain, service string, data map[string]interface{}) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, data)
	return nil
}

func insightWith(title string, impact entinsight.Impact) *ent.Insight {
	return &ent.Insight{Title: title, Description: title + " detail", Impact: impact}
}

func TestInsightNotifier_NotifyRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	newNotifier := func(sender Sender) (*InsightNotifier, *services.SettingsService) {
		settings := services.NewSettingsService(client.Client)
		return New(sender, settings, slog.Default()), settings
	}

	t.Run("single insight keeps its own title and links back", func(t *testing.T) {
		sender := &recordingSender{}
		n, _ := newNotifier(sender)

		ins := insightWith("Fridge door sensor flapping", entinsight.ImpactCritical)
		ins.ID = "ins-123"
		n.NotifyRun(ctx, "nightly energy", []*ent.Insight{ins})

		require.Len(t, sender.calls, 1)
		assert.Equal(t, "Fridge door sensor flapping", sender.calls[0]["title"])
		data, ok := sender.calls[0]["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "ins-123", data["insight_id"])
	})

	t.Run("several insights aggregate", func(t *testing.T) {
		sender := &recordingSender{}
		n, _ := newNotifier(sender)

		n.NotifyRun(ctx, "nightly energy", []*ent.Insight{
			insightWith("Finding one", entinsight.ImpactHigh),
			insightWith("Finding two", entinsight.ImpactCritical),
		})

		require.Len(t, sender.calls, 1)
		assert.Equal(t, "nightly energy: 2 new insights", sender.calls[0]["title"])
		assert.Contains(t, sender.calls[0]["message"], "Finding one")
	})

	t.Run("low impact insights are filtered out", func(t *testing.T) {
		sender := &recordingSender{}
		n, _ := newNotifier(sender)

		n.NotifyRun(ctx, "nightly energy", []*ent.Insight{
			insightWith("Minor drift", entinsight.ImpactLow),
			insightWith("Mild drift", entinsight.ImpactMedium),
		})
		assert.Empty(t, sender.calls, "default min impact is high")
	})

	t.Run("disabled notifications suppress delivery", func(t *testing.T) {
		sender := &recordingSender{}
		n, settings := newNotifier(sender)
		_, err := settings.UpdateSection(ctx, "notifications", map[string]interface{}{"enabled": false})
		require.NoError(t, err)

		n.NotifyRun(ctx, "nightly energy", []*ent.Insight{
			insightWith("Important", entinsight.ImpactCritical),
		})
		assert.Empty(t, sender.calls)

		_, err = settings.UpdateSection(ctx, "notifications", map[string]interface{}{"enabled": true})
		require.NoError(t, err)
	})

	t.Run("quiet hours suppress delivery", func(t *testing.T) {
		sender := &recordingSender{}
		n, settings := newNotifier(sender)
		_, err := settings.UpdateSection(ctx, "notifications", map[string]interface{}{
			"quiet_hours_start": "22:00",
			"quiet_hours_end":   "07:00",
		})
		require.NoError(t, err)

		n.now = func() time.Time { return time.Date(2026, 8, 24, 23, 30, 0, 0, time.UTC) }
		n.NotifyRun(ctx, "nightly energy", []*ent.Insight{
			insightWith("Important", entinsight.ImpactCritical),
		})
		assert.Empty(t, sender.calls)

		n.now = func() time.Time { return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) }
		n.NotifyRun(ctx, "nightly energy", []*ent.Insight{
			insightWith("Important", entinsight.ImpactCritical),
		})
		assert.Len(t, sender.calls, 1)

		_, err = settings.UpdateSection(ctx, "notifications", map[string]interface{}{
			"quiet_hours_start": "",
			"quiet_hours_end":   "",
		})
		require.NoError(t, err)
	})

	t.Run("delivery failure is swallowed", func(t *testing.T) {
		sender := &recordingSender{err: assert.AnError}
		n, _ := newNotifier(sender)

		assert.NotPanics(t, func() {
			n.NotifyRun(ctx, "nightly energy", []*ent.Insight{
				insightWith("Important", entinsight.ImpactCritical),
			})
		})
	})

	t.Run("nil notifier and empty runs are no-ops", func(t *testing.T) {
		var n *InsightNotifier
		assert.NotPanics(t, func() { n.NotifyRun(ctx, "x", []*ent.Insight{insightWith("a", entinsight.ImpactHigh)}) })

		sender := &recordingSender{}
		n2, _ := newNotifier(sender)
		n2.NotifyRun(ctx, "x", nil)
		assert.Empty(t, sender.calls)
	})

	t.Run("aggregate carries no deep link", func(t *testing.T) {
		sender := &recordingSender{}
		n, _ := newNotifier(sender)

		n.NotifyRun(ctx, "nightly energy", []*ent.Insight{
			insightWith("Finding one", entinsight.ImpactHigh),
			insightWith("Finding two", entinsight.ImpactCritical),
		})
		require.Len(t, sender.calls, 1)
		assert.NotContains(t, sender.calls[0], "data")
	})
}

func TestFilterByImpact(t *testing.T) {
	insights := []*ent.Insight{
		insightWith("low", entinsight.ImpactLow),
		insightWith("medium", entinsight.ImpactMedium),
		insightWith("high", entinsight.ImpactHigh),
		insightWith("critical", entinsight.ImpactCritical),
	}

	assert.Len(t, filterByImpact(insights, "low"), 4)
	assert.Len(t, filterByImpact(insights, "medium"), 3)
	assert.Len(t, filterByImpact(insights, "high"), 2)
	assert.Len(t, filterByImpact(insights, "critical"), 1)
	assert.Len(t, filterByImpact(insights, "bogus"), 2, "unknown threshold behaves as high")
}

func TestSummarize(t *testing.T) {
	var insights []*ent.Insight
	for _, title := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		insights = append(insights, insightWith(title, entinsight.ImpactHigh))
	}
	msg := summarize(insights)
	assert.Contains(t, msg, "• a")
	assert.Contains(t, msg, "• e")
	assert.NotContains(t, msg, "• f", "summary caps at five titles")
	assert.Contains(t, msg, "and 2 more")
}

func TestInQuietHours(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2026, 8, 24, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		now        time.Time
		start, end string
		want       bool
	}{
		{"inside a same-day window", at(13, 0), "12:00", "14:00", true},
		{"outside a same-day window", at(15, 0), "12:00", "14:00", false},
		{"window start is inclusive", at(12, 0), "12:00", "14:00", true},
		{"window end is exclusive", at(14, 0), "12:00", "14:00", false},
		{"wrapped window, late evening", at(23, 30), "22:00", "07:00", true},
		{"wrapped window, early morning", at(6, 59), "22:00", "07:00", true},
		{"wrapped window, daytime", at(12, 0), "22:00", "07:00", false},
		{"empty window never matches", at(12, 0), "", "", false},
		{"equal start and end never matches", at(12, 0), "12:00", "12:00", false},
		{"malformed times never match", at(12, 0), "noon", "14:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inQuietHours(tt.now, tt.start, tt.end))
		})
	}
}
