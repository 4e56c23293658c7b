package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entinsight "github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/pkg/models"
	testdb "github.com/aether-home/aether/test/database"
)

func TestInsightService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInsightService(client.Client)
	ctx := context.Background()

	t.Run("creates pending", func(t *testing.T) {
		ins, err := service.Create(ctx, models.CreateInsightRequest{
			Category:    "energy",
			Title:       "Heating overlaps with open windows",
			Description: "The bedroom radiator runs while the window sensor reports open.",
			Confidence:  0.82,
			Impact:      entinsight.ImpactHigh,
			EntityIDs:   []string{"climate.bedroom", "binary_sensor.bedroom_window"},
		})
		require.NoError(t, err)
		assert.Equal(t, entinsight.StatusPending, ins.Status)
		assert.Equal(t, entinsight.ImpactHigh, ins.Impact)
		assert.InDelta(t, 0.82, ins.Confidence, 0.001)
	})

	t.Run("requires a title", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateInsightRequest{Category: "energy", Confidence: 0.5, Impact: entinsight.ImpactLow})
		assert.True(t, IsValidationError(err))
	})

	t.Run("bounds confidence", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateInsightRequest{Title: "x", Confidence: 1.2, Impact: entinsight.ImpactLow})
		assert.True(t, IsValidationError(err))
	})
}

func TestInsightService_ListAndStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInsightService(client.Client)
	ctx := context.Background()

	mk := func(category string, impact entinsight.Impact, scheduleID string) string {
		t.Helper()
		ins, err := service.Create(ctx, models.CreateInsightRequest{
			Category:   category,
			Title:      category + " finding",
			Confidence: 0.5,
			Impact:     impact,
			ScheduleID: scheduleID,
		})
		require.NoError(t, err)
		return ins.ID
	}

	energyID := mk("energy", entinsight.ImpactHigh, "sched-1")
	mk("comfort", entinsight.ImpactLow, "sched-1")
	mk("security", entinsight.ImpactCritical, "sched-2")

	t.Run("filters by category", func(t *testing.T) {
		items, err := service.List(ctx, ListFilter{Category: "energy"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, energyID, items[0].ID)
	})

	t.Run("filters by impact and schedule", func(t *testing.T) {
		items, err := service.List(ctx, ListFilter{Impact: entinsight.ImpactLow, ScheduleID: "sched-1"})
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("updates review status", func(t *testing.T) {
		ins, err := service.UpdateStatus(ctx, energyID, entinsight.StatusDismissed)
		require.NoError(t, err)
		assert.Equal(t, entinsight.StatusDismissed, ins.Status)

		_, err = service.UpdateStatus(ctx, "missing", entinsight.StatusReviewed)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("created since scopes to one schedule", func(t *testing.T) {
		items, err := service.CreatedSince(ctx, "sched-2", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.Len(t, items, 1)

		items, err = service.CreatedSince(ctx, "sched-2", time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestInsightService_PurgeResolvedOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInsightService(client.Client)
	ctx := context.Background()

	// created_at is immutable, so aged rows are seeded directly.
	mkAged := func(title string, status entinsight.Status) string {
		ins, err := client.Insight.Create().
			SetID(uuid.New().String()).
			SetCategory("energy").
			SetTitle(title).
			SetDescription("seed").
			SetConfidence(0.5).
			SetImpact(entinsight.ImpactLow).
			SetStatus(status).
			SetCreatedAt(time.Now().Add(-100 * 24 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)
		return ins.ID
	}

	dismissedID := mkAged("old dismissed", entinsight.StatusDismissed)
	pendingID := mkAged("old pending", entinsight.StatusPending)

	n, err := service.PurgeResolvedOlderThan(ctx, time.Now().Add(-90*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.Get(ctx, dismissedID)
	assert.Equal(t, ErrNotFound, err)
	_, err = service.Get(ctx, pendingID)
	assert.NoError(t, err, "pending insights are never purged")
}
