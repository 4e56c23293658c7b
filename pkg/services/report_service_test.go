package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entreport "github.com/aether-home/aether/ent/analysisreport"
	"github.com/aether-home/aether/pkg/models"
	testdb "github.com/aether-home/aether/test/database"
)

func TestReportService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReportService(client.Client)
	ctx := context.Background()

	mk := func() string {
		r, err := service.Create(ctx, models.CreateReportRequest{
			Title:        "Weekly energy analysis",
			AnalysisType: "energy",
			Depth:        entreport.DepthStandard,
			Strategy:     entreport.StrategyParallel,
		})
		require.NoError(t, err)
		assert.Equal(t, entreport.StatusRunning, r.Status)
		return r.ID
	}

	t.Run("requires an analysis type", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateReportRequest{Title: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("completes a running report", func(t *testing.T) {
		id := mk()
		r, err := service.Complete(ctx, id, models.CompleteReportRequest{
			Summary:    "Standby draw dropped 12% after the media center change.",
			InsightIDs: []string{"ins-1", "ins-2"},
		})
		require.NoError(t, err)
		assert.Equal(t, entreport.StatusCompleted, r.Status)
		require.NotNil(t, r.Summary)
		assert.Contains(t, *r.Summary, "Standby draw")
		assert.NotNil(t, r.CompletedAt)
	})

	t.Run("fails a running report", func(t *testing.T) {
		id := mk()
		r, err := service.Fail(ctx, id, "llm unavailable")
		require.NoError(t, err)
		assert.Equal(t, entreport.StatusFailed, r.Status)
	})

	t.Run("terminates exactly once", func(t *testing.T) {
		id := mk()
		_, err := service.Complete(ctx, id, models.CompleteReportRequest{Summary: "done"})
		require.NoError(t, err)

		_, err = service.Complete(ctx, id, models.CompleteReportRequest{Summary: "again"})
		assert.True(t, IsStateConflict(err))
		_, err = service.Fail(ctx, id, "late failure")
		assert.True(t, IsStateConflict(err))
	})

	t.Run("lists by status", func(t *testing.T) {
		running, err := service.List(ctx, entreport.StatusRunning, 0)
		require.NoError(t, err)
		for _, r := range running {
			assert.Equal(t, entreport.StatusRunning, r.Status)
		}
	})
}
