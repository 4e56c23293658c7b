package scheduler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entschedule "github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/pkg/config"
	"github.com/aether-home/aether/pkg/ha"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
	testdb "github.com/aether-home/aether/test/database"
)

func TestDiscoveryJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	entities := services.NewEntityService(client.Client)
	ctx := context.Background()

	// An entity the controller no longer reports.
	err := entities.UpsertBatch(ctx, []models.EntitySnapshot{{EntityID: "light.removed", State: "off"}})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"entity_id": "light.porch", "state": "on"},
			{"entity_id": "sensor.kitchen_temp", "state": "21.4"},
		})
	}))
	defer server.Close()
	haClient := ha.NewClient(ha.Config{BaseURL: server.URL, Timeout: 5 * time.Second})

	DiscoveryJob(haClient, entities, slog.Default())(ctx)

	n, err := entities.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "stale entities are purged after a sync")
	_, err = entities.Get(ctx, "light.porch")
	assert.NoError(t, err)
	_, err = entities.Get(ctx, "light.removed")
	assert.Equal(t, services.ErrNotFound, err)
}

func TestRetentionJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	conversations := services.NewConversationService(client.Client)
	ctx := context.Background()

	stale, err := conversations.Create(ctx, models.CreateConversationRequest{UserID: "alice"})
	require.NoError(t, err)
	err = client.Conversation.UpdateOneID(stale.ID).
		SetUpdatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	fresh, err := conversations.Create(ctx, models.CreateConversationRequest{UserID: "alice"})
	require.NoError(t, err)

	cfg := &config.Config{
		UsageRetentionDays:        30,
		ReportRetentionDays:       90,
		InsightRetentionDays:      90,
		ConversationRetentionDays: 365,
	}
	RetentionJob(cfg, conversations,
		services.NewInsightService(client.Client),
		services.NewReportService(client.Client),
		services.NewUsageService(client.Client),
		slog.Default())(ctx)

	_, err = conversations.Get(ctx, stale.ID)
	assert.Equal(t, services.ErrNotFound, err)
	_, err = conversations.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestScheduleSyncJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	schedules := services.NewScheduleService(client.Client)
	ctx := context.Background()

	s := New(time.UTC, time.Second, slog.Default())
	t.Cleanup(s.Stop)
	sync := ScheduleSyncJob(s, schedules, nil, slog.Default())

	nightly, err := schedules.Create(ctx, models.CreateScheduleRequest{
		Label:          "nightly energy",
		AnalysisType:   "energy",
		Trigger:        entschedule.TriggerCron,
		CronExpression: "0 2 * * *",
	})
	require.NoError(t, err)

	disabled := false
	_, err = schedules.Create(ctx, models.CreateScheduleRequest{
		Label:          "paused analysis",
		AnalysisType:   "comfort",
		Trigger:        entschedule.TriggerCron,
		CronExpression: "0 4 * * *",
		Enabled:        &disabled,
	})
	require.NoError(t, err)

	sync(ctx)
	assert.ElementsMatch(t, []string{"insight_schedule:" + nightly.ID}, s.JobIDs(),
		"only enabled cron schedules get a job")

	// Deleting the schedule removes its job on the next sync.
	require.NoError(t, schedules.Delete(ctx, nightly.ID))
	sync(ctx)
	assert.Empty(t, s.JobIDs())
}

func TestRegisterSystemJobs_InitialSync(t *testing.T) {
	client := testdb.NewTestClient(t)
	schedules := services.NewScheduleService(client.Client)
	ctx := context.Background()

	nightly, err := schedules.Create(ctx, models.CreateScheduleRequest{
		Label:          "nightly energy",
		AnalysisType:   "energy",
		Trigger:        entschedule.TriggerCron,
		CronExpression: "0 2 * * *",
	})
	require.NoError(t, err)

	s := New(time.UTC, time.Second, slog.Default())
	t.Cleanup(s.Stop)

	err = RegisterSystemJobs(s, &config.Config{}, nil,
		services.NewEntityService(client.Client),
		services.NewConversationService(client.Client),
		services.NewInsightService(client.Client),
		services.NewReportService(client.Client),
		services.NewUsageService(client.Client),
		schedules, nil, nil, slog.Default())
	require.NoError(t, err)

	// @every specs only fire after a full interval, so the per-schedule
	// job must already be there.
	assert.Contains(t, s.JobIDs(), insightJobPrefix+nightly.ID,
		"registration reconciles schedules immediately")
}
