package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entschedule "github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/pkg/models"
	testdb "github.com/aether-home/aether/test/database"
)

func TestScheduleService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScheduleService(client.Client)
	ctx := context.Background()

	t.Run("creates a cron schedule", func(t *testing.T) {
		sched, err := service.Create(ctx, models.CreateScheduleRequest{
			Label:          "nightly energy review",
			AnalysisType:   "energy",
			Trigger:        entschedule.TriggerCron,
			CronExpression: "0 4 * * *",
			LookbackHours:  24,
		})
		require.NoError(t, err)
		assert.Equal(t, entschedule.TriggerCron, sched.Trigger)
		require.NotNil(t, sched.CronExpression)
		assert.Equal(t, "0 4 * * *", *sched.CronExpression)
		assert.True(t, sched.Enabled)
	})

	t.Run("defaults to the cron trigger", func(t *testing.T) {
		sched, err := service.Create(ctx, models.CreateScheduleRequest{
			Label:          "hourly comfort check",
			AnalysisType:   "comfort",
			CronExpression: "@hourly",
		})
		require.NoError(t, err)
		assert.Equal(t, entschedule.TriggerCron, sched.Trigger)
	})

	t.Run("creates a webhook schedule with a match filter", func(t *testing.T) {
		sched, err := service.Create(ctx, models.CreateScheduleRequest{
			Label:        "door left open",
			AnalysisType: "security",
			Trigger:      entschedule.TriggerWebhook,
			EventLabel:   "door_watch",
			MatchFilter:  map[string]interface{}{"entity_id": "binary_sensor.*_door", "to_state": "on"},
		})
		require.NoError(t, err)
		require.NotNil(t, sched.EventLabel)
		assert.Equal(t, "door_watch", *sched.EventLabel)
	})

	tests := []struct {
		name string
		req  models.CreateScheduleRequest
	}{
		{"missing label", models.CreateScheduleRequest{AnalysisType: "energy", CronExpression: "@daily"}},
		{"missing analysis type", models.CreateScheduleRequest{Label: "x", CronExpression: "@daily"}},
		{"cron trigger without expression", models.CreateScheduleRequest{Label: "x", AnalysisType: "energy", Trigger: entschedule.TriggerCron}},
		{"invalid cron expression", models.CreateScheduleRequest{Label: "x", AnalysisType: "energy", CronExpression: "every tuesday"}},
		{"cron trigger with event fields", models.CreateScheduleRequest{Label: "x", AnalysisType: "energy", CronExpression: "@daily", EventLabel: "nope"}},
		{"webhook trigger with cron expression", models.CreateScheduleRequest{Label: "x", AnalysisType: "energy", Trigger: entschedule.TriggerWebhook, CronExpression: "@daily"}},
		{"unknown trigger", models.CreateScheduleRequest{Label: "x", AnalysisType: "energy", Trigger: "lunar"}},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestScheduleService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScheduleService(client.Client)
	ctx := context.Background()

	cronSched, err := service.Create(ctx, models.CreateScheduleRequest{
		Label:          "nightly",
		AnalysisType:   "energy",
		CronExpression: "0 4 * * *",
	})
	require.NoError(t, err)

	t.Run("patches only the provided fields", func(t *testing.T) {
		label := "nightly v2"
		expr := "30 4 * * *"
		updated, err := service.Update(ctx, cronSched.ID, models.UpdateScheduleRequest{
			Label:          &label,
			CronExpression: &expr,
		})
		require.NoError(t, err)
		assert.Equal(t, "nightly v2", updated.Label)
		assert.Equal(t, "30 4 * * *", *updated.CronExpression)
		assert.Equal(t, "energy", updated.AnalysisType)
	})

	t.Run("rejects event fields on a cron schedule", func(t *testing.T) {
		label := "boom"
		_, err := service.Update(ctx, cronSched.ID, models.UpdateScheduleRequest{EventLabel: &label})
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates lookback bounds", func(t *testing.T) {
		tooLong := 9000
		_, err := service.Update(ctx, cronSched.ID, models.UpdateScheduleRequest{LookbackHours: &tooLong})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for a missing id", func(t *testing.T) {
		label := "x"
		_, err := service.Update(ctx, "missing", models.UpdateScheduleRequest{Label: &label})
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestScheduleService_ListEnabledCron(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScheduleService(client.Client)
	ctx := context.Background()

	enabled, err := service.Create(ctx, models.CreateScheduleRequest{
		Label: "on", AnalysisType: "energy", CronExpression: "@daily",
	})
	require.NoError(t, err)

	off := false
	_, err = service.Create(ctx, models.CreateScheduleRequest{
		Label: "off", AnalysisType: "energy", CronExpression: "@daily", Enabled: &off,
	})
	require.NoError(t, err)

	_, err = service.Create(ctx, models.CreateScheduleRequest{
		Label: "webhook", AnalysisType: "security", Trigger: entschedule.TriggerWebhook, EventLabel: "w",
	})
	require.NoError(t, err)

	items, err := service.ListEnabledCron(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, enabled.ID, items[0].ID)
}

func TestScheduleService_MatchWebhook(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScheduleService(client.Client)
	ctx := context.Background()

	_, err := service.Create(ctx, models.CreateScheduleRequest{
		Label:        "door watch",
		AnalysisType: "security",
		Trigger:      entschedule.TriggerWebhook,
		EventLabel:   "door_watch",
		MatchFilter:  map[string]interface{}{"entity_id": "binary_sensor.*_door", "to_state": "on"},
	})
	require.NoError(t, err)

	catchAll, err := service.Create(ctx, models.CreateScheduleRequest{
		Label:        "anything",
		AnalysisType: "patterns",
		Trigger:      entschedule.TriggerEvent,
	})
	require.NoError(t, err)

	t.Run("label and filter both match", func(t *testing.T) {
		matches, err := service.MatchWebhook(ctx, "door_watch", "state_changed", "binary_sensor.front_door", "on", "off")
		require.NoError(t, err)
		assert.Len(t, matches, 2, "the labelled schedule and the catch-all")
	})

	t.Run("filter rejects the wrong state", func(t *testing.T) {
		matches, err := service.MatchWebhook(ctx, "door_watch", "state_changed", "binary_sensor.front_door", "off", "on")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, catchAll.ID, matches[0].ID)
	})

	t.Run("label mismatch skips the labelled schedule", func(t *testing.T) {
		matches, err := service.MatchWebhook(ctx, "other_label", "state_changed", "binary_sensor.front_door", "on", "off")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, catchAll.ID, matches[0].ID)
	})
}

func TestScheduleService_RecordRunResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewScheduleService(client.Client)
	ctx := context.Background()

	sched, err := service.Create(ctx, models.CreateScheduleRequest{
		Label: "nightly", AnalysisType: "energy", CronExpression: "@daily",
	})
	require.NoError(t, err)

	err = service.RecordRunResult(ctx, sched.ID, entschedule.LastResultFailed, "llm unavailable")
	require.NoError(t, err)

	got, err := service.Get(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastResult)
	assert.Equal(t, entschedule.LastResultFailed, *got.LastResult)
	require.NotNil(t, got.LastError)
	assert.Equal(t, "llm unavailable", *got.LastError)
	assert.Equal(t, 1, got.RunCount)
	assert.NotNil(t, got.LastRunAt)

	err = service.RecordRunResult(ctx, sched.ID, entschedule.LastResultSuccess, "")
	require.NoError(t, err)

	got, err = service.Get(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastResult)
	assert.Equal(t, entschedule.LastResultSuccess, *got.LastResult)
	assert.Nil(t, got.LastError, "a successful run clears the previous error")
	assert.Equal(t, 2, got.RunCount)
}
