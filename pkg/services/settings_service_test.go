package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/aether-home/aether/test/database"
)

func TestSettingsService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSettingsService(client.Client)
	ctx := context.Background()

	t.Run("serves defaults from an empty database", func(t *testing.T) {
		all, err := service.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 900, all["chat"]["stream_timeout_seconds"])
		assert.Equal(t, "auto", all["chat"]["default_agent"])
		assert.Equal(t, true, all["notifications"]["enabled"])
		assert.Equal(t, "high", all["notifications"]["min_impact"])
		assert.Equal(t, "parallel", all["data_science"]["default_strategy"])
	})

	t.Run("merges stored overrides over defaults", func(t *testing.T) {
		_, err := service.UpdateSection(ctx, "chat", map[string]interface{}{
			"tool_timeout_seconds": 60,
		})
		require.NoError(t, err)

		all, err := service.Get(ctx)
		require.NoError(t, err)
		// JSON columns come back with float64 numbers.
		assert.EqualValues(t, 60, all["chat"]["tool_timeout_seconds"])
		assert.EqualValues(t, 900, all["chat"]["stream_timeout_seconds"], "untouched keys keep their defaults")
	})
}

func TestSettingsService_UpdateSection(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSettingsService(client.Client)
	ctx := context.Background()

	t.Run("clamps out-of-range numbers", func(t *testing.T) {
		sec, err := service.UpdateSection(ctx, "chat", map[string]interface{}{
			"stream_timeout_seconds": 999999,
			"tool_timeout_seconds":   1,
		})
		require.NoError(t, err)
		assert.Equal(t, 3600, sec["stream_timeout_seconds"])
		assert.Equal(t, 5, sec["tool_timeout_seconds"])
	})

	t.Run("accepts JSON float numbers", func(t *testing.T) {
		sec, err := service.UpdateSection(ctx, "dashboard", map[string]interface{}{
			"refresh_seconds": float64(15),
		})
		require.NoError(t, err)
		assert.Equal(t, 15, sec["refresh_seconds"])
	})

	t.Run("rejects an unknown section", func(t *testing.T) {
		_, err := service.UpdateSection(ctx, "gardening", map[string]interface{}{"x": 1})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects an unknown key", func(t *testing.T) {
		_, err := service.UpdateSection(ctx, "chat", map[string]interface{}{"theme": "dark"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects an empty patch", func(t *testing.T) {
		_, err := service.UpdateSection(ctx, "chat", map[string]interface{}{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates quiet hours format", func(t *testing.T) {
		_, err := service.UpdateSection(ctx, "notifications", map[string]interface{}{
			"quiet_hours_start": "25:99",
		})
		assert.True(t, IsValidationError(err))

		sec, err := service.UpdateSection(ctx, "notifications", map[string]interface{}{
			"quiet_hours_start": "22:00",
			"quiet_hours_end":   "07:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "22:00", sec["quiet_hours_start"])
	})

	t.Run("validates min impact enum", func(t *testing.T) {
		_, err := service.UpdateSection(ctx, "notifications", map[string]interface{}{
			"min_impact": "urgent",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("write invalidates the read cache", func(t *testing.T) {
		all, err := service.Get(ctx)
		require.NoError(t, err)
		before := all["data_science"]["max_parallel"]

		_, err = service.UpdateSection(ctx, "data_science", map[string]interface{}{
			"max_parallel": 8,
		})
		require.NoError(t, err)

		all, err = service.Get(ctx)
		require.NoError(t, err)
		assert.NotEqualValues(t, before, all["data_science"]["max_parallel"])
		assert.EqualValues(t, 8, all["data_science"]["max_parallel"])
	})
}

func TestSettingsService_TypedSections(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSettingsService(client.Client)
	ctx := context.Background()

	chat, err := service.Chat(ctx)
	require.NoError(t, err)
	assert.Equal(t, 900*time.Second, chat.StreamTimeout)
	assert.Equal(t, 30*time.Second, chat.ToolTimeout)
	assert.Equal(t, 180*time.Second, chat.AnalysisToolTimeout)
	assert.Equal(t, "auto", chat.DefaultAgent)

	notif, err := service.Notifications(ctx)
	require.NoError(t, err)
	assert.True(t, notif.Enabled)
	assert.Equal(t, "high", notif.MinImpact)

	ds, err := service.DataScience(ctx)
	require.NoError(t, err)
	assert.Equal(t, "standard", ds.DefaultDepth)
	assert.Equal(t, 4, ds.MaxParallel)
}
