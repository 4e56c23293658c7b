package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ModeMonolith, cfg.DeploymentMode)
		assert.Equal(t, RoleAll, cfg.Role)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.True(t, cfg.HAEventStream)
		assert.Equal(t, 30*time.Minute, cfg.DiscoverySyncInterval)
		assert.Equal(t, 365, cfg.ConversationRetentionDays)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("AETHER_ROLE", "scheduler")
		t.Setenv("HA_RPC_TIMEOUT_SECONDS", "2.5")
		t.Setenv("DEBOUNCE_QUEUE_CAPACITY", "50")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, RoleScheduler, cfg.Role)
		assert.Equal(t, 2500*time.Millisecond, cfg.HARPCTimeout)
		assert.Equal(t, 50, cfg.DebounceQueueCapacity)
	})

	t.Run("rejects unknown enums", func(t *testing.T) {
		t.Setenv("DEPLOYMENT_MODE", "sharded")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production requires a webhook secret", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		_, err := Load()
		assert.Error(t, err)

		t.Setenv("WEBHOOK_SECRET", "hunter2")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}
