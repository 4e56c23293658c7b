// Package config loads process-level configuration from the environment.
// Runtime-tunable settings (timeouts, notification gates) live in the
// AppSettings singleton row instead; see pkg/services.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DeploymentMode selects how the architect workflow is executed.
type DeploymentMode string

// Deployment modes.
const (
	ModeMonolith    DeploymentMode = "monolith"
	ModeDistributed DeploymentMode = "distributed"
)

// Role selects which subsystems a process activates.
type Role string

// Process roles.
const (
	RoleAll       Role = "all"
	RoleAPI       Role = "api"
	RoleScheduler Role = "scheduler"
)

// Config is the process configuration resolved at startup.
type Config struct {
	DeploymentMode DeploymentMode
	Role           Role
	Environment    string // "development" or "production"
	HTTPPort       string

	// Webhook authenticity. Required in production.
	WebhookSecret string

	// Home-automation controller.
	HABaseURL      string
	HAToken        string
	HAEventStream  bool // subscribe to the controller websocket event stream
	HARPCTimeout   time.Duration

	// LLM service (gRPC streaming).
	LLMServiceAddr string

	// Remote architect service, used when DeploymentMode = distributed.
	ArchitectAddr string

	// Scheduler.
	SchedulerTimezone string
	// Discovery sync cadence; the wide value applies when the event
	// stream is enabled (polling only catches structural drift then).
	DiscoverySyncInterval          time.Duration
	DiscoverySyncStreamingInterval time.Duration

	// Event debouncer.
	DebounceFlushInterval time.Duration
	DebounceQueueCapacity int

	// Retention windows, per table.
	UsageRetentionDays        int
	ReportRetentionDays       int
	InsightRetentionDays      int
	ConversationRetentionDays int
}

// Load resolves configuration from the environment, applying defaults.
// Returns an error for invalid enum values and for a missing webhook
// secret in production.
func Load() (*Config, error) {
	cfg := &Config{
		DeploymentMode: DeploymentMode(getEnv("DEPLOYMENT_MODE", string(ModeMonolith))),
		Role:           Role(getEnv("AETHER_ROLE", string(RoleAll))),
		Environment:    getEnv("ENVIRONMENT", "development"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		WebhookSecret:  os.Getenv("WEBHOOK_SECRET"),

		HABaseURL:     getEnv("HA_BASE_URL", "http://localhost:8123"),
		HAToken:       os.Getenv("HA_TOKEN"),
		HAEventStream: getEnvBool("HA_EVENT_STREAM", true),
		HARPCTimeout:  getEnvDuration("HA_RPC_TIMEOUT_SECONDS", 10*time.Second),

		LLMServiceAddr: getEnv("LLM_SERVICE_ADDR", "localhost:50051"),
		ArchitectAddr:  os.Getenv("ARCHITECT_SERVICE_ADDR"),

		SchedulerTimezone:              getEnv("SCHEDULER_TIMEZONE", "UTC"),
		DiscoverySyncInterval:          getEnvMinutes("DISCOVERY_SYNC_MINUTES", 30),
		DiscoverySyncStreamingInterval: getEnvMinutes("DISCOVERY_SYNC_STREAMING_MINUTES", 360),

		DebounceFlushInterval: getEnvDuration("DEBOUNCE_FLUSH_SECONDS", 1500*time.Millisecond),
		DebounceQueueCapacity: getEnvInt("DEBOUNCE_QUEUE_CAPACITY", 1000),

		UsageRetentionDays:        getEnvInt("USAGE_RETENTION_DAYS", 30),
		ReportRetentionDays:       getEnvInt("REPORT_RETENTION_DAYS", 90),
		InsightRetentionDays:      getEnvInt("INSIGHT_RETENTION_DAYS", 90),
		ConversationRetentionDays: getEnvInt("CONVERSATION_RETENTION_DAYS", 365),
	}

	switch cfg.DeploymentMode {
	case ModeMonolith, ModeDistributed:
	default:
		return nil, fmt.Errorf("invalid DEPLOYMENT_MODE %q", cfg.DeploymentMode)
	}

	switch cfg.Role {
	case RoleAll, RoleAPI, RoleScheduler:
	default:
		return nil, fmt.Errorf("invalid AETHER_ROLE %q", cfg.Role)
	}

	if cfg.IsProduction() && cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("WEBHOOK_SECRET must be set in production")
	}

	return cfg, nil
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration reads a duration given in seconds (fractions allowed).
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return time.Duration(f * float64(time.Second))
		}
	}
	return defaultValue
}

func getEnvMinutes(key string, defaultMinutes int) time.Duration {
	return time.Duration(getEnvInt(key, defaultMinutes)) * time.Minute
}
