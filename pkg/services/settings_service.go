package services

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/aether-home/aether/ent"
	"github.com/aether-home/aether/pkg/models"
)

// settingsRowID is the singleton row identifier.
const settingsRowID = "app"

// settingsCacheTTL bounds how stale a cached read may be. Writes
// invalidate immediately; other replicas converge within the TTL.
const settingsCacheTTL = 30 * time.Second

var quietHoursPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// settingsDefaults are the compiled-in values each section falls back
// to. Reads always return defaults merged with stored overrides, so a
// fresh database behaves identically to one with an empty row.
var settingsDefaults = map[string]map[string]interface{}{
	"chat": {
		"stream_timeout_seconds":        900,
		"tool_timeout_seconds":          30,
		"analysis_tool_timeout_seconds": 180,
		"default_agent":                 "auto",
	},
	"dashboard": {
		"refresh_seconds": 30,
		"show_traces":     false,
	},
	"data_science": {
		"default_depth":    "standard",
		"default_strategy": "parallel",
		"max_parallel":     4,
	},
	"notifications": {
		"enabled":           true,
		"min_impact":        "high",
		"quiet_hours_start": "",
		"quiet_hours_end":   "",
	},
}

// settingsClamps bounds numeric overrides. Out-of-range writes are
// clamped, not rejected, so an over-eager client cannot wedge the
// system with a 0-second stream timeout.
var settingsClamps = map[string]map[string][2]int{
	"chat": {
		"stream_timeout_seconds":        {60, 3600},
		"tool_timeout_seconds":          {5, 300},
		"analysis_tool_timeout_seconds": {30, 900},
	},
	"dashboard": {
		"refresh_seconds": {5, 3600},
	},
	"data_science": {
		"max_parallel": {1, 16},
	},
}

// SettingsService provides the app-settings singleton with a short
// read cache. All sections are read together; writes patch one section
// at a time.
type SettingsService struct {
	client *ent.Client

	mu        sync.Mutex
	cached    map[string]map[string]interface{}
	fetchedAt time.Time
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// Get returns all sections, defaults merged with stored overrides.
// The result is served from cache for up to 30 seconds.
func (s *SettingsService) Get(httpCtx context.Context) (map[string]map[string]interface{}, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < settingsCacheTTL {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.AppSettings.Get(ctx, settingsRowID)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	merged := make(map[string]map[string]interface{}, len(settingsDefaults))
	for section, defaults := range settingsDefaults {
		out := make(map[string]interface{}, len(defaults))
		for k, v := range defaults {
			out[k] = v
		}
		if row != nil {
			for k, v := range sectionOf(row, section) {
				out[k] = v
			}
		}
		merged[section] = out
	}

	s.mu.Lock()
	s.cached = merged
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return merged, nil
}

// UpdateSection merges a patch into one section and persists it.
// Unknown sections are rejected; numeric values are clamped to their
/// allowed ranges; quiet-hours values must be HH:MM. The read cache is
// invalidated on success.
func (s *SettingsService) UpdateSection(httpCtx context.Context, section string, patch map[string]interface{}) (map[string]interface{}, error) {
	defaults, ok := settingsDefaults[section]
	if !ok {
		return nil, NewValidationError("section", "unknown settings section")
	}
	if len(patch) == 0 {
		return nil, NewValidationError("patch", "empty patch")
	}

	clamped := make(map[string]interface{}, len(patch))
	for k, v := range patch {
		if _, known := defaults[k]; !known {
			return nil, NewValidationError(k, "unknown settings key")
		}
		cv, err := clampSetting(section, k, v)
		if err != nil {
			return nil, err
		}
		clamped[k] = cv
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.AppSettings.Get(ctx, settingsRowID)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		row, err = tx.AppSettings.Create().SetID(settingsRowID).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create settings row: %w", err)
		}
	}

	stored := sectionOf(row, section)
	next := make(map[string]interface{}, len(stored)+len(clamped))
	for k, v := range stored {
		next[k] = v
	}
	for k, v := range clamped {
		next[k] = v
	}

	update := row.Update()
	switch section {
	case "chat":
		update = update.SetChat(next)
	case "dashboard":
		update = update.SetDashboard(next)
	case "data_science":
		update = update.SetDataScience(next)
	case "notifications":
		update = update.SetNotifications(next)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit settings update: %w", err)
	}

	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	out := make(map[string]interface{}, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range next {
		out[k] = v
	}
	return out, nil
}

// Chat returns the typed chat section.
func (s *SettingsService) Chat(ctx context.Context) (models.ChatSettings, error) {
	all, err := s.Get(ctx)
	if err != nil {
		return models.ChatSettings{}, err
	}
	sec := all["chat"]
	return models.ChatSettings{
		StreamTimeout:       time.Duration(intSetting(sec, "stream_timeout_seconds", 900)) * time.Second,
		ToolTimeout:         time.Duration(intSetting(sec, "tool_timeout_seconds", 30)) * time.Second,
		AnalysisToolTimeout: time.Duration(intSetting(sec, "analysis_tool_timeout_seconds", 180)) * time.Second,
		DefaultAgent:        stringSetting(sec, "default_agent", "auto"),
	}, nil
}

// Notifications returns the typed notifications section.
func (s *SettingsService) Notifications(ctx context.Context) (models.NotificationSettings, error) {
	all, err := s.Get(ctx)
	if err != nil {
		return models.NotificationSettings{}, err
	}
	sec := all["notifications"]
	enabled, _ := sec["enabled"].(bool)
	return models.NotificationSettings{
		Enabled:         enabled,
		MinImpact:       stringSetting(sec, "min_impact", "high"),
		QuietHoursStart: stringSetting(sec, "quiet_hours_start", ""),
		QuietHoursEnd:   stringSetting(sec, "quiet_hours_end", ""),
	}, nil
}

// DataScience returns the typed data-science section.
func (s *SettingsService) DataScience(ctx context.Context) (models.DataScienceSettings, error) {
	all, err := s.Get(ctx)
	if err != nil {
		return models.DataScienceSettings{}, err
	}
	sec := all["data_science"]
	return models.DataScienceSettings{
		DefaultDepth:    stringSetting(sec, "default_depth", "standard"),
		DefaultStrategy: stringSetting(sec, "default_strategy", "parallel"),
		MaxParallel:     intSetting(sec, "max_parallel", 4),
	}, nil
}

func sectionOf(row *ent.AppSettings, section string) map[string]interface{} {
	switch section {
	case "chat":
		return row.Chat
	case "dashboard":
		return row.Dashboard
	case "data_science":
		return row.DataScience
	case "notifications":
		return row.Notifications
	}
	return nil
}

func clampSetting(section, key string, v interface{}) (interface{}, error) {
	if bounds, ok := settingsClamps[section][key]; ok {
		n, ok := asInt(v)
		if !ok {
			return nil, NewValidationError(key, "must be a number")
		}
		if n < bounds[0] {
			n = bounds[0]
		}
		if n > bounds[1] {
			n = bounds[1]
		}
		return n, nil
	}
	if section == "notifications" && (key == "quiet_hours_start" || key == "quiet_hours_end") {
		s, ok := v.(string)
		if !ok {
			return nil, NewValidationError(key, "must be a string")
		}
		if s != "" && !quietHoursPattern.MatchString(s) {
			return nil, NewValidationError(key, "must be HH:MM")
		}
		return s, nil
	}
	if section == "notifications" && key == "min_impact" {
		s, ok := v.(string)
		if !ok {
			return nil, NewValidationError(key, "must be a string")
		}
		switch s {
		case "low", "medium", "high", "critical":
			return s, nil
		}
		return nil, NewValidationError(key, "must be one of low, medium, high, critical")
	}
	return v, nil
}

// asInt accepts the numeric shapes a JSON round trip can produce.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func intSetting(sec map[string]interface{}, key string, fallback int) int {
	if n, ok := asInt(sec[key]); ok {
		return n
	}
	return fallback
}

func stringSetting(sec map[string]interface{}, key, fallback string) string {
	if s, ok := sec[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
