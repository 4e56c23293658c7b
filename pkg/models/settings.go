package models

import "time"

// ChatSettings is the typed view of the chat settings section.
type ChatSettings struct {
	StreamTimeout       time.Duration
	ToolTimeout         time.Duration
	AnalysisToolTimeout time.Duration
	DefaultAgent        string
}

// NotificationSettings is the typed view of the notifications section.
type NotificationSettings struct {
	Enabled         bool
	MinImpact       string
	QuietHoursStart string // "HH:MM", empty = no quiet hours
	QuietHoursEnd   string
}

// DataScienceSettings is the typed view of the data-science section.
type DataScienceSettings struct {
	DefaultDepth    string
	DefaultStrategy string
	MaxParallel     int
}
