package models

import (
	"github.com/aether-home/aether/ent/analysisreport"
	"github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/ent/message"
	"github.com/aether-home/aether/ent/proposal"
)

// CreateConversationRequest contains fields for creating a conversation.
type CreateConversationRequest struct {
	ID     string `json:"id,omitempty"` // optional pre-derived identifier
	UserID string `json:"user_id"`
	Title  string `json:"title,omitempty"`
}

// AddMessageRequest contains fields for appending a message to a conversation.
type AddMessageRequest struct {
	ConversationID string                   `json:"conversation_id"`
	Role           message.Role             `json:"role"`
	Content        string                   `json:"content"`
	ToolCalls      []map[string]interface{} `json:"tool_calls,omitempty"`
	ToolCallID     string                   `json:"tool_call_id,omitempty"`
	ToolName       string                   `json:"tool_name,omitempty"`
}

// CreateProposalRequest contains fields for creating a proposal in Draft.
type CreateProposalRequest struct {
	ConversationID string                 `json:"conversation_id,omitempty"`
	Kind           proposal.Kind          `json:"kind"`
	Title          string                 `json:"title"`
	Body           map[string]interface{} `json:"body"`
	OriginalYAML   string                 `json:"original_yaml,omitempty"`
}

// CreateInsightRequest contains fields for persisting an insight.
type CreateInsightRequest struct {
	Category       string                 `json:"category"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Evidence       map[string]interface{} `json:"evidence,omitempty"`
	Confidence     float64                `json:"confidence"`
	Impact         insight.Impact         `json:"impact"`
	EntityIDs      []string               `json:"entity_ids,omitempty"`
	ScriptPath     string                 `json:"script_path,omitempty"`
	ScriptOutput   string                 `json:"script_output,omitempty"`
	ConversationID string                 `json:"conversation_id,omitempty"`
	ScheduleID     string                 `json:"schedule_id,omitempty"`
}

// CreateReportRequest contains fields for opening an analysis report.
type CreateReportRequest struct {
	Title        string                  `json:"title"`
	AnalysisType string                  `json:"analysis_type"`
	Depth        analysisreport.Depth    `json:"depth"`
	Strategy     analysisreport.Strategy `json:"strategy"`
}

// CompleteReportRequest contains the terminal payload of a successful run.
type CompleteReportRequest struct {
	Summary          string                   `json:"summary"`
	InsightIDs       []string                 `json:"insight_ids,omitempty"`
	Artifacts        []string                 `json:"artifacts,omitempty"`
	CommunicationLog []map[string]interface{} `json:"communication_log,omitempty"`
}

// CreateScheduleRequest contains fields for creating an insight schedule.
type CreateScheduleRequest struct {
	Label          string                  `json:"label"`
	Enabled        *bool                   `json:"enabled,omitempty"`
	AnalysisType   string                  `json:"analysis_type"`
	EntityIDs      []string                `json:"entity_ids,omitempty"`
	LookbackHours  int                     `json:"lookback_hours,omitempty"`
	Options        map[string]interface{}  `json:"options,omitempty"`
	Trigger        insightschedule.Trigger `json:"trigger"`
	CronExpression string                  `json:"cron_expression,omitempty"`
	EventLabel     string                  `json:"event_label,omitempty"`
	MatchFilter    map[string]interface{}  `json:"match_filter,omitempty"`
	Depth          insightschedule.Depth   `json:"depth,omitempty"`
	Strategy       insightschedule.Strategy `json:"strategy,omitempty"`
	TimeoutSeconds int                     `json:"timeout_seconds,omitempty"`
}

// UpdateScheduleRequest contains the mutable fields of a schedule.
// Nil pointers leave the stored value unchanged.
type UpdateScheduleRequest struct {
	Label          *string                 `json:"label,omitempty"`
	Enabled        *bool                   `json:"enabled,omitempty"`
	EntityIDs      []string                `json:"entity_ids,omitempty"`
	LookbackHours  *int                    `json:"lookback_hours,omitempty"`
	Options        map[string]interface{}  `json:"options,omitempty"`
	CronExpression *string                 `json:"cron_expression,omitempty"`
	EventLabel     *string                 `json:"event_label,omitempty"`
	MatchFilter    map[string]interface{}  `json:"match_filter,omitempty"`
	Depth          *insightschedule.Depth  `json:"depth,omitempty"`
	Strategy       *insightschedule.Strategy `json:"strategy,omitempty"`
	TimeoutSeconds *int                    `json:"timeout_seconds,omitempty"`
}

// EntitySnapshot is one observed controller entity state, as delivered
// by the event stream or discovery sync.
type EntitySnapshot struct {
	EntityID     string                 `json:"entity_id"`
	State        string                 `json:"state"`
	Attributes   map[string]interface{} `json:"attributes,omitempty"`
	FriendlyName string                 `json:"friendly_name,omitempty"`
	LastChanged  string                 `json:"last_changed,omitempty"`
}

// Domain returns the entity-id prefix before the first dot.
func (s EntitySnapshot) Domain() string {
	for i := 0; i < len(s.EntityID); i++ {
		if s.EntityID[i] == '.' {
			return s.EntityID[:i]
		}
	}
	return s.EntityID
}
