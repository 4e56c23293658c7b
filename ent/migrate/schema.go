// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisReportsColumns holds the columns for the "analysis_reports" table.
	AnalysisReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "analysis_type", Type: field.TypeString},
		{Name: "depth", Type: field.TypeEnum, Enums: []string{"quick", "standard", "deep"}, Default: "standard"},
		{Name: "strategy", Type: field.TypeEnum, Enums: []string{"parallel", "teamwork"}, Default: "parallel"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "insight_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "communication_log", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AnalysisReportsTable holds the schema information for the "analysis_reports" table.
	AnalysisReportsTable = &schema.Table{
		Name:       "analysis_reports",
		Columns:    AnalysisReportsColumns,
		PrimaryKey: []*schema.Column{AnalysisReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisreport_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysisReportsColumns[5]},
			},
			{
				Name:    "analysisreport_analysis_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisReportsColumns[2], AnalysisReportsColumns[10]},
			},
			{
				Name:    "analysisreport_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisReportsColumns[10]},
			},
		},
	}
	// AppSettingsColumns holds the columns for the "app_settings" table.
	AppSettingsColumns = []*schema.Column{
		{Name: "settings_id", Type: field.TypeString, Unique: true},
		{Name: "chat", Type: field.TypeJSON, Nullable: true},
		{Name: "dashboard", Type: field.TypeJSON, Nullable: true},
		{Name: "data_science", Type: field.TypeJSON, Nullable: true},
		{Name: "notifications", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AppSettingsTable holds the schema information for the "app_settings" table.
	AppSettingsTable = &schema.Table{
		Name:       "app_settings",
		Columns:    AppSettingsColumns,
		PrimaryKey: []*schema.Column{AppSettingsColumns[0]},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "archived"}, Default: "active"},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
			{
				Name:    "conversation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2], ConversationsColumns[5]},
			},
		},
	}
	// HaEntitiesColumns holds the columns for the "ha_entities" table.
	HaEntitiesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Default: ""},
		{Name: "attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "friendly_name", Type: field.TypeString, Nullable: true},
		{Name: "last_changed", Type: field.TypeTime, Nullable: true},
		{Name: "last_synced", Type: field.TypeTime},
	}
	// HaEntitiesTable holds the schema information for the "ha_entities" table.
	HaEntitiesTable = &schema.Table{
		Name:       "ha_entities",
		Columns:    HaEntitiesColumns,
		PrimaryKey: []*schema.Column{HaEntitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "haentity_domain",
				Unique:  false,
				Columns: []*schema.Column{HaEntitiesColumns[1]},
			},
			{
				Name:    "haentity_last_synced",
				Unique:  false,
				Columns: []*schema.Column{HaEntitiesColumns[6]},
			},
		},
	}
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "insight_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "impact", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "low"},
		{Name: "entity_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "script_path", Type: field.TypeString, Nullable: true},
		{Name: "script_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "reviewed", "actioned", "dismissed"}, Default: "pending"},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "schedule_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insight_status",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[10]},
			},
			{
				Name:    "insight_impact",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[6]},
			},
			{
				Name:    "insight_schedule_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[12], InsightsColumns[13]},
			},
			{
				Name:    "insight_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[10], InsightsColumns[13]},
			},
		},
	}
	// InsightSchedulesColumns holds the columns for the "insight_schedules" table.
	InsightSchedulesColumns = []*schema.Column{
		{Name: "schedule_id", Type: field.TypeString, Unique: true},
		{Name: "label", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "analysis_type", Type: field.TypeString},
		{Name: "entity_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "lookback_hours", Type: field.TypeInt, Default: 24},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"cron", "webhook", "event"}, Default: "cron"},
		{Name: "cron_expression", Type: field.TypeString, Nullable: true},
		{Name: "event_label", Type: field.TypeString, Nullable: true},
		{Name: "match_filter", Type: field.TypeJSON, Nullable: true},
		{Name: "depth", Type: field.TypeEnum, Enums: []string{"quick", "standard", "deep"}, Default: "standard"},
		{Name: "strategy", Type: field.TypeEnum, Enums: []string{"parallel", "teamwork"}, Default: "parallel"},
		{Name: "timeout_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_result", Type: field.TypeEnum, Nullable: true, Enums: []string{"success", "failed", "timeout"}},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "run_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InsightSchedulesTable holds the schema information for the "insight_schedules" table.
	InsightSchedulesTable = &schema.Table{
		Name:       "insight_schedules",
		Columns:    InsightSchedulesColumns,
		PrimaryKey: []*schema.Column{InsightSchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insightschedule_enabled_trigger",
				Unique:  false,
				Columns: []*schema.Column{InsightSchedulesColumns[2], InsightSchedulesColumns[7]},
			},
			{
				Name:    "insightschedule_event_label",
				Unique:  false,
				Columns: []*schema.Column{InsightSchedulesColumns[9]},
			},
		},
	}
	// LlmUsagesColumns holds the columns for the "llm_usages" table.
	LlmUsagesColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "span_kind", Type: field.TypeString, Default: "llm"},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "is_error", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmUsagesTable holds the schema information for the "llm_usages" table.
	LlmUsagesTable = &schema.Table{
		Name:       "llm_usages",
		Columns:    LlmUsagesColumns,
		PrimaryKey: []*schema.Column{LlmUsagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmusage_trace_id",
				Unique:  false,
				Columns: []*schema.Column{LlmUsagesColumns[2]},
			},
			{
				Name:    "llmusage_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmUsagesColumns[10]},
			},
			{
				Name:    "llmusage_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmUsagesColumns[1], LlmUsagesColumns[10]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[7]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[7], MessagesColumns[6]},
			},
		},
	}
	// ProposalsColumns holds the columns for the "proposals" table.
	ProposalsColumns = []*schema.Column{
		{Name: "proposal_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"automation", "entity_command", "script", "scene"}},
		{Name: "body", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "proposed", "approved", "rejected", "deployed", "rolled_back", "archived"}, Default: "draft"},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "ha_automation_id", Type: field.TypeString, Nullable: true},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "original_yaml", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "review_notes", Type: field.TypeJSON, Nullable: true},
		{Name: "ha_disabled", Type: field.TypeBool, Nullable: true},
		{Name: "ha_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "proposed_at", Type: field.TypeTime, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "rejected_at", Type: field.TypeTime, Nullable: true},
		{Name: "deployed_at", Type: field.TypeTime, Nullable: true},
		{Name: "rolled_back_at", Type: field.TypeTime, Nullable: true},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
	}
	// ProposalsTable holds the schema information for the "proposals" table.
	ProposalsTable = &schema.Table{
		Name:       "proposals",
		Columns:    ProposalsColumns,
		PrimaryKey: []*schema.Column{ProposalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proposal_status",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[4]},
			},
			{
				Name:    "proposal_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[1]},
			},
			{
				Name:    "proposal_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[4], ProposalsColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisReportsTable,
		AppSettingsTable,
		ConversationsTable,
		HaEntitiesTable,
		InsightsTable,
		InsightSchedulesTable,
		LlmUsagesTable,
		MessagesTable,
		ProposalsTable,
	}
)

func init() {
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
}
