package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	entschedule "github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
)

// StateReader is the slice of the home controller client the
// architect's query tools need.
type StateReader interface {
	EntityState(ctx context.Context, entityID string) (map[string]interface{}, error)
	History(ctx context.Context, entityID string, since time.Time) ([]map[string]interface{}, error)
}

// AnalysisRunner runs a data-science consultation and returns its
// summary. Implemented by the analysis workflow.
type AnalysisRunner interface {
	RunConsult(ctx context.Context, question, depth string) (string, error)
}

// RegisterBuiltinTools wires the standard toolbox into a registry.
// Nil collaborators skip their tools, which keeps tests small.
func RegisterBuiltinTools(r *Registry, ha StateReader, entities *services.EntityService, schedules *services.ScheduleService, analysis AnalysisRunner) {
	if ha != nil {
		r.Register(&getEntityStateTool{ha: ha})
		r.Register(&queryHistoryTool{ha: ha})
		r.Register(&callServiceTool{})
	}
	if entities != nil {
		r.Register(&discoverEntitiesTool{entities: entities})
	}
	if schedules != nil {
		r.Register(&createScheduleTool{schedules: schedules})
	}
	if analysis != nil {
		r.Register(&consultTool{runner: analysis})
	}
	r.Register(&seekApprovalTool{})
}

type getEntityStateTool struct{ ha StateReader }

func (t *getEntityStateTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:             "get_entity_state",
		Description:      "Get the current state and attributes of one home entity",
		ParametersSchema: `{"type":"object","properties":{"entity_id":{"type":"string"}},"required":["entity_id"]}`,
	}
}
func (t *getEntityStateTool) Mutating() bool    { return false }
func (t *getEntityStateTool) LongRunning() bool { return false }

func (t *getEntityStateTool) Execute(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
	var in struct {
		EntityID string `json:"entity_id"`
	}
	if err := json.Unmarshal(args, &in); err != nil || in.EntityID == "" {
		return "", fmt.Errorf("entity_id is required")
	}
	state, err := t.ha.EntityState(ctx, in.EntityID)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type queryHistoryTool struct{ ha StateReader }

func (t *queryHistoryTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:             "query_history",
		Description:      "Get state history for one entity over a lookback window",
		ParametersSchema: `{"type":"object","properties":{"entity_id":{"type":"string"},"lookback_hours":{"type":"integer"}},"required":["entity_id"]}`,
	}
}
func (t *queryHistoryTool) Mutating() bool    { return false }
func (t *queryHistoryTool) LongRunning() bool { return false }

func (t *queryHistoryTool) Execute(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
	var in struct {
		EntityID      string `json:"entity_id"`
		LookbackHours int    `json:"lookback_hours"`
	}
	if err := json.Unmarshal(args, &in); err != nil || in.EntityID == "" {
		return "", fmt.Errorf("entity_id is required")
	}
	if in.LookbackHours <= 0 {
		in.LookbackHours = 24
	}
	since := time.Now().Add(-time.Duration(in.LookbackHours) * time.Hour)
	rows, err := t.ha.History(ctx, in.EntityID, since)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// callServiceTool never executes directly; the executor's approval
// gate intercepts it and stages a proposal instead.
type callServiceTool struct{}

func (t *callServiceTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:             "call_service",
		Description:      "Call a controller service to change home state (requires approval)",
		ParametersSchema: `{"type":"object","properties":{"domain":{"type":"string"},"service":{"type":"string"},"entity_id":{"type":"string"},"data":{"type":"object"}},"required":["domain","service"]}`,
	}
}
func (t *callServiceTool) Mutating() bool    { return true }
func (t *callServiceTool) LongRunning() bool { return false }

func (t *callServiceTool) Execute(context.Context, *ExecutionContext, json.RawMessage) (string, error) {
	return "", fmt.Errorf("call_service must go through the approval gate")
}

type discoverEntitiesTool struct{ entities *services.EntityService }

func (t *discoverEntitiesTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:             "discover_entities",
		Description:      "List known home entities, optionally filtered by domain",
		ParametersSchema: `{"type":"object","properties":{"domain":{"type":"string"},"limit":{"type":"integer"}}}`,
	}
}
func (t *discoverEntitiesTool) Mutating() bool    { return false }
func (t *discoverEntitiesTool) LongRunning() bool { return false }

func (t *discoverEntitiesTool) Execute(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
	var in struct {
		Domain string `json:"domain"`
		Limit  int    `json:"limit"`
	}
	_ = json.Unmarshal(args, &in)
	items, err := t.entities.List(ctx, in.Domain, in.Limit)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, e := range items {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", e.ID, e.State, e.FriendlyName)
	}
	if sb.Len() == 0 {
		return "no entities found", nil
	}
	return sb.String(), nil
}

type consultTool struct{ runner AnalysisRunner }

func (t *consultTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:             "consult_data_science_team",
		Description:      "Delegate a data analysis question to the data science team",
		ParametersSchema: `{"type":"object","properties":{"question":{"type":"string"},"depth":{"type":"string","enum":["quick","standard","deep"]}},"required":["question"]}`,
	}
}
func (t *consultTool) Mutating() bool    { return false }
func (t *consultTool) LongRunning() bool { return true }

func (t *consultTool) Execute(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
	var in struct {
		Question string `json:"question"`
		Depth    string `json:"depth"`
	}
	if err := json.Unmarshal(args, &in); err != nil || in.Question == "" {
		return "", fmt.Errorf("question is required")
	}
	if in.Depth == "" {
		in.Depth = "standard"
	}
	return t.runner.RunConsult(ctx, in.Question, in.Depth)
}

type createScheduleTool struct{ schedules *services.ScheduleService }

func (t *createScheduleTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:             "create_insight_schedule",
		Description:      "Create a recurring or event-triggered analysis schedule",
		ParametersSchema: `{"type":"object","properties":{"label":{"type":"string"},"analysis_type":{"type":"string"},"trigger":{"type":"string","enum":["cron","webhook","event"]},"cron_expression":{"type":"string"},"event_label":{"type":"string"},"match_filter":{"type":"object"},"lookback_hours":{"type":"integer"}},"required":["label","analysis_type","trigger"]}`,
	}
}
func (t *createScheduleTool) Mutating() bool    { return false }
func (t *createScheduleTool) LongRunning() bool { return false }

func (t *createScheduleTool) Execute(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
	var in struct {
		Label          string                 `json:"label"`
		AnalysisType   string                 `json:"analysis_type"`
		Trigger        string                 `json:"trigger"`
		CronExpression string                 `json:"cron_expression"`
		EventLabel     string                 `json:"event_label"`
		MatchFilter    map[string]interface{} `json:"match_filter"`
		LookbackHours  int                    `json:"lookback_hours"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	sched, err := t.schedules.Create(ctx, models.CreateScheduleRequest{
		Label:          in.Label,
		AnalysisType:   in.AnalysisType,
		Trigger:        entschedule.Trigger(in.Trigger),
		CronExpression: in.CronExpression,
		EventLabel:     in.EventLabel,
		MatchFilter:    in.MatchFilter,
		LookbackHours:  in.LookbackHours,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("schedule %s created", sched.ID), nil
}

// seekApprovalTool lets any agent explicitly stage a change for human
// review. Mutating by definition, so the gate handles it.
type seekApprovalTool struct{}

func (t *seekApprovalTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:             "seek_approval",
		Description:      "Stage a change (automation, script or command) for human approval",
		ParametersSchema: `{"type":"object","properties":{"title":{"type":"string"},"kind":{"type":"string","enum":["automation","entity_command","script","scene"]},"automation":{"type":"object"},"command":{"type":"object"}},"required":["title"]}`,
	}
}
func (t *seekApprovalTool) Mutating() bool    { return true }
func (t *seekApprovalTool) LongRunning() bool { return false }

func (t *seekApprovalTool) Execute(context.Context, *ExecutionContext, json.RawMessage) (string, error) {
	return "", fmt.Errorf("seek_approval must go through the approval gate")
}
