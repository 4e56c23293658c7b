package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	entproposal "github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
)

// Tool is one callable tool in an agent's toolbox.
type Tool interface {
	// Definition describes the tool to the LLM.
	Definition() ToolDefinition

	// Mutating tools change home state and are gated behind a proposal.
	Mutating() bool

	// LongRunning tools get the analysis timeout instead of the
	// standard tool timeout.
	LongRunning() bool

	// Execute runs the tool and returns its text output.
	Execute(ctx context.Context, ec *ExecutionContext, args json.RawMessage) (string, error)
}

// ToolResult is the outcome of one tool execution.
type ToolResult struct {
	CallID  string
	Name    string
	Content string
	IsError bool

	// Set when a mutating call was intercepted by the approval gate.
	NeedsApproval bool
	ProposalID    string
}

// Registry holds the tool set, keyed by tool name.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names are a programming error.
func (r *Registry) Register(t Tool) {
	name := t.Definition().Name
	if _, exists := r.tools[name]; exists {
		panic(fmt.Sprintf("duplicate tool registration: %s", name))
	}
	r.tools[name] = t
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Definitions returns all tool definitions, sorted by name so the
// prompt is stable across requests.
func (r *Registry) Definitions() []ToolDefinition {
	out := make([]ToolDefinition, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t.Definition())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ExecutorTimeouts are the per-call budgets, sourced from settings.
type ExecutorTimeouts struct {
	Tool     time.Duration // standard tools
	Analysis time.Duration // long-running analysis tools
}

// Executor runs tool calls with timeouts and the mutating-tool
// approval gate.
type Executor struct {
	registry  *Registry
	proposals *services.ProposalService
	logger    *slog.Logger
}

// NewExecutor creates a tool executor.
func NewExecutor(registry *Registry, proposals *services.ProposalService, logger *slog.Logger) *Executor {
	return &Executor{registry: registry, proposals: proposals, logger: logger}
}

// ListTools returns the definitions of all registered tools.
func (e *Executor) ListTools() []ToolDefinition {
	return e.registry.Definitions()
}

// Execute runs one tool call. Unknown tools and tool failures come
// back as error results, not Go errors, so the LLM sees them and can
// recover. A mutating tool never runs directly: the call is captured
// as a proposal and the result tells the LLM approval is pending.
func (e *Executor) Execute(ctx context.Context, ec *ExecutionContext, call ToolCall, timeouts ExecutorTimeouts) *ToolResult {
	ctx = WithExecution(ctx, ec)
	tool, ok := e.registry.Get(call.Name)
	if !ok {
		return &ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("unknown tool: %s", call.Name),
			IsError: true,
		}
	}

	if tool.Mutating() {
		return e.gate(ctx, ec, tool, call)
	}

	timeout := timeouts.Tool
	if tool.LongRunning() {
		timeout = timeouts.Analysis
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	output, err := tool.Execute(callCtx, ec, json.RawMessage(call.Arguments))
	elapsed := time.Since(start)
	if err != nil {
		e.logger.Warn("tool execution failed",
			"tool", call.Name,
			"elapsed", elapsed,
			"error", err)
		msg := err.Error()
		if callCtx.Err() == context.DeadlineExceeded {
			msg = fmt.Sprintf("tool %s timed out after %s", call.Name, timeout)
		}
		return &ToolResult{CallID: call.ID, Name: call.Name, Content: msg, IsError: true}
	}

	e.logger.Debug("tool executed", "tool", call.Name, "elapsed", elapsed)
	return &ToolResult{CallID: call.ID, Name: call.Name, Content: output}
}

// gate converts a mutating tool call into a pending proposal. The
// home is never touched until a human approves.
func (e *Executor) gate(ctx context.Context, ec *ExecutionContext, tool Tool, call ToolCall) *ToolResult {
	var body map[string]interface{}
	if err := json.Unmarshal([]byte(call.Arguments), &body); err != nil {
		return &ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("invalid arguments for %s: %v", call.Name, err),
			IsError: true,
		}
	}

	kind := proposalKindForTool(call.Name, body)
	p, err := e.proposals.Create(ctx, models.CreateProposalRequest{
		ConversationID: ec.ConversationID,
		Kind:           kind,
		Title:          proposalTitle(call.Name, body),
		Body:           body,
	})
	if err == nil {
		p, err = e.proposals.Propose(ctx, p.ID)
	}
	if err != nil {
		e.logger.Error("failed to create proposal for mutating tool", "tool", call.Name, "error", err)
		return &ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: "could not stage this change for approval; nothing was executed",
			IsError: true,
		}
	}

	return &ToolResult{
		CallID:        call.ID,
		Name:          call.Name,
		Content:       fmt.Sprintf("This change requires approval. Proposal %s is awaiting review; tell the user and stop.", p.ID),
		NeedsApproval: true,
		ProposalID:    p.ID,
	}
}

func proposalKindForTool(name string, body map[string]interface{}) entproposal.Kind {
	if k, ok := body["kind"].(string); ok {
		switch kind := entproposal.Kind(k); kind {
		case entproposal.KindAutomation, entproposal.KindEntityCommand, entproposal.KindScript, entproposal.KindScene:
			return kind
		}
	}
	switch name {
	case "render_automation":
		return entproposal.KindAutomation
	case "call_service":
		return entproposal.KindEntityCommand
	}
	if _, ok := body["automation"]; ok {
		return entproposal.KindAutomation
	}
	return entproposal.KindEntityCommand
}

func proposalTitle(name string, body map[string]interface{}) string {
	if t, ok := body["title"].(string); ok && t != "" {
		return t
	}
	if alias, ok := body["alias"].(string); ok && alias != "" {
		return alias
	}
	return name
}
