package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aether-home/aether/pkg/agent"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
)

// toolResultEventLimit caps how much tool output goes on the stream.
// The full output still reaches the LLM.
const toolResultEventLimit = 2000

// streamRun is the per-request state of one streaming loop.
type streamRun struct {
	orch     *Orchestrator
	req      *models.ChatRequest
	emit     Emitter
	settings models.ChatSettings
	execCtx  *agent.ExecutionContext
	disabled map[string]bool

	messages []agent.ConversationMessage
	// agentStack tracks delegation depth; the bottom element is the
	// routed agent.
	agentStack []string

	// agentsSeen and toolsUsed accumulate, in first-seen order and
	// without duplicates, everything that took part in this run. They
	// feed the closing trace and metadata events.
	agentsSeen []string
	seenAgents map[string]bool
	toolsUsed  []string
	seenTools  map[string]bool
}

// emitTrace emits one trace lifecycle event and records the agent on
// its first start. Background runs carry no trace stream.
func (r *streamRun) emitTrace(event, agentName, tool string) error {
	if r.execCtx.Background {
		return nil
	}
	if event == TraceStart {
		if r.seenAgents == nil {
			r.seenAgents = make(map[string]bool)
		}
		if !r.seenAgents[agentName] {
			r.seenAgents[agentName] = true
			r.agentsSeen = append(r.agentsSeen, agentName)
		}
	}
	return r.emit(StreamEvent{
		Type:    EventTrace,
		Event:   event,
		Agent:   agentName,
		Tool:    tool,
		TraceID: r.execCtx.TraceID,
	})
}

// observeTool records a tool for the metadata tool list.
func (r *streamRun) observeTool(name string) {
	if r.seenTools == nil {
		r.seenTools = make(map[string]bool)
	}
	if !r.seenTools[name] {
		r.seenTools[name] = true
		r.toolsUsed = append(r.toolsUsed, name)
	}
}

// loop runs the tool-calling iteration until the LLM stops calling
// tools or the iteration budget runs out. It returns the concatenated
// visible text.
func (r *streamRun) loop(ctx context.Context) (string, error) {
	r.messages = requestMessages(r.req)
	r.agentStack = []string{r.execCtx.ActiveAgent}

	var tools []agent.ToolDefinition
	if !r.execCtx.Background {
		tools = r.orch.executor.ListTools()
	}

	var finalText strings.Builder
	for iteration := 0; iteration < maxIterations; iteration++ {
		visible, calls, err := r.generateOnce(ctx, tools)
		if err != nil {
			return "", err
		}
		finalText.WriteString(visible)

		if len(calls) == 0 {
			return finalText.String(), nil
		}

		r.messages = append(r.messages, agent.ConversationMessage{
			Role:      "assistant",
			Content:   visible,
			ToolCalls: calls,
		})

		if err := r.runToolCalls(ctx, calls); err != nil {
			return "", err
		}
	}

	if err := r.emit(StreamEvent{Type: EventStatus, Content: "stopping: tool iteration limit reached"}); err != nil {
		return "", err
	}
	return finalText.String(), nil
}

// generateOnce runs one LLM call and consumes its chunk stream.
func (r *streamRun) generateOnce(ctx context.Context, tools []agent.ToolDefinition) (string, []agent.ToolCall, error) {
	start := time.Now()
	ch, err := r.orch.llm.Generate(ctx, &agent.GenerateInput{
		ConversationID: r.execCtx.ConversationID,
		TraceID:        r.execCtx.TraceID,
		Model:          r.req.Model,
		Temperature:    r.req.Temperature,
		Messages:       r.messages,
		Tools:          tools,
	})
	if err != nil {
		return "", nil, services.NewExternalError("llm", "the language model service is unavailable", err)
	}

	filter := NewThinkingFilter()
	var visible strings.Builder
	var calls []agent.ToolCall

	for chunk := range ch {
		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		default:
		}

		switch ck := chunk.(type) {
		case *agent.TextChunk:
			vis, thk := filter.Feed(ck.Content)
			if err := r.emitText(vis, thk); err != nil {
				return "", nil, err
			}
			visible.WriteString(vis)
		case *agent.ThinkingChunk:
			if ck.Content != "" {
				if err := r.emit(StreamEvent{Type: EventThinking, Agent: r.activeAgent(), Content: ck.Content}); err != nil {
					return "", nil, err
				}
			}
		case *agent.ToolCallChunk:
			calls = append(calls, agent.ToolCall{ID: ck.CallID, Name: ck.Name, Arguments: ck.Arguments})
		case *agent.UsageChunk:
			r.recordUsage(ck, time.Since(start))
		case *agent.ErrorChunk:
			return "", nil, services.NewExternalError("llm", ck.Message, nil)
		}
	}

	vis, thk := filter.Flush()
	if err := r.emitText(vis, thk); err != nil {
		return "", nil, err
	}
	visible.WriteString(vis)

	return visible.String(), calls, nil
}

func (r *streamRun) emitText(visible, thinking string) error {
	if visible != "" {
		if err := r.emit(StreamEvent{Type: EventToken, Agent: r.activeAgent(), Content: visible}); err != nil {
			return err
		}
	}
	if thinking != "" {
		if err := r.emit(StreamEvent{Type: EventThinking, Agent: r.activeAgent(), Content: thinking}); err != nil {
			return err
		}
	}
	return nil
}

// runToolCalls executes the batch of tool calls from one iteration.
// Approval-gated calls do not stop the loop; their result tells the
// LLM the change is pending, and the next turn wraps up the reply.
func (r *streamRun) runToolCalls(ctx context.Context, calls []agent.ToolCall) error {
	for _, call := range calls {
		owner := agent.AgentForTool(call.Name)
		delegated := owner != r.activeAgent()

		if delegated && r.disabled[owner] {
			r.appendToolResult(&agent.ToolResult{
				CallID:  call.ID,
				Name:    call.Name,
				Content: fmt.Sprintf("agent %s is disabled for this request", owner),
				IsError: true,
			})
			continue
		}

		if err := r.emit(StreamEvent{Type: EventToolCall, Agent: r.activeAgent(), Tool: call.Name, CallID: call.ID, Content: call.Arguments}); err != nil {
			return err
		}

		if delegated {
			if err := r.pushAgent(owner); err != nil {
				return err
			}
		}

		r.observeTool(call.Name)
		if err := r.emitTrace(TraceToolCall, r.activeAgent(), call.Name); err != nil {
			return err
		}

		result := r.orch.executor.Execute(ctx, r.execCtx, call, agent.ExecutorTimeouts{
			Tool:     r.settings.ToolTimeout,
			Analysis: r.settings.AnalysisToolTimeout,
		})

		if err := r.emitTrace(TraceToolResult, r.activeAgent(), call.Name); err != nil {
			return err
		}

		if delegated {
			if err := r.popAgent(); err != nil {
				return err
			}
		}

		content := result.Content
		if len(content) > toolResultEventLimit {
			content = content[:toolResultEventLimit] + "..."
		}
		if err := r.emit(StreamEvent{Type: EventToolResult, Agent: r.activeAgent(), Tool: call.Name, CallID: call.ID, Content: content, IsError: result.IsError}); err != nil {
			return err
		}

		if result.NeedsApproval {
			if !r.execCtx.Background {
				if err := r.emit(StreamEvent{Type: EventProposalCreated, ProposalID: result.ProposalID}); err != nil {
					return err
				}
			}
			if err := r.emit(StreamEvent{Type: EventApprovalRequired, ProposalID: result.ProposalID}); err != nil {
				return err
			}
		}

		r.appendToolResult(result)
	}
	return nil
}

func (r *streamRun) appendToolResult(result *agent.ToolResult) {
	r.messages = append(r.messages, agent.ConversationMessage{
		Role:       "tool",
		Content:    result.Content,
		ToolCallID: result.CallID,
		ToolName:   result.Name,
	})
}

func (r *streamRun) activeAgent() string {
	return r.agentStack[len(r.agentStack)-1]
}

func (r *streamRun) pushAgent(name string) error {
	from := r.activeAgent()
	r.agentStack = append(r.agentStack, name)
	if r.execCtx.Background {
		return nil
	}
	if err := r.emit(StreamEvent{Type: EventDelegation, FromAgent: from, ToAgent: name}); err != nil {
		return err
	}
	if err := r.emit(StreamEvent{Type: EventAgentStart, Agent: name}); err != nil {
		return err
	}
	return r.emitTrace(TraceStart, name, "")
}

func (r *streamRun) popAgent() error {
	name := r.activeAgent()
	r.agentStack = r.agentStack[:len(r.agentStack)-1]
	if r.execCtx.Background {
		return nil
	}
	if err := r.emit(StreamEvent{Type: EventAgentEnd, Agent: name}); err != nil {
		return err
	}
	return r.emitTrace(TraceEnd, name, "")
}

// recordUsage is best effort; a failed write never disturbs the stream.
func (r *streamRun) recordUsage(ck *agent.UsageChunk, elapsed time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := r.orch.usage.Record(ctx, services.UsageRecord{
		ConversationID:   r.execCtx.ConversationID,
		TraceID:          r.execCtx.TraceID,
		SpanKind:         "llm",
		AgentName:        r.activeAgent(),
		Model:            r.req.Model,
		PromptTokens:     int(ck.InputTokens),
		CompletionTokens: int(ck.OutputTokens),
		Latency:          elapsed,
	})
	if err != nil {
		r.orch.logger.Warn("failed to record LLM usage", "error", err)
	}
}

func requestMessages(req *models.ChatRequest) []agent.ConversationMessage {
	out := make([]agent.ConversationMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		out = append(out, agent.ConversationMessage{Role: m.Role, Content: m.Content.String()})
	}
	return out
}
