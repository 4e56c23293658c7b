package orchestrator

import (
	"context"
	"strings"
	"time"

	"github.com/aether-home/aether/pkg/agent"
	"github.com/aether-home/aether/pkg/services"
)

// remoteLoop streams one foreground turn from the remote architect
// service. The remote side runs its own tool loop; this side forwards
// its chunks onto the event stream, keeps the trace lifecycle, and
// records usage, so clients cannot tell the deployment modes apart.
func (r *streamRun) remoteLoop(ctx context.Context) (string, error) {
	r.messages = requestMessages(r.req)
	r.agentStack = []string{r.execCtx.ActiveAgent}

	start := time.Now()
	ch, err := r.orch.remote.Generate(ctx, &agent.GenerateInput{
		ConversationID: r.execCtx.ConversationID,
		TraceID:        r.execCtx.TraceID,
		Model:          r.req.Model,
		Temperature:    r.req.Temperature,
		Messages:       r.messages,
	})
	if err != nil {
		return "", services.NewExternalError("architect", "the architect service is unavailable", err)
	}

	filter := NewThinkingFilter()
	var visible strings.Builder

	for chunk := range ch {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		switch ck := chunk.(type) {
		case *agent.TextChunk:
			vis, thk := filter.Feed(ck.Content)
			if err := r.emitText(vis, thk); err != nil {
				return "", err
			}
			visible.WriteString(vis)
		case *agent.ThinkingChunk:
			if ck.Content != "" {
				if err := r.emit(StreamEvent{Type: EventThinking, Agent: r.activeAgent(), Content: ck.Content}); err != nil {
					return "", err
				}
			}
		case *agent.ToolCallChunk:
			// The remote service already executed the call; surface it
			// so the activity panel stays complete.
			r.observeTool(ck.Name)
			if err := r.emit(StreamEvent{Type: EventToolCall, Agent: r.activeAgent(), Tool: ck.Name, CallID: ck.CallID, Content: ck.Arguments}); err != nil {
				return "", err
			}
			if err := r.emitTrace(TraceToolCall, r.activeAgent(), ck.Name); err != nil {
				return "", err
			}
		case *agent.UsageChunk:
			r.recordUsage(ck, time.Since(start))
		case *agent.ErrorChunk:
			return "", services.NewExternalError("architect", ck.Message, nil)
		}
	}

	vis, thk := filter.Flush()
	if err := r.emitText(vis, thk); err != nil {
		return "", err
	}
	visible.WriteString(vis)

	return visible.String(), nil
}
