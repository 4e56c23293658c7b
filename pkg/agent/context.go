package agent

import "context"

// ExecutionContext carries per-request identity through agent and tool
// execution.
type ExecutionContext struct {
	ConversationID string
	TraceID        string
	UserID         string
	ActiveAgent    string
	// Model and Temperature echo the request so tools that call back
	// into the LLM reuse the caller's model context.
	Model       string
	Temperature float64
	// Background requests (title generation and similar meta calls)
	// suppress orchestration events and skip delegation.
	Background bool
}

type execCtxKey struct{}

// WithExecution attaches an execution context.
func WithExecution(ctx context.Context, ec *ExecutionContext) context.Context {
	return context.WithValue(ctx, execCtxKey{}, ec)
}

// ExecutionFromContext returns the attached execution context, or nil.
func ExecutionFromContext(ctx context.Context) *ExecutionContext {
	ec, _ := ctx.Value(execCtxKey{}).(*ExecutionContext)
	return ec
}
