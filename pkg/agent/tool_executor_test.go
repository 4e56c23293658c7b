package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entproposal "github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/pkg/services"
	testdb "github.com/aether-home/aether/test/database"
)

// stubTool is a scriptable Tool for executor tests.
type stubTool struct {
	name     string
	mutating bool
	long     bool
	execute  func(ctx context.Context, ec *ExecutionContext, args json.RawMessage) (string, error)
}

func (s *stubTool) Definition() ToolDefinition {
	return ToolDefinition{Name: s.name, Description: "stub", ParametersSchema: `{"type":"object"}`}
}
func (s *stubTool) Mutating() bool    { return s.mutating }
func (s *stubTool) LongRunning() bool { return s.long }
func (s *stubTool) Execute(ctx context.Context, ec *ExecutionContext, args json.RawMessage) (string, error) {
	return s.execute(ctx, ec, args)
}

func testTimeouts() ExecutorTimeouts {
	return ExecutorTimeouts{Tool: 5 * time.Second, Analysis: 10 * time.Second}
}

func TestExecutor_Execute(t *testing.T) {
	client := testdb.NewTestClient(t)
	proposals := services.NewProposalService(client.Client)
	ctx := context.Background()
	ec := &ExecutionContext{ConversationID: "conv-1", TraceID: "tr-1"}

	t.Run("runs a read-only tool", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&stubTool{
			name: "get_entity_state",
			execute: func(_ context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
				return "light.porch is on", nil
			},
		})
		executor := NewExecutor(registry, proposals, slog.Default())

		result := executor.Execute(ctx, ec, ToolCall{ID: "c1", Name: "get_entity_state", Arguments: `{}`}, testTimeouts())
		assert.False(t, result.IsError)
		assert.False(t, result.NeedsApproval)
		assert.Equal(t, "light.porch is on", result.Content)
	})

	t.Run("carries the execution context on ctx", func(t *testing.T) {
		registry := NewRegistry()
		var seen *ExecutionContext
		registry.Register(&stubTool{
			name: "get_entity_state",
			execute: func(callCtx context.Context, _ *ExecutionContext, _ json.RawMessage) (string, error) {
				seen = ExecutionFromContext(callCtx)
				return "ok", nil
			},
		})
		executor := NewExecutor(registry, proposals, slog.Default())

		rich := &ExecutionContext{
			ConversationID: "conv-2",
			TraceID:        "tr-2",
			Model:          "test-model",
			Temperature:    0.4,
		}
		result := executor.Execute(ctx, rich, ToolCall{ID: "c8", Name: "get_entity_state", Arguments: `{}`}, testTimeouts())
		require.False(t, result.IsError)
		require.NotNil(t, seen, "tools reach the execution context without threading it")
		assert.Equal(t, "conv-2", seen.ConversationID)
		assert.Equal(t, "test-model", seen.Model)
		assert.Equal(t, 0.4, seen.Temperature)
	})

	t.Run("reports an unknown tool as an error result", func(t *testing.T) {
		executor := NewExecutor(NewRegistry(), proposals, slog.Default())
		result := executor.Execute(ctx, ec, ToolCall{ID: "c2", Name: "nonexistent", Arguments: `{}`}, testTimeouts())
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "unknown tool")
	})

	t.Run("reports a tool failure as an error result", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&stubTool{
			name: "query_history",
			execute: func(_ context.Context, _ *ExecutionContext, _ json.RawMessage) (string, error) {
				return "", assert.AnError
			},
		})
		executor := NewExecutor(registry, proposals, slog.Default())

		result := executor.Execute(ctx, ec, ToolCall{ID: "c3", Name: "query_history", Arguments: `{}`}, testTimeouts())
		assert.True(t, result.IsError)
	})

	t.Run("times out a slow tool", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&stubTool{
			name: "query_history",
			execute: func(callCtx context.Context, _ *ExecutionContext, _ json.RawMessage) (string, error) {
				<-callCtx.Done()
				return "", callCtx.Err()
			},
		})
		executor := NewExecutor(registry, proposals, slog.Default())

		result := executor.Execute(ctx, ec, ToolCall{ID: "c4", Name: "query_history", Arguments: `{}`},
			ExecutorTimeouts{Tool: 50 * time.Millisecond, Analysis: 50 * time.Millisecond})
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "timed out after")
	})

	t.Run("gates a mutating tool behind a proposal", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&stubTool{
			name:     "call_service",
			mutating: true,
			execute: func(_ context.Context, _ *ExecutionContext, _ json.RawMessage) (string, error) {
				t.Fatal("mutating tool must not execute directly")
				return "", nil
			},
		})
		executor := NewExecutor(registry, proposals, slog.Default())

		result := executor.Execute(ctx, ec, ToolCall{
			ID:        "c5",
			Name:      "call_service",
			Arguments: `{"title": "Turn off porch light", "domain": "light", "service": "turn_off", "entity_id": "light.porch"}`,
		}, testTimeouts())

		require.False(t, result.IsError)
		assert.True(t, result.NeedsApproval)
		require.NotEmpty(t, result.ProposalID)
		assert.Contains(t, result.Content, "requires approval")

		p, err := proposals.Get(ctx, result.ProposalID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusProposed, p.Status)
		assert.Equal(t, entproposal.KindEntityCommand, p.Kind)
		assert.Equal(t, "Turn off porch light", p.Title)
		require.NotNil(t, p.ConversationID)
		assert.Equal(t, "conv-1", *p.ConversationID)
	})

	t.Run("honors an explicit proposal kind", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&stubTool{
			name:     "seek_approval",
			mutating: true,
			execute: func(_ context.Context, _ *ExecutionContext, _ json.RawMessage) (string, error) {
				return "", nil
			},
		})
		executor := NewExecutor(registry, proposals, slog.Default())

		result := executor.Execute(ctx, ec, ToolCall{
			ID:        "c6",
			Name:      "seek_approval",
			Arguments: `{"kind": "automation", "title": "Night lights", "automation": {"alias": "Night lights"}}`,
		}, testTimeouts())

		require.True(t, result.NeedsApproval)
		p, err := proposals.Get(ctx, result.ProposalID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.KindAutomation, p.Kind)
	})

	t.Run("rejects malformed mutating arguments", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(&stubTool{
			name:     "call_service",
			mutating: true,
			execute: func(_ context.Context, _ *ExecutionContext, _ json.RawMessage) (string, error) {
				return "", nil
			},
		})
		executor := NewExecutor(registry, proposals, slog.Default())

		result := executor.Execute(ctx, ec, ToolCall{ID: "c7", Name: "call_service", Arguments: `not json`}, testTimeouts())
		assert.True(t, result.IsError)
		assert.False(t, result.NeedsApproval)
	})
}

func TestProposalKindForTool(t *testing.T) {
	tests := []struct {
		name string
		tool string
		body map[string]interface{}
		want entproposal.Kind
	}{
		{"explicit kind wins", "call_service", map[string]interface{}{"kind": "script"}, entproposal.KindScript},
		{"invalid explicit kind is ignored", "call_service", map[string]interface{}{"kind": "banana"}, entproposal.KindEntityCommand},
		{"render_automation", "render_automation", nil, entproposal.KindAutomation},
		{"call_service", "call_service", nil, entproposal.KindEntityCommand},
		{"automation body implies automation", "seek_approval", map[string]interface{}{"automation": map[string]interface{}{}}, entproposal.KindAutomation},
		{"fallback", "seek_approval", map[string]interface{}{}, entproposal.KindEntityCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, proposalKindForTool(tt.tool, tt.body))
		})
	}
}
