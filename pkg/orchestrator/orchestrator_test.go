package orchestrator

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-home/aether/pkg/agent"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
	testdb "github.com/aether-home/aether/test/database"
)

// scriptedLLM replays one canned chunk stream per Generate call.
type scriptedLLM struct {
	turns [][]agent.Chunk
	calls int
}

func (s *scriptedLLM) Generate(_ context.Context, _ *agent.GenerateInput) (<-chan agent.Chunk, error) {
	var turn []agent.Chunk
	if s.calls < len(s.turns) {
		turn = s.turns[s.calls]
	}
	s.calls++

	ch := make(chan agent.Chunk, len(turn))
	for _, c := range turn {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

// lookupTool is a read-only stub owned by the librarian.
type lookupTool struct{}

func (lookupTool) Definition() agent.ToolDefinition {
	return agent.ToolDefinition{Name: "discover_entities", Description: "list entities", ParametersSchema: `{}`}
}
func (lookupTool) Mutating() bool    { return false }
func (lookupTool) LongRunning() bool { return false }
func (lookupTool) Execute(_ context.Context, _ *agent.ExecutionContext, _ json.RawMessage) (string, error) {
	return "3 lights, 2 sensors", nil
}

type orchestratorHarness struct {
	orch          *Orchestrator
	conversations *services.ConversationService
	usage         *services.UsageService
}

func newHarness(t *testing.T, llm agent.LLMClient) *orchestratorHarness {
	t.Helper()
	client := testdb.NewTestClient(t)

	registry := agent.NewRegistry()
	registry.Register(lookupTool{})
	proposals := services.NewProposalService(client.Client)
	conversations := services.NewConversationService(client.Client)

	orch := New(
		llm,
		agent.NewRouter(nil, slog.Default()),
		agent.NewExecutor(registry, proposals, slog.Default()),
		conversations,
		services.NewSettingsService(client.Client),
		services.NewUsageService(client.Client),
		slog.Default(),
	)
	return &orchestratorHarness{
		orch:          orch,
		conversations: conversations,
		usage:         services.NewUsageService(client.Client),
	}
}

func collect(t *testing.T, orch *Orchestrator, req *models.ChatRequest) []StreamEvent {
	t.Helper()
	var events []StreamEvent
	err := orch.Stream(context.Background(), req, "alice", func(ev StreamEvent) error {
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, events)
	require.Equal(t, EventMetadata, events[len(events)-1].Type, "metadata closes every stream")
	return events
}

func eventTypes(events []StreamEvent) []EventType {
	out := make([]EventType, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}

func chatRequest(userMessage string) *models.ChatRequest {
	return &models.ChatRequest{
		Model: "test-model",
		Agent: agent.AgentArchitect,
		Messages: []models.ChatMessage{
			{Role: "user", Content: models.FlatContent(userMessage)},
		},
	}
}

func TestOrchestrator_Stream(t *testing.T) {
	t.Run("plain reply", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.TextChunk{Content: "The porch light "},
			&agent.TextChunk{Content: "is on."},
			&agent.UsageChunk{InputTokens: 120, OutputTokens: 8},
		}}}
		h := newHarness(t, llm)

		events := collect(t, h.orch, chatRequest("is the porch light on?"))
		assert.Equal(t, []EventType{
			EventRouting, EventAgentStart, EventTrace, EventToken, EventToken,
			EventAgentEnd, EventTrace, EventTrace, EventMetadata,
		}, eventTypes(events))

		meta := events[len(events)-1]
		assert.NotEmpty(t, meta.ConversationID)
		assert.NotEmpty(t, meta.TraceID)
		assert.Equal(t, "architect", meta.Metadata["agent"])
		assert.NotEmpty(t, meta.Metadata["job_id"])

		assert.Equal(t, TraceStart, events[2].Event)
		assert.Equal(t, "architect", events[2].Agent)
		closing := events[len(events)-2]
		assert.Equal(t, TraceComplete, closing.Event)
		assert.Equal(t, []string{"architect"}, closing.Agents)

		// Both sides of the turn are persisted.
		msgs, err := h.conversations.GetMessages(context.Background(), meta.ConversationID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "is the porch light on?", msgs[0].Content)
		assert.Equal(t, "The porch light is on.", msgs[1].Content)

		stats, err := h.usage.StatsForTrace(context.Background(), meta.TraceID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Spans)
		assert.Equal(t, 120, stats.PromptTokens)
	})

	t.Run("thinking text is rerouted and not persisted", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.TextChunk{Content: "<think>check the state first</think>It is on."},
		}}}
		h := newHarness(t, llm)

		events := collect(t, h.orch, chatRequest("is the porch light on?"))

		var thinking, visible string
		for _, ev := range events {
			switch ev.Type {
			case EventThinking:
				thinking += ev.Content
			case EventToken:
				visible += ev.Content
			}
		}
		assert.Equal(t, "check the state first", thinking)
		assert.Equal(t, "It is on.", visible)

		meta := events[len(events)-1]
		msgs, err := h.conversations.GetMessages(context.Background(), meta.ConversationID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "It is on.", msgs[1].Content)
	})

	t.Run("tool call delegates to the owning agent", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{
			{&agent.ToolCallChunk{CallID: "c1", Name: "discover_entities", Arguments: `{}`}},
			{&agent.TextChunk{Content: "You have 3 lights and 2 sensors."}},
		}}
		h := newHarness(t, llm)

		events := collect(t, h.orch, chatRequest("what entities do I have?"))
		assert.Equal(t, []EventType{
			EventRouting, EventAgentStart, EventTrace,
			EventToolCall, EventDelegation, EventAgentStart, EventTrace,
			EventTrace, EventTrace,
			EventAgentEnd, EventTrace, EventToolResult,
			EventToken, EventAgentEnd, EventTrace, EventTrace, EventMetadata,
		}, eventTypes(events))

		var delegation, result StreamEvent
		var traces []StreamEvent
		for _, ev := range events {
			switch ev.Type {
			case EventDelegation:
				delegation = ev
			case EventToolResult:
				result = ev
			case EventTrace:
				traces = append(traces, ev)
			}
		}
		assert.Equal(t, "architect", delegation.FromAgent)
		assert.Equal(t, "librarian", delegation.ToAgent)
		assert.Equal(t, "3 lights, 2 sensors", result.Content)
		assert.Equal(t, 2, llm.calls, "the tool result goes back for a second turn")

		// Tool activity is attributed to the delegated agent, bracketed
		// by its start and end.
		require.Len(t, traces, 7)
		assert.Equal(t, TraceStart, traces[1].Event)
		assert.Equal(t, "librarian", traces[1].Agent)
		assert.Equal(t, TraceToolCall, traces[2].Event)
		assert.Equal(t, "librarian", traces[2].Agent)
		assert.Equal(t, "discover_entities", traces[2].Tool)
		assert.Equal(t, TraceToolResult, traces[3].Event)
		assert.Equal(t, TraceEnd, traces[4].Event)
		assert.Equal(t, "librarian", traces[4].Agent)

		closing := traces[6]
		assert.Equal(t, TraceComplete, closing.Event)
		assert.Equal(t, []string{"architect", "librarian"}, closing.Agents)

		meta := events[len(events)-1]
		assert.Equal(t, []string{"discover_entities"}, meta.Metadata["tools"])
	})

	t.Run("disabled agent cannot be delegated to", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{
			{&agent.ToolCallChunk{CallID: "c1", Name: "discover_entities", Arguments: `{}`}},
			{&agent.TextChunk{Content: "I could not look that up."}},
		}}
		h := newHarness(t, llm)

		req := chatRequest("what entities do I have?")
		req.DisabledAgents = []string{"librarian"}
		events := collect(t, h.orch, req)

		for _, ev := range events {
			assert.NotEqual(t, EventDelegation, ev.Type)
			if ev.Type == EventToolResult {
				t.Errorf("disabled delegation must not produce a tool result event, got %+v", ev)
			}
		}
	})

	t.Run("background request is silent and unpersisted", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.TextChunk{Content: "Porch light check"},
		}}}
		h := newHarness(t, llm)

		events := collect(t, h.orch, chatRequest("Generate a concise title for this conversation"))
		assert.Equal(t, []EventType{EventToken, EventMetadata}, eventTypes(events))

		meta := events[len(events)-1]
		_, err := h.conversations.Get(context.Background(), meta.ConversationID)
		assert.Equal(t, services.ErrNotFound, err, "background turns leave no conversation row")
	})

	t.Run("background meta prompt in the system message is detected", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.TextChunk{Content: "Porch light check"},
		}}}
		h := newHarness(t, llm)

		req := &models.ChatRequest{
			Model: "test-model",
			Agent: agent.AgentArchitect,
			Messages: []models.ChatMessage{
				{Role: "system", Content: models.FlatContent("Generate a concise title for this conversation.")},
				{Role: "user", Content: models.FlatContent("is the porch light on?")},
			},
		}
		events := collect(t, h.orch, req)
		assert.Equal(t, []EventType{EventToken, EventMetadata}, eventTypes(events))

		meta := events[len(events)-1]
		_, err := h.conversations.Get(context.Background(), meta.ConversationID)
		assert.Equal(t, services.ErrNotFound, err)
	})

	t.Run("background turns get a fresh conversation id each time", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{
			{&agent.TextChunk{Content: "Porch light check"}},
			{&agent.TextChunk{Content: "Porch light check"}},
		}}
		h := newHarness(t, llm)

		first := collect(t, h.orch, chatRequest("Generate a concise title for this conversation"))
		second := collect(t, h.orch, chatRequest("Generate a concise title for this conversation"))
		assert.NotEqual(t,
			first[len(first)-1].ConversationID,
			second[len(second)-1].ConversationID,
			"meta requests must not collide on a derived id")
	})

	t.Run("lost assistant row surfaces as an error event", func(t *testing.T) {
		// Postgres rejects NUL bytes in text, so the assistant insert
		// fails while the rest of the stream already succeeded.
		llm := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.TextChunk{Content: "It is on.\x00"},
		}}}
		h := newHarness(t, llm)

		events := collect(t, h.orch, chatRequest("is the porch light on?"))
		types := eventTypes(events)
		assert.Contains(t, types, EventError)
		assert.Equal(t, EventMetadata, types[len(types)-1], "the stream still closes normally")

		for _, ev := range events {
			if ev.Type == EventError {
				assert.Contains(t, ev.Content, "not saved")
			}
		}
	})

	t.Run("provider error closes with an error and metadata", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.ErrorChunk{Message: "model overloaded"},
		}}}
		h := newHarness(t, llm)

		var events []StreamEvent
		err := h.orch.Stream(context.Background(), chatRequest("hello"), "alice", func(ev StreamEvent) error {
			events = append(events, ev)
			return nil
		})
		require.NoError(t, err)

		types := eventTypes(events)
		assert.Contains(t, types, EventError)
		assert.Equal(t, EventMetadata, types[len(types)-1])
	})

	t.Run("same opening message lands on the same conversation", func(t *testing.T) {
		llm := &scriptedLLM{turns: [][]agent.Chunk{
			{&agent.TextChunk{Content: "On."}},
			{&agent.TextChunk{Content: "Still on."}},
		}}
		h := newHarness(t, llm)

		first := collect(t, h.orch, chatRequest("is the porch light on?"))
		second := collect(t, h.orch, chatRequest("is the porch light on?"))
		assert.Equal(t,
			first[len(first)-1].ConversationID,
			second[len(second)-1].ConversationID)
	})
}

func TestOrchestrator_RemoteArchitect(t *testing.T) {
	t.Run("foreground turns stream from the remote service", func(t *testing.T) {
		local := &scriptedLLM{}
		remote := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.TextChunk{Content: "You have 3 lights."},
			&agent.UsageChunk{InputTokens: 50, OutputTokens: 6},
		}}}
		h := newHarness(t, local)
		h.orch.UseRemoteArchitect(remote)

		events := collect(t, h.orch, chatRequest("what entities do I have?"))
		assert.Equal(t, []EventType{
			EventRouting, EventAgentStart, EventTrace, EventToken,
			EventAgentEnd, EventTrace, EventTrace, EventMetadata,
		}, eventTypes(events))
		assert.Zero(t, local.calls, "the local tool loop stays idle")
		assert.Equal(t, 1, remote.calls)

		// The reply persists exactly as in monolith mode.
		meta := events[len(events)-1]
		msgs, err := h.conversations.GetMessages(context.Background(), meta.ConversationID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "You have 3 lights.", msgs[1].Content)
	})

	t.Run("remote tool activity is forwarded", func(t *testing.T) {
		local := &scriptedLLM{}
		remote := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.ToolCallChunk{CallID: "c1", Name: "discover_entities", Arguments: `{}`},
			&agent.TextChunk{Content: "3 lights, 2 sensors."},
		}}}
		h := newHarness(t, local)
		h.orch.UseRemoteArchitect(remote)

		events := collect(t, h.orch, chatRequest("what entities do I have?"))
		types := eventTypes(events)
		assert.Contains(t, types, EventToolCall)
		assert.Equal(t, []string{"discover_entities"}, events[len(events)-1].Metadata["tools"])
	})

	t.Run("background requests stay on the local client", func(t *testing.T) {
		local := &scriptedLLM{turns: [][]agent.Chunk{{
			&agent.TextChunk{Content: "Porch light check"},
		}}}
		remote := &scriptedLLM{}
		h := newHarness(t, local)
		h.orch.UseRemoteArchitect(remote)

		events := collect(t, h.orch, chatRequest("Generate a concise title for this conversation"))
		assert.Equal(t, []EventType{EventToken, EventMetadata}, eventTypes(events))
		assert.Equal(t, 1, local.calls)
		assert.Zero(t, remote.calls)
	})
}

func TestOrchestrator_Complete(t *testing.T) {
	llm := &scriptedLLM{turns: [][]agent.Chunk{{
		&agent.TextChunk{Content: "<think>short answer</think>"},
		&agent.TextChunk{Content: "Yes, it is on."},
	}}}
	h := newHarness(t, llm)

	resp, err := h.orch.Complete(context.Background(), chatRequest("is the porch light on?"), "alice")
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "Yes, it is on.", resp.Choices[0].Message.Content)
	assert.Equal(t, "assistant", resp.Choices[0].Message.Role)
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	assert.NotEmpty(t, resp.ConversationID)
	assert.Equal(t, resp.TraceID, resp.ID)
}
