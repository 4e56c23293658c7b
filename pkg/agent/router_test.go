package agent

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aether-home/aether/pkg/models"
)

// fakeLLM replays a fixed chunk sequence for every Generate call.
type fakeLLM struct {
	chunks []Chunk
	err    error
	// lastInput captures the most recent request for assertions.
	lastInput *GenerateInput
}

func (f *fakeLLM) Generate(_ context.Context, input *GenerateInput) (<-chan Chunk, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan Chunk, len(f.chunks))
	for _, c := range f.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

func classifierReplying(text string) *Classifier {
	llm := &fakeLLM{chunks: []Chunk{&TextChunk{Content: text}}}
	return NewClassifier(llm, "test-model", slog.Default())
}

func TestRouter_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("preset wins over everything", func(t *testing.T) {
		r := NewRouter(classifierReplying(`{"agent": "librarian"}`), slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{
			Preset:         "analysis",
			Agent:          AgentDeveloper,
			DisabledAgents: []string{AgentDataScienceTeam},
		})
		assert.Equal(t, AgentDataScienceTeam, routing.ActiveAgent)
		assert.Equal(t, "preset:analysis", routing.Reason)
		assert.Equal(t, 1.0, routing.Confidence, "deterministic picks are certain")
		assert.False(t, routing.DisabledAgents[AgentDataScienceTeam],
			"a preset re-enables its own entry agent")
	})

	t.Run("unknown preset falls through to explicit agent", func(t *testing.T) {
		r := NewRouter(nil, slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{Preset: "gardening", Agent: AgentDeveloper})
		assert.Equal(t, AgentDeveloper, routing.ActiveAgent)
		assert.Equal(t, "explicit", routing.Reason)
	})

	t.Run("explicit agent overrides the disabled list", func(t *testing.T) {
		r := NewRouter(nil, slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{
			Agent:          AgentLibrarian,
			DisabledAgents: []string{AgentLibrarian, AgentDeveloper},
		})
		assert.Equal(t, AgentLibrarian, routing.ActiveAgent)
		assert.Equal(t, 1.0, routing.Confidence)
		assert.False(t, routing.DisabledAgents[AgentLibrarian])
		assert.True(t, routing.DisabledAgents[AgentDeveloper])
	})

	t.Run("unknown explicit agent lands on the architect", func(t *testing.T) {
		r := NewRouter(nil, slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{Agent: "plumber"})
		assert.Equal(t, AgentArchitect, routing.ActiveAgent)
		assert.Equal(t, "unknown agent", routing.Reason)
	})

	t.Run("auto uses the classifier", func(t *testing.T) {
		r := NewRouter(classifierReplying(`{"agent": "data_science_team", "confidence": 0.82}`), slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{Agent: models.AgentAuto})
		assert.Equal(t, AgentDataScienceTeam, routing.ActiveAgent)
		assert.Equal(t, "classified", routing.Reason)
		assert.Equal(t, 0.82, routing.Confidence, "the classifier's score rides along")
	})

	t.Run("clarification surfaces planner options", func(t *testing.T) {
		r := NewRouter(classifierReplying(`{"agent": "", "clarify": [
			{"title": "the porch light", "description": "the light by the front door"},
			{"title": "the garage light"}
		]}`), slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{})
		assert.Equal(t, AgentArchitect, routing.ActiveAgent)
		assert.Equal(t, "clarify", routing.Reason)
		assert.Equal(t, []ClarificationOption{
			{Title: "the porch light", Description: "the light by the front door"},
			{Title: "the garage light"},
		}, routing.Clarify)
	})

	t.Run("disabled classified agent falls back to the architect", func(t *testing.T) {
		r := NewRouter(classifierReplying(`{"agent": "developer"}`), slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{DisabledAgents: []string{AgentDeveloper}})
		assert.Equal(t, AgentArchitect, routing.ActiveAgent)
		assert.Equal(t, "classified agent disabled", routing.Reason)
	})

	t.Run("classifier failure defaults to the architect", func(t *testing.T) {
		llm := &fakeLLM{err: assert.AnError}
		r := NewRouter(NewClassifier(llm, "test-model", slog.Default()), slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{})
		assert.Equal(t, AgentArchitect, routing.ActiveAgent)
		assert.Equal(t, "default", routing.Reason)
	})

	t.Run("nil classifier defaults to the architect", func(t *testing.T) {
		r := NewRouter(nil, slog.Default())
		routing := r.Resolve(ctx, &models.ChatRequest{Agent: models.AgentAuto})
		assert.Equal(t, AgentArchitect, routing.ActiveAgent)
		assert.Equal(t, "default", routing.Reason)
	})
}
