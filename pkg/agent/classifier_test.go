package agent

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a clean JSON verdict", func(t *testing.T) {
		c := classifierReplying(`{"agent": "librarian"}`)
		agent, ok := c.Classify(ctx, "what motion sensors do I have?")
		assert.True(t, ok)
		assert.Equal(t, AgentLibrarian, agent)
	})

	t.Run("parses JSON wrapped in prose and fences", func(t *testing.T) {
		c := classifierReplying("Sure, here you go:\n```json\n{\"agent\": \"developer\"}\n```\n")
		agent, ok := c.Classify(ctx, "write me an automation")
		assert.True(t, ok)
		assert.Equal(t, AgentDeveloper, agent)
	})

	t.Run("collects split text chunks", func(t *testing.T) {
		llm := &fakeLLM{chunks: []Chunk{
			&TextChunk{Content: `{"agent": "sys`},
			&TextChunk{Content: `tem"}`},
		}}
		c := NewClassifier(llm, "test-model", slog.Default())
		agent, ok := c.Classify(ctx, "list my schedules")
		assert.True(t, ok)
		assert.Equal(t, AgentSystem, agent)
	})

	t.Run("rejects an unknown agent", func(t *testing.T) {
		c := classifierReplying(`{"agent": "weatherman"}`)
		_, ok := c.Classify(ctx, "anything")
		assert.False(t, ok)
	})

	t.Run("rejects non-JSON output", func(t *testing.T) {
		c := classifierReplying("I think the architect should handle this.")
		_, ok := c.Classify(ctx, "anything")
		assert.False(t, ok)
	})

	t.Run("fails closed on a generate error", func(t *testing.T) {
		llm := &fakeLLM{err: assert.AnError}
		c := NewClassifier(llm, "test-model", slog.Default())
		_, ok := c.Classify(ctx, "anything")
		assert.False(t, ok)
	})

	t.Run("clamps confidence into range", func(t *testing.T) {
		c := classifierReplying(`{"agent": "librarian", "confidence": 1.7}`)
		verdict, err := c.Plan(ctx, "what sensors do I have?")
		require.NoError(t, err)
		assert.Equal(t, 1.0, verdict.Confidence)

		c = classifierReplying(`{"agent": "librarian", "confidence": -0.3}`)
		verdict, err = c.Plan(ctx, "what sensors do I have?")
		require.NoError(t, err)
		assert.Zero(t, verdict.Confidence)
	})

	t.Run("keeps the reasoning text", func(t *testing.T) {
		c := classifierReplying(`{"agent": "developer", "confidence": 0.9, "reasoning": "the user wants YAML"}`)
		verdict, err := c.Plan(ctx, "write me an automation")
		require.NoError(t, err)
		assert.Equal(t, "the user wants YAML", verdict.Reasoning)
	})

	t.Run("sends the user message with zero temperature", func(t *testing.T) {
		llm := &fakeLLM{chunks: []Chunk{&TextChunk{Content: `{"agent": "architect"}`}}}
		c := NewClassifier(llm, "test-model", slog.Default())
		_, err := c.Plan(ctx, "is the heating on?")
		require.NoError(t, err)
		require.NotNil(t, llm.lastInput)
		assert.Zero(t, llm.lastInput.Temperature)
		require.Len(t, llm.lastInput.Messages, 2)
		assert.Equal(t, "system", llm.lastInput.Messages[0].Role)
		assert.Equal(t, "is the heating on?", llm.lastInput.Messages[1].Content)
	})
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`prefix {"a":1} suffix`))
	assert.Equal(t, `{"a":{"b":2}}`, extractJSON(`{"a":{"b":2}}`))
	assert.Equal(t, "no braces here", extractJSON("no braces here"))
}
