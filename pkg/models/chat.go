// Package models contains request/response models and business domain types.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChatMessage is one turn of the inbound chat request.
// Content accepts either a plain string or a list of {type, text}
// blocks (some providers send structured content); it is normalised
// to a flat string at decode time.
type ChatMessage struct {
	Role    string      `json:"role"`
	Content FlatContent `json:"content"`
}

// FlatContent is message content normalised to a single string.
type FlatContent string

// UnmarshalJSON flattens structured content blocks to plain text.
// Non-text blocks are ignored.
func (c *FlatContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = FlatContent(s)
		return nil
	}

	var blocks []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &blocks); err != nil {
		return fmt.Errorf("content must be a string or a list of content blocks: %w", err)
	}

	var sb strings.Builder
	for _, b := range blocks {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	*c = FlatContent(sb.String())
	return nil
}

// String returns the flattened content.
func (c FlatContent) String() string { return string(c) }

// AgentAuto requests automatic intent classification.
const AgentAuto = "auto"

// ChatRequest is the inbound chat completion request.
type ChatRequest struct {
	Model          string        `json:"model"`
	Messages       []ChatMessage `json:"messages"`
	Temperature    float64       `json:"temperature,omitempty"`
	Stream         bool          `json:"stream"`
	ConversationID string        `json:"conversation_id,omitempty"`
	Agent          string        `json:"agent,omitempty"`  // "auto" or a specific agent name
	Preset         string        `json:"preset,omitempty"` // workflow preset label
	DisabledAgents []string      `json:"disabled_agents,omitempty"`
}

// FirstUserMessage returns the content of the first user-role message,
// or "" when there is none.
func (r *ChatRequest) FirstUserMessage() string {
	for _, m := range r.Messages {
		if m.Role == "user" {
			return m.Content.String()
		}
	}
	return ""
}

// SystemMessage returns the content of the first system-role message,
// or "" when there is none.
func (r *ChatRequest) SystemMessage() string {
	for _, m := range r.Messages {
		if m.Role == "system" {
			return m.Content.String()
		}
	}
	return ""
}

// ChatChoice is one completion choice in the non-streaming response.
type ChatChoice struct {
	Index        int             `json:"index"`
	Message      ChatChoiceMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

// ChatChoiceMessage is the assistant message of a completion choice.
type ChatChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse is the single-shot (non-streaming) response body.
type ChatCompletionResponse struct {
	ID             string       `json:"id"`
	Object         string       `json:"object"`
	Model          string       `json:"model"`
	Choices        []ChatChoice `json:"choices"`
	ConversationID string       `json:"conversation_id"`
	TraceID        string       `json:"trace_id,omitempty"`
}
