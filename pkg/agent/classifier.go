package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"
)

// classifierTimeout bounds the classification call. Classification is
// advisory; a slow or failing classifier must not stall the stream.
const classifierTimeout = 10 * time.Second

const classifierSystemPrompt = `You route home-assistant requests to one agent.
Agents: architect (home state, control, automations), data_science_team
(multi-step analysis over history), librarian (entity discovery and
catalogue), developer (automation YAML and scripts), system (schedules
and approvals).
Reply with JSON: {"agent": "<name>", "confidence": 0.0, "reasoning": "<why>",
"clarify": [{"title": "<short label>", "description": "<what picking it means>"}]}.
Confidence is between 0 and 1. Leave clarify empty unless the request
is too ambiguous to route.`

// ClarificationOption is one interpretation offered back to the user
// when a request is too ambiguous to route.
type ClarificationOption struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Classification is the planner's verdict for one request.
type Classification struct {
	Agent      string                `json:"agent"`
	Confidence float64               `json:"confidence,omitempty"`
	Reasoning  string                `json:"reasoning,omitempty"`
	Clarify    []ClarificationOption `json:"clarify,omitempty"`
}

// Classifier picks an agent for "auto" requests with a single cheap
// LLM call.
type Classifier struct {
	llm    LLMClient
	model  string
	logger *slog.Logger
}

// NewClassifier creates a classifier using the given model.
func NewClassifier(llm LLMClient, model string, logger *slog.Logger) *Classifier {
	return &Classifier{llm: llm, model: model, logger: logger}
}

// Classify returns the agent for a user message. ok is false when
// classification failed or produced an unknown agent; the caller falls
// back to the architect.
func (c *Classifier) Classify(ctx context.Context, userMessage string) (string, bool) {
	verdict, err := c.Plan(ctx, userMessage)
	if err != nil || verdict.Agent == "" || !Known(verdict.Agent) {
		return "", false
	}
	return verdict.Agent, true
}

// Plan runs the full classification call, including clarification
// options for ambiguous requests.
func (c *Classifier) Plan(ctx context.Context, userMessage string) (Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, classifierTimeout)
	defer cancel()

	ch, err := c.llm.Generate(ctx, &GenerateInput{
		Model:       c.model,
		Temperature: 0,
		Messages: []ConversationMessage{
			{Role: "system", Content: classifierSystemPrompt},
			{Role: "user", Content: userMessage},
		},
	})
	if err != nil {
		return Classification{}, err
	}

	var sb strings.Builder
	for chunk := range ch {
		switch ck := chunk.(type) {
		case *TextChunk:
			sb.WriteString(ck.Content)
		case *ErrorChunk:
			c.logger.Warn("classifier LLM error", "error", ck.Message)
		}
	}

	var verdict Classification
	raw := extractJSON(sb.String())
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		c.logger.Warn("classifier returned non-JSON output", "output", truncate(sb.String(), 200))
		return Classification{}, err
	}
	if verdict.Confidence < 0 {
		verdict.Confidence = 0
	}
	if verdict.Confidence > 1 {
		verdict.Confidence = 1
	}
	return verdict, nil
}

// extractJSON pulls the first {...} object out of model output that
// may be wrapped in prose or code fences.
func extractJSON(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
