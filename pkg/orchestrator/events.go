// Package orchestrator runs the streaming chat loop: routing, the
// tool-calling iteration, delegation between agents, and the event
// stream the API layer forwards as SSE.
package orchestrator

import "github.com/aether-home/aether/pkg/agent"

// EventType identifies one kind of stream event.
type EventType string

const (
	EventToken                EventType = "token"
	EventThinking             EventType = "thinking"
	EventToolCall             EventType = "tool_call"
	EventToolResult           EventType = "tool_result"
	EventAgentStart           EventType = "agent_start"
	EventAgentEnd             EventType = "agent_end"
	EventDelegation           EventType = "delegation"
	EventStatus               EventType = "status"
	EventRouting              EventType = "routing"
	EventClarificationOptions EventType = "clarification_options"
	EventProposalCreated      EventType = "proposal_created"
	EventApprovalRequired     EventType = "approval_required"
	EventTrace                EventType = "trace"
	EventMetadata             EventType = "metadata"
	EventError                EventType = "error"
)

// Trace lifecycle kinds carried on the Event field of trace events.
// The activity panel brackets each agent with start/end, attributes
// tool activity to the agent that ran it, and closes the stream with
// a complete record listing every agent that took part.
const (
	TraceStart      = "start"
	TraceEnd        = "end"
	TraceToolCall   = "tool_call"
	TraceToolResult = "tool_result"
	TraceComplete   = "complete"
)

// DoneSentinel terminates every stream, success or failure.
const DoneSentinel = "[DONE]"

// StreamEvent is one event on the chat stream. Only the fields
// relevant to the event type are set.
type StreamEvent struct {
	Type    EventType `json:"type"`
	Agent   string    `json:"agent,omitempty"`
	Content string    `json:"content,omitempty"`

	// tool_call / tool_result
	Tool    string `json:"tool,omitempty"`
	CallID  string `json:"call_id,omitempty"`
	IsError bool   `json:"is_error,omitempty"`

	// delegation
	FromAgent string `json:"from_agent,omitempty"`
	ToAgent   string `json:"to_agent,omitempty"`

	// routing
	Reason     string  `json:"reason,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`

	// clarification_options
	Options []agent.ClarificationOption `json:"options,omitempty"`

	// proposal_created / approval_required
	ProposalID string `json:"proposal_id,omitempty"`

	// trace lifecycle
	Event  string   `json:"event,omitempty"`
	Agents []string `json:"agents,omitempty"`

	// trace / metadata
	TraceID        string                 `json:"trace_id,omitempty"`
	ConversationID string                 `json:"conversation_id,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// Emitter delivers one event to the client. A returned error means
// the client is gone and the stream should stop.
type Emitter func(StreamEvent) error
