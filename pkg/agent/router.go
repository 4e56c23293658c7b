package agent

import (
	"context"
	"log/slog"

	"github.com/aether-home/aether/pkg/models"
)

// Routing is the outcome of intent resolution for one request.
type Routing struct {
	// ActiveAgent starts the stream.
	ActiveAgent string
	// Reason explains the pick; surfaced on the routing stream event.
	Reason string
	// Confidence is 1 for deterministic picks (preset, explicit) and
	// the classifier's self-reported score otherwise.
	Confidence float64
	// Clarify carries planner options when the request is too
	// ambiguous to route. The orchestrator asks instead of answering.
	Clarify []ClarificationOption
	// DisabledAgents are excluded as delegation targets for this request.
	DisabledAgents map[string]bool
}

// presetAgents maps workflow preset labels to their entry agent. A
// preset is an explicit user choice, so it also overrides the
// disabled-agents list for its entry agent.
var presetAgents = map[string]string{
	"analysis":   AgentDataScienceTeam,
	"discovery":  AgentLibrarian,
	"automation": AgentDeveloper,
	"schedules":  AgentSystem,
}

// Router resolves which agent handles an inbound chat request.
type Router struct {
	classifier *Classifier
	logger     *slog.Logger
}

// NewRouter creates a router. classifier may be nil, in which case
// "auto" requests always land on the architect.
func NewRouter(classifier *Classifier, logger *slog.Logger) *Router {
	return &Router{classifier: classifier, logger: logger}
}

// Resolve picks the active agent for a request.
//
// Precedence: preset, then explicit agent name, then classification.
// A disabled agent is never auto-selected; explicit choices win over
// the disabled list because the user asked for that agent by name.
func (r *Router) Resolve(ctx context.Context, req *models.ChatRequest) Routing {
	disabled := make(map[string]bool, len(req.DisabledAgents))
	for _, name := range req.DisabledAgents {
		disabled[name] = true
	}

	if req.Preset != "" {
		if agent, ok := presetAgents[req.Preset]; ok {
			delete(disabled, agent)
			return Routing{ActiveAgent: agent, Reason: "preset:" + req.Preset, Confidence: 1, DisabledAgents: disabled}
		}
		r.logger.Warn("unknown preset, falling through to agent selection", "preset", req.Preset)
	}

	if req.Agent != "" && req.Agent != models.AgentAuto {
		if Known(req.Agent) {
			delete(disabled, req.Agent)
			return Routing{ActiveAgent: req.Agent, Reason: "explicit", Confidence: 1, DisabledAgents: disabled}
		}
		r.logger.Warn("unknown agent requested, using architect", "agent", req.Agent)
		return Routing{ActiveAgent: AgentArchitect, Reason: "unknown agent", DisabledAgents: disabled}
	}

	if r.classifier != nil {
		verdict, err := r.classifier.Plan(ctx, req.FirstUserMessage())
		if err == nil {
			if len(verdict.Clarify) > 0 {
				return Routing{ActiveAgent: AgentArchitect, Reason: "clarify", Clarify: verdict.Clarify, DisabledAgents: disabled}
			}
			if Known(verdict.Agent) {
				if disabled[verdict.Agent] {
					return Routing{ActiveAgent: AgentArchitect, Reason: "classified agent disabled", DisabledAgents: disabled}
				}
				return Routing{ActiveAgent: verdict.Agent, Reason: "classified", Confidence: verdict.Confidence, DisabledAgents: disabled}
			}
		}
	}
	return Routing{ActiveAgent: AgentArchitect, Reason: "default", DisabledAgents: disabled}
}
