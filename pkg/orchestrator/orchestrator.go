package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	entmessage "github.com/aether-home/aether/ent/message"
	"github.com/aether-home/aether/pkg/agent"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
	"github.com/aether-home/aether/pkg/trace"
)

// maxIterations bounds the tool-calling loop per request. The LLM gets
// that many chances to call tools before the stream is cut off.
const maxIterations = 10

// Orchestrator drives one chat request end to end: routing, the
// tool-calling loop, delegation, persistence, and the event stream.
type Orchestrator struct {
	llm           agent.LLMClient
	router        *agent.Router
	executor      *agent.Executor
	conversations *services.ConversationService
	settings      *services.SettingsService
	usage         *services.UsageService
	logger        *slog.Logger

	// remote, when set, delegates the architect workflow to a remote
	// service speaking the same chunk protocol (distributed mode).
	remote agent.LLMClient
}

// UseRemoteArchitect switches the orchestrator into distributed mode:
// foreground turns stream from the remote architect service instead of
// running the local tool loop. Routing, persistence, and the event
// vocabulary stay local and unchanged.
func (o *Orchestrator) UseRemoteArchitect(client agent.LLMClient) {
	o.remote = client
}

// New creates an orchestrator.
func New(
	llm agent.LLMClient,
	router *agent.Router,
	executor *agent.Executor,
	conversations *services.ConversationService,
	settings *services.SettingsService,
	usage *services.UsageService,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		llm:           llm,
		router:        router,
		executor:      executor,
		conversations: conversations,
		settings:      settings,
		usage:         usage,
		logger:        logger,
	}
}

// Stream runs one chat request and emits events until completion. The
// emitter receives every event in order; the caller appends the done
// sentinel. The returned conversation id is also carried on the final
// metadata event.
func (o *Orchestrator) Stream(ctx context.Context, req *models.ChatRequest, userID string, emit Emitter) error {
	chatSettings, err := o.settings.Chat(ctx)
	if err != nil {
		o.logger.Warn("falling back to default chat settings", "error", err)
		chatSettings = models.ChatSettings{
			StreamTimeout:       900 * time.Second,
			ToolTimeout:         30 * time.Second,
			AnalysisToolTimeout: 180 * time.Second,
		}
	}
	ctx, cancel := context.WithTimeout(ctx, chatSettings.StreamTimeout)
	defer cancel()

	first := req.FirstUserMessage()
	background := IsBackgroundRequest(req.SystemMessage()) || IsBackgroundRequest(first)

	conversationID := req.ConversationID
	if conversationID == "" {
		if background {
			// Meta requests must not land on the grouping the opening
			// message would hash to.
			conversationID = uuid.New().String()
		} else {
			conversationID = DeriveConversationID(first)
		}
	}
	traceID := trace.NewID()

	run := &streamRun{
		orch:     o,
		req:      req,
		emit:     emit,
		settings: chatSettings,
		execCtx: &agent.ExecutionContext{
			ConversationID: conversationID,
			TraceID:        traceID,
			UserID:         userID,
			Model:          req.Model,
			Temperature:    req.Temperature,
			Background:     background,
		},
	}

	routing := o.router.Resolve(ctx, req)
	run.execCtx.ActiveAgent = routing.ActiveAgent
	run.disabled = routing.DisabledAgents

	if !background {
		if err := emit(StreamEvent{Type: EventRouting, Agent: routing.ActiveAgent, Reason: routing.Reason, Confidence: routing.Confidence}); err != nil {
			return err
		}
		if len(routing.Clarify) > 0 {
			if err := emit(StreamEvent{Type: EventClarificationOptions, Options: routing.Clarify}); err != nil {
				return err
			}
			return run.finish(ctx, conversationID, traceID, "")
		}
		if err := emit(StreamEvent{Type: EventAgentStart, Agent: routing.ActiveAgent}); err != nil {
			return err
		}
		if err := run.emitTrace(TraceStart, routing.ActiveAgent, ""); err != nil {
			return err
		}
	}

	if !background {
		if _, err := o.conversations.GetOrCreate(ctx, conversationID, userID); err != nil {
			return o.fail(emit, conversationID, traceID, fmt.Errorf("conversation setup failed: %w", err))
		}
		if last := lastUserMessage(req); last != "" {
			_, err := o.conversations.AddMessage(ctx, models.AddMessageRequest{
				ConversationID: conversationID,
				Role:           entmessage.RoleUser,
				Content:        last,
			})
			if err != nil {
				return o.fail(emit, conversationID, traceID, fmt.Errorf("failed to persist user message: %w", err))
			}
		}
	}

	var finalText string
	if o.remote != nil && !background {
		finalText, err = run.remoteLoop(ctx)
	} else {
		finalText, err = run.loop(ctx)
	}
	if err != nil {
		return o.fail(emit, conversationID, traceID, err)
	}

	if !background {
		persisted := StripThinking(finalText)
		if persisted != "" {
			_, err := o.conversations.AddMessage(ctx, models.AddMessageRequest{
				ConversationID: conversationID,
				Role:           entmessage.RoleAssistant,
				Content:        persisted,
			})
			if err != nil {
				// The reply already streamed, so the stream keeps
				// going, but the client must hear the row was lost.
				o.logger.Error("failed to persist assistant message",
					"conversation_id", conversationID, "error", err)
				if emitErr := emit(StreamEvent{Type: EventError, Content: "database error: the reply was not saved"}); emitErr != nil {
					return emitErr
				}
			}
		}
		if err := emit(StreamEvent{Type: EventAgentEnd, Agent: run.execCtx.ActiveAgent}); err != nil {
			return err
		}
		if err := run.emitTrace(TraceEnd, run.execCtx.ActiveAgent, ""); err != nil {
			return err
		}
	}

	return run.finish(ctx, conversationID, traceID, finalText)
}

// finish emits the closing trace and metadata events. Metadata is
// always the last event before the done sentinel.
func (r *streamRun) finish(_ context.Context, conversationID, traceID, _ string) error {
	if !r.execCtx.Background {
		if err := r.emit(StreamEvent{
			Type:    EventTrace,
			Event:   TraceComplete,
			TraceID: traceID,
			Agents:  r.agentsSeen,
		}); err != nil {
			return err
		}
	}
	return r.emit(StreamEvent{
		Type:           EventMetadata,
		ConversationID: conversationID,
		TraceID:        traceID,
		Metadata: map[string]interface{}{
			"model":  r.req.Model,
			"agent":  r.execCtx.ActiveAgent,
			"job_id": uuid.New().String(),
			"tools":  r.toolsUsed,
		},
	})
}

// fail reports a stream error and still closes with metadata so
// clients always see a terminal event pair.
func (o *Orchestrator) fail(emit Emitter, conversationID, traceID string, err error) error {
	o.logger.Error("stream failed", "conversation_id", conversationID, "trace_id", traceID, "error", err)
	if emitErr := emit(StreamEvent{Type: EventError, Content: userFacingError(err)}); emitErr != nil {
		return emitErr
	}
	return emit(StreamEvent{
		Type:           EventMetadata,
		ConversationID: conversationID,
		TraceID:        traceID,
	})
}

// userFacingError keeps provider internals out of the stream.
func userFacingError(err error) string {
	if services.IsExternalError(err) {
		return err.Error()
	}
	msg := err.Error()
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "unavailable") {
		return "the language model service is unavailable"
	}
	return msg
}

// Complete runs a non-streaming request by draining the stream into a
// single response body.
func (o *Orchestrator) Complete(ctx context.Context, req *models.ChatRequest, userID string) (*models.ChatCompletionResponse, error) {
	var sb strings.Builder
	var conversationID, traceID string
	var streamErr string

	err := o.Stream(ctx, req, userID, func(ev StreamEvent) error {
		switch ev.Type {
		case EventToken:
			sb.WriteString(ev.Content)
		case EventError:
			streamErr = ev.Content
		case EventMetadata:
			conversationID = ev.ConversationID
			traceID = ev.TraceID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if streamErr != "" {
		return nil, services.NewExternalError("llm", streamErr, nil)
	}

	return &models.ChatCompletionResponse{
		ID:             traceID,
		Object:         "chat.completion",
		Model:          req.Model,
		ConversationID: conversationID,
		TraceID:        traceID,
		Choices: []models.ChatChoice{{
			Index:        0,
			Message:      models.ChatChoiceMessage{Role: "assistant", Content: sb.String()},
			FinishReason: "stop",
		}},
	}, nil
}

func lastUserMessage(req *models.ChatRequest) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			return req.Messages[i].Content.String()
		}
	}
	return ""
}
