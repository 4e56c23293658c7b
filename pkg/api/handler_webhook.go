package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// webhookPayload is the inbound controller webhook body. Controller
// automations put webhook_event and entity_id at the top level; the
// raw event shape nests entity_id under data.
type webhookPayload struct {
	EventType    string                 `json:"event_type"`
	WebhookEvent string                 `json:"webhook_event,omitempty"`
	EntityID     string                 `json:"entity_id,omitempty"`
	Data         map[string]interface{} `json:"data,omitempty"`
}

// handleWebhook serves POST /webhook/ha: controller-pushed events.
// Three shapes are understood: registry updates trigger a discovery
// resync, mobile notification actions resolve proposals, and anything
// else is matched against event-triggered schedules.
func (s *Server) handleWebhook(c *gin.Context) {
	if !s.checkWebhookSecret(c) {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid webhook secret"})
		return
	}

	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid webhook body"})
		return
	}
	if payload.EventType == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "event_type is required"})
		return
	}

	switch payload.EventType {
	case "entity_registry_updated":
		go s.resyncEntities()
		c.JSON(http.StatusAccepted, gin.H{"status": "resync scheduled"})
	case "mobile_app_notification_action":
		s.handleNotificationAction(c, payload)
	default:
		matched := s.dispatchScheduleMatches(c.Request.Context(), payload)
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "matched_schedules": matched})
	}
}

// checkWebhookSecret compares in constant time. An unset secret only
// passes outside production; Load already rejects that configuration.
func (s *Server) checkWebhookSecret(c *gin.Context) bool {
	secret := s.deps.Config.WebhookSecret
	if secret == "" {
		return !s.deps.Config.IsProduction()
	}
	got := c.GetHeader("X-Webhook-Secret")
	return subtle.ConstantTimeCompare([]byte(got), []byte(secret)) == 1
}

// resyncEntities refreshes the entity catalogue off the request path.
func (s *Server) resyncEntities() {
	if s.deps.HA == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshots, err := s.deps.HA.ListStates(ctx)
	if err != nil {
		s.deps.Logger.Warn("webhook-triggered resync failed", "error", err)
		return
	}
	if err := s.deps.Entities.UpsertBatch(ctx, snapshots); err != nil {
		s.deps.Logger.Error("webhook-triggered resync failed to upsert", "error", err)
		return
	}
	s.deps.Logger.Info("webhook-triggered resync complete", "entities", len(snapshots))
}

// handleNotificationAction resolves APPROVE_/REJECT_ actions sent from
// a phone notification. Approval also deploys when a deployer is wired.
func (s *Server) handleNotificationAction(c *gin.Context, payload webhookPayload) {
	action, _ := payload.Data["action"].(string)
	switch {
	case strings.HasPrefix(action, "APPROVE_"):
		proposalID := strings.TrimPrefix(action, "APPROVE_")
		approvedBy, _ := payload.Data["device_id"].(string)
		if approvedBy == "" {
			approvedBy = "mobile"
		}
		if _, err := s.deps.Proposals.Approve(c.Request.Context(), proposalID, approvedBy); err != nil {
			respondServiceError(c, err)
			return
		}
		if s.deps.Deployer != nil {
			if _, err := s.deps.Deployer.Deploy(c.Request.Context(), proposalID); err != nil {
				s.deps.Logger.Error("deploy after mobile approval failed", "proposal_id", proposalID, "error", err)
				c.JSON(http.StatusOK, gin.H{"status": "approved", "deploy_error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "approved"})
	case strings.HasPrefix(action, "REJECT_"):
		proposalID := strings.TrimPrefix(action, "REJECT_")
		if _, err := s.deps.Proposals.Reject(c.Request.Context(), proposalID, "rejected from mobile notification"); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "rejected"})
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unrecognized notification action"})
	}
}

// dispatchScheduleMatches fans a webhook event out to every matching
// event-triggered schedule. Each match runs independently; one failing
// run never blocks the others.
func (s *Server) dispatchScheduleMatches(ctx context.Context, payload webhookPayload) int {
	label := payload.WebhookEvent
	if label == "" {
		label = payload.EventType
	}
	entityID := payload.EntityID
	if entityID == "" {
		entityID, _ = payload.Data["entity_id"].(string)
	}
	newState := nestedState(payload.Data, "new_state")
	oldState := nestedState(payload.Data, "old_state")

	matches, err := s.deps.Schedules.MatchWebhook(ctx, label, payload.EventType, entityID, newState, oldState)
	if err != nil {
		s.deps.Logger.Warn("webhook schedule match failed", "error", err)
		return 0
	}
	if s.deps.Workflow == nil {
		return len(matches)
	}

	for _, sched := range matches {
		sched := sched
		go func() {
			runCtx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			if err := s.deps.Workflow.RunSchedule(runCtx, sched); err != nil {
				s.deps.Logger.Error("webhook-triggered run failed",
					"schedule_id", sched.ID, "error", err)
			}
		}()
	}
	return len(matches)
}

// nestedState reads data.new_state / data.old_state, accepting either
// a bare string or a state object.
func nestedState(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case map[string]interface{}:
		state, _ := v["state"].(string)
		return state
	}
	return ""
}
