package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entschedule "github.com/aether-home/aether/ent/insightschedule"
	entproposal "github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/pkg/agent"
	"github.com/aether-home/aether/pkg/config"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/orchestrator"
	"github.com/aether-home/aether/pkg/services"
	testdb "github.com/aether-home/aether/test/database"
)

const testWebhookSecret = "test-webhook-secret"

// cannedLLM answers every Generate call with the same text.
type cannedLLM struct {
	reply string
}

func (l *cannedLLM) Generate(_ context.Context, _ *agent.GenerateInput) (<-chan agent.Chunk, error) {
	ch := make(chan agent.Chunk, 1)
	ch <- &agent.TextChunk{Content: l.reply}
	close(ch)
	return ch, nil
}

func (l *cannedLLM) Close() error { return nil }

type apiHarness struct {
	server    *Server
	proposals *services.ProposalService
	schedules *services.ScheduleService
	// scheduleSyncs counts OnScheduleChange invocations.
	scheduleSyncs atomic.Int32
}

func newTestServer(t *testing.T) *apiHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.Default()

	proposals := services.NewProposalService(client.Client)
	conversations := services.NewConversationService(client.Client)
	settings := services.NewSettingsService(client.Client)
	usage := services.NewUsageService(client.Client)
	schedules := services.NewScheduleService(client.Client)

	orch := orchestrator.New(
		&cannedLLM{reply: "The porch light is on."},
		agent.NewRouter(nil, logger),
		agent.NewExecutor(agent.NewRegistry(), proposals, logger),
		conversations,
		settings,
		usage,
		logger,
	)

	h := &apiHarness{proposals: proposals, schedules: schedules}
	server := NewServer(Deps{
		Config: &config.Config{
			DeploymentMode: config.ModeMonolith,
			Role:           config.RoleAll,
			Environment:    "development",
			HTTPPort:       "0",
			WebhookSecret:  testWebhookSecret,
		},
		DB:            client,
		Orchestrator:  orch,
		Conversations: conversations,
		Proposals:     proposals,
		Insights:      services.NewInsightService(client.Client),
		Reports:       services.NewReportService(client.Client),
		Schedules:     schedules,
		Settings:      settings,
		Entities:      services.NewEntityService(client.Client),
		Usage:         usage,
		Logger:        logger,
		OnScheduleChange: func() {
			h.scheduleSyncs.Add(1)
		},
	})
	h.server = server
	return h
}

func (h *apiHarness) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.server.http.Handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t)
	w := h.do(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "all", body["role"])
	assert.NotNil(t, body["database"])
}

func TestChatEndpoint(t *testing.T) {
	h := newTestServer(t)

	t.Run("non-streaming completion", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/v1/chat/completions", map[string]interface{}{
			"model":    "test-model",
			"agent":    "architect",
			"messages": []map[string]string{{"role": "user", "content": "is the porch light on?"}},
		}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		choices := body["choices"].([]interface{})
		msg := choices[0].(map[string]interface{})["message"].(map[string]interface{})
		assert.Equal(t, "The porch light is on.", msg["content"])
		assert.NotEmpty(t, body["conversation_id"])
	})

	t.Run("streaming ends with the done sentinel", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/v1/chat/completions", map[string]interface{}{
			"model":    "test-model",
			"agent":    "architect",
			"stream":   true,
			"messages": []map[string]string{{"role": "user", "content": "is the porch light on?"}},
		}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n\n")
		require.NotEmpty(t, lines)
		assert.Equal(t, "data: "+orchestrator.DoneSentinel, lines[len(lines)-1])
		assert.Contains(t, w.Body.String(), `"type":"token"`)
	})

	t.Run("structured content blocks are accepted", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/v1/chat/completions", map[string]interface{}{
			"model": "test-model",
			"agent": "architect",
			"messages": []map[string]interface{}{
				{"role": "user", "content": []map[string]string{{"type": "text", "text": "hello"}}},
			},
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty messages are rejected", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/v1/chat/completions", map[string]interface{}{
			"model":    "test-model",
			"messages": []map[string]string{},
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProposalEndpoints(t *testing.T) {
	h := newTestServer(t)

	create := func(t *testing.T) string {
		t.Helper()
		w := h.do(t, http.MethodPost, "/v1/proposals", map[string]interface{}{
			"kind":  "automation",
			"title": "Porch light at dusk",
			"body":  map[string]interface{}{"alias": "Porch light at dusk"},
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "proposed", body["status"], "API-created proposals go straight to review")
		return body["id"].(string)
	}

	t.Run("create validates the body", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/v1/proposals", map[string]interface{}{
			"kind": "automation", "title": "no body",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("approve and archive", func(t *testing.T) {
		id := create(t)
		w := h.do(t, http.MethodPost, "/v1/proposals/"+id+"/approve",
			map[string]string{"approved_by": "alice"}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "approved", decodeBody(t, w)["status"])

		w = h.do(t, http.MethodPost, "/v1/proposals/"+id+"/archive", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "archived", decodeBody(t, w)["status"])
	})

	t.Run("reject with a reason", func(t *testing.T) {
		id := create(t)
		w := h.do(t, http.MethodPost, "/v1/proposals/"+id+"/reject",
			map[string]string{"reason": "wrong room"}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "rejected", body["status"])
		assert.Equal(t, "wrong room", body["rejection_reason"])
	})

	t.Run("illegal transition conflicts", func(t *testing.T) {
		id := create(t)
		w := h.do(t, http.MethodPost, "/v1/proposals/"+id+"/rollback", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "no deployer configured")

		w = h.do(t, http.MethodPost, "/v1/proposals/"+id+"/reject", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		w = h.do(t, http.MethodPost, "/v1/proposals/"+id+"/approve",
			map[string]string{"approved_by": "alice"}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("review notes accumulate", func(t *testing.T) {
		id := create(t)
		w := h.do(t, http.MethodPost, "/v1/proposals/"+id+"/notes",
			map[string]string{"note": "check the brightness value"}, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing proposal is 404", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/v1/proposals/does-not-exist", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list filters by status", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/v1/proposals?status=proposed", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decodeBody(t, w), "proposals")
	})
}

func TestScheduleEndpoints(t *testing.T) {
	h := newTestServer(t)

	t.Run("create, get, delete", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/v1/schedules", map[string]interface{}{
			"label":           "nightly energy",
			"analysis_type":   "energy",
			"trigger":         "cron",
			"cron_expression": "0 2 * * *",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		id := decodeBody(t, w)["id"].(string)
		assert.EqualValues(t, 1, h.scheduleSyncs.Load(), "create triggers a scheduler reconcile")

		w = h.do(t, http.MethodGet, "/v1/schedules/"+id, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = h.do(t, http.MethodPatch, "/v1/schedules/"+id,
			map[string]interface{}{"cron_expression": "30 2 * * *"}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 2, h.scheduleSyncs.Load(), "update triggers a scheduler reconcile")

		w = h.do(t, http.MethodDelete, "/v1/schedules/"+id, nil, nil)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.EqualValues(t, 3, h.scheduleSyncs.Load(), "delete triggers a scheduler reconcile")

		w = h.do(t, http.MethodGet, "/v1/schedules/"+id, nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid cron is rejected", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/v1/schedules", map[string]interface{}{
			"label":           "broken",
			"analysis_type":   "energy",
			"trigger":         "cron",
			"cron_expression": "not cron",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	h := newTestServer(t)

	t.Run("get returns every section", func(t *testing.T) {
		w := h.do(t, http.MethodGet, "/v1/settings", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body, "chat")
		assert.Contains(t, body, "notifications")
	})

	t.Run("patch clamps out-of-range values", func(t *testing.T) {
		w := h.do(t, http.MethodPatch, "/v1/settings/chat",
			map[string]interface{}{"stream_timeout_seconds": 999999}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 3600, decodeBody(t, w)["stream_timeout_seconds"])
	})

	t.Run("unknown section is rejected", func(t *testing.T) {
		w := h.do(t, http.MethodPatch, "/v1/settings/nonsense",
			map[string]interface{}{"x": 1}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWebhookEndpoint(t *testing.T) {
	h := newTestServer(t)
	ctx := context.Background()
	secret := map[string]string{"X-Webhook-Secret": testWebhookSecret}

	t.Run("rejects a missing or wrong secret", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/webhook/ha",
			map[string]interface{}{"event_type": "state_changed"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = h.do(t, http.MethodPost, "/webhook/ha",
			map[string]interface{}{"event_type": "state_changed"},
			map[string]string{"X-Webhook-Secret": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("requires an event type", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/webhook/ha", map[string]interface{}{}, secret)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("generic events report schedule matches", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/webhook/ha", map[string]interface{}{
			"event_type": "state_changed",
			"data":       map[string]interface{}{"entity_id": "light.porch"},
		}, secret)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.EqualValues(t, 0, decodeBody(t, w)["matched_schedules"])
	})

	t.Run("matches on webhook_event and top-level entity_id", func(t *testing.T) {
		_, err := h.schedules.Create(ctx, models.CreateScheduleRequest{
			Label:        "door watch",
			AnalysisType: "security",
			Trigger:      entschedule.TriggerWebhook,
			EventLabel:   "door_watch",
			MatchFilter:  map[string]interface{}{"entity_id": "binary_sensor.front_door"},
		})
		require.NoError(t, err)

		w := h.do(t, http.MethodPost, "/webhook/ha", map[string]interface{}{
			"event_type":    "state_changed",
			"webhook_event": "door_watch",
			"entity_id":     "binary_sensor.front_door",
		}, secret)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.EqualValues(t, 1, decodeBody(t, w)["matched_schedules"])

		w = h.do(t, http.MethodPost, "/webhook/ha", map[string]interface{}{
			"event_type":    "state_changed",
			"webhook_event": "door_watch",
			"entity_id":     "binary_sensor.garage_door",
		}, secret)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.EqualValues(t, 0, decodeBody(t, w)["matched_schedules"])
	})

	t.Run("mobile approval action approves the proposal", func(t *testing.T) {
		p := proposedProposal(t, h.proposals)
		w := h.do(t, http.MethodPost, "/webhook/ha", map[string]interface{}{
			"event_type": "mobile_app_notification_action",
			"data":       map[string]interface{}{"action": "APPROVE_" + p, "device_id": "alice-phone"},
		}, secret)
		require.Equal(t, http.StatusOK, w.Code)

		got, err := h.proposals.Get(ctx, p)
		require.NoError(t, err)
		require.NotNil(t, got.ApprovedBy)
		assert.Equal(t, "alice-phone", *got.ApprovedBy)
	})

	t.Run("mobile rejection action rejects the proposal", func(t *testing.T) {
		p := proposedProposal(t, h.proposals)
		w := h.do(t, http.MethodPost, "/webhook/ha", map[string]interface{}{
			"event_type": "mobile_app_notification_action",
			"data":       map[string]interface{}{"action": "REJECT_" + p},
		}, secret)
		require.Equal(t, http.StatusOK, w.Code)

		got, err := h.proposals.Get(ctx, p)
		require.NoError(t, err)
		require.NotNil(t, got.RejectionReason)
		assert.Contains(t, *got.RejectionReason, "mobile")
	})

	t.Run("unknown notification action is rejected", func(t *testing.T) {
		w := h.do(t, http.MethodPost, "/webhook/ha", map[string]interface{}{
			"event_type": "mobile_app_notification_action",
			"data":       map[string]interface{}{"action": "SNOOZE_123"},
		}, secret)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func proposedProposal(t *testing.T, proposals *services.ProposalService) string {
	t.Helper()
	ctx := context.Background()
	p, err := proposals.Create(ctx, models.CreateProposalRequest{
		Kind:  entproposal.KindEntityCommand,
		Title: "Turn off porch light",
		Body:  map[string]interface{}{"domain": "light", "service": "turn_off"},
	})
	require.NoError(t, err)
	_, err = proposals.Propose(ctx, p.ID)
	require.NoError(t, err)
	return p.ID
}
