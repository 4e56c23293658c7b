package ha

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-home/aether/pkg/services"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL, Token: "secret-token", Timeout: 5 * time.Second})
}

func TestClient_Ping(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message": "API running."}`))
	})

	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClient_EntityState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/states/light.porch" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"entity_id": "light.porch",
			"state":     "on",
		})
	})

	state, err := client.EntityState(context.Background(), "light.porch")
	require.NoError(t, err)
	assert.Equal(t, "on", state["state"])

	_, err = client.EntityState(context.Background(), "light.gone")
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestClient_ListStates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"entity_id":    "light.porch",
				"state":        "on",
				"attributes":   map[string]interface{}{"friendly_name": "Porch Light"},
				"last_changed": "2026-08-20T07:15:00Z",
			},
			{"entity_id": "sensor.kitchen_temp", "state": "21.4"},
		})
	})

	snapshots, err := client.ListStates(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "Porch Light", snapshots[0].FriendlyName)
	assert.Equal(t, "2026-08-20T07:15:00Z", snapshots[0].LastChanged)
	assert.Empty(t, snapshots[1].FriendlyName)
}

func TestClient_History(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "light.porch", r.URL.Query().Get("filter_entity_id"))
		json.NewEncoder(w).Encode([][]map[string]interface{}{
			{{"state": "off"}, {"state": "on"}},
		})
	})

	points, err := client.History(context.Background(), "light.porch", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "on", points[1]["state"])
}

func TestClient_CallService(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services/light/turn_off", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`[]`))
	})

	err := client.CallService(context.Background(), "light", "turn_off",
		map[string]interface{}{"entity_id": "light.porch"})
	require.NoError(t, err)
	assert.Equal(t, "light.porch", gotBody["entity_id"])
}

func TestClient_ErrorTranslation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broke"))
	})

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, services.IsExternalError(err))
	assert.Contains(t, err.Error(), "502")

	unreachable := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	err = unreachable.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, services.IsExternalError(err))
}
