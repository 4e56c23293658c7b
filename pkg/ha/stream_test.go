package ha

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventBus is a minimal controller websocket endpoint: it runs the
// auth handshake, accepts the subscription, then replays events.
func fakeEventBus(t *testing.T, events []interface{}, gotToken chan<- string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/websocket", r.URL.Path)
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, conn.WriteJSON(map[string]string{"type": "auth_required"}))

		var auth wsMessage
		require.NoError(t, conn.ReadJSON(&auth))
		select {
		case gotToken <- auth.AccessToken:
		default:
		}
		require.NoError(t, conn.WriteJSON(map[string]string{"type": "auth_ok"}))

		var sub wsMessage
		require.NoError(t, conn.ReadJSON(&sub))
		require.Equal(t, "subscribe_events", sub.Type)

		for _, ev := range events {
			require.NoError(t, conn.WriteJSON(ev))
		}
		// Hold the connection open until the client disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func stateChangedEvent(entityID, newState, oldState string) map[string]interface{} {
	return map[string]interface{}{
		"id":   1,
		"type": "event",
		"event": map[string]interface{}{
			"event_type": "state_changed",
			"data": map[string]interface{}{
				"entity_id": entityID,
				"new_state": map[string]interface{}{
					"state":      newState,
					"attributes": map[string]interface{}{"friendly_name": "Porch Light"},
				},
				"old_state": map[string]interface{}{"state": oldState},
			},
		},
	}
}

func TestStream_DeliversStateChanges(t *testing.T) {
	gotToken := make(chan string, 1)
	server := fakeEventBus(t, []interface{}{
		stateChangedEvent("light.porch", "on", "off"),
		map[string]interface{}{"id": 1, "type": "result", "success": true},
		stateChangedEvent("sensor.kitchen_temp", "21.4", "21.2"),
	}, gotToken)
	defer server.Close()

	changes := make(chan StateChange, 4)
	stream := NewStream(
		Config{BaseURL: server.URL, Token: "stream-token"},
		func(c StateChange) { changes <- c },
		slog.Default(),
	)

	require.NoError(t, stream.Start())
	assert.Error(t, stream.Start(), "second start is rejected")
	defer stream.Stop()

	assert.Equal(t, "stream-token", <-gotToken)

	first := <-changes
	assert.Equal(t, "light.porch", first.EntityID)
	assert.Equal(t, "on", first.NewState)
	assert.Equal(t, "off", first.OldState)
	assert.Equal(t, "Porch Light", first.FriendlyName)

	second := <-changes
	assert.Equal(t, "sensor.kitchen_temp", second.EntityID)
}

func TestStream_StopIsIdempotent(t *testing.T) {
	server := fakeEventBus(t, nil, make(chan string, 1))
	defer server.Close()

	stream := NewStream(Config{BaseURL: server.URL, Token: "x"}, func(StateChange) {}, slog.Default())
	require.NoError(t, stream.Start())

	done := make(chan struct{})
	go func() {
		stream.Stop()
		stream.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not return")
	}
}

func TestParseStateChange(t *testing.T) {
	t.Run("full event", func(t *testing.T) {
		raw, _ := json.Marshal(stateChangedEvent("light.porch", "on", "off")["event"])
		change, ok := parseStateChange(raw)
		require.True(t, ok)
		assert.Equal(t, "state_changed", change.EventType)
		assert.Equal(t, "light.porch", change.EntityID)
	})

	t.Run("removed entity has no new state", func(t *testing.T) {
		raw := []byte(`{"event_type":"state_changed","data":{"entity_id":"light.gone","old_state":{"state":"on"}}}`)
		change, ok := parseStateChange(raw)
		require.True(t, ok)
		assert.Empty(t, change.NewState)
		assert.Equal(t, "on", change.OldState)
	})

	t.Run("events without an entity are dropped", func(t *testing.T) {
		_, ok := parseStateChange([]byte(`{"event_type":"service_registered","data":{}}`))
		assert.False(t, ok)
	})

	t.Run("malformed payloads are dropped", func(t *testing.T) {
		_, ok := parseStateChange([]byte(`not json`))
		assert.False(t, ok)
	})
}
