package ha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// StateChange is one state_changed event off the websocket.
type StateChange struct {
	EventType    string
	EntityID     string
	NewState     string
	OldState     string
	Attributes   map[string]interface{}
	FriendlyName string
	LastChanged  string
}

// Handler receives stream events. It must not block; slow consumers
// buffer on their own side (the debouncer does).
type Handler func(StateChange)

// Stream subscribes to the controller websocket event bus and
// delivers state_changed events to a handler, reconnecting with
// backoff when the connection drops.
type Stream struct {
	cfg     Config
	handler Handler
	logger  *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewStream creates a stream. It does nothing until Start.
func NewStream(cfg Config, handler Handler, logger *slog.Logger) *Stream {
	return &Stream{cfg: cfg, handler: handler, logger: logger}
}

// Start launches the background subscriber goroutine.
func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("event stream already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.run(ctx)
	s.logger.Info("controller event stream started")
	return nil
}

// Stop shuts the subscriber down and waits for it to exit.
func (s *Stream) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	done := s.done
	s.running = false
	s.mu.Unlock()

	<-done
	s.logger.Info("controller event stream stopped")
}

func (s *Stream) run(ctx context.Context) {
	defer close(s.done)

	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}
		err := s.connectAndRead(ctx)
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("event stream disconnected, reconnecting", "backoff", backoff, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if backoff < 60*time.Second {
			backoff *= 2
		}
	}
}

// wsURL converts the REST base URL to the websocket endpoint.
func (s *Stream) wsURL() string {
	u := s.cfg.BaseURL
	u = strings.Replace(u, "https://", "wss://", 1)
	u = strings.Replace(u, "http://", "ws://", 1)
	return strings.TrimRight(u, "/") + "/api/websocket"
}

type wsMessage struct {
	ID      int             `json:"id,omitempty"`
	Type    string          `json:"type"`
	Success *bool           `json:"success,omitempty"`
	Event   json.RawMessage `json:"event,omitempty"`

	AccessToken string `json:"access_token,omitempty"`
	EventType   string `json:"event_type,omitempty"`
}

func (s *Stream) connectAndRead(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, s.wsURL(), nil)
	cancel()
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}
	defer conn.Close()

	// Close the socket when the stream stops so ReadJSON unblocks.
	closedByCtx := make(chan struct{})
	defer close(closedByCtx)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-closedByCtx:
		}
	}()

	if err := s.authenticate(conn); err != nil {
		return err
	}
	if err := conn.WriteJSON(wsMessage{ID: 1, Type: "subscribe_events", EventType: "state_changed"}); err != nil {
		return fmt.Errorf("subscribe failed: %w", err)
	}

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		if msg.Type != "event" || len(msg.Event) == 0 {
			continue
		}
		if change, ok := parseStateChange(msg.Event); ok {
			s.handler(change)
		}
	}
}

// authenticate runs the auth_required/auth/auth_ok handshake.
func (s *Stream) authenticate(conn *websocket.Conn) error {
	var hello wsMessage
	if err := conn.ReadJSON(&hello); err != nil {
		return fmt.Errorf("auth handshake read failed: %w", err)
	}
	if hello.Type != "auth_required" {
		return fmt.Errorf("unexpected handshake message %q", hello.Type)
	}
	if err := conn.WriteJSON(wsMessage{Type: "auth", AccessToken: s.cfg.Token}); err != nil {
		return fmt.Errorf("auth write failed: %w", err)
	}
	var result wsMessage
	if err := conn.ReadJSON(&result); err != nil {
		return fmt.Errorf("auth result read failed: %w", err)
	}
	if result.Type != "auth_ok" {
		return fmt.Errorf("controller rejected auth: %s", result.Type)
	}
	return nil
}

func parseStateChange(raw json.RawMessage) (StateChange, bool) {
	var ev struct {
		EventType string `json:"event_type"`
		Data      struct {
			EntityID string `json:"entity_id"`
			NewState *struct {
				State       string                 `json:"state"`
				Attributes  map[string]interface{} `json:"attributes"`
				LastChanged string                 `json:"last_changed"`
			} `json:"new_state"`
			OldState *struct {
				State string `json:"state"`
			} `json:"old_state"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &ev); err != nil || ev.Data.EntityID == "" {
		return StateChange{}, false
	}

	change := StateChange{
		EventType: ev.EventType,
		EntityID:  ev.Data.EntityID,
	}
	if ev.Data.NewState != nil {
		change.NewState = ev.Data.NewState.State
		change.Attributes = ev.Data.NewState.Attributes
		change.LastChanged = ev.Data.NewState.LastChanged
		if name, ok := ev.Data.NewState.Attributes["friendly_name"].(string); ok {
			change.FriendlyName = name
		}
	}
	if ev.Data.OldState != nil {
		change.OldState = ev.Data.OldState.State
	}
	return change, true
}
