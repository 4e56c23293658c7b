// Package ha is the Home Assistant controller client: a REST client
// for state, history and service calls, and a websocket subscriber
// for the live event stream.
package ha

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
)

// Config holds the controller connection settings.
type Config struct {
	BaseURL string // e.g. http://homeassistant.local:8123
	Token   string // long-lived access token
	Timeout time.Duration
}

// Client is the REST client for the controller HTTP API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a controller client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return services.NewExternalError("home controller", "controller unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return services.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return services.NewExternalError("home controller",
			fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode),
			fmt.Errorf("%s", raw))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode controller response: %w", err)
		}
	}
	return nil
}

// Ping verifies the API is reachable and the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/", nil, nil)
}

// EntityState returns the current state object of one entity.
func (c *Client) EntityState(ctx context.Context, entityID string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/api/states/"+url.PathEscape(entityID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStates returns a snapshot of every entity the controller knows.
func (c *Client) ListStates(ctx context.Context) ([]models.EntitySnapshot, error) {
	var raw []struct {
		EntityID    string                 `json:"entity_id"`
		State       string                 `json:"state"`
		Attributes  map[string]interface{} `json:"attributes"`
		LastChanged string                 `json:"last_changed"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/states", nil, &raw); err != nil {
		return nil, err
	}

	out := make([]models.EntitySnapshot, 0, len(raw))
	for _, r := range raw {
		snap := models.EntitySnapshot{
			EntityID:    r.EntityID,
			State:       r.State,
			Attributes:  r.Attributes,
			LastChanged: r.LastChanged,
		}
		if name, ok := r.Attributes["friendly_name"].(string); ok {
			snap.FriendlyName = name
		}
		out = append(out, snap)
	}
	return out, nil
}

// History returns the state history of one entity since the given time.
func (c *Client) History(ctx context.Context, entityID string, since time.Time) ([]map[string]interface{}, error) {
	path := fmt.Sprintf("/api/history/period/%s?filter_entity_id=%s&minimal_response",
		since.UTC().Format(time.RFC3339), url.QueryEscape(entityID))

	// The controller returns one list per entity.
	var out [][]map[string]interface{}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// CallService invokes a controller service, e.g. light.turn_on.
func (c *Client) CallService(ctx context.Context, domain, service string, data map[string]interface{}) error {
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/services/%s/%s", url.PathEscape(domain), url.PathEscape(service)),
		data, nil)
}

// UpsertConfig creates or replaces a config entry (automation, script
// or scene) under the given id.
func (c *Client) UpsertConfig(ctx context.Context, kind, id string, config map[string]interface{}) error {
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/config/%s/config/%s", url.PathEscape(kind), url.PathEscape(id)),
		config, nil)
}

// DisableAutomation turns an automation off without deleting it, so a
// rollback is reversible from the controller UI.
func (c *Client) DisableAutomation(ctx context.Context, automationID string) error {
	return c.CallService(ctx, "automation", "turn_off", map[string]interface{}{
		"entity_id": "automation." + automationID,
	})
}
