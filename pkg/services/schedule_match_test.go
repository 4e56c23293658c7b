package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesWebhookEvent(t *testing.T) {
	tests := []struct {
		name      string
		filter    map[string]interface{}
		eventType string
		entityID  string
		newState  string
		oldState  string
		want      bool
	}{
		{
			name: "empty filter matches everything",
			want: true,
		},
		{
			name:     "exact entity id",
			filter:   map[string]interface{}{"entity_id": "light.porch"},
			entityID: "light.porch",
			want:     true,
		},
		{
			name:     "glob entity id",
			filter:   map[string]interface{}{"entity_id": "light.*"},
			entityID: "light.kitchen",
			want:     true,
		},
		{
			name:     "glob rejects other domains",
			filter:   map[string]interface{}{"entity_id": "light.*"},
			entityID: "sensor.kitchen_temp",
			want:     false,
		},
		{
			name:      "event type exact",
			filter:    map[string]interface{}{"event_type": "state_changed"},
			eventType: "state_changed",
			want:      true,
		},
		{
			name:      "event type mismatch",
			filter:    map[string]interface{}{"event_type": "state_changed"},
			eventType: "automation_triggered",
			want:      false,
		},
		{
			name:     "to_state compares the new state",
			filter:   map[string]interface{}{"to_state": "on"},
			newState: "on",
			oldState: "off",
			want:     true,
		},
		{
			name:     "to_state mismatch",
			filter:   map[string]interface{}{"to_state": "on"},
			newState: "off",
			want:     false,
		},
		{
			name:     "from_state compares the old state",
			filter:   map[string]interface{}{"from_state": "home"},
			newState: "away",
			oldState: "home",
			want:     true,
		},
		{
			name: "all keys must match",
			filter: map[string]interface{}{
				"entity_id": "binary_sensor.*_door",
				"to_state":  "on",
			},
			entityID: "binary_sensor.front_door",
			newState: "on",
			want:     true,
		},
		{
			name: "one failing key rejects",
			filter: map[string]interface{}{
				"entity_id": "binary_sensor.*_door",
				"to_state":  "on",
			},
			entityID: "binary_sensor.front_door",
			newState: "off",
			want:     false,
		},
		{
			name:     "non-string filter value is a wildcard",
			filter:   map[string]interface{}{"entity_id": 42},
			entityID: "anything.at_all",
			want:     true,
		},
		{
			name:     "empty string filter value is a wildcard",
			filter:   map[string]interface{}{"to_state": ""},
			newState: "whatever",
			want:     true,
		},
		{
			name:     "invalid glob rejects",
			filter:   map[string]interface{}{"entity_id": "light.["},
			entityID: "light.porch",
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesWebhookEvent(tt.filter, tt.eventType, tt.entityID, tt.newState, tt.oldState)
			assert.Equal(t, tt.want, got)
		})
	}
}
