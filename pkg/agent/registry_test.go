package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	for _, name := range []string{AgentArchitect, AgentDataScienceTeam, AgentLibrarian, AgentDeveloper, AgentSystem} {
		assert.True(t, Known(name), name)
	}
	assert.False(t, Known("auto"))
	assert.False(t, Known(""))
	assert.False(t, Known("plumber"))
}

func TestDescribe(t *testing.T) {
	d, ok := Describe(AgentLibrarian)
	assert.True(t, ok)
	assert.True(t, d.Delegatable)

	d, ok = Describe(AgentArchitect)
	assert.True(t, ok)
	assert.False(t, d.Delegatable, "the architect is never a delegation target")

	_, ok = Describe("nobody")
	assert.False(t, ok)
}

func TestAgentForTool(t *testing.T) {
	tests := []struct {
		tool string
		want string
	}{
		{"consult_data_science_team", AgentDataScienceTeam},
		{"discover_entities", AgentLibrarian},
		{"create_insight_schedule", AgentSystem},
		{"seek_approval", AgentSystem},
		{"get_entity_state", AgentArchitect},
		{"query_history", AgentArchitect},
		{"call_service", AgentArchitect},
		{"render_automation", AgentDeveloper},
		{"made_up_tool", AgentArchitect},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AgentForTool(tt.tool), tt.tool)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 5)
	assert.Contains(t, names, AgentArchitect)
}
