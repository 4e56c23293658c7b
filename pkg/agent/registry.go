package agent

// Agent names. The architect is the default conversational agent and
// the only one that talks to the home controller directly.
const (
	AgentArchitect       = "architect"
	AgentDataScienceTeam = "data_science_team"
	AgentLibrarian       = "librarian"
	AgentDeveloper       = "developer"
	AgentSystem          = "system"
)

// Definition describes one agent in the roster.
type Definition struct {
	Name        string
	Description string
	// Delegatable agents can be handed work by the architect mid-stream.
	Delegatable bool
}

// roster is the fixed agent set. Routing and delegation only ever
// target names listed here.
var roster = map[string]Definition{
	AgentArchitect: {
		Name:        AgentArchitect,
		Description: "Default conversational agent; answers home state questions and drafts automations",
	},
	AgentDataScienceTeam: {
		Name:        AgentDataScienceTeam,
		Description: "Runs multi-step data analyses over home history",
		Delegatable: true,
	},
	AgentLibrarian: {
		Name:        AgentLibrarian,
		Description: "Entity discovery and catalogue lookups",
		Delegatable: true,
	},
	AgentDeveloper: {
		Name:        AgentDeveloper,
		Description: "Writes and reviews automation YAML and scripts",
		Delegatable: true,
	},
	AgentSystem: {
		Name:        AgentSystem,
		Description: "Schedule management and approval plumbing",
		Delegatable: true,
	},
}

// toolOwners maps tool names to the agent whose toolbox they belong
// to. A tool call for another agent's tool is a delegation.
var toolOwners = map[string]string{
	"consult_data_science_team": AgentDataScienceTeam,
	"discover_entities":         AgentLibrarian,
	"create_insight_schedule":   AgentSystem,
	"seek_approval":             AgentSystem,
	"get_entity_state":          AgentArchitect,
	"query_history":             AgentArchitect,
	"call_service":              AgentArchitect,
	"render_automation":         AgentDeveloper,
}

// Known reports whether name is a roster agent.
func Known(name string) bool {
	_, ok := roster[name]
	return ok
}

// Describe returns the roster entry for an agent name.
func Describe(name string) (Definition, bool) {
	d, ok := roster[name]
	return d, ok
}

// AgentForTool returns the agent that owns a tool. Unknown tools
// belong to the architect, which surfaces the failure in-stream.
func AgentForTool(tool string) string {
	if owner, ok := toolOwners[tool]; ok {
		return owner
	}
	return AgentArchitect
}

// Names returns the roster agent names.
func Names() []string {
	out := make([]string, 0, len(roster))
	for name := range roster {
		out = append(out, name)
	}
	return out
}
