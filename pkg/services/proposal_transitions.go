package services

import "github.com/aether-home/aether/ent/proposal"

// proposalTransitions is the allowed transition graph:
//
//	Draft → Proposed → {Approved, Rejected}
//	Approved → {Deployed, Rejected}
//	Deployed → RolledBack
//	{Rejected, RolledBack} → Archived
//
// Archived is terminal. Anything else is a state conflict.
var proposalTransitions = map[proposal.Status][]proposal.Status{
	proposal.StatusDraft:      {proposal.StatusProposed},
	proposal.StatusProposed:   {proposal.StatusApproved, proposal.StatusRejected},
	proposal.StatusApproved:   {proposal.StatusDeployed, proposal.StatusRejected},
	proposal.StatusDeployed:   {proposal.StatusRolledBack},
	proposal.StatusRejected:   {proposal.StatusArchived},
	proposal.StatusRolledBack: {proposal.StatusArchived},
	proposal.StatusArchived:   nil,
}

// CanTransition reports whether a proposal may move from one status to
// another under the lifecycle graph.
func CanTransition(from, to proposal.Status) bool {
	for _, allowed := range proposalTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
