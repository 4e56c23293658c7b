package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aether-home/aether/ent/proposal"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to proposal.Status }{
		{proposal.StatusDraft, proposal.StatusProposed},
		{proposal.StatusProposed, proposal.StatusApproved},
		{proposal.StatusProposed, proposal.StatusRejected},
		{proposal.StatusApproved, proposal.StatusDeployed},
		{proposal.StatusApproved, proposal.StatusRejected},
		{proposal.StatusDeployed, proposal.StatusRolledBack},
		{proposal.StatusRejected, proposal.StatusArchived},
		{proposal.StatusRolledBack, proposal.StatusArchived},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to proposal.Status }{
		{proposal.StatusDraft, proposal.StatusApproved},
		{proposal.StatusDraft, proposal.StatusDeployed},
		{proposal.StatusDraft, proposal.StatusRejected},
		{proposal.StatusProposed, proposal.StatusDeployed},
		{proposal.StatusProposed, proposal.StatusDraft},
		{proposal.StatusApproved, proposal.StatusProposed},
		{proposal.StatusApproved, proposal.StatusArchived},
		{proposal.StatusDeployed, proposal.StatusRejected},
		{proposal.StatusDeployed, proposal.StatusArchived},
		{proposal.StatusRejected, proposal.StatusProposed},
		{proposal.StatusArchived, proposal.StatusProposed},
		{proposal.StatusArchived, proposal.StatusArchived},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}
