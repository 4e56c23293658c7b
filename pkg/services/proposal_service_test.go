package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-home/aether/ent"
	entproposal "github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/pkg/models"
	testdb "github.com/aether-home/aether/test/database"
)

func createTestProposal(t *testing.T, service *ProposalService) *ent.Proposal {
	t.Helper()
	p, err := service.Create(context.Background(), models.CreateProposalRequest{
		Kind:  entproposal.KindEntityCommand,
		Title: "Turn off porch light",
		Body: map[string]interface{}{
			"domain":    "light",
			"service":   "turn_off",
			"entity_id": "light.porch",
		},
	})
	require.NoError(t, err)
	return p
}

func TestProposalService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProposalService(client.Client)
	ctx := context.Background()

	t.Run("creates in draft", func(t *testing.T) {
		p := createTestProposal(t, service)
		assert.Equal(t, entproposal.StatusDraft, p.Status)
		assert.Equal(t, entproposal.KindEntityCommand, p.Kind)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("requires a kind", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateProposalRequest{
			Body: map[string]interface{}{"x": 1},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires a body", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateProposalRequest{
			Kind: entproposal.KindAutomation,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestProposalService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProposalService(client.Client)
	ctx := context.Background()

	t.Run("walks the happy path to archived", func(t *testing.T) {
		p := createTestProposal(t, service)

		p, err := service.Propose(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusProposed, p.Status)
		assert.NotNil(t, p.ProposedAt)

		p, err = service.Approve(ctx, p.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusApproved, p.Status)
		require.NotNil(t, p.ApprovedBy)
		assert.Equal(t, "alice", *p.ApprovedBy)

		p, err = service.MarkDeployed(ctx, p.ID, "aether_abc123", "alias: Night lights\ntrigger: []\n")
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusDeployed, p.Status)
		require.NotNil(t, p.HaAutomationID)
		assert.Equal(t, "aether_abc123", *p.HaAutomationID)
		require.NotNil(t, p.OriginalYaml)
		assert.Equal(t, "alias: Night lights\ntrigger: []\n", *p.OriginalYaml)

		p, err = service.MarkRolledBack(ctx, p.ID, true, "")
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusRolledBack, p.Status)
		require.NotNil(t, p.HaDisabled)
		assert.True(t, *p.HaDisabled)

		p, err = service.Archive(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusArchived, p.Status)
	})

	t.Run("rejects an approved proposal late", func(t *testing.T) {
		p := createTestProposal(t, service)
		_, err := service.Propose(ctx, p.ID)
		require.NoError(t, err)
		_, err = service.Approve(ctx, p.ID, "bob")
		require.NoError(t, err)

		p, err = service.Reject(ctx, p.ID, "changed my mind")
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusRejected, p.Status)
		require.NotNil(t, p.RejectionReason)
		assert.Equal(t, "changed my mind", *p.RejectionReason)
	})

	t.Run("refuses an illegal transition and keeps the row", func(t *testing.T) {
		p := createTestProposal(t, service)

		// Draft cannot be approved directly.
		_, err := service.Approve(ctx, p.ID, "alice")
		require.Error(t, err)
		assert.True(t, IsStateConflict(err))

		got, err := service.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusDraft, got.Status)
		assert.Nil(t, got.ApprovedBy)
	})

	t.Run("archived is terminal", func(t *testing.T) {
		p := createTestProposal(t, service)
		_, err := service.Propose(ctx, p.ID)
		require.NoError(t, err)
		_, err = service.Reject(ctx, p.ID, "no")
		require.NoError(t, err)
		_, err = service.Archive(ctx, p.ID)
		require.NoError(t, err)

		_, err = service.Propose(ctx, p.ID)
		assert.True(t, IsStateConflict(err))
	})

	t.Run("approve requires an approver", func(t *testing.T) {
		p := createTestProposal(t, service)
		_, err := service.Propose(ctx, p.ID)
		require.NoError(t, err)

		_, err = service.Approve(ctx, p.ID, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for a missing id", func(t *testing.T) {
		_, err := service.Propose(ctx, "does-not-exist")
		assert.Equal(t, ErrNotFound, err)
		_, err = service.Get(ctx, "does-not-exist")
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestProposalService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProposalService(client.Client)
	ctx := context.Background()

	a := createTestProposal(t, service)
	b := createTestProposal(t, service)
	_, err := service.Propose(ctx, b.ID)
	require.NoError(t, err)

	t.Run("lists all", func(t *testing.T) {
		items, err := service.List(ctx, "", 0)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		items, err := service.List(ctx, entproposal.StatusDraft, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, a.ID, items[0].ID)
	})
}

func TestProposalService_AddReviewNote(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProposalService(client.Client)
	ctx := context.Background()

	p := createTestProposal(t, service)

	p, err := service.AddReviewNote(ctx, p.ID, "first pass looks fine")
	require.NoError(t, err)
	p, err = service.AddReviewNote(ctx, p.ID, "double-check the entity id")
	require.NoError(t, err)
	assert.Equal(t, []string{"first pass looks fine", "double-check the entity id"}, p.ReviewNotes)

	_, err = service.AddReviewNote(ctx, p.ID, "")
	assert.True(t, IsValidationError(err))
}
