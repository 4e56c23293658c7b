package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aether-home/aether/ent"
	entproposal "github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/pkg/models"
	"github.com/google/uuid"
)

// ProposalService owns the proposal lifecycle state machine. Every
// transition is guarded by the graph in proposal_transitions.go. A
// disallowed transition returns a StateConflictError and leaves the
// row unchanged.
type ProposalService struct {
	client *ent.Client
}

// NewProposalService creates a new ProposalService.
func NewProposalService(client *ent.Client) *ProposalService {
	return &ProposalService{client: client}
}

// Create persists a new proposal in Draft status.
func (s *ProposalService) Create(httpCtx context.Context, req models.CreateProposalRequest) (*ent.Proposal, error) {
	if req.Kind == "" {
		return nil, NewValidationError("kind", "required")
	}
	if len(req.Body) == 0 {
		return nil, NewValidationError("body", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Proposal.Create().
		SetID(uuid.New().String()).
		SetKind(req.Kind).
		SetTitle(req.Title).
		SetBody(req.Body).
		SetStatus(entproposal.StatusDraft)
	if req.ConversationID != "" {
		create = create.SetConversationID(req.ConversationID)
	}
	if req.OriginalYAML != "" {
		create = create.SetOriginalYaml(req.OriginalYAML)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return p, nil
}

// Get returns a proposal by id.
func (s *ProposalService) Get(httpCtx context.Context, id string) (*ent.Proposal, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	p, err := s.client.Proposal.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return p, nil
}

// List returns proposals, newest first, optionally filtered by status.
func (s *ProposalService) List(httpCtx context.Context, status entproposal.Status, limit int) ([]*ent.Proposal, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.Proposal.Query()
	if status != "" {
		q = q.Where(entproposal.StatusEQ(status))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	items, err := q.
		Order(ent.Desc(entproposal.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return items, nil
}

// Propose moves Draft → Proposed and records the proposed-at timestamp.
func (s *ProposalService) Propose(httpCtx context.Context, id string) (*ent.Proposal, error) {
	return s.transition(httpCtx, id, entproposal.StatusProposed, "propose", func(u *ent.ProposalUpdateOne) {
		u.SetProposedAt(time.Now())
	})
}

// Approve moves Proposed → Approved and records the approver.
func (s *ProposalService) Approve(httpCtx context.Context, id, approvedBy string) (*ent.Proposal, error) {
	if approvedBy == "" {
		return nil, NewValidationError("approved_by", "required")
	}
	return s.transition(httpCtx, id, entproposal.StatusApproved, "approve", func(u *ent.ProposalUpdateOne) {
		u.SetApprovedBy(approvedBy).SetApprovedAt(time.Now())
	})
}

// Reject moves Proposed or Approved → Rejected and records the reason.
// Late rejection of an approved proposal is allowed.
func (s *ProposalService) Reject(httpCtx context.Context, id, reason string) (*ent.Proposal, error) {
	return s.transition(httpCtx, id, entproposal.StatusRejected, "reject", func(u *ent.ProposalUpdateOne) {
		u.SetRejectionReason(reason).SetRejectedAt(time.Now())
	})
}

// MarkDeployed moves Approved → Deployed and records the
// controller-assigned automation identifier plus the rendered YAML
// that was pushed, so a later rollback knows exactly what shipped.
func (s *ProposalService) MarkDeployed(httpCtx context.Context, id, haAutomationID, renderedYAML string) (*ent.Proposal, error) {
	return s.transition(httpCtx, id, entproposal.StatusDeployed, "deploy", func(u *ent.ProposalUpdateOne) {
		u.SetDeployedAt(time.Now())
		if haAutomationID != "" {
			u.SetHaAutomationID(haAutomationID)
		}
		if renderedYAML != "" {
			u.SetOriginalYaml(renderedYAML)
		}
	})
}

// MarkRolledBack moves Deployed → RolledBack. haDisabled records
// whether the controller artefact was actually disabled; haError keeps
// the controller failure text when it was not.
func (s *ProposalService) MarkRolledBack(httpCtx context.Context, id string, haDisabled bool, haError string) (*ent.Proposal, error) {
	return s.transition(httpCtx, id, entproposal.StatusRolledBack, "rollback", func(u *ent.ProposalUpdateOne) {
		u.SetRolledBackAt(time.Now()).SetHaDisabled(haDisabled)
		if haError != "" {
			u.SetHaError(haError)
		}
	})
}

// Archive moves Rejected or RolledBack → Archived.
func (s *ProposalService) Archive(httpCtx context.Context, id string) (*ent.Proposal, error) {
	return s.transition(httpCtx, id, entproposal.StatusArchived, "archive", func(u *ent.ProposalUpdateOne) {
		u.SetArchivedAt(time.Now())
	})
}

// AddReviewNote appends a reviewer note (revise-and-resubmit flows).
func (s *ProposalService) AddReviewNote(httpCtx context.Context, id, note string) (*ent.Proposal, error) {
	if note == "" {
		return nil, NewValidationError("note", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	p, err := s.client.Proposal.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	notes := append(append([]string{}, p.ReviewNotes...), note)
	updated, err := p.Update().SetReviewNotes(notes).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add review note: %w", err)
	}
	return updated, nil
}

// transition loads the proposal, checks the lifecycle graph, applies
// the per-action field mutations, and saves. The whole sequence runs
// inside one transaction so concurrent transitions cannot interleave.
func (s *ProposalService) transition(
	httpCtx context.Context,
	id string,
	to entproposal.Status,
	action string,
	apply func(*ent.ProposalUpdateOne),
) (*ent.Proposal, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Proposal.Query().
		Where(entproposal.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	if !CanTransition(p.Status, to) {
		return nil, NewStateConflictError("proposal", string(p.Status), action)
	}

	update := p.Update().SetStatus(to)
	apply(update)

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to %s proposal: %w", action, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit %s: %w", action, err)
	}
	return updated, nil
}
