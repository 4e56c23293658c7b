// Package deploy pushes approved proposals to the home controller and
// rolls deployed ones back.
package deploy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aether-home/aether/ent"
	entproposal "github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/pkg/ha"
	"github.com/aether-home/aether/pkg/services"
	"gopkg.in/yaml.v3"
)

// RenderAutomationYAML renders a proposal body as controller YAML.
// The automation key is preferred; otherwise the whole body renders.
func RenderAutomationYAML(body map[string]interface{}) (string, error) {
	payload := body
	if auto, ok := body["automation"].(map[string]interface{}); ok {
		payload = auto
	}
	out, err := yaml.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to render automation YAML: %w", err)
	}
	return string(out), nil
}

// Deployer executes the deploy and rollback sides of the proposal
// lifecycle against the controller.
type Deployer struct {
	ha        *ha.Client
	proposals *services.ProposalService
	logger    *slog.Logger
}

// NewDeployer creates a deployer.
func NewDeployer(haClient *ha.Client, proposals *services.ProposalService, logger *slog.Logger) *Deployer {
	return &Deployer{ha: haClient, proposals: proposals, logger: logger}
}

// Deploy pushes an approved proposal to the controller and marks it
// deployed. The proposal must be in approved status; the state check
// happens inside the transition so a concurrent deploy loses cleanly.
func (d *Deployer) Deploy(ctx context.Context, proposalID string) (*ent.Proposal, error) {
	p, err := d.proposals.Get(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p.Status != entproposal.StatusApproved {
		return nil, services.NewStateConflictError("proposal", string(p.Status), "deploy")
	}

	switch p.Kind {
	case entproposal.KindAutomation, entproposal.KindScript, entproposal.KindScene:
		rendered, err := RenderAutomationYAML(p.Body)
		if err != nil {
			return nil, err
		}
		configID := configIDFor(p)
		if err := d.ha.UpsertConfig(ctx, string(p.Kind), configID, configPayload(p)); err != nil {
			return nil, err
		}
		return d.proposals.MarkDeployed(ctx, p.ID, configID, rendered)
	case entproposal.KindEntityCommand:
		if err := d.runCommand(ctx, p.Body); err != nil {
			return nil, err
		}
		return d.proposals.MarkDeployed(ctx, p.ID, "", "")
	default:
		return nil, services.NewValidationError("kind", "unknown proposal kind")
	}
}

// Rollback disables the deployed artefact and marks the proposal
// rolled back. A controller failure still records the rollback, with
// the error kept on the row; the human decides what to do next.
func (d *Deployer) Rollback(ctx context.Context, proposalID string) (*ent.Proposal, error) {
	p, err := d.proposals.Get(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p.Status != entproposal.StatusDeployed {
		return nil, services.NewStateConflictError("proposal", string(p.Status), "rollback")
	}

	disabled := false
	haError := ""
	switch p.Kind {
	case entproposal.KindAutomation:
		if p.HaAutomationID != nil && *p.HaAutomationID != "" {
			if err := d.ha.DisableAutomation(ctx, *p.HaAutomationID); err != nil {
				haError = err.Error()
				d.logger.Warn("rollback could not disable automation",
					"proposal_id", p.ID, "automation_id", *p.HaAutomationID, "error", err)
			} else {
				disabled = true
			}
		}
	case entproposal.KindEntityCommand:
		haError = "entity commands cannot be undone automatically"
	default:
		// Scripts and scenes stay in place; disabling them has no
		// controller-side meaning.
	}

	return d.proposals.MarkRolledBack(ctx, p.ID, disabled, haError)
}

// configIDFor derives a stable controller config id from the proposal.
func configIDFor(p *ent.Proposal) string {
	return "aether_" + strings.ReplaceAll(p.ID, "-", "")[:12]
}

func configPayload(p *ent.Proposal) map[string]interface{} {
	if auto, ok := p.Body["automation"].(map[string]interface{}); ok {
		return auto
	}
	return p.Body
}

func (d *Deployer) runCommand(ctx context.Context, body map[string]interface{}) error {
	domain, _ := body["domain"].(string)
	service, _ := body["service"].(string)
	if domain == "" || service == "" {
		return services.NewValidationError("body", "entity command requires domain and service")
	}
	data, _ := body["data"].(map[string]interface{})
	if data == nil {
		data = map[string]interface{}{}
	}
	if entityID, ok := body["entity_id"].(string); ok && entityID != "" {
		data["entity_id"] = entityID
	}
	return d.ha.CallService(ctx, domain, service, data)
}
