package deploy

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-home/aether/ent"
	entproposal "github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/pkg/ha"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
	testdb "github.com/aether-home/aether/test/database"
)

// controllerCall is one request the fake controller saw.
type controllerCall struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// fakeController stands in for the home controller REST API.
type fakeController struct {
	mu     sync.Mutex
	calls  []controllerCall
	status int
}

func (f *fakeController) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.calls = append(f.calls, controllerCall{Method: r.Method, Path: r.URL.Path, Body: body})
		status := f.status
		f.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		w.Write([]byte(`{}`))
	})
}

func (f *fakeController) lastCall(t *testing.T) controllerCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func newTestDeployer(t *testing.T) (*Deployer, *services.ProposalService, *fakeController) {
	t.Helper()
	client := testdb.NewTestClient(t)
	controller := &fakeController{}
	server := httptest.NewServer(controller.handler())
	t.Cleanup(server.Close)

	haClient := ha.NewClient(ha.Config{BaseURL: server.URL, Token: "test-token", Timeout: 5 * time.Second})
	proposals := services.NewProposalService(client.Client)
	return NewDeployer(haClient, proposals, slog.Default()), proposals, controller
}

func approvedProposal(t *testing.T, proposals *services.ProposalService, kind entproposal.Kind, body map[string]interface{}) *ent.Proposal {
	t.Helper()
	ctx := context.Background()
	p, err := proposals.Create(ctx, models.CreateProposalRequest{
		Kind:  kind,
		Title: "test proposal",
		Body:  body,
	})
	require.NoError(t, err)
	_, err = proposals.Propose(ctx, p.ID)
	require.NoError(t, err)
	p, err = proposals.Approve(ctx, p.ID, "alice")
	require.NoError(t, err)
	return p
}

func TestDeployer_Deploy(t *testing.T) {
	ctx := context.Background()

	t.Run("pushes an automation config and records its id", func(t *testing.T) {
		d, proposals, controller := newTestDeployer(t)
		p := approvedProposal(t, proposals, entproposal.KindAutomation, map[string]interface{}{
			"automation": map[string]interface{}{
				"alias":   "Porch light at dusk",
				"trigger": []interface{}{map[string]interface{}{"platform": "sun", "event": "sunset"}},
			},
		})

		deployed, err := d.Deploy(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusDeployed, deployed.Status)
		require.NotNil(t, deployed.HaAutomationID)

		call := controller.lastCall(t)
		assert.Equal(t, http.MethodPost, call.Method)
		assert.Equal(t, "/api/config/automation/config/"+*deployed.HaAutomationID, call.Path)
		assert.Equal(t, "Porch light at dusk", call.Body["alias"], "the automation key is unwrapped")

		require.NotNil(t, deployed.OriginalYaml)
		assert.Contains(t, *deployed.OriginalYaml, "alias: Porch light at dusk")
	})

	t.Run("runs an entity command through the service API", func(t *testing.T) {
		d, proposals, controller := newTestDeployer(t)
		p := approvedProposal(t, proposals, entproposal.KindEntityCommand, map[string]interface{}{
			"domain":    "light",
			"service":   "turn_off",
			"entity_id": "light.porch",
		})

		deployed, err := d.Deploy(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusDeployed, deployed.Status)

		call := controller.lastCall(t)
		assert.Equal(t, "/api/services/light/turn_off", call.Path)
		assert.Equal(t, "light.porch", call.Body["entity_id"])
	})

	t.Run("controller failure leaves the proposal approved", func(t *testing.T) {
		d, proposals, controller := newTestDeployer(t)
		controller.status = http.StatusBadGateway
		p := approvedProposal(t, proposals, entproposal.KindAutomation, map[string]interface{}{
			"alias": "x",
		})

		_, err := d.Deploy(ctx, p.ID)
		require.Error(t, err)

		got, err := proposals.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusApproved, got.Status)
	})

	t.Run("requires approved status", func(t *testing.T) {
		d, proposals, _ := newTestDeployer(t)
		p, err := proposals.Create(ctx, models.CreateProposalRequest{
			Kind:  entproposal.KindAutomation,
			Title: "still a draft",
			Body:  map[string]interface{}{"alias": "x"},
		})
		require.NoError(t, err)

		_, err = d.Deploy(ctx, p.ID)
		assert.True(t, services.IsStateConflict(err))
	})
}

func TestDeployer_Rollback(t *testing.T) {
	ctx := context.Background()

	t.Run("disables a deployed automation", func(t *testing.T) {
		d, proposals, controller := newTestDeployer(t)
		p := approvedProposal(t, proposals, entproposal.KindAutomation, map[string]interface{}{"alias": "x"})
		deployed, err := d.Deploy(ctx, p.ID)
		require.NoError(t, err)

		rolled, err := d.Rollback(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusRolledBack, rolled.Status)
		require.NotNil(t, rolled.HaDisabled)
		assert.True(t, *rolled.HaDisabled)

		call := controller.lastCall(t)
		assert.Equal(t, "/api/services/automation/turn_off", call.Path)
		assert.Equal(t, "automation."+*deployed.HaAutomationID, call.Body["entity_id"])
	})

	t.Run("records the rollback even when the controller fails", func(t *testing.T) {
		d, proposals, controller := newTestDeployer(t)
		p := approvedProposal(t, proposals, entproposal.KindAutomation, map[string]interface{}{"alias": "x"})
		_, err := d.Deploy(ctx, p.ID)
		require.NoError(t, err)

		controller.status = http.StatusBadGateway
		rolled, err := d.Rollback(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entproposal.StatusRolledBack, rolled.Status)
		require.NotNil(t, rolled.HaDisabled)
		assert.False(t, *rolled.HaDisabled)
		require.NotNil(t, rolled.HaError)
		assert.NotEmpty(t, *rolled.HaError)
	})

	t.Run("entity commands cannot be undone", func(t *testing.T) {
		d, proposals, _ := newTestDeployer(t)
		p := approvedProposal(t, proposals, entproposal.KindEntityCommand, map[string]interface{}{
			"domain":  "light",
			"service": "turn_off",
		})
		_, err := d.Deploy(ctx, p.ID)
		require.NoError(t, err)

		rolled, err := d.Rollback(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, rolled.HaError)
		assert.Contains(t, *rolled.HaError, "cannot be undone")
	})

	t.Run("requires deployed status", func(t *testing.T) {
		d, proposals, _ := newTestDeployer(t)
		p := approvedProposal(t, proposals, entproposal.KindAutomation, map[string]interface{}{"alias": "x"})

		_, err := d.Rollback(ctx, p.ID)
		assert.True(t, services.IsStateConflict(err))
	})
}

func TestRenderAutomationYAML(t *testing.T) {
	t.Run("prefers the automation key", func(t *testing.T) {
		out, err := RenderAutomationYAML(map[string]interface{}{
			"automation": map[string]interface{}{"alias": "Porch light at dusk"},
			"summary":    "ignored",
		})
		require.NoError(t, err)
		assert.Contains(t, out, "alias: Porch light at dusk")
		assert.NotContains(t, out, "summary")
	})

	t.Run("renders the whole body otherwise", func(t *testing.T) {
		out, err := RenderAutomationYAML(map[string]interface{}{"alias": "Direct"})
		require.NoError(t, err)
		assert.Contains(t, out, "alias: Direct")
	})
}

func TestConfigIDFor(t *testing.T) {
	p := &ent.Proposal{ID: "c0ffee11-dead-beef-0000-123456789abc"}
	id := configIDFor(p)
	assert.Regexp(t, regexp.MustCompile(`^aether_[0-9a-f]{12}$`), id)
	assert.Equal(t, id, configIDFor(p), "stable per proposal")
}
