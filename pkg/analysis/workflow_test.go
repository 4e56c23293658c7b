package analysis

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-home/aether/ent"
	entreport "github.com/aether-home/aether/ent/analysisreport"
	entinsight "github.com/aether-home/aether/ent/insight"
	entschedule "github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/pkg/agent"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/notify"
	"github.com/aether-home/aether/pkg/services"
	testdb "github.com/aether-home/aether/test/database"
)

// analystLLM answers every Generate call with the same analyst output.
type analystLLM struct {
	reply string
}

func (l *analystLLM) Generate(_ context.Context, _ *agent.GenerateInput) (<-chan agent.Chunk, error) {
	ch := make(chan agent.Chunk, 1)
	ch <- &agent.TextChunk{Content: l.reply}
	close(ch)
	return ch, nil
}

func (l *analystLLM) Close() error { return nil }

const findingsJSON = `Here is what I found:
[{"category": "energy", "title": "Standby draw overnight",
  "description": "The media center draws 40W while everyone sleeps.",
  "confidence": 0.8, "impact": "high", "entity_ids": ["switch.media_center"]}]`

type workflowHarness struct {
	workflow  *Workflow
	reports   *services.ReportService
	insights  *services.InsightService
	schedules *services.ScheduleService
}

func newWorkflowHarness(t *testing.T, llm agent.LLMClient) *workflowHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.Default()

	reports := services.NewReportService(client.Client)
	insights := services.NewInsightService(client.Client)
	schedules := services.NewScheduleService(client.Client)
	entities := services.NewEntityService(client.Client)
	settings := services.NewSettingsService(client.Client)

	err := entities.UpsertBatch(context.Background(), []models.EntitySnapshot{
		{EntityID: "switch.media_center", State: "on", FriendlyName: "Media Center"},
	})
	require.NoError(t, err)

	return &workflowHarness{
		workflow: New(llm, "test-model", reports, insights, schedules, entities,
			notify.New(nil, settings, logger), logger),
		reports:   reports,
		insights:  insights,
		schedules: schedules,
	}
}

func (h *workflowHarness) schedule(t *testing.T, strategy entschedule.Strategy) *ent.InsightSchedule {
	t.Helper()
	sched, err := h.schedules.Create(context.Background(), models.CreateScheduleRequest{
		Label:          "nightly energy " + string(strategy),
		AnalysisType:   "energy",
		Trigger:        entschedule.TriggerCron,
		CronExpression: "0 2 * * *",
		Strategy:       strategy,
	})
	require.NoError(t, err)
	return sched
}

func TestWorkflow_RunSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("parallel run produces a report and insights", func(t *testing.T) {
		h := newWorkflowHarness(t, &analystLLM{reply: findingsJSON})
		sched := h.schedule(t, entschedule.StrategyParallel)

		require.NoError(t, h.workflow.RunSchedule(ctx, sched))

		reports, err := h.reports.List(ctx, entreport.StatusCompleted, 0)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		require.NotNil(t, reports[0].Summary)
		assert.Contains(t, *reports[0].Summary, "3 insights", "one finding per analyst role")

		items, err := h.insights.List(ctx, services.ListFilter{ScheduleID: sched.ID})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Standby draw overnight", items[0].Title)
		assert.Equal(t, entinsight.ImpactHigh, items[0].Impact)

		got, err := h.schedules.Get(ctx, sched.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastResult)
		assert.Equal(t, entschedule.LastResultSuccess, *got.LastResult)
		assert.Equal(t, 1, got.RunCount)
	})

	t.Run("teamwork run also persists findings", func(t *testing.T) {
		h := newWorkflowHarness(t, &analystLLM{reply: findingsJSON})
		sched := h.schedule(t, entschedule.StrategyTeamwork)

		require.NoError(t, h.workflow.RunSchedule(ctx, sched))

		items, err := h.insights.List(ctx, services.ListFilter{ScheduleID: sched.ID})
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("empty findings complete cleanly", func(t *testing.T) {
		h := newWorkflowHarness(t, &analystLLM{reply: "[]"})
		sched := h.schedule(t, entschedule.StrategyParallel)

		require.NoError(t, h.workflow.RunSchedule(ctx, sched))

		items, err := h.insights.List(ctx, services.ListFilter{ScheduleID: sched.ID})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("unparseable analyst output fails the run", func(t *testing.T) {
		h := newWorkflowHarness(t, &analystLLM{reply: "I prefer prose."})
		sched := h.schedule(t, entschedule.StrategyParallel)

		require.Error(t, h.workflow.RunSchedule(ctx, sched))

		reports, err := h.reports.List(ctx, entreport.StatusFailed, 0)
		require.NoError(t, err)
		require.Len(t, reports, 1)

		got, err := h.schedules.Get(ctx, sched.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastResult)
		assert.Equal(t, entschedule.LastResultFailed, *got.LastResult)
		require.NotNil(t, got.LastError)
		assert.Contains(t, *got.LastError, "unparseable")
	})

	t.Run("invalid impact and confidence are normalised", func(t *testing.T) {
		h := newWorkflowHarness(t, &analystLLM{reply: `[{"title": "odd finding", "impact": "severe", "confidence": 3}]`})
		sched := h.schedule(t, entschedule.StrategyTeamwork)

		require.NoError(t, h.workflow.RunSchedule(ctx, sched))

		items, err := h.insights.List(ctx, services.ListFilter{ScheduleID: sched.ID})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, entinsight.ImpactMedium, items[0].Impact)
		assert.InDelta(t, 1.0, items[0].Confidence, 0.001)
	})
}

func TestWorkflow_RunConsult(t *testing.T) {
	h := newWorkflowHarness(t, &analystLLM{reply: "  The media center idles at 40W.  "})

	answer, err := h.workflow.RunConsult(context.Background(), "what draws power at night?", "quick")
	require.NoError(t, err)
	assert.Equal(t, "The media center idles at 40W.", answer)
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[1]`, extractJSONArray("noise [1] trailing"))
	assert.Equal(t, `[]`, extractJSONArray("```json\n[]\n```"))
	assert.Equal(t, "no array here", extractJSONArray("no array here"))
}
