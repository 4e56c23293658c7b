// Package analysis runs data-science analyses: scheduled runs that
// produce reports and insights, and ad-hoc consultations delegated
// from chat.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aether-home/aether/ent"
	entreport "github.com/aether-home/aether/ent/analysisreport"
	entinsight "github.com/aether-home/aether/ent/insight"
	entschedule "github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/pkg/agent"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/notify"
	"github.com/aether-home/aether/pkg/services"
)

// depthTimeouts are the run budgets when a schedule does not set one.
var depthTimeouts = map[entschedule.Depth]time.Duration{
	entschedule.DepthQuick:    2 * time.Minute,
	entschedule.DepthStandard: 5 * time.Minute,
	entschedule.DepthDeep:     15 * time.Minute,
}

// analystRoles are the specialist passes a run fans out to. Parallel
// strategy runs them concurrently; teamwork runs them in order, each
// seeing the previous findings.
var analystRoles = []string{"patterns", "anomalies", "efficiency"}

// Workflow executes analysis runs end to end: report row, analyst
// passes, insight rows, notification.
type Workflow struct {
	llm       agent.LLMClient
	model     string
	reports   *services.ReportService
	insights  *services.InsightService
	schedules *services.ScheduleService
	entities  *services.EntityService
	notifier  *notify.InsightNotifier
	logger    *slog.Logger
}

// New creates a workflow.
func New(
	llm agent.LLMClient,
	model string,
	reports *services.ReportService,
	insights *services.InsightService,
	schedules *services.ScheduleService,
	entities *services.EntityService,
	notifier *notify.InsightNotifier,
	logger *slog.Logger,
) *Workflow {
	return &Workflow{
		llm:       llm,
		model:     model,
		reports:   reports,
		insights:  insights,
		schedules: schedules,
		entities:  entities,
		notifier:  notifier,
		logger:    logger,
	}
}

// RunSchedule executes one schedule run: opens a report, runs the
// analysts, persists insights, closes the report, records the run
// outcome, and notifies. The run outcome is recorded even on failure.
func (w *Workflow) RunSchedule(ctx context.Context, sched *ent.InsightSchedule) error {
	timeout := depthTimeouts[sched.Depth]
	if sched.TimeoutSeconds != nil && *sched.TimeoutSeconds > 0 {
		timeout = time.Duration(*sched.TimeoutSeconds) * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	report, err := w.reports.Create(runCtx, models.CreateReportRequest{
		Title:        sched.Label,
		AnalysisType: sched.AnalysisType,
		Depth:        entreport.Depth(sched.Depth),
		Strategy:     entreport.Strategy(sched.Strategy),
	})
	if err != nil {
		w.recordResult(ctx, sched.ID, entschedule.LastResultFailed, err)
		return err
	}

	insightIDs, commLog, runErr := w.runAnalysts(runCtx, sched)
	if runErr != nil {
		// Fail uses the parent context; the run context may be dead.
		if _, failErr := w.reports.Fail(ctx, report.ID, runErr.Error()); failErr != nil {
			w.logger.Error("failed to close report", "report_id", report.ID, "error", failErr)
		}
		result := entschedule.LastResultFailed
		if runCtx.Err() == context.DeadlineExceeded {
			result = entschedule.LastResultTimeout
		}
		w.recordResult(ctx, sched.ID, result, runErr)
		return runErr
	}

	_, err = w.reports.Complete(ctx, report.ID, models.CompleteReportRequest{
		Summary:          fmt.Sprintf("%s run produced %d insights", sched.AnalysisType, len(insightIDs)),
		InsightIDs:       insightIDs,
		CommunicationLog: commLog,
	})
	if err != nil {
		w.logger.Error("failed to complete report", "report_id", report.ID, "error", err)
	}
	w.recordResult(ctx, sched.ID, entschedule.LastResultSuccess, nil)

	created, err := w.insights.CreatedSince(ctx, sched.ID, time.Now().Add(-time.Hour))
	if err != nil {
		w.logger.Warn("could not load run insights for notification", "error", err)
	} else {
		w.notifier.NotifyRun(ctx, sched.Label, created)
	}
	return nil
}

func (w *Workflow) recordResult(ctx context.Context, scheduleID string, result entschedule.LastResult, runErr error) {
	msg := ""
	if runErr != nil {
		msg = runErr.Error()
	}
	if err := w.schedules.RecordRunResult(ctx, scheduleID, result, msg); err != nil {
		w.logger.Error("failed to record run result", "schedule_id", scheduleID, "error", err)
	}
}

// runAnalysts fans the run out over the analyst roles per the
// schedule's strategy.
func (w *Workflow) runAnalysts(ctx context.Context, sched *ent.InsightSchedule) ([]string, []map[string]interface{}, error) {
	homeContext, err := w.buildContext(ctx, sched)
	if err != nil {
		return nil, nil, err
	}

	if sched.Strategy == entschedule.StrategyTeamwork {
		return w.runTeamwork(ctx, sched, homeContext)
	}
	return w.runParallel(ctx, sched, homeContext)
}

// runParallel runs all analysts concurrently and merges their findings.
func (w *Workflow) runParallel(ctx context.Context, sched *ent.InsightSchedule, homeContext string) ([]string, []map[string]interface{}, error) {
	type outcome struct {
		role     string
		findings []finding
		err      error
	}

	results := make(chan outcome, len(analystRoles))
	var wg sync.WaitGroup
	for _, role := range analystRoles {
		wg.Add(1)
		go func(role string) {
			defer wg.Done()
			findings, err := w.runAnalyst(ctx, sched, role, homeContext, "")
			results <- outcome{role: role, findings: findings, err: err}
		}(role)
	}
	wg.Wait()
	close(results)

	var insightIDs []string
	var commLog []map[string]interface{}
	var firstErr error
	for res := range results {
		commLog = append(commLog, map[string]interface{}{
			"role":     res.role,
			"findings": len(res.findings),
		})
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		ids, err := w.persistFindings(ctx, sched, res.findings)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		insightIDs = append(insightIDs, ids...)
	}

	// Partial analyst failure still yields a usable report; total
	// failure does not.
	if len(insightIDs) == 0 && firstErr != nil {
		return nil, commLog, firstErr
	}
	return insightIDs, commLog, nil
}

// runTeamwork runs analysts in sequence, each seeing what came before.
func (w *Workflow) runTeamwork(ctx context.Context, sched *ent.InsightSchedule, homeContext string) ([]string, []map[string]interface{}, error) {
	var insightIDs []string
	var commLog []map[string]interface{}
	var priorNotes strings.Builder

	for _, role := range analystRoles {
		findings, err := w.runAnalyst(ctx, sched, role, homeContext, priorNotes.String())
		if err != nil {
			return insightIDs, commLog, err
		}
		for _, f := range findings {
			fmt.Fprintf(&priorNotes, "[%s] %s: %s\n", role, f.Title, f.Description)
		}
		commLog = append(commLog, map[string]interface{}{
			"role":     role,
			"findings": len(findings),
		})
		ids, err := w.persistFindings(ctx, sched, findings)
		if err != nil {
			return insightIDs, commLog, err
		}
		insightIDs = append(insightIDs, ids...)
	}
	return insightIDs, commLog, nil
}

// buildContext assembles the entity snapshot text the analysts see.
func (w *Workflow) buildContext(ctx context.Context, sched *ent.InsightSchedule) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analysis type: %s, lookback: %dh\n", sched.AnalysisType, sched.LookbackHours)

	if len(sched.EntityIds) > 0 {
		for _, id := range sched.EntityIds {
			e, err := w.entities.Get(ctx, id)
			if err != nil {
				continue
			}
			fmt.Fprintf(&sb, "%s\t%s\t%s\n", e.ID, e.State, e.FriendlyName)
		}
		return sb.String(), nil
	}

	all, err := w.entities.List(ctx, "", 500)
	if err != nil {
		return "", err
	}
	for _, e := range all {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", e.ID, e.State, e.FriendlyName)
	}
	return sb.String(), nil
}

// finding is the JSON shape analysts must reply with.
type finding struct {
	Category    string                 `json:"category"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Confidence  float64                `json:"confidence"`
	Impact      string                 `json:"impact"`
	EntityIDs   []string               `json:"entity_ids"`
	Evidence    map[string]interface{} `json:"evidence"`
}

const analystPrompt = `You are the %s analyst on a home data science team.
Study the home snapshot and report findings as a JSON array of
{"category","title","description","confidence","impact","entity_ids","evidence"}.
Impact is one of low, medium, high, critical; confidence is 0..1.
Reply with the JSON array only. Reply [] when there is nothing notable.`

func (w *Workflow) runAnalyst(ctx context.Context, sched *ent.InsightSchedule, role, homeContext, priorNotes string) ([]finding, error) {
	user := homeContext
	if priorNotes != "" {
		user += "\nFindings so far:\n" + priorNotes
	}

	ch, err := w.llm.Generate(ctx, &agent.GenerateInput{
		Model:       w.model,
		Temperature: 0.2,
		Messages: []agent.ConversationMessage{
			{Role: "system", Content: fmt.Sprintf(analystPrompt, role)},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return nil, services.NewExternalError("llm", "analysis model unavailable", err)
	}

	var sb strings.Builder
	for chunk := range ch {
		switch ck := chunk.(type) {
		case *agent.TextChunk:
			sb.WriteString(ck.Content)
		case *agent.ErrorChunk:
			return nil, services.NewExternalError("llm", ck.Message, nil)
		}
	}

	var findings []finding
	raw := extractJSONArray(sb.String())
	if err := json.Unmarshal([]byte(raw), &findings); err != nil {
		return nil, fmt.Errorf("analyst %s returned unparseable output: %w", role, err)
	}
	return findings, nil
}

func (w *Workflow) persistFindings(ctx context.Context, sched *ent.InsightSchedule, findings []finding) ([]string, error) {
	var ids []string
	for _, f := range findings {
		if f.Title == "" {
			continue
		}
		impact := f.Impact
		switch impact {
		case "low", "medium", "high", "critical":
		default:
			impact = "medium"
		}
		conf := f.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		ins, err := w.insights.Create(ctx, models.CreateInsightRequest{
			Category:    f.Category,
			Title:       f.Title,
			Description: f.Description,
			Evidence:    f.Evidence,
			Confidence:  conf,
			Impact:      entinsight.Impact(impact),
			EntityIDs:   f.EntityIDs,
			ScheduleID:  sched.ID,
		})
		if err != nil {
			return ids, err
		}
		ids = append(ids, ins.ID)
	}
	return ids, nil
}

// RunConsult answers an ad-hoc data science question from chat. It is
// lighter than a schedule run: one pass, no report row, no insights.
func (w *Workflow) RunConsult(ctx context.Context, question, depth string) (string, error) {
	timeout := depthTimeouts[entschedule.Depth(depth)]
	if timeout == 0 {
		timeout = depthTimeouts[entschedule.DepthStandard]
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	all, err := w.entities.List(runCtx, "", 500)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, e := range all {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", e.ID, e.State, e.FriendlyName)
	}

	ch, err := w.llm.Generate(runCtx, &agent.GenerateInput{
		Model:       w.model,
		Temperature: 0.2,
		Messages: []agent.ConversationMessage{
			{Role: "system", Content: "You are a home data science team. Answer the question using the home snapshot. Be concise and quantitative."},
			{Role: "user", Content: "Home snapshot:\n" + sb.String() + "\nQuestion: " + question},
		},
	})
	if err != nil {
		return "", services.NewExternalError("llm", "analysis model unavailable", err)
	}

	var out strings.Builder
	for chunk := range ch {
		switch ck := chunk.(type) {
		case *agent.TextChunk:
			out.WriteString(ck.Content)
		case *agent.ErrorChunk:
			return "", services.NewExternalError("llm", ck.Message, nil)
		}
	}
	return strings.TrimSpace(out.String()), nil
}

func extractJSONArray(s string) string {
	start := strings.IndexByte(s, '[')
	end := strings.LastIndexByte(s, ']')
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}
