package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aether-home/aether/ent"
	entreport "github.com/aether-home/aether/ent/analysisreport"
	"github.com/aether-home/aether/pkg/models"
	"github.com/google/uuid"
)

// ReportService provides persistence for analysis report runs. A
// report is created in running status and terminates exactly once,
// either Complete or Fail.
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService.
func NewReportService(client *ent.Client) *ReportService {
	return &ReportService{client: client}
}

// Create opens a report in running status.
func (s *ReportService) Create(httpCtx context.Context, req models.CreateReportRequest) (*ent.AnalysisReport, error) {
	if req.AnalysisType == "" {
		return nil, NewValidationError("analysis_type", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	r, err := s.client.AnalysisReport.Create().
		SetID(uuid.New().String()).
		SetTitle(req.Title).
		SetAnalysisType(req.AnalysisType).
		SetDepth(req.Depth).
		SetStrategy(req.Strategy).
		SetStatus(entreport.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return r, nil
}

// Get returns a report by id.
func (s *ReportService) Get(httpCtx context.Context, id string) (*ent.AnalysisReport, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	r, err := s.client.AnalysisReport.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return r, nil
}

// List returns reports, newest first, optionally filtered by status.
func (s *ReportService) List(httpCtx context.Context, status entreport.Status, limit int) ([]*ent.AnalysisReport, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.AnalysisReport.Query()
	if status != "" {
		q = q.Where(entreport.StatusEQ(status))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	items, err := q.
		Order(ent.Desc(entreport.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return items, nil
}

// Complete terminates a running report with its results. Completing a
// report that already terminated is a state conflict.
func (s *ReportService) Complete(httpCtx context.Context, id string, req models.CompleteReportRequest) (*ent.AnalysisReport, error) {
	return s.terminate(httpCtx, id, "complete", func(u *ent.AnalysisReportUpdateOne) {
		u.SetStatus(entreport.StatusCompleted).
			SetSummary(req.Summary).
			SetCompletedAt(time.Now())
		if len(req.InsightIDs) > 0 {
			u.SetInsightIds(req.InsightIDs)
		}
		if len(req.Artifacts) > 0 {
			u.SetArtifacts(req.Artifacts)
		}
		if len(req.CommunicationLog) > 0 {
			u.SetCommunicationLog(req.CommunicationLog)
		}
	})
}

// Fail terminates a running report with an error message.
func (s *ReportService) Fail(httpCtx context.Context, id, errorMessage string) (*ent.AnalysisReport, error) {
	return s.terminate(httpCtx, id, "fail", func(u *ent.AnalysisReportUpdateOne) {
		u.SetStatus(entreport.StatusFailed).
			SetSummary(errorMessage).
			SetCompletedAt(time.Now())
	})
}

func (s *ReportService) terminate(
	httpCtx context.Context,
	id, action string,
	apply func(*ent.AnalysisReportUpdateOne),
) (*ent.AnalysisReport, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	r, err := tx.AnalysisReport.Query().
		Where(entreport.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if r.Status != entreport.StatusRunning {
		return nil, NewStateConflictError("report", string(r.Status), action)
	}

	update := r.Update()
	apply(update)
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to %s report: %w", action, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit %s: %w", action, err)
	}
	return updated, nil
}

// PurgeOlderThan deletes terminated reports past the retention cutoff.
// Running reports are never purged.
func (s *ReportService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.AnalysisReport.Delete().
		Where(
			entreport.StatusNEQ(entreport.StatusRunning),
			entreport.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge reports: %w", err)
	}
	return n, nil
}
