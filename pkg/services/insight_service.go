package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aether-home/aether/ent"
	entinsight "github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/pkg/models"
	"github.com/google/uuid"
)

// InsightService provides persistence for analysis insights.
type InsightService struct {
	client *ent.Client
}

// NewInsightService creates a new InsightService.
func NewInsightService(client *ent.Client) *InsightService {
	return &InsightService{client: client}
}

// Create persists an insight in pending status.
func (s *InsightService) Create(httpCtx context.Context, req models.CreateInsightRequest) (*ent.Insight, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return nil, NewValidationError("confidence", "must be between 0 and 1")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Insight.Create().
		SetID(uuid.New().String()).
		SetCategory(req.Category).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetConfidence(req.Confidence).
		SetImpact(req.Impact).
		SetStatus(entinsight.StatusPending)
	if len(req.Evidence) > 0 {
		create = create.SetEvidence(req.Evidence)
	}
	if len(req.EntityIDs) > 0 {
		create = create.SetEntityIds(req.EntityIDs)
	}
	if req.ScriptPath != "" {
		create = create.SetScriptPath(req.ScriptPath)
	}
	if req.ScriptOutput != "" {
		create = create.SetScriptOutput(req.ScriptOutput)
	}
	if req.ConversationID != "" {
		create = create.SetConversationID(req.ConversationID)
	}
	if req.ScheduleID != "" {
		create = create.SetScheduleID(req.ScheduleID)
	}

	ins, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}
	return ins, nil
}

// Get returns an insight by id.
func (s *InsightService) Get(httpCtx context.Context, id string) (*ent.Insight, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ins, err := s.client.Insight.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	return ins, nil
}

// ListFilter narrows List. Zero values mean no filter.
type ListFilter struct {
	Status     entinsight.Status
	Impact     entinsight.Impact
	Category   string
	ScheduleID string
	Limit      int
}

// List returns insights, newest first.
func (s *InsightService) List(httpCtx context.Context, filter ListFilter) ([]*ent.Insight, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.Insight.Query()
	if filter.Status != "" {
		q = q.Where(entinsight.StatusEQ(filter.Status))
	}
	if filter.Impact != "" {
		q = q.Where(entinsight.ImpactEQ(filter.Impact))
	}
	if filter.Category != "" {
		q = q.Where(entinsight.CategoryEQ(filter.Category))
	}
	if filter.ScheduleID != "" {
		q = q.Where(entinsight.ScheduleIDEQ(filter.ScheduleID))
	}
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	items, err := q.
		Order(ent.Desc(entinsight.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	return items, nil
}

// UpdateStatus moves an insight through its review flow
// (pending, reviewed, actioned, dismissed).
func (s *InsightService) UpdateStatus(httpCtx context.Context, id string, status entinsight.Status) (*ent.Insight, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ins, err := s.client.Insight.UpdateOneID(id).SetStatus(status).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update insight status: %w", err)
	}
	return ins, nil
}

// CreatedSince returns insights a schedule run produced within the
// given window. The notifier uses this to decide between a per-insight
// notification and an aggregate one.
func (s *InsightService) CreatedSince(ctx context.Context, scheduleID string, since time.Time) ([]*ent.Insight, error) {
	items, err := s.client.Insight.Query().
		Where(
			entinsight.ScheduleIDEQ(scheduleID),
			entinsight.CreatedAtGTE(since),
		).
		Order(ent.Desc(entinsight.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule insights: %w", err)
	}
	return items, nil
}

// PurgeResolvedOlderThan deletes dismissed and actioned insights past
// the retention cutoff. Pending and reviewed insights are kept.
func (s *InsightService) PurgeResolvedOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Insight.Delete().
		Where(
			entinsight.StatusIn(entinsight.StatusDismissed, entinsight.StatusActioned),
			entinsight.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge insights: %w", err)
	}
	return n, nil
}
