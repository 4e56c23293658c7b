package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aether-home/aether/ent"
	entschedule "github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/pkg/models"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// ScheduleService provides persistence for insight schedules. It
// enforces the per-trigger field invariants: cron schedules carry a
// valid cron expression and no event fields; webhook and event
// schedules carry an event label or match filter and no cron
// expression.
type ScheduleService struct {
	client *ent.Client
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(client *ent.Client) *ScheduleService {
	return &ScheduleService{client: client}
}

// validateCron rejects expressions the scheduler could not register.
// Standard 5-field cron syntax plus @-descriptors.
func validateCron(expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return NewValidationError("cron_expression", err.Error())
	}
	return nil
}

// Create persists a new schedule.
func (s *ScheduleService) Create(httpCtx context.Context, req models.CreateScheduleRequest) (*ent.InsightSchedule, error) {
	if req.Label == "" {
		return nil, NewValidationError("label", "required")
	}
	if req.AnalysisType == "" {
		return nil, NewValidationError("analysis_type", "required")
	}
	if req.Trigger == "" {
		req.Trigger = entschedule.TriggerCron
	}

	switch req.Trigger {
	case entschedule.TriggerCron:
		if req.CronExpression == "" {
			return nil, NewValidationError("cron_expression", "required for cron trigger")
		}
		if err := validateCron(req.CronExpression); err != nil {
			return nil, err
		}
		if req.EventLabel != "" || len(req.MatchFilter) > 0 {
			return nil, NewValidationError("event_label", "not allowed for cron trigger")
		}
	case entschedule.TriggerWebhook, entschedule.TriggerEvent:
		if req.CronExpression != "" {
			return nil, NewValidationError("cron_expression", "not allowed for "+string(req.Trigger)+" trigger")
		}
	default:
		return nil, NewValidationError("trigger", "unknown trigger kind")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.InsightSchedule.Create().
		SetID(uuid.New().String()).
		SetLabel(req.Label).
		SetAnalysisType(req.AnalysisType).
		SetTrigger(req.Trigger)
	if req.Enabled != nil {
		create = create.SetEnabled(*req.Enabled)
	}
	if len(req.EntityIDs) > 0 {
		create = create.SetEntityIds(req.EntityIDs)
	}
	if req.LookbackHours > 0 {
		create = create.SetLookbackHours(req.LookbackHours)
	}
	if len(req.Options) > 0 {
		create = create.SetOptions(req.Options)
	}
	if req.CronExpression != "" {
		create = create.SetCronExpression(req.CronExpression)
	}
	if req.EventLabel != "" {
		create = create.SetEventLabel(req.EventLabel)
	}
	if len(req.MatchFilter) > 0 {
		create = create.SetMatchFilter(req.MatchFilter)
	}
	if req.Depth != "" {
		create = create.SetDepth(req.Depth)
	}
	if req.Strategy != "" {
		create = create.SetStrategy(req.Strategy)
	}
	if req.TimeoutSeconds > 0 {
		create = create.SetTimeoutSeconds(req.TimeoutSeconds)
	}

	sched, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return sched, nil
}

// Get returns a schedule by id.
func (s *ScheduleService) Get(httpCtx context.Context, id string) (*ent.InsightSchedule, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sched, err := s.client.InsightSchedule.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return sched, nil
}

// List returns all schedules, newest first.
func (s *ScheduleService) List(httpCtx context.Context) ([]*ent.InsightSchedule, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	items, err := s.client.InsightSchedule.Query().
		Order(ent.Desc(entschedule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return items, nil
}

// Update applies the non-nil fields of the request. Trigger kind is
// immutable after creation; changing cadence means replacing the
// schedule.
func (s *ScheduleService) Update(httpCtx context.Context, id string, req models.UpdateScheduleRequest) (*ent.InsightSchedule, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sched, err := s.client.InsightSchedule.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	if req.CronExpression != nil {
		if sched.Trigger != entschedule.TriggerCron {
			return nil, NewValidationError("cron_expression", "not allowed for "+string(sched.Trigger)+" trigger")
		}
		if err := validateCron(*req.CronExpression); err != nil {
			return nil, err
		}
	}
	if (req.EventLabel != nil || req.MatchFilter != nil) && sched.Trigger == entschedule.TriggerCron {
		return nil, NewValidationError("event_label", "not allowed for cron trigger")
	}
	if req.LookbackHours != nil && (*req.LookbackHours < 1 || *req.LookbackHours > 8760) {
		return nil, NewValidationError("lookback_hours", "must be between 1 and 8760")
	}

	update := sched.Update()
	if req.Label != nil {
		update = update.SetLabel(*req.Label)
	}
	if req.Enabled != nil {
		update = update.SetEnabled(*req.Enabled)
	}
	if req.EntityIDs != nil {
		update = update.SetEntityIds(req.EntityIDs)
	}
	if req.LookbackHours != nil {
		update = update.SetLookbackHours(*req.LookbackHours)
	}
	if req.Options != nil {
		update = update.SetOptions(req.Options)
	}
	if req.CronExpression != nil {
		update = update.SetCronExpression(*req.CronExpression)
	}
	if req.EventLabel != nil {
		update = update.SetEventLabel(*req.EventLabel)
	}
	if req.MatchFilter != nil {
		update = update.SetMatchFilter(req.MatchFilter)
	}
	if req.Depth != nil {
		update = update.SetDepth(*req.Depth)
	}
	if req.Strategy != nil {
		update = update.SetStrategy(*req.Strategy)
	}
	if req.TimeoutSeconds != nil {
		update = update.SetTimeoutSeconds(*req.TimeoutSeconds)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return updated, nil
}

// Delete removes a schedule. The scheduler drops its job on the next sync.
func (s *ScheduleService) Delete(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.InsightSchedule.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

// ListEnabledCron returns the enabled cron-triggered schedules. The
// scheduler sync reconciles its job set against this.
func (s *ScheduleService) ListEnabledCron(ctx context.Context) ([]*ent.InsightSchedule, error) {
	items, err := s.client.InsightSchedule.Query().
		Where(
			entschedule.EnabledEQ(true),
			entschedule.TriggerEQ(entschedule.TriggerCron),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cron schedules: %w", err)
	}
	return items, nil
}

// MatchWebhook returns the enabled webhook- and event-triggered
// schedules whose label and match filter accept the given controller
// event. Each match is an independent run candidate.
func (s *ScheduleService) MatchWebhook(ctx context.Context, eventLabel, eventType, entityID, newState, oldState string) ([]*ent.InsightSchedule, error) {
	candidates, err := s.client.InsightSchedule.Query().
		Where(
			entschedule.EnabledEQ(true),
			entschedule.TriggerIn(entschedule.TriggerWebhook, entschedule.TriggerEvent),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query webhook schedules: %w", err)
	}

	var matched []*ent.InsightSchedule
	for _, sched := range candidates {
		// A nil label is a catch-all; a set label must match exactly.
		if sched.EventLabel != nil && *sched.EventLabel != eventLabel {
			continue
		}
		if !MatchesWebhookEvent(sched.MatchFilter, eventType, entityID, newState, oldState) {
			continue
		}
		matched = append(matched, sched)
	}
	return matched, nil
}

// RecordRunResult stores the outcome of a schedule run and bumps the
// run counter.
func (s *ScheduleService) RecordRunResult(ctx context.Context, id string, result entschedule.LastResult, runErr string) error {
	update := s.client.InsightSchedule.UpdateOneID(id).
		SetLastRunAt(time.Now()).
		SetLastResult(result).
		AddRunCount(1)
	if runErr != "" {
		update = update.SetLastError(runErr)
	} else {
		update = update.ClearLastError()
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record run result: %w", err)
	}
	return nil
}
