package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aether-home/aether/pkg/analysis"
	"github.com/aether-home/aether/pkg/config"
	"github.com/aether-home/aether/pkg/ha"
	"github.com/aether-home/aether/pkg/services"
	"github.com/aether-home/aether/pkg/trace"
)

// Well-known job ids and specs.
const (
	JobDiscoverySync = "discovery_sync"
	JobRetention     = "retention"
	JobTraceEval     = "trace_eval"
	JobScheduleSync  = "insight_schedule_sync"

	// insightJobPrefix namespaces the per-schedule jobs.
	insightJobPrefix = "insight_schedule:"

	TraceEvalSpec    = "0 2 * * *"
	RetentionSpec    = "30 3 * * *"
	ScheduleSyncSpec = "@every 1m"
)

// RegisterSystemJobs wires the fixed background jobs. The discovery
// cadence widens when the event stream is on; polling then only
// catches structural drift the stream cannot see.
func RegisterSystemJobs(
	s *Scheduler,
	cfg *config.Config,
	haClient *ha.Client,
	entities *services.EntityService,
	conversations *services.ConversationService,
	insights *services.InsightService,
	reports *services.ReportService,
	usage *services.UsageService,
	schedules *services.ScheduleService,
	workflow *analysis.Workflow,
	evaluator *trace.Evaluator,
	logger *slog.Logger,
) error {
	discoveryInterval := cfg.DiscoverySyncInterval
	if cfg.HAEventStream {
		discoveryInterval = cfg.DiscoverySyncStreamingInterval
	}
	discoverySpec := fmt.Sprintf("@every %s", discoveryInterval)

	if haClient != nil {
		if err := s.Register(JobDiscoverySync, discoverySpec, DiscoveryJob(haClient, entities, logger)); err != nil {
			return err
		}
	}
	if err := s.Register(JobRetention, RetentionSpec, RetentionJob(cfg, conversations, insights, reports, usage, logger)); err != nil {
		return err
	}
	if evaluator != nil {
		if err := s.Register(JobTraceEval, TraceEvalSpec, func(ctx context.Context) {
			evaluator.Run(ctx)
		}); err != nil {
			return err
		}
	}
	sync := ScheduleSyncJob(s, schedules, workflow, logger)
	if err := s.Register(JobScheduleSync, ScheduleSyncSpec, sync); err != nil {
		return err
	}
	// cron's @every fires after a full interval, so run the first
	// reconcile now; otherwise schedules stay dormant for a minute
	// after every restart.
	sync(context.Background())
	return nil
}

// DiscoveryJob pulls a full entity snapshot from the controller and
// reconciles the local catalogue, dropping entities the controller no
// longer reports.
func DiscoveryJob(haClient *ha.Client, entities *services.EntityService, logger *slog.Logger) Job {
	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		start := time.Now()
		snapshots, err := haClient.ListStates(ctx)
		if err != nil {
			logger.Warn("discovery sync failed to list states", "error", err)
			return
		}
		if err := entities.UpsertBatch(ctx, snapshots); err != nil {
			logger.Error("discovery sync failed to upsert", "count", len(snapshots), "error", err)
			return
		}
		purged, err := entities.PurgeStale(ctx, start)
		if err != nil {
			logger.Warn("discovery sync failed to purge stale entities", "error", err)
		}
		logger.Info("discovery sync complete", "entities", len(snapshots), "purged", purged)
	}
}

// RetentionJob purges expired rows per the configured windows.
// Running reports and unresolved insights are never touched.
func RetentionJob(
	cfg *config.Config,
	conversations *services.ConversationService,
	insights *services.InsightService,
	reports *services.ReportService,
	usage *services.UsageService,
	logger *slog.Logger,
) Job {
	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
		defer cancel()

		now := time.Now()
		cutoff := func(days int) time.Time { return now.AddDate(0, 0, -days) }

		if n, err := usage.PurgeOlderThan(ctx, cutoff(cfg.UsageRetentionDays)); err != nil {
			logger.Warn("usage retention failed", "error", err)
		} else if n > 0 {
			logger.Info("usage rows purged", "count", n)
		}
		if n, err := reports.PurgeOlderThan(ctx, cutoff(cfg.ReportRetentionDays)); err != nil {
			logger.Warn("report retention failed", "error", err)
		} else if n > 0 {
			logger.Info("reports purged", "count", n)
		}
		if n, err := insights.PurgeResolvedOlderThan(ctx, cutoff(cfg.InsightRetentionDays)); err != nil {
			logger.Warn("insight retention failed", "error", err)
		} else if n > 0 {
			logger.Info("insights purged", "count", n)
		}
		if n, err := conversations.PurgeOlderThan(ctx, cutoff(cfg.ConversationRetentionDays)); err != nil {
			logger.Warn("conversation retention failed", "error", err)
		} else if n > 0 {
			logger.Info("conversations purged", "count", n)
		}
	}
}

// ScheduleSyncJob reconciles per-schedule cron jobs against the
// database. Runs every minute and is idempotent, so schedule edits
// take effect without a restart.
func ScheduleSyncJob(s *Scheduler, schedules *services.ScheduleService, workflow *analysis.Workflow, logger *slog.Logger) Job {
	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		enabled, err := schedules.ListEnabledCron(ctx)
		if err != nil {
			logger.Warn("schedule sync failed", "error", err)
			return
		}

		desired := make(map[string]JobSpec, len(enabled))
		for _, sched := range enabled {
			if sched.CronExpression == nil {
				continue
			}
			scheduleID := sched.ID
			desired[insightJobPrefix+scheduleID] = JobSpec{
				Spec: *sched.CronExpression,
				Job:  RunScheduleJob(schedules, workflow, scheduleID, logger),
			}
		}
		if err := s.SyncPrefix(insightJobPrefix, desired); err != nil {
			logger.Error("schedule sync could not register jobs", "error", err)
		}
	}
}

// RunScheduleJob loads the schedule fresh at fire time so edits
// between sync and run are honored.
func RunScheduleJob(schedules *services.ScheduleService, workflow *analysis.Workflow, scheduleID string, logger *slog.Logger) Job {
	return func(ctx context.Context) {
		sched, err := schedules.Get(ctx, scheduleID)
		if err != nil {
			logger.Warn("scheduled run skipped, schedule gone", "schedule_id", scheduleID, "error", err)
			return
		}
		if !sched.Enabled {
			return
		}
		if err := workflow.RunSchedule(ctx, sched); err != nil {
			logger.Error("scheduled analysis run failed", "schedule_id", scheduleID, "error", err)
		}
	}
}
