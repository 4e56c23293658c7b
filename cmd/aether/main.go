// Aether server: streaming chat orchestration for the home, the
// controller webhook, and the analysis scheduler.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aether-home/aether/pkg/agent"
	"github.com/aether-home/aether/pkg/analysis"
	"github.com/aether-home/aether/pkg/api"
	"github.com/aether-home/aether/pkg/config"
	"github.com/aether-home/aether/pkg/database"
	"github.com/aether-home/aether/pkg/debounce"
	"github.com/aether-home/aether/pkg/deploy"
	"github.com/aether-home/aether/pkg/ha"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/notify"
	"github.com/aether-home/aether/pkg/orchestrator"
	"github.com/aether-home/aether/pkg/scheduler"
	"github.com/aether-home/aether/pkg/services"
	"github.com/aether-home/aether/pkg/trace"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using existing environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// 1. Process configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	// Distributed mode needs a remote architect endpoint; without one
	// the process falls back to the in-process workflow once, loudly.
	if cfg.DeploymentMode == config.ModeDistributed && cfg.ArchitectAddr == "" {
		logger.Warn("distributed mode requested without ARCHITECT_SERVICE_ADDR, falling back to monolith")
		cfg.DeploymentMode = config.ModeMonolith
	}
	logger.Info("starting aether", "role", cfg.Role, "mode", cfg.DeploymentMode, "http_port", cfg.HTTPPort)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("error closing database client", "error", err)
		}
	}()
	logger.Info("connected to PostgreSQL database")

	// 3. Services
	conversations := services.NewConversationService(dbClient.Client)
	proposals := services.NewProposalService(dbClient.Client)
	insights := services.NewInsightService(dbClient.Client)
	reports := services.NewReportService(dbClient.Client)
	schedules := services.NewScheduleService(dbClient.Client)
	settings := services.NewSettingsService(dbClient.Client)
	entities := services.NewEntityService(dbClient.Client)
	usage := services.NewUsageService(dbClient.Client)

	// 4. LLM client (lazy dial; first RPC connects)
	llmClient, err := agent.NewGRPCLLMClient(cfg.LLMServiceAddr)
	if err != nil {
		logger.Error("failed to initialize LLM client", "addr", cfg.LLMServiceAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			logger.Error("error closing LLM client", "error", err)
		}
	}()
	logger.Info("LLM client initialized", "addr", cfg.LLMServiceAddr)

	// 5. Controller client; optional, the assistant degrades to
	// catalogue-only answers without it.
	var haClient *ha.Client
	if cfg.HAToken != "" {
		haClient = ha.NewClient(ha.Config{
			BaseURL: cfg.HABaseURL,
			Token:   cfg.HAToken,
			Timeout: cfg.HARPCTimeout,
		})
		if err := haClient.Ping(ctx); err != nil {
			logger.Warn("home controller unreachable at startup", "error", err)
		}
	} else {
		logger.Warn("HA_TOKEN not set, controller integration disabled")
	}

	// 6. Analysis workflow and notifier
	var notifier *notify.InsightNotifier
	if haClient != nil {
		notifier = notify.New(haClient, settings, logger)
	}
	model := os.Getenv("LLM_MODEL")
	workflow := analysis.New(llmClient, model, reports, insights, schedules, entities, notifier, logger)

	// 7. Agent roster and orchestrator
	registry := agent.NewRegistry()
	agent.RegisterBuiltinTools(registry, haClient, entities, schedules, workflow)
	executor := agent.NewExecutor(registry, proposals, logger)
	classifier := agent.NewClassifier(llmClient, model, logger)
	router := agent.NewRouter(classifier, logger)
	orch := orchestrator.New(llmClient, router, executor, conversations, settings, usage, logger)

	// Distributed mode hands foreground turns to the architect service.
	if cfg.DeploymentMode == config.ModeDistributed {
		architectClient, err := agent.NewGRPCLLMClient(cfg.ArchitectAddr)
		if err != nil {
			logger.Error("failed to initialize architect client", "addr", cfg.ArchitectAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := architectClient.Close(); err != nil {
				logger.Error("error closing architect client", "error", err)
			}
		}()
		orch.UseRemoteArchitect(architectClient)
		logger.Info("architect client initialized", "addr", cfg.ArchitectAddr)
	}

	var deployer *deploy.Deployer
	if haClient != nil {
		deployer = deploy.NewDeployer(haClient, proposals, logger)
	}

	// 8. Event stream and debouncer (all and scheduler roles)
	var debouncer *debounce.Debouncer
	var stream *ha.Stream
	if cfg.Role != config.RoleAPI && haClient != nil && cfg.HAEventStream {
		debouncer = debounce.New(cfg.DebounceFlushInterval, cfg.DebounceQueueCapacity, entities.UpsertBatch, logger)
		if err := debouncer.Start(); err != nil {
			logger.Error("failed to start debouncer", "error", err)
			os.Exit(1)
		}
		stream = ha.NewStream(ha.Config{BaseURL: cfg.HABaseURL, Token: cfg.HAToken}, func(change ha.StateChange) {
			debouncer.Offer(models.EntitySnapshot{
				EntityID:     change.EntityID,
				State:        change.NewState,
				Attributes:   change.Attributes,
				FriendlyName: change.FriendlyName,
				LastChanged:  change.LastChanged,
			})
		}, logger)
		if err := stream.Start(); err != nil {
			logger.Error("failed to start event stream", "error", err)
			os.Exit(1)
		}
	}

	// 9. Scheduler (all and scheduler roles)
	var sched *scheduler.Scheduler
	var onScheduleChange func()
	if cfg.Role != config.RoleAPI {
		loc, err := time.LoadLocation(cfg.SchedulerTimezone)
		if err != nil {
			logger.Error("invalid SCHEDULER_TIMEZONE", "tz", cfg.SchedulerTimezone, "error", err)
			os.Exit(1)
		}
		evaluator := trace.NewEvaluator(usage, insights, logger)
		sched = scheduler.New(loc, scheduler.AnalysisGracePeriod, logger)
		err = scheduler.RegisterSystemJobs(sched, cfg, haClient, entities,
			conversations, insights, reports, usage, schedules, workflow, evaluator, logger)
		if err != nil {
			logger.Error("failed to register system jobs", "error", err)
			os.Exit(1)
		}
		// Schedule edits through the API reconcile immediately instead
		// of waiting for the periodic sync.
		syncJob := scheduler.ScheduleSyncJob(sched, schedules, workflow, logger)
		onScheduleChange = func() { go syncJob(context.Background()) }
		sched.Start()
	}

	// 10. HTTP server (all and api roles; scheduler role serves only /health)
	server := api.NewServer(api.Deps{
		Config:        cfg,
		DB:            dbClient,
		Orchestrator:  orch,
		Deployer:      deployer,
		Workflow:      workflow,
		Debouncer:     debouncer,
		HA:            haClient,
		Conversations: conversations,
		Proposals:     proposals,
		Insights:      insights,
		Reports:       reports,
		Schedules:     schedules,
		Settings:      settings,
		Entities:      entities,
		Usage:         usage,
		Logger:        logger,

		OnScheduleChange: onScheduleChange,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	logger.Info("aether started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		logger.Error("server error triggered shutdown", "error", err)
	}

	// Shutdown order: stop taking requests, stop scheduling work, stop
	// the event intake, flush what is pending, then drop connections.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if sched != nil {
		sched.Stop()
	}
	if stream != nil {
		stream.Stop()
	}
	if debouncer != nil {
		debouncer.Stop()
	}
	logger.Info("shutdown complete")
}
