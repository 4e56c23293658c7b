// Package api is the HTTP surface: the streaming chat endpoint, the
// controller webhook, and the management REST API.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aether-home/aether/pkg/analysis"
	"github.com/aether-home/aether/pkg/config"
	"github.com/aether-home/aether/pkg/database"
	"github.com/aether-home/aether/pkg/debounce"
	"github.com/aether-home/aether/pkg/deploy"
	"github.com/aether-home/aether/pkg/ha"
	"github.com/aether-home/aether/pkg/orchestrator"
	"github.com/aether-home/aether/pkg/services"
)

// Deps are the collaborators the HTTP handlers need. Optional fields
// (HA, Deployer, Debouncer) may be nil; their endpoints then report
// the capability as unavailable.
type Deps struct {
	Config        *config.Config
	DB            *database.Client
	Orchestrator  *orchestrator.Orchestrator
	Deployer      *deploy.Deployer
	Workflow      *analysis.Workflow
	Debouncer     *debounce.Debouncer
	HA            *ha.Client
	Conversations *services.ConversationService
	Proposals     *services.ProposalService
	Insights      *services.InsightService
	Reports       *services.ReportService
	Schedules     *services.ScheduleService
	Settings      *services.SettingsService
	Entities      *services.EntityService
	Usage         *services.UsageService
	Logger        *slog.Logger

	// OnScheduleChange runs after a schedule is created, updated or
	// deleted, so the scheduler reconciles without waiting for the
	// periodic sync. May be nil.
	OnScheduleChange func()
}

// notifyScheduleChange triggers an immediate scheduler reconcile.
func (s *Server) notifyScheduleChange() {
	if s.deps.OnScheduleChange != nil {
		s.deps.OnScheduleChange()
	}
}

// Server is the HTTP server.
type Server struct {
	deps Deps
	http *http.Server
}

// NewServer builds the router and server.
func NewServer(deps Deps) *Server {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(deps.Logger))

	s := &Server{
		deps: deps,
		http: &http.Server{
			Addr:              ":" + deps.Config.HTTPPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	s.registerRoutes(router)
	return s
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/health", s.handleHealth)

	r.POST("/webhook/ha", s.handleWebhook)

	v1 := r.Group("/v1")
	{
		v1.POST("/chat/completions", s.handleChat)

		v1.GET("/conversations", s.handleListConversations)
		v1.GET("/conversations/:id", s.handleGetConversation)
		v1.GET("/conversations/:id/messages", s.handleGetMessages)

		v1.GET("/proposals", s.handleListProposals)
		v1.POST("/proposals", s.handleCreateProposal)
		v1.GET("/proposals/:id", s.handleGetProposal)
		v1.POST("/proposals/:id/approve", s.handleApproveProposal)
		v1.POST("/proposals/:id/reject", s.handleRejectProposal)
		v1.POST("/proposals/:id/deploy", s.handleDeployProposal)
		v1.POST("/proposals/:id/rollback", s.handleRollbackProposal)
		v1.POST("/proposals/:id/archive", s.handleArchiveProposal)
		v1.POST("/proposals/:id/notes", s.handleAddProposalNote)

		v1.GET("/insights", s.handleListInsights)
		v1.PATCH("/insights/:id/status", s.handleUpdateInsightStatus)

		v1.GET("/reports", s.handleListReports)
		v1.GET("/reports/:id", s.handleGetReport)

		v1.GET("/schedules", s.handleListSchedules)
		v1.POST("/schedules", s.handleCreateSchedule)
		v1.GET("/schedules/:id", s.handleGetSchedule)
		v1.PATCH("/schedules/:id", s.handleUpdateSchedule)
		v1.DELETE("/schedules/:id", s.handleDeleteSchedule)
		v1.POST("/schedules/:id/run", s.handleRunSchedule)

		v1.GET("/entities", s.handleListEntities)
		v1.GET("/entities/stats", s.handleEntityStats)

		v1.GET("/settings", s.handleGetSettings)
		v1.PATCH("/settings/:section", s.handleUpdateSettings)

		v1.GET("/traces/:id", s.handleGetTraceStats)
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.deps.Logger.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// requestLogger logs one line per request in the process log format.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}
