package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	entreport "github.com/aether-home/aether/ent/analysisreport"
	entinsight "github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/pkg/debounce"
	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/services"
)

// ── conversations ──

func (s *Server) handleListConversations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := s.deps.Conversations.List(c.Request.Context(), c.Query("user_id"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": items})
}

func (s *Server) handleGetConversation(c *gin.Context) {
	conv, err := s.deps.Conversations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) handleGetMessages(c *gin.Context) {
	if _, err := s.deps.Conversations.Get(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	msgs, err := s.deps.Conversations.GetMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// ── insights ──

func (s *Server) handleListInsights(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := s.deps.Insights.List(c.Request.Context(), services.ListFilter{
		Status:     entinsight.Status(c.Query("status")),
		Impact:     entinsight.Impact(c.Query("impact")),
		Category:   c.Query("category"),
		ScheduleID: c.Query("schedule_id"),
		Limit:      limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": items})
}

func (s *Server) handleUpdateInsightStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	switch entinsight.Status(body.Status) {
	case entinsight.StatusPending, entinsight.StatusReviewed, entinsight.StatusActioned, entinsight.StatusDismissed:
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown insight status"})
		return
	}
	ins, err := s.deps.Insights.UpdateStatus(c.Request.Context(), c.Param("id"), entinsight.Status(body.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ins)
}

// ── reports ──

func (s *Server) handleListReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := s.deps.Reports.List(c.Request.Context(), entreport.Status(c.Query("status")), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": items})
}

func (s *Server) handleGetReport(c *gin.Context) {
	r, err := s.deps.Reports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// ── schedules ──

func (s *Server) handleListSchedules(c *gin.Context) {
	items, err := s.deps.Schedules.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": items})
}

func (s *Server) handleCreateSchedule(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	sched, err := s.deps.Schedules.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s.notifyScheduleChange()
	c.JSON(http.StatusCreated, sched)
}

func (s *Server) handleGetSchedule(c *gin.Context) {
	sched, err := s.deps.Schedules.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (s *Server) handleUpdateSchedule(c *gin.Context) {
	var req models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	sched, err := s.deps.Schedules.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s.notifyScheduleChange()
	c.JSON(http.StatusOK, sched)
}

func (s *Server) handleDeleteSchedule(c *gin.Context) {
	if err := s.deps.Schedules.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	s.notifyScheduleChange()
	c.Status(http.StatusNoContent)
}

// handleRunSchedule triggers a run now, off the request path.
func (s *Server) handleRunSchedule(c *gin.Context) {
	sched, err := s.deps.Schedules.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	go func() {
		runCtx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := s.deps.Workflow.RunSchedule(runCtx, sched); err != nil {
			s.deps.Logger.Error("manual schedule run failed", "schedule_id", sched.ID, "error", err)
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "run started", "schedule_id": sched.ID})
}

// ── entities ──

func (s *Server) handleListEntities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := s.deps.Entities.List(c.Request.Context(), c.Query("domain"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entities": items})
}

func (s *Server) handleEntityStats(c *gin.Context) {
	count, err := s.deps.Entities.Count(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	var stats debounce.Stats
	if s.deps.Debouncer != nil {
		stats = s.deps.Debouncer.Stats()
	}
	c.JSON(http.StatusOK, gin.H{"entities": count, "debouncer": stats})
}

// ── settings ──

func (s *Server) handleGetSettings(c *gin.Context) {
	all, err := s.deps.Settings.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	section, err := s.deps.Settings.UpdateSection(c.Request.Context(), c.Param("section"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

// ── traces ──

func (s *Server) handleGetTraceStats(c *gin.Context) {
	stats, err := s.deps.Usage.StatsForTrace(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
