package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aether-home/aether/pkg/models"
	"github.com/aether-home/aether/pkg/orchestrator"
)

// handleChat serves POST /v1/chat/completions. Streaming requests get
// SSE events and end with the done sentinel; non-streaming requests
// get a single completion body.
func (s *Server) handleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "messages must not be empty"})
		return
	}
	userID := c.GetHeader("X-User-ID")

	if !req.Stream {
		resp, err := s.deps.Orchestrator.Complete(c.Request.Context(), &req, userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	w := c.Writer
	flusher, ok := w.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "streaming unsupported"})
		return
	}

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	emit := func(ev orchestrator.StreamEvent) error {
		payload, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	if err := s.deps.Orchestrator.Stream(c.Request.Context(), &req, userID, emit); err != nil {
		// The stream already carried an error event where possible;
		// here the client is usually gone.
		s.deps.Logger.Warn("chat stream ended with error", "error", err)
	}

	fmt.Fprintf(w, "data: %s\n\n", orchestrator.DoneSentinel)
	flusher.Flush()
}
