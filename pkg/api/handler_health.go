package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aether-home/aether/pkg/database"
)

// handleHealth serves GET /health.
func (s *Server) handleHealth(c *gin.Context) {
	status, err := database.Health(c.Request.Context(), s.deps.DB.DB())
	code := http.StatusOK
	if err != nil {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"database": status,
		"role":     s.deps.Config.Role,
		"mode":     s.deps.Config.DeploymentMode,
	})
}
