package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aether-home/aether/pkg/services"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// respondServiceError translates the service error taxonomy to HTTP.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "already exists"})
	case services.IsValidationError(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case services.IsStateConflict(err):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case services.IsExternalError(err):
		c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
