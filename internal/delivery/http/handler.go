package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guardify/backend/internal/domain"
	"github.com/guardify/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scoringService *usecase.ScoringService
}

// NewHandler creates a new HTTP handler
func NewHandler(scoringService *usecase.ScoringService) *Handler {
	return &Handler{scoringService: scoringService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	modelLoaded := h.scoringService != nil && h.scoringService.ModelLoaded()
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     "guardify-backend",
		"version":     "1.0.0",
		"modelLoaded": modelLoaded,
	})
}

// ScoreListing handles listing scoring requests
func (h *Handler) ScoreListing(c *gin.Context) {
	if h.scoringService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scoring service unavailable"})
		return
	}

	var req domain.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.scoringService.ScoreRequest(&req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scoring failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
