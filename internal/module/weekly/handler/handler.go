package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"personalfinancedss/internal/middleware"
	"personalfinancedss/internal/module/weekly/dto"
	"personalfinancedss/internal/module/weekly/service"
	"personalfinancedss/internal/shared"
)

// Handler handles weekly-summary HTTP requests.
type Handler struct {
	service service.Service
	logger  *zap.Logger
}

// NewHandler creates a new weekly-summary handler.
func NewHandler(service service.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers weekly-summary routes.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.Middleware) {
	weekly := router.Group("/api/v1/weekly-summaries")
	weekly.Use(authMiddleware.AuthMiddleware())
	{
		weekly.GET("", h.GetSummary)
	}
}

// GetSummary godoc
// @Summary Get the weekly summary for a given week
// @Tags weekly-summaries
// @Produce json
// @Security BearerAuth
// @Param weekStart query string true "Week start date, YYYY-MM-DD (any day in the target week)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /api/v1/weekly-summaries [get]
func (h *Handler) GetSummary(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	raw := c.Query("weekStart")
	weekStart := time.Now()
	if raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			shared.RespondWithError(c, http.StatusBadRequest, "invalid weekStart")
			return
		}
		weekStart = parsed
	}

	summary, metric, err := h.service.GetSummary(c.Request.Context(), user.ID, weekStart)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	resp, err := dto.ToSummaryResponse(summary, metric)
	if err != nil {
		h.logger.Warn("weekly: failed to build response", zap.Error(err))
		shared.RespondWithError(c, http.StatusInternalServerError, "failed to build response")
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Weekly summary retrieved successfully", resp)
}
