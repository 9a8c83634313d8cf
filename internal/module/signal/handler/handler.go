package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"personalfinancedss/internal/middleware"
	"personalfinancedss/internal/module/signal/dto"
	"personalfinancedss/internal/module/signal/repository"
	"personalfinancedss/internal/module/signal/service"
	"personalfinancedss/internal/shared"
)

// Handler handles financial signal HTTP requests.
type Handler struct {
	service service.Service
	logger  *zap.Logger
}

// NewHandler creates a new signal handler.
func NewHandler(service service.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers signal routes.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.Middleware) {
	signals := router.Group("/api/v1/signals")
	signals.Use(authMiddleware.AuthMiddleware())
	{
		signals.GET("", h.ListSignals)
		signals.GET("/stats", h.GetStats)
		signals.GET("/:id", h.GetSignal)
		signals.GET("/:id/related", h.GetRelatedSignals)
		signals.PATCH("/:id/status", h.UpdateSignalStatus)
	}
}

// ListSignals godoc
// @Summary List signals
// @Description List the authenticated user's financial signals
// @Tags signals
// @Produce json
// @Security BearerAuth
// @Param type query []string false "Filter by type, repeatable"
// @Param minPriority query int false "Minimum priority (1 = highest)"
// @Param limit query int false "Max results (default 50)"
// @Param includeInactive query bool false "Include dismissed/actioned signals"
// @Success 200 {array} dto.SignalResponse
// @Failure 401 {object} shared.ErrorResponse
// @Router /api/v1/signals [get]
func (h *Handler) ListSignals(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	var q dto.ListSignalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}

	signals, err := h.service.GetUserSignals(c.Request.Context(), user.ID, repository.ListFilter{
		Types:           q.Types,
		MinPriority:     q.MinPriority,
		Limit:           q.Limit,
		IncludeInactive: q.IncludeInactive,
	})
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Signals retrieved successfully", dto.ToSignalResponseList(signals))
}

// GetSignal godoc
// @Summary Get a signal by ID
// @Tags signals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Signal ID"
// @Success 200 {object} dto.SignalResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /api/v1/signals/{id} [get]
func (h *Handler) GetSignal(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid signal id")
		return
	}

	signal, err := h.service.GetSignalByID(c.Request.Context(), user.ID, id)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Signal retrieved successfully", dto.ToSignalResponse(signal))
}

// GetRelatedSignals godoc
// @Summary Get signals related to a given signal
// @Tags signals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Signal ID"
// @Param limit query int false "Max results (default 10)"
// @Success 200 {array} dto.SignalResponse
// @Failure 404 {object} shared.ErrorResponse
// @Router /api/v1/signals/{id}/related [get]
func (h *Handler) GetRelatedSignals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid signal id")
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	related, err := h.service.GetRelatedSignals(c.Request.Context(), id, limit)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Related signals retrieved successfully", dto.ToSignalResponseList(related))
}

// UpdateSignalStatus godoc
// @Summary Dismiss or mark a signal actioned
// @Tags signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Signal ID"
// @Param body body dto.UpdateSignalStatusRequest true "New status"
// @Success 204
// @Failure 404 {object} shared.ErrorResponse
// @Router /api/v1/signals/{id}/status [patch]
func (h *Handler) UpdateSignalStatus(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid signal id")
		return
	}

	var req dto.UpdateSignalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid request data: "+err.Error())
		return
	}

	if err := h.service.UpdateSignalStatus(c.Request.Context(), user.ID, id, req.Status); err != nil {
		h.logger.Warn("signal status update failed", zap.String("id", id.String()), zap.Error(err))
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithNoContent(c)
}

// GetStats godoc
// @Summary Get signal activity stats
// @Tags signals
// @Produce json
// @Security BearerAuth
// @Param days query int false "Trailing window in days (default 30)"
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} shared.ErrorResponse
// @Router /api/v1/signals/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	days := 30
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			days = n
		}
	}

	stats, err := h.service.GetSignalStats(c.Request.Context(), user.ID, days)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Signal stats retrieved successfully", dto.ToStatsResponse(stats))
}
