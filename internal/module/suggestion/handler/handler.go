package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"personalfinancedss/internal/middleware"
	"personalfinancedss/internal/module/suggestion/domain"
	"personalfinancedss/internal/module/suggestion/dto"
	"personalfinancedss/internal/module/suggestion/service"
	"personalfinancedss/internal/shared"
)

// Handler handles suggestion lifecycle HTTP requests.
type Handler struct {
	service service.Service
	logger  *zap.Logger
}

// NewHandler creates a new suggestion handler.
func NewHandler(service service.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers suggestion routes.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.Middleware) {
	suggestions := router.Group("/api/v1/suggestions")
	suggestions.Use(authMiddleware.AuthMiddleware())
	{
		suggestions.GET("", h.ListSuggestions)
		suggestions.POST("/:id/approve", h.ApproveSuggestion)
		suggestions.POST("/:id/reject", h.RejectSuggestion)
		suggestions.POST("/:id/apply", h.ApplySuggestion)
		suggestions.POST("/:id/rollback", h.RollbackSuggestion)
	}
}

// ListSuggestions godoc
// @Summary List suggestions
// @Description List the authenticated user's suggestions, optionally filtered by status
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Param status query []string false "Filter by status, repeatable"
// @Param limit query int false "Max results (default 50)"
// @Success 200 {array} dto.SuggestionResponse
// @Failure 401 {object} shared.ErrorResponse
// @Router /api/v1/suggestions [get]
func (h *Handler) ListSuggestions(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	var q dto.ListSuggestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}

	suggestions, err := h.service.GetUserSuggestions(c.Request.Context(), user.ID, q.Status, q.Limit)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Suggestions retrieved successfully", dto.ToSuggestionResponseList(suggestions))
}

// ApproveSuggestion godoc
// @Summary Approve a suggestion
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Suggestion ID"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 404 {object} shared.ErrorResponse
// @Failure 409 {object} shared.ErrorResponse
// @Router /api/v1/suggestions/{id}/approve [post]
func (h *Handler) ApproveSuggestion(c *gin.Context) {
	h.transition(c, "Suggestion approved", func(id, userID uuid.UUID, actorID string) (*domain.PendingSuggestion, error) {
		return h.service.ApproveSuggestion(c.Request.Context(), id, userID, actorID)
	})
}

// RejectSuggestion godoc
// @Summary Reject a suggestion
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Suggestion ID"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 404 {object} shared.ErrorResponse
// @Failure 409 {object} shared.ErrorResponse
// @Router /api/v1/suggestions/{id}/reject [post]
func (h *Handler) RejectSuggestion(c *gin.Context) {
	h.transition(c, "Suggestion rejected", func(id, userID uuid.UUID, actorID string) (*domain.PendingSuggestion, error) {
		return h.service.RejectSuggestion(c.Request.Context(), id, userID, actorID)
	})
}

// ApplySuggestion godoc
// @Summary Apply an approved suggestion
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Suggestion ID"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 404 {object} shared.ErrorResponse
// @Failure 409 {object} shared.ErrorResponse
// @Router /api/v1/suggestions/{id}/apply [post]
func (h *Handler) ApplySuggestion(c *gin.Context) {
	h.transition(c, "Suggestion applied", func(id, userID uuid.UUID, _ string) (*domain.PendingSuggestion, error) {
		return h.service.ApplySuggestion(c.Request.Context(), id, userID)
	})
}

// RollbackSuggestion godoc
// @Summary Roll back an applied suggestion
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Suggestion ID"
// @Param body body dto.RollbackRequest true "Rollback reason"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 404 {object} shared.ErrorResponse
// @Failure 409 {object} shared.ErrorResponse
// @Router /api/v1/suggestions/{id}/rollback [post]
func (h *Handler) RollbackSuggestion(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid suggestion id")
		return
	}

	var req dto.RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid request data: "+err.Error())
		return
	}

	sug, err := h.service.RollbackSuggestion(c.Request.Context(), id, user.ID, req.Reason)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Suggestion rolled back", dto.ToSuggestionResponse(sug))
}

// transition is the shared body of the approve/reject/apply handlers: parse
// the id, resolve the acting user, delegate to the service, respond.
func (h *Handler) transition(c *gin.Context, message string, call func(id, userID uuid.UUID, actorID string) (*domain.PendingSuggestion, error)) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid suggestion id")
		return
	}

	sug, err := call(id, user.ID, user.ID.String())
	if err != nil {
		h.logger.Warn("suggestion transition failed", zap.String("id", id.String()), zap.Error(err))
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, message, dto.ToSuggestionResponse(sug))
}
