package dto

import "personalfinancedss/internal/module/suggestion/domain"

// ListSuggestionsQuery filters GET /api/v1/suggestions.
type ListSuggestionsQuery struct {
	Status []domain.Status `form:"status"`
	Limit  int             `form:"limit"`
}

// RollbackRequest carries the operator-supplied reason for a rollback.
type RollbackRequest struct {
	Reason string `json:"reason" binding:"required"`
}
