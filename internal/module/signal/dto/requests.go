package dto

import "personalfinancedss/internal/module/signal/domain"

// ListSignalsQuery filters GET /api/v1/signals.
type ListSignalsQuery struct {
	Types           []domain.SignalType `form:"type"`
	MinPriority     int                 `form:"minPriority"`
	Limit           int                 `form:"limit"`
	IncludeInactive bool                `form:"includeInactive"`
}

// UpdateSignalStatusRequest marks a signal dismissed or actioned.
type UpdateSignalStatusRequest struct {
	Status domain.Status `json:"status" binding:"required,oneof=dismissed actioned"`
}
