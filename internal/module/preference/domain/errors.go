package domain

import (
	"net/http"

	"personalfinancedss/internal/shared"
)

var (
	ErrPreferenceNotFound    = shared.NewAppError(shared.ErrCodeNotFound, "User preference not found", http.StatusNotFound)
	ErrFeedbackAlreadyExists = shared.NewAppError(shared.ErrCodeConflict, "Feedback already recorded for this suggestion", http.StatusConflict)
	ErrConcurrentUpdate      = shared.NewAppError(shared.ErrCodeConcurrency, "Preference was modified concurrently, retry", http.StatusConflict)
)
