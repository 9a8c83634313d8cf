package domain

import (
	"net/http"

	"personalfinancedss/internal/shared"
)

var (
	ErrSignalNotFound = shared.NewAppError(shared.ErrCodeNotFound, "Signal not found", http.StatusNotFound)
)
