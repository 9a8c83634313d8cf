package domain

import (
	"net/http"

	"personalfinancedss/internal/shared"
)

// ErrMetricNotFound is returned when no WeeklyMetric exists for the
// requested (userId, weekStart).
var ErrMetricNotFound = shared.NewAppError(shared.ErrCodeNotFound, "Weekly metric not found", http.StatusNotFound)

// ErrSummaryNotFound is returned when no WeeklySummary exists for the
// requested metric.
var ErrSummaryNotFound = shared.NewAppError(shared.ErrCodeNotFound, "Weekly summary not found", http.StatusNotFound)
