package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/weekly/domain"
)

// Repository defines data access for weekly metrics and summaries.
type Repository interface {
	FindMetricByUserAndWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyMetric, error)
	FindRecentMetrics(ctx context.Context, userID uuid.UUID, beforeWeekStart time.Time, limit int) ([]domain.WeeklyMetric, error)
	UpsertMetric(ctx context.Context, m *domain.WeeklyMetric) error

	FindSummaryByMetricID(ctx context.Context, metricID uuid.UUID) (*domain.WeeklySummary, error)
	CreateSummary(ctx context.Context, s *domain.WeeklySummary) error

	DeleteExpiredSummaries(ctx context.Context, before time.Time) (int64, error)

	WithTx(tx *gorm.DB) Repository
	DB() *gorm.DB
}
