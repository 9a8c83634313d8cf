package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/weekly/domain"
)

type repository struct {
	db *gorm.DB
}

// New constructs the GORM-backed weekly repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindMetricByUserAndWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyMetric, error) {
	var m domain.WeeklyMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMetricNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindRecentMetrics(ctx context.Context, userID uuid.UUID, beforeWeekStart time.Time, limit int) ([]domain.WeeklyMetric, error) {
	var metrics []domain.WeeklyMetric
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_start < ?", userID, beforeWeekStart).
		Order("week_start DESC").
		Limit(limit).
		Find(&metrics).Error
	return metrics, err
}

// UpsertMetric replaces any existing metric for this (userId, weekStart)
// so reprocessing a week is idempotent, the same reasoning the signal
// store applies to its own dedup-by-hash upsert.
func (r *repository) UpsertMetric(ctx context.Context, m *domain.WeeklyMetric) error {
	existing, err := r.FindMetricByUserAndWeek(ctx, m.UserID, m.WeekStart)
	if err != nil && err != domain.ErrMetricNotFound {
		return err
	}
	if existing != nil {
		m.ID = existing.ID
		return r.db.WithContext(ctx).Save(m).Error
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindSummaryByMetricID(ctx context.Context, metricID uuid.UUID) (*domain.WeeklySummary, error) {
	var s domain.WeeklySummary
	err := r.db.WithContext(ctx).
		Where("weekly_metric_id = ?", metricID).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSummaryNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) CreateSummary(ctx context.Context, s *domain.WeeklySummary) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) DeleteExpiredSummaries(ctx context.Context, before time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&domain.WeeklySummary{})
	return tx.RowsAffected, tx.Error
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) DB() *gorm.DB {
	return r.db
}
