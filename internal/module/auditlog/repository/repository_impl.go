package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/auditlog/domain"
)

type repository struct {
	db *gorm.DB
}

// New creates a new audit log repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tx *gorm.DB, entry *domain.Entry) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return conn.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindBySuggestionID(ctx context.Context, suggestionID uuid.UUID, limit int) ([]domain.Entry, error) {
	query := r.db.WithContext(ctx).
		Where("suggestion_id = ?", suggestionID).
		Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var entries []domain.Entry
	err := query.Find(&entries).Error
	return entries, err
}

func (r *repository) FindByUserIDSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) UserActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]ActivitySummary, error) {
	type row struct {
		Action       domain.Action
		Count        int64
		SuccessCount int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&domain.Entry{}).
		Select("action, COUNT(*) as count, SUM(CASE WHEN outcome_success THEN 1 ELSE 0 END) as success_count").
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Group("action").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ActivitySummary, len(rows))
	for i, r := range rows {
		summaries[i] = ActivitySummary{Action: r.Action, Count: r.Count, SuccessCount: r.SuccessCount}
	}
	return summaries, nil
}

func (r *repository) FindByUserIDAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time, actions []domain.Action) ([]domain.Entry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp BETWEEN ? AND ?", userID, start, end)
	if len(actions) > 0 {
		query = query.Where("action IN (?)", actions)
	}
	var entries []domain.Entry
	err := query.Order("timestamp ASC").Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&domain.Entry{})
	return tx.RowsAffected, tx.Error
}
