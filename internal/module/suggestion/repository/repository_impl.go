package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/suggestion/domain"
)

type repository struct {
	db *gorm.DB
}

// New creates a new suggestion repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) DB() *gorm.DB {
	return r.db
}

func (r *repository) Create(ctx context.Context, s *domain.PendingSuggestion) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PendingSuggestion, error) {
	var s domain.PendingSuggestion
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSuggestionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.PendingSuggestion, error) {
	var s domain.PendingSuggestion
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSuggestionNotFound
		}
		return nil, err
	}
	return &s, nil
}

var nonTerminalStatuses = []domain.Status{
	domain.StatusPending, domain.StatusApproved, domain.StatusConflict,
}

func (r *repository) FindActiveByTypeAndTarget(ctx context.Context, userID uuid.UUID, t domain.Type, targetID uuid.UUID) (*domain.PendingSuggestion, error) {
	var s domain.PendingSuggestion
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND status IN (?)", userID, t, nonTerminalStatuses).
		Where("proposed_changes->>'targetId' = ? OR proposed_changes->>'budgetId' = ? OR proposed_changes->>'goalId' = ? OR proposed_changes->>'subscriptionId' = ? OR proposed_changes->>'categoryId' = ? OR proposed_changes->>'transactionId' = ?",
			targetID.String(), targetID.String(), targetID.String(), targetID.String(), targetID.String(), targetID.String()).
		Order("created_at DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindOverlappingCategoryConflicts(ctx context.Context, userID, categoryID uuid.UUID, excludeID uuid.UUID) ([]domain.PendingSuggestion, error) {
	var suggestions []domain.PendingSuggestion
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id != ? AND status IN (?)", userID, excludeID, []domain.Status{domain.StatusPending, domain.StatusApproved}).
		Where("proposed_changes->>'categoryId' = ?", categoryID.String()).
		Find(&suggestions).Error
	return suggestions, err
}

func (r *repository) FindRecentByTypeAndStatus(ctx context.Context, userID uuid.UUID, t domain.Type, statuses []domain.Status) (*domain.PendingSuggestion, error) {
	var s domain.PendingSuggestion
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND status IN (?)", userID, t, statuses).
		Order("updated_at DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID, statuses []domain.Status, limit int) ([]domain.PendingSuggestion, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(statuses) > 0 {
		query = query.Where("status IN (?)", statuses)
	}
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var suggestions []domain.PendingSuggestion
	err := query.Find(&suggestions).Error
	return suggestions, err
}

func (r *repository) Update(ctx context.Context, s *domain.PendingSuggestion) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) UpdateWithVersion(ctx context.Context, s *domain.PendingSuggestion, expectedVersion int) error {
	s.Version = expectedVersion + 1
	tx := r.db.WithContext(ctx).Model(&domain.PendingSuggestion{}).
		Where("id = ? AND version = ?", s.ID, expectedVersion).
		Select("*").
		Updates(s)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrConcurrentUpdate
	}
	return nil
}

func (r *repository) FindExpirablePendingOrApproved(ctx context.Context, now time.Time, limit int) ([]domain.PendingSuggestion, error) {
	query := r.db.WithContext(ctx).
		Where("status IN (?) AND expires_at < ?", []domain.Status{domain.StatusPending, domain.StatusApproved}, now).
		Order("expires_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var suggestions []domain.PendingSuggestion
	err := query.Find(&suggestions).Error
	return suggestions, err
}
