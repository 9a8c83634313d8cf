package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/signal/domain"
)

type repository struct {
	db *gorm.DB
}

// New creates a new signal repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, signal *domain.Signal) error {
	return r.db.WithContext(ctx).Create(signal).Error
}

func (r *repository) CreateBatch(ctx context.Context, signals []*domain.Signal) ([]*domain.Signal, error) {
	inserted := make([]*domain.Signal, 0, len(signals))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range signals {
			var count int64
			if err := tx.Model(&domain.Signal{}).
				Where("signal_hash = ? AND is_active = ?", s.SignalHash, true).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(s).Error; err != nil {
				return err
			}
			inserted = append(inserted, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

func (r *repository) ExistsActiveByHash(ctx context.Context, hash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Signal{}).
		Where("signal_hash = ? AND is_active = ?", hash, true).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Signal, error) {
	var s domain.Signal
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSignalNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Signal, error) {
	var s domain.Signal
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSignalNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]domain.Signal, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if len(filter.Types) > 0 {
		query = query.Where("type IN (?)", filter.Types)
	}
	if filter.MinPriority > 0 {
		query = query.Where("priority <= ?", filter.MinPriority)
	}

	query = query.Order("priority ASC, created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var signals []domain.Signal
	err := query.Find(&signals).Error
	return signals, err
}

func (r *repository) FindRelated(ctx context.Context, id uuid.UUID, limit int) ([]domain.Signal, error) {
	origin, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND id != ?", origin.UserID, true, origin.ID)

	if origin.CategoryID != nil {
		query = query.Where("type = ? OR category_id = ?", origin.Type, *origin.CategoryID)
	} else {
		query = query.Where("type = ?", origin.Type)
	}

	if limit <= 0 {
		limit = 10
	}

	var related []domain.Signal
	err = query.Order("created_at DESC").Limit(limit).Find(&related).Error
	return related, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, now time.Time) error {
	updates := map[string]interface{}{"is_active": false}
	switch status {
	case domain.StatusActioned:
		updates["actioned_at"] = now
	case domain.StatusDismissed:
		updates["dismissed_at"] = now
	case domain.StatusActive:
		updates["is_active"] = true
	}
	return r.db.WithContext(ctx).Model(&domain.Signal{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) ArchiveOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Signal{}).
		Where("is_active = ? AND created_at < ?", true, cutoff).
		Update("is_active", false)
	return tx.RowsAffected, tx.Error
}

func (r *repository) ExpireOlderThan(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Signal{}).
		Where("is_active = ? AND expires_at < ?", true, now).
		Update("is_active", false)
	return tx.RowsAffected, tx.Error
}

func (r *repository) Stats(ctx context.Context, userID uuid.UUID, since time.Time) (StatsWindow, error) {
	var signals []domain.Signal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND created_at >= ?", userID, true, since).
		Find(&signals).Error
	if err != nil {
		return StatsWindow{}, err
	}

	stats := StatsWindow{
		ByType:     make(map[domain.SignalType]int64),
		ByPriority: make(map[int]int64),
	}
	for _, s := range signals {
		stats.TotalActive++
		stats.ByType[s.Type]++
		stats.ByPriority[s.Priority]++
		if s.Priority == 1 {
			stats.HighPriority++
		}
	}
	return stats, nil
}
