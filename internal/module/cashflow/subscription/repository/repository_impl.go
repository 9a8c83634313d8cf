package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/cashflow/subscription/domain"
)

type repository struct {
	db *gorm.DB
}

// New creates a new subscription repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *domain.Subscription) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	var s domain.Subscription
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Subscription, error) {
	var s domain.Subscription
	err := r.db.WithContext(ctx).First(&s, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.StatusActive).
		Find(&subs).Error
	return subs, err
}

func (r *repository) SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status domain.Status) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return conn.WithContext(ctx).Model(&domain.Subscription{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) Update(ctx context.Context, s *domain.Subscription) error {
	return r.db.WithContext(ctx).Save(s).Error
}
