package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/cashflow/subscription/domain"
)

// Repository defines subscription data access operations.
type Repository interface {
	Create(ctx context.Context, s *domain.Subscription) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error)
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Subscription, error)
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error)
	SetStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status domain.Status) error
	Update(ctx context.Context, s *domain.Subscription) error
}
