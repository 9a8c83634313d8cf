package service

import (
	"context"

	"github.com/google/uuid"

	"personalfinancedss/internal/module/cashflow/subscription/domain"
	"personalfinancedss/internal/module/cashflow/subscription/repository"
)

// Service is the subscription CRUD/listing contract; lifecycle transitions
// (cancel/reactivate) are driven by the suggestion module's Mutator instead
// of through this interface, so applying a suggestion and a direct API call
// go through the same repository method.
type Service interface {
	Create(ctx context.Context, s *domain.Subscription) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Subscription, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error)
}

type service struct {
	repo repository.Repository
}

// NewService constructs the subscription service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, sub *domain.Subscription) error {
	return s.repo.Create(ctx, sub)
}

func (s *service) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Subscription, error) {
	return s.repo.FindByIDAndUserID(ctx, id, userID)
}

func (s *service) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	return s.repo.FindActiveByUserID(ctx, userID)
}
