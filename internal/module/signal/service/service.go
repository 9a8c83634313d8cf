// Package service implements the Signal Store operations: deduplicated
// storage, filtered retrieval, lifecycle transitions, archival, and stats.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"personalfinancedss/internal/module/signal/domain"
	"personalfinancedss/internal/module/signal/repository"
)

// Service is the Signal Store contract.
type Service interface {
	StoreSignal(ctx context.Context, signal *domain.Signal) error
	StoreSignals(ctx context.Context, signals []*domain.Signal) ([]*domain.Signal, error)
	GetUserSignals(ctx context.Context, userID uuid.UUID, filter repository.ListFilter) ([]domain.Signal, error)
	GetSignalByID(ctx context.Context, userID, id uuid.UUID) (*domain.Signal, error)
	UpdateSignalStatus(ctx context.Context, userID, id uuid.UUID, status domain.Status) error
	GetRelatedSignals(ctx context.Context, id uuid.UUID, limit int) ([]domain.Signal, error)
	ArchiveOldSignals(ctx context.Context, daysOld int) (int64, error)
	GetSignalStats(ctx context.Context, userID uuid.UUID, days int) (repository.StatsWindow, error)
}

type service struct {
	repo repository.Repository
	log  *zap.Logger
}

// NewService constructs the signal service.
func NewService(repo repository.Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) StoreSignal(ctx context.Context, signal *domain.Signal) error {
	exists, err := s.repo.ExistsActiveByHash(ctx, signal.SignalHash)
	if err != nil {
		return err
	}
	if exists {
		s.log.Debug("signal dedup: skipping duplicate", zap.String("hash", signal.SignalHash))
		return nil
	}
	return s.repo.Create(ctx, signal)
}

func (s *service) StoreSignals(ctx context.Context, signals []*domain.Signal) ([]*domain.Signal, error) {
	inserted, err := s.repo.CreateBatch(ctx, signals)
	if err != nil {
		return nil, err
	}
	s.log.Info("stored signal batch",
		zap.Int("submitted", len(signals)),
		zap.Int("inserted", len(inserted)),
		zap.Int("deduplicated", len(signals)-len(inserted)),
	)
	return inserted, nil
}

func (s *service) GetUserSignals(ctx context.Context, userID uuid.UUID, filter repository.ListFilter) ([]domain.Signal, error) {
	return s.repo.FindByUserID(ctx, userID, filter)
}

func (s *service) GetSignalByID(ctx context.Context, userID, id uuid.UUID) (*domain.Signal, error) {
	return s.repo.FindByIDAndUserID(ctx, id, userID)
}

func (s *service) UpdateSignalStatus(ctx context.Context, userID, id uuid.UUID, status domain.Status) error {
	if _, err := s.repo.FindByIDAndUserID(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status, time.Now())
}

func (s *service) GetRelatedSignals(ctx context.Context, id uuid.UUID, limit int) ([]domain.Signal, error) {
	return s.repo.FindRelated(ctx, id, limit)
}

func (s *service) ArchiveOldSignals(ctx context.Context, daysOld int) (int64, error) {
	if daysOld <= 0 {
		daysOld = 90
	}
	cutoff := time.Now().AddDate(0, 0, -daysOld)
	count, err := s.repo.ArchiveOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	s.log.Info("archived old signals", zap.Int64("count", count), zap.Int("daysOld", daysOld))
	return count, nil
}

func (s *service) GetSignalStats(ctx context.Context, userID uuid.UUID, days int) (repository.StatsWindow, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.repo.Stats(ctx, userID, since)
}
