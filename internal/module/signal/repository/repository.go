package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"personalfinancedss/internal/module/signal/domain"
)

// StatsWindow summarizes signal activity for a user over a trailing window.
type StatsWindow struct {
	TotalActive  int64
	ByType       map[domain.SignalType]int64
	ByPriority   map[int]int64
	HighPriority int64
}

// ListFilter narrows getUserSignals queries.
type ListFilter struct {
	Types           []domain.SignalType
	MinPriority     int // 0 means unfiltered
	Limit           int
	IncludeInactive bool
}

// Repository defines data access for financial signals.
type Repository interface {
	// Create inserts one signal. Callers are expected to have already
	// checked ExistsActiveByHash when dedup matters; Create itself relies on
	// the partial unique index on signal_hash to reject true races.
	Create(ctx context.Context, signal *domain.Signal) error

	// CreateBatch inserts signals whose hash does not already match an
	// active signal, skipping duplicates. Returns the signals actually
	// inserted.
	CreateBatch(ctx context.Context, signals []*domain.Signal) ([]*domain.Signal, error)

	// ExistsActiveByHash reports whether an active signal with this hash
	// already exists.
	ExistsActiveByHash(ctx context.Context, hash string) (bool, error)

	FindByID(ctx context.Context, id uuid.UUID) (*domain.Signal, error)
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Signal, error)

	FindByUserID(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]domain.Signal, error)

	// FindRelated returns other active signals for the same user sharing a
	// type or category with the given signal, most recent first.
	FindRelated(ctx context.Context, id uuid.UUID, limit int) ([]domain.Signal, error)

	// UpdateStatus transitions a signal to dismissed or actioned, stamping
	// the corresponding timestamp and clearing IsActive.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, now time.Time) error

	// ArchiveOlderThan deactivates active signals created before the cutoff,
	// returning the count archived.
	ArchiveOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// ExpireOlderThan deactivates active signals whose ExpiresAt has passed.
	ExpireOlderThan(ctx context.Context, now time.Time) (int64, error)

	Stats(ctx context.Context, userID uuid.UUID, since time.Time) (StatsWindow, error)
}
