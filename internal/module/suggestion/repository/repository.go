package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/suggestion/domain"
)

// Repository defines data access for pending suggestions.
type Repository interface {
	Create(ctx context.Context, s *domain.PendingSuggestion) error

	FindByID(ctx context.Context, id uuid.UUID) (*domain.PendingSuggestion, error)
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.PendingSuggestion, error)

	// FindActiveByTypeAndTarget looks up a non-terminal suggestion for the
	// same (userId, type, targetId) pair, used by createSuggestion's
	// update-in-place rule.
	FindActiveByTypeAndTarget(ctx context.Context, userID uuid.UUID, t domain.Type, targetID uuid.UUID) (*domain.PendingSuggestion, error)

	// FindOverlappingCategoryConflicts finds other active pending/approved
	// suggestions for the same user whose proposedChanges.categoryId
	// matches categoryID.
	FindOverlappingCategoryConflicts(ctx context.Context, userID, categoryID uuid.UUID, excludeID uuid.UUID) ([]domain.PendingSuggestion, error)

	// FindRecentByTypeAndStatus supports the cooldown check: the most
	// recent suggestion of the given type that reached one of the given
	// statuses.
	FindRecentByTypeAndStatus(ctx context.Context, userID uuid.UUID, t domain.Type, statuses []domain.Status) (*domain.PendingSuggestion, error)

	FindByUserID(ctx context.Context, userID uuid.UUID, statuses []domain.Status, limit int) ([]domain.PendingSuggestion, error)

	// Update persists the full row. Callers needing optimistic concurrency
	// should use UpdateWithVersion instead.
	Update(ctx context.Context, s *domain.PendingSuggestion) error

	// UpdateWithVersion performs a conditional UPDATE ... WHERE id = ? AND
	// version = ?, bumping version by one. Returns domain.ErrConcurrentUpdate
	// when the row was modified since it was read (RowsAffected == 0).
	UpdateWithVersion(ctx context.Context, s *domain.PendingSuggestion, expectedVersion int) error

	// FindExpirablePendingOrApproved returns pending/approved suggestions
	// whose ExpiresAt has passed, for the background expiry scan.
	FindExpirablePendingOrApproved(ctx context.Context, now time.Time, limit int) ([]domain.PendingSuggestion, error)

	WithTx(tx *gorm.DB) Repository
	DB() *gorm.DB
}
