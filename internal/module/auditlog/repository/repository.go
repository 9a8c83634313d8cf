package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/auditlog/domain"
)

// ActivitySummary groups a user's recent audit events by action.
type ActivitySummary struct {
	Action       domain.Action
	Count        int64
	SuccessCount int64
}

// Repository defines data access for the append-only audit log.
type Repository interface {
	// Create inserts one entry. When tx is non-nil the write joins the
	// caller's transaction, so the log commits iff the state change does.
	Create(ctx context.Context, tx *gorm.DB, entry *domain.Entry) error

	FindBySuggestionID(ctx context.Context, suggestionID uuid.UUID, limit int) ([]domain.Entry, error)

	FindByUserIDSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Entry, error)

	UserActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]ActivitySummary, error)

	FindByUserIDAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time, actions []domain.Action) ([]domain.Entry, error)

	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
