package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/preference/domain"
	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
)

// Repository defines data access for user learning state and feedback.
type Repository interface {
	// FindByUserID returns the user's preference row, or
	// domain.ErrPreferenceNotFound if one hasn't been created yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreference, error)

	Create(ctx context.Context, p *domain.UserPreference) error

	// UpdateWithVersion performs a conditional UPDATE ... WHERE id = ? AND
	// version = ?, bumping version by one. Returns domain.ErrConcurrentUpdate
	// when the row was modified since it was read.
	UpdateWithVersion(ctx context.Context, p *domain.UserPreference, expectedVersion int) error

	CreateFeedback(ctx context.Context, f *domain.SuggestionFeedback) error

	// FindFeedbackByUserAndType returns the user's feedback history for one
	// suggestion type, most recent first, for WeightAdjuster's recency
	// weighting and acceptance-rate computation.
	FindFeedbackByUserAndType(ctx context.Context, userID uuid.UUID, t suggestionDomain.Type, limit int) ([]domain.SuggestionFeedback, error)

	WithTx(tx *gorm.DB) Repository
	DB() *gorm.DB
}
