package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/preference/domain"
	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
)

type repository struct {
	db *gorm.DB
}

// New creates a new preference repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreference, error) {
	var p domain.UserPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *domain.UserPreference) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) UpdateWithVersion(ctx context.Context, p *domain.UserPreference, expectedVersion int) error {
	newVersion := expectedVersion + 1
	tx := r.db.WithContext(ctx).Model(&domain.UserPreference{}).
		Where("id = ? AND version = ?", p.ID, expectedVersion).
		Updates(map[string]interface{}{
			"suggestion_preferences": p.SuggestionPreferencesRaw,
			"category_preferences":   p.CategoryPreferencesRaw,
			"time_preferences":       p.TimePreferencesRaw,
			"impact_preferences":     p.ImpactPreferencesRaw,
			"metadata":               p.MetadataRaw,
			"shown_counters":         p.ShownCountersRaw,
			"version":                newVersion,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrConcurrentUpdate
	}
	p.Version = newVersion
	return nil
}

func (r *repository) CreateFeedback(ctx context.Context, f *domain.SuggestionFeedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindFeedbackByUserAndType(ctx context.Context, userID uuid.UUID, t suggestionDomain.Type, limit int) ([]domain.SuggestionFeedback, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, t).
		Order("suggested_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var feedback []domain.SuggestionFeedback
	err := query.Find(&feedback).Error
	return feedback, err
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) DB() *gorm.DB {
	return r.db
}
