package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"personalfinancedss/internal/analysis/calc"
	"personalfinancedss/internal/module/preference/domain"
	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
)

const (
	minInteractionsForTypeAdjust     = 5
	minInteractionsForCategoryAdjust = 3

	typeRaiseStep  = 0.2
	typeLowerStep  = -0.3
	highAcceptRate = 0.7
	lowAcceptRate  = 0.3

	highFrequencyRate   = 0.6
	mediumFrequencyRate = 0.3
	inactivityCutoff    = 14 * 24 * time.Hour

	categoryVolatilityThreshold = 0.5
	categoryVolatilityPenalty   = 0.8
)

// AdjustWeights recomputes a user's type/category weights; it runs after
// every feedback decision commits, outside that decision's transaction.
func (s *service) AdjustWeights(ctx context.Context, userID uuid.UUID) error {
	pref, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	prefs, err := pref.SuggestionPrefs()
	if err != nil {
		return err
	}

	for t, tp := range prefs.Types {
		interactions := tp.AcceptedCount + tp.RejectedCount
		if interactions < minInteractionsForTypeAdjust {
			continue
		}
		acceptanceRate := float64(tp.AcceptedCount) / float64(interactions)
		recency := recencyFactor(tp.LastShown)

		switch {
		case acceptanceRate > highAcceptRate:
			tp.Weight = domain.ClampWeight(tp.Weight + typeRaiseStep*recency)
		case acceptanceRate < lowAcceptRate:
			tp.Weight = domain.ClampWeight(tp.Weight + typeLowerStep*recency)
		}
		prefs.Types[t] = tp
	}

	lastActive := mostRecentShown(prefs.Types)
	switch {
	case lastActive != nil && time.Since(*lastActive) > inactivityCutoff:
		prefs.Global.SuggestionFrequency = domain.FrequencyLow
	case prefs.Global.AcceptanceRate > highFrequencyRate:
		prefs.Global.SuggestionFrequency = domain.FrequencyHigh
	case prefs.Global.AcceptanceRate > mediumFrequencyRate:
		prefs.Global.SuggestionFrequency = domain.FrequencyMedium
	default:
		prefs.Global.SuggestionFrequency = domain.FrequencyLow
	}

	if err := pref.SetSuggestionPrefs(prefs); err != nil {
		return err
	}

	categories, err := pref.CategoryPrefs()
	if err != nil {
		return err
	}
	for id, cp := range categories {
		interactions := cp.AcceptedCount + cp.RejectedCount
		if interactions < minInteractionsForCategoryAdjust {
			continue
		}
		if volatility := categoryVolatility(cp); volatility > categoryVolatilityThreshold {
			cp.Weight = domain.ClampWeight(cp.Weight * categoryVolatilityPenalty)
		}
		categories[id] = cp
	}
	if err := pref.SetCategoryPrefs(categories); err != nil {
		return err
	}

	return s.repo.UpdateWithVersion(ctx, pref, pref.Version)
}

// recencyFactor decays linearly from 1.0 (shown today) to 0.2 (shown 30+
// days ago), a documented choice for an otherwise-undefined notion of
// "recency".
func recencyFactor(lastShown *time.Time) float64 {
	if lastShown == nil {
		return 1
	}
	days := time.Since(*lastShown).Hours() / 24
	if days <= 0 {
		return 1
	}
	if days >= 30 {
		return 0.2
	}
	return 1 - 0.8*(days/30)
}

func mostRecentShown(types map[suggestionDomain.Type]domain.TypePreference) *time.Time {
	var latest *time.Time
	for _, tp := range types {
		if tp.LastShown == nil {
			continue
		}
		if latest == nil || tp.LastShown.After(*latest) {
			latest = tp.LastShown
		}
	}
	return latest
}

// categoryVolatility derives volatility from the recent weight trail a
// category's feedback[] carries, reusing the aggregation engines'
// coefficient-of-variation helper.
func categoryVolatility(cp domain.CategoryPreference) float64 {
	if len(cp.Feedback) < 2 {
		return 0
	}
	weights := make([]float64, 0, len(cp.Feedback))
	for _, f := range cp.Feedback {
		weights = append(weights, f.Weight)
	}
	return calc.Volatility(weights)
}
