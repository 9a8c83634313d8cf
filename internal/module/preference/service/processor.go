package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/preference/domain"
	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
)

const (
	typeWeightAcceptDelta = 0.1
	typeWeightRejectDelta = -0.15

	categoryWeightAcceptDelta = 0.1
	categoryWeightRejectDelta = -0.15

	significantImpact = 200.0 // accepted impact above this raises minSavingsAmount toward it
	smallImpact        = 50.0 // rejected impact below this raises minSavingsAmount mildly

	priceSensitivityStep = 0.05
	changeToleranceStep  = 0.05
)

// categoryRef is the slice of a suggestion's proposedChanges this
// processor cares about: the affected category, if any.
type categoryRef struct {
	CategoryID *uuid.UUID `json:"categoryId"`
}

// ProcessDecision runs one transaction that records the decision, nudges
// every affected learning dimension, audits the event, and enqueues a
// post-commit
// weight recompute.
func (s *service) ProcessDecision(ctx context.Context, in DecisionInput) (*domain.SuggestionFeedback, error) {
	sug, err := s.suggestions.FindByIDAndUserID(ctx, in.SuggestionID, in.UserID)
	if err != nil {
		return nil, err
	}

	var feedback *domain.SuggestionFeedback
	var prefBefore, prefAfter domain.UserPreference

	txErr := s.repo.DB().Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		pref, err := repo.FindByUserID(ctx, in.UserID)
		if err == domain.ErrPreferenceNotFound {
			pref = domain.NewUserPreference(in.UserID)
			if err := repo.Create(ctx, pref); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		prefBefore = *pref

		feedback = &domain.SuggestionFeedback{
			UserID:           in.UserID,
			SuggestionID:     in.SuggestionID,
			Type:             sug.Type,
			Decision:         in.Decision,
			SuggestedAt:      in.Context.SuggestedAt,
			RespondedAt:      in.Context.RespondedAt,
			ResponseTimeMs:   in.Context.ResponseTimeMs(),
			ViewedDurationMs: in.Context.ViewedDurationMs,
			ReasonPrimary:    in.ReasonPrimary,
			ReasonsSecondary: in.ReasonsSecondary,
			CustomReason:     in.CustomReason,
		}
		if in.ModificationsOriginal != nil {
			if raw, err := json.Marshal(in.ModificationsOriginal); err == nil {
				feedback.ModificationsOriginal = raw
			}
		}
		if in.ModificationsModified != nil {
			if raw, err := json.Marshal(in.ModificationsModified); err == nil {
				feedback.ModificationsModified = raw
			}
		}
		if err := repo.CreateFeedback(ctx, feedback); err != nil {
			return err
		}

		if err := applyTypeWeight(pref, sug.Type, in.Decision); err != nil {
			return err
		}

		impactAmount := 0.0
		if sug.ImpactAmount != nil {
			impactAmount = *sug.ImpactAmount
		}

		var ref categoryRef
		if len(sug.ProposedChanges) > 0 {
			_ = json.Unmarshal(sug.ProposedChanges, &ref)
		}
		if ref.CategoryID != nil {
			if err := applyCategoryWeight(pref, ref.CategoryID.String(), in.Decision, impactAmount, in.Context.RespondedAt); err != nil {
				return err
			}
		}

		if err := applyTimePreference(pref, in.Context.RespondedAt); err != nil {
			return err
		}

		if err := applyImpactPreference(pref, in.Decision, impactAmount, sug.RiskLevel); err != nil {
			return err
		}

		if err := repo.UpdateWithVersion(ctx, pref, prefBefore.Version); err != nil {
			return err
		}
		prefAfter = *pref
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.logFeedback(ctx, in.UserID, in.SuggestionID, prefBefore, prefAfter)

	// Post-commit: model the weight recompute as an enqueued message so a
	// failure in the adjuster never unwinds the user's recorded decision.
	if s.dispatcher != nil {
		s.dispatcher.Enqueue(in.UserID)
	}

	return feedback, nil
}

// applyTypeWeight is processDecision step 3.
func applyTypeWeight(pref *domain.UserPreference, t suggestionDomain.Type, decision domain.Decision) error {
	prefs, err := pref.SuggestionPrefs()
	if err != nil {
		return err
	}
	if prefs.Types == nil {
		prefs.Types = map[suggestionDomain.Type]domain.TypePreference{}
	}
	tp := prefs.Types[t]
	if tp.Weight == 0 {
		tp.Weight = 1 // default weight before any feedback
	}

	now := time.Now()
	tp.LastShown = &now
	tp.LastAction = decision

	switch decision {
	case domain.DecisionAccepted:
		tp.AcceptedCount++
		tp.Weight = domain.ClampWeight(tp.Weight + typeWeightAcceptDelta)
		prefs.Global.TotalAccepted++
	case domain.DecisionRejected:
		tp.RejectedCount++
		tp.Weight = domain.ClampWeight(tp.Weight + typeWeightRejectDelta)
		prefs.Global.TotalRejected++
	}
	prefs.Global.TotalShown++
	if prefs.Global.TotalShown > 0 {
		prefs.Global.AcceptanceRate = float64(prefs.Global.TotalAccepted) / float64(prefs.Global.TotalShown)
	}

	prefs.Types[t] = tp
	return pref.SetSuggestionPrefs(prefs)
}

// applyCategoryWeight handles the per-category weight update step:
// symmetric weight update plus a priceSensitivity/changeTolerance nudge.
func applyCategoryWeight(pref *domain.UserPreference, categoryID string, decision domain.Decision, impactAmount float64, at time.Time) error {
	categories, err := pref.CategoryPrefs()
	if err != nil {
		return err
	}
	cp := categories[categoryID]
	if cp.Weight == 0 {
		cp.Weight = 1
	}

	switch decision {
	case domain.DecisionAccepted:
		cp.AcceptedCount++
		cp.Weight = domain.ClampWeight(cp.Weight + categoryWeightAcceptDelta)
		// Accepting a change for this category signals tolerance for
		// further changes and less aversion to price movement within it.
		cp.ChangeTolerance = domain.ClampUnit(cp.ChangeTolerance + changeToleranceStep)
		cp.PriceSensitivity = domain.ClampUnit(cp.PriceSensitivity - priceSensitivityStep/2)
	case domain.DecisionRejected:
		cp.RejectedCount++
		cp.Weight = domain.ClampWeight(cp.Weight + categoryWeightRejectDelta)
		cp.ChangeTolerance = domain.ClampUnit(cp.ChangeTolerance - changeToleranceStep)
		cp.PriceSensitivity = domain.ClampUnit(cp.PriceSensitivity + priceSensitivityStep)
	}

	cp.Feedback = append(cp.Feedback, domain.CategoryFeedbackEntry{At: at, Decision: decision, Weight: cp.Weight})
	categories[categoryID] = cp
	return pref.SetCategoryPrefs(categories)
}

// applyTimePreference is processDecision step 5.
func applyTimePreference(pref *domain.UserPreference, respondedAt time.Time) error {
	tp, err := pref.TimePrefs()
	if err != nil {
		return err
	}
	hour := respondedAt.Hour()
	tp.ResponseTimeByHour[hour]++

	if tp.BestTimeToSuggest == "" || tp.BestTimeToSuggest == "adaptive" {
		maxHour, maxCount := 0, -1
		for h, c := range tp.ResponseTimeByHour {
			if c > maxCount {
				maxHour, maxCount = h, c
			}
		}
		if maxCount > 0 {
			tp.BestTimeToSuggest = domain.PeriodFor(maxHour)
		}
	}
	return pref.SetTimePrefs(tp)
}

// applyImpactPreference is processDecision step 6.
func applyImpactPreference(pref *domain.UserPreference, decision domain.Decision, impactAmount float64, risk suggestionDomain.RiskLevel) error {
	ip, err := pref.ImpactPrefs()
	if err != nil {
		return err
	}
	abs := impactAmount
	if abs < 0 {
		abs = -abs
	}

	switch decision {
	case domain.DecisionAccepted:
		if abs >= significantImpact && abs > ip.MinSavingsAmount {
			// Move halfway toward the accepted impact, not straight to it,
			// so one large outlier doesn't dominate the threshold.
			ip.MinSavingsAmount += (abs - ip.MinSavingsAmount) / 2
		}
		if risk == suggestionDomain.RiskHigh {
			ip.MaxRiskTolerance = suggestionDomain.RiskHigh
		}
	case domain.DecisionRejected:
		if abs > 0 && abs < smallImpact {
			ip.MinSavingsAmount += abs * 0.1
		}
		if risk == suggestionDomain.RiskHigh && ip.MaxRiskTolerance == suggestionDomain.RiskHigh {
			ip.MaxRiskTolerance = suggestionDomain.RiskMedium
		}
	}
	return pref.SetImpactPrefs(ip)
}
