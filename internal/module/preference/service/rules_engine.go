package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"personalfinancedss/internal/module/preference/domain"
	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
)

// Blocking actions stop a suggestion from being shown outright, regardless
// of any weight multiplier a non-blocking rule contributed.
const (
	ActionFilterLowImpact = "filter_low_impact"
	ActionFilterHighRisk  = "filter_high_risk"
	ActionPauseType       = "pause_type"
)

var blockingActions = map[string]bool{
	ActionFilterLowImpact: true,
	ActionFilterHighRisk:  true,
	ActionPauseType:       true,
}

const (
	minRuleFactor = 0.1
	maxRuleFactor = 2.0
)

// EvaluationInput is the context RulesEngine.evaluateSuggestion is built
// from: the candidate suggestion plus the learning state it is judged
// against.
type EvaluationInput struct {
	Type             suggestionDomain.Type
	CategoryID       string
	ImpactAmount     float64
	Confidence       int
	RiskLevel        suggestionDomain.RiskLevel
	DailyShownCount  int
}

// RuleAction is one named rule's verdict.
type RuleAction struct {
	Rule   string  `json:"rule"`
	Action string  `json:"action,omitempty"`
	Factor float64 `json:"factor"`
	Reason string  `json:"reason,omitempty"`
}

// RuleResult is RulesEngine.evaluateSuggestion's output: whether the
// suggestion should be shown at all, and the combined weight multiplier
// to apply to its ranking if it is.
type RuleResult struct {
	ShouldShow      bool
	WeightMultiplier float64
	Actions         []RuleAction
}

// EvaluateSuggestion scores a candidate suggestion against a set of named
// rules: each rule is a pure predicate over the built context; matching
// rules produce action records, and the combined verdict folds over all
// of them.
func (s *service) EvaluateSuggestion(ctx context.Context, userID uuid.UUID, in EvaluationInput) (RuleResult, error) {
	pref, err := s.GetOrCreatePreference(ctx, userID)
	if err != nil {
		return RuleResult{}, err
	}

	prefs, err := pref.SuggestionPrefs()
	if err != nil {
		return RuleResult{}, err
	}
	categories, err := pref.CategoryPrefs()
	if err != nil {
		return RuleResult{}, err
	}
	impact, err := pref.ImpactPrefs()
	if err != nil {
		return RuleResult{}, err
	}

	tp := prefs.Types[in.Type]
	cp := categories[in.CategoryID]

	var actions []RuleAction

	// repeated-rejection: three or more rejections and no acceptance yet.
	if tp.RejectedCount >= 3 && tp.AcceptedCount == 0 {
		actions = append(actions, RuleAction{Rule: "repeated-rejection", Action: ActionPauseType, Factor: minRuleFactor, Reason: "repeatedly rejected with no acceptances"})
	}

	// high-acceptance: strong history raises the multiplier.
	if total := tp.AcceptedCount + tp.RejectedCount; total >= 5 {
		if rate := float64(tp.AcceptedCount) / float64(total); rate > highAcceptRate {
			actions = append(actions, RuleAction{Rule: "high-acceptance", Factor: 1.3, Reason: "high historical acceptance rate"})
		}
	}

	// low-engagement: global acceptance rate is poor across the board.
	if prefs.Global.TotalShown >= 10 && prefs.Global.AcceptanceRate < lowAcceptRate {
		actions = append(actions, RuleAction{Rule: "low-engagement", Factor: 0.7, Reason: "low global acceptance rate"})
	}

	// category-saturation: this category's own weight has already been
	// pushed to the floor by repeated rejection within it.
	if cp.AcceptedCount+cp.RejectedCount >= minInteractionsForCategoryAdjust && cp.Weight > 0 && cp.Weight <= lowWeightFloor {
		actions = append(actions, RuleAction{Rule: "category-saturation", Action: ActionFilterLowImpact, Factor: minRuleFactor, Reason: "category weight saturated low"})
	}

	// time-pattern: outside the learned best-time period, dampen slightly.
	if prefs.Global.TotalShown >= 5 {
		tprefs, err := pref.TimePrefs()
		if err == nil && tprefs.BestTimeToSuggest != "" && tprefs.BestTimeToSuggest != "adaptive" {
			if domain.PeriodFor(time.Now().Hour()) != tprefs.BestTimeToSuggest {
				actions = append(actions, RuleAction{Rule: "time-pattern", Factor: 0.9, Reason: "outside learned response window"})
			}
		}
	}

	// impact-threshold: below the learned minimum savings amount.
	abs := in.ImpactAmount
	if abs < 0 {
		abs = -abs
	}
	if impact.MinSavingsAmount > 0 && abs < impact.MinSavingsAmount {
		actions = append(actions, RuleAction{Rule: "impact-threshold", Action: ActionFilterLowImpact, Factor: minRuleFactor, Reason: "impact below learned threshold"})
	}

	// risk-tolerance: suggestion's risk exceeds what the user tolerates.
	if exceedsRisk(in.RiskLevel, impact.MaxRiskTolerance) {
		actions = append(actions, RuleAction{Rule: "risk-tolerance", Action: ActionFilterHighRisk, Factor: minRuleFactor, Reason: "risk exceeds learned tolerance"})
	}

	// type-fatigue: shown very recently relative to its own cooldown.
	if tp.LastShown != nil && tp.CooldownDays > 0 {
		if time.Since(*tp.LastShown) < time.Duration(tp.CooldownDays)*24*time.Hour/2 {
			actions = append(actions, RuleAction{Rule: "type-fatigue", Factor: 0.8, Reason: "shown recently relative to cooldown"})
		}
	}

	result := RuleResult{ShouldShow: true, WeightMultiplier: 1.0, Actions: actions}
	for _, a := range actions {
		if blockingActions[a.Action] {
			result.ShouldShow = false
		}
		result.WeightMultiplier *= a.Factor
	}
	if result.WeightMultiplier < minRuleFactor {
		result.WeightMultiplier = minRuleFactor
	}
	if result.WeightMultiplier > maxRuleFactor {
		result.WeightMultiplier = maxRuleFactor
	}
	return result, nil
}

func exceedsRisk(candidate, max suggestionDomain.RiskLevel) bool {
	rank := map[suggestionDomain.RiskLevel]int{
		suggestionDomain.RiskLow:    1,
		suggestionDomain.RiskMedium: 2,
		suggestionDomain.RiskHigh:   3,
	}
	return rank[candidate] > rank[max]
}
