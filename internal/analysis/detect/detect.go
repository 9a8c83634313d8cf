// Package detect implements the rule-based detectors that turn a single
// budget or goal's current state (plus recent history) into a drift or
// underfunding verdict. Detectors are pure: callers assemble the historical
// totals/contributions from repositories and pass them in, the way the
// teacher's domain layer keeps calculated-field logic (UpdateCalculatedFields,
// IsExceeded) free of any database access.
package detect

import (
	"math"
	"time"

	"personalfinancedss/internal/analysis/window"
)

// Severity ranks how urgently a detector result needs attention.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Flexibility mirrors a budget's flexibility classification.
type Flexibility string

const (
	FlexibilityStrict   Flexibility = "strict"
	FlexibilityFlexible Flexibility = "flexible"
)

// BudgetDriftInput is the minimal budget state a drift check needs.
type BudgetDriftInput struct {
	PeriodKind       string // "weekly", "monthly", "yearly"
	WeekStartsOn     time.Weekday
	Now              time.Time
	BudgetAmount     float64
	Flexibility      Flexibility
	CurrentSpent     float64
	HistoricalTotals []float64 // last N months of per-month totals, oldest first
}

// BudgetDriftResult is the verdict for one budget.
type BudgetDriftResult struct {
	HasDrift              bool
	PeriodStart           time.Time
	PeriodEnd             time.Time
	DailyRate             float64
	ProjectedTotal        float64
	ProjectedOvershoot    float64
	DriftPercentage       float64
	Severity              Severity
	ConsistentlyOverspent bool
}

// BudgetDriftDetector evaluates a single budget's spending pace against its
// period and flags projected overshoot.
func BudgetDriftDetector(in BudgetDriftInput) BudgetDriftResult {
	bounds := window.BoundsForPeriod(in.Now, in.PeriodKind, in.WeekStartsOn)
	daysElapsed := float64(bounds.DaysElapsed(in.Now))
	totalDays := float64(bounds.DaysTotal())
	if totalDays <= 0 {
		totalDays = 1
	}

	dailyRate := in.CurrentSpent / daysElapsed
	projectedTotal := dailyRate * totalDays
	overshoot := math.Max(0, projectedTotal-in.BudgetAmount)

	expectedByNow := in.BudgetAmount * (daysElapsed / totalDays)
	driftPct := 0.0
	if expectedByNow > 0 {
		driftPct = (in.CurrentSpent/expectedByNow - 1) * 100
	}

	severity := budgetSeverity(in.Flexibility, driftPct, overshoot)
	consistentlyOverspent := len(in.HistoricalTotals) > 0
	for _, monthTotal := range in.HistoricalTotals {
		if monthTotal <= in.BudgetAmount {
			consistentlyOverspent = false
			break
		}
	}

	return BudgetDriftResult{
		HasDrift:              severity != "",
		PeriodStart:           bounds.Start,
		PeriodEnd:             bounds.End,
		DailyRate:             dailyRate,
		ProjectedTotal:        projectedTotal,
		ProjectedOvershoot:    overshoot,
		DriftPercentage:       driftPct,
		Severity:              severity,
		ConsistentlyOverspent: consistentlyOverspent,
	}
}

func budgetSeverity(flex Flexibility, driftPct, overshoot float64) Severity {
	if flex == FlexibilityStrict {
		switch {
		case driftPct > 30 || overshoot > 500:
			return SeverityHigh
		case driftPct > 15 || overshoot > 200:
			return SeverityMedium
		case driftPct > 10:
			return SeverityLow
		}
		return ""
	}

	switch {
	case driftPct > 50 || overshoot > 1000:
		return SeverityHigh
	case driftPct > 25 || overshoot > 500:
		return SeverityMedium
	case driftPct > 10:
		return SeverityLow
	}
	return ""
}

// GoalUnderfundingInput is the minimal goal state an underfunding check needs.
type GoalUnderfundingInput struct {
	Now                  time.Time
	TargetAmount         float64
	CurrentAmount        float64
	MonthsRemaining      int
	MonthlyContributions []float64 // recent history, most recent last
	LastContributionAt   *time.Time
	IsComplete           bool
}

// GoalUnderfundingResult is the verdict for one goal.
type GoalUnderfundingResult struct {
	RequiredMonthly     float64
	AverageMonthly      float64
	Shortfall           float64
	ShortfallPercentage float64
	IsStalled           bool
	ProjectedCompletion *time.Time
	Severity            Severity
}

// GoalUnderfundingDetector evaluates whether a goal is on pace to be funded
// by its target date.
func GoalUnderfundingDetector(in GoalUnderfundingInput) GoalUnderfundingResult {
	monthsRemaining := in.MonthsRemaining
	if monthsRemaining < 1 {
		monthsRemaining = 1
	}
	required := (in.TargetAmount - in.CurrentAmount) / float64(monthsRemaining)

	avg := average(in.MonthlyContributions)
	shortfall := required - avg

	shortfallPct := 0.0
	if required > 0 {
		shortfallPct = (shortfall / required) * 100
	}

	isStalled := !in.IsComplete && in.LastContributionAt != nil &&
		in.Now.Sub(*in.LastContributionAt) > 30*24*time.Hour

	var projected *time.Time
	remaining := in.TargetAmount - in.CurrentAmount
	if avg > 0 && remaining > 0 {
		monthsNeeded := int(math.Ceil(remaining / avg))
		completion := in.Now.AddDate(0, monthsNeeded, 0)
		projected = &completion
	}

	severity := goalSeverity(isStalled, in.MonthsRemaining, shortfallPct)

	return GoalUnderfundingResult{
		RequiredMonthly:     required,
		AverageMonthly:      avg,
		Shortfall:           shortfall,
		ShortfallPercentage: shortfallPct,
		IsStalled:           isStalled,
		ProjectedCompletion: projected,
		Severity:            severity,
	}
}

func goalSeverity(isStalled bool, monthsRemaining int, shortfallPct float64) Severity {
	if isStalled {
		return SeverityHigh
	}
	if monthsRemaining < 3 && shortfallPct > 30 {
		return SeverityHigh
	}
	switch {
	case shortfallPct > 50:
		return SeverityHigh
	case shortfallPct > 25:
		return SeverityMedium
	case shortfallPct > 10:
		return SeverityLow
	}
	return ""
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
