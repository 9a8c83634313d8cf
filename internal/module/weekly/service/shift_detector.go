package service

import (
	"personalfinancedss/internal/module/weekly/domain"
)

const (
	shiftPercentageThreshold = 20.0
	shiftAbsoluteThreshold   = 50.0

	shiftTierModerateAt = 50.0
	shiftTierMajorAt    = 100.0
)

// ShiftDetector flags a week-over-week change as significant when its
// magnitude exceeds 20% AND $50, bucketed into three tiers by magnitude.
// Compares top-level income/expenses/savings plus each category present
// in either week's breakdown.
type ShiftDetector struct{}

// NewShiftDetector constructs the shift detector.
func NewShiftDetector() *ShiftDetector {
	return &ShiftDetector{}
}

// Detect compares current against previous (and, when available, the
// trailing 4-week moving average from historical) and returns every
// significant shift found.
func (d *ShiftDetector) Detect(current, previous *domain.WeeklyMetric, historical []domain.WeeklyMetric) ([]domain.Shift, error) {
	var shifts []domain.Shift

	if previous != nil {
		shifts = append(shifts, detectShift("income", current.Income, previous.Income)...)
		shifts = append(shifts, detectShift("expenses", current.Expenses, previous.Expenses)...)
		shifts = append(shifts, detectShift("savings", current.Savings, previous.Savings)...)

		currentCats, err := current.CategoryBreakdown()
		if err != nil {
			return nil, err
		}
		previousCats, err := previous.CategoryBreakdown()
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, detectCategoryShifts(currentCats, previousCats)...)
	}

	if avg := movingAverage(historical, 4); avg != nil {
		shifts = append(shifts, detectShift("expenses-vs-4wk-avg", current.Expenses, avg.Expenses)...)
	}

	return shifts, nil
}

func detectShift(subject string, currentVal, previousVal float64) []domain.Shift {
	delta := currentVal - previousVal
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	if previousVal == 0 {
		return nil
	}
	pct := (delta / previousVal) * 100
	absPct := pct
	if absPct < 0 {
		absPct = -absPct
	}
	if absPct <= shiftPercentageThreshold || abs <= shiftAbsoluteThreshold {
		return nil
	}
	return []domain.Shift{{
		Subject: subject, Current: currentVal, Previous: previousVal,
		Delta: delta, Percentage: pct, Tier: tierFor(abs),
	}}
}

func detectCategoryShifts(current, previous []domain.CategoryAmount) []domain.Shift {
	previousByID := make(map[string]float64, len(previous))
	for _, c := range previous {
		previousByID[c.CategoryID.String()] = c.Amount
	}
	var shifts []domain.Shift
	for _, c := range current {
		prev := previousByID[c.CategoryID.String()]
		subject := c.Name
		if subject == "" {
			subject = c.CategoryID.String()
		}
		shifts = append(shifts, detectShift(subject, c.Amount, prev)...)
	}
	return shifts
}

func tierFor(absDelta float64) domain.ShiftTier {
	switch {
	case absDelta >= shiftTierMajorAt:
		return domain.ShiftTierMajor
	case absDelta >= shiftTierModerateAt:
		return domain.ShiftTierModerate
	default:
		return domain.ShiftTierMinor
	}
}

func movingAverage(historical []domain.WeeklyMetric, weeks int) *domain.WeeklyMetric {
	if len(historical) == 0 {
		return nil
	}
	n := weeks
	if len(historical) < n {
		n = len(historical)
	}
	var income, expenses, savings float64
	for i := 0; i < n; i++ {
		income += historical[i].Income
		expenses += historical[i].Expenses
		savings += historical[i].Savings
	}
	return &domain.WeeklyMetric{
		Income: income / float64(n), Expenses: expenses / float64(n), Savings: savings / float64(n),
	}
}
