// Package service implements the weekly-summary pipeline: MetricAggregator
// aggregates a week's numbers, ShiftDetector compares weeks, InsightFilter
// scores and caps LLM-synthesized insights, and SummaryGenerator
// orchestrates all three plus the LLM call. Grounded structurally on the
// teacher's notification/service/scheduled_report_service.go (date-range
// query → summary struct → render), generalized from a one-shot email
// report into a persisted, filtered, LLM-narrated artifact.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"personalfinancedss/internal/analysis/calc"
	"personalfinancedss/internal/analysis/window"

	budgetRepo "personalfinancedss/internal/module/cashflow/budget/repository"
	goalRepo "personalfinancedss/internal/module/cashflow/goal/repository"
	txnDomain "personalfinancedss/internal/module/cashflow/transaction/domain"
	txnRepo "personalfinancedss/internal/module/cashflow/transaction/repository"

	"personalfinancedss/internal/module/weekly/domain"
)

// MetricAggregator computes the weekly numeric rollup for a user: weeks
// start Monday 00:00 local, end Sunday 23:59:59.999.
type MetricAggregator struct {
	txns    txnRepo.Repository
	budgets budgetRepo.Repository
	goals   goalRepo.Repository
	log     *zap.Logger
}

// NewMetricAggregator constructs the aggregator.
func NewMetricAggregator(txns txnRepo.Repository, budgets budgetRepo.Repository, goals goalRepo.Repository, log *zap.Logger) *MetricAggregator {
	return &MetricAggregator{txns: txns, budgets: budgets, goals: goals, log: log}
}

// Aggregate computes the WeeklyMetric for the Monday-start week containing
// weekStart (weekStart is normalized to that Monday internally).
func (a *MetricAggregator) Aggregate(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyMetric, error) {
	bounds := window.WeekBounds(weekStart, time.Monday)

	txns, err := a.txns.GetTransactionsByDateRange(ctx, userID, nil, bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	m := &domain.WeeklyMetric{
		UserID:    userID,
		WeekStart: bounds.Start,
		WeekEnd:   bounds.End.Add(-time.Millisecond),
	}

	categoryTotals := make(map[uuid.UUID]float64)
	dailyTotals := make(map[int]float64) // day-of-week (0=Sunday) -> expense total
	var dailySeries []float64
	dayBuckets := make(map[string]float64)

	for _, t := range txns {
		amount := float64(t.Amount)
		switch t.Direction {
		case txnDomain.DirectionCredit:
			m.Income += amount
		case txnDomain.DirectionDebit:
			m.Expenses += amount
			if cid := categoryOf(t); cid != uuid.Nil {
				categoryTotals[cid] += amount
			}
			dailyTotals[int(t.BookingDate.Weekday())] += amount
			dayKey := t.BookingDate.Format("2006-01-02")
			dayBuckets[dayKey] += amount
		}
	}
	for _, total := range dayBuckets {
		dailySeries = append(dailySeries, total)
	}

	m.Savings = m.Income - m.Expenses
	m.Volatility = calc.Volatility(dailySeries)

	var weekdaySum, weekendSum float64
	var weekdayCount, weekendCount int
	for dow, total := range dailyTotals {
		if dow == int(time.Saturday) || dow == int(time.Sunday) {
			weekendSum += total
			weekendCount++
		} else {
			weekdaySum += total
			weekdayCount++
		}
	}
	if weekdayCount > 0 {
		m.WeekdayAvg = weekdaySum / float64(weekdayCount)
	}
	if weekendCount > 0 {
		m.WeekendAvg = weekendSum / float64(weekendCount)
	}

	var breakdown []domain.CategoryAmount
	for cid, total := range categoryTotals {
		breakdown = append(breakdown, domain.CategoryAmount{CategoryID: cid, Amount: total})
	}
	if err := m.SetCategoryBreakdown(breakdown); err != nil {
		return nil, err
	}

	budgetStatuses, err := a.budgetStatuses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := m.SetBudgetStatuses(budgetStatuses); err != nil {
		return nil, err
	}

	return m, nil
}

func (a *MetricAggregator) budgetStatuses(ctx context.Context, userID uuid.UUID) ([]domain.BudgetStatus, error) {
	budgets, err := a.budgets.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	statuses := make([]domain.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		pct := 0.0
		if b.Amount > 0 {
			pct = (b.SpentAmount / b.Amount) * 100
		}
		statuses = append(statuses, domain.BudgetStatus{
			BudgetID: b.ID, Name: b.Name, Amount: b.Amount, Spent: b.SpentAmount, PctOfPace: pct,
		})
	}
	return statuses, nil
}

func categoryOf(t *txnDomain.Transaction) uuid.UUID {
	if t.Classification == nil || t.Classification.UserCategoryID == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(t.Classification.UserCategoryID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
