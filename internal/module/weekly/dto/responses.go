package dto

import (
	"time"

	"github.com/google/uuid"

	"personalfinancedss/internal/module/weekly/domain"
)

// MetricResponse is the API shape for a WeeklyMetric.
type MetricResponse struct {
	ID         uuid.UUID                `json:"id"`
	WeekStart  time.Time                `json:"weekStart"`
	WeekEnd    time.Time                `json:"weekEnd"`
	Income     float64                  `json:"income"`
	Expenses   float64                  `json:"expenses"`
	Savings    float64                  `json:"savings"`
	Breakdown  []domain.CategoryAmount  `json:"breakdown"`
	Budgets    []domain.BudgetStatus    `json:"budgets"`
	Volatility float64                  `json:"volatility"`
	WeekdayAvg float64                  `json:"weekdayAvg"`
	WeekendAvg float64                  `json:"weekendAvg"`
}

// SummaryResponse is the API shape for a WeeklySummary alongside its metric.
type SummaryResponse struct {
	ID        uuid.UUID         `json:"id"`
	Metric    MetricResponse    `json:"metric"`
	Insights  []domain.Insight  `json:"insights"`
	Shifts    []domain.Shift    `json:"significantShifts"`
	Overview  string            `json:"overview"`
	Status    domain.SummaryStatus `json:"status"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// ToSummaryResponse assembles the combined response from the persisted
// rows, decoding each JSON sub-document.
func ToSummaryResponse(s *domain.WeeklySummary, m *domain.WeeklyMetric) (*SummaryResponse, error) {
	breakdown, err := m.CategoryBreakdown()
	if err != nil {
		return nil, err
	}
	budgets, err := m.BudgetStatuses()
	if err != nil {
		return nil, err
	}
	insights, err := s.Insights()
	if err != nil {
		return nil, err
	}
	shifts, err := s.SignificantShifts()
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		ID: s.ID,
		Metric: MetricResponse{
			ID: m.ID, WeekStart: m.WeekStart, WeekEnd: m.WeekEnd,
			Income: m.Income, Expenses: m.Expenses, Savings: m.Savings,
			Breakdown: breakdown, Budgets: budgets,
			Volatility: m.Volatility, WeekdayAvg: m.WeekdayAvg, WeekendAvg: m.WeekendAvg,
		},
		Insights: insights, Shifts: shifts, Overview: s.Overview,
		Status: s.Status, ExpiresAt: s.ExpiresAt,
	}, nil
}
