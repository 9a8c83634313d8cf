// Package domain holds the weekly-summary entities: WeeklyMetric,
// the materialized numeric aggregate for one (userId, weekStart), and
// WeeklySummary, the LLM-synthesized artifact that references it.
// Nested sub-documents follow the same generalized-JSON-column approach
// as the signal and suggestion domains: one raw datatypes.JSON
// column per nested shape, with typed accessor method pairs.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CategoryAmount is one category's total within a WeeklyMetric's breakdown.
type CategoryAmount struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
}

// BudgetStatus summarizes one active budget's standing as of the metric's
// week, reused by ShiftDetector when comparing week over week.
type BudgetStatus struct {
	BudgetID  uuid.UUID `json:"budgetId"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Spent     float64   `json:"spent"`
	PctOfPace float64   `json:"pctOfPace"`
}

// WeeklyMetric is the materialized numeric aggregate for one
// (userId, weekStart) pair.
type WeeklyMetric struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_weekly_metric_user_week;column:user_id" json:"userId"`
	WeekStart time.Time `gorm:"type:date;not null;index:idx_weekly_metric_user_week;column:week_start" json:"weekStart"`
	WeekEnd   time.Time `gorm:"type:date;not null;column:week_end" json:"weekEnd"`

	Income   float64 `gorm:"type:decimal(15,2);column:income" json:"income"`
	Expenses float64 `gorm:"type:decimal(15,2);column:expenses" json:"expenses"`
	Savings  float64 `gorm:"type:decimal(15,2);column:savings" json:"savings"`

	CategoryBreakdownRaw datatypes.JSON `gorm:"type:jsonb;column:category_breakdown" json:"-"`
	BudgetStatusRaw      datatypes.JSON `gorm:"type:jsonb;column:budget_status" json:"-"`

	Volatility  float64 `gorm:"type:decimal(10,4);column:volatility" json:"volatility"`
	WeekdayAvg  float64 `gorm:"type:decimal(15,2);column:weekday_avg" json:"weekdayAvg"`
	WeekendAvg  float64 `gorm:"type:decimal(15,2);column:weekend_avg" json:"weekendAvg"`

	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

// TableName specifies the table name for WeeklyMetric.
func (WeeklyMetric) TableName() string {
	return "weekly_metrics"
}

// CategoryBreakdown returns the decoded category totals.
func (m *WeeklyMetric) CategoryBreakdown() ([]CategoryAmount, error) {
	if len(m.CategoryBreakdownRaw) == 0 {
		return nil, nil
	}
	var v []CategoryAmount
	if err := json.Unmarshal(m.CategoryBreakdownRaw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetCategoryBreakdown encodes and stores the category totals.
func (m *WeeklyMetric) SetCategoryBreakdown(v []CategoryAmount) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.CategoryBreakdownRaw = raw
	return nil
}

// BudgetStatuses returns the decoded per-budget standing.
func (m *WeeklyMetric) BudgetStatuses() ([]BudgetStatus, error) {
	if len(m.BudgetStatusRaw) == 0 {
		return nil, nil
	}
	var v []BudgetStatus
	if err := json.Unmarshal(m.BudgetStatusRaw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetBudgetStatuses encodes and stores the per-budget standing.
func (m *WeeklyMetric) SetBudgetStatuses(v []BudgetStatus) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.BudgetStatusRaw = raw
	return nil
}

// ShiftTier is a significance tier a detected shift is bucketed into.
type ShiftTier string

const (
	ShiftTierMinor    ShiftTier = "minor"
	ShiftTierModerate ShiftTier = "moderate"
	ShiftTierMajor    ShiftTier = "major"
)

// Shift is one significant week-over-week change ShiftDetector surfaces.
type Shift struct {
	Subject    string    `json:"subject"` // category name or metric name
	Current    float64   `json:"current"`
	Previous   float64   `json:"previous"`
	Delta      float64   `json:"delta"`
	Percentage float64   `json:"percentage"`
	Tier       ShiftTier `json:"tier"`
}

// InsightType mirrors the narrative insight categories an LLM-synthesized
// summary can surface.
type InsightType string

const (
	InsightTypeObservation InsightType = "observation"
	InsightTypeWarning     InsightType = "warning"
	InsightTypeOpportunity InsightType = "opportunity"
	InsightTypeAchievement InsightType = "achievement"
)

// Insight is one LLM-synthesized, scored narrative item folded into a
// WeeklySummary. Scoped to this module rather than a shared global
// entity: a standalone Insight table referenced by signals was
// considered, but no other module in this repo persists or queries one
// independently of a summary, so it is modeled here as an embedded
// record rather than a separate table.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  int         `json:"confidence"`
	ImpactUSD   float64     `json:"impactUsd"`
	ImpactPct   float64     `json:"impactPct"`
	HasActions  bool        `json:"hasActions"`
	Score       float64     `json:"score"`
}

// SummaryStatus tracks whether a WeeklySummary's narrative came from the
// LLM or fell back to the degraded template.
type SummaryStatus string

const (
	SummaryStatusComplete  SummaryStatus = "complete"
	SummaryStatusDegraded  SummaryStatus = "degraded"
)

// WeeklySummary references a WeeklyMetric and carries the filtered
// insights, significant shifts, and rendered overview.
type WeeklySummary struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	WeeklyMetricID uuid.UUID `gorm:"type:uuid;not null;column:weekly_metric_id" json:"weeklyMetricId"`

	InsightsRaw       datatypes.JSON `gorm:"type:jsonb;column:insights" json:"-"`
	SignificantShiftsRaw datatypes.JSON `gorm:"type:jsonb;column:significant_shifts" json:"-"`

	Overview string        `gorm:"type:text;column:overview" json:"overview"`
	Status   SummaryStatus `gorm:"type:varchar(20);not null;column:status" json:"status"`

	ExpiresAt time.Time      `gorm:"not null;index;column:expires_at" json:"expiresAt"`
	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

// TableName specifies the table name for WeeklySummary.
func (WeeklySummary) TableName() string {
	return "weekly_summaries"
}

// Insights returns the decoded, filtered insight list.
func (s *WeeklySummary) Insights() ([]Insight, error) {
	if len(s.InsightsRaw) == 0 {
		return nil, nil
	}
	var v []Insight
	if err := json.Unmarshal(s.InsightsRaw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetInsights encodes and stores the filtered insight list.
func (s *WeeklySummary) SetInsights(v []Insight) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.InsightsRaw = raw
	return nil
}

// SignificantShifts returns the decoded shift list.
func (s *WeeklySummary) SignificantShifts() ([]Shift, error) {
	if len(s.SignificantShiftsRaw) == 0 {
		return nil, nil
	}
	var v []Shift
	if err := json.Unmarshal(s.SignificantShiftsRaw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetSignificantShifts encodes and stores the shift list.
func (s *WeeklySummary) SetSignificantShifts(v []Shift) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.SignificantShiftsRaw = raw
	return nil
}

// DefaultSummaryTTL is the 90-day retention window assigned to weekly
// summaries.
const DefaultSummaryTTL = 90 * 24 * time.Hour

// NewWeeklySummary builds a summary row with its expiry set per the
// default TTL above.
func NewWeeklySummary(userID uuid.UUID, metricID uuid.UUID, now time.Time) *WeeklySummary {
	return &WeeklySummary{
		UserID:         userID,
		WeeklyMetricID: metricID,
		ExpiresAt:      now.Add(DefaultSummaryTTL),
	}
}
