package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SignalType enumerates the deterministic finding kinds the analysis
// engines emit.
type SignalType string

const (
	TypeCategoryAggregation SignalType = "category_aggregation"
	TypeCategoryDelta       SignalType = "category_delta"
	TypeGrowthTrend         SignalType = "growth_trend"
	TypeSpendingCluster     SignalType = "spending_cluster"
	TypeBudgetDrift         SignalType = "budget_drift"
	TypeGoalUnderfunding    SignalType = "goal_underfunding"
	TypeIncomeStability     SignalType = "income_stability"
	TypeExpenseVolatility   SignalType = "expense_volatility"
	TypeRiskDetected        SignalType = "risk_detected"
)

// SignalValue carries the numeric comparison a signal reports.
type SignalValue struct {
	Current    float64  `json:"current"`
	Previous   *float64 `json:"previous,omitempty"`
	Delta      *float64 `json:"delta,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// SignalPeriod bounds the window a signal was computed over, plus an
// optional comparison window for delta-style signals.
type SignalPeriod struct {
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	ComparisonStart *time.Time `json:"comparisonStart,omitempty"`
	ComparisonEnd   *time.Time `json:"comparisonEnd,omitempty"`
}

// Signal is an emitted, deduplicated deterministic finding. Signals are
// append-only: lifecycle state changes flip IsActive and stamp
// DismissedAt/ActionedAt rather than mutating or deleting the row.
type Signal struct {
	ID     uuid.UUID  `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`

	Type       SignalType `gorm:"type:varchar(40);not null;column:type" json:"type"`
	Name       string     `gorm:"type:varchar(255);not null;column:name" json:"name"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index;column:category_id" json:"categoryId,omitempty"`

	ValueCurrent    float64  `gorm:"type:decimal(15,2);column:value_current" json:"-"`
	ValuePrevious   *float64 `gorm:"type:decimal(15,2);column:value_previous" json:"-"`
	ValueDelta      *float64 `gorm:"type:decimal(15,2);column:value_delta" json:"-"`
	ValuePercentage *float64 `gorm:"type:decimal(7,2);column:value_percentage" json:"-"`

	PeriodStart     time.Time  `gorm:"not null;column:period_start" json:"periodStart"`
	PeriodEnd       time.Time  `gorm:"not null;column:period_end" json:"periodEnd"`
	ComparisonStart *time.Time `gorm:"column:comparison_start" json:"comparisonStart,omitempty"`
	ComparisonEnd   *time.Time `gorm:"column:comparison_end" json:"comparisonEnd,omitempty"`

	Confidence int            `gorm:"default:100;column:confidence" json:"confidence"`
	Priority   int            `gorm:"not null;index;column:priority" json:"priority"` // 1 = highest
	Tags       datatypes.JSON `gorm:"type:jsonb;column:tags" json:"tags,omitempty"`
	RawData    datatypes.JSON `gorm:"type:jsonb;column:raw_data" json:"rawData,omitempty"`

	SignalHash string `gorm:"type:varchar(64);not null;uniqueIndex:idx_signal_active_hash,where:is_active" column:"signal_hash" json:"-"`

	IsActive    bool       `gorm:"default:true;column:is_active" json:"isActive"`
	DismissedAt *time.Time `gorm:"column:dismissed_at" json:"dismissedAt,omitempty"`
	ActionedAt  *time.Time `gorm:"column:actioned_at" json:"actionedAt,omitempty"`
	ExpiresAt   time.Time  `gorm:"not null;index;column:expires_at" json:"expiresAt"`

	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

// TableName specifies the table name for Signal.
func (Signal) TableName() string {
	return "financial_signals"
}

// Status is the externally-visible lifecycle state of a signal, derived
// from the IsActive/DismissedAt/ActionedAt fields rather than persisted
// directly (append-only storage model).
type Status string

const (
	StatusActive    Status = "active"
	StatusDismissed Status = "dismissed"
	StatusActioned  Status = "actioned"
)

// CurrentStatus derives the signal's lifecycle status from its fields.
func (s *Signal) CurrentStatus() Status {
	if !s.IsActive {
		if s.ActionedAt != nil {
			return StatusActioned
		}
		return StatusDismissed
	}
	return StatusActive
}

// IsExpired reports whether the signal has passed its expiry.
func (s *Signal) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// BelongsTo checks tenant ownership.
func (s *Signal) BelongsTo(userID uuid.UUID) bool {
	return s.UserID == userID
}

// CalculateExpiry returns the default expiry for a newly computed signal:
// 90 days from now.
func CalculateExpiry(now time.Time) time.Time {
	return now.AddDate(0, 0, 90)
}

// categoryKeyFor renders the category component of the hash key, using the
// sentinel "none" when a signal is not category-scoped.
func categoryKeyFor(categoryID *uuid.UUID) string {
	if categoryID == nil {
		return "none"
	}
	return categoryID.String()
}

// ComputeHash derives the deterministic dedup key for
// (userId, type, category, periodStart, periodEnd) via sha256, the
// uniqueness key active signals are deduplicated on.
func ComputeHash(userID uuid.UUID, sigType SignalType, categoryID *uuid.UUID, periodStart, periodEnd time.Time) string {
	raw := fmt.Sprintf("%s|%s|%s|%d|%d",
		userID.String(), sigType, categoryKeyFor(categoryID),
		periodStart.UTC().Unix(), periodEnd.UTC().Unix())
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// NewSignal constructs a Signal with its hash and default expiry filled in.
func NewSignal(userID uuid.UUID, sigType SignalType, name string, categoryID *uuid.UUID, value SignalValue, period SignalPeriod, confidence, priority int, now time.Time) *Signal {
	s := &Signal{
		UserID:          userID,
		Type:            sigType,
		Name:            name,
		CategoryID:      categoryID,
		ValueCurrent:    value.Current,
		ValuePrevious:   value.Previous,
		ValueDelta:      value.Delta,
		ValuePercentage: value.Percentage,
		PeriodStart:     period.StartDate,
		PeriodEnd:       period.EndDate,
		ComparisonStart: period.ComparisonStart,
		ComparisonEnd:   period.ComparisonEnd,
		Confidence:      confidence,
		Priority:        priority,
		IsActive:        true,
		ExpiresAt:       CalculateExpiry(now),
	}
	s.SignalHash = ComputeHash(userID, sigType, categoryID, period.StartDate, period.EndDate)
	return s
}

// Value reassembles the SignalValue view from stored columns.
func (s *Signal) Value() SignalValue {
	return SignalValue{
		Current:    s.ValueCurrent,
		Previous:   s.ValuePrevious,
		Delta:      s.ValueDelta,
		Percentage: s.ValuePercentage,
	}
}
