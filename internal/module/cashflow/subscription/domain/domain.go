package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the lifecycle state of a recurring subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusPaused    Status = "paused"
)

// BillingFrequency is how often a subscription charges.
type BillingFrequency string

const (
	FrequencyWeekly  BillingFrequency = "weekly"
	FrequencyMonthly BillingFrequency = "monthly"
	FrequencyYearly  BillingFrequency = "yearly"
)

// Subscription is a recurring charge detected from (or declared against)
// transaction history, the target entity of TypeSubscriptionCancellation
// suggestions.
type Subscription struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`

	Name        string           `gorm:"type:varchar(255);not null;column:name" json:"name"`
	CategoryID  *uuid.UUID       `gorm:"type:uuid;index;column:category_id" json:"categoryId,omitempty"`
	Amount      float64          `gorm:"type:decimal(15,2);not null;column:amount" json:"amount"`
	Currency    string           `gorm:"type:varchar(3);default:'VND';column:currency" json:"currency"`
	Frequency   BillingFrequency `gorm:"type:varchar(20);not null;column:frequency" json:"frequency"`
	Status      Status           `gorm:"type:varchar(20);default:'active';column:status" json:"status"`
	LastChargedAt *time.Time     `gorm:"column:last_charged_at" json:"lastChargedAt,omitempty"`
	NextChargeAt  *time.Time     `gorm:"column:next_charge_at" json:"nextChargeAt,omitempty"`
	CancelledAt   *time.Time     `gorm:"column:cancelled_at" json:"cancelledAt,omitempty"`

	// DetectedFromClusterID links back to the calc.Cluster that surfaced this
	// subscription, when it was discovered rather than declared.
	DetectedFromClusterID *string `gorm:"type:varchar(100);column:detected_from_cluster_id" json:"detectedFromClusterId,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

// TableName specifies the table name for Subscription.
func (Subscription) TableName() string {
	return "subscriptions"
}

// BelongsTo reports whether the subscription belongs to the given user.
func (s *Subscription) BelongsTo(userID uuid.UUID) bool {
	return s.UserID == userID
}

// AnnualCost converts the billing amount to a yearly equivalent, used when
// ranking subscription-cancellation suggestions by impact.
func (s *Subscription) AnnualCost() float64 {
	switch s.Frequency {
	case FrequencyWeekly:
		return s.Amount * 52
	case FrequencyYearly:
		return s.Amount
	default:
		return s.Amount * 12
	}
}

// Cancel transitions the subscription to cancelled.
func (s *Subscription) Cancel(now time.Time) {
	s.Status = StatusCancelled
	s.CancelledAt = &now
}

// Reactivate transitions a cancelled subscription back to active, used by
// suggestion rollback.
func (s *Subscription) Reactivate() {
	s.Status = StatusActive
	s.CancelledAt = nil
}
