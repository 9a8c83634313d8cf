package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Type enumerates the kinds of transformation a suggestion can propose.
type Type string

const (
	TypeBudgetAdjustment         Type = "budget_adjustment"
	TypeSavingsIncrease          Type = "savings_increase"
	TypeSubscriptionCancellation Type = "subscription_cancellation"
	TypeCategoryCreation         Type = "category_creation"
	TypeBudgetCreation           Type = "budget_creation"
	TypeGoalAdjustment           Type = "goal_adjustment"
	TypeTransactionCategorization Type = "transaction_categorization"
)

// HighRisk is the set of types that can never auto-approve.
var HighRisk = map[Type]bool{
	TypeSubscriptionCancellation: true,
	TypeGoalAdjustment:           true,
}

// CooldownDays maps a type to its reapproval cooldown window.
var CooldownDays = map[Type]int{
	TypeBudgetAdjustment:         7,
	TypeSavingsIncrease:          14,
	TypeSubscriptionCancellation: 30,
}

// Status is the suggestion lifecycle state.
type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusExpired     Status = "expired"
	StatusApplied     Status = "applied"
	StatusFailed      Status = "failed"
	StatusRolledBack  Status = "rolled_back"
	StatusCancelled   Status = "cancelled"
	StatusConflict    Status = "conflict"
)

// RiskLevel classifies how consequential applying a suggestion is.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Priority classifies urgency, derived from impact and confidence.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// transitions enumerates the only legal forward edges out of each status
// in the suggestion lifecycle state machine.
var transitions = map[Status]map[Status]bool{
	StatusPending:    {StatusApproved: true, StatusRejected: true, StatusCancelled: true, StatusConflict: true, StatusExpired: true},
	StatusApproved:   {StatusApplied: true, StatusExpired: true, StatusCancelled: true},
	StatusApplied:    {StatusRolledBack: true, StatusFailed: true},
	StatusConflict:   {StatusPending: true},
	StatusRejected:   {},
	StatusExpired:    {},
	StatusCancelled:  {},
	StatusRolledBack: {},
	StatusFailed:     {},
}

// CanTransition reports whether `to` is a legal next state from `from`.
func CanTransition(from, to Status) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// Prerequisite records one precondition check for a suggestion.
type Prerequisite struct {
	Type      string `json:"type"`
	Satisfied bool   `json:"satisfied"`
	Details   string `json:"details,omitempty"`
}

// ConflictRef links to another suggestion this one conflicts with.
type ConflictRef struct {
	WithSuggestionID uuid.UUID `json:"withSuggestionId"`
	Type             string    `json:"type"`
	Resolution       string    `json:"resolution,omitempty"`
}

// ExecutionStep records one applier step's outcome.
type ExecutionStep struct {
	Step    string `json:"step"`
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PendingSuggestion is the lifecycle-managed proposal record. JSON-shaped
// sub-documents (CurrentState, ProposedChanges, etc.) use a documented
// jsonb blob rather than a rigid column-per-field schema, since each Type
// carries a different payload shape (see transform package for the
// per-type Go structs encoded here).
type PendingSuggestion struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`

	InsightID *uuid.UUID `gorm:"type:uuid;column:insight_id" json:"insightId,omitempty"`
	Type      Type       `gorm:"type:varchar(40);not null;column:type" json:"type"`
	Title     string     `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Description string   `gorm:"type:text;column:description" json:"description"`

	// CurrentState is a snapshot of affected entities pre-change.
	CurrentState datatypes.JSON `gorm:"type:jsonb;column:current_state" json:"currentState,omitempty"`
	// ProposedChanges is the typed payload per Type (see transform package).
	ProposedChanges datatypes.JSON `gorm:"type:jsonb;column:proposed_changes" json:"proposedChanges,omitempty"`

	ImpactAmount     *float64 `gorm:"type:decimal(15,2);column:impact_amount" json:"impactAmount,omitempty"`
	ImpactPercentage *float64 `gorm:"type:decimal(7,2);column:impact_percentage" json:"impactPercentage,omitempty"`
	ImpactTimeframe  string   `gorm:"type:varchar(40);column:impact_timeframe" json:"impactTimeframe,omitempty"`
	ImpactConfidence int      `gorm:"column:impact_confidence" json:"impactConfidence"`

	Prerequisites datatypes.JSONSlice[Prerequisite] `gorm:"type:jsonb;column:prerequisites" json:"prerequisites,omitempty"`
	Conflicts     datatypes.JSONSlice[ConflictRef]  `gorm:"type:jsonb;column:conflicts" json:"conflicts,omitempty"`

	Status Status `gorm:"type:varchar(20);not null;index;column:status" json:"status"`

	ApprovedAt     *time.Time `gorm:"column:approved_at" json:"approvedAt,omitempty"`
	ApprovedBy     *string    `gorm:"type:varchar(20);column:approved_by" json:"approvedBy,omitempty"`
	ApprovalMethod *string    `gorm:"type:varchar(20);column:approval_method" json:"approvalMethod,omitempty"`

	ExecutedAt       *time.Time                          `gorm:"column:executed_at" json:"executedAt,omitempty"`
	ExecutionResults datatypes.JSONSlice[ExecutionStep]   `gorm:"type:jsonb;column:execution_results" json:"executionResults,omitempty"`
	ExecutionError   *string                              `gorm:"type:text;column:execution_error" json:"executionError,omitempty"`
	TransactionIDs   datatypes.JSONSlice[uuid.UUID]       `gorm:"type:jsonb;column:transaction_ids" json:"transactionIds,omitempty"`

	RolledBackAt    *time.Time `gorm:"column:rolled_back_at" json:"rolledBackAt,omitempty"`
	RollbackReason  *string    `gorm:"type:text;column:rollback_reason" json:"rollbackReason,omitempty"`
	RollbackSuccess *bool      `gorm:"column:rollback_success" json:"rollbackSuccess,omitempty"`
	RollbackError   *string    `gorm:"type:text;column:rollback_error" json:"rollbackError,omitempty"`

	ViewedAt    *time.Time `gorm:"column:viewed_at" json:"viewedAt,omitempty"`
	ViewedCount int        `gorm:"default:0;column:viewed_count" json:"viewedCount"`

	Priority  Priority  `gorm:"type:varchar(20);column:priority" json:"priority"`
	RiskLevel RiskLevel `gorm:"type:varchar(20);column:risk_level" json:"riskLevel"`
	ExpiresAt time.Time `gorm:"not null;index;column:expires_at" json:"expiresAt"`
	Version   int       `gorm:"not null;default:1;column:version" json:"version"`

	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

// TableName specifies the table name for PendingSuggestion.
func (PendingSuggestion) TableName() string {
	return "pending_suggestions"
}

// BelongsTo checks tenant ownership.
func (s *PendingSuggestion) BelongsTo(userID uuid.UUID) bool {
	return s.UserID == userID
}

// IsExpired reports whether the suggestion's expiry has passed.
func (s *PendingSuggestion) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// DefaultExpiry is 7 days from creation.
func DefaultExpiry(now time.Time) time.Time {
	return now.AddDate(0, 0, 7)
}

// ComputePriority derives metadata.priority from impact amount and
// confidence.
func ComputePriority(impactAmount float64, confidence int) Priority {
	abs := impactAmount
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > 1000 && confidence > 80:
		return PriorityCritical
	case abs > 500 && confidence > 70:
		return PriorityHigh
	case abs > 100 && confidence > 60:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// CanAutoApprove reports whether a suggestion qualifies for the auto-approve
// path: small impact, high confidence, not high-risk, all prerequisites met.
func CanAutoApprove(impactAmount float64, confidence int, t Type, prerequisites []Prerequisite) bool {
	abs := impactAmount
	if abs < 0 {
		abs = -abs
	}
	if abs >= 50 || confidence < 80 || HighRisk[t] {
		return false
	}
	for _, p := range prerequisites {
		if !p.Satisfied {
			return false
		}
	}
	return true
}

// RequiresConfirmation reports whether the suggestion must be surfaced to
// the user for explicit confirmation before approval.
func RequiresConfirmation(impactAmount float64, confidence int, t Type) bool {
	abs := impactAmount
	if abs < 0 {
		abs = -abs
	}
	if abs > 500 {
		return true
	}
	if t == TypeSubscriptionCancellation || t == TypeGoalAdjustment {
		return true
	}
	return confidence < 70
}
