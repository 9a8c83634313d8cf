package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Action enumerates the append-only audit event kinds.
type Action string

const (
	ActionCreated         Action = "created"
	ActionViewed          Action = "viewed"
	ActionApproved        Action = "approved"
	ActionRejected        Action = "rejected"
	ActionApplied         Action = "applied"
	ActionFailed          Action = "failed"
	ActionExpired         Action = "expired"
	ActionRolledBack      Action = "rolled_back"
	ActionCancelled       Action = "cancelled"
	ActionConflictDetected Action = "conflict_detected"
	ActionUpdated         Action = "updated"
	ActionUserFeedback    Action = "user_feedback"
)

// ActorType classifies who performed the logged action.
type ActorType string

const (
	ActorUser      ActorType = "user"
	ActorSystem    ActorType = "system"
	ActorAI        ActorType = "ai"
	ActorScheduler ActorType = "scheduler"
)

// FieldChange is one field-level difference between previous and new state.
type FieldChange struct {
	Field    string      `json:"field"`
	OldValue interface{} `json:"oldValue"`
	NewValue interface{} `json:"newValue"`
}

// Entry is one append-only audit log row.
type Entry struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	SuggestionID *uuid.UUID `gorm:"type:uuid;index;column:suggestion_id" json:"suggestionId,omitempty"`

	Action    Action    `gorm:"type:varchar(30);not null;index;column:action" json:"action"`
	Timestamp time.Time `gorm:"not null;column:timestamp" json:"timestamp"`

	ActorType ActorType `gorm:"type:varchar(20);not null;column:actor_type" json:"actorType"`
	ActorID   string    `gorm:"type:varchar(100);column:actor_id" json:"actorId,omitempty"`
	ActorIP   string    `gorm:"type:varchar(64);column:actor_ip" json:"actorIp,omitempty"`

	PreviousState datatypes.JSON                    `gorm:"type:jsonb;column:previous_state" json:"previousState,omitempty"`
	NewState      datatypes.JSON                    `gorm:"type:jsonb;column:new_state" json:"newState,omitempty"`
	Changes       datatypes.JSONSlice[FieldChange]  `gorm:"type:jsonb;column:changes" json:"changes,omitempty"`

	OutcomeSuccess   bool   `gorm:"column:outcome_success" json:"outcomeSuccess"`
	OutcomeError     string `gorm:"type:text;column:outcome_error" json:"outcomeError,omitempty"`
	OutcomeDurationMs int64 `gorm:"column:outcome_duration_ms" json:"outcomeDurationMs"`

	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

// TableName specifies the table name for Entry.
func (Entry) TableName() string {
	return "suggestion_audit_log"
}
