package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"personalfinancedss/internal/module/suggestion/domain"
)

// SuggestionResponse represents a pending suggestion in API responses.
type SuggestionResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	InsightID *uuid.UUID `json:"insightId,omitempty"`

	Type        domain.Type `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`

	CurrentState    json.RawMessage `json:"currentState,omitempty"`
	ProposedChanges json.RawMessage `json:"proposedChanges,omitempty"`

	ImpactAmount     *float64 `json:"impactAmount,omitempty"`
	ImpactPercentage *float64 `json:"impactPercentage,omitempty"`
	ImpactTimeframe  string   `json:"impactTimeframe,omitempty"`
	ImpactConfidence int      `json:"impactConfidence"`

	Prerequisites []domain.Prerequisite `json:"prerequisites,omitempty"`
	Conflicts     []domain.ConflictRef  `json:"conflicts,omitempty"`

	Status Status `json:"status"`

	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy     *string    `json:"approvedBy,omitempty"`
	ApprovalMethod *string    `json:"approvalMethod,omitempty"`

	ExecutedAt       *time.Time               `json:"executedAt,omitempty"`
	ExecutionResults []domain.ExecutionStep   `json:"executionResults,omitempty"`
	ExecutionError   *string                  `json:"executionError,omitempty"`

	RolledBackAt    *time.Time `json:"rolledBackAt,omitempty"`
	RollbackReason  *string    `json:"rollbackReason,omitempty"`
	RollbackSuccess *bool      `json:"rollbackSuccess,omitempty"`
	RollbackError   *string    `json:"rollbackError,omitempty"`

	Priority  domain.Priority  `json:"priority"`
	RiskLevel domain.RiskLevel `json:"riskLevel"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Version   int              `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Status is a local alias so API consumers get a plain string type in docs
// without importing the domain package.
type Status = domain.Status

// ToSuggestionResponse converts a domain suggestion to its response DTO.
func ToSuggestionResponse(s *domain.PendingSuggestion) *SuggestionResponse {
	return &SuggestionResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		InsightID:        s.InsightID,
		Type:             s.Type,
		Title:            s.Title,
		Description:      s.Description,
		CurrentState:     json.RawMessage(s.CurrentState),
		ProposedChanges:  json.RawMessage(s.ProposedChanges),
		ImpactAmount:     s.ImpactAmount,
		ImpactPercentage: s.ImpactPercentage,
		ImpactTimeframe:  s.ImpactTimeframe,
		ImpactConfidence: s.ImpactConfidence,
		Prerequisites:    s.Prerequisites,
		Conflicts:        s.Conflicts,
		Status:           s.Status,
		ApprovedAt:       s.ApprovedAt,
		ApprovedBy:       s.ApprovedBy,
		ApprovalMethod:   s.ApprovalMethod,
		ExecutedAt:       s.ExecutedAt,
		ExecutionResults: s.ExecutionResults,
		ExecutionError:   s.ExecutionError,
		RolledBackAt:     s.RolledBackAt,
		RollbackReason:   s.RollbackReason,
		RollbackSuccess:  s.RollbackSuccess,
		RollbackError:    s.RollbackError,
		Priority:         s.Priority,
		RiskLevel:        s.RiskLevel,
		ExpiresAt:        s.ExpiresAt,
		Version:          s.Version,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToSuggestionResponseList converts a list of domain suggestions to DTOs.
func ToSuggestionResponseList(suggestions []domain.PendingSuggestion) []*SuggestionResponse {
	responses := make([]*SuggestionResponse, len(suggestions))
	for i := range suggestions {
		responses[i] = ToSuggestionResponse(&suggestions[i])
	}
	return responses
}
