package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"personalfinancedss/internal/module/signal/domain"
	"personalfinancedss/internal/module/signal/repository"
)

// SignalResponse represents a financial signal in API responses.
type SignalResponse struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"userId"`
	Type       domain.SignalType `json:"type"`
	Name       string            `json:"name"`
	CategoryID *uuid.UUID        `json:"categoryId,omitempty"`

	Value domain.SignalValue `json:"value"`

	PeriodStart     time.Time  `json:"periodStart"`
	PeriodEnd       time.Time  `json:"periodEnd"`
	ComparisonStart *time.Time `json:"comparisonStart,omitempty"`
	ComparisonEnd   *time.Time `json:"comparisonEnd,omitempty"`

	Confidence int             `json:"confidence"`
	Priority   int             `json:"priority"`
	Tags       json.RawMessage `json:"tags,omitempty"`
	RawData    json.RawMessage `json:"rawData,omitempty"`

	Status      domain.Status `json:"status"`
	DismissedAt *time.Time    `json:"dismissedAt,omitempty"`
	ActionedAt  *time.Time    `json:"actionedAt,omitempty"`
	ExpiresAt   time.Time     `json:"expiresAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToSignalResponse converts a domain signal to its response DTO.
func ToSignalResponse(s *domain.Signal) *SignalResponse {
	return &SignalResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		Type:            s.Type,
		Name:            s.Name,
		CategoryID:      s.CategoryID,
		Value:           s.Value(),
		PeriodStart:     s.PeriodStart,
		PeriodEnd:       s.PeriodEnd,
		ComparisonStart: s.ComparisonStart,
		ComparisonEnd:   s.ComparisonEnd,
		Confidence:      s.Confidence,
		Priority:        s.Priority,
		Tags:            json.RawMessage(s.Tags),
		RawData:         json.RawMessage(s.RawData),
		Status:          s.CurrentStatus(),
		DismissedAt:     s.DismissedAt,
		ActionedAt:      s.ActionedAt,
		ExpiresAt:       s.ExpiresAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToSignalResponseList converts a list of domain signals to DTOs.
func ToSignalResponseList(signals []domain.Signal) []*SignalResponse {
	responses := make([]*SignalResponse, len(signals))
	for i := range signals {
		responses[i] = ToSignalResponse(&signals[i])
	}
	return responses
}

// StatsResponse reports signal activity counts for a trailing window.
type StatsResponse struct {
	TotalActive  int64                       `json:"totalActive"`
	ByType       map[domain.SignalType]int64 `json:"byType"`
	ByPriority   map[int]int64               `json:"byPriority"`
	HighPriority int64                       `json:"highPriority"`
}

// ToStatsResponse converts a repository stats window to its response DTO.
func ToStatsResponse(w repository.StatsWindow) *StatsResponse {
	return &StatsResponse{
		TotalActive:  w.TotalActive,
		ByType:       w.ByType,
		ByPriority:   w.ByPriority,
		HighPriority: w.HighPriority,
	}
}
