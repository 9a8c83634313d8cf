// Package service implements audit-log operations: logging a transitioned
// action (optionally inside the caller's transaction), trail retrieval,
// activity summaries, export, and retention cleanup.
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/auditlog/domain"
	"personalfinancedss/internal/module/auditlog/repository"
)

// LogParams bundles the arguments for one audit event.
type LogParams struct {
	UserID        uuid.UUID
	SuggestionID  *uuid.UUID
	Action        domain.Action
	ActorType     domain.ActorType
	ActorID       string
	ActorIP       string
	PreviousState interface{}
	NewState      interface{}
	Success       bool
	Err           error
	Duration      time.Duration
	Tx            *gorm.DB // when set, the log write joins this transaction
}

// ExportFormat is the output encoding for exportAuditLog.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// Service is the Audit Log contract.
type Service interface {
	LogAction(ctx context.Context, p LogParams) error
	GetSuggestionAuditTrail(ctx context.Context, suggestionID uuid.UUID, limit int) ([]domain.Entry, error)
	GetUserActivity(ctx context.Context, userID uuid.UUID, days int) ([]repository.ActivitySummary, error)
	ExportAuditLog(ctx context.Context, userID uuid.UUID, format ExportFormat, start, end time.Time, actions []domain.Action) ([]byte, error)
	CleanOldLogs(ctx context.Context, daysToKeep int) (int64, error)
}

type service struct {
	repo repository.Repository
}

// NewService constructs the audit log service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, p LogParams) error {
	changes, err := domain.Diff(p.PreviousState, p.NewState)
	if err != nil {
		return fmt.Errorf("auditlog: compute diff: %w", err)
	}

	prevJSON, err := json.Marshal(p.PreviousState)
	if err != nil {
		return err
	}
	nextJSON, err := json.Marshal(p.NewState)
	if err != nil {
		return err
	}

	entry := &domain.Entry{
		UserID:            p.UserID,
		SuggestionID:      p.SuggestionID,
		Action:            p.Action,
		Timestamp:         time.Now(),
		ActorType:         p.ActorType,
		ActorID:           p.ActorID,
		ActorIP:           p.ActorIP,
		PreviousState:     prevJSON,
		NewState:          nextJSON,
		Changes:           changes,
		OutcomeSuccess:    p.Success,
		OutcomeDurationMs: p.Duration.Milliseconds(),
	}
	if p.Err != nil {
		entry.OutcomeError = p.Err.Error()
	}

	return s.repo.Create(ctx, p.Tx, entry)
}

func (s *service) GetSuggestionAuditTrail(ctx context.Context, suggestionID uuid.UUID, limit int) ([]domain.Entry, error) {
	return s.repo.FindBySuggestionID(ctx, suggestionID, limit)
}

func (s *service) GetUserActivity(ctx context.Context, userID uuid.UUID, days int) ([]repository.ActivitySummary, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.repo.UserActivity(ctx, userID, since)
}

func (s *service) ExportAuditLog(ctx context.Context, userID uuid.UUID, format ExportFormat, start, end time.Time, actions []domain.Action) ([]byte, error) {
	entries, err := s.repo.FindByUserIDAndRange(ctx, userID, start, end, actions)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExportCSV:
		return exportCSV(entries)
	default:
		return json.MarshalIndent(entries, "", "  ")
	}
}

func exportCSV(entries []domain.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "timestamp", "action", "actorType", "actorId", "suggestionId", "success", "error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, e := range entries {
		suggestionID := ""
		if e.SuggestionID != nil {
			suggestionID = e.SuggestionID.String()
		}
		row := []string{
			e.ID.String(),
			e.Timestamp.Format(time.RFC3339),
			string(e.Action),
			string(e.ActorType),
			e.ActorID,
			suggestionID,
			fmt.Sprintf("%t", e.OutcomeSuccess),
			e.OutcomeError,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) CleanOldLogs(ctx context.Context, daysToKeep int) (int64, error) {
	if daysToKeep <= 0 {
		daysToKeep = 90
	}
	cutoff := time.Now().AddDate(0, 0, -daysToKeep)
	return s.repo.DeleteOlderThan(ctx, cutoff)
}
