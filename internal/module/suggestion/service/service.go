// Package service implements the suggestion lifecycle: create with
// conflict detection and auto-approve classification, approve with
// cooldown and prerequisite checks, apply/rollback dispatching into
// transform, and a background expiry scan.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	auditDomain "personalfinancedss/internal/module/auditlog/domain"
	auditSvc "personalfinancedss/internal/module/auditlog/service"
	"personalfinancedss/internal/module/suggestion/domain"
	"personalfinancedss/internal/module/suggestion/repository"
	"personalfinancedss/internal/module/suggestion/transform"
)

// CreateParams bundles what a caller (typically an analysis engine) must
// supply to propose a suggestion.
type CreateParams struct {
	UserID           uuid.UUID
	InsightID        *uuid.UUID
	Type             domain.Type
	Title            string
	Description      string
	CurrentState     interface{}
	ProposedChanges  interface{}
	TargetID         uuid.UUID // entity the suggestion acts on, for update-in-place/conflict lookups
	ImpactAmount     float64
	ImpactPercentage float64
	ImpactTimeframe  string
	ImpactConfidence int
	Prerequisites    []domain.Prerequisite
}

// Service is the Suggestion Lifecycle contract.
type Service interface {
	CreateSuggestion(ctx context.Context, p CreateParams) (*domain.PendingSuggestion, error)
	ApproveSuggestion(ctx context.Context, id, userID uuid.UUID, actorID string) (*domain.PendingSuggestion, error)
	RejectSuggestion(ctx context.Context, id, userID uuid.UUID, actorID string) (*domain.PendingSuggestion, error)
	ApplySuggestion(ctx context.Context, id, userID uuid.UUID) (*domain.PendingSuggestion, error)
	RollbackSuggestion(ctx context.Context, id, userID uuid.UUID, reason string) (*domain.PendingSuggestion, error)
	GetUserSuggestions(ctx context.Context, userID uuid.UUID, statuses []domain.Status, limit int) ([]domain.PendingSuggestion, error)
	ExpireDueSuggestions(ctx context.Context, batchSize int) (int, error)
}

type service struct {
	repo    repository.Repository
	mutator transform.Mutator
	audit   auditSvc.Service
	log     *zap.Logger
}

// NewService constructs the suggestion lifecycle service.
func NewService(repo repository.Repository, mutator transform.Mutator, audit auditSvc.Service, log *zap.Logger) Service {
	return &service{repo: repo, mutator: mutator, audit: audit, log: log}
}

func (s *service) CreateSuggestion(ctx context.Context, p CreateParams) (*domain.PendingSuggestion, error) {
	now := time.Now()

	// Update-in-place: a still-active suggestion for the same (user, type,
	// target) gets refreshed instead of duplicated.
	if existing, err := s.repo.FindActiveByTypeAndTarget(ctx, p.UserID, p.Type, p.TargetID); err == nil && existing != nil {
		return s.refreshExisting(ctx, existing, p, now)
	}

	currentJSON, err := json.Marshal(p.CurrentState)
	if err != nil {
		return nil, fmt.Errorf("suggestion: marshal current state: %w", err)
	}
	proposedJSON, err := json.Marshal(p.ProposedChanges)
	if err != nil {
		return nil, fmt.Errorf("suggestion: marshal proposed changes: %w", err)
	}

	priority := domain.ComputePriority(p.ImpactAmount, p.ImpactConfidence)
	risk := domain.RiskLow
	if domain.HighRisk[p.Type] {
		risk = domain.RiskHigh
	}

	sug := &domain.PendingSuggestion{
		UserID:           p.UserID,
		InsightID:        p.InsightID,
		Type:             p.Type,
		Title:            p.Title,
		Description:      p.Description,
		CurrentState:     currentJSON,
		ProposedChanges:  proposedJSON,
		ImpactAmount:     &p.ImpactAmount,
		ImpactPercentage: &p.ImpactPercentage,
		ImpactTimeframe:  p.ImpactTimeframe,
		ImpactConfidence: p.ImpactConfidence,
		Prerequisites:    p.Prerequisites,
		Status:           domain.StatusPending,
		Priority:         priority,
		RiskLevel:        risk,
		ExpiresAt:        domain.DefaultExpiry(now),
		Version:          1,
	}

	conflicts, err := s.repo.FindOverlappingCategoryConflicts(ctx, p.UserID, p.TargetID, uuid.Nil)
	if err == nil && len(conflicts) > 0 {
		sug.Status = domain.StatusConflict
		refs := make([]domain.ConflictRef, 0, len(conflicts))
		for _, c := range conflicts {
			refs = append(refs, domain.ConflictRef{WithSuggestionID: c.ID, Type: "overlapping_target"})
		}
		sug.Conflicts = refs
	}

	if err := s.repo.Create(ctx, sug); err != nil {
		return nil, err
	}

	s.logAction(ctx, sug, auditDomain.ActionCreated, actorFor(sug), nil, sug, true, nil)
	return sug, nil
}

func (s *service) refreshExisting(ctx context.Context, existing *domain.PendingSuggestion, p CreateParams, now time.Time) (*domain.PendingSuggestion, error) {
	before := *existing

	proposedJSON, err := json.Marshal(p.ProposedChanges)
	if err != nil {
		return nil, fmt.Errorf("suggestion: marshal proposed changes: %w", err)
	}
	existing.ProposedChanges = proposedJSON
	existing.ImpactAmount = &p.ImpactAmount
	existing.ImpactPercentage = &p.ImpactPercentage
	existing.ImpactConfidence = p.ImpactConfidence
	existing.Priority = domain.ComputePriority(p.ImpactAmount, p.ImpactConfidence)
	existing.ExpiresAt = domain.DefaultExpiry(now)

	if err := s.repo.UpdateWithVersion(ctx, existing, existing.Version); err != nil {
		return nil, err
	}

	s.logAction(ctx, existing, auditDomain.ActionUpdated, actorFor(existing), &before, existing, true, nil)
	return existing, nil
}

func (s *service) ApproveSuggestion(ctx context.Context, id, userID uuid.UUID, actorID string) (*domain.PendingSuggestion, error) {
	sug, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(sug.Status, domain.StatusApproved) {
		return nil, domain.ErrInvalidTransition
	}
	if sug.IsExpired(time.Now()) {
		return nil, domain.ErrExpired
	}
	for _, p := range sug.Prerequisites {
		if !p.Satisfied {
			return nil, domain.ErrUnmetPrerequisite
		}
	}
	if len(sug.Conflicts) > 0 {
		return nil, domain.ErrUnresolvedConflict
	}

	if cooldown, ok := domain.CooldownDays[sug.Type]; ok {
		recent, err := s.repo.FindRecentByTypeAndStatus(ctx, userID, sug.Type, []domain.Status{domain.StatusApproved, domain.StatusApplied})
		if err == nil && recent != nil && time.Since(recent.UpdatedAt) < time.Duration(cooldown)*24*time.Hour {
			return nil, domain.ErrCooldownActive
		}
	}

	before := *sug
	now := time.Now()
	sug.Status = domain.StatusApproved
	sug.ApprovedAt = &now
	method := "manual"
	if domain.CanAutoApprove(valueOrZero(sug.ImpactAmount), sug.ImpactConfidence, sug.Type, sug.Prerequisites) {
		method = "auto"
	}
	sug.ApprovalMethod = &method
	approvedBy := actorID
	sug.ApprovedBy = &approvedBy

	if err := s.repo.UpdateWithVersion(ctx, sug, sug.Version); err != nil {
		return nil, err
	}
	s.logAction(ctx, sug, auditDomain.ActionApproved, auditDomain.ActorUser, &before, sug, true, nil)
	return sug, nil
}

func (s *service) RejectSuggestion(ctx context.Context, id, userID uuid.UUID, actorID string) (*domain.PendingSuggestion, error) {
	sug, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(sug.Status, domain.StatusRejected) {
		return nil, domain.ErrInvalidTransition
	}

	before := *sug
	sug.Status = domain.StatusRejected
	if err := s.repo.UpdateWithVersion(ctx, sug, sug.Version); err != nil {
		return nil, err
	}
	s.logAction(ctx, sug, auditDomain.ActionRejected, auditDomain.ActorUser, &before, sug, true, nil)
	return sug, nil
}

func (s *service) ApplySuggestion(ctx context.Context, id, userID uuid.UUID) (*domain.PendingSuggestion, error) {
	sug, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(sug.Status, domain.StatusApplied) {
		return nil, domain.ErrInvalidTransition
	}

	before := *sug
	db := s.repo.DB()
	now := time.Now()

	var result transform.Result
	var applyErr error
	txErr := db.Transaction(func(tx *gorm.DB) error {
		result, applyErr = transform.Apply(ctx, tx, s.mutator, sug.Type, sug.ProposedChanges)
		if applyErr != nil {
			return applyErr
		}

		sug.Status = domain.StatusApplied
		sug.ExecutedAt = &now
		sug.ExecutionResults = append(sug.ExecutionResults, domain.ExecutionStep{
			Step: string(sug.Type), Success: result.Success, Data: result.Data,
		})
		sug.TransactionIDs = result.TransactionIDs
		return s.repo.WithTx(tx).UpdateWithVersion(ctx, sug, sug.Version)
	})

	if txErr != nil {
		s.markFailed(ctx, sug, before, txErr)
		return nil, txErr
	}

	s.logAction(ctx, sug, auditDomain.ActionApplied, auditDomain.ActorSystem, &before, sug, true, nil)
	return sug, nil
}

func (s *service) markFailed(ctx context.Context, sug *domain.PendingSuggestion, before domain.PendingSuggestion, cause error) {
	sug.Status = domain.StatusFailed
	msg := cause.Error()
	sug.ExecutionError = &msg
	_ = s.repo.UpdateWithVersion(ctx, sug, before.Version)
	s.logAction(ctx, sug, auditDomain.ActionFailed, auditDomain.ActorSystem, &before, sug, false, cause)
}

func (s *service) RollbackSuggestion(ctx context.Context, id, userID uuid.UUID, reason string) (*domain.PendingSuggestion, error) {
	sug, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(sug.Status, domain.StatusRolledBack) {
		return nil, domain.ErrInvalidTransition
	}

	before := *sug
	db := s.repo.DB()
	now := time.Now()

	var result transform.Result
	var rollbackErr error
	txErr := db.Transaction(func(tx *gorm.DB) error {
		result, rollbackErr = transform.Rollback(ctx, tx, s.mutator, sug.Type, sug.ProposedChanges)
		if rollbackErr != nil {
			return rollbackErr
		}

		success := result.Success
		sug.Status = domain.StatusRolledBack
		sug.RolledBackAt = &now
		sug.RollbackSuccess = &success
		sug.RollbackReason = &reason
		return s.repo.WithTx(tx).UpdateWithVersion(ctx, sug, sug.Version)
	})

	if txErr != nil {
		success := false
		msg := txErr.Error()
		sug.RollbackError = &msg
		sug.RollbackSuccess = &success
		_ = s.repo.UpdateWithVersion(ctx, sug, before.Version)
		s.logAction(ctx, sug, auditDomain.ActionRolledBack, auditDomain.ActorUser, &before, sug, false, txErr)
		return nil, domain.ErrPartialRollback
	}

	s.logAction(ctx, sug, auditDomain.ActionRolledBack, auditDomain.ActorUser, &before, sug, true, nil)
	return sug, nil
}

func (s *service) GetUserSuggestions(ctx context.Context, userID uuid.UUID, statuses []domain.Status, limit int) ([]domain.PendingSuggestion, error) {
	return s.repo.FindByUserID(ctx, userID, statuses, limit)
}

func (s *service) ExpireDueSuggestions(ctx context.Context, batchSize int) (int, error) {
	now := time.Now()
	expirable, err := s.repo.FindExpirablePendingOrApproved(ctx, now, batchSize)
	if err != nil {
		return 0, err
	}
	expired := 0
	for i := range expirable {
		sug := &expirable[i]
		before := *sug
		sug.Status = domain.StatusExpired
		if err := s.repo.UpdateWithVersion(ctx, sug, sug.Version); err != nil {
			s.log.Warn("suggestion: expire failed", zap.String("id", sug.ID.String()), zap.Error(err))
			continue
		}
		s.logAction(ctx, sug, auditDomain.ActionExpired, auditDomain.ActorScheduler, &before, sug, true, nil)
		expired++
	}
	return expired, nil
}

func (s *service) logAction(ctx context.Context, sug *domain.PendingSuggestion, action auditDomain.Action, actor auditDomain.ActorType, before, after *domain.PendingSuggestion, success bool, cause error) {
	err := s.audit.LogAction(ctx, auditSvc.LogParams{
		UserID:        sug.UserID,
		SuggestionID:  &sug.ID,
		Action:        action,
		ActorType:     actor,
		PreviousState: before,
		NewState:      after,
		Success:       success,
		Err:           cause,
	})
	if err != nil {
		s.log.Warn("suggestion: audit log failed", zap.Error(err))
	}
}

func actorFor(sug *domain.PendingSuggestion) auditDomain.ActorType {
	if sug.InsightID != nil {
		return auditDomain.ActorAI
	}
	return auditDomain.ActorSystem
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
