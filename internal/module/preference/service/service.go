// Package service implements per-user suggestion learning: turning
// accept/reject feedback into adjusted type/category weights, deciding
// whether a suggestion should be shown at all, and scoring a candidate
// suggestion against a set of named rules before it is surfaced.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	auditDomain "personalfinancedss/internal/module/auditlog/domain"
	auditSvc "personalfinancedss/internal/module/auditlog/service"
	"personalfinancedss/internal/module/preference/domain"
	"personalfinancedss/internal/module/preference/repository"
	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
	suggestionRepo "personalfinancedss/internal/module/suggestion/repository"
)

// WeightAdjustDispatcher enqueues a post-commit weight recompute for a
// user. Implemented by internal/module/preference/worker.Worker; kept as
// an interface here so this package never imports the worker package
// (which imports Service to drain its own queue).
type WeightAdjustDispatcher interface {
	Enqueue(userID uuid.UUID)
}

// DecisionInput bundles what a caller must supply to record feedback on a
// shown suggestion.
type DecisionInput struct {
	SuggestionID     uuid.UUID
	UserID           uuid.UUID
	Decision         domain.Decision
	Context          domain.FeedbackContext
	ReasonPrimary    string
	ReasonsSecondary []string
	CustomReason     *string
	ModificationsOriginal interface{}
	ModificationsModified interface{}
}

// Service is the Preference & Learning contract.
type Service interface {
	// ProcessDecision runs FeedbackProcessor.processDecision: records the
	// feedback row, nudges type/category weights, updates response-time
	// and impact preferences, audits the decision, and enqueues a
	// post-commit weight recompute.
	ProcessDecision(ctx context.Context, in DecisionInput) (*domain.SuggestionFeedback, error)

	// AdjustWeights runs WeightAdjuster.adjustWeights for one user.
	AdjustWeights(ctx context.Context, userID uuid.UUID) error

	// ShouldShowSuggestion runs FrequencyController.shouldShowSuggestion.
	ShouldShowSuggestion(ctx context.Context, userID uuid.UUID, t suggestionDomain.Type) (bool, error)

	// EvaluateSuggestion runs RulesEngine.evaluateSuggestion.
	EvaluateSuggestion(ctx context.Context, userID uuid.UUID, in EvaluationInput) (RuleResult, error)

	// RecordShown increments today's per-type shown counter, the input
	// ShouldShowSuggestion's dailyShown check reads.
	RecordShown(ctx context.Context, userID uuid.UUID, t suggestionDomain.Type) error

	GetOrCreatePreference(ctx context.Context, userID uuid.UUID) (*domain.UserPreference, error)
}

type service struct {
	repo        repository.Repository
	suggestions suggestionRepo.Repository
	audit       auditSvc.Service
	dispatcher  WeightAdjustDispatcher
	log         *zap.Logger
	now         func() time.Time
}

// NewService constructs the preference learning service.
func NewService(repo repository.Repository, suggestions suggestionRepo.Repository, audit auditSvc.Service, dispatcher WeightAdjustDispatcher, log *zap.Logger) Service {
	return &service{repo: repo, suggestions: suggestions, audit: audit, dispatcher: dispatcher, log: log, now: time.Now}
}

// GetOrCreatePreference returns the user's learning state, creating the
// default row on first access.
func (s *service) GetOrCreatePreference(ctx context.Context, userID uuid.UUID) (*domain.UserPreference, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if err != domain.ErrPreferenceNotFound {
		return nil, err
	}
	p = domain.NewUserPreference(userID)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RecordShown increments the per-type counter for the current local date,
// resetting it first if the stored date has rolled over.
func (s *service) RecordShown(ctx context.Context, userID uuid.UUID, t suggestionDomain.Type) error {
	p, err := s.GetOrCreatePreference(ctx, userID)
	if err != nil {
		return err
	}
	counters, err := p.ShownCounterMap()
	if err != nil {
		return err
	}
	today := s.now().Format("2006-01-02")
	c := counters[string(t)]
	if c.Date != today {
		c = domain.ShownCounter{Date: today}
	}
	c.Count++
	counters[string(t)] = c
	if err := p.SetShownCounters(counters); err != nil {
		return err
	}
	return s.repo.UpdateWithVersion(ctx, p, p.Version)
}

func (s *service) logFeedback(ctx context.Context, userID uuid.UUID, suggestionID uuid.UUID, before, after interface{}) {
	err := s.audit.LogAction(ctx, auditSvc.LogParams{
		UserID:        userID,
		SuggestionID:  &suggestionID,
		Action:        auditDomain.ActionUserFeedback,
		ActorType:     auditDomain.ActorUser,
		PreviousState: before,
		NewState:      after,
		Success:       true,
	})
	if err != nil {
		s.log.Warn("preference: audit log failed", zap.Error(err))
	}
}
