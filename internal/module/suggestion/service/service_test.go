package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	auditDomain "personalfinancedss/internal/module/auditlog/domain"
	auditRepo "personalfinancedss/internal/module/auditlog/repository"
	auditSvc "personalfinancedss/internal/module/auditlog/service"
	"personalfinancedss/internal/module/suggestion/domain"
	"personalfinancedss/internal/module/suggestion/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, s *domain.PendingSuggestion) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PendingSuggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingSuggestion), args.Error(1)
}
func (m *mockRepository) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.PendingSuggestion, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingSuggestion), args.Error(1)
}
func (m *mockRepository) FindActiveByTypeAndTarget(ctx context.Context, userID uuid.UUID, t domain.Type, targetID uuid.UUID) (*domain.PendingSuggestion, error) {
	args := m.Called(ctx, userID, t, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingSuggestion), args.Error(1)
}
func (m *mockRepository) FindOverlappingCategoryConflicts(ctx context.Context, userID, categoryID uuid.UUID, excludeID uuid.UUID) ([]domain.PendingSuggestion, error) {
	args := m.Called(ctx, userID, categoryID, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingSuggestion), args.Error(1)
}
func (m *mockRepository) FindRecentByTypeAndStatus(ctx context.Context, userID uuid.UUID, t domain.Type, statuses []domain.Status) (*domain.PendingSuggestion, error) {
	args := m.Called(ctx, userID, t, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingSuggestion), args.Error(1)
}
func (m *mockRepository) FindByUserID(ctx context.Context, userID uuid.UUID, statuses []domain.Status, limit int) ([]domain.PendingSuggestion, error) {
	args := m.Called(ctx, userID, statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingSuggestion), args.Error(1)
}
func (m *mockRepository) Update(ctx context.Context, s *domain.PendingSuggestion) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockRepository) UpdateWithVersion(ctx context.Context, s *domain.PendingSuggestion, expectedVersion int) error {
	return m.Called(ctx, s, expectedVersion).Error(0)
}
func (m *mockRepository) FindExpirablePendingOrApproved(ctx context.Context, now time.Time, limit int) ([]domain.PendingSuggestion, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingSuggestion), args.Error(1)
}
func (m *mockRepository) WithTx(tx *gorm.DB) repository.Repository {
	args := m.Called(tx)
	return args.Get(0).(repository.Repository)
}
func (m *mockRepository) DB() *gorm.DB {
	args := m.Called()
	return args.Get(0).(*gorm.DB)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogAction(ctx context.Context, p auditSvc.LogParams) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockAuditService) GetSuggestionAuditTrail(ctx context.Context, id uuid.UUID, limit int) ([]auditDomain.Entry, error) {
	return nil, nil
}
func (m *mockAuditService) GetUserActivity(ctx context.Context, userID uuid.UUID, days int) ([]auditRepo.ActivitySummary, error) {
	return nil, nil
}
func (m *mockAuditService) ExportAuditLog(ctx context.Context, userID uuid.UUID, format auditSvc.ExportFormat, start, end time.Time, actions []auditDomain.Action) ([]byte, error) {
	return nil, nil
}
func (m *mockAuditService) CleanOldLogs(ctx context.Context, daysToKeep int) (int64, error) {
	return 0, nil
}

func TestApproveSuggestion_RejectsWhenExpired(t *testing.T) {
	repo := new(mockRepository)
	svc := &service{repo: repo, log: zap.NewNop()}

	userID := uuid.New()
	id := uuid.New()
	sug := &domain.PendingSuggestion{
		ID: id, UserID: userID, Status: domain.StatusPending,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	repo.On("FindByIDAndUserID", mock.Anything, id, userID).Return(sug, nil)

	_, err := svc.ApproveSuggestion(context.Background(), id, userID, "user-1")
	require.ErrorIs(t, err, domain.ErrExpired)
}

func TestApproveSuggestion_RejectsInvalidTransition(t *testing.T) {
	repo := new(mockRepository)
	svc := &service{repo: repo, log: zap.NewNop()}

	userID := uuid.New()
	id := uuid.New()
	sug := &domain.PendingSuggestion{
		ID: id, UserID: userID, Status: domain.StatusApplied,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	repo.On("FindByIDAndUserID", mock.Anything, id, userID).Return(sug, nil)

	_, err := svc.ApproveSuggestion(context.Background(), id, userID, "user-1")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestApproveSuggestion_RejectsUnmetPrerequisite(t *testing.T) {
	repo := new(mockRepository)
	svc := &service{repo: repo, log: zap.NewNop()}

	userID := uuid.New()
	id := uuid.New()
	sug := &domain.PendingSuggestion{
		ID: id, UserID: userID, Status: domain.StatusPending,
		ExpiresAt:     time.Now().Add(time.Hour),
		Prerequisites: []domain.Prerequisite{{Type: "sufficient_balance", Satisfied: false}},
	}
	repo.On("FindByIDAndUserID", mock.Anything, id, userID).Return(sug, nil)

	_, err := svc.ApproveSuggestion(context.Background(), id, userID, "user-1")
	require.ErrorIs(t, err, domain.ErrUnmetPrerequisite)
}

func TestExpireDueSuggestions_TransitionsEachToExpired(t *testing.T) {
	repo := new(mockRepository)
	audit := new(mockAuditService)
	svc := &service{repo: repo, audit: audit, log: zap.NewNop()}
	audit.On("LogAction", mock.Anything, mock.Anything).Return(nil)

	now := time.Now()
	due := []domain.PendingSuggestion{
		{ID: uuid.New(), Status: domain.StatusPending, ExpiresAt: now.Add(-time.Hour), Version: 1},
		{ID: uuid.New(), Status: domain.StatusApproved, ExpiresAt: now.Add(-time.Minute), Version: 2},
	}
	repo.On("FindExpirablePendingOrApproved", mock.Anything, mock.Anything, 10).Return(due, nil)
	repo.On("UpdateWithVersion", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	count, err := svc.ExpireDueSuggestions(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
