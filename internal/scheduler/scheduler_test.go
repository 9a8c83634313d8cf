package scheduler

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

	auditlogDomain "personalfinancedss/internal/module/auditlog/domain"
	auditlogRepo "personalfinancedss/internal/module/auditlog/repository"
	auditlogService "personalfinancedss/internal/module/auditlog/service"
	signalDomain "personalfinancedss/internal/module/signal/domain"
	signalRepo "personalfinancedss/internal/module/signal/repository"
	signalService "personalfinancedss/internal/module/signal/service"
	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
	suggestionService "personalfinancedss/internal/module/suggestion/service"
	userDomain "personalfinancedss/internal/module/identify/user/domain"
	userRepository "personalfinancedss/internal/module/identify/user/repository"
	weeklyDomain "personalfinancedss/internal/module/weekly/domain"
	weeklyRepository "personalfinancedss/internal/module/weekly/repository"
	weeklyService "personalfinancedss/internal/module/weekly/service"
	"personalfinancedss/internal/config"
	"personalfinancedss/internal/shared"
)

var (
	_ userRepository.Repository    = (*mockUserRepo)(nil)
	_ weeklyService.Service        = (*mockWeeklyService)(nil)
	_ weeklyRepository.Repository  = (*mockWeeklyRepo)(nil)
	_ suggestionService.Service    = (*mockSuggestionService)(nil)
	_ auditlogService.Service      = (*mockAuditlogService)(nil)
	_ signalService.Service        = (*mockSignalService)(nil)
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *userDomain.User) error { return nil }
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*userDomain.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return nil, nil
}
func (m *mockUserRepo) List(ctx context.Context, f userDomain.ListUsersFilter, p shared.Pagination) (shared.Page[userDomain.User], error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(shared.Page[userDomain.User]), args.Error(1)
}
func (m *mockUserRepo) Count(ctx context.Context, f userDomain.ListUsersFilter) (int64, error) {
	return 0, nil
}
func (m *mockUserRepo) Update(ctx context.Context, u *userDomain.User) error { return nil }
func (m *mockUserRepo) UpdateColumns(ctx context.Context, id string, cols map[string]any) error {
	return nil
}
func (m *mockUserRepo) SoftDelete(ctx context.Context, id string) error { return nil }
func (m *mockUserRepo) Restore(ctx context.Context, id string) error    { return nil }
func (m *mockUserRepo) HardDelete(ctx context.Context, id string) error { return nil }
func (m *mockUserRepo) MarkEmailVerified(ctx context.Context, id string, at time.Time) error {
	return nil
}
func (m *mockUserRepo) IncLoginAttempts(ctx context.Context, id string) error   { return nil }
func (m *mockUserRepo) ResetLoginAttempts(ctx context.Context, id string) error { return nil }
func (m *mockUserRepo) SetLockedUntil(ctx context.Context, id string, until *time.Time) error {
	return nil
}
func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time, ip *string) error {
	return nil
}

type mockWeeklyService struct{ mock.Mock }

func (m *mockWeeklyService) GenerateWeeklySummary(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*weeklyDomain.WeeklySummary, *weeklyDomain.WeeklyMetric, error) {
	args := m.Called(ctx, userID, weekStart)
	var s *weeklyDomain.WeeklySummary
	var met *weeklyDomain.WeeklyMetric
	if args.Get(0) != nil {
		s = args.Get(0).(*weeklyDomain.WeeklySummary)
	}
	if args.Get(1) != nil {
		met = args.Get(1).(*weeklyDomain.WeeklyMetric)
	}
	return s, met, args.Error(2)
}
func (m *mockWeeklyService) GetSummary(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*weeklyDomain.WeeklySummary, *weeklyDomain.WeeklyMetric, error) {
	return nil, nil, nil
}

type mockWeeklyRepo struct{ mock.Mock }

func (m *mockWeeklyRepo) FindMetricByUserAndWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*weeklyDomain.WeeklyMetric, error) {
	args := m.Called(ctx, userID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weeklyDomain.WeeklyMetric), args.Error(1)
}
func (m *mockWeeklyRepo) FindRecentMetrics(ctx context.Context, userID uuid.UUID, beforeWeekStart time.Time, limit int) ([]weeklyDomain.WeeklyMetric, error) {
	return nil, nil
}
func (m *mockWeeklyRepo) UpsertMetric(ctx context.Context, met *weeklyDomain.WeeklyMetric) error {
	return nil
}
func (m *mockWeeklyRepo) FindSummaryByMetricID(ctx context.Context, metricID uuid.UUID) (*weeklyDomain.WeeklySummary, error) {
	return nil, nil
}
func (m *mockWeeklyRepo) CreateSummary(ctx context.Context, s *weeklyDomain.WeeklySummary) error {
	return nil
}
func (m *mockWeeklyRepo) DeleteExpiredSummaries(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockWeeklyRepo) WithTx(tx *gorm.DB) weeklyRepository.Repository { return m }
func (m *mockWeeklyRepo) DB() *gorm.DB                                   { return nil }

type mockSuggestionService struct{ mock.Mock }

func (m *mockSuggestionService) CreateSuggestion(ctx context.Context, p suggestionService.CreateParams) (*suggestionDomain.PendingSuggestion, error) {
	return nil, nil
}
func (m *mockSuggestionService) ApproveSuggestion(ctx context.Context, id, userID uuid.UUID, actorID string) (*suggestionDomain.PendingSuggestion, error) {
	return nil, nil
}
func (m *mockSuggestionService) RejectSuggestion(ctx context.Context, id, userID uuid.UUID, actorID string) (*suggestionDomain.PendingSuggestion, error) {
	return nil, nil
}
func (m *mockSuggestionService) ApplySuggestion(ctx context.Context, id, userID uuid.UUID) (*suggestionDomain.PendingSuggestion, error) {
	return nil, nil
}
func (m *mockSuggestionService) RollbackSuggestion(ctx context.Context, id, userID uuid.UUID, reason string) (*suggestionDomain.PendingSuggestion, error) {
	return nil, nil
}
func (m *mockSuggestionService) GetUserSuggestions(ctx context.Context, userID uuid.UUID, statuses []suggestionDomain.Status, limit int) ([]suggestionDomain.PendingSuggestion, error) {
	return nil, nil
}
func (m *mockSuggestionService) ExpireDueSuggestions(ctx context.Context, batchSize int) (int, error) {
	args := m.Called(ctx, batchSize)
	return args.Int(0), args.Error(1)
}

type mockAuditlogService struct{ mock.Mock }

func (m *mockAuditlogService) LogAction(ctx context.Context, p auditlogService.LogParams) error {
	return nil
}
func (m *mockAuditlogService) GetSuggestionAuditTrail(ctx context.Context, suggestionID uuid.UUID, limit int) ([]auditlogDomain.Entry, error) {
	return nil, nil
}
func (m *mockAuditlogService) GetUserActivity(ctx context.Context, userID uuid.UUID, days int) ([]auditlogRepo.ActivitySummary, error) {
	return nil, nil
}
func (m *mockAuditlogService) ExportAuditLog(ctx context.Context, userID uuid.UUID, format auditlogService.ExportFormat, start, end time.Time, actions []auditlogDomain.Action) ([]byte, error) {
	return nil, nil
}
func (m *mockAuditlogService) CleanOldLogs(ctx context.Context, daysToKeep int) (int64, error) {
	args := m.Called(ctx, daysToKeep)
	return args.Get(0).(int64), args.Error(1)
}

type mockSignalService struct{ mock.Mock }

func (m *mockSignalService) StoreSignal(ctx context.Context, signal *signalDomain.Signal) error {
	return nil
}
func (m *mockSignalService) StoreSignals(ctx context.Context, signals []*signalDomain.Signal) ([]*signalDomain.Signal, error) {
	return nil, nil
}
func (m *mockSignalService) GetUserSignals(ctx context.Context, userID uuid.UUID, filter signalRepo.ListFilter) ([]signalDomain.Signal, error) {
	return nil, nil
}
func (m *mockSignalService) GetSignalByID(ctx context.Context, userID, id uuid.UUID) (*signalDomain.Signal, error) {
	return nil, nil
}
func (m *mockSignalService) UpdateSignalStatus(ctx context.Context, userID, id uuid.UUID, status signalDomain.Status) error {
	return nil
}
func (m *mockSignalService) GetRelatedSignals(ctx context.Context, id uuid.UUID, limit int) ([]signalDomain.Signal, error) {
	return nil, nil
}
func (m *mockSignalService) ArchiveOldSignals(ctx context.Context, daysOld int) (int64, error) {
	args := m.Called(ctx, daysOld)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockSignalService) GetSignalStats(ctx context.Context, userID uuid.UUID, days int) (signalRepo.StatsWindow, error) {
	return signalRepo.StatsWindow{}, nil
}

func newTestScheduler(t *testing.T) (*Scheduler, *mockUserRepo, *mockWeeklyService, *mockWeeklyRepo, *mockSuggestionService, *mockAuditlogService, *mockSignalService) {
	users := &mockUserRepo{}
	weekly := &mockWeeklyService{}
	weeklyRepo := &mockWeeklyRepo{}
	suggestion := &mockSuggestionService{}
	auditlog := &mockAuditlogService{}
	signal := &mockSignalService{}

	s := New(config.SchedulerConfig{Enabled: true, BatchSize: 10, RetryLookbackD: 7}, users, weekly, weeklyRepo, suggestion, auditlog, signal, zap.NewNop())
	s.now = func() time.Time { return time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC) }
	return s, users, weekly, weeklyRepo, suggestion, auditlog, signal
}

func TestRunWeeklySummaries_PaginatesAllActiveUsers(t *testing.T) {
	s, users, weekly, _, _, _, _ := newTestScheduler(t)

	u1, u2 := userDomain.User{ID: uuid.New()}, userDomain.User{ID: uuid.New()}
	users.On("List", mock.Anything, mock.Anything, mock.MatchedBy(func(p shared.Pagination) bool { return p.Page == 1 })).
		Return(shared.Page[userDomain.User]{Data: []userDomain.User{u1}, TotalPages: 2}, nil)
	users.On("List", mock.Anything, mock.Anything, mock.MatchedBy(func(p shared.Pagination) bool { return p.Page == 2 })).
		Return(shared.Page[userDomain.User]{Data: []userDomain.User{u2}, TotalPages: 2}, nil)

	weekly.On("GenerateWeeklySummary", mock.Anything, u1.ID, mock.Anything).Return(&weeklyDomain.WeeklySummary{}, &weeklyDomain.WeeklyMetric{}, nil)
	weekly.On("GenerateWeeklySummary", mock.Anything, u2.ID, mock.Anything).Return(&weeklyDomain.WeeklySummary{}, &weeklyDomain.WeeklyMetric{}, nil)

	s.runWeeklySummaries()

	weekly.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestRunWeeklySummaries_ContinuesPastPerUserFailure(t *testing.T) {
	s, users, weekly, _, _, _, _ := newTestScheduler(t)

	u1, u2 := userDomain.User{ID: uuid.New()}, userDomain.User{ID: uuid.New()}
	users.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return(shared.Page[userDomain.User]{Data: []userDomain.User{u1, u2}, TotalPages: 1}, nil)

	weekly.On("GenerateWeeklySummary", mock.Anything, u1.ID, mock.Anything).Return(nil, nil, assert.AnError)
	weekly.On("GenerateWeeklySummary", mock.Anything, u2.ID, mock.Anything).Return(&weeklyDomain.WeeklySummary{}, &weeklyDomain.WeeklyMetric{}, nil)

	require.NotPanics(t, s.runWeeklySummaries)
	weekly.AssertExpectations(t)
}

func TestRunExpirySweep_RunsAllStagesEvenIfOneFails(t *testing.T) {
	s, _, _, weeklyRepo, suggestion, auditlog, signal := newTestScheduler(t)

	suggestion.On("ExpireDueSuggestions", mock.Anything, 500).Return(0, assert.AnError)
	signal.On("ArchiveOldSignals", mock.Anything, summaryRetentionDays).Return(int64(3), nil)
	auditlog.On("CleanOldLogs", mock.Anything, summaryRetentionDays).Return(int64(5), nil)
	weeklyRepo.On("DeleteExpiredSummaries", mock.Anything, mock.Anything).Return(int64(2), nil)

	require.NotPanics(t, s.runExpirySweep)

	suggestion.AssertExpectations(t)
	signal.AssertExpectations(t)
	auditlog.AssertExpectations(t)
	weeklyRepo.AssertExpectations(t)
}

func TestMissingWeekStarts_CoversLookbackWindowOnMondayBoundaries(t *testing.T) {
	now := time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC) // a Monday
	weeks := missingWeekStarts(now, 7)

	assert.Contains(t, weeks, time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, weeks, time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC))
	assert.Len(t, weeks, 2)
}

func TestRunRetryFailed_BackfillsOnlyMissingWeeks(t *testing.T) {
	s, users, weekly, weeklyRepo, _, _, _ := newTestScheduler(t)

	uid := uuid.New()
	users.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return(shared.Page[userDomain.User]{Data: []userDomain.User{{ID: uid}}, TotalPages: 1}, nil)

	monday := time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC)
	prevMonday := time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC)

	weeklyRepo.On("FindMetricByUserAndWeek", mock.Anything, uid, monday).Return(&weeklyDomain.WeeklyMetric{}, nil)
	weeklyRepo.On("FindMetricByUserAndWeek", mock.Anything, uid, prevMonday).Return(nil, weeklyDomain.ErrMetricNotFound)
	weekly.On("GenerateWeeklySummary", mock.Anything, uid, prevMonday).Return(&weeklyDomain.WeeklySummary{}, &weeklyDomain.WeeklyMetric{}, nil)

	s.runRetryFailed()

	weekly.AssertExpectations(t)
	weeklyRepo.AssertExpectations(t)
	weekly.AssertNotCalled(t, "GenerateWeeklySummary", mock.Anything, uid, monday)
}
