package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"personalfinancedss/internal/analysis/window"
	budgetDomain "personalfinancedss/internal/module/cashflow/budget/domain"
	"personalfinancedss/internal/module/cashflow/budget/repository"
	goalDomain "personalfinancedss/internal/module/cashflow/goal/domain"
	goalRepository "personalfinancedss/internal/module/cashflow/goal/repository"
	txnDomain "personalfinancedss/internal/module/cashflow/transaction/domain"
	"personalfinancedss/internal/module/cashflow/transaction/dto"
	txnRepository "personalfinancedss/internal/module/cashflow/transaction/repository"
)

type mockTxnRepo struct{ mock.Mock }

func (m *mockTxnRepo) Create(ctx context.Context, t *txnDomain.Transaction) error { return nil }
func (m *mockTxnRepo) GetByID(ctx context.Context, id uuid.UUID) (*txnDomain.Transaction, error) {
	return nil, nil
}
func (m *mockTxnRepo) GetByUserID(ctx context.Context, id, userID uuid.UUID) (*txnDomain.Transaction, error) {
	return nil, nil
}
func (m *mockTxnRepo) GetByExternalID(ctx context.Context, userID uuid.UUID, externalID string) (*txnDomain.Transaction, error) {
	return nil, nil
}
func (m *mockTxnRepo) List(ctx context.Context, userID uuid.UUID, query dto.ListTransactionsQuery) ([]*txnDomain.Transaction, int64, error) {
	return nil, 0, nil
}
func (m *mockTxnRepo) Update(ctx context.Context, t *txnDomain.Transaction) error { return nil }
func (m *mockTxnRepo) UpdateColumns(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	return nil
}
func (m *mockTxnRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (m *mockTxnRepo) GetAccountBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return 0, nil
}
func (m *mockTxnRepo) GetTransactionsByDateRange(ctx context.Context, userID uuid.UUID, accountID *uuid.UUID, startDate, endDate time.Time) ([]*txnDomain.Transaction, error) {
	args := m.Called(ctx, userID, accountID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*txnDomain.Transaction), args.Error(1)
}
func (m *mockTxnRepo) GetSummary(ctx context.Context, userID uuid.UUID, query dto.ListTransactionsQuery) (*dto.TransactionSummary, error) {
	return nil, nil
}
func (m *mockTxnRepo) GetRecurringTransactions(ctx context.Context, userID uuid.UUID) ([]*txnDomain.Transaction, error) {
	return nil, nil
}

var _ txnRepository.Repository = (*mockTxnRepo)(nil)

func debitTxn(categoryID uuid.UUID, amount int64, date time.Time) *txnDomain.Transaction {
	return &txnDomain.Transaction{
		ID:          uuid.New(),
		Direction:   txnDomain.DirectionDebit,
		Amount:      amount,
		BookingDate: date,
		Classification: &txnDomain.Classification{
			UserCategoryID: categoryID.String(),
		},
	}
}

func TestAggregationEngine_EmitsDeltaAboveThreshold(t *testing.T) {
	txns := new(mockTxnRepo)
	userID := uuid.New()
	categoryID := uuid.New()
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

	current := window.MonthBounds(now)
	previous := window.MonthBounds(current.Start.AddDate(0, -1, 1))

	txns.On("GetTransactionsByDateRange", mock.Anything, userID, (*uuid.UUID)(nil), current.Start, current.End).
		Return([]*txnDomain.Transaction{debitTxn(categoryID, 200000, current.Start.AddDate(0, 0, 1))}, nil)
	txns.On("GetTransactionsByDateRange", mock.Anything, userID, (*uuid.UUID)(nil), previous.Start, previous.End).
		Return([]*txnDomain.Transaction{debitTxn(categoryID, 100000, previous.Start.AddDate(0, 0, 1))}, nil)

	eng := NewAggregationEngine(txns, zap.NewNop())
	signals, err := eng.Run(context.Background(), userID, now)
	require.NoError(t, err)

	var sawDelta bool
	for _, s := range signals {
		if s.Type == "category_delta" {
			sawDelta = true
			assert.Equal(t, float64(200000), s.ValueCurrent)
		}
	}
	assert.True(t, sawDelta, "expected a category_delta signal for a 100%% increase")
}

func TestPatternEngine_EmitsClusterForFixedAmountRecurrence(t *testing.T) {
	txns := new(mockTxnRepo)
	userID := uuid.New()
	categoryID := uuid.New()
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	bounds := window.RollingWindow(now, lookbackDays)

	points := []*txnDomain.Transaction{
		debitTxn(categoryID, 50000, bounds.Start.AddDate(0, 0, 5)),
		debitTxn(categoryID, 50000, bounds.Start.AddDate(0, 0, 35)),
		debitTxn(categoryID, 50000, bounds.Start.AddDate(0, 0, 65)),
	}
	txns.On("GetTransactionsByDateRange", mock.Anything, userID, (*uuid.UUID)(nil), bounds.Start, bounds.End).
		Return(points, nil)

	eng := NewPatternEngine(txns, zap.NewNop())
	signals, err := eng.Run(context.Background(), userID, now)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.EqualValues(t, "spending_cluster", signals[0].Type)
}

type mockBudgetRepo struct{ mock.Mock }

func (m *mockBudgetRepo) Create(ctx context.Context, b *budgetDomain.Budget) error { return nil }
func (m *mockBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*budgetDomain.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*budgetDomain.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]budgetDomain.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) FindByUserIDPaginated(ctx context.Context, userID uuid.UUID, params repository.PaginationParams) (*repository.PaginatedResult, error) {
	return nil, nil
}
func (m *mockBudgetRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]budgetDomain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budgetDomain.Budget), args.Error(1)
}
func (m *mockBudgetRepo) FindByUserIDAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]budgetDomain.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) FindByConstraintID(ctx context.Context, userID, constraintID uuid.UUID) ([]budgetDomain.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) FindByPeriod(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]budgetDomain.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) Update(ctx context.Context, b *budgetDomain.Budget) error { return nil }
func (m *mockBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (m *mockBudgetRepo) DeleteByIDAndUserID(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}
func (m *mockBudgetRepo) UpdateSpentAmount(ctx context.Context, id uuid.UUID, spentAmount float64) error {
	return nil
}
func (m *mockBudgetRepo) FindExpiredBudgets(ctx context.Context) ([]budgetDomain.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) FindBudgetsNeedingRecalculation(ctx context.Context, threshold time.Duration) ([]budgetDomain.Budget, error) {
	return nil, nil
}
func (m *mockBudgetRepo) ExistsByUserIDAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	return false, nil
}

var _ repository.Repository = (*mockBudgetRepo)(nil)

type mockGoalRepo struct{ mock.Mock }

func (m *mockGoalRepo) Create(ctx context.Context, g *goalDomain.Goal) error { return nil }
func (m *mockGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*goalDomain.Goal, error) {
	return nil, nil
}
func (m *mockGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]goalDomain.Goal, error) {
	return nil, nil
}
func (m *mockGoalRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]goalDomain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]goalDomain.Goal), args.Error(1)
}
func (m *mockGoalRepo) FindByCategory(ctx context.Context, userID uuid.UUID, category goalDomain.GoalCategory) ([]goalDomain.Goal, error) {
	return nil, nil
}
func (m *mockGoalRepo) FindByStatus(ctx context.Context, userID uuid.UUID, status goalDomain.GoalStatus) ([]goalDomain.Goal, error) {
	return nil, nil
}
func (m *mockGoalRepo) FindCompletedGoals(ctx context.Context, userID uuid.UUID) ([]goalDomain.Goal, error) {
	return nil, nil
}
func (m *mockGoalRepo) FindOverdueGoals(ctx context.Context, userID uuid.UUID) ([]goalDomain.Goal, error) {
	return nil, nil
}
func (m *mockGoalRepo) Update(ctx context.Context, g *goalDomain.Goal) error { return nil }
func (m *mockGoalRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (m *mockGoalRepo) AddContribution(ctx context.Context, id uuid.UUID, amount float64) error {
	return nil
}
func (m *mockGoalRepo) CreateContribution(ctx context.Context, c *goalDomain.GoalContribution) error {
	return nil
}
func (m *mockGoalRepo) FindContributionsByGoalID(ctx context.Context, goalID uuid.UUID) ([]goalDomain.GoalContribution, error) {
	return nil, nil
}
func (m *mockGoalRepo) FindContributionsByAccountID(ctx context.Context, accountID uuid.UUID) ([]goalDomain.GoalContribution, error) {
	return nil, nil
}
func (m *mockGoalRepo) GetNetContributionsByAccountID(ctx context.Context, accountID uuid.UUID) (float64, error) {
	return 0, nil
}
func (m *mockGoalRepo) GetNetContributionsByGoalID(ctx context.Context, goalID uuid.UUID) (float64, error) {
	return 0, nil
}
func (m *mockGoalRepo) GetContributionsByDateRange(ctx context.Context, goalID uuid.UUID, startDate, endDate time.Time) ([]goalDomain.GoalContribution, error) {
	return nil, nil
}

var _ goalRepository.Repository = (*mockGoalRepo)(nil)

func TestRiskEngine_FlagsBudgetDriftAndProposesSuggestion(t *testing.T) {
	budgets := new(mockBudgetRepo)
	goals := new(mockGoalRepo)
	userID := uuid.New()
	now := time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC) // day 3 of the month

	b := budgetDomain.Budget{
		ID: uuid.New(), UserID: userID, Name: "Groceries",
		Amount: 1_000_000, SpentAmount: 800_000,
		Period: budgetDomain.BudgetPeriodMonthly, StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	budgets.On("FindActiveByUserID", mock.Anything, userID).Return([]budgetDomain.Budget{b}, nil)
	goals.On("FindActiveByUserID", mock.Anything, userID).Return([]goalDomain.Goal{}, nil)

	eng := NewRiskEngine(budgets, goals, time.Sunday, zap.NewNop())
	signals, candidates, err := eng.Run(context.Background(), userID, now)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.EqualValues(t, "budget_drift", signals[0].Type)
	require.Len(t, candidates, 1)
	assert.Equal(t, b.ID, candidates[0].TargetID)
}

func TestRiskEngine_NoFindingsWhenOnPace(t *testing.T) {
	budgets := new(mockBudgetRepo)
	goals := new(mockGoalRepo)
	userID := uuid.New()
	now := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	b := budgetDomain.Budget{
		ID: uuid.New(), UserID: userID, Name: "Groceries",
		Amount: 1_000_000, SpentAmount: 480_000,
		Period: budgetDomain.BudgetPeriodMonthly, StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	budgets.On("FindActiveByUserID", mock.Anything, userID).Return([]budgetDomain.Budget{b}, nil)
	goals.On("FindActiveByUserID", mock.Anything, userID).Return([]goalDomain.Goal{}, nil)

	eng := NewRiskEngine(budgets, goals, time.Sunday, zap.NewNop())
	signals, candidates, err := eng.Run(context.Background(), userID, now)
	require.NoError(t, err)
	assert.Empty(t, signals)
	assert.Empty(t, candidates)
}
