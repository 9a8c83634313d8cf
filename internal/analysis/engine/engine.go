// Package engine composes the calculators (internal/analysis/calc) and
// detectors (internal/analysis/detect) over live repository data into the
// signals the suggestion lifecycle consumes. Each engine is read-only: it
// never mutates a budget, goal, or transaction, only emits findings.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"personalfinancedss/internal/analysis/calc"
	"personalfinancedss/internal/analysis/detect"
	"personalfinancedss/internal/analysis/window"

	budgetDomain "personalfinancedss/internal/module/cashflow/budget/domain"
	budgetRepo "personalfinancedss/internal/module/cashflow/budget/repository"
	goalRepo "personalfinancedss/internal/module/cashflow/goal/repository"
	txnDomain "personalfinancedss/internal/module/cashflow/transaction/domain"
	txnRepo "personalfinancedss/internal/module/cashflow/transaction/repository"

	signalDomain "personalfinancedss/internal/module/signal/domain"
	signalService "personalfinancedss/internal/module/signal/service"

	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
	suggestionService "personalfinancedss/internal/module/suggestion/service"
	"personalfinancedss/internal/module/suggestion/transform"
)

// categoryDeltaThreshold is the minimum absolute percentage move worth
// surfacing as a category_delta signal.
const categoryDeltaThreshold = 20.0

// AggregationEngine compares this period's category spending against the
// prior comparable period.
type AggregationEngine struct {
	txns txnRepo.Repository
	log  *zap.Logger
}

// NewAggregationEngine constructs the aggregation engine.
func NewAggregationEngine(txns txnRepo.Repository, log *zap.Logger) *AggregationEngine {
	return &AggregationEngine{txns: txns, log: log}
}

// Run computes category_aggregation and category_delta signals for the
// month containing now, compared against the previous month.
func (e *AggregationEngine) Run(ctx context.Context, userID uuid.UUID, now time.Time) ([]*signalDomain.Signal, error) {
	current := window.MonthBounds(now)
	previous := window.MonthBounds(current.Start.AddDate(0, -1, 1))

	currentTotals, err := e.categoryTotals(ctx, userID, current.Start, current.End)
	if err != nil {
		return nil, err
	}
	previousTotals, err := e.categoryTotals(ctx, userID, previous.Start, previous.End)
	if err != nil {
		return nil, err
	}

	var signals []*signalDomain.Signal
	for categoryID, currentAmount := range currentTotals {
		cid := categoryID
		previousAmount := previousTotals[categoryID]

		signals = append(signals, signalDomain.NewSignal(
			userID, signalDomain.TypeCategoryAggregation,
			"Category spending total", &cid,
			signalDomain.SignalValue{Current: currentAmount},
			signalDomain.SignalPeriod{StartDate: current.Start, EndDate: current.End},
			100, 3, now,
		))

		d := calc.Delta(currentAmount, previousAmount)
		if d.Magnitude >= categoryDeltaThreshold {
			percentage := d.Percentage
			deltaAbs := d.Absolute
			priority := 2
			if d.Magnitude >= 50 {
				priority = 1
			}
			signals = append(signals, signalDomain.NewSignal(
				userID, signalDomain.TypeCategoryDelta,
				"Category spending shifted", &cid,
				signalDomain.SignalValue{Current: currentAmount, Previous: &previousAmount, Delta: &deltaAbs, Percentage: &percentage},
				signalDomain.SignalPeriod{
					StartDate: current.Start, EndDate: current.End,
					ComparisonStart: &previous.Start, ComparisonEnd: &previous.End,
				},
				90, priority, now,
			))
		}
	}
	return signals, nil
}

func (e *AggregationEngine) categoryTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[uuid.UUID]float64, error) {
	txns, err := e.txns.GetTransactionsByDateRange(ctx, userID, nil, start, end)
	if err != nil {
		return nil, err
	}
	totals := make(map[uuid.UUID]float64)
	for _, t := range txns {
		if t.Direction != txnDomain.DirectionDebit {
			continue
		}
		catID := categoryOf(t)
		if catID == uuid.Nil {
			continue
		}
		totals[catID] += float64(t.Amount)
	}
	return totals, nil
}

func categoryOf(t *txnDomain.Transaction) uuid.UUID {
	if t.Classification == nil || t.Classification.UserCategoryID == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(t.Classification.UserCategoryID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// PatternEngine clusters recent transaction history to surface recurring
// spending patterns.
type PatternEngine struct {
	txns txnRepo.Repository
	log  *zap.Logger
}

// NewPatternEngine constructs the pattern engine.
func NewPatternEngine(txns txnRepo.Repository, log *zap.Logger) *PatternEngine {
	return &PatternEngine{txns: txns, log: log}
}

// lookbackDays is how far back PatternEngine scans for clusters.
const lookbackDays = 90

// clusterWindow is the grouping tolerance passed to calc.ClusterTransactions.
const clusterWindow = 35 * 24 * time.Hour

// Run emits a spending_cluster signal per recurring pattern detected over
// the trailing lookback window.
func (e *PatternEngine) Run(ctx context.Context, userID uuid.UUID, now time.Time) ([]*signalDomain.Signal, error) {
	bounds := window.RollingWindow(now, lookbackDays)
	txns, err := e.txns.GetTransactionsByDateRange(ctx, userID, nil, bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]calc.ClusterPoint)
	for _, t := range txns {
		if t.Direction != txnDomain.DirectionDebit {
			continue
		}
		catID := categoryOf(t)
		byCategory[catID] = append(byCategory[catID], calc.ClusterPoint{
			Date: t.BookingDate, Amount: float64(t.Amount),
		})
	}

	var signals []*signalDomain.Signal
	for categoryID, points := range byCategory {
		clusters := calc.ClusterTransactions(points, clusterWindow, 3)
		for _, c := range clusters {
			if c.Pattern != calc.PatternFixedAmount && c.Pattern != calc.PatternPeriodic {
				continue
			}
			cid := categoryID
			confidence := 70
			if c.Pattern == calc.PatternFixedAmount {
				confidence = 85
			}
			signals = append(signals, signalDomain.NewSignal(
				userID, signalDomain.TypeSpendingCluster,
				"Recurring spending pattern detected", &cid,
				signalDomain.SignalValue{Current: c.Mean},
				signalDomain.SignalPeriod{StartDate: bounds.Start, EndDate: bounds.End},
				confidence, 3, now,
			))
		}
	}
	return signals, nil
}

// RiskEngine evaluates active budgets and goals against detect's threshold
// rules, the source of budget_drift / goal_underfunding signals and the
// suggestions that follow from them.
type RiskEngine struct {
	budgets      budgetRepo.Repository
	goals        goalRepo.Repository
	weekStartsOn time.Weekday
	log          *zap.Logger
}

// NewRiskEngine constructs the risk engine. weekStartsOn matches the
// analysis config's week boundary, used to bound weekly budgets.
func NewRiskEngine(budgets budgetRepo.Repository, goals goalRepo.Repository, weekStartsOn time.Weekday, log *zap.Logger) *RiskEngine {
	return &RiskEngine{budgets: budgets, goals: goals, weekStartsOn: weekStartsOn, log: log}
}

// Run evaluates every active budget and goal for the user, returning one
// signal per at-risk entity plus the suggestion candidates high-severity
// findings warrant (consumed by the suggestion lifecycle's CreateSuggestion).
func (e *RiskEngine) Run(ctx context.Context, userID uuid.UUID, now time.Time) ([]*signalDomain.Signal, []suggestionService.CreateParams, error) {
	var signals []*signalDomain.Signal
	var candidates []suggestionService.CreateParams

	budgets, err := e.budgets.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	for i := range budgets {
		b := &budgets[i]
		flex := detect.FlexibilityFlexible
		if b.Period == budgetDomain.BudgetPeriodDaily || b.Period == budgetDomain.BudgetPeriodWeekly {
			flex = detect.FlexibilityStrict
		}
		result := detect.BudgetDriftDetector(detect.BudgetDriftInput{
			PeriodKind:   string(b.Period),
			WeekStartsOn: e.weekStartsOn,
			Now:          now,
			BudgetAmount: b.Amount,
			Flexibility:  flex,
			CurrentSpent: b.SpentAmount,
		})
		if result.Severity == "" {
			continue
		}
		catID := b.CategoryID
		pct := result.DriftPercentage
		signals = append(signals, signalDomain.NewSignal(
			userID, signalDomain.TypeBudgetDrift,
			"Budget drifting off pace: "+b.Name, catID,
			signalDomain.SignalValue{Current: result.ProjectedTotal, Percentage: &pct},
			signalDomain.SignalPeriod{StartDate: result.PeriodStart, EndDate: result.PeriodEnd},
			90, severityToPriority(result.Severity), now,
		))

		if result.Severity == detect.SeverityHigh {
			candidates = append(candidates, suggestionService.CreateParams{
				UserID:      userID,
				Type:        suggestionDomain.TypeBudgetAdjustment,
				Title:       "Increase budget: " + b.Name,
				Description: "Spending is projected to overshoot this budget's period by a wide margin.",
				CurrentState: transform.BudgetAdjustmentChange{
					BudgetID: b.ID, OldAmount: b.Amount, NewAmount: b.Amount,
				},
				ProposedChanges: transform.BudgetAdjustmentChange{
					BudgetID: b.ID, OldAmount: b.Amount, NewAmount: result.ProjectedTotal,
				},
				TargetID:         b.ID,
				ImpactAmount:     result.ProjectedOvershoot,
				ImpactPercentage: result.DriftPercentage,
				ImpactTimeframe:  string(b.Period),
				ImpactConfidence: 80,
			})
		}
	}

	goals, err := e.goals.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	for i := range goals {
		g := &goals[i]
		if g.TargetDate == nil || g.IsCompleted() {
			continue
		}
		monthsRemaining := monthsUntil(now, *g.TargetDate)
		result := detect.GoalUnderfundingDetector(detect.GoalUnderfundingInput{
			Now:             now,
			TargetAmount:    g.TargetAmount,
			CurrentAmount:   g.CurrentAmount,
			MonthsRemaining: monthsRemaining,
		})
		if result.Severity == "" {
			continue
		}
		shortfall := result.Shortfall
		signals = append(signals, signalDomain.NewSignal(
			userID, signalDomain.TypeGoalUnderfunding,
			"Goal underfunded: "+g.Name, nil,
			signalDomain.SignalValue{Current: result.RequiredMonthly, Delta: &shortfall},
			signalDomain.SignalPeriod{StartDate: now, EndDate: *g.TargetDate},
			85, severityToPriority(result.Severity), now,
		))

		if result.Severity == detect.SeverityHigh {
			candidates = append(candidates, suggestionService.CreateParams{
				UserID:      userID,
				Type:        suggestionDomain.TypeSavingsIncrease,
				Title:       "Increase contributions: " + g.Name,
				Description: "This goal is underfunded relative to its target date.",
				CurrentState: transform.SavingsIncreaseChange{
					GoalID: g.ID, OldAutoSave: g.AutoContribute,
				},
				ProposedChanges: transform.SavingsIncreaseChange{
					GoalID: g.ID, OldAutoSave: g.AutoContribute,
					NewAutoSaveAmount: result.RequiredMonthly, EnabledAutoSave: !g.AutoContribute,
				},
				TargetID:         g.ID,
				ImpactAmount:     result.Shortfall,
				ImpactPercentage: result.ShortfallPercentage,
				ImpactTimeframe:  "monthly",
				ImpactConfidence: 75,
			})
		}
	}

	return signals, candidates, nil
}

// monthsUntil returns the whole number of months between now and target,
// floored at 1.
func monthsUntil(now, target time.Time) int {
	months := int(target.Sub(now).Hours() / 24 / 30)
	if months < 1 {
		months = 1
	}
	return months
}

func severityToPriority(s detect.Severity) int {
	switch s {
	case detect.SeverityHigh:
		return 1
	case detect.SeverityMedium:
		return 2
	default:
		return 3
	}
}

// Orchestrator fans the three engines out concurrently for one user, then
// persists the results: signals through the signal store, high-severity
// risk findings through the suggestion lifecycle.
type Orchestrator struct {
	aggregation *AggregationEngine
	pattern     *PatternEngine
	risk        *RiskEngine
	signals     signalService.Service
	suggestions suggestionService.Service
	log         *zap.Logger
}

// NewOrchestrator constructs the engine orchestrator.
func NewOrchestrator(
	aggregation *AggregationEngine,
	pattern *PatternEngine,
	risk *RiskEngine,
	signals signalService.Service,
	suggestions suggestionService.Service,
	log *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		aggregation: aggregation, pattern: pattern, risk: risk,
		signals: signals, suggestions: suggestions, log: log,
	}
}

// RunForUser fans AggregationEngine/PatternEngine/RiskEngine out
// concurrently with errgroup, stores every signal they emit, and raises a
// suggestion for every high-severity risk candidate. A single engine's
// failure aborts the run; partial results from the others are discarded
// rather than stored half-complete.
func (o *Orchestrator) RunForUser(ctx context.Context, userID uuid.UUID, now time.Time) error {
	var aggSignals, patternSignals, riskSignals []*signalDomain.Signal
	var candidates []suggestionService.CreateParams

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := o.aggregation.Run(gctx, userID, now)
		aggSignals = s
		return err
	})
	g.Go(func() error {
		s, err := o.pattern.Run(gctx, userID, now)
		patternSignals = s
		return err
	})
	g.Go(func() error {
		s, c, err := o.risk.Run(gctx, userID, now)
		riskSignals = s
		candidates = c
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	all := make([]*signalDomain.Signal, 0, len(aggSignals)+len(patternSignals)+len(riskSignals))
	all = append(all, aggSignals...)
	all = append(all, patternSignals...)
	all = append(all, riskSignals...)

	if len(all) > 0 {
		if _, err := o.signals.StoreSignals(ctx, all); err != nil {
			return fmt.Errorf("storing signals: %w", err)
		}
	}

	for _, c := range candidates {
		if _, err := o.suggestions.CreateSuggestion(ctx, c); err != nil {
			o.log.Warn("suggestion candidate rejected",
				zap.String("userId", userID.String()),
				zap.String("type", string(c.Type)),
				zap.Error(err))
		}
	}
	return nil
}
