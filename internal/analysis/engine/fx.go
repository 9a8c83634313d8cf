package engine

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"personalfinancedss/internal/config"
	budgetRepo "personalfinancedss/internal/module/cashflow/budget/repository"
	goalRepo "personalfinancedss/internal/module/cashflow/goal/repository"
)

// Module provides the analysis engines and their orchestrator.
var Module = fx.Module("analysisEngine",
	fx.Provide(
		NewAggregationEngine,
		NewPatternEngine,
		provideRiskEngine,
		NewOrchestrator,
	),
)

func provideRiskEngine(budgets budgetRepo.Repository, goals goalRepo.Repository, cfg *config.Config, log *zap.Logger) *RiskEngine {
	return NewRiskEngine(budgets, goals, time.Weekday(cfg.Analysis.WeekStartsOn), log)
}
