package weekly

import (
	"go.uber.org/fx"

	"personalfinancedss/internal/module/weekly/handler"
	"personalfinancedss/internal/module/weekly/repository"
	"personalfinancedss/internal/module/weekly/service"
)

// Module provides weekly-summary dependencies.
var Module = fx.Module("weekly",
	fx.Provide(
		fx.Annotate(
			repository.New,
			fx.As(new(repository.Repository)),
		),
		service.NewMetricAggregator,
		service.NewShiftDetector,
		service.NewInsightFilter,
		service.NewSummaryGenerator,
		handler.NewHandler,
	),
)
