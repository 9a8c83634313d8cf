package subscription

import (
	"personalfinancedss/internal/module/cashflow/subscription/repository"
	"personalfinancedss/internal/module/cashflow/subscription/service"

	"go.uber.org/fx"
)

// Module provides subscription dependencies.
var Module = fx.Module("subscription",
	fx.Provide(
		fx.Annotate(
			repository.New,
			fx.As(new(repository.Repository)),
		),
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service)),
		),
	),
)
