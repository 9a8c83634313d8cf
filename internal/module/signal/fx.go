package signal

import (
	"personalfinancedss/internal/module/signal/handler"
	"personalfinancedss/internal/module/signal/repository"
	"personalfinancedss/internal/module/signal/service"

	"go.uber.org/fx"
)

// Module provides signal store dependencies.
var Module = fx.Module("signal",
	fx.Provide(
		fx.Annotate(
			repository.New,
			fx.As(new(repository.Repository)),
		),
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service)),
		),
		handler.NewHandler,
	),
)
