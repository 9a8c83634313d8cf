package suggestion

import (
	"personalfinancedss/internal/module/suggestion/handler"
	"personalfinancedss/internal/module/suggestion/mutator"
	"personalfinancedss/internal/module/suggestion/repository"
	"personalfinancedss/internal/module/suggestion/service"
	"personalfinancedss/internal/module/suggestion/transform"

	"go.uber.org/fx"
)

// Module provides suggestion lifecycle dependencies.
var Module = fx.Module("suggestion",
	fx.Provide(
		fx.Annotate(
			repository.New,
			fx.As(new(repository.Repository)),
		),
		fx.Annotate(
			mutator.New,
			fx.As(new(transform.Mutator)),
		),
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service)),
		),
		handler.NewHandler,
	),
)
