package auditlog

import (
	"personalfinancedss/internal/module/auditlog/repository"
	"personalfinancedss/internal/module/auditlog/service"

	"go.uber.org/fx"
)

// Module provides the append-only audit log dependencies.
var Module = fx.Module("auditlog",
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
