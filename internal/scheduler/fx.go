package scheduler

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"personalfinancedss/internal/config"
	auditlogService "personalfinancedss/internal/module/auditlog/service"
	signalService "personalfinancedss/internal/module/signal/service"
	suggestionService "personalfinancedss/internal/module/suggestion/service"
	userRepository "personalfinancedss/internal/module/identify/user/repository"
	weeklyRepository "personalfinancedss/internal/module/weekly/repository"
	weeklyService "personalfinancedss/internal/module/weekly/service"
)

// Module wires the scheduler into the app's lifecycle. It depends on
// the weekly, suggestion, auditlog, and signal services plus the user
// and weekly repositories, all of which are provided by their own
// modules.
var Module = fx.Module("scheduler",
	fx.Provide(provideScheduler),
	fx.Invoke(registerLifecycle),
)

func provideScheduler(
	cfg *config.Config,
	users userRepository.Repository,
	weekly weeklyService.Service,
	weeklyRepo weeklyRepository.Repository,
	suggestion suggestionService.Service,
	auditlog auditlogService.Service,
	signal signalService.Service,
	logger *zap.Logger,
) *Scheduler {
	return New(cfg.Scheduler, users, weekly, weeklyRepo, suggestion, auditlog, signal, logger)
}

func registerLifecycle(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})
}
