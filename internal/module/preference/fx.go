package preference

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"personalfinancedss/internal/config"
	"personalfinancedss/internal/module/preference/repository"
	"personalfinancedss/internal/module/preference/service"
	"personalfinancedss/internal/module/preference/worker"
)

// Module provides preference-learning dependencies. The worker and
// service depend on each other (service enqueues onto the worker; the
// worker calls back into the service), so the worker is constructed
// without its service dependency and wired via SetService in
// registerWorkerLifecycle, once both sides of the fx graph exist.
var Module = fx.Module("preference",
	fx.Provide(
		fx.Annotate(
			repository.New,
			fx.As(new(repository.Repository)),
		),
		provideWorker,
		fx.Annotate(
			func(w *worker.Worker) service.WeightAdjustDispatcher { return w },
		),
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service)),
		),
	),
	fx.Invoke(registerWorkerLifecycle),
)

func provideWorker(cfg *config.Config, logger *zap.Logger) *worker.Worker {
	workerConfig := worker.Config{
		Enabled:       cfg.Preference.WorkerEnabled,
		QueueSize:     cfg.Preference.WorkerQueueSize,
		MaxConcurrent: cfg.Preference.WorkerMaxConcurrent,
	}
	return worker.New(workerConfig, logger)
}

func registerWorkerLifecycle(lc fx.Lifecycle, w *worker.Worker, svc service.Service, logger *zap.Logger) {
	w.SetService(svc)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting preference weight-adjuster worker")
			return w.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping preference weight-adjuster worker")
			return w.Stop(ctx)
		},
	})
}
