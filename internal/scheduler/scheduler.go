// Package scheduler runs the recurring background jobs that keep
// per-user weekly summaries fresh and sweep expired records: a weekly
// tick that regenerates every user's summary, and a daily tick that
// retires old signals, suggestions, audit logs, and summaries.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"personalfinancedss/internal/config"
	auditlogService "personalfinancedss/internal/module/auditlog/service"
	signalService "personalfinancedss/internal/module/signal/service"
	suggestionService "personalfinancedss/internal/module/suggestion/service"
	userDomain "personalfinancedss/internal/module/identify/user/domain"
	userRepository "personalfinancedss/internal/module/identify/user/repository"
	weeklyDomain "personalfinancedss/internal/module/weekly/domain"
	weeklyRepository "personalfinancedss/internal/module/weekly/repository"
	weeklyService "personalfinancedss/internal/module/weekly/service"
	"personalfinancedss/internal/analysis/window"
	"personalfinancedss/internal/shared"
)

// summaryRetentionDays bounds how long a weekly summary survives after
// its week ends before the expiry sweep deletes it.
const summaryRetentionDays = 90

// Scheduler owns the cron entries for the weekly summary run and the
// daily retention sweep.
type Scheduler struct {
	cron *cron.Cron
	cfg  config.SchedulerConfig

	users      userRepository.Repository
	weekly     weeklyService.Service
	weeklyRepo weeklyRepository.Repository
	suggestion suggestionService.Service
	auditlog   auditlogService.Service
	signal     signalService.Service

	logger *zap.Logger

	isRunning bool
	// now is overridable in tests; production leaves it as time.Now.
	now func() time.Time
}

// New constructs a Scheduler using standard 5-field cron expressions,
// matching the format of SchedulerConfig's default values.
func New(
	cfg config.SchedulerConfig,
	users userRepository.Repository,
	weekly weeklyService.Service,
	weeklyRepo weeklyRepository.Repository,
	suggestion suggestionService.Service,
	auditlog auditlogService.Service,
	signal signalService.Service,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		cfg:        cfg,
		users:      users,
		weekly:     weekly,
		weeklyRepo: weeklyRepo,
		suggestion: suggestion,
		auditlog:   auditlog,
		signal:     signal,
		logger:     logger,
		now:        time.Now,
	}
}

// Start registers the cron entries and starts the scheduler. It is a
// no-op if the scheduler is disabled by configuration or already
// running.
func (s *Scheduler) Start() {
	if !s.cfg.Enabled {
		s.logger.Info("scheduler disabled, skipping start")
		return
	}
	if s.isRunning {
		s.logger.Warn("scheduler already running")
		return
	}

	weeklyCron := s.cfg.WeeklyCron
	if weeklyCron == "" {
		weeklyCron = "0 2 * * 1"
	}
	if _, err := s.cron.AddFunc(weeklyCron, s.runWeeklySummaries); err != nil {
		s.logger.Error("failed to schedule weekly summary run", zap.Error(err))
	}

	expiryCron := s.cfg.ExpiryCron
	if expiryCron == "" {
		expiryCron = "0 3 * * *"
	}
	if _, err := s.cron.AddFunc(expiryCron, s.runExpirySweep); err != nil {
		s.logger.Error("failed to schedule expiry sweep", zap.Error(err))
	}
	// Retry catch-up piggybacks on the same daily tick as the expiry
	// sweep, a few minutes later, so a user whose weekly run failed
	// still gets a summary before the next weekly tick.
	if _, err := s.cron.AddFunc("10 3 * * *", s.runRetryFailed); err != nil {
		s.logger.Error("failed to schedule retry catch-up", zap.Error(err))
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scheduler started", zap.Int("total_jobs", len(s.cron.Entries())))
}

// Stop drains in-flight jobs and stops the cron.
func (s *Scheduler) Stop() {
	if !s.isRunning {
		return
	}
	s.logger.Info("stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.isRunning
}

// runWeeklySummaries regenerates the weekly summary for every active
// user, paginating through the user store in fixed-size batches with
// a short delay between batches so the job doesn't spike load on the
// transaction/budget tables it reads from.
func (s *Scheduler) runWeeklySummaries() {
	ctx := context.Background()
	s.logger.Info("running weekly summary job")

	batchSize := s.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}
	delay := time.Duration(s.cfg.BatchDelayMs) * time.Millisecond

	weekStart := s.now()
	filter := userDomain.ListUsersFilter{ActiveOnly: true}

	page := 1
	generated, failed := 0, 0
	for {
		result, err := s.users.List(ctx, filter, shared.Pagination{Page: page, PerPage: batchSize, Sort: "id asc"})
		if err != nil {
			s.logger.Error("weekly summary job: failed to list users", zap.Int("page", page), zap.Error(err))
			return
		}
		for _, u := range result.Data {
			if _, _, err := s.weekly.GenerateWeeklySummary(ctx, u.ID, weekStart); err != nil {
				s.logger.Warn("weekly summary job: failed for user",
					zap.String("user_id", u.ID.String()), zap.Error(err))
				failed++
				continue
			}
			generated++
		}
		if page >= result.TotalPages || len(result.Data) == 0 {
			break
		}
		page++
		if delay > 0 {
			time.Sleep(delay)
		}
	}

	s.logger.Info("weekly summary job finished", zap.Int("generated", generated), zap.Int("failed", failed))
}

// runExpirySweep retires expired suggestions and signals, trims old
// audit logs, and deletes weekly summaries past their retention
// window. Each stage logs and continues past a failure so one
// misbehaving table doesn't block the rest of the sweep.
func (s *Scheduler) runExpirySweep() {
	ctx := context.Background()
	s.logger.Info("running expiry sweep")

	if n, err := s.suggestion.ExpireDueSuggestions(ctx, 500); err != nil {
		s.logger.Error("expiry sweep: suggestions failed", zap.Error(err))
	} else {
		s.logger.Info("expiry sweep: suggestions expired", zap.Int("count", n))
	}

	if n, err := s.signal.ArchiveOldSignals(ctx, summaryRetentionDays); err != nil {
		s.logger.Error("expiry sweep: signals failed", zap.Error(err))
	} else {
		s.logger.Info("expiry sweep: signals archived", zap.Int64("count", n))
	}

	if n, err := s.auditlog.CleanOldLogs(ctx, summaryRetentionDays); err != nil {
		s.logger.Error("expiry sweep: audit logs failed", zap.Error(err))
	} else {
		s.logger.Info("expiry sweep: audit logs cleaned", zap.Int64("count", n))
	}

	cutoff := s.now().AddDate(0, 0, -summaryRetentionDays)
	if n, err := s.weeklyRepo.DeleteExpiredSummaries(ctx, cutoff); err != nil {
		s.logger.Error("expiry sweep: weekly summaries failed", zap.Error(err))
	} else {
		s.logger.Info("expiry sweep: weekly summaries deleted", zap.Int64("count", n))
	}
}

// runRetryFailed backfills weekly summaries for active users who are
// missing one for any of the last RetryLookbackD weeks, covering users
// whose weekly run errored out or who joined mid-cycle.
func (s *Scheduler) runRetryFailed() {
	ctx := context.Background()
	lookbackDays := s.cfg.RetryLookbackD
	if lookbackDays <= 0 {
		lookbackDays = 7
	}

	weekStarts := missingWeekStarts(s.now(), lookbackDays)
	if len(weekStarts) == 0 {
		return
	}

	s.logger.Info("running weekly summary retry catch-up", zap.Int("weeks", len(weekStarts)))

	filter := userDomain.ListUsersFilter{ActiveOnly: true}
	page := 1
	backfilled := 0
	for {
		result, err := s.users.List(ctx, filter, shared.Pagination{Page: page, PerPage: 50, Sort: "id asc"})
		if err != nil {
			s.logger.Error("retry catch-up: failed to list users", zap.Error(err))
			return
		}
		for _, u := range result.Data {
			for _, ws := range weekStarts {
				if _, err := s.weeklyRepo.FindMetricByUserAndWeek(ctx, u.ID, ws); err == nil {
					continue
				} else if err != weeklyDomain.ErrMetricNotFound {
					s.logger.Warn("retry catch-up: lookup failed",
						zap.String("user_id", u.ID.String()), zap.Error(err))
					continue
				}
				if _, _, err := s.weekly.GenerateWeeklySummary(ctx, u.ID, ws); err != nil {
					s.logger.Warn("retry catch-up: generate failed",
						zap.String("user_id", u.ID.String()), zap.Time("week_start", ws), zap.Error(err))
					continue
				}
				backfilled++
			}
		}
		if page >= result.TotalPages || len(result.Data) == 0 {
			break
		}
		page++
	}

	s.logger.Info("weekly summary retry catch-up finished", zap.Int("backfilled", backfilled))
}

// missingWeekStarts returns the Monday of every week, back to
// lookbackDays ago, up to and including the current week.
func missingWeekStarts(now time.Time, lookbackDays int) []time.Time {
	earliest := now.AddDate(0, 0, -lookbackDays)
	var out []time.Time
	seen := map[time.Time]bool{}
	for d := earliest; !d.After(now); d = d.AddDate(0, 0, 1) {
		ws := window.WeekBounds(d, time.Monday).Start
		if !seen[ws] {
			seen[ws] = true
			out = append(out, ws)
		}
	}
	return out
}
