// Package worker drains the post-commit weight-recompute queue
// FeedbackProcessor.ProcessDecision enqueues: the post-commit hook is
// modeled as a message the processor enqueues, not an in-transaction
// call. Shaped after broker/worker/sync_worker.go's ticker-driven
// background worker, but driven by a buffered channel instead of a
// ticker since the work here is event-triggered, not
// periodic.
package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"personalfinancedss/internal/module/preference/service"
)

// Config holds configuration for the weight-adjuster worker.
type Config struct {
	Enabled       bool // Enable/disable the worker
	QueueSize     int  // Buffered channel capacity
	MaxConcurrent int  // Max concurrent AdjustWeights calls
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		QueueSize:     1000,
		MaxConcurrent: 5,
	}
}

// Worker consumes queued userIDs and recomputes their suggestion weights.
//
// The consumer (service.Service) is wired in via SetService rather than
// the constructor: Service itself depends on this Worker as its
// WeightAdjustDispatcher, so taking Service as a constructor argument
// here would create a dependency cycle in the fx graph.
type Worker struct {
	config    Config
	service   service.Service
	logger    *zap.Logger
	queue     chan uuid.UUID
	stopChan  chan struct{}
	wg        sync.WaitGroup
	adjustWg  sync.WaitGroup
	semaphore chan struct{}
}

// New creates a new weight-adjuster worker. Call SetService before Start.
func New(config Config, logger *zap.Logger) *Worker {
	return &Worker{
		config:    config,
		logger:    logger,
		queue:     make(chan uuid.UUID, config.QueueSize),
		stopChan:  make(chan struct{}),
		semaphore: make(chan struct{}, config.MaxConcurrent),
	}
}

// SetService wires the consumer that AdjustWeights calls dispatch to.
func (w *Worker) SetService(svc service.Service) {
	w.service = svc
}

// Enqueue queues a user's weight recompute. Non-blocking: a full queue
// drops the message and logs a warning rather than stalling the caller
// (the next feedback decision for that user will enqueue again).
func (w *Worker) Enqueue(userID uuid.UUID) {
	if !w.config.Enabled {
		return
	}
	select {
	case w.queue <- userID:
	default:
		w.logger.Warn("preference: weight-adjust queue full, dropping", zap.String("user_id", userID.String()))
	}
}

// Start starts the worker's consume loop.
func (w *Worker) Start(ctx context.Context) error {
	if !w.config.Enabled {
		w.logger.Info("preference weight-adjuster worker is disabled")
		return nil
	}
	w.wg.Add(1)
	go w.run(ctx)
	return nil
}

// Stop stops the worker gracefully, waiting for in-flight adjustments.
func (w *Worker) Stop(ctx context.Context) error {
	close(w.stopChan)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		w.adjustWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case userID := <-w.queue:
			w.adjust(ctx, userID)
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) adjust(ctx context.Context, userID uuid.UUID) {
	w.semaphore <- struct{}{}
	w.adjustWg.Add(1)
	go func() {
		defer w.adjustWg.Done()
		defer func() { <-w.semaphore }()

		if err := w.service.AdjustWeights(ctx, userID); err != nil {
			w.logger.Warn("preference: adjust weights failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}()
}
