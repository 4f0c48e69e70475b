package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
)

// cleanup periodically cancels expired pending leave requests and purges old
// canceled ones. It never touches the roster.
type cleanup struct {
	leave         contract.LeaveService
	metrics       contract.Metrics
	logger        *slog.Logger
	interval      time.Duration
	retryDelay    time.Duration
	retentionDays int

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	doneChan chan struct{}
}

func newCleanup(leave contract.LeaveService, metrics contract.Metrics, logger *slog.Logger, interval, retryDelay time.Duration, retentionDays int) *cleanup {
	return &cleanup{
		leave:         leave,
		metrics:       metrics,
		logger:        logger.With("component", "cleanup"),
		interval:      interval,
		retryDelay:    retryDelay,
		retentionDays: retentionDays,
	}
}

// Start launches the loop in the background. The first sweep runs immediately.
func (c *cleanup) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}
	c.running = true
	c.stopChan = make(chan struct{})
	c.doneChan = make(chan struct{})

	c.logger.Info("cleanup loop starting", slog.Duration("interval", c.interval), slog.Duration("retry_delay", c.retryDelay))
	go c.mainLoop(ctx, c.stopChan, c.doneChan)
}

// Stop ends the loop and waits for a sweep in progress to finish.
func (c *cleanup) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	stopChan, doneChan := c.stopChan, c.doneChan
	c.mu.Unlock()

	c.logger.Info("cleanup loop stopping")
	close(stopChan)
	<-doneChan
}

// RunOnce performs a single sweep.
func (c *cleanup) RunOnce(ctx context.Context) error {
	_, err := c.leave.CleanupExpired(ctx)
	if err == nil {
		_, err = c.leave.PurgeCanceled(ctx, c.retentionDays)
	}
	c.metrics.IncCleanupRun(err)

	if err != nil {
		return fmt.Errorf("failed to clean up leave requests: %w", err)
	}
	return nil
}

func (c *cleanup) mainLoop(ctx context.Context, stopChan <-chan struct{}, doneChan chan<- struct{}) {
	defer close(doneChan)

	for {
		wait := c.interval
		if err := c.RunOnce(ctx); err != nil {
			c.logger.Error("cleanup failed, retrying later", slog.String("error", err.Error()), slog.Duration("retry_in", c.retryDelay))
			wait = c.retryDelay
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-stopChan:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			c.logger.Info("cleanup loop stopping (context canceled)")
			return
		}
	}
}
