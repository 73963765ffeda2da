package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/session"
)

// SweepObserver is told how many sessions each sweep removed.
type SweepObserver func(removed int)

// GarbageCollector periodically sweeps expired sessions from a store
type GarbageCollector struct {
	store    session.Sweeper
	logger   logger.Logger
	interval time.Duration
	now      func() time.Time
	observe  SweepObserver

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewGarbageCollector creates a new garbage collector. observe may be nil.
func NewGarbageCollector(
	store session.Sweeper,
	log logger.Logger,
	interval time.Duration,
	observe SweepObserver,
) *GarbageCollector {
	return &GarbageCollector{
		store:    store,
		logger:   log,
		interval: interval,
		now:      time.Now,
		observe:  observe,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs one sweep immediately, then one per interval until ctx is
// cancelled or Stop is called.
func (gc *GarbageCollector) Start(ctx context.Context) error {
	// Run immediately on start
	if _, err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial session sweep failed",
			logger.Error(err))
	}

	// Start periodic collection
	ticker := time.NewTicker(gc.interval)
	go func() {
		defer close(gc.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := gc.Collect(ctx); err != nil {
					gc.logger.Error("session sweep failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the collector and waits for its goroutine. Safe to call
// more than once, and before Start.
func (gc *GarbageCollector) Stop() {
	gc.stopOnce.Do(func() { close(gc.stopCh) })
	select {
	case <-gc.done:
	case <-time.After(time.Second):
	}
}

// Collect sweeps expired sessions once.
func (gc *GarbageCollector) Collect(ctx context.Context) (int, error) {
	removed, err := gc.store.Sweep(ctx, gc.now())
	if err != nil {
		return removed, err
	}
	if gc.observe != nil {
		gc.observe(removed)
	}

	if removed > 0 {
		gc.logger.Info("session sweep completed",
			logger.Int("sessions_removed", removed))
	} else {
		gc.logger.Debug("no expired sessions to sweep")
	}
	return removed, nil
}
