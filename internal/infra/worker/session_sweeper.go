package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// IdleSweeper is implemented by the in-memory session stores.
type IdleSweeper interface {
	SweepIdle(idle time.Duration) int
}

// SessionSweeper drops form and overlay sessions that were abandoned
// (tab closed, visitor navigated away) so their state does not pile up.
type SessionSweeper struct {
	stores       map[string]IdleSweeper
	idleTimeout  time.Duration
	tickInterval time.Duration
	logger       *zap.Logger
}

const (
	DefaultIdleTimeout   = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// NewSessionSweeper replaces non-positive durations with the defaults;
// time.NewTicker panics on a zero interval.
func NewSessionSweeper(idleTimeout, tickInterval time.Duration, logger *zap.Logger) *SessionSweeper {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	if tickInterval <= 0 {
		tickInterval = DefaultSweepInterval
	}
	return &SessionSweeper{
		stores:       make(map[string]IdleSweeper),
		idleTimeout:  idleTimeout,
		tickInterval: tickInterval,
		logger:       logger,
	}
}

func (w *SessionSweeper) Register(name string, store IdleSweeper) {
	w.stores[name] = store
}

func (w *SessionSweeper) Start(ctx context.Context) error {
	w.logger.Info("session sweeper started",
		zap.Duration("idle_timeout", w.idleTimeout),
		zap.Duration("interval", w.tickInterval),
	)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("session sweeper stopped")
			return nil
		case <-ticker.C:
			w.SweepOnce()
		}
	}
}

// SweepOnce runs a single pass and returns the number of sessions dropped.
func (w *SessionSweeper) SweepOnce() int {
	total := 0
	for name, store := range w.stores {
		n := store.SweepIdle(w.idleTimeout)
		if n > 0 {
			w.logger.Debug("expired idle sessions", zap.String("store", name), zap.Int("count", n))
		}
		total += n
	}
	return total
}
