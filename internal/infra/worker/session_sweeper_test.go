package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingStore struct {
	calls   atomic.Int32
	removed int
	lastArg time.Duration
}

func (s *countingStore) SweepIdle(idle time.Duration) int {
	s.calls.Add(1)
	s.lastArg = idle
	return s.removed
}

func TestSweepOnceSumsStores(t *testing.T) {
	w := NewSessionSweeper(30*time.Minute, time.Minute, zap.NewNop())
	forms := &countingStore{removed: 2}
	overlays := &countingStore{removed: 3}
	w.Register("forms", forms)
	w.Register("overlays", overlays)

	assert.Equal(t, 5, w.SweepOnce())
	assert.Equal(t, 30*time.Minute, forms.lastArg)
}

func TestStartTicksUntilCancelled(t *testing.T) {
	w := NewSessionSweeper(time.Minute, 5*time.Millisecond, zap.NewNop())
	store := &countingStore{}
	w.Register("forms", store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool { return store.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestNonPositiveDurationsUseDefaults(t *testing.T) {
	w := NewSessionSweeper(0, 0, zap.NewNop())
	store := &countingStore{}
	w.Register("forms", store)

	assert.Equal(t, DefaultSweepInterval, w.tickInterval)
	assert.Equal(t, DefaultIdleTimeout, w.idleTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NotPanics(t, func() { require.NoError(t, w.Start(ctx)) })

	w.SweepOnce()
	assert.Equal(t, DefaultIdleTimeout, store.lastArg)
}
