package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/logger"
)

type fakePurger struct {
	mu    sync.Mutex
	calls []time.Duration
	err   error
	ctxs  []context.Context
}

func (f *fakePurger) PurgePlaceholders(ctx context.Context, olderThan time.Duration) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, olderThan)
	f.ctxs = append(f.ctxs, ctx)
	return nil, f.err
}

func (f *fakePurger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func nopLogger() *logger.Logger { return logger.Nop() }

func testWorkersConfig() config.Workers {
	return config.Workers{JanitorInterval: 5 * time.Millisecond, PlaceholderTTL: time.Hour}
}

func TestNewPlaceholderJanitor_Defaults(t *testing.T) {
	w := NewPlaceholderJanitor(&fakePurger{}, config.Workers{JanitorInterval: -1}, nopLogger())
	j := w.(*placeholderJanitor)

	assert.Equal(t, config.DefaultJanitorInterval, j.interval)
	assert.Equal(t, config.DefaultPlaceholderTTL, j.ttl)
}

func TestPlaceholderJanitor_SweepsOnStartAndOnTick(t *testing.T) {
	purger := &fakePurger{}
	j := NewPlaceholderJanitor(purger, testWorkersConfig(), nopLogger())

	j.Start(context.Background())
	defer j.Stop()

	require.Eventually(t, func() bool { return purger.count() >= 3 }, time.Second, time.Millisecond)

	purger.mu.Lock()
	defer purger.mu.Unlock()
	for _, ttl := range purger.calls {
		assert.Equal(t, time.Hour, ttl)
	}
}

func TestPlaceholderJanitor_FirstSweepIsImmediate(t *testing.T) {
	purger := &fakePurger{}
	j := NewPlaceholderJanitor(purger, config.Workers{JanitorInterval: time.Hour, PlaceholderTTL: time.Minute}, nopLogger())

	j.Start(context.Background())
	defer j.Stop()

	require.Eventually(t, func() bool { return purger.count() == 1 }, time.Second, time.Millisecond)
}

func TestPlaceholderJanitor_StopWaitsAndHalts(t *testing.T) {
	purger := &fakePurger{}
	j := NewPlaceholderJanitor(purger, testWorkersConfig(), nopLogger())

	j.Start(context.Background())
	require.Eventually(t, func() bool { return purger.count() >= 1 }, time.Second, time.Millisecond)
	j.Stop()

	after := purger.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, purger.count())

	purger.mu.Lock()
	defer purger.mu.Unlock()
	assert.Error(t, purger.ctxs[len(purger.ctxs)-1].Err(), "sweep context should be cancelled after Stop")
}

func TestPlaceholderJanitor_StopWithoutStart(t *testing.T) {
	j := NewPlaceholderJanitor(&fakePurger{}, testWorkersConfig(), nopLogger())
	assert.NotPanics(t, j.Stop)
}

func TestPlaceholderJanitor_ParentCancelEndsLoop(t *testing.T) {
	purger := &fakePurger{}
	j := NewPlaceholderJanitor(purger, testWorkersConfig(), nopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	j.Start(ctx)
	require.Eventually(t, func() bool { return purger.count() >= 1 }, time.Second, time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		j.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after parent cancel")
	}
}

func TestPlaceholderJanitor_RestartReplacesLoop(t *testing.T) {
	purger := &fakePurger{}
	j := NewPlaceholderJanitor(purger, testWorkersConfig(), nopLogger())

	j.Start(context.Background())
	j.Start(context.Background())
	require.Eventually(t, func() bool { return purger.count() >= 2 }, time.Second, time.Millisecond)
	j.Stop()

	after := purger.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, purger.count())
}

func TestPlaceholderJanitor_ErrorsDoNotStopLoop(t *testing.T) {
	purger := &fakePurger{err: errors.New("database is locked")}
	j := NewPlaceholderJanitor(purger, testWorkersConfig(), nopLogger())

	j.Start(context.Background())
	defer j.Stop()

	require.Eventually(t, func() bool { return purger.count() >= 3 }, time.Second, time.Millisecond)
}
