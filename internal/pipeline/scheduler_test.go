package pipeline

import (
	"context"
	"errors"
	"movie-alert/internal/structures"
	"movie-alert/internal/testutil"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPipeline struct {
	runs    atomic.Int32
	err     error
	delay   time.Duration
	mu      sync.Mutex
	active  int
	overlap bool
	started chan struct{}
}

func (c *countingPipeline) Run(_ context.Context) error {
	c.mu.Lock()
	c.active++
	if c.active > 1 {
		c.overlap = true
	}
	c.mu.Unlock()
	if c.started != nil {
		close(c.started)
	}

	time.Sleep(c.delay)
	c.runs.Add(1)

	c.mu.Lock()
	c.active--
	c.mu.Unlock()
	return c.err
}

func schedulerConfig(interval time.Duration) *structures.Config {
	return &structures.Config{
		Schedule: structures.ScheduleConfig{Interval: interval},
		Alert:    structures.AlertConfig{Genre: "Animation"},
	}
}

func TestScheduler_RunOncePropagatesError(t *testing.T) {
	p := &countingPipeline{err: errors.New("boom")}
	s := NewScheduler(schedulerConfig(time.Hour), &testutil.MockLogger{}, p)

	err := s.RunOnce(context.Background())
	assert.EqualError(t, err, "boom")
	assert.Equal(t, int32(1), p.runs.Load())
}

func TestScheduler_StopNilCron(t *testing.T) {
	s := NewScheduler(schedulerConfig(time.Hour), &testutil.MockLogger{}, &countingPipeline{})
	// Should not panic with nil cron
	s.Stop()
}

func TestScheduler_TicksRepeatEvenAfterFailure(t *testing.T) {
	p := &countingPipeline{err: errors.New("remote down")}
	s := NewScheduler(schedulerConfig(time.Second), &testutil.MockLogger{}, p)

	s.Init(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return p.runs.Load() >= 2 }, 5*time.Second, 50*time.Millisecond)
}

func TestScheduler_CancelledContextSkipsTicks(t *testing.T) {
	p := &countingPipeline{}
	s := NewScheduler(schedulerConfig(time.Second), &testutil.MockLogger{}, p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Init(ctx)
	time.Sleep(1500 * time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(0), p.runs.Load())
}

func TestScheduler_RunsDoNotOverlap(t *testing.T) {
	p := &countingPipeline{delay: 30 * time.Millisecond}
	s := NewScheduler(schedulerConfig(time.Hour), &testutil.MockLogger{}, p)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.RunOnce(context.Background())
		}()
	}
	wg.Wait()

	require.Equal(t, int32(4), p.runs.Load())
	assert.False(t, p.overlap)
}

func TestScheduler_StopWaitsForInFlightRun(t *testing.T) {
	p := &countingPipeline{delay: 200 * time.Millisecond, started: make(chan struct{})}
	s := NewScheduler(schedulerConfig(time.Hour), &testutil.MockLogger{}, p)
	s.Init(context.Background())

	go func() {
		_ = s.RunOnce(context.Background())
	}()
	<-p.started

	s.Stop()
	assert.Equal(t, int32(1), p.runs.Load())
}
