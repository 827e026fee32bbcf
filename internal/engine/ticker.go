package engine

import (
	"context"
	"sync"
	"time"

	"github.com/MRamiBalles/tamagotchi/internal/platform/logger"
)

// DefaultTickInterval defines how often the pet decays.
const DefaultTickInterval = 5 * time.Second

// Ticker runs the decay heartbeat.
// It does NOT know about the pet - it only calls step, and re-arms its timer
// after step has returned. step reports whether the heartbeat should go on.
type Ticker struct {
	interval time.Duration
	step     func() bool
	halt     <-chan struct{}
	logger   *logger.Logger

	startOnce sync.Once
	done      chan struct{}
}

// NewTicker creates a ticker that calls step every interval until step
// returns false, halt is closed, or the context passed to Start ends.
func NewTicker(interval time.Duration, step func() bool, halt <-chan struct{}, log *logger.Logger) *Ticker {
	return &Ticker{
		interval: interval,
		step:     step,
		halt:     halt,
		logger:   log,
		done:     make(chan struct{}),
	}
}

// Start launches the heartbeat goroutine. Calling it again is a no-op.
func (t *Ticker) Start(ctx context.Context) {
	t.startOnce.Do(func() {
		go t.run(ctx)
	})
}

// Done is closed once the heartbeat has stopped for good.
// It never closes if Start was not called.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}

func (t *Ticker) run(ctx context.Context) {
	defer close(t.done)
	t.logger.Info("decay ticker started", "interval", t.interval)

	// One-shot timer re-armed after each step, so steps never overlap.
	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("decay ticker stopped by context")
			return
		case <-t.halt:
			t.logger.Info("decay ticker halted")
			return
		case <-timer.C:
			if !t.step() {
				t.logger.Info("decay ticker finished")
				return
			}
			timer.Reset(t.interval)
		}
	}
}
