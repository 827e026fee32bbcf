// Package metrics provides observability for the pet engine.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/MRamiBalles/tamagotchi/internal/domain/pet"
)

// Collector gathers engine metrics.
type Collector struct {
	// Decay metrics
	TickCount      int64
	TickLatencySum int64 // nanoseconds
	TickLatencyMax int64
	LastTickTime   time.Time

	// Action metrics, indexed by pet.Action
	ActionsAccepted [numActions]int64
	ActionsRejected [numActions]int64
	Deaths          int64

	// Journal metrics
	JournalWrites int64
	JournalErrors int64

	// System
	StartTime time.Time
	mu        sync.RWMutex
}

const numActions = int(pet.ActionAbandon) + 1

// New returns an empty collector.
func New() *Collector {
	return &Collector{StartTime: time.Now()}
}

// RecordTick records a decay firing.
func (c *Collector) RecordTick(latency time.Duration) {
	atomic.AddInt64(&c.TickCount, 1)
	atomic.AddInt64(&c.TickLatencySum, int64(latency))

	for {
		cur := atomic.LoadInt64(&c.TickLatencyMax)
		if int64(latency) <= cur || atomic.CompareAndSwapInt64(&c.TickLatencyMax, cur, int64(latency)) {
			break
		}
	}

	c.mu.Lock()
	c.LastTickTime = time.Now()
	c.mu.Unlock()
}

// RecordAction records the outcome of an Apply call.
func (c *Collector) RecordAction(a pet.Action, accepted bool) {
	if !a.Valid() {
		return
	}
	if accepted {
		atomic.AddInt64(&c.ActionsAccepted[a], 1)
	} else {
		atomic.AddInt64(&c.ActionsRejected[a], 1)
	}
}

// RecordDeath records the Alive -> Dead transition.
func (c *Collector) RecordDeath() {
	atomic.AddInt64(&c.Deaths, 1)
}

// RecordJournalWrite records a journal write attempt.
func (c *Collector) RecordJournalWrite(err error) {
	atomic.AddInt64(&c.JournalWrites, 1)
	if err != nil {
		atomic.AddInt64(&c.JournalErrors, 1)
	}
}

// Ticks returns the number of decay firings so far.
func (c *Collector) Ticks() int64 {
	return atomic.LoadInt64(&c.TickCount)
}

// Accepted returns how many times a was accepted.
func (c *Collector) Accepted(a pet.Action) int64 {
	if !a.Valid() {
		return 0
	}
	return atomic.LoadInt64(&c.ActionsAccepted[a])
}

// Rejected returns how many times a was rejected.
func (c *Collector) Rejected(a pet.Action) int64 {
	if !a.Valid() {
		return 0
	}
	return atomic.LoadInt64(&c.ActionsRejected[a])
}

// Snapshot returns current metrics as a map.
func (c *Collector) Snapshot() map[string]interface{} {
	c.mu.RLock()
	lastTick := c.LastTickTime
	c.mu.RUnlock()

	tickCount := atomic.LoadInt64(&c.TickCount)

	var tickAvg float64
	if tickCount > 0 {
		tickAvg = float64(atomic.LoadInt64(&c.TickLatencySum)) / float64(tickCount) / 1e3 // µs
	}

	accepted := make(map[string]int64, numActions)
	rejected := make(map[string]int64, numActions)
	for _, a := range pet.Actions() {
		accepted[a.String()] = atomic.LoadInt64(&c.ActionsAccepted[a])
		rejected[a.String()] = atomic.LoadInt64(&c.ActionsRejected[a])
	}

	return map[string]interface{}{
		"uptime_seconds": time.Since(c.StartTime).Seconds(),

		"decay": map[string]interface{}{
			"ticks":          tickCount,
			"avg_latency_us": tickAvg,
			"max_latency_us": float64(atomic.LoadInt64(&c.TickLatencyMax)) / 1e3,
			"last_tick":      lastTick.Format(time.RFC3339),
		},

		"actions": map[string]interface{}{
			"accepted": accepted,
			"rejected": rejected,
			"deaths":   atomic.LoadInt64(&c.Deaths),
		},

		"journal": map[string]interface{}{
			"writes": atomic.LoadInt64(&c.JournalWrites),
			"errors": atomic.LoadInt64(&c.JournalErrors),
		},
	}
}
