package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MRamiBalles/tamagotchi/internal/domain/pet"
	"github.com/MRamiBalles/tamagotchi/internal/events"
	"github.com/MRamiBalles/tamagotchi/internal/platform/logger"
	"github.com/MRamiBalles/tamagotchi/internal/platform/metrics"
)

// Decay increments applied on every tick.
const (
	BoredomDecay = 5
	FatigueDecay = 3
	HungerDecay  = 1
)

// Action effects.
const (
	FeedHungerRelief  = 17
	FeedSatietyGain   = 8
	PlayBoredomRelief = 23
	PlayFatigueCost   = 11
)

// State is the lifecycle state of the pet.
type State int

const (
	StateAlive State = iota
	StateDead
)

func (s State) String() string {
	if s == StateDead {
		return "Dead"
	}
	return "Alive"
}

// Config holds engine tuning.
type Config struct {
	TickInterval time.Duration
}

// Engine owns the single pet, its decay loop, and action dispatch.
// Build exactly one during startup and hand it to every consumer.
type Engine struct {
	mu  sync.RWMutex
	pet *pet.Pet

	eventLog *events.EventLog
	logger   *logger.Logger
	metrics  *metrics.Collector
	ticker   *Ticker

	halt     chan struct{} // Closed on death
	haltOnce sync.Once
}

// NewEngine creates the engine with a fresh pet. The decay loop does not run
// until Start. Nil collaborators are replaced with no-op defaults.
func NewEngine(cfg Config, eventLog *events.EventLog, log *logger.Logger, m *metrics.Collector) *Engine {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if eventLog == nil {
		eventLog = events.NewEventLog(nil)
	}
	if log == nil {
		log = logger.Discard()
	}
	if m == nil {
		m = metrics.New()
	}

	e := &Engine{
		pet:      pet.New(),
		eventLog: eventLog,
		logger:   log,
		metrics:  m,
		halt:     make(chan struct{}),
	}
	e.ticker = NewTicker(cfg.TickInterval, e.decay, e.halt, log)
	return e
}

// Start spawns the decay loop. Safe to call more than once.
func (e *Engine) Start(ctx context.Context) {
	e.logger.Info("Starting pet engine...")
	e.ticker.Start(ctx)
}

// Done is closed when the decay loop has exited.
func (e *Engine) Done() <-chan struct{} {
	return e.ticker.Done()
}

// Snapshot returns a detached copy of the pet.
func (e *Engine) Snapshot() pet.Pet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pet.Clone()
}

// State reports whether the pet is alive.
func (e *Engine) State() State {
	if e.Snapshot().IsDead {
		return StateDead
	}
	return StateAlive
}

// Apply performs action on the pet and reports whether it is still alive.
// Once the pet is dead every call is a no-op returning false.
func (e *Engine) Apply(action pet.Action) bool {
	e.mu.Lock()
	if e.pet.IsDead {
		snap := e.pet.Clone()
		e.mu.Unlock()
		e.recordAction(action, false, snap)
		return false
	}

	known := true
	switch action {
	case pet.ActionAbandon:
		e.pet.IsDead = true
	case pet.ActionFeed:
		e.pet.Hunger = pet.Clamp(e.pet.Hunger - FeedHungerRelief)
		e.pet.Satiety = pet.Clamp(e.pet.Satiety + FeedSatietyGain)
	case pet.ActionPlay:
		e.pet.Boredom = pet.Clamp(e.pet.Boredom - PlayBoredomRelief)
		e.pet.Fatigue = pet.Clamp(e.pet.Fatigue + PlayFatigueCost)
	case pet.ActionSleep:
		e.pet.Fatigue = pet.MinNeed
	case pet.ActionPoop:
		e.pet.Satiety = pet.MinNeed
	case pet.ActionCheckState:
	default:
		known = false
	}
	e.settleLocked()
	snap := e.pet.Clone()
	e.mu.Unlock()

	if !known {
		e.logger.Warn("unknown action treated as CheckState", "action", int(action))
	}
	alive := !snap.IsDead
	e.recordAction(action, alive, snap)
	if !alive {
		reason := "abandoned"
		if action != pet.ActionAbandon {
			reason = causeOfDeath(snap)
		}
		e.died(snap, events.ActorCaller, reason)
	}
	return alive
}

// decay is one tick of the heartbeat. It reports whether to keep ticking.
func (e *Engine) decay() bool {
	start := time.Now()

	e.mu.Lock()
	if e.pet.IsDead {
		e.mu.Unlock()
		return false
	}
	e.pet.Boredom = pet.Clamp(e.pet.Boredom + BoredomDecay)
	e.pet.Fatigue = pet.Clamp(e.pet.Fatigue + FatigueDecay)
	e.pet.Hunger = pet.Clamp(e.pet.Hunger + HungerDecay)
	e.settleLocked()
	snap := e.pet.Clone()
	e.mu.Unlock()

	e.metrics.RecordTick(time.Since(start))
	e.eventLog.Append(events.NewEvent(events.EventTypeDecayTick, events.ActorDecay, snap))

	if snap.IsDead {
		e.died(snap, events.ActorDecay, causeOfDeath(snap))
		return false
	}
	return true
}

// settleLocked marks the pet dead if any need is saturated.
// Caller must hold e.mu for writing.
func (e *Engine) settleLocked() {
	if !e.pet.IsDead && e.pet.Saturated() {
		e.pet.IsDead = true
	}
}

func (e *Engine) recordAction(action pet.Action, accepted bool, snap pet.Pet) {
	e.metrics.RecordAction(action, accepted)

	ev := events.NewEvent(events.EventTypePetAction, events.ActorCaller, snap)
	ev.Action = action.String()
	ev.Accepted = accepted
	e.eventLog.Append(ev)
}

// died runs the one-time side effects of the Alive -> Dead transition.
func (e *Engine) died(snap pet.Pet, actorID, reason string) {
	e.haltOnce.Do(func() {
		close(e.halt)
		e.metrics.RecordDeath()
		e.eventLog.Append(events.NewEvent(events.EventTypePetDied, actorID, snap))
		e.logger.Event(string(events.EventTypePetDied), actorID,
			fmt.Sprintf("%s (hunger=%d boredom=%d fatigue=%d satiety=%d)",
				reason, snap.Hunger, snap.Boredom, snap.Fatigue, snap.Satiety))
	})
}

func causeOfDeath(p pet.Pet) string {
	switch {
	case p.Hunger >= pet.MaxNeed:
		return "starved"
	case p.Boredom >= pet.MaxNeed:
		return "died of boredom"
	case p.Fatigue >= pet.MaxNeed:
		return "collapsed from exhaustion"
	case p.Satiety >= pet.MaxNeed:
		return "burst"
	}
	return "abandoned"
}
