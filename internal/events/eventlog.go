// Package events provides the in-memory journal of everything that happened
// to the pet: accepted and rejected actions, decay firings, and death.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MRamiBalles/tamagotchi/internal/domain/pet"
)

// EventType defines the category of an event.
type EventType string

const (
	EventTypePetAction EventType = "PET_ACTION"
	EventTypeDecayTick EventType = "DECAY_TICK"
	EventTypePetDied   EventType = "PET_DIED"
)

// Actor IDs.
const (
	ActorDecay  = "SYSTEM_DECAY"
	ActorCaller = "CALLER"
)

// GameEvent represents an immutable record of something that happened.
type GameEvent struct {
	Seq       int64     `json:"seq"` // Assigned by the log, starts at 1
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action,omitempty"` // Only for PET_ACTION
	Accepted  bool      `json:"accepted"`
	Pet       pet.Pet   `json:"pet"` // State right after the event
}

// NewEvent stamps a fresh event with an ID and the current time.
func NewEvent(t EventType, actorID string, p pet.Pet) GameEvent {
	return GameEvent{
		ID:        GenerateEventID(),
		Timestamp: time.Now(),
		Type:      t,
		ActorID:   actorID,
		Pet:       p,
	}
}

// EventPersister defines how an event is durably stored.
type EventPersister interface {
	Append(event GameEvent) error
}

// EventLog is the in-memory append-only log of pet events.
//
// Events bound for the persister wait in an unbounded outbox that a single
// writer goroutine empties in Seq order. Append never waits on the persister.
type EventLog struct {
	mu        sync.RWMutex
	events    []GameEvent
	seq       int64
	persister EventPersister
	onPersist func(error)

	outbox    []GameEvent // guarded by mu
	enqueued  int64       // guarded by mu
	persisted int64       // guarded by mu
	written   *sync.Cond  // signalled when persisted grows
	closed    bool        // guarded by mu

	wake      chan struct{} // capacity 1, never closed
	stop      chan struct{}
	drained   chan struct{}
	closeOnce sync.Once
}

// NewEventLog creates a new event log with an optional persister.
// With a persister, a single writer goroutine drains events in Seq order
// until Close is called.
func NewEventLog(persister EventPersister) *EventLog {
	el := &EventLog{
		events:    make([]GameEvent, 0),
		persister: persister,
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
		drained:   make(chan struct{}),
	}
	el.written = sync.NewCond(&el.mu)
	if persister != nil {
		go el.drain()
	} else {
		el.closed = true
		close(el.drained)
	}
	return el
}

// OnPersist registers a callback invoked after every persister write.
// Must be called before the first Append.
func (el *EventLog) OnPersist(fn func(error)) {
	el.onPersist = fn
}

// Append adds a new event to the log and returns it with its Seq set.
// Appending after Close records the event in memory only.
func (el *EventLog) Append(event GameEvent) GameEvent {
	el.mu.Lock()
	el.seq++
	event.Seq = el.seq
	el.events = append(el.events, event)
	queued := !el.closed
	if queued {
		el.outbox = append(el.outbox, event)
		el.enqueued++
	}
	el.mu.Unlock()

	if queued {
		select {
		case el.wake <- struct{}{}:
		default: // writer already signalled
		}
	}
	return event
}

func (el *EventLog) drain() {
	defer close(el.drained)
	for {
		select {
		case <-el.wake:
			el.writeOutbox()
		case <-el.stop:
			el.writeOutbox()
			return
		}
	}
}

// writeOutbox hands every queued event to the persister. The lock is only
// held to swap the batch out and to count finished writes.
func (el *EventLog) writeOutbox() {
	el.mu.Lock()
	batch := el.outbox
	el.outbox = nil
	el.mu.Unlock()

	for _, e := range batch {
		err := el.persister.Append(e)
		if el.onPersist != nil {
			el.onPersist(err)
		}
		el.mu.Lock()
		el.persisted++
		el.written.Broadcast()
		el.mu.Unlock()
	}
}

// Backlog returns how many events are waiting for the persister.
func (el *EventLog) Backlog() int {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return int(el.enqueued - el.persisted)
}

// Flush blocks until every event appended so far has been written.
func (el *EventLog) Flush() {
	el.mu.Lock()
	defer el.mu.Unlock()
	target := el.enqueued
	for el.persisted < target {
		el.written.Wait()
	}
}

// Close flushes pending writes and stops the writer goroutine.
func (el *EventLog) Close() {
	el.closeOnce.Do(func() {
		el.mu.Lock()
		wasOpen := !el.closed
		el.closed = true
		el.mu.Unlock()
		if wasOpen {
			close(el.stop)
		}
	})
	<-el.drained
}

// GetByType returns all events of the given type.
func (el *EventLog) GetByType(t EventType) []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []GameEvent
	for _, e := range el.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// Last returns the most recent event, if any.
func (el *EventLog) Last() (GameEvent, bool) {
	el.mu.RLock()
	defer el.mu.RUnlock()
	if len(el.events) == 0 {
		return GameEvent{}, false
	}
	return el.events[len(el.events)-1], true
}

// Len returns the number of events recorded.
func (el *EventLog) Len() int {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return len(el.events)
}

// Replay returns a copy of the full history.
func (el *EventLog) Replay() []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()
	out := make([]GameEvent, len(el.events))
	copy(out, el.events)
	return out
}

// GenerateEventID creates a unique event identifier.
func GenerateEventID() string {
	return uuid.NewString()
}
