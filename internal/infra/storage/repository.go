// Package storage provides the optional on-disk journal for the pet engine.
// The journal is an audit trail: nothing here is ever loaded back into a
// live pet. This package implements the repository pattern to keep the
// domain pure.
package storage

import (
	"context"
	"time"
)

// JournalEntry mirrors an engine event for persistence.
// The domain package should NOT import this; use interfaces instead.
type JournalEntry struct {
	EventID   string    `json:"event_id" db:"event_id"`
	RunID     string    `json:"run_id" db:"run_id"` // One per process lifetime
	Seq       int64     `json:"seq" db:"seq"`
	Timestamp time.Time `json:"timestamp" db:"timestamp_ns"`
	EventType string    `json:"event_type" db:"event_type"`
	ActorID   string    `json:"actor_id" db:"actor_id"`
	Action    string    `json:"action" db:"action"`
	Accepted  bool      `json:"accepted" db:"accepted"`
	Hunger    int       `json:"hunger" db:"hunger"`
	Boredom   int       `json:"boredom" db:"boredom"`
	Fatigue   int       `json:"fatigue" db:"fatigue"`
	Satiety   int       `json:"satiety" db:"satiety"`
	IsDead    bool      `json:"is_dead" db:"is_dead"`
}

// JournalRepository defines the interface for journal persistence.
type JournalRepository interface {
	// Append adds a new entry to the journal.
	Append(ctx context.Context, entry JournalEntry) error

	// ListByRun retrieves all entries of one run in Seq order.
	ListByRun(ctx context.Context, runID string) ([]JournalEntry, error)

	// LatestRun returns the most recently written run ID, or "" if the journal is empty.
	LatestRun(ctx context.Context) (string, error)

	// CountByType counts a run's entries of one event type.
	CountByType(ctx context.Context, runID, eventType string) (int, error)
}
