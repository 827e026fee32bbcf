package storage

import (
	"context"
	"fmt"
)

// Event type names as written by the engine's event log.
const (
	entryAction = "PET_ACTION"
	entryDecay  = "DECAY_TICK"
	entryDied   = "PET_DIED"
)

// Reconstructor turns journal entries back into a readable history of a run.
// Used by `tamagotchi -history`; never used to revive a pet.
type Reconstructor struct {
	repo JournalRepository
}

// NewReconstructor creates a new recap builder.
func NewReconstructor(repo JournalRepository) *Reconstructor {
	return &Reconstructor{repo: repo}
}

// RebuiltState is the last state a run recorded.
type RebuiltState struct {
	Hunger  int
	Boredom int
	Fatigue int
	Satiety int
	IsDead  bool
}

// RecapEvent is one human-readable line of a run's history.
type RecapEvent struct {
	Timestamp string `json:"timestamp"`
	EventType string `json:"event_type"`
	Summary   string `json:"summary"`
	Impact    string `json:"impact"` // "POSITIVE", "NEGATIVE", "NEUTRAL"
}

// Recap summarizes one run.
type Recap struct {
	RunID   string
	Final   RebuiltState
	Ticks   int
	Actions int
	Events  []RecapEvent
}

// LatestRecap builds the recap of the most recent run. It returns nil when
// the journal is empty.
func (r *Reconstructor) LatestRecap(ctx context.Context) (*Recap, error) {
	runID, err := r.repo.LatestRun(ctx)
	if err != nil {
		return nil, err
	}
	if runID == "" {
		return nil, nil
	}
	return r.RecapRun(ctx, runID)
}

// RecapRun builds the recap of one run.
func (r *Reconstructor) RecapRun(ctx context.Context, runID string) (*Recap, error) {
	entries, err := r.repo.ListByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	recap := &Recap{RunID: runID}
	var died *JournalEntry
	for i, e := range entries {
		switch e.EventType {
		case entryDecay:
			recap.Ticks++
		case entryAction:
			recap.Actions++
		case entryDied:
			died = &entries[i]
		}
		recap.Final = stateOf(e)

		recap.Events = append(recap.Events, RecapEvent{
			Timestamp: e.Timestamp.Format("15:04:05"),
			EventType: e.EventType,
			Summary:   summarizeEntry(e),
			Impact:    determineImpact(e),
		})
	}
	// Decay and actions append outside the engine lock; the death entry is
	// the authoritative final state when present.
	if died != nil {
		recap.Final = stateOf(*died)
	}
	return recap, nil
}

func stateOf(e JournalEntry) RebuiltState {
	return RebuiltState{
		Hunger:  e.Hunger,
		Boredom: e.Boredom,
		Fatigue: e.Fatigue,
		Satiety: e.Satiety,
		IsDead:  e.IsDead,
	}
}

// summarizeEntry creates a human-readable summary.
func summarizeEntry(e JournalEntry) string {
	switch e.EventType {
	case entryDecay:
		return "Time passed."
	case entryDied:
		return "Your Tamagotchi died."
	case entryAction:
		if !e.Accepted {
			return fmt.Sprintf("%s was not accepted.", e.Action)
		}
		switch e.Action {
		case "Feed":
			return "You fed it."
		case "Play":
			return "You played with it."
		case "Sleep":
			return "You put it to bed."
		case "Poop":
			return "You brought it to the toilet."
		case "CheckState":
			return "You checked on it."
		}
	}
	return "Something happened."
}

// determineImpact classifies the entry impact.
func determineImpact(e JournalEntry) string {
	switch e.EventType {
	case entryDecay, entryDied:
		return "NEGATIVE"
	case entryAction:
		if e.Accepted && e.Action != "CheckState" {
			return "POSITIVE"
		}
	}
	return "NEUTRAL"
}
