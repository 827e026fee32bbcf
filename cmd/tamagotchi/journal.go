package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MRamiBalles/tamagotchi/internal/events"
	"github.com/MRamiBalles/tamagotchi/internal/infra/storage"
)

const journalWriteTimeout = 2 * time.Second

// journalPersister translates engine events to journal entries.
type journalPersister struct {
	repo  storage.JournalRepository
	runID string
}

func newJournalPersister(repo storage.JournalRepository, runID string) *journalPersister {
	return &journalPersister{repo: repo, runID: runID}
}

func (j *journalPersister) Append(event events.GameEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), journalWriteTimeout)
	defer cancel()

	return j.repo.Append(ctx, storage.JournalEntry{
		EventID:   event.ID,
		RunID:     j.runID,
		Seq:       event.Seq,
		Timestamp: event.Timestamp,
		EventType: string(event.Type),
		ActorID:   event.ActorID,
		Action:    event.Action,
		Accepted:  event.Accepted,
		Hunger:    event.Pet.Hunger,
		Boredom:   event.Pet.Boredom,
		Fatigue:   event.Pet.Fatigue,
		Satiety:   event.Pet.Satiety,
		IsDead:    event.Pet.IsDead,
	})
}

// printRecap writes the history of the last journaled run.
func printRecap(ctx context.Context, repo storage.JournalRepository, w io.Writer) error {
	recap, err := storage.NewReconstructor(repo).LatestRecap(ctx)
	if err != nil {
		return err
	}
	if recap == nil {
		fmt.Fprintln(w, "The journal is empty.")
		return nil
	}

	fmt.Fprintf(w, "Run %s: %d decay ticks, %d actions\n", recap.RunID, recap.Ticks, recap.Actions)
	for _, ev := range recap.Events {
		fmt.Fprintf(w, "[%s] %-8s %s\n", ev.Timestamp, ev.Impact, ev.Summary)
	}
	f := recap.Final
	status := "alive"
	if f.IsDead {
		status = "dead"
	}
	fmt.Fprintf(w, "Final: Hungry %d, Bored %d, Tired %d, Full %d (%s)\n",
		f.Hunger, f.Boredom, f.Fatigue, f.Satiety, status)
	return nil
}
