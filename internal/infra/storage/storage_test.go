package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func newTestRepo(t *testing.T) *SQLiteJournalRepository {
	t.Helper()
	db, err := InitSQLite(filepath.Join(t.TempDir(), "nested", "journal.db"))
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteJournalRepository(db)
}

func entry(run string, seq int64, typ, action string, accepted bool, boredom int, dead bool) JournalEntry {
	return JournalEntry{
		EventID:   fmt.Sprintf("%s-%d", run, seq),
		RunID:     run,
		Seq:       seq,
		Timestamp: time.Unix(1700000000, seq),
		EventType: typ,
		ActorID:   "CALLER",
		Action:    action,
		Accepted:  accepted,
		Boredom:   boredom,
		IsDead:    dead,
	}
}

func TestInitSQLiteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	for i := 0; i < 2; i++ {
		db, err := InitSQLite(path)
		if err != nil {
			t.Fatalf("init %d: %v", i, err)
		}
		db.Close()
	}
}

func TestAppendAndListByRun(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	// Inserted out of order on purpose.
	for _, e := range []JournalEntry{
		entry("run-a", 2, entryDecay, "", false, 5, false),
		entry("run-a", 1, entryAction, "Feed", true, 0, false),
		entry("run-b", 1, entryAction, "Play", true, 0, false),
	} {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.ListByRun(ctx, "run-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	if got[0].Seq != 1 || got[0].Action != "Feed" || !got[0].Accepted {
		t.Errorf("first entry = %+v", got[0])
	}
	if got[1].Boredom != 5 {
		t.Errorf("second entry = %+v", got[1])
	}
	if !got[0].Timestamp.Equal(time.Unix(1700000000, 1)) {
		t.Errorf("timestamp = %v", got[0].Timestamp)
	}
}

func TestDuplicateSeqRejected(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first := entry("run-a", 1, entryDecay, "", false, 5, false)
	if err := repo.Append(ctx, first); err != nil {
		t.Fatalf("append: %v", err)
	}
	dup := first
	dup.EventID = "other"
	if err := repo.Append(ctx, dup); err == nil {
		t.Fatal("expected unique (run_id, seq) violation")
	}
}

func TestLatestRunAndCount(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	run, err := repo.LatestRun(ctx)
	if err != nil || run != "" {
		t.Fatalf("empty journal: run=%q err=%v", run, err)
	}

	repo.Append(ctx, entry("old", 1, entryDecay, "", false, 5, false))
	repo.Append(ctx, entry("new", 1, entryDecay, "", false, 5, false))
	repo.Append(ctx, entry("new", 2, entryDecay, "", false, 10, false))

	run, err = repo.LatestRun(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if run != "new" {
		t.Errorf("latest run = %q", run)
	}
	n, err := repo.CountByType(ctx, "new", entryDecay)
	if err != nil || n != 2 {
		t.Errorf("count = %d, err = %v", n, err)
	}
}

func TestRecap(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, e := range []JournalEntry{
		entry("run", 1, entryDecay, "", false, 95, false),
		entry("run", 2, entryAction, "Play", true, 72, false),
		entry("run", 3, entryAction, "CheckState", true, 72, false),
		entry("run", 4, entryDied, "", false, 100, true),
		entry("run", 5, entryDecay, "", false, 100, true),
		entry("run", 6, entryAction, "Feed", false, 100, true),
	} {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recap, err := NewReconstructor(repo).LatestRecap(ctx)
	if err != nil {
		t.Fatalf("recap: %v", err)
	}
	if recap.Ticks != 2 || recap.Actions != 3 {
		t.Errorf("ticks=%d actions=%d", recap.Ticks, recap.Actions)
	}
	if !recap.Final.IsDead || recap.Final.Boredom != 100 {
		t.Errorf("final = %+v", recap.Final)
	}

	wantImpact := []string{"NEGATIVE", "POSITIVE", "NEUTRAL", "NEGATIVE", "NEGATIVE", "NEUTRAL"}
	for i, ev := range recap.Events {
		if ev.Impact != wantImpact[i] {
			t.Errorf("event %d (%s) impact = %s, want %s", i, ev.Summary, ev.Impact, wantImpact[i])
		}
	}
	if recap.Events[5].Summary != "Feed was not accepted." {
		t.Errorf("summary = %q", recap.Events[5].Summary)
	}
}

func TestLatestRecapEmpty(t *testing.T) {
	recap, err := NewReconstructor(newTestRepo(t)).LatestRecap(context.Background())
	if err != nil || recap != nil {
		t.Fatalf("recap=%v err=%v", recap, err)
	}
}
