package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteJournalRepository implements JournalRepository for SQLite.
type SQLiteJournalRepository struct {
	db *sql.DB
}

func NewSQLiteJournalRepository(db *sql.DB) *SQLiteJournalRepository {
	return &SQLiteJournalRepository{db: db}
}

func (r *SQLiteJournalRepository) Append(ctx context.Context, entry JournalEntry) error {
	query := `
		INSERT INTO journal (event_id, run_id, seq, timestamp_ns, event_type, actor_id, action, accepted, hunger, boredom, fatigue, satiety, is_dead)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.EventID, entry.RunID, entry.Seq, entry.Timestamp.UnixNano(), entry.EventType,
		entry.ActorID, entry.Action, entry.Accepted,
		entry.Hunger, entry.Boredom, entry.Fatigue, entry.Satiety, entry.IsDead,
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepository) ListByRun(ctx context.Context, runID string) ([]JournalEntry, error) {
	query := `SELECT event_id, run_id, seq, timestamp_ns, event_type, actor_id, action, accepted, hunger, boredom, fatigue, satiety, is_dead FROM journal WHERE run_id = ? ORDER BY seq ASC`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var ns int64
		err := rows.Scan(
			&e.EventID, &e.RunID, &e.Seq, &ns, &e.EventType, &e.ActorID, &e.Action, &e.Accepted,
			&e.Hunger, &e.Boredom, &e.Fatigue, &e.Satiety, &e.IsDead,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Timestamp = time.Unix(0, ns)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteJournalRepository) LatestRun(ctx context.Context) (string, error) {
	var runID string
	err := r.db.QueryRowContext(ctx, `SELECT run_id FROM journal ORDER BY rowid DESC LIMIT 1`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find latest run: %w", err)
	}
	return runID, nil
}

func (r *SQLiteJournalRepository) CountByType(ctx context.Context, runID, eventType string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM journal WHERE run_id = ? AND event_type = ?`
	if err := r.db.QueryRowContext(ctx, query, runID, eventType).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return n, nil
}
