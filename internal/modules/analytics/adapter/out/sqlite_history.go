package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"switchsprint/internal/modules/analytics/domain"

	_ "modernc.org/sqlite"
)

type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (*SQLiteHistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection serialises writes from the observer and commands.
	db.SetMaxOpenConns(1)
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS session_history (
  date TEXT PRIMARY KEY,
  started_at TEXT,
  ended_at TEXT,
  total_seconds INTEGER NOT NULL,
  items_done INTEGER NOT NULL,
  items_total INTEGER NOT NULL,
  applications_count INTEGER NOT NULL,
  recruiter_messages_count INTEGER NOT NULL,
  notes TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create session_history table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Close() error {
	return s.db.Close()
}

func (s *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_history`); err != nil {
		return fmt.Errorf("reset session history: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) UpsertSessions(ctx context.Context, rows []domain.HistoryRow) error {
	const stmt = `
INSERT INTO session_history (date, started_at, ended_at, total_seconds, items_done, items_total, applications_count, recruiter_messages_count, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
  started_at=excluded.started_at,
  ended_at=excluded.ended_at,
  total_seconds=excluded.total_seconds,
  items_done=excluded.items_done,
  items_total=excluded.items_total,
  applications_count=excluded.applications_count,
  recruiter_messages_count=excluded.recruiter_messages_count,
  notes=excluded.notes;
`
	if len(rows) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	prepared, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("prepare history upsert: %w", err)
	}
	defer prepared.Close()
	for _, row := range rows {
		if _, err := prepared.ExecContext(ctx,
			row.Date,
			row.StartedAt,
			row.EndedAt,
			row.TotalSeconds,
			row.ItemsDone,
			row.ItemsTotal,
			row.ApplicationsCount,
			row.RecruiterMessagesCount,
			row.Notes,
		); err != nil {
			return fmt.Errorf("upsert session %s: %w", row.Date, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history upsert: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Range(ctx context.Context, from, to string) ([]domain.HistoryRow, error) {
	const query = `
SELECT date, COALESCE(started_at, ''), COALESCE(ended_at, ''), total_seconds, items_done, items_total,
       applications_count, recruiter_messages_count, COALESCE(notes, '')
FROM session_history
WHERE (? = '' OR date >= ?) AND (? = '' OR date <= ?)
ORDER BY date;
`
	result, err := s.db.QueryContext(ctx, query, from, from, to, to)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}
	defer result.Close()
	out := make([]domain.HistoryRow, 0)
	for result.Next() {
		var row domain.HistoryRow
		if err := result.Scan(
			&row.Date,
			&row.StartedAt,
			&row.EndedAt,
			&row.TotalSeconds,
			&row.ItemsDone,
			&row.ItemsTotal,
			&row.ApplicationsCount,
			&row.RecruiterMessagesCount,
			&row.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan session history: %w", err)
		}
		out = append(out, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterate session history: %w", err)
	}
	return out, nil
}

// Weekly returns the latest limit weeks, newest first. limit <= 0 means all.
func (s *SQLiteHistoryProjector) Weekly(ctx context.Context, limit int) ([]domain.WeekTotal, error) {
	const query = `
SELECT strftime('%Y-W%W', date) AS week, COUNT(*), SUM(total_seconds), SUM(applications_count)
FROM session_history
GROUP BY week
ORDER BY week DESC
LIMIT ?;
`
	if limit <= 0 {
		limit = -1
	}
	result, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query weekly history: %w", err)
	}
	defer result.Close()
	out := make([]domain.WeekTotal, 0)
	for result.Next() {
		var week domain.WeekTotal
		if err := result.Scan(&week.Week, &week.Sessions, &week.TotalSeconds, &week.Applications); err != nil {
			return nil, fmt.Errorf("scan weekly history: %w", err)
		}
		out = append(out, week)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly history: %w", err)
	}
	return out, nil
}
