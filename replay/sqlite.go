package replay

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/quintesse/game"
	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

// SQLiteStore keeps replay metadata in a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (and creates if needed) the database at path.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			mode INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			grade TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL DEFAULT 0,
			recorded_ts TEXT NOT NULL,
			data BLOB
		);`,
		`CREATE INDEX IF NOT EXISTS replays_player ON replays(player, recorded_ts);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Save stores a replay and returns its index.
func (s *SQLiteStore) Save(ctx context.Context, r Record, data []byte) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO replays(player, mode, level, grade, frames, recorded_ts, data) VALUES(?,?,?,?,?,?,?)`,
		r.Player,
		int64(r.Mode),
		r.Level,
		r.Grade,
		r.Frames,
		r.Recorded.UTC().Format(timeLayout),
		data,
	)
	if err != nil {
		return 0, fmt.Errorf("save replay: %w", err)
	}
	return res.LastInsertId()
}

// ListReplays returns the player's replays, newest first.
func (s *SQLiteStore) ListReplays(ctx context.Context, player string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player, mode, level, grade, frames, recorded_ts
		 FROM replays WHERE player = ? ORDER BY recorded_ts DESC, id DESC`, player)
	if err != nil {
		return nil, fmt.Errorf("list replays: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r    Record
			mode int64
			ts   string
		)
		if err := rows.Scan(&r.Index, &r.Player, &mode, &r.Level, &r.Grade, &r.Frames, &ts); err != nil {
			return nil, fmt.Errorf("scan replay: %w", err)
		}
		r.Mode = game.Mode(mode)
		if parsed, err := time.Parse(timeLayout, ts); err == nil {
			r.Recorded = parsed
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list replays: %w", err)
	}
	return out, nil
}
