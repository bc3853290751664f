// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only inputs are stored. Scores are recomputed by replaying a run.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// timeLayout is fixed width so that created_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when a replay does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
}

// ReplaySummary is a replay without its event list.
type ReplaySummary struct {
	RunID     string
	GameID    string
	Seed      int64
	TickRate  int
	Ticks     int
	Flaps     int
	CreatedAt time.Time
}

// Duration returns the simulated length of the run.
func (r ReplaySummary) Duration() time.Duration {
	if r.TickRate <= 0 {
		return 0
	}
	return time.Duration(r.Ticks) * time.Second / time.Duration(r.TickRate)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			run_id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			flaps INTEGER NOT NULL DEFAULT 0,
			events TEXT NOT NULL,
			config TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Journals created before runs carried their configuration.
	var hasConfig int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info('replays') WHERE name = 'config'`,
	).Scan(&hasConfig); err != nil {
		return err
	}
	if hasConfig == 0 {
		_, err := s.db.Exec(`ALTER TABLE replays ADD COLUMN config TEXT NOT NULL DEFAULT ''`)
		return err
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay records a finished run. Saving the same run id twice replaces it.
func (s *Store) SaveReplay(gameID string, r flappy.Replay) error {
	if r.RunID == "" {
		return errors.New("storage: replay has no run id")
	}

	events, err := json.Marshal(r.Events)
	if err != nil {
		return fmt.Errorf("storage: cannot encode events: %w", err)
	}

	var cfg []byte
	if r.Config != nil {
		if cfg, err = yaml.Marshal(r.Config); err != nil {
			return fmt.Errorf("storage: cannot encode config: %w", err)
		}
	}

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO replays
		 (run_id, game_id, seed, tick_rate, width, height, ticks, flaps, events, config, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, gameID, r.Seed, r.TickRate, r.Width, r.Height, r.Ticks, r.Flaps(),
		string(events), string(cfg), createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save replay: %w", err)
	}
	return nil
}

// Replay loads a full replay by run id.
// Returns ErrNotFound if no replay has that id.
func (s *Store) Replay(runID string) (flappy.Replay, error) {
	var (
		r         flappy.Replay
		events    string
		cfg       string
		createdAt string
	)
	err := s.db.QueryRow(
		`SELECT run_id, seed, tick_rate, width, height, ticks, events, config, created_at
		 FROM replays WHERE run_id = ?`,
		runID,
	).Scan(&r.RunID, &r.Seed, &r.TickRate, &r.Width, &r.Height, &r.Ticks, &events, &cfg, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, ErrNotFound
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	if err := json.Unmarshal([]byte(events), &r.Events); err != nil {
		return r, fmt.Errorf("storage: cannot decode events for %s: %w", runID, err)
	}
	if cfg != "" {
		c := config.DefaultFlappyConfig()
		if err := yaml.Unmarshal([]byte(cfg), &c); err != nil {
			return r, fmt.Errorf("storage: cannot decode config for %s: %w", runID, err)
		}
		r.Config = &c
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RecentReplays lists the most recent replays, newest first.
func (s *Store) RecentReplays(limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, game_id, seed, tick_rate, ticks, flaps, created_at
		 FROM replays
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplaySummary
	for rows.Next() {
		var e ReplaySummary
		var createdAt string
		if err := rows.Scan(&e.RunID, &e.GameID, &e.Seed, &e.TickRate, &e.Ticks, &e.Flaps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteReplay removes a replay. Returns ErrNotFound if it did not exist.
func (s *Store) DeleteReplay(runID string) error {
	result, err := s.db.Exec("DELETE FROM replays WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// parseTime reads the timestamps written by SaveReplay.
func parseTime(v string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
		return t
	}
	return time.Time{}
}
