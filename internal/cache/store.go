// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists parsed query results in a SQLite database so
// repeated or resumed sessions skip redundant network round-trips.
// Entries are addressed by the canonical query key and expire after a
// configurable TTL; expired entries are misses and are evicted lazily.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

const dbFile = "cache.db"

// Store is the on-disk cache of query results.
type Store struct {
	db  *sql.DB
	ttl time.Duration

	// now is replaceable in tests to simulate TTL expiry.
	now func() time.Time
}

// Entry is one cached result set.
type Entry struct {
	Papers    []types.Paper
	Total     int
	CreatedAt time.Time
}

// Open opens or creates the cache database at cfg.Dir/cache.db and
// creates the schema if needed.
func Open(cfg types.CacheConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, &types.CacheError{Op: "open", Err: fmt.Errorf("creating cache directory: %w", err)}
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, &types.CacheError{Op: "open", Err: err}
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = types.DefaultCacheTTL
	}

	s := &Store{db: db, ttl: ttl, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, &types.CacheError{Op: "open", Err: err}
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		key        TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		total      INTEGER NOT NULL,
		papers     TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Get returns the entry for key, or nil on a miss. An entry older than
// the TTL is a miss and is deleted on the way out; Get never returns a
// stale value.
func (s *Store) Get(key string) (*Entry, error) {
	var createdAt, papersJSON string
	var total int
	err := s.db.QueryRow(
		`SELECT created_at, total, papers FROM entries WHERE key = ?`, key,
	).Scan(&createdAt, &total, &papersJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &types.CacheError{Op: "get", Err: err}
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, &types.CacheError{Op: "get", Err: fmt.Errorf("corrupt timestamp for key %s: %w", key, err)}
	}

	if s.now().Sub(created) >= s.ttl {
		// Lazy eviction. A failed delete still reports a miss.
		s.db.Exec(`DELETE FROM entries WHERE key = ?`, key)
		return nil, nil
	}

	var papers []types.Paper
	if err := json.Unmarshal([]byte(papersJSON), &papers); err != nil {
		return nil, &types.CacheError{Op: "get", Err: fmt.Errorf("corrupt entry for key %s: %w", key, err)}
	}

	return &Entry{Papers: papers, Total: total, CreatedAt: created}, nil
}

// Put stores a result set under key, replacing any existing entry with
// a fresh timestamp.
func (s *Store) Put(key string, total int, papers []types.Paper) error {
	papersJSON, err := json.Marshal(papers)
	if err != nil {
		return &types.CacheError{Op: "put", Err: err}
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO entries (key, created_at, total, papers) VALUES (?, ?, ?, ?)`,
		key, s.now().UTC().Format(time.RFC3339Nano), total, string(papersJSON),
	)
	if err != nil {
		return &types.CacheError{Op: "put", Err: err}
	}
	return nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM entries`); err != nil {
		return &types.CacheError{Op: "clear", Err: err}
	}
	return nil
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries int
	Papers  int
	Oldest  time.Time
}

// Stats reports entry and paper counts plus the oldest entry timestamp.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	rows, err := s.db.Query(`SELECT created_at, papers FROM entries`)
	if err != nil {
		return st, &types.CacheError{Op: "get", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var createdAt, papersJSON string
		if err := rows.Scan(&createdAt, &papersJSON); err != nil {
			return st, &types.CacheError{Op: "get", Err: err}
		}
		st.Entries++
		var papers []types.Paper
		if json.Unmarshal([]byte(papersJSON), &papers) == nil {
			st.Papers += len(papers)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			if st.Oldest.IsZero() || t.Before(st.Oldest) {
				st.Oldest = t
			}
		}
	}
	return st, rows.Err()
}
