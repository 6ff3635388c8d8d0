package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite. Records are stored as a
// JSON column; queries only ever need whole runs ordered by time.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database and applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		workload TEXT,
		commit_hash TEXT,
		records TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(run Run) error {
	records, err := json.Marshal(run.Records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	query := `INSERT INTO runs (timestamp, workload, commit_hash, records) VALUES (?, ?, ?, ?)`
	_, err = s.db.Exec(query, run.Timestamp, run.Workload, run.Commit, string(records))
	return err
}

func (s *SQLiteStore) LoadAll() ([]Run, error) {
	query := `SELECT timestamp, workload, commit_hash, records FROM runs ORDER BY timestamp ASC`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var ts time.Time
		var records string
		if err := rows.Scan(&ts, &run.Workload, &run.Commit, &records); err != nil {
			return nil, err
		}
		run.Timestamp = ts
		if err := json.Unmarshal([]byte(records), &run.Records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal records: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) LoadLatest() (*Run, error) {
	runs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}
