// Package catalog persists extracted runs to a SQLite database so repeated
// batch conversions of the same input directory can be audited after the
// fact: which archives were seen, which runs they yielded, and where the
// artifacts went.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tsawler/eisx/extract"
)

// Store is a handle to an open catalog database.
type Store struct {
	db *sql.DB
}

// RunRecord describes one extracted run.
type RunRecord struct {
	Archive  string
	Member   string
	BaseName string
	CSVPath  string
	TSVPath  string
}

// Open opens (creating if necessary) the catalog database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		archive TEXT,
		member TEXT,
		base_name TEXT,
		csv_path TEXT,
		tsv_path TEXT,
		row_count INTEGER,
		recorded_at TEXT
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id INTEGER,
		row_number INTEGER,
		frequency REAL,
		z_real REAL,
		z_imag REAL,
		PRIMARY KEY (run_id, row_number),
		FOREIGN KEY(run_id) REFERENCES runs(id)
	);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun inserts one run and its samples, returning the run's catalog id.
// The run row and every sample go in as a single transaction so a failed
// insert never leaves a half-recorded run behind.
//
// Sample columns are positional: the first three extracted columns map to
// frequency, z_real and z_imag; absent columns are stored as NULL.
func (s *Store) RecordRun(r RunRecord, t extract.Table) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning run transaction: %w", err)
	}

	res, err := tx.Exec(`INSERT INTO runs (
		archive, member, base_name, csv_path, tsv_path, row_count, recorded_at
	) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Archive,
		r.Member,
		r.BaseName,
		r.CSVPath,
		r.TSVPath,
		len(t.Rows),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("inserting run for %s: %w", r.Member, err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("resolving run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO samples (
		run_id, row_number, frequency, z_real, z_imag
	) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing sample insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		values := [3]any{nil, nil, nil}
		for j := 0; j < len(row) && j < 3; j++ {
			values[j] = row[j]
		}
		if _, err := stmt.Exec(runID, i, values[0], values[1], values[2]); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}

	return runID, nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting runs: %w", err)
	}
	return n, nil
}
