package store

/**
 * Persistence of simulation runs in a local SQLite database.
 */

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/oddsmith/scoresim/internal/logger"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection and persists simulation runs.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath and ensures the run
// table exists.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTable(&Run{}); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Database initialized", dbPath)
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// createTable creates the table for the given persistable object using struct tags
func (s *Store) createTable(obj Persistable) error {
	createSQL := generateCreateTableSQL(obj)
	logger.Debug("Creating table with SQL", createSQL)

	if _, err := s.db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", obj.TableName(), err)
	}

	for _, query := range generateIndexSQL(obj) {
		if _, err := s.db.Exec(query); err != nil {
			logger.Warn("Failed to create index", err)
		}
	}

	return nil
}

// SaveRun inserts a run record and fills in its generated ID.
func (s *Store) SaveRun(r *Run) error {
	columns, placeholders, values := getInsertData(r)

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.TableName(), strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	logger.Debug("Insert SQL", query)

	res, err := s.db.Exec(query, values...)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.TableName(), err)
	}

	if id, err := res.LastInsertId(); err == nil {
		r.ID = id
	}

	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]*Run, error) {
	proto := &Run{}
	columns, _ := getSelectData(proto)

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id DESC LIMIT ?",
		strings.Join(columns, ", "), proto.TableName())

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", proto.TableName(), err)
	}
	defer rows.Close()

	var results []*Run
	for rows.Next() {
		run := &Run{}
		_, destinations := getSelectData(run)
		if err := rows.Scan(destinations...); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", proto.TableName(), err)
		}
		results = append(results, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows from %s: %w", proto.TableName(), err)
	}

	return results, nil
}
