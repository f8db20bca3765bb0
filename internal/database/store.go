package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// DuplicateError is returned when the database rejects a write with a
// unique_violation. Constraint carries the violated constraint name.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value violates constraint %q", e.Constraint)
}

// Store owns the connection pool. A nil *Store means the database was
// never configured; handlers treat that as the missing_config state.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// New opens the pool without requiring the database to be reachable:
// connections are established lazily, so a store configured against a
// database that is down at boot recovers as soon as it comes back.
// Reachability is Probe's job.
func New(connectionString string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// NewFromDB wraps an existing pool; used by tests to back the store
// with a mock driver.
func NewFromDB(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Probe checks connectivity. Every resource handler calls it before
// touching the database so a dead connection degrades to 503 instead
// of surfacing as a query failure.
func (s *Store) Probe() error {
	if _, err := s.db.Exec("SELECT 1"); err != nil {
		s.logger.Warn("database probe failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// execTx runs fn inside a transaction, committing on success and
// rolling back on any error.
func (s *Store) execTx(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// translateError maps driver-level failures onto the store's error
// taxonomy: unique_violation becomes DuplicateError, a foreign key
// pointing at a missing row (and empty result sets) become ErrNotFound.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return &DuplicateError{Constraint: pqErr.Constraint}
		case "23503":
			return ErrNotFound
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
