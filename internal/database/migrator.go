package database

import (
	"database/sql"
	"embed"
	"fmt"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies the embedded base-schema migrations that have
// not been recorded in schema_migrations yet, one transaction per
// file. Files are applied in lexical order.
func (s *Store) RunMigrations() error {
	if err := s.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migrationName := entry.Name()

		applied, err := s.isMigrationApplied(migrationName)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if applied {
			continue
		}

		migrationSQL, err := migrationsFS.ReadFile("migrations/" + migrationName)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", migrationName, err)
		}

		err = s.execTx(func(tx *sql.Tx) error {
			if _, err := tx.Exec(string(migrationSQL)); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", migrationName, err)
			}
			if _, err := tx.Exec(
				"INSERT INTO schema_migrations (name, applied_at) VALUES ($1, NOW())",
				migrationName,
			); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migrationName, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		s.logger.Info("applied migration", zap.String("migration", migrationName))
	}

	return nil
}

func (s *Store) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT NOW()
		)
	`
	_, err := s.db.Exec(query)
	return err
}

func (s *Store) isMigrationApplied(name string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE name = $1",
		name,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
