package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Step is one idempotent structural adjustment. Check reports whether
// Apply still needs to run; both execute inside the same transaction.
// Steps exist for databases created before the embedded migrations:
// a fresh schema passes every check untouched.
type Step struct {
	Name  string
	Check func(*sql.Tx) (bool, error)
	Apply func(*sql.Tx) error
}

// BootstrapSteps runs in order, once per process start.
var BootstrapSteps = []Step{
	{
		Name:  "add_info_column",
		Check: infoColumnMissing,
		Apply: execStep(`ALTER TABLE maquetes ADD COLUMN info TEXT NOT NULL DEFAULT ''`),
	},
	{
		Name:  "info_array_to_text",
		Check: infoColumnIsType("ARRAY"),
		Apply: execStep(`ALTER TABLE maquetes ALTER COLUMN info TYPE TEXT USING array_to_string(info, ' ')`),
	},
	{
		Name:  "info_cast_to_text",
		Check: infoColumnNotText,
		Apply: execStep(`ALTER TABLE maquetes ALTER COLUMN info TYPE TEXT USING info::text`),
	},
	{
		Name:  "info_not_null_default",
		Check: infoColumnNullable,
		Apply: execStep(
			`ALTER TABLE maquetes ALTER COLUMN info SET DEFAULT ''`,
			`UPDATE maquetes SET info = '' WHERE info IS NULL`,
			`ALTER TABLE maquetes ALTER COLUMN info SET NOT NULL`,
		),
	},
	{
		Name:  "drop_nome_unique_constraints",
		Check: nomeUniqueConstraintExists,
		Apply: dropNomeUniqueConstraints,
	},
	{
		Name:  "drop_nome_unique_index",
		Check: nomeUniqueIndexExists,
		Apply: execStep(`DROP INDEX IF EXISTS maquetes_nome_key`),
	},
	{
		Name:  "images_delete_cascade",
		Check: imagesFKNotCascading,
		Apply: repointImagesFK,
	},
}

// Bootstrap executes the step list, one transaction per step. It is
// safe to re-run against an already adjusted schema.
func (s *Store) Bootstrap() error {
	for _, step := range BootstrapSteps {
		err := s.execTx(func(tx *sql.Tx) error {
			needed, err := step.Check(tx)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}
			if !needed {
				return nil
			}
			if err := step.Apply(tx); err != nil {
				return fmt.Errorf("apply failed: %w", err)
			}
			s.logger.Info("applied bootstrap step", zap.String("step", step.Name))
			return nil
		})
		if err != nil {
			return fmt.Errorf("bootstrap step %s: %w", step.Name, err)
		}
	}
	return nil
}

func execStep(statements ...string) func(*sql.Tx) error {
	return func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.Exec(stmt); err != nil {
				return err
			}
		}
		return nil
	}
}

func infoColumnMissing(tx *sql.Tx) (bool, error) {
	var count int
	err := tx.QueryRow(`
		SELECT COUNT(*) FROM information_schema.columns
		WHERE table_name = 'maquetes' AND column_name = 'info'
	`).Scan(&count)
	return count == 0, err
}

func infoColumnIsType(dataType string) func(*sql.Tx) (bool, error) {
	return func(tx *sql.Tx) (bool, error) {
		var count int
		err := tx.QueryRow(`
			SELECT COUNT(*) FROM information_schema.columns
			WHERE table_name = 'maquetes' AND column_name = 'info' AND data_type = $1
		`, dataType).Scan(&count)
		return count > 0, err
	}
}

func infoColumnNotText(tx *sql.Tx) (bool, error) {
	var count int
	err := tx.QueryRow(`
		SELECT COUNT(*) FROM information_schema.columns
		WHERE table_name = 'maquetes' AND column_name = 'info'
		  AND data_type NOT IN ('text', 'character varying')
	`).Scan(&count)
	return count > 0, err
}

func infoColumnNullable(tx *sql.Tx) (bool, error) {
	var count int
	err := tx.QueryRow(`
		SELECT COUNT(*) FROM information_schema.columns
		WHERE table_name = 'maquetes' AND column_name = 'info'
		  AND (is_nullable = 'YES' OR column_default IS NULL)
	`).Scan(&count)
	return count > 0, err
}

// nomeUniqueConstraintNames discovers uniqueness constraints covering
// maquetes.nome by metadata, not by a fixed name: the legacy schema
// named it maquetes_nome_key but restored dumps have renamed it.
func nomeUniqueConstraintNames(tx *sql.Tx) ([]string, error) {
	rows, err := tx.Query(`
		SELECT con.conname
		FROM pg_constraint con
		JOIN pg_class rel ON rel.oid = con.conrelid
		JOIN pg_attribute att ON att.attrelid = rel.oid AND att.attnum = ANY (con.conkey)
		WHERE rel.relname = 'maquetes' AND con.contype = 'u' AND att.attname = 'nome'
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func nomeUniqueConstraintExists(tx *sql.Tx) (bool, error) {
	names, err := nomeUniqueConstraintNames(tx)
	return len(names) > 0, err
}

func dropNomeUniqueConstraints(tx *sql.Tx) error {
	names, err := nomeUniqueConstraintNames(tx)
	if err != nil {
		return err
	}
	for _, name := range names {
		stmt := fmt.Sprintf("ALTER TABLE maquetes DROP CONSTRAINT %s", pq.QuoteIdentifier(name))
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func nomeUniqueIndexExists(tx *sql.Tx) (bool, error) {
	var count int
	err := tx.QueryRow(`
		SELECT COUNT(*) FROM pg_indexes
		WHERE tablename = 'maquetes' AND indexname = 'maquetes_nome_key'
	`).Scan(&count)
	return count > 0, err
}

func imagesFKNotCascading(tx *sql.Tx) (bool, error) {
	var count int
	err := tx.QueryRow(`
		SELECT COUNT(*)
		FROM pg_constraint con
		JOIN pg_class rel ON rel.oid = con.conrelid
		WHERE rel.relname = 'maquete_images' AND con.contype = 'f' AND con.confdeltype <> 'c'
	`).Scan(&count)
	return count > 0, err
}

func repointImagesFK(tx *sql.Tx) error {
	rows, err := tx.Query(`
		SELECT con.conname
		FROM pg_constraint con
		JOIN pg_class rel ON rel.oid = con.conrelid
		WHERE rel.relname = 'maquete_images' AND con.contype = 'f' AND con.confdeltype <> 'c'
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, name := range names {
		stmt := fmt.Sprintf("ALTER TABLE maquete_images DROP CONSTRAINT %s", pq.QuoteIdentifier(name))
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`
		ALTER TABLE maquete_images
		ADD CONSTRAINT maquete_images_maquete_id_fkey
		FOREIGN KEY (maquete_id) REFERENCES maquetes(id) ON DELETE CASCADE
	`)
	return err
}
