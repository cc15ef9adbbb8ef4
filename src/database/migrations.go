package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
)

// A migration is one ordered schema upgrade. Versions are applied in
// ascending order and recorded in schema_migrations so each script runs
// at most once.
type migration struct {
	version int
	name    string
	script  string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create_counters_table",
		script: `
			CREATE TABLE IF NOT EXISTS counters (
				id          TEXT PRIMARY KEY,
				value       INTEGER NOT NULL DEFAULT 0,
				description TEXT
			);`,
	},
	{
		version: 2,
		name:    "add_counter_statistics",
		script: `
			ALTER TABLE counters ADD COLUMN total_increments INTEGER NOT NULL DEFAULT 0;
			ALTER TABLE counters ADD COLUMN average_increment REAL NOT NULL DEFAULT 0;
			ALTER TABLE counters ADD COLUMN highest_value INTEGER NOT NULL DEFAULT 0;`,
	},
}

// applyMigrations brings the schema up to date. Safe to run on every
// start: already-applied versions are skipped, and each script commits
// together with its bookkeeping row or not at all.
func (d *Database) applyMigrations(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := d.migrationApplied(ctx, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		log.Printf("Applying migration %d (%s)", m.version, m.name)
		tx, err := d.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
		if _, err := tx.ExecContext(ctx, m.script); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.version, m.name); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}
	return nil
}

func (d *Database) migrationApplied(ctx context.Context, version int) (bool, error) {
	var one int
	err := d.db.QueryRowContext(ctx,
		"SELECT 1 FROM schema_migrations WHERE version = ?", version).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		return false, fmt.Errorf("check migration %d: %w", version, err)
	}
}
