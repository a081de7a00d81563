package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id              TEXT PRIMARY KEY,
		sheet_id        TEXT NOT NULL,
		status          TEXT NOT NULL
		                CHECK(status IN ('succeeded','failed','dry_run')),
		completion_date TEXT,
		critical_count  INTEGER NOT NULL DEFAULT 0,
		connected_count INTEGER NOT NULL DEFAULT 0,
		isolated_count  INTEGER NOT NULL DEFAULT 0,
		update_count    INTEGER NOT NULL DEFAULT 0,
		error           TEXT NOT NULL DEFAULT '',
		started_at      TEXT NOT NULL,
		finished_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_sheet ON runs(sheet_id)`,

	`CREATE TABLE IF NOT EXISTS run_updates (
		run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		row_id      INTEGER NOT NULL,
		row_number  INTEGER NOT NULL,
		column_id   INTEGER NOT NULL,
		bucket      TEXT NOT NULL
		            CHECK(bucket IN ('critical','connected','isolated')),
		value       INTEGER,
		PRIMARY KEY (run_id, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_run_updates_row ON run_updates(row_number)`,
}
