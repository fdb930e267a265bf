package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every startup; ALTER TABLE duplicates are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS day_plans (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL UNIQUE,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		importance   INTEGER,
		planned      INTEGER NOT NULL DEFAULT 0,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		day_plan_id  TEXT REFERENCES day_plans(id) ON DELETE SET NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_day_plan ON tasks(day_plan_id)`,

	`CREATE TABLE IF NOT EXISTS work_sessions (
		id         TEXT PRIMARY KEY,
		task_id    TEXT REFERENCES tasks(id) ON DELETE CASCADE,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_sessions_start ON work_sessions(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_work_sessions_task ON work_sessions(task_id)`,
	// Partial index keeps the active-session recovery query cheap.
	`CREATE INDEX IF NOT EXISTS idx_work_sessions_open ON work_sessions(end_time) WHERE end_time IS NULL`,

	`CREATE TABLE IF NOT EXISTS interruptions (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES work_sessions(id) ON DELETE CASCADE,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		reason     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_interruptions_session ON interruptions(session_id)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                           TEXT PRIMARY KEY DEFAULT 'default',
		penalty_per_interruption_min INTEGER NOT NULL DEFAULT 15
		                             CHECK(penalty_per_interruption_min >= 0),
		recovery_min                 INTEGER NOT NULL DEFAULT 5
		                             CHECK(recovery_min >= 0),
		enable_notifications         INTEGER NOT NULL DEFAULT 1,
		last_modified                TEXT NOT NULL
	)`,
}
