package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time, should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"day_plans", "tasks", "work_sessions", "interruptions", "settings"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_tasks_day_plan",
		"idx_work_sessions_start",
		"idx_work_sessions_task",
		"idx_work_sessions_open",
		"idx_interruptions_session",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestOpenDB_ForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)

	// An interruption cannot reference a session that does not exist.
	_, err := db.Exec(`INSERT INTO interruptions (id, session_id, start_time) VALUES ('i1', 'missing', '2025-03-10T09:00:00Z')`)
	assert.Error(t, err)
}

func TestSettings_ChecksRejectNegatives(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO settings (id, penalty_per_interruption_min, recovery_min, last_modified)
		VALUES ('default', -1, 5, '2025-03-10T09:00:00Z')`)
	assert.Error(t, err)
}
