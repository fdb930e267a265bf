package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focustrack/internal/db"
	"focustrack/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. Accepts either the
// shared *sql.DB or a transaction from a UnitOfWork.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

const sessionColumns = `id, task_id, start_time, end_time, created_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `INSERT INTO work_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		nullableStr(s.TaskID),
		s.StartTime.Format(time.RFC3339Nano),
		nullableTimeToString(s.EndTime),
		s.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.WorkSession) error {
	query := `UPDATE work_sessions SET task_id = ?, start_time = ?, end_time = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableStr(s.TaskID),
		s.StartTime.Format(time.RFC3339Nano),
		nullableTimeToString(s.EndTime),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE id = ?`
	s, err := r.scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadInterruptions(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) GetActive(ctx context.Context) (*domain.WorkSession, error) {
	// At most one open session exists by invariant; take the newest
	// defensively in case older data violates it.
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE end_time IS NULL ORDER BY start_time DESC LIMIT 1`
	s, err := r.scanSession(r.db.QueryRowContext(ctx, query))
	if err != nil {
		return nil, err
	}
	if err := r.loadInterruptions(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions ORDER BY start_time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(ctx, rows)
}

func (r *SQLiteSessionRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE start_time >= ? AND start_time < ? ORDER BY start_time DESC`
	rows, err := r.db.QueryContext(ctx, query,
		from.Format(time.RFC3339Nano), to.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("listing work sessions by date range: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(ctx, rows)
}

func (r *SQLiteSessionRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE task_id = ? ORDER BY start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing work sessions by task: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(ctx, rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	// Interruptions cascade via the session_id foreign key.
	_, err := r.db.ExecContext(ctx, `DELETE FROM work_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkSession, error) {
	var s domain.WorkSession
	var taskID, endTime sql.NullString
	var startStr, createdStr string

	err := row.Scan(&s.ID, &taskID, &startStr, &endTime, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}
	return r.populateSession(&s, taskID, startStr, endTime, createdStr)
}

func (r *SQLiteSessionRepo) scanSessions(ctx context.Context, rows *sql.Rows) ([]*domain.WorkSession, error) {
	var sessions []*domain.WorkSession
	for rows.Next() {
		var s domain.WorkSession
		var taskID, endTime sql.NullString
		var startStr, createdStr string

		if err := rows.Scan(&s.ID, &taskID, &startStr, &endTime, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning work session row: %w", err)
		}
		session, err := r.populateSession(&s, taskID, startStr, endTime, createdStr)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work sessions: %w", err)
	}

	for _, s := range sessions {
		if err := r.loadInterruptions(ctx, s); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) populateSession(s *domain.WorkSession, taskID sql.NullString, startStr string, endTime sql.NullString, createdStr string) (*domain.WorkSession, error) {
	if taskID.Valid {
		s.TaskID = taskID.String
	}
	var err error
	s.StartTime, err = time.Parse(time.RFC3339Nano, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	s.EndTime = parseNullableTime(endTime)
	s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) loadInterruptions(ctx context.Context, s *domain.WorkSession) error {
	ints, err := NewSQLiteInterruptionRepo(r.db).ListBySession(ctx, s.ID)
	if err != nil {
		return err
	}
	s.Interruptions = ints
	return nil
}

// nullableStr converts an optional string ID to a SQLite value (NULL when empty).
func nullableStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
