package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focustrack/internal/db"
	"focustrack/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

const taskColumns = `id, title, importance, planned, completed, completed_at, day_plan_id, created_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		nullableIntToValue(t.Importance),
		boolToInt(t.Planned),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt),
		nullableStr(t.DayPlanID),
		t.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeCompleted {
		query += ` WHERE completed = 0`
	}
	query += ` ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByDayPlan(ctx context.Context, dayPlanID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE day_plan_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, dayPlanID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by day plan: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, importance = ?, planned = ?, completed = ?,
		completed_at = ?, day_plan_id = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title,
		nullableIntToValue(t.Importance),
		boolToInt(t.Planned),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt),
		nullableStr(t.DayPlanID),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	// Sessions logged against the task cascade, and their interruptions
	// cascade in turn.
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var importance sql.NullInt64
	var planned, completed int
	var completedAt, dayPlanID sql.NullString
	var createdStr string

	err := row.Scan(&t.ID, &t.Title, &importance, &planned, &completed, &completedAt, &dayPlanID, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return r.populateTask(&t, importance, planned, completed, completedAt, dayPlanID, createdStr)
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var importance sql.NullInt64
		var planned, completed int
		var completedAt, dayPlanID sql.NullString
		var createdStr string

		if err := rows.Scan(&t.ID, &t.Title, &importance, &planned, &completed, &completedAt, &dayPlanID, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		task, err := r.populateTask(&t, importance, planned, completed, completedAt, dayPlanID, createdStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) populateTask(t *domain.Task, importance sql.NullInt64, planned, completed int, completedAt, dayPlanID sql.NullString, createdStr string) (*domain.Task, error) {
	if importance.Valid {
		v := int(importance.Int64)
		t.Importance = &v
	}
	t.Planned = intToBool(planned)
	t.Completed = intToBool(completed)
	t.CompletedAt = parseNullableTime(completedAt)
	if dayPlanID.Valid {
		t.DayPlanID = dayPlanID.String
	}
	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	return t, nil
}
