package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focustrack/internal/db"
	"focustrack/internal/domain"
)

// SQLiteInterruptionRepo implements InterruptionRepo using a SQLite database.
type SQLiteInterruptionRepo struct {
	db db.DBTX
}

// NewSQLiteInterruptionRepo creates a new SQLiteInterruptionRepo.
func NewSQLiteInterruptionRepo(dbtx db.DBTX) *SQLiteInterruptionRepo {
	return &SQLiteInterruptionRepo{db: dbtx}
}

func (r *SQLiteInterruptionRepo) Create(ctx context.Context, i *domain.Interruption) error {
	query := `INSERT INTO interruptions (id, session_id, start_time, end_time, reason)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.SessionID,
		i.StartTime.Format(time.RFC3339Nano),
		nullableTimeToString(i.EndTime),
		i.Reason,
	)
	if err != nil {
		return fmt.Errorf("inserting interruption: %w", err)
	}
	return nil
}

func (r *SQLiteInterruptionRepo) Update(ctx context.Context, i *domain.Interruption) error {
	query := `UPDATE interruptions SET start_time = ?, end_time = ?, reason = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		i.StartTime.Format(time.RFC3339Nano),
		nullableTimeToString(i.EndTime),
		i.Reason,
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating interruption: %w", err)
	}
	return nil
}

func (r *SQLiteInterruptionRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.Interruption, error) {
	query := `SELECT id, session_id, start_time, end_time, reason
		FROM interruptions WHERE session_id = ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing interruptions: %w", err)
	}
	defer rows.Close()

	var out []domain.Interruption
	for rows.Next() {
		var i domain.Interruption
		var startStr string
		var endTime, reason sql.NullString
		if err := rows.Scan(&i.ID, &i.SessionID, &startStr, &endTime, &reason); err != nil {
			return nil, fmt.Errorf("scanning interruption row: %w", err)
		}
		i.StartTime, err = time.Parse(time.RFC3339Nano, startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing interruption start_time: %w", err)
		}
		i.EndTime = parseNullableTime(endTime)
		if reason.Valid {
			i.Reason = reason.String
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interruptions: %w", err)
	}
	return out, nil
}
