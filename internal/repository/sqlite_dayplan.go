package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focustrack/internal/db"
	"focustrack/internal/domain"
)

// SQLiteDayPlanRepo implements DayPlanRepo using a SQLite database.
type SQLiteDayPlanRepo struct {
	db db.DBTX
}

// NewSQLiteDayPlanRepo creates a new SQLiteDayPlanRepo.
func NewSQLiteDayPlanRepo(dbtx db.DBTX) *SQLiteDayPlanRepo {
	return &SQLiteDayPlanRepo{db: dbtx}
}

const dayLayout = "2006-01-02"

func (r *SQLiteDayPlanRepo) Create(ctx context.Context, p *domain.DayPlan) error {
	query := `INSERT INTO day_plans (id, date, notes, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Date.Format(dayLayout),
		p.Notes,
		p.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting day plan: %w", err)
	}
	return nil
}

func (r *SQLiteDayPlanRepo) GetByDate(ctx context.Context, date time.Time) (*domain.DayPlan, error) {
	query := `SELECT id, date, notes, created_at FROM day_plans WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date.Format(dayLayout))

	var p domain.DayPlan
	var dateStr, createdStr string
	err := row.Scan(&p.ID, &dateStr, &p.Notes, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("day plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning day plan: %w", err)
	}
	p.Date, err = time.ParseInLocation(dayLayout, dateStr, date.Location())
	if err != nil {
		return nil, fmt.Errorf("parsing day plan date: %w", err)
	}
	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing day plan created_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteDayPlanRepo) Update(ctx context.Context, p *domain.DayPlan) error {
	query := `UPDATE day_plans SET notes = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, p.Notes, p.ID); err != nil {
		return fmt.Errorf("updating day plan: %w", err)
	}
	return nil
}
