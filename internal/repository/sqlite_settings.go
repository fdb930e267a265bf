package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focustrack/internal/db"
	"focustrack/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// The settings row is a get-or-create singleton keyed by a fixed ID.
type SQLiteSettingsRepo struct {
	db   db.DBTX
	seed *domain.Settings
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo. seed provides the
// values written on first use; pass nil for the built-in defaults.
func NewSQLiteSettingsRepo(dbtx db.DBTX, seed *domain.Settings) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: dbtx, seed: seed}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	s, err := r.fetch(ctx)
	if err == nil {
		return s, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	defaults := domain.DefaultSettings()
	if r.seed != nil {
		seeded := *r.seed
		defaults = &seeded
	}
	defaults.LastModified = time.Now().UTC()
	if err := r.insert(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func (r *SQLiteSettingsRepo) Update(ctx context.Context, s *domain.Settings) error {
	s.LastModified = time.Now().UTC()
	query := `UPDATE settings SET penalty_per_interruption_min = ?, recovery_min = ?,
		enable_notifications = ?, last_modified = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.PenaltyPerInterruptionMinutes,
		s.RecoveryMinutes,
		boolToInt(s.EnableNotifications),
		s.LastModified.Format(time.RFC3339Nano),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return r.insert(ctx, s)
	}
	return nil
}

func (r *SQLiteSettingsRepo) fetch(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT id, penalty_per_interruption_min, recovery_min, enable_notifications, last_modified
		FROM settings LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var notifications int
	var modifiedStr string
	if err := row.Scan(&s.ID, &s.PenaltyPerInterruptionMinutes, &s.RecoveryMinutes, &notifications, &modifiedStr); err != nil {
		return nil, err
	}
	s.EnableNotifications = intToBool(notifications)
	var err error
	s.LastModified, err = time.Parse(time.RFC3339Nano, modifiedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing settings last_modified: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) insert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT OR IGNORE INTO settings
		(id, penalty_per_interruption_min, recovery_min, enable_notifications, last_modified)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.PenaltyPerInterruptionMinutes,
		s.RecoveryMinutes,
		boolToInt(s.EnableNotifications),
		s.LastModified.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting settings: %w", err)
	}
	return nil
}
