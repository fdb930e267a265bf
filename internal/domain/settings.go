package domain

import "time"

// Settings is the single persisted settings row. Stored get-or-create with
// a fixed ID so the row behaves as a singleton.
type Settings struct {
	ID                            string
	PenaltyPerInterruptionMinutes int
	RecoveryMinutes               int
	EnableNotifications           bool
	LastModified                  time.Time
}

const (
	// DefaultPenaltyMinutes is the per-interruption penalty charged by the
	// productivity score.
	DefaultPenaltyMinutes = 15
	// DefaultRecoveryMinutes is the refocus window assumed after an
	// interruption ends.
	DefaultRecoveryMinutes = 5
)

// DefaultSettings returns the settings used until the user changes them.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                            "default",
		PenaltyPerInterruptionMinutes: DefaultPenaltyMinutes,
		RecoveryMinutes:               DefaultRecoveryMinutes,
		EnableNotifications:           true,
	}
}
