package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustrack/internal/domain"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPenaltyMinutes, cfg.PenaltyPerInterruptionMinutes)
	assert.Equal(t, domain.DefaultRecoveryMinutes, cfg.RecoveryMinutes)
	assert.True(t, cfg.EnableNotifications)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /tmp/ft.db\npenalty_per_interruption_minutes: 20\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ft.db", cfg.DBPath)
	assert.Equal(t, 20, cfg.PenaltyPerInterruptionMinutes)
	// Untouched keys keep their defaults.
	assert.Equal(t, domain.DefaultRecoveryMinutes, cfg.RecoveryMinutes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("penalty_per_interruption_minutes: 20\n"), 0644))
	t.Setenv("FOCUSTRACK_PENALTY_MIN", "25")
	t.Setenv("FOCUSTRACK_DB", "/tmp/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.PenaltyPerInterruptionMinutes)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("penalty_per_interruption_minutes: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	cfg := Default()
	cfg.RecoveryMinutes = 8
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.RecoveryMinutes)
}

func TestSettingsSeed(t *testing.T) {
	cfg := Default()
	cfg.PenaltyPerInterruptionMinutes = 30
	cfg.EnableNotifications = false

	s := cfg.Settings()
	assert.Equal(t, "default", s.ID)
	assert.Equal(t, 30, s.PenaltyPerInterruptionMinutes)
	assert.False(t, s.EnableNotifications)
}
