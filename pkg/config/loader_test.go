package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigReadsAndValidatesFile(t *testing.T) {
	path := writeTempConfig(t, `
log_level: warn
seed: 7
start_time: "2026-07-04T08:00:00Z"
horizon_hours: 12
facilities:
  wave_pool_capacity: 100
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 12.0, cfg.HorizonHours)
	assert.Equal(t, 100, cfg.WavePoolCapacity())
	assert.Equal(t, DefaultReceptionClerks, cfg.ReceptionClerks())
}

func TestLoadConfigRejectsMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidContent(t *testing.T) {
	path := writeTempConfig(t, `log_level: loud`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
