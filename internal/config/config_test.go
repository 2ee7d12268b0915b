package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "0.0.0.0"

storage:
  local_path: "./test-exports"

logging:
  level: "debug"
  redact_pii: false

upload:
  max_size_mb: 5
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "./test-exports", cfg.Storage.LocalPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.RedactEnabled())
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes())
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("{}\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "./exports", cfg.Storage.LocalPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.RedactEnabled())
	assert.Equal(t, 20, cfg.Upload.MaxSizeMB)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("EXPORT_DIR", "/tmp/reports")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/tmp/reports", cfg.Storage.LocalPath)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
