package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FLOATSYNC_TOKEN", "TOKEN", "FLOATSYNC_SHEET_ID", "SHEET_ID",
		"FLOATSYNC_BASE_URL", "FLOATSYNC_DB", "FLOATSYNC_FLOAT_COLUMN",
		"FLOATSYNC_LOG_LEVEL", "FLOATSYNC_LOG_CALLS", "FLOATSYNC_TIMEOUT_MS",
		"FLOATSYNC_MAX_RETRIES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.smartsheet.com/2.0", cfg.BaseURL)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, "Float", cfg.FloatColumnTitle)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.ErrorIs(t, cfg.ValidateForRun(), ErrTokenMissing)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
token: file-token
sheet_id: "123456"
float_column_title: Total Float
timeout_ms: 5000
log_level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, "123456", cfg.SheetID)
	assert.Equal(t, "Total Float", cfg.FloatColumnTitle)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.NoError(t, cfg.ValidateForRun())

	sc := cfg.Sheet()
	assert.Equal(t, "file-token", sc.Token)
	assert.Equal(t, 5000, sc.TimeoutMs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: file-token\nsheet_id: \"1\"\n"), 0o600))

	t.Setenv("FLOATSYNC_TOKEN", "env-token")
	t.Setenv("SHEET_ID", "2")
	t.Setenv("FLOATSYNC_MAX_RETRIES", "0")
	t.Setenv("FLOATSYNC_TIMEOUT_MS", "-5")
	t.Setenv("FLOATSYNC_LOG_CALLS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "2", cfg.SheetID, "legacy SHEET_ID is honoured")
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 30000, cfg.TimeoutMs, "invalid env values are ignored")
	assert.True(t, cfg.LogCalls)
}

func TestLoad_PrefixedEnvWinsOverLegacy(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN", "legacy")
	t.Setenv("FLOATSYNC_TOKEN", "new")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "new", cfg.Token)
	assert.ErrorIs(t, cfg.ValidateForRun(), ErrSheetIDMissing)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout_ms: [nope"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveTimeoutFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout_ms: 0\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidTimeout)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "chatty"}.SlogLevel())
}
