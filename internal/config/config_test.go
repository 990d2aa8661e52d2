package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/mfo-shield/pkg/logger"
)

func loadFromDir(t *testing.T, dir string) (*Config, error) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return LoadConfig(logger.NewNoopLogger())
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := loadFromDir(t, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 100*time.Millisecond, cfg.Orchestration.AgentWorkDelay)
	assert.True(t, cfg.Idempotency.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Idempotency.TTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9191
  mode: debug
log:
  level: debug
orchestration:
  agent_work_delay: 25ms
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	cfg, err := loadFromDir(t, dir)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 25*time.Millisecond, cfg.Orchestration.AgentWorkDelay)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 9191\n"), 0o644))

	t.Setenv("MFO_SHIELD_SERVER_PORT", "7777")

	cfg, err := loadFromDir(t, dir)
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "server:\n  port: 0\n"},
		{"bad mode", "server:\n  mode: production\n"},
		{"bad log level", "log:\n  level: verbose\n"},
		{"bad sampling rate", "tracing:\n  sampling_rate: 1.5\n"},
		{"negative agent delay", "orchestration:\n  agent_work_delay: -10ms\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.content), 0o644))

			_, err := loadFromDir(t, dir)
			assert.Error(t, err)
		})
	}
}

func TestValidate_IdempotencyTTL(t *testing.T) {
	cfg, err := loadFromDir(t, t.TempDir())
	require.NoError(t, err)

	cfg.Idempotency.TTL = 0
	assert.Error(t, cfg.Validate())

	cfg.Idempotency.Enabled = false
	assert.NoError(t, cfg.Validate())
}
