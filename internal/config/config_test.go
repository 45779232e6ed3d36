package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	content := `
server:
  host: "127.0.0.1"
  port: 9000
  max_connections: 50
redis:
  addr: "redis:6379"
  db: 2
security:
  allowed_origins:
    - "https://example.com"
  rate_limit:
    max_per_second: 3
    ban_duration: 60
  chat_limit:
    cooldown: 5
game:
  initial_tower_height: 7
  far_build_turns: 3
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.MaxConnections)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"https://example.com"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 3, cfg.Security.RateLimit.MaxPerSecond)
	assert.Equal(t, time.Minute, cfg.Security.RateLimit.BanDurationTime())
	assert.Equal(t, 5*time.Second, cfg.Security.ChatLimit.CooldownDuration())
	assert.Equal(t, 7, cfg.Game.InitialTowerHeight)
	assert.Equal(t, 3, cfg.Game.FarBuildTurns)

	// Omitted fields still receive defaults
	assert.Equal(t, 60, cfg.Security.RateLimit.MaxPerMinute)
	assert.Equal(t, 20, cfg.Security.MessageLimit.MaxPerSecond)
}

func TestLoad_FarBuildTurnsClamped(t *testing.T) {
	t.Parallel()

	// A one-turn far build would set and drain the lock in the same
	// resolution, so the flush would never fire; the floor is 2.
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  far_build_turns: 1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Game.FarBuildTurns)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1781, cfg.Server.Port)
	assert.Equal(t, 1000, cfg.Server.MaxConnections)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 5, cfg.Game.InitialTowerHeight)
	assert.Equal(t, 2, cfg.Game.FarBuildTurns)
}
