package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.Equal(t, DriverSQLite, c.Storage.Driver)
	assert.Equal(t, 30, c.Expiry.SoonDays)
	assert.Equal(t, 800*time.Millisecond, c.MockAPI.BaseDelay)
	assert.InDelta(t, 0.98, c.MockAPI.SuccessRate, 1e-9)
	assert.Equal(t, time.UTC, c.Location())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeYAML(t, `
app:
  env: dev
  timezone: Europe/Moscow
storage:
  driver: memory
telegram:
  admin_chat_id: 42
digest:
  interval: 6h
mockapi:
  enabled: true
  base_delay: 10ms
`)
	t.Setenv("APP_HTTP_ADDR", ":9090")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, DriverMemory, c.Storage.Driver)
	assert.Equal(t, int64(42), c.Telegram.AdminChatID)
	assert.Equal(t, 6*time.Hour, c.Digest.Interval)
	assert.True(t, c.MockAPI.Enabled)
	assert.Equal(t, 10*time.Millisecond, c.MockAPI.BaseDelay)
	assert.Equal(t, ":9090", c.HTTP.Addr)
	assert.Equal(t, "Europe/Moscow", c.Location().String())
}

func TestValidate(t *testing.T) {
	path := writeYAML(t, `
app:
  timezone: Mars/Olympus
storage:
  driver: postgres
expiry:
  soon_days: 0
mockapi:
  success_rate: 1.5
`)
	_, err := Load(path)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "postgres.dsn")
	assert.Contains(t, msg, "app.timezone")
	assert.Contains(t, msg, "soon_days")
	assert.Contains(t, msg, "success_rate")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
