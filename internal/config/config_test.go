package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SohamMhatre7788/insurai/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INSURAI_API_BASE_URL", "")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "")
	t.Setenv("INSURAI_STATE_DIR", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "insurai", cfg.App.Name)
}

func TestLoadFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INSURAI_API_BASE_URL", "https://api.example.com/api/")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("INSURAI_STATE_DIR", dir)
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout())
	assert.Equal(t, dir, cfg.State.Dir)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("INSURAI_STATE_DIR", t.TempDir())
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout())
}
