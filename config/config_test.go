package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, key := range []string{
		"DATABASE_URL", "PORT", "CORS_ALLOWED_ORIGINS", "PAGINATION_WINDOW_SIZE",
		"AUTOMATION_INTERVAL_SECONDS", "AUTOMATION_DRY_RUN", "AUTOMATION_SAFE_MODE",
		"AUTOMATION_ALLOWED_CUSTOMERS", "EMAIL_PROVIDER", "SMS_PROVIDER",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.DBUrl, "pianostudio")
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5, cfg.WindowSize)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Automation.Interval)
	assert.True(t, cfg.Automation.DryRun)
	assert.True(t, cfg.Automation.SafeMode)
	assert.Empty(t, cfg.Automation.AllowedCustomers)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, "noop", cfg.SMS.Provider)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("PAGINATION_WINDOW_SIZE", "7")
	t.Setenv("AUTOMATION_INTERVAL_SECONDS", "60")
	t.Setenv("AUTOMATION_DRY_RUN", "false")
	t.Setenv("AUTOMATION_ALLOWED_CUSTOMERS", "Kim,Lee")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 7, cfg.WindowSize)
	assert.Equal(t, time.Minute, cfg.Automation.Interval)
	assert.False(t, cfg.Automation.DryRun)
	assert.Equal(t, []string{"Kim", "Lee"}, cfg.Automation.AllowedCustomers)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout, "malformed value falls back to default")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "production", "warn").Info("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, "production", "debug").Debug("shown", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	newLogger(&buf, "development", "").Info("text")
	assert.Contains(t, buf.String(), "msg=text")

	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
	assert.Equal(t, slog.LevelError, parseLevel("ERROR"))
}
