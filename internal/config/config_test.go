package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("BACKEND_BASE_URL", "http://hr.local/api")
	t.Setenv("BACKEND_SERVICE_TOKEN", "svc-token")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "Asia/Jakarta", cfg.App.Timezone)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 4, cfg.Payroll.FetchConcurrency)
	assert.True(t, cfg.Cron.Enabled)
	assert.Equal(t, time.Hour, cfg.Cron.Interval)
	assert.Equal(t, 30*time.Minute, cfg.Cron.BoardIdleTTL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())
}

func TestFromEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("PAYROLL_FETCH_CONCURRENCY", "8")
	t.Setenv("CRON_ENABLED", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 8, cfg.Payroll.FetchConcurrency)
	assert.False(t, cfg.Cron.Enabled)
}

func TestFromEnvInvalidValues(t *testing.T) {
	cases := map[string]string{
		"DB_PORT":                   "abc",
		"APP_PORT":                  "x",
		"BACKEND_TIMEOUT":           "soon",
		"PAYROLL_FETCH_CONCURRENCY": "many",
		"CRON_INTERVAL":             "hourly",
		"APPROVAL_BOARD_TTL":        "forever",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, value)

			_, err := FromEnv()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }, "JWT_SECRET_KEY"},
		{"missing backend", func(c *Config) { c.Backend.BaseURL = "" }, "BACKEND_BASE_URL"},
		{"relative backend", func(c *Config) { c.Backend.BaseURL = "/api" }, "absolute"},
		{"zero concurrency", func(c *Config) { c.Payroll.FetchConcurrency = 0 }, "PAYROLL_FETCH_CONCURRENCY"},
		{"bad timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }, "APP_TIMEZONE"},
		{"cron without token", func(c *Config) { c.Backend.ServiceToken = "" }, "BACKEND_SERVICE_TOKEN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			setRequired(t)
			cfg, err := FromEnv()
			require.NoError(t, err)

			c.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), c.want)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "p@ss", Name: "hris", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/hris?sslmode=disable", cfg.DatabaseURL())
}
