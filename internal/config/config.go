package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Backend  BackendConfig
	Payroll  PayrollConfig
	Cron     CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds the session credential settings. The console only verifies
// tokens; AccessExpiration is used when minting development tokens.
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	Timezone           string
	CORSAllowedOrigins []string
}

// BackendConfig points at the HR REST backend.
type BackendConfig struct {
	BaseURL      string
	Timeout      time.Duration
	ServiceToken string
}

type PayrollConfig struct {
	FetchConcurrency int
}

type CronConfig struct {
	Enabled  bool
	Interval time.Duration
	// BoardIdleTTL is how long an unused approval board is kept.
	BoardIdleTTL time.Duration
}

// Load reads .env when present and builds the configuration from the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// FromEnv parses the environment without validating required fields.
func FromEnv() (*Config, error) {
	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hris_console"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           getEnv("APP_TIMEZONE", "Asia/Jakarta"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// JWT configuration
	accessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
	}

	// HR backend
	backendTimeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	config.Backend = BackendConfig{
		BaseURL:      getEnv("BACKEND_BASE_URL", ""),
		Timeout:      backendTimeout,
		ServiceToken: getEnv("BACKEND_SERVICE_TOKEN", ""),
	}

	concurrency, err := strconv.Atoi(getEnv("PAYROLL_FETCH_CONCURRENCY", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_FETCH_CONCURRENCY: %w", err)
	}
	config.Payroll = PayrollConfig{FetchConcurrency: concurrency}

	// Cron
	cronEnabled, err := strconv.ParseBool(getEnv("CRON_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_ENABLED: %w", err)
	}
	cronInterval, err := time.ParseDuration(getEnv("CRON_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_INTERVAL: %w", err)
	}
	boardTTL, err := time.ParseDuration(getEnv("APPROVAL_BOARD_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid APPROVAL_BOARD_TTL: %w", err)
	}
	config.Cron = CronConfig{Enabled: cronEnabled, Interval: cronInterval, BoardIdleTTL: boardTTL}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if u, err := url.Parse(c.Backend.BaseURL); err != nil || !u.IsAbs() {
		return fmt.Errorf("BACKEND_BASE_URL must be an absolute URL")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if c.Payroll.FetchConcurrency < 1 {
		return fmt.Errorf("PAYROLL_FETCH_CONCURRENCY must be at least 1")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.Cron.BoardIdleTTL <= 0 {
		return fmt.Errorf("APPROVAL_BOARD_TTL must be positive")
	}
	if c.Cron.Enabled {
		if c.Cron.Interval <= 0 {
			return fmt.Errorf("CRON_INTERVAL must be positive")
		}
		if c.Backend.ServiceToken == "" {
			return fmt.Errorf("BACKEND_SERVICE_TOKEN is required when CRON_ENABLED is true")
		}
	}
	return nil
}

// Location loads the configured business time zone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
