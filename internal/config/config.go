package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for campus-portal
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Content  ContentConfig
	Cleanup  CleanupConfig
}

// ServerConfig holds HTTP server configuration. StaffRoles are the backend
// user roles allowed on the staff routes.
type ServerConfig struct {
	Host       string
	Port       int
	StaffRoles []string
}

// BackendConfig holds the upstream REST API configuration
type BackendConfig struct {
	URL        string
	APIBaseURL string
	Timeout    time.Duration
	Dedup      bool
}

// DatabaseConfig holds PostgreSQL configuration. An empty DSN keeps the
// submission log in memory.
type DatabaseConfig struct {
	DSN           string
	MaxOpenConns  int
	MaxIdleConns  int
	MigrationsDir string
}

// RedisConfig holds Redis configuration. An empty address keeps sessions
// in memory.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// ContentConfig holds the static content catalogue location
type ContentConfig struct {
	Dir string
}

// CleanupConfig holds submission retention configuration
type CleanupConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:       getEnv("SERVER_HOST", "0.0.0.0"),
			Port:       getEnvAsInt("SERVER_PORT", 8080),
			StaffRoles: getEnvAsList("STAFF_ROLES", []string{"admin"}),
		},
		Backend: BackendConfig{
			URL:        getEnv("BACKEND_URL", "https://backend-rakj.onrender.com"),
			APIBaseURL: getEnv("API_BASE_URL", ""),
			Timeout:    getEnvAsDuration("BACKEND_TIMEOUT", 30*time.Second),
			Dedup:      getEnvAsBool("BACKEND_DEDUP", true),
		},
		Database: DatabaseConfig{
			DSN:           getEnv("DATABASE_DSN", ""),
			MaxOpenConns:  getEnvAsInt("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:  getEnvAsInt("DATABASE_MAX_IDLE_CONNS", 2),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Content: ContentConfig{
			Dir: getEnv("CONTENT_DIR", "./content"),
		},
		Cleanup: CleanupConfig{
			Interval:  getEnvAsDuration("CLEANUP_INTERVAL", time.Hour),
			Retention: getEnvAsDuration("SUBMISSION_RETENTION", 90*24*time.Hour),
		},
	}

	if cfg.Backend.APIBaseURL == "" {
		cfg.Backend.APIBaseURL = cfg.Backend.URL + "/api/v1"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	for name, raw := range map[string]string{"backend URL": c.Backend.URL, "API base URL": c.Backend.APIBaseURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}

	if len(c.Server.StaffRoles) == 0 {
		return fmt.Errorf("at least one staff role is required")
	}

	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive")
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("invalid database max open connections: %d", c.Database.MaxOpenConns)
	}

	if c.Cleanup.Retention <= 0 {
		return fmt.Errorf("submission retention must be positive")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
