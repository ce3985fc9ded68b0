package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Session   SessionConfig
	Query     QueryConfig
	Dashboard DashboardConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// UpstreamConfig holds the connection settings for the rental-management API
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds the durable session store settings
type SessionConfig struct {
	Path string
}

// QueryConfig holds list-view behavior settings
type QueryConfig struct {
	DebounceWindow time.Duration
	DefaultLimit   int
}

// DashboardConfig bounds the dashboard aggregation fetches
type DashboardConfig struct {
	PageLimit    int
	RevenueLimit int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8086"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("RENTMS_BASE_URL", "http://localhost:3000/api"),
			Timeout: getEnvAsDuration("RENTMS_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			Path: getEnv("SESSION_STORE_PATH", "backoffice-session.db"),
		},
		Query: QueryConfig{
			DebounceWindow: getEnvAsDuration("QUERY_DEBOUNCE_WINDOW", 300*time.Millisecond),
			DefaultLimit:   getEnvAsInt("QUERY_DEFAULT_LIMIT", 10),
		},
		Dashboard: DashboardConfig{
			PageLimit:    getEnvAsInt("DASHBOARD_PAGE_LIMIT", 100),
			RevenueLimit: getEnvAsInt("DASHBOARD_REVENUE_LIMIT", 1000),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "backoffice"),
		},
	}, nil
}

// Helper functions to get environment variables with defaults
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
