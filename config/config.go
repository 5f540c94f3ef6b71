// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Data sources the web tier can read expenses and budgets from.
const (
	DataSourceRemote  = "remote"
	DataSourceFixture = "fixture"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Redis      RedisConfig
	RemoteAPI  RemoteAPIConfig
	Session    SessionConfig
	RateLimit  RateLimitConfig
	Fixture    FixtureConfig
	DataSource string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// RedisConfig holds Redis configuration for the session store.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// RemoteAPIConfig holds the expense/budget API client configuration.
type RemoteAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds browser session configuration.
type SessionConfig struct {
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

// RateLimitConfig holds login rate limiting configuration.
type RateLimitConfig struct {
	Enabled     bool
	MaxAttempts int
	Window      time.Duration
}

// FixtureConfig holds the in-process data source configuration.
type FixtureConfig struct {
	TokenSecret string
}

// Load loads configuration from environment variables.
func Load() *Config {
	environment := getEnv("ENV", "development")

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  environment,
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RemoteAPI: RemoteAPIConfig{
			BaseURL: strings.TrimRight(getEnv("REMOTE_API_URL", "http://localhost:8080"), "/"),
			Timeout: getEnvAsDuration("REMOTE_API_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			TTL:          getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			CookieName:   getEnv("SESSION_COOKIE_NAME", "session_id"),
			CookieSecure: getEnvAsBool("SESSION_COOKIE_SECURE", environment == "production"),
		},
		RateLimit: RateLimitConfig{
			Enabled:     getEnvAsBool("LOGIN_RATE_LIMIT_ENABLED", environment != "test"),
			MaxAttempts: getEnvAsInt("LOGIN_RATE_LIMIT_MAX_ATTEMPTS", 5),
			Window:      getEnvAsDuration("LOGIN_RATE_LIMIT_WINDOW", time.Minute),
		},
		Fixture: FixtureConfig{
			TokenSecret: getEnv("FIXTURE_TOKEN_SECRET", "change-me-in-production"),
		},
		DataSource: strings.ToLower(getEnv("DATA_SOURCE", DataSourceRemote)),
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
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
