// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"customerweb/internal/core/apperror"
)

// ErrMissingBaseURL is returned when CUSTOMER_API_BASE_URL is not set.
var ErrMissingBaseURL = apperror.NewConfiguration("CustomerApi endpoint not set in config!")

// Config holds all application configuration
type Config struct {
	App         AppConfig
	Log         LogConfig
	CustomerAPI CustomerAPIConfig
}

// AppConfig holds HTTP server configuration
type AppConfig struct {
	Port int
	Env  string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string
}

// CustomerAPIConfig holds the remote Customer API settings
type CustomerAPIConfig struct {
	BaseURL string
	// Timeout of zero keeps the transport defaults.
	Timeout time.Duration
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Load reads an optional .env file and then environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds Config from the current process environment.
func FromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("CUSTOMER_API_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CUSTOMER_API_TIMEOUT: %w", err)
	}

	baseURL := os.Getenv("CUSTOMER_API_BASE_URL")
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	return &Config{
		App: AppConfig{
			Port: port,
			Env:  getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		CustomerAPI: CustomerAPIConfig{
			BaseURL: baseURL,
			Timeout: timeout,
		},
	}, nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return apperror.NewConfiguration("invalid CUSTOMER_API_BASE_URL").WithCause(err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperror.NewConfiguration("CUSTOMER_API_BASE_URL must be an absolute http(s) URL").
			WithDetail("value", raw)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
