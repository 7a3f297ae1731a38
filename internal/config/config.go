package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	SecretKey     string
	DatabaseURL   string
	DBPath        string
	Port          string
	MetricsPort   string
	LogLevel      string
	CookieSecure  bool
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment, after loading a .env
// file when one is present. SECRET_KEY has no safe default and is
// required; startup fails without it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBPath:        getEnvOrDefault("DB_PATH", filepath.Join("data", "parishdesk.db")),
		Port:          getEnvOrDefault("PORT", "8080"),
		MetricsPort:   getEnvOrDefault("METRICS_PORT", "9090"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		CookieSecure:  parseBool(os.Getenv("COOKIE_SECURE")),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.SecretKey = os.Getenv("SECRET_KEY"); cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}
