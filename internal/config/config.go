package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration. It is built once at startup
// and read-only afterwards.
type Config struct {
	ServerPort     int
	DatabasePath   string
	SecretKey      string
	TokenTTL       time.Duration
	MaxTaskContent int
	AllowedOrigins []string
	LogLevel       string
}

// Load loads configuration from environment variables or sets defaults.
// SECRET_KEY has no default; starting without one is a configuration error.
func Load() (*Config, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, errors.New("SECRET_KEY must be set")
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	ttlMinutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "15"))
	if err != nil {
		return nil, err
	}
	if ttlMinutes <= 0 {
		return nil, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}

	maxContent, err := strconv.Atoi(getEnv("MAX_TASK_CONTENT", "1000"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:     port,
		DatabasePath:   getEnv("DATABASE_PATH", "./taskboard.db"),
		SecretKey:      secret,
		TokenTTL:       time.Duration(ttlMinutes) * time.Minute,
		MaxTaskContent: maxContent,
		AllowedOrigins: []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
