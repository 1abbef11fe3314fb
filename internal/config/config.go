// Package config provides configuration for the dashboard server.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// LLM provider settings
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Chat settings
	HistoryLimit int

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:  getEnv("DATABASE_URL", "file:dashboard.db?cache=shared&mode=rwc"),
		LLMBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		LLMAPIKey:    getEnv("OPENAI_API_KEY", ""),
		LLMModel:     getEnv("OPENAI_MODEL", "gpt-4o"),
		LLMTimeout:   time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		HistoryLimit: getEnvInt("HISTORY_LIMIT", 20),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
