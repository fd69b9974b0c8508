// Package config loads process settings from the environment. A .env file
// in the working directory is read first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
)

// LLM providers selectable through LLM_PROVIDER.
const (
	ProviderGemini    = "gemini"
	ProviderGeminiSDK = "gemini-sdk"
	ProviderGroq      = "groq"
	ProviderNone      = "none"
)

// Store drivers selectable through STORE_DRIVER.
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds the configuration for the application.
type Config struct {
	Port     int
	LogLevel zerolog.Level

	StoreDriver string
	SQLitePath  string

	// PostgreSQL, BLUEPRINT_DB_* names
	DBHost     string
	DBPort     string
	DBDatabase string
	DBUsername string
	DBPassword string
	DBSchema   string

	LLMProvider  string
	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqModel    string

	LLMRequestsPerMinute int
	LLMRequestsPerDay    int
	LLMCacheSize         int

	USDAAPIKey   string
	EnhancedInfo bool

	JWTSecret string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	cfg := &Config{
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite)),
		SQLitePath:  getEnv("SQLITE_PATH", "nutriviet.db"),

		DBHost:     os.Getenv("BLUEPRINT_DB_HOST"),
		DBPort:     getEnv("BLUEPRINT_DB_PORT", "5432"),
		DBDatabase: os.Getenv("BLUEPRINT_DB_DATABASE"),
		DBUsername: os.Getenv("BLUEPRINT_DB_USERNAME"),
		DBPassword: os.Getenv("BLUEPRINT_DB_PASSWORD"),
		DBSchema:   os.Getenv("BLUEPRINT_DB_SCHEMA"),

		LLMProvider:  strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GroqModel:    os.Getenv("GROQ_MODEL"),

		USDAAPIKey: os.Getenv("USDA_API_KEY"),
		JWTSecret:  jwtSecret,
	}

	var err error
	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.LLMRequestsPerMinute, err = getInt("LLM_REQUESTS_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if cfg.LLMRequestsPerDay, err = getInt("LLM_REQUESTS_PER_DAY", 1000); err != nil {
		return nil, err
	}
	if cfg.LLMCacheSize, err = getInt("LLM_CACHE_SIZE", 256); err != nil {
		return nil, err
	}
	if v := os.Getenv("ENHANCED_INFO"); v != "" {
		if cfg.EnhancedInfo, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("ENHANCED_INFO must be a boolean: %w", err)
		}
	}

	cfg.LogLevel = zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(v)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	switch cfg.LLMProvider {
	case ProviderGemini, ProviderGeminiSDK:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
		}
	case ProviderNone:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}

	switch cfg.StoreDriver {
	case StoreSQLite:
	case StorePostgres:
		if cfg.DBHost == "" {
			return nil, fmt.Errorf("BLUEPRINT_DB_HOST environment variable not set")
		}
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("BLUEPRINT_DB_DATABASE environment variable not set")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
