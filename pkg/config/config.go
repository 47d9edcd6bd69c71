package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/korjavin/nutrinudge/pkg/logger"
)

// History backends
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// Config holds all configuration for the application
type Config struct {
	// Data sources
	RecipesFile string
	PricesFile  string

	// Persistence
	DataDir        string
	HistoryFile    string
	HistoryBackend string

	LogLevel string

	// Telegram Bot configuration
	BotToken string

	// OpenAI configuration
	OpenAIAPIBase string
	OpenAIAPIKey  string
	OpenAIModel   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Global.Warn("Error loading .env file: %v", err)
	}

	cfg := &Config{
		RecipesFile:    getEnvWithDefault("RECIPES_FILE", "recipes.json"),
		PricesFile:     os.Getenv("PRICES_FILE"),
		DataDir:        getEnvWithDefault("DATA_DIR", "data"),
		HistoryFile:    getEnvWithDefault("HISTORY_FILE", "saved_meals.json"),
		HistoryBackend: strings.ToLower(getEnvWithDefault("HISTORY_BACKEND", BackendFile)),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		BotToken:       os.Getenv("BOT_TOKEN"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIAPIBase:  getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1"),
		OpenAIModel:    getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Global.Debug("Configuration loaded: %+v", cfg.Redacted())
	return cfg, nil
}

// Validate checks settings that every command relies on
func (c *Config) Validate() error {
	switch c.HistoryBackend {
	case BackendFile, BackendBadger:
	default:
		return fmt.Errorf("HISTORY_BACKEND must be %q or %q, got %q", BackendFile, BackendBadger, c.HistoryBackend)
	}
	if c.RecipesFile == "" {
		return fmt.Errorf("RECIPES_FILE must not be empty")
	}
	return nil
}

// RequireBot checks the settings needed to run the Telegram bot
func (c *Config) RequireBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN environment variable is required")
	}
	return nil
}

// OpenAIEnabled reports whether an OpenAI key was provided
func (c *Config) OpenAIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// Redacted returns a copy safe to log
func (c *Config) Redacted() Config {
	logCfg := *c
	logCfg.BotToken = redact(logCfg.BotToken)
	logCfg.OpenAIAPIKey = redact(logCfg.OpenAIAPIKey)
	return logCfg
}

func redact(secret string) string {
	if len(secret) > 8 {
		return secret[:8] + "...REDACTED..."
	}
	if secret != "" {
		return "...REDACTED..."
	}
	return ""
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
