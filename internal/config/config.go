package config

import (
	"os"
	"strconv"
	"time"

	"leadhub/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig `validate:"required"`
	Server    ServerConfig
	Storage   StorageConfig
	Intake    IntakeConfig
	Statement StatementConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// AuthConfig holds the shared access password and session settings
type AuthConfig struct {
	AccessPassword string `validate:"required"`
	SessionTTL     time.Duration
	CookieName     string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// StorageConfig holds file storage paths
type StorageConfig struct {
	UploadDir  string
	CleanedDir string
	MappingLog string
}

// IntakeConfig holds lead-file processing settings
type IntakeConfig struct {
	MaxUploadBytes int64
	SampleSize     int
	PhoneSlots     int
	EmailSlots     int
}

// StatementConfig holds bank-statement processing settings
type StatementConfig struct {
	DefaultYear    int
	MaxFiles       int
	MaxUploadBytes int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	config.Database = loadDatabaseConfig()

	authConfig, err := loadAuthConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load auth configuration")
	}
	config.Auth = *authConfig

	config.Server = loadServerConfig()
	config.Storage = loadStorageConfig()
	config.Intake = loadIntakeConfig()
	config.Statement = loadStatementConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() DatabaseConfig {
	// Empty URL is allowed: the server falls back to file/memory adapters.
	return DatabaseConfig{
		URL:     getEnvOrDefault("DATABASE_URL", ""),
		SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
	}
}

func loadAuthConfig() (*AuthConfig, error) {
	password := os.Getenv("ACCESS_PASSWORD")
	if password == "" {
		return nil, errors.ConfigInvalid("ACCESS_PASSWORD is required")
	}

	return &AuthConfig{
		AccessPassword: password,
		SessionTTL:     getEnvDurationOrDefault("SESSION_TTL", 12*time.Hour),
		CookieName:     getEnvOrDefault("SESSION_COOKIE", "leadhub_session"),
	}, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		UploadDir:  getEnvOrDefault("UPLOAD_DIR", "./data/uploads"),
		CleanedDir: getEnvOrDefault("CLEANED_DIR", "./data/cleaned"),
		MappingLog: getEnvOrDefault("MAPPING_LOG", "./data/confirmed_mappings.jsonl"),
	}
}

func loadIntakeConfig() IntakeConfig {
	return IntakeConfig{
		MaxUploadBytes: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 50)) * 1024 * 1024,
		SampleSize:     getEnvIntOrDefault("CLASSIFY_SAMPLE_SIZE", 100),
		PhoneSlots:     getEnvIntOrDefault("PHONE_SLOTS", 3),
		EmailSlots:     getEnvIntOrDefault("EMAIL_SLOTS", 2),
	}
}

func loadStatementConfig() StatementConfig {
	return StatementConfig{
		DefaultYear:    getEnvIntOrDefault("STATEMENT_DEFAULT_YEAR", time.Now().Year()),
		MaxFiles:       getEnvIntOrDefault("STATEMENT_MAX_FILES", 12),
		MaxUploadBytes: int64(getEnvIntOrDefault("STATEMENT_MAX_UPLOAD_MB", 25)) * 1024 * 1024,
	}
}

func validateConfig(config *Config) error {
	if config.Auth.AccessPassword == "" {
		return errors.ConfigInvalid("access password is required")
	}
	if config.Intake.SampleSize <= 0 {
		return errors.ConfigInvalid("classify sample size must be positive")
	}
	if config.Intake.PhoneSlots <= 0 || config.Intake.EmailSlots <= 0 {
		return errors.ConfigInvalid("phone and email slot counts must be positive")
	}
	if config.Statement.DefaultYear < 2000 || config.Statement.DefaultYear > 2100 {
		return errors.ConfigInvalid("statement default year out of range")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
