// internal/pkg/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Export   ExportConfig
}

// AppConfig holds application-specific configuration.
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	LogLevel    string
	LogFormat   string // json, text
	SeedDemo    bool   // start the session with a demo data set
}

// DatabaseConfig holds the warehouse-archive database configuration.
// The archive is optional: with Enabled false the session runs purely
// in memory and state is lost on exit.
type DatabaseConfig struct {
	Enabled        bool
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConnections int32
	MinConnections int32
	ConnectTimeout time.Duration
}

// ExportConfig holds report-export configuration.
type ExportConfig struct {
	Directory string
}

// Load loads configuration from environment variables, reading a .env
// file first in development.
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "warehouse"),
			Environment: env,
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"),
			SeedDemo:    getBoolEnv("SEED_DEMO_DATA", false),
		},
		Database: DatabaseConfig{
			Enabled:        getBoolEnv("ARCHIVE_ENABLED", false),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "warehouse"),
			Password:       getEnv("DB_PASSWORD", "warehouse_dev_2025"),
			Name:           getEnv("DB_NAME", "warehouse"),
			SSLMode:        getEnv("DB_SSL_MODE", "disable"),
			MaxConnections: int32(getIntEnv("DB_MAX_CONNECTIONS", 4)),
			MinConnections: int32(getIntEnv("DB_MIN_CONNECTIONS", 1)),
			ConnectTimeout: getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Export: ExportConfig{
			Directory: getEnv("EXPORT_DIR", "."),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Database.Enabled {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Database.MaxConnections < c.Database.MinConnections {
			return fmt.Errorf("max connections must be >= min connections")
		}
	}
	if c.Export.Directory == "" {
		return fmt.Errorf("export directory is required")
	}
	return nil
}

// DatabaseURL returns the formatted archive connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Helper functions for environment variables

func getEnv(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
