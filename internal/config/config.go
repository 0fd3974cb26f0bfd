package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "hall-of-fame-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Document store configuration
	DocstoreBackend    string `mapstructure:"DOCSTORE_BACKEND"`
	DatabaseDriver     string `mapstructure:"DB_DRIVER"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	FirestoreProjectID string `mapstructure:"FIRESTORE_PROJECT_ID"`

	// Object storage configuration
	StorageBackend       string `mapstructure:"STORAGE_BACKEND"`
	StorageBucket        string `mapstructure:"STORAGE_BUCKET"`
	StorageLocalDir      string `mapstructure:"STORAGE_LOCAL_DIR"`
	StoragePublicBaseURL string `mapstructure:"STORAGE_PUBLIC_BASE_URL"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Seeder pacing
	SeedClassIntervalMS    int `mapstructure:"SEED_CLASS_INTERVAL_MS"`
	SeedInducteeIntervalMS int `mapstructure:"SEED_INDUCTEE_INTERVAL_MS"`
	SeedBatchSize          int `mapstructure:"SEED_BATCH_SIZE"`
	SeedBatchPauseMS       int `mapstructure:"SEED_BATCH_PAUSE_MS"`
	SeedSettleMS           int `mapstructure:"SEED_SETTLE_MS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS may arrive whole or already split on commas, with padding around entries
	config.AllowedOrigins = splitList(strings.Join(config.AllowedOrigins, ","))

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Document store defaults
	v.SetDefault("DOCSTORE_BACKEND", "sql")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "hall_of_fame.db")
	v.SetDefault("FIRESTORE_PROJECT_ID", "")

	// Object storage defaults
	v.SetDefault("STORAGE_BACKEND", "local")
	v.SetDefault("STORAGE_BUCKET", "hall-of-fame.appspot.com")
	v.SetDefault("STORAGE_LOCAL_DIR", "./media")
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "http://localhost:7008/media")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL_MINUTES", 720)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Seeder defaults
	v.SetDefault("SEED_CLASS_INTERVAL_MS", 300)
	v.SetDefault("SEED_INDUCTEE_INTERVAL_MS", 100)
	v.SetDefault("SEED_BATCH_SIZE", 5)
	v.SetDefault("SEED_BATCH_PAUSE_MS", 1000)
	v.SetDefault("SEED_SETTLE_MS", 500)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validate(config *Config) error {
	if config.IsProduction() && config.JWTSecret == defaultJWTSecret {
		return apperrors.ErrJWTSecretMissing
	}

	switch config.DocstoreBackend {
	case "sql":
		if config.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the sql backend")
		}
	case "firestore":
		if config.FirestoreProjectID == "" {
			return apperrors.ErrFirestoreProjectUnset
		}
	default:
		return fmt.Errorf("unsupported DOCSTORE_BACKEND %q", config.DocstoreBackend)
	}

	switch config.StorageBackend {
	case "local", "gcs":
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", config.StorageBackend)
	}
	if config.StorageBucket == "" {
		return apperrors.ErrStorageBucketUnset
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// JWTTTL returns the configured session lifetime
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// Millis converts a millisecond setting to a time.Duration
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
