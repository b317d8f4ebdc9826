package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path string // SQLite database file path
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Address         string        // listen address (e.g., ":5000")
	StaticDir       string        // directory served at "/"
	ShutdownTimeout time.Duration // how long in-flight requests get on shutdown
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret  string // empty disables token issuance and ownership checks
	TokenTTL   time.Duration
	BcryptCost int
}

// TokensEnabled reports whether login and register should issue tokens.
func (a AuthConfig) TokensEnabled() bool {
	return a.JWTSecret != ""
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	shutdownSecs, err := getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	ttlMinutes, err := getEnvInt("TOKEN_TTL_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cost, err := getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "scheduler.db"),
		},
		HTTP: HTTPConfig{
			Address:         getEnv("HTTP_ADDRESS", ":5000"),
			StaticDir:       getEnv("STATIC_DIR", "static"),
			ShutdownTimeout: time.Duration(shutdownSecs) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", ""),
			TokenTTL:   time.Duration(ttlMinutes) * time.Minute,
			BcryptCost: cost,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL_MINUTES must be positive")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	tokens := "disabled"
	if c.Auth.TokensEnabled() {
		tokens = "enabled, secret *** (masked) ***"
	}
	return fmt.Sprintf("Config{DB: %s, HTTP: %s, Static: %s, Tokens: %s}", c.Database.Path, c.HTTP.Address, c.HTTP.StaticDir, tokens)
}
