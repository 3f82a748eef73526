package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingSecret = errors.New("JWT_SECRET is required")

// Config is built once at startup and handed to the components that need it.
type Config struct {
	Port     string
	JWT      JWTConfig
	Database DatabaseConfig
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
	Issuer    string
}

type DatabaseConfig struct {
	Driver   string // postgres | sqlite
	DSN      string
	LogLevel string // silent | error | warn | info
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port: valueOr(getenv("PORT"), "5000"),
		JWT: JWTConfig{
			Secret: getenv("JWT_SECRET"),
			Issuer: valueOr(getenv("JWT_ISSUER"), "inventory-api"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(valueOr(getenv("DB_DRIVER"), "postgres")),
			LogLevel: strings.ToLower(valueOr(getenv("DB_LOG_LEVEL"), "warn")),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingSecret
	}

	expires, err := time.ParseDuration(valueOr(getenv("JWT_EXPIRES_IN"), "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}
	if expires <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: must be positive, got %s", expires)
	}
	cfg.JWT.ExpiresIn = expires

	switch cfg.Database.Driver {
	case "postgres":
		cfg.Database.DSN = getenv("DATABASE_URL")
		if cfg.Database.DSN == "" {
			cfg.Database.DSN = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				getenv("DB_HOST"),
				getenv("DB_USER"),
				getenv("DB_PASSWORD"),
				getenv("DB_NAME"),
				getenv("DB_PORT"),
			)
		}
	case "sqlite":
		cfg.Database.DSN = valueOr(getenv("DATABASE_URL"), "inventory.db")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
