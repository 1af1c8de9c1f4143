package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store backend names accepted in StoreBackend.
const (
	StoreBackendFile     = "file"
	StoreBackendRedis    = "redis"
	StoreBackendSQLite   = "sqlite"
	StoreBackendPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Record store configuration
	StoreBackend string
	DataDir      string // file backend
	SQLitePath   string // sqlite backend

	// Postgres backend configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis backend configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Operator identity and JWT configuration
	JWTSecret            string
	OperatorEmail        string
	OperatorPasswordHash string

	// Brand assets for document export; http(s) or s3:// URLs, empty to
	// always use the drawn fallback.
	CoverImageURL string
	LogoImageURL  string
}

// LoadConfig creates a new Config instance with values from environment
// variables or secrets, depending on the environment.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI, Development, Test:
		if err := loadEnvConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvConfig loads configuration from environment variables with local
// defaults. Used in development, test and CI.
func loadEnvConfig(cfg *Config) error {
	cfg.ServerPort = envOr("SERVER_PORT", "8080")
	cfg.ServerHost = envOr("SERVER_HOST", "0.0.0.0")

	cfg.StoreBackend = envOr("STORE_BACKEND", StoreBackendFile)
	cfg.DataDir = envOr("DATA_DIR", "data")
	cfg.SQLitePath = envOr("SQLITE_PATH", filepath.Join(cfg.DataDir, "purplefit.db"))

	cfg.DBHost = envOr("DB_HOST", "localhost")
	cfg.DBPort = envOr("DB_PORT", "5432")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = envOr("DB_NAME", "purplefit")
	cfg.DBSSLMode = envOr("DB_SSL_MODE", "disable")

	cfg.RedisHost = envOr("REDIS_HOST", "localhost")
	cfg.RedisPort = envOr("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	redisDB, err := strconv.Atoi(envOr("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.OperatorEmail = os.Getenv("OPERATOR_EMAIL")
	cfg.OperatorPasswordHash = os.Getenv("OPERATOR_PASSWORD_HASH")

	cfg.CoverImageURL = os.Getenv("ASSET_COVER_URL")
	cfg.LogoImageURL = os.Getenv("ASSET_LOGO_URL")

	return nil
}

// loadProdConfig loads configuration for production: non-sensitive values
// from environment variables, sensitive values from Docker secrets.
func loadProdConfig(cfg *Config) error {
	if err := loadEnvConfig(cfg); err != nil {
		return err
	}

	cfg.DBPassword = readSecret("db_password")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.JWTSecret = readSecret("jwt_secret")
	cfg.OperatorPasswordHash = readSecret("operator_password_hash")

	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
