package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is complete enough for the
// selected store backend and for the auth scaffolding.
func ValidateConfig(cfg *Config) error {
	var errors []string

	switch cfg.StoreBackend {
	case StoreBackendFile, "":
		if cfg.DataDir == "" {
			errors = append(errors, "DATA_DIR is required for the file backend")
		}
	case StoreBackendSQLite:
		if cfg.SQLitePath == "" {
			errors = append(errors, "SQLITE_PATH is required for the sqlite backend")
		}
	case StoreBackendPostgres:
		if cfg.DBUser == "" {
			errors = append(errors, "DB_USER is required for the postgres backend")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required for the postgres backend")
		}
	case StoreBackendRedis:
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			errors = append(errors, "REDIS_URL or REDIS_HOST/REDIS_PORT are required for the redis backend")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown store backend %q", cfg.StoreBackend))
	}

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT secret is not set")
	}
	if cfg.OperatorEmail == "" {
		errors = append(errors, "operator email is not set")
	}
	if cfg.OperatorPasswordHash == "" {
		errors = append(errors, "operator password hash is not set")
	}

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is not set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
