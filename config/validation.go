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

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequireJWTSecret bool
	RequirePasscode  bool
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {},
		Test:        {},
		CI:          {},
		Production: {
			RequireJWTSecret: true,
			RequirePasscode:  true,
		},
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	errs := Validate(cfg, GetEnvironment())
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "\n"))
}

// Validate returns every problem found in cfg for env.
func Validate(cfg *Config, env Environment) []ValidationError {
	reqs := requirements[env]
	var errs []ValidationError

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "server_port", Message: "is required"})
	}
	if cfg.StorageKey == "" {
		errs = append(errs, ValidationError{Field: "storage_key", Message: "is required"})
	}

	switch cfg.StorageDriver {
	case DriverMemory:
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{Field: "sqlite_path", Message: "is required for the sqlite driver"})
		}
	case DriverPostgres:
		for _, f := range []struct{ name, value string }{
			{"db_host", cfg.DBHost},
			{"db_port", cfg.DBPort},
			{"db_user", cfg.DBUser},
			{"db_name", cfg.DBName},
		} {
			if f.value == "" {
				errs = append(errs, ValidationError{Field: f.name, Message: "is required for the postgres driver"})
			}
		}
	case DriverRedis:
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			errs = append(errs, ValidationError{Field: "redis_host", Message: "redis_host or redis_url is required for the redis driver"})
		}
	default:
		errs = append(errs, ValidationError{Field: "storage_driver", Message: fmt.Sprintf("unknown driver %q", cfg.StorageDriver)})
	}

	if _, err := cfg.Location(); err != nil {
		errs = append(errs, ValidationError{Field: "timezone", Message: err.Error()})
	}
	if cfg.TokenTTLHours <= 0 {
		errs = append(errs, ValidationError{Field: "token_ttl_hours", Message: "must be positive"})
	}

	if reqs.RequireJWTSecret && cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: fmt.Sprintf("is required in %s", env)})
	}
	if reqs.RequirePasscode && cfg.PasscodeHash == "" {
		errs = append(errs, ValidationError{Field: "passcode_hash", Message: fmt.Sprintf("is required in %s", env)})
	}
	if cfg.JWTSecret != "" && cfg.PasscodeHash == "" {
		errs = append(errs, ValidationError{Field: "passcode_hash", Message: "is required when jwt_secret is set"})
	}

	return errs
}
