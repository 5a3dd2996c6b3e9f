package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers accepted in Config.StorageDriver.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string `yaml:"server_port"`
	ServerHost string `yaml:"server_host"`
	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string `yaml:"cors_origins"`

	// Storage configuration
	StorageDriver string `yaml:"storage_driver"`
	StorageKey    string `yaml:"storage_key"`
	SQLitePath    string `yaml:"sqlite_path"`
	Timezone      string `yaml:"timezone"`

	// Database configuration
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_ssl_mode"`

	// Redis configuration
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	RedisURL      string `yaml:"redis_url"`

	// Auth configuration
	JWTSecret     string `yaml:"jwt_secret"`
	PasscodeHash  string `yaml:"passcode_hash"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`

	// Coach configuration
	CoachAPIURL    string `yaml:"coach_api_url"`
	CoachAPIKey    string `yaml:"coach_api_key"`
	CoachModel     string `yaml:"coach_model"`
	CoachRateLimit int    `yaml:"coach_rate_limit"`

	// Photo storage configuration
	S3Bucket string `yaml:"s3_bucket"`
	S3Region string `yaml:"s3_region"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		ServerPort:     "8080",
		ServerHost:     "0.0.0.0",
		CORSOrigins:    []string{"http://localhost:5173"},
		StorageDriver:  DriverSQLite,
		StorageKey:     "zenithfit_db",
		SQLitePath:     "zenithfit.db",
		Timezone:       "Local",
		DBHost:         "localhost",
		DBPort:         "5432",
		DBName:         "zenithfit",
		DBSSLMode:      "disable",
		RedisHost:      "localhost",
		RedisPort:      "6379",
		TokenTTLHours:  24,
		CoachAPIURL:    "https://api.deepseek.com/v1/chat/completions",
		CoachModel:     "deepseek-chat",
		CoachRateLimit: 30,
		Log:            LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
	}
}

// LoadConfig creates a new Config from defaults, an optional YAML file
// (CONFIG_FILE), environment variables and secret files, in that order.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	loadSecrets(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	envOverride(&cfg.ServerPort, "SERVER_PORT")
	envOverride(&cfg.ServerHost, "SERVER_HOST")
	envOverride(&cfg.StorageDriver, "STORAGE_DRIVER")
	envOverride(&cfg.StorageKey, "STORAGE_KEY")
	envOverride(&cfg.SQLitePath, "SQLITE_PATH")
	envOverride(&cfg.Timezone, "TZ_NAME")
	envOverride(&cfg.DBHost, "DB_HOST")
	envOverride(&cfg.DBPort, "DB_PORT")
	envOverride(&cfg.DBUser, "DB_USER")
	envOverride(&cfg.DBPassword, "DB_PASSWORD")
	envOverride(&cfg.DBName, "DB_NAME")
	envOverride(&cfg.DBSSLMode, "DB_SSL_MODE")
	envOverride(&cfg.RedisHost, "REDIS_HOST")
	envOverride(&cfg.RedisPort, "REDIS_PORT")
	envOverride(&cfg.RedisPassword, "REDIS_PASSWORD")
	envOverride(&cfg.RedisURL, "REDIS_URL")
	envOverride(&cfg.JWTSecret, "JWT_SECRET")
	envOverride(&cfg.PasscodeHash, "PASSCODE_HASH")
	envOverride(&cfg.CoachAPIURL, "COACH_API_URL")
	envOverride(&cfg.CoachAPIKey, "COACH_API_KEY")
	envOverride(&cfg.CoachModel, "COACH_MODEL")
	envOverride(&cfg.S3Bucket, "S3_BUCKET_NAME")
	envOverride(&cfg.S3Region, "AWS_REGION")
	envOverride(&cfg.Log.Level, "LOG_LEVEL")
	envOverride(&cfg.Log.File, "LOG_FILE")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	for key, dst := range map[string]*int{
		"REDIS_DB":         &cfg.RedisDB,
		"TOKEN_TTL_HOURS":  &cfg.TokenTTLHours,
		"COACH_RATE_LIMIT": &cfg.CoachRateLimit,
	} {
		if err := envOverrideInt(dst, key); err != nil {
			return err
		}
	}
	return nil
}

// loadSecrets fills sensitive values from Docker secrets when present.
func loadSecrets(cfg *Config) {
	secretOverride(&cfg.DBPassword, "db_password")
	secretOverride(&cfg.RedisPassword, "redis_password")
	secretOverride(&cfg.JWTSecret, "jwt_secret")
	secretOverride(&cfg.PasscodeHash, "passcode_hash")
	secretOverride(&cfg.CoachAPIKey, "coach_api_key")
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// PostgresDSN returns the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Location resolves Timezone. Calendar days are computed in this zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// TokenTTL is the lifetime of issued session tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

func secretOverride(dst *string, name string) {
	if v := readSecret(name); v != "" {
		*dst = v
	}
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
