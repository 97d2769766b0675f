package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Providers ProvidersConfig
	Runner    RunnerConfig
	Export    ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ProvidersConfig maps provider names to the per-provider read stores that
// hold historical extraction sessions. The map doubles as the allow-list:
// a provider absent from it can never be interpolated into a DSN.
type ProvidersConfig struct {
	// DSNTemplate contains a "{store}" placeholder replaced with the
	// allow-listed store name.
	DSNTemplate string
	// Stores maps provider name -> store (database) name.
	Stores map[string]string
}

// RunnerConfig holds automation runner configuration
type RunnerConfig struct {
	ScriptsDir string
	Workers    int
	QueueSize  int
	RunTimeout time.Duration
}

// ExportConfig holds result export configuration
type ExportConfig struct {
	ResultsDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Providers: ProvidersConfig{
			DSNTemplate: getEnv("PROVIDER_DB_URL", ""),
			Stores:      parseStoreMap(getEnv("PROVIDER_STORES", "")),
		},
		Runner: RunnerConfig{
			ScriptsDir: getEnv("SCRIPTS_DIR", "./scripts"),
			Workers:    getEnvAsInt("RUNNER_WORKERS", 4),
			QueueSize:  getEnvAsInt("RUNNER_QUEUE_SIZE", 256),
			RunTimeout: getEnvAsDuration("RUNNER_TIMEOUT", 30*time.Minute),
		},
		Export: ExportConfig{
			ResultsDir: getEnv("RESULTS_DIR", "./results"),
		},
	}
}

// parseStoreMap parses "provider=store,provider2=store2" pairs. Provider
// keys are lowercased to match the case-insensitive lookup in StoreName.
func parseStoreMap(raw string) map[string]string {
	stores := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			stores[k] = v
		}
	}
	return stores
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrValidation)
	}
	if c.Providers.DSNTemplate != "" && !strings.Contains(c.Providers.DSNTemplate, "{store}") {
		return NewAppError("CONFIG_ERROR", "PROVIDER_DB_URL must contain a {store} placeholder", ErrValidation)
	}
	for provider, store := range c.Providers.Stores {
		if strings.ContainsAny(store, " ;'\"") {
			return NewAppError("CONFIG_ERROR", fmt.Sprintf("store name for provider %q contains unsafe characters", provider), ErrValidation)
		}
	}
	return nil
}
