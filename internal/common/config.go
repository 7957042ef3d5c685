package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agrosuivi/farmdesk/constants"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Extraction ExtractionConfig
	Jobs       JobsConfig
	Sync       SyncConfig
	AI         AIConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" or "sqlite"
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

// ExtractionConfig tunes the hybrid pipeline.
type ExtractionConfig struct {
	ConfidenceThreshold float64
	PriorityFieldBar    float64
	PriorityFields      []string
}

// JobsConfig tunes the async job manager.
type JobsConfig struct {
	Workers        int
	PollInterval   time.Duration
	MaxRetries     int
	BackoffBase    time.Duration
	BackoffCap     time.Duration
	LargeDocBytes  int64
	LargeDocDelay  time.Duration
	ProcessTimeout time.Duration
}

// SyncConfig tunes the extraction/review/form coordinator.
type SyncConfig struct {
	DebounceWindow time.Duration
}

// AIConfig holds the external extraction model configuration.
type AIConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "postgres"),
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
		Extraction: ExtractionConfig{
			ConfidenceThreshold: getEnvAsFloat64("EXTRACT_CONFIDENCE_THRESHOLD", 0.75),
			PriorityFieldBar:    getEnvAsFloat64("EXTRACT_PRIORITY_FIELD_BAR", 0.85),
			PriorityFields:      getEnvAsList("EXTRACT_PRIORITY_FIELDS", []string{"siret_number", "cui_number", "turnover"}),
		},
		Jobs: JobsConfig{
			Workers:        getEnvAsInt("JOBS_WORKERS", 2),
			PollInterval:   getEnvAsDuration("JOBS_POLL_INTERVAL", 2*time.Second),
			MaxRetries:     getEnvAsInt("JOBS_MAX_RETRIES", 3),
			BackoffBase:    getEnvAsDuration("JOBS_BACKOFF_BASE", 2*time.Second),
			BackoffCap:     getEnvAsDuration("JOBS_BACKOFF_CAP", 5*time.Minute),
			LargeDocBytes:  getEnvAsInt64("JOBS_LARGE_DOC_BYTES", constants.LargeDocumentBytes),
			LargeDocDelay:  getEnvAsDuration("JOBS_LARGE_DOC_DELAY", 2*time.Second),
			ProcessTimeout: getEnvAsDuration("JOBS_PROCESS_TIMEOUT", 3*time.Minute),
		},
		Sync: SyncConfig{
			DebounceWindow: getEnvAsDuration("SYNC_DEBOUNCE_WINDOW", 500*time.Millisecond),
		},
		AI: AIConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
	}
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var out []string
		for _, part := range strings.Split(value, ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration. OPENAI_API_KEY is
// deliberately not required: without it the pipeline runs pattern-only.
func (c *Config) Validate() error {
	// sqlite defaults to an in-memory DSN, so only postgres needs one set
	if c.Database.DSN == "" && c.Database.Driver != "sqlite" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
