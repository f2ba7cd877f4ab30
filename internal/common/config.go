package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Gemini   GeminiConfig
	Evaluate EvaluateConfig
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

// StorageConfig holds S3 object-storage configuration
type StorageConfig struct {
	Bucket        string
	Region        string
	PresignExpiry time.Duration
}

// GeminiConfig holds the Vertex AI model configuration
type GeminiConfig struct {
	ProjectID     string
	Region        string
	AnalysisModel string
	ReportModel   string
	CallTimeout   time.Duration
}

// EvaluateConfig holds the pipeline budget and worker settings
type EvaluateConfig struct {
	FanoutTimeout time.Duration
	MaxConcurrent int
	Workers       int
	QueueSize     int
}

// LoadConfig loads configuration from the environment. A .env file in the
// working directory is applied first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

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
		Storage: StorageConfig{
			Bucket:        getEnv("S3_BUCKET", ""),
			Region:        getEnv("AWS_REGION", "ap-northeast-2"),
			PresignExpiry: getEnvAsDuration("S3_PRESIGN_EXPIRY", 15*time.Minute),
		},
		Gemini: GeminiConfig{
			ProjectID:     getEnv("GCP_PROJECT", ""),
			Region:        getEnv("VERTEX_AI_REGION", "us-central1"),
			AnalysisModel: getEnv("GEMINI_ANALYSIS_MODEL", "gemini-2.5-flash"),
			ReportModel:   getEnv("GEMINI_REPORT_MODEL", "gemini-2.5-flash"),
			CallTimeout:   getEnvAsDuration("GEMINI_CALL_TIMEOUT", 45*time.Second),
		},
		Evaluate: EvaluateConfig{
			FanoutTimeout: getEnvAsDuration("EVALUATE_FANOUT_TIMEOUT", 2*time.Minute),
			MaxConcurrent: getEnvAsInt("EVALUATE_MAX_CONCURRENT", 8),
			Workers:       getEnvAsInt("EVALUATE_WORKERS", 4),
			QueueSize:     getEnvAsInt("EVALUATE_QUEUE_SIZE", 256),
		},
	}
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "S3_BUCKET is required", ErrInvalidInput)
	}
	if c.Gemini.ProjectID == "" {
		return NewAppError("CONFIG_ERROR", "GCP_PROJECT is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
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
