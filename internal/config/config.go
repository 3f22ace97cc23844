package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds settings for the S3-compatible object store that keeps
// the original uploaded files.
type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Region        string
	Bucket        string
	UseSSL        bool
	KeyPrefix     string
	PublicBaseURL string
}

// OCRConfig selects the OCR backend and rasterization settings.
type OCRConfig struct {
	Provider        string // tesseract or vision
	Language        string
	DPI             float64
	MaxPixels       int64 // per page, width×height after rasterization
	CredentialsFile string
}

// LLMConfig holds the completion API settings.
type LLMConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	TimeoutSec int
}

// IngestConfig tunes the upload pipeline.
type IngestConfig struct {
	Workers     int
	TempDir     string
	MaxUploadMB int
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is built once in main and handed to every adapter constructor.
type AppConfig struct {
	Port     string
	Database DatabaseConfig
	Storage  StorageConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Ingest   IngestConfig
	Log      LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Endpoint:      getEnv("S3_ENDPOINT", "s3.amazonaws.com"),
			AccessKey:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Region:        getEnv("AWS_S3_REGION_NAME", "us-east-1"),
			Bucket:        getEnv("AWS_STORAGE_BUCKET_NAME", ""),
			UseSSL:        getEnvBool("S3_USE_SSL", true),
			KeyPrefix:     getEnv("BLOB_KEY_PREFIX", "documents"),
			PublicBaseURL: getEnv("BLOB_PUBLIC_BASE_URL", ""),
		},
		OCR: OCRConfig{
			Provider:        getEnv("OCR_PROVIDER", "tesseract"),
			Language:        getEnv("OCR_LANGUAGE", "eng"),
			DPI:             getEnvFloat("RASTER_DPI", 72),
			MaxPixels:       int64(getEnvInt("RASTER_MAX_PIXELS", 50_000_000)),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		LLM: LLMConfig{
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			Model:      getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			BaseURL:    getEnv("OPENAI_BASE_URL", ""),
			TimeoutSec: getEnvInt("OPENAI_TIMEOUT_SEC", 60),
		},
		Ingest: IngestConfig{
			Workers:     getEnvInt("INGEST_WORKERS", 1),
			TempDir:     getEnv("UPLOAD_TMP_DIR", ""),
			MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 32),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
