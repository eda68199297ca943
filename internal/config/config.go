package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App    AppConfig
	Redis  RedisConfig
	Logger LoggerConfig
	Auth   AuthConfig
	Cache  CacheConfig
	Upload UploadConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines the optional bearer guard on the metrics surface.
type AuthConfig struct {
	JWTSecret          string
	TokenTTLHours      int
	MetricsAuthEnabled bool
}

// CacheConfig controls TTLs for cached datasets and reports.
type CacheConfig struct {
	DefaultTTLSeconds   int
	ReportRetentionDays int
}

// UploadConfig bounds file uploads.
type UploadConfig struct {
	MaxBytes         int
	Dir              string
	SupportedFormats []string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "data-analytics-service"),
			Env:                   getEnv("APP_ENV", "production"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "5000"),
			Version:               getEnv("APP_VERSION", "1.0.0"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET_KEY", "dev-secret-change-in-production"),
			TokenTTLHours:      getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
			MetricsAuthEnabled: getEnvAsBool("METRICS_AUTH_ENABLED", false),
		},
		Cache: CacheConfig{
			DefaultTTLSeconds:   getEnvAsInt("CACHE_DEFAULT_TIMEOUT_SECONDS", 300),
			ReportRetentionDays: getEnvAsInt("REPORT_RETENTION_DAYS", 30),
		},
		Upload: UploadConfig{
			MaxBytes:         getEnvAsInt("MAX_UPLOAD_BYTES", 16*1024*1024),
			Dir:              getEnv("UPLOAD_FOLDER", "uploads"),
			SupportedFormats: splitList(getEnv("SUPPORTED_FILE_FORMATS", "csv,json,xlsx,xls,parquet")),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// DefaultTTL returns the cache entry lifetime.
func (c CacheConfig) DefaultTTL() time.Duration {
	return time.Duration(c.DefaultTTLSeconds) * time.Second
}

// ReportRetention returns how long generated reports stay cached.
func (c CacheConfig) ReportRetention() time.Duration {
	return time.Duration(c.ReportRetentionDays) * 24 * time.Hour
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
