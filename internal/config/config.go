package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Identity IdentityConfig
	CORS     CORSConfig
	Cache    CacheConfig
	Worker   WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
	AutoMigrate bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	Prefix   string
}

// IdentityConfig configures the external identity provider (Clerk).
type IdentityConfig struct {
	SecretKey         string        // sk_... used for the backend API
	JWTPublicKey      string        // PEM encoded RS256 key for session tokens
	APIURL            string        // https://api.clerk.com
	AuthorizedParties []string      // allowed azp values, empty = any
	Timeout           time.Duration // backend API timeout
}

type CORSConfig struct {
	AllowedOrigins []string
}

type CacheConfig struct {
	LiteratureTTL time.Duration
}

// WorkerConfig drives cmd/worker. Schedules use standard cron syntax.
type WorkerConfig struct {
	Concurrency           int
	ExpireClassifiedsCron string
	HealthPort            string
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Jaalakam API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "4000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "jaalakam"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "jaalakam"),
		},
		Identity: IdentityConfig{
			SecretKey:         getEnv("CLERK_SECRET_KEY", ""),
			JWTPublicKey:      strings.ReplaceAll(getEnv("CLERK_JWT_KEY", ""), `\n`, "\n"),
			APIURL:            getEnv("CLERK_API_URL", "https://api.clerk.com"),
			AuthorizedParties: getEnvList("CLERK_AUTHORIZED_PARTIES"),
			Timeout:           getEnvDuration("CLERK_TIMEOUT", 5*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		},
		Cache: CacheConfig{
			LiteratureTTL: getEnvDuration("CACHE_LITERATURE_TTL", 10*time.Minute),
		},
		Worker: WorkerConfig{
			Concurrency:           getEnvInt("WORKER_CONCURRENCY", 5),
			ExpireClassifiedsCron: getEnv("WORKER_EXPIRE_CLASSIFIEDS_CRON", "*/15 * * * *"),
			HealthPort:            getEnv("WORKER_HEALTH_PORT", "9999"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that cannot run in production.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	if c.App.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Identity.SecretKey == "" || c.Identity.JWTPublicKey == "" {
			return fmt.Errorf("CLERK_SECRET_KEY and CLERK_JWT_KEY must be set in production")
		}
		if len(c.CORS.AllowedOrigins) == 0 {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS must be set in production")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
