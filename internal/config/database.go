package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"jaalakam-backend/internal/infrastructure/database"
)

// strictEnv reads typed variables and keeps the first parse error.
// Unlike getEnvInt and getEnvDuration it never falls back on malformed input.
type strictEnv struct {
	err error
}

func (e *strictEnv) integer(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" || e.err != nil {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		e.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return v
}

func (e *strictEnv) duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" || e.err != nil {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		e.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	if v <= 0 {
		e.err = fmt.Errorf("invalid %s: must be positive, got %s", key, raw)
		return def
	}
	return v
}

// LoadDatabaseConfig reads the PostgreSQL pool and retry settings.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	env := &strictEnv{}

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     env.integer("DB_PORT", 5432),
		Username: getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "jaalakam"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          int32(env.integer("DB_MAX_CONNECTIONS", 25)),
		MinConns:          int32(env.integer("DB_MIN_CONNECTIONS", 2)),
		MaxConnLifetime:   env.duration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   env.duration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: env.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),

		MaxRetries:     env.integer("DB_MAX_RETRIES", 5),
		RetryDelay:     env.duration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: env.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}
	if env.err != nil {
		return nil, env.err
	}

	switch {
	case cfg.MaxConns < 1:
		return nil, fmt.Errorf("DB_MAX_CONNECTIONS must be at least 1")
	case cfg.MinConns < 0 || cfg.MinConns > cfg.MaxConns:
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS must be between 0 and DB_MAX_CONNECTIONS")
	case cfg.MaxRetries < 1:
		return nil, fmt.Errorf("DB_MAX_RETRIES must be at least 1")
	}

	return cfg, nil
}
