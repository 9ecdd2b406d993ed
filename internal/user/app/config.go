package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string        // Issuer claim stamped into access tokens
	JWTSecret      string        // Required: shared HS256 secret, >= 32 bytes
	AccessTokenTTL time.Duration // Access token lifetime (default: 1h)

	DatabaseFile        string        // Path to SQLite database file (default: ./user.db)
	PepperFile          string        // Path to password hashing pepper file (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("PETPAL_ISSUER", "petpal-user"),
		JWTSecret:           os.Getenv("PETPAL_JWT_SECRET"),
		AccessTokenTTL:      getEnvDurationOrDefault("PETPAL_TOKEN_TTL", time.Hour),
		DatabaseFile:        getEnvOrDefault("USER_DATABASE_FILE", "user.db"),
		PepperFile:          getEnvOrDefault("USER_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer seconds also accepted
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
