// Package config loads service configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	DataDir   string
	RESTPort  string
	RedisURL  string
	CacheTTL  time.Duration
	LogLevel  string
	LogPretty bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; real environment
// variables win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DataDir:   getEnv("PALLAS_DATA_DIR", "./data"),
		RESTPort:  getEnv("PALLAS_REST_PORT", "8080"),
		RedisURL:  getEnv("REDIS_URL", ""),
		CacheTTL:  time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
