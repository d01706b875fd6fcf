// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Storage backend names accepted in the STORAGE variable.
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// Storage selects the snapshot backend: "file" (default), "memory"
	// (state discarded on restart), or "postgres".
	Storage string

	// DataDir is where the file backend keeps its entries. Defaults to "./data".
	DataDir string

	// DatabaseURL is the Postgres connection string.
	// Required only when Storage is "postgres".
	DatabaseURL string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error for an unknown storage backend or, with the postgres
// backend, a missing DATABASE_URL.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Storage:     getEnv("STORAGE", StorageFile),
		DataDir:     getEnv("DATA_DIR", "./data"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	switch cfg.Storage {
	case StorageFile, StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("STORAGE=postgres requires DATABASE_URL to be set")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE value %q (want file, memory, or postgres)", cfg.Storage)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
