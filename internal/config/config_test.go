package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-rusnak/supER/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv clears leftovers from the environment for this test only.
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("STORAGE", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, config.StorageFile, cfg.Storage)
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example ,")
	t.Setenv("STORAGE", "memory")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, config.StorageMemory, cfg.Storage)
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()

	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoad_PostgresWithDatabaseURL(t *testing.T) {
	t.Setenv("STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/super")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.StoragePostgres, cfg.Storage)
	assert.Equal(t, "postgres://localhost/super", cfg.DatabaseURL)
}

func TestLoad_UnknownStorage(t *testing.T) {
	t.Setenv("STORAGE", "scrolls")

	_, err := config.Load()

	assert.ErrorContains(t, err, "scrolls")
}
