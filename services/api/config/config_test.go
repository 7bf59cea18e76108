package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SOURCE", "CSV_PATH", "DATABASE_URL", "MEASUREMENTS_TABLE", "PORT", "API_PORT", "API_DEFAULT_LIMIT", "API_BEARER_TOKEN"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceCSV, cfg.SourceKind)
	assert.Equal(t, "preprocessed_openaq_ready.csv", cfg.CSVPath)
	assert.Equal(t, "measurements", cfg.MeasurementsTable)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10000, cfg.DefaultLimit)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoadPostgresRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOURCE", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOURCE", "ftp")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/aqi")
	t.Setenv("MEASUREMENTS_TABLE", "openaq.readings")
	t.Setenv("PORT", "9090")
	t.Setenv("API_DEFAULT_LIMIT", "500")
	t.Setenv("API_BEARER_TOKEN", "sekrit")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, cfg.SourceKind)
	assert.Equal(t, "postgres://localhost/aqi", cfg.DatabaseURL)
	assert.Equal(t, "openaq.readings", cfg.MeasurementsTable)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 500, cfg.DefaultLimit)
	assert.Equal(t, "sekrit", cfg.BearerToken)
}

func TestLoadRejectsBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")

	_, err := Load()
	require.Error(t, err)
}
