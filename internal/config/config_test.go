package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_DRIVER", "DATABASE_URL", "JWT_SECRET", "JWT_ISSUER", "JWT_TTL_MINUTES",
		"CORS_ALLOWED_ORIGINS", "COIN_API_KEY", "COIN_API_URL", "UPLOAD_PATH", "MAX_UPLOAD_MB",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/finance")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTPAddress())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.True(t, cfg.UsingDefaultSecret())
	assert.Equal(t, 30*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "https://rest.coinapi.io", cfg.CoinAPIURL)
	assert.Equal(t, "./uploads", cfg.UploadPath)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes())
	assert.Empty(t, cfg.CoinAPIKey)
}

func TestLoadRequiresDatabaseURLForPostgres(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadSQLiteDefaultsPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "SQLite")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "finance.db", cfg.DatabaseURL)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://db")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("COIN_API_URL", "http://localhost:9999/")
	t.Setenv("MAX_UPLOAD_MB", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddress())
	assert.False(t, cfg.UsingDefaultSecret())
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "http://localhost:9999", cfg.CoinAPIURL)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
}
