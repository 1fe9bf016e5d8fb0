package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "tweethub", cfg.Database.Username)
	assert.Equal(t, "tweethub_db", cfg.Database.DatabaseName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "3307", cfg.Database.Port)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:         "db.internal",
			Port:         "3306",
			Username:     "tweethub",
			Password:     "secret",
			DatabaseName: "tweethub_db",
		},
	}

	dsn := cfg.DSN()
	assert.Equal(t, "tweethub:secret@tcp(db.internal:3306)/tweethub_db?charset=utf8mb4&parseTime=True&loc=UTC", dsn)
}

func TestConfig_DSN_EmptyHostFallsBack(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Username:     "tweethub",
			DatabaseName: "tweethub_db",
		},
	}

	assert.Contains(t, cfg.DSN(), "@tcp(localhost:3306)/")
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		require.NoError(t, os.Unsetenv(key))
	}
}
