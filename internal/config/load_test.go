package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithMemoryDriver(t *testing.T) {
	t.Setenv("ASSETS_DATABASE_DRIVER", "memory")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "strict", cfg.Service.AssetReferencePolicy)
	assert.Equal(t, "lenient", cfg.Service.TransactionReferencePolicy)
	assert.False(t, cfg.Service.EmptyListIsError)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadPostgresRequiresURL(t *testing.T) {
	t.Setenv("ASSETS_DATABASE_DRIVER", "postgres")
	t.Setenv("ASSETS_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadUnprefixedDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/assets?sslmode=disable")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/assets?sslmode=disable", cfg.Database.URL)
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: 9090
  log_level: debug
database:
  driver: memory
service:
  transaction_reference_policy: strict
  empty_list_is_error: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("ASSETS_SERVER_PORT", "7070")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "strict", cfg.Service.TransactionReferencePolicy)
	assert.True(t, cfg.Service.EmptyListIsError)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"ASSETS_SERVER_LOG_LEVEL":                     "chatty",
		"ASSETS_SERVICE_ASSET_REFERENCE_POLICY":       "sometimes",
		"ASSETS_SERVER_PORT":                          "70000",
		"ASSETS_AUTH_BCRYPT_COST":                     "2",
		"ASSETS_SERVICE_TRANSACTION_REFERENCE_POLICY": "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv("ASSETS_DATABASE_DRIVER", "memory")
			t.Setenv(key, value)

			_, err := LoadFrom(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestLoadAuthEnabledNeedsSecret(t *testing.T) {
	t.Setenv("ASSETS_DATABASE_DRIVER", "memory")
	t.Setenv("ASSETS_AUTH_ENABLED", "true")

	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)

	t.Setenv("ASSETS_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Enabled)
}
