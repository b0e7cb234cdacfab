package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapp/pkg/common/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, config.BackendMemory, cfg.Storage.Backend)
	assert.True(t, cfg.Storage.Seed)
	assert.False(t, cfg.IsProd())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("STORAGE_BACKEND", "FILE")
	t.Setenv("STORAGE_DIR", "/var/lib/blogapp")
	t.Setenv("STORAGE_SEED", "no")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("APP_ENV", "production")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, config.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/blogapp", cfg.Storage.Dir)
	assert.False(t, cfg.Storage.Seed)
	assert.Equal(t, 5, cfg.Middleware.RateLimit.Rate)
	assert.True(t, cfg.IsProd())
}

func TestConfigFileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"server":{"address":":7070"},"storage":{"backend":"file","dir":"./blobs","seed":true}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("APP_CONFIG", path)
	t.Setenv("STORAGE_DIR", "/overridden")

	cfg := config.Load()

	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, config.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/overridden", cfg.Storage.Dir, "env beats config file")
}
