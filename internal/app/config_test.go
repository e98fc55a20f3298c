package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
port = ":8080"

[database]
dsn = "postgres://localhost/registry?sslmode=disable"
migrations_dir = "./db/migrations"

[api]
default_limit = 25
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", config.Server.Port)
	assert.Equal(t, "postgres://localhost/registry?sslmode=disable", config.Database.DSN)
	assert.Equal(t, "./db/migrations", config.Database.MigrationsDir)
	assert.Equal(t, 25, config.API.DefaultLimit)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
port = ":8080"

[database]
dsn = "registry.db"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "./migrations", config.Database.MigrationsDir)
	assert.Equal(t, defaultListLimit, config.API.DefaultLimit)
}

func TestLoadConfigMissingPort(t *testing.T) {
	path := writeConfig(t, `
[database]
dsn = "registry.db"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("no/such/config.toml")
	require.Error(t, err)
}
