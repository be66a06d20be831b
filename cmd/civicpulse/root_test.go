package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultFileOptional(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_USER", "civic")

	cfg, err := loadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "civic", cfg.Database.Username)
	assert.Equal(t, ":8000", cfg.Server.Address)
}

func TestLoadConfig_ExplicitFileMustExist(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := loadConfig("missing.json")

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server":{"address":":9100"},"database":{"username":"civic"}}`), 0o600))

	cfg, err := loadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Server.Address)
}

func TestLoadConfig_InvalidFails(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_USER", "civic")
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := loadConfig("")

	assert.ErrorContains(t, err, "invalid config")
}
