package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validConfig() *Config {
	cfg := New()
	cfg.Database.Username = "civic"
	return cfg
}

func TestLoad_MergesWithDefaults(t *testing.T) {
	path := writeTempConfig(t, `{
		"server": {"address": ":9090"},
		"database": {"username": "civic", "password": "secret"},
		"app": {"default_city": "Maryville, TN"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "15s", cfg.Server.ReadTimeout)
	assert.Equal(t, "Maryville, TN", cfg.App.DefaultCity)
	assert.Equal(t, "City of Knoxville", cfg.App.DefaultJurisdiction)
	assert.Equal(t, 50, cfg.App.ItemsLimit)
	assert.Equal(t, "localhost", cfg.Database.Host)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	require.Error(t, err)
}

func TestLoadOptional_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(writeTempConfig(t, `{ invalid json }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Password = "pw"
	assert.Equal(t, "postgres://civic:pw@localhost:5432/civicpulse?sslmode=disable", cfg.Database.DSN())
	cfg.Database.MaxConns = 8
	assert.Equal(t, "postgres://civic:pw@localhost:5432/civicpulse?pool_max_conns=8&sslmode=disable", cfg.Database.DSN())
}

func TestDSN_EscapesCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Password = "p@ss/w#rd"
	cfg.Database.MaxConns = 4

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())

	require.NoError(t, err)
	assert.Equal(t, "localhost", poolCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5432), poolCfg.ConnConfig.Port)
	assert.Equal(t, "civicpulse", poolCfg.ConnConfig.Database)
	assert.Equal(t, "civic", poolCfg.ConnConfig.User)
	assert.Equal(t, "p@ss/w#rd", poolCfg.ConnConfig.Password)
	assert.Equal(t, int32(4), poolCfg.MaxConns)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing username", func(c *Config) { c.Database.Username = "" }, "database username is not set"},
		{"bad timeout", func(c *Config) { c.Server.ReadTimeout = "soon" }, "invalid server.read_timeout"},
		{"first bad timeout wins", func(c *Config) {
			c.Server.WriteTimeout = "later"
			c.Server.IdleTimeout = "never"
		}, "invalid server.write_timeout"},
		{"upper-case level", func(c *Config) { c.Logger.Level = "INFO" }, ""},
		{"bad level", func(c *Config) { c.Logger.Level = "trace" }, "logger.level"},
		{"bad port", func(c *Config) { c.Database.Port = 0 }, "database port"},
		{"bad limit", func(c *Config) { c.App.ListLimit = 0 }, "app limits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv_OverridesFields(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CIVICPULSE_ADDR", ":7000")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "envuser")

	cfg := New()
	loaded, err := cfg.ApplyEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "envuser", cfg.Database.Username)
}

func TestApplyEnv_LoadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_NAME=fromdotenv\n"), 0o644))
	t.Setenv("DB_NAME", "")

	cfg := New()
	loaded, err := cfg.ApplyEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{".env"}, loaded)
	assert.Equal(t, "fromdotenv", cfg.Database.DBName)
}

func TestApplyEnv_InvalidPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_PORT", "abc")
	_, err := New().ApplyEnv()
	require.Error(t, err)
}

func TestTimeouts(t *testing.T) {
	read, write, idle := New().Server.Timeouts()
	assert.Equal(t, "15s", read.String())
	assert.Equal(t, "30s", write.String())
	assert.Equal(t, "2m0s", idle.String())
}
