package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
request_timeout = 20

[database]
host = "db.local"
port = 5433
user = "clinic"
password = "secret"
dbname = "clinic"
sslmode = "require"

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "smc-clinic-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.RequestTimeout)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t,
		"host=db.local port=5433 user=clinic password=secret dbname=clinic sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "clinic"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.RequestTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "clinic"
`)

	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_MissingDatabaseHost(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
