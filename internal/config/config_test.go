// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, and validation failures

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8000"

database:
  path: "./SuperTodoDB.db"

auth:
  bcrypt_cost: 12

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddr)
	assert.Equal(t, "./SuperTodoDB.db", cfg.Database.Path)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("SUPERTODO_DB_PATH", "/var/lib/supertodo/todo.db")

	path := writeConfig(t, `
server:
  http_addr: ":8000"

database:
  path: "${SUPERTODO_DB_PATH}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/supertodo/todo.db", cfg.Database.Path)
}

func TestLoad_MissingHTTPAddr(t *testing.T) {
	path := writeConfig(t, `
database:
  path: "./todo.db"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.http_addr")
}

func TestLoad_MissingDatabasePath(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: ":8000"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.path")
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: ":8000"

database:
  path: "./todo.db"

auth:
  bcrypt_cost: 99
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt_cost")
}

func TestLoad_ZeroBcryptCostMeansDefault(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: ":8000"

database:
  path: "./todo.db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Auth.BcryptCost)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}
