package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":8080"
contest: "configs/contest.yaml"
logger:
  level: "debug"
storage:
  database: "data/csrank.db"
redis:
  enabled: true
  addr: "localhost:6379"
  key_prefix: "csrank"
auth:
  jwt:
    secret: "s3cret"
    expire_hours: 24
admin:
  enabled: true
  listen: ":8081"
  username: "operator"
cors:
  allowed_origins:
    - "https://board.example.org"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "configs/contest.yaml", cfg.Contest)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "data/csrank.db", cfg.Storage.Database)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "csrank", cfg.Redis.KeyPrefix)
	assert.Equal(t, "s3cret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 24, cfg.Auth.JWT.ExpireHours)
	assert.True(t, cfg.Admin.Enabled)
	assert.Equal(t, []string{"https://board.example.org"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
