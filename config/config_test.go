package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memoryConfigYAML = `
env:
  serviceName: keycard
  log:
    level: info
http:
  port: 8080
storage:
  driver: memory
session:
  keys:
    - first-key
  maxAge: 1h
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeConfig(t, memoryConfigYAML)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "keycard", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"first-key"}, cfg.Session.Keys)
	assert.Equal(t, time.Hour, cfg.Session.MaxAge)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeConfig(t, memoryConfigYAML)
	t.Chdir(dir)
	t.Setenv("SESSION_KEYS", "new-key,first-key")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"new-key", "first-key"}, cfg.Session.Keys)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{Driver: StorageDriverMemory},
		Session: &SessionConfig{Keys: []string{"k"}},
	}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, "/", cfg.Session.Path)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestApplyDefaults_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want string
	}{
		{
			name: "unknown driver",
			cfg:  &Config{Storage: &StorageConfig{Driver: "redis"}, Session: &SessionConfig{Keys: []string{"k"}}},
			want: "unknown storage driver",
		},
		{
			name: "postgres without connection",
			cfg:  &Config{Session: &SessionConfig{Keys: []string{"k"}}},
			want: "postgres config is required",
		},
		{
			name: "no session keys",
			cfg:  &Config{Storage: &StorageConfig{Driver: StorageDriverMemory}},
			want: "session.keys",
		},
		{
			name: "blank session key",
			cfg:  &Config{Storage: &StorageConfig{Driver: StorageDriverMemory}, Session: &SessionConfig{Keys: []string{"k", " "}}},
			want: "session.keys[1] is blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.applyDefaults()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_ShippedConfigRequiresSessionKey(t *testing.T) {
	t.Setenv("SESSION_KEYS", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.keys")

	t.Setenv("SESSION_KEYS", "deployment-secret")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, []string{"deployment-secret"}, cfg.Session.Keys)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}
