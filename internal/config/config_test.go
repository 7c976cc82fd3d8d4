package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bizdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	require.Equal(t, "pt", cfg.I18n.Locale)
	require.Equal(t, time.Second, cfg.Auth.LoginDelay)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  cors_origins: ["http://localhost:5173"]
transport:
  mode: stdio
store:
  backend: sqlite
  path: /tmp/desk.db
  seed: false
log:
  level: debug
auth:
  enabled: true
  login_delay: 250ms
  admins:
    - email: admin@example.com
      password_hash: "$2a$10$abcdefghijklmnopqrstuv"
i18n:
  locale: en
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	require.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	require.Equal(t, ModeStdio, cfg.Transport.Mode)
	require.Equal(t, StoreConfig{Backend: BackendSQLite, Path: "/tmp/desk.db"}, cfg.Store)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, 250*time.Millisecond, cfg.Auth.LoginDelay)
	require.Len(t, cfg.Auth.Admins, 1)
	require.Equal(t, "admin@example.com", cfg.Auth.Admins[0].Email)
	require.Equal(t, "en", cfg.I18n.Locale)
}

func TestLoadPathFromEnv(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\n")
	t.Setenv("BIZDESK_CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("BIZDESK_SERVER_PORT", "7070")
	t.Setenv("BIZDESK_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("BIZDESK_STORE_BACKEND", "SQLite")
	t.Setenv("BIZDESK_STORE_SEED", "false")
	t.Setenv("BIZDESK_LOGIN_DELAY", "0s")
	t.Setenv("BIZDESK_AUTH_ENABLED", "true")
	t.Setenv("BIZDESK_ADMIN_EMAIL", "root@example.com")
	t.Setenv("BIZDESK_ADMIN_PASSWORD_HASH", "hash")
	t.Setenv("BIZDESK_LOCALE", "en")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	require.Equal(t, BackendSQLite, cfg.Store.Backend)
	require.False(t, cfg.Store.Seed)
	require.Zero(t, cfg.Auth.LoginDelay)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, "root@example.com", cfg.Auth.Admins[0].Email)
	require.Equal(t, "en", cfg.I18n.Locale)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "bad port", env: map[string]string{"BIZDESK_SERVER_PORT": "eighty"}},
		{name: "bad seed flag", env: map[string]string{"BIZDESK_STORE_SEED": "maybe"}},
		{name: "bad delay", env: map[string]string{"BIZDESK_LOGIN_DELAY": "soon"}},
		{name: "unknown mode", env: map[string]string{"BIZDESK_TRANSPORT": "grpc"}},
		{name: "unknown backend", env: map[string]string{"BIZDESK_STORE_BACKEND": "postgres"}},
		{name: "unsupported locale", env: map[string]string{"BIZDESK_LOCALE": "fr"}},
		{name: "auth without admins", env: map[string]string{"BIZDESK_AUTH_ENABLED": "true"}},
		{name: "malformed yaml", file: "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "read config file")
}
