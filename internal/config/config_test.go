package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "*", cfg.Server.AllowedOrigin)
	assert.False(t, cfg.Remote.Enabled)
	assert.Equal(t, DefaultBackend, cfg.Remote.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
	assert.Empty(t, cfg.Dictionary.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	path := writeConfig(t, `
server:
  port: 9090
  allowed_origin: https://apassphrase.example
remote:
  enabled: true
  base_url: http://localhost:9090/
  timeout: 2s
dictionary:
  dir: /srv/dictionaries
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "https://apassphrase.example", cfg.Server.AllowedOrigin)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, "http://localhost:9090/", cfg.Remote.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "/srv/dictionaries", cfg.Dictionary.Dir)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("APASSPHRASE_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	path := writeConfig(t, "server:\n  port: 70000\nlog:\n  format: xml\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "log.format")
}

func TestValidate_RemoteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "https", baseURL: "https://api-apassphrase.herokuapp.com/", wantErr: false},
		{name: "http with port", baseURL: "http://localhost:8080", wantErr: false},
		{name: "relative", baseURL: "/passphrase", wantErr: true},
		{name: "ftp", baseURL: "ftp://example.com/", wantErr: true},
		{name: "empty", baseURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.Remote.BaseURL = tt.baseURL
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRemoteConfig_Endpoint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://a.example/passphrase", RemoteConfig{BaseURL: "https://a.example/"}.Endpoint("passphrase"))
	assert.Equal(t, "https://a.example/passphrase", RemoteConfig{BaseURL: "https://a.example"}.Endpoint("/passphrase"))
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.0.0.0:8080", ServerConfig{Host: "0.0.0.0", Port: 8080}.Addr())
	assert.Equal(t, "[::1]:80", ServerConfig{Host: "::1", Port: 80}.Addr())
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: time.Second, WriteTimeout: time.Second},
		Remote: RemoteConfig{BaseURL: DefaultBackend, Timeout: time.Second},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}
