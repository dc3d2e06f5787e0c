package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  base_path: /meditations/

upstream:
  url: https://origin.example.com
  timeout: 10s

cache:
  version: meditations-v3
  resources:
    - /
    - /index.html
    - /manifest.json
    - /data/meditations.json

notifications:
  title: Daily Stoic
  ack_timeout: 2s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "/meditations/", cfg.Server.BasePath)
	assert.Equal(t, "https://origin.example.com", cfg.Upstream.URL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "meditations-v3", cfg.Cache.Version)
	assert.Len(t, cfg.Cache.Resources, 4)
	assert.Equal(t, "Daily Stoic", cfg.Notifications.Title)
	assert.Equal(t, 2*time.Second, cfg.Notifications.AckTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
upstream:
  url: https://origin.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "/", cfg.Server.BasePath)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "meditations-v1", cfg.Cache.Version)
	assert.Equal(t, []string{"/", "/index.html", "/manifest.json"}, cfg.Cache.Resources)
	assert.Equal(t, "file:meditations.db?cache=shared&mode=rwc", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "Meditation of the Day", cfg.Notifications.Title)
	assert.Equal(t, "/icons/icon-192.png", cfg.Notifications.Icon)
	assert.Equal(t, "/icons/icon-72.png", cfg.Notifications.Badge)
	assert.Equal(t, "/data/meditations.json", cfg.Notifications.ContentPath)
	assert.Equal(t, 5*time.Second, cfg.Notifications.AckTimeout)
	assert.Equal(t, "1024x1024", cfg.ImageGen.Size)
	assert.Empty(t, cfg.ImageGen.Model, "image generation off by default")
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_UPSTREAM_URL", "https://expanded.example.com")
	t.Setenv("TEST_API_KEY", "secret-key")

	path := writeConfig(t, `
upstream:
  url: ${TEST_UPSTREAM_URL}

imagegen:
  api_key: ${TEST_API_KEY}
  model: dall-e-3
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://expanded.example.com", cfg.Upstream.URL)
	assert.Equal(t, "secret-key", cfg.ImageGen.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "{{{ not yaml")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_Validation(t *testing.T) {
	tbl := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing upstream url",
			content: "server:\n  listen: ':8080'\n",
			want:    "upstream.url is required",
		},
		{
			name:    "upstream timeout too short",
			content: "upstream:\n  url: https://x.example.com\n  timeout: 100ms\n",
			want:    "upstream timeout must be at least 1 second",
		},
		{
			name:    "server timeout too short",
			content: "server:\n  timeout: 500ms\nupstream:\n  url: https://x.example.com\n",
			want:    "server timeout must be at least 1 second",
		},
		{
			name:    "ack timeout too short",
			content: "upstream:\n  url: https://x.example.com\nnotifications:\n  ack_timeout: 50ms\n",
			want:    "notifications.ack_timeout must be at least 100ms",
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
