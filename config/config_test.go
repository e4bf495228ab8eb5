package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nounder/fsroute/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load([]string{filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.True(t, cfg.Server.RequestID)
	assert.Equal(t, "./routes", cfg.Routes.Dir)
	assert.False(t, cfg.CORS.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: 9100
routes:
  dir: ./app/routes
log:
  level: debug
cors:
  enabled: true
  allowed_origins:
    - https://example.com
`), 0o644))

	cfg, err := config.Load([]string{file}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "./app/routes", cfg.Routes.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_FilesMergeLeftToRight(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	override := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(base, []byte("server:\n  port: 9100\nlog:\n  level: warn\n"), 0o644))
	require.NoError(t, os.WriteFile(override, []byte("server:\n  port: 9200\n"), 0o644))

	cfg, err := config.Load([]string{base, override}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FSROUTE_SERVER_PORT", "9300")
	t.Setenv("FSROUTE_LOG_LEVEL", "error")

	cfg, err := config.Load([]string{filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9300, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tt := []struct {
		Name string
		YAML string
	}{
		{Name: "port out of range", YAML: "server:\n  port: 70000\n"},
		{Name: "bad log level", YAML: "log:\n  level: loud\n"},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(file, []byte(tc.YAML), 0o644))

			_, err := config.Load([]string{file}, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate config")
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	cfg := &config.Config{}
	ctx := config.WithContext(context.Background(), cfg)

	got, err := config.FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, cfg, got)

	_, err = config.FromContext(context.Background())
	assert.Error(t, err)
}
