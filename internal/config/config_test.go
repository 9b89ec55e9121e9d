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
	path := filepath.Join(t.TempDir(), "vmc.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "127.0.0.1:39539", cfg.Marionette.Addr)
	assert.Equal(t, 16, cfg.Decoder.MaxDepth)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := writeConfig(t, `
[performer]
addr = "192.168.1.20:39540"
rate = 30

[marionette]
addr = "0.0.0.0:39539"

[log]
level = "debug"
no_color = true

[metrics]
addr = ":9100"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.20:39540", cfg.Performer.Addr)
	assert.Equal(t, 30, cfg.Performer.Rate)
	assert.Equal(t, "0.0.0.0:39539", cfg.Marionette.Addr)
	assert.Equal(t, Default().Marionette.MaxDatagramSize, cfg.Marionette.MaxDatagramSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.NoColor)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "vmc", cfg.Metrics.Namespace)
	assert.Equal(t, time.Second/30, cfg.Performer.Interval())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "trace")
	path := writeConfig(t, "[log]\nlevel = \"warn\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[performer\n"},
		{"unknown_key", "[performer]\nport = 1\n"},
		{"bad_addr", "[marionette]\naddr = \"localhost\"\n"},
		{"bad_metrics_addr", "[metrics]\naddr = \"9100\"\n"},
		{"zero_rate", "[performer]\nrate = 0\n"},
		{"tiny_buffer", "[marionette]\nmax_datagram_size = 4\n"},
		{"zero_depth", "[decoder]\nmax_depth = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
