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
	path := filepath.Join(t.TempDir(), "oracleview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "rooch", cfg.Binary)
	assert.Equal(t, DefaultRequestType, cfg.RequestType)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 15*time.Second, cfg.WatchInterval)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "binary: mynode\ntimeout: 5s\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mynode", cfg.Binary)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	// Fields the file does not name keep their defaults.
	assert.Equal(t, DefaultRequestType, cfg.RequestType)
	assert.Equal(t, 15*time.Second, cfg.WatchInterval)
}

func TestLoadEnvExpansion(t *testing.T) {
	t.Setenv("ORACLEVIEW_BIN", "envnode")
	path := writeConfig(t, "binary: ${ORACLEVIEW_BIN}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "envnode", cfg.Binary)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "binary: [unclosed\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty binary", func(c *Config) { c.Binary = "" }, "binary is required"},
		{"empty request type", func(c *Config) { c.RequestType = "" }, "request_type is required"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout must be > 0"},
		{"negative watch interval", func(c *Config) { c.WatchInterval = -time.Second }, "watch_interval must be > 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
