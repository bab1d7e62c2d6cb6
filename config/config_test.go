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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: staging\n"))
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Empty(t, cfg.HTTPServer.TrustedProxies)
	assert.Equal(t, "yyyy-MM-dd", cfg.Calculator.DefaultFormat)
	assert.Equal(t, 1_000_000, cfg.Calculator.MaxAmount)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMin)
}

func TestLoadFileOverrides(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
http_server:
  port: 9090
  mode: release
  trusted_proxies: "10.0.0.1, 10.0.0.0/8"
calculator:
  timezone: Asia/Ho_Chi_Minh
  default_format: dd/MM/yyyy
rate_limit:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.0/8"}, cfg.HTTPServer.TrustedProxies)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Calculator.Timezone)
	assert.Equal(t, "dd/MM/yyyy", cfg.Calculator.DefaultFormat)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("CALCULATOR_DEFAULT_FORMAT", "MM-dd-yyyy")

	cfg, err := LoadFile(writeConfig(t, "calculator:\n  default_format: yyyy/MM/dd\n"))
	require.NoError(t, err)
	assert.Equal(t, "MM-dd-yyyy", cfg.Calculator.DefaultFormat)
}

func TestLoadFileValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Unknown format", "calculator:\n  default_format: yyyy.MM.dd\n"},
		{"Bad timezone", "calculator:\n  timezone: Mars/Olympus\n"},
		{"Non positive max amount", "calculator:\n  max_amount: 0\n"},
		{"Rate limit without budget", "rate_limit:\n  enabled: true\n  requests_per_min: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
