package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"RESEND_API_KEY", "PORT", "ENVIRONMENT", "NOTIFY_TO", "BRAND_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "admin@ckscontracting.ca", cfg.NotifyTo)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.resend.com", cfg.ResendBaseURL)
	assert.Equal(t, "CKS", cfg.Brand.Name)
	assert.False(t, cfg.DeliveryConfigured())
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_live_123456789")
	t.Setenv("PORT", "9090")
	t.Setenv("BRAND_NAME", "Acme")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "re_live_123456789", cfg.ResendAPIKey)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "Acme", cfg.Brand.Name)
	assert.True(t, cfg.DeliveryConfigured())
}

func TestLoadConfigFile(t *testing.T) {
	for _, key := range []string{"RESEND_API_KEY", "ENVIRONMENT", "NOTIFY_TO", "BRAND_NAME", "BRAND_WEBSITE"} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "notify_to: sales@example.com\nenvironment: production\nbrand:\n  name: Example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sales@example.com", cfg.NotifyTo)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "Example", cfg.Brand.Name)
	assert.Equal(t, "https://ckscontracting.ca", cfg.Brand.Website)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDeliveryConfigured(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"empty", "", false},
		{"placeholder", PlaceholderAPIKey, false},
		{"real key", "re_abc123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ResendAPIKey: tt.key}
			assert.Equal(t, tt.want, cfg.DeliveryConfigured())
			assert.Equal(t, tt.key != "", cfg.HasAPIKey())
		})
	}
}

func TestAPIKeyPreview(t *testing.T) {
	assert.Equal(t, "NOT SET", (&Config{}).APIKeyPreview())
	assert.Equal(t, "re_abcd...", (&Config{ResendAPIKey: "re_abcdefghijkl"}).APIKeyPreview())
	assert.Equal(t, "re_a...", (&Config{ResendAPIKey: "re_a"}).APIKeyPreview())
}
