package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// PlaceholderAPIKey is the sample key shipped in .env.example; it never enables delivery
const PlaceholderAPIKey = "re_YOUR_API_KEY_HERE"

// BrandConfig holds the values printed in email headers and footers
type BrandConfig struct {
	Name     string `mapstructure:"name"`
	Tagline  string `mapstructure:"tagline"`
	Website  string `mapstructure:"website"`
	Location string `mapstructure:"location"`
}

// Config holds all application configuration values
type Config struct {
	ResendAPIKey  string      `mapstructure:"resend_api_key"`
	ResendBaseURL string      `mapstructure:"resend_base_url"`
	NotifyTo      string      `mapstructure:"notify_to"`
	NotifyFrom    string      `mapstructure:"notify_from"`
	AckFrom       string      `mapstructure:"ack_from"`
	Environment   string      `mapstructure:"environment"`
	Port          string      `mapstructure:"port"`
	LogLevel      string      `mapstructure:"log_level"`
	LogFormat     string      `mapstructure:"log_format"`
	Brand         BrandConfig `mapstructure:"brand"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("resend_api_key", "")
	v.SetDefault("resend_base_url", "https://api.resend.com")
	v.SetDefault("notify_to", "admin@ckscontracting.ca")
	v.SetDefault("notify_from", "CKS Website <onboarding@resend.dev>")
	v.SetDefault("ack_from", "CKS <onboarding@resend.dev>")
	v.SetDefault("environment", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("brand.name", "CKS")
	v.SetDefault("brand.tagline", "Contract • Know • Succeed")
	v.SetDefault("brand.website", "https://ckscontracting.ca")
	v.SetDefault("brand.location", "Edmonton, Alberta, Canada")
}

// LoadConfig reads configuration from defaults, an optional YAML file and
// the environment, in increasing order of precedence.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.NotifyTo == "" {
		return nil, fmt.Errorf("notify_to is required")
	}

	return &cfg, nil
}

// HasAPIKey reports whether any delivery credential is present
func (c *Config) HasAPIKey() bool {
	return c.ResendAPIKey != ""
}

// DeliveryConfigured reports whether outbound email should be attempted.
// The placeholder key counts as unconfigured.
func (c *Config) DeliveryConfigured() bool {
	return c.HasAPIKey() && c.ResendAPIKey != PlaceholderAPIKey
}

// APIKeyPreview returns the first seven characters of the key, or "NOT SET"
func (c *Config) APIKeyPreview() string {
	if !c.HasAPIKey() {
		return "NOT SET"
	}
	key := c.ResendAPIKey
	if len(key) > 7 {
		key = key[:7]
	}
	return key + "..."
}
