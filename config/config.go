package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"date-mathematics/pkg/datemath"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Date mathematics specifics
	Calculator CalculatorConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CalculatorConfig struct {
	// Timezone is the IANA zone dates are interpreted in. "Local" or empty
	// means the host zone.
	Timezone      string
	DefaultFormat string
	MaxAmount     int
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(v.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Calculator
	cfg.Calculator.Timezone = v.GetString("calculator.timezone")
	cfg.Calculator.DefaultFormat = v.GetString("calculator.default_format")
	cfg.Calculator.MaxAmount = v.GetInt("calculator.max_amount")

	// Rate limiting
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if !datemath.IsSupportedFormat(cfg.Calculator.DefaultFormat) {
		return fmt.Errorf("calculator.default_format %q is not one of %s",
			cfg.Calculator.DefaultFormat, strings.Join(datemath.DateFormats, ", "))
	}
	if _, err := datemath.NewParser(cfg.Calculator.Timezone); err != nil {
		return fmt.Errorf("calculator.timezone: %w", err)
	}
	if cfg.Calculator.MaxAmount <= 0 {
		return fmt.Errorf("calculator.max_amount must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

// splitList reads a comma separated value, since env overrides cannot
// carry YAML lists.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("calculator.timezone", "Local")
	v.SetDefault("calculator.default_format", datemath.DefaultDateFormat)
	v.SetDefault("calculator.max_amount", 1_000_000)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
}
