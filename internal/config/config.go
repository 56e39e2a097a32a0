package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported output formats for rendered results.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName        string        `mapstructure:"app_name"`
	Env            string        `mapstructure:"app_env"`
	LogLevel       string        `mapstructure:"log_level"`
	BaseURL        string        `mapstructure:"beer_api_base_url"`
	TimeoutSeconds int64         `mapstructure:"beer_api_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	OutputFormat   string        `mapstructure:"output_format"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith resolves configuration on top of v, so callers can bind flags first.
func LoadWith(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v.SetDefault("app_name", "beerctl")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("beer_api_base_url", "http://localhost:8080")
	v.SetDefault("beer_api_timeout_seconds", 10)
	v.SetDefault("output_format", OutputJSON)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid beer_api_base_url %q (must be an absolute http(s) URL)", cfg.BaseURL)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid beer_api_timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	switch cfg.OutputFormat {
	case OutputJSON, OutputYAML, OutputTable:
	default:
		return nil, fmt.Errorf("invalid output_format %q (want json, yaml or table)", cfg.OutputFormat)
	}

	return &cfg, nil
}
