package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"server.address":                  ":8080",
	"logging.level":                   "info",
	"logging.format":                  "console",
	"openai.api_key":                  "",
	"openai.base_url":                 "https://api.openai.com/v1",
	"openai.model":                    "gpt-4",
	"openai.image_model":              "dall-e-3",
	"openai.image_size":               "1024x1024",
	"openai.image_quality":            "standard",
	"openai.image_generation_enabled": true,
	"openai.max_tokens":               1000,
	"openai.temperature":              0.7,
	"openai.timeout":                  60 * time.Second,
	"images.fetch_timeout":            10 * time.Second,
	"images.extractor":                "regex",
	"images.max_body_bytes":           2 << 20,
	"images.allow_private_hosts":      false,
	"settings.store":                  "file",
	"settings.file_path":              "data/settings.json",
	"redis.address":                   "localhost:6379",
	"redis.password":                  "",
	"redis.db":                        0,
	"redis.prefix":                    "fashion-advisor:",
}

// Load reads config.yaml from the usual locations, applies environment
// overrides (OPENAI_API_KEY, SERVER_ADDRESS, ...) and validates the result.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	return load(v)
}

// LoadFile reads the given config file instead of searching for one.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Settings.Store {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("unknown settings store %q", cfg.Settings.Store)
	}
	switch cfg.Images.Extractor {
	case "regex", "goquery":
	default:
		return fmt.Errorf("unknown image extractor %q", cfg.Images.Extractor)
	}
	if cfg.Settings.Store == "file" && cfg.Settings.FilePath == "" {
		return errors.New("settings.file_path is required for the file store")
	}
	if cfg.OpenAI.Timeout <= 0 || cfg.Images.FetchTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	return nil
}
