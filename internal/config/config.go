package config

import "time"

// Config is the process configuration, assembled from config.yaml and the environment.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Images   ImagesConfig   `mapstructure:"images"`
	Settings SettingsConfig `mapstructure:"settings"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OpenAIConfig holds the upstream model parameters. APIKey seeds the credential
// and takes precedence over a stored one.
type OpenAIConfig struct {
	APIKey                 string        `mapstructure:"api_key"`
	BaseURL                string        `mapstructure:"base_url"`
	Model                  string        `mapstructure:"model"`
	ImageModel             string        `mapstructure:"image_model"`
	ImageSize              string        `mapstructure:"image_size"`
	ImageQuality           string        `mapstructure:"image_quality"`
	ImageGenerationEnabled bool          `mapstructure:"image_generation_enabled"`
	MaxTokens              int           `mapstructure:"max_tokens"`
	Temperature            float32       `mapstructure:"temperature"`
	Timeout                time.Duration `mapstructure:"timeout"`
}

type ImagesConfig struct {
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	// Extractor selects the page metadata extractor: "regex" or "goquery".
	Extractor    string `mapstructure:"extractor"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
	// AllowPrivateHosts lets the fetcher reach loopback and private networks.
	AllowPrivateHosts bool `mapstructure:"allow_private_hosts"`
}

type SettingsConfig struct {
	// Store is one of "file", "redis" or "memory".
	Store    string `mapstructure:"store"`
	FilePath string `mapstructure:"file_path"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}
