package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Screens ScreenConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

// APIConfig points at the remote collection API.
type APIConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	TimeoutSeconds int     `mapstructure:"timeoutSeconds"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateBurst      int     `mapstructure:"rate_burst"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret"`
	Token  string `mapstructure:"token"`
}

type ScreenConfig struct {
	PageSize        int `mapstructure:"page_size"`
	PickerTTLSecond int `mapstructure:"picker_ttl_seconds"`
}

// envOverrides are the deployment-time knobs that may not live in the
// config file, read via envconfig with the CLINIC prefix.
type envOverrides struct {
	APIBaseURL    string `envconfig:"API_BASE_URL"`
	SessionToken  string `envconfig:"SESSION_TOKEN"`
	SessionSecret string `envconfig:"SESSION_SECRET"`
}

func (c *APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *ScreenConfig) PickerTTL() time.Duration {
	if c.PickerTTLSecond <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.PickerTTLSecond) * time.Second
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("clinic", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.APIBaseURL != "" {
		config.API.BaseURL = env.APIBaseURL
	}
	if env.SessionToken != "" {
		config.Session.Token = env.SessionToken
	}
	if env.SessionSecret != "" {
		config.Session.Secret = env.SessionSecret
	}

	if config.Screens.PageSize <= 0 {
		config.Screens.PageSize = 10
	}

	return &config, nil
}
