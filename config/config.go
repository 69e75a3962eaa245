package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL       string `validate:"required,url"`
		TimeoutSecs   int    `validate:"min=1,max=300"`
		ClientProfile string `validate:"required"`
	}
	Feed struct {
		PopularLimit int `validate:"min=1,max=100"`
		RecentLimit  int `validate:"min=1,max=100"`
	}
	Share struct {
		Origin string `validate:"required,url"`
	}
	Log Log
}

type Log struct {
	Level      string `validate:"oneof=debug info warn error"`
	File       string
	MaxSize    int `validate:"min=1"`
	MaxAge     int `validate:"min=0"`
	MaxBackups int `validate:"min=0"`
}

func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// IDEAS_API_BASE_URL overrides api.base_url
	v.SetEnvPrefix("ideas")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - defaults and env vars are enough)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// API config
	cfg.API.BaseURL = v.GetString("api.base_url")
	cfg.API.TimeoutSecs = v.GetInt("api.timeout_secs")
	cfg.API.ClientProfile = v.GetString("api.client_profile")

	// Feed config
	cfg.Feed.PopularLimit = v.GetInt("feed.popular_limit")
	cfg.Feed.RecentLimit = v.GetInt("feed.recent_limit")

	// Share config
	cfg.Share.Origin = v.GetString("share.origin")

	// Log config
	cfg.Log.Level = strings.ToLower(v.GetString("log.level"))
	cfg.Log.File = v.GetString("log.file")
	cfg.Log.MaxSize = v.GetInt("log.max_size")
	cfg.Log.MaxAge = v.GetInt("log.max_age")
	cfg.Log.MaxBackups = v.GetInt("log.max_backups")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout_secs", 30)
	v.SetDefault("api.client_profile", "chrome_120")

	// Feed defaults
	v.SetDefault("feed.popular_limit", 10)
	v.SetDefault("feed.recent_limit", 10)

	v.SetDefault("share.origin", "http://localhost:3000")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.max_backups", 3)
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
