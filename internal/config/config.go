package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config carries all process-wide settings. It is loaded once in main and
// passed explicitly into constructors; nothing below main reads the
// environment directly.
type Config struct {
	DatabaseURL string
	Port        int
	RedisAddr   string
}

// Load reads configuration from CRATESTATS_* environment variables, with an
// optional cratestats.yaml in the working directory as a fallback.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CRATESTATS")
	v.AutomaticEnv()

	v.SetConfigName("cratestats")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetDefault("port", 8080)
	v.SetDefault("redis_addr", "")

	cfg := Config{
		DatabaseURL: v.GetString("database_url"),
		Port:        v.GetInt("port"),
		RedisAddr:   v.GetString("redis_addr"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("CRATESTATS_DATABASE_URL not set")
	}
	return cfg, nil
}
