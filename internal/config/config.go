package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultCampaignsURL is used when CAMPAIGNS_API_URL is not set.
const DefaultCampaignsURL = "http://localhost:9000/campaigns"

type Config struct {
	CampaignsURL string        `validate:"required,url"`
	Port         string        `validate:"required,numeric"`
	HTTPTimeout  time.Duration `validate:"gt=0"`
	FetchRetries int           `validate:"gte=0,lte=5"`
	LogLevel     slog.Level
}

// FromEnv reads the process environment, after loading a .env file when one exists.
func FromEnv() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("CAMPAIGNS_API_URL", DefaultCampaignsURL)
	v.SetDefault("PORT", "8080")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	v.SetDefault("FETCH_RETRIES", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	to := time.Duration(v.GetFloat64("HTTP_TIMEOUT_SECONDS") * float64(time.Second))
	if to <= 0 {
		to = 15 * time.Second
	}
	lvl := slog.LevelInfo
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v.GetString("LOG_LEVEL")))); err != nil {
		lvl = slog.LevelInfo
	}
	return Config{
		CampaignsURL: strings.TrimSpace(v.GetString("CAMPAIGNS_API_URL")),
		Port:         v.GetString("PORT"),
		HTTPTimeout:  to,
		FetchRetries: v.GetInt("FETCH_RETRIES"),
		LogLevel:     lvl,
	}
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
