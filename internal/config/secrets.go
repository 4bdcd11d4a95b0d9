package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Secrets are never stored in the TOML config, only in the environment.
type Secrets struct {
	RedisPassword    string `env:"SPORTAI_REDIS_PASS"`
	PostgresPassword string `env:"SPORTAI_POSTGRES_PASS"`
	GeminiAPIKey     string `env:"SPORTAI_GEMINI_API_KEY"`
	SMTPUsername     string `env:"SPORTAI_SMTP_USERNAME"`
	SMTPPassword     string `env:"SPORTAI_SMTP_PASSWORD"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=sportai-backend"`
}

// LoadSecrets loads the optional dotenv file (variables already set in the
// environment win) and then reads the secrets from the environment.
func LoadSecrets(ctx context.Context, dotEnvPath string) (*Secrets, error) {
	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load dotenv file %s: %w", dotEnvPath, err)
		}
	}

	return processSecrets(ctx, nil)
}

func processSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var secrets Secrets
	cfg := &envconfig.Config{Target: &secrets}
	if lookuper != nil {
		cfg.Lookuper = lookuper
	}
	if err := envconfig.ProcessWith(ctx, cfg); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &secrets, nil
}
