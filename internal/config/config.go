package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	OpenAIKey   string `env:"OPENAI_API_KEY,required,notEmpty"`
	OpenAIURL   string `env:"OPENAI_API_URL" envDefault:"https://api.openai.com/v1"`
	JWTSecret   string `env:"JWT_SECRET,required,notEmpty"`

	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Interview behavior.
	// QuestionSource selects the completion generator: "static" consumes the
	// built-in per-role question lists, "model" asks the chat-completion API.
	QuestionSource string `env:"QUESTION_SOURCE" envDefault:"model"`
	// QuestionTarget is how many questions the model-driven interview asks
	// before summarizing. The static source ignores it and asks its whole list.
	QuestionTarget int `env:"QUESTION_TARGET" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.QuestionSource != "static" && cfg.QuestionSource != "model" {
		return nil, fmt.Errorf("invalid QUESTION_SOURCE %q", cfg.QuestionSource)
	}
	return cfg, nil
}
