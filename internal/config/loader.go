package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PORTFOLIO_CONFIG is set
//  3. env (prefix PORTFOLIO_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PORTFOLIO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, Wrap("config.load", ErrLoadConfig, err)
		}
	}

	// Environment variables: PORTFOLIO_ADDR, PORTFOLIO_API_KEY, ...
	// Map env keys like PORTFOLIO_API_KEY -> api_key (flat keys).
	envProvider := env.Provider("PORTFOLIO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "portfolio_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, Wrap("config.load", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, Wrap("config.load", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return NewKind("config.validate", ErrInvalidConfig, "addr must not be empty")
	case c.RateLimitPerMinute < 1:
		return NewKind("config.validate", ErrInvalidConfig, "rate_limit_per_minute must be positive")
	case c.ContactTimeoutSeconds < 1 || c.MCPTimeoutSeconds < 1:
		return NewKind("config.validate", ErrInvalidConfig, "webhook timeouts must be positive")
	case c.MaxWorkLimit < 1:
		return NewKind("config.validate", ErrInvalidConfig, "max_work_limit must be positive")
	}
	return nil
}
