package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SCOUTY_CONFIG is set
//  3. env (prefix SCOUTY_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future remote providers

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SCOUTY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SCOUTY_LOG_LEVEL, SCOUTY_WORKER_COUNT, ...
	// Map env keys like SCOUTY_WORKER_COUNT -> worker_count (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SCOUTY_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "scouty_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configs the engine cannot run with.
func (c *Config) validate() error {
	if c.WorkerCount <= 0 {
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	}
	if c.DefaultWeeks <= 0 {
		return fmt.Errorf("%w: default_weeks must be positive", ErrInvalidConfig)
	}
	if c.NearSkillupThreshold <= 0 || c.NearSkillupThreshold >= 1 {
		return fmt.Errorf("%w: near_skillup_threshold must be in (0,1)", ErrInvalidConfig)
	}
	if len(c.AgeBrackets) == 0 {
		return fmt.Errorf("%w: age_brackets must not be empty", ErrInvalidConfig)
	}
	for i := 1; i < len(c.AgeBrackets); i++ {
		if c.AgeBrackets[i].MaxAge <= c.AgeBrackets[i-1].MaxAge {
			return fmt.Errorf("%w: age_brackets must ascend by max_age", ErrInvalidConfig)
		}
	}
	for skill, rate := range c.BaseRates {
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("%w: base rate for %s must be in [0,1)", ErrInvalidConfig, skill)
		}
	}
	for pos, row := range c.PositionAffinity {
		for training, factor := range row {
			if factor < 0 || factor > 1 {
				return fmt.Errorf("%w: affinity %s/%s must be in [0,1]", ErrInvalidConfig, pos, training)
			}
		}
	}
	for pos, profile := range c.RoleProfiles {
		for skill, weight := range profile {
			if weight < 0 || weight > 1 {
				return fmt.Errorf("%w: role profile weight %s/%s must be in [0,1]", ErrInvalidConfig, pos, skill)
			}
		}
	}
	return nil
}
