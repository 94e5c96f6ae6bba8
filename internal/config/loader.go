package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable conventions.
const (
	envPrefix     = "MEDALTABLE_"
	envConfigFile = "MEDALTABLE_CONFIG"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// LoadOption customizes a single Load call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	file      string
	overrides map[string]any
}

// WithFile loads the given YAML file instead of the one named by
// MEDALTABLE_CONFIG.
func WithFile(path string) LoadOption {
	return func(o *loadOptions) {
		if path != "" {
			o.file = path
		}
	}
}

// WithOverrides applies values on top of every other layer. Keys use the
// koanf tag names, e.g. "podium_size".
func WithOverrides(values map[string]any) LoadOption {
	return func(o *loadOptions) {
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// Load builds a Config by layering defaults, optional file, env vars and
// overrides. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if WithFile or MEDALTABLE_CONFIG is set
//  3. env (prefix MEDALTABLE_)
//  4. overrides (WithOverrides), typically command-line flags
func Load(_ context.Context, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		file:      os.Getenv(envConfigFile),
		overrides: make(map[string]any),
	}
	for _, opt := range opts {
		opt(&o)
	}

	base := New()
	k := koanf.New(".")

	if o.file != "" {
		if err := k.Load(file.Provider(o.file), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: file %s: %w", ErrLoadConfig, o.file, err)
		}
	}

	// Environment variables: MEDALTABLE_SOURCE, MEDALTABLE_PODIUM_SIZE, ...
	// map to flat keys like podium_size, matching the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	for key, val := range o.overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("%w: override %s: %w", ErrLoadConfig, key, err)
		}
	}

	cfg := *base
	// Decoding a list into a pre-filled slice keeps stale tail elements.
	if k.Exists("views") {
		cfg.Views = nil
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	cfg.normalize()

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// normalize splits and trims view names so "Team, Athlete" works from env and flags,
// and folds sort aliases onto their canonical name.
func (c *Config) normalize() {
	var views []string
	for _, item := range c.Views {
		for _, v := range strings.Split(item, ",") {
			if v = strings.TrimSpace(v); v != "" {
				views = append(views, v)
			}
		}
	}
	c.Views = views
	c.Sort = strings.ToLower(strings.TrimSpace(c.Sort))
	if c.Sort == "medalsfirst" || c.Sort == "medals_first" {
		c.Sort = "medals"
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}
