// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file, env and explicit overrides.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"runtime"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// Source is a file path or http(s) URL holding the results table.
	Source string `koanf:"source" validate:"required"`

	// FetchTimeout bounds loading the source.
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"gt=0"`

	// Views lists the group-key columns to build standings for, e.g. Team.
	Views []string `koanf:"views" validate:"min=1,dive,required"`

	// Sort selects the ordering policy: points, podiums or medals.
	Sort string `koanf:"sort" validate:"oneof=points podiums medals"`

	// Search filters standings by a case-insensitive name substring.
	Search string `koanf:"search"`

	// PodiumSize is how many leading entries form the podium.
	PodiumSize int `koanf:"podium_size" validate:"min=1,max=10"`

	// Format selects the report encoding: table or json.
	Format string `koanf:"format" validate:"oneof=table json"`

	// Workers bounds how many views are computed at once.
	Workers int `koanf:"workers" validate:"min=1"`

	// MetricsFile, when set, receives a Prometheus text exposition on exit.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "text",
		Source:       "./results.csv",
		FetchTimeout: 10 * time.Second,
		Views:        []string{"Team"},
		Sort:         "points",
		PodiumSize:   3,
		Format:       "table",
		Workers:      runtime.NumCPU(),
	}
}
