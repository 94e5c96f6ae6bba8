package sampledata

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned for a Config that cannot produce a table.
var ErrInvalidConfig = errors.New("invalid sample data config")

// Default generator settings.
const (
	DefaultEvents           = 12
	DefaultTeams            = 10
	DefaultAthletesPerTeam  = 4
	DefaultEntrantsPerEvent = 8
	DefaultDNFRate          = 0.05
	DefaultSeed             = 1
)

// Config holds configuration for the results generator.
type Config struct {
	Events           int     `validate:"min=1"`      // number of events to stage
	Teams            int     `validate:"min=1"`      // number of teams
	AthletesPerTeam  int     `validate:"min=1"`      // roster size of every team
	EntrantsPerEvent int     `validate:"min=1"`      // athletes drawn into each event
	DNFRate          float64 `validate:"gte=0,lte=1"` // share of entrants that do not finish
	Seed             uint64  `validate:"-"`          // same seed, same table
}

// DefaultConfig returns a small, readable configuration.
func DefaultConfig() Config {
	return Config{
		Events:           DefaultEvents,
		Teams:            DefaultTeams,
		AthletesPerTeam:  DefaultAthletesPerTeam,
		EntrantsPerEvent: DefaultEntrantsPerEvent,
		DNFRate:          DefaultDNFRate,
		Seed:             DefaultSeed,
	}
}

var validate = validator.New()

// Validate checks field ranges and that every event can be filled.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if roster := c.Teams * c.AthletesPerTeam; c.EntrantsPerEvent > roster {
		return fmt.Errorf("%w: %d entrants per event but only %d athletes",
			ErrInvalidConfig, c.EntrantsPerEvent, roster)
	}
	return nil
}
