// Package config provides YAML-based game configuration loading and
// environment overrides for kolor.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid kolor config")

// KolorConfig contains all configuration for a game session.
type KolorConfig struct {
	Rounds       int     `yaml:"rounds"`         // Rounds per session
	RoundSeconds float64 `yaml:"round_seconds"`  // Time budget of each round
	TickMillis   int     `yaml:"tick_ms"`        // Countdown granularity
	Points       int     `yaml:"points"`         // Score added per correct guess
	BestScoreKey string  `yaml:"best_score_key"` // Store key of the persisted best score
}

// RoundTime returns the per-round budget as a duration.
func (c KolorConfig) RoundTime() time.Duration {
	return time.Duration(math.Round(c.RoundSeconds * float64(time.Second)))
}

// TickInterval returns the countdown tick period.
func (c KolorConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// TicksPerRound returns how many ticks make up one round.
func (c KolorConfig) TicksPerRound() int {
	if c.TickMillis <= 0 {
		return 0
	}
	return int(c.RoundTime() / c.TickInterval())
}

// Validate checks that the config describes a playable session.
func (c KolorConfig) Validate() error {
	switch {
	case c.Rounds <= 0:
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	case c.RoundSeconds <= 0:
		return fmt.Errorf("%w: round_seconds must be positive, got %g", ErrInvalidConfig, c.RoundSeconds)
	case c.TickMillis <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.TickMillis)
	case c.Points <= 0:
		return fmt.Errorf("%w: points must be positive, got %d", ErrInvalidConfig, c.Points)
	case c.BestScoreKey == "":
		return fmt.Errorf("%w: best_score_key is empty", ErrInvalidConfig)
	}
	if c.RoundTime()%c.TickInterval() != 0 {
		return fmt.Errorf("%w: round_seconds %g is not a whole number of %dms ticks",
			ErrInvalidConfig, c.RoundSeconds, c.TickMillis)
	}
	return nil
}
