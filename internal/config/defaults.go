package config

import (
	_ "embed"
)

//go:embed defaults/kolor.yaml
var defaultKolorYAML []byte

// DefaultKolorConfig returns the default Kolor configuration.
func DefaultKolorConfig() KolorConfig {
	return KolorConfig{
		Rounds:       20,
		RoundSeconds: 20,
		TickMillis:   100,
		Points:       10,
		BestScoreKey: "bestScore",
	}
}
