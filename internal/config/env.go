package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds settings that may come from the environment or a .env file.
// CLI flags default to these values.
type Env struct {
	DBPath     string `env:"KOLOR_DB"     envDefault:"~/.kolor/kolor.db"`
	ConfigPath string `env:"KOLOR_CONFIG"`
	LogPath    string `env:"KOLOR_LOG"    envDefault:"~/.kolor/kolor.log"`
	Seed       int64  `env:"KOLOR_SEED"`
}

// LoadEnv reads the optional dotenv files (default ".env") into the process
// environment and parses Env from it. Variables already set in the
// environment win over the file.
func LoadEnv(files ...string) (Env, error) {
	var cfg Env

	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: load dotenv: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
