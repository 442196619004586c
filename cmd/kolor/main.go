// kolor is a timed color-guessing game for the terminal.
//
// Usage:
//
//	kolor                    - Play (same as kolor play)
//	kolor play               - Play a session of 20 rounds
//	kolor scores             - Show the best finished sessions
//	kolor best               - Show or reset the persisted best score
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.kolor/kolor.db)
//	--config <path> - Use a custom game config YAML
//	--log <path>    - Set log file path (default: ~/.kolor/kolor.log)
//
// Flags default to KOLOR_SEED, KOLOR_DB, KOLOR_CONFIG and KOLOR_LOG, which
// may also be set in a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kolor/internal/config"
	"github.com/vovakirdan/kolor/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kolor",
	Short: "KOLOR - Guess the color before time runs out",
	Long: `KOLOR shows a color swatch and four candidates. Pick the matching
one before the 20 second timer runs out. A session has 20 rounds and
every correct pick is worth 10 points.

Available commands:
  play     - Play a session (default)
  scores   - View finished sessions
  best     - Show or reset the best score

Examples:
  kolor
  kolor play --seed 42
  kolor scores --interactive
  kolor best --reset`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if env.DBPath == "" {
		env.DBPath = "~/.kolor/kolor.db"
	}

	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", env.LogPath, "Path to log file (empty = no logging)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
}

// openLogger opens the log file for appending. The game owns the terminal,
// so logs never go to stdout. Falls back to discarding on any error.
func openLogger(path string) (*log.Logger, func()) {
	discard := log.New(io.Discard)
	if path == "" {
		return discard, func() {}
	}

	expanded, err := storage.ExpandPath(path)
	if err != nil {
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "kolor",
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }
}

// loadGameConfig loads the game config or exits.
func loadGameConfig() config.KolorConfig {
	cfg, err := config.LoadKolor(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the scores database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}
