package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kolor/internal/config"
	"github.com/vovakirdan/kolor/internal/core"
	"github.com/vovakirdan/kolor/internal/games/kolor"
	"github.com/vovakirdan/kolor/internal/platform/tui"
	"github.com/vovakirdan/kolor/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a KOLOR session.

Controls:
  1-4          - Pick an option
  Left/Right   - Move the cursor
  Enter/Space  - Pick the option under the cursor
  Mouse click  - Pick an option
  R            - Play again (after game over)
  ?            - Show all keys
  Ctrl+S       - Save a screenshot to ~/.kolor/screenshots
  Q/Ctrl+C     - Quit

Examples:
  kolor play
  kolor play --seed 42
  kolor play --config ./my-kolor.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: kolor needs an interactive terminal")
		os.Exit(1)
	}

	gameCfg := loadGameConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := openLogger(flagLogPath)

	opts := tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height - 1, // Help footer
			Seed:    flagSeed,
		},
		Logger: logger,
	}
	if dir, err := config.DataDir(); err == nil {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "db", flagDBPath, "err", err)
		// Continue with an in-memory best score - game still works
		opts.Best = kolor.NewMemoryStore()
	} else {
		opts.Best = store
		opts.History = store
	}

	// Run the game
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
