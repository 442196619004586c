package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kolor/internal/platform/tui"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished sessions",
	Long: `Display the top finished sessions, best first.

Examples:
  kolor scores
  kolor scores --limit 20
  kolor scores --interactive
  kolor scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all sessions in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the session history (keeps the best score)")
}

func runScores(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session history cleared.")
		return
	}

	if flagInteractive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: --interactive needs a terminal")
			os.Exit(1)
		}
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - KOLOR")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'kolor play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Hits", "Misses", "Timeouts", "Date")
	fmt.Printf("  %-4s  %-6s  %-4s  %-6s  %-8s  %s\n", "----", "-----", "----", "------", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-4d  %-6d  %-8d  %s\n",
			i+1, entry.Score, entry.Correct, entry.Wrong, entry.Timeouts, dateStr)
	}

	// Show aggregates
	if stats, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("Sessions: %d   Best: %d   Average: %.1f\n", stats.Sessions, stats.HighScore, stats.AvgScore)
	}
}
