package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kolor/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the persisted best score",
	Long: `Print the best score that new sessions compare against.

Examples:
  kolor best
  kolor best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the best score")
}

func runBest(cmd *cobra.Command, args []string) {
	key := loadGameConfig().BestScoreKey

	store := openStore()
	defer store.Close()

	if flagReset {
		if err := store.Delete(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting best score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score reset.")
		return
	}

	best, ok, err := store.GetInteger(key)
	switch {
	case errors.Is(err, storage.ErrNotInteger):
		fmt.Fprintln(os.Stderr, "Stored best score is corrupt; run 'kolor best --reset'")
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	case !ok:
		fmt.Println("No best score yet.")
	default:
		fmt.Printf("Best score: %d\n", best)
	}
}
