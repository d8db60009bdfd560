package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixslide/pixslide/internal/platform/tui"
	"github.com/pixslide/pixslide/internal/storage"
)

var (
	flagScoresSize  int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse best solves",
	Long: `Show the best recorded solves, fewest moves first.

By default an interactive table opens; Tab cycles through the board
sizes you have played. With --plain the top solves are printed to
stdout instead.

Examples:
  pixslide scores
  pixslide scores -n 4
  pixslide scores --plain`,
	Run: runScoresCmd,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresSize, "size", "n", 0, "Board size to show (0 = config default)")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runScoresCmd(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	boardSize := cfg.BoardSize
	if cmd.Flags().Changed("size") {
		boardSize = flagScoresSize
	}
	if boardSize < 2 {
		fmt.Fprintf(os.Stderr, "Error: board size must be at least 2, got %d\n", boardSize)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store, boardSize)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, boardSize, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, boardSize int) {
	solves, err := store.BestSolves(boardSize, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best solves - %dx%d board\n", boardSize, boardSize)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pixslide play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range solves {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		secs := int(entry.Duration.Seconds())
		timeStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Moves, timeStr, dateStr)
	}

	if best, err := store.BestMoves(boardSize); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d moves\n", best)
	}
}
