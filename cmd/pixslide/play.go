package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixslide/pixslide/internal/pixel"
	"github.com/pixslide/pixslide/internal/platform/tui"
	"github.com/pixslide/pixslide/internal/storage"
)

var (
	flagBoardSize int
	flagCrop      bool
	flagSeed      int64
)

var playCmd = &cobra.Command{
	Use:   "play [image]",
	Short: "Play the puzzle",
	Long: `Shuffle the picture into n x n sliding tiles and play until solved.

Without an image argument the built-in picture is used. Supported
formats: PNG, JPEG, GIF, BMP, WebP.

Controls:
  Arrows/hjkl/wasd - Slide a tile into the gap
  R                - Reshuffle
  Q/Esc/Ctrl+C     - Quit

Examples:
  pixslide play
  pixslide play photo.png
  pixslide play photo.png -n 5 --crop
  pixslide play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&flagBoardSize, "size", "n", 0, "Board size n (n x n tiles, minimum 2; 0 = config default)")
	playCmd.Flags().BoolVarP(&flagCrop, "crop", "c", false, "Crop the image to a square instead of stretching")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Shuffle seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	boardSize := cfg.BoardSize
	if cmd.Flags().Changed("size") {
		boardSize = flagBoardSize
	}
	if boardSize < 2 {
		fmt.Fprintf(os.Stderr, "Error: board size must be at least 2, got %d\n", boardSize)
		os.Exit(1)
	}

	crop := cfg.Crop
	if cmd.Flags().Changed("crop") {
		crop = flagCrop
	}

	imagePath := cfg.Image
	if len(args) > 0 {
		imagePath = args[0]
	}

	var src image.Image
	if imagePath == "" {
		src = pixel.Default()
	} else {
		loaded, err := pixel.LoadFile(imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
			os.Exit(1)
		}
		src = loaded
	}

	// Terminal size decides how large the picture can be drawn.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open solve storage
	store, err := storage.Open(cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Source:    src,
		BoardSize: boardSize,
		Crop:      crop,
		Store:     store,
		Width:     width,
		Height:    height,
		Seed:      flagSeed,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
