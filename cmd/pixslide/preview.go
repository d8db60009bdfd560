package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixslide/pixslide/internal/pixel"
	"github.com/pixslide/pixslide/internal/platform/tui"
	"github.com/pixslide/pixslide/internal/puzzle"
	"github.com/pixslide/pixslide/internal/raster"
)

var (
	flagPreviewSize  int
	flagPreviewCrop  bool
	flagPreviewWidth int
)

var previewCmd = &cobra.Command{
	Use:   "preview [image]",
	Short: "Print the assembled picture and exit",
	Long: `Render the picture with the tiles in solved order and print it to
stdout. Useful for checking how an image survives the half-block
rendering before playing it. The blank corner stays empty, exactly as
it would look the moment the puzzle is solved.

Examples:
  pixslide preview
  pixslide preview photo.png --crop
  pixslide preview photo.png --width 60`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().IntVarP(&flagPreviewSize, "size", "n", 0, "Board size n (0 = config default)")
	previewCmd.Flags().BoolVarP(&flagPreviewCrop, "crop", "c", false, "Crop the image to a square instead of stretching")
	previewCmd.Flags().IntVar(&flagPreviewWidth, "width", 0, "Output width in characters (0 = terminal width)")
}

func runPreview(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	boardSize := cfg.BoardSize
	if cmd.Flags().Changed("size") {
		boardSize = flagPreviewSize
	}
	if boardSize < 2 {
		fmt.Fprintf(os.Stderr, "Error: board size must be at least 2, got %d\n", boardSize)
		os.Exit(1)
	}

	crop := cfg.Crop
	if cmd.Flags().Changed("crop") {
		crop = flagPreviewCrop
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

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if flagPreviewWidth > 0 {
		width = flagPreviewWidth
		height = flagPreviewWidth // width-limited, not cut off by rows
	}

	imageSize, err := raster.FitImageSize(width, height, boardSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	buf, err := pixel.FromImage(src, imageSize, crop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing image: %v\n", err)
		os.Exit(1)
	}

	board, err := puzzle.Identity(boardSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	renderer, err := raster.New(buf, board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fb := tui.NewFrameBuffer(renderer.ScreenCols(), renderer.ScreenRows())
	renderer.RenderBoard(fb)
	fmt.Println(fb.String())
}
