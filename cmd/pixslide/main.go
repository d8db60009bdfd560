// pixslide is a sliding-tile picture puzzle played in the terminal.
//
// Usage:
//
//	pixslide play [image]     - Play the puzzle (optionally with your own image)
//	pixslide preview [image]  - Print the assembled picture without playing
//	pixslide scores           - Browse best solves
//	pixslide serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config file (default: ~/.pixslide/config.yaml)
//	--db <path>      - Solves database path (default: ~/.pixslide/solves.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixslide/pixslide/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixslide",
	Short: "pixslide - slide picture tiles in your terminal",
	Long: `pixslide cuts a picture into tiles, shuffles them, and lets you slide
them back into place right in the terminal. The image is drawn with
half-block characters, two pixels per character cell.

Available commands:
  play     - Play the puzzle
  preview  - Print the assembled picture and exit
  scores   - Browse best solves
  serve    - Start SSH server for remote play

Examples:
  pixslide play
  pixslide play photo.png -n 5 --crop
  pixslide preview photo.jpg
  pixslide scores -n 4
  pixslide serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solves database (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration: file (or built-in
// defaults), then the global --db override.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.DB = flagDBPath
	}
	return cfg
}
