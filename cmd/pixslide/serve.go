package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixslide/pixslide/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeSize   int
	flagServeImage  string
	flagServeCrop   bool
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the puzzle SSH server",
	Long: `Start an SSH server that serves the puzzle to remote clients.

Each connection gets its own shuffled board sized to its terminal.
Solves are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pixslide/host_key

Examples:
  pixslide serve                           # Listen on :23234 with auto-generated key
  pixslide serve --ssh :2222               # Listen on port 2222
  pixslide serve --image photo.png -n 5    # Serve a custom picture
  pixslide serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVarP(&flagServeSize, "size", "n", 0, "Board size n (0 = config default)")
	serveCmd.Flags().StringVar(&flagServeImage, "image", "", "Puzzle image served to all sessions (default: built-in)")
	serveCmd.Flags().BoolVarP(&flagServeCrop, "crop", "c", false, "Crop the image to a square instead of stretching")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	boardSize := cfg.BoardSize
	if cmd.Flags().Changed("size") {
		boardSize = flagServeSize
	}

	crop := cfg.Crop
	if cmd.Flags().Changed("crop") {
		crop = flagServeCrop
	}

	imagePath := cfg.Image
	if cmd.Flags().Changed("image") {
		imagePath = flagServeImage
	}

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      cfg.DB,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		BoardSize:   boardSize,
		ImagePath:   imagePath,
		Crop:        crop,
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pixslide SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
