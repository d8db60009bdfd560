// Package config provides YAML-based configuration loading for pixslide.
package config

import "fmt"

// Config contains the user-tunable defaults. Command-line flags override
// whatever is loaded here.
type Config struct {
	// BoardSize is the board dimension n (n x n tiles, minimum 2).
	BoardSize int `yaml:"board_size"`

	// Crop selects crop-to-square instead of stretch-to-square resizing.
	Crop bool `yaml:"crop"`

	// DB is the path to the solves database. A leading ~ expands to $HOME.
	DB string `yaml:"db"`

	// Image is an optional default image path; empty uses the built-in one.
	Image string `yaml:"image"`
}

// Default returns the hardcoded fallback configuration.
func Default() Config {
	return Config{
		BoardSize: 4,
		DB:        "~/.pixslide/solves.db",
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.BoardSize < 2 {
		return fmt.Errorf("config: board_size must be 2 or larger, got %d", c.BoardSize)
	}
	return nil
}
