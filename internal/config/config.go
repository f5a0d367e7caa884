// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. A Config is immutable once validated and is passed (by
// pointer) to the packages that need it.
package config

import (
	"fmt"
	"os"
)

// Defaults for the command surface.
const (
	DefaultMaxSide    = 800 // Largest allowed pixel dimension after resize.
	DefaultBayerOrder = 8   // Dither matrix side length.
)

// Config holds all runtime settings for a batch run.
type Config struct {
	// InputDir is the directory tree to scan for images (positional arg).
	InputDir string

	// MaxSide is the largest allowed output dimension. Images whose longer
	// edge exceeds it are downscaled; smaller images are never upscaled.
	MaxSide int

	// BayerOrder is the dither matrix side length. Must be a power of two
	// and at least 2.
	BayerOrder int

	// Workers is the worker pool size. 0 selects hardware parallelism.
	Workers int

	// Sharpen enables a mild sharpening pass before dithering.
	Sharpen bool

	// Display and logging.
	Verbose bool
	NoColor bool
}

// Default returns a Config with all defaults applied. Used as the base
// before ParseFlags applies CLI overrides.
func Default() Config {
	return Config{
		MaxSide:    DefaultMaxSide,
		BayerOrder: DefaultBayerOrder,
	}
}

// Validate checks the configuration and returns a descriptive error for the
// first violated constraint. It must pass before any file is touched.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("directory does not exist: %s", c.InputDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", c.InputDir)
	}
	if c.MaxSide < 1 {
		return fmt.Errorf("max side must be positive, got %d", c.MaxSide)
	}
	if c.BayerOrder < 2 || c.BayerOrder&(c.BayerOrder-1) != 0 {
		return fmt.Errorf("bayer order must be a power of two >= 2, got %d", c.BayerOrder)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}
