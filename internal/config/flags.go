package config

// CLI flag parsing and help text. The positional argument is the input
// directory; all tuning knobs are optional flags with defaults from Default().

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// version is shown by --version; override at build time with
// -ldflags "-X github.com/pixelforge/dither/internal/config.version=...".
var version = "dev"

// ParseFlags parses args (excluding the program name) into cfg. On --help or
// --version it prints and exits. It returns an error for unknown flags or a
// missing directory argument; Validate still has to be called afterwards.
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("dither", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	fs.IntVar(&cfg.MaxSide, "max-side", cfg.MaxSide, "Largest output dimension in pixels")
	fs.IntVar(&cfg.BayerOrder, "order", cfg.BayerOrder, "Bayer matrix order (power of two)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker count (0 = all CPU cores)")
	fs.BoolVar(&cfg.Sharpen, "sharpen", cfg.Sharpen, "Sharpen images before dithering")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored log output")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		return err
	}

	if *showVersion {
		fmt.Fprintln(os.Stdout, "dither v"+version)
		os.Exit(0)
	}

	if fs.NArg() < 1 {
		printUsage(fs)
		return fmt.Errorf("missing required directory argument")
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("unexpected extra arguments: %v", fs.Args()[1:])
	}
	cfg.InputDir = fs.Arg(0)
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "dither - batch Bayer ordered dithering for image directories")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: dither [options] <path-to-images>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Recursively finds images under the directory, downscales each to")
	fmt.Fprintln(os.Stderr, "-max-side, applies ordered dithering, and writes the result to a")
	fmt.Fprintln(os.Stderr, "'dithers' directory next to the source file.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fs.PrintDefaults()
}
