package main

import (
	"context"
	"os"

	"github.com/pixelforge/dither/internal/config"
	"github.com/pixelforge/dither/internal/logging"
	"github.com/pixelforge/dither/internal/pipeline"
)

func main() {
	cfg := config.Default()
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log := logging.New(cfg.Verbose, cfg.NoColor)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Info("Starting image processing in directory: %s", cfg.InputDir)
	log.Debug("Config: max side %d, bayer order %d, workers %d, sharpen %t",
		cfg.MaxSide, cfg.BayerOrder, cfg.Workers, cfg.Sharpen)

	if _, err := pipeline.Run(context.Background(), &cfg, log); err != nil {
		log.Error("Run failed: %v", err)
		os.Exit(1)
	}
}
