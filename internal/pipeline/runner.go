package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/cpu"

	"github.com/pixelforge/dither/internal/bayer"
	"github.com/pixelforge/dither/internal/config"
	"github.com/pixelforge/dither/internal/dither"
	"github.com/pixelforge/dither/internal/logging"
)

// Run is the top-level batch entry point. It discovers image files under
// cfg.InputDir, builds the shared Bayer matrix, processes every file on a
// worker pool, and returns aggregate stats. Per-file failures are logged and
// counted, never propagated; the returned error is non-nil only when the run
// cannot start at all (an invalid Bayer order slipping past validation).
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	matrix, err := bayer.New(cfg.BayerOrder)
	if err != nil {
		return stats, err
	}

	files := Discover(cfg.InputDir)
	stats.Total = len(files)
	if stats.NothingToDo() {
		log.Warn("No image files found in %s", cfg.InputDir)
		return stats, nil
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = detectWorkers()
	}
	if workers > len(files) {
		workers = len(files)
	}
	log.Info("Found %d image files, processing with %d workers", stats.Total, workers)

	paths := make(chan string)
	results := make(chan FileResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				results <- FileResult{Path: path, Err: processFile(path, matrix, cfg)}
			}
		}()
	}

	go func() {
		defer close(paths)
		for _, path := range files {
			select {
			case paths <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		if res.Err != nil {
			stats.Failed++
			log.Error("Failed to process %s: %v", res.Path, res.Err)
			continue
		}
		stats.Succeeded++
		log.Success("Processed %s -> %s", res.Path, OutputPath(res.Path))
	}

	log.Info("Done: %d succeeded, %d failed", stats.Succeeded, stats.Failed)
	return stats, nil
}

// processFile runs one file through the pipeline: decode, optional sharpen,
// downscale and quantize, write. Every error is wrapped with the stage that
// produced it.
func processFile(path string, matrix *bayer.Matrix, cfg *config.Config) error {
	img, err := loadImage(path)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if cfg.Sharpen {
		img = dither.Sharpen(img)
	}
	out := dither.Render(img, matrix, cfg.MaxSide)

	if err := writeOutput(path, out); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// detectWorkers returns the logical CPU count, preferring the gopsutil probe
// and falling back to runtime.NumCPU when it fails.
func detectWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
