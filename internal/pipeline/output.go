package pipeline

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// outputDirName is the sibling directory outputs are written into.
const outputDirName = "dithers"

// OutputPath returns where the dithered result for the given source file is
// written: a "dithers" directory under the source's parent, keeping the
// original base name. The content is always PNG regardless of the extension.
func OutputPath(src string) string {
	return filepath.Join(filepath.Dir(src), outputDirName, filepath.Base(src))
}

// writeOutput encodes img as PNG at the output path for src, creating the
// dithers directory if needed. MkdirAll is idempotent, so concurrent workers
// targeting the same parent directory cannot race each other into an error.
func writeOutput(src string, img *image.Gray) error {
	dst := OutputPath(src)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
