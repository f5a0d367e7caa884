package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Image file extensions accepted by discovery (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".tiff": true,
	".bmp":  true,
}

// Discover walks root recursively and returns the paths of all regular files
// with a recognized image extension (case-insensitive), sorted
// lexicographically so logs are deterministic. Unreadable files or
// directories encountered during the walk are skipped, not fatal; other
// files are silently ignored.
func Discover(root string) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if imageExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}
