// Package scan discovers candidate files for upload: literal file
// arguments are kept as-is, directory arguments are walked
// recursively, and the result is narrowed to eligible media files.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInvalidPath is returned when an argument is neither a file nor a
// directory. Callers should match it with errors.Is.
var ErrInvalidPath = errors.New("invalid file or directory")

// Collect expands the given arguments into a flat list of file paths.
// Directories are walked recursively; files are kept unchanged. The
// returned list is not yet filtered for eligibility.
func Collect(paths []string) ([]string, error) {

	files := make([]string, 0, len(paths))
	var dirs []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPath, p)
		}
		if info.IsDir() {
			dirs = append(dirs, p)
		} else {
			files = append(files, p)
		}
	}

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", dir, err)
		}
	}

	return files, nil
}
