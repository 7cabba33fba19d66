package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Sentinel errors for input resolution.
var (
	ErrNoInput          = errors.New("no input images specified")
	ErrConflictingInput = errors.New("image files and --dir are mutually exclusive")
	ErrReadDir          = errors.New("failed to read input directory")
)

// resolveInputs turns the input selection into an ordered list of candidate
// image paths. Exactly one of the explicit file list or the directory may be
// supplied. With autoSort the paths are sorted lexicographically; otherwise
// explicit files keep their argument order.
func resolveInputs(files []string, dir string, autoSort bool) ([]string, error) {
	if len(files) > 0 && dir != "" {
		return nil, ErrConflictingInput
	}

	paths := files
	if dir != "" {
		var err error
		paths, err = listDir(dir)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("%w: no files in directory %s", ErrNoInput, dir)
		}
	}
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	if autoSort {
		paths = append([]string(nil), paths...)
		sort.Strings(paths)
	}
	return paths, nil
}

// listDir returns the file entries of dir, non-recursively. Subdirectories
// are skipped. No extension filtering happens here: the image decoder is the
// arbiter of what converts, so unusual extensions still get a chance.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadDir, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
