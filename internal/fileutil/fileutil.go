// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// filePermissions is applied to files created by WriteFileAtomic.
const filePermissions = 0o644 // rw-r--r--: owner read+write, group/other read

// ForceExtension returns path with its extension replaced by ext, which must
// include the leading dot. Paths that already carry ext, compared
// case-insensitively, are returned unchanged. A dotfile name like ".scan"
// counts as having no extension, so ext is appended.
//
// Examples:
//   - ("scan.pdf", ".pdf")  -> "scan.pdf" (unchanged)
//   - ("scan.PDF", ".pdf")  -> "scan.PDF" (unchanged, case-insensitive)
//   - ("scan.jpg", ".pdf")  -> "scan.pdf" (replaced)
//   - ("scan", ".pdf")      -> "scan.pdf" (appended)
//   - (".scan", ".pdf")     -> ".scan.pdf" (dotfile, appended)
func ForceExtension(path, ext string) string {
	current := filepath.Ext(path)
	if current == filepath.Base(path) {
		// filepath.Ext reads a dotfile name like ".scan" as all extension;
		// trimming it would erase the name, so append instead.
		return path + ext
	}
	if strings.EqualFold(current, ext) {
		return path
	}
	return strings.TrimSuffix(path, current) + ext
}

// WriteFileAtomic writes a file by streaming into a temporary sibling and
// renaming it over path once write returns. The destination never holds a
// half-written file: on any failure the temporary file is removed and the
// previous content of path, if any, stays intact.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if writeErr := write(tmp); writeErr != nil {
		_ = tmp.Close()
		cleanup()
		return writeErr
	}

	if closeErr := tmp.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if chmodErr := os.Chmod(tmpPath, filePermissions); chmodErr != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", chmodErr)
	}

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, renameErr)
	}
	return nil
}
