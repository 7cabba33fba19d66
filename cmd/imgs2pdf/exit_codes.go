package main

import (
	"errors"
	"os"

	imgs2pdf "github.com/j-hc/yet-another-imgs2pdf"
	"github.com/j-hc/yet-another-imgs2pdf/internal/config"
)

// Exit codes for the imgs2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Document written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input selection
	ExitIO      = 3 // Unreadable input directory, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDir) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrConflictingInput) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, imgs2pdf.ErrInvalidDPI) ||
		errors.Is(err, imgs2pdf.ErrInvalidScaleBounds) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}
