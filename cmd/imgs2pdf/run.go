package main

import (
	"errors"
	"fmt"
	"time"

	imgs2pdf "github.com/j-hc/yet-another-imgs2pdf"
	"github.com/j-hc/yet-another-imgs2pdf/internal/config"
	"github.com/j-hc/yet-another-imgs2pdf/internal/fileutil"
)

// Sentinel errors for run orchestration.
var (
	ErrNoOutput = errors.New("no output path specified")
	ErrWritePDF = errors.New("failed to write PDF file")
)

// pdfExtension is enforced on the output path.
const pdfExtension = ".pdf"

// runConvert performs one conversion run: resolve configuration and inputs,
// assemble pages sequentially, then write the document atomically.
//
// Unconvertible images are skipped with a diagnostic on stderr; the run
// fails only when no page at all could be produced.
func runConvert(positional []string, flags *runFlags, env *Environment) error {
	cfg, err := loadRunConfig(flags)
	if err != nil {
		return err
	}

	opts := imgs2pdf.Options{
		DPI:         cfg.DPI,
		ScaleWidth:  cfg.ScaleWidth,
		ScaleHeight: cfg.ScaleHeight,
		Title:       cfg.Title,
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if cfg.Output == "" {
		return ErrNoOutput
	}
	outPath := fileutil.ForceExtension(cfg.Output, pdfExtension)

	// Explicit files beat a config-file input directory; combining files
	// with the --dir flag itself is rejected.
	dir := cfg.Dir
	if len(positional) > 0 {
		if flags.changed("dir") {
			return ErrConflictingInput
		}
		dir = ""
	}
	paths, err := resolveInputs(positional, dir, cfg.AutoSort)
	if err != nil {
		return err
	}

	merger, err := imgs2pdf.NewMerger(opts)
	if err != nil {
		return err
	}

	start := time.Now()
	for i, path := range paths {
		if appendErr := merger.AppendFile(path); appendErr != nil {
			fmt.Fprintf(env.Stderr, "[%d/%d] FAILED: %v\n", i+1, len(paths), appendErr)
			continue
		}
		if !flags.quiet {
			fmt.Fprintf(env.Stderr, "[%d/%d] %s\n", i+1, len(paths), path)
		}
	}

	if merger.Pages() == 0 {
		return fmt.Errorf("%w: none of the %d input(s) could be converted", imgs2pdf.ErrNoPages, len(paths))
	}

	if err := fileutil.WriteFileAtomic(outPath, merger.Output); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d pages, %v)\n",
			outPath, merger.Pages(), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// loadRunConfig builds the effective run configuration: defaults first, then
// the optional config file, then explicitly set CLI flags on top.
func loadRunConfig(flags *runFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	mergeFlags(flags, cfg)
	return cfg, nil
}

// mergeFlags overrides config values with explicitly set CLI flags. Checking
// Changed rather than comparing against defaults keeps an explicit
// "--dpi 100" meaningful when the config file says otherwise.
func mergeFlags(flags *runFlags, cfg *config.Config) {
	if flags.changed("dpi") {
		cfg.DPI = flags.geometry.dpi
	}
	if flags.changed("scale-width") {
		cfg.ScaleWidth = flags.geometry.scaleWidth
	}
	if flags.changed("scale-height") {
		cfg.ScaleHeight = flags.geometry.scaleHeight
	}
	if flags.changed("auto-sort") {
		cfg.AutoSort = flags.input.autoSort
	}
	if flags.changed("dir") {
		cfg.Dir = flags.input.dir
	}
	if flags.changed("pdf-title") {
		cfg.Title = flags.output.title
	}
	if flags.changed("out") {
		cfg.Output = flags.output.out
	}
}
