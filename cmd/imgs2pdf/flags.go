package main

import (
	"os"

	flag "github.com/spf13/pflag"

	imgs2pdf "github.com/j-hc/yet-another-imgs2pdf"
)

// inputFlags holds input selection flags.
type inputFlags struct {
	dir      string
	autoSort bool
}

// outputFlags holds output destination flags.
type outputFlags struct {
	out   string
	title string
}

// geometryFlags holds page geometry flags.
type geometryFlags struct {
	dpi         float64
	scaleWidth  uint
	scaleHeight uint
}

// runFlags holds all flags for a conversion run.
type runFlags struct {
	input    inputFlags
	output   outputFlags
	geometry geometryFlags
	config   string
	quiet    bool
	version  bool

	fs *flag.FlagSet // kept for Changed lookups during config merge
}

// addInputFlags adds input selection flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.dir, "dir", "d", "", "directory of images to convert")
	fs.BoolVarP(&f.autoSort, "auto-sort", "s", false, "sort input paths lexicographically")
}

// addOutputFlags adds output destination flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.out, "out", "o", "", "output PDF path (.pdf enforced)")
	fs.StringVarP(&f.title, "pdf-title", "t", "", "document title metadata")
}

// addGeometryFlags adds page geometry flags to a FlagSet.
// Shorthands are capitalized: pflag reserves -h for help.
func addGeometryFlags(fs *flag.FlagSet, f *geometryFlags) {
	fs.Float64Var(&f.dpi, "dpi", imgs2pdf.DefaultDPI, "resolution for page size, dots per inch")
	fs.UintVarP(&f.scaleWidth, "scale-width", "W", imgs2pdf.DefaultScaleWidth, "resize bound width in pixels")
	fs.UintVarP(&f.scaleHeight, "scale-height", "H", imgs2pdf.DefaultScaleHeight, "resize bound height in pixels")
}

// parseFlags parses the command line and returns the flags along with the
// positional arguments, which are the image files to convert.
func parseFlags(args []string) (*runFlags, []string, error) {
	fs := flag.NewFlagSet("imgs2pdf", flag.ContinueOnError)
	f := &runFlags{fs: fs}

	addInputFlags(fs, &f.input)
	addOutputFlags(fs, &f.output)
	addGeometryFlags(fs, &f.geometry)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// changed reports whether the named flag was set explicitly on the command
// line, distinguishing an explicit default from an omitted flag.
func (f *runFlags) changed(name string) bool {
	return f.fs.Changed(name)
}
