package imgs2pdf

import (
	"fmt"
	"math"
)

// Default run configuration values.
const (
	DefaultDPI         = 100.0
	DefaultScaleWidth  = 720
	DefaultScaleHeight = 1280
)

// millimetersPerInch converts pixel counts at a given DPI into page
// millimeters: mm = px * millimetersPerInch / dpi.
const millimetersPerInch = 25.4

// maxScaleBound caps the scale box so pixel dimensions stay addressable as
// int on every platform.
const maxScaleBound = math.MaxInt32

// Options configures page geometry and document metadata.
type Options struct {
	// DPI is the resolution used to derive physical page size from pixel
	// dimensions. Must be positive and finite.
	DPI float64

	// ScaleWidth and ScaleHeight bound the pixel size of placed images.
	// Larger images are downscaled to fit while preserving aspect ratio;
	// smaller images are never upscaled.
	ScaleWidth  uint
	ScaleHeight uint

	// Title is stored in the document metadata. Empty means no title.
	Title string
}

// DefaultOptions returns options with default values.
func DefaultOptions() Options {
	return Options{
		DPI:         DefaultDPI,
		ScaleWidth:  DefaultScaleWidth,
		ScaleHeight: DefaultScaleHeight,
	}
}

// Validate checks that the options describe a usable configuration.
func (o Options) Validate() error {
	if o.DPI <= 0 || math.IsNaN(o.DPI) || math.IsInf(o.DPI, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidDPI, o.DPI)
	}
	if o.ScaleWidth == 0 || o.ScaleHeight == 0 ||
		o.ScaleWidth > maxScaleBound || o.ScaleHeight > maxScaleBound {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidScaleBounds, o.ScaleWidth, o.ScaleHeight)
	}
	return nil
}

// pageSizeMM converts a pixel dimension to page millimeters at the given DPI.
func pageSizeMM(pixels int, dpi float64) float64 {
	return float64(pixels) * millimetersPerInch / dpi
}
