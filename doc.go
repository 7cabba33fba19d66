// Package imgs2pdf assembles raster images into a single multi-page PDF,
// one image per page.
//
// # Quick Start
//
// Create a merger, append images, and write the document once:
//
//	m, err := imgs2pdf.NewMerger(imgs2pdf.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, path := range []string{"a.jpg", "b.png"} {
//	    if err := m.AppendFile(path); err != nil {
//	        log.Printf("skipping %s: %v", path, err)
//	    }
//	}
//
//	f, err := os.Create("out.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//	if err := m.Output(f); err != nil {
//	    log.Fatal(err)
//	}
//
// A failed append leaves the document untouched, so batch callers can skip
// bad files and keep going. Output refuses documents with zero pages and can
// be called at most once; afterwards the Merger rejects all operations with
// ErrFinalized.
//
// # Page Geometry
//
// Each page is sized from its image: pixel dimensions are converted to
// physical millimeters at the configured DPI (25.4 mm per inch), so an
// 800x600 image at 100 DPI becomes a 203.2mm x 152.4mm page. Images larger
// than Options.ScaleWidth x Options.ScaleHeight are downscaled to fit with
// bilinear interpolation, preserving aspect ratio. Smaller images are never
// upscaled.
//
// # Supported Formats
//
// JPEG, PNG, GIF, BMP, TIFF, and WebP inputs are decoded. JPEG sources that
// already fit the scale bounds are embedded without recompression; all other
// inputs are stored as lossless PNG.
package imgs2pdf
