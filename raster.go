package imgs2pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// frame is a decoded image prepared for placement: its fitted pixel
// dimensions and an encoded stream the PDF backend embeds directly.
type frame struct {
	width   int
	height  int
	format  string // embed type understood by the backend: "JPG" or "PNG"
	content io.Reader
}

// loadFrame reads and decodes the image at path and fits it into
// maxW x maxH. JPEG sources that already fit are kept verbatim so the
// backend stores the original DCT stream without recompression. Everything
// else, including scaled output and PNG variants the backend does not embed
// natively (16-bit depth, interlacing), is normalized to 8-bit NRGBA and
// stored as lossless PNG.
func loadFrame(path string, maxW, maxH uint) (*frame, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from user input selection
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	bounds := src.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), int(maxW), int(maxH))

	if format == "jpeg" && width == bounds.Dx() && height == bounds.Dy() {
		return &frame{width: width, height: height, format: "JPG", content: bytes.NewReader(raw)}, nil
	}

	norm := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width == bounds.Dx() && height == bounds.Dy() {
		xdraw.Copy(norm, image.Point{}, src, bounds, xdraw.Src, nil)
	} else {
		xdraw.BiLinear.Scale(norm, norm.Bounds(), src, bounds, xdraw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, norm); err != nil {
		return nil, fmt.Errorf("encoding %s as png: %w", path, err)
	}
	return &frame{width: width, height: height, format: "PNG", content: &buf}, nil
}

// fitWithin returns the largest dimensions not exceeding maxW x maxH that
// preserve the w:h aspect ratio. Dimensions already inside the bounds are
// returned unchanged, and results never drop below one pixel per axis.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	fw := int(math.Round(float64(w) * scale))
	fh := int(math.Round(float64(h) * scale))
	if fw > maxW {
		fw = maxW
	}
	if fh > maxH {
		fh = maxH
	}
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}
