package main

// Notes:
// - This file contains image fixtures and the run harness shared across the
//   command tests. Written documents are verified with pdfcpu rather than by
//   inspecting PDF internals by hand.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// runArgs parses args as a command line (without the program name) and runs
// one conversion, capturing stdout and stderr.
func runArgs(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	flags, positional, parseErr := parseFlags(append([]string{"imgs2pdf"}, args...))
	if parseErr != nil {
		t.Fatalf("parsing flags: %v", parseErr)
	}

	var outBuf, errBuf bytes.Buffer
	env := &Environment{Stdout: &outBuf, Stderr: &errBuf}
	err = runConvert(positional, flags, env)
	return outBuf.String(), errBuf.String(), err
}

// assertPageDims checks the pages of the document at path against the wanted
// width/height pairs in points, with a half-point tolerance.
func assertPageDims(t *testing.T, path string, want [][2]float64) {
	t.Helper()

	count, err := api.PageCountFile(path)
	if err != nil {
		t.Fatalf("PageCountFile(%s): %v", path, err)
	}
	if count != len(want) {
		t.Fatalf("page count = %d, want %d", count, len(want))
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		t.Fatalf("PageDimsFile(%s): %v", path, err)
	}
	if len(dims) != len(want) {
		t.Fatalf("dims count = %d, want %d", len(dims), len(want))
	}
	for i, dim := range dims {
		if math.Abs(dim.Width-want[i][0]) > 0.5 || math.Abs(dim.Height-want[i][1]) > 0.5 {
			t.Errorf("page %d = %.2fx%.2fpt, want %.2fx%.2fpt",
				i+1, dim.Width, dim.Height, want[i][0], want[i][1])
		}
	}
}

// newTestImage returns a w x h RGBA image with a flat fill.
func newTestImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 200, G: 120, B: 40, A: 255}}, image.Point{}, draw.Src)
	return img
}

// writeJPEG writes a w x h JPEG fixture into dir and returns its path.
func writeJPEG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	if err := jpeg.Encode(file, newTestImage(w, h), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("closing fixture: %v", err)
	}
	return path
}

// writePNG writes a w x h PNG fixture into dir and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	if err := png.Encode(file, newTestImage(w, h)); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("closing fixture: %v", err)
	}
	return path
}
