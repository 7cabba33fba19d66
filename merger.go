package imgs2pdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Merger accumulates image pages into an in-memory PDF document and writes
// the result out exactly once. Pages appear in append order, one image per
// page, with each page sized so the image fills it edge to edge.
//
// The zero value is not usable; create instances with NewMerger. A Merger is
// not safe for concurrent use.
type Merger struct {
	opts      Options
	pdf       *gofpdf.Fpdf
	pages     int
	finalized bool
}

// NewMerger returns an empty document configured by opts.
func NewMerger(opts Options) (*Merger, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		// Initial size is irrelevant: every page carries its own format.
		Size: gofpdf.SizeType{Wd: 210, Ht: 297},
	})
	pdf.SetTitle(opts.Title, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	return &Merger{opts: opts, pdf: pdf}, nil
}

// AppendFile decodes the image at path, downscales it to the configured
// bounds if needed, and appends one page exactly holding it. The page size
// in millimeters is the fitted pixel size converted at the configured DPI.
//
// On failure the document is left as it was, so callers may skip the path
// and continue appending.
func (m *Merger) AppendFile(path string) error {
	if m.finalized {
		return ErrFinalized
	}

	f, err := loadFrame(path, m.opts.ScaleWidth, m.opts.ScaleHeight)
	if err != nil {
		return err
	}

	// Register before creating the page: a backend rejection here leaves no
	// half-built page behind.
	opt := gofpdf.ImageOptions{ImageType: f.format}
	m.pdf.RegisterImageOptionsReader(path, opt, f.content)
	if m.pdf.Err() {
		err := fmt.Errorf("%w: %s: %v", ErrAppendPage, path, m.pdf.Error())
		m.pdf.ClearError()
		return err
	}

	wMM := pageSizeMM(f.width, m.opts.DPI)
	hMM := pageSizeMM(f.height, m.opts.DPI)
	m.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: wMM, Ht: hMM})
	m.pdf.ImageOptions(path, 0, 0, wMM, hMM, false, opt, 0, "")
	if m.pdf.Err() {
		// Clear the sticky backend error so it cannot be misattributed to
		// the next append.
		err := fmt.Errorf("%w: %s: %v", ErrAppendPage, path, m.pdf.Error())
		m.pdf.ClearError()
		return err
	}

	m.pages++
	return nil
}

// Pages returns the number of pages appended so far.
func (m *Merger) Pages() int {
	return m.pages
}

// Output serializes the document to w. It can be called at most once: the
// Merger rejects further appends and writes afterwards. Documents with no
// pages are refused and nothing is written.
func (m *Merger) Output(w io.Writer) error {
	if m.finalized {
		return ErrFinalized
	}
	if m.pages == 0 {
		return ErrNoPages
	}
	m.finalized = true

	if err := m.pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}
