package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imgs2pdf [flags] <image>...")
	fmt.Fprintln(w, "       imgs2pdf [flags] -d <dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Merge images into a single PDF, one page per image. Each page is sized")
	fmt.Fprintln(w, "from the image pixels at the configured DPI; oversized images are")
	fmt.Fprintln(w, "downscaled to the resize bounds, preserving aspect ratio.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  image...                  Image files, converted in argument order")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -d, --dir <path>          Directory of images (mutually exclusive with files)")
	fmt.Fprintln(w, "  -s, --auto-sort           Sort input paths lexicographically")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --out <path>          Output PDF path, required (.pdf enforced)")
	fmt.Fprintln(w, "  -t, --pdf-title <s>       Document title metadata")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page geometry:")
	fmt.Fprintln(w, "      --dpi <f>             Resolution in dots per inch (default: 100)")
	fmt.Fprintln(w, "  -W, --scale-width <n>     Resize bound width in pixels (default: 720)")
	fmt.Fprintln(w, "  -H, --scale-height <n>    Resize bound height in pixels (default: 1280)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported formats: JPEG, PNG, GIF, BMP, TIFF, WebP.")
	fmt.Fprintln(w, "Unreadable images are skipped with a diagnostic; the run fails only if")
	fmt.Fprintln(w, "no page could be produced.")
}
