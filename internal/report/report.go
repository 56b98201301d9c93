// Package report renders the student roster into a paginated PDF document.
//
// The renderer is deliberately independent of the roster domain: it consumes
// a header, pre-ordered rows, and a record count, and owns everything about
// the document itself (page size, fonts, colors, pagination). This keeps the
// document layout swappable without touching roster logic.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Options configure the generated document.
type Options struct {
	// Path is the destination file.
	Path string
	// Title is centered at the top of the first page and set as the
	// document's metadata title.
	Title string
	// HeaderColor is the fill color of the table header row as hex RGB,
	// with or without a leading "#", e.g. "#4B8BBE".
	HeaderColor string
}

// PDF renders rosters as A4 portrait documents: a centered title, a total
// line, and a grid table with a colored header row. Long rosters flow across
// pages via automatic page breaks.
type PDF struct {
	opts    Options
	r, g, b int
}

// NewPDF validates the options and returns a writer. The header color must
// be a six-digit hex RGB value.
func NewPDF(opts Options) (*PDF, error) {
	r, g, b, err := parseHexColor(opts.HeaderColor)
	if err != nil {
		return nil, fmt.Errorf("header color: %w", err)
	}
	return &PDF{opts: opts, r: r, g: g, b: b}, nil
}

// Path returns the destination the writer renders to.
func (p *PDF) Path() string {
	return p.opts.Path
}

// Write renders the document and returns its path. total is printed above
// the table; rows may be empty, in which case the table consists of the
// header row alone. Cells are rendered with the document's code page, so
// names outside Latin-1 degrade to their closest representable form.
func (p *PDF) Write(header []string, rows [][]string, total int) (string, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(p.opts.Title, true)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, tr(p.opts.Title), "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, fmt.Sprintf("Total students: %d", total), "", 1, "L", false, 0, "")
	doc.Ln(4)

	widths := columnWidths(len(header))
	doc.SetDrawColor(128, 128, 128)
	doc.SetLineWidth(0.2)

	doc.SetFillColor(p.r, p.g, p.b)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 11)
	for i, cell := range header {
		doc.CellFormat(widths[i], 8, tr(cell), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			doc.CellFormat(widths[i], 7, tr(cell), "1", 0, "C", false, 0, "")
		}
		doc.Ln(-1)
	}

	if err := doc.OutputFileAndClose(p.opts.Path); err != nil {
		return "", fmt.Errorf("render %s: %w", p.opts.Path, err)
	}
	return p.opts.Path, nil
}

// columnWidths splits the usable width of an A4 portrait page between the
// columns. The roster's three-column layout gives the name column the bulk
// of the width; any other column count falls back to an even split.
func columnWidths(n int) []float64 {
	const usable = 190.0
	if n == 3 {
		return []float64{28, usable - 2*28, 28}
	}
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = usable / float64(n)
	}
	return widths
}

func parseHexColor(s string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}
