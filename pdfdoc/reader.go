package pdfdoc

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/contour/model"
)

// DefaultMaxPages is the default page cap applied during extraction.
const DefaultMaxPages = 50

// rowTolerance is the maximum Y distance for two characters to be
// considered part of the same text line.
const rowTolerance = 2.0

// Document is an open PDF ready for fragment extraction. Close it when
// done.
type Document struct {
	file   *os.File
	reader *pdf.Reader
}

// Open validates and opens a PDF file.
func Open(path string) (*Document, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &Document{file: f, reader: r}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Fragments extracts per-line text fragments from up to maxPages pages
// (DefaultMaxPages when maxPages is zero or negative). Pages are
// numbered from 0 and fragments are returned in reading order: top to
// bottom within a page, pages in sequence. Pages that fail to parse are
// skipped.
func (d *Document) Fragments(maxPages int) []model.TextFragment {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	pageCount := d.reader.NumPage()
	if pageCount > maxPages {
		pageCount = maxPages
	}

	var fragments []model.TextFragment
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		page := d.reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		fragments = append(fragments, pageFragments(page, pageNum-1)...)
	}
	return fragments
}

// pageFragments assembles the characters of one page into line
// fragments.
func pageFragments(page pdf.Page, pageIndex int) []model.TextFragment {
	var chars []pdf.Text
	func() {
		// The content stream parser panics on some malformed pages;
		// treat those pages as empty rather than failing the document.
		defer func() { _ = recover() }()
		chars = page.Content().Text
	}()
	if len(chars) == 0 {
		return nil
	}

	pageTop := pageTopY(page, chars)

	rows := groupIntoRows(chars)

	fragments := make([]model.TextFragment, 0, len(rows))
	for _, row := range rows {
		frag, ok := rowFragment(row, pageIndex, pageTop)
		if ok {
			fragments = append(fragments, frag)
		}
	}
	return fragments
}

// pageTopY determines the page's top Y coordinate in PDF space (Y grows
// upward), preferring the MediaBox and falling back to the highest
// character.
func pageTopY(page pdf.Page, chars []pdf.Text) float64 {
	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == pdf.Array && mediaBox.Len() == 4 {
		return mediaBox.Index(3).Float64()
	}

	top := 0.0
	for _, c := range chars {
		if y := c.Y + c.FontSize; y > top {
			top = y
		}
	}
	return top
}

// groupIntoRows buckets characters by Y position into text lines,
// ordered top to bottom, each line ordered left to right.
func groupIntoRows(chars []pdf.Text) [][]pdf.Text {
	sorted := make([]pdf.Text, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y // higher Y first (top of page)
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]pdf.Text
	var current []pdf.Text
	rowY := math.Inf(1)

	for _, c := range sorted {
		if len(current) > 0 && math.Abs(c.Y-rowY) > rowTolerance {
			rows = append(rows, current)
			current = nil
		}
		if len(current) == 0 {
			rowY = c.Y
		}
		current = append(current, c)
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}

	// Re-sort each row strictly by X; the global sort interleaves
	// characters whose Y differs within the tolerance.
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}

	return rows
}

// rowFragment joins one line's characters into a fragment, inserting
// spaces at horizontal gaps, averaging the font size, and inferring
// style flags from the font name.
func rowFragment(row []pdf.Text, pageIndex int, pageTop float64) (model.TextFragment, bool) {
	var sb strings.Builder
	var sizeSum float64
	minX, maxX := math.Inf(1), math.Inf(-1)
	maxSize := 0.0

	var prev *pdf.Text
	for i := range row {
		c := &row[i]
		if prev != nil && c.X-(prev.X+prev.W) > wordGap(prev.FontSize) && !strings.HasSuffix(sb.String(), " ") {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.S)
		sizeSum += c.FontSize
		if c.FontSize > maxSize {
			maxSize = c.FontSize
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X+c.W > maxX {
			maxX = c.X + c.W
		}
		prev = c
	}

	text := norm.NFC.String(strings.TrimSpace(sb.String()))
	if text == "" {
		return model.TextFragment{}, false
	}

	avgSize := sizeSum / float64(len(row))
	y := row[0].Y

	return model.TextFragment{
		Text:     text,
		Page:     pageIndex,
		FontSize: avgSize,
		Flags:    FontFlagsFromName(row[0].Font),
		FontName: row[0].Font,
		BBox: model.BBox{
			X0: minX,
			Y0: pageTop - (y + maxSize), // distance from page top
			X1: maxX,
			Y1: pageTop - y,
		},
	}, true
}

// wordGap returns the minimum horizontal gap treated as a word break for
// the given font size.
func wordGap(fontSize float64) float64 {
	gap := fontSize * 0.25
	if gap < 1.0 {
		gap = 1.0
	}
	return gap
}

// FontFlagsFromName infers bold and italic flags from a PostScript font
// name such as "Helvetica-BoldOblique" or "TimesNewRoman,Italic".
func FontFlagsFromName(name string) model.FontFlags {
	var flags model.FontFlags
	lower := strings.ToLower(name)

	if strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold") {
		flags |= model.FlagBold
	}

	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		flags |= model.FlagItalic
	}

	return flags
}
