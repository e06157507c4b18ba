// Package contour extracts a hierarchical outline from a document: a
// title plus an ordered list of headings, each tagged with a nesting
// level (H1-H4) and page number.
//
// Basic usage:
//
//	outline, err := contour.Open("report.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With options:
//
//	outline, err := contour.Open("report.pdf").
//	    MaxPages(20).
//	    Strictness(heading.StrictnessStrict).
//	    Outline()
//
// The pipeline also runs over fragments produced elsewhere:
//
//	outline, _ := contour.FromFragments(fragments).
//	    Metadata(docTitle).
//	    Outline()
//
// For advanced use cases the heading, title, and pdfdoc packages are
// available directly.
package contour

import (
	"fmt"

	"github.com/tsawler/contour/heading"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/pdfdoc"
	"github.com/tsawler/contour/title"
)

// Extractor provides a fluent interface for outline extraction. Each
// configuration method returns a new Extractor instance, making chains
// safe to share and reuse.
type Extractor struct {
	// Source: a file to read, or fragments supplied by the caller.
	filename  string
	fragments []model.TextFragment
	fromFrags bool

	// Configuration
	options ExtractOptions
}

// Open prepares an extractor for a PDF file. The file is opened,
// validated, and closed inside Outline.
//
// Example:
//
//	outline, err := contour.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromFragments prepares an extractor for fragments produced by another
// reader. Page numbering follows whatever convention the fragments use
// and is preserved verbatim in the outline. In this mode Outline never
// returns an error.
func FromFragments(fragments []model.TextFragment) *Extractor {
	return &Extractor{
		fragments: fragments,
		fromFrags: true,
		options:   defaultOptions(),
	}
}

// clone creates a copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		fragments: e.fragments,
		fromFrags: e.fromFrags,
		options:   e.options.clone(),
	}
}

// MaxPages caps how many pages are read from the file. Zero or negative
// keeps the default cap of 50 pages. Has no effect in fragment mode.
func (e *Extractor) MaxPages(n int) *Extractor {
	c := e.clone()
	c.options.maxPages = n
	return c
}

// Strictness sets the candidate filter's strictness mode.
func (e *Extractor) Strictness(s heading.Strictness) *Extractor {
	c := e.clone()
	c.options.strictness = s
	return c
}

// Metadata supplies a document metadata title for the title selector's
// first fallback. In file mode the PDF's own metadata takes precedence.
func (e *Extractor) Metadata(metaTitle string) *Extractor {
	c := e.clone()
	c.options.metaTitle = metaTitle
	return c
}

// TOC supplies table-of-contents entry texts for the title selector's
// third fallback. In file mode the PDF's bookmark outline takes
// precedence.
func (e *Extractor) TOC(entries ...string) *Extractor {
	c := e.clone()
	c.options.toc = append([]string(nil), entries...)
	return c
}

// Outline runs the full pipeline and returns the document outline. In
// fragment mode the returned error is always nil.
func (e *Extractor) Outline() (*model.DocumentOutline, error) {
	fragments := e.fragments
	metaTitle := e.options.metaTitle
	toc := e.options.toc

	if !e.fromFrags {
		doc, err := pdfdoc.Open(e.filename)
		if err != nil {
			return nil, fmt.Errorf("contour: %w", err)
		}
		defer doc.Close()

		fragments = doc.Fragments(e.options.maxPages)
		if t := doc.Title(); t != "" {
			metaTitle = t
		}
		if entries := doc.TOC(); len(entries) > 0 {
			toc = entries
		}
	}

	return extractOutline(fragments, metaTitle, toc, e.options.strictness), nil
}

// extractOutline runs the classification pipeline and title selection
// over an in-memory fragment sequence.
func extractOutline(fragments []model.TextFragment, metaTitle string, toc []string, strictness heading.Strictness) *model.DocumentOutline {
	filter := heading.NewCandidateFilterWithStrictness(strictness)
	classifier := heading.NewClassifier()

	candidates := filter.Filter(fragments)
	profile := heading.AnalyzeFonts(candidates)

	detected := make([]model.Heading, 0, len(candidates))
	for _, frag := range candidates {
		if level, ok := classifier.Classify(frag, profile); ok {
			detected = append(detected, model.Heading{
				Level: level,
				Text:  frag.Text,
				Page:  frag.Page,
			})
		}
	}
	outline := heading.Finalize(detected)

	selector := title.NewSelector()
	docTitle := selector.Select(firstPageFragments(fragments), metaTitle, toc)

	return model.NewDocumentOutline(docTitle, outline)
}

// firstPageFragments returns the raw fragments belonging to the first
// page, taken as the page number of the first fragment so that 0- and
// 1-based conventions both work.
func firstPageFragments(fragments []model.TextFragment) []model.TextFragment {
	if len(fragments) == 0 {
		return nil
	}
	first := fragments[0].Page
	var page []model.TextFragment
	for _, frag := range fragments {
		if frag.Page == first {
			page = append(page, frag)
		}
	}
	return page
}
