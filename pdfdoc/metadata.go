package pdfdoc

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// Title returns the document metadata title from the Info dictionary,
// or the empty string when the document has none. No validation is
// applied here; the title selector decides whether the value is usable.
func (d *Document) Title() string {
	var title string
	func() {
		// Trailer access can panic on malformed cross-reference data.
		defer func() { _ = recover() }()
		info := d.reader.Trailer().Key("Info")
		if info.Kind() != pdf.Dict {
			return
		}
		title = info.Key("Title").RawString()
	}()
	return strings.TrimSpace(title)
}

// TOC returns the bookmark outline titles in document order, flattened
// depth-first. Documents without bookmarks return nil.
func (d *Document) TOC() []string {
	var entries []string
	func() {
		defer func() { _ = recover() }()
		outline := d.reader.Outline()
		entries = flattenOutline(outline.Child, entries)
	}()
	return entries
}

// flattenOutline walks bookmark entries depth-first, collecting titles.
func flattenOutline(children []pdf.Outline, entries []string) []string {
	for _, child := range children {
		if title := strings.TrimSpace(child.Title); title != "" {
			entries = append(entries, title)
		}
		entries = flattenOutline(child.Child, entries)
	}
	return entries
}
