// Package pdfdoc adapts PDF files into the fragment stream consumed by
// the analysis pipeline. It reads per-character text positions from the
// PDF content streams, reassembles them into per-line fragments with
// font name, size, and style flags, and exposes the document metadata
// title and bookmark outline for title selection.
//
// Files are validated with pdfcpu before extraction so that corrupt
// input fails fast with a useful error instead of partway through
// extraction.
//
// Fragments use 0-based page numbers and top-origin Y coordinates
// (BBox.Y0 is the distance from the top of the page), matching what the
// title scorer's position bands expect.
package pdfdoc
