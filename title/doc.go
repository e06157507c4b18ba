// Package title selects a document title from first-page text fragments,
// optional document metadata, and an optional table of contents.
//
// Selection runs a fixed fallback chain and the first success wins:
// metadata title, highest-scoring first-page fragment, first table of
// contents entry, first title-shaped early fragment, and finally the
// empty string. The fragment scorer is independent of the heading
// pipeline and operates on unfiltered fragments.
package title
