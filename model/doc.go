// Package model defines the shared data types used throughout contour:
// text fragments as produced by a PDF text extractor, font style flags,
// bounding boxes, heading levels, and the document outline that the
// analysis pipeline produces.
//
// All types in this package are plain value types with no behavior beyond
// accessors and serialization. Fragments are treated as immutable once
// produced; the pipeline never modifies its input.
package model
