package model

// FontFlags is a bit-set describing font style attributes of a text
// fragment. The bit positions follow the encoding used by common PDF
// text extractors (italic at bit 1, bold at bit 4), but callers should
// use the named constants and accessors rather than raw bit arithmetic.
type FontFlags uint32

const (
	// FlagItalic marks italic or oblique text.
	FlagItalic FontFlags = 1 << 1

	// FlagBold marks bold text.
	FlagBold FontFlags = 1 << 4
)

// IsBold reports whether the bold bit is set.
func (f FontFlags) IsBold() bool {
	return f&FlagBold != 0
}

// IsItalic reports whether the italic bit is set.
func (f FontFlags) IsItalic() bool {
	return f&FlagItalic != 0
}

// BBox is an axis-aligned bounding box given by its corners. The
// coordinate convention is owned by whatever produced the fragment;
// contour only ever compares coordinates against band thresholds and
// never converts between conventions. Y0 is the distance from the top
// of the page when fragments come from the pdfdoc package.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// TextFragment is one positioned, font-annotated line of text produced
// by a document reader. Page numbering follows the producer's
// convention (0- or 1-based) and is preserved verbatim through the
// pipeline. A zero FontSize means the size was unavailable and is
// treated as 12pt; zero Flags means no style information.
type TextFragment struct {
	Text     string
	Page     int
	FontSize float64
	Flags    FontFlags
	FontName string
	BBox     BBox
}
