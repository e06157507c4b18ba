package heading

import (
	"sort"

	"github.com/tsawler/contour/model"
)

// defaultFontSize substitutes for fragments whose producer could not
// determine a font size.
const defaultFontSize = 12.0

// FontProfile holds document-wide font statistics. The classifier uses
// it to turn absolute font sizes into relative "large" and "extra-large"
// judgments. A profile is computed once per document and passed read-only
// into the classifier.
type FontProfile struct {
	// AverageSize is the arithmetic mean of all fragment font sizes.
	AverageSize float64

	// LargeThreshold is the minimum size considered "large".
	LargeThreshold float64

	// XLargeThreshold is the minimum size considered "extra-large".
	// Always >= LargeThreshold >= AverageSize for documents with at
	// least three distinct sizes.
	XLargeThreshold float64
}

// AnalyzeFonts computes the font profile for a document's fragments.
// Empty input yields the default profile {12, 14, 16}.
func AnalyzeFonts(fragments []model.TextFragment) FontProfile {
	if len(fragments) == 0 {
		return FontProfile{
			AverageSize:     defaultFontSize,
			LargeThreshold:  defaultFontSize + 2,
			XLargeThreshold: defaultFontSize + 4,
		}
	}

	var sum float64
	distinct := make(map[float64]bool)
	for _, frag := range fragments {
		size := effectiveFontSize(frag.FontSize)
		sum += size
		distinct[size] = true
	}
	avg := sum / float64(len(fragments))

	sizes := make([]float64, 0, len(distinct))
	for size := range distinct {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	large := avg + 2
	xlarge := avg + 4

	// With three or more distinct sizes, the two largest become the
	// thresholds, unless they sit too close to the average to be
	// meaningful.
	if len(sizes) >= 3 {
		if sizes[0] > avg+2 {
			xlarge = sizes[0]
		}
		if sizes[1] > avg+1 {
			large = sizes[1]
		}
	}

	return FontProfile{
		AverageSize:     avg,
		LargeThreshold:  large,
		XLargeThreshold: xlarge,
	}
}

// effectiveFontSize maps a missing size (zero or negative) to the default.
func effectiveFontSize(size float64) float64 {
	if size <= 0 {
		return defaultFontSize
	}
	return size
}
