package heading

import (
	"math"
	"testing"

	"github.com/tsawler/contour/model"
)

// makeSizedFragment creates a fragment with a specific font size.
func makeSizedFragment(text string, size float64) model.TextFragment {
	return model.TextFragment{Text: text, FontSize: size}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzeFontsEmpty(t *testing.T) {
	profile := AnalyzeFonts(nil)

	if !almostEqual(profile.AverageSize, 12) {
		t.Errorf("AverageSize = %v, want 12", profile.AverageSize)
	}
	if !almostEqual(profile.LargeThreshold, 14) {
		t.Errorf("LargeThreshold = %v, want 14", profile.LargeThreshold)
	}
	if !almostEqual(profile.XLargeThreshold, 16) {
		t.Errorf("XLargeThreshold = %v, want 16", profile.XLargeThreshold)
	}
}

func TestAnalyzeFontsThreeDistinctSizes(t *testing.T) {
	// Body at 10pt, headings at 18 and 24; averages to 12.
	fragments := []model.TextFragment{
		makeSizedFragment("body one", 10),
		makeSizedFragment("body two", 10),
		makeSizedFragment("body three", 10),
		makeSizedFragment("body four", 10),
		makeSizedFragment("Section", 18),
		makeSizedFragment("Title", 24),
	}

	profile := AnalyzeFonts(fragments)

	if !almostEqual(profile.AverageSize, 82.0/6.0) {
		t.Errorf("AverageSize = %v, want %v", profile.AverageSize, 82.0/6.0)
	}
	// The two largest distinct sizes become the thresholds.
	if !almostEqual(profile.XLargeThreshold, 24) {
		t.Errorf("XLargeThreshold = %v, want 24", profile.XLargeThreshold)
	}
	if !almostEqual(profile.LargeThreshold, 18) {
		t.Errorf("LargeThreshold = %v, want 18", profile.LargeThreshold)
	}
}

func TestAnalyzeFontsTopSizesNearAverage(t *testing.T) {
	// Three distinct sizes, but the largest ones barely exceed the
	// average, so the additive fallbacks apply.
	fragments := []model.TextFragment{
		makeSizedFragment("a", 11),
		makeSizedFragment("b", 12),
		makeSizedFragment("c", 13),
	}

	profile := AnalyzeFonts(fragments)
	avg := 12.0

	if !almostEqual(profile.AverageSize, avg) {
		t.Errorf("AverageSize = %v, want %v", profile.AverageSize, avg)
	}
	if !almostEqual(profile.XLargeThreshold, avg+4) {
		t.Errorf("XLargeThreshold = %v, want %v", profile.XLargeThreshold, avg+4)
	}
	// sizes[1] = 12 is not above avg+1, so large falls back too.
	if !almostEqual(profile.LargeThreshold, avg+2) {
		t.Errorf("LargeThreshold = %v, want %v", profile.LargeThreshold, avg+2)
	}
}

func TestAnalyzeFontsFewDistinctSizes(t *testing.T) {
	fragments := []model.TextFragment{
		makeSizedFragment("a", 10),
		makeSizedFragment("b", 20),
	}

	profile := AnalyzeFonts(fragments)

	if !almostEqual(profile.AverageSize, 15) {
		t.Errorf("AverageSize = %v, want 15", profile.AverageSize)
	}
	if !almostEqual(profile.LargeThreshold, 17) {
		t.Errorf("LargeThreshold = %v, want 17", profile.LargeThreshold)
	}
	if !almostEqual(profile.XLargeThreshold, 19) {
		t.Errorf("XLargeThreshold = %v, want 19", profile.XLargeThreshold)
	}
}

func TestAnalyzeFontsMissingSizeDefaults(t *testing.T) {
	fragments := []model.TextFragment{
		{Text: "no size information"},
		{Text: "also none"},
	}

	profile := AnalyzeFonts(fragments)
	if !almostEqual(profile.AverageSize, 12) {
		t.Errorf("AverageSize = %v, want 12 (missing sizes default)", profile.AverageSize)
	}
}

func TestAnalyzeFontsThresholdInvariant(t *testing.T) {
	// With >= 3 distinct sizes the thresholds must be ordered:
	// xlarge >= large >= average.
	cases := [][]float64{
		{8, 10, 12, 14, 30},
		{10, 10, 10, 11, 12, 13},
		{6, 24, 36},
		{9, 10, 11, 12},
	}

	for _, sizes := range cases {
		fragments := make([]model.TextFragment, len(sizes))
		for i, s := range sizes {
			fragments[i] = makeSizedFragment("x", s)
		}
		p := AnalyzeFonts(fragments)
		if p.XLargeThreshold < p.LargeThreshold || p.LargeThreshold < p.AverageSize {
			t.Errorf("sizes %v: thresholds out of order: avg=%v large=%v xlarge=%v",
				sizes, p.AverageSize, p.LargeThreshold, p.XLargeThreshold)
		}
	}
}
