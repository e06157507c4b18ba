package heading

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/contour/model"
)

// titleCaseColon matches section labels like "Funding Sources:".
var titleCaseColon = regexp.MustCompile(`^[A-Z][a-z]+.*:\s*$`)

// Classifier assigns heading levels to text fragments. All pattern
// tables are compiled once at construction and never mutated afterward,
// so a single Classifier is safe for concurrent use across documents.
type Classifier struct {
	lexical    []levelPattern
	structural []levelPattern
	keywords   []keywordLevel
}

// NewClassifier creates a classifier with the built-in pattern tables.
func NewClassifier() *Classifier {
	return &Classifier{
		lexical:    lexicalPatterns(),
		structural: structuralPatterns(),
		keywords:   contentKeywords(),
	}
}

// Classify determines the heading level for a fragment, consulting four
// strategies in fixed priority order. The first strategy that produces a
// level wins. The second return value is false when the fragment is not
// a heading at all.
func (c *Classifier) Classify(frag model.TextFragment, profile FontProfile) (model.HeadingLevel, bool) {
	text := strings.TrimSpace(frag.Text)
	if text == "" {
		return model.HeadingLevelUnknown, false
	}

	// Strategy 1: lexical pattern matching.
	if level, ok := matchPatterns(c.lexical, text); ok {
		return level, true
	}

	// Strategy 2: typography relative to the document font profile.
	if level, ok := classifyByTypography(text, frag, profile); ok {
		return level, true
	}

	// Strategy 3: structural numbering.
	if level, ok := matchPatterns(c.structural, text); ok {
		return level, true
	}

	// Strategy 4: content keywords.
	if level, ok := c.classifyByContent(text); ok {
		return level, true
	}

	return model.HeadingLevelUnknown, false
}

// matchPatterns returns the level of the first matching pattern in table
// order.
func matchPatterns(patterns []levelPattern, text string) (model.HeadingLevel, bool) {
	for _, p := range patterns {
		if p.re.MatchString(text) {
			return p.level, true
		}
	}
	return model.HeadingLevelUnknown, false
}

// classifyByTypography assigns a level from font size and weight
// relative to the document profile. Larger and bolder text maps to more
// major levels, with length caps so long body lines in display fonts do
// not qualify.
func classifyByTypography(text string, frag model.TextFragment, profile FontProfile) (model.HeadingLevel, bool) {
	size := effectiveFontSize(frag.FontSize)
	bold := frag.Flags.IsBold()
	length := utf8.RuneCountInString(text)

	isLarge := size >= profile.LargeThreshold
	isXLarge := size >= profile.XLargeThreshold

	switch {
	case isXLarge && (bold || length < 60):
		return model.HeadingLevel1, true
	case isLarge && bold && length < 80:
		return model.HeadingLevel2, true
	case size > profile.AverageSize+1 && length < 100:
		return model.HeadingLevel3, true
	}

	return model.HeadingLevelUnknown, false
}

// classifyByContent assigns a level from the text content alone: short
// all-caps runs, title-case labels ending in a colon, questions, and the
// curated keyword lists.
func (c *Classifier) classifyByContent(text string) (model.HeadingLevel, bool) {
	length := utf8.RuneCountInString(text)

	if isAllUpper(text) && length >= 5 && length <= 50 {
		return model.HeadingLevel1, true
	}

	if titleCaseColon.MatchString(text) {
		return model.HeadingLevel2, true
	}

	if strings.HasSuffix(text, "?") && length < 100 {
		return model.HeadingLevel3, true
	}

	lower := strings.ToLower(text)
	for _, kw := range c.keywords {
		if length >= kw.maxLength {
			continue
		}
		for _, word := range kw.words {
			if strings.Contains(lower, word) {
				return kw.level, true
			}
		}
	}

	return model.HeadingLevelUnknown, false
}
