package heading

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/contour/model"
)

// Strictness controls how aggressively the candidate filter rejects long
// fragments. Stricter modes use a lower maximum length.
type Strictness int

const (
	// StrictnessNormal allows fragments up to 200 characters.
	StrictnessNormal Strictness = iota

	// StrictnessLenient allows fragments up to 250 characters.
	StrictnessLenient

	// StrictnessStrict allows fragments up to 150 characters.
	StrictnessStrict
)

// maxLength returns the maximum candidate length for this mode.
func (s Strictness) maxLength() int {
	switch s {
	case StrictnessLenient:
		return 250
	case StrictnessStrict:
		return 150
	default:
		return 200
	}
}

// String returns the lowercase name of the strictness mode.
func (s Strictness) String() string {
	switch s {
	case StrictnessLenient:
		return "lenient"
	case StrictnessStrict:
		return "strict"
	default:
		return "normal"
	}
}

// ParseStrictness converts a mode name ("lenient", "normal", "strict")
// to a Strictness value. Unrecognized names map to StrictnessNormal.
func ParseStrictness(s string) Strictness {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lenient":
		return StrictnessLenient
	case "strict":
		return StrictnessStrict
	default:
		return StrictnessNormal
	}
}

// Page artifacts that never qualify as heading candidates: bare page
// numbers, copyright lines, URLs and email addresses, dates, and
// figure/table/chart captions.
var artifactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d+\s*$`),
	regexp.MustCompile(`(?i)^page\s+\d+`),
	regexp.MustCompile(`^©\s*\d{4}`),
	regexp.MustCompile(`(?i)^copyright`),
	regexp.MustCompile(`(?i)^www\.|^http`),
	regexp.MustCompile(`(?i)^\w+@\w+\.\w+`),
	regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	regexp.MustCompile(`(?i)^figure\s+\d+`),
	regexp.MustCompile(`(?i)^table\s+\d+`),
	regexp.MustCompile(`(?i)^chart\s+\d+`),
	regexp.MustCompile(`(?i)^version\s+\d+\.\d+`),
	regexp.MustCompile(`(?i)^draft\s+\d+`),
}

// letteredListMarker exempts lettered list items ("a) Item") from the
// all-lowercase rejection rule.
var letteredListMarker = regexp.MustCompile(`^[a-z]\)`)

// Whole-word stop words that indicate running body text when several
// appear in one fragment.
var bodyStopWords = map[string]bool{
	"the": true, "and": true, "of": true, "to": true, "in": true,
	"for": true, "with": true, "on": true, "at": true, "by": true,
}

// CandidateFilter rejects fragments that cannot be headings before any
// classification work happens. It is pure and order-preserving: the
// output is always a subsequence of the input, and filtering an already
// filtered sequence is a no-op.
type CandidateFilter struct {
	strictness Strictness
}

// NewCandidateFilter creates a filter with normal strictness.
func NewCandidateFilter() *CandidateFilter {
	return &CandidateFilter{strictness: StrictnessNormal}
}

// NewCandidateFilterWithStrictness creates a filter with the given mode.
func NewCandidateFilterWithStrictness(s Strictness) *CandidateFilter {
	return &CandidateFilter{strictness: s}
}

// Filter returns the fragments that remain plausible heading candidates.
func (f *CandidateFilter) Filter(fragments []model.TextFragment) []model.TextFragment {
	candidates := make([]model.TextFragment, 0, len(fragments))
	for _, frag := range fragments {
		if !f.reject(strings.TrimSpace(frag.Text)) {
			candidates = append(candidates, frag)
		}
	}
	return candidates
}

// reject applies the rejection rules to trimmed fragment text.
func (f *CandidateFilter) reject(text string) bool {
	length := utf8.RuneCountInString(text)
	if length < 3 || length > f.strictness.maxLength() {
		return true
	}

	for _, pattern := range artifactPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	if isBodyText(text, length) {
		return true
	}

	// Entirely lowercase text is body content, except lettered list
	// markers which the classifier maps to minor heading levels.
	if isAllLower(text) && !letteredListMarker.MatchString(text) {
		return true
	}

	return false
}

// isBodyText reports whether the fragment reads like running prose:
// several stop words in a longer fragment, or multiple sentences.
func isBodyText(text string, length int) bool {
	stopWords := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if bodyStopWords[word] {
			stopWords++
		}
	}
	if stopWords >= 3 && length > 40 {
		return true
	}

	if strings.Count(text, ".") >= 2 && length > 50 {
		return true
	}

	return false
}

// isAllLower reports whether text contains at least one cased letter and
// no uppercase letters.
func isAllLower(text string) bool {
	cased := false
	for _, r := range text {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// isAllUpper reports whether text contains at least one cased letter and
// no lowercase letters.
func isAllUpper(text string) bool {
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
