package title

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/contour/model"
)

// Score weights and bands for the first-page fragment scorer.
const (
	fontSizeWeight = 2.0

	topBandY      = 100.0
	topBandBonus  = 50.0
	highBandY     = 200.0
	highBandBonus = 30.0

	boldBonus   = 25.0
	italicBonus = 10.0

	goodLengthBonus   = 20.0
	overlongPenalty   = 30.0
	artifactPenalty   = 100.0
	titleKeywordBonus = 30.0

	// minScore is the score a fragment must exceed to qualify as a
	// title candidate.
	minScore = 10.0
)

var (
	// Shapes that disqualify a metadata title: placeholder names,
	// editor artifacts, and bare filenames.
	genericTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^untitled`),
		regexp.MustCompile(`(?i)^document\b`),
		regexp.MustCompile(`(?i)^draft\b`),
		regexp.MustCompile(`(?i)^copy of`),
		regexp.MustCompile(`(?i)^microsoft word`),
		regexp.MustCompile(`(?i)^[\w\s,-]+\.(pdf|docx?|txt)$`),
	}

	// Artifact shapes that heavily penalize a scoring candidate.
	scoreArtifact = regexp.MustCompile(`(?i)^\d+$|^page\s+|^©|^www\.|^http|^\s*\d+\s*$`)

	// Leading words that suggest a document title.
	titleKeyword = regexp.MustCompile(`(?i)^(rfp|request|understanding|introduction|overview|application)`)

	whitespaceRun  = regexp.MustCompile(`\s+`)
	leadingPrefix  = regexp.MustCompile(`(?i)^(document:|report:|title:)\s*`)
	wordArtifact   = regexp.MustCompile(`(?i)^microsoft word -\s*`)
	trailingPDF    = regexp.MustCompile(`(?i)\.pdf$`)
	trailingDots   = regexp.MustCompile(`[.]{2,}$`)
	leadingDotsRun = regexp.MustCompile(`^\s*[.]+\s*`)
)

// maxEarlyFragments bounds how far into the first page the title-shaped
// fallback looks.
const maxEarlyFragments = 10

// Selector picks the best title for a document. It holds no state and
// is safe for concurrent use.
type Selector struct{}

// NewSelector creates a title selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Select returns the document title, or the empty string when nothing
// qualifies. firstPage holds the raw (unfiltered) fragments of the first
// page in reading order, metaTitle the document metadata title if the
// source exposes one, and toc the table-of-contents entry texts in
// document order.
func (s *Selector) Select(firstPage []model.TextFragment, metaTitle string, toc []string) string {
	if t := acceptableMetadataTitle(metaTitle); t != "" {
		return CleanTitle(t)
	}

	if t := s.bestScoringFragment(firstPage); t != "" {
		return CleanTitle(t)
	}

	if t := firstTOCEntry(toc); t != "" {
		return CleanTitle(t)
	}

	if t := firstTitleShapedFragment(firstPage); t != "" {
		return CleanTitle(t)
	}

	return ""
}

// acceptableMetadataTitle validates a metadata title: it must be
// non-trivial and must not look like a placeholder or a filename.
func acceptableMetadataTitle(metaTitle string) string {
	trimmed := strings.TrimSpace(metaTitle)
	if utf8.RuneCountInString(trimmed) <= 3 {
		return ""
	}
	for _, pattern := range genericTitlePatterns {
		if pattern.MatchString(trimmed) {
			return ""
		}
	}
	return trimmed
}

// bestScoringFragment scores every first-page fragment and returns the
// top scorer above the minimum threshold. Ties keep the earliest
// fragment in input order.
func (s *Selector) bestScoringFragment(firstPage []model.TextFragment) string {
	best := ""
	bestScore := minScore
	for _, frag := range firstPage {
		text := strings.TrimSpace(frag.Text)
		if utf8.RuneCountInString(text) <= 3 {
			continue
		}
		if score := scoreFragment(frag, text); score > bestScore {
			best = text
			bestScore = score
		}
	}
	return best
}

// scoreFragment computes the title candidacy score for one fragment.
func scoreFragment(frag model.TextFragment, text string) float64 {
	size := frag.FontSize
	if size <= 0 {
		size = 12
	}
	score := size * fontSizeWeight

	// Position: text near the top of the page is a stronger candidate.
	switch {
	case frag.BBox.Y0 < topBandY:
		score += topBandBonus
	case frag.BBox.Y0 < highBandY:
		score += highBandBonus
	}

	if frag.Flags.IsBold() {
		score += boldBonus
	}
	if frag.Flags.IsItalic() {
		score += italicBonus
	}

	length := utf8.RuneCountInString(text)
	switch {
	case length >= 10 && length <= 100:
		score += goodLengthBonus
	case length > 200:
		score -= overlongPenalty
	}

	if scoreArtifact.MatchString(text) {
		score -= artifactPenalty
	}
	if titleKeyword.MatchString(text) {
		score += titleKeywordBonus
	}

	return score
}

// firstTOCEntry returns the first non-empty table-of-contents entry when
// its length falls in the acceptable title range.
func firstTOCEntry(toc []string) string {
	for _, entry := range toc {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if n := utf8.RuneCountInString(trimmed); n >= 5 && n <= 100 {
			return trimmed
		}
		return ""
	}
	return ""
}

// firstTitleShapedFragment returns the first early fragment that looks
// like a title: starts with an uppercase letter, has a reasonable
// length, contains no internal sentence-ending punctuation, and is not a
// known artifact shape.
func firstTitleShapedFragment(firstPage []model.TextFragment) string {
	for i, frag := range firstPage {
		if i >= maxEarlyFragments {
			break
		}
		text := strings.TrimSpace(frag.Text)
		if isTitleShaped(text) {
			return text
		}
	}
	return ""
}

// isTitleShaped applies the shape checks for the last-resort fallback.
func isTitleShaped(text string) bool {
	length := utf8.RuneCountInString(text)
	if length < 5 || length > 150 {
		return false
	}

	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsUpper(first) {
		return false
	}

	if scoreArtifact.MatchString(text) {
		return false
	}

	// Sentence punctuation anywhere before the final rune means prose,
	// not a title.
	core := strings.TrimRight(text, ".!?")
	if strings.ContainsAny(core, ".!?") {
		return false
	}

	return true
}

// CleanTitle normalizes a selected title: whitespace runs collapse to
// single spaces, and common producer prefixes ("Document:", "Microsoft
// Word -") and suffixes (".pdf", leader dots) are stripped.
func CleanTitle(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = leadingPrefix.ReplaceAllString(text, "")
	text = wordArtifact.ReplaceAllString(text, "")
	text = trailingPDF.ReplaceAllString(text, "")
	text = trailingDots.ReplaceAllString(text, "")
	text = leadingDotsRun.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
