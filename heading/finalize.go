package heading

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/contour/model"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	leadingBullet = regexp.MustCompile(`^\s*[•\-\*]\s*`)
	// Table-of-contents leader dots with an optional trailing page
	// number, e.g. "Scope ......... 12".
	trailingLeaderDots = regexp.MustCompile(`\s*[.]{2,}\s*\d*\s*$`)
	numberedLowercase  = regexp.MustCompile(`^(\d+\.\s+)([a-z])`)
	// Single title-case words classified as minor section labels are
	// normalized to their colon-terminated form ("Timeline" -> "Timeline:").
	bareLabelWord = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// Finalize turns raw detected headings into the canonical outline: it
// cleans the heading text, removes duplicates, and restores page order.
// Headings whose text cleans to the empty string are dropped.
//
// Deduplication keys on (lowercased text, page) and keeps the first
// occurrence in input order. The final sort is stable on (page, level
// rank), so input order still breaks ties among equal keys.
func Finalize(detected []model.Heading) []model.Heading {
	outline := make([]model.Heading, 0, len(detected))

	seen := make(map[dedupeKey]bool, len(detected))
	for _, h := range detected {
		cleaned := CleanText(h.Text, h.Level)
		if cleaned == "" {
			continue
		}
		key := dedupeKey{text: strings.ToLower(cleaned), page: h.Page}
		if seen[key] {
			continue
		}
		seen[key] = true
		outline = append(outline, model.Heading{Level: h.Level, Text: cleaned, Page: h.Page})
	}

	sort.SliceStable(outline, func(i, j int) bool {
		if outline[i].Page != outline[j].Page {
			return outline[i].Page < outline[j].Page
		}
		return outline[i].Level.Rank() < outline[j].Level.Rank()
	})

	return outline
}

type dedupeKey struct {
	text string
	page int
}

// CleanText normalizes heading text: whitespace runs collapse to single
// spaces, leading bullet markers and trailing leader dots are stripped,
// and a lowercase letter right after a "N." prefix is capitalized. The
// level is needed for the label-colon normalization applied to H3
// headings.
func CleanText(text string, level model.HeadingLevel) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = leadingBullet.ReplaceAllString(text, "")
	text = trailingLeaderDots.ReplaceAllString(text, "")

	text = numberedLowercase.ReplaceAllStringFunc(text, func(m string) string {
		sub := numberedLowercase.FindStringSubmatch(m)
		return sub[1] + strings.ToUpper(sub[2])
	})

	text = strings.TrimSpace(text)

	if level == model.HeadingLevel3 && bareLabelWord.MatchString(text) {
		text += ":"
	}

	return text
}

// LevelJumps reports the indices in a finalized outline where the level
// rank jumps more than one step deeper than the previous heading (for
// example H1 followed directly by H3). The jumps are advisory only: the
// classifier's levels are authoritative and are never rewritten, even
// when the resulting hierarchy is not strictly nested.
func LevelJumps(outline []model.Heading) []int {
	var jumps []int
	lastRank := 0
	for i, h := range outline {
		rank := h.Level.Rank()
		if lastRank > 0 && rank > lastRank+1 {
			jumps = append(jumps, i)
		}
		lastRank = rank
	}
	return jumps
}
