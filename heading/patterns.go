package heading

import (
	"regexp"

	"github.com/tsawler/contour/model"
)

// levelPattern pairs a compiled expression with the level it assigns.
type levelPattern struct {
	re    *regexp.Regexp
	level model.HeadingLevel
}

// lexicalPatterns builds the strategy-1 pattern tables, ordered H1
// through H4. Within a level, earlier entries win over later ones, and
// the H1 table is always scanned before H2 and so on; overlapping
// patterns are resolved strictly by this order. Keyword patterns match
// case-insensitively, shape patterns whose letter case is itself the
// signal (all-caps runs, numbered headings) match exactly.
func lexicalPatterns() []levelPattern {
	return []levelPattern{
		// H1 - major sections
		{regexp.MustCompile(`(?i)^chapter\s+\d+`), model.HeadingLevel1},
		{regexp.MustCompile(`(?i)^section\s+\d+`), model.HeadingLevel1},
		{regexp.MustCompile(`^\d+\.\s+[A-Z][^.]*$`), model.HeadingLevel1},
		{regexp.MustCompile(`^[A-Z][A-Z\s]{3,}$`), model.HeadingLevel1},
		{regexp.MustCompile(`(?i)^(introduction|overview|summary|conclusion|abstract|executive\s+summary)`), model.HeadingLevel1},
		{regexp.MustCompile(`(?i)^(background|methodology|results|discussion|references|bibliography)`), model.HeadingLevel1},
		// The colon form ("Appendix C: ...") is a subsection label and is
		// left for the structural table, which maps it to H2.
		{regexp.MustCompile(`(?i)^appendix\s+([A-Z]|\d+)([^:]|$)`), model.HeadingLevel1},
		{regexp.MustCompile(`(?i)^(table\s+of\s+contents|acknowledgements?|preface)`), model.HeadingLevel1},
		{regexp.MustCompile(`(?i)^(revision\s+history|document\s+history)`), model.HeadingLevel1},

		// H2 - section headings
		{regexp.MustCompile(`^\d+\.\d+\s+[A-Z]`), model.HeadingLevel2},
		{regexp.MustCompile(`(?i)^phase\s+([IVX]+|\d+)`), model.HeadingLevel2},
		{regexp.MustCompile(`(?i)^(step|stage)\s+\d+`), model.HeadingLevel2},

		// H3 - subsection headings
		{regexp.MustCompile(`^\d+\.\d+\.\d+\s+[A-Z]`), model.HeadingLevel3},
		{regexp.MustCompile(`^[a-z]\)\s+[A-Z]`), model.HeadingLevel3},
		{regexp.MustCompile(`^[A-Z]\.\s+[A-Z]`), model.HeadingLevel3},
		{regexp.MustCompile(`^\d+\.\s+[A-Z][a-z]`), model.HeadingLevel3},
		{regexp.MustCompile(`^[A-Z][a-z]+\s*:\s*$`), model.HeadingLevel3},
		{regexp.MustCompile(`(?i)^(for\s+each|what\s+could|how\s+to)`), model.HeadingLevel3},

		// H4 - sub-subsection headings
		{regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\s+[A-Z]`), model.HeadingLevel4},
		{regexp.MustCompile(`^[a-z]\.\d+\s+[A-Z]`), model.HeadingLevel4},
		{regexp.MustCompile(`^[IVX]+\.\s+[A-Z]`), model.HeadingLevel4},
		{regexp.MustCompile(`^\([a-z]\)\s+[A-Z]`), model.HeadingLevel4},
	}
}

// structuralPatterns builds the strategy-3 table. It re-derives the
// numbered and lettered depths independently of the lexical table, with
// its own anchoring: it also recognizes appendix labels and maps
// top-level lettered items to H2.
func structuralPatterns() []levelPattern {
	return []levelPattern{
		{regexp.MustCompile(`^\d+\.\s+[A-Z]`), model.HeadingLevel1},
		{regexp.MustCompile(`^\d+\.\d+\s+[A-Z]`), model.HeadingLevel2},
		{regexp.MustCompile(`^\d+\.\d+\.\d+\s+[A-Z]`), model.HeadingLevel3},
		{regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\s+[A-Z]`), model.HeadingLevel4},
		{regexp.MustCompile(`^Appendix\s+[A-Z]:`), model.HeadingLevel2},
		{regexp.MustCompile(`^[A-Z]\.\s+[A-Z]`), model.HeadingLevel2},
		{regexp.MustCompile(`^[a-z]\)\s+[A-Z]`), model.HeadingLevel3},
		{regexp.MustCompile(`^\([a-z]\)\s+[A-Z]`), model.HeadingLevel4},
	}
}

// keywordLevel maps a curated keyword list to a level, with a maximum
// text length for the match to count.
type keywordLevel struct {
	words     []string
	level     model.HeadingLevel
	maxLength int
}

// contentKeywords builds the strategy-4 keyword table. Containment is a
// substring check on the lowercased text, not a whole-word match.
func contentKeywords() []keywordLevel {
	return []keywordLevel{
		{
			words:     []string{"introduction", "overview", "summary", "conclusion", "abstract", "preface"},
			level:     model.HeadingLevel1,
			maxLength: 50,
		},
		{
			words:     []string{"background", "methodology", "results", "discussion", "analysis"},
			level:     model.HeadingLevel2,
			maxLength: 80,
		},
		{
			words:     []string{"timeline", "objectives", "requirements", "specifications"},
			level:     model.HeadingLevel3,
			maxLength: 100,
		},
	}
}
