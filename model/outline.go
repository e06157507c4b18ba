package model

import "fmt"

// HeadingLevel represents the hierarchical level of a heading (H1-H4)
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Major section
	HeadingLevel2                    // H2 - Section
	HeadingLevel3                    // H3 - Subsection
	HeadingLevel4                    // H4 - Minor heading
)

// String returns the wire representation of the heading level ("H1".."H4").
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	case HeadingLevel4:
		return "H4"
	default:
		return "unknown"
	}
}

// Rank returns the numeric rank used for ordering: H1=1 through H4=4.
// Unknown levels rank after all known levels.
func (l HeadingLevel) Rank() int {
	if l >= HeadingLevel1 && l <= HeadingLevel4 {
		return int(l)
	}
	return int(HeadingLevel4) + 1
}

// ParseHeadingLevel converts a wire string ("H1".."H4") back to a level.
func ParseHeadingLevel(s string) (HeadingLevel, error) {
	switch s {
	case "H1":
		return HeadingLevel1, nil
	case "H2":
		return HeadingLevel2, nil
	case "H3":
		return HeadingLevel3, nil
	case "H4":
		return HeadingLevel4, nil
	}
	return HeadingLevelUnknown, fmt.Errorf("unknown heading level %q", s)
}

// MarshalJSON encodes the level as its string form.
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes a level from its string form.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("heading level must be a JSON string, got %s", data)
	}
	parsed, err := ParseHeadingLevel(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Heading is a single detected heading. It is created by the
// classification pipeline and never mutated afterward.
type Heading struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// DocumentOutline is the final result for one document: the selected
// title (empty when no candidate qualified) and the ordered, deduplicated
// heading sequence. Outline is non-decreasing by page, and by level rank
// within a page.
type DocumentOutline struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// NewDocumentOutline returns an outline with a non-nil heading slice so
// that an empty outline serializes as [] rather than null.
func NewDocumentOutline(title string, headings []Heading) *DocumentOutline {
	if headings == nil {
		headings = []Heading{}
	}
	return &DocumentOutline{Title: title, Outline: headings}
}
