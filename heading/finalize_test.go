package heading

import (
	"reflect"
	"testing"

	"github.com/tsawler/contour/model"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		level model.HeadingLevel
		want  string
	}{
		{"collapse whitespace", "Funding   \t Sources", model.HeadingLevel2, "Funding Sources"},
		{"strip bullet", "• Overview", model.HeadingLevel1, "Overview"},
		{"strip dash bullet", "- Overview", model.HeadingLevel1, "Overview"},
		{"strip star bullet", "* Overview", model.HeadingLevel1, "Overview"},
		{"strip leader dots", "Scope ......... 12", model.HeadingLevel2, "Scope"},
		{"strip bare leader dots", "Scope....", model.HeadingLevel2, "Scope"},
		{"capitalize after numbering", "3. timeline overview", model.HeadingLevel2, "3. Timeline overview"},
		{"label colon normalization", "Timeline", model.HeadingLevel3, "Timeline:"},
		{"no colon for multi word", "Project Timeline", model.HeadingLevel3, "Project Timeline"},
		{"no colon for other levels", "Timeline", model.HeadingLevel2, "Timeline"},
		{"unchanged", "2.1 Intended Audience", model.HeadingLevel2, "2.1 Intended Audience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.text, tt.level); got != tt.want {
				t.Errorf("CleanText(%q, %v) = %q, want %q", tt.text, tt.level, got, tt.want)
			}
		})
	}
}

func TestFinalizeDeduplicates(t *testing.T) {
	detected := []model.Heading{
		{Level: model.HeadingLevel2, Text: "Background", Page: 2},
		{Level: model.HeadingLevel2, Text: "Background", Page: 2},
		{Level: model.HeadingLevel2, Text: "background", Page: 2}, // case-insensitive duplicate
		{Level: model.HeadingLevel2, Text: "Background", Page: 5}, // different page survives
	}

	outline := Finalize(detected)

	if len(outline) != 2 {
		t.Fatalf("Finalize kept %d headings, want 2: %v", len(outline), outline)
	}
	if outline[0].Text != "Background" || outline[0].Page != 2 {
		t.Errorf("outline[0] = %+v, want Background on page 2", outline[0])
	}
	if outline[1].Page != 5 {
		t.Errorf("outline[1].Page = %d, want 5", outline[1].Page)
	}
}

func TestFinalizeOrdering(t *testing.T) {
	detected := []model.Heading{
		{Level: model.HeadingLevel3, Text: "Late Subsection", Page: 4},
		{Level: model.HeadingLevel1, Text: "EARLY SECTION", Page: 1},
		{Level: model.HeadingLevel2, Text: "Mid Detail", Page: 1},
		{Level: model.HeadingLevel1, Text: "Major On Same Page", Page: 4},
	}

	outline := Finalize(detected)

	want := []string{"EARLY SECTION", "Mid Detail", "Major On Same Page", "Late Subsection"}
	if len(outline) != len(want) {
		t.Fatalf("Finalize kept %d headings, want %d", len(outline), len(want))
	}
	for i, text := range want {
		if outline[i].Text != text {
			t.Errorf("outline[%d].Text = %q, want %q", i, outline[i].Text, text)
		}
	}

	// Page-monotonic order with level rank as the tie-break.
	for i := 1; i < len(outline); i++ {
		prev, cur := outline[i-1], outline[i]
		if prev.Page > cur.Page {
			t.Errorf("outline not page-monotonic at %d: %+v before %+v", i, prev, cur)
		}
		if prev.Page == cur.Page && prev.Level.Rank() > cur.Level.Rank() {
			t.Errorf("outline not rank-ordered within page at %d: %+v before %+v", i, prev, cur)
		}
	}
}

func TestFinalizeDropsEmptyText(t *testing.T) {
	detected := []model.Heading{
		{Level: model.HeadingLevel1, Text: "....", Page: 0},
		{Level: model.HeadingLevel1, Text: "Kept", Page: 0},
	}

	outline := Finalize(detected)
	if len(outline) != 1 || outline[0].Text != "Kept" {
		t.Errorf("Finalize = %v, want only the Kept heading", outline)
	}
}

func TestFinalizeDeterministic(t *testing.T) {
	detected := []model.Heading{
		{Level: model.HeadingLevel2, Text: "Beta", Page: 1},
		{Level: model.HeadingLevel2, Text: "Alpha", Page: 1},
		{Level: model.HeadingLevel1, Text: "GAMMA", Page: 0},
		{Level: model.HeadingLevel3, Text: "Delta", Page: 1},
	}

	first := Finalize(detected)
	for i := 0; i < 10; i++ {
		if again := Finalize(detected); !reflect.DeepEqual(first, again) {
			t.Fatalf("Finalize not deterministic: run %d gave %v, first run gave %v", i, again, first)
		}
	}

	// Equal-rank headings on the same page keep their input order.
	if first[1].Text != "Beta" || first[2].Text != "Alpha" {
		t.Errorf("stable sort violated: %v", first)
	}
}

func TestLevelJumps(t *testing.T) {
	tests := []struct {
		name    string
		outline []model.Heading
		want    []int
	}{
		{
			name: "clean hierarchy",
			outline: []model.Heading{
				{Level: model.HeadingLevel1}, {Level: model.HeadingLevel2}, {Level: model.HeadingLevel3},
			},
			want: nil,
		},
		{
			name: "jump flagged",
			outline: []model.Heading{
				{Level: model.HeadingLevel1}, {Level: model.HeadingLevel3},
			},
			want: []int{1},
		},
		{
			name: "first heading never flagged",
			outline: []model.Heading{
				{Level: model.HeadingLevel4}, {Level: model.HeadingLevel1},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelJumps(tt.outline); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LevelJumps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelJumpsNeverRewrites(t *testing.T) {
	detected := []model.Heading{
		{Level: model.HeadingLevel1, Text: "TOP SECTION", Page: 0},
		{Level: model.HeadingLevel4, Text: "Deep Detail", Page: 1},
	}

	outline := Finalize(detected)
	if outline[1].Level != model.HeadingLevel4 {
		t.Errorf("level rewritten to %v; the classifier's level is authoritative", outline[1].Level)
	}
	if jumps := LevelJumps(outline); len(jumps) != 1 || jumps[0] != 1 {
		t.Errorf("LevelJumps = %v, want [1]", jumps)
	}
}
