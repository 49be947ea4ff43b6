package styletab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkersIdempotent(t *testing.T) {
	t.Parallel()
	cols := []Column{
		{Name: "a", Label: "**Bold label**", Span: "**Group**"},
		{Name: "b", Label: "plain"},
	}
	once := stripMarkers(cols, "**")
	twice := stripMarkers(once, "**")
	assert.Equal(t, once, twice)
	assert.Equal(t, "Bold label", once[0].Label)
	assert.Equal(t, "Group", once[0].Span)
	// A label with no marker is returned unchanged.
	assert.Equal(t, "plain", once[1].Label)
	// Input is not mutated.
	assert.Equal(t, "**Bold label**", cols[0].Label)
}

func TestStripMarkersEmptyMarker(t *testing.T) {
	t.Parallel()
	cols := []Column{{Name: "a", Label: "x"}}
	assert.Equal(t, cols, stripMarkers(cols, ""))
}

func TestVisibleIDsContiguous(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cols []Column
		want map[string]int
	}{
		"no hidden": {
			cols: []Column{{Name: "a"}, {Name: "b"}},
			want: map[string]int{"a": 1, "b": 2},
		},
		"hidden in the middle": {
			cols: []Column{{Name: "a"}, {Name: "x", Hide: true}, {Name: "b"}},
			want: map[string]int{"a": 1, "b": 2},
		},
		"all hidden": {
			cols: []Column{{Name: "x", Hide: true}},
			want: map[string]int{},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, visibleIDs(tt.cols))
		})
	}
}

func TestSpanGroupsRunLength(t *testing.T) {
	t.Parallel()
	cols := []Column{
		{Name: "c1", Span: "A"},
		{Name: "c2", Span: "A"},
		{Name: "c3", Span: "B"},
		{Name: "c4", Span: "A"},
	}
	got := spanGroups(cols)
	// Non-adjacent equal labels stay separate groups.
	assert.Equal(t, []SpanGroup{
		{Label: "A", Width: 2},
		{Label: "B", Width: 1},
		{Label: "A", Width: 1},
	}, got)
	total := 0
	for _, g := range got {
		total += g.Width
	}
	assert.Equal(t, len(cols), total)
}

func TestSpanGroupsPlaceholder(t *testing.T) {
	t.Parallel()
	cols := []Column{
		{Name: "c1"},
		{Name: "c2"},
		{Name: "c3", Span: "G"},
	}
	assert.Equal(t, []SpanGroup{
		{Label: " ", Width: 2},
		{Label: "G", Width: 1},
	}, spanGroups(cols))
}

func TestDedupeNotes(t *testing.T) {
	t.Parallel()
	got := dedupeNotes([]string{"b", "a", "b", "", "c", "a"})
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestIndentRowsUnion(t *testing.T) {
	t.Parallel()
	formats := []TextFormat{
		{Kind: Indent, Column: "label", Rows: []int{3, 1}},
		{Kind: Indent, Column: "other", Rows: []int{3, 5}},
		{Kind: Indent2, Column: "label", Rows: []int{2}},
	}
	assert.Equal(t, []int{1, 3, 5}, indentRows(formats, Indent))
	assert.Equal(t, []int{2}, indentRows(formats, Indent2))
}

func TestBuildMarksAggregates(t *testing.T) {
	t.Parallel()
	ids := map[string]int{"a": 1, "b": 2}
	formats := []TextFormat{
		{Kind: Bold, Column: "b", Rows: []int{1}},
		{Kind: Bold, Column: "a", Rows: []int{2}},
		{Kind: Bold, Column: "b", Rows: []int{3}},
		{Kind: Bold, Column: "hidden", Rows: []int{1}},
		{Kind: Italic, Column: "a", Rows: []int{1}},
	}
	dirs := buildMarks(formats, Bold, ids, 3)
	assert.Equal(t, []Directive{
		MarkCells{Kind: Bold, Col: 1, Mask: []bool{false, true, false}},
		MarkCells{Kind: Bold, Col: 2, Mask: []bool{true, false, true}},
	}, dirs)
}

func TestRuleAboveOutOfRange(t *testing.T) {
	t.Parallel()
	b := Body{Columns: []string{"a"}, Rows: []map[string]string{{"a": "1"}, {"a": "2"}}}
	mask := RuleAbove(0, 2, 9)(b)
	assert.Equal(t, []bool{false, true}, mask)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "bold", Bold.String())
	assert.Equal(t, "indent2", Indent2.String())
	for _, s := range []string{"bold", "italic", "indent", "indent2"} {
		k, err := ParseKind(s)
		assert.NoError(t, err)
		assert.Equal(t, s, k.String())
	}
	_, err := ParseKind("underline")
	assert.Error(t, err)
}
