package styletab

import "fmt"

// Body holds the table data: a fixed column order and rows of
// already-formatted cell strings keyed by column name. Row order is
// display order.
type Body struct {
	Columns []string
	Rows    []map[string]string
}

// NumRows returns the number of rows.
func (b Body) NumRows() int { return len(b.Rows) }

// Cell returns the cell at 0-based row index for the named column.
// Missing cells are empty strings.
func (b Body) Cell(row int, col string) string {
	if row < 0 || row >= len(b.Rows) {
		return ""
	}
	return b.Rows[row][col]
}

// Column describes how one body column is displayed. A column with
// Hide set is excluded from rendering and never receives a visible id.
// An empty Span means the column belongs to no spanning-header group.
type Column struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Label string `json:"label" yaml:"label" toml:"label"`
	Span  string `json:"span,omitempty" yaml:"span,omitempty" toml:"span"`
	Hide  bool   `json:"hide,omitempty" yaml:"hide,omitempty" toml:"hide"`
}

// Kind identifies a text-format annotation.
type Kind int

const (
	Bold Kind = iota
	Italic
	Indent
	Indent2
)

// String returns the annotation kind name.
func (k Kind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Indent:
		return "indent"
	case Indent2:
		return "indent2"
	default:
		return "unknown"
	}
}

// ParseKind parses an annotation kind name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bold":
		return Bold, nil
	case "italic":
		return Italic, nil
	case "indent":
		return Indent, nil
	case "indent2":
		return Indent2, nil
	}
	return 0, fmt.Errorf("unknown format kind %q", s)
}

// TextFormat annotates a set of body rows in one column with a format
// kind. Rows are 1-based positions into the body as materialized.
// Annotations naming a hidden or unknown column are skipped.
type TextFormat struct {
	Kind   Kind
	Column string
	Rows   []int
}

// RulePredicate selects body rows above which a horizontal rule is
// drawn. It returns a boolean mask of length Body.NumRows().
type RulePredicate func(b Body) []bool

// RuleAbove returns a predicate that is true at the given 1-based rows.
func RuleAbove(rows ...int) RulePredicate {
	return func(b Body) []bool {
		mask := make([]bool, b.NumRows())
		for _, r := range rows {
			if r >= 1 && r <= len(mask) {
				mask[r-1] = true
			}
		}
		return mask
	}
}

// Table is a body plus its styling descriptor. Footnotes may contain
// duplicates; conversion de-duplicates them preserving first-occurrence
// order.
type Table struct {
	Body      Body
	Columns   []Column
	Formats   []TextFormat
	Rule      RulePredicate
	Footnotes []string
	Caption   string
}
