package styletab

import "fmt"

// Directive names used as call-list keys and splice anchors. Bold,
// italic, and rewrite entries are list-valued (one directive per
// column); all other entries hold a single directive.
const (
	OpBody      = "body"
	OpColumns   = "columns"
	OpMissing   = "missing"
	OpBold      = "bold"
	OpItalic    = "italic"
	OpRewrite   = "rewrite"
	OpIndent    = "indent"
	OpIndent2   = "indent2"
	OpSpanners  = "spanners"
	OpRules     = "rules"
	OpFootnotes = "footnotes"
)

// Directive is one named operation against the render builder. The set
// of directive types is closed: execution is a dispatch loop over the
// variants below, not composition of opaque closures. User extensions
// go through UserDirective.
type Directive interface {
	// Name returns the call-list key the directive belongs under.
	Name() string
	apply(b *Builder) error
}

// BuildBody materializes the visible columns and their cells into the
// builder. It is always the first body-affecting directive and can
// never be excluded by filtering.
type BuildBody struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

func (d BuildBody) Name() string { return OpBody }

func (d BuildBody) apply(b *Builder) error {
	b.names = d.Columns
	b.labels = d.Columns
	b.rows = make([][]string, len(d.Rows))
	b.attrs = make([][]cellAttr, len(d.Rows))
	for i, row := range d.Rows {
		b.rows[i] = append([]string(nil), row...)
		b.attrs[i] = make([]cellAttr, len(d.Columns))
	}
	// Raw-data rewrites registered ahead of body construction land here.
	for _, rw := range b.pending {
		if err := rw.rewrite(b); err != nil {
			return err
		}
	}
	b.pending = nil
	return nil
}

// SetColumns sets the visible column labels plus the pass-through
// render arguments. Escape selects the bold/italic overlay mode the
// call list was built with.
type SetColumns struct {
	Labels  []string    `json:"labels" yaml:"labels"`
	Escape  bool        `json:"escape" yaml:"escape"`
	Caption string      `json:"caption,omitempty" yaml:"caption,omitempty"`
	Align   []Alignment `json:"align,omitempty" yaml:"align,omitempty"`
}

func (d SetColumns) Name() string { return OpColumns }

func (d SetColumns) apply(b *Builder) error {
	if b.rows == nil {
		return ErrNoBody
	}
	if len(d.Labels) != len(b.names) {
		return fmt.Errorf("set columns: %d labels for %d columns", len(d.Labels), len(b.names))
	}
	b.labels = d.Labels
	b.escape = d.Escape
	b.caption = d.Caption
	b.align = d.Align
	return nil
}

// FormatMissing replaces empty and "NA" cells with the symbol.
type FormatMissing struct {
	Symbol string `json:"symbol" yaml:"symbol"`
}

func (d FormatMissing) Name() string { return OpMissing }

func (d FormatMissing) apply(b *Builder) error {
	if b.rows == nil {
		return ErrNoBody
	}
	for _, row := range b.rows {
		for i, cell := range row {
			if cell == "" || cell == "NA" {
				row[i] = d.Symbol
			}
		}
	}
	return nil
}

// MarkCells marks one column's cells bold or italic using a boolean
// mask of length equal to the row count. Col is a 1-based visible id.
// Used in escaped mode, where the renderer applies the styling.
type MarkCells struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Col  int    `json:"col" yaml:"col"`
	Mask []bool `json:"mask" yaml:"mask"`
}

func (d MarkCells) Name() string {
	if d.Kind == Italic {
		return OpItalic
	}
	return OpBold
}

func (d MarkCells) apply(b *Builder) error {
	if b.rows == nil {
		return ErrNoBody
	}
	if d.Col < 1 || d.Col > len(b.names) {
		return fmt.Errorf("%s: column id %d out of range 1..%d", d.Name(), d.Col, len(b.names))
	}
	for i, on := range d.Mask {
		if !on || i >= len(b.attrs) {
			continue
		}
		attr := &b.attrs[i][d.Col-1]
		switch d.Kind {
		case Italic:
			attr.italic = true
		default:
			attr.bold = true
		}
	}
	return nil
}

// CellMark flags one cell in a RewriteCells directive. Row is 1-based.
type CellMark struct {
	Row    int  `json:"row" yaml:"row"`
	Bold   bool `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic bool `json:"italic,omitempty" yaml:"italic,omitempty"`
}

// RewriteCells rewrites raw cell text with literal bold/italic markers
// for the outer-joined bold and italic row sets of one column. Used in
// unescaped mode; it sits before BuildBody in the call list because it
// operates on the body's raw data, not on the rendered table.
type RewriteCells struct {
	Col   int        `json:"col" yaml:"col"`
	Marks []CellMark `json:"marks" yaml:"marks"`
}

func (d RewriteCells) Name() string { return OpRewrite }

func (d RewriteCells) apply(b *Builder) error {
	b.pending = append(b.pending, d)
	return nil
}

func (d RewriteCells) rewrite(b *Builder) error {
	if d.Col < 1 || d.Col > len(b.names) {
		return fmt.Errorf("rewrite: column id %d out of range 1..%d", d.Col, len(b.names))
	}
	for _, m := range d.Marks {
		if m.Row < 1 || m.Row > len(b.rows) {
			return fmt.Errorf("rewrite: row %d out of range 1..%d", m.Row, len(b.rows))
		}
		cell := &b.rows[m.Row-1][d.Col-1]
		if m.Italic {
			*cell = b.theme.ItalicMarker + *cell + b.theme.ItalicMarker
		}
		if m.Bold {
			*cell = b.theme.BoldMarker + *cell + b.theme.BoldMarker
		}
	}
	return nil
}

// IndentRows indents the stub column's cells at the given 1-based rows.
// Level 1 and level 2 indentation are independent directives and may
// target overlapping row sets; a cell keeps its deepest level.
type IndentRows struct {
	Level int   `json:"level" yaml:"level"`
	Rows  []int `json:"rows" yaml:"rows"`
}

func (d IndentRows) Name() string {
	if d.Level >= 2 {
		return OpIndent2
	}
	return OpIndent
}

func (d IndentRows) apply(b *Builder) error {
	if b.rows == nil {
		return ErrNoBody
	}
	for _, r := range d.Rows {
		if r < 1 || r > len(b.rows) {
			return fmt.Errorf("%s: row %d out of range 1..%d", d.Name(), r, len(b.rows))
		}
		if lvl := b.indents[r-1]; d.Level > lvl {
			if b.indents == nil {
				b.indents = make(map[int]int)
			}
			b.indents[r-1] = d.Level
		}
	}
	return nil
}

// SpanGroup is one spanning-header segment: a label covering Width
// adjacent visible columns.
type SpanGroup struct {
	Label string `json:"label" yaml:"label"`
	Width int    `json:"width" yaml:"width"`
}

// SpanHeaders sets the spanning header row. Groups are in left-to-right
// order; duplicate labels for non-adjacent groups remain distinct
// entries.
type SpanHeaders struct {
	Groups []SpanGroup `json:"groups" yaml:"groups"`
}

func (d SpanHeaders) Name() string { return OpSpanners }

func (d SpanHeaders) apply(b *Builder) error {
	if b.rows == nil {
		return ErrNoBody
	}
	total := 0
	for _, g := range d.Groups {
		total += g.Width
	}
	if total != len(b.names) {
		return fmt.Errorf("spanners: group widths cover %d of %d columns", total, len(b.names))
	}
	b.spans = d.Groups
	return nil
}

// RuleAt draws a horizontal rule after the given number of body rows.
// An entry of N means the rule sits below body row N, so 0 places it
// directly under the header. The values are one less than the 1-based
// rows the rule predicate matched.
type RuleAt struct {
	After []int `json:"after" yaml:"after"`
}

func (d RuleAt) Name() string { return OpRules }

func (d RuleAt) apply(b *Builder) error {
	if b.rows == nil {
		return ErrNoBody
	}
	if b.rules == nil {
		b.rules = make(map[int]bool)
	}
	for _, n := range d.After {
		b.rules[n] = true
	}
	return nil
}

// AttachFootnotes attaches the ordered, de-duplicated footnote list.
type AttachFootnotes struct {
	Notes []string `json:"notes" yaml:"notes"`
}

func (d AttachFootnotes) Name() string { return OpFootnotes }

func (d AttachFootnotes) apply(b *Builder) error {
	b.notes = append(b.notes, d.Notes...)
	return nil
}

// UserDirective is a caller-supplied directive spliced into the call
// list at a named anchor. Its error, if any, propagates unmodified.
type UserDirective struct {
	Label string               `json:"label" yaml:"label"`
	Fn    func(*Builder) error `json:"-" yaml:"-"`
}

func (d UserDirective) Name() string { return d.Label }

func (d UserDirective) apply(b *Builder) error { return d.Fn(b) }
