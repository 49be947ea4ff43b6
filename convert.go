package styletab

import "sort"

type splice struct {
	anchor string
	name   string
	dir    Directive
}

type config struct {
	include Selector
	strip   bool
	missing bool
	escape  bool
	theme   Theme
	caption string
	align   []Alignment
	inserts []splice
}

// Option configures a conversion.
type Option func(*config)

// WithInclude filters the call list through sel. The body-construction
// entry is kept regardless of the selection.
func WithInclude(sel Selector) Option {
	return func(c *config) { c.include = sel }
}

// WithStripMarkers removes the theme's bold marker from column labels
// and spanning-header labels before any directive is built.
func WithStripMarkers() Option {
	return func(c *config) { c.strip = true }
}

// WithMissing enables missing-value formatting: empty and "NA" cells
// render as the theme's missing symbol.
func WithMissing() Option {
	return func(c *config) { c.missing = true }
}

// WithEscape selects the bold/italic overlay mode. When escape is true
// (the default) overlays mark cells with boolean masks and renderers
// apply the styling. When false, overlays rewrite raw cell text with
// literal markers before body construction.
func WithEscape(escape bool) Option {
	return func(c *config) { c.escape = escape }
}

// WithTheme threads an explicit theme through the conversion.
func WithTheme(t Theme) Option {
	return func(c *config) { c.theme = t }
}

// WithCaption overrides the table's caption.
func WithCaption(caption string) Option {
	return func(c *config) { c.caption = caption }
}

// WithAlignments sets per-column alignment for the visible columns.
func WithAlignments(align ...Alignment) Option {
	return func(c *config) { c.align = align }
}

// WithDirective splices a user directive in directly after the anchor
// entry. A name not present in the filtered call list fails Convert
// with ErrUnknownAnchor.
func WithDirective(anchor, name string, fn func(*Builder) error) Option {
	return func(c *config) {
		c.inserts = append(c.inserts, splice{anchor: anchor, name: name, dir: UserDirective{Label: name, Fn: fn}})
	}
}

// Convert builds the call list for t: body construction, column
// labels, missing-value formatting, and the style overlays, filtered by
// the inclusion selector and spliced with any user directives. The list
// is returned unevaluated; Render executes it.
func Convert(t *Table, opts ...Option) (*CallList, error) {
	cfg := config{escape: true, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cols := t.Columns
	if len(cols) == 0 {
		cols = make([]Column, len(t.Body.Columns))
		for i, name := range t.Body.Columns {
			cols[i] = Column{Name: name, Label: name}
		}
	}
	if cfg.strip {
		cols = stripMarkers(cols, cfg.theme.BoldMarker)
	}
	visible := visibleColumns(cols)
	ids := visibleIDs(cols)

	list := &CallList{theme: cfg.theme}

	if !cfg.escape {
		for _, d := range buildRewrites(t.Formats, ids, t.Body.NumRows()) {
			list.append(OpRewrite, d)
		}
	}

	names := make([]string, len(visible))
	labels := make([]string, len(visible))
	rows := make([][]string, t.Body.NumRows())
	for i, c := range visible {
		names[i] = c.Name
		labels[i] = c.Label
	}
	for i := range t.Body.Rows {
		row := make([]string, len(visible))
		for j, c := range visible {
			row[j] = t.Body.Cell(i, c.Name)
		}
		rows[i] = row
	}
	list.append(OpBody, BuildBody{Columns: names, Rows: rows})

	caption := t.Caption
	if cfg.caption != "" {
		caption = cfg.caption
	}
	list.append(OpColumns, SetColumns{Labels: labels, Escape: cfg.escape, Caption: caption, Align: cfg.align})

	if cfg.missing {
		list.append(OpMissing, FormatMissing{Symbol: cfg.theme.Missing})
	}

	if cfg.escape {
		for _, d := range buildMarks(t.Formats, Bold, ids, t.Body.NumRows()) {
			list.append(OpBold, d)
		}
		for _, d := range buildMarks(t.Formats, Italic, ids, t.Body.NumRows()) {
			list.append(OpItalic, d)
		}
	}

	if rows := indentRows(t.Formats, Indent); len(rows) > 0 {
		list.append(OpIndent, IndentRows{Level: 1, Rows: rows})
	}
	if rows := indentRows(t.Formats, Indent2); len(rows) > 0 {
		list.append(OpIndent2, IndentRows{Level: 2, Rows: rows})
	}

	spanned := false
	for _, c := range visible {
		if c.Span != "" {
			spanned = true
			break
		}
	}
	if spanned {
		list.append(OpSpanners, SpanHeaders{Groups: spanGroups(visible)})
	}

	if t.Rule != nil {
		mask := t.Rule(t.Body)
		var after []int
		for i, on := range mask {
			if on {
				after = append(after, i)
			}
		}
		if len(after) > 0 {
			list.append(OpRules, RuleAt{After: after})
		}
	}

	if notes := dedupeNotes(t.Footnotes); len(notes) > 0 {
		list.append(OpFootnotes, AttachFootnotes{Notes: notes})
	}

	list.filter(cfg.include)

	for _, s := range cfg.inserts {
		if err := list.InsertAfter(s.anchor, s.name, s.dir); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// buildMarks aggregates the annotations of one kind into per-column
// boolean-mask directives, in visible-id order. Annotations naming a
// hidden or unknown column carry no id and are skipped.
func buildMarks(formats []TextFormat, kind Kind, ids map[string]int, nrows int) []Directive {
	masks := make(map[int][]bool)
	for _, f := range formats {
		if f.Kind != kind {
			continue
		}
		id, ok := ids[f.Column]
		if !ok {
			continue
		}
		mask := masks[id]
		if mask == nil {
			mask = make([]bool, nrows)
			masks[id] = mask
		}
		for _, r := range f.Rows {
			if r >= 1 && r <= nrows {
				mask[r-1] = true
			}
		}
	}
	cols := make([]int, 0, len(masks))
	for id := range masks {
		cols = append(cols, id)
	}
	sort.Ints(cols)
	var out []Directive
	for _, id := range cols {
		out = append(out, MarkCells{Kind: kind, Col: id, Mask: masks[id]})
	}
	return out
}

// buildRewrites fully outer-joins the bold and italic row sets per
// column: a row present in either set gets a mark with the missing
// flag false. One directive per column, in visible-id order.
func buildRewrites(formats []TextFormat, ids map[string]int, nrows int) []Directive {
	type flags struct{ bold, italic bool }
	joined := make(map[int]map[int]flags)
	for _, f := range formats {
		if f.Kind != Bold && f.Kind != Italic {
			continue
		}
		id, ok := ids[f.Column]
		if !ok {
			continue
		}
		if joined[id] == nil {
			joined[id] = make(map[int]flags)
		}
		for _, r := range f.Rows {
			if r < 1 || r > nrows {
				continue
			}
			fl := joined[id][r]
			if f.Kind == Bold {
				fl.bold = true
			} else {
				fl.italic = true
			}
			joined[id][r] = fl
		}
	}
	cols := make([]int, 0, len(joined))
	for id := range joined {
		cols = append(cols, id)
	}
	sort.Ints(cols)
	var out []Directive
	for _, id := range cols {
		rows := make([]int, 0, len(joined[id]))
		for r := range joined[id] {
			rows = append(rows, r)
		}
		sort.Ints(rows)
		marks := make([]CellMark, len(rows))
		for i, r := range rows {
			fl := joined[id][r]
			marks[i] = CellMark{Row: r, Bold: fl.bold, Italic: fl.italic}
		}
		out = append(out, RewriteCells{Col: id, Marks: marks})
	}
	return out
}

// indentRows unions the annotated rows of one indent kind, sorted and
// de-duplicated. Indentation always targets the stub column, so the
// annotations' column field is not consulted.
func indentRows(formats []TextFormat, kind Kind) []int {
	seen := make(map[int]bool)
	for _, f := range formats {
		if f.Kind != kind {
			continue
		}
		for _, r := range f.Rows {
			if r >= 1 {
				seen[r] = true
			}
		}
	}
	rows := make([]int, 0, len(seen))
	for r := range seen {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}
