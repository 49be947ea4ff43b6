package styletab

import (
	"fmt"
	"io"
)

// cellAttr carries the styling flags the escaped-mode overlays set on
// one cell.
type cellAttr struct {
	bold   bool
	italic bool
}

// Builder accumulates the render state a call list builds up:
// materialized cells, labels, per-cell styling, spanning headers, rule
// positions, and footnotes. A builder is used for exactly one
// execution; Render creates a fresh one per call.
type Builder struct {
	theme   Theme
	names   []string
	labels  []string
	rows    [][]string
	attrs   [][]cellAttr
	indents map[int]int
	spans   []SpanGroup
	rules   map[int]bool
	notes   []string
	caption string
	escape  bool
	align   []Alignment
	pending []RewriteCells
}

// NewBuilder returns an empty builder using the given theme.
func NewBuilder(theme Theme) *Builder {
	return &Builder{theme: theme, escape: true}
}

// NumRows returns the number of materialized body rows.
func (b *Builder) NumRows() int { return len(b.rows) }

// NumCols returns the number of visible columns.
func (b *Builder) NumCols() int { return len(b.names) }

// Cell returns the cell at 0-based row and column indices.
func (b *Builder) Cell(row, col int) string {
	if row < 0 || row >= len(b.rows) || col < 0 || col >= len(b.rows[row]) {
		return ""
	}
	return b.rows[row][col]
}

// SetCell overwrites the cell at 0-based row and column indices.
// Intended for user directives that post-process materialized cells.
func (b *Builder) SetCell(row, col int, text string) error {
	if row < 0 || row >= len(b.rows) || col < 0 || col >= len(b.rows[row]) {
		return fmt.Errorf("set cell: position (%d,%d) out of range", row, col)
	}
	b.rows[row][col] = text
	return nil
}

// SetCaption overwrites the caption.
func (b *Builder) SetCaption(caption string) { b.caption = caption }

// AddFootnote appends a footnote line.
func (b *Builder) AddFootnote(note string) { b.notes = append(b.notes, note) }

// displayRows returns the rows with indent prefixes applied to the
// stub column. Styling markers are not applied here; each renderer
// applies cell attributes in its own vocabulary.
func (b *Builder) displayRows() [][]string {
	if len(b.indents) == 0 {
		return b.rows
	}
	out := make([][]string, len(b.rows))
	for i, row := range b.rows {
		out[i] = append([]string(nil), row...)
		if lvl, ok := b.indents[i]; ok && len(out[i]) > 0 {
			prefix := ""
			for range lvl {
				prefix += b.theme.IndentPrefix
			}
			out[i][0] = prefix + out[i][0]
		}
	}
	return out
}

// alignment returns the alignment for 0-based column index.
func (b *Builder) alignment(col int) Alignment {
	if col < len(b.align) {
		return b.align[col]
	}
	return AlignLeft
}

func (b *Builder) render(w io.Writer, f Format) error {
	if b.rows == nil {
		return ErrNoBody
	}
	switch f {
	case Text:
		return renderText(w, b)
	case HTML:
		return renderHTML(w, b)
	case Markdown:
		return renderMarkdown(w, b)
	case CSV:
		return renderSeparated(w, b, ',')
	case TSV:
		return renderSeparated(w, b, '\t')
	case JSON:
		return renderJSON(w, b)
	case YAML:
		return renderYAML(w, b)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
