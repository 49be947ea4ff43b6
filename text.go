package styletab

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// Cell styling is applied after alignment, so ANSI codes never affect
// width calculations.
var (
	textBold       = lipgloss.NewStyle().Bold(true)
	textItalic     = lipgloss.NewStyle().Italic(true)
	textBoldItalic = lipgloss.NewStyle().Bold(true).Italic(true)
)

func styleText(s string, attr cellAttr) string {
	switch {
	case attr.bold && attr.italic:
		return textBoldItalic.Render(s)
	case attr.bold:
		return textBold.Render(s)
	case attr.italic:
		return textItalic.Render(s)
	default:
		return s
	}
}

func renderText(w io.Writer, b *Builder) error {
	rows := b.displayRows()
	widths := textWidths(b.labels, rows)

	var err error
	if b.theme.Border == BorderNone {
		err = renderPlainText(w, b, rows, widths)
	} else {
		err = renderBorderedText(w, b, rows, widths)
	}
	if err != nil {
		return err
	}
	return renderTrailer(w, b)
}

// renderTrailer writes the caption and numbered footnotes below the
// table.
func renderTrailer(w io.Writer, b *Builder) error {
	if b.caption != "" {
		if _, err := fmt.Fprintln(w, b.caption); err != nil {
			return err
		}
	}
	for i, note := range b.notes {
		if _, err := fmt.Fprintf(w, "%d %s\n", i+1, note); err != nil {
			return err
		}
	}
	return nil
}

func textWidths(labels []string, rows [][]string) []int {
	widths := make([]int, len(labels))
	for i, l := range labels {
		widths[i] = runewidth.StringWidth(l)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// spanWidths returns the display width of each spanning group: the
// covered column widths plus the padding and separators the group
// absorbs. Bordered cells carry 2 padding chars and 1 separator;
// plain cells are separated by 2 spaces.
func spanWidths(groups []SpanGroup, widths []int, bordered bool) []int {
	out := make([]int, len(groups))
	col := 0
	for i, g := range groups {
		total := 0
		for range g.Width {
			total += widths[col]
			col++
		}
		if bordered {
			total += 3*g.Width - 3
		} else {
			total += 2 * (g.Width - 1)
		}
		out[i] = total
	}
	return out
}

// --- Plain text (BorderNone) ---

func renderPlainText(w io.Writer, b *Builder, rows [][]string, widths []int) error {
	if len(b.spans) > 0 {
		gw := spanWidths(b.spans, widths, false)
		parts := make([]string, len(b.spans))
		for i, g := range b.spans {
			parts[i] = alignCell(strings.TrimSpace(g.Label), gw[i], AlignCenter)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " ")); err != nil {
			return err
		}
	}
	if err := writePlainRow(w, b, b.labels, widths, -1); err != nil {
		return err
	}
	if err := writePlainSep(w, widths); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writePlainRow(w, b, row, widths, i); err != nil {
			return err
		}
		// A rule after row 0 coincides with the header separator.
		if b.rules[i+1] && i+1 < len(rows) {
			if err := writePlainSep(w, widths); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

// writePlainRow writes one space-separated row. row is the 0-based body
// row index for attribute lookup, or -1 for the header.
func writePlainRow(w io.Writer, b *Builder, cells []string, widths []int, row int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		formatted := alignCell(cell, width, b.alignment(i))
		if row >= 0 {
			formatted = styleText(formatted, b.attrs[row][i])
		}
		parts[i] = formatted
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

// --- Bordered text ---

func renderBorderedText(w io.Writer, b *Builder, rows [][]string, widths []int) error {
	bc := borderSets[b.theme.Border]

	if len(b.spans) > 0 {
		if err := drawSpanHead(w, b, bc, widths); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if err := drawBorderedRow(w, b, b.labels, widths, bc.vertical, -1); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}

	for i, row := range rows {
		if err := drawBorderedRow(w, b, row, widths, bc.vertical, i); err != nil {
			return err
		}
		// A rule after row 0 coincides with the header separator.
		if b.rules[i+1] && i+1 < len(rows) {
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
				return err
			}
		}
	}

	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// drawSpanHead draws the spanning header row: a top border broken only
// at group boundaries, the centered group labels, and the transition
// line introducing the per-column verticals.
func drawSpanHead(w io.Writer, b *Builder, bc borderChars, widths []int) error {
	gw := spanWidths(b.spans, widths, true)

	var top strings.Builder
	top.WriteString(bc.topLeft)
	for i, width := range gw {
		top.WriteString(strings.Repeat(bc.horizontal, width+2))
		if i < len(gw)-1 {
			top.WriteString(bc.topTee)
		}
	}
	top.WriteString(bc.topRight)
	if _, err := fmt.Fprintln(w, top.String()); err != nil {
		return err
	}

	var row strings.Builder
	row.WriteString(bc.vertical)
	for i, g := range b.spans {
		row.WriteString(" ")
		row.WriteString(alignCell(strings.TrimSpace(g.Label), gw[i], AlignCenter))
		row.WriteString(" ")
		if i < len(b.spans)-1 {
			row.WriteString(bc.vertical)
		}
	}
	row.WriteString(bc.vertical)
	if _, err := fmt.Fprintln(w, row.String()); err != nil {
		return err
	}

	// Column boundaries inside a group open with a tee; boundaries
	// between groups continue the vertical above with a cross.
	groupEnd := make(map[int]bool)
	col := 0
	for _, g := range b.spans {
		col += g.Width
		groupEnd[col-1] = true
	}
	var mid strings.Builder
	mid.WriteString(bc.leftTee)
	for i, width := range widths {
		mid.WriteString(strings.Repeat(bc.horizontal, width+2))
		if i < len(widths)-1 {
			if groupEnd[i] {
				mid.WriteString(bc.cross)
			} else {
				mid.WriteString(bc.topTee)
			}
		}
	}
	mid.WriteString(bc.rightTee)
	_, err := fmt.Fprintln(w, mid.String())
	return err
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// drawBorderedRow writes one bordered row. row is the 0-based body row
// index for attribute lookup, or -1 for the header.
func drawBorderedRow(w io.Writer, b *Builder, cells []string, widths []int, vert string, row int) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		formatted := alignCell(cell, width, b.alignment(i))
		if row >= 0 {
			formatted = styleText(formatted, b.attrs[row][i])
		}
		sb.WriteString(formatted)
		sb.WriteString(" ")
		sb.WriteString(vert)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
