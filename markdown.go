package styletab

import (
	"fmt"
	"io"
	"strings"
)

func renderMarkdown(w io.Writer, b *Builder) error {
	rows := b.displayRows()

	// In escaped mode the masks carry the styling, so the markers are
	// applied here; in unescaped mode the cell text already carries
	// them from the rewrite directives.
	if b.escape {
		styled := make([][]string, len(rows))
		for i, row := range rows {
			styled[i] = append([]string(nil), row...)
			for j := range styled[i] {
				attr := b.attrs[i][j]
				if attr.italic {
					styled[i][j] = b.theme.ItalicMarker + styled[i][j] + b.theme.ItalicMarker
				}
				if attr.bold {
					styled[i][j] = b.theme.BoldMarker + styled[i][j] + b.theme.BoldMarker
				}
			}
		}
		rows = styled
	}

	widths := textWidths(b.labels, rows)
	for i := range widths {
		// Minimum 3 for the alignment markers.
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	// Markdown cells pad and separate like bordered cells, so the
	// spanning row reuses the bordered group widths.
	if len(b.spans) > 0 {
		gw := spanWidths(b.spans, widths, true)
		parts := make([]string, len(b.spans))
		for i, g := range b.spans {
			parts[i] = alignCell(strings.TrimSpace(g.Label), gw[i], AlignCenter)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(parts, " | ")); err != nil {
			return err
		}
	}

	if err := writeMarkdownRow(w, b, b.labels, widths); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch b.alignment(i) {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, b, row, widths); err != nil {
			return err
		}
	}

	if b.caption != "" || len(b.notes) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if b.caption != "" {
		if _, err := fmt.Fprintln(w, b.caption); err != nil {
			return err
		}
	}
	for i, note := range b.notes {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, note); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, b *Builder, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, b.alignment(i))
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
