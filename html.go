package styletab

import (
	"fmt"
	"html"
	"io"
	"strings"
)

func renderHTML(w io.Writer, b *Builder) error {
	rows := b.displayRows()

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if b.caption != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(b.caption)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if len(b.spans) > 0 {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, g := range b.spans {
			label := html.EscapeString(strings.TrimSpace(g.Label))
			if _, err := fmt.Fprintf(w, "      <th colspan=\"%d\">%s</th>\n", g.Width, label); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, label := range b.labels {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", htmlAlign(b.alignment(i)), html.EscapeString(label)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for i, row := range rows {
		// Rules render as a top border on the row below the rule line.
		tr := "    <tr>"
		if b.rules[i] {
			tr = `    <tr style="border-top: 1px solid">`
		}
		if _, err := fmt.Fprintln(w, tr); err != nil {
			return err
		}
		for j, cell := range row {
			text := html.EscapeString(cell)
			attr := b.attrs[i][j]
			if attr.italic {
				text = "<em>" + text + "</em>"
			}
			if attr.bold {
				text = "<strong>" + text + "</strong>"
			}
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", htmlAlign(b.alignment(j)), text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	if len(b.notes) > 0 {
		if _, err := fmt.Fprintln(w, "  <tfoot>"); err != nil {
			return err
		}
		for i, note := range b.notes {
			if _, err := fmt.Fprintf(w, "    <tr><td colspan=\"%d\"><sup>%d</sup> %s</td></tr>\n",
				len(b.labels), i+1, html.EscapeString(note)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "  </tfoot>"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func htmlAlign(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
