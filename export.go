package styletab

import (
	"encoding/csv"
	"io"
)

// renderSeparated exports the materialized body as delimiter-separated
// values: label row first, then the display rows. Styling other than
// missing-value formatting and indentation does not survive export.
func renderSeparated(w io.Writer, b *Builder, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(b.labels); err != nil {
		return err
	}
	for _, row := range b.displayRows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
