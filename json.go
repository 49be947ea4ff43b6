package styletab

import (
	"encoding/json"
	"io"
)

// document is the structured shape of a rendered table for the JSON and
// YAML formats: display labels and cells after missing-value formatting
// and indentation, plus the header metadata a consumer needs to lay the
// table out itself.
type document struct {
	Caption   string      `json:"caption,omitempty" yaml:"caption,omitempty"`
	Spanners  []SpanGroup `json:"spanners,omitempty" yaml:"spanners,omitempty"`
	Columns   []string    `json:"columns" yaml:"columns"`
	Rows      [][]string  `json:"rows" yaml:"rows"`
	Rules     []int       `json:"rules,omitempty" yaml:"rules,omitempty"`
	Footnotes []string    `json:"footnotes,omitempty" yaml:"footnotes,omitempty"`
}

func (b *Builder) document() document {
	doc := document{
		Caption:   b.caption,
		Spanners:  b.spans,
		Columns:   b.labels,
		Rows:      b.displayRows(),
		Footnotes: b.notes,
	}
	for n := range len(b.rows) + 1 {
		if b.rules[n] {
			doc.Rules = append(doc.Rules, n)
		}
	}
	return doc
}

func renderJSON(w io.Writer, b *Builder) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b.document())
}
