package styletab

import "strings"

// stripMarkers returns a copy of cols with the bold marker removed from
// display labels and spanning-header labels. The removal is a literal
// substring deletion, not markdown parsing, and is idempotent.
func stripMarkers(cols []Column, marker string) []Column {
	if marker == "" {
		return cols
	}
	out := make([]Column, len(cols))
	for i, c := range cols {
		c.Label = strings.ReplaceAll(c.Label, marker, "")
		c.Span = strings.ReplaceAll(c.Span, marker, "")
		out[i] = c
	}
	return out
}

// visibleColumns returns the non-hidden columns in display order.
func visibleColumns(cols []Column) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if !c.Hide {
			out = append(out, c)
		}
	}
	return out
}

// visibleIDs assigns 1-based visible ids to non-hidden columns in
// display order. Hidden columns get no entry, so id lookup doubles as
// the "is this column addressable" check for rendering operations that
// are blind to hidden columns.
func visibleIDs(cols []Column) map[string]int {
	ids := make(map[string]int)
	id := 0
	for _, c := range cols {
		if c.Hide {
			continue
		}
		id++
		ids[c.Name] = id
	}
	return ids
}
