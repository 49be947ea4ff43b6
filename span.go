package styletab

// spanPlaceholder stands in for "no group" so that ungrouped columns
// render as a blank segment in the spanning header row.
const spanPlaceholder = " "

// spanGroups run-length groups adjacent visible columns sharing an
// identical spanning label. Non-adjacent equal labels stay separate
// groups, so duplicate labels are legal in the result. The total width
// across groups always equals len(visible).
func spanGroups(visible []Column) []SpanGroup {
	var groups []SpanGroup
	for _, c := range visible {
		label := c.Span
		if label == "" {
			label = spanPlaceholder
		}
		if n := len(groups); n > 0 && groups[n-1].Label == label {
			groups[n-1].Width++
			continue
		}
		groups = append(groups, SpanGroup{Label: label, Width: 1})
	}
	return groups
}
