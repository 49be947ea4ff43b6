package styletab

// dedupeNotes collapses repeated footnote text, preserving
// first-occurrence order. Numbering is positional: note i renders with
// number i+1.
func dedupeNotes(notes []string) []string {
	var out []string
	seen := make(map[string]bool, len(notes))
	for _, n := range notes {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
