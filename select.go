package styletab

import "slices"

// Selector chooses a subset of directive names from the names actually
// present in a call list. The call list's own order is preserved
// regardless of the order a selector returns.
type Selector func(names []string) []string

// All selects every directive.
func All() Selector {
	return func(names []string) []string { return names }
}

// Only selects the named directives. Unknown names are ignored.
func Only(names ...string) Selector {
	return func(available []string) []string {
		var out []string
		for _, n := range available {
			if slices.Contains(names, n) {
				out = append(out, n)
			}
		}
		return out
	}
}

// Except selects every directive but the named ones.
func Except(names ...string) Selector {
	return func(available []string) []string {
		var out []string
		for _, n := range available {
			if !slices.Contains(names, n) {
				out = append(out, n)
			}
		}
		return out
	}
}
