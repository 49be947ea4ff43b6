package styletab

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// CallList is the ordered mapping from directive name to the directives
// executed under that name. Entry order is execution order. Names are
// unique among entries; an entry may hold several directives (one per
// column for bold, italic, and rewrite overlays).
type CallList struct {
	entries []callEntry
	theme   Theme
}

type callEntry struct {
	name string
	dirs []Directive
}

// Names returns the entry names in execution order.
func (c *CallList) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.name
	}
	return out
}

// At returns the directives stored under name.
func (c *CallList) At(name string) []Directive {
	for _, e := range c.entries {
		if e.name == name {
			return e.dirs
		}
	}
	return nil
}

// Directives flattens the list into execution order.
func (c *CallList) Directives() []Directive {
	var out []Directive
	for _, e := range c.entries {
		out = append(out, e.dirs...)
	}
	return out
}

func (c *CallList) append(name string, dirs ...Directive) {
	if len(dirs) == 0 {
		return
	}
	for i := range c.entries {
		if c.entries[i].name == name {
			c.entries[i].dirs = append(c.entries[i].dirs, dirs...)
			return
		}
	}
	c.entries = append(c.entries, callEntry{name: name, dirs: dirs})
}

// InsertAfter splices a directive in as a new entry directly after the
// anchor entry. An unknown anchor is a configuration error.
func (c *CallList) InsertAfter(anchor, name string, d Directive) error {
	for i, e := range c.entries {
		if e.name == anchor {
			c.entries = slices.Insert(c.entries, i+1, callEntry{name: name, dirs: []Directive{d}})
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAnchor, anchor)
}

// filter keeps the entries the selector chose, in the list's own order.
// The body-construction entry survives any selection.
func (c *CallList) filter(sel Selector) {
	if sel == nil {
		return
	}
	keep := sel(c.Names())
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.name == OpBody || slices.Contains(keep, e.name) {
			kept = append(kept, e)
		}
	}
	c.entries = kept
}

// Render executes the call list against a fresh builder and renders
// the result to w. Any directive error propagates unmodified; there is
// no partial output on failure.
func (c *CallList) Render(w io.Writer, f Format) error {
	b := NewBuilder(c.theme)
	for _, d := range c.Directives() {
		if err := d.apply(b); err != nil {
			return err
		}
	}
	return b.render(w, f)
}

// callDump is the serialized shape of one call-list entry.
type callDump struct {
	Name string    `json:"name" yaml:"name"`
	Call Directive `json:"call" yaml:"call"`
}

// Dump writes the unevaluated call list as JSON or YAML: one record
// per directive with its name and argument shape. No rendering happens.
func (c *CallList) Dump(w io.Writer, f Format) error {
	var dump []callDump
	for _, e := range c.entries {
		for _, d := range e.dirs {
			dump = append(dump, callDump{Name: e.name, Call: d})
		}
	}
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dump)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(dump); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: call lists dump as %q or %q", ErrUnsupportedFormat, JSON, YAML)
	}
}
