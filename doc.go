// Package styletab converts styled summary tables into rendered output.
//
// A [Table] is a body of already-formatted cell strings plus a styling
// descriptor: display labels, spanning headers, bold/italic and indent
// annotations, horizontal-rule positions, and footnotes. [Convert]
// translates the descriptor into an ordered [CallList] of named render
// directives, and [Write] executes the list against a render builder to
// produce output in one of the supported formats.
//
// # Formats
//
// Supported formats are Text (runewidth-aware terminal table with ANSI
// styling), HTML, Markdown, CSV, TSV, JSON, and YAML. Use [ParseFormat]
// to convert a CLI flag string into a [Format]:
//
//	f, err := styletab.ParseFormat(flagValue)
//	styletab.Write(os.Stdout, f, tbl)
//
// # Directives
//
// Conversion produces one call-list entry per styling concern, keyed by
// the Op* constants: body construction (always first, never filtered
// out), column labels, missing-value formatting, bold/italic overlays,
// indentation, spanning headers, rules, and footnotes. The unevaluated
// list can be inspected or serialized:
//
//	calls, _ := styletab.Convert(tbl)
//	calls.Dump(os.Stdout, styletab.JSON)
//
// # Overlay modes
//
// The escape toggle selects how bold/italic annotations reach the
// output. In escaped mode (the default) each annotated column gets a
// boolean row mask and the renderer applies the styling in its own
// vocabulary, such as ANSI codes for Text or tags for HTML. With
// WithEscape(false) the raw cell text is instead rewritten with literal
// markers before body construction. Exactly one of the two modes is
// active per conversion.
//
// # Filtering and splicing
//
// WithInclude filters the call list through a [Selector]; the
// body-construction entry always survives. WithDirective splices a
// user directive in after a named anchor, failing with
// [ErrUnknownAnchor] if the anchor is not present.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrUnknownAnchor]: splice anchor not present in the call list
//   - [ErrNoBody]: a directive ran before body construction
package styletab
