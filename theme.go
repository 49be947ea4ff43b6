package styletab

// BorderStyle controls table border characters for the text format.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Theme holds the rendering constants threaded through a conversion.
// It replaces any ambient global configuration: callers that want
// different symbols pass a modified Theme via WithTheme.
type Theme struct {
	// Missing replaces empty and "NA" cells when missing-value
	// formatting is enabled.
	Missing string `toml:"missing" yaml:"missing"`
	// BoldMarker and ItalicMarker are the literal tokens wrapped
	// around cell text in unescaped mode, and the token stripped from
	// labels by WithStripMarkers.
	BoldMarker   string `toml:"bold_marker" yaml:"bold_marker"`
	ItalicMarker string `toml:"italic_marker" yaml:"italic_marker"`
	// IndentPrefix is prepended to stub cells once per indent level.
	IndentPrefix string `toml:"indent_prefix" yaml:"indent_prefix"`
	// Border selects the text-format border style.
	Border BorderStyle `toml:"border" yaml:"border"`
}

// DefaultTheme returns the standard theme.
func DefaultTheme() Theme {
	return Theme{
		Missing:      "NA",
		BoldMarker:   "**",
		ItalicMarker: "*",
		IndentPrefix: "  ",
		Border:       BorderRounded,
	}
}
