package styletab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownAnchor     = errors.New("unknown splice anchor")
	ErrNoBody            = errors.New("table body not built")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	HTML     Format = "html"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Text, HTML, Markdown, CSV, TSV, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write converts t into a call list, executes it, and renders the result
// to w in format f. The format is validated before any conversion work.
func Write(w io.Writer, f Format, t *Table, opts ...Option) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	calls, err := Convert(t, opts...)
	if err != nil {
		return err
	}
	return calls.Render(w, f)
}

// Marshal converts and renders t and returns the bytes.
func Marshal(f Format, t *Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
