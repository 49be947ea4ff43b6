package styletab

import (
	"io"
	"iter"
)

// WriteIter converts and renders tables from an iterator as they
// arrive, sharing one option set. Text, HTML, and Markdown tables are
// separated by a blank line; YAML documents by the document separator;
// JSON renders each table as its own document on consecutive lines.
func WriteIter(w io.Writer, f Format, seq iter.Seq[*Table], opts ...Option) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	first := true
	var streamErr error
	seq(func(t *Table) bool {
		if !first {
			switch f {
			case YAML:
				if _, err := io.WriteString(w, "---\n"); err != nil {
					streamErr = err
					return false
				}
			case JSON, CSV, TSV:
				// Self-delimiting.
			default:
				if _, err := io.WriteString(w, "\n"); err != nil {
					streamErr = err
					return false
				}
			}
		}
		first = false
		if err := Write(w, f, t, opts...); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan converts and renders tables from a channel.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, ch <-chan *Table, opts ...Option) error {
	return WriteIter(w, f, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
