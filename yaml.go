package styletab

import (
	"io"

	"gopkg.in/yaml.v3"
)

func renderYAML(w io.Writer, b *Builder) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(b.document()); err != nil {
		return err
	}
	return enc.Close()
}
