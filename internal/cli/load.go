package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/styletab/styletab"
)

// definition is the on-disk shape of a table: body rows keyed by column
// name, header metadata, text-format annotations, 1-based rule rows,
// and footnotes.
type definition struct {
	Caption   string              `yaml:"caption" toml:"caption"`
	Columns   []styletab.Column   `yaml:"columns" toml:"columns"`
	Rows      []map[string]string `yaml:"rows" toml:"rows"`
	Formats   []annotation        `yaml:"formats" toml:"formats"`
	Rules     []int               `yaml:"rules" toml:"rules"`
	Footnotes []string            `yaml:"footnotes" toml:"footnotes"`
}

type annotation struct {
	Kind   string `yaml:"kind" toml:"kind"`
	Column string `yaml:"column" toml:"column"`
	Rows   []int  `yaml:"rows" toml:"rows"`
}

// loadDefinition reads a table definition from a .yaml, .yml, or .toml
// file and converts it into a styletab.Table.
func loadDefinition(path string) (*styletab.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def definition
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported definition extension %q (want .yaml, .yml, or .toml)", ext)
	}
	return def.table()
}

func (d definition) table() (*styletab.Table, error) {
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("definition has no columns")
	}
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i+1)
		}
		names[i] = c.Name
	}

	formats := make([]styletab.TextFormat, len(d.Formats))
	for i, a := range d.Formats {
		kind, err := styletab.ParseKind(a.Kind)
		if err != nil {
			return nil, err
		}
		formats[i] = styletab.TextFormat{Kind: kind, Column: a.Column, Rows: a.Rows}
	}

	t := &styletab.Table{
		Body:      styletab.Body{Columns: names, Rows: d.Rows},
		Columns:   d.Columns,
		Formats:   formats,
		Footnotes: d.Footnotes,
		Caption:   d.Caption,
	}
	if len(d.Rules) > 0 {
		t.Rule = styletab.RuleAbove(d.Rules...)
	}
	return t, nil
}

// loadTheme decodes a TOML theme file over the default theme, so a
// file only needs the fields it changes.
func loadTheme(path string) (styletab.Theme, error) {
	theme := styletab.DefaultTheme()
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return theme, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return theme, nil
}
