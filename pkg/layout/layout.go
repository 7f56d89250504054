// Package layout describes the fixed, ordered set of sections that make up a
// storage report.
package layout

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed storage.yaml
var defaultLayout []byte

// SourceKind identifies how a single-value source is read.
type SourceKind string

const (
	KindDump     SourceKind = "dump"
	KindProperty SourceKind = "property"
)

// Source is one labeled datum inside a section.
type Source struct {
	Kind  SourceKind `yaml:"kind"`
	Label string     `yaml:"label"`
	Path  string     `yaml:"path,omitempty"`
	Key   string     `yaml:"key,omitempty"`
}

// ErrStats describes a directory whose entries name the stats to read.
// Values live at ValuePrefix + <device property> + ValueSuffix + <entry>.
type ErrStats struct {
	Dir            string `yaml:"dir"`
	ValuePrefix    string `yaml:"value_prefix"`
	DeviceProperty string `yaml:"device_property"`
	ValueSuffix    string `yaml:"value_suffix"`
}

// Column is a table column; Stat is the file name stem.
type Column struct {
	Name string `yaml:"name"`
	Stat string `yaml:"stat"`
}

// Row is a table row; Suffix completes the file name of each cell.
type Row struct {
	Label  string `yaml:"label"`
	Suffix string `yaml:"suffix"`
}

// Table is a row × column matrix of single-integer files.
type Table struct {
	Base    string   `yaml:"base"`
	Indent  string   `yaml:"indent"`
	Columns []Column `yaml:"columns"`
	Rows    []Row    `yaml:"rows"`
}

// CellPath returns the file backing the cell at (row, col).
func (t Table) CellPath(row Row, col Column) string {
	return t.Base + col.Stat + row.Suffix
}

// Section is a named group of sources rendered together. Exactly one of
// Sources, ErrStats or Table is set.
type Section struct {
	Name     string    `yaml:"name"`
	Heading  bool      `yaml:"heading"`
	Sources  []Source  `yaml:"sources,omitempty"`
	ErrStats *ErrStats `yaml:"err_stats,omitempty"`
	Table    *Table    `yaml:"table,omitempty"`
}

// Layout is the ordered list of sections of a report.
type Layout struct {
	Sections []Section `yaml:"sections"`
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("cannot parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Default returns the built-in storage report layout.
func Default() Layout {
	l, err := Parse(defaultLayout)
	if err != nil {
		panic(err)
	}
	return l
}

// Validate checks that every section has exactly one body and that every
// source names what it reads.
func (l Layout) Validate() error {
	if len(l.Sections) == 0 {
		return fmt.Errorf("layout has no sections")
	}
	for i, s := range l.Sections {
		if s.Name == "" {
			return fmt.Errorf("section %d has no name", i)
		}

		bodies := 0
		if len(s.Sources) > 0 {
			bodies++
		}
		if s.ErrStats != nil {
			bodies++
		}
		if s.Table != nil {
			bodies++
		}
		if bodies != 1 {
			return fmt.Errorf("section %q must have exactly one of sources, err_stats or table", s.Name)
		}

		for j, src := range s.Sources {
			if err := src.validate(); err != nil {
				return fmt.Errorf("section %q source %d: %w", s.Name, j, err)
			}
		}
		if s.ErrStats != nil && s.ErrStats.Dir == "" {
			return fmt.Errorf("section %q: err_stats has no dir", s.Name)
		}
		if s.Table != nil && (len(s.Table.Columns) == 0 || len(s.Table.Rows) == 0) {
			return fmt.Errorf("section %q: table needs columns and rows", s.Name)
		}
	}
	return nil
}

func (s Source) validate() error {
	switch s.Kind {
	case KindDump:
		if s.Path == "" {
			return fmt.Errorf("dump has no path")
		}
	case KindProperty:
		if s.Key == "" {
			return fmt.Errorf("property has no key")
		}
		if s.Label == "" {
			return fmt.Errorf("property %q has no label", s.Key)
		}
	default:
		return fmt.Errorf("unknown source kind %q", s.Kind)
	}
	return nil
}
