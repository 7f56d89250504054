// Package collectors turns report layout sections into collectors that
// read storage telemetry and render it.
package collectors

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/danpilch/storagedump/pkg/layout"
	"github.com/danpilch/storagedump/pkg/output"
	"github.com/danpilch/storagedump/pkg/props"
)

// Collector is the interface that all section collectors must implement.
type Collector interface {
	// Name returns the section name (e.g., "UFS io_stats").
	Name() string

	// Collect reads the section's sources and writes what is present.
	Collect(f *output.Formatter)
}

// FileReader is the read surface collectors need from the pseudo-filesystem.
type FileReader interface {
	ReadAll(path string) (string, bool)
	ReadToken(path string) (string, bool)
	ReadUint(path string) (uint64, bool)
	ListDir(path string) ([]string, bool)
}

// Env holds the data sources shared by every collector.
type Env struct {
	Files  FileReader
	Props  props.Source
	Logger *logrus.Logger
}

func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = logrus.New()
		e.Logger.SetLevel(logrus.WarnLevel)
	}
	if e.Props == nil {
		e.Props = props.Map{}
	}
	return e
}

// Registry holds collectors in report order.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a new, empty collector registry.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make([]Collector, 0),
	}
}

// FromLayout builds a registry with one collector per layout section.
func FromLayout(l layout.Layout, env Env) (*Registry, error) {
	env = env.withDefaults()

	r := NewRegistry()
	for _, s := range l.Sections {
		switch {
		case s.ErrStats != nil:
			r.Register(NewErrStats(s.Name, *s.ErrStats, env))
		case s.Table != nil:
			r.Register(NewTable(s.Name, *s.Table, env))
		case len(s.Sources) > 0:
			r.Register(NewSources(s.Name, s.Heading, s.Sources, env))
		default:
			return nil, fmt.Errorf("section %q has nothing to collect", s.Name)
		}
	}
	return r, nil
}

// Register adds a collector to the registry.
func (r *Registry) Register(c Collector) {
	r.collectors = append(r.collectors, c)
}

// Collectors returns all registered collectors.
func (r *Registry) Collectors() []Collector {
	return r.collectors
}

// GetByName returns a collector by name, or nil if not found.
func (r *Registry) GetByName(name string) Collector {
	for _, c := range r.collectors {
		if c.Name() == name {
			return c
		}
	}
	return nil
}
