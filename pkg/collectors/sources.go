package collectors

import (
	"github.com/sirupsen/logrus"

	"github.com/danpilch/storagedump/pkg/layout"
	"github.com/danpilch/storagedump/pkg/output"
	"github.com/danpilch/storagedump/pkg/props"
)

// Sources renders a list of verbatim file dumps and integer properties.
type Sources struct {
	name    string
	heading bool
	sources []layout.Source
	env     Env
}

// NewSources creates a collector for a section of single-value sources.
func NewSources(name string, heading bool, sources []layout.Source, env Env) *Sources {
	return &Sources{name: name, heading: heading, sources: sources, env: env.withDefaults()}
}

// Name returns the section name.
func (c *Sources) Name() string {
	return c.name
}

// Collect writes every readable dump and every property. Properties always
// produce a line; missing ones fall back to 0.
func (c *Sources) Collect(f *output.Formatter) {
	if c.heading {
		f.Section(c.name)
	}

	for _, src := range c.sources {
		switch src.Kind {
		case layout.KindDump:
			content, ok := c.env.Files.ReadAll(src.Path)
			if !ok {
				c.env.Logger.WithFields(logrus.Fields{
					"section": c.name,
					"path":    src.Path,
				}).Debug("Source unavailable")
				continue
			}
			f.Dump(src.Label, src.Path, content)
		case layout.KindProperty:
			f.Value(src.Label, props.Int(c.env.Props, src.Key, 0))
		}
	}
}
