package collectors

import (
	"github.com/sirupsen/logrus"

	"github.com/danpilch/storagedump/pkg/layout"
	"github.com/danpilch/storagedump/pkg/output"
	"github.com/danpilch/storagedump/pkg/props"
)

// ErrStats renders one "name:value" line per entry of an error-statistics
// directory.
type ErrStats struct {
	name string
	cfg  layout.ErrStats
	env  Env
}

// NewErrStats creates a collector for a dynamically enumerated section.
func NewErrStats(name string, cfg layout.ErrStats, env Env) *ErrStats {
	return &ErrStats{name: name, cfg: cfg, env: env.withDefaults()}
}

// Name returns the section name.
func (c *ErrStats) Name() string {
	return c.name
}

// Collect lists the stats directory and prints each entry's first token.
// A missing directory suppresses the whole section, header included.
func (c *ErrStats) Collect(f *output.Formatter) {
	entries, ok := c.env.Files.ListDir(c.cfg.Dir)
	if !ok {
		c.env.Logger.WithFields(logrus.Fields{
			"section": c.name,
			"path":    c.cfg.Dir,
		}).Debug("Stats directory unavailable")
		return
	}

	f.Section(c.name)

	valueDir := c.ValueDir()
	for _, entry := range entries {
		value, ok := c.env.Files.ReadToken(valueDir + entry)
		if !ok {
			c.env.Logger.WithFields(logrus.Fields{
				"section": c.name,
				"entry":   entry,
			}).Debug("Stat unavailable")
			continue
		}
		f.Pair(entry, value)
	}
}

// ValueDir returns the directory holding entry values for the current
// boot device.
func (c *ErrStats) ValueDir() string {
	device := ""
	if c.cfg.DeviceProperty != "" {
		device = props.String(c.env.Props, c.cfg.DeviceProperty, "")
	}
	return c.cfg.ValuePrefix + device + c.cfg.ValueSuffix
}
