package collectors

import (
	"github.com/danpilch/storagedump/pkg/layout"
	"github.com/danpilch/storagedump/pkg/output"
)

// Table renders a fixed row × column matrix of integer stat files.
type Table struct {
	name  string
	table layout.Table
	env   Env
}

// NewTable creates a collector for a fixed-table section.
func NewTable(name string, table layout.Table, env Env) *Table {
	return &Table{name: name, table: table, env: env.withDefaults()}
}

// Name returns the section name.
func (c *Table) Name() string {
	return c.name
}

// Collect always writes the header and one line per row; cells whose file
// cannot be read render as a blank field.
func (c *Table) Collect(f *output.Formatter) {
	f.Section(c.name)

	columns := make([]string, len(c.table.Columns))
	for i, col := range c.table.Columns {
		columns[i] = col.Name
	}
	f.TableHeader(c.table.Indent, columns)

	missing := 0
	for _, row := range c.table.Rows {
		cells := make([]output.Cell, len(c.table.Columns))
		for i, col := range c.table.Columns {
			v, ok := c.env.Files.ReadUint(c.table.CellPath(row, col))
			cells[i] = output.Cell{Value: v, OK: ok}
			if !ok {
				missing++
			}
		}
		f.TableRow(row.Label, cells)
	}

	if missing > 0 {
		c.env.Logger.WithField("section", c.name).Debugf("%d of %d cells unavailable",
			missing, len(c.table.Rows)*len(c.table.Columns))
	}
}
