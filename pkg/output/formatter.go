// Package output renders storage report lines.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// CellWidth is the left-justified width of every table cell.
const CellWidth = 12

// Cell is one table value. Cells that could not be read render as a blank
// field so later columns stay aligned.
type Cell struct {
	Value uint64
	OK    bool
}

// Formatter writes report lines to a single sink.
type Formatter struct {
	writer      io.Writer
	headerStyle lipgloss.Style
}

// NewFormatter creates a formatter for w. Header styling is only applied
// when w is a terminal; the environment never changes the profile.
func NewFormatter(w io.Writer) *Formatter {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(sinkProfile(w))
	return &Formatter{
		writer:      w,
		headerStyle: renderer.NewStyle().Bold(true),
	}
}

func sinkProfile(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return termenv.ANSI
	}
	return termenv.Ascii
}

// Section writes a blank line followed by a section header.
func (f *Formatter) Section(name string) {
	fmt.Fprintln(f.writer)
	fmt.Fprintln(f.writer, f.headerStyle.Render(fmt.Sprintf("------ %s ------", name)))
}

// Dump writes the verbatim content of a file. An empty label suppresses
// the header line.
func (f *Formatter) Dump(label, path, content string) {
	if label != "" {
		fmt.Fprintln(f.writer, f.headerStyle.Render(fmt.Sprintf("------ %s (%s) ------", label, path)))
	}
	io.WriteString(f.writer, content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(f.writer)
	}
}

// Value writes a labeled integer followed by a blank line.
func (f *Formatter) Value(label string, v int64) {
	fmt.Fprintf(f.writer, "--- %s ---\n%d\n\n", label, v)
}

// Pair writes a "name:value" line.
func (f *Formatter) Pair(name, value string) {
	fmt.Fprintf(f.writer, "%s:%s\n", name, value)
}

// TableHeader writes the column names after indent.
func (f *Formatter) TableHeader(indent string, columns []string) {
	padded := make([]string, len(columns))
	for i, c := range columns {
		padded[i] = fmt.Sprintf("%-*s", CellWidth, c)
	}
	fmt.Fprintf(f.writer, "%s%s\n", indent, strings.Join(padded, " "))
}

// TableRow writes a row label followed by one field per cell.
func (f *Formatter) TableRow(label string, cells []Cell) {
	var b strings.Builder
	b.WriteString(label)
	for _, c := range cells {
		if !c.OK {
			fmt.Fprintf(&b, "%-*s ", CellWidth, "")
			continue
		}
		fmt.Fprintf(&b, "%-*d ", CellWidth, c.Value)
	}
	b.WriteByte('\n')
	io.WriteString(f.writer, b.String())
}
