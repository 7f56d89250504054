package props

import (
	"os/exec"
	"strings"
)

// DefaultGetpropPath is where Android installs the property tool.
const DefaultGetpropPath = "/system/bin/getprop"

// Getprop reads properties through the getprop tool. A missing tool, a
// failed invocation and an empty value all count as an unset property.
type Getprop struct {
	Path string
}

// NewGetprop returns a Source backed by the getprop tool at path, or at
// DefaultGetpropPath when path is empty.
func NewGetprop(path string) *Getprop {
	if path == "" {
		path = DefaultGetpropPath
	}
	return &Getprop{Path: path}
}

// Get runs getprop for key.
func (g *Getprop) Get(key string) (string, bool) {
	out, err := exec.Command(g.Path, key).Output()
	if err != nil {
		return "", false
	}
	v := strings.TrimRight(string(out), "\r\n")
	if v == "" {
		return "", false
	}
	return v, true
}
