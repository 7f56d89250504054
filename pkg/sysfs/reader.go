// Package sysfs reads kernel pseudo-files. Every read is independent: a
// missing or unreadable file is reported as absent and never as an error.
package sysfs

import (
	"bufio"
	"io"
	"io/fs"
	"math"
	"os"
	"path"
	"strconv"
	"strings"
)

// Reader resolves absolute paths against a filesystem root.
type Reader struct {
	fsys fs.FS
}

// New returns a Reader over fsys. Paths passed to the Reader are absolute
// and are resolved relative to the root of fsys.
func New(fsys fs.FS) *Reader {
	return &Reader{fsys: fsys}
}

// Host returns a Reader over the live root filesystem.
func Host() *Reader {
	return New(os.DirFS("/"))
}

func fsPath(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "."
	}
	return p
}

// ReadAll returns the full text of the file at p.
func (r *Reader) ReadAll(p string) (string, bool) {
	f, err := r.fsys.Open(fsPath(p))
	if err != nil {
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// ReadToken returns the first whitespace-delimited token of the file at p.
// A readable file with no token yields "" and true.
func (r *Reader) ReadToken(p string) (string, bool) {
	f, err := r.fsys.Open(fsPath(p))
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	if scanner.Scan() {
		return scanner.Text(), true
	}
	if scanner.Err() != nil {
		return "", false
	}
	return "", true
}

// ReadUint returns the leading decimal digits of the first token of the
// file at p as an unsigned integer. A readable file whose first token has
// no digits yields 0 and true.
func (r *Reader) ReadUint(p string) (uint64, bool) {
	tok, ok := r.ReadToken(p)
	if !ok {
		return 0, false
	}
	return parseLeadingUint(tok), true
}

// parseLeadingUint parses an optional sign and the digit run that follows
// it. Overflow saturates at the maximum; a minus sign negates modulo 2^64.
func parseLeadingUint(tok string) uint64 {
	neg := false
	if tok != "" && (tok[0] == '+' || tok[0] == '-') {
		neg = tok[0] == '-'
		tok = tok[1:]
	}

	end := 0
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	v, err := strconv.ParseUint(tok[:end], 10, 64)
	if err != nil {
		return math.MaxUint64
	}
	if neg {
		return -v
	}
	return v
}

// ListDir returns the names in directory p in the order the filesystem
// yields them, without sorting. "." and ".." are never included.
func (r *Reader) ListDir(p string) ([]string, bool) {
	f, err := r.fsys.Open(fsPath(p))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	dir, ok := f.(fs.ReadDirFile)
	if !ok {
		return nil, false
	}
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, false
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if name == "." || name == ".." {
			continue
		}
		names = append(names, name)
	}
	return names, true
}
