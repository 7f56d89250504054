// Package props reads device system properties.
package props

import (
	"strconv"
	"strings"
)

// Source looks up a system property. ok is false when the property is unset.
type Source interface {
	Get(key string) (value string, ok bool)
}

// Map is an in-memory Source.
type Map map[string]string

// Get returns the value stored under key.
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// String returns the property value, or def when it is unset.
func String(src Source, key, def string) string {
	if v, ok := src.Get(key); ok {
		return v
	}
	return def
}

// Int returns the property parsed as a 32-bit integer, or def when it is
// unset, not numeric, has trailing characters or is out of range. Leading
// whitespace is skipped and a "0x" prefix selects base 16.
func Int(src Source, key string, def int64) int64 {
	v, ok := src.Get(key)
	if !ok {
		return def
	}

	base := 10
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		base = 16
		v = v[2:]
	}
	v = strings.TrimLeft(v, " \t\n\v\f\r")

	n, err := strconv.ParseInt(v, base, 32)
	if err != nil {
		return def
	}
	return n
}
