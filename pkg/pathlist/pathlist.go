// Package pathlist encodes and decodes delimiter-joined path lists, the
// value format of PATH-like environment variables. It owns the
// normalization and comparison rules shared by the registry and the
// environment sync layer.
package pathlist

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Delimiter is the platform list separator (";" on Windows, ":" elsewhere).
const Delimiter = string(os.PathListSeparator)

// caseInsensitive reports whether path comparison ignores case on the
// target platform. Windows path semantics are case-insensitive; everywhere
// else entries that differ only in case are distinct.
var caseInsensitive = runtime.GOOS == "windows"

// Split decodes a delimiter-joined path list into its entries, dropping
// empty ones. Entries are returned as-is, without normalization.
func Split(raw string) []string {
	if raw == "" {
		return nil
	}
	var paths []string
	for _, p := range strings.Split(raw, Delimiter) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Join encodes entries back into a delimiter-joined list. Round-trips with
// Split for any entries that contain no delimiter characters.
func Join(paths []string) string {
	return strings.Join(paths, Delimiter)
}

// Normalize replaces forward slashes with the platform separator. Pure
// string transformation, no filesystem access.
func Normalize(path string) string {
	return filepath.FromSlash(path)
}

// NormalizeAll normalizes every entry, preserving order.
func NormalizeAll(paths []string) []string {
	if paths == nil {
		return nil
	}
	normalized := make([]string, len(paths))
	for i, p := range paths {
		normalized[i] = Normalize(p)
	}
	return normalized
}

// Equal reports whether two paths refer to the same entry after
// normalization, honoring the platform case policy.
func Equal(a, b string) bool {
	a, b = Normalize(a), Normalize(b)
	if caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Contains reports whether paths holds an entry equal to path.
func Contains(paths []string, path string) bool {
	for _, p := range paths {
		if Equal(p, path) {
			return true
		}
	}
	return false
}
