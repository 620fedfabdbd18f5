// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CanonicalPath resolves a path to a stable absolute form for comparison.
// Symlinks are resolved when possible; resolution failures (e.g. the path
// does not exist yet) fall back to the cleaned absolute path.
func CanonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return filepath.Clean(resolved)
	}
	return filepath.Clean(abs)
}

// SamePath reports whether two paths refer to the same file after
// canonicalization. Empty paths never match anything.
func SamePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return CanonicalPath(a) == CanonicalPath(b)
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name. A string containing path separators is a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
