package browser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/errors"
)

// Resolve turns a typed or programmatic path into a canonical absolute
// path. Absolute inputs must exist as given; relative inputs are joined
// onto base first. A PathNotFound error is not fatal to callers: it means
// "stay where you are".
func Resolve(raw, base string) (string, error) {
	raw = ExpandHome(raw)

	if filepath.IsAbs(raw) {
		if _, err := os.Lstat(raw); err != nil {
			return "", errors.NewPathError("path does not resolve", raw, errors.PathNotFound, err)
		}
		return canonicalize(raw), nil
	}

	joined := filepath.Join(base, raw)
	if _, err := os.Lstat(joined); err != nil {
		return "", errors.NewPathError("path does not resolve", joined, errors.PathNotFound, err)
	}
	return canonicalize(joined), nil
}

// CanonicalizeDirectory fully simplifies the path of a known-existing
// directory: "."/".." components collapse and symlink indirection is
// resolved, so the stored current directory never grows when moving up and
// down through relative tokens.
func CanonicalizeDirectory(path string) string {
	return canonicalize(path)
}

func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Keep the lexically cleaned form when a component disappeared
		// between the existence check and here.
		return abs
	}
	return resolved
}

// ExpandHome substitutes a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// IsRoot reports whether dir is the filesystem root, i.e. has no parent to
// list.
func IsRoot(dir string) bool {
	return filepath.Dir(dir) == dir
}
