// Package icons resolves the core's icon lookup keys into something a host
// can display. The core only ever hands over candidate name lists; theme
// search, caching, and rendering concerns live here or further out. No
// image is ever decoded in this process.
package icons

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Lookup resolves one icon name at a pixel size to a host-displayable
// form: a file path for pixmap hosts, a glyph for terminal hosts. ok is
// false when the name is unknown to the lookup.
type Lookup interface {
	Locate(name string, size int) (result string, ok bool)
}

// Cache memoizes lookup results by icon name for the lifetime of the
// process. Icon associations are assumed stable for a session, so entries
// are never invalidated. Not safe for concurrent use; the browsing session
// is single-threaded.
type Cache struct {
	lookup Lookup
	icons  map[string]string
}

// NewCache creates a cache over the given lookup.
func NewCache(lookup Lookup) *Cache {
	return &Cache{
		lookup: lookup,
		icons:  make(map[string]string),
	}
}

// Get resolves an ordered candidate key list, most specific first, and
// returns the first hit. Successful resolutions are cached by name; the
// first resolved size wins for the session.
func (c *Cache) Get(keys []string, size int) (string, bool) {
	for _, key := range keys {
		if cached, ok := c.icons[key]; ok {
			return cached, true
		}
		if result, ok := c.lookup.Locate(key, size); ok {
			c.icons[key] = result
			return result, true
		}
	}
	return "", false
}

// fallbackThemes are searched after the configured themes.
var fallbackThemes = []string{"Adwaita", "gnome", "hicolor"}

// ThemeLookup locates themed icon files in XDG icon directories. It finds
// paths only; decoding is the caller's problem.
type ThemeLookup struct {
	// Themes to search, in preference order, before the fallbacks.
	// There is no auto-detected default: an empty list goes straight to
	// the fallbacks.
	Themes []string
	// Dirs are the base icon directories. Empty means the standard
	// locations.
	Dirs []string
}

func (t *ThemeLookup) dirs() []string {
	if len(t.Dirs) > 0 {
		return t.Dirs
	}
	dirs := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "icons"))
	}
	return append(dirs, "/usr/share/icons", "/usr/share/pixmaps")
}

// Locate searches the configured themes and then the fallbacks for an icon
// file named after the key.
func (t *ThemeLookup) Locate(name string, size int) (string, bool) {
	themes := append(append([]string{}, t.Themes...), fallbackThemes...)
	sizedDir := fmt.Sprintf("%dx%d", size, size)

	for _, dir := range t.dirs() {
		for _, theme := range themes {
			patterns := []string{
				filepath.Join(dir, theme, sizedDir, "*", name+".png"),
				filepath.Join(dir, theme, sizedDir, "*", name+".svg"),
				filepath.Join(dir, theme, "scalable", "*", name+".svg"),
			}
			for _, pattern := range patterns {
				if matches, err := filepath.Glob(pattern); err == nil && len(matches) > 0 {
					return matches[0], true
				}
			}
		}
		// Unthemed pixmaps sit directly in the base dir.
		for _, ext := range []string{".png", ".svg"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}

// GlyphLookup maps icon keys to single-cell glyphs for terminal hosts.
type GlyphLookup struct{}

func (GlyphLookup) Locate(name string, size int) (string, bool) {
	switch name {
	case "go-up":
		return "↩", true
	case "folder", "inode-directory":
		return "🗀", true
	case "error":
		return "⚠", true
	}
	switch {
	case strings.HasPrefix(name, "text-"):
		return "🗎", true
	case strings.HasPrefix(name, "image-"):
		return "🖼", true
	case strings.HasPrefix(name, "video-"):
		return "🎞", true
	case strings.HasPrefix(name, "audio-"):
		return "♪", true
	case strings.HasPrefix(name, "application-"):
		return "🗔", true
	}
	return "", false
}
