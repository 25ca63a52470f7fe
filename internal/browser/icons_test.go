package browser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/browser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconKeysFor(t *testing.T) {
	dir := tmpRealDir(t)
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0644))

	t.Run("parent entry", func(t *testing.T) {
		keys := browser.IconKeysFor(browser.Entry{
			Name: "..", Path: filepath.Dir(dir), Kind: browser.KindUp,
		})
		assert.Equal(t, []string{"go-up"}, keys)
	})

	t.Run("directory", func(t *testing.T) {
		keys := browser.IconKeysFor(browser.Entry{
			Name: "d", Path: dir, Kind: browser.KindDirectory,
		})
		assert.Equal(t, []string{"folder", "inode-directory"}, keys)
	})

	t.Run("file by extension", func(t *testing.T) {
		keys := browser.IconKeysFor(browser.Entry{
			Name: "notes.txt", Path: txt, Kind: browser.KindFile,
		})
		require.Len(t, keys, 2)
		assert.Equal(t, "text-plain", keys[0])
		assert.Equal(t, "text-x-generic", keys[1])
	})

	t.Run("file by content sniffing", func(t *testing.T) {
		// PNG magic, no extension: the sniffer has to identify it.
		png := filepath.Join(dir, "picture")
		require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n"), 0644))

		keys := browser.IconKeysFor(browser.Entry{
			Name: "picture", Path: png, Kind: browser.KindFile,
		})
		assert.Equal(t, []string{"image-png", "image-x-generic"}, keys)
	})

	t.Run("unknown entry resolving to a directory", func(t *testing.T) {
		keys := browser.IconKeysFor(browser.Entry{
			Name: "d", Path: dir, Kind: browser.KindUnknown,
		})
		assert.Equal(t, []string{"folder", "inode-directory"}, keys)
	})

	t.Run("unreadable file falls back to the error key", func(t *testing.T) {
		missing := filepath.Join(dir, "dangling")
		require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), missing))

		keys := browser.IconKeysFor(browser.Entry{
			Name: "dangling", Path: missing, Kind: browser.KindFile,
		})
		assert.Equal(t, []string{"error"}, keys)
	})

	t.Run("entry without a path", func(t *testing.T) {
		keys := browser.IconKeysFor(browser.Entry{Name: "x"})
		assert.Equal(t, []string{"error"}, keys)
	})
}
