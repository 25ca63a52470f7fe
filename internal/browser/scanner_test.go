package browser_test

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/browser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanner(t *testing.T, opts browser.ScanOptions) *browser.Scanner {
	t.Helper()
	s, err := browser.NewScanner(opts)
	require.NoError(t, err)
	return s
}

// flatOptions is the core configuration: direct children only, sorted by
// type then name.
func flatOptions() browser.ScanOptions {
	return browser.ScanOptions{Depth: 1, Ordering: browser.DefaultOrdering()}
}

// scenarioDir builds the layout used across tests: a.txt, .b, sub/.
func scenarioDir(t *testing.T) string {
	t.Helper()
	dir := tmpRealDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".b"), []byte("b"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	return dir
}

func names(l browser.Listing) []string {
	out := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		out = append(out, e.Name)
	}
	return out
}

func TestScanHiddenFiltering(t *testing.T) {
	dir := scenarioDir(t)
	s := newScanner(t, flatOptions())

	t.Run("hidden excluded", func(t *testing.T) {
		l := s.Scan(dir, false)
		require.Equal(t, []string{"..", "sub", "a.txt"}, names(l))
		assert.Equal(t, browser.KindUp, l.Entries[0].Kind)
		assert.Equal(t, browser.KindDirectory, l.Entries[1].Kind)
		assert.Equal(t, browser.KindFile, l.Entries[2].Kind)
		assert.False(t, l.ShowHidden)
		assertOrdered(t, l.Entries)
	})

	t.Run("hidden included is a superset", func(t *testing.T) {
		l := s.Scan(dir, true)
		require.Equal(t, []string{"..", "sub", ".b", "a.txt"}, names(l))
		assert.True(t, l.ShowHidden)
		assertOrdered(t, l.Entries)
	})

	t.Run("parent is exempt from hidden filtering", func(t *testing.T) {
		for _, show := range []bool{false, true} {
			l := s.Scan(dir, show)
			require.NotEmpty(t, l.Entries)
			assert.Equal(t, browser.KindUp, l.Entries[0].Kind)
		}
	})
}

func TestScanEntryPaths(t *testing.T) {
	dir := scenarioDir(t)
	s := newScanner(t, flatOptions())

	l := s.Scan(dir, true)
	for _, e := range l.Entries {
		assert.True(t, filepath.IsAbs(e.Path), "%q path must be absolute", e.Name)
		_, err := os.Lstat(e.Path)
		assert.NoError(t, err, "%q path must exist at scan time", e.Name)
	}
	assert.Equal(t, filepath.Dir(dir), l.Entries[0].Path, "parent path collapses")
}

func TestScanIdempotent(t *testing.T) {
	dir := scenarioDir(t)
	s := newScanner(t, flatOptions())

	first := s.Scan(dir, true)
	second := s.Scan(dir, true)
	assert.Equal(t, first, second)
}

func TestScanNoParentAtRoot(t *testing.T) {
	s := newScanner(t, flatOptions())

	l := s.Scan("/", false)
	for _, e := range l.Entries {
		assert.NotEqual(t, browser.KindUp, e.Kind, "root listing has no parent entry")
	}
}

func TestScanUnreadableDirectory(t *testing.T) {
	dir := tmpRealDir(t)
	gone := filepath.Join(dir, "raced-away")
	s := newScanner(t, flatOptions())

	// Same shape an empty directory would produce.
	l := s.Scan(gone, false)
	require.Len(t, l.Entries, 1)
	assert.Equal(t, browser.KindUp, l.Entries[0].Kind)
}

func TestScanSymlinks(t *testing.T) {
	dir := tmpRealDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "realdir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "realfile"), []byte("x"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "realdir"), filepath.Join(dir, "todir")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "realfile"), filepath.Join(dir, "tofile")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling")))

	s := newScanner(t, flatOptions())
	l := s.Scan(dir, false)

	kinds := map[string]browser.Kind{}
	for _, e := range l.Entries {
		kinds[e.Name] = e.Kind
	}
	assert.Equal(t, browser.KindDirectory, kinds["todir"], "symlink to directory lists as directory")
	assert.Equal(t, browser.KindFile, kinds["tofile"], "symlink to file lists as file")
	assert.Equal(t, browser.KindFile, kinds["dangling"], "unstattable target defaults to file")
}

func TestScanSkipsSpecialNodes(t *testing.T) {
	dir := tmpRealDir(t)
	fifo := filepath.Join(dir, "pipe")
	if err := syscall.Mkfifo(fifo, 0644); err != nil {
		t.Skipf("cannot create fifo: %v", err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kept.txt"), []byte("x"), 0644))

	s := newScanner(t, flatOptions())
	l := s.Scan(dir, false)
	assert.Equal(t, []string{"..", "kept.txt"}, names(l))
}

func TestScanExcludePatterns(t *testing.T) {
	dir := tmpRealDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drop.bak"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0755))

	opts := flatOptions()
	opts.Exclude = []string{"*.bak", "node_modules"}
	s := newScanner(t, opts)
	l := s.Scan(dir, false)
	assert.Equal(t, []string{"..", "keep.txt"}, names(l))
}

func TestScanInvalidExcludePattern(t *testing.T) {
	_, err := browser.NewScanner(browser.ScanOptions{Depth: 1, Exclude: []string{"[unclosed"}})
	assert.Error(t, err)
}

func TestScanOnlyDirsOnlyFiles(t *testing.T) {
	dir := scenarioDir(t)

	t.Run("only dirs", func(t *testing.T) {
		opts := flatOptions()
		opts.OnlyDirs = true
		s := newScanner(t, opts)
		l := s.Scan(dir, true)
		assert.Equal(t, []string{"..", "sub"}, names(l))
	})

	t.Run("only files", func(t *testing.T) {
		opts := flatOptions()
		opts.OnlyFiles = true
		s := newScanner(t, opts)
		l := s.Scan(dir, true)
		assert.Equal(t, []string{"..", ".b", "a.txt"}, names(l))
	})
}

func TestScanRecursive(t *testing.T) {
	dir := tmpRealDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "inner"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "mid.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "inner", "deep.txt"), []byte("x"), 0644))

	t.Run("depth 2", func(t *testing.T) {
		s := newScanner(t, browser.ScanOptions{Depth: 2, Ordering: browser.DefaultOrdering()})
		l := s.Scan(dir, false)
		got := names(l)
		assert.Contains(t, got, filepath.Join("sub", "mid.txt"), "second level names keep their relative path")
		assert.Contains(t, got, filepath.Join("sub", "inner"))
		assert.NotContains(t, got, filepath.Join("sub", "inner", "deep.txt"), "third level is beyond depth 2")
	})

	t.Run("unlimited depth sorted by depth", func(t *testing.T) {
		s := newScanner(t, browser.ScanOptions{Depth: 0, Ordering: browser.Ordering{ByType: true, ByDepth: true}})
		l := s.Scan(dir, false)
		got := names(l)
		assert.Contains(t, got, filepath.Join("sub", "inner", "deep.txt"))

		for i := 2; i < len(l.Entries); i++ {
			assert.LessOrEqual(t, l.Entries[i-1].Depth, l.Entries[i].Depth)
		}
	})

	t.Run("hidden directories prune their subtree", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "objects"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "config"), []byte("x"), 0644))

		s := newScanner(t, browser.ScanOptions{Depth: 0, Ordering: browser.DefaultOrdering()})
		l := s.Scan(dir, false)
		for _, name := range names(l) {
			assert.False(t, strings.HasPrefix(name, ".git"), "nothing under .git should be listed: %q", name)
		}
	})
}

func TestScanLossyNames(t *testing.T) {
	dir := tmpRealDir(t)
	raw := "bad\xffname"
	if err := os.WriteFile(filepath.Join(dir, raw), []byte("x"), 0644); err != nil {
		t.Skipf("filesystem rejects non-UTF-8 names: %v", err)
	}

	s := newScanner(t, flatOptions())
	l := s.Scan(dir, false)

	require.Len(t, l.Entries, 2)
	entry := l.Entries[1]
	assert.Contains(t, entry.Name, "�", "undecodable bytes are replaced, not dropped")
	assert.Contains(t, entry.Name, "bad")
	_, err := os.Lstat(entry.Path)
	assert.NoError(t, err, "the path keeps the raw on-disk name")
}

func TestScanStdin(t *testing.T) {
	input := strings.NewReader("/etc/hosts\nnotes.txt\n\nsub/dir\n")
	l := browser.ScanStdin(input, "/home/user")

	require.Len(t, l.Entries, 3)
	assert.Equal(t, "/etc/hosts", l.Entries[0].Path)
	assert.Equal(t, "/etc/hosts", l.Entries[0].Name)
	assert.Equal(t, "/home/user/notes.txt", l.Entries[1].Path)
	assert.Equal(t, "notes.txt", l.Entries[1].Name)
	assert.Equal(t, "/home/user/sub/dir", l.Entries[2].Path)

	for _, e := range l.Entries {
		assert.Equal(t, browser.KindUnknown, e.Kind)
		assert.Equal(t, 1, e.Depth)
	}
}
