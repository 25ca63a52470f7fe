package open

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	t.Run("placeholder substitution", func(t *testing.T) {
		got := BuildCommand("xdg-open '%s'", "/tmp/a.txt")
		assert.Equal(t, "xdg-open '/tmp/a.txt'", got)
	})

	t.Run("no placeholder appends quoted", func(t *testing.T) {
		got := BuildCommand("vlc", "/tmp/b.mkv")
		assert.Equal(t, "vlc '/tmp/b.mkv'", got)
	})

	t.Run("only the first placeholder is substituted", func(t *testing.T) {
		got := BuildCommand("diff %s %s", "/tmp/c")
		assert.Equal(t, "diff /tmp/c %s", got)
	})
}

func TestDmenuPrintsPath(t *testing.T) {
	var buf bytes.Buffer
	inv := New("xdg-open '%s'", true)
	inv.out = &buf

	require.NoError(t, inv.Open("/tmp/x/a.txt", "/tmp/x"))
	assert.Equal(t, "/tmp/x/a.txt\n", buf.String())

	buf.Reset()
	// Command overrides are irrelevant in dmenu mode.
	require.NoError(t, inv.OpenWith("vim %s", "/tmp/x/b.txt", "/tmp/x"))
	assert.Equal(t, "/tmp/x/b.txt\n", buf.String())
}

func TestOpenRunsBuiltCommand(t *testing.T) {
	var gotDir, gotCmd string
	inv := New("cat '%s'", false)
	inv.run = func(workdir, command string) error {
		gotDir = workdir
		gotCmd = command
		return nil
	}

	require.NoError(t, inv.Open("/tmp/x/a.txt", "/tmp/x"))
	assert.Equal(t, "/tmp/x", gotDir)
	assert.Equal(t, "cat '/tmp/x/a.txt'", gotCmd)
}

func TestOpenWithOverride(t *testing.T) {
	var gotCmd string
	inv := New("xdg-open '%s'", false)
	inv.run = func(workdir, command string) error {
		gotCmd = command
		return nil
	}

	require.NoError(t, inv.OpenWith("nvim", "/tmp/x/notes.md", "/tmp/x"))
	assert.Equal(t, "nvim '/tmp/x/notes.md'", gotCmd)
}
