// Package open performs the open action for a selected file: either
// running a configured shell command detached, or printing the absolute
// path for downstream consumption (dmenu mode).
package open

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/errors"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/log"
)

// placeholder marks where the file path goes in a command template.
const placeholder = "%s"

// Invoker opens files with a configured command template.
type Invoker struct {
	// Command is the default template. It may contain a single %s
	// placeholder for the path; without one the path is appended
	// single-quoted.
	Command string
	// Dmenu switches from executing commands to printing the path.
	Dmenu bool

	out io.Writer
	run func(workdir, command string) error
}

// New creates an Invoker. In dmenu mode paths are printed to stdout.
func New(command string, dmenu bool) *Invoker {
	return &Invoker{
		Command: command,
		Dmenu:   dmenu,
		out:     os.Stdout,
		run:     runDetached,
	}
}

// Open opens path with the default command, or prints it in dmenu mode.
func (inv *Invoker) Open(path, workdir string) error {
	return inv.OpenWith(inv.Command, path, workdir)
}

// OpenWith opens path with a one-shot command override. Dmenu mode ignores
// the command and prints the path either way.
func (inv *Invoker) OpenWith(command, path, workdir string) error {
	if inv.Dmenu {
		_, err := fmt.Fprintln(inv.out, path)
		return err
	}

	complete := BuildCommand(command, path)
	log.WithFields(log.F("command", complete), log.F("dir", workdir)).Debug("opening file")

	if err := inv.run(workdir, complete); err != nil {
		return errors.NewPathError("cannot start open command", path, errors.ExecFailed, err)
	}
	return nil
}

// BuildCommand substitutes path into the template's %s placeholder, or
// appends it single-quoted when the template has none.
func BuildCommand(template, path string) string {
	if strings.Contains(template, placeholder) {
		return strings.Replace(template, placeholder, path, 1)
	}
	return template + " '" + path + "'"
}

// runDetached starts the command through the shell in workdir and does not
// wait for it. The session is over by the time the command runs; its exit
// status is nobody's business here.
func runDetached(workdir, command string) error {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Dir = workdir
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
