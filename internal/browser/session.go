package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/errors"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/log"
)

// promptFormat is the message shown while asking for a custom open command.
const promptFormat = "Enter command to open '%s' with, or cancel to go back."

// Opener performs the open action for a selected file. Implementations run
// the command detached; the session only cares that the call returns.
type Opener interface {
	// Open opens path with the configured default command.
	Open(path, workdir string) error
	// OpenWith opens path with a one-shot command override.
	OpenWith(command, path, workdir string) error
}

// Event is an input driving the session's transition protocol.
type Event interface {
	isEvent()
}

// Activate is the primary action on an entry: enter it if it is a
// directory, open it if it is a file.
type Activate struct{ Index int }

// RequestCustomOpen asks to open an entry with a custom command; the
// session moves to the prompting sub-state.
type RequestCustomOpen struct{ Index int }

// SubmitCustomCommand finishes the prompt. An empty command falls back to
// the default open command.
type SubmitCustomCommand struct{ Command string }

// CancelCustomCommand leaves the prompt without opening anything.
type CancelCustomCommand struct{}

// ToggleHidden flips hidden-file visibility and reloads.
type ToggleHidden struct{}

// SetHiddenVisible sets hidden-file visibility to a specific value,
// reloading only when it changes.
type SetHiddenVisible struct{ Visible bool }

// NavigateToPath resolves typed input against the current directory. The
// empty path doubles as the hidden toggle; this dual binding is part of
// the interface.
type NavigateToPath struct{ Path string }

func (Activate) isEvent()            {}
func (RequestCustomOpen) isEvent()   {}
func (SubmitCustomCommand) isEvent() {}
func (CancelCustomCommand) isEvent() {}
func (ToggleHidden) isEvent()        {}
func (SetHiddenVisible) isEvent()    {}
func (NavigateToPath) isEvent()      {}

// Outcome tells the host what a transition did.
type Outcome int

const (
	// Continue: redisplay; the host keeps its input as is.
	Continue Outcome = iota
	// ResetInput: the view changed (new directory or prompt state); the
	// host should clear its input line.
	ResetInput
	// Exit: the session is finished.
	Exit
)

// SessionOptions configure a Session's start state and display strings.
type SessionOptions struct {
	// StartDir is the initial directory; "" means the working directory.
	StartDir   string
	ShowHidden bool
	// UpText is the display name of the parent entry.
	UpText string
	// HiddenSymbol/NoHiddenSymbol prefix the status line depending on
	// hidden-file visibility.
	HiddenSymbol   string
	NoHiddenSymbol string
	// PathSep joins the breadcrumb in the status line.
	PathSep string
	// ShowStatus enables the status line; when off StatusText is empty
	// outside the prompt.
	ShowStatus bool
}

// Session is the navigation state for one interactive browsing run. It is
// exclusively owned by the host's input loop: transitions run to
// completion one at a time and nothing else mutates it.
type Session struct {
	scanner *Scanner
	opener  Opener
	opts    SessionOptions

	dir        string
	listing    Listing
	showHidden bool
	// promptIndex indexes the entry a custom open command is being
	// collected for, -1 while browsing. It is an index into the current
	// listing only; every reload invalidates and clears it.
	promptIndex int
}

// NewSession canonicalizes the start directory, loads its listing, and
// returns a session in the browsing state.
func NewSession(scanner *Scanner, opener Opener, opts SessionOptions) (*Session, error) {
	dir := opts.StartDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.NewConfigError("cannot determine working directory", "dir", err)
		}
		dir = wd
	}
	dir = ExpandHome(dir)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.NewConfigError("start directory does not exist", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewConfigError("start directory is not a directory", dir, nil)
	}

	s := &Session{
		scanner:     scanner,
		opener:      opener,
		opts:        opts,
		dir:         CanonicalizeDirectory(dir),
		showHidden:  opts.ShowHidden,
		promptIndex: -1,
	}
	s.reload()
	return s, nil
}

// SetListing replaces the current listing wholesale, for host-provided
// listings such as stdin mode. Navigation from here on rescans normally.
func (s *Session) SetListing(l Listing) {
	s.listing = l
	s.promptIndex = -1
}

// HandleInput runs one transition. Each call completes, including any
// rescan I/O, before the session accepts the next event.
func (s *Session) HandleInput(ev Event) Outcome {
	if s.promptIndex >= 0 {
		switch ev := ev.(type) {
		case SubmitCustomCommand:
			return s.submitCustom(ev.Command)
		case CancelCustomCommand:
			s.promptIndex = -1
			return ResetInput
		default:
			// Browsing inputs don't apply while prompting.
			return Continue
		}
	}

	switch ev := ev.(type) {
	case Activate:
		return s.activate(ev.Index)
	case RequestCustomOpen:
		if ev.Index < 0 || ev.Index >= len(s.listing.Entries) {
			return Continue
		}
		s.promptIndex = ev.Index
		return ResetInput
	case ToggleHidden:
		s.setHidden(!s.showHidden)
		return Continue
	case SetHiddenVisible:
		if ev.Visible != s.showHidden {
			s.setHidden(ev.Visible)
		}
		return Continue
	case NavigateToPath:
		return s.navigate(ev.Path)
	}
	return Continue
}

func (s *Session) activate(index int) Outcome {
	if index < 0 || index >= len(s.listing.Entries) {
		return Continue
	}
	entry := s.listing.Entries[index]

	switch entry.Kind {
	case KindUp, KindDirectory, KindInaccessible:
		s.changeDir(entry.Path)
		return ResetInput
	case KindUnknown:
		// Stdin-provided entries resolve like typed paths.
		info, err := os.Stat(entry.Path)
		if err != nil {
			return Continue
		}
		if info.IsDir() {
			s.changeDir(entry.Path)
			return ResetInput
		}
		s.open(entry.Path)
		return Exit
	default:
		s.open(entry.Path)
		return Exit
	}
}

func (s *Session) submitCustom(command string) Outcome {
	entry := s.listing.Entries[s.promptIndex]
	s.promptIndex = -1

	if command == "" {
		s.open(entry.Path)
	} else {
		if err := s.opener.OpenWith(command, entry.Path, s.dir); err != nil {
			log.WithFields(log.F("path", entry.Path), log.F("error", err)).Warn("open failed")
		}
	}
	return Exit
}

func (s *Session) navigate(path string) Outcome {
	// The empty input doubles as the hidden toggle.
	if path == "" {
		s.setHidden(!s.showHidden)
		return Continue
	}

	resolved, err := Resolve(path, s.dir)
	if err != nil {
		return Continue
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return Continue
	}
	switch {
	case info.IsDir():
		s.changeDir(resolved)
		return ResetInput
	case info.Mode().IsRegular():
		s.open(resolved)
		return Exit
	default:
		return Continue
	}
}

func (s *Session) changeDir(path string) {
	s.dir = CanonicalizeDirectory(path)
	s.reload()
}

func (s *Session) setHidden(visible bool) {
	s.showHidden = visible
	s.reload()
}

// reload rescans the current directory. Listing indices are invalid
// afterwards, so any pending prompt reference is dropped with them.
func (s *Session) reload() {
	s.promptIndex = -1
	s.listing = s.scanner.Scan(s.dir, s.showHidden)
}

func (s *Session) open(path string) {
	if err := s.opener.Open(path, s.dir); err != nil {
		log.WithFields(log.F("path", path), log.F("error", err)).Warn("open failed")
	}
}

// ---- Host surface ----

// NumEntries returns how many entries the host should display: the whole
// listing while browsing, just the prompted entry while prompting.
func (s *Session) NumEntries() int {
	if s.promptIndex >= 0 {
		return 1
	}
	return len(s.listing.Entries)
}

// entryAt maps a host index to a listing entry, accounting for the prompt
// sub-state displaying a single entry.
func (s *Session) entryAt(index int) (Entry, bool) {
	if s.promptIndex >= 0 {
		index = s.promptIndex
	}
	if index < 0 || index >= len(s.listing.Entries) {
		return Entry{}, false
	}
	return s.listing.Entries[index], true
}

// DisplayText returns the text shown for one entry.
func (s *Session) DisplayText(index int) string {
	entry, ok := s.entryAt(index)
	if !ok {
		return ""
	}
	if entry.Kind == KindUp && s.opts.UpText != "" {
		return s.opts.UpText
	}
	return entry.Name
}

// IconKeys returns the icon lookup keys for one entry.
func (s *Session) IconKeys(index int) []string {
	entry, ok := s.entryAt(index)
	if !ok {
		return []string{ErrorIconKey}
	}
	return IconKeysFor(entry)
}

// MatchesFilter reports whether the entry matches every query token
// (case-insensitive substring match on the name). The single entry shown
// while prompting always matches.
func (s *Session) MatchesFilter(index int, tokens []string) bool {
	if s.promptIndex >= 0 {
		return true
	}
	entry, ok := s.entryAt(index)
	if !ok {
		return false
	}
	name := strings.ToLower(entry.Name)
	for _, tok := range tokens {
		if !strings.Contains(name, strings.ToLower(tok)) {
			return false
		}
	}
	return true
}

// StatusText returns the prompt message while prompting, the breadcrumb
// status line while browsing with status enabled, and "" otherwise.
func (s *Session) StatusText() string {
	if s.promptIndex >= 0 {
		return fmt.Sprintf(promptFormat, s.listing.Entries[s.promptIndex].Name)
	}
	if !s.opts.ShowStatus {
		return ""
	}

	marker := s.opts.NoHiddenSymbol
	if s.showHidden {
		marker = s.opts.HiddenSymbol
	}
	parts := strings.Split(s.dir, string(filepath.Separator))
	return marker + strings.Join(parts, s.opts.PathSep)
}

// Dir returns the current directory (canonical absolute path).
func (s *Session) Dir() string {
	return s.dir
}

// ShowHidden reports whether hidden files are currently listed.
func (s *Session) ShowHidden() bool {
	return s.showHidden
}

// Prompting reports whether the session is collecting a custom open
// command.
func (s *Session) Prompting() bool {
	return s.promptIndex >= 0
}

// PromptIndex returns the listing index the prompt refers to, -1 while
// browsing.
func (s *Session) PromptIndex() int {
	return s.promptIndex
}

// CurrentListing returns the listing being displayed.
func (s *Session) CurrentListing() Listing {
	return s.listing
}
