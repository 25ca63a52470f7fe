package tui

import (
	"path/filepath"
	"strings"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/browser"
	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/icons"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// glyphSize is the nominal icon size handed to the lookup; the terminal
// glyph lookup ignores it.
const glyphSize = 16

// Options control the parts of the display that can be switched off.
type Options struct {
	// DisableIcons drops the per-entry glyph column.
	DisableIcons bool
	// ModeKeys enables shift+left/right as explicit hide/show-hidden keys.
	ModeKeys bool
}

// Model is the interactive shell around a browsing session: it owns the
// filter input and cursor and translates keys into session events.
type Model struct {
	session *browser.Session
	icons   *icons.Cache
	opts    Options

	input  textinput.Model
	cursor int
	height int
	width  int
}

func New(session *browser.Session, cache *icons.Cache, opts Options) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Focus()

	return &Model{
		session: session,
		icons:   cache,
		opts:    opts,
		input:   input,
		height:  24,
		width:   80,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.session.Prompting() {
			return m.apply(browser.CancelCustomCommand{})
		}
		return m, tea.Quit

	case "enter":
		return m.handleEnter()

	case "ctrl+o":
		if idx, ok := m.selectedIndex(); ok {
			return m.apply(browser.RequestCustomOpen{Index: idx})
		}
		return m, nil

	case "ctrl+h":
		return m.apply(browser.NavigateToPath{Path: ""})

	case "shift+left":
		if m.opts.ModeKeys {
			return m.apply(browser.SetHiddenVisible{Visible: false})
		}
	case "shift+right":
		if m.opts.ModeKeys {
			return m.apply(browser.SetHiddenVisible{Visible: true})
		}

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	}

	// Everything else edits the filter; the cursor restarts at the top of
	// the narrowed listing.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.cursor = 0
	return m, cmd
}

// handleEnter submits the prompt, activates the selected entry, or treats
// the typed text as a path when nothing matches it.
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.session.Prompting() {
		return m.apply(browser.SubmitCustomCommand{Command: m.input.Value()})
	}
	if idx, ok := m.selectedIndex(); ok {
		return m.apply(browser.Activate{Index: idx})
	}
	return m.apply(browser.NavigateToPath{Path: m.input.Value()})
}

// apply runs one session transition and translates its outcome.
func (m *Model) apply(ev browser.Event) (tea.Model, tea.Cmd) {
	switch m.session.HandleInput(ev) {
	case browser.Exit:
		return m, tea.Quit
	case browser.ResetInput:
		m.input.Reset()
		m.cursor = 0
	}
	m.clampCursor()
	return m, nil
}

// visible returns the listing indices that pass the current filter.
func (m *Model) visible() []int {
	tokens := strings.Fields(m.input.Value())
	out := make([]int, 0, m.session.NumEntries())
	for i := 0; i < m.session.NumEntries(); i++ {
		if m.session.MatchesFilter(i, tokens) {
			out = append(out, i)
		}
	}
	return out
}

// selectedIndex maps the cursor to a listing index.
func (m *Model) selectedIndex() (int, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return 0, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	if status := m.session.StatusText(); status != "" {
		if m.session.Prompting() {
			b.WriteString(PromptStyle.Render(status))
		} else {
			b.WriteString(StatusStyle.Render(status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")

	visible := m.visible()
	start := m.windowStart(visible)
	for i, idx := range m.visibleWindow(visible) {
		entry, _ := m.entryAt(idx)
		line := m.renderEntry(idx, entry)
		if start+i == m.cursor {
			line = SelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// visibleWindow trims the filtered indices to the rows that fit on screen,
// keeping the cursor inside the window.
func (m *Model) visibleWindow(visible []int) []int {
	rows := m.listRows()
	start := m.windowStart(visible)
	end := start + rows
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

func (m *Model) windowStart(visible []int) int {
	rows := m.listRows()
	if rows <= 0 || len(visible) <= rows {
		return 0
	}
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start > len(visible)-rows {
		start = len(visible) - rows
	}
	return start
}

// listRows is the vertical space left for entries under the status and
// input lines.
func (m *Model) listRows() int {
	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) entryAt(idx int) (browser.Entry, bool) {
	entries := m.session.CurrentListing().Entries
	if m.session.Prompting() {
		idx = m.session.PromptIndex()
	}
	if idx < 0 || idx >= len(entries) {
		return browser.Entry{}, false
	}
	return entries[idx], true
}

func (m *Model) renderEntry(idx int, entry browser.Entry) string {
	text := m.session.DisplayText(idx)

	style := FileStyle
	switch entry.Kind {
	case browser.KindUp, browser.KindDirectory:
		style = DirectoryStyle
	case browser.KindInaccessible:
		style = InaccessibleStyle
	}

	if m.opts.DisableIcons || m.icons == nil {
		return style.Render(text)
	}
	glyph, ok := m.icons.Get(m.session.IconKeys(idx), glyphSize)
	switch {
	case !ok:
		glyph = " "
	case strings.ContainsRune(glyph, filepath.Separator):
		// Theme lookups resolve to image files; all a cell can show is
		// that a themed icon exists.
		glyph = "◆"
	}
	return glyph + " " + style.Render(text)
}

// Cursor returns the cursor's position within the filtered listing.
func (m *Model) Cursor() int {
	return m.cursor
}

// Session exposes the underlying session, mainly for the command layer.
func (m *Model) Session() *browser.Session {
	return m.session
}
