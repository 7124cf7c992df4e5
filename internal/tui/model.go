// Package tui is the terminal front-end of the explorer: a bubbletea list
// over the current directory driving the same session as the GUI.
package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wofiles/internal/fsview"
	"wofiles/internal/log"
	"wofiles/internal/session"
	"wofiles/internal/theme"
	"wofiles/internal/tui/common"
	"wofiles/internal/tui/components"
	"wofiles/internal/tui/messages"
	"wofiles/internal/tui/styles"
	"wofiles/internal/tui/views"
	"wofiles/internal/watch"
	"wofiles/pkg/types"
)

type Model struct {
	session *session.Session
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	status  *components.StatusBar
	styles  styles.Styles

	// Core state
	mode     common.Mode
	entries  []types.Entry
	cursor   int
	showHelp bool
	height   int

	// Search state: the query shown and the deep search in flight
	query     string
	searching string

	// Entry a rename or delete prompt acts on
	target string

	changes <-chan watch.Change
}

// Option configures a Model.
type Option func(*Model)

// WithChanges refreshes the listing whenever ch reports a change to the
// current directory.
func WithChanges(ch <-chan watch.Change) Option {
	return func(m *Model) { m.changes = ch }
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

func New(sess *session.Session, opts ...Option) *Model {
	m := &Model{
		session: sess,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   textinput.New(),
		styles:  styles.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if style, err := sess.ApplyTheme(sess.ActiveTheme()); err == nil {
		m.styles = styles.FromPalette(theme.ExtractPalette(style))
	}
	m.status = components.NewStatusBar(m.styles)
	m.reload()
	return m
}

// Run starts the terminal explorer on sess and blocks until the user quits.
// w may be nil.
func Run(sess *session.Session, w *watch.Watcher) error {
	var opts []Option
	if w != nil {
		if err := w.Start(); err != nil {
			log.LogWithError(err).Warn("Auto-refresh disabled")
		} else {
			defer w.Stop()
			opts = append(opts, WithChanges(w.Changes()))
		}
	}

	_, err := tea.NewProgram(New(sess, opts...), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m, m.styles)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.mode == common.Normal {
			cmd = m.handleNormalKey(msg)
		} else {
			cmd = m.handleInputKey(msg)
		}
		m.updateStatus()
		return m, cmd

	case messages.SearchCompleteMsg:
		if msg.Query != m.searching || msg.Dir != m.session.Current() {
			return m, nil
		}
		m.searching = ""
		m.status.SetLoading(false)
		m.setEntries(msg.Entries, msg.Error)
		return m, nil

	case messages.DirectoryChangeMsg:
		if msg.Change.Dir == m.session.Current() && m.searching == "" {
			m.refresh()
		}
		return m, m.waitForChange()

	case messages.ErrorMsg:
		m.status.SetError(msg.Err.Error())
		return m, nil

	case spinner.TickMsg:
		return m, m.status.Update(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	m.status.SetError("")

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if e, ok := m.selected(); ok && e.IsDir {
			m.open(e.Path)
		}
	case key.Matches(msg, m.keys.Parent):
		if _, ok := m.session.Up(); ok {
			m.afterNavigate()
		}
	case key.Matches(msg, m.keys.Back):
		if _, ok := m.session.Back(); ok {
			m.afterNavigate()
		}
	case key.Matches(msg, m.keys.Forward):
		if _, ok := m.session.Forward(); ok {
			m.afterNavigate()
		}
	case key.Matches(msg, m.keys.GoToPath):
		return m.startInput(common.Path, "go to: ", m.session.Current())
	case key.Matches(msg, m.keys.Search):
		return m.startInput(common.Search, "/", m.query)
	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
	case key.Matches(msg, m.keys.ToggleHidden):
		m.session.SetPrivileged(!m.session.Privileged())
		m.refresh()
	case key.Matches(msg, m.keys.NextTheme):
		m.nextTheme()
	case key.Matches(msg, m.keys.AddShortcut):
		if _, err := m.session.AddShortcut(m.session.Current()); err != nil {
			m.status.SetError(err.Error())
		}
	case key.Matches(msg, m.keys.Copy):
		if e, ok := m.selected(); ok {
			m.report(m.session.CopyToClipboard(e.Path))
		}
	case key.Matches(msg, m.keys.Cut):
		if e, ok := m.selected(); ok {
			m.report(m.session.CutToClipboard(e.Path))
		}
	case key.Matches(msg, m.keys.Paste):
		_, err := m.session.Paste()
		m.refresh()
		m.report(err)
	case key.Matches(msg, m.keys.Rename):
		if e, ok := m.selected(); ok {
			m.target = e.Path
			return m.startInput(common.Rename, "rename: ", e.Name)
		}
	case key.Matches(msg, m.keys.Delete):
		if e, ok := m.selected(); ok {
			m.target = e.Path
			m.mode = common.ConfirmDelete
		}
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	if m.mode == common.ConfirmDelete {
		if key.Matches(msg, m.keys.Submit) || msg.String() == "y" || msg.String() == "Y" {
			err := m.session.Delete(m.target)
			m.refresh()
			m.report(err)
		}
		m.endInput()
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == common.Search && m.query != "" {
			m.query, m.searching = "", ""
			m.status.SetLoading(false)
			m.reload()
		}
		m.endInput()
		return nil
	case key.Matches(msg, m.keys.Submit):
		m.submitInput()
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == common.Search && m.input.Value() != before {
		return tea.Batch(cmd, m.search(m.input.Value()))
	}
	return cmd
}

func (m *Model) startInput(mode common.Mode, prompt, value string) tea.Cmd {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) endInput() {
	m.mode = common.Normal
	m.target = ""
	m.input.Blur()
}

func (m *Model) submitInput() {
	value := m.input.Value()
	switch m.mode {
	case common.Path:
		m.open(value)
	case common.Rename:
		_, err := m.session.Rename(m.target, value)
		m.refresh()
		m.report(err)
	}
	m.endInput()
}

// search filters the current directory. Deep searches run in the
// background and report back with a SearchCompleteMsg.
func (m *Model) search(query string) tea.Cmd {
	m.query = query
	m.cursor = 0

	if len(query) < fsview.DeepQueryLen {
		m.searching = ""
		m.status.SetLoading(false)
		entries, err := m.session.Search(query)
		m.setEntries(entries, err)
		return nil
	}

	m.searching = query
	m.status.SetLoading(true)
	sess, dir := m.session, m.session.Current()
	return tea.Batch(m.status.Tick(), func() tea.Msg {
		entries, err := sess.Search(query)
		return messages.SearchCompleteMsg{Dir: dir, Query: query, Entries: entries, Error: err}
	})
}

func (m *Model) open(path string) {
	if err := m.session.Open(path); err != nil {
		m.status.SetError(err.Error())
		return
	}
	m.afterNavigate()
}

func (m *Model) afterNavigate() {
	m.query, m.searching = "", ""
	m.status.SetLoading(false)
	m.cursor = 0
	m.reload()
}

// reload lists the current directory
func (m *Model) reload() {
	entries, err := m.session.Entries()
	m.setEntries(entries, err)
}

// refresh repeats the listing or search on screen, keeping the cursor
func (m *Model) refresh() {
	if m.query == "" {
		m.reload()
		return
	}
	entries, err := m.session.Search(m.query)
	m.setEntries(entries, err)
}

func (m *Model) setEntries(entries []types.Entry, err error) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if err != nil {
		m.status.SetError(err.Error())
	}
	m.updateStatus()
}

// nextTheme switches to the next theme in the selector that can be
// applied.
func (m *Model) nextTheme() {
	names := m.session.ThemeNames()
	if len(names) == 0 {
		return
	}

	start := 0
	for i, name := range names {
		if name == m.session.ActiveTheme() {
			start = i + 1
			break
		}
	}
	for i := 0; i < len(names); i++ {
		name := names[(start+i)%len(names)]
		style, err := m.session.ApplyTheme(name)
		if err != nil {
			log.LogWithError(err).Debugf("Skipping theme %q", name)
			continue
		}
		m.setStyles(styles.FromPalette(theme.ExtractPalette(style)))
		return
	}
	m.status.SetError("no theme could be applied")
}

func (m *Model) setStyles(st styles.Styles) {
	m.styles = st
	m.status.SetStyles(st)
}

func (m *Model) report(err error) {
	if err != nil {
		m.status.SetError(err.Error())
	}
}

func (m *Model) selected() (types.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return types.Entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) updateStatus() {
	var path string
	if e, ok := m.selected(); ok {
		path = e.Path
	}
	m.status.SetText(m.session.Status(path))
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return messages.DirectoryChangeMsg{Change: change}
	}
}

// Getters

func (m *Model) Entries() []types.Entry {
	return m.entries
}

func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Mode() common.Mode {
	return m.mode
}

func (m *Model) Query() string {
	return m.query
}

// CurrentDir returns the current directory
func (m *Model) CurrentDir() string {
	return m.session.Current()
}

func (m *Model) ClipboardPath() string {
	return m.session.Clipboard().Path
}

func (m *Model) Privileged() bool {
	return m.session.Privileged()
}

func (m *Model) ActiveTheme() string {
	return m.session.ActiveTheme()
}

func (m *Model) InputView() string {
	if m.mode == common.ConfirmDelete {
		return fmt.Sprintf("Delete %s? [y/N]", filepath.Base(m.target))
	}
	return m.input.View()
}

func (m *Model) StatusView() string {
	return m.status.View()
}

func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

func (m *Model) Height() int {
	return m.height
}
