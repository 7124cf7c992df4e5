package components

import (
	"wofiles/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type StatusBar struct {
	text     string
	err      string
	style    lipgloss.Style
	errStyle lipgloss.Style
	spinner  spinner.Model
	loading  bool
}

func NewStatusBar(st styles.Styles) *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Status

	return &StatusBar{
		style:    st.Status,
		errStyle: st.Error,
		spinner:  s,
	}
}

// SetStyles recolours the bar without restarting a running spinner.
func (s *StatusBar) SetStyles(st styles.Styles) {
	s.style = st.Status
	s.errStyle = st.Error
	s.spinner.Style = st.Status
}

func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

// SetError shows err above the status text until it is cleared with "".
func (s *StatusBar) SetError(err string) {
	s.err = err
}

// Tick starts the spinner animation.
func (s *StatusBar) Tick() tea.Cmd {
	return s.spinner.Tick
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *StatusBar) View() string {
	var out string
	if s.err != "" {
		out = s.errStyle.Render(s.err) + "\n"
	}
	if s.loading {
		return out + s.style.Render(s.spinner.View()+" "+s.text)
	}
	return out + s.style.Render(s.text)
}
