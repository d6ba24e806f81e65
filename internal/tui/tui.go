// Package tui is the full-screen command loop built on Bubble Tea.
//
// The screen shows the Store above a single-line prompt. Enter submits the
// line to the dispatcher; failures and the help text replace the prompt until
// the user acknowledges them with Enter.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/homework/internal/cli"
	"github.com/idilsaglam/homework/internal/ui"
)

type keyMap struct {
	Submit key.Binding
	Ack    key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Ack:    key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "continue")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Model implements tea.Model over a cli.Session.
type Model struct {
	session *cli.Session
	theme   ui.Theme
	keys    keyMap
	help    help.Model
	input   textinput.Model

	notice    string // help text or error message awaiting acknowledgment
	noticeErr bool
	fatal     error
	width     int
}

// New returns a Model with a focused prompt.
func New(s *cli.Session, th ui.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a command, h for help"
	ti.CharLimit = 0 // no limit; aa text can be any length
	ti.Focus()

	return Model{
		session: s,
		theme:   th,
		keys:    defaultKeys(),
		help:    help.New(),
		input:   ti,
	}
}

// Run starts the program on the alternate screen and blocks until the user
// exits. It returns the error that forced an early stop, if any.
func Run(s *cli.Session, th ui.Theme, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(s, th), opts...)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.fatal != nil {
		return fm.fatal
	}
	return nil
}

// Err is the fatal error that ended the program, if any.
func (m Model) Err() error { return m.fatal }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.notice != "" {
			if key.Matches(msg, m.keys.Ack) {
				m.notice, m.noticeErr = "", false
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	c, err := m.session.Execute(line)
	switch {
	case err != nil && cli.IsFatal(err):
		m.fatal = err
		return m, tea.Quit
	case err != nil:
		m.notice, m.noticeErr = cli.Message(err), true
	case c.Op == cli.OpExit:
		return m, tea.Quit
	case c.Op == cli.OpHelp:
		m.notice = cli.HelpText()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(ui.RenderStore(m.theme, m.session.Store.Entries()))
	b.WriteString("\n\n")

	if m.notice != "" {
		style := lipgloss.NewStyle()
		if m.noticeErr {
			style = m.theme.Error
		}
		if m.width > 0 {
			style = style.Width(m.width - 2)
		}
		b.WriteString(style.Render(m.notice))
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Ack, m.keys.Quit}))
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Submit, m.keys.Quit}))
	return b.String()
}
