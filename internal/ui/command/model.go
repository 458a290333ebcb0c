package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/theme"
)

// CommandMsg is emitted when the user executes a command.
type CommandMsg string

// Known commands.
const (
	Dashboard     = "dashboard"
	Tasks         = "tasks"
	Reports       = "reports"
	Notifications = "notifications"
	Profile       = "profile"
	NewTask       = "new"
	Theme         = "theme"
	Logout        = "logout"
	Quit          = "quit"
)

// Commands returns every command the palette accepts.
func Commands() []string {
	return []string{Dashboard, Tasks, Reports, Notifications, Profile, NewTask, Theme, Logout, Quit}
}

// Complete returns the commands starting with prefix.
func Complete(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var out []string
	for _, c := range Commands() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	styles theme.Styles
	width  int
	height int
}

// New creates a new command palette model.
func New(styles theme.Styles, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "komut yaz..."
	ti.Prompt = ": "
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		styles: styles,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette. Tab completes a
// unique prefix; enter runs the typed command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			cmd := strings.ToLower(strings.TrimSpace(m.input.Value()))
			m.input.Reset()
			if matches := Complete(cmd); cmd != "" && len(matches) == 1 {
				cmd = matches[0]
			}
			if cmd != "" {
				return m, func() tea.Msg {
					return CommandMsg(cmd)
				}
			}
			return m, nil

		case "tab":
			if matches := Complete(m.input.Value()); len(matches) == 1 {
				m.input.SetValue(matches[0])
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	title := m.styles.Title.Render("Komut Paleti")
	hint := m.styles.Muted.Render(strings.Join(Complete(m.input.Value()), "  "))

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.input.View(), "", hint)

	return m.styles.Panel.
		Width(max(m.width-4, 0)).
		Render(content)
}

// SetStyles switches the palette.
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
