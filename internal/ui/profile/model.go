package profile

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/keys"
	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/theme"
)

// ToggleThemeMsg asks the parent to flip dark mode.
type ToggleThemeMsg struct{}

// LogoutMsg asks the parent to return to the login screen.
type LogoutMsg struct{}

// Model is the profile and settings screen.
type Model struct {
	profile session.Profile
	dark    bool
	keys    *keys.KeyMap
	styles  theme.Styles
	width   int
	height  int
}

// New creates the profile screen.
func New(k *keys.KeyMap, styles theme.Styles, width, height int) Model {
	return Model{keys: k, styles: styles, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetProfile updates the card and the dark mode indicator.
func (m *Model) SetProfile(p session.Profile, dark bool) {
	m.profile = p
	m.dark = dark
}

// Update handles messages for the profile screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Theme):
		return m, func() tea.Msg { return ToggleThemeMsg{} }
	case key.Matches(km, m.keys.Logout):
		return m, func() tea.Msg { return LogoutMsg{} }
	}
	return m, nil
}

// View renders the profile card and settings.
func (m Model) View() string {
	p := m.styles.Palette
	bold := lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	label := m.styles.Muted.Width(10)

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.White).
		Background(p.Primary).
		Padding(0, 1).
		Render(m.profile.Badge)

	card := m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		bold.Render(m.profile.FullName),
		m.styles.Muted.Render(m.profile.Job),
		"",
		badge,
		"",
		fmt.Sprintf("%s %s", label.Render("E-POSTA"), m.profile.Email),
		fmt.Sprintf("%s %s", label.Render("ROL"), m.profile.Badge),
	))

	state := "kapalı"
	if m.dark {
		state = "açık"
	}
	settings := lipgloss.JoinVertical(lipgloss.Left,
		bold.Render("Ayarlar"),
		fmt.Sprintf("Dark Mode: %s  %s", bold.Render(state), m.styles.Muted.Render("(t) Karanlık tema kullan")),
		fmt.Sprintf("%s  %s", bold.Render("Çıkış Yap"), m.styles.Muted.Render("(L)")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, card, "", settings)
}

// SetStyles switches the palette.
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
