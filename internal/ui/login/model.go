package login

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/theme"
)

// SubmitMsg is dispatched when the login form is submitted.
type SubmitMsg struct {
	Email string
}

// QuitMsg is dispatched when the user aborts the login form.
type QuitMsg struct{}

// credentials holds form values on the heap so huh's Value() pointers
// stay valid across model copies.
type credentials struct {
	email    string
	password string
}

// Model is the login screen.
type Model struct {
	form   *huh.Form
	creds  *credentials
	styles theme.Styles
	width  int
	height int
}

// New creates a login screen.
func New(styles theme.Styles, width, height int) Model {
	m := Model{
		creds:  &credentials{},
		styles: styles,
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init starts the form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Reset clears the form for a fresh login.
func (m *Model) Reset() tea.Cmd {
	*m.creds = credentials{}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the login screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		email := strings.TrimSpace(m.creds.email)
		return m, func() tea.Msg { return SubmitMsg{Email: email} }
	case huh.StateAborted:
		return m, func() tea.Msg { return QuitMsg{} }
	}
	return m, cmd
}

// View renders the login card with the demo account hints.
func (m Model) View() string {
	p := m.styles.Palette

	title := lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render("Görev Takip")
	subtitle := m.styles.Muted.Render("Kurumsal Görev Yönetimi")

	var hints []string
	hints = append(hints, lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render("Demo Hesapları"))
	for _, a := range session.DemoAccounts() {
		label := "Çalışan:"
		if a.Role.IsAdmin() {
			label = "Yönetici:"
		}
		hints = append(hints, fmt.Sprintf("%s %s", m.styles.Muted.Render(label), a.Email))
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		m.form.View(),
		"",
		lipgloss.JoinVertical(lipgloss.Left, hints...),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.styles.Panel.Render(card))
}

// SetStyles switches the palette.
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form = m.form.WithWidth(formWidth(width))
}

func formWidth(w int) int {
	return min(max(w-10, 30), 50)
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("E-posta").
				Placeholder("E-posta adresiniz").
				Value(&m.creds.email).
				Validate(required("E-posta")),
			huh.NewInput().
				Title("Şifre").
				Placeholder("Şifreniz").
				EchoMode(huh.EchoModePassword).
				Value(&m.creds.password),
		),
	).WithWidth(formWidth(m.width)).WithShowHelp(false)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s zorunlu", field)
		}
		return nil
	}
}
