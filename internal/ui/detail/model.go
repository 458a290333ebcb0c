package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/keys"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/theme"
	"github.com/nhle/gorev-takip/internal/view"
)

// BackMsg signals the parent to navigate back.
type BackMsg struct{}

// AdvanceMsg asks the parent to move the task to its next status. Only
// admins can send it.
type AdvanceMsg struct {
	TaskID string
	Status model.TaskStatus
}

// EditMsg asks the parent to open the edit form for the task.
type EditMsg struct {
	Task model.Task
}

const (
	deniedText  = "Bu göreve erişimin yok"
	missingText = "Görev bulunamadı"
)

type state int

const (
	stateEmpty state = iota
	stateShown
	stateDenied
	stateMissing
)

// Model is the task detail view component.
type Model struct {
	task     model.Task
	state    state
	canEdit  bool
	viewport viewport.Model
	keys     *keys.KeyMap
	styles   theme.Styles
	width    int
	height   int
}

// New creates a new detail view model.
func New(keys *keys.KeyMap, styles theme.Styles, width, height int) Model {
	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     keys,
		styles:   styles,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Advance):
			if m.state == stateShown && m.canEdit {
				id, next := m.task.ID, m.task.Status.Next()
				return m, func() tea.Msg {
					return AdvanceMsg{TaskID: id, Status: next}
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Edit):
			if m.state == stateShown && m.canEdit {
				t := m.task
				return m, func() tea.Msg { return EditMsg{Task: t} }
			}
			return m, nil
		}
	}

	// Delegate to viewport for scrolling.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	center := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center)

	switch m.state {
	case stateDenied:
		return center.Foreground(m.styles.Palette.Text).Bold(true).Render(deniedText)
	case stateMissing:
		return center.Foreground(m.styles.Palette.Text).Bold(true).Render(missingText)
	case stateEmpty:
		return center.Foreground(m.styles.Palette.Muted).Render("Görev seçilmedi")
	}
	return m.viewport.View()
}

// TaskID returns the id of the task on screen, if any.
func (m Model) TaskID() string {
	if m.state == stateEmpty || m.state == stateMissing {
		return ""
	}
	return m.task.ID
}

// renderContent builds the task card for the viewport.
func (m Model) renderContent() string {
	p := m.styles.Palette
	t := m.task

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	metaStyle := lipgloss.NewStyle().Foreground(p.Muted).Width(10)
	valStyle := lipgloss.NewStyle().Foreground(p.Text)

	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.StatusStyle(t.Status).Render(t.Status.Label()),
		"  ",
		theme.PriorityStyle(t.Priority).Render(t.Priority.Label()),
		"  ",
		m.styles.Muted.Render(t.Category.Label()),
	)

	desc := t.Description
	if desc == "" {
		desc = "—"
	}

	sections := []string{
		m.styles.Muted.Render("Görev Detayı"),
		titleStyle.Render(t.Title),
		badges,
		"",
		titleStyle.Render("Açıklama"),
		lipgloss.NewStyle().Foreground(p.Muted).Width(max(m.width-4, 20)).Render(desc),
		"",
		lipgloss.NewStyle().Foreground(p.Hairline).Render(strings.Repeat("─", min(max(m.width-4, 0), 60))),
	}

	rows := []struct{ label, value string }{
		{"ATANAN", t.PersonFullName},
		{"BİTİŞ", t.DateText},
		{"LOKASYON", t.Location},
		{"EKİP", t.Team},
	}
	for _, r := range rows {
		v := r.value
		if v == "" {
			v = "—"
		}
		sections = append(sections, fmt.Sprintf("%s %s", metaStyle.Render(r.label), valStyle.Render(v)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetTask shows task t to the given user. Employees only see their own
// tasks; anyone else gets the access notice.
func (m *Model) SetTask(t model.Task, role session.Role, user string) {
	m.task = t
	m.canEdit = view.CanEditTask(role)
	m.state = stateShown
	if !view.CanViewTask(role, user, t) {
		m.state = stateDenied
	}
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// SetMissing shows the not-found notice.
func (m *Model) SetMissing() {
	m.task = model.Task{}
	m.state = stateMissing
}

// SetStyles switches the palette and re-renders.
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.viewport.SetContent(m.renderContent())
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(m.renderContent())
}
