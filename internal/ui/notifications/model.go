package notifications

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/keys"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/theme"
)

// OpenTaskMsg asks the parent to open the task a notification refers to.
type OpenTaskMsg struct {
	TaskID string
}

// Model lists the notifications visible to the session, newest first.
type Model struct {
	items  []model.Notification
	cursor int
	keys   *keys.KeyMap
	styles theme.Styles
	width  int
	height int
}

// New creates the notifications screen.
func New(k *keys.KeyMap, styles theme.Styles, width, height int) Model {
	return Model{keys: k, styles: styles, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetNotifications replaces the listed notifications. Callers scope them
// to the session first.
func (m *Model) SetNotifications(items []model.Notification) {
	m.items = items
	m.cursor = min(m.cursor, max(len(items)-1, 0))
}

// Selected returns the highlighted notification.
func (m Model) Selected() (model.Notification, bool) {
	if len(m.items) == 0 {
		return model.Notification{}, false
	}
	return m.items[m.cursor], true
}

// Update handles messages for the notifications screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Select):
		n, ok := m.Selected()
		if !ok || !n.HasTask() {
			return m, nil
		}
		id := n.TaskID
		return m, func() tea.Msg { return OpenTaskMsg{TaskID: id} }
	}
	return m, nil
}

// View renders the notification list.
func (m Model) View() string {
	p := m.styles.Palette
	heading := lipgloss.NewStyle().Bold(true).Foreground(p.Text).
		Render(fmt.Sprintf("Bildirimler (%d)", len(m.items)))

	if len(m.items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, heading, "",
			m.styles.Muted.Render("Bildirim yok."))
	}

	blocks := []string{heading, ""}
	for i, n := range m.items {
		title := fmt.Sprintf("%s %s", icon(n.Type), lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(n.Title))
		meta := []string{n.DateText}
		if n.Assignee != "" {
			meta = append(meta, n.Assignee)
		}
		block := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"  "+n.Message,
			"  "+m.styles.Muted.Render(strings.Join(meta, " · ")),
		)
		if i == m.cursor {
			blocks = append(blocks, m.styles.SelectedItem.Render(block))
		} else {
			blocks = append(blocks, m.styles.ListItem.Render(block))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func icon(t model.NotificationType) string {
	switch t {
	case model.NotificationAssigned:
		return lipgloss.NewStyle().Foreground(theme.ColorBlue).Render("●")
	case model.NotificationStatusChanged:
		return lipgloss.NewStyle().Foreground(theme.ColorGreen).Render("◆")
	case model.NotificationCommented:
		return lipgloss.NewStyle().Foreground(theme.ColorAmber).Render("✎")
	default:
		return "•"
	}
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
