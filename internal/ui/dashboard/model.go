package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/keys"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/theme"
	"github.com/nhle/gorev-takip/internal/ui"
	"github.com/nhle/gorev-takip/internal/ui/tasklist"
	"github.com/nhle/gorev-takip/internal/view"
)

// recentLimit is how many tasks the "Son Görevler" section shows.
const recentLimit = 5

// Model is the admin overview: headline counts, completion rate and the
// most recent tasks.
type Model struct {
	tasks  []model.Task
	cursor int
	keys   *keys.KeyMap
	styles theme.Styles
	width  int
	height int
}

// New creates a dashboard.
func New(k *keys.KeyMap, styles theme.Styles, width, height int) Model {
	return Model{keys: k, styles: styles, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetTasks replaces the tasks the dashboard summarizes.
func (m *Model) SetTasks(tasks []model.Task) {
	m.tasks = tasks
	m.cursor = min(m.cursor, max(len(m.recent())-1, 0))
}

func (m Model) recent() []model.Task {
	return m.tasks[:min(len(m.tasks), recentLimit)]
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	recent := m.recent()
	switch {
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(recent)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Select):
		if len(recent) > 0 {
			id := recent[m.cursor].ID
			return m, func() tea.Msg { return tasklist.SelectedTaskMsg{TaskID: id} }
		}
	case key.Matches(km, m.keys.New):
		return m, func() tea.Msg { return tasklist.NewTaskMsg{} }
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	p := m.styles.Palette
	sum := view.Summarize(m.tasks)

	heading := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render("Dashboard"),
		m.styles.Muted.Render("Görev yönetimi genel görünümü"),
	)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.kpi("Toplam Görev", sum.All, p.Primary),
		m.kpi("Beklemede", sum.Pending, theme.ColorAmber),
		m.kpi("Devam Ediyor", sum.InProgress, theme.ColorBlue),
		m.kpi("Tamamlandı", sum.Done, theme.ColorGreen),
	)

	rate := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render("Tamamlanma Oranı"),
		fmt.Sprintf("%s %s",
			ui.Bar(sum.CompletionRate, max(min(m.width-16, 40), 10), theme.ColorGreen, p.Hairline),
			lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(fmt.Sprintf("%%%d", ui.Percent(sum.CompletionRate))),
		),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		heading, "", cards, "", rate, "", m.renderRecent())
}

func (m Model) kpi(title string, value int, accent lipgloss.Color) string {
	return m.styles.Panel.
		Padding(0, 1).
		MarginRight(1).
		BorderForeground(accent).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Muted.Render(title),
			lipgloss.NewStyle().Bold(true).Foreground(accent).Render(fmt.Sprint(value)),
		))
}

func (m Model) renderRecent() string {
	p := m.styles.Palette
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render("Son Görevler")}

	recent := m.recent()
	if len(recent) == 0 {
		lines = append(lines, m.styles.Muted.Render("Henüz görev yok."))
	}
	for i, t := range recent {
		line := fmt.Sprintf("%s  %s  %s",
			t.Title,
			m.styles.Muted.Render(t.PersonFullName),
			theme.StatusStyle(t.Status).Render(t.Status.Label()),
		)
		if i == m.cursor {
			lines = append(lines, m.styles.SelectedItem.Render(line))
			continue
		}
		lines = append(lines, m.styles.ListItem.Render(line))
	}
	return strings.Join(lines, "\n")
}

// SetStyles switches the palette.
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
