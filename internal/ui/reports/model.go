package reports

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/theme"
	"github.com/nhle/gorev-takip/internal/ui"
	"github.com/nhle/gorev-takip/internal/view"
)

// Model shows task statistics. Admins get the team view; employees get
// a personal summary of their own tasks.
type Model struct {
	tasks  []model.Task
	role   session.Role
	styles theme.Styles
	width  int
	height int
}

// New creates the reports screen.
func New(styles theme.Styles, width, height int) Model {
	return Model{styles: styles, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetTasks replaces the tasks being reported on. Callers scope them to
// the session first.
func (m *Model) SetTasks(tasks []model.Task, role session.Role) {
	m.tasks = tasks
	m.role = role
}

// Update handles messages for the reports screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the report.
func (m Model) View() string {
	p := m.styles.Palette
	bold := lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	sum := view.Summarize(m.tasks)

	title, subtitle := "Raporlar", "Görev istatistikleri ve analizler"
	perfTitle := "Çalışan Performansı"
	if !m.role.IsAdmin() {
		title, subtitle = "Özet", "Kişisel görev özetin"
		perfTitle = "Kişisel Performans"
	}

	stats := fmt.Sprintf("%s %s   %s %s   %s %s",
		m.styles.Muted.Render("TOPLAM"), bold.Render(fmt.Sprint(sum.All)),
		m.styles.Muted.Render("AKTİF"), bold.Render(fmt.Sprint(sum.Active)),
		m.styles.Muted.Render("BİTTİ"), bold.Render(fmt.Sprint(sum.Done)),
	)

	barWidth := max(min(m.width-30, 30), 10)
	rows := []string{bold.Render("Durum Dağılımı")}
	for _, d := range []struct {
		label string
		n     int
		color lipgloss.Color
	}{
		{model.StatusPending.Label(), sum.Pending, theme.ColorAmber},
		{model.StatusInProgress.Label(), sum.InProgress, theme.ColorBlue},
		{model.StatusDone.Label(), sum.Done, theme.ColorGreen},
	} {
		rows = append(rows, m.barRow(d.label, d.n, sum.All, barWidth, d.color))
	}

	perf := []string{bold.Render(perfTitle), m.styles.Muted.Render("Tamamlanan görevlere göre kıyas")}
	byAssignee := view.CompletedByAssignee(m.tasks)
	if len(byAssignee) == 0 {
		perf = append(perf, m.styles.Muted.Render("Veri yok"))
	}
	top := 0
	for _, a := range byAssignee {
		top = max(top, a.Count)
	}
	for _, a := range byAssignee {
		perf = append(perf, m.barRow(a.Name, a.Count, top, barWidth, p.Primary))
	}

	rate := fmt.Sprintf("%s %s",
		m.styles.Muted.Render("Tamamlanma Oranı"),
		bold.Render(fmt.Sprintf("%%%d", ui.Percent(sum.CompletionRate))))

	return lipgloss.JoinVertical(lipgloss.Left,
		bold.Render(title),
		m.styles.Muted.Render(subtitle),
		"",
		stats,
		rate,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		lipgloss.JoinVertical(lipgloss.Left, perf...),
	)
}

func (m Model) barRow(label string, n, total, width int, color lipgloss.Color) string {
	rate := 0.0
	if total > 0 {
		rate = float64(n) / float64(total)
	}
	return fmt.Sprintf("%s %s %d",
		lipgloss.NewStyle().Width(16).Foreground(m.styles.Palette.Text).Render(label),
		ui.Bar(rate, width, color, m.styles.Palette.Hairline),
		n,
	)
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
