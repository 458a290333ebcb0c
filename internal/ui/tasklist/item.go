package tasklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// Title returns the task title for the list.
func (i TaskItem) Title() string { return i.Task.Title }

// Description returns a short summary line for the list.
func (i TaskItem) Description() string {
	parts := []string{
		i.Task.Status.Label(),
		i.Task.PersonFullName,
		i.Task.DateText,
	}
	return strings.Join(parts, " | ")
}

// ItemDelegate implements list.ItemDelegate for task rows. Each task takes
// two lines: title with priority, then status and meta.
type ItemDelegate struct {
	Styles theme.Styles
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 2 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 1 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task row.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}
	t := ti.Task
	p := d.Styles.Palette

	prefix := "○"
	if t.IsDone() {
		prefix = "✓"
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(t.Title)
	pri := theme.PriorityStyle(t.Priority).Render(t.Priority.Label())
	first := fmt.Sprintf("%s %s  %s", prefix, title, pri)

	muted := lipgloss.NewStyle().Foreground(p.Muted)
	meta := []string{t.PersonFullName, t.DateText, t.Location}
	second := fmt.Sprintf("  %s %s",
		theme.StatusStyle(t.Status).Render(t.Status.Label()),
		muted.Render(strings.Join(nonEmpty(meta), " · ")),
	)

	block := lipgloss.JoinVertical(lipgloss.Left, first, second)
	if index == m.Index() {
		block = d.Styles.SelectedItem.Render(block)
	} else {
		block = d.Styles.ListItem.Render(block)
	}

	fmt.Fprint(w, block)
}

func nonEmpty(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
