package tasklist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/keys"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/store"
	"github.com/nhle/gorev-takip/internal/theme"
	"github.com/nhle/gorev-takip/internal/view"
)

// TasksLoadedMsg is sent when tasks have been loaded from the store.
type TasksLoadedMsg struct {
	Tasks []model.Task
	Err   error
}

// SelectedTaskMsg is sent when a user selects a task to view details.
type SelectedTaskMsg struct {
	TaskID string
}

// NewTaskMsg asks the parent to open the create form.
type NewTaskMsg struct{}

// Model is the task list screen: the tasks visible to the session, with
// status pills, search and sorting.
type Model struct {
	list        list.Model
	store       store.Store
	session     *session.Store
	keys        *keys.KeyMap
	styles      theme.Styles
	tasks       []model.Task
	filter      view.StatusFilter
	sortIndex   int
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new task list model.
func New(s store.Store, sess *session.Store, k *keys.KeyMap, styles theme.Styles, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{Styles: styles}, width, listHeight(height))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	si := textinput.New()
	si.Placeholder = "Görev, lokasyon veya ekip ara"
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		store:       s,
		session:     sess,
		keys:        k,
		styles:      styles,
		filter:      view.FilterAll,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// listHeight leaves room for the heading, pills and search line.
func listHeight(h int) int { return max(h-4, 1) }

// Init returns a command that loads the initial set of tasks.
func (m Model) Init() tea.Cmd {
	return m.LoadTasks()
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TasksLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.tasks = msg.Tasks
		return m, m.refresh()

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode. The list
// narrows as the query is typed.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		return m, m.refresh()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, tea.Batch(cmd, m.refresh())
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(TaskItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedTaskMsg{TaskID: item.Task.ID}
		}

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.CycleFilter):
		m.filter = m.filter.Next()
		return m, m.refresh()

	case key.Matches(msg, m.keys.CycleSort):
		m.sortIndex = (m.sortIndex + 1) % len(view.SortKeys())
		return m, m.refresh()

	case key.Matches(msg, m.keys.New):
		if view.CanCreateTask(m.session.Role()) {
			return m, func() tea.Msg { return NewTaskMsg{} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Visible returns the tasks currently listed, after filter, search and
// sort.
func (m Model) Visible() []model.Task {
	filtered := view.FilterTasks(m.tasks, m.filter, m.searchInput.Value())
	return view.SortTasks(filtered, m.SortKey())
}

// SortKey returns the active sort mode.
func (m Model) SortKey() view.SortKey {
	return view.SortKeys()[m.sortIndex]
}

// Filter returns the active status filter.
func (m Model) Filter() view.StatusFilter {
	return m.filter
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

func (m *Model) refresh() tea.Cmd {
	visible := m.Visible()
	items := make([]list.Item, len(visible))
	for i, t := range visible {
		items[i] = TaskItem{Task: t}
	}
	return m.list.SetItems(items)
}

// View renders the task list view.
func (m Model) View() string {
	p := m.styles.Palette

	heading := "Görevlerim"
	if m.session.Role().IsAdmin() {
		heading = "Tüm Görevler"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Bold(true).Foreground(p.Text).Padding(0, 1).Render(heading),
		m.styles.Muted.Render(fmt.Sprintf("sıralama: %s", m.SortKey().Label())),
	)

	search := m.styles.Muted.Padding(0, 1).Render(m.searchInput.View())
	if !m.searchMode && m.searchInput.Value() == "" {
		search = m.styles.Muted.Padding(0, 1).Render("/ ara")
	}

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = m.renderEmptyState()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderPills(), search, body)
}

// renderPills draws the status filter row with per-status counts. Counts
// ignore the search query.
func (m Model) renderPills() string {
	counts := view.CountByStatus(m.tasks)

	var parts []string
	for _, f := range view.Filters() {
		label := fmt.Sprintf("%s %d", f.Label(), counts.Of(f))
		if f == m.filter {
			parts = append(parts, m.styles.ActiveTab.Render(label))
			continue
		}
		parts = append(parts, m.styles.Tab.Render(label))
	}
	return strings.Join(parts, " ")
}

// renderEmptyState shows guidance text when no tasks match.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(listHeight(m.height)).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(m.styles.Palette.Muted)

	if len(m.tasks) > 0 {
		return style.Render("Eşleşen görev yok.\nFiltreyi veya aramayı değiştir.")
	}
	return style.Render("Henüz görev yok.")
}

// LoadTasks returns a tea.Cmd that reads the store and scopes the result
// to the current session.
func (m Model) LoadTasks() tea.Cmd {
	s, sess := m.store, m.session
	return func() tea.Msg {
		tasks, err := s.Tasks(context.Background())
		if err != nil {
			return TasksLoadedMsg{Err: err}
		}
		return TasksLoadedMsg{Tasks: view.ScopeTasks(tasks, sess.Role(), sess.UserName())}
	}
}

// SetStyles switches the palette.
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.list.SetDelegate(ItemDelegate{Styles: s})
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, listHeight(height))
	m.searchInput.Width = width - 4
}
