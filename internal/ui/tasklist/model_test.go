package tasklist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gorev-takip/internal/keys"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/theme"
	"github.com/nhle/gorev-takip/internal/view"
	"github.com/nhle/gorev-takip/tests/testutil"
)

func newLoaded(t *testing.T, role session.Role, user string) Model {
	t.Helper()
	m := New(testutil.NewMemoryStore(t), session.New(role, user),
		keys.DefaultKeyMap(), theme.NewStyles(theme.Dark), 80, 30)
	m, _ = m.Update(m.LoadTasks()())
	return m
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, k := range msgs {
		m, _ = m.Update(k)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestLoadScopesToSession(t *testing.T) {
	admin := newLoaded(t, session.RoleAdmin, "Admin")
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(admin.Visible()))

	employee := newLoaded(t, session.RoleEmployee, "Mehmet Demir")
	assert.Equal(t, []string{"1", "3"}, ids(employee.Visible()))
}

func TestTabCyclesStatusFilter(t *testing.T) {
	m := newLoaded(t, session.RoleAdmin, "Admin")

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, view.FilterFor(model.StatusPending), m.Filter())
	assert.Equal(t, []string{"1", "4"}, ids(m.Visible()))

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, view.FilterAll, m.Filter())
	assert.Len(t, m.Visible(), 4)
}

func TestSearchNarrowsWhileTyping(t *testing.T) {
	m := newLoaded(t, session.RoleAdmin, "Admin")

	m = press(m, runes("/"))
	require.True(t, m.Searching())

	m = typeText(m, "klima")
	assert.Equal(t, []string{"2"}, ids(m.Visible()))

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Searching())
	assert.Equal(t, []string{"2"}, ids(m.Visible()), "enter keeps the query")

	m = press(m, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Searching())
	assert.Len(t, m.Visible(), 4, "esc clears the query")
}

func TestSearchCapturesActionKeys(t *testing.T) {
	m := newLoaded(t, session.RoleAdmin, "Admin")
	m = press(m, runes("/"), runes("n"), runes("s"))

	assert.True(t, m.Searching())
	assert.Equal(t, "ns", m.searchInput.Value())
	assert.Equal(t, view.SortNewest, m.SortKey())
}

func TestSortCycles(t *testing.T) {
	m := newLoaded(t, session.RoleAdmin, "Admin")

	m = press(m, runes("s"))
	assert.Equal(t, view.SortDueDate, m.SortKey())
	assert.Equal(t, []string{"3", "2", "4", "1"}, ids(m.Visible()))

	m = press(m, runes("s"), runes("s"), runes("s"))
	assert.Equal(t, view.SortNewest, m.SortKey())
}

func TestEnterSelectsHighlightedTask(t *testing.T) {
	m := newLoaded(t, session.RoleAdmin, "Admin")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SelectedTaskMsg{TaskID: "1"}, cmd())
}

func TestNewIsAdminOnly(t *testing.T) {
	admin := newLoaded(t, session.RoleAdmin, "Admin")
	_, cmd := admin.Update(runes("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, NewTaskMsg{}, cmd())

	employee := newLoaded(t, session.RoleEmployee, "Mehmet Demir")
	_, cmd = employee.Update(runes("n"))
	assert.Nil(t, cmd)
}

func TestFailedLoadKeepsTasks(t *testing.T) {
	m := newLoaded(t, session.RoleAdmin, "Admin")
	m, _ = m.Update(TasksLoadedMsg{Err: assert.AnError})
	assert.Len(t, m.Visible(), 4)
}
