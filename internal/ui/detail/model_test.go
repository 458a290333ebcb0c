package detail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gorev-takip/internal/keys"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/store"
	"github.com/nhle/gorev-takip/internal/theme"
)

var (
	advance = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}
	edit    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}
)

func newDetail() Model {
	return New(keys.DefaultKeyMap(), theme.NewStyles(theme.Dark), 80, 24)
}

func TestAdminAdvancesAndEdits(t *testing.T) {
	task := store.FixtureTasks()[0]
	m := newDetail()
	m.SetTask(task, session.RoleAdmin, "Admin")

	_, cmd := m.Update(advance)
	require.NotNil(t, cmd)
	assert.Equal(t, AdvanceMsg{TaskID: "1", Status: model.StatusInProgress}, cmd())

	_, cmd = m.Update(edit)
	require.NotNil(t, cmd)
	assert.Equal(t, EditMsg{Task: task}, cmd())
}

func TestEmployeeDetailIsReadOnly(t *testing.T) {
	m := newDetail()
	m.SetTask(store.FixtureTasks()[0], session.RoleEmployee, "Mehmet Demir")
	require.Equal(t, "1", m.TaskID())

	_, cmd := m.Update(advance)
	assert.Nil(t, cmd)
	_, cmd = m.Update(edit)
	assert.Nil(t, cmd)
}

func TestEmployeeDeniedOthersTask(t *testing.T) {
	m := newDetail()
	m.SetTask(store.FixtureTasks()[1], session.RoleEmployee, "Mehmet Demir")

	assert.Contains(t, m.View(), "Bu göreve erişimin yok")
	_, cmd := m.Update(advance)
	assert.Nil(t, cmd)
}

func TestMissingClearsTaskID(t *testing.T) {
	m := newDetail()
	m.SetMissing()

	assert.Empty(t, m.TaskID())
	assert.Contains(t, m.View(), "Görev bulunamadı")
}
