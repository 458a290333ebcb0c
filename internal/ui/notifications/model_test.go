package notifications

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gorev-takip/internal/keys"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/store"
	"github.com/nhle/gorev-takip/internal/theme"
)

var (
	down  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	up    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func newScreen(items []model.Notification) Model {
	m := New(keys.DefaultKeyMap(), theme.NewStyles(theme.Dark), 80, 24)
	m.SetNotifications(items)
	return m
}

func TestEnterOpensReferencedTask(t *testing.T) {
	m := newScreen(store.FixtureNotifications())

	_, cmd := m.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, OpenTaskMsg{TaskID: "1"}, cmd())

	m, _ = m.Update(down)
	_, cmd = m.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, OpenTaskMsg{TaskID: "2"}, cmd())
}

func TestEnterWithoutTaskDoesNothing(t *testing.T) {
	m := newScreen([]model.Notification{
		{ID: "x", Type: model.NotificationCommented, Title: "Yorum"},
	})

	_, cmd := m.Update(enter)
	assert.Nil(t, cmd)
}

func TestEnterOnEmptyListDoesNothing(t *testing.T) {
	m := newScreen(nil)

	_, cmd := m.Update(enter)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Bildirim yok.")
}

func TestCursorStaysInRange(t *testing.T) {
	m := newScreen(store.FixtureNotifications())

	m, _ = m.Update(up)
	n, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "n1", n.ID)

	m, _ = m.Update(down)
	m, _ = m.Update(down)
	n, _ = m.Selected()
	assert.Equal(t, "n2", n.ID)

	m.SetNotifications(store.FixtureNotifications()[:1])
	n, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, "n1", n.ID)
}
