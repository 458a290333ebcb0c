package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/store"
	"github.com/nhle/gorev-takip/internal/theme"
	"github.com/nhle/gorev-takip/internal/ui/command"
	"github.com/nhle/gorev-takip/internal/ui/detail"
	"github.com/nhle/gorev-takip/internal/ui/login"
	"github.com/nhle/gorev-takip/internal/ui/profile"
	"github.com/nhle/gorev-takip/internal/ui/taskform"
	"github.com/nhle/gorev-takip/internal/ui/tasklist"
	"github.com/nhle/gorev-takip/internal/watch"
	"github.com/nhle/gorev-takip/tests/testutil"
)

type harness struct {
	m     Model
	store *store.MemoryStore
	sess  *session.Store
	theme *theme.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store: testutil.NewMemoryStore(t),
		sess:  session.New(session.RoleEmployee, "Mehmet Demir"),
		theme: theme.NewStore(true),
	}
	h.m = New(h.store, h.sess, h.theme, zerolog.Nop())
	t.Cleanup(h.m.watcher.Stop)
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

// run sends msg and feeds the message of the returned command back in.
// Only use it where the command is a single store call.
func (h *harness) run(t *testing.T, msg tea.Msg) {
	t.Helper()
	cmd := h.send(msg)
	require.NotNil(t, cmd)
	h.send(cmd())
}

func (h *harness) loginAs(email string) {
	h.send(login.SubmitMsg{Email: email})
}

func TestNewPanicsWithoutStores(t *testing.T) {
	assert.Panics(t, func() {
		New(nil, session.New(session.RoleAdmin, ""), theme.NewStore(true), zerolog.Nop())
	})
	assert.Panics(t, func() {
		New(testutil.NewMemoryStore(t), nil, theme.NewStore(true), zerolog.Nop())
	})
}

func TestStartsOnLogin(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ViewLogin, h.m.currentView)
}

func TestLoginRoutesByRole(t *testing.T) {
	h := newHarness(t)

	h.loginAs("admin@gorevtakip.com")
	assert.Equal(t, ViewDashboard, h.m.currentView)
	assert.Equal(t, session.RoleAdmin, h.sess.Role())

	h.send(profile.LogoutMsg{})
	assert.Equal(t, ViewLogin, h.m.currentView)

	h.loginAs("mehmet@gorevtakip.com")
	assert.Equal(t, ViewTasks, h.m.currentView)
}

func TestEmployeeCannotOpenCreateForm(t *testing.T) {
	h := newHarness(t)
	h.loginAs("mehmet@gorevtakip.com")

	cmd := h.send(tasklist.NewTaskMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, ViewTasks, h.m.currentView)
}

func TestAdminCreatesTask(t *testing.T) {
	h := newHarness(t)
	h.loginAs("admin@gorevtakip.com")

	h.send(tasklist.NewTaskMsg{})
	require.Equal(t, ViewTaskCreate, h.m.currentView)

	nt := model.NewTask{
		Title:          "Jeneratör Kontrolü",
		PersonFullName: "Ayşe Kara",
		Status:         model.StatusPending,
		Priority:       model.PriorityHigh,
		DateText:       "5 Mar",
		DueISO:         "2026-03-05",
		Category:       model.CategoryMaintenance,
	}
	h.run(t, taskform.TaskCreatedMsg{Task: nt})

	assert.Equal(t, ViewDashboard, h.m.currentView)
	assert.Equal(t, "Görev oluşturuldu", h.m.statusMessage)

	tasks, err := h.store.Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 5)
	assert.Equal(t, "Jeneratör Kontrolü", tasks[0].Title)

	notifs, err := h.store.Notifications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tasks[0].ID, notifs[0].TaskID)
	assert.Equal(t, "5 Mar 2026", notifs[0].DateText)
}

func TestFormEscReturns(t *testing.T) {
	h := newHarness(t)
	h.loginAs("admin@gorevtakip.com")
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	require.Equal(t, ViewTasks, h.m.currentView)

	h.send(tasklist.NewTaskMsg{})
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewTasks, h.m.currentView)
}

func TestEmployeeSeesAccessNoticeOnOthersTask(t *testing.T) {
	h := newHarness(t)
	h.loginAs("mehmet@gorevtakip.com")

	h.run(t, tasklist.SelectedTaskMsg{TaskID: "2"})
	assert.Equal(t, ViewDetail, h.m.currentView)
	assert.Contains(t, h.m.detail.View(), "Bu göreve erişimin yok")

	h.send(detail.BackMsg{})
	assert.Equal(t, ViewTasks, h.m.currentView)
}

func TestMissingTask(t *testing.T) {
	h := newHarness(t)
	h.loginAs("admin@gorevtakip.com")

	h.run(t, tasklist.SelectedTaskMsg{TaskID: "nope"})
	assert.Contains(t, h.m.detail.View(), "Görev bulunamadı")
}

func TestAdvanceStatusUpdatesStore(t *testing.T) {
	h := newHarness(t)
	h.loginAs("admin@gorevtakip.com")
	h.run(t, tasklist.SelectedTaskMsg{TaskID: "1"})

	cmd := h.send(detail.AdvanceMsg{TaskID: "1", Status: model.StatusInProgress})
	require.NotNil(t, cmd)
	reload := h.send(cmd())
	require.NotNil(t, reload, "detail reloads the updated task")
	h.send(reload())

	got, ok, err := h.store.TaskByID(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.StatusInProgress, got.Status)
	assert.Equal(t, "1", h.m.detail.TaskID())
}

func TestEditIsAdminOnly(t *testing.T) {
	h := newHarness(t)
	h.loginAs("mehmet@gorevtakip.com")

	h.send(detail.EditMsg{Task: model.Task{ID: "1"}})
	assert.NotEqual(t, ViewTaskEdit, h.m.currentView)

	h.loginAs("admin@gorevtakip.com")
	h.send(detail.EditMsg{Task: model.Task{ID: "1", DueISO: "2026-02-12"}})
	assert.Equal(t, ViewTaskEdit, h.m.currentView)
}

func TestDataIsScopedPerRole(t *testing.T) {
	h := newHarness(t)

	h.loginAs("mehmet@gorevtakip.com")
	h.send(h.m.loadData()())
	n, ok := h.m.notifView.Selected()
	require.True(t, ok)
	assert.Equal(t, "n1", n.ID)

	h.loginAs("admin@gorevtakip.com")
	h.send(h.m.loadData()())
	n, ok = h.m.notifView.Selected()
	require.True(t, ok)
	assert.Equal(t, "n2", n.ID)
}

func TestJumpTabFollowsRole(t *testing.T) {
	h := newHarness(t)
	h.loginAs("admin@gorevtakip.com")

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	assert.Equal(t, ViewReports, h.m.currentView)

	h.loginAs("mehmet@gorevtakip.com")
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	assert.Equal(t, ViewTasks, h.m.currentView)
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	assert.Equal(t, ViewTasks, h.m.currentView, "employees have four tabs")
}

func TestCommands(t *testing.T) {
	h := newHarness(t)
	h.loginAs("mehmet@gorevtakip.com")

	h.send(command.CommandMsg(command.Dashboard))
	assert.Equal(t, ViewTasks, h.m.currentView)

	h.send(command.CommandMsg(command.Notifications))
	assert.Equal(t, ViewNotifications, h.m.currentView)

	h.send(command.CommandMsg(command.Theme))
	assert.False(t, h.theme.IsDark())

	h.send(command.CommandMsg("dans"))
	assert.Contains(t, h.m.statusMessage, "dans")
}

func TestProfileToggleTheme(t *testing.T) {
	h := newHarness(t)
	h.send(profile.ToggleThemeMsg{})
	assert.False(t, h.theme.IsDark())
	assert.Equal(t, theme.Light, h.m.layout.Styles.Palette)
}

func TestStoreChangesReachTheWatcher(t *testing.T) {
	h := newHarness(t)

	_, err := h.store.AddTask(context.Background(), model.NewTask{Title: "x"})
	require.NoError(t, err)

	msg := h.m.watcher.Wait()()
	assert.Equal(t, watch.ChangedMsg{Source: watch.SourceData}, msg)
	assert.NotNil(t, h.send(msg))
}

func TestTaskListLoadFailureIsReported(t *testing.T) {
	h := newHarness(t)
	h.loginAs("admin@gorevtakip.com")

	cmd := h.send(tasklist.TasksLoadedMsg{Err: assert.AnError})
	assert.Nil(t, cmd)
	assert.Equal(t, "Hata: görevler yüklenemedi", h.m.statusMessage)
	assert.Equal(t, ViewDashboard, h.m.currentView)
}

func TestHiddenTaskListReceivesLoads(t *testing.T) {
	h := newHarness(t)
	h.loginAs("admin@gorevtakip.com")
	h.send(tasklist.NewTaskMsg{})
	require.Equal(t, ViewTaskCreate, h.m.currentView)

	h.send(tasklist.TasksLoadedMsg{Tasks: store.FixtureTasks()[:2]})

	assert.Equal(t, ViewTaskCreate, h.m.currentView)
	assert.Len(t, h.m.taskList.Visible(), 2)
}

func TestEmployeeCannotAdvanceStatus(t *testing.T) {
	h := newHarness(t)
	h.loginAs("mehmet@gorevtakip.com")
	h.run(t, tasklist.SelectedTaskMsg{TaskID: "1"})
	require.Equal(t, "1", h.m.detail.TaskID())

	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}))
	assert.Nil(t, h.send(detail.AdvanceMsg{TaskID: "1", Status: model.StatusInProgress}))

	got, ok, err := h.store.TaskByID(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.StatusPending, got.Status)
}

func TestNewTaskCommandOpensForm(t *testing.T) {
	h := newHarness(t)
	h.loginAs("admin@gorevtakip.com")

	h.send(command.CommandMsg(command.NewTask))
	assert.Equal(t, ViewTaskCreate, h.m.currentView)
}
