package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/store"
	"github.com/nhle/gorev-takip/internal/theme"
	"github.com/nhle/gorev-takip/internal/ui"
	"github.com/nhle/gorev-takip/internal/ui/command"
	"github.com/nhle/gorev-takip/internal/ui/dashboard"
	"github.com/nhle/gorev-takip/internal/ui/detail"
	helpview "github.com/nhle/gorev-takip/internal/ui/help"
	"github.com/nhle/gorev-takip/internal/ui/login"
	"github.com/nhle/gorev-takip/internal/ui/notifications"
	"github.com/nhle/gorev-takip/internal/ui/profile"
	"github.com/nhle/gorev-takip/internal/ui/reports"
	"github.com/nhle/gorev-takip/internal/ui/taskform"
	"github.com/nhle/gorev-takip/internal/ui/tasklist"
	"github.com/nhle/gorev-takip/internal/view"
	"github.com/nhle/gorev-takip/internal/watch"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewDashboard
	ViewTasks
	ViewReports
	ViewNotifications
	ViewProfile
	ViewDetail
	ViewTaskCreate
	ViewTaskEdit
	ViewHelp
	ViewCommand
)

// tabViews maps navigation tab screens to views.
var tabViews = map[string]ViewState{
	view.TabDashboard:     ViewDashboard,
	view.TabTasks:         ViewTasks,
	view.TabReports:       ViewReports,
	view.TabNotifications: ViewNotifications,
	view.TabProfile:       ViewProfile,
}

// Model is the root Bubble Tea model. It routes between screens, owns
// the stores and turns their change notifications into reloads.
type Model struct {
	currentView  ViewState
	previousView ViewState

	// returnView is where the detail and form screens go back to.
	returnView ViewState

	layout  ui.Layout
	store   store.Store
	session *session.Store
	theme   *theme.Store
	watcher *watch.Watcher
	keys    *KeyMap
	log     zerolog.Logger

	loginView     login.Model
	dashboardView dashboard.Model
	taskList      tasklist.Model
	reportsView   reports.Model
	notifView     notifications.Model
	profileView   profile.Model
	detail        detail.Model
	taskForm      taskform.Model
	helpView      helpview.Model
	commandView   command.Model

	ready         bool
	statusMessage string
}

// New creates the root model. All three stores are required; the app
// cannot render anything without them.
func New(s store.Store, sess *session.Store, th *theme.Store, log zerolog.Logger) Model {
	if s == nil || sess == nil || th == nil {
		panic("app: store, session and theme are required")
	}

	keys := DefaultKeyMap()
	styles := th.Styles()

	w := watch.NewWatcher()
	w.Watch(watch.SourceData, s)
	w.Watch(watch.SourceSession, sess)
	w.Watch(watch.SourceTheme, th)

	m := Model{
		currentView:   ViewLogin,
		layout:        ui.NewLayout(80, 24, styles),
		store:         s,
		session:       sess,
		theme:         th,
		watcher:       w,
		keys:          keys,
		log:           log.With().Str("component", "app").Logger(),
		loginView:     login.New(styles, 80, 24),
		dashboardView: dashboard.New(keys, styles, 80, 24),
		taskList:      tasklist.New(s, sess, keys, styles, 80, 24),
		reportsView:   reports.New(styles, 80, 24),
		notifView:     notifications.New(keys, styles, 80, 24),
		profileView:   profile.New(keys, styles, 80, 24),
		detail:        detail.New(keys, styles, 80, 24),
		taskForm:      taskform.New(store.Employees(), styles, 80, 24),
		helpView:      helpview.New(keys, styles, 80, 24),
		commandView:   command.New(styles, 80, 24),
	}
	m.profileView.SetProfile(sess.Profile(), th.IsDark())
	return m
}

// Init starts the login form, the first data load and the change watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loginView.Init(),
		m.taskList.Init(),
		m.loadData(),
		m.watcher.Wait(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height, m.theme.Styles())
		m.ready = true
		m.resize()
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case watch.ChangedMsg:
		return m, tea.Batch(m.handleChange(msg.Source), m.watcher.Wait())

	case watch.StoppedMsg:
		return m, nil

	case dataLoadedMsg:
		if msg.err != nil {
			m.fail("veriler yüklenemedi", msg.err)
			return m, nil
		}
		m.applyData(msg)
		return m, nil

	case tasklist.TasksLoadedMsg:
		if msg.Err != nil {
			m.fail("görevler yüklenemedi", msg.Err)
			return m, nil
		}

	case taskLoadedMsg:
		switch {
		case msg.err != nil:
			m.fail("görev yüklenemedi", msg.err)
		case !msg.found:
			m.detail.SetMissing()
		default:
			m.detail.SetTask(msg.task, m.session.Role(), m.session.UserName())
		}
		return m, nil

	case login.SubmitMsg:
		screen := m.session.Login(msg.Email)
		m.log.Info().
			Str("email", msg.Email).
			Str("role", string(m.session.Role())).
			Msg("logged in")
		m.statusMessage = ""
		m.currentView = landingView(screen)
		return m, tea.Batch(m.loadData(), m.taskList.LoadTasks())

	case login.QuitMsg:
		return m.quit()

	case tasklist.SelectedTaskMsg:
		return m, m.openTask(msg.TaskID)

	case notifications.OpenTaskMsg:
		return m, m.openTask(msg.TaskID)

	case tasklist.NewTaskMsg:
		return m, m.startCreate()

	case detail.BackMsg:
		m.currentView = m.returnView
		return m, nil

	case detail.AdvanceMsg:
		if !view.CanEditTask(m.session.Role()) {
			return m, nil
		}
		return m, m.advanceStatus(msg.TaskID, msg.Status)

	case detail.EditMsg:
		if !view.CanEditTask(m.session.Role()) {
			return m, nil
		}
		m.currentView = ViewTaskEdit
		return m, m.taskForm.StartEdit(msg.Task)

	case taskform.TaskCreatedMsg:
		m.currentView = m.returnView
		return m, m.addTask(msg.Task)

	case taskform.TaskUpdatedMsg:
		m.currentView = ViewDetail
		return m, m.updateTask(msg.ID, msg.Patch)

	case taskform.CancelMsg:
		if m.currentView == ViewTaskEdit {
			m.currentView = ViewDetail
		} else {
			m.currentView = m.returnView
		}
		return m, nil

	case taskCreatedResultMsg:
		if msg.err != nil {
			m.fail("görev oluşturulamadı", msg.err)
			return m, nil
		}
		m.statusMessage = "Görev oluşturuldu"
		return m, nil

	case taskUpdatedResultMsg:
		if msg.err != nil {
			m.fail("görev güncellenemedi", msg.err)
			return m, nil
		}
		if m.detail.TaskID() == msg.id {
			return m, m.loadTask(msg.id)
		}
		return m, nil

	case profile.ToggleThemeMsg:
		m.theme.Toggle()
		m.applyStyles()
		return m, nil

	case profile.LogoutMsg:
		return m, m.logout()

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.currentView == ViewCommand && key.Matches(msg, m.keys.Back) {
			m.currentView = m.previousView
			return m, nil
		}
		if m.isFormView() && key.Matches(msg, m.keys.Back) {
			return m.Update(taskform.CancelMsg{})
		}
		if m.capturesKeys() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()

		case key.Matches(msg, m.keys.Help):
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case key.Matches(msg, m.keys.Command):
			m.previousView = m.currentView
			m.currentView = ViewCommand
			return m, m.commandView.Focus()

		case key.Matches(msg, m.keys.Back) && m.currentView == ViewHelp:
			m.currentView = m.previousView
			return m, nil

		case key.Matches(msg, m.keys.JumpTab) && m.isTabView():
			m.jumpToTab(msg.String())
			return m, nil
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// capturesKeys reports whether the active view consumes every key, so
// the global shortcuts must stay out of its way.
func (m Model) capturesKeys() bool {
	switch m.currentView {
	case ViewLogin, ViewTaskCreate, ViewTaskEdit, ViewCommand:
		return true
	case ViewTasks:
		return m.taskList.Searching()
	}
	return false
}

func (m Model) isFormView() bool {
	return m.currentView == ViewTaskCreate || m.currentView == ViewTaskEdit
}

func (m Model) isTabView() bool {
	switch m.currentView {
	case ViewDashboard, ViewTasks, ViewReports, ViewNotifications, ViewProfile:
		return true
	}
	return false
}

// jumpToTab switches to the tab numbered k (1-based) for the current role.
func (m *Model) jumpToTab(k string) {
	tabs := view.Tabs(m.session.Role())
	i := int(k[0] - '1')
	if i < 0 || i >= len(tabs) {
		return
	}
	m.currentView = tabViews[tabs[i].Screen]
	m.statusMessage = ""
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewReports:
		m.reportsView, cmd = m.reportsView.Update(msg)
	case ViewNotifications:
		m.notifView, cmd = m.notifView.Update(msg)
	case ViewProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewTaskCreate, ViewTaskEdit:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	// The task list also needs its load results while hidden.
	if loaded, ok := msg.(tasklist.TasksLoadedMsg); ok && m.currentView != ViewTasks {
		var listCmd tea.Cmd
		m.taskList, listCmd = m.taskList.Update(loaded)
		cmd = tea.Batch(cmd, listCmd)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Yükleniyor..."
	}

	badge := ""
	tabs := ""
	if m.currentView != ViewLogin {
		badge = fmt.Sprintf("%s · %s", m.session.Profile().FullName, m.session.Role().Label())
		tabs = m.layout.RenderTabs(view.Tabs(m.session.Role()), m.activeTab())
	}

	header := m.layout.RenderHeader("Görev Takip", badge)
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, m.renderContent(), tabs, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTasks:
		return m.taskList.View()
	case ViewReports:
		return m.reportsView.View()
	case ViewNotifications:
		return m.notifView.View()
	case ViewProfile:
		return m.profileView.View()
	case ViewDetail:
		return m.detail.View()
	case ViewTaskCreate, ViewTaskEdit:
		return m.taskForm.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

// activeTab returns the tab to highlight; sub-screens keep the tab they
// were opened from lit.
func (m Model) activeTab() string {
	v := m.currentView
	switch v {
	case ViewDetail, ViewTaskCreate, ViewTaskEdit:
		v = m.returnView
	case ViewHelp, ViewCommand:
		v = m.previousView
	}
	for screen, tv := range tabViews {
		if tv == v {
			return screen
		}
	}
	return ""
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusMessage != "" && m.isTabView() {
		return m.statusMessage
	}

	switch m.currentView {
	case ViewLogin:
		return "enter giriş | ctrl+c çık"
	case ViewHelp:
		return "? kapat | esc geri"
	case ViewCommand:
		return "enter çalıştır | tab tamamla | esc geri"
	case ViewDetail:
		if view.CanEditTask(m.session.Role()) {
			return "esc geri | s durumu ilerlet | e düzenle | j/k kaydır"
		}
		return "esc geri | j/k kaydır"
	case ViewTaskCreate, ViewTaskEdit:
		return "enter gönder | esc iptal"
	case ViewTasks:
		if view.CanCreateTask(m.session.Role()) {
			return "tab filtre | / ara | s sırala | enter aç | n yeni | ? yardım"
		}
		return "tab filtre | / ara | s sırala | enter aç | ? yardım"
	case ViewDashboard:
		return "enter aç | n yeni görev | 1-5 sekme | ? yardım | q çık"
	case ViewNotifications:
		return "enter görevi aç | 1-5 sekme | ? yardım"
	case ViewProfile:
		return "t tema | L çıkış yap | 1-5 sekme | ? yardım"
	default:
		return "1-5 sekme | : komut | ? yardım | q çık"
	}
}

// handleChange reloads whatever depends on the changed source.
func (m *Model) handleChange(src watch.Source) tea.Cmd {
	switch src {
	case watch.SourceTheme:
		m.applyStyles()
		return nil
	case watch.SourceSession:
		m.profileView.SetProfile(m.session.Profile(), m.theme.IsDark())
	}
	return tea.Batch(m.loadData(), m.taskList.LoadTasks())
}

// applyData pushes freshly loaded data into every screen, scoped to the
// current session.
func (m *Model) applyData(d dataLoadedMsg) {
	role, user := m.session.Role(), m.session.UserName()
	scoped := view.ScopeTasks(d.tasks, role, user)

	m.dashboardView.SetTasks(d.tasks)
	m.reportsView.SetTasks(scoped, role)
	m.notifView.SetNotifications(view.ScopeNotifications(d.notifs, role))
	m.profileView.SetProfile(m.session.Profile(), m.theme.IsDark())

	if id := m.detail.TaskID(); id != "" {
		for _, t := range d.tasks {
			if t.ID == id {
				m.detail.SetTask(t, role, user)
				break
			}
		}
	}
}

// applyStyles rebuilds every screen's styles from the theme store.
func (m *Model) applyStyles() {
	s := m.theme.Styles()
	m.layout.Styles = s
	m.loginView.SetStyles(s)
	m.dashboardView.SetStyles(s)
	m.taskList.SetStyles(s)
	m.reportsView.SetStyles(s)
	m.notifView.SetStyles(s)
	m.profileView.SetStyles(s)
	m.profileView.SetProfile(m.session.Profile(), m.theme.IsDark())
	m.detail.SetStyles(s)
	m.taskForm.SetStyles(s)
	m.helpView.SetStyles(s)
	m.commandView.SetStyles(s)
}

func (m *Model) resize() {
	w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
	m.loginView.SetSize(w, h)
	m.dashboardView.SetSize(w, h)
	m.taskList.SetSize(w, h)
	m.reportsView.SetSize(w, h)
	m.notifView.SetSize(w, h)
	m.profileView.SetSize(w, h)
	m.detail.SetSize(w, h)
	m.taskForm.SetSize(w, h)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
}

// openTask shows the detail screen for id, remembering where to go back.
func (m *Model) openTask(id string) tea.Cmd {
	if m.currentView != ViewDetail {
		m.returnView = m.currentView
	}
	m.currentView = ViewDetail
	return m.loadTask(id)
}

// startCreate opens the create form for admins.
func (m *Model) startCreate() tea.Cmd {
	if !view.CanCreateTask(m.session.Role()) {
		return nil
	}
	if m.isTabView() {
		m.returnView = m.currentView
	} else {
		m.returnView = ViewTasks
	}
	m.currentView = ViewTaskCreate
	return m.taskForm.StartCreate()
}

func (m *Model) logout() tea.Cmd {
	m.log.Info().Str("user", m.session.UserName()).Msg("logged out")
	m.currentView = ViewLogin
	m.statusMessage = ""
	return m.loginView.Reset()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.watcher.Stop()
	return m, tea.Quit
}

// fail records an error for the status bar and the log.
func (m *Model) fail(what string, err error) {
	m.log.Error().Err(err).Msg(what)
	m.statusMessage = fmt.Sprintf("Hata: %s", what)
}

// landingView maps a session landing screen to a view.
func landingView(s session.Screen) ViewState {
	if s == session.ScreenDashboard {
		return ViewDashboard
	}
	return ViewTasks
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch cmd {
	case command.Dashboard:
		if m.session.Role().IsAdmin() {
			m.currentView = ViewDashboard
		} else {
			m.currentView = ViewTasks
		}
	case command.Tasks:
		m.currentView = ViewTasks
	case command.Reports:
		m.currentView = ViewReports
	case command.Notifications:
		m.currentView = ViewNotifications
	case command.Profile:
		m.currentView = ViewProfile
	case command.NewTask:
		return m.startCreate()
	case command.Theme:
		m.theme.Toggle()
		m.applyStyles()
	case command.Logout:
		return m.logout()
	case command.Quit, "q":
		m.watcher.Stop()
		return tea.Quit
	default:
		m.statusMessage = fmt.Sprintf("Bilinmeyen komut: %s", cmd)
	}
	return nil
}
