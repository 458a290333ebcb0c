package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/gorev-takip/internal/model"
)

// dataLoadedMsg carries a fresh read of every collection.
type dataLoadedMsg struct {
	tasks  []model.Task
	notifs []model.Notification
	err    error
}

// taskLoadedMsg carries one task for the detail screen.
type taskLoadedMsg struct {
	task  model.Task
	found bool
	err   error
}

// taskCreatedResultMsg is sent after a task is stored.
type taskCreatedResultMsg struct {
	id  string
	err error
}

// taskUpdatedResultMsg is sent after a task is patched.
type taskUpdatedResultMsg struct {
	id  string
	err error
}

// loadData reads tasks and notifications from the store.
func (m Model) loadData() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		tasks, err := s.Tasks(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		notifs, err := s.Notifications(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{tasks: tasks, notifs: notifs}
	}
}

// loadTask reads one task by id.
func (m Model) loadTask(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		t, ok, err := s.TaskByID(context.Background(), id)
		return taskLoadedMsg{task: t, found: ok, err: err}
	}
}

// addTask stores a new task. The store adds the assignment notification.
func (m Model) addTask(nt model.NewTask) tea.Cmd {
	s, log := m.store, m.log
	return func() tea.Msg {
		id, err := s.AddTask(context.Background(), nt)
		if err == nil {
			log.Info().
				Str("task_id", id).
				Str("assignee", nt.PersonFullName).
				Msg("task created")
		}
		return taskCreatedResultMsg{id: id, err: err}
	}
}

// updateTask applies a patch to a stored task.
func (m Model) updateTask(id string, patch model.TaskPatch) tea.Cmd {
	s, log := m.store, m.log
	return func() tea.Msg {
		err := s.UpdateTask(context.Background(), id, patch)
		if err == nil {
			log.Info().Str("task_id", id).Msg("task updated")
		}
		return taskUpdatedResultMsg{id: id, err: err}
	}
}

// advanceStatus moves a task to the given status.
func (m Model) advanceStatus(id string, status model.TaskStatus) tea.Cmd {
	return m.updateTask(id, model.TaskPatch{Status: model.Ptr(status)})
}
