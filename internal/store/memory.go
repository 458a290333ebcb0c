package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/watch"
)

// MemoryStore implements Store with two slices held for the lifetime of
// the process.
type MemoryStore struct {
	mu        sync.RWMutex
	tasks     []model.Task
	notifs    []model.Notification
	newID     func() string
	log       zerolog.Logger
	listeners watch.Listeners
}

// NewMemoryStore creates a store holding copies of the given tasks and
// notifications, which must already be ordered newest first.
func NewMemoryStore(
	log zerolog.Logger,
	tasks []model.Task,
	notifs []model.Notification,
) *MemoryStore {
	return &MemoryStore{
		tasks:  append([]model.Task(nil), tasks...),
		notifs: append([]model.Notification(nil), notifs...),
		newID:  uuid.NewString,
		log:    log.With().Str("component", "memory_store").Logger(),
	}
}

// Tasks returns a copy of the task collection.
func (s *MemoryStore) Tasks(_ context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...), nil
}

// TaskByID returns the task with the given id.
func (s *MemoryStore) TaskByID(_ context.Context, id string) (model.Task, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true, nil
		}
	}
	return model.Task{}, false, nil
}

// Notifications returns a copy of the notification collection.
func (s *MemoryStore) Notifications(_ context.Context) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Notification(nil), s.notifs...), nil
}

// AddTask prepends a new task and its assignment notification.
func (s *MemoryStore) AddTask(_ context.Context, nt model.NewTask) (string, error) {
	s.mu.Lock()
	task := nt.WithID(s.newID())
	notif := assignmentNotification(s.newID(), task)

	s.tasks = append([]model.Task{task}, s.tasks...)
	s.notifs = append([]model.Notification{notif}, s.notifs...)
	s.mu.Unlock()

	s.log.Debug().
		Str("task_id", task.ID).
		Str("title", task.Title).
		Str("assignee", task.PersonFullName).
		Msg("task added")

	s.listeners.Notify()
	return task.ID, nil
}

// UpdateTask merges patch into the matching task. Unknown ids are ignored.
func (s *MemoryStore) UpdateTask(_ context.Context, id string, patch model.TaskPatch) error {
	s.mu.Lock()
	found := false
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = patch.Apply(s.tasks[i])
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		s.log.Debug().Str("task_id", id).Msg("update for unknown task ignored")
		return nil
	}

	s.log.Debug().Str("task_id", id).Msg("task updated")
	s.listeners.Notify()
	return nil
}

// Subscribe registers fn to run after every mutation.
func (s *MemoryStore) Subscribe(fn func()) func() {
	return s.listeners.Subscribe(fn)
}

// Close is a no-op; the collections live as long as the process.
func (s *MemoryStore) Close() error {
	return nil
}
