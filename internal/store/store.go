package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nhle/gorev-takip/internal/datefmt"
	"github.com/nhle/gorev-takip/internal/model"
)

// Store is the single owner of the task and notification collections.
// Both collections are ordered newest-created first. Reads return copies.
//
// The contract has no domain errors: UpdateTask on an unknown id is a
// silent no-op. Implementations may still return infrastructure errors.
type Store interface {
	Tasks(ctx context.Context) ([]model.Task, error)
	TaskByID(ctx context.Context, id string) (model.Task, bool, error)
	Notifications(ctx context.Context) ([]model.Notification, error)

	// AddTask stores a new task under a generated id, prepends it and
	// prepends one ASSIGNED notification for it. It returns the new id.
	AddTask(ctx context.Context, t model.NewTask) (string, error)

	// UpdateTask merges patch into the task with the given id. It never
	// creates notifications.
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error

	// Subscribe registers fn to run after every mutation.
	Subscribe(fn func()) (cancel func())

	Close() error
}

// Open builds the store selected by cfg and seeds it with the fixture
// data when cfg.Seed is set.
func Open(cfg model.StoreConfig, log zerolog.Logger) (Store, error) {
	var tasks []model.Task
	var notifs []model.Notification
	if cfg.Seed {
		tasks = FixtureTasks()
		notifs = FixtureNotifications()
	}

	switch cfg.Backend {
	case "", model.BackendMemory:
		return NewMemoryStore(log, tasks, notifs), nil
	case model.BackendSQLite:
		s, err := NewSQLiteStore(log)
		if err != nil {
			return nil, err
		}
		if err := s.Seed(context.Background(), tasks, notifs); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Notification title and message used for task assignments.
const (
	assignedTitle   = "Yeni Görev Atandı"
	assignedMessage = "Size \"%s\" görevi atandı"
)

// assignmentNotification builds the notification announcing a newly
// created task.
func assignmentNotification(id string, task model.Task) model.Notification {
	return model.Notification{
		ID:        id,
		Type:      model.NotificationAssigned,
		Title:     assignedTitle,
		Message:   fmt.Sprintf(assignedMessage, task.Title),
		DateText:  longDueText(task.DueISO),
		TaskID:    task.ID,
		UserScope: model.ScopeEmployee,
		Assignee:  task.PersonFullName,
	}
}

// longDueText renders an ISO due date in long Turkish form. An
// unparseable date is shown as given.
func longDueText(dueISO string) string {
	d, err := datefmt.ParseISODate(dueISO)
	if err != nil {
		return dueISO
	}
	return datefmt.FormatLongTR(d)
}
