package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/watch"
)

// memoryDSN keeps the database in process memory. Nothing outlives the
// process.
const memoryDSN = ":memory:"

const taskColumns = `id, title, description, person_full_name, status, priority,
	date_text, due_iso, location, team, category`

const notificationColumns = `id, type, title, message, date_text, task_id,
	user_scope, assignee`

// SQLiteStore implements Store on an in-memory SQLite database.
// Insertion order is kept in the seq column; reads sort on it descending.
type SQLiteStore struct {
	db        *sqlx.DB
	newID     func() string
	log       zerolog.Logger
	listeners watch.Listeners
}

// NewSQLiteStore opens an empty in-memory database and runs the schema
// migrations.
func NewSQLiteStore(log zerolog.Logger) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin the
	// pool to one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{
		db:    db,
		newID: uuid.NewString,
		log:   log.With().Str("component", "sqlite_store").Logger(),
	}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection, discarding all data.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Seed loads tasks and notifications given newest first, so that reads
// return them in the same order.
func (s *SQLiteStore) Seed(
	ctx context.Context,
	tasks []model.Task,
	notifs []model.Notification,
) error {
	if len(tasks) == 0 && len(notifs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i := len(tasks) - 1; i >= 0; i-- {
		if err := insertTask(ctx, tx, tasks[i]); err != nil {
			return err
		}
	}
	for i := len(notifs) - 1; i >= 0; i-- {
		if err := insertNotification(ctx, tx, notifs[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

// Tasks returns every task, newest first.
func (s *SQLiteStore) Tasks(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	err := s.db.SelectContext(ctx, &tasks,
		"SELECT "+taskColumns+" FROM tasks ORDER BY seq DESC")
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return tasks, nil
}

// TaskByID returns the task with the given id.
func (s *SQLiteStore) TaskByID(ctx context.Context, id string) (model.Task, bool, error) {
	var task model.Task
	err := s.db.GetContext(ctx, &task,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, false, nil
	}
	if err != nil {
		return model.Task{}, false, fmt.Errorf("getting task %s: %w", id, err)
	}
	return task, true, nil
}

// Notifications returns every notification, newest first.
func (s *SQLiteStore) Notifications(ctx context.Context) ([]model.Notification, error) {
	notifs := []model.Notification{}
	err := s.db.SelectContext(ctx, &notifs,
		"SELECT "+notificationColumns+" FROM notifications ORDER BY seq DESC")
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	return notifs, nil
}

// AddTask inserts the task and its assignment notification in one
// transaction.
func (s *SQLiteStore) AddTask(ctx context.Context, nt model.NewTask) (string, error) {
	task := nt.WithID(s.newID())
	notif := assignmentNotification(s.newID(), task)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTask(ctx, tx, task); err != nil {
		return "", err
	}
	if err := insertNotification(ctx, tx, notif); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing task %s: %w", task.ID, err)
	}

	s.log.Debug().
		Str("task_id", task.ID).
		Str("title", task.Title).
		Str("assignee", task.PersonFullName).
		Msg("task added")

	s.listeners.Notify()
	return task.ID, nil
}

// UpdateTask merges patch into the matching task. Unknown ids are ignored.
func (s *SQLiteStore) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current model.Task
	err = tx.GetContext(ctx, &current,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debug().Str("task_id", id).Msg("update for unknown task ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("getting task %s: %w", id, err)
	}

	t := patch.Apply(current)
	_, err = tx.ExecContext(ctx, `
		UPDATE tasks SET
			title = ?, description = ?, person_full_name = ?,
			status = ?, priority = ?, date_text = ?, due_iso = ?,
			location = ?, team = ?, category = ?
		WHERE id = ?`,
		t.Title, t.Description, t.PersonFullName,
		string(t.Status), string(t.Priority), t.DateText, t.DueISO,
		t.Location, t.Team, string(t.Category),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating task %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing task %s: %w", id, err)
	}

	s.log.Debug().Str("task_id", id).Msg("task updated")
	s.listeners.Notify()
	return nil
}

// Subscribe registers fn to run after every mutation.
func (s *SQLiteStore) Subscribe(fn func()) func() {
	return s.listeners.Subscribe(fn)
}

func insertTask(ctx context.Context, tx *sqlx.Tx, t model.Task) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.PersonFullName,
		string(t.Status), string(t.Priority), t.DateText, t.DueISO,
		t.Location, t.Team, string(t.Category),
	)
	if err != nil {
		return fmt.Errorf("inserting task %s: %w", t.ID, err)
	}
	return nil
}

func insertNotification(ctx context.Context, tx *sqlx.Tx, n model.Notification) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, string(n.Type), n.Title, n.Message, n.DateText, n.TaskID,
		string(n.UserScope), n.Assignee,
	)
	if err != nil {
		return fmt.Errorf("inserting notification %s: %w", n.ID, err)
	}
	return nil
}
