package store_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/store"
	"github.com/nhle/gorev-takip/tests/testutil"
)

func newTaskX() model.NewTask {
	return model.NewTask{
		Title:          "X",
		PersonFullName: "Ayşe Kara",
		DueISO:         "2026-03-01",
		DateText:       "1 Mar",
		Status:         model.StatusPending,
		Priority:       model.PriorityMedium,
		Description:    "d",
		Location:       "L",
		Team:           "T",
		Category:       model.CategoryField,
	}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, s store.Store)) {
	for name, open := range testutil.Backends() {
		t.Run(name, func(t *testing.T) {
			fn(t, open(t))
		})
	}
}

func mustTasks(t *testing.T, s store.Store) []model.Task {
	t.Helper()
	tasks, err := s.Tasks(context.Background())
	require.NoError(t, err)
	return tasks
}

func mustNotifs(t *testing.T, s store.Store) []model.Notification {
	t.Helper()
	notifs, err := s.Notifications(context.Background())
	require.NoError(t, err)
	return notifs
}

func TestFixtureOrder(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		assert.Equal(t, store.FixtureTasks(), mustTasks(t, s))
		assert.Equal(t, store.FixtureNotifications(), mustNotifs(t, s))
	})
}

func TestAddTaskPrependsTaskAndNotification(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()
		beforeTasks := mustTasks(t, s)
		beforeNotifs := mustNotifs(t, s)

		id, err := s.AddTask(ctx, newTaskX())
		require.NoError(t, err)
		require.NotEmpty(t, id)

		tasks := mustTasks(t, s)
		require.Len(t, tasks, len(beforeTasks)+1)
		assert.Equal(t, newTaskX().WithID(id), tasks[0])
		assert.Equal(t, beforeTasks, tasks[1:])

		notifs := mustNotifs(t, s)
		require.Len(t, notifs, len(beforeNotifs)+1)
		n := notifs[0]
		assert.Equal(t, id, n.TaskID)
		assert.Equal(t, model.ScopeEmployee, n.UserScope)
		assert.Equal(t, model.NotificationAssigned, n.Type)
		assert.Equal(t, "Yeni Görev Atandı", n.Title)
		assert.Equal(t, `Size "X" görevi atandı`, n.Message)
		assert.Equal(t, "1 Mar 2026", n.DateText)
		assert.Equal(t, "Ayşe Kara", n.Assignee)
		assert.NotEqual(t, id, n.ID)
		assert.Equal(t, beforeNotifs, notifs[1:])
	})
}

func TestAddTaskScenarioAgainstFixtures(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		id, err := s.AddTask(context.Background(), newTaskX())
		require.NoError(t, err)

		tasks := mustTasks(t, s)
		require.Len(t, tasks, 5)
		assert.Equal(t, "X", tasks[0].Title)

		notifs := mustNotifs(t, s)
		assert.True(t, strings.Contains(notifs[0].Message, "X"))
		assert.Equal(t, id, notifs[0].TaskID)
	})
}

func TestAddTaskGeneratesDistinctIDs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			id, err := s.AddTask(ctx, newTaskX())
			require.NoError(t, err)
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}

		ids := map[string]bool{}
		for _, n := range mustNotifs(t, s) {
			require.False(t, ids[n.ID], "duplicate notification id %s", n.ID)
			ids[n.ID] = true
		}
	})
}

func TestAddTaskAcceptsUnvalidatedInput(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		id, err := s.AddTask(context.Background(), model.NewTask{DueISO: "not-a-date"})
		require.NoError(t, err)

		task, ok, err := s.TaskByID(context.Background(), id)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "", task.Title)

		notifs := mustNotifs(t, s)
		assert.Equal(t, "not-a-date", notifs[0].DateText)
		assert.Equal(t, `Size "" görevi atandı`, notifs[0].Message)
	})
}

func TestUpdateTaskUnknownIDIsNoop(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		before := mustTasks(t, s)
		notifsBefore := mustNotifs(t, s)

		err := s.UpdateTask(context.Background(), "missing", model.TaskPatch{
			Title:  model.Ptr("nope"),
			Status: model.Ptr(model.StatusDone),
		})
		require.NoError(t, err)

		assert.Equal(t, before, mustTasks(t, s))
		assert.Equal(t, notifsBefore, mustNotifs(t, s))
	})
}

func TestUpdateTaskStatusScenario(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		before := mustTasks(t, s)

		err := s.UpdateTask(context.Background(), "2", model.TaskPatch{
			Status: model.Ptr(model.StatusDone),
		})
		require.NoError(t, err)

		after := mustTasks(t, s)
		require.Len(t, after, len(before))
		for i := range before {
			if before[i].ID != "2" {
				assert.Equal(t, before[i], after[i])
				continue
			}
			assert.Equal(t, model.StatusDone, after[i].Status)
			assert.Equal(t, "Klima Bakımı - Ofis 3", after[i].Title)
			assert.Equal(t, "Ayşe Kara", after[i].PersonFullName)
			want := before[i]
			want.Status = model.StatusDone
			assert.Equal(t, want, after[i])
		}
	})
}

func TestUpdateTaskMergesEveryPatchedField(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		patch := model.TaskPatch{
			Title:          model.Ptr("Yeni başlık"),
			PersonFullName: model.Ptr("Fatma Şahin"),
			Priority:       model.Ptr(model.PriorityHigh),
			Location:       model.Ptr("Depo 2"),
			Category:       model.Ptr(model.CategoryOperations),
		}
		// Only one of the pair is patched; the store does not reconcile.
		patch.DueISO = model.Ptr("2026-05-05")

		require.NoError(t, s.UpdateTask(context.Background(), "1", patch))

		task, ok, err := s.TaskByID(context.Background(), "1")
		require.NoError(t, err)
		require.True(t, ok)

		want := patch.Apply(store.FixtureTasks()[0])
		assert.Equal(t, want, task)
		assert.Equal(t, "12 Şub", task.DateText)
	})
}

func TestUpdateTaskNeverAddsNotifications(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		before := mustNotifs(t, s)
		for _, st := range model.Statuses() {
			require.NoError(t, s.UpdateTask(context.Background(), "4", model.TaskPatch{Status: model.Ptr(st)}))
		}
		assert.Equal(t, before, mustNotifs(t, s))
	})
}

func TestUpdateKeepsOrder(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		id, err := s.AddTask(context.Background(), newTaskX())
		require.NoError(t, err)

		require.NoError(t, s.UpdateTask(context.Background(), "3", model.TaskPatch{Title: model.Ptr("z")}))

		var ids []string
		for _, task := range mustTasks(t, s) {
			ids = append(ids, task.ID)
		}
		assert.Equal(t, []string{id, "1", "2", "3", "4"}, ids)
	})
}

func TestReadsReturnCopies(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		tasks := mustTasks(t, s)
		tasks[0].Title = "mutated"

		notifs := mustNotifs(t, s)
		notifs[0].Message = "mutated"

		assert.Equal(t, store.FixtureTasks()[0].Title, mustTasks(t, s)[0].Title)
		assert.Equal(t, store.FixtureNotifications()[0].Message, mustNotifs(t, s)[0].Message)
	})
}

func TestTaskByIDMissing(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		_, ok, err := s.TaskByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSubscribersRunAfterMutations(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()
		calls := 0
		var seenLen int
		cancel := s.Subscribe(func() {
			calls++
			tasks, err := s.Tasks(ctx)
			if err == nil {
				seenLen = len(tasks)
			}
		})

		_, err := s.AddTask(ctx, newTaskX())
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 5, seenLen)

		require.NoError(t, s.UpdateTask(ctx, "1", model.TaskPatch{Team: model.Ptr("x")}))
		assert.Equal(t, 2, calls)

		require.NoError(t, s.UpdateTask(ctx, "missing", model.TaskPatch{Team: model.Ptr("x")}))
		assert.Equal(t, 2, calls)

		cancel()
		_, err = s.AddTask(ctx, newTaskX())
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})
}

func TestOpen(t *testing.T) {
	for _, backend := range []string{"", model.BackendMemory, model.BackendSQLite} {
		s, err := store.Open(model.StoreConfig{Backend: backend, Seed: true}, zerolog.Nop())
		require.NoError(t, err, backend)
		assert.Len(t, mustTasks(t, s), 4)
		require.NoError(t, s.Close())
	}

	s, err := store.Open(model.StoreConfig{Backend: model.BackendSQLite}, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, mustTasks(t, s))
	assert.Empty(t, mustNotifs(t, s))
	require.NoError(t, s.Close())

	_, err = store.Open(model.StoreConfig{Backend: "postgres"}, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestFixturesAreFreshCopies(t *testing.T) {
	a := store.FixtureTasks()
	a[0].Title = "changed"
	assert.Equal(t, "Depo Envanter Kontrolü", store.FixtureTasks()[0].Title)
	assert.Len(t, store.Employees(), 3)
}
