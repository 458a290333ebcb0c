// Package view computes the read projections the screens render: which
// tasks and notifications a role sees, filters, counts and report
// figures. Every function returns new slices and leaves its input alone.
package view

import (
	"sort"
	"strings"

	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/session"
)

// ScopeTasks returns the tasks visible to the given role: everything for
// admins, only tasks assigned to user for everyone else.
func ScopeTasks(tasks []model.Task, role session.Role, user string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if role.IsAdmin() || t.PersonFullName == user {
			out = append(out, t)
		}
	}
	return out
}

// StatusFilter narrows a task list to one status. The zero value
// (FilterAll) keeps every status.
type StatusFilter string

// FilterAll keeps every status.
const FilterAll StatusFilter = ""

// FilterFor returns the filter matching status s.
func FilterFor(s model.TaskStatus) StatusFilter { return StatusFilter(s) }

// Filters returns the filter pills in display order.
func Filters() []StatusFilter {
	out := []StatusFilter{FilterAll}
	for _, s := range model.Statuses() {
		out = append(out, FilterFor(s))
	}
	return out
}

// Next returns the following filter in display order, wrapping around.
func (f StatusFilter) Next() StatusFilter {
	all := Filters()
	for i, x := range all {
		if x == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// Label returns the pill text.
func (f StatusFilter) Label() string {
	switch f {
	case FilterAll:
		return "Tümü"
	case FilterFor(model.StatusPending):
		return "Beklemede"
	case FilterFor(model.StatusInProgress):
		return "Devam"
	case FilterFor(model.StatusDone):
		return "Tamam"
	default:
		return string(f)
	}
}

// Matches reports whether t passes the filter.
func (f StatusFilter) Matches(t model.Task) bool {
	return f == FilterAll || model.TaskStatus(f) == t.Status
}

// FilterTasks keeps tasks passing the status filter whose title,
// location, team or assignee contains query, case-insensitively.
// A blank query matches everything.
func FilterTasks(tasks []model.Task, f StatusFilter, query string) []model.Task {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !f.Matches(t) {
			continue
		}
		if q != "" && !strings.Contains(searchText(t), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func searchText(t model.Task) string {
	return strings.ToLower(strings.Join([]string{t.Title, t.Location, t.Team, t.PersonFullName}, " "))
}

// StatusCounts holds how many tasks are in each status.
type StatusCounts struct {
	All        int
	Pending    int
	InProgress int
	Done       int
}

// Of returns the count shown on the pill for f.
func (c StatusCounts) Of(f StatusFilter) int {
	switch model.TaskStatus(f) {
	case model.StatusPending:
		return c.Pending
	case model.StatusInProgress:
		return c.InProgress
	case model.StatusDone:
		return c.Done
	default:
		return c.All
	}
}

// CountByStatus counts tasks per status.
func CountByStatus(tasks []model.Task) StatusCounts {
	c := StatusCounts{All: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusInProgress:
			c.InProgress++
		case model.StatusDone:
			c.Done++
		}
	}
	return c
}

// Summary is the headline figures of the reports and dashboard screens.
type Summary struct {
	StatusCounts

	// Active is pending plus in progress.
	Active int

	// CompletionRate is Done/All, or 0 for no tasks.
	CompletionRate float64
}

// Summarize computes the report summary for tasks.
func Summarize(tasks []model.Task) Summary {
	c := CountByStatus(tasks)
	s := Summary{StatusCounts: c, Active: c.Pending + c.InProgress}
	if c.All > 0 {
		s.CompletionRate = float64(c.Done) / float64(c.All)
	}
	return s
}

// AssigneeCount is a per-person figure.
type AssigneeCount struct {
	Name  string
	Count int
}

// CompletedByAssignee counts completed tasks per assignee. Every
// assignee that appears in tasks is listed, sorted by name.
func CompletedByAssignee(tasks []model.Task) []AssigneeCount {
	counts := make(map[string]int)
	for _, t := range tasks {
		if _, ok := counts[t.PersonFullName]; !ok {
			counts[t.PersonFullName] = 0
		}
		if t.IsDone() {
			counts[t.PersonFullName]++
		}
	}

	out := make([]AssigneeCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, AssigneeCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ScopeNotifications returns the notifications the role sees. Admins see
// everything not aimed at employees only; everyone else sees employee
// and all-hands notifications.
func ScopeNotifications(notifs []model.Notification, role session.Role) []model.Notification {
	out := make([]model.Notification, 0, len(notifs))
	for _, n := range notifs {
		if role.IsAdmin() {
			if n.UserScope != model.ScopeEmployee {
				out = append(out, n)
			}
			continue
		}
		if n.UserScope == model.ScopeEmployee || n.UserScope == model.ScopeAll {
			out = append(out, n)
		}
	}
	return out
}

// CanViewTask reports whether the user may open the task detail. Admins
// may open anything; employees only their own tasks. An employee with no
// name set is not restricted.
func CanViewTask(role session.Role, user string, t model.Task) bool {
	if role.IsAdmin() || user == "" {
		return true
	}
	return t.PersonFullName == user
}

// CanCreateTask reports whether the role may create tasks.
func CanCreateTask(role session.Role) bool { return role.IsAdmin() }

// CanEditTask reports whether the role may edit task fields.
func CanEditTask(role session.Role) bool { return role.IsAdmin() }

// SortKey selects the order of a sorted task projection.
type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortDueDate  SortKey = "due"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
)

// SortKeys returns the sort modes in cycling order.
func SortKeys() []SortKey {
	return []SortKey{SortNewest, SortDueDate, SortPriority, SortTitle}
}

// Label returns the display name of the sort mode.
func (k SortKey) Label() string {
	switch k {
	case SortDueDate:
		return "bitiş tarihi"
	case SortPriority:
		return "öncelik"
	case SortTitle:
		return "başlık"
	default:
		return "en yeni"
	}
}

// SortTasks returns a sorted copy of tasks. SortNewest keeps the store
// order. Ties keep their store order.
func SortTasks(tasks []model.Task, by SortKey) []model.Task {
	out := append([]model.Task(nil), tasks...)

	var less func(a, b model.Task) bool
	switch by {
	case SortDueDate:
		// ISO dates sort lexically.
		less = func(a, b model.Task) bool { return a.DueISO < b.DueISO }
	case SortPriority:
		less = func(a, b model.Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case SortTitle:
		less = func(a, b model.Task) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Tab is one entry of the bottom navigation.
type Tab struct {
	Screen string
	Title  string
}

// Tab screens.
const (
	TabDashboard     = "dashboard"
	TabTasks         = "tasks"
	TabReports       = "reports"
	TabNotifications = "notifications"
	TabProfile       = "profile"
)

// Tabs returns the navigation tabs for a role. Only admins get the
// dashboard; reports and profile are titled per role.
func Tabs(role session.Role) []Tab {
	var tabs []Tab
	if role.IsAdmin() {
		tabs = append(tabs, Tab{Screen: TabDashboard, Title: "Dashboard"})
	}
	tabs = append(tabs, Tab{Screen: TabTasks, Title: "Görevler"})

	reports, profile := "Özet", "Profil"
	if role.IsAdmin() {
		reports, profile = "Raporlar", "Ayarlar"
	}
	tabs = append(tabs,
		Tab{Screen: TabReports, Title: reports},
		Tab{Screen: TabNotifications, Title: "Bildirimler"},
		Tab{Screen: TabProfile, Title: profile},
	)
	return tabs
}
