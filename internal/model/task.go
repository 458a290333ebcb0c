package model

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Statuses returns every status in workflow order.
func Statuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusDone}
}

// Label returns the Turkish display label for the status.
func (s TaskStatus) Label() string {
	switch s {
	case StatusPending:
		return "Beklemede"
	case StatusInProgress:
		return "Devam Ediyor"
	case StatusDone:
		return "Tamamlandı"
	default:
		return string(s)
	}
}

// Next returns the following status in workflow order, wrapping from
// done back to pending.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusPending
	}
}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Priorities returns every priority from most to least urgent.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Label returns the Turkish display label for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "Yüksek"
	case PriorityMedium:
		return "Orta"
	case PriorityLow:
		return "Düşük"
	default:
		return string(p)
	}
}

// Rank orders priorities for sorting; lower is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Category is the closed set of work areas a task belongs to.
type Category string

const (
	CategoryField       Category = "FIELD"
	CategoryMaintenance Category = "MAINTENANCE"
	CategoryWarehouse   Category = "WAREHOUSE"
	CategoryOperations  Category = "OPERATIONS"
)

// Categories returns every category.
func Categories() []Category {
	return []Category{CategoryField, CategoryMaintenance, CategoryWarehouse, CategoryOperations}
}

// Label returns the Turkish display label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryField:
		return "Saha"
	case CategoryMaintenance:
		return "Bakım"
	case CategoryWarehouse:
		return "Depo"
	case CategoryOperations:
		return "Operasyon"
	default:
		return string(c)
	}
}

// Task is one unit of assigned work.
type Task struct {
	// ID is generated by the store on creation and never changes.
	ID string `json:"id" db:"id"`

	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`

	// PersonFullName is the assignee's display name. There is no user
	// table behind it.
	PersonFullName string `json:"person_full_name" db:"person_full_name"`

	Status   TaskStatus `json:"status" db:"status"`
	Priority Priority   `json:"priority" db:"priority"`

	// DateText is the short display form of the due date ("12 Şub").
	// DueISO ("2026-02-12") is the source of truth; whoever writes one
	// writes both.
	DateText string `json:"date_text" db:"date_text"`
	DueISO   string `json:"due_iso" db:"due_iso"`

	Location string   `json:"location" db:"location"`
	Team     string   `json:"team" db:"team"`
	Category Category `json:"category" db:"category"`
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool { return t.Status == StatusDone }

// NewTask holds every task field except the id, which the store assigns.
type NewTask struct {
	Title          string
	Description    string
	PersonFullName string
	Status         TaskStatus
	Priority       Priority
	DateText       string
	DueISO         string
	Location       string
	Team           string
	Category       Category
}

// WithID builds the stored task from the new-task fields.
func (n NewTask) WithID(id string) Task {
	return Task{
		ID:             id,
		Title:          n.Title,
		Description:    n.Description,
		PersonFullName: n.PersonFullName,
		Status:         n.Status,
		Priority:       n.Priority,
		DateText:       n.DateText,
		DueISO:         n.DueISO,
		Location:       n.Location,
		Team:           n.Team,
		Category:       n.Category,
	}
}
