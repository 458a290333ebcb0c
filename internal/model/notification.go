package model

// NotificationType classifies the event a notification reports.
type NotificationType string

const (
	NotificationAssigned      NotificationType = "ASSIGNED"
	NotificationStatusChanged NotificationType = "STATUS_CHANGED"
	NotificationCommented     NotificationType = "COMMENTED"
)

// Scope is the role audience a notification is meant for.
type Scope string

const (
	ScopeAdmin    Scope = "ADMIN"
	ScopeEmployee Scope = "EMPLOYEE"
	ScopeAll      Scope = "ALL"
)

// Notification is an informational record surfaced to a user.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id" db:"id"`

	Type    NotificationType `json:"type" db:"type"`
	Title   string           `json:"title" db:"title"`
	Message string           `json:"message" db:"message"`

	// DateText is display-only; there is no timestamp behind it.
	DateText string `json:"date_text" db:"date_text"`

	// TaskID optionally references a task. Empty means no task.
	// Nothing checks that the task exists.
	TaskID string `json:"task_id,omitempty" db:"task_id"`

	UserScope Scope `json:"user_scope" db:"user_scope"`

	// Assignee is the display name the notification concerns, if any.
	Assignee string `json:"assignee,omitempty" db:"assignee"`
}

// HasTask reports whether the notification references a task.
func (n Notification) HasTask() bool { return n.TaskID != "" }
