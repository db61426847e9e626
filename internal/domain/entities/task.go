package entities

import "time"

// TaskStatus is the two-state lifecycle of a dashboard task.
// Toggling moves between open and done; there is no terminal state on
// the client side. Server-side archival is surfaced via Task.Closed as
// a read-only badge, not as a distinct status.
type TaskStatus string

const (
	TaskStatusOpen TaskStatus = "open"
	TaskStatusDone TaskStatus = "done"
)

// Toggle returns the opposite status
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskStatusDone {
		return TaskStatusOpen
	}
	return TaskStatusDone
}

// SyncState tags the outcome of an optimistic task mutation.
// The local flip is applied before the remote call; the tag records
// whether the board confirmed it.
type SyncState string

const (
	SyncConfirmed SyncState = "confirmed"
	SyncPending   SyncState = "pending"
	SyncFailed    SyncState = "failed"
)

// Task is the application's view of one external board card.
// Identity (ID) is the card id and is stable across refreshes as long
// as the board preserves it.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	DueDate     time.Time  `json:"due_date"`
	Assignee    string     `json:"assignee,omitempty"`

	// Source metadata carried through from the board card
	ListID         string    `json:"list_id"`
	ListName       string    `json:"list_name,omitempty"`
	URL            string    `json:"url,omitempty"`
	CommentCount   int       `json:"comment_count"`
	ChecklistCount int       `json:"checklist_count"`
	LastActivityAt time.Time `json:"last_activity_at"`
	Closed         bool      `json:"closed"`
	Labels         []string  `json:"labels,omitempty"`

	// Sync tracks the outcome of the last optimistic mutation on this
	// task, if any.
	Sync SyncState `json:"sync,omitempty"`
}

// TaskGroup is the secondary adapter output: the board's cards grouped
// by list, list order preserved.
type TaskGroup struct {
	ListID   string `json:"list_id"`
	ListName string `json:"list_name,omitempty"`
	Tasks    []Task `json:"tasks"`
}

// TaskFilter selects tasks by status for display
type TaskFilter string

const (
	FilterAll  TaskFilter = "all"
	FilterOpen TaskFilter = "open"
	FilterDone TaskFilter = "done"
)

// IsValid checks if the filter is one of the three predicates
func (f TaskFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterOpen, FilterDone:
		return true
	}
	return false
}

// Matches reports whether a task passes the filter
func (f TaskFilter) Matches(t Task) bool {
	switch f {
	case FilterOpen:
		return t.Status == TaskStatusOpen
	case FilterDone:
		return t.Status == TaskStatusDone
	default:
		return true
	}
}
