package models

// Status represents the workflow state shared by team tasks, personal
// tasks, and board column configuration.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusUrgent     Status = "urgent"
	StatusDone       Status = "done"
)

// AllStatuses returns every valid status in board order.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusUrgent, StatusDone}
}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusUrgent, StatusDone:
		return true
	}
	return false
}
