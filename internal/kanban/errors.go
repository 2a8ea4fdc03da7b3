package kanban

import "errors"

var (
	ErrEmptyTitle     = errors.New("task title cannot be empty")
	ErrColumnNotFound = errors.New("column not found")
)
