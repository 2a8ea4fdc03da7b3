package store

import "errors"

// Validation errors. Not-found conditions on update/delete/toggle are
// deliberately silent no-ops, so there is no not-found error here.
var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrInvalidStatus = errors.New("invalid task status")
)
