package models

import "time"

// TaskType discriminates which collection a note's linked task lives in.
type TaskType string

const (
	TaskTypeTeam     TaskType = "team"
	TaskTypePersonal TaskType = "personal"
)

// Attachment is a file attached to a note. URL is either a data URL
// holding the encoded bytes or an opaque reference.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Note is a wiki note. Content is an opaque HTML-ish string supplied by
// the editing surface; the store never parses it. A note may link to at
// most one task, identified by LinkedTaskID plus LinkedTaskType.
//
// Invariant: UpdatedAt >= CreatedAt, and UpdatedAt is refreshed on every
// mutation including a pin toggle.
type Note struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Content        string       `json:"content"`
	Color          string       `json:"color,omitempty"`
	LinkedTaskID   string       `json:"linkedTaskId,omitempty"`
	LinkedTaskType TaskType     `json:"linkedTaskType,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	Pinned         bool         `json:"pinned,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// Linked reports whether the note references a task.
func (n Note) Linked() bool {
	return n.LinkedTaskID != ""
}

// HasAttachments reports whether the note carries at least one attachment.
func (n Note) HasAttachments() bool {
	return len(n.Attachments) > 0
}
