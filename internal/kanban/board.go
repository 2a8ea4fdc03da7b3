// Package kanban maintains the project board: per-column task lists
// with drag-and-drop style reassignment between columns. It is a
// sibling of the entity store with the same persistence pattern; column
// counts are derived from the task lists, never stored.
package kanban

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"github.com/minhtran-dev/deskboard/internal/storage"
)

// CardStatus is the display state of a board task.
type CardStatus string

const (
	CardNormal    CardStatus = "normal"
	CardOverdue   CardStatus = "overdue"
	CardCompleted CardStatus = "completed"
)

// Assignee is the person a task is assigned to.
type Assignee struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Initials string `json:"initials"`
}

// Task is a card on the board.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     string     `json:"dueDate"`
	Assignee    Assignee   `json:"assignee"`
	Status      CardStatus `json:"status"`
}

// Column is an ordered list of tasks under a heading.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
	Tasks []Task `json:"tasks"`
}

// Count is the number of tasks in the column. Derived on demand so it
// can never drift from the task list.
func (c Column) Count() int {
	return len(c.Tasks)
}

// Board holds the columns and persists them under their own storage key
// after every mutation.
type Board struct {
	mu      sync.Mutex
	storage *storage.Store
	columns []Column

	newID func() string
}

// NewBoard creates a board persisting to st.
func NewBoard(st *storage.Store) *Board {
	return &Board{
		storage: st,
		newID:   uuid.NewString,
	}
}

// Initialize loads the board from storage, seeding the default columns
// when nothing usable is stored.
func (b *Board) Initialize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var stored []Column
	found, err := b.storage.Load(ctx, storage.KeyKanban, &stored)
	if err != nil {
		slog.Warn("failed to load board, using defaults", "error", err)
	}
	if found && len(stored) > 0 {
		b.columns = stored
		return nil
	}

	b.columns = defaultColumns()
	b.persist(ctx)
	return nil
}

// Columns returns a deep copy of the board.
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := slices.Clone(b.columns)
	for i := range out {
		out[i].Tasks = slices.Clone(out[i].Tasks)
	}
	return out
}

// MoveTask moves a task between columns. Moving a task onto its own
// column is a no-op, as is a task missing from the source column.
func (b *Board) MoveTask(ctx context.Context, taskID, fromID, toID string) error {
	if fromID == toID {
		return nil
	}

	b.mu.Lock()
	from := b.column(fromID)
	to := b.column(toID)
	if from == nil || to == nil {
		b.mu.Unlock()
		return ErrColumnNotFound
	}

	i := slices.IndexFunc(from.Tasks, func(t Task) bool { return t.ID == taskID })
	if i < 0 {
		b.mu.Unlock()
		return nil
	}

	task := from.Tasks[i]
	from.Tasks = slices.Delete(from.Tasks, i, i+1)
	to.Tasks = append(to.Tasks, task)
	b.persist(ctx)
	b.mu.Unlock()

	return nil
}

// CreateTaskRequest carries caller-supplied fields for a new board
// task.
type CreateTaskRequest struct {
	Title       string
	Description string
	DueDate     string
	Assignee    string
	ColumnID    string
}

// CreateTask synthesizes a task (fresh id, initials derived from the
// assignee name) and appends it to the named column.
func (b *Board) CreateTask(ctx context.Context, req CreateTaskRequest) error {
	if req.Title == "" {
		return ErrEmptyTitle
	}

	b.mu.Lock()
	col := b.column(req.ColumnID)
	if col == nil {
		b.mu.Unlock()
		return ErrColumnNotFound
	}

	name := req.Assignee
	if name == "" {
		name = "Unassigned"
	}
	col.Tasks = append(col.Tasks, Task{
		ID:          b.newID(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Assignee:    Assignee{Name: name, Initials: initials(req.Assignee)},
		Status:      CardNormal,
	})
	b.persist(ctx)
	b.mu.Unlock()

	return nil
}

// column returns a pointer into b.columns. Called with the lock held.
func (b *Board) column(id string) *Column {
	for i := range b.columns {
		if b.columns[i].ID == id {
			return &b.columns[i]
		}
	}
	return nil
}

// persist writes the board, logging and swallowing any failure. Called
// with the lock held.
func (b *Board) persist(ctx context.Context) {
	if err := b.storage.Save(ctx, storage.KeyKanban, b.columns); err != nil {
		slog.Warn("board write failed, in-memory state remains authoritative", "error", err)
	}
}

// initials derives a two-letter tag from the first two words of the
// assignee name, or "NU" when blank.
func initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "NU"
	}
	if len(fields) > 2 {
		fields = fields[:2]
	}
	var sb strings.Builder
	for _, f := range fields {
		r := []rune(f)
		sb.WriteRune(unicode.ToUpper(r[0]))
	}
	return sb.String()
}
