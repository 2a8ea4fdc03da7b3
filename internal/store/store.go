// Package store is the single source of truth for the dashboard
// collections: team tasks, personal tasks, notes, and the status column
// configuration. Consumers receive read snapshots and call the mutation
// API; no entity is shared by reference outside the store boundary.
package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhtran-dev/deskboard/internal/models"
	"github.com/minhtran-dev/deskboard/internal/storage"
)

// Store holds the collections in memory and rewrites the owning
// collection to durable storage after every mutation. Storage-write
// failures are logged and swallowed: the in-memory state stays
// authoritative for the session.
type Store struct {
	mu      sync.Mutex
	storage *storage.Store

	teamTasks     []models.TeamTask
	personalTasks []models.PersonalTask
	notes         []models.Note
	columns       []models.ColumnConfig

	subscribers []func()
	initialized bool

	// Overridable in tests.
	now   func() time.Time
	newID func() string
}

// Snapshot is a read-only copy of every collection.
type Snapshot struct {
	TeamTasks     []models.TeamTask
	PersonalTasks []models.PersonalTask
	Notes         []models.Note
	Columns       []models.ColumnConfig
}

// New creates a store persisting to st.
func New(st *storage.Store) *Store {
	return &Store{
		storage: st,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Initialize loads each collection from storage, seeding the built-in
// defaults for any collection that is absent, empty, or unreadable.
// Subsequent calls simply reload whatever is present.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teamTasks = loadOrSeed(ctx, s.storage, storage.KeyTeamTasks, defaultTeamTasks(s.now()))
	s.personalTasks = loadOrSeed(ctx, s.storage, storage.KeyPersonalTasks, defaultPersonalTasks(s.now()))
	s.notes = loadOrSeed(ctx, s.storage, storage.KeyNotes, defaultNotes(s.now()))
	s.columns = loadOrSeed(ctx, s.storage, storage.KeyColumns, defaultColumns())
	s.initialized = true

	return nil
}

// loadOrSeed returns the stored collection under key, or installs and
// persists defaults when nothing usable is stored.
func loadOrSeed[T any](ctx context.Context, st *storage.Store, key string, defaults []T) []T {
	var stored []T
	found, err := st.Load(ctx, key, &stored)
	if err != nil {
		slog.Warn("failed to load collection, using defaults", "key", key, "error", err)
	}
	if found && len(stored) > 0 {
		return stored
	}

	if err := st.Save(ctx, key, defaults); err != nil {
		slog.Warn("failed to persist default collection", "key", key, "error", err)
	}
	return defaults
}

// Subscribe registers fn to be invoked after every committed mutation.
// The callback runs outside the store lock.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a deep copy of all collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		TeamTasks:     copyTeamTasks(s.teamTasks),
		PersonalTasks: slices.Clone(s.personalTasks),
		Notes:         copyNotes(s.notes),
		Columns:       slices.Clone(s.columns),
	}
}

func copyTeamTasks(tasks []models.TeamTask) []models.TeamTask {
	out := slices.Clone(tasks)
	for i := range out {
		out[i].Labels = slices.Clone(out[i].Labels)
	}
	return out
}

func copyNotes(notes []models.Note) []models.Note {
	out := slices.Clone(notes)
	for i := range out {
		out[i].Attachments = slices.Clone(out[i].Attachments)
	}
	return out
}

// persist writes the collection under key, logging and swallowing any
// failure. Called with the lock held.
func (s *Store) persist(ctx context.Context, key string, value any) {
	if err := s.storage.Save(ctx, key, value); err != nil {
		slog.Warn("storage write failed, in-memory state remains authoritative",
			"key", key, "error", err)
	}
}

// notify invokes every subscriber. Called after the lock is released.
func (s *Store) notify() {
	s.mu.Lock()
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// ============================================================================
// Notes
// ============================================================================

// NoteDraft carries the caller-supplied fields for a new note. ID and
// timestamps are assigned by the store.
type NoteDraft struct {
	Title          string
	Content        string
	Color          string
	LinkedTaskID   string
	LinkedTaskType models.TaskType
	Attachments    []models.Attachment
	Pinned         bool
}

// UpdateNoteRequest is a partial-field merge. Nil fields are left
// untouched.
type UpdateNoteRequest struct {
	Title          *string
	Content        *string
	Color          *string
	LinkedTaskID   *string
	LinkedTaskType *models.TaskType
	Attachments    *[]models.Attachment
	Pinned         *bool
}

// AddNote assigns a fresh id, sets CreatedAt = UpdatedAt = now, appends
// the note, and persists the collection.
func (s *Store) AddNote(ctx context.Context, draft NoteDraft) error {
	if draft.Title == "" {
		return ErrEmptyTitle
	}

	s.mu.Lock()
	now := s.now()
	note := models.Note{
		ID:             s.newID(),
		Title:          draft.Title,
		Content:        draft.Content,
		Color:          draft.Color,
		LinkedTaskID:   draft.LinkedTaskID,
		LinkedTaskType: draft.LinkedTaskType,
		Attachments:    slices.Clone(draft.Attachments),
		Pinned:         draft.Pinned,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.notes = append(s.notes, note)
	s.persist(ctx, storage.KeyNotes, s.notes)
	s.mu.Unlock()

	s.notify()
	return nil
}

// UpdateNote merges req onto the matching note and refreshes UpdatedAt.
// Unknown ids are a silent no-op.
func (s *Store) UpdateNote(ctx context.Context, id string, req UpdateNoteRequest) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return nil
	}

	n := &s.notes[i]
	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Content != nil {
		n.Content = *req.Content
	}
	if req.Color != nil {
		n.Color = *req.Color
	}
	if req.LinkedTaskID != nil {
		n.LinkedTaskID = *req.LinkedTaskID
	}
	if req.LinkedTaskType != nil {
		n.LinkedTaskType = *req.LinkedTaskType
	}
	if req.Attachments != nil {
		n.Attachments = slices.Clone(*req.Attachments)
	}
	if req.Pinned != nil {
		n.Pinned = *req.Pinned
	}
	n.UpdatedAt = s.now()

	s.persist(ctx, storage.KeyNotes, s.notes)
	s.mu.Unlock()

	s.notify()
	return nil
}

// DeleteNote removes the matching note. Unknown ids are a silent no-op.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	before := len(s.notes)
	s.notes = slices.DeleteFunc(s.notes, func(n models.Note) bool { return n.ID == id })
	if len(s.notes) == before {
		s.mu.Unlock()
		return nil
	}
	s.persist(ctx, storage.KeyNotes, s.notes)
	s.mu.Unlock()

	s.notify()
	return nil
}

// TogglePinNote flips the pinned flag and refreshes UpdatedAt.
func (s *Store) TogglePinNote(ctx context.Context, id string) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	s.notes[i].Pinned = !s.notes[i].Pinned
	s.notes[i].UpdatedAt = s.now()
	s.persist(ctx, storage.KeyNotes, s.notes)
	s.mu.Unlock()

	s.notify()
	return nil
}

// ============================================================================
// Columns
// ============================================================================

// UpdateColumnRequest is a partial-field merge for column configuration.
type UpdateColumnRequest struct {
	Title *string
	Color *string
}

// UpdateColumn merges req onto the column configuration with the given
// status id.
func (s *Store) UpdateColumn(ctx context.Context, id models.Status, req UpdateColumnRequest) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.columns, func(c models.ColumnConfig) bool { return c.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	if req.Title != nil {
		s.columns[i].Title = *req.Title
	}
	if req.Color != nil {
		s.columns[i].Color = *req.Color
	}
	s.persist(ctx, storage.KeyColumns, s.columns)
	s.mu.Unlock()

	s.notify()
	return nil
}

// ============================================================================
// Team tasks
// ============================================================================

// TeamTaskDraft carries caller-supplied fields for a new team task.
type TeamTaskDraft struct {
	Title          string
	Description    string
	Status         models.Status
	Assignee       string
	AssigneeAvatar string
	Deadline       string
	Labels         []string
	ProjectID      string
}

// UpdateTeamTaskRequest is a partial-field merge. Nil fields are left
// untouched.
type UpdateTeamTaskRequest struct {
	Title       *string
	Description *string
	Status      *models.Status
	Assignee    *string
	Deadline    *string
	Labels      *[]string
}

// AddTeamTask appends a new team task and persists the collection.
func (s *Store) AddTeamTask(ctx context.Context, draft TeamTaskDraft) error {
	if draft.Title == "" {
		return ErrEmptyTitle
	}
	if !draft.Status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	s.teamTasks = append(s.teamTasks, models.TeamTask{
		ID:             s.newID(),
		Title:          draft.Title,
		Description:    draft.Description,
		Status:         draft.Status,
		Assignee:       draft.Assignee,
		AssigneeAvatar: draft.AssigneeAvatar,
		Deadline:       draft.Deadline,
		Labels:         slices.Clone(draft.Labels),
		ProjectID:      draft.ProjectID,
		CreatedAt:      s.now(),
	})
	s.persist(ctx, storage.KeyTeamTasks, s.teamTasks)
	s.mu.Unlock()

	s.notify()
	return nil
}

// UpdateTeamTask merges req onto the matching team task. Unknown ids are
// a silent no-op.
func (s *Store) UpdateTeamTask(ctx context.Context, id string, req UpdateTeamTaskRequest) error {
	if req.Status != nil && !req.Status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	i := slices.IndexFunc(s.teamTasks, func(t models.TeamTask) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return nil
	}

	t := &s.teamTasks[i]
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Assignee != nil {
		t.Assignee = *req.Assignee
	}
	if req.Deadline != nil {
		t.Deadline = *req.Deadline
	}
	if req.Labels != nil {
		t.Labels = slices.Clone(*req.Labels)
	}

	s.persist(ctx, storage.KeyTeamTasks, s.teamTasks)
	s.mu.Unlock()

	s.notify()
	return nil
}

// DeleteTeamTask removes the matching team task. Unknown ids are a
// silent no-op. Notes linking to the task keep their dangling link; the
// query engine and color resolver treat it as unlinked-for-display.
func (s *Store) DeleteTeamTask(ctx context.Context, id string) error {
	s.mu.Lock()
	before := len(s.teamTasks)
	s.teamTasks = slices.DeleteFunc(s.teamTasks, func(t models.TeamTask) bool { return t.ID == id })
	if len(s.teamTasks) == before {
		s.mu.Unlock()
		return nil
	}
	s.persist(ctx, storage.KeyTeamTasks, s.teamTasks)
	s.mu.Unlock()

	s.notify()
	return nil
}

// ============================================================================
// Personal tasks
// ============================================================================

// PersonalTaskDraft carries caller-supplied fields for a new personal
// task. Order is assigned as one past the current maximum.
type PersonalTaskDraft struct {
	Title         string
	Status        models.Status
	ScheduledTime string
}

// UpdatePersonalTaskRequest is a partial-field merge.
type UpdatePersonalTaskRequest struct {
	Title         *string
	Status        *models.Status
	Order         *int
	ScheduledTime *string
}

// AddPersonalTask appends a new personal task and persists the
// collection.
func (s *Store) AddPersonalTask(ctx context.Context, draft PersonalTaskDraft) error {
	if draft.Title == "" {
		return ErrEmptyTitle
	}
	if !draft.Status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	maxOrder := 0
	for _, t := range s.personalTasks {
		if t.Order > maxOrder {
			maxOrder = t.Order
		}
	}
	s.personalTasks = append(s.personalTasks, models.PersonalTask{
		ID:            s.newID(),
		Title:         draft.Title,
		Status:        draft.Status,
		Order:         maxOrder + 1,
		ScheduledTime: draft.ScheduledTime,
		CreatedAt:     s.now(),
	})
	s.persist(ctx, storage.KeyPersonalTasks, s.personalTasks)
	s.mu.Unlock()

	s.notify()
	return nil
}

// UpdatePersonalTask merges req onto the matching personal task. Unknown
// ids are a silent no-op.
func (s *Store) UpdatePersonalTask(ctx context.Context, id string, req UpdatePersonalTaskRequest) error {
	if req.Status != nil && !req.Status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	i := slices.IndexFunc(s.personalTasks, func(t models.PersonalTask) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return nil
	}

	t := &s.personalTasks[i]
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Order != nil {
		t.Order = *req.Order
	}
	if req.ScheduledTime != nil {
		t.ScheduledTime = *req.ScheduledTime
	}

	s.persist(ctx, storage.KeyPersonalTasks, s.personalTasks)
	s.mu.Unlock()

	s.notify()
	return nil
}

// DeletePersonalTask removes the matching personal task. Unknown ids are
// a silent no-op.
func (s *Store) DeletePersonalTask(ctx context.Context, id string) error {
	s.mu.Lock()
	before := len(s.personalTasks)
	s.personalTasks = slices.DeleteFunc(s.personalTasks, func(t models.PersonalTask) bool { return t.ID == id })
	if len(s.personalTasks) == before {
		s.mu.Unlock()
		return nil
	}
	s.persist(ctx, storage.KeyPersonalTasks, s.personalTasks)
	s.mu.Unlock()

	s.notify()
	return nil
}

// TogglePersonalTask flips a personal task between todo and done.
// Unknown ids are a silent no-op.
func (s *Store) TogglePersonalTask(ctx context.Context, id string) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.personalTasks, func(t models.PersonalTask) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	if s.personalTasks[i].Status == models.StatusDone {
		s.personalTasks[i].Status = models.StatusTodo
	} else {
		s.personalTasks[i].Status = models.StatusDone
	}
	s.persist(ctx, storage.KeyPersonalTasks, s.personalTasks)
	s.mu.Unlock()

	s.notify()
	return nil
}
