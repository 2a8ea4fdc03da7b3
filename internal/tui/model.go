// Package tui is the terminal dashboard: a notes browser with search,
// filters and independent pagination for linked and standalone notes,
// and a kanban board view.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minhtran-dev/deskboard/internal/kanban"
	"github.com/minhtran-dev/deskboard/internal/models"
	"github.com/minhtran-dev/deskboard/internal/query"
	"github.com/minhtran-dev/deskboard/internal/store"
	"github.com/minhtran-dev/deskboard/internal/summarize"
)

// viewTab selects which of the two screens is active.
type viewTab int

const (
	tabNotes viewTab = iota
	tabBoard
)

// panel selects which notes section the cursor lives in.
type panel int

const (
	panelLinked panel = iota
	panelStandalone
)

// RefreshMsg tells the model to re-read the store. Sent from the
// store's change subscription via Program.Send.
type RefreshMsg struct{}

type importResultMsg struct {
	title string
	err   error
}

// Model represents the application state for the TUI
type Model struct {
	store      *store.Store
	board      *kanban.Board
	summarizer summarize.Summarizer
	pageSize   int

	tab    viewTab
	width  int
	height int

	// Notes screen.
	searchInput    textinput.Model
	searching      bool
	kinds          map[query.Kind]bool
	attachments    map[query.AttachmentKind]bool
	taskID         string
	linkedPage     int
	standalonePage int
	activePanel    panel
	noteCursor     int
	result         query.Result
	statuses       map[string]models.Status

	// Board screen.
	boardColumns []kanban.Column
	colCursor    int
	taskCursor   int

	// Path prompt for document import and new-task titles.
	prompting  bool
	promptKind promptKind
	prompt     textinput.Model

	status string
}

type promptKind int

const (
	promptNone promptKind = iota
	promptImportPath
	promptNewTask
)

// New creates the TUI model. pageSize <= 0 falls back to the engine
// default.
func New(st *store.Store, board *kanban.Board, s summarize.Summarizer, pageSize int) Model {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}

	search := textinput.New()
	search.Placeholder = "search notes, task:<name> filters by linked task"
	search.Prompt = "/ "
	search.CharLimit = 120

	prompt := textinput.New()
	prompt.CharLimit = 200

	m := Model{
		store:          st,
		board:          board,
		summarizer:     s,
		pageSize:       pageSize,
		searchInput:    search,
		prompt:         prompt,
		kinds:          map[query.Kind]bool{},
		attachments:    map[query.AttachmentKind]bool{},
		linkedPage:     1,
		standalonePage: 1,
	}
	m.refresh()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-reads both stores and reruns the note query.
func (m *Model) refresh() {
	snap := m.store.Snapshot()
	m.result = query.Run(query.Input{
		Notes:          snap.Notes,
		Tasks:          query.TaskRefs(snap.TeamTasks, snap.PersonalTasks),
		Search:         m.searchInput.Value(),
		Kinds:          m.kinds,
		TaskID:         m.taskID,
		Attachments:    m.attachments,
		PageSize:       m.pageSize,
		LinkedPage:     m.linkedPage,
		StandalonePage: m.standalonePage,
	})
	m.statuses = query.StatusIndex(snap.TeamTasks, snap.PersonalTasks)
	m.boardColumns = m.board.Columns()
	m.clampCursors()
}

// resetPages returns both sections to their first page. Called whenever
// the search text or a filter changes.
func (m *Model) resetPages() {
	m.linkedPage = 1
	m.standalonePage = 1
	m.noteCursor = 0
}

func (m *Model) clampCursors() {
	notes := m.visibleNotes()
	if m.noteCursor >= len(notes) {
		m.noteCursor = len(notes) - 1
	}
	if m.noteCursor < 0 {
		m.noteCursor = 0
	}

	if m.colCursor >= len(m.boardColumns) {
		m.colCursor = len(m.boardColumns) - 1
	}
	if m.colCursor < 0 {
		m.colCursor = 0
	}
	if len(m.boardColumns) > 0 {
		tasks := m.boardColumns[m.colCursor].Tasks
		if m.taskCursor >= len(tasks) {
			m.taskCursor = len(tasks) - 1
		}
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

// visibleNotes is the page of notes in the active panel.
func (m Model) visibleNotes() []models.Note {
	if m.activePanel == panelLinked {
		return m.result.Linked.Notes
	}
	return m.result.Standalone.Notes
}

// selectedNote returns the note under the cursor, or false when the
// active page is empty.
func (m Model) selectedNote() (models.Note, bool) {
	notes := m.visibleNotes()
	if len(notes) == 0 || m.noteCursor >= len(notes) {
		var zero models.Note
		return zero, false
	}
	return notes[m.noteCursor], true
}

// selectedTask returns the board task under the cursor, or false when
// the current column is empty.
func (m Model) selectedTask() (kanban.Task, bool) {
	if len(m.boardColumns) == 0 {
		return kanban.Task{}, false
	}
	tasks := m.boardColumns[m.colCursor].Tasks
	if len(tasks) == 0 || m.taskCursor >= len(tasks) {
		return kanban.Task{}, false
	}
	return tasks[m.taskCursor], true
}
