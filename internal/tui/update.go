package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minhtran-dev/deskboard/internal/attach"
	"github.com/minhtran-dev/deskboard/internal/docimport"
	"github.com/minhtran-dev/deskboard/internal/kanban"
	"github.com/minhtran-dev/deskboard/internal/query"
	"github.com/minhtran-dev/deskboard/internal/user"
)

// Update handles incoming messages and updates the model state
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RefreshMsg:
		m.refresh()
		return m, nil

	case importResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("import failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("imported %q", msg.title)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting {
		return m.handlePromptKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.tab == tabNotes {
			m.tab = tabBoard
		} else {
			m.tab = tabNotes
		}
		return m, nil
	}

	if m.tab == tabBoard {
		return m.handleBoardKey(msg)
	}
	return m.handleNotesKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.resetPages()
		m.refresh()
	}
	return m, cmd
}

func (m Model) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searching = true
		return m, m.searchInput.Focus()

	case "j", "down":
		if m.noteCursor < len(m.visibleNotes())-1 {
			m.noteCursor++
		}
	case "k", "up":
		if m.noteCursor > 0 {
			m.noteCursor--
		}
	case "h", "left":
		m.activePanel = panelLinked
		m.clampCursors()
	case "l", "right":
		m.activePanel = panelStandalone
		m.clampCursors()

	case "n", "]":
		m.turnPage(1)
	case "N", "[":
		m.turnPage(-1)

	case "1":
		m.toggleKind(query.KindLinked)
	case "2":
		m.toggleKind(query.KindStandalone)
	case "3":
		m.toggleAttachment(query.WithAttachments)
	case "4":
		m.toggleAttachment(query.WithoutAttachments)
	case "0":
		m.kinds = map[query.Kind]bool{}
		m.attachments = map[query.AttachmentKind]bool{}
		m.taskID = ""
		m.resetPages()
		m.refresh()

	case "t":
		if note, ok := m.selectedNote(); ok && note.Linked() {
			m.taskID = note.LinkedTaskID
			m.resetPages()
			m.refresh()
		}

	case "p":
		if note, ok := m.selectedNote(); ok {
			if err := m.store.TogglePinNote(context.Background(), note.ID); err != nil {
				slog.Error("failed to toggle pin", "note", note.ID, "error", err)
			}
			m.refresh()
		}
	case "d":
		if note, ok := m.selectedNote(); ok {
			if err := m.store.DeleteNote(context.Background(), note.ID); err != nil {
				slog.Error("failed to delete note", "note", note.ID, "error", err)
			}
			m.refresh()
		}

	case "i":
		m.prompting = true
		m.promptKind = promptImportPath
		m.prompt.Placeholder = "path to a text document"
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	}

	return m, nil
}

// turnPage advances the active panel's page by delta, clamped to
// [1, PageCount].
func (m *Model) turnPage(delta int) {
	var page *int
	var count int
	if m.activePanel == panelLinked {
		page, count = &m.linkedPage, m.result.Linked.PageCount
	} else {
		page, count = &m.standalonePage, m.result.Standalone.PageCount
	}

	next := *page + delta
	if next < 1 {
		next = 1
	}
	if count > 0 && next > count {
		next = count
	}
	if next != *page {
		*page = next
		m.noteCursor = 0
		m.refresh()
	}
}

func (m *Model) toggleKind(k query.Kind) {
	m.kinds[k] = !m.kinds[k]
	if !m.kinds[k] {
		delete(m.kinds, k)
	}
	m.resetPages()
	m.refresh()
}

func (m *Model) toggleAttachment(k query.AttachmentKind) {
	m.attachments[k] = !m.attachments[k]
	if !m.attachments[k] {
		delete(m.attachments, k)
	}
	m.resetPages()
	m.refresh()
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.colCursor > 0 {
			m.colCursor--
			m.clampCursors()
		}
	case "l", "right":
		if m.colCursor < len(m.boardColumns)-1 {
			m.colCursor++
			m.clampCursors()
		}
	case "j", "down":
		if len(m.boardColumns) > 0 && m.taskCursor < len(m.boardColumns[m.colCursor].Tasks)-1 {
			m.taskCursor++
		}
	case "k", "up":
		if m.taskCursor > 0 {
			m.taskCursor--
		}

	case "H":
		m.moveSelectedTask(-1)
	case "L":
		m.moveSelectedTask(1)

	case "a":
		m.prompting = true
		m.promptKind = promptNewTask
		m.prompt.Placeholder = "task title"
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	}

	return m, nil
}

// moveSelectedTask moves the task under the cursor to the adjacent
// column and follows it with the cursor.
func (m *Model) moveSelectedTask(dir int) {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	target := m.colCursor + dir
	if target < 0 || target >= len(m.boardColumns) {
		return
	}

	from := m.boardColumns[m.colCursor].ID
	to := m.boardColumns[target].ID
	if err := m.board.MoveTask(context.Background(), task.ID, from, to); err != nil {
		slog.Error("failed to move task", "task", task.ID, "error", err)
		return
	}

	m.colCursor = target
	m.refresh()
	m.taskCursor = len(m.boardColumns[m.colCursor].Tasks) - 1
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.promptKind = promptNone
		m.prompt.Blur()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		kind := m.promptKind
		m.prompting = false
		m.promptKind = promptNone
		m.prompt.Blur()

		switch kind {
		case promptImportPath:
			if value == "" {
				return m, nil
			}
			return m, m.importDocument(value)
		case promptNewTask:
			if value == "" || len(m.boardColumns) == 0 {
				return m, nil
			}
			req := kanban.CreateTaskRequest{
				Title:    value,
				Assignee: user.DisplayName(),
				ColumnID: m.boardColumns[m.colCursor].ID,
			}
			if err := m.board.CreateTask(context.Background(), req); err != nil {
				m.status = fmt.Sprintf("create failed: %v", err)
			}
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// importDocument reads the file off the Update loop and adds the
// resulting note.
func (m Model) importDocument(path string) tea.Cmd {
	st := m.store
	s := m.summarizer
	return func() tea.Msg {
		ctx := context.Background()
		draft, err := docimport.Import(ctx, attach.OSFile(path), s)
		if err != nil {
			return importResultMsg{err: err}
		}
		if err := st.AddNote(ctx, draft); err != nil {
			return importResultMsg{err: err}
		}
		return importResultMsg{title: draft.Title}
	}
}
