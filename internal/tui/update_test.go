package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minhtran-dev/deskboard/internal/kanban"
	"github.com/minhtran-dev/deskboard/internal/store"
	"github.com/minhtran-dev/deskboard/internal/testutil"
)

func setupTestModel(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()

	st := testutil.OpenStorage(t)

	s := store.New(st)
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	b := kanban.NewBoard(st)
	if err := b.Initialize(ctx); err != nil {
		t.Fatalf("failed to initialize board: %v", err)
	}

	m := New(s, b, nil, 0)
	m.width = 120
	m.height = 40
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		if len(k) == 1 {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		} else {
			switch k {
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "tab":
				msg = tea.KeyMsg{Type: tea.KeyTab}
			default:
				t.Fatalf("unknown key %q", k)
			}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestUpdate_TabSwitchesScreens(t *testing.T) {
	m := setupTestModel(t)
	if m.tab != tabNotes {
		t.Fatal("should start on the notes screen")
	}

	m = press(t, m, "tab")
	if m.tab != tabBoard {
		t.Error("tab should switch to the board")
	}
	m = press(t, m, "tab")
	if m.tab != tabNotes {
		t.Error("tab should switch back to notes")
	}
}

func TestUpdate_SearchResetsPagination(t *testing.T) {
	m := setupTestModel(t)
	m.standalonePage = 2
	m.linkedPage = 3

	m = press(t, m, "/")
	if !m.searching {
		t.Fatal("/ should enter search mode")
	}

	m = press(t, m, "d")
	if m.linkedPage != 1 || m.standalonePage != 1 {
		t.Errorf("typing must reset pages, got linked=%d standalone=%d", m.linkedPage, m.standalonePage)
	}
	if m.searchInput.Value() != "d" {
		t.Errorf("search value = %q", m.searchInput.Value())
	}

	m = press(t, m, "esc")
	if m.searching {
		t.Error("esc should leave search mode")
	}
}

func TestUpdate_FilterTogglesResetPages(t *testing.T) {
	m := setupTestModel(t)
	m.standalonePage = 2

	m = press(t, m, "1")
	if !m.kinds["linked"] {
		t.Error("1 should enable the linked filter")
	}
	if m.standalonePage != 1 {
		t.Error("filter change must reset pages")
	}

	m = press(t, m, "1")
	if len(m.kinds) != 0 {
		t.Error("pressing 1 again should clear the filter")
	}

	m = press(t, m, "3", "0")
	if len(m.attachments) != 0 || len(m.kinds) != 0 {
		t.Error("0 should clear every filter")
	}
}

func TestUpdate_PageTurnClamps(t *testing.T) {
	m := setupTestModel(t)
	m.activePanel = panelStandalone

	m = press(t, m, "[")
	if m.standalonePage != 1 {
		t.Errorf("page below 1 must clamp, got %d", m.standalonePage)
	}

	count := m.result.Standalone.PageCount
	for i := 0; i < count+3; i++ {
		m = press(t, m, "]")
	}
	if m.standalonePage != count {
		t.Errorf("page = %d, want clamp at %d", m.standalonePage, count)
	}
}

func TestUpdate_PinSelectedNote(t *testing.T) {
	m := setupTestModel(t)
	m.activePanel = panelStandalone

	note, ok := m.selectedNote()
	if !ok {
		t.Fatal("seed data should include standalone notes")
	}

	m = press(t, m, "p")

	snap := m.store.Snapshot()
	for _, n := range snap.Notes {
		if n.ID == note.ID {
			if n.Pinned == note.Pinned {
				t.Error("p should toggle the pin")
			}
			return
		}
	}
	t.Fatal("note disappeared")
}

func TestUpdate_DeleteSelectedNote(t *testing.T) {
	m := setupTestModel(t)
	m.activePanel = panelStandalone

	note, ok := m.selectedNote()
	if !ok {
		t.Fatal("seed data should include standalone notes")
	}
	before := m.result.Total

	m = press(t, m, "d")
	if m.result.Total != before-1 {
		t.Errorf("total = %d, want %d", m.result.Total, before-1)
	}
	for _, n := range m.store.Snapshot().Notes {
		if n.ID == note.ID {
			t.Error("note should be gone from the store")
		}
	}
}

func TestUpdate_BoardMoveFollowsTask(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, m, "tab")

	task, ok := m.selectedTask()
	if !ok {
		t.Fatal("seed board should have tasks in the first column")
	}
	fromCount := m.boardColumns[0].Count()
	toCount := m.boardColumns[1].Count()

	m = press(t, m, "L")

	if m.colCursor != 1 {
		t.Errorf("cursor should follow the task, column = %d", m.colCursor)
	}
	if got, _ := m.selectedTask(); got.ID != task.ID {
		t.Errorf("selected task = %q, want moved task %q", got.ID, task.ID)
	}
	if m.boardColumns[0].Count() != fromCount-1 {
		t.Errorf("source count = %d, want %d", m.boardColumns[0].Count(), fromCount-1)
	}
	if m.boardColumns[1].Count() != toCount+1 {
		t.Errorf("target count = %d, want %d", m.boardColumns[1].Count(), toCount+1)
	}
}

func TestUpdate_BoardMoveLeftAtEdgeIsNoop(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, m, "tab")

	before := m.boardColumns[0].Count()
	m = press(t, m, "H")
	if m.boardColumns[0].Count() != before {
		t.Error("moving left from the first column must do nothing")
	}
}

func TestUpdate_NewTaskPrompt(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, m, "tab", "a")
	if !m.prompting || m.promptKind != promptNewTask {
		t.Fatal("a should open the new task prompt")
	}

	before := m.boardColumns[0].Count()
	m = press(t, m, "S", "h", "i", "p", "enter")
	if m.prompting {
		t.Error("enter should close the prompt")
	}
	if m.boardColumns[0].Count() != before+1 {
		t.Errorf("column count = %d, want %d", m.boardColumns[0].Count(), before+1)
	}
}

func TestUpdate_RefreshPicksUpExternalChanges(t *testing.T) {
	m := setupTestModel(t)
	before := m.result.Total

	err := m.store.AddNote(context.Background(), store.NoteDraft{Title: "outside edit"})
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(RefreshMsg{})
	m = next.(Model)
	if m.result.Total != before+1 {
		t.Errorf("total = %d, want %d", m.result.Total, before+1)
	}
}
