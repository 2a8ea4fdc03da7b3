package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/minhtran-dev/deskboard/internal/query"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	if m.prompting {
		title := "Import document"
		if m.promptKind == promptNewTask {
			title = "New task"
		}
		box := PromptBoxStyle.
			Width(60).
			Render(title + "\n\n" + m.prompt.View())
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box,
		)
	}

	var body string
	if m.tab == tabBoard {
		body = m.boardView()
	} else {
		body = m.notesView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.statusView(),
	)
}

func (m Model) headerView() string {
	notes := TabStyle.Render("Notes")
	board := TabStyle.Render("Board")
	if m.tab == tabNotes {
		notes = ActiveTabStyle.Render("Notes")
	} else {
		board = ActiveTabStyle.Render("Board")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, notes, board)
}

func (m Model) notesView() string {
	panelWidth := m.width/3 - 2
	if panelWidth < 24 {
		panelWidth = 24
	}

	linked := m.notesPanel("Linked", m.result.Linked, panelLinked, panelWidth)
	standalone := m.notesPanel("Standalone", m.result.Standalone, panelStandalone, panelWidth)
	preview := m.previewPanel(m.width - 2*panelWidth - 8)

	var lines []string
	if m.searching || m.searchInput.Value() != "" {
		lines = append(lines, m.searchInput.View())
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, linked, standalone, preview))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) notesPanel(title string, page query.Page, p panel, width int) string {
	var sb strings.Builder
	sb.WriteString(PanelTitleStyle.Render(fmt.Sprintf("%s (%d)", title, page.Total)))
	sb.WriteString("\n")

	if len(page.Notes) == 0 {
		sb.WriteString(DimStyle.Render("no notes"))
	}
	for i, note := range page.Notes {
		marker := " "
		if note.Pinned {
			marker = PinnedMarkerStyle.Render("*")
		}
		line := fmt.Sprintf("%s %s %s", marker, colorChip(query.NoteColor(note, m.statuses)), note.Title)
		if note.HasAttachments() {
			line += DimStyle.Render(fmt.Sprintf(" [%d]", len(note.Attachments)))
		}
		if m.activePanel == p && i == m.noteCursor {
			line = SelectedNoteStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	pageCount := page.PageCount
	if pageCount == 0 {
		pageCount = 1
	}
	sb.WriteString(DimStyle.Render(fmt.Sprintf("page %d/%d", page.Page, pageCount)))

	style := PanelStyle
	if m.activePanel == p {
		style = ActivePanelStyle
	}
	return style.Width(width).Render(sb.String())
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

func (m Model) previewPanel(width int) string {
	if width < 20 {
		width = 20
	}

	note, ok := m.selectedNote()
	if !ok {
		return PreviewStyle.Width(width).Render(DimStyle.Render("select a note"))
	}

	content := note.Content
	if renderer, err := getRenderer(width - 4); err == nil {
		if rendered, err := renderer.Render(content); err == nil {
			content = strings.TrimSpace(rendered)
		}
	}

	var sb strings.Builder
	sb.WriteString(PanelTitleStyle.Render(note.Title))
	sb.WriteString("\n\n")
	sb.WriteString(content)
	for _, att := range note.Attachments {
		sb.WriteString("\n")
		sb.WriteString(DimStyle.Render(fmt.Sprintf("@ %s (%d bytes)", att.Name, att.Size)))
	}
	return PreviewStyle.Width(width).Render(sb.String())
}

func (m Model) boardView() string {
	if len(m.boardColumns) == 0 {
		return DimStyle.Render("no columns")
	}

	colWidth := m.width/len(m.boardColumns) - 4
	if colWidth < 18 {
		colWidth = 18
	}

	rendered := make([]string, 0, len(m.boardColumns))
	for ci, col := range m.boardColumns {
		var sb strings.Builder
		sb.WriteString(PanelTitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, col.Count())))
		sb.WriteString("\n")
		if len(col.Tasks) == 0 {
			sb.WriteString(DimStyle.Render("empty"))
		}
		for ti, task := range col.Tasks {
			line := fmt.Sprintf("%s %s", task.Assignee.Initials, task.Title)
			if task.DueDate != "" {
				line += DimStyle.Render(" " + task.DueDate)
			}
			if ci == m.colCursor && ti == m.taskCursor {
				line = SelectedTaskStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}

		style := ColumnStyle
		if ci == m.colCursor {
			style = ActiveColumnStyle
		}
		rendered = append(rendered, style.Width(colWidth).Render(sb.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) statusView() string {
	var filters []string
	for k := range m.kinds {
		filters = append(filters, string(k))
	}
	for k := range m.attachments {
		filters = append(filters, string(k)+" attachments")
	}
	if m.taskID != "" {
		filters = append(filters, "task "+m.taskID)
	}

	left := "tab switch · / search · 1-4 filters · 0 clear · [/] page · p pin · d delete · i import · q quit"
	if m.tab == tabBoard {
		left = "tab switch · h/l column · j/k task · H/L move · a add · q quit"
	}
	if len(filters) > 0 {
		left += " · filtering: " + strings.Join(filters, ", ")
	}
	if m.status != "" {
		left += " · " + m.status
	}
	return StatusBarStyle.Render(left)
}
