package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TabStyle renders an inactive tab in the header.
	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("240"))

	// ActiveTabStyle renders the selected tab.
	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("212"))

	// PanelStyle frames one notes section.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// ActivePanelStyle frames the section holding the cursor.
	ActivePanelStyle = PanelStyle.
				BorderForeground(lipgloss.Color("212"))

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	SelectedNoteStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	PinnedMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// ColumnStyle frames a kanban column.
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	ActiveColumnStyle = ColumnStyle.
				BorderForeground(lipgloss.Color("212"))

	SelectedTaskStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	PromptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(1, 2)

	PreviewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// chipColors maps the named note colors to terminal hex values. Hex
// colors pass through unchanged.
var chipColors = map[string]string{
	"slate":  "#64748b",
	"yellow": "#eab308",
	"green":  "#22c55e",
	"red":    "#ef4444",
	"orange": "#f97316",
	"blue":   "#3b82f6",
	"purple": "#8b5cf6",
}

// colorChip renders a small swatch in the note's resolved color. An
// empty color yields a neutral chip.
func colorChip(color string) string {
	if color == "" {
		return DimStyle.Render("·")
	}
	if hex, ok := chipColors[color]; ok {
		color = hex
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}
