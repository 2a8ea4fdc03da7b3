package query

import "github.com/minhtran-dev/deskboard/internal/models"

// Canonical status-to-color mapping, shared by every rendering path.
// todo maps to slate rather than the empty string; the tile still reads
// as the neutral default because slate is the neutral palette entry.
var statusColors = map[models.Status]string{
	models.StatusTodo:       "slate",
	models.StatusInProgress: "yellow",
	models.StatusDone:       "green",
	models.StatusUrgent:     "red",
}

// AutoColor returns the canonical color tag for a task status, or the
// empty string for an unknown status.
func AutoColor(status models.Status) string {
	return statusColors[status]
}

// NoteColor resolves the display color for a note. An explicit note
// color wins; otherwise a linked note derives its color from the linked
// task's current status; otherwise the empty string signals the neutral
// default presentation. statusByID maps task ids (team and personal)
// to their current status.
func NoteColor(n models.Note, statusByID map[string]models.Status) string {
	if n.Color != "" {
		return n.Color
	}
	if n.Linked() {
		if status, ok := statusByID[n.LinkedTaskID]; ok {
			return AutoColor(status)
		}
	}
	return ""
}

// StatusIndex builds the id-to-status map NoteColor consumes from a
// store snapshot.
func StatusIndex(team []models.TeamTask, personal []models.PersonalTask) map[string]models.Status {
	index := make(map[string]models.Status, len(team)+len(personal))
	for _, t := range team {
		index[t.ID] = t.Status
	}
	for _, t := range personal {
		index[t.ID] = t.Status
	}
	return index
}
