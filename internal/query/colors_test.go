package query

import (
	"testing"

	"github.com/minhtran-dev/deskboard/internal/models"
)

func TestAutoColor(t *testing.T) {
	tests := []struct {
		status models.Status
		want   string
	}{
		{models.StatusTodo, "slate"},
		{models.StatusInProgress, "yellow"},
		{models.StatusDone, "green"},
		{models.StatusUrgent, "red"},
		{models.Status("bogus"), ""},
	}
	for _, tt := range tests {
		if got := AutoColor(tt.status); got != tt.want {
			t.Errorf("AutoColor(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestNoteColor_ExplicitWins(t *testing.T) {
	n := models.Note{Color: "purple", LinkedTaskID: "t1"}
	index := map[string]models.Status{"t1": models.StatusUrgent}
	if got := NoteColor(n, index); got != "purple" {
		t.Errorf("explicit color must win, got %q", got)
	}
}

func TestNoteColor_DerivedFromLinkedStatus(t *testing.T) {
	n := models.Note{LinkedTaskID: "t1"}
	index := map[string]models.Status{"t1": models.StatusInProgress}
	if got := NoteColor(n, index); got != "yellow" {
		t.Errorf("got %q, want yellow", got)
	}
}

func TestNoteColor_FallsBackToNeutral(t *testing.T) {
	if got := NoteColor(models.Note{}, nil); got != "" {
		t.Errorf("standalone uncolored note must be neutral, got %q", got)
	}
	// Dangling link: task was deleted out from under the note.
	n := models.Note{LinkedTaskID: "gone"}
	if got := NoteColor(n, map[string]models.Status{}); got != "" {
		t.Errorf("dangling link must be neutral, got %q", got)
	}
}

func TestStatusIndex_MergesBothCollections(t *testing.T) {
	team := []models.TeamTask{{ID: "t1", Status: models.StatusUrgent}}
	personal := []models.PersonalTask{{ID: "p1", Status: models.StatusDone}}

	index := StatusIndex(team, personal)
	if index["t1"] != models.StatusUrgent || index["p1"] != models.StatusDone {
		t.Errorf("index wrong: %v", index)
	}
}
