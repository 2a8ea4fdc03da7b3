// Package query derives filtered, sorted, and paginated note views from
// a store snapshot. Everything in here is a pure projection: no state,
// no side effects.
package query

import (
	"regexp"
	"strings"

	"github.com/minhtran-dev/deskboard/internal/models"
)

// DefaultPageSize is the number of notes per page in each section.
const DefaultPageSize = 6

// Kind selects notes by whether they link to a task.
type Kind string

const (
	KindLinked     Kind = "linked"
	KindStandalone Kind = "standalone"
)

// AttachmentKind selects notes by attachment presence.
type AttachmentKind string

const (
	WithAttachments    AttachmentKind = "with"
	WithoutAttachments AttachmentKind = "without"
)

// TaskRef is the minimal view of a task the engine needs for the
// task:<value> search token.
type TaskRef struct {
	ID    string
	Title string
}

// TaskRefs merges team and personal tasks into the engine's input form.
func TaskRefs(team []models.TeamTask, personal []models.PersonalTask) []TaskRef {
	refs := make([]TaskRef, 0, len(team)+len(personal))
	for _, t := range team {
		refs = append(refs, TaskRef{ID: t.ID, Title: t.Title})
	}
	for _, t := range personal {
		refs = append(refs, TaskRef{ID: t.ID, Title: t.Title})
	}
	return refs
}

// Input is everything the engine projects from. Empty filter sets mean
// no filtering; within a non-empty set conditions combine with OR, and
// across the different inputs they combine with AND.
type Input struct {
	Notes []models.Note
	Tasks []TaskRef

	Search      string
	Kinds       map[Kind]bool
	TaskID      string
	Attachments map[AttachmentKind]bool

	PageSize       int
	LinkedPage     int
	StandalonePage int
}

// Page is one paginated section of the result.
type Page struct {
	Notes     []models.Note
	Page      int
	PageCount int
	Total     int
}

// Result splits the filtered, sorted notes into the two sections, each
// paginated independently.
type Result struct {
	Linked     Page
	Standalone Page
	// Total is the filtered note count across both sections.
	Total int
}

// taskTokenRe matches the first task:<value> token in a search string.
var taskTokenRe = regexp.MustCompile(`(?i)task:(\S+)`)

// Run applies search and filters, sorts pinned-first, partitions into
// linked and standalone, and paginates each section. Pages outside
// [1, PageCount] are not clamped; out-of-range pages yield empty slices.
func Run(in Input) Result {
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := Filter(in.Notes, in.Tasks, in.Search, in.Kinds, in.TaskID, in.Attachments)
	SortPinnedFirst(filtered)

	var linked, standalone []models.Note
	for _, n := range filtered {
		if n.Linked() {
			linked = append(linked, n)
		} else {
			standalone = append(standalone, n)
		}
	}

	return Result{
		Linked:     Paginate(linked, in.LinkedPage, pageSize),
		Standalone: Paginate(standalone, in.StandalonePage, pageSize),
		Total:      len(filtered),
	}
}

// Filter returns the notes matching the search string and every filter.
//
// Search syntax: a task:<value> token (case-insensitive) matches notes
// whose linked task's title contains value; the remaining free text is a
// case-insensitive substring match against note title or content. Both
// apply conjunctively when present.
func Filter(notes []models.Note, tasks []TaskRef, search string, kinds map[Kind]bool, taskID string, attachments map[AttachmentKind]bool) []models.Note {
	taskValue, text := splitSearch(search)

	titleByID := make(map[string]string, len(tasks))
	for _, t := range tasks {
		titleByID[t.ID] = strings.ToLower(t.Title)
	}

	var out []models.Note
	for _, n := range notes {
		if text != "" &&
			!strings.Contains(strings.ToLower(n.Title), text) &&
			!strings.Contains(strings.ToLower(n.Content), text) {
			continue
		}

		if taskValue != "" {
			linkedTitle := ""
			if n.Linked() {
				linkedTitle = titleByID[n.LinkedTaskID]
			}
			if !strings.Contains(linkedTitle, taskValue) {
				continue
			}
		}

		if len(kinds) > 0 &&
			!(kinds[KindLinked] && n.Linked()) &&
			!(kinds[KindStandalone] && !n.Linked()) {
			continue
		}

		if taskID != "" && n.LinkedTaskID != taskID {
			continue
		}

		if len(attachments) > 0 &&
			!(attachments[WithAttachments] && n.HasAttachments()) &&
			!(attachments[WithoutAttachments] && !n.HasAttachments()) {
			continue
		}

		out = append(out, n)
	}
	return out
}

// splitSearch extracts the first task:<value> token and the remaining
// free text, both lower-cased.
func splitSearch(search string) (taskValue, text string) {
	if m := taskTokenRe.FindStringSubmatchIndex(search); m != nil {
		taskValue = strings.ToLower(search[m[2]:m[3]])
		search = search[:m[0]] + search[m[1]:]
	}
	return taskValue, strings.ToLower(strings.TrimSpace(search))
}

// SortPinnedFirst sorts pinned notes before unpinned ones in place,
// preserving input relative order among equals.
func SortPinnedFirst(notes []models.Note) {
	// Stable partition: two passes, no comparison sort needed.
	sorted := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.Pinned {
			sorted = append(sorted, n)
		}
	}
	for _, n := range notes {
		if !n.Pinned {
			sorted = append(sorted, n)
		}
	}
	copy(notes, sorted)
}

// Paginate slices out the requested page. PageCount = ceil(total/size);
// pages outside that range are the caller's responsibility to clamp and
// simply produce an empty slice here.
func Paginate(notes []models.Note, page, size int) Page {
	total := len(notes)
	pageCount := (total + size - 1) / size

	start := (page - 1) * size
	end := start + size
	var items []models.Note
	if start >= 0 && start < total {
		if end > total {
			end = total
		}
		items = notes[start:end]
	}

	return Page{Notes: items, Page: page, PageCount: pageCount, Total: total}
}
