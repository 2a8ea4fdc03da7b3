// Package docimport builds a note draft from an uploaded plain-text
// document: extracted text (truncated), a title derived from the
// filename, a best-effort summary, and the source file attached.
package docimport

import (
	"context"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/minhtran-dev/deskboard/internal/attach"
	"github.com/minhtran-dev/deskboard/internal/models"
	"github.com/minhtran-dev/deskboard/internal/store"
	"github.com/minhtran-dev/deskboard/internal/summarize"
)

const (
	// maxExtractedChars caps how much document text lands in the note.
	maxExtractedChars = 5000
	truncationMarker  = "\n\n[... text truncated due to length ...]"

	// minSummarizeChars is the threshold below which summarization is
	// skipped entirely and the raw text is used as-is.
	minSummarizeChars = 50
)

// Import reads the document, producing a draft note. Summarization is
// best-effort: a remote failure degrades to the local extractive
// fallback, and a document too short to summarize keeps its full text.
// Only the file-read error is fatal.
func Import(ctx context.Context, f attach.File, s summarize.Summarizer) (store.NoteDraft, error) {
	r, err := f.Open()
	if err != nil {
		return store.NoteDraft{}, fmt.Errorf("failed to read document %s: %w", f.Name(), err)
	}
	text, err := readAll(r)
	if err != nil {
		return store.NoteDraft{}, fmt.Errorf("failed to read document %s: %w", f.Name(), err)
	}

	if len(text) > maxExtractedChars {
		text = text[:maxExtractedChars] + truncationMarker
	}

	content := text
	if len(text) > minSummarizeChars {
		if summary := summarize.Best(ctx, s, text); summary != "" {
			content = summaryBlock(summary)
		}
	}

	attachment, err := attach.Read(f)
	if err != nil {
		return store.NoteDraft{}, err
	}

	return store.NoteDraft{
		Title:       TitleFromFilename(f.Name()),
		Content:     content,
		Attachments: []models.Attachment{attachment},
	}, nil
}

func readAll(r io.ReadCloser) (string, error) {
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// TitleFromFilename strips the extension and upper-cases the first
// letter: "meeting-notes.txt" becomes "Meeting-notes".
func TitleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		return name
	}
	runes := []rune(base)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// summaryBlock wraps a summary in the note's opaque HTML-ish content
// form.
func summaryBlock(summary string) string {
	return "<p><strong>Summary</strong></p><p>" + html.EscapeString(summary) + "</p>"
}
