package projections

import (
	"context"
	"errors"

	"studiolog/internal/application/markdown"
)

// ErrNoteNotFound is returned for an unknown note ID when fallback is off.
var ErrNoteNotFound = errors.New("note not found")

// GetNoteDetailQuery carries input for the note detail projection.
// FallbackToFirst preserves the legacy behavior of silently substituting
// the first stored note for an unknown ID; with it off, an unknown ID is
// an explicit not-found.
type GetNoteDetailQuery struct {
	NoteID          string
	FallbackToFirst bool
}

// GetNoteDetailDeps holds dependencies for the note detail projection.
type GetNoteDetailDeps struct {
	NoteStore NoteStore
}

// NoteDetailResult carries the output of the note detail projection.
// Fallback is true when the requested ID was not found and another note
// was substituted.
type NoteDetailResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	ContentHTML string `json:"contentHtml"`
	Fallback    bool   `json:"fallback,omitempty"`
}

// QueryGetNoteDetail resolves one note by ID and renders its markdown.
// POST: Returns the matching note; with FallbackToFirst set, an unknown
// ID yields the first stored note flagged as a substitution
func QueryGetNoteDetail(ctx context.Context, query GetNoteDetailQuery, deps GetNoteDetailDeps) (NoteDetailResult, error) {
	notes, err := deps.NoteStore.List(ctx)
	if err != nil {
		return NoteDetailResult{}, err
	}

	idx := -1
	for i := range notes {
		if notes[i].ID == query.NoteID {
			idx = i
			break
		}
	}

	fallback := false
	if idx < 0 {
		if !query.FallbackToFirst || len(notes) == 0 {
			return NoteDetailResult{}, ErrNoteNotFound
		}
		idx = 0
		fallback = true
	}

	n := notes[idx]
	return NoteDetailResult{
		ID:          n.ID,
		Title:       n.Title,
		Date:        formatDate(n),
		Category:    n.Category,
		ContentHTML: markdown.ToHTML(n.Content),
		Fallback:    fallback,
	}, nil
}
