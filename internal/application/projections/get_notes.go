package projections

import "context"

// GetNotesDeps holds dependencies for the notes list projection.
type GetNotesDeps struct {
	NoteStore NoteStore
}

// NotesResult carries the output of the notes list projection.
type NotesResult struct {
	Notes []NoteListItem `json:"notes"`
}

// QueryGetNotes projects every note in stored order. New notes are
// prepended on creation, so stored order reads newest first.
func QueryGetNotes(ctx context.Context, deps GetNotesDeps) (NotesResult, error) {
	notes, err := deps.NoteStore.List(ctx)
	if err != nil {
		return NotesResult{}, err
	}

	result := NotesResult{Notes: make([]NoteListItem, 0, len(notes))}
	for _, n := range notes {
		result.Notes = append(result.Notes, newNoteListItem(n))
	}
	return result, nil
}
