package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studiolog/internal/domain/note"
)

// NoteStoreForOrchestrator defines the store interface needed by note
// orchestrators.
type NoteStoreForOrchestrator interface {
	List(ctx context.Context) ([]note.Note, error)
	Replace(ctx context.Context, notes []note.Note) error
}

var ErrNoteNotFound = errors.New("note not found")

// --- Create ---

// CreateNoteInput carries input for the create orchestrator. An empty
// Date defaults to today.
type CreateNoteInput struct {
	Title    string
	Date     string
	Category string
	Content  string
}

// CreateNoteDeps holds dependencies for CreateNote.
type CreateNoteDeps struct {
	NoteStore  NoteStoreForOrchestrator
	GenerateID func() string
	Now        func() time.Time
}

// ExecuteCreateNote prepends a new note to the collection, which keeps the
// stored order reverse-chronological by creation.
// PRE: Title and Content must be non-empty
// POST: Note persisted at the front with a fresh ID
func ExecuteCreateNote(ctx context.Context, input CreateNoteInput, deps CreateNoteDeps) (note.Note, error) {
	date := input.Date
	if date == "" {
		date = deps.Now().Format(note.DateLayout)
	}

	n := note.Note{
		ID:       deps.GenerateID(),
		Title:    input.Title,
		Date:     date,
		Category: input.Category,
		Content:  input.Content,
	}
	if err := n.Validate(); err != nil {
		return note.Note{}, err
	}

	notes, err := deps.NoteStore.List(ctx)
	if err != nil {
		return note.Note{}, err
	}
	notes = append([]note.Note{n}, notes...)
	if err := deps.NoteStore.Replace(ctx, notes); err != nil {
		return note.Note{}, err
	}

	slog.Info("content_event", "event", "note_created", "note_id", n.ID, "title", n.Title)
	return n, nil
}

// --- Update ---

// UpdateNoteInput carries input for the update orchestrator.
type UpdateNoteInput struct {
	ID       string
	Title    string
	Date     string
	Category string
	Content  string
}

// UpdateNoteDeps holds dependencies for UpdateNote.
type UpdateNoteDeps struct {
	NoteStore NoteStoreForOrchestrator
}

// ExecuteUpdateNote replaces the note at its existing position, keeping
// its ID and place in the collection.
// PRE: input.ID names an existing note
// POST: Note replaced in place, or collection unchanged on error
func ExecuteUpdateNote(ctx context.Context, input UpdateNoteInput, deps UpdateNoteDeps) (note.Note, error) {
	notes, err := deps.NoteStore.List(ctx)
	if err != nil {
		return note.Note{}, err
	}

	idx := -1
	for i := range notes {
		if notes[i].ID == input.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return note.Note{}, ErrNoteNotFound
	}

	updated := note.Note{
		ID:       input.ID,
		Title:    input.Title,
		Date:     input.Date,
		Category: input.Category,
		Content:  input.Content,
	}
	if updated.Date == "" {
		updated.Date = notes[idx].Date
	}
	if err := updated.Validate(); err != nil {
		return note.Note{}, err
	}

	notes[idx] = updated
	if err := deps.NoteStore.Replace(ctx, notes); err != nil {
		return note.Note{}, err
	}

	slog.Info("content_event", "event", "note_updated", "note_id", updated.ID)
	return updated, nil
}

// --- Remove ---

// RemoveNoteDeps holds dependencies for RemoveNote.
type RemoveNoteDeps struct {
	NoteStore NoteStoreForOrchestrator
}

// ExecuteRemoveNote deletes one note by ID.
// PRE: id names an existing note
// POST: Note is gone; remaining order is preserved
func ExecuteRemoveNote(ctx context.Context, id string, deps RemoveNoteDeps) error {
	notes, err := deps.NoteStore.List(ctx)
	if err != nil {
		return err
	}

	kept := notes[:0:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return ErrNoteNotFound
	}

	if err := deps.NoteStore.Replace(ctx, kept); err != nil {
		return err
	}

	slog.Info("content_event", "event", "note_removed", "note_id", id)
	return nil
}
