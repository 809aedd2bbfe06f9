package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"studiolog/internal/domain/note"
)

type mockNoteStore struct {
	notes []note.Note
}

func (m *mockNoteStore) List(_ context.Context) ([]note.Note, error) {
	return append([]note.Note(nil), m.notes...), nil
}

func (m *mockNoteStore) Replace(_ context.Context, notes []note.Note) error {
	m.notes = notes
	return nil
}

func noteFixture() []note.Note {
	return []note.Note{
		{ID: "note-1", Title: "First", Date: "2026-01-20", Content: "one"},
		{ID: "note-2", Title: "Second", Date: "2026-01-10", Content: "two"},
	}
}

func fixedNoteID() string { return "note-1769940000000" }

var noteFixedNow = func() time.Time {
	return time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
}

// TestExecuteCreateNote_Prepends puts the new note at the front.
func TestExecuteCreateNote_Prepends(t *testing.T) {
	store := &mockNoteStore{notes: noteFixture()}
	deps := CreateNoteDeps{NoteStore: store, GenerateID: fixedNoteID, Now: noteFixedNow}

	created, err := ExecuteCreateNote(context.Background(), CreateNoteInput{
		Title:    "Newest",
		Date:     "2026-02-01",
		Category: "process",
		Content:  "# Heading\n\nBody.",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "note-1769940000000" {
		t.Errorf("created ID = %q", created.ID)
	}
	if len(store.notes) != 3 || store.notes[0].ID != created.ID {
		t.Error("expected new note at front")
	}
	if store.notes[1].ID != "note-1" || store.notes[2].ID != "note-2" {
		t.Error("existing notes must keep their order")
	}
}

// TestExecuteCreateNote_EmptyDateDefaultsToToday fills Date from the clock.
func TestExecuteCreateNote_EmptyDateDefaultsToToday(t *testing.T) {
	store := &mockNoteStore{}
	deps := CreateNoteDeps{NoteStore: store, GenerateID: fixedNoteID, Now: noteFixedNow}

	created, err := ExecuteCreateNote(context.Background(), CreateNoteInput{
		Title:   "Undated",
		Content: "text",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Date != "2026-02-01" {
		t.Errorf("date = %q, want 2026-02-01", created.Date)
	}
}

// TestExecuteCreateNote_Rejected leaves the collection unchanged.
func TestExecuteCreateNote_Rejected(t *testing.T) {
	tests := map[string]struct {
		input   CreateNoteInput
		wantErr error
	}{
		"missing title": {
			input:   CreateNoteInput{Content: "text"},
			wantErr: note.ErrEmptyTitle,
		},
		"missing content": {
			input:   CreateNoteInput{Title: "Title"},
			wantErr: note.ErrEmptyContent,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			store := &mockNoteStore{notes: noteFixture()}
			deps := CreateNoteDeps{NoteStore: store, GenerateID: fixedNoteID, Now: noteFixedNow}

			_, err := ExecuteCreateNote(context.Background(), tc.input, deps)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			if len(store.notes) != 2 {
				t.Errorf("collection changed on rejected create: %d notes", len(store.notes))
			}
		})
	}
}

// TestExecuteUpdateNote_InPlace keeps the note's position and ID.
func TestExecuteUpdateNote_InPlace(t *testing.T) {
	store := &mockNoteStore{notes: noteFixture()}
	deps := UpdateNoteDeps{NoteStore: store}

	updated, err := ExecuteUpdateNote(context.Background(), UpdateNoteInput{
		ID:      "note-2",
		Title:   "Second Revised",
		Date:    "2026-01-11",
		Content: "two, revised",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Second Revised" || updated.Date != "2026-01-11" {
		t.Errorf("updated = %+v", updated)
	}
	if store.notes[1].ID != "note-2" || store.notes[1].Title != "Second Revised" {
		t.Error("expected note updated in place at index 1")
	}
	if store.notes[0].ID != "note-1" {
		t.Error("neighbour must be untouched")
	}
}

// TestExecuteUpdateNote_EmptyDateKeepsStored preserves the date when the
// edit form submits none.
func TestExecuteUpdateNote_EmptyDateKeepsStored(t *testing.T) {
	store := &mockNoteStore{notes: noteFixture()}
	deps := UpdateNoteDeps{NoteStore: store}

	updated, err := ExecuteUpdateNote(context.Background(), UpdateNoteInput{
		ID:      "note-1",
		Title:   "First Renamed",
		Content: "one",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Date != "2026-01-20" {
		t.Errorf("date = %q, want stored 2026-01-20", updated.Date)
	}
}

func TestExecuteUpdateNote_NotFound(t *testing.T) {
	store := &mockNoteStore{notes: noteFixture()}
	deps := UpdateNoteDeps{NoteStore: store}

	_, err := ExecuteUpdateNote(context.Background(), UpdateNoteInput{
		ID:      "note-999",
		Title:   "Ghost",
		Content: "text",
	}, deps)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

// TestExecuteRemoveNote deletes by ID and preserves order.
func TestExecuteRemoveNote(t *testing.T) {
	store := &mockNoteStore{notes: noteFixture()}
	deps := RemoveNoteDeps{NoteStore: store}

	if err := ExecuteRemoveNote(context.Background(), "note-1", deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.notes) != 1 || store.notes[0].ID != "note-2" {
		t.Errorf("remaining notes = %+v", store.notes)
	}
}

func TestExecuteRemoveNote_NotFound(t *testing.T) {
	store := &mockNoteStore{notes: noteFixture()}
	deps := RemoveNoteDeps{NoteStore: store}

	err := ExecuteRemoveNote(context.Background(), "note-999", deps)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
	if len(store.notes) != 2 {
		t.Error("collection changed on failed remove")
	}
}
