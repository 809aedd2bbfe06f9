// Package editor tracks the admin form mode for each editable collection.
// Gallery and Notes are independent: each is either in create mode (the
// initial state, where submissions prepend a new entity) or in edit mode for
// one entity (submissions replace it in place). Submitting, canceling, or
// removing the edited entity all return the collection to create mode, so
// a stale edit target can never be resubmitted.
package editor

import (
	"context"
	"sync"
	"time"

	"studiolog/internal/application/orchestrators"
	"studiolog/internal/domain/gallery"
	"studiolog/internal/domain/note"
)

// Controller holds the edit-mode state for both collections.
type Controller struct {
	mu            sync.Mutex
	galleryEditID string // "" = create mode
	noteEditID    string // "" = create mode
}

// New creates a Controller with both collections in create mode.
func New() *Controller {
	return &Controller{}
}

// --- Gallery ---

// GalleryDeps holds dependencies for gallery submissions.
type GalleryDeps struct {
	GalleryStore orchestrators.GalleryStoreForOrchestrator
	GenerateID   func() string
}

// GallerySubmission carries one gallery form submission. Image is the new
// payload (data URI or placeholder label); empty means none was provided.
type GallerySubmission struct {
	Title  string
	Detail string
	Image  string
	Link   string
}

// BeginGalleryEdit enters edit mode for the given item.
// POST: Gallery is in edit mode targeting id
func (c *Controller) BeginGalleryEdit(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.galleryEditID = id
}

// CancelGalleryEdit discards the in-progress edit without writing.
// POST: Gallery is in create mode; storage untouched
func (c *Controller) CancelGalleryEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.galleryEditID = ""
}

// GalleryEditID returns the current edit target, "" in create mode.
func (c *Controller) GalleryEditID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.galleryEditID
}

// SubmitGallery routes a form submission by mode: create mode prepends a
// new item (a non-empty image payload is required), edit mode replaces
// the targeted item in place (an empty payload keeps its stored image).
// POST: On success the gallery is back in create mode
func (c *Controller) SubmitGallery(ctx context.Context, deps GalleryDeps, sub GallerySubmission) (gallery.Item, error) {
	c.mu.Lock()
	editID := c.galleryEditID
	c.mu.Unlock()

	var item gallery.Item
	var err error
	if editID == "" {
		item, err = orchestrators.ExecuteCreateGalleryItem(ctx, orchestrators.CreateGalleryItemInput{
			Title:  sub.Title,
			Detail: sub.Detail,
			Image:  sub.Image,
			Link:   sub.Link,
		}, orchestrators.CreateGalleryItemDeps{
			GalleryStore: deps.GalleryStore,
			GenerateID:   deps.GenerateID,
		})
	} else {
		item, err = orchestrators.ExecuteUpdateGalleryItem(ctx, orchestrators.UpdateGalleryItemInput{
			ID:     editID,
			Title:  sub.Title,
			Detail: sub.Detail,
			Image:  sub.Image,
			Link:   sub.Link,
		}, orchestrators.UpdateGalleryItemDeps{
			GalleryStore: deps.GalleryStore,
		})
	}
	if err != nil {
		return gallery.Item{}, err
	}

	c.mu.Lock()
	c.galleryEditID = ""
	c.mu.Unlock()
	return item, nil
}

// RemoveGallery deletes an item. Removing the item currently being edited
// also exits edit mode, so the next submission creates instead of
// targeting the removed ID.
// POST: On success the item is gone and any matching edit target is cleared
func (c *Controller) RemoveGallery(ctx context.Context, deps GalleryDeps, id string) error {
	if err := orchestrators.ExecuteRemoveGalleryItem(ctx, id, orchestrators.RemoveGalleryItemDeps{
		GalleryStore: deps.GalleryStore,
	}); err != nil {
		return err
	}

	c.mu.Lock()
	if c.galleryEditID == id {
		c.galleryEditID = ""
	}
	c.mu.Unlock()
	return nil
}

// --- Notes ---

// NoteDeps holds dependencies for note submissions.
type NoteDeps struct {
	NoteStore  orchestrators.NoteStoreForOrchestrator
	GenerateID func() string
	Now        func() time.Time
}

// NoteSubmission carries one note form submission.
type NoteSubmission struct {
	Title    string
	Date     string
	Category string
	Content  string
}

// BeginNoteEdit enters edit mode for the given note.
// POST: Notes are in edit mode targeting id
func (c *Controller) BeginNoteEdit(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.noteEditID = id
}

// CancelNoteEdit discards the in-progress edit without writing.
// POST: Notes are in create mode; storage untouched
func (c *Controller) CancelNoteEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.noteEditID = ""
}

// NoteEditID returns the current edit target, "" in create mode.
func (c *Controller) NoteEditID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.noteEditID
}

// SubmitNote routes a form submission by mode: create mode prepends a new
// note, edit mode replaces the targeted note in place.
// POST: On success the notes collection is back in create mode
func (c *Controller) SubmitNote(ctx context.Context, deps NoteDeps, sub NoteSubmission) (note.Note, error) {
	c.mu.Lock()
	editID := c.noteEditID
	c.mu.Unlock()

	var n note.Note
	var err error
	if editID == "" {
		n, err = orchestrators.ExecuteCreateNote(ctx, orchestrators.CreateNoteInput{
			Title:    sub.Title,
			Date:     sub.Date,
			Category: sub.Category,
			Content:  sub.Content,
		}, orchestrators.CreateNoteDeps{
			NoteStore:  deps.NoteStore,
			GenerateID: deps.GenerateID,
			Now:        deps.Now,
		})
	} else {
		n, err = orchestrators.ExecuteUpdateNote(ctx, orchestrators.UpdateNoteInput{
			ID:       editID,
			Title:    sub.Title,
			Date:     sub.Date,
			Category: sub.Category,
			Content:  sub.Content,
		}, orchestrators.UpdateNoteDeps{
			NoteStore: deps.NoteStore,
		})
	}
	if err != nil {
		return note.Note{}, err
	}

	c.mu.Lock()
	c.noteEditID = ""
	c.mu.Unlock()
	return n, nil
}

// RemoveNote deletes a note. Removing the note currently being edited
// also exits edit mode.
// POST: On success the note is gone and any matching edit target is cleared
func (c *Controller) RemoveNote(ctx context.Context, deps NoteDeps, id string) error {
	if err := orchestrators.ExecuteRemoveNote(ctx, id, orchestrators.RemoveNoteDeps{
		NoteStore: deps.NoteStore,
	}); err != nil {
		return err
	}

	c.mu.Lock()
	if c.noteEditID == id {
		c.noteEditID = ""
	}
	c.mu.Unlock()
	return nil
}
