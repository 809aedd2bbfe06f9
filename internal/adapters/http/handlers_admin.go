package web

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"studiolog/internal/application/editor"
	"studiolog/internal/application/imaging"
	"studiolog/internal/application/orchestrators"
	galleryDomain "studiolog/internal/domain/gallery"
	noteDomain "studiolog/internal/domain/note"
	profileDomain "studiolog/internal/domain/profile"
)

const (
	maxFormBytes = 6 << 20 // 6 MB: 5 MB image + form overhead
	// normalizeTimeout bounds the image decode/scale/encode pipeline so a
	// pathological upload cannot hang a submission.
	normalizeTimeout = 10 * time.Second
)

// normalizeUpload runs the named multipart file through the image
// normalizer. Returns ("", false, nil) when the form carried no file.
func normalizeUpload(ctx context.Context, r *http.Request, field string) (string, bool, error) {
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	ctx, cancel := context.WithTimeout(ctx, normalizeTimeout)
	defer cancel()
	uri, err := imaging.Normalize(ctx, file, imaging.DefaultOptions())
	if err != nil {
		return "", false, err
	}
	if uri == "" {
		// Zero-byte file part: treat as no file provided.
		return "", false, nil
	}
	return uri, true, nil
}

// isUserImageError reports whether a normalization failure should be shown
// to the submitter rather than logged as internal.
func isUserImageError(err error) bool {
	return errors.Is(err, imaging.ErrNotImage) || errors.Is(err, imaging.ErrTooLarge)
}

// handleAdminEditor handles GET /api/admin/editor: the current profile,
// both collections, and each collection's edit-mode target, pre-filling
// the admin forms.
func handleAdminEditor(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	p, err := stores.ProfileStore.Get(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	items, err := stores.GalleryStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	notes, err := stores.NoteStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"profile":       p,
		"gallery":       items,
		"notes":         notes,
		"galleryEditId": adminEditor.GalleryEditID(),
		"noteEditId":    adminEditor.NoteEditID(),
	})
}

// handleAdminProfile handles POST /api/admin/profile (multipart form).
// A new avatar file is normalized and replaces the stored one; omitting
// the file preserves it. The profile is overwritten whole.
func handleAdminProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		http.Error(w, "request too large or malformed", http.StatusBadRequest)
		return
	}

	avatar, provided, err := normalizeUpload(r.Context(), r, "avatar")
	if err != nil {
		if isUserImageError(err) {
			userError(w, http.StatusBadRequest, err)
		} else {
			internalError(w, err)
		}
		return
	}

	updated, err := orchestrators.ExecuteUpdateProfile(r.Context(), orchestrators.UpdateProfileInput{
		Name:           r.FormValue("name"),
		Title:          r.FormValue("title"),
		Bio:            r.FormValue("bio"),
		Location:       r.FormValue("location"),
		Avatar:         avatar,
		AvatarProvided: provided,
		Socials: profileDomain.Socials{
			GitHub:   r.FormValue("github"),
			LinkedIn: r.FormValue("linkedin"),
			X:        r.FormValue("x"),
		},
	}, orchestrators.UpdateProfileDeps{
		ProfileStore: stores.ProfileStore,
	})
	if err != nil {
		switch {
		case errors.Is(err, profileDomain.ErrEmptyName),
			errors.Is(err, profileDomain.ErrEmptyTitle),
			errors.Is(err, profileDomain.ErrNameTooLong),
			errors.Is(err, profileDomain.ErrBioTooLong):
			userError(w, http.StatusBadRequest, err)
		default:
			internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// --- Gallery ---

// handleAdminGallerySubmit handles POST /api/admin/gallery (multipart
// form). In create mode an image source is required: an uploaded file
// (normalized) or a placeholder label. In edit mode omitting both keeps
// the item's stored image.
func handleAdminGallerySubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		http.Error(w, "request too large or malformed", http.StatusBadRequest)
		return
	}

	image, provided, err := normalizeUpload(r.Context(), r, "image")
	if err != nil {
		if isUserImageError(err) {
			userError(w, http.StatusBadRequest, err)
		} else {
			internalError(w, err)
		}
		return
	}
	if !provided {
		image = r.FormValue("imageLabel")
	}

	item, err := adminEditor.SubmitGallery(r.Context(), editor.GalleryDeps{
		GalleryStore: stores.GalleryStore,
		GenerateID:   galleryIDs.Next,
	}, editor.GallerySubmission{
		Title:  r.FormValue("title"),
		Detail: r.FormValue("detail"),
		Image:  image,
		Link:   r.FormValue("link"),
	})
	if err != nil {
		switch {
		case errors.Is(err, orchestrators.ErrGalleryItemNotFound):
			userError(w, http.StatusNotFound, err)
		case errors.Is(err, galleryDomain.ErrNoImage),
			errors.Is(err, galleryDomain.ErrEmptyTitle):
			userError(w, http.StatusBadRequest, err)
		default:
			internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// handleAdminGalleryEdit handles POST /api/admin/gallery/edit.
func handleAdminGalleryEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIDBody(w, r)
	if !ok {
		return
	}
	adminEditor.BeginGalleryEdit(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminGalleryCancel handles POST /api/admin/gallery/cancel.
// Discards the in-progress edit without touching storage.
func handleAdminGalleryCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	adminEditor.CancelGalleryEdit()
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminGalleryRemove handles POST /api/admin/gallery/remove.
// Removing the item currently being edited also exits edit mode.
func handleAdminGalleryRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIDBody(w, r)
	if !ok {
		return
	}
	err := adminEditor.RemoveGallery(r.Context(), editor.GalleryDeps{
		GalleryStore: stores.GalleryStore,
		GenerateID:   galleryIDs.Next,
	}, id)
	if errors.Is(err, orchestrators.ErrGalleryItemNotFound) {
		userError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Notes ---

// handleAdminNoteSubmit handles POST /api/admin/notes.
func handleAdminNoteSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Title    string `json:"title"`
		Date     string `json:"date"`
		Category string `json:"category"`
		Content  string `json:"content"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	n, err := adminEditor.SubmitNote(r.Context(), editor.NoteDeps{
		NoteStore:  stores.NoteStore,
		GenerateID: noteIDs.Next,
		Now:        timeNow,
	}, editor.NoteSubmission{
		Title:    body.Title,
		Date:     body.Date,
		Category: body.Category,
		Content:  body.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, orchestrators.ErrNoteNotFound):
			userError(w, http.StatusNotFound, err)
		case errors.Is(err, noteDomain.ErrEmptyTitle),
			errors.Is(err, noteDomain.ErrEmptyContent):
			userError(w, http.StatusBadRequest, err)
		default:
			internalError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// handleAdminNoteEdit handles POST /api/admin/notes/edit.
func handleAdminNoteEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIDBody(w, r)
	if !ok {
		return
	}
	adminEditor.BeginNoteEdit(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminNoteCancel handles POST /api/admin/notes/cancel.
func handleAdminNoteCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	adminEditor.CancelNoteEdit()
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminNoteRemove handles POST /api/admin/notes/remove.
func handleAdminNoteRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeIDBody(w, r)
	if !ok {
		return
	}
	err := adminEditor.RemoveNote(r.Context(), editor.NoteDeps{
		NoteStore:  stores.NoteStore,
		GenerateID: noteIDs.Next,
		Now:        timeNow,
	}, id)
	if errors.Is(err, orchestrators.ErrNoteNotFound) {
		userError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeIDBody reads a POST body of the form {"id": "..."}.
func decodeIDBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return "", false
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := strictDecode(r, &body); err != nil || body.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return "", false
	}
	return body.ID, true
}
