package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"studiolog/internal/adapters/http/middleware"
	"studiolog/internal/application/orchestrators"
	"studiolog/internal/application/projections"
	"studiolog/internal/domain/credential"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// internalError logs the real error and returns a generic message to the
// client, preventing leaking internal details.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// userError maps a rejected submission to a user-visible message.
func userError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// handleHome handles GET /api/home.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetHome(r.Context(), projections.GetHomeDeps{
		ProfileStore: stores.ProfileStore,
		GalleryStore: stores.GalleryStore,
		NoteStore:    stores.NoteStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleGallery handles GET /api/gallery.
func handleGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetGallery(r.Context(), projections.GetGalleryDeps{
		GalleryStore: stores.GalleryStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleNotes handles GET /api/notes.
func handleNotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetNotes(r.Context(), projections.GetNotesDeps{
		NoteStore: stores.NoteStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleNoteDetail handles GET /api/note?id=<note-id>.
// An unknown id falls back to the first stored note, flagged in the
// response; only an empty collection is a 404.
func handleNoteDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetNoteDetail(r.Context(), projections.GetNoteDetailQuery{
		NoteID:          r.URL.Query().Get("id"),
		FallbackToFirst: true,
	}, projections.GetNoteDetailDeps{
		NoteStore: stores.NoteStore,
	})
	if errors.Is(err, projections.ErrNoteNotFound) {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleLogin handles POST /api/login. The first-ever login bootstraps
// the admin credentials; later logins must match them exactly.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	}, orchestrators.LoginDeps{
		CredentialStore: stores.CredentialStore,
		Now:             timeNow,
	})
	if err != nil {
		switch {
		case errors.Is(err, orchestrators.ErrInvalidCredentials),
			errors.Is(err, credential.ErrPasswordTooShort),
			errors.Is(err, credential.ErrEmptyEmail),
			errors.Is(err, credential.ErrInvalidEmail):
			userError(w, http.StatusUnauthorized, err)
		default:
			internalError(w, err)
		}
		return
	}

	token, err := sessions.Create(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)

	writeJSON(w, http.StatusOK, map[string]any{
		"email":        result.Email,
		"bootstrapped": result.Bootstrapped,
	})
}

// handleLogout handles POST /api/logout. Clears the session only; the
// stored credentials persist.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := sessions.Destroy(r.Context()); err != nil {
		internalError(w, err)
		return
	}
	middleware.ClearSessionCookie(w)
	slog.Info("auth_event", "event", "logout")
	w.WriteHeader(http.StatusNoContent)
}
