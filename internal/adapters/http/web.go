package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"

	"studiolog/internal/adapters/http/middleware"
	credentialStore "studiolog/internal/adapters/storage/credential"
	galleryStore "studiolog/internal/adapters/storage/gallery"
	noteStore "studiolog/internal/adapters/storage/note"
	profileStore "studiolog/internal/adapters/storage/profile"
	sessionStore "studiolog/internal/adapters/storage/session"
	"studiolog/internal/application/editor"
	"studiolog/internal/application/idgen"
)

// Stores holds all storage dependencies.
type Stores struct {
	ProfileStore    profileStore.Store
	GalleryStore    galleryStore.Store
	NoteStore       noteStore.Store
	CredentialStore credentialStore.Store
	SessionStore    sessionStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session guard (set by NewMux)
var sessions *middleware.Sessions

// Global admin editor state (set by NewMux)
var adminEditor *editor.Controller

// Entity ID generators. IDs are monotonic time tokens per collection.
var (
	galleryIDs = idgen.New("gal")
	noteIDs    = idgen.New("note")
)

// loadCSRFKey reads the CSRF secret from STUDIOLOG_CSRF_KEY (hex-encoded,
// 32 bytes). In production, the key MUST be set. In development, a random
// key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("STUDIOLOG_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("STUDIOLOG_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("STUDIOLOG_ENV") == "production" {
		log.Fatal("STUDIOLOG_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions' CSRF tokens won't survive restart). Set STUDIOLOG_CSRF_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessions(s.SessionStore)
	adminEditor = editor.New()
	middleware.SecureCookies = os.Getenv("STUDIOLOG_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	csrfKey := loadCSRFKey()

	// Apply middleware: SecurityHeaders -> CSRF -> Auth -> Mux.
	// No rate limiter: the login flow is specified without one.
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
	)
}

// registerRoutes attaches API routes to the mux.
func registerRoutes(mux *http.ServeMux) {
	// Public views
	mux.HandleFunc("/api/home", handleHome)
	mux.HandleFunc("/api/gallery", handleGallery)
	mux.HandleFunc("/api/notes", handleNotes)
	mux.HandleFunc("/api/note", handleNoteDetail)

	// Auth
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)

	// Admin editor (guarded)
	admin := func(h http.HandlerFunc) http.Handler { return middleware.RequireAuth(h) }
	mux.Handle("/api/admin/editor", admin(handleAdminEditor))
	mux.Handle("/api/admin/profile", admin(handleAdminProfile))
	mux.Handle("/api/admin/gallery", admin(handleAdminGallerySubmit))
	mux.Handle("/api/admin/gallery/edit", admin(handleAdminGalleryEdit))
	mux.Handle("/api/admin/gallery/cancel", admin(handleAdminGalleryCancel))
	mux.Handle("/api/admin/gallery/remove", admin(handleAdminGalleryRemove))
	mux.Handle("/api/admin/notes", admin(handleAdminNoteSubmit))
	mux.Handle("/api/admin/notes/edit", admin(handleAdminNoteEdit))
	mux.Handle("/api/admin/notes/cancel", admin(handleAdminNoteCancel))
	mux.Handle("/api/admin/notes/remove", admin(handleAdminNoteRemove))
}
