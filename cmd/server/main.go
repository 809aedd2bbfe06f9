package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	web "studiolog/internal/adapters/http"
	"studiolog/internal/adapters/storage"
	credentialStore "studiolog/internal/adapters/storage/credential"
	galleryStore "studiolog/internal/adapters/storage/gallery"
	"studiolog/internal/adapters/storage/kv"
	noteStore "studiolog/internal/adapters/storage/note"
	profileStore "studiolog/internal/adapters/storage/profile"
	sessionStore "studiolog/internal/adapters/storage/session"
	"studiolog/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	dbPath := envOrDefault("STUDIOLOG_DB", "studiolog.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	kvs := kv.NewSQLiteStore(db)
	pStore := profileStore.NewKVStore(kvs)
	gStore := galleryStore.NewKVStore(kvs)
	nStore := noteStore.NewKVStore(kvs)
	stores := &web.Stores{
		ProfileStore:    pStore,
		GalleryStore:    gStore,
		NoteStore:       nStore,
		CredentialStore: credentialStore.NewKVStore(kvs),
		SessionStore:    sessionStore.NewKVStore(kvs),
	}

	// Seed default content for any key that has never been stored
	seedDeps := orchestrators.SeedContentDeps{
		ProfileStore: pStore,
		GalleryStore: gStore,
		NoteStore:    nStore,
	}
	if err := orchestrators.ExecuteSeedContent(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed content: %v", err)
	}

	staticDir := envOrDefault("STUDIOLOG_STATIC_DIR", "static")
	mux := web.NewMux(staticDir, stores)

	addr := envOrDefault("STUDIOLOG_ADDR", ":8080")
	log.Printf("studiolog %s starting on %s (env=%s, db=%s)", version, addr, envOrDefault("STUDIOLOG_ENV", "development"), dbPath)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
