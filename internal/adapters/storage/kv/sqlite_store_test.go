package kv

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"studiolog/internal/adapters/storage"
)

// newTestStore creates a SQLiteStore over an in-memory database.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	return NewSQLiteStore(db)
}

func TestSQLiteStore_GetAbsent(t *testing.T) {
	store := newTestStore(t)

	value, found, err := store.Get(context.Background(), KeyProfile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found || value != "" {
		t.Errorf("absent key: value=%q found=%v", value, found)
	}
}

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyProfile, `{"name":"Alex"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, found, err := store.Get(ctx, KeyProfile)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || value != `{"name":"Alex"}` {
		t.Errorf("value=%q found=%v", value, found)
	}
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyGallery, "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, KeyGallery, "second"); err != nil {
		t.Fatalf("second Set: %v", err)
	}
	value, _, err := store.Get(ctx, KeyGallery)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "second" {
		t.Errorf("value = %q, want second", value)
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyAuth, "token"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, KeyAuth); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, found, err := store.Get(ctx, KeyAuth)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("deleted key still present")
	}

	// deleting an absent key is not an error
	if err := store.Delete(ctx, KeyAuth); err != nil {
		t.Errorf("Delete absent: %v", err)
	}
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyNotes, "notes blob"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, KeyGallery, "gallery blob"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, KeyNotes); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	value, found, err := store.Get(ctx, KeyGallery)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || value != "gallery blob" {
		t.Errorf("gallery blob disturbed: value=%q found=%v", value, found)
	}
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadJSON_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := SaveJSON(ctx, store, KeyProfile, sample{Name: "Alex", Count: 3}); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	var got sample
	found, err := LoadJSON(ctx, store, KeyProfile, &got)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if !found || got.Name != "Alex" || got.Count != 3 {
		t.Errorf("got=%+v found=%v", got, found)
	}
}

func TestLoadJSON_Absent(t *testing.T) {
	store := newTestStore(t)

	var got sample
	found, err := LoadJSON(context.Background(), store, KeyProfile, &got)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if found {
		t.Error("absent key reported found")
	}
}

// TestLoadJSON_CorruptBlob treats an undecodable blob as absent rather
// than failing, so callers fall back to defaults.
func TestLoadJSON_CorruptBlob(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyNotes, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got sample
	found, err := LoadJSON(ctx, store, KeyNotes, &got)
	if err != nil {
		t.Fatalf("LoadJSON must not fail on corruption: %v", err)
	}
	if found {
		t.Error("corrupt blob reported found")
	}
}
