package session

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"studiolog/internal/adapters/storage"
	"studiolog/internal/adapters/storage/kv"
)

func newTestStore(t *testing.T) (*KVStore, kv.Store) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	raw := kv.NewSQLiteStore(db)
	return NewKVStore(raw), raw
}

func TestGetToken_NoSession(t *testing.T) {
	store, _ := newTestStore(t)

	token, err := store.GetToken(context.Background())
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}
}

func TestSetGetClearToken(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SetToken(ctx, "abc-123"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	token, err := store.GetToken(ctx)
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if token != "abc-123" {
		t.Errorf("token = %q", token)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	token, err = store.GetToken(ctx)
	if err != nil {
		t.Fatalf("GetToken after Clear: %v", err)
	}
	if token != "" {
		t.Errorf("token survived Clear: %q", token)
	}
}

// TestSetToken_ReplacesPrevious keeps a single active session.
func TestSetToken_ReplacesPrevious(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SetToken(ctx, "first"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := store.SetToken(ctx, "second"); err != nil {
		t.Fatalf("second SetToken: %v", err)
	}
	token, err := store.GetToken(ctx)
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if token != "second" {
		t.Errorf("token = %q, want second", token)
	}
}

// TestClear_LeavesCredentials only removes the auth key.
func TestClear_LeavesCredentials(t *testing.T) {
	store, raw := newTestStore(t)
	ctx := context.Background()

	if err := raw.Set(ctx, kv.KeyCredentials, `{"email":"a@b.c"}`); err != nil {
		t.Fatalf("Set credentials: %v", err)
	}
	if err := store.SetToken(ctx, "tok"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	value, found, err := raw.Get(ctx, kv.KeyCredentials)
	if err != nil {
		t.Fatalf("Get credentials: %v", err)
	}
	if !found || value == "" {
		t.Error("credentials must survive a session clear")
	}
}
