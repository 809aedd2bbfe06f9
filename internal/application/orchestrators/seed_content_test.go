package orchestrators

import (
	"context"
	"testing"

	"studiolog/internal/domain/gallery"
	"studiolog/internal/domain/note"
	"studiolog/internal/domain/profile"
)

// mockSeedStores track what seeding wrote.
type mockProfileSeedStore struct {
	stored *profile.Profile
	saves  int
}

func (m *mockProfileSeedStore) Exists(_ context.Context) (bool, error) {
	return m.stored != nil, nil
}

func (m *mockProfileSeedStore) Save(_ context.Context, p profile.Profile) error {
	m.stored = &p
	m.saves++
	return nil
}

type mockGallerySeedStore struct {
	stored   []gallery.Item
	haveBlob bool
	writes   int
}

func (m *mockGallerySeedStore) Exists(_ context.Context) (bool, error) {
	return m.haveBlob, nil
}

func (m *mockGallerySeedStore) Replace(_ context.Context, items []gallery.Item) error {
	m.stored = items
	m.haveBlob = true
	m.writes++
	return nil
}

type mockNoteSeedStore struct {
	stored   []note.Note
	haveBlob bool
	writes   int
}

func (m *mockNoteSeedStore) Exists(_ context.Context) (bool, error) {
	return m.haveBlob, nil
}

func (m *mockNoteSeedStore) Replace(_ context.Context, notes []note.Note) error {
	m.stored = notes
	m.haveBlob = true
	m.writes++
	return nil
}

func seedDeps() (SeedContentDeps, *mockProfileSeedStore, *mockGallerySeedStore, *mockNoteSeedStore) {
	p := &mockProfileSeedStore{}
	g := &mockGallerySeedStore{}
	n := &mockNoteSeedStore{}
	return SeedContentDeps{ProfileStore: p, GalleryStore: g, NoteStore: n}, p, g, n
}

// TestExecuteSeedContent_FillsAbsence writes defaults to empty stores.
func TestExecuteSeedContent_FillsAbsence(t *testing.T) {
	deps, p, g, n := seedDeps()
	if err := ExecuteSeedContent(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.stored == nil || p.stored.Name != profile.Default().Name {
		t.Error("expected default profile seeded")
	}
	if len(g.stored) != len(gallery.Defaults()) {
		t.Errorf("expected %d gallery items seeded, got %d", len(gallery.Defaults()), len(g.stored))
	}
	if len(n.stored) != len(note.Defaults()) {
		t.Errorf("expected %d notes seeded, got %d", len(note.Defaults()), len(n.stored))
	}
}

// TestExecuteSeedContent_Idempotent never overwrites existing data.
func TestExecuteSeedContent_Idempotent(t *testing.T) {
	deps, p, g, n := seedDeps()
	if err := ExecuteSeedContent(context.Background(), deps); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := ExecuteSeedContent(context.Background(), deps); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	if p.saves != 1 || g.writes != 1 || n.writes != 1 {
		t.Errorf("expected exactly one write per key, got profile=%d gallery=%d notes=%d", p.saves, g.writes, n.writes)
	}
}

// TestExecuteSeedContent_EmptiedCollectionStaysEmpty treats a present but
// empty collection as user data, not absence.
func TestExecuteSeedContent_EmptiedCollectionStaysEmpty(t *testing.T) {
	deps, _, g, _ := seedDeps()
	g.haveBlob = true
	g.stored = []gallery.Item{}

	if err := ExecuteSeedContent(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.stored) != 0 {
		t.Errorf("expected emptied gallery untouched, got %d items", len(g.stored))
	}
}

// TestExecuteSeedContent_FillsOnlyMissingKeys seeds keys independently.
func TestExecuteSeedContent_FillsOnlyMissingKeys(t *testing.T) {
	deps, p, g, n := seedDeps()
	existing := profile.Profile{Name: "Someone Else", Title: "Writer"}
	p.stored = &existing

	if err := ExecuteSeedContent(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.saves != 0 || p.stored.Name != "Someone Else" {
		t.Error("expected existing profile untouched")
	}
	if g.writes != 1 || n.writes != 1 {
		t.Error("expected missing gallery and notes seeded")
	}
}
