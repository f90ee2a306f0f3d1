package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "a", "authToken"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store: got %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "a", "authToken", "tok-a"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "b", "authToken", "tok-b"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, err := s.Get(ctx, "a", "authToken")
	if err != nil || v != "tok-a" {
		t.Fatalf("Get(a) = %q, %v; want tok-a", v, err)
	}
	v, err = s.Get(ctx, "b", "authToken")
	if err != nil || v != "tok-b" {
		t.Fatalf("Get(b) = %q, %v; want tok-b", v, err)
	}

	if err := s.Set(ctx, "a", "authToken", "tok-a2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _ := s.Get(ctx, "a", "authToken"); v != "tok-a2" {
		t.Fatalf("after overwrite got %q", v)
	}

	if err := s.Remove(ctx, "a", "authToken"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Get(ctx, "a", "authToken"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Remove: got %v, want ErrNotFound", err)
	}
	if err := s.Remove(ctx, "a", "missing"); err != nil {
		t.Fatalf("Remove of absent key: %v", err)
	}
	if v, _ := s.Get(ctx, "b", "authToken"); v != "tok-b" {
		t.Fatalf("namespace b disturbed: %q", v)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	exerciseStore(t, s)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Set(ctx, "client", "userData", `{"id":"1","username":"bob"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, err := reopened.Get(ctx, "client", "userData")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if v != `{"id":"1","username":"bob"}` {
		t.Fatalf("Get after reopen = %q", v)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path); err == nil {
		t.Fatal("expected error for corrupt storage file")
	}
}

func TestBucket(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBucket(store, "client-1")

	if err := b.Set(ctx, "authToken", "t"); err != nil {
		t.Fatal(err)
	}
	if v, err := store.Get(ctx, "client-1", "authToken"); err != nil || v != "t" {
		t.Fatalf("bucket wrote %q, %v", v, err)
	}
	if err := b.Remove(ctx, "authToken"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Get(ctx, "authToken"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestFileStoreReplacesFileWholesale(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "storage.json")
	if err := os.WriteFile(path, []byte(`{"client":{"authToken":"old"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	for i, token := range []string{"a", "b", "c"} {
		if err := s.Set(ctx, "client", "authToken", token); err != nil {
			t.Fatalf("Set %d: %v", i, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory holds %d files, want only the store", len(entries))
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := reopened.Get(ctx, "client", "authToken"); v != "c" {
		t.Fatalf("token = %q, want c", v)
	}
}
