package storage

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	return NewFileStore(path, slog.Default())
}

func TestFileStoreLoadMissing(t *testing.T) {
	s := newTestFileStore(t)

	if _, err := s.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	records := map[string]string{
		"U1": "sk-one",
		"U2": "sk-two",
	}
	if err := s.Save(ctx, records); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 || got["U1"] != "sk-one" || got["U2"] != "sk-two" {
		t.Errorf("Load() = %v, want %v", got, records)
	}
}

func TestFileStoreSaveMerges(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, map[string]string{"U1": "sk-one", "U2": "sk-two"}); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := s.Save(ctx, map[string]string{"U2": "sk-rotated", "U3": "sk-three"}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := map[string]string{
		"U1": "sk-one",
		"U2": "sk-rotated",
		"U3": "sk-three",
	}
	if len(got) != len(want) {
		t.Fatalf("Load() returned %d records, want %d", len(got), len(want))
	}
	for userID, key := range want {
		if got[userID] != key {
			t.Errorf("Load()[%q] = %q, want %q", userID, got[userID], key)
		}
	}
}

func TestFileStoreMaintenance(t *testing.T) {
	s := newTestFileStore(t)

	if err := s.Maintenance(context.Background()); err != nil {
		t.Errorf("Maintenance() error = %v, want nil", err)
	}
}
