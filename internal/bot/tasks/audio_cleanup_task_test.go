package tasks

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAudioCleanupRemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.m4a")
	fresh := filepath.Join(dir, "fresh.m4a")
	other := filepath.Join(dir, "unrelated.txt")
	for _, path := range []string{stale, fresh, other} {
		if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
			t.Fatalf("failed to create %s: %v", path, err)
		}
	}

	old := time.Now().Add(-2 * time.Hour)
	for _, path := range []string{stale, other} {
		if err := os.Chtimes(path, old, old); err != nil {
			t.Fatalf("failed to backdate %s: %v", path, err)
		}
	}

	task := newAudioCleanupTask(TaskDeps{Logger: slog.Default(), AudioDir: dir})
	if err := task(context.Background()); err != nil {
		t.Fatalf("task error = %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale clip still exists")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("fresh clip was removed: %v", err)
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("non-audio file was removed: %v", err)
	}
}
