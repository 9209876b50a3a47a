package tasks

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Audio clips are removed right after transcription, so anything older than
// this was orphaned by a crash mid-handling.
const staleAudioAge = time.Hour

// newAudioCleanupTask creates a scheduled task that removes orphaned audio
// clips from the dedicated audio temp directory.
func newAudioCleanupTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "audio_cleanup")

	dir := deps.AudioDir
	if dir == "" {
		dir = os.TempDir()
	}

	return func(ctx context.Context) error {
		matches, err := filepath.Glob(filepath.Join(dir, "*.m4a"))
		if err != nil {
			return err
		}

		removed := 0
		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if time.Since(info.ModTime()) < staleAudioAge {
				continue
			}
			if err := os.Remove(path); err != nil {
				log.WarnContext(ctx, "Failed to remove stale audio file", "path", path, "error", err)
				continue
			}
			removed++
		}

		if removed > 0 {
			log.InfoContext(ctx, "Removed stale audio files", "count", removed)
		}
		return nil
	}
}
